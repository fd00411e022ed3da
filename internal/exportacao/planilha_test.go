package exportacao

import (
	"fmt"
	"testing"

	"github.com/PrimaSeguros/api-corretora/internal/relatorio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linhaTeste(colaborador string, parteBase float64, primeiroMes bool) relatorio.LinhaRelatorio {
	return relatorio.LinhaRelatorio{
		Colaborador:        colaborador,
		Segurado:           "Segurado Teste",
		PremioLiquido:      1000,
		PercentualComissao: 20,
		ParcelaAtual:       1,
		QtdParcelas:        1,
		ParteBase:          parteBase,
		ValorMensal:        parteBase,
		ValorPendente:      parteBase,
		PrimeiroMes:        primeiroMes,
	}
}

func TestGerarPlanilhaAbas(t *testing.T) {
	rel := relatorio.Relatorio{
		Competencia: "2025-08",
		Linhas: []relatorio.LinhaRelatorio{
			linhaTeste("Ana Souza", 100, true),
			linhaTeste("Bruno Lima", 50, true),
			{Colaborador: "Ana Souza", Tipo: relatorio.TipoGestor, ParteBase: 30, PrimeiroMes: true},
		},
		TotalMes:      150,
		TotalPendente: 150,
	}

	f, err := GerarPlanilha(rel)
	require.NoError(t, err)

	// Aba geral + uma aba por colaborador; trilho do gestor não vira aba.
	assert.ElementsMatch(t, []string{"Geral", "Ana Souza", "Bruno Lima"}, f.GetSheetList())

	// Cabeçalho e primeira linha da aba geral.
	v, _ := f.GetCellValue("Geral", "A1")
	assert.Equal(t, "Colaborador", v)
	v, _ = f.GetCellValue("Geral", "A2")
	assert.Equal(t, "Ana Souza", v)
	v, _ = f.GetCellValue("Geral", "C2")
	assert.Equal(t, "R$ 1.000,00", v)
}

func TestRepasseEscaladoPorFaixa(t *testing.T) {
	// Um colaborador com 1 venda: faixa de 10%.
	rel := relatorio.Relatorio{
		Competencia: "2025-08",
		Linhas:      []relatorio.LinhaRelatorio{linhaTeste("Ana Souza", 100, true)},
	}
	f, err := GerarPlanilha(rel)
	require.NoError(t, err)

	v, _ := f.GetCellValue("Ana Souza", "E2")
	assert.Equal(t, "R$ 10,00", v)

	// 21 vendas de primeiro mês: faixa sobe para 15%.
	rel = relatorio.Relatorio{Competencia: "2025-08"}
	for i := 0; i < 21; i++ {
		l := linhaTeste("Ana Souza", 100, true)
		l.Segurado = fmt.Sprintf("Segurado %02d", i)
		rel.Linhas = append(rel.Linhas, l)
	}
	f, err = GerarPlanilha(rel)
	require.NoError(t, err)

	v, _ = f.GetCellValue("Ana Souza", "E2")
	assert.Equal(t, "R$ 15,00", v)

	// Rodapé registra a faixa aplicada.
	v, _ = f.GetCellValue("Ana Souza", "A24")
	assert.Equal(t, "Faixa: 15% (21 vendas)", v)
}

func TestBonusForaDaAbaIndividual(t *testing.T) {
	l := linhaTeste("Ana Souza", 100, true)
	l.ParteBonus = 51
	l.ValorMensal = 151

	rel := relatorio.Relatorio{Competencia: "2025-08", Linhas: []relatorio.LinhaRelatorio{l}}
	f, err := GerarPlanilha(rel)
	require.NoError(t, err)

	// Na aba geral o bônus aparece integral.
	v, _ := f.GetCellValue("Geral", "G2")
	assert.Equal(t, "R$ 51,00", v)

	// Na aba individual o repasse considera só a parte base escalada.
	v, _ = f.GetCellValue("Ana Souza", "E2")
	assert.Equal(t, "R$ 10,00", v)
}

func TestNomeDeAba(t *testing.T) {
	assert.Equal(t, "Maria José", nomeDeAba("Maria José"))
	assert.Equal(t, "Nome Com  Barras", nomeDeAba("Nome/Com *Barras"))
	assert.Len(t, []rune(nomeDeAba("colaborador com um nome excepcionalmente longo")), 31)
}
