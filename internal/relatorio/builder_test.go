package relatorio

import (
	"testing"
	"time"

	"github.com/PrimaSeguros/api-corretora/internal/venda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var agoraTeste = time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func comp(s string) Competencia {
	c, err := ParseCompetencia(s)
	if err != nil {
		panic(err)
	}
	return c
}

// vendaBoleto5x: prêmio R$1000, comissão 20%, boleto 5x, vigência a partir
// de jan/2025. Parcela mensal esperada: (1000*0,20/5)*0,85 = R$34,00.
func vendaBoleto5x() venda.Venda {
	return venda.Venda{
		ID:                 1,
		ColaboradorID:      7,
		Segurado:           "Transportes Ypê",
		PremioLiquido:      1000,
		PercentualComissao: 20,
		FormaPagamento:     "Boleto",
		ParcelasRaw:        "5x",
		InicioVigencia:     dia(2025, 1, 10),
	}
}

var nomesTeste = map[uint]string{7: "Ana Souza"}

func TestParseCompetencia(t *testing.T) {
	c, err := ParseCompetencia("2025-02")
	require.NoError(t, err)
	assert.Equal(t, 2025, c.Ano)
	assert.Equal(t, time.February, c.Mes)
	assert.Equal(t, "2025-02", c.String())

	_, err = ParseCompetencia("02/2025")
	assert.Error(t, err)
}

func TestMesesDesde(t *testing.T) {
	c := comp("2025-03")
	assert.Equal(t, 2, c.MesesDesde(dia(2025, 1, 10)))
	assert.Equal(t, 0, c.MesesDesde(dia(2025, 3, 31)))
	assert.Equal(t, -1, c.MesesDesde(dia(2025, 4, 1)))
	assert.Equal(t, 14, c.MesesDesde(dia(2024, 1, 5)))
}

func TestJanelaDeVisibilidade(t *testing.T) {
	vendas := []venda.Venda{vendaBoleto5x()}

	// Mês 2 da vigência (decorridos=1): parcela 2/5 visível e pendente.
	rel := MontarRelatorio(vendas, nomesTeste, comp("2025-02"), agoraTeste)
	require.Len(t, rel.Linhas, 1)
	l := rel.Linhas[0]
	assert.Equal(t, TipoParcelado, l.Tipo)
	assert.Equal(t, 2, l.ParcelaAtual)
	assert.Equal(t, 5, l.QtdParcelas)
	assert.Equal(t, "Ana Souza", l.Colaborador)
	assert.Equal(t, 34.00, l.ParteBase)
	assert.Equal(t, 34.00, l.ValorPendente)
	assert.False(t, l.ParcelaPaga)

	// Antes da vigência: invisível.
	rel = MontarRelatorio(vendas, nomesTeste, comp("2024-12"), agoraTeste)
	assert.Empty(t, rel.Linhas)

	// Depois da última parcela (decorridos=5 >= 5): invisível.
	rel = MontarRelatorio(vendas, nomesTeste, comp("2025-06"), agoraTeste)
	assert.Empty(t, rel.Linhas)
}

func TestPrimeiroMesRegular(t *testing.T) {
	v := vendaBoleto5x()
	rel := MontarRelatorio([]venda.Venda{v}, nomesTeste, comp("2025-01"), agoraTeste)
	require.Len(t, rel.Linhas, 1)
	assert.Equal(t, TipoRegular, rel.Linhas[0].Tipo)
	assert.True(t, rel.Linhas[0].PrimeiroMes)
}

func TestPendentePassado(t *testing.T) {
	// Boleto 3x fica abaixo do piso: parcela única. Sem quitação, a venda
	// continua aparecendo nos meses seguintes como pendência antiga.
	v := vendaBoleto5x()
	v.ParcelasRaw = "3x"

	rel := MontarRelatorio([]venda.Venda{v}, nomesTeste, comp("2025-04"), agoraTeste)
	require.Len(t, rel.Linhas, 1)
	l := rel.Linhas[0]
	assert.Equal(t, TipoPendentePassado, l.Tipo)
	assert.Equal(t, 1, l.QtdParcelas)
	assert.Equal(t, 170.00, l.ParteBase) // 200 * 0,85
	assert.Equal(t, 170.00, l.ValorPendente)

	// Depois de quitada, some.
	v.Pago = true
	rel = MontarRelatorio([]venda.Venda{v}, nomesTeste, comp("2025-04"), agoraTeste)
	assert.Empty(t, rel.Linhas)
}

func TestResiduoSomenteBonus(t *testing.T) {
	v := vendaBoleto5x()
	v.FormaPagamento = "Cartão Bandeirado"
	v.ParcelasRaw = "10x"
	v.TemBonusCartao = true
	v.Pago = true

	// Meses depois da janela normal (bandeirado = parcela única), o bônus
	// não quitado mantém a venda visível como linha só de bônus.
	rel := MontarRelatorio([]venda.Venda{v}, nomesTeste, comp("2025-07"), agoraTeste)
	require.Len(t, rel.Linhas, 1)
	l := rel.Linhas[0]
	assert.Equal(t, TipoSomenteBonus, l.Tipo)
	assert.Equal(t, 51.00, l.ParteBonus)
	assert.Equal(t, 51.00, l.ValorPendente)
	assert.Equal(t, 0.0, l.ParteBase)

	// Bônus quitado encerra o resíduo.
	v.BonusCartaoPago = true
	rel = MontarRelatorio([]venda.Venda{v}, nomesTeste, comp("2025-07"), agoraTeste)
	assert.Empty(t, rel.Linhas)
}

func TestPlanoParceladoReancora(t *testing.T) {
	ativacao := dia(2025, 4, 15)
	v := vendaBoleto5x()
	v.PlanoParcelado = true
	v.QtdParcelasPlano = 6
	v.DataAtivacaoPlano = &ativacao

	// A contagem parte da ativação, não do início da vigência.
	rel := MontarRelatorio([]venda.Venda{v}, nomesTeste, comp("2025-04"), agoraTeste)
	require.Len(t, rel.Linhas, 1)
	assert.Equal(t, TipoParcelado, rel.Linhas[0].Tipo)
	assert.Equal(t, 1, rel.Linhas[0].ParcelaAtual)
	assert.Equal(t, 6, rel.Linhas[0].QtdParcelas)

	// Antes da ativação não há nada, mesmo dentro da vigência.
	rel = MontarRelatorio([]venda.Venda{v}, nomesTeste, comp("2025-02"), agoraTeste)
	assert.Empty(t, rel.Linhas)

	// Sexta e última parcela em set/2025; out/2025 já não aparece.
	rel = MontarRelatorio([]venda.Venda{v}, nomesTeste, comp("2025-09"), agoraTeste)
	require.Len(t, rel.Linhas, 1)
	assert.Equal(t, 6, rel.Linhas[0].ParcelaAtual)
	rel = MontarRelatorio([]venda.Venda{v}, nomesTeste, comp("2025-10"), agoraTeste)
	assert.Empty(t, rel.Linhas)
}

func TestCortePorDiaDoMes(t *testing.T) {
	ativacao := dia(2025, 8, 25)
	v := vendaBoleto5x()
	v.PlanoParcelado = true
	v.QtdParcelasPlano = 4
	v.DataAtivacaoPlano = &ativacao

	c := comp("2025-08")

	// Plano ativado no mês-calendário corrente só aparece quando o dia real
	// alcança o dia da ativação.
	rel := MontarRelatorio([]venda.Venda{v}, nomesTeste, c, dia(2025, 8, 20))
	assert.Empty(t, rel.Linhas)

	rel = MontarRelatorio([]venda.Venda{v}, nomesTeste, c, dia(2025, 8, 25))
	assert.Len(t, rel.Linhas, 1)

	// Em meses seguintes o corte não atua mais.
	rel = MontarRelatorio([]venda.Venda{v}, nomesTeste, c, dia(2025, 9, 1))
	assert.Len(t, rel.Linhas, 1)
}

func TestParcelasPagasDoPlano(t *testing.T) {
	ativacao := dia(2025, 3, 5)
	v := vendaBoleto5x()
	v.PlanoParcelado = true
	v.QtdParcelasPlano = 3
	v.DataAtivacaoPlano = &ativacao
	v.ParcelasPagas = 1

	// Primeira parcela paga: linha visível, sem pendência.
	rel := MontarRelatorio([]venda.Venda{v}, nomesTeste, comp("2025-03"), agoraTeste)
	require.Len(t, rel.Linhas, 1)
	assert.True(t, rel.Linhas[0].ParcelaPaga)
	assert.Equal(t, 0.0, rel.Linhas[0].ValorPendente)

	// Segunda parcela segue pendente.
	rel = MontarRelatorio([]venda.Venda{v}, nomesTeste, comp("2025-04"), agoraTeste)
	require.Len(t, rel.Linhas, 1)
	assert.False(t, rel.Linhas[0].ParcelaPaga)
	assert.True(t, rel.Linhas[0].ValorPendente > 0)
}

func TestTrilhoDoGestor(t *testing.T) {
	v := vendaBoleto5x()
	v.TemComissaoGestor = true
	v.TipoPagamentoGestor = venda.GestorParcelado
	v.QtdParcelasGestor = 3

	// Dentro da janela do gestor aparecem as duas linhas: a da venda e a CPG.
	rel := MontarRelatorio([]venda.Venda{v}, nomesTeste, comp("2025-02"), agoraTeste)
	require.Len(t, rel.Linhas, 2)
	var gestor *LinhaRelatorio
	for i := range rel.Linhas {
		if rel.Linhas[i].Tipo == TipoGestor {
			gestor = &rel.Linhas[i]
		}
	}
	require.NotNil(t, gestor)
	assert.Equal(t, 2, gestor.ParcelaAtual)
	assert.Equal(t, 3, gestor.QtdParcelas)
	assert.True(t, gestor.ValorPendente > 0)

	// Fora da janela do gestor (3 parcelas), só a linha da venda permanece.
	rel = MontarRelatorio([]venda.Venda{v}, nomesTeste, comp("2025-04"), agoraTeste)
	require.Len(t, rel.Linhas, 1)
	assert.NotEqual(t, TipoGestor, rel.Linhas[0].Tipo)

	// Gestor quitado zera a pendência do trilho.
	v.GestorPago = true
	rel = MontarRelatorio([]venda.Venda{v}, nomesTeste, comp("2025-02"), agoraTeste)
	for _, l := range rel.Linhas {
		if l.Tipo == TipoGestor {
			assert.Equal(t, 0.0, l.ValorPendente)
			assert.True(t, l.ParcelaPaga)
		}
	}
}

func TestColaboradorOrfao(t *testing.T) {
	v := vendaBoleto5x()
	v.ColaboradorID = 0
	v.ColaboradorNome = "Fulano Sem Cadastro"

	rel := MontarRelatorio([]venda.Venda{v}, nomesTeste, comp("2025-01"), agoraTeste)
	require.Len(t, rel.Linhas, 1)
	assert.Equal(t, "Fulano Sem Cadastro", rel.Linhas[0].Colaborador)
	assert.Equal(t, []string{"Fulano Sem Cadastro"}, rel.ColaboradoresOrfaos)
}

func TestVendaSemDataFicaInvisivel(t *testing.T) {
	v := vendaBoleto5x()
	v.InicioVigencia = time.Time{}

	rel := MontarRelatorio([]venda.Venda{v}, nomesTeste, comp("2025-01"), agoraTeste)
	assert.Empty(t, rel.Linhas)
}

func TestIdempotencia(t *testing.T) {
	ativacao := dia(2025, 2, 10)
	vendas := []venda.Venda{
		vendaBoleto5x(),
		{
			ID: 2, ColaboradorID: 7, Segurado: "Mercearia Central",
			PremioLiquido: 800, PercentualComissao: 15,
			FormaPagamento: "Cartão de Crédito", ParcelasRaw: "8x",
			InicioVigencia: dia(2025, 1, 20), TemBonusCartao: true,
		},
		{
			ID: 3, ColaboradorID: 7, Segurado: "Oficina do Zé",
			PremioLiquido: 1500, PercentualComissao: 25,
			FormaPagamento: "Débito", ParcelasRaw: "6x",
			InicioVigencia: dia(2024, 11, 2), PlanoParcelado: true,
			QtdParcelasPlano: 5, DataAtivacaoPlano: &ativacao, ParcelasPagas: 2,
		},
	}

	a := MontarRelatorio(vendas, nomesTeste, comp("2025-04"), agoraTeste)
	b := MontarRelatorio(vendas, nomesTeste, comp("2025-04"), agoraTeste)
	assert.Equal(t, a, b)
	assert.Equal(t, a.TotalPendente, b.TotalPendente)
	assert.Equal(t, a.TotalMes, b.TotalMes)
}
