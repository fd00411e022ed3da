package exportacao

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PrimaSeguros/api-corretora/internal/comissao"
	"github.com/PrimaSeguros/api-corretora/internal/relatorio"
	"github.com/PrimaSeguros/api-corretora/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const abaGeral = "Geral"

var cabecalhoGeral = []string{
	"Colaborador", "Segurado", "Prêmio Líquido", "Comissão %",
	"Parcela", "Comissão do Mês", "Bônus Cartão", "Pendente",
}

var cabecalhoIndividual = []string{
	"Segurado", "Prêmio Líquido", "Comissão %", "Parcela", "Repasse",
}

// GerarPlanilha monta a pasta de trabalho da competência: uma aba geral com
// todas as linhas (bônus integral, sem escala de faixa) e uma aba por
// colaborador com o repasse individual escalado pelo multiplicador de faixa.
// O bônus de cartão fica só na aba geral.
func GerarPlanilha(rel relatorio.Relatorio) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", abaGeral); err != nil {
		return nil, err
	}

	for i, h := range cabecalhoGeral {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(abaGeral, cell, h)
	}

	for i, l := range rel.Linhas {
		row := i + 2
		f.SetCellValue(abaGeral, fmt.Sprintf("A%d", row), l.Colaborador)
		f.SetCellValue(abaGeral, fmt.Sprintf("B%d", row), l.Segurado)
		f.SetCellValue(abaGeral, fmt.Sprintf("C%d", row), utils.FormatarMoeda(l.PremioLiquido))
		f.SetCellValue(abaGeral, fmt.Sprintf("D%d", row), fmt.Sprintf("%.2f", l.PercentualComissao))
		f.SetCellValue(abaGeral, fmt.Sprintf("E%d", row), fmt.Sprintf("%d/%d", l.ParcelaAtual, l.QtdParcelas))
		f.SetCellValue(abaGeral, fmt.Sprintf("F%d", row), utils.FormatarMoeda(l.ValorMensal))
		f.SetCellValue(abaGeral, fmt.Sprintf("G%d", row), utils.FormatarMoeda(l.ParteBonus))
		f.SetCellValue(abaGeral, fmt.Sprintf("H%d", row), utils.FormatarMoeda(l.ValorPendente))
	}

	totalRow := len(rel.Linhas) + 3
	f.SetCellValue(abaGeral, fmt.Sprintf("A%d", totalRow), "Total do mês")
	f.SetCellValue(abaGeral, fmt.Sprintf("F%d", totalRow), utils.FormatarMoeda(rel.TotalMes))
	f.SetCellValue(abaGeral, fmt.Sprintf("A%d", totalRow+1), "Total pendente")
	f.SetCellValue(abaGeral, fmt.Sprintf("F%d", totalRow+1), utils.FormatarMoeda(rel.TotalPendente))

	for _, nome := range colaboradoresOrdenados(rel) {
		if err := abaDoColaborador(f, nome, rel); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// colaboradoresOrdenados lista os nomes com linhas individuais, em ordem
// estável para a exportação casar byte a byte com a tela.
func colaboradoresOrdenados(rel relatorio.Relatorio) []string {
	vistos := map[string]bool{}
	var nomes []string
	for _, l := range rel.Linhas {
		if l.Colaborador == "" || l.Tipo == relatorio.TipoGestor {
			continue
		}
		if !vistos[l.Colaborador] {
			vistos[l.Colaborador] = true
			nomes = append(nomes, l.Colaborador)
		}
	}
	sort.Strings(nomes)
	return nomes
}

func abaDoColaborador(f *excelize.File, nome string, rel relatorio.Relatorio) error {
	aba := nomeDeAba(nome)
	if _, err := f.NewSheet(aba); err != nil {
		return err
	}

	var linhas []relatorio.LinhaRelatorio
	qtdVendas := 0
	for _, l := range rel.Linhas {
		if l.Colaborador != nome || l.Tipo == relatorio.TipoGestor {
			continue
		}
		linhas = append(linhas, l)
		// Cada venda conta uma única vez na faixa (só o primeiro mês).
		if l.PrimeiroMes {
			qtdVendas++
		}
	}
	mult := comissao.MultiplicadorFaixa(qtdVendas)

	for i, h := range cabecalhoIndividual {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(aba, cell, h)
	}

	total := decimal.Zero
	for i, l := range linhas {
		row := i + 2
		repasse := decimal.NewFromFloat(l.ParteBase).Mul(mult).Round(2)
		total = total.Add(repasse)

		f.SetCellValue(aba, fmt.Sprintf("A%d", row), l.Segurado)
		f.SetCellValue(aba, fmt.Sprintf("B%d", row), utils.FormatarMoeda(l.PremioLiquido))
		f.SetCellValue(aba, fmt.Sprintf("C%d", row), fmt.Sprintf("%.2f", l.PercentualComissao))
		f.SetCellValue(aba, fmt.Sprintf("D%d", row), fmt.Sprintf("%d/%d", l.ParcelaAtual, l.QtdParcelas))
		f.SetCellValue(aba, fmt.Sprintf("E%d", row), utils.FormatarMoeda(repasseFloat(repasse)))
	}

	rodape := len(linhas) + 3
	f.SetCellValue(aba, fmt.Sprintf("A%d", rodape), fmt.Sprintf("Faixa: %s%% (%d vendas)", mult.Mul(decimal.NewFromInt(100)).String(), qtdVendas))
	f.SetCellValue(aba, fmt.Sprintf("E%d", rodape), utils.FormatarMoeda(repasseFloat(total)))

	return nil
}

func repasseFloat(d decimal.Decimal) float64 {
	v, _ := d.Float64()
	return v
}

// nomeDeAba ajusta o nome do colaborador ao limite de 31 caracteres do Excel.
func nomeDeAba(nome string) string {
	s := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return ' '
		}
		return r
	}, nome)
	if r := []rune(s); len(r) > 31 {
		s = string(r[:31])
	}
	return s
}
