package relatorio

import (
	"sort"
	"time"

	"github.com/PrimaSeguros/api-corretora/internal/comissao"
	"github.com/PrimaSeguros/api-corretora/internal/venda"
	"github.com/shopspring/decimal"
)

// MontarRelatorio apura a competência sobre a lista de vendas. Função pura e
// determinística: mesma lista, mesma competência e mesmo relógio produzem o
// mesmo relatório. O relógio (`agora`) entra como parâmetro porque o corte de
// faturamento por dia do mês depende dele; injetá-lo mantém a apuração
// reproduzível (ver DESIGN.md).
func MontarRelatorio(vendas []venda.Venda, nomes map[uint]string, comp Competencia, agora time.Time) Relatorio {
	rel := Relatorio{Competencia: comp.String()}

	totalMes := decimal.Zero
	totalPendente := decimal.Zero
	orfaos := map[string]bool{}

	for i := range vendas {
		v := &vendas[i]

		nome := nomes[v.ColaboradorID]
		if nome == "" {
			nome = v.ColaboradorNome
			if nome != "" {
				orfaos[nome] = true
			}
		}

		if linha, ok := linhaDaVenda(v, nome, comp, agora); ok {
			rel.Linhas = append(rel.Linhas, linha)
			totalMes = totalMes.Add(decimal.NewFromFloat(linha.ValorMensal))
			totalPendente = totalPendente.Add(decimal.NewFromFloat(linha.ValorPendente))
		}

		if linha, ok := linhaDoGestor(v, nome, comp); ok {
			rel.Linhas = append(rel.Linhas, linha)
			totalPendente = totalPendente.Add(decimal.NewFromFloat(linha.ValorPendente))
		}
	}

	rel.TotalMes = arred(totalMes)
	rel.TotalPendente = arred(totalPendente)

	for nome := range orfaos {
		rel.ColaboradoresOrfaos = append(rel.ColaboradoresOrfaos, nome)
	}
	sort.Strings(rel.ColaboradoresOrfaos)

	return rel
}

// linhaDaVenda resolve a visibilidade e o tipo da linha principal da venda
// na competência consultada.
func linhaDaVenda(v *venda.Venda, nome string, comp Competencia, agora time.Time) (LinhaRelatorio, bool) {
	ancora := v.AncoraComissao()
	if ancora.IsZero() {
		// Sem data de vigência nem ativação não há como indexar o mês;
		// a venda fica invisível em vez de derrubar o relatório.
		return LinhaRelatorio{}, false
	}

	decorridos := comp.MesesDesde(ancora)
	if decorridos < 0 {
		return LinhaRelatorio{}, false
	}

	// Corte de faturamento: plano ativado dentro do mês-calendário corrente
	// só aparece quando o dia real alcança o dia da ativação.
	if v.PlanoParcelado && v.DataAtivacaoPlano != nil {
		ativacao := *v.DataAtivacaoPlano
		if ativacao.Year() == agora.Year() && ativacao.Month() == agora.Month() &&
			agora.Day() < ativacao.Day() {
			return LinhaRelatorio{}, false
		}
	}

	primeiroMes := decorridos == 0
	res := comissao.Calcular(v.Entrada(primeiroMes))
	qtd := res.QtdParcelasEfetiva

	if decorridos >= qtd {
		// Fora da janela. Duas exceções continuam visíveis: o resíduo de
		// bônus de cartão de venda quitada e a parcela única nunca quitada.
		if v.Pago && v.TemBonusCartao && !v.BonusCartaoPago {
			return linhaSomenteBonus(v, nome, res), true
		}
		if !v.Pago && qtd == 1 {
			return montarLinha(v, nome, res, TipoPendentePassado, decorridos, false), true
		}
		return LinhaRelatorio{}, false
	}

	parcelaPaga := v.Pago
	if v.PlanoParcelado {
		parcelaPaga = decorridos < v.ParcelasPagas || (v.Pago && primeiroMes)
	}

	// Primeiro mês fora de plano manual é linha Regular; qualquer mês de um
	// plano do back-office, e os meses seguintes da amortização por trilho,
	// são Parcelado (N de M).
	tipo := TipoParcelado
	if primeiroMes && (!v.PlanoParcelado || qtd == 1) {
		tipo = TipoRegular
	}

	linha := montarLinha(v, nome, res, tipo, decorridos, parcelaPaga)
	if parcelaPaga {
		// Parcela base confirmada: só o bônus desacoplado pode seguir pendente.
		pendente := decimal.Zero
		if v.TemBonusCartao && !v.BonusCartaoPago {
			pendente = res.ParteBonus
		}
		linha.ValorPendente = arred(pendente)
	}
	return linha, true
}

func montarLinha(v *venda.Venda, nome string, res comissao.Resultado, tipo TipoLinha, decorridos int, parcelaPaga bool) LinhaRelatorio {
	return LinhaRelatorio{
		VendaID:            v.ID,
		ColaboradorID:      v.ColaboradorID,
		Colaborador:        nome,
		Segurado:           v.Segurado,
		Tipo:               tipo,
		ParcelaAtual:       decorridos + 1,
		QtdParcelas:        res.QtdParcelasEfetiva,
		PremioLiquido:      v.PremioEfetivo(),
		PercentualComissao: v.PercentualComissao,
		ValorBase:          arred(res.ValorBase),
		ParteBase:          arred(res.ParteBase),
		ParteBonus:         arred(res.ParteBonus),
		ValorMensal:        arred(res.ValorMensal),
		ValorPendente:      arred(res.ValorPendente),
		ParcelaPaga:        parcelaPaga,
		PrimeiroMes:        decorridos == 0,
	}
}

func linhaSomenteBonus(v *venda.Venda, nome string, res comissao.Resultado) LinhaRelatorio {
	bonus := arred(res.ParteBonus)
	return LinhaRelatorio{
		VendaID:            v.ID,
		ColaboradorID:      v.ColaboradorID,
		Colaborador:        nome,
		Segurado:           v.Segurado,
		Tipo:               TipoSomenteBonus,
		ParcelaAtual:       res.QtdParcelasEfetiva,
		QtdParcelas:        res.QtdParcelasEfetiva,
		PremioLiquido:      v.PremioEfetivo(),
		PercentualComissao: v.PercentualComissao,
		ParteBonus:         bonus,
		ValorMensal:        bonus,
		ValorPendente:      bonus,
		ParcelaPaga:        true,
	}
}

// linhaDoGestor monta o trilho independente da comissão de gestão (CPG),
// visível apenas dentro da sua própria janela de parcelas, sempre ancorada
// no início de vigência.
func linhaDoGestor(v *venda.Venda, nome string, comp Competencia) (LinhaRelatorio, bool) {
	if !v.TemComissaoGestor || v.InicioVigencia.IsZero() {
		return LinhaRelatorio{}, false
	}

	qtd := 1
	if v.TipoPagamentoGestor == venda.GestorParcelado && v.QtdParcelasGestor > 0 {
		qtd = v.QtdParcelasGestor
	}

	decorridos := comp.MesesDesde(v.InicioVigencia)
	if decorridos < 0 || decorridos >= qtd {
		return LinhaRelatorio{}, false
	}

	e := v.Entrada(false)
	e.ParcelasOverride = qtd
	e.JaPago = false
	e.TemBonusCartao = false
	res := comissao.Calcular(e)

	pendente := res.ParteBase
	if v.GestorPago {
		pendente = decimal.Zero
	}

	return LinhaRelatorio{
		VendaID:            v.ID,
		ColaboradorID:      v.ColaboradorID,
		Colaborador:        nome,
		Segurado:           v.Segurado,
		Tipo:               TipoGestor,
		ParcelaAtual:       decorridos + 1,
		QtdParcelas:        qtd,
		PremioLiquido:      v.PremioEfetivo(),
		PercentualComissao: v.PercentualComissao,
		ParteBase:          arred(res.ParteBase),
		ValorMensal:        arred(res.ParteBase),
		ValorPendente:      arred(pendente),
		ParcelaPaga:        v.GestorPago,
		PrimeiroMes:        decorridos == 0,
	}, true
}

// arred arredonda para 2 casas na apresentação; o cálculo fica exato até aqui.
func arred(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
