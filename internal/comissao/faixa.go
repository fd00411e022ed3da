package comissao

import "github.com/shopspring/decimal"

var (
	faixa10 = decimal.NewFromFloat(0.10)
	faixa15 = decimal.NewFromFloat(0.15)
	faixa20 = decimal.NewFromFloat(0.20)
)

// MultiplicadorFaixa devolve o multiplicador de repasse individual do
// colaborador pela faixa de produção do período: até 20 vendas 10%,
// de 21 a 30 vendas 15%, acima de 30 vendas 20%. A contagem considera
// cada venda uma única vez (somente linhas de primeiro mês).
func MultiplicadorFaixa(qtdVendas int) decimal.Decimal {
	switch {
	case qtdVendas <= 20:
		return faixa10
	case qtdVendas <= 30:
		return faixa15
	default:
		return faixa20
	}
}
