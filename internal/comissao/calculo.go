package comissao

import "github.com/shopspring/decimal"

// Regras contratuais fixas da corretora.
const (
	// BonusCartao é o bônus fixo em reais pago por venda no cartão bandeirado.
	BonusCartao = 51
	// FatorDeducao é a retenção (imposto/taxa) aplicada sobre a parcela mensal
	// da comissão base, nunca sobre o valor cheio.
	FatorDeducao = 0.85
)

var (
	cem          = decimal.NewFromInt(100)
	bonusCartao  = decimal.NewFromInt(BonusCartao)
	fatorDeducao = decimal.NewFromFloat(FatorDeducao)
)

// Entrada reúne os termos financeiros de uma venda no mês consultado.
type Entrada struct {
	PremioLiquido      float64
	PercentualComissao float64
	Forma              FormaPagamento
	ParcelasRaw        string
	JaPago             bool
	TemBonusCartao     bool
	// ParcelasOverride > 0 substitui incondicionalmente a contagem automática
	// (plano de parcelamento definido pelo back-office).
	ParcelasOverride int
	BonusCartaoPago  bool
	PrimeiroMes      bool
}

// Resultado é o desdobramento mensal da comissão de uma venda.
type Resultado struct {
	ValorBase          decimal.Decimal
	ParteBase          decimal.Decimal
	ParteBonus         decimal.Decimal
	ValorMensal        decimal.Decimal
	ValorPendente      decimal.Decimal
	QtdParcelasEfetiva int
}

// QtdParcelasEfetiva resolve quantas parcelas a comissão da venda tem de fato.
// O override do back-office vence qualquer regra; venda já quitada não amortiza
// mais nada; fora isso vale o piso contratual por trilho de pagamento: a
// seguradora só parcela o repasse de cartão de crédito a partir de 7x, débito
// a partir de 5x e boleto a partir de 4x. Cartão bandeirado é sempre repasse
// único, ainda que a apólice esteja parcelada.
func QtdParcelasEfetiva(e Entrada) int {
	if e.ParcelasOverride > 0 {
		return e.ParcelasOverride
	}
	if e.JaPago {
		return 1
	}
	raw := ParseParcelas(e.ParcelasRaw)
	switch e.Forma {
	case CartaoBandeirado:
		return 1
	case CartaoCredito:
		if raw >= 7 {
			return raw
		}
		return 1
	case Debito:
		if raw >= 5 {
			return raw
		}
		return 1
	case Boleto:
		if raw >= 4 {
			return raw
		}
		return 1
	default:
		if raw < 1 {
			return 1
		}
		return raw
	}
}

// Calcular converte os termos da venda no desdobramento mensal de comissão.
// Função pura: mesma Entrada, mesmo Resultado.
func Calcular(e Entrada) Resultado {
	premio := decimal.NewFromFloat(e.PremioLiquido)
	percentual := decimal.NewFromFloat(e.PercentualComissao)
	valorBase := premio.Mul(percentual).Div(cem)

	qtd := QtdParcelasEfetiva(e)
	qtdDec := decimal.NewFromInt(int64(qtd))

	parteBase := valorBase.Div(qtdDec).Mul(fatorDeducao)
	parteBonus := decimal.Zero
	if e.TemBonusCartao {
		parteBonus = bonusCartao.Div(qtdDec)
	}

	pendente := decimal.Zero
	if !basePaga(e) {
		pendente = parteBase
	}
	// O bônus de cartão é um trilho de pagamento independente: fica pendente
	// enquanto não for marcado como pago, mesmo com a comissão base quitada.
	if e.TemBonusCartao && !e.BonusCartaoPago {
		pendente = pendente.Add(parteBonus)
	}

	return Resultado{
		ValorBase:          valorBase,
		ParteBase:          parteBase,
		ParteBonus:         parteBonus,
		ValorMensal:        parteBase.Add(parteBonus),
		ValorPendente:      pendente,
		QtdParcelasEfetiva: qtd,
	}
}

// basePaga decide se a parcela base do mês consultado já foi confirmada.
// Sem plano de parcelamento, o flag global quita tudo. Com plano, o flag
// global só cobre o primeiro mês (a parcela quitada antes da ativação);
// as demais são controladas parcela a parcela pelo relatório.
func basePaga(e Entrada) bool {
	if !e.JaPago {
		return false
	}
	if e.ParcelasOverride > 0 {
		return e.PrimeiroMes
	}
	return true
}
