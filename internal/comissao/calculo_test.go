package comissao

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParcelas(t *testing.T) {
	casos := []struct {
		raw  string
		quer int
	}{
		{"6x", 6},
		{"12x sem juros", 12},
		{" 3x", 3},
		{"x", 1},
		{"", 1},
		{"à vista", 1},
		{"0x", 1},
	}
	for _, c := range casos {
		assert.Equal(t, c.quer, ParseParcelas(c.raw), "raw=%q", c.raw)
	}
}

func TestFormaDeTexto(t *testing.T) {
	assert.Equal(t, CartaoBandeirado, FormaDeTexto("Cartão Bandeirado"))
	assert.Equal(t, CartaoCredito, FormaDeTexto("cartão de crédito"))
	assert.Equal(t, Debito, FormaDeTexto("Débito em conta"))
	assert.Equal(t, Boleto, FormaDeTexto("Boleto bancário"))
	assert.Equal(t, Boleto, FormaDeTexto("Fatura"))
	assert.Equal(t, Outros, FormaDeTexto("consórcio"))
}

func TestQtdParcelasEfetivaPisosPorForma(t *testing.T) {
	casos := []struct {
		nome  string
		forma FormaPagamento
		raw   string
		quer  int
	}{
		{"boleto abaixo do piso", Boleto, "3x", 1},
		{"boleto no piso", Boleto, "4x", 4},
		{"boleto acima do piso", Boleto, "6x", 6},
		{"debito abaixo do piso", Debito, "4x", 1},
		{"debito no piso", Debito, "5x", 5},
		{"credito abaixo do piso", CartaoCredito, "6x", 1},
		{"credito no piso", CartaoCredito, "7x", 7},
		{"bandeirado ignora parcelas", CartaoBandeirado, "10x", 1},
		{"outros usa contagem crua", Outros, "3x", 3},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			got := QtdParcelasEfetiva(Entrada{Forma: c.forma, ParcelasRaw: c.raw})
			assert.Equal(t, c.quer, got)
		})
	}
}

func TestQtdParcelasEfetivaOverrideEQuitacao(t *testing.T) {
	// Override vence o piso do trilho, inclusive no bandeirado.
	got := QtdParcelasEfetiva(Entrada{Forma: CartaoBandeirado, ParcelasRaw: "10x", ParcelasOverride: 6})
	assert.Equal(t, 6, got)

	// Venda quitada não amortiza mais.
	got = QtdParcelasEfetiva(Entrada{Forma: Boleto, ParcelasRaw: "6x", JaPago: true})
	assert.Equal(t, 1, got)

	// Mas o override ainda vence o flag de quitação.
	got = QtdParcelasEfetiva(Entrada{Forma: Boleto, ParcelasRaw: "6x", JaPago: true, ParcelasOverride: 4})
	assert.Equal(t, 4, got)
}

func TestCalcularExemploBoleto5x(t *testing.T) {
	// Prêmio R$1000, comissão 20%, boleto 5x: parcela = (1000*0,20/5)*0,85 = R$34,00.
	r := Calcular(Entrada{
		PremioLiquido:      1000,
		PercentualComissao: 20,
		Forma:              Boleto,
		ParcelasRaw:        "5x",
	})
	require.Equal(t, 5, r.QtdParcelasEfetiva)
	assert.Equal(t, "200", r.ValorBase.String())
	assert.Equal(t, "34.00", r.ParteBase.StringFixed(2))
	assert.True(t, r.ParteBonus.IsZero())
	assert.Equal(t, "34.00", r.ValorPendente.StringFixed(2))
}

func TestCalcularTotalAmortizadoReconstroiBase(t *testing.T) {
	r := Calcular(Entrada{
		PremioLiquido:      937.43,
		PercentualComissao: 17.5,
		Forma:              CartaoCredito,
		ParcelasRaw:        "9x",
	})
	require.Equal(t, 9, r.QtdParcelasEfetiva)
	total := r.ParteBase.Mul(decimal.NewFromInt(9))
	quer := r.ValorBase.Mul(decimal.NewFromFloat(FatorDeducao))
	assert.True(t, total.Sub(quer).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"total amortizado %s difere da base com dedução %s", total, quer)
}

func TestCalcularBonusDivideComOverride(t *testing.T) {
	// Bandeirado sem override: parcela única, bônus integral no mês.
	r := Calcular(Entrada{
		PremioLiquido:      500,
		PercentualComissao: 10,
		Forma:              CartaoBandeirado,
		ParcelasRaw:        "10x",
		TemBonusCartao:     true,
	})
	require.Equal(t, 1, r.QtdParcelasEfetiva)
	assert.Equal(t, "51.00", r.ParteBonus.StringFixed(2))

	// Com override de 3 parcelas o mesmo denominador vale para o bônus.
	r = Calcular(Entrada{
		PremioLiquido:      500,
		PercentualComissao: 10,
		Forma:              CartaoBandeirado,
		ParcelasRaw:        "10x",
		TemBonusCartao:     true,
		ParcelasOverride:   3,
	})
	require.Equal(t, 3, r.QtdParcelasEfetiva)
	assert.Equal(t, "17.00", r.ParteBonus.StringFixed(2))
}

func TestCalcularPendenciaDesacoplada(t *testing.T) {
	// Base quitada, bônus não: só o bônus fica pendente.
	r := Calcular(Entrada{
		PremioLiquido:      1000,
		PercentualComissao: 20,
		Forma:              CartaoBandeirado,
		ParcelasRaw:        "1x",
		JaPago:             true,
		TemBonusCartao:     true,
	})
	assert.Equal(t, "51.00", r.ValorPendente.StringFixed(2))

	// Bônus quitado, base não: só a base fica pendente.
	r = Calcular(Entrada{
		PremioLiquido:      1000,
		PercentualComissao: 20,
		Forma:              CartaoBandeirado,
		ParcelasRaw:        "1x",
		TemBonusCartao:     true,
		BonusCartaoPago:    true,
	})
	assert.Equal(t, r.ParteBase.StringFixed(2), r.ValorPendente.StringFixed(2))
}

func TestCalcularPendenciaSobPlanoParcelado(t *testing.T) {
	base := Entrada{
		PremioLiquido:      1200,
		PercentualComissao: 10,
		Forma:              Boleto,
		ParcelasRaw:        "2x",
		JaPago:             true,
		ParcelasOverride:   4,
	}

	// Sob plano, o flag global de quitação só cobre o primeiro mês.
	primeira := base
	primeira.PrimeiroMes = true
	r := Calcular(primeira)
	assert.True(t, r.ValorPendente.IsZero())

	r = Calcular(base)
	assert.Equal(t, r.ParteBase.StringFixed(2), r.ValorPendente.StringFixed(2))
}

func TestMultiplicadorFaixa(t *testing.T) {
	assert.Equal(t, "0.1", MultiplicadorFaixa(0).String())
	assert.Equal(t, "0.1", MultiplicadorFaixa(20).String())
	assert.Equal(t, "0.15", MultiplicadorFaixa(21).String())
	assert.Equal(t, "0.15", MultiplicadorFaixa(30).String())
	assert.Equal(t, "0.2", MultiplicadorFaixa(31).String())
}
