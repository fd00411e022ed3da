package colaborador

import (
	"github.com/PrimaSeguros/api-corretora/internal/comissao"
	"github.com/PrimaSeguros/api-corretora/internal/venda"
	"github.com/shopspring/decimal"
)

type ResumoColaboradorDTO struct {
	ID               uint     `json:"id"`
	Nome             string   `json:"nome"`
	Sobrenome        string   `json:"sobrenome"`
	Email            string   `json:"email"`
	CPF              string   `json:"cpf"`
	Telefone         string   `json:"telefone"`
	Foto             string   `json:"foto"`
	VendasFechadas   int      `json:"vendasFechadas"`
	ComissaoRecebida float64  `json:"comissaoRecebida"`
	ComissaoAReceber float64  `json:"comissaoAReceber"`
	Produtos         []string `json:"produtos"`
}

// MontarResumoColaboradorDTO consolida a carteira do colaborador: total de
// vendas fechadas e comissão recebida/a receber, com os dois trilhos (base e
// bônus de cartão) contados separadamente.
func MontarResumoColaboradorDTO(c Colaborador, vendas []venda.Venda) ResumoColaboradorDTO {
	recebida := decimal.Zero
	aReceber := decimal.Zero
	produtosVistos := map[string]bool{}
	var produtos []string

	for i := range vendas {
		v := &vendas[i]
		res := comissao.Calcular(v.Entrada(true))

		total := res.ValorBase.Mul(decimal.NewFromFloat(comissao.FatorDeducao))
		if v.Pago {
			recebida = recebida.Add(total)
		} else {
			aReceber = aReceber.Add(total)
		}
		if v.TemBonusCartao {
			bonus := decimal.NewFromInt(comissao.BonusCartao)
			if v.BonusCartaoPago {
				recebida = recebida.Add(bonus)
			} else {
				aReceber = aReceber.Add(bonus)
			}
		}

		if v.Produto != "" && !produtosVistos[v.Produto] {
			produtosVistos[v.Produto] = true
			produtos = append(produtos, v.Produto)
		}
	}

	recebidaF, _ := recebida.Round(2).Float64()
	aReceberF, _ := aReceber.Round(2).Float64()

	return ResumoColaboradorDTO{
		ID:               c.ID,
		Nome:             c.Nome,
		Sobrenome:        c.Sobrenome,
		Email:            c.Email,
		CPF:              c.CPF,
		Telefone:         c.Telefone,
		Foto:             c.Foto,
		VendasFechadas:   len(vendas),
		ComissaoRecebida: recebidaF,
		ComissaoAReceber: aReceberF,
		Produtos:         produtos,
	}
}
