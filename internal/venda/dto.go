// internal/venda/dto.go
package venda

type CriarVendaDTO struct {
	ColaboradorID   uint   `json:"colaboradorId"`
	ColaboradorNome string `json:"colaboradorNome"`

	Segurado   string `json:"segurado"`
	Seguradora string `json:"seguradora"`
	Produto    string `json:"produto"`

	PremioLiquido      float64 `json:"premioLiquido"`
	NovoPremioLiquido  float64 `json:"novoPremioLiquido"`
	Renovacao          bool    `json:"renovacao"`
	PercentualComissao float64 `json:"percentualComissao"`
	FormaPagamento     string  `json:"formaPagamento"`
	Parcelas           string  `json:"parcelas"`
	InicioVigencia     string  `json:"inicioVigencia"`
	FimVigencia        string  `json:"fimVigencia"`
	TemBonusCartao     bool    `json:"temBonusCartao"`
}

// PlanoParceladoDTO ativa o plano de parcelamento manual do back-office.
type PlanoParceladoDTO struct {
	QtdParcelas  int    `json:"qtdParcelas"`
	DataAtivacao string `json:"dataAtivacao"`
}

// PagamentoGestorDTO configura o trilho de comissão do gestor (CPG).
type PagamentoGestorDTO struct {
	Tipo        string `json:"tipo"` // AVista ou Parcelado
	QtdParcelas int    `json:"qtdParcelas"`
}
