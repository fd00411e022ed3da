package relatorio

// TipoLinha classifica cada linha do relatório mensal. Exatamente um tipo
// se aplica por linha; combinações de booleanos não existem aqui.
type TipoLinha string

const (
	// TipoRegular é o primeiro (ou único) mês de comissão da venda.
	TipoRegular TipoLinha = "Regular"
	// TipoParcelado é o mês N de M de uma comissão amortizada.
	TipoParcelado TipoLinha = "Parcelado"
	// TipoPendentePassado é a venda de parcela única que segue sem quitação
	// em mês posterior ao da sua parcela nominal.
	TipoPendentePassado TipoLinha = "PendentePassado"
	// TipoSomenteBonus é o resíduo de bônus de cartão de uma venda já quitada.
	TipoSomenteBonus TipoLinha = "SomenteBonus"
	// TipoGestor é o trilho independente da comissão de gestão (CPG).
	TipoGestor TipoLinha = "Gestor"
)

// LinhaRelatorio é uma linha da apuração mensal, pronta para a tabela e
// para a exportação.
type LinhaRelatorio struct {
	VendaID       uint      `json:"vendaId"`
	ColaboradorID uint      `json:"colaboradorId"`
	Colaborador   string    `json:"colaborador"`
	Segurado      string    `json:"segurado"`
	Tipo          TipoLinha `json:"tipo"`

	ParcelaAtual int `json:"parcelaAtual"` // 1-based
	QtdParcelas  int `json:"qtdParcelas"`

	PremioLiquido      float64 `json:"premioLiquido"`
	PercentualComissao float64 `json:"percentualComissao"`
	ValorBase          float64 `json:"valorBase"`
	ParteBase          float64 `json:"parteBase"`
	ParteBonus         float64 `json:"parteBonus"`
	ValorMensal        float64 `json:"valorMensal"`
	ValorPendente      float64 `json:"valorPendente"`

	ParcelaPaga bool `json:"parcelaPaga"`
	PrimeiroMes bool `json:"primeiroMes"`
}

// Relatorio é a apuração completa de uma competência.
type Relatorio struct {
	Competencia string           `json:"competencia"`
	Linhas      []LinhaRelatorio `json:"linhas"`

	TotalMes      float64 `json:"totalMes"`
	TotalPendente float64 `json:"totalPendente"`

	// Nomes de colaborador que não resolvem para nenhum cadastro: falha de
	// qualidade de dados dos registros legados, alertada via webhook.
	ColaboradoresOrfaos []string `json:"colaboradoresOrfaos,omitempty"`
}
