package venda

import (
	"time"

	"github.com/PrimaSeguros/api-corretora/internal/comissao"
	"gorm.io/gorm"
)

// Tipos de pagamento da comissão de gestão (CPG).
const (
	GestorAVista    = "AVista"
	GestorParcelado = "Parcelado"
)

// Venda é um lead fechado: termos financeiros imutáveis após o fechamento,
// mais a camada mutável de controle de pagamento mantida pelo back-office.
type Venda struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	// Vínculo com o colaborador. ColaboradorNome sobrevive apenas para
	// registros legados importados sem chave; o relatório resolve o nome
	// e alerta os órfãos em vez de agrupar por string.
	ColaboradorID   uint   `gorm:"index" json:"colaboradorId"`
	ColaboradorNome string `gorm:"size:255" json:"colaboradorNome,omitempty"`

	Segurado   string `gorm:"size:255" json:"segurado"`
	Seguradora string `gorm:"size:255" json:"seguradora"`
	Produto    string `gorm:"size:255" json:"produto"`

	// Termos financeiros, imutáveis depois do fechamento.
	PremioLiquido      float64 `gorm:"not null;default:0" json:"premioLiquido"`
	NovoPremioLiquido  float64 `gorm:"not null;default:0" json:"novoPremioLiquido"`
	Renovacao          bool    `gorm:"not null;default:false" json:"renovacao"`
	PercentualComissao float64 `gorm:"not null;default:0" json:"percentualComissao"`
	FormaPagamento     string  `gorm:"size:100" json:"formaPagamento"`
	ParcelasRaw        string  `gorm:"size:50" json:"parcelas"`
	InicioVigencia     time.Time `json:"inicioVigencia"`
	FimVigencia        time.Time `json:"fimVigencia"`
	TemBonusCartao     bool      `gorm:"not null;default:false" json:"temBonusCartao"`

	// Camada de pagamento (mutável, ações do back-office).
	Pago          bool       `gorm:"not null;default:false" json:"pago"`
	DataPagamento *time.Time `json:"dataPagamento,omitempty"`

	PlanoParcelado    bool       `gorm:"not null;default:false" json:"planoParcelado"`
	QtdParcelasPlano  int        `gorm:"not null;default:0" json:"qtdParcelasPlano"`
	DataAtivacaoPlano *time.Time `json:"dataAtivacaoPlano,omitempty"`
	ParcelasPagas     int        `gorm:"not null;default:0" json:"parcelasPagas"`

	BonusCartaoPago bool `gorm:"not null;default:false" json:"bonusCartaoPago"`

	// Trilho independente da comissão de gestão (CPG), pago a outro favorecido.
	TemComissaoGestor   bool   `gorm:"not null;default:false" json:"temComissaoGestor"`
	GestorPago          bool   `gorm:"not null;default:false" json:"gestorPago"`
	TipoPagamentoGestor string `gorm:"size:50" json:"tipoPagamentoGestor,omitempty"`
	QtdParcelasGestor   int    `gorm:"not null;default:0" json:"qtdParcelasGestor"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Venda{})
}

// PremioEfetivo devolve o prêmio que baseia a comissão: em renovação com novo
// prêmio informado, o novo valor substitui o original.
func (v *Venda) PremioEfetivo() float64 {
	if v.Renovacao && v.NovoPremioLiquido > 0 {
		return v.NovoPremioLiquido
	}
	return v.PremioLiquido
}

// ParcelasOverride devolve a contagem do plano do back-office, ou 0 sem plano.
func (v *Venda) ParcelasOverride() int {
	if v.PlanoParcelado && v.QtdParcelasPlano > 0 {
		return v.QtdParcelasPlano
	}
	return 0
}

// Entrada monta os termos da venda para o cálculo de comissão do mês dado.
func (v *Venda) Entrada(primeiroMes bool) comissao.Entrada {
	return comissao.Entrada{
		PremioLiquido:      v.PremioEfetivo(),
		PercentualComissao: v.PercentualComissao,
		Forma:              comissao.FormaDeTexto(v.FormaPagamento),
		ParcelasRaw:        v.ParcelasRaw,
		JaPago:             v.Pago,
		TemBonusCartao:     v.TemBonusCartao,
		ParcelasOverride:   v.ParcelasOverride(),
		BonusCartaoPago:    v.BonusCartaoPago,
		PrimeiroMes:        primeiroMes,
	}
}

// AncoraComissao devolve a data que indexa os meses de comissão: a ativação do
// plano quando houver, senão o início de vigência da apólice.
func (v *Venda) AncoraComissao() time.Time {
	if v.PlanoParcelado && v.DataAtivacaoPlano != nil && !v.DataAtivacaoPlano.IsZero() {
		return *v.DataAtivacaoPlano
	}
	return v.InicioVigencia
}
