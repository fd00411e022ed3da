// internal/venda/repository.go
package venda

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrLimiteParcelas indica tentativa de registrar mais parcelas pagas do que
// a quantidade efetiva da venda.
var ErrLimiteParcelas = errors.New("todas as parcelas desta venda já foram pagas")

// Repository encapsula o acesso a dados de Vendas.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

/* ========================= CRUD básico ========================= */

// Create insere uma nova venda.
func (r *Repository) Create(v *Venda) error {
	return r.DB.Create(v).Error
}

// FindByID busca uma venda pelo ID.
func (r *Repository) FindByID(id uint) (*Venda, error) {
	var v Venda
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// ListarTodas devolve todas as vendas ordenadas pelo início de vigência.
func (r *Repository) ListarTodas() ([]Venda, error) {
	var vendas []Venda
	err := r.DB.Order("inicio_vigencia ASC").Find(&vendas).Error
	return vendas, err
}

// ListarPorColaborador devolve as vendas de um colaborador.
func (r *Repository) ListarPorColaborador(colaboradorID uint) ([]Venda, error) {
	var vendas []Venda
	err := r.DB.
		Where("colaborador_id = ?", colaboradorID).
		Order("inicio_vigencia ASC").
		Find(&vendas).Error
	return vendas, err
}

// Update atualiza todos os campos de uma venda existente (Save exige PK).
func (r *Repository) Update(v *Venda) error {
	return r.DB.Save(v).Error
}

// DeleteByID apaga a venda; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeleteByID(id uint) error {
	res := r.DB.Delete(&Venda{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

/* ==================== Ações do back-office ==================== */

// MarcarPago registra a quitação da comissão base e a data do pagamento.
func (r *Repository) MarcarPago(id uint, dataPagamento time.Time) error {
	return r.DB.Model(&Venda{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"pago":           true,
			"data_pagamento": &dataPagamento,
		}).Error
}

// DefinirPlanoParcelado ativa o plano manual de parcelamento, que passa a
// ancorar a contagem de meses na data de ativação em vez do início de vigência.
func (r *Repository) DefinirPlanoParcelado(id uint, qtd int, ativacao time.Time) error {
	return r.DB.Model(&Venda{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"plano_parcelado":     true,
			"qtd_parcelas_plano":  qtd,
			"data_ativacao_plano": &ativacao,
			"parcelas_pagas":      0,
		}).Error
}

// RegistrarParcelaPaga incrementa o contador de parcelas pagas, respeitando
// o teto da quantidade efetiva de parcelas.
func (r *Repository) RegistrarParcelaPaga(id uint) (*Venda, error) {
	v, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	limite := v.ParcelasOverride()
	if limite == 0 {
		limite = 1
	}
	if v.ParcelasPagas >= limite {
		return nil, ErrLimiteParcelas
	}
	v.ParcelasPagas++
	if v.ParcelasPagas >= limite {
		agora := time.Now()
		v.Pago = true
		v.DataPagamento = &agora
	}
	if err := r.DB.Save(v).Error; err != nil {
		return nil, err
	}
	return v, nil
}

// MarcarBonusCartaoPago quita o bônus de cartão, trilho independente da base.
func (r *Repository) MarcarBonusCartaoPago(id uint) error {
	return r.DB.Model(&Venda{}).
		Where("id = ?", id).
		Update("bonus_cartao_pago", true).Error
}

// DefinirPagamentoGestor configura o trilho de comissão do gestor (CPG).
func (r *Repository) DefinirPagamentoGestor(id uint, tipo string, qtd int) error {
	if tipo != GestorParcelado {
		tipo = GestorAVista
		qtd = 1
	}
	if qtd <= 0 {
		qtd = 1
	}
	return r.DB.Model(&Venda{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"tem_comissao_gestor":   true,
			"tipo_pagamento_gestor": tipo,
			"qtd_parcelas_gestor":   qtd,
		}).Error
}

// MarcarGestorPago quita o trilho do gestor.
func (r *Repository) MarcarGestorPago(id uint) error {
	return r.DB.Model(&Venda{}).
		Where("id = ?", id).
		Update("gestor_pago", true).Error
}
