package anotacao

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, a *Anotacao) error
	ListarPorVenda(db *gorm.DB, vendaID uint) ([]Anotacao, error)
	BuscarPorID(db *gorm.DB, id uint) (*Anotacao, error)
	Atualizar(db *gorm.DB, id uint, novoTexto string) error
	Remover(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, a *Anotacao) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) ListarPorVenda(db *gorm.DB, vendaID uint) ([]Anotacao, error) {
	var anotacoes []Anotacao
	err := db.Where("venda_id = ?", vendaID).Order("created_at ASC").Find(&anotacoes).Error
	return anotacoes, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Anotacao, error) {
	var a Anotacao
	err := db.First(&a, id).Error
	return &a, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novoTexto string) error {
	return db.Model(&Anotacao{}).Where("id = ?", id).Update("texto", novoTexto).Error
}

func (r *repositoryImpl) Remover(db *gorm.DB, id uint) error {
	return db.Delete(&Anotacao{}, id).Error
}
