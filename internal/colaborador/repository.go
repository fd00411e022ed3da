package colaborador

import (
	"gorm.io/gorm"
)

type Repository interface {
	BuscarPorEmailOuCPF(db *gorm.DB, valor string) (*Colaborador, error)
	Salvar(db *gorm.DB, c *Colaborador) error
	BuscarPorID(db *gorm.DB, id uint) (*Colaborador, error)
	ListarTodos(db *gorm.DB) ([]Colaborador, error)
	MapaDeNomes(db *gorm.DB) (map[uint]string, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Colaborador) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Busca primeiro por e-mail, depois por CPF, para evitar ambiguidade
func (r *repositoryImpl) BuscarPorEmailOuCPF(db *gorm.DB, valor string) (*Colaborador, error) {
	var c Colaborador

	if err := db.Where("email = ?", valor).First(&c).Error; err == nil {
		return &c, nil
	}
	if err := db.Where("cpf = ?", valor).First(&c).Error; err == nil {
		return &c, nil
	}

	return nil, gorm.ErrRecordNotFound
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Colaborador) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Colaborador, error) {
	var c Colaborador
	err := db.Preload("Vendas").First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Colaborador, error) {
	var colaboradores []Colaborador
	err := db.Preload("Vendas").Find(&colaboradores).Error
	return colaboradores, err
}

// MapaDeNomes devolve id -> nome completo, usado pelo relatório para resolver
// o vínculo de cada venda sem agrupar por string solta.
func (r *repositoryImpl) MapaDeNomes(db *gorm.DB) (map[uint]string, error) {
	var colaboradores []Colaborador
	if err := db.Find(&colaboradores).Error; err != nil {
		return nil, err
	}
	nomes := make(map[uint]string, len(colaboradores))
	for i := range colaboradores {
		nomes[colaboradores[i].ID] = colaboradores[i].NomeCompleto()
	}
	return nomes, nil
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Colaborador) error {
	var existente Colaborador
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Sobrenome = novosDados.Sobrenome
	existente.CPF = novosDados.CPF
	existente.Email = novosDados.Email
	existente.Telefone = novosDados.Telefone
	existente.Foto = novosDados.Foto

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Colaborador{}, id).Error
}
