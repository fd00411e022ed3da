package colaborador

import (
	"github.com/PrimaSeguros/api-corretora/internal/venda"
	"gorm.io/gorm"
)

// Colaborador é um vendedor da corretora. As vendas apontam para cá por
// chave estrangeira; o nome solto dos registros legados fica em venda.
type Colaborador struct {
	gorm.Model
	Nome                  string        `json:"nome"`
	Sobrenome             string        `json:"sobrenome"`
	CPF                   string        `json:"cpf" gorm:"unique"`
	Email                 string        `json:"email" gorm:"unique"`
	Telefone              string        `json:"telefone"`
	Foto                  string        `json:"foto"`
	Senha                 string        `json:"-"`
	IsAdmin               bool          `json:"isAdmin"`
	PrecisaRedefinirSenha bool          `json:"-"`
	Vendas                []venda.Venda `gorm:"foreignKey:ColaboradorID" json:"vendas,omitempty"`
}

// NomeCompleto devolve "Nome Sobrenome" para exibição e exportação.
func (c *Colaborador) NomeCompleto() string {
	if c.Sobrenome == "" {
		return c.Nome
	}
	return c.Nome + " " + c.Sobrenome
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Colaborador{})
}
