package anotacao

import "gorm.io/gorm"

// Anotacao é uma nota do back-office sobre uma venda (cobrança, contato com
// o segurado, pendência de documentação).
type Anotacao struct {
	gorm.Model
	Texto   string `json:"texto"`
	VendaID uint   `gorm:"not null;index" json:"vendaId"`
	AutorID uint   `json:"autorId"`
	Sistema bool   `json:"sistema"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Anotacao{})
}
