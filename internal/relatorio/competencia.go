package relatorio

import (
	"fmt"
	"time"
)

// Competencia é o mês de apuração consultado pelo operador ("AAAA-MM").
type Competencia struct {
	Ano int
	Mes time.Month
}

// ParseCompetencia interpreta o seletor de mês no formato "AAAA-MM".
func ParseCompetencia(s string) (Competencia, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Competencia{}, fmt.Errorf("competência inválida %q: use AAAA-MM", s)
	}
	return Competencia{Ano: t.Year(), Mes: t.Month()}, nil
}

// CompetenciaDe devolve a competência do instante dado.
func CompetenciaDe(t time.Time) Competencia {
	return Competencia{Ano: t.Year(), Mes: t.Month()}
}

// String devolve a competência no formato "AAAA-MM".
func (c Competencia) String() string {
	return fmt.Sprintf("%04d-%02d", c.Ano, int(c.Mes))
}

// MesesDesde conta quantos meses de calendário separam a âncora da competência.
// Negativo quando a âncora ainda está no futuro.
func (c Competencia) MesesDesde(ancora time.Time) int {
	return (c.Ano-ancora.Year())*12 + int(c.Mes) - int(ancora.Month())
}
