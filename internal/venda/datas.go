package venda

import (
	"strings"
	"time"
)

// NormalizarData interpreta as datas que chegam do CRM em formato ambíguo:
// com "/" assume dia/mês/ano, com "-" assume ISO. Quando nada casa, devolve
// o texto original como fallback de exibição e um time zerado; data ruim
// nunca derruba a montagem do relatório.
func NormalizarData(raw string) (time.Time, string) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, raw
	}
	var layouts []string
	switch {
	case strings.Contains(s, "/"):
		layouts = []string{"02/01/2006", "2/1/2006"}
	case strings.Contains(s, "-"):
		layouts = []string{"2006-01-02", time.RFC3339}
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, t.Format("02/01/2006")
		}
	}
	return time.Time{}, raw
}
