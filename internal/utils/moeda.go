package utils

import (
	"fmt"
	"strings"
)

// FormatarMoeda formata um valor em reais no padrão brasileiro: "R$ 1.234,56".
func FormatarMoeda(valor float64) string {
	s := fmt.Sprintf("%.2f", valor)
	negativo := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	partes := strings.SplitN(s, ".", 2)
	inteiro, centavos := partes[0], partes[1]

	var b strings.Builder
	pre := len(inteiro) % 3
	if pre > 0 {
		b.WriteString(inteiro[:pre])
	}
	for i := pre; i < len(inteiro); i += 3 {
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(inteiro[i : i+3])
	}

	prefixo := "R$ "
	if negativo {
		prefixo = "R$ -"
	}
	return prefixo + b.String() + "," + centavos
}
