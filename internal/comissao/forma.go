package comissao

import "strings"

// FormaPagamento identifica o trilho de cobrança da apólice.
type FormaPagamento string

const (
	CartaoBandeirado FormaPagamento = "CartaoBandeirado"
	CartaoCredito    FormaPagamento = "CartaoCredito"
	Debito           FormaPagamento = "Debito"
	Boleto           FormaPagamento = "Boleto"
	Outros           FormaPagamento = "Outros"
)

// FormaDeTexto normaliza o texto livre de forma de pagamento vindo do CRM.
// Texto irreconhecível cai em Outros, nunca em erro.
func FormaDeTexto(raw string) FormaPagamento {
	s := strings.ToLower(raw)
	switch {
	case strings.Contains(s, "bandeirado"):
		return CartaoBandeirado
	case strings.Contains(s, "credito"), strings.Contains(s, "crédito"):
		return CartaoCredito
	case strings.Contains(s, "debito"), strings.Contains(s, "débito"):
		return Debito
	case strings.Contains(s, "boleto"), strings.Contains(s, "fatura"):
		return Boleto
	default:
		return Outros
	}
}

// ParseParcelas extrai a quantidade de parcelas de strings como "6x" ou
// "12 x sem juros". Se não houver dígito no início, assume 1.
func ParseParcelas(raw string) int {
	s := strings.TrimSpace(raw)
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	if n <= 0 {
		return 1
	}
	return n
}
