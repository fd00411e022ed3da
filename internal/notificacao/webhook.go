package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
)

// EnviarAlertaColaboradorOrfao avisa o canal de operações que um relatório
// encontrou vendas apontando para um nome de colaborador sem cadastro.
// Falha de entrega é registrada e engolida: alerta nunca derruba o relatório.
func EnviarAlertaColaboradorOrfao(nome string) {
	url := os.Getenv("WEBHOOK_ALERTA_URL")
	if url == "" {
		return
	}

	payload := map[string]string{
		"mensagem":    "Alerta: vendas vinculadas a colaborador sem cadastro",
		"colaborador": nome,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}
