package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/PrimaSeguros/api-corretora/internal/anotacao"
	"github.com/PrimaSeguros/api-corretora/internal/auth"
	"github.com/PrimaSeguros/api-corretora/internal/colaborador"
	"github.com/PrimaSeguros/api-corretora/internal/exportacao"
	"github.com/PrimaSeguros/api-corretora/internal/relatorio"
	"github.com/PrimaSeguros/api-corretora/internal/utils/db"
	"github.com/PrimaSeguros/api-corretora/internal/venda"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente.
	_ = godotenv.Load()

	conn, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := conn.AutoMigrate(
		&colaborador.Colaborador{},
		&venda.Venda{},
		&anotacao.Anotacao{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Handlers
	colaboradorHandler := colaborador.NewHandler(conn)
	vendaHandler := venda.NewHandler(venda.NewRepository(conn))
	relatorioHandler := relatorio.NewHandler(conn)
	exportacaoHandler := exportacao.NewHandler(conn)
	anotacaoHandler := anotacao.NewHandler(conn)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", colaboradorHandler.Login).Methods("POST")
	r.HandleFunc("/colaboradores", colaboradorHandler.CriarColaborador).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de colaboradores
	api.HandleFunc("/colaboradores", colaboradorHandler.ListarColaboradores).Methods("GET")
	api.HandleFunc("/colaboradores/me", colaboradorHandler.Me).Methods("GET")
	api.HandleFunc("/colaboradores/{id}", colaboradorHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/colaboradores/{id}", colaboradorHandler.AtualizarColaborador).Methods("PUT")
	api.HandleFunc("/colaboradores/{id}", colaboradorHandler.DeletarColaborador).Methods("DELETE")
	api.HandleFunc("/colaboradores/{id}/resumo", colaboradorHandler.ObterResumo).Methods("GET")

	// Rotas de vendas
	api.HandleFunc("/vendas", vendaHandler.Criar).Methods("POST")
	api.HandleFunc("/vendas", vendaHandler.Listar).Methods("GET")
	api.HandleFunc("/vendas/{id}", vendaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/vendas/{id}", vendaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/vendas/{id}", vendaHandler.Deletar).Methods("DELETE")

	// Comandos do back-office sobre a camada de pagamento
	api.HandleFunc("/vendas/{id}/pagamento", vendaHandler.MarcarPago).Methods("PATCH")
	api.HandleFunc("/vendas/{id}/plano-parcelado", vendaHandler.DefinirPlano).Methods("PATCH")
	api.HandleFunc("/vendas/{id}/parcelas-pagas", vendaHandler.PagarParcela).Methods("POST")
	api.HandleFunc("/vendas/{id}/bonus-cartao", vendaHandler.MarcarBonusPago).Methods("PATCH")
	api.HandleFunc("/vendas/{id}/pagamento-gestor", vendaHandler.DefinirGestor).Methods("PATCH")
	api.HandleFunc("/vendas/{id}/pagamento-gestor/quitar", vendaHandler.MarcarGestorPago).Methods("PATCH")

	// Rotas de anotações
	api.HandleFunc("/vendas/{id}/anotacoes", anotacaoHandler.Criar).Methods("POST")
	api.HandleFunc("/vendas/{id}/anotacoes", anotacaoHandler.ListarPorVenda).Methods("GET")
	api.HandleFunc("/anotacoes/{id}", anotacaoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/anotacoes/{id}", anotacaoHandler.Remover).Methods("DELETE")

	// Relatório mensal e exportação
	api.HandleFunc("/relatorios/{competencia}", relatorioHandler.Mensal).Methods("GET")
	api.HandleFunc("/relatorios/{competencia}/exportar", exportacaoHandler.Exportar).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
