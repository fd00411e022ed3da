package exportacao

import (
	"fmt"
	"net/http"
	"time"

	"github.com/PrimaSeguros/api-corretora/internal/colaborador"
	"github.com/PrimaSeguros/api-corretora/internal/relatorio"
	"github.com/PrimaSeguros/api-corretora/internal/venda"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia a exportação de planilhas do relatório mensal.
type Handler struct {
	Vendas        *venda.Repository
	Colaboradores colaborador.Repository
	DB            *gorm.DB
}

// NewHandler cria um novo Handler.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Vendas:        venda.NewRepository(db),
		Colaboradores: colaborador.NewRepository(),
		DB:            db,
	}
}

// Exportar trata GET /relatorios/{competencia}/exportar.
func (h *Handler) Exportar(w http.ResponseWriter, r *http.Request) {
	comp, err := relatorio.ParseCompetencia(mux.Vars(r)["competencia"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	vendas, err := h.Vendas.ListarTodas()
	if err != nil {
		http.Error(w, "Erro ao buscar vendas", http.StatusInternalServerError)
		return
	}
	nomes, err := h.Colaboradores.MapaDeNomes(h.DB)
	if err != nil {
		http.Error(w, "Erro ao buscar colaboradores", http.StatusInternalServerError)
		return
	}

	rel := relatorio.MontarRelatorio(vendas, nomes, comp, time.Now())

	f, err := GerarPlanilha(rel)
	if err != nil {
		http.Error(w, "Erro ao montar planilha", http.StatusInternalServerError)
		return
	}

	fileName := fmt.Sprintf("comissoes_%s.xlsx", comp.String())
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(w); err != nil {
		http.Error(w, "Erro ao gravar planilha", http.StatusInternalServerError)
	}
}
