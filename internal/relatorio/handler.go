package relatorio

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/PrimaSeguros/api-corretora/internal/colaborador"
	"github.com/PrimaSeguros/api-corretora/internal/notificacao"
	"github.com/PrimaSeguros/api-corretora/internal/venda"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia rotas de relatório mensal.
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

// carregar monta o relatório da competência pedida na rota, com filtro
// opcional por colaborador.
func (h *Handler) carregar(r *http.Request) (Relatorio, int, string) {
	comp, err := ParseCompetencia(mux.Vars(r)["competencia"])
	if err != nil {
		return Relatorio{}, http.StatusBadRequest, err.Error()
	}

	var (
		vendas []venda.Venda
		vErr   error
	)
	if q := r.URL.Query().Get("colaboradorId"); q != "" {
		cid, convErr := strconv.Atoi(q)
		if convErr != nil {
			return Relatorio{}, http.StatusBadRequest, "colaboradorId inválido"
		}
		vendas, vErr = h.Vendas.ListarPorColaborador(uint(cid))
	} else {
		vendas, vErr = h.Vendas.ListarTodas()
	}
	if vErr != nil {
		return Relatorio{}, http.StatusInternalServerError, "Erro ao buscar vendas"
	}

	nomes, nErr := h.Colaboradores.MapaDeNomes(h.DB)
	if nErr != nil {
		return Relatorio{}, http.StatusInternalServerError, "Erro ao buscar colaboradores"
	}

	rel := MontarRelatorio(vendas, nomes, comp, time.Now())

	// Nomes órfãos são falha de qualidade de dados: alerta assíncrono, o
	// relatório segue normalmente.
	for _, nome := range rel.ColaboradoresOrfaos {
		go notificacao.EnviarAlertaColaboradorOrfao(nome)
	}

	return rel, http.StatusOK, ""
}

// Mensal trata GET /relatorios/{competencia}.
func (h *Handler) Mensal(w http.ResponseWriter, r *http.Request) {
	rel, status, msg := h.carregar(r)
	if status != http.StatusOK {
		http.Error(w, msg, status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rel)
}
