package anotacao

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/PrimaSeguros/api-corretora/internal/auth"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula o DB e o Repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler cria um novo handler de anotações
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// CriarAnotacaoRequest define o corpo da requisição para criar uma anotação.
type CriarAnotacaoRequest struct {
	Texto   string `json:"texto"`
	Sistema bool   `json:"sistema,omitempty"`
}

// Criar trata POST /vendas/{id}/anotacoes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	vendaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}

	var req CriarAnotacaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.Texto == "" {
		http.Error(w, "O campo 'texto' é obrigatório", http.StatusBadRequest)
		return
	}

	var autorID uint
	if !req.Sistema {
		if v := r.Context().Value(auth.UsuarioIDKey); v != nil {
			autorID, _ = v.(uint)
		}
	}

	a := Anotacao{
		Texto:   req.Texto,
		VendaID: uint(vendaID),
		AutorID: autorID,
		Sistema: req.Sistema,
	}
	if err := h.Repository.Criar(h.DB, &a); err != nil {
		http.Error(w, "Erro ao criar anotação", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a)
}

// ListarPorVenda trata GET /vendas/{id}/anotacoes
func (h *Handler) ListarPorVenda(w http.ResponseWriter, r *http.Request) {
	vendaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}

	anotacoes, err := h.Repository.ListarPorVenda(h.DB, uint(vendaID))
	if err != nil {
		http.Error(w, "Erro ao buscar anotações", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(anotacoes)
}

// Atualizar trata PUT /anotacoes/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req CriarAnotacaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Texto == "" {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Atualizar(h.DB, uint(id), req.Texto); err != nil {
		http.Error(w, "Erro ao atualizar anotação", http.StatusInternalServerError)
		return
	}

	a, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Anotação não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}

// Remover trata DELETE /anotacoes/{id}
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Remover(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao remover anotação", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
