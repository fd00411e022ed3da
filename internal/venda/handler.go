package venda

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia rotas de vendas.
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler.
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func idDaRota(r *http.Request) (uint, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// Criar trata POST /vendas.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto CriarVendaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	inicio, _ := NormalizarData(dto.InicioVigencia)
	fim, _ := NormalizarData(dto.FimVigencia)

	v := Venda{
		ColaboradorID:      dto.ColaboradorID,
		ColaboradorNome:    dto.ColaboradorNome,
		Segurado:           dto.Segurado,
		Seguradora:         dto.Seguradora,
		Produto:            dto.Produto,
		PremioLiquido:      dto.PremioLiquido,
		NovoPremioLiquido:  dto.NovoPremioLiquido,
		Renovacao:          dto.Renovacao,
		PercentualComissao: dto.PercentualComissao,
		FormaPagamento:     dto.FormaPagamento,
		ParcelasRaw:        dto.Parcelas,
		InicioVigencia:     inicio,
		FimVigencia:        fim,
		TemBonusCartao:     dto.TemBonusCartao,
	}

	if err := h.Repo.Create(&v); err != nil {
		http.Error(w, "Erro ao criar venda", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(v)
}

// Listar trata GET /vendas. Aceita ?colaboradorId= para filtrar.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var (
		vendas []Venda
		err    error
	)
	if q := r.URL.Query().Get("colaboradorId"); q != "" {
		cid, convErr := strconv.Atoi(q)
		if convErr != nil {
			http.Error(w, "colaboradorId inválido", http.StatusBadRequest)
			return
		}
		vendas, err = h.Repo.ListarPorColaborador(uint(cid))
	} else {
		vendas, err = h.Repo.ListarTodas()
	}
	if err != nil {
		http.Error(w, "Erro ao buscar vendas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vendas)
}

// BuscarPorID trata GET /vendas/{id}.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, ok := idDaRota(r)
	if !ok {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}

	v, err := h.Repo.FindByID(id)
	if err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// Atualizar trata PUT /vendas/{id}: edição direta dos termos financeiros.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, ok := idDaRota(r)
	if !ok {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}

	v, err := h.Repo.FindByID(id)
	if err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}

	var dto CriarVendaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	inicio, _ := NormalizarData(dto.InicioVigencia)
	fim, _ := NormalizarData(dto.FimVigencia)

	v.ColaboradorID = dto.ColaboradorID
	v.ColaboradorNome = dto.ColaboradorNome
	v.Segurado = dto.Segurado
	v.Seguradora = dto.Seguradora
	v.Produto = dto.Produto
	v.PremioLiquido = dto.PremioLiquido
	v.NovoPremioLiquido = dto.NovoPremioLiquido
	v.Renovacao = dto.Renovacao
	v.PercentualComissao = dto.PercentualComissao
	v.FormaPagamento = dto.FormaPagamento
	v.ParcelasRaw = dto.Parcelas
	if !inicio.IsZero() {
		v.InicioVigencia = inicio
	}
	if !fim.IsZero() {
		v.FimVigencia = fim
	}
	v.TemBonusCartao = dto.TemBonusCartao

	if err := h.Repo.Update(v); err != nil {
		http.Error(w, "Erro ao atualizar venda", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// Deletar trata DELETE /vendas/{id}.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, ok := idDaRota(r)
	if !ok {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Venda não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao deletar venda", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

/* ==================== Comandos do back-office ==================== */

func (h *Handler) responderVenda(w http.ResponseWriter, id uint) {
	v, err := h.Repo.FindByID(id)
	if err != nil {
		http.Error(w, "Venda não encontrada após atualização", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// MarcarPago trata PATCH /vendas/{id}/pagamento.
func (h *Handler) MarcarPago(w http.ResponseWriter, r *http.Request) {
	id, ok := idDaRota(r)
	if !ok {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}

	var payload struct {
		DataPagamento string `json:"dataPagamento"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	data, _ := NormalizarData(payload.DataPagamento)
	if data.IsZero() {
		data = time.Now()
	}

	if err := h.Repo.MarcarPago(id, data); err != nil {
		http.Error(w, "Erro ao registrar pagamento", http.StatusInternalServerError)
		return
	}
	h.responderVenda(w, id)
}

// DefinirPlano trata PATCH /vendas/{id}/plano-parcelado.
func (h *Handler) DefinirPlano(w http.ResponseWriter, r *http.Request) {
	id, ok := idDaRota(r)
	if !ok {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}

	var dto PlanoParceladoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.QtdParcelas <= 0 {
		http.Error(w, "qtdParcelas deve ser maior que zero", http.StatusBadRequest)
		return
	}
	ativacao, _ := NormalizarData(dto.DataAtivacao)
	if ativacao.IsZero() {
		ativacao = time.Now()
	}

	if err := h.Repo.DefinirPlanoParcelado(id, dto.QtdParcelas, ativacao); err != nil {
		http.Error(w, "Erro ao ativar plano parcelado", http.StatusInternalServerError)
		return
	}
	h.responderVenda(w, id)
}

// PagarParcela trata POST /vendas/{id}/parcelas-pagas.
func (h *Handler) PagarParcela(w http.ResponseWriter, r *http.Request) {
	id, ok := idDaRota(r)
	if !ok {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}

	v, err := h.Repo.RegistrarParcelaPaga(id)
	if err != nil {
		if errors.Is(err, ErrLimiteParcelas) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Venda não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao registrar parcela paga", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// MarcarBonusPago trata PATCH /vendas/{id}/bonus-cartao.
func (h *Handler) MarcarBonusPago(w http.ResponseWriter, r *http.Request) {
	id, ok := idDaRota(r)
	if !ok {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.MarcarBonusCartaoPago(id); err != nil {
		http.Error(w, "Erro ao quitar bônus de cartão", http.StatusInternalServerError)
		return
	}
	h.responderVenda(w, id)
}

// DefinirGestor trata PATCH /vendas/{id}/pagamento-gestor.
func (h *Handler) DefinirGestor(w http.ResponseWriter, r *http.Request) {
	id, ok := idDaRota(r)
	if !ok {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}

	var dto PagamentoGestorDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DefinirPagamentoGestor(id, dto.Tipo, dto.QtdParcelas); err != nil {
		http.Error(w, "Erro ao configurar pagamento do gestor", http.StatusInternalServerError)
		return
	}
	h.responderVenda(w, id)
}

// MarcarGestorPago trata PATCH /vendas/{id}/pagamento-gestor/quitar.
func (h *Handler) MarcarGestorPago(w http.ResponseWriter, r *http.Request) {
	id, ok := idDaRota(r)
	if !ok {
		http.Error(w, "ID de venda inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.MarcarGestorPago(id); err != nil {
		http.Error(w, "Erro ao quitar comissão do gestor", http.StatusInternalServerError)
		return
	}
	h.responderVenda(w, id)
}
