package contract

import (
	"context"
	"net/http"

	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/transport"
)

type ServiceAPI interface {
	List(ctx context.Context, p query.ListParams) (ListResponse, error)
	History(ctx context.Context, employeeID string, p query.ListParams) (ListResponse, error)
	Create(ctx context.Context, dto StateChangeDTO) (*CreatedResponse, error)
	Update(ctx context.Context, id string, dto StateChangeDTO) (*Entry, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.List(r.Context(), query.FromRequest(r, query.DefaultLimit))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, result)
}

// History is mounted on /{id} where the id names an employee, not a history row.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	result, err := h.Service.History(r.Context(), employeeID, query.FromRequest(r, query.DefaultLimit))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto StateChangeDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	created, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	var dto StateChangeDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	entry, err := h.Service.Update(r.Context(), id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, entry)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
