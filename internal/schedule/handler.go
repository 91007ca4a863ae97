package schedule

import (
	"context"
	"net/http"

	"github.com/frahmantamala/hr-management/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	List(ctx context.Context) ([]Schedule, error)
	Get(ctx context.Context, employeeID string) (*Schedule, error)
	Create(ctx context.Context, dto ScheduleDTO) (*CreatedResponse, error)
	Update(ctx context.Context, employeeID string, dto UpdateDTO) (*MessageResponse, error)
	Delete(ctx context.Context, employeeID string) (*MessageResponse, error)
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

func (h *Handler) respond(w http.ResponseWriter, status int, v interface{}, err error) {
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, status, v)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.List(r.Context())
	h.respond(w, http.StatusOK, out, err)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sc, err := h.Service.Get(r.Context(), chi.URLParam(r, "id_employee"))
	h.respond(w, http.StatusOK, sc, err)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto ScheduleDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	res, err := h.Service.Create(r.Context(), dto)
	h.respond(w, http.StatusCreated, res, err)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var dto UpdateDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	res, err := h.Service.Update(r.Context(), chi.URLParam(r, "id_employee"), dto)
	h.respond(w, http.StatusOK, res, err)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	res, err := h.Service.Delete(r.Context(), chi.URLParam(r, "id_employee"))
	h.respond(w, http.StatusOK, res, err)
}
