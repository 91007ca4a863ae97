package extrahours

import (
	"context"
	"net/http"

	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/datatype"
	"github.com/frahmantamala/hr-management/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	List(ctx context.Context) ([]Entry, error)
	Find(ctx context.Context, key string) ([]Entry, error)
	Get(ctx context.Context, employeeID, date string) (*Entry, error)
	Create(ctx context.Context, dto EntryDTO) (*CreatedResponse, error)
	Update(ctx context.Context, employeeID, date string, dto UpdateDTO) (*MessageResponse, error)
	Delete(ctx context.Context, employeeID, date string) (*MessageResponse, error)
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

// day reads the {id_employee}/{date} pair; it writes the 400 itself.
func (h *Handler) day(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	date := chi.URLParam(r, "date")
	if !datatype.IsDate(date) {
		h.WriteAppError(w, errors.NewValidationError("Invalid date format. Use YYYY-MM-DD.", errors.ErrCodeInvalidDate))
		return "", "", false
	}
	return chi.URLParam(r, "id_employee"), date, true
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.List(r.Context())
	h.respond(w, http.StatusOK, out, err)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.Find(r.Context(), chi.URLParam(r, "key"))
	h.respond(w, http.StatusOK, out, err)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto EntryDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	res, err := h.Service.Create(r.Context(), dto)
	h.respond(w, http.StatusCreated, res, err)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	employeeID, date, ok := h.day(w, r)
	if !ok {
		return
	}
	e, err := h.Service.Get(r.Context(), employeeID, date)
	h.respond(w, http.StatusOK, e, err)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	employeeID, date, ok := h.day(w, r)
	if !ok {
		return
	}
	var dto UpdateDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	res, err := h.Service.Update(r.Context(), employeeID, date, dto)
	h.respond(w, http.StatusOK, res, err)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID, date, ok := h.day(w, r)
	if !ok {
		return
	}
	res, err := h.Service.Delete(r.Context(), employeeID, date)
	h.respond(w, http.StatusOK, res, err)
}
