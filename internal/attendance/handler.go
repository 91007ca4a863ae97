package attendance

import (
	"context"
	"net/http"

	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/datatype"
	"github.com/frahmantamala/hr-management/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	List(ctx context.Context) ([]Record, error)
	Find(ctx context.Context, key string) ([]Record, error)
	Get(ctx context.Context, employeeID, date string) (*Record, error)
	Create(ctx context.Context, dto RecordDTO) (*CreatedResponse, error)
	UpdateByEmployee(ctx context.Context, employeeID string, dto UpdateDTO) (*MessageResponse, error)
	Update(ctx context.Context, employeeID, date string, dto UpdateDTO) (*MessageResponse, error)
	Delete(ctx context.Context, employeeID, date string) (*MessageResponse, error)
	CheckIn(ctx context.Context, employeeID string) (*Record, error)
	CheckOut(ctx context.Context, employeeID string) (*Record, error)
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

// dayParams reads {id_employee}/{date}, answering 400 on a malformed date.
func (h *Handler) dayParams(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	date := chi.URLParam(r, "date")
	if !datatype.IsDate(date) {
		h.WriteAppError(w, errors.NewValidationError("Invalid date format. Use YYYY-MM-DD.", errors.ErrCodeInvalidDate))
		return "", "", false
	}
	return chi.URLParam(r, "id_employee"), date, true
}

func (h *Handler) caller(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := errors.EmployeeIDFromContext(r.Context())
	if id == "" {
		h.WriteAppError(w, errors.NewUnauthorizedError("authentication required", errors.ErrCodeInvalidToken))
		return "", false
	}
	return id, true
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Service.List(r.Context())
	h.respond(w, http.StatusOK, recs, err)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Service.Find(r.Context(), chi.URLParam(r, "key"))
	h.respond(w, http.StatusOK, recs, err)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto RecordDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	res, err := h.Service.Create(r.Context(), dto)
	h.respond(w, http.StatusCreated, res, err)
}

func (h *Handler) UpdateByEmployee(w http.ResponseWriter, r *http.Request) {
	var dto UpdateDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	res, err := h.Service.UpdateByEmployee(r.Context(), chi.URLParam(r, "id_employee"), dto)
	h.respond(w, http.StatusOK, res, err)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	employeeID, date, ok := h.dayParams(w, r)
	if !ok {
		return
	}
	rec, err := h.Service.Get(r.Context(), employeeID, date)
	h.respond(w, http.StatusOK, rec, err)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	employeeID, date, ok := h.dayParams(w, r)
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
	employeeID, date, ok := h.dayParams(w, r)
	if !ok {
		return
	}
	res, err := h.Service.Delete(r.Context(), employeeID, date)
	h.respond(w, http.StatusOK, res, err)
}

func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	id, ok := h.caller(w, r)
	if !ok {
		return
	}
	rec, err := h.Service.CheckIn(r.Context(), id)
	h.respond(w, http.StatusOK, rec, err)
}

func (h *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	id, ok := h.caller(w, r)
	if !ok {
		return
	}
	rec, err := h.Service.CheckOut(r.Context(), id)
	h.respond(w, http.StatusOK, rec, err)
}
