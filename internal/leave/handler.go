package leave

import (
	"context"
	"net/http"
	"strings"

	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/frahmantamala/hr-management/internal/transport"
)

type ServiceAPI interface {
	ListVacations(ctx context.Context, f VacationFilter) (query.Result[VacationView], error)
	GetVacation(ctx context.Context, id string) (*hr.Vacation, error)
	CreateVacation(ctx context.Context, dto VacationDTO) (*hr.Vacation, error)
	UpdateVacation(ctx context.Context, id string, dto VacationDTO) (*hr.Vacation, error)
	DeleteVacation(ctx context.Context, id string) error

	ListAbsences(ctx context.Context, f AbsenceFilter) (query.Result[AbsenceView], error)
	GetAbsence(ctx context.Context, id string) (*hr.AbsenceReason, error)
	CreateAbsence(ctx context.Context, dto AbsenceDTO) (*hr.AbsenceReason, error)
	UpdateAbsence(ctx context.Context, id string, dto AbsenceDTO) (*hr.AbsenceReason, error)
	DeleteAbsence(ctx context.Context, id string) error
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

func (h *Handler) ListVacations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.Service.ListVacations(r.Context(), VacationFilter{
		ListParams:   query.FromRequest(r, query.DefaultLimit),
		DepartmentID: strings.TrimSpace(q.Get("department_id")),
		EmployeeID:   strings.TrimSpace(q.Get("id_employee")),
	})
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) GetVacation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	m, err := h.Service.GetVacation(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) CreateVacation(w http.ResponseWriter, r *http.Request) {
	var dto VacationDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	m, err := h.Service.CreateVacation(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, m)
}

func (h *Handler) UpdateVacation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	var dto VacationDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	m, err := h.Service.UpdateVacation(r.Context(), id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) DeleteVacation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.Service.DeleteVacation(r.Context(), id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListAbsences(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.Service.ListAbsences(r.Context(), AbsenceFilter{
		ListParams:   query.FromRequest(r, query.DefaultLimit),
		EmployeeID:   strings.TrimSpace(q.Get("employee_id")),
		SupervisorID: strings.TrimSpace(q.Get("supervisor_id")),
		SubstituteID: strings.TrimSpace(q.Get("substitute_id")),
	})
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) GetAbsence(w http.ResponseWriter, r *http.Request) {
	id, ok := h.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	m, err := h.Service.GetAbsence(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) CreateAbsence(w http.ResponseWriter, r *http.Request) {
	var dto AbsenceDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	m, err := h.Service.CreateAbsence(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, m)
}

func (h *Handler) UpdateAbsence(w http.ResponseWriter, r *http.Request) {
	id, ok := h.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	var dto AbsenceDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	m, err := h.Service.UpdateAbsence(r.Context(), id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) DeleteAbsence(w http.ResponseWriter, r *http.Request) {
	id, ok := h.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.Service.DeleteAbsence(r.Context(), id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
