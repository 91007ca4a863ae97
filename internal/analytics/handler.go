package analytics

import (
	"context"
	"net/http"

	"github.com/frahmantamala/hr-management/internal/transport"
)

type ServiceAPI interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	Absences(ctx context.Context) ([]Absence, error)
	CurrentMonthPayments(ctx context.Context) ([]MonthPayments, error)
	SalaryByDepartment(ctx context.Context) ([]DepartmentSalary, error)
	EmployeesPerDepartment(ctx context.Context) ([]DepartmentCount, error)
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

func serve[T any](h *Handler, fn func(context.Context) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := fn(r.Context())
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, v)
	}
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	serve(h, h.Service.Dashboard)(w, r)
}

func (h *Handler) Absences(w http.ResponseWriter, r *http.Request) {
	serve(h, h.Service.Absences)(w, r)
}

func (h *Handler) CurrentMonthPayments(w http.ResponseWriter, r *http.Request) {
	serve(h, h.Service.CurrentMonthPayments)(w, r)
}

func (h *Handler) SalaryByDepartment(w http.ResponseWriter, r *http.Request) {
	serve(h, h.Service.SalaryByDepartment)(w, r)
}

func (h *Handler) EmployeesPerDepartment(w http.ResponseWriter, r *http.Request) {
	serve(h, h.Service.EmployeesPerDepartment)(w, r)
}
