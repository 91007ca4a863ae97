package payroll

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/frahmantamala/hr-management/internal/transport"
)

type ServiceAPI interface {
	ListPayments(ctx context.Context, f PaymentFilter) (query.Result[PaymentView], error)
	GetPayment(ctx context.Context, id string) (*hr.Payment, error)
	CreatePayment(ctx context.Context, dto PaymentDTO) (*hr.Payment, error)
	UpdatePayment(ctx context.Context, id string, dto PaymentDTO) (*hr.Payment, error)
	DeletePayment(ctx context.Context, id string) error
	Payslip(ctx context.Context, paymentID string) (*Payslip, error)

	ListSalaries(ctx context.Context, f SalaryFilter) (query.Result[SalaryView], error)
	GetSalary(ctx context.Context, id string) (*hr.SalaryHistory, error)
	CreateSalary(ctx context.Context, dto SalaryDTO) (*hr.SalaryHistory, error)
	UpdateSalary(ctx context.Context, id string, dto SalaryDTO) (*hr.SalaryHistory, error)
	DeleteSalary(ctx context.Context, id string) error

	ListBonuses(ctx context.Context, f BonusFilter) (query.Result[hr.Bonus], error)
	GetBonus(ctx context.Context, id string) (*hr.Bonus, error)
	CreateBonus(ctx context.Context, dto BonusDTO) (*hr.Bonus, error)
	UpdateBonus(ctx context.Context, id string, dto BonusDTO) (*hr.Bonus, error)
	DeleteBonus(ctx context.Context, id string) error

	ListDeductions(ctx context.Context, f DeductionFilter) (query.Result[DeductionView], error)
	GetDeduction(ctx context.Context, id string) (*hr.Deduction, error)
	CreateDeduction(ctx context.Context, dto DeductionDTO) (*hr.Deduction, error)
	UpdateDeduction(ctx context.Context, id string, dto DeductionDTO) (*hr.Deduction, error)
	DeleteDeduction(ctx context.Context, id string) error
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

func param(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// respond writes v, or the error when err is set.
func (h *Handler) respond(w http.ResponseWriter, status int, v interface{}, err error) {
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, status, v)
}

func (h *Handler) withID(w http.ResponseWriter, r *http.Request, fn func(id string) (interface{}, error)) {
	id, ok := h.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	v, err := fn(id)
	h.respond(w, http.StatusOK, v, err)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id string) error) {
	id, ok := h.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	if err := fn(r.Context(), id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	res, err := h.Service.ListPayments(r.Context(), PaymentFilter{
		ListParams: query.FromRequest(r, query.DefaultLimit),
		EmployeeID: param(r, "id_employee"),
	})
	h.respond(w, http.StatusOK, res, err)
}

func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, func(id string) (interface{}, error) { return h.Service.GetPayment(r.Context(), id) })
}

func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var dto PaymentDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	m, err := h.Service.CreatePayment(r.Context(), dto)
	h.respond(w, http.StatusCreated, m, err)
}

func (h *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	var dto PaymentDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	m, err := h.Service.UpdatePayment(r.Context(), id, dto)
	h.respond(w, http.StatusOK, m, err)
}

func (h *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, h.Service.DeletePayment)
}

// Payslip streams the payment as a PDF attachment.
func (h *Handler) Payslip(w http.ResponseWriter, r *http.Request) {
	id, ok := h.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	slip, err := h.Service.Payslip(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := WritePayslip(&buf, slip); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="payslip-`+id+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) ListSalaries(w http.ResponseWriter, r *http.Request) {
	res, err := h.Service.ListSalaries(r.Context(), SalaryFilter{
		ListParams: query.FromRequest(r, query.DefaultLimit),
		ContractID: param(r, "id_contract"),
		EmployeeID: param(r, "id_employee"),
	})
	h.respond(w, http.StatusOK, res, err)
}

func (h *Handler) GetSalary(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, func(id string) (interface{}, error) { return h.Service.GetSalary(r.Context(), id) })
}

func (h *Handler) CreateSalary(w http.ResponseWriter, r *http.Request) {
	var dto SalaryDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	m, err := h.Service.CreateSalary(r.Context(), dto)
	h.respond(w, http.StatusCreated, m, err)
}

func (h *Handler) UpdateSalary(w http.ResponseWriter, r *http.Request) {
	id, ok := h.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	var dto SalaryDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	m, err := h.Service.UpdateSalary(r.Context(), id, dto)
	h.respond(w, http.StatusOK, m, err)
}

func (h *Handler) DeleteSalary(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, h.Service.DeleteSalary)
}

func (h *Handler) ListBonuses(w http.ResponseWriter, r *http.Request) {
	res, err := h.Service.ListBonuses(r.Context(), BonusFilter{
		ListParams: query.FromRequest(r, query.DefaultLimit),
		PaymentID:  param(r, "id_payment"),
	})
	h.respond(w, http.StatusOK, res, err)
}

func (h *Handler) GetBonus(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, func(id string) (interface{}, error) { return h.Service.GetBonus(r.Context(), id) })
}

func (h *Handler) CreateBonus(w http.ResponseWriter, r *http.Request) {
	var dto BonusDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	m, err := h.Service.CreateBonus(r.Context(), dto)
	h.respond(w, http.StatusCreated, m, err)
}

func (h *Handler) UpdateBonus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	var dto BonusDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	m, err := h.Service.UpdateBonus(r.Context(), id, dto)
	h.respond(w, http.StatusOK, m, err)
}

func (h *Handler) DeleteBonus(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, h.Service.DeleteBonus)
}

func (h *Handler) ListDeductions(w http.ResponseWriter, r *http.Request) {
	res, err := h.Service.ListDeductions(r.Context(), DeductionFilter{
		ListParams: query.FromRequest(r, query.DefaultLimit),
		PaymentID:  param(r, "id_payment"),
		EmployeeID: param(r, "id_employee"),
	})
	h.respond(w, http.StatusOK, res, err)
}

func (h *Handler) GetDeduction(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, func(id string) (interface{}, error) { return h.Service.GetDeduction(r.Context(), id) })
}

func (h *Handler) CreateDeduction(w http.ResponseWriter, r *http.Request) {
	var dto DeductionDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	m, err := h.Service.CreateDeduction(r.Context(), dto)
	h.respond(w, http.StatusCreated, m, err)
}

func (h *Handler) UpdateDeduction(w http.ResponseWriter, r *http.Request) {
	id, ok := h.UUIDParam(w, r, "id")
	if !ok {
		return
	}
	var dto DeductionDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	m, err := h.Service.UpdateDeduction(r.Context(), id, dto)
	h.respond(w, http.StatusOK, m, err)
}

func (h *Handler) DeleteDeduction(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, h.Service.DeleteDeduction)
}
