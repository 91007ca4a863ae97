package payroll

import (
	"context"

	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/shopspring/decimal"
)

const (
	PermViewAllPayments = "view_all_payments"
	PermViewPayment     = "view_payment"
	PermCreatePayment   = "create_payment"
	PermUpdatePayment   = "update_payment"
	PermDeletePayment   = "delete_payment"

	PermViewAllSalaryHistory = "view_all_salary_history"
	PermViewSalaryHistory    = "view_salary_history"
	PermCreateSalaryHistory  = "create_salary_history"
	PermUpdateSalaryHistory  = "update_salary_history"
	PermDeleteSalaryHistory  = "delete_salary_history"

	PermViewAllBonuses = "view_all_bonuses"
	PermViewBonus      = "view_bonus"
	PermCreateBonus    = "create_bonus"
	PermUpdateBonus    = "update_bonus"
	PermDeleteBonus    = "delete_bonus"

	PermViewAllDeductions = "view_all_deductions"
	PermViewDeduction     = "view_deduction"
	PermCreateDeduction   = "create_deduction"
	PermUpdateDeduction   = "update_deduction"
	PermDeleteDeduction   = "delete_deduction"
)

var PaymentSorting = query.Sorting{
	Columns: map[string]string{
		"payment_date": "payments.payment_date",
		"amount":       "payments.amount",
		"created_at":   "payments.created_at",
	},
	Default: "payment_date",
}

type PaymentFilter struct {
	query.ListParams
	EmployeeID string
}

type SalaryFilter struct {
	query.ListParams
	ContractID string
	EmployeeID string
}

type BonusFilter struct {
	query.ListParams
	PaymentID string
}

type DeductionFilter struct {
	query.ListParams
	PaymentID  string
	EmployeeID string
}

// PaymentView is a payment with its method name resolved.
type PaymentView struct {
	hr.Payment
	PaymentMethodName string `json:"payment_method_name"`
}

type SalaryView struct {
	hr.SalaryHistory
	EmployeeID string `gorm:"column:id_employee" json:"id_employee"`
}

type DeductionView struct {
	hr.Deduction
	EmployeeID string `gorm:"column:id_employee" json:"id_employee"`
}

// Payslip is the data printed on a payment's PDF.
type Payslip struct {
	Payment       hr.Payment
	EmployeeName  string
	Email         string
	PaymentMethod string
	Bonuses       []hr.Bonus
	Deductions    []hr.Deduction
}

// BonusTotal prefers the amount stored on the payment over the sum of bonus rows.
func (p Payslip) BonusTotal() decimal.Decimal {
	if p.Payment.BonusAmount.Valid {
		return p.Payment.BonusAmount.Decimal
	}
	total := decimal.Zero
	for _, b := range p.Bonuses {
		total = total.Add(b.Amount)
	}
	return total
}

func (p Payslip) DeductionTotal() decimal.Decimal {
	if p.Payment.DeductionAmount.Valid {
		return p.Payment.DeductionAmount.Decimal
	}
	total := decimal.Zero
	for _, d := range p.Deductions {
		total = total.Add(d.Amount)
	}
	return total
}

func (p Payslip) Net() decimal.Decimal {
	extra := decimal.Zero
	if p.Payment.ExtraAmount.Valid {
		extra = p.Payment.ExtraAmount.Decimal
	}
	return p.Payment.Amount.Add(extra).Add(p.BonusTotal()).Sub(p.DeductionTotal())
}

type RepositoryAPI interface {
	ListPayments(ctx context.Context, f PaymentFilter) ([]PaymentView, int64, error)
	GetPayment(ctx context.Context, id string) (*hr.Payment, error)
	CreatePayment(ctx context.Context, m *hr.Payment) error
	UpdatePayment(ctx context.Context, m *hr.Payment) error
	DeletePayment(ctx context.Context, id string) error
	Payslip(ctx context.Context, paymentID string) (*Payslip, error)

	ListSalaries(ctx context.Context, f SalaryFilter) ([]SalaryView, int64, error)
	GetSalary(ctx context.Context, id string) (*hr.SalaryHistory, error)
	CreateSalary(ctx context.Context, m *hr.SalaryHistory) error
	UpdateSalary(ctx context.Context, m *hr.SalaryHistory) error
	DeleteSalary(ctx context.Context, id string) error

	ListBonuses(ctx context.Context, f BonusFilter) ([]hr.Bonus, int64, error)
	GetBonus(ctx context.Context, id string) (*hr.Bonus, error)
	CreateBonus(ctx context.Context, m *hr.Bonus) error
	UpdateBonus(ctx context.Context, m *hr.Bonus) error
	DeleteBonus(ctx context.Context, id string) error

	ListDeductions(ctx context.Context, f DeductionFilter) ([]DeductionView, int64, error)
	GetDeduction(ctx context.Context, id string) (*hr.Deduction, error)
	CreateDeduction(ctx context.Context, m *hr.Deduction) error
	UpdateDeduction(ctx context.Context, m *hr.Deduction) error
	DeleteDeduction(ctx context.Context, id string) error
}
