package payroll

import (
	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/datatype"
	"github.com/frahmantamala/hr-management/internal/core/common/validation"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/shopspring/decimal"
)

type PaymentDTO struct {
	EmployeeID      string              `json:"id_employee" validate:"required,uuid"`
	SupervisorID    string              `json:"id_employee_supervisor" validate:"required,uuid"`
	PaymentMethodID string              `json:"id_payment_method" validate:"required,uuid"`
	Amount          decimal.Decimal     `json:"amount"`
	PaymentDate     datatype.Date       `json:"payment_date" validate:"required"`
	ExtraAmount     decimal.NullDecimal `json:"extra_amount"`
	DeductionAmount decimal.NullDecimal `json:"deduction_amount"`
	BonusAmount     decimal.NullDecimal `json:"bonus_amount"`
	PaymentNote     *string             `json:"payment_note"`
	Src             *string             `json:"src" validate:"omitempty,max=200"`
}

func (d PaymentDTO) Validate() *errors.AppError {
	b := validation.NewValidator()
	b.Field("amount", d.Amount).Custom(positive("amount"))
	return validation.Merge(validation.Struct(d), b.Validate())
}

func (d PaymentDTO) apply(m *hr.Payment) {
	m.EmployeeID = d.EmployeeID
	m.SupervisorID = d.SupervisorID
	m.PaymentMethodID = d.PaymentMethodID
	m.Amount = d.Amount
	m.PaymentDate = d.PaymentDate
	m.ExtraAmount = d.ExtraAmount
	m.DeductionAmount = d.DeductionAmount
	m.BonusAmount = d.BonusAmount
	m.PaymentNote = d.PaymentNote
	m.Src = d.Src
}

type SalaryDTO struct {
	ContractID    string          `json:"id_contract" validate:"required,uuid"`
	ApprovedByID  string          `json:"id_employee_aproved_by" validate:"required,uuid"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	ExtraHourRate decimal.Decimal `json:"extra_hour_rate"`
	StartDate     datatype.Date   `json:"start_date" validate:"required"`
}

func (d SalaryDTO) Validate() *errors.AppError {
	b := validation.NewValidator()
	b.Field("base_salary", d.BaseSalary).Custom(positive("base_salary"))
	b.Field("extra_hour_rate", d.ExtraHourRate).Custom(notNegative("extra_hour_rate"))
	return validation.Merge(validation.Struct(d), b.Validate())
}

func (d SalaryDTO) apply(m *hr.SalaryHistory) {
	m.ContractID = d.ContractID
	m.ApprovedByID = d.ApprovedByID
	m.BaseSalary = d.BaseSalary
	m.ExtraHourRate = d.ExtraHourRate
	m.StartDate = d.StartDate
}

type BonusDTO struct {
	PaymentID  *string         `json:"id_payment" validate:"omitempty,uuid"`
	EmployeeID string          `json:"id_employee" validate:"required,uuid"`
	BonusNote  *string         `json:"bonus_note"`
	Amount     decimal.Decimal `json:"amount"`
	BonusDate  datatype.Date   `json:"bonus_date" validate:"required"`
}

func (d BonusDTO) Validate() *errors.AppError {
	b := validation.NewValidator()
	b.Field("amount", d.Amount).Custom(positive("amount"))
	return validation.Merge(validation.Struct(d), b.Validate())
}

func (d BonusDTO) apply(m *hr.Bonus) {
	m.PaymentID = d.PaymentID
	m.EmployeeID = d.EmployeeID
	m.BonusNote = d.BonusNote
	m.Amount = d.Amount
	m.BonusDate = d.BonusDate
}

type DeductionDTO struct {
	PaymentID       string          `json:"id_payment" validate:"required,uuid"`
	AbsenceReasonID string          `json:"id_absence_reason" validate:"required,uuid"`
	DeductionNote   *string         `json:"deduction_note"`
	Amount          decimal.Decimal `json:"amount"`
	DeductionDate   datatype.Date   `json:"deduction_date" validate:"required"`
}

func (d DeductionDTO) Validate() *errors.AppError {
	b := validation.NewValidator()
	b.Field("amount", d.Amount).Custom(positive("amount"))
	return validation.Merge(validation.Struct(d), b.Validate())
}

func (d DeductionDTO) apply(m *hr.Deduction) {
	m.PaymentID = d.PaymentID
	m.AbsenceReasonID = d.AbsenceReasonID
	m.DeductionNote = d.DeductionNote
	m.Amount = d.Amount
	m.DeductionDate = d.DeductionDate
}

func positive(field string) validation.ValidatorFunc {
	return func(v interface{}) *errors.AppError {
		if d, ok := v.(decimal.Decimal); ok && !d.IsPositive() {
			return errors.NewValidationFieldError(field, field+" must be greater than 0", errors.ErrCodeValidationFailed)
		}
		return nil
	}
}

func notNegative(field string) validation.ValidatorFunc {
	return func(v interface{}) *errors.AppError {
		if d, ok := v.(decimal.Decimal); ok && d.IsNegative() {
			return errors.NewValidationFieldError(field, field+" must not be negative", errors.ErrCodeValidationFailed)
		}
		return nil
	}
}
