package employee

import (
	"strings"

	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/datatype"
	"github.com/frahmantamala/hr-management/internal/core/common/validation"
	"github.com/shopspring/decimal"
)

type IdentityDTO struct {
	Username  string        `json:"username" validate:"required,max=150"`
	Password  string        `json:"password" validate:"omitempty,max=128"`
	FirstName string        `json:"first_name" validate:"required,max=150"`
	LastName  string        `json:"last_name" validate:"required,max=150"`
	Email     string        `json:"email" validate:"required,email,max=254"`
	Phone     string        `json:"phone" validate:"required,max=50"`
	ImgSrc    string        `json:"img_src" validate:"max=200"`
	BirthDate datatype.Date `json:"birth_date" validate:"required"`
	GroupID   int64         `json:"id_group" validate:"required,gt=0"`
}

type AddressDTO struct {
	Street   string `json:"street" validate:"required,max=200"`
	ZipCode  string `json:"zip_code" validate:"max=8"`
	City     string `json:"city" validate:"required,max=100"`
	District string `json:"district" validate:"max=20"`
	Country  string `json:"country" validate:"required,len=2"`
}

type ContractDTO struct {
	RoleID          string `json:"id_role" validate:"required,uuid"`
	ContractTypeID  string `json:"id_contract_type" validate:"required,uuid"`
	ContractStateID string `json:"id_contract_state" validate:"omitempty,uuid"`
}

type SalaryDTO struct {
	BaseSalary    decimal.Decimal `json:"base_salary"`
	ExtraHourRate decimal.Decimal `json:"extra_hour_rate"`
	StartDate     datatype.Date   `json:"start_date" validate:"required"`
}

type VacationDTO struct {
	StartDate datatype.Date `json:"start_date" validate:"required"`
	EndDate   datatype.Date `json:"end_date" validate:"required"`
}

type TrainingDTO struct {
	TrainingTypeID string        `json:"id_training_type" validate:"required,uuid"`
	StartDate      datatype.Date `json:"start_date" validate:"required"`
	EndDate        datatype.Date `json:"end_date" validate:"required"`
}

type CertificateDTO struct {
	CertificateTypeID   string         `json:"id_certificate_type" validate:"required,uuid"`
	IssuingOrganization string         `json:"issuing_organization" validate:"required,max=50"`
	IssueDate           datatype.Date  `json:"issue_date" validate:"required"`
	ExpirationDate      *datatype.Date `json:"expiration_date"`
}

// EmployeeDTO is the nested payload accepted by create, update and register.
type EmployeeDTO struct {
	Employee     IdentityDTO      `json:"employee" validate:"required"`
	Address      AddressDTO       `json:"employee_address" validate:"required"`
	Contract     *ContractDTO     `json:"contract" validate:"omitempty"`
	Salary       *SalaryDTO       `json:"salary" validate:"omitempty"`
	Vacations    *VacationDTO     `json:"vacations" validate:"omitempty"`
	Trainings    []TrainingDTO    `json:"trainings" validate:"omitempty,dive"`
	Certificates []CertificateDTO `json:"certificates" validate:"omitempty,dive"`
}

func (d *EmployeeDTO) normalize() {
	d.Employee.Username = strings.TrimSpace(d.Employee.Username)
	d.Employee.Email = strings.ToLower(strings.TrimSpace(d.Employee.Email))
	d.Employee.FirstName = strings.TrimSpace(d.Employee.FirstName)
	d.Employee.LastName = strings.TrimSpace(d.Employee.LastName)
	d.Address.Country = strings.ToUpper(d.Address.Country)
}

// Validate checks field shapes and the date ranges the tags cannot express.
// A password is mandatory unless the payload updates an existing employee.
func (d *EmployeeDTO) Validate(creating bool) *errors.AppError {
	d.normalize()

	b := validation.NewValidator()
	if creating {
		b.Field("employee.password", d.Employee.Password).Required()
	}
	if d.Vacations != nil {
		b.Field("vacations.end_date", d.Vacations).Custom(func(interface{}) *errors.AppError {
			return dateOrder("vacations.end_date", d.Vacations.StartDate, d.Vacations.EndDate)
		})
	}
	for i := range d.Trainings {
		t := d.Trainings[i]
		b.Field("trainings.end_date", t).Custom(func(interface{}) *errors.AppError {
			return dateOrder("trainings.end_date", t.StartDate, t.EndDate)
		})
	}
	for i := range d.Certificates {
		c := d.Certificates[i]
		if c.ExpirationDate == nil {
			continue
		}
		b.Field("certificates.expiration_date", c).Custom(func(interface{}) *errors.AppError {
			return dateOrder("certificates.expiration_date", c.IssueDate, *c.ExpirationDate)
		})
	}
	if d.Salary != nil {
		b.Field("salary.base_salary", d.Salary.BaseSalary).Custom(nonNegative("salary.base_salary"))
		b.Field("salary.extra_hour_rate", d.Salary.ExtraHourRate).Custom(nonNegative("salary.extra_hour_rate"))
	}

	return validation.Merge(validation.Struct(d), b.Validate())
}

func dateOrder(field string, start, end datatype.Date) *errors.AppError {
	if start.IsZero() || end.IsZero() || !end.Before(start) {
		return nil
	}
	return errors.NewValidationFieldError(field, field+" must not be before the start date", errors.ErrCodeInvalidDate)
}

func nonNegative(field string) validation.ValidatorFunc {
	return func(v interface{}) *errors.AppError {
		if d, ok := v.(decimal.Decimal); ok && d.IsNegative() {
			return errors.NewValidationFieldError(field, field+" must not be negative", errors.ErrCodeValidationFailed)
		}
		return nil
	}
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type UpdatedResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
