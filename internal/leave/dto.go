package leave

import (
	"strings"

	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/datatype"
	"github.com/frahmantamala/hr-management/internal/core/common/validation"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
)

type VacationDTO struct {
	EmployeeID  string        `json:"id_employee" validate:"required,uuid"`
	AprovedDate datatype.Date `json:"aproved_date"`
	StartDate   datatype.Date `json:"start_date" validate:"required"`
	EndDate     datatype.Date `json:"end_date" validate:"required"`
}

func (d VacationDTO) Validate() *errors.AppError {
	return validation.Merge(validation.Struct(d), notBefore("end_date", d.StartDate, d.EndDate))
}

// apply copies the payload onto m. An empty approval date means approved today.
func (d VacationDTO) apply(m *hr.Vacation) {
	m.EmployeeID = d.EmployeeID
	m.AprovedDate = d.AprovedDate
	if m.AprovedDate.IsZero() {
		m.AprovedDate = datatype.Today()
	}
	m.StartDate = d.StartDate
	m.EndDate = d.EndDate
}

type AbsenceDTO struct {
	EmployeeID   string        `json:"id_employee" validate:"required,uuid"`
	SupervisorID string        `json:"id_employee_supervisor" validate:"required,uuid"`
	SubstituteID string        `json:"id_employee_substitute" validate:"required,uuid"`
	Name         string        `json:"name" validate:"required,max=50"`
	Description  string        `json:"description" validate:"required"`
	StartDate    datatype.Date `json:"start_date" validate:"required"`
	EndDate      datatype.Date `json:"end_date" validate:"required"`
}

func (d *AbsenceDTO) Validate() *errors.AppError {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	return validation.Merge(validation.Struct(d), notBefore("end_date", d.StartDate, d.EndDate))
}

func (d AbsenceDTO) apply(m *hr.AbsenceReason) {
	m.EmployeeID = d.EmployeeID
	m.SupervisorID = d.SupervisorID
	m.SubstituteID = d.SubstituteID
	m.Name = d.Name
	m.Description = d.Description
	m.StartDate = d.StartDate
	m.EndDate = d.EndDate
}

func notBefore(field string, start, end datatype.Date) *errors.AppError {
	if start.IsZero() || end.IsZero() || !end.Before(start) {
		return nil
	}
	return errors.NewValidationFieldError(field, field+" must not be before start_date", errors.ErrCodeInvalidDate)
}
