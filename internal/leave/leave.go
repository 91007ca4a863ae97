package leave

import (
	"context"

	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
)

const (
	PermViewAllVacations = "view_all_vacations"
	PermViewVacation     = "view_vacation"
	PermCreateVacation   = "create_vacation"
	PermUpdateVacation   = "update_vacation"
	PermDeleteVacation   = "delete_vacation"

	PermViewAllAbsenceReasons = "view_all_absence_reasons"
	PermViewAbsenceReason     = "view_absence_reason"
	PermCreateAbsenceReason   = "create_absence_reason"
	PermUpdateAbsenceReason   = "update_absence_reason"
	PermDeleteAbsenceReason   = "delete_absence_reason"
)

const employeeName = "u.first_name || ' ' || u.last_name"

var VacationSorting = query.Sorting{
	Columns: map[string]string{
		"start_date":      "v.start_date",
		"end_date":        "v.end_date",
		"aproved_date":    "v.aproved_date",
		"employee_name":   employeeName,
		"department_name": "d.name",
	},
	Default: "start_date",
}

var AbsenceSorting = query.Sorting{
	Columns: map[string]string{
		"start_date":    "a.start_date",
		"end_date":      "a.end_date",
		"name":          "a.name",
		"employee_name": employeeName,
	},
	Default: "start_date",
}

type VacationFilter struct {
	query.ListParams
	DepartmentID string
	EmployeeID   string
}

type AbsenceFilter struct {
	query.ListParams
	EmployeeID   string
	SupervisorID string
	SubstituteID string
}

// VacationView is a vacation with the employee's name and current department.
type VacationView struct {
	hr.Vacation
	EmployeeName   string  `json:"employee_name"`
	DepartmentID   *string `gorm:"column:id_department" json:"id_department"`
	DepartmentName *string `json:"department_name"`
}

type AbsenceView struct {
	hr.AbsenceReason
	EmployeeName   string  `json:"employee_name"`
	SupervisorName *string `json:"supervisor_name"`
	SubstituteName *string `json:"substitute_name"`
}

type RepositoryAPI interface {
	ListVacations(ctx context.Context, f VacationFilter) ([]VacationView, int64, error)
	GetVacation(ctx context.Context, id string) (*hr.Vacation, error)
	CreateVacation(ctx context.Context, m *hr.Vacation) error
	UpdateVacation(ctx context.Context, m *hr.Vacation) error
	DeleteVacation(ctx context.Context, id string) error

	ListAbsences(ctx context.Context, f AbsenceFilter) ([]AbsenceView, int64, error)
	GetAbsence(ctx context.Context, id string) (*hr.AbsenceReason, error)
	CreateAbsence(ctx context.Context, m *hr.AbsenceReason) error
	UpdateAbsence(ctx context.Context, m *hr.AbsenceReason) error
	DeleteAbsence(ctx context.Context, id string) error

	// MissingEmployees returns the ids among ids that name no live employee.
	MissingEmployees(ctx context.Context, ids ...string) ([]string, error)
}
