// Package analytics reads the dashboard views maintained by the database.
package analytics

import (
	"context"

	"github.com/shopspring/decimal"
)

const PermView = "view_analytics"

type Absence struct {
	EmployeeName    string `db:"employee_name" json:"employee_name"`
	TotalAbsences   int64  `db:"total_absences" json:"total_absences"`
	TotalDaysAbsent int64  `db:"total_days_absent" json:"total_days_absent"`
}

type MonthPayments struct {
	MonthName              string              `db:"month_name" json:"month_name"`
	TotalEmployeesPaid     int64               `db:"total_employees_paid" json:"total_employees_paid"`
	TotalBaseSalary        decimal.NullDecimal `db:"total_base_salary" json:"total_base_salary"`
	TotalBonusAmount       decimal.NullDecimal `db:"total_bonus_amount" json:"total_bonus_amount"`
	TotalDeductionAmount   decimal.NullDecimal `db:"total_deduction_amount" json:"total_deduction_amount"`
	NetPaymentAmount       decimal.NullDecimal `db:"net_payment_amount" json:"net_payment_amount"`
	AveragePayment         decimal.NullDecimal `db:"average_payment" json:"average_payment"`
	MinPayment             decimal.NullDecimal `db:"min_payment" json:"min_payment"`
	MaxPayment             decimal.NullDecimal `db:"max_payment" json:"max_payment"`
	EmployeesWithBonus     int64               `db:"employees_with_bonus" json:"employees_with_bonus"`
	EmployeesWithDeduction int64               `db:"employees_with_deduction" json:"employees_with_deduction"`
}

type DepartmentSalary struct {
	DepartmentName string              `db:"department_name" json:"department_name"`
	EmployeeCount  int64               `db:"employee_count" json:"employee_count"`
	AvgSalary      decimal.NullDecimal `db:"avg_salary" json:"avg_salary"`
	MinSalary      decimal.NullDecimal `db:"min_salary" json:"min_salary"`
	MaxSalary      decimal.NullDecimal `db:"max_salary" json:"max_salary"`
}

type DepartmentCount struct {
	DepartmentName string `db:"department_name" json:"department_name"`
	TotalEmployees int64  `db:"total_employees" json:"total_employees"`
}

// Dashboard combines every view in one response.
type Dashboard struct {
	CurrentMonthPayments []MonthPayments    `json:"current_month_payments"`
	TopAbsences          []Absence          `json:"top_absences"`
	DepartmentSalaries   []DepartmentSalary `json:"department_salaries"`
	DepartmentCounts     []DepartmentCount  `json:"department_counts"`
}

type RepositoryAPI interface {
	Absences(ctx context.Context) ([]Absence, error)
	CurrentMonthPayments(ctx context.Context) ([]MonthPayments, error)
	SalaryByDepartment(ctx context.Context) ([]DepartmentSalary, error)
	EmployeesPerDepartment(ctx context.Context) ([]DepartmentCount, error)
}
