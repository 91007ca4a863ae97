package postgres

import (
	"context"

	"github.com/frahmantamala/hr-management/internal/analytics"
	"github.com/jmoiron/sqlx"
)

const (
	absencesQuery = `SELECT employee_name, total_absences, total_days_absent
FROM absence_analytics_view`

	monthPaymentsQuery = `SELECT month_name, total_employees_paid, total_base_salary, total_bonus_amount,
	total_deduction_amount, net_payment_amount, average_payment, min_payment, max_payment,
	employees_with_bonus, employees_with_deduction
FROM current_month_payment_analytics_view`

	salaryByDepartmentQuery = `SELECT department_name, employee_count, avg_salary, min_salary, max_salary
FROM salary_by_departament_view`

	employeesPerDepartmentQuery = `SELECT department_name, total_employees
FROM total_employees_per_department_view`
)

// AnalyticsRepository reads the views with sqlx; they have no gorm models.
type AnalyticsRepository struct {
	db *sqlx.DB
}

func NewAnalyticsRepository(db *sqlx.DB) analytics.RepositoryAPI {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) Absences(ctx context.Context) ([]analytics.Absence, error) {
	var rows []analytics.Absence
	if err := r.db.SelectContext(ctx, &rows, absencesQuery); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AnalyticsRepository) CurrentMonthPayments(ctx context.Context) ([]analytics.MonthPayments, error) {
	var rows []analytics.MonthPayments
	if err := r.db.SelectContext(ctx, &rows, monthPaymentsQuery); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AnalyticsRepository) SalaryByDepartment(ctx context.Context) ([]analytics.DepartmentSalary, error) {
	var rows []analytics.DepartmentSalary
	if err := r.db.SelectContext(ctx, &rows, salaryByDepartmentQuery); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AnalyticsRepository) EmployeesPerDepartment(ctx context.Context) ([]analytics.DepartmentCount, error) {
	var rows []analytics.DepartmentCount
	if err := r.db.SelectContext(ctx, &rows, employeesPerDepartmentQuery); err != nil {
		return nil, err
	}
	return rows, nil
}
