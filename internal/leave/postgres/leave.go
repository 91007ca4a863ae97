package postgres

import (
	"context"

	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/frahmantamala/hr-management/internal/leave"
	"gorm.io/gorm"
)

const (
	latestDepartment = `LEFT JOIN contract c ON c.id_contract = (
		SELECT c2.id_contract FROM contract c2
		WHERE c2.id_employee = e.id_employee AND c2.deleted_at IS NULL
		ORDER BY c2.created_at DESC LIMIT 1)
	LEFT JOIN roles r ON r.id_role = c.id_role
	LEFT JOIN departments d ON d.id_department = r.id_department`

	employeeName = "u.first_name || ' ' || u.last_name"

	vacationColumns = "v.*, " + employeeName + " AS employee_name, d.id_department, d.name AS department_name"

	absenceColumns = "a.*, " + employeeName + " AS employee_name, " +
		"su.first_name || ' ' || su.last_name AS supervisor_name, " +
		"bu.first_name || ' ' || bu.last_name AS substitute_name"
)

type LeaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) leave.RepositoryAPI {
	return &LeaveRepository{db: db}
}

func (r *LeaveRepository) ListVacations(ctx context.Context, f leave.VacationFilter) ([]leave.VacationView, int64, error) {
	base := r.db.WithContext(ctx).Table("vacations AS v").
		Joins("JOIN employees e ON e.id_employee = v.id_employee").
		Joins("JOIN auth_user u ON u.id = e.id_auth_user").
		Joins(latestDepartment).
		Where("v.deleted_at IS NULL")

	if f.EmployeeID != "" {
		base = base.Where("v.id_employee = ?", f.EmployeeID)
	}
	if f.DepartmentID != "" {
		base = base.Where("d.id_department = ?", f.DepartmentID)
	}
	base = f.Search(base, employeeName, "d.name")

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []leave.VacationView
	err := f.Page(base.Select(vacationColumns).Order(f.OrderClause(leave.VacationSorting)).Order("v.id_vacation")).
		Scan(&rows).Error
	return rows, total, err
}

func (r *LeaveRepository) GetVacation(ctx context.Context, id string) (*hr.Vacation, error) {
	var m hr.Vacation
	if err := r.db.WithContext(ctx).Where("id_vacation = ?", id).First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *LeaveRepository) CreateVacation(ctx context.Context, m *hr.Vacation) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *LeaveRepository) UpdateVacation(ctx context.Context, m *hr.Vacation) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *LeaveRepository) DeleteVacation(ctx context.Context, id string) error {
	return deleted(r.db.WithContext(ctx).Where("id_vacation = ?", id).Delete(&hr.Vacation{}))
}

func (r *LeaveRepository) ListAbsences(ctx context.Context, f leave.AbsenceFilter) ([]leave.AbsenceView, int64, error) {
	base := r.db.WithContext(ctx).Table("absence_reason AS a").
		Joins("JOIN employees e ON e.id_employee = a.id_employee").
		Joins("JOIN auth_user u ON u.id = e.id_auth_user").
		Joins("LEFT JOIN employees se ON se.id_employee = a.id_employee_supervisor").
		Joins("LEFT JOIN auth_user su ON su.id = se.id_auth_user").
		Joins("LEFT JOIN employees be ON be.id_employee = a.id_employee_substitute").
		Joins("LEFT JOIN auth_user bu ON bu.id = be.id_auth_user").
		Where("a.deleted_at IS NULL")

	if f.EmployeeID != "" {
		base = base.Where("a.id_employee = ?", f.EmployeeID)
	}
	if f.SupervisorID != "" {
		base = base.Where("a.id_employee_supervisor = ?", f.SupervisorID)
	}
	if f.SubstituteID != "" {
		base = base.Where("a.id_employee_substitute = ?", f.SubstituteID)
	}
	base = f.Search(base, "a.name", "a.description", employeeName)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []leave.AbsenceView
	err := f.Page(base.Select(absenceColumns).Order(f.OrderClause(leave.AbsenceSorting)).Order("a.id_absence_reason")).
		Scan(&rows).Error
	return rows, total, err
}

func (r *LeaveRepository) GetAbsence(ctx context.Context, id string) (*hr.AbsenceReason, error) {
	var m hr.AbsenceReason
	if err := r.db.WithContext(ctx).Where("id_absence_reason = ?", id).First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *LeaveRepository) CreateAbsence(ctx context.Context, m *hr.AbsenceReason) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *LeaveRepository) UpdateAbsence(ctx context.Context, m *hr.AbsenceReason) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *LeaveRepository) DeleteAbsence(ctx context.Context, id string) error {
	return deleted(r.db.WithContext(ctx).Where("id_absence_reason = ?", id).Delete(&hr.AbsenceReason{}))
}

func (r *LeaveRepository) MissingEmployees(ctx context.Context, ids ...string) ([]string, error) {
	var known []string
	err := r.db.WithContext(ctx).Model(&hr.Employee{}).
		Where("id_employee IN ?", ids).
		Pluck("id_employee", &known).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(known))
	for _, id := range known {
		seen[id] = true
	}
	var missing []string
	for _, id := range ids {
		if !seen[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func deleted(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
