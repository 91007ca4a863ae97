package postgres

import (
	"context"

	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/frahmantamala/hr-management/internal/payroll"
	"gorm.io/gorm"
)

type PayrollRepository struct {
	db *gorm.DB
}

func NewPayrollRepository(db *gorm.DB) payroll.RepositoryAPI {
	return &PayrollRepository{db: db}
}

func paged[T any](base *gorm.DB, p query.ListParams, order string, scan func(*gorm.DB, *[]T) error) ([]T, int64, error) {
	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []T
	if err := scan(p.Page(base.Order(order)), &rows); err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func get[T any](db *gorm.DB, column, id string) (*T, error) {
	var m T
	err := db.Where(column+" = ?", id).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func remove[T any](db *gorm.DB, column, id string) error {
	res := db.Where(column+" = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Payments

func (r *PayrollRepository) ListPayments(ctx context.Context, f payroll.PaymentFilter) ([]payroll.PaymentView, int64, error) {
	base := r.db.WithContext(ctx).Model(&hr.Payment{}).
		Joins("JOIN payment_methods ON payment_methods.id_payment_method = payments.id_payment_method")
	if f.EmployeeID != "" {
		base = base.Where("payments.id_employee = ?", f.EmployeeID)
	}
	base = f.Search(base, "payments.payment_note", "payment_methods.name")

	payments, total, err := paged(base, f.ListParams, f.OrderClause(payroll.PaymentSorting),
		func(q *gorm.DB, rows *[]hr.Payment) error { return q.Preload("PaymentMethod").Find(rows).Error })
	if err != nil {
		return nil, 0, err
	}

	out := make([]payroll.PaymentView, 0, len(payments))
	for _, p := range payments {
		v := payroll.PaymentView{Payment: p}
		if p.PaymentMethod != nil {
			v.PaymentMethodName = p.PaymentMethod.Name
		}
		out = append(out, v)
	}
	return out, total, nil
}

func (r *PayrollRepository) GetPayment(ctx context.Context, id string) (*hr.Payment, error) {
	return get[hr.Payment](r.db.WithContext(ctx), "id_payment", id)
}

func (r *PayrollRepository) CreatePayment(ctx context.Context, m *hr.Payment) error {
	return r.db.WithContext(ctx).Omit("PaymentMethod").Create(m).Error
}

func (r *PayrollRepository) UpdatePayment(ctx context.Context, m *hr.Payment) error {
	return r.db.WithContext(ctx).Omit("PaymentMethod").Save(m).Error
}

func (r *PayrollRepository) DeletePayment(ctx context.Context, id string) error {
	return remove[hr.Payment](r.db.WithContext(ctx), "id_payment", id)
}

func (r *PayrollRepository) Payslip(ctx context.Context, paymentID string) (*payroll.Payslip, error) {
	db := r.db.WithContext(ctx)

	var p hr.Payment
	err := db.Preload("PaymentMethod").Where("id_payment = ?", paymentID).First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	slip := &payroll.Payslip{Payment: p}
	if p.PaymentMethod != nil {
		slip.PaymentMethod = p.PaymentMethod.Name
	}

	var who []struct {
		Name  string
		Email string
	}
	err = db.Table("employees e").
		Select("u.first_name || ' ' || u.last_name AS name, u.email").
		Joins("JOIN auth_user u ON u.id = e.id_auth_user").
		Where("e.id_employee = ?", p.EmployeeID).
		Limit(1).Scan(&who).Error
	if err != nil {
		return nil, err
	}
	if len(who) > 0 {
		slip.EmployeeName = who[0].Name
		slip.Email = who[0].Email
	}

	if err := db.Where("id_payment = ?", paymentID).Order("bonus_date").Find(&slip.Bonuses).Error; err != nil {
		return nil, err
	}
	if err := db.Where("id_payment = ?", paymentID).Order("deduction_date").Find(&slip.Deductions).Error; err != nil {
		return nil, err
	}
	return slip, nil
}

// Salary history

func (r *PayrollRepository) ListSalaries(ctx context.Context, f payroll.SalaryFilter) ([]payroll.SalaryView, int64, error) {
	base := r.db.WithContext(ctx).Model(&hr.SalaryHistory{}).
		Joins("JOIN contract ON contract.id_contract = salary_history.id_contract")
	if f.ContractID != "" {
		base = base.Where("contract.id_contract = ?", f.ContractID)
	}
	if f.EmployeeID != "" {
		base = base.Where("contract.id_employee = ?", f.EmployeeID)
	}

	return paged(base, f.ListParams, "salary_history.created_at DESC",
		func(q *gorm.DB, rows *[]payroll.SalaryView) error {
			return q.Select("salary_history.*, contract.id_employee").Scan(rows).Error
		})
}

func (r *PayrollRepository) GetSalary(ctx context.Context, id string) (*hr.SalaryHistory, error) {
	return get[hr.SalaryHistory](r.db.WithContext(ctx), "id_salary_history", id)
}

func (r *PayrollRepository) CreateSalary(ctx context.Context, m *hr.SalaryHistory) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *PayrollRepository) UpdateSalary(ctx context.Context, m *hr.SalaryHistory) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *PayrollRepository) DeleteSalary(ctx context.Context, id string) error {
	return remove[hr.SalaryHistory](r.db.WithContext(ctx), "id_salary_history", id)
}

// Bonuses

func (r *PayrollRepository) ListBonuses(ctx context.Context, f payroll.BonusFilter) ([]hr.Bonus, int64, error) {
	base := r.db.WithContext(ctx).Model(&hr.Bonus{})
	if f.PaymentID != "" {
		base = base.Where("id_payment = ?", f.PaymentID)
	}
	base = f.Search(base, "bonus_note")

	return paged(base, f.ListParams, "bonus_date DESC",
		func(q *gorm.DB, rows *[]hr.Bonus) error { return q.Find(rows).Error })
}

func (r *PayrollRepository) GetBonus(ctx context.Context, id string) (*hr.Bonus, error) {
	return get[hr.Bonus](r.db.WithContext(ctx), "id_bonus", id)
}

func (r *PayrollRepository) CreateBonus(ctx context.Context, m *hr.Bonus) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *PayrollRepository) UpdateBonus(ctx context.Context, m *hr.Bonus) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *PayrollRepository) DeleteBonus(ctx context.Context, id string) error {
	return remove[hr.Bonus](r.db.WithContext(ctx), "id_bonus", id)
}

// Deductions

func (r *PayrollRepository) ListDeductions(ctx context.Context, f payroll.DeductionFilter) ([]payroll.DeductionView, int64, error) {
	base := r.db.WithContext(ctx).Model(&hr.Deduction{}).
		Joins("JOIN absence_reason ON absence_reason.id_absence_reason = deductions.id_absence_reason")
	if f.PaymentID != "" {
		base = base.Where("deductions.id_payment = ?", f.PaymentID)
	}
	if f.EmployeeID != "" {
		base = base.Where("absence_reason.id_employee = ?", f.EmployeeID)
	}
	base = f.Search(base, "deductions.deduction_note", "absence_reason.name")

	return paged(base, f.ListParams, "deductions.deduction_date DESC",
		func(q *gorm.DB, rows *[]payroll.DeductionView) error {
			return q.Select("deductions.*, absence_reason.id_employee").Scan(rows).Error
		})
}

func (r *PayrollRepository) GetDeduction(ctx context.Context, id string) (*hr.Deduction, error) {
	return get[hr.Deduction](r.db.WithContext(ctx), "id_deduction", id)
}

func (r *PayrollRepository) CreateDeduction(ctx context.Context, m *hr.Deduction) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *PayrollRepository) UpdateDeduction(ctx context.Context, m *hr.Deduction) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *PayrollRepository) DeleteDeduction(ctx context.Context, id string) error {
	return remove[hr.Deduction](r.db.WithContext(ctx), "id_deduction", id)
}
