package payroll

import (
	"context"
	"log/slog"

	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
)

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func found[T any](m *T, err error, entity string) (*T, error) {
	if err != nil {
		return nil, errors.FromDBError(err, entity)
	}
	if m == nil {
		return nil, errors.NewNotFoundError(entity+" not found", errors.ErrCodeNotFound)
	}
	return m, nil
}

func result[T any](rows []T, total int64, err error, entity string) (query.Result[T], error) {
	if err != nil {
		return query.Result[T]{}, errors.FromDBError(err, entity)
	}
	if rows == nil {
		rows = []T{}
	}
	return query.Result[T]{Data: rows, TotalCount: total}, nil
}

// Payments

func (s *Service) ListPayments(ctx context.Context, f PaymentFilter) (query.Result[PaymentView], error) {
	rows, total, err := s.repo.ListPayments(ctx, f)
	return result(rows, total, err, "payment")
}

func (s *Service) GetPayment(ctx context.Context, id string) (*hr.Payment, error) {
	m, err := s.repo.GetPayment(ctx, id)
	return found(m, err, "payment")
}

func (s *Service) CreatePayment(ctx context.Context, dto PaymentDTO) (*hr.Payment, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	m := &hr.Payment{}
	dto.apply(m)
	if err := s.repo.CreatePayment(ctx, m); err != nil {
		return nil, errors.FromDBError(err, "payment")
	}
	s.logger.InfoContext(ctx, "payment created", "id_payment", m.ID, "id_employee", m.EmployeeID)
	return m, nil
}

func (s *Service) UpdatePayment(ctx context.Context, id string, dto PaymentDTO) (*hr.Payment, error) {
	m, err := s.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	dto.apply(m)
	m.PaymentMethod = nil
	if err := s.repo.UpdatePayment(ctx, m); err != nil {
		return nil, errors.FromDBError(err, "payment")
	}
	return m, nil
}

func (s *Service) DeletePayment(ctx context.Context, id string) error {
	return errors.FromDBError(s.repo.DeletePayment(ctx, id), "payment")
}

func (s *Service) Payslip(ctx context.Context, paymentID string) (*Payslip, error) {
	m, err := s.repo.Payslip(ctx, paymentID)
	return found(m, err, "payment")
}

// Salary history

func (s *Service) ListSalaries(ctx context.Context, f SalaryFilter) (query.Result[SalaryView], error) {
	rows, total, err := s.repo.ListSalaries(ctx, f)
	return result(rows, total, err, "salary history")
}

func (s *Service) GetSalary(ctx context.Context, id string) (*hr.SalaryHistory, error) {
	m, err := s.repo.GetSalary(ctx, id)
	return found(m, err, "salary history")
}

func (s *Service) CreateSalary(ctx context.Context, dto SalaryDTO) (*hr.SalaryHistory, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	m := &hr.SalaryHistory{}
	dto.apply(m)
	if err := s.repo.CreateSalary(ctx, m); err != nil {
		return nil, errors.FromDBError(err, "salary history")
	}
	s.logger.InfoContext(ctx, "salary recorded", "id_contract", m.ContractID, "approved_by", m.ApprovedByID)
	return m, nil
}

func (s *Service) UpdateSalary(ctx context.Context, id string, dto SalaryDTO) (*hr.SalaryHistory, error) {
	m, err := s.GetSalary(ctx, id)
	if err != nil {
		return nil, err
	}
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	dto.apply(m)
	if err := s.repo.UpdateSalary(ctx, m); err != nil {
		return nil, errors.FromDBError(err, "salary history")
	}
	return m, nil
}

func (s *Service) DeleteSalary(ctx context.Context, id string) error {
	return errors.FromDBError(s.repo.DeleteSalary(ctx, id), "salary history")
}

// Bonuses

func (s *Service) ListBonuses(ctx context.Context, f BonusFilter) (query.Result[hr.Bonus], error) {
	rows, total, err := s.repo.ListBonuses(ctx, f)
	return result(rows, total, err, "bonus")
}

func (s *Service) GetBonus(ctx context.Context, id string) (*hr.Bonus, error) {
	m, err := s.repo.GetBonus(ctx, id)
	return found(m, err, "bonus")
}

func (s *Service) CreateBonus(ctx context.Context, dto BonusDTO) (*hr.Bonus, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	m := &hr.Bonus{}
	dto.apply(m)
	if err := s.repo.CreateBonus(ctx, m); err != nil {
		return nil, errors.FromDBError(err, "bonus")
	}
	return m, nil
}

func (s *Service) UpdateBonus(ctx context.Context, id string, dto BonusDTO) (*hr.Bonus, error) {
	m, err := s.GetBonus(ctx, id)
	if err != nil {
		return nil, err
	}
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	dto.apply(m)
	if err := s.repo.UpdateBonus(ctx, m); err != nil {
		return nil, errors.FromDBError(err, "bonus")
	}
	return m, nil
}

func (s *Service) DeleteBonus(ctx context.Context, id string) error {
	return errors.FromDBError(s.repo.DeleteBonus(ctx, id), "bonus")
}

// Deductions

func (s *Service) ListDeductions(ctx context.Context, f DeductionFilter) (query.Result[DeductionView], error) {
	rows, total, err := s.repo.ListDeductions(ctx, f)
	return result(rows, total, err, "deduction")
}

func (s *Service) GetDeduction(ctx context.Context, id string) (*hr.Deduction, error) {
	m, err := s.repo.GetDeduction(ctx, id)
	return found(m, err, "deduction")
}

func (s *Service) CreateDeduction(ctx context.Context, dto DeductionDTO) (*hr.Deduction, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	m := &hr.Deduction{}
	dto.apply(m)
	if err := s.repo.CreateDeduction(ctx, m); err != nil {
		return nil, errors.FromDBError(err, "deduction")
	}
	return m, nil
}

func (s *Service) UpdateDeduction(ctx context.Context, id string, dto DeductionDTO) (*hr.Deduction, error) {
	m, err := s.GetDeduction(ctx, id)
	if err != nil {
		return nil, err
	}
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}

	dto.apply(m)
	if err := s.repo.UpdateDeduction(ctx, m); err != nil {
		return nil, errors.FromDBError(err, "deduction")
	}
	return m, nil
}

func (s *Service) DeleteDeduction(ctx context.Context, id string) error {
	return errors.FromDBError(s.repo.DeleteDeduction(ctx, id), "deduction")
}
