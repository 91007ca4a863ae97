package analytics

import (
	"context"
	"log/slog"

	errors "github.com/frahmantamala/hr-management/internal"
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

func load[T any](ctx context.Context, view string, fn func(context.Context) ([]T, error)) ([]T, error) {
	rows, err := fn(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to read "+view, err)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

func (s *Service) Absences(ctx context.Context) ([]Absence, error) {
	return load(ctx, "absence analytics", s.repo.Absences)
}

func (s *Service) CurrentMonthPayments(ctx context.Context) ([]MonthPayments, error) {
	return load(ctx, "payment analytics", s.repo.CurrentMonthPayments)
}

func (s *Service) SalaryByDepartment(ctx context.Context) ([]DepartmentSalary, error) {
	return load(ctx, "salary analytics", s.repo.SalaryByDepartment)
}

func (s *Service) EmployeesPerDepartment(ctx context.Context) ([]DepartmentCount, error) {
	return load(ctx, "department analytics", s.repo.EmployeesPerDepartment)
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	var (
		d   Dashboard
		err error
	)
	if d.CurrentMonthPayments, err = s.CurrentMonthPayments(ctx); err != nil {
		return nil, err
	}
	if d.TopAbsences, err = s.Absences(ctx); err != nil {
		return nil, err
	}
	if d.DepartmentSalaries, err = s.SalaryByDepartment(ctx); err != nil {
		return nil, err
	}
	if d.DepartmentCounts, err = s.EmployeesPerDepartment(ctx); err != nil {
		return nil, err
	}
	return &d, nil
}
