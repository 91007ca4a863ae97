package department

import (
	"context"
	"log/slog"

	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/core/common/validation"
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

// List returns departments with their roles and each role's training types.
func (s *Service) List(ctx context.Context, p query.ListParams) (query.Result[hr.Department], error) {
	rows, total, err := s.repo.List(ctx, p)
	if err != nil {
		return query.Result[hr.Department]{}, errors.FromDBError(err, "department")
	}
	if rows == nil {
		rows = []hr.Department{}
	}
	return query.Result[hr.Department]{Data: rows, TotalCount: total}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*hr.Department, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.FromDBError(err, "department")
	}
	if d == nil {
		return nil, errors.NewNotFoundError("department not found", errors.ErrCodeNotFound)
	}
	return d, nil
}

func (s *Service) Create(ctx context.Context, dto DepartmentDTO) (*hr.Department, error) {
	if appErr := validation.Struct(dto); appErr != nil {
		return nil, appErr
	}

	d := &hr.Department{}
	dto.apply(d)
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, errors.FromDBError(err, "department")
	}

	s.logger.Info("department created", "id_department", d.ID, "name", d.Name)
	return d, nil
}

func (s *Service) Update(ctx context.Context, id string, dto DepartmentDTO) (*hr.Department, error) {
	if appErr := validation.Struct(dto); appErr != nil {
		return nil, appErr
	}

	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	dto.apply(d)
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, errors.FromDBError(err, "department")
	}
	return d, nil
}

// Delete removes the row for good. Departments still referenced by roles are refused by the database.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.FromDBError(err, "department")
	}
	s.logger.Info("department deleted", "id_department", id)
	return nil
}
