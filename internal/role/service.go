package role

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

func (s *Service) List(ctx context.Context, p query.ListParams) (query.Result[Role], error) {
	rows, total, err := s.repo.List(ctx, p)
	if err != nil {
		return query.Result[Role]{}, errors.FromDBError(err, "role")
	}

	out := make([]Role, 0, len(rows))
	for i := range rows {
		out = append(out, FromDataModel(&rows[i]))
	}
	return query.Result[Role]{Data: out, TotalCount: total}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Role, error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	r := FromDataModel(m)
	return &r, nil
}

func (s *Service) Create(ctx context.Context, dto RoleDTO) (*Role, error) {
	ids, err := s.validate(ctx, dto)
	if err != nil {
		return nil, err
	}

	m := &hr.Role{}
	dto.apply(m)
	if err := s.repo.Create(ctx, m, ids); err != nil {
		return nil, errors.FromDBError(err, "role")
	}

	s.logger.Info("role created", "id_role", m.ID, "role_name", m.RoleName)
	return s.Get(ctx, m.ID)
}

// Update rewrites the role and replaces its training-type links.
func (s *Service) Update(ctx context.Context, id string, dto RoleDTO) (*Role, error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	ids, err := s.validate(ctx, dto)
	if err != nil {
		return nil, err
	}

	dto.apply(m)
	m.Department = nil
	if err := s.repo.Update(ctx, m, ids); err != nil {
		return nil, errors.FromDBError(err, "role")
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.FromDBError(err, "role")
	}
	s.logger.Info("role deleted", "id_role", id)
	return nil
}

func (s *Service) load(ctx context.Context, id string) (*hr.Role, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.FromDBError(err, "role")
	}
	if m == nil {
		return nil, errors.NewNotFoundError("role not found", errors.ErrCodeNotFound)
	}
	return m, nil
}

func (s *Service) validate(ctx context.Context, dto RoleDTO) ([]string, error) {
	if appErr := validation.Struct(dto); appErr != nil {
		return nil, appErr
	}

	ok, err := s.repo.DepartmentExists(ctx, dto.DepartmentID)
	if err != nil {
		return nil, errors.FromDBError(err, "department")
	}
	if !ok {
		return nil, errors.NewValidationFieldError("id_department", "department does not exist", errors.ErrCodeReference)
	}

	ids := dto.uniqueTrainingTypes()
	if len(ids) > 0 {
		n, err := s.repo.CountTrainingTypes(ctx, ids)
		if err != nil {
			return nil, errors.FromDBError(err, "training type")
		}
		if n != int64(len(ids)) {
			return nil, errors.NewValidationFieldError("training_types", "one or more training types do not exist", errors.ErrCodeReference)
		}
	}
	return ids, nil
}
