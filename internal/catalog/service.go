package catalog

import (
	"context"
	"log/slog"

	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/core/common/validation"
)

type ServiceAPI[T any, D Payload[T]] interface {
	Definition() Definition
	List(ctx context.Context, p query.ListParams) (query.Result[T], error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, dto D) (*T, error)
	Update(ctx context.Context, id string, dto D) (*T, error)
	Delete(ctx context.Context, id string) error
}

type Service[T any, D Payload[T]] struct {
	def    Definition
	repo   RepositoryAPI[T]
	logger *slog.Logger
}

func NewService[T any, D Payload[T]](def Definition, repo RepositoryAPI[T], logger *slog.Logger) *Service[T, D] {
	return &Service[T, D]{
		def:    def,
		repo:   repo,
		logger: logger.With("catalog", def.Plural),
	}
}

func (s *Service[T, D]) Definition() Definition {
	return s.def
}

func (s *Service[T, D]) List(ctx context.Context, p query.ListParams) (query.Result[T], error) {
	rows, total, err := s.repo.List(ctx, p)
	if err != nil {
		return query.Result[T]{}, errors.FromDBError(err, s.def.Entity)
	}
	if rows == nil {
		rows = []T{}
	}
	return query.Result[T]{Data: rows, TotalCount: total}, nil
}

func (s *Service[T, D]) Get(ctx context.Context, id string) (*T, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.FromDBError(err, s.def.Entity)
	}
	if row == nil {
		return nil, errors.NewNotFoundError(s.def.Entity+" not found", errors.ErrCodeNotFound)
	}
	return row, nil
}

func (s *Service[T, D]) Create(ctx context.Context, dto D) (*T, error) {
	if appErr := validation.Struct(dto); appErr != nil {
		return nil, appErr
	}

	row := new(T)
	dto.Apply(row)
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, errors.FromDBError(err, s.def.Entity)
	}

	s.logger.Info("catalog entry created")
	return row, nil
}

func (s *Service[T, D]) Update(ctx context.Context, id string, dto D) (*T, error) {
	if appErr := validation.Struct(dto); appErr != nil {
		return nil, appErr
	}

	row, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	dto.Apply(row)
	if err := s.repo.Update(ctx, row); err != nil {
		return nil, errors.FromDBError(err, s.def.Entity)
	}
	return row, nil
}

func (s *Service[T, D]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.FromDBError(err, s.def.Entity)
	}
	s.logger.Info("catalog entry deleted", "id", id)
	return nil
}
