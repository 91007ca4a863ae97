package extrahours

import (
	"context"
	"log/slog"

	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/datatype"
)

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]Entry, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to list extra hours", err)
	}
	if out == nil {
		out = []Entry{}
	}
	return out, nil
}

// Find treats key as a date when it parses as one, and as an employee id otherwise.
func (s *Service) Find(ctx context.Context, key string) ([]Entry, error) {
	byDate := datatype.IsDate(key)

	var (
		out []Entry
		err error
	)
	if byDate {
		out, err = s.repo.ListByDate(ctx, key)
	} else {
		out, err = s.repo.ListByEmployee(ctx, key)
	}
	if err != nil {
		return nil, errors.NewInternalError("failed to read extra hours", err)
	}

	switch {
	case len(out) > 0:
		return out, nil
	case byDate:
		return nil, errors.NewNotFoundError("No records found for the given date", errors.ErrCodeNotFound)
	default:
		return nil, errors.NewNotFoundError("Document not found for the given ID", errors.ErrCodeNotFound)
	}
}

func (s *Service) Get(ctx context.Context, employeeID, date string) (*Entry, error) {
	e, err := s.repo.Get(ctx, employeeID, date)
	if err != nil {
		return nil, errors.NewInternalError("failed to read extra hours", err)
	}
	if e == nil {
		return nil, notFound()
	}
	return e, nil
}

func (s *Service) Create(ctx context.Context, dto EntryDTO) (*CreatedResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	id, err := s.repo.Insert(ctx, dto.entry())
	if err != nil {
		return nil, errors.NewInternalError("failed to create extra hours", err)
	}
	s.logger.Info("extra hours recorded", "id_employee", dto.EmployeeID, "date", dto.Date)
	return &CreatedResponse{ID: id}, nil
}

// Update checks the merged window so a partial update cannot invert it.
func (s *Service) Update(ctx context.Context, employeeID, date string, dto UpdateDTO) (*MessageResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	current, err := s.Get(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}
	next := dto.merge(*current)
	if err := window(next.Start, next.End); err != nil {
		return nil, err
	}

	ok, err := s.repo.Update(ctx, employeeID, date, map[string]interface{}{"start": next.Start, "end": next.End})
	if err != nil {
		return nil, errors.NewInternalError("failed to update extra hours", err)
	}
	if !ok {
		return nil, notFound()
	}
	return &MessageResponse{Message: "Document updated successfully"}, nil
}

func (s *Service) Delete(ctx context.Context, employeeID, date string) (*MessageResponse, error) {
	ok, err := s.repo.Delete(ctx, employeeID, date)
	if err != nil {
		return nil, errors.NewInternalError("failed to delete extra hours", err)
	}
	if !ok {
		return nil, notFound()
	}
	return &MessageResponse{Message: "Document deleted successfully"}, nil
}

func notFound() error {
	return errors.NewNotFoundError("Document not found", errors.ErrCodeNotFound)
}
