package schedule

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
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]Schedule, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to list schedules", err)
	}
	if out == nil {
		out = []Schedule{}
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, employeeID string) (*Schedule, error) {
	sc, err := s.repo.Get(ctx, employeeID)
	if err != nil {
		return nil, errors.NewInternalError("failed to read schedule", err)
	}
	if sc == nil {
		return nil, notFound()
	}
	return sc, nil
}

// Create stores a schedule. An employee holds at most one.
func (s *Service) Create(ctx context.Context, dto ScheduleDTO) (*CreatedResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	existing, err := s.repo.Get(ctx, dto.EmployeeID)
	if err != nil {
		return nil, errors.NewInternalError("failed to read schedule", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("employee already has a schedule", errors.ErrCodeDuplicate)
	}

	id, err := s.repo.Insert(ctx, Schedule{EmployeeID: dto.EmployeeID, WorkSchedule: dto.WorkSchedule})
	if err != nil {
		return nil, errors.NewInternalError("failed to create schedule", err)
	}
	s.logger.Info("schedule created", "id_employee", dto.EmployeeID)
	return &CreatedResponse{ID: id}, nil
}

func (s *Service) Update(ctx context.Context, employeeID string, dto UpdateDTO) (*MessageResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	ok, err := s.repo.Update(ctx, employeeID, map[string]interface{}{"workSchedule": *dto.WorkSchedule})
	if err != nil {
		return nil, errors.NewInternalError("failed to update schedule", err)
	}
	if !ok {
		return nil, notFound()
	}
	return &MessageResponse{Message: "Document updated successfully"}, nil
}

func (s *Service) Delete(ctx context.Context, employeeID string) (*MessageResponse, error) {
	ok, err := s.repo.Delete(ctx, employeeID)
	if err != nil {
		return nil, errors.NewInternalError("failed to delete schedule", err)
	}
	if !ok {
		return nil, notFound()
	}
	return &MessageResponse{Message: "Document deleted successfully"}, nil
}

func notFound() error {
	return errors.NewNotFoundError("Document not found", errors.ErrCodeNotFound)
}
