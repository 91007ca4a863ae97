package leave

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

func (s *Service) ListVacations(ctx context.Context, f VacationFilter) (query.Result[VacationView], error) {
	rows, total, err := s.repo.ListVacations(ctx, f)
	if err != nil {
		return query.Result[VacationView]{}, errors.FromDBError(err, "vacation")
	}
	if rows == nil {
		rows = []VacationView{}
	}
	return query.Result[VacationView]{Data: rows, TotalCount: total}, nil
}

func (s *Service) GetVacation(ctx context.Context, id string) (*hr.Vacation, error) {
	m, err := s.repo.GetVacation(ctx, id)
	if err != nil {
		return nil, errors.FromDBError(err, "vacation")
	}
	if m == nil {
		return nil, errors.NewNotFoundError("vacation not found", errors.ErrCodeNotFound)
	}
	return m, nil
}

func (s *Service) CreateVacation(ctx context.Context, dto VacationDTO) (*hr.Vacation, error) {
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}
	if err := s.employeesExist(ctx, map[string]string{"id_employee": dto.EmployeeID}); err != nil {
		return nil, err
	}

	m := &hr.Vacation{}
	dto.apply(m)
	if err := s.repo.CreateVacation(ctx, m); err != nil {
		return nil, errors.FromDBError(err, "vacation")
	}
	s.logger.InfoContext(ctx, "vacation created", "id_vacation", m.ID, "id_employee", m.EmployeeID)
	return m, nil
}

func (s *Service) UpdateVacation(ctx context.Context, id string, dto VacationDTO) (*hr.Vacation, error) {
	m, err := s.GetVacation(ctx, id)
	if err != nil {
		return nil, err
	}
	if appErr := dto.Validate(); appErr != nil {
		return nil, appErr
	}
	if err := s.employeesExist(ctx, map[string]string{"id_employee": dto.EmployeeID}); err != nil {
		return nil, err
	}

	dto.apply(m)
	if err := s.repo.UpdateVacation(ctx, m); err != nil {
		return nil, errors.FromDBError(err, "vacation")
	}
	return m, nil
}

func (s *Service) DeleteVacation(ctx context.Context, id string) error {
	if err := s.repo.DeleteVacation(ctx, id); err != nil {
		return errors.FromDBError(err, "vacation")
	}
	return nil
}

func (s *Service) ListAbsences(ctx context.Context, f AbsenceFilter) (query.Result[AbsenceView], error) {
	rows, total, err := s.repo.ListAbsences(ctx, f)
	if err != nil {
		return query.Result[AbsenceView]{}, errors.FromDBError(err, "absence reason")
	}
	if rows == nil {
		rows = []AbsenceView{}
	}
	return query.Result[AbsenceView]{Data: rows, TotalCount: total}, nil
}

func (s *Service) GetAbsence(ctx context.Context, id string) (*hr.AbsenceReason, error) {
	m, err := s.repo.GetAbsence(ctx, id)
	if err != nil {
		return nil, errors.FromDBError(err, "absence reason")
	}
	if m == nil {
		return nil, errors.NewNotFoundError("absence reason not found", errors.ErrCodeNotFound)
	}
	return m, nil
}

func (s *Service) CreateAbsence(ctx context.Context, dto AbsenceDTO) (*hr.AbsenceReason, error) {
	if err := s.checkAbsence(ctx, &dto); err != nil {
		return nil, err
	}

	m := &hr.AbsenceReason{}
	dto.apply(m)
	if err := s.repo.CreateAbsence(ctx, m); err != nil {
		return nil, errors.FromDBError(err, "absence reason")
	}
	s.logger.InfoContext(ctx, "absence reason created", "id_absence_reason", m.ID, "id_employee", m.EmployeeID)
	return m, nil
}

func (s *Service) UpdateAbsence(ctx context.Context, id string, dto AbsenceDTO) (*hr.AbsenceReason, error) {
	m, err := s.GetAbsence(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkAbsence(ctx, &dto); err != nil {
		return nil, err
	}

	dto.apply(m)
	if err := s.repo.UpdateAbsence(ctx, m); err != nil {
		return nil, errors.FromDBError(err, "absence reason")
	}
	return m, nil
}

func (s *Service) DeleteAbsence(ctx context.Context, id string) error {
	if err := s.repo.DeleteAbsence(ctx, id); err != nil {
		return errors.FromDBError(err, "absence reason")
	}
	return nil
}

func (s *Service) checkAbsence(ctx context.Context, dto *AbsenceDTO) error {
	if appErr := dto.Validate(); appErr != nil {
		return appErr
	}
	return s.employeesExist(ctx, map[string]string{
		"id_employee":            dto.EmployeeID,
		"id_employee_supervisor": dto.SupervisorID,
		"id_employee_substitute": dto.SubstituteID,
	})
}

// employeesExist reports every field whose employee id is unknown.
func (s *Service) employeesExist(ctx context.Context, fields map[string]string) error {
	ids := make([]string, 0, len(fields))
	for _, id := range fields {
		ids = append(ids, id)
	}

	missing, err := s.repo.MissingEmployees(ctx, ids...)
	if err != nil {
		return errors.FromDBError(err, "employee")
	}
	if len(missing) == 0 {
		return nil
	}

	unknown := make(map[string]bool, len(missing))
	for _, id := range missing {
		unknown[id] = true
	}
	var out []errors.ValidationError
	for _, field := range []string{"id_employee", "id_employee_supervisor", "id_employee_substitute"} {
		if id, ok := fields[field]; ok && unknown[id] {
			out = append(out, errors.ValidationError{Field: field, Message: "employee does not exist", Code: string(errors.ErrCodeReference)})
		}
	}
	return errors.NewValidationErrors(out)
}
