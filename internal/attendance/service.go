package attendance

import (
	"context"
	"log/slog"
	"time"

	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/datatype"
)

type Service struct {
	repo        RepositoryAPI
	dedupWindow time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// NewService builds the attendance service. A zero dedupWindow lets every check-in open a session.
func NewService(repo RepositoryAPI, dedupWindow time.Duration, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		dedupWindow: dedupWindow,
		now:         time.Now,
		logger:      logger,
	}
}

// WithClock replaces the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) List(ctx context.Context) ([]Record, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to list attendance", err)
	}
	return nonNil(recs), nil
}

// Find treats key as a date when it parses as one, and as an employee id otherwise.
func (s *Service) Find(ctx context.Context, key string) ([]Record, error) {
	if datatype.IsDate(key) {
		recs, err := s.repo.ListByDate(ctx, key)
		if err != nil {
			return nil, errors.NewInternalError("failed to read attendance", err)
		}
		if len(recs) == 0 {
			return nil, errors.NewNotFoundError("No records found for the given date", errors.ErrCodeNotFound)
		}
		return recs, nil
	}

	recs, err := s.repo.ListByEmployee(ctx, key)
	if err != nil {
		return nil, errors.NewInternalError("failed to read attendance", err)
	}
	if len(recs) == 0 {
		return nil, errors.NewNotFoundError("Document not found for the given ID", errors.ErrCodeNotFound)
	}
	return recs, nil
}

func (s *Service) Get(ctx context.Context, employeeID, date string) (*Record, error) {
	rec, err := s.repo.Get(ctx, employeeID, date)
	if err != nil {
		return nil, errors.NewInternalError("failed to read attendance", err)
	}
	if rec == nil {
		return nil, notFound()
	}
	return rec, nil
}

func (s *Service) Create(ctx context.Context, dto RecordDTO) (*CreatedResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	id, err := s.repo.Insert(ctx, dto.record())
	if err != nil {
		return nil, errors.NewInternalError("failed to create attendance", err)
	}
	s.logger.Info("attendance created", "id_employee", dto.EmployeeID, "date", dto.Date)
	return &CreatedResponse{ID: id}, nil
}

func (s *Service) UpdateByEmployee(ctx context.Context, employeeID string, dto UpdateDTO) (*MessageResponse, error) {
	fields, err := updateFields(dto)
	if err != nil {
		return nil, err
	}
	ok, uerr := s.repo.UpdateByEmployee(ctx, employeeID, fields)
	return updated(ok, uerr)
}

func (s *Service) Update(ctx context.Context, employeeID, date string, dto UpdateDTO) (*MessageResponse, error) {
	fields, err := updateFields(dto)
	if err != nil {
		return nil, err
	}
	ok, uerr := s.repo.Update(ctx, employeeID, date, fields)
	return updated(ok, uerr)
}

func (s *Service) Delete(ctx context.Context, employeeID, date string) (*MessageResponse, error) {
	ok, err := s.repo.Delete(ctx, employeeID, date)
	if err != nil {
		return nil, errors.NewInternalError("failed to delete attendance", err)
	}
	if !ok {
		return nil, notFound()
	}
	return &MessageResponse{Message: "Document deleted successfully"}, nil
}

// CheckIn opens a session for the caller today. Inside the dedup window the
// current record is returned unchanged.
func (s *Service) CheckIn(ctx context.Context, employeeID string) (*Record, error) {
	now := s.now()
	date := now.Format(datatype.DateLayout)

	if s.dedupWindow > 0 {
		rec, err := s.repo.Get(ctx, employeeID, date)
		if err != nil {
			return nil, errors.NewInternalError("failed to read attendance", err)
		}
		if rec != nil && s.withinWindow(rec, now) {
			s.logger.Debug("check-in ignored inside dedup window", "id_employee", employeeID)
			return rec, nil
		}
	}

	rec, err := s.repo.PushSession(ctx, employeeID, date, Session{Checkin: now.Format(ClockLayout)})
	if err != nil {
		return nil, errors.NewInternalError("failed to check in", err)
	}
	s.logger.Info("checked in", "id_employee", employeeID, "date", date)
	return rec, nil
}

// CheckOut closes the first open session of the caller today.
func (s *Service) CheckOut(ctx context.Context, employeeID string) (*Record, error) {
	now := s.now()
	date := now.Format(datatype.DateLayout)

	rec, err := s.repo.CloseSession(ctx, employeeID, date, now.Format(ClockLayout))
	if err != nil {
		return nil, errors.NewInternalError("failed to check out", err)
	}
	if rec == nil {
		return nil, errors.NewConflictError("no open session to check out", errors.ErrCodeNoOpenSession)
	}
	s.logger.Info("checked out", "id_employee", employeeID, "date", date)
	return rec, nil
}

func (s *Service) DeleteAll(ctx context.Context) (int64, error) {
	return s.repo.DeleteAll(ctx)
}

func (s *Service) withinWindow(rec *Record, now time.Time) bool {
	if len(rec.Sessions) == 0 {
		return false
	}
	last := rec.Sessions[len(rec.Sessions)-1]
	at, err := time.ParseInLocation(datatype.DateLayout+" "+ClockLayout, rec.Date+" "+last.Checkin, now.Location())
	if err != nil {
		return false
	}
	return now.Sub(at) < s.dedupWindow
}

func updateFields(dto UpdateDTO) (map[string]interface{}, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	fields := dto.fields()
	if len(fields) == 0 {
		return nil, errors.NewValidationError("no fields to update", errors.ErrCodeInvalidBody)
	}
	return fields, nil
}

func updated(ok bool, err error) (*MessageResponse, error) {
	if err != nil {
		return nil, errors.NewInternalError("failed to update attendance", err)
	}
	if !ok {
		return nil, notFound()
	}
	return &MessageResponse{Message: "Document updated successfully"}, nil
}

func notFound() error {
	return errors.NewNotFoundError("Document not found", errors.ErrCodeNotFound)
}

func nonNil(recs []Record) []Record {
	if recs == nil {
		return []Record{}
	}
	return recs
}
