package contract

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

func (s *Service) List(ctx context.Context, p query.ListParams) (ListResponse, error) {
	rows, total, err := s.repo.List(ctx, p)
	if err != nil {
		return ListResponse{}, errors.FromDBError(err, "contract state history")
	}
	return toResponse(rows, total), nil
}

// History lists the state changes across every contract of one employee, newest first.
func (s *Service) History(ctx context.Context, employeeID string, p query.ListParams) (ListResponse, error) {
	rows, total, err := s.repo.ListByEmployee(ctx, employeeID, p)
	if err != nil {
		return ListResponse{}, errors.FromDBError(err, "contract state history")
	}
	return toResponse(rows, total), nil
}

func (s *Service) Create(ctx context.Context, dto StateChangeDTO) (*CreatedResponse, error) {
	if err := s.validate(ctx, dto); err != nil {
		return nil, err
	}

	m := &hr.ContractStateContract{ContractStateID: dto.ContractStateID, ContractID: dto.ContractID}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, errors.FromDBError(err, "contract state history")
	}

	s.logger.InfoContext(ctx, "contract state recorded", "id_contract", m.ContractID, "id_contract_state", m.ContractStateID)
	return &CreatedResponse{ID: m.ID}, nil
}

func (s *Service) Update(ctx context.Context, id string, dto StateChangeDTO) (*Entry, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.FromDBError(err, "contract state history")
	}
	if m == nil {
		return nil, errors.NewNotFoundError("contract state history entry not found", errors.ErrCodeNotFound)
	}
	if err := s.validate(ctx, dto); err != nil {
		return nil, err
	}

	m.ContractStateID = dto.ContractStateID
	m.ContractID = dto.ContractID
	m.State = nil
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, errors.FromDBError(err, "contract state history")
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.FromDBError(err, "contract state history")
	}
	e := FromDataModel(updated)
	return &e, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.FromDBError(err, "contract state history entry")
	}
	return nil
}

func (s *Service) validate(ctx context.Context, dto StateChangeDTO) error {
	if appErr := validation.Struct(dto); appErr != nil {
		return appErr
	}

	ok, err := s.repo.ContractExists(ctx, dto.ContractID)
	if err != nil {
		return errors.FromDBError(err, "contract")
	}
	if !ok {
		return errors.NewValidationFieldError("id_contract", "contract does not exist", errors.ErrCodeReference)
	}

	ok, err = s.repo.StateExists(ctx, dto.ContractStateID)
	if err != nil {
		return errors.FromDBError(err, "contract state")
	}
	if !ok {
		return errors.NewValidationFieldError("id_contract_state", "contract state does not exist", errors.ErrCodeReference)
	}
	return nil
}

func toResponse(rows []hr.ContractStateContract, total int64) ListResponse {
	out := make([]Entry, 0, len(rows))
	for i := range rows {
		out = append(out, FromDataModel(&rows[i]))
	}
	return ListResponse{Data: out, Count: total}
}
