package employee

import (
	"context"
	"log/slog"
	"time"

	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/datatype"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/identity"
	"github.com/frahmantamala/hr-management/internal/core/events"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo       RepositoryAPI
	publisher  events.Publisher
	bcryptCost int
	logger     *slog.Logger
	now        func() time.Time
}

func NewService(repo RepositoryAPI, publisher events.Publisher, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		publisher:  publisher,
		bcryptCost: bcryptCost,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *Service) List(ctx context.Context, f ListFilter) (ListResponse, error) {
	rows, total, err := s.repo.List(ctx, f)
	if err != nil {
		return ListResponse{}, errors.FromDBError(err, "employee")
	}
	if rows == nil {
		rows = []ListRow{}
	}
	return ListResponse{Employees: rows, TotalCount: total}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	d, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, errors.FromDBError(err, "employee")
	}
	if d == nil {
		return nil, errors.NewNotFoundError("employee not found", errors.ErrCodeEmployeeNotFound)
	}
	return d, nil
}

func (s *Service) Contracts(ctx context.Context, employeeID string, f ContractFilter) (ContractsResponse, error) {
	if _, err := s.load(ctx, employeeID); err != nil {
		return ContractsResponse{}, err
	}

	rows, total, err := s.repo.Contracts(ctx, employeeID, f)
	if err != nil {
		return ContractsResponse{}, errors.FromDBError(err, "contract")
	}
	if rows == nil {
		rows = []ContractRow{}
	}
	return ContractsResponse{Contracts: rows, TotalCount: total}, nil
}

// Create runs the onboarding write. Everything is inserted in one transaction;
// the uniqueness and group checks before it are advisory.
func (s *Service) Create(ctx context.Context, dto EmployeeDTO) (*CreatedResponse, error) {
	if appErr := dto.Validate(true); appErr != nil {
		return nil, appErr
	}
	if err := s.precheck(ctx, dto, 0); err != nil {
		return nil, err
	}

	hash, err := s.hash(dto.Employee.Password)
	if err != nil {
		return nil, err
	}

	actor := errors.EmployeeIDFromContext(ctx)
	today := datatype.NewDate(s.now())
	o := &Onboarding{
		User: &identity.AuthUser{
			Password:   hash,
			Username:   dto.Employee.Username,
			FirstName:  dto.Employee.FirstName,
			LastName:   dto.Employee.LastName,
			Email:      dto.Employee.Email,
			IsActive:   true,
			DateJoined: s.now(),
		},
		Employee: &hr.Employee{
			Phone:     dto.Employee.Phone,
			Src:       dto.Employee.ImgSrc,
			BirthDate: dto.Employee.BirthDate,
		},
		Location:       locationFrom(dto.Address),
		GroupID:        dto.Employee.GroupID,
		Vacation:       vacationFrom(dto.Vacations, today),
		Trainings:      trainingsFrom(dto.Trainings),
		Certifications: certificationsFrom(dto.Certificates),
	}
	o.Contract, o.ContractState = contractFrom(dto.Contract)
	o.Salary, err = salaryFrom(dto.Salary, o.Contract != nil, actor)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, errors.FromDBError(err, "employee")
	}

	s.logger.InfoContext(ctx, "employee created", "id_employee", o.Employee.ID, "username", o.User.Username)
	s.publish(ctx, events.NewEmployeeCreatedEvent(o.Employee.ID, o.User.Username))
	return &CreatedResponse{ID: o.Employee.ID}, nil
}

// Update applies the composite update to an existing employee.
func (s *Service) Update(ctx context.Context, id string, dto EmployeeDTO) (*UpdatedResponse, error) {
	current, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if appErr := dto.Validate(false); appErr != nil {
		return nil, appErr
	}
	if err := s.precheck(ctx, dto, current.AuthUserID); err != nil {
		return nil, err
	}

	rev := &Revision{
		EmployeeID:     id,
		UserID:         current.AuthUserID,
		Username:       dto.Employee.Username,
		FirstName:      dto.Employee.FirstName,
		LastName:       dto.Employee.LastName,
		Email:          dto.Employee.Email,
		Phone:          dto.Employee.Phone,
		Src:            dto.Employee.ImgSrc,
		BirthDate:      dto.Employee.BirthDate,
		Location:       *locationFrom(dto.Address),
		GroupID:        dto.Employee.GroupID,
		Today:          datatype.NewDate(s.now()),
		Trainings:      trainingsFrom(dto.Trainings),
		Certifications: certificationsFrom(dto.Certificates),
	}
	if dto.Employee.Password != "" {
		if rev.PasswordHash, err = s.hash(dto.Employee.Password); err != nil {
			return nil, err
		}
	}
	rev.Vacation = vacationFrom(dto.Vacations, rev.Today)
	rev.Contract, rev.ContractState = contractFrom(dto.Contract)
	// Without a new contract the salary is appended to the latest one.
	if rev.Salary, err = salaryFrom(dto.Salary, true, errors.EmployeeIDFromContext(ctx)); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, rev); err != nil {
		return nil, errors.FromDBError(err, "employee")
	}

	s.logger.InfoContext(ctx, "employee updated", "id_employee", id)
	s.publish(ctx, events.NewEmployeeGroupsChangedEvent(id))
	return &UpdatedResponse{
		ID:        id,
		Username:  rev.Username,
		FirstName: rev.FirstName,
		LastName:  rev.LastName,
		Email:     rev.Email,
	}, nil
}

// Export returns every employee matching f, ignoring paging.
func (s *Service) Export(ctx context.Context, f ListFilter) ([]ListRow, error) {
	f.Limit = maxExportRows
	f.Offset = 0
	rows, _, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, errors.FromDBError(err, "employee")
	}
	return rows, nil
}

func (s *Service) load(ctx context.Context, id string) (*hr.Employee, error) {
	e, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		return nil, errors.FromDBError(err, "employee")
	}
	if e == nil {
		return nil, errors.NewNotFoundError("employee not found", errors.ErrCodeEmployeeNotFound)
	}
	return e, nil
}

func (s *Service) precheck(ctx context.Context, dto EmployeeDTO, exceptUserID int64) error {
	taken, err := s.repo.UsernameTaken(ctx, dto.Employee.Username, exceptUserID)
	if err != nil {
		return errors.FromDBError(err, "user")
	}
	if taken {
		return errors.NewValidationFieldError("employee.username", "username is already taken", errors.ErrCodeDuplicate)
	}

	taken, err = s.repo.EmailTaken(ctx, dto.Employee.Email, exceptUserID)
	if err != nil {
		return errors.FromDBError(err, "user")
	}
	if taken {
		return errors.NewValidationFieldError("employee.email", "email is already registered", errors.ErrCodeDuplicate)
	}

	ok, err := s.repo.GroupExists(ctx, dto.Employee.GroupID)
	if err != nil {
		return errors.FromDBError(err, "group")
	}
	if !ok {
		return errors.NewValidationFieldError("employee.id_group", "group does not exist", errors.ErrCodeReference)
	}
	return nil
}

func (s *Service) hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", errors.NewInternalError("failed to hash password", err)
	}
	return string(b), nil
}

func (s *Service) publish(ctx context.Context, e events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish event", "event_type", e.EventType(), "error", err)
	}
}

func locationFrom(a AddressDTO) *hr.EmployeeLocation {
	return &hr.EmployeeLocation{
		Address:  a.Street,
		City:     a.City,
		District: a.District,
		Country:  a.Country,
		ZipCode:  a.ZipCode,
	}
}

func vacationFrom(v *VacationDTO, today datatype.Date) *hr.Vacation {
	if v == nil {
		return nil
	}
	return &hr.Vacation{AprovedDate: today, StartDate: v.StartDate, EndDate: v.EndDate}
}

func trainingsFrom(in []TrainingDTO) []hr.Training {
	out := make([]hr.Training, 0, len(in))
	for _, t := range in {
		out = append(out, hr.Training{TrainingTypeID: t.TrainingTypeID, StartDate: t.StartDate, EndDate: t.EndDate})
	}
	return out
}

func certificationsFrom(in []CertificateDTO) []hr.Certification {
	out := make([]hr.Certification, 0, len(in))
	for _, c := range in {
		out = append(out, hr.Certification{
			CertificateTypeID:   c.CertificateTypeID,
			IssuingOrganization: c.IssuingOrganization,
			IssueDate:           c.IssueDate,
			ExpirationDate:      c.ExpirationDate,
		})
	}
	return out
}

func contractFrom(c *ContractDTO) (*hr.Contract, *hr.ContractStateContract) {
	if c == nil {
		return nil, nil
	}
	contract := &hr.Contract{RoleID: c.RoleID, ContractTypeID: c.ContractTypeID}
	if c.ContractStateID == "" {
		return contract, nil
	}
	return contract, &hr.ContractStateContract{ContractStateID: c.ContractStateID}
}

func salaryFrom(in *SalaryDTO, hasContract bool, approver string) (*hr.SalaryHistory, error) {
	if in == nil {
		return nil, nil
	}
	if !hasContract {
		return nil, errors.NewValidationFieldError("salary", "salary requires a contract", errors.ErrCodeValidationFailed)
	}
	if approver == "" {
		return nil, errors.NewUnauthorizedError("salary approval requires an authenticated employee", errors.ErrCodeInvalidToken)
	}
	return &hr.SalaryHistory{
		ApprovedByID:  approver,
		BaseSalary:    in.BaseSalary,
		ExtraHourRate: in.ExtraHourRate,
		StartDate:     in.StartDate,
	}, nil
}
