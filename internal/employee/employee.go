package employee

import (
	"context"
	"time"

	"github.com/frahmantamala/hr-management/internal/core/common/datatype"
	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/identity"
	"github.com/shopspring/decimal"
)

const (
	PermViewAll       = "view_all_employees"
	PermView          = "view_employee"
	PermCreate        = "create_employee"
	PermUpdate        = "update_employee"
	PermViewContracts = "view_employee_contracts"

	DefaultListLimit = 5
	maxExportRows    = 10000
)

var Sorting = query.Sorting{
	Columns: map[string]string{
		"first_name":      "u.first_name",
		"last_name":       "u.last_name",
		"email":           "u.email",
		"role_name":       "r.role_name",
		"department_name": "d.name",
		"state_name":      "cs.state",
	},
	Default: "first_name",
}

var ContractSorting = query.Sorting{
	Columns: map[string]string{
		"created_at":          "c.created_at",
		"base_salary":         "sh.base_salary",
		"role_name":           "r.role_name",
		"department_name":     "d.name",
		"contract_type_name":  "ct.contract_type_name",
		"contract_state_name": "cs.state",
	},
	Default: "created_at",
}

// ListFilter narrows the employee directory.
type ListFilter struct {
	query.ListParams
	Name         string
	DepartmentID string
	RoleID       string
	StatusID     string
}

type ContractFilter struct {
	query.ListParams
	ContractTypeName  string
	ContractStateName string
	RoleName          string
	DepartmentName    string
}

// ListRow is one directory entry, taken from the latest contract and its latest state.
type ListRow struct {
	ID             string  `json:"id"`
	EmployeeName   string  `json:"employee_name"`
	Email          string  `json:"email"`
	RoleName       *string `json:"role_name"`
	RoleHexColor   *string `json:"role_hex_color"`
	DepartmentName *string `json:"department_name"`
	StateName      *string `json:"state_name"`
	StateIcon      *string `json:"state_icon"`
	StateHexColor  *string `json:"state_hex_color"`
}

type ListResponse struct {
	Employees  []ListRow `json:"employees"`
	TotalCount int64     `json:"total_count"`
}

type ContractRow struct {
	ID                      string              `json:"id_contract"`
	BaseSalary              decimal.NullDecimal `json:"base_salary"`
	ExtraHourRate           decimal.NullDecimal `json:"extra_hour_rate"`
	RoleName                *string             `json:"role_name"`
	DepartmentName          *string             `json:"department_name"`
	CreatedAt               time.Time           `json:"created_at"`
	ContractTypeName        string              `json:"contract_type_name"`
	Description             string              `json:"description"`
	BenefitsEligible        bool                `json:"benefits_eligible"`
	OvertimeEligible        bool                `json:"overtime_eligible"`
	TerminationNoticePeriod decimal.NullDecimal `json:"termination_notice_period"`
	ContractStateName       *string             `json:"contract_state_name"`
	ContractStateIcon       *string             `json:"contract_state_icon"`
	ContractStateColor      *string             `json:"contract_state_color"`
}

type ContractsResponse struct {
	Contracts  []ContractRow `json:"contracts"`
	TotalCount int64         `json:"total_count"`
}

type Detail struct {
	ID             string                `json:"id_employee"`
	Username       string                `json:"username"`
	FirstName      string                `json:"first_name"`
	LastName       string                `json:"last_name"`
	EmployeeName   string                `json:"employee_name"`
	Email          string                `json:"email"`
	Phone          string                `json:"phone"`
	Photo          string                `json:"photo"`
	BirthDate      datatype.Date         `json:"birth_date"`
	DateJoined     time.Time             `json:"date_joined"`
	Group          *GroupRef             `json:"group"`
	Location       *Location             `json:"location"`
	Contract       *ContractDetail       `json:"contract"`
	Trainings      []TrainingDetail      `json:"trainings"`
	Certifications []CertificationDetail `json:"certifications"`
	Vacations      []hr.Vacation         `json:"vacations"`
}

type GroupRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Location struct {
	Address  string `json:"address"`
	City     string `json:"city"`
	District string `json:"district"`
	Country  string `json:"country"`
	ZipCode  string `json:"zip_code"`
}

type ContractDetail struct {
	ID           string            `json:"id_contract"`
	CreatedAt    time.Time         `json:"created_at"`
	ContractType *hr.ContractType  `json:"contract_type"`
	Role         *RoleRef          `json:"role"`
	Department   *DepartmentRef    `json:"department"`
	State        *StateRef         `json:"contract_state"`
	Salary       *hr.SalaryHistory `json:"salary"`
}

type RoleRef struct {
	ID          string `json:"id_role"`
	RoleName    string `json:"role_name"`
	HexColor    string `json:"hex_color"`
	Description string `json:"description"`
}

type DepartmentRef struct {
	ID          string `json:"id_department"`
	Name        string `json:"department_name"`
	Description string `json:"description"`
}

type StateRef struct {
	ID              string `json:"id_contract_state_contract"`
	ContractStateID string `json:"id_contract_state"`
	StateName       string `json:"state_name"`
	Description     string `json:"description"`
	HexColor        string `json:"hex_color"`
	Icon            string `json:"icon"`
}

type TrainingDetail struct {
	ID           string          `json:"id_training"`
	StartDate    datatype.Date   `json:"start_date"`
	EndDate      datatype.Date   `json:"end_date"`
	TrainingType TrainingTypeRef `json:"training_type"`
}

type TrainingTypeRef struct {
	ID          string `json:"id_training_type"`
	Name        string `json:"training_type_name"`
	Description string `json:"description"`
	Hours       *int   `json:"hours"`
}

type CertificationDetail struct {
	ID                  string             `json:"id_certification"`
	IssueDate           datatype.Date      `json:"issue_date"`
	ExpirationDate      *datatype.Date     `json:"expiration_date"`
	IssuingOrganization string             `json:"issuing_organization"`
	CertificateType     CertificateTypeRef `json:"certificate_type"`
}

type CertificateTypeRef struct {
	ID          string `json:"id_certificate_type"`
	Name        string `json:"certificate_type_name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	HexColor    string `json:"hex_color"`
}

// Onboarding is every row written when an employee is created, in insert order.
type Onboarding struct {
	User           *identity.AuthUser
	Employee       *hr.Employee
	Location       *hr.EmployeeLocation
	GroupID        int64
	Vacation       *hr.Vacation
	Trainings      []hr.Training
	Contract       *hr.Contract
	ContractState  *hr.ContractStateContract
	Salary         *hr.SalaryHistory
	Certifications []hr.Certification
}

// Revision is the state an existing employee is moved to by an update.
type Revision struct {
	EmployeeID     string
	UserID         int64
	Username       string
	FirstName      string
	LastName       string
	Email          string
	PasswordHash   string
	Phone          string
	Src            string
	BirthDate      datatype.Date
	Location       hr.EmployeeLocation
	GroupID        int64
	Today          datatype.Date
	Vacation       *hr.Vacation
	Trainings      []hr.Training
	Contract       *hr.Contract
	ContractState  *hr.ContractStateContract
	Salary         *hr.SalaryHistory
	Certifications []hr.Certification
}

type RepositoryAPI interface {
	List(ctx context.Context, f ListFilter) ([]ListRow, int64, error)
	GetDetail(ctx context.Context, id string) (*Detail, error)
	GetEmployee(ctx context.Context, id string) (*hr.Employee, error)
	Contracts(ctx context.Context, employeeID string, f ContractFilter) ([]ContractRow, int64, error)

	UsernameTaken(ctx context.Context, username string, exceptUserID int64) (bool, error)
	EmailTaken(ctx context.Context, email string, exceptUserID int64) (bool, error)
	GroupExists(ctx context.Context, groupID int64) (bool, error)

	Create(ctx context.Context, o *Onboarding) error
	Update(ctx context.Context, rev *Revision) error
}
