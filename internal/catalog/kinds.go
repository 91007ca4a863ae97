package catalog

import (
	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/shopspring/decimal"
)

var (
	ContractTypes = Definition{
		Entity:        "contract type",
		Path:          "/contract_types",
		IDColumn:      "id_contract_type",
		Singular:      "contract_type",
		Plural:        "contract_types",
		SearchColumns: []string{"contract_type_name", "description"},
		Sorting: query.Sorting{
			Columns: map[string]string{
				"contract_type_name":        "contract_type_name",
				"termination_notice_period": "termination_notice_period",
				"created_at":                "created_at",
			},
			Default: "contract_type_name",
		},
	}

	ContractStates = Definition{
		Entity:        "contract state",
		Path:          "/contract_states",
		IDColumn:      "id_contract_state",
		Singular:      "contract_state",
		Plural:        "contract_states",
		SearchColumns: []string{"state", "description"},
		Sorting: query.Sorting{
			Columns: map[string]string{"state": "state", "created_at": "created_at"},
			Default: "state",
		},
	}

	CertificateTypes = Definition{
		Entity:        "certificate type",
		Path:          "/certificate_types",
		IDColumn:      "id_certificate_type",
		Singular:      "certificate_type",
		Plural:        "certificate_types",
		SearchColumns: []string{"name", "description"},
		Sorting: query.Sorting{
			Columns: map[string]string{"name": "name", "created_at": "created_at"},
			Default: "name",
		},
	}

	PaymentMethods = Definition{
		Entity:        "payment method",
		Path:          "/payment_methods",
		IDColumn:      "id_payment_method",
		Singular:      "payment_method",
		Plural:        "payment_methods",
		SearchColumns: []string{"name", "description"},
		Sorting: query.Sorting{
			Columns: map[string]string{"name": "name", "created_at": "created_at"},
			Default: "name",
		},
	}

	TrainingTypes = Definition{
		Entity:        "training type",
		Path:          "/training_types",
		IDColumn:      "id_training_type",
		Singular:      "training_type",
		Plural:        "training_types",
		SearchColumns: []string{"name", "description"},
		Sorting: query.Sorting{
			Columns: map[string]string{"name": "name", "hours": "hours", "created_at": "created_at"},
			Default: "name",
		},
	}

	BenefitTypes = Definition{
		Entity:        "benefit type",
		Path:          "/type_benefits",
		IDColumn:      "id_type_benefit",
		Singular:      "type_benefit",
		Plural:        "type_benefits",
		SearchColumns: []string{"name", "description"},
		Sorting: query.Sorting{
			Columns: map[string]string{"name": "name", "created_at": "created_at"},
			Default: "name",
		},
	}

	LeaveTypes = Definition{
		Entity:        "leave type",
		Path:          "/contract_leave_types",
		IDColumn:      "id_leave_type",
		Singular:      "contract_leave_type",
		Plural:        "contract_leave_types",
		SearchColumns: []string{"leave_type", "description"},
		Sorting: query.Sorting{
			Columns: map[string]string{"leave_type": "leave_type", "is_paid": "is_paid", "created_at": "created_at"},
			Default: "leave_type",
		},
	}
)

// All lists every catalog, in seeding order.
func All() []Definition {
	return []Definition{ContractTypes, ContractStates, CertificateTypes, PaymentMethods, TrainingTypes, BenefitTypes, LeaveTypes}
}

type ContractTypeDTO struct {
	ContractTypeName        string              `json:"contract_type_name" validate:"required,max=100"`
	Description             string              `json:"description"`
	TerminationNoticePeriod decimal.NullDecimal `json:"termination_notice_period"`
	OvertimeEligible        bool                `json:"overtime_eligible"`
	BenefitsEligible        bool                `json:"benefits_eligible"`
}

func (d ContractTypeDTO) Apply(m *hr.ContractType) {
	m.ContractTypeName = d.ContractTypeName
	m.Description = d.Description
	m.TerminationNoticePeriod = d.TerminationNoticePeriod
	m.OvertimeEligible = d.OvertimeEligible
	m.BenefitsEligible = d.BenefitsEligible
}

type ContractStateDTO struct {
	State       string `json:"state" validate:"required,max=100"`
	Description string `json:"description"`
	Icon        string `json:"icon" validate:"max=100"`
	HexColor    string `json:"hex_color" validate:"required,hexcolor,max=7"`
}

func (d ContractStateDTO) Apply(m *hr.ContractState) {
	m.State = d.State
	m.Description = d.Description
	m.Icon = d.Icon
	m.HexColor = d.HexColor
}

type CertificateTypeDTO struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description"`
	Icon        string `json:"icon" validate:"max=100"`
	HexColor    string `json:"hex_color" validate:"required,hexcolor,max=7"`
}

func (d CertificateTypeDTO) Apply(m *hr.CertificateType) {
	m.Name = d.Name
	m.Description = d.Description
	m.Icon = d.Icon
	m.HexColor = d.HexColor
}

type PaymentMethodDTO struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description"`
	Icon        string `json:"icon" validate:"max=100"`
	HexColor    string `json:"hex_color" validate:"required,hexcolor,max=7"`
}

func (d PaymentMethodDTO) Apply(m *hr.PaymentMethod) {
	m.Name = d.Name
	m.Description = d.Description
	m.Icon = d.Icon
	m.HexColor = d.HexColor
}

type TrainingTypeDTO struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description"`
	Hours       *int   `json:"hours" validate:"omitempty,min=0"`
}

func (d TrainingTypeDTO) Apply(m *hr.TrainingType) {
	m.Name = d.Name
	m.Description = d.Description
	m.Hours = d.Hours
}

type BenefitTypeDTO struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

func (d BenefitTypeDTO) Apply(m *hr.BenefitType) {
	m.Name = d.Name
	m.Description = d.Description
}

type LeaveTypeDTO struct {
	LeaveType   string `json:"leave_type" validate:"required,max=100"`
	Description string `json:"description"`
	IsPaid      bool   `json:"is_paid"`
}

func (d LeaveTypeDTO) Apply(m *hr.LeaveType) {
	m.LeaveType = d.LeaveType
	m.Description = d.Description
	m.IsPaid = d.IsPaid
}
