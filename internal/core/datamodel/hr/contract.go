package hr

import (
	"github.com/frahmantamala/hr-management/internal/core/common/datatype"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Contract struct {
	ID             string `gorm:"column:id_contract;primaryKey;type:uuid"`
	EmployeeID     string `gorm:"column:id_employee;type:uuid;not null;index"`
	RoleID         string `gorm:"column:id_role;type:uuid;not null"`
	ContractTypeID string `gorm:"column:id_contract_type;type:uuid;not null"`
	Timestamps
}

func (Contract) TableName() string { return "contract" }

func (m *Contract) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }

// ContractStateContract is one entry of a contract's state history.
type ContractStateContract struct {
	ID              string         `gorm:"column:id_contract_state_contract;primaryKey;type:uuid" json:"id_contract_state_contract"`
	ContractStateID string         `gorm:"column:id_contract_state;type:uuid;not null" json:"id_contract_state"`
	ContractID      string         `gorm:"column:id_contract;type:uuid;not null;index" json:"id_contract"`
	State           *ContractState `gorm:"foreignKey:ContractStateID;references:ID" json:"-"`
	Timestamps
}

func (ContractStateContract) TableName() string { return "contract_state_contract" }

func (m *ContractStateContract) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }

type SalaryHistory struct {
	ID            string          `gorm:"column:id_salary_history;primaryKey;type:uuid" json:"id_salary_history"`
	ContractID    string          `gorm:"column:id_contract;type:uuid;not null;index" json:"id_contract"`
	ApprovedByID  string          `gorm:"column:id_employee_aproved_by;type:uuid;not null" json:"id_employee_aproved_by"`
	BaseSalary    decimal.Decimal `gorm:"column:base_salary;type:numeric(10,2)" json:"base_salary"`
	ExtraHourRate decimal.Decimal `gorm:"column:extra_hour_rate;type:numeric(10,2)" json:"extra_hour_rate"`
	StartDate     datatype.Date   `gorm:"column:start_date" json:"start_date"`
	Timestamps
}

func (SalaryHistory) TableName() string { return "salary_history" }

func (m *SalaryHistory) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }
