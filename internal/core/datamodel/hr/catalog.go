package hr

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ContractType struct {
	ID                      string              `gorm:"column:id_contract_type;primaryKey;type:uuid" json:"id_contract_type"`
	ContractTypeName        string              `gorm:"column:contract_type_name;size:100" json:"contract_type_name"`
	Description             string              `gorm:"column:description" json:"description"`
	TerminationNoticePeriod decimal.NullDecimal `gorm:"column:termination_notice_period;type:numeric(10,2)" json:"termination_notice_period"`
	OvertimeEligible        bool                `gorm:"column:overtime_eligible" json:"overtime_eligible"`
	BenefitsEligible        bool                `gorm:"column:benefits_eligible" json:"benefits_eligible"`
	Timestamps
}

func (ContractType) TableName() string { return "contract_type" }

func (m *ContractType) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }

type ContractState struct {
	ID          string `gorm:"column:id_contract_state;primaryKey;type:uuid" json:"id_contract_state"`
	Icon        string `gorm:"column:icon;size:100;not null" json:"icon"`
	HexColor    string `gorm:"column:hex_color;size:7;not null" json:"hex_color"`
	State       string `gorm:"column:state;size:100;not null" json:"state"`
	Description string `gorm:"column:description" json:"description"`
	Timestamps
}

func (ContractState) TableName() string { return "contract_state" }

func (m *ContractState) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }

type CertificateType struct {
	ID          string `gorm:"column:id_certificate_type;primaryKey;type:uuid" json:"id_certificate_type"`
	Name        string `gorm:"column:name;size:50;not null" json:"name"`
	Description string `gorm:"column:description;not null" json:"description"`
	Icon        string `gorm:"column:icon;size:100;not null" json:"icon"`
	HexColor    string `gorm:"column:hex_color;size:7;not null" json:"hex_color"`
	Timestamps
}

func (CertificateType) TableName() string { return "certificate_types" }

func (m *CertificateType) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }

type PaymentMethod struct {
	ID          string `gorm:"column:id_payment_method;primaryKey;type:uuid" json:"id_payment_method"`
	Name        string `gorm:"column:name;size:50;not null" json:"name"`
	Description string `gorm:"column:description;not null" json:"description"`
	Icon        string `gorm:"column:icon;size:100;not null" json:"icon"`
	HexColor    string `gorm:"column:hex_color;size:7;not null" json:"hex_color"`
	Timestamps
}

func (PaymentMethod) TableName() string { return "payment_methods" }

func (m *PaymentMethod) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }

type TrainingType struct {
	ID          string `gorm:"column:id_training_type;primaryKey;type:uuid" json:"id_training_type"`
	Name        string `gorm:"column:name;size:50;not null" json:"name"`
	Description string `gorm:"column:description;not null" json:"description"`
	Hours       *int   `gorm:"column:hours" json:"hours"`
	Timestamps
}

func (TrainingType) TableName() string { return "training_types" }

func (m *TrainingType) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }

type BenefitType struct {
	ID          string `gorm:"column:id_type_benefit;primaryKey;type:uuid" json:"id_type_benefit"`
	Name        string `gorm:"column:name;size:100" json:"name"`
	Description string `gorm:"column:description" json:"description"`
	Timestamps
}

func (BenefitType) TableName() string { return "type_benefit" }

func (m *BenefitType) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }

type LeaveType struct {
	ID          string `gorm:"column:id_leave_type;primaryKey;type:uuid" json:"id_leave_type"`
	LeaveType   string `gorm:"column:leave_type;size:100" json:"leave_type"`
	Description string `gorm:"column:description" json:"description"`
	IsPaid      bool   `gorm:"column:is_paid" json:"is_paid"`
	Timestamps
}

func (LeaveType) TableName() string { return "contract_leave_type" }

func (m *LeaveType) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }
