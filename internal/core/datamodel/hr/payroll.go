package hr

import (
	"github.com/frahmantamala/hr-management/internal/core/common/datatype"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Payment struct {
	ID              string              `gorm:"column:id_payment;primaryKey;type:uuid" json:"id_payment"`
	EmployeeID      string              `gorm:"column:id_employee;type:uuid;not null;index" json:"id_employee"`
	SupervisorID    string              `gorm:"column:id_employee_supervisor;type:uuid;not null" json:"id_employee_supervisor"`
	PaymentMethodID string              `gorm:"column:id_payment_method;type:uuid;not null" json:"id_payment_method"`
	Amount          decimal.Decimal     `gorm:"column:amount;type:numeric(10,2);not null" json:"amount"`
	PaymentDate     datatype.Date       `gorm:"column:payment_date;not null" json:"payment_date"`
	ExtraAmount     decimal.NullDecimal `gorm:"column:extra_amount;type:numeric(10,2)" json:"extra_amount"`
	DeductionAmount decimal.NullDecimal `gorm:"column:deduction_amount;type:numeric(10,2)" json:"deduction_amount"`
	BonusAmount     decimal.NullDecimal `gorm:"column:bonus_amount;type:numeric(10,2)" json:"bonus_amount"`
	PaymentNote     *string             `gorm:"column:payment_note" json:"payment_note"`
	Src             *string             `gorm:"column:src;size:200" json:"src"`
	PaymentMethod   *PaymentMethod      `gorm:"foreignKey:PaymentMethodID;references:ID" json:"-"`
	Timestamps
}

func (Payment) TableName() string { return "payments" }

func (m *Payment) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }

type Bonus struct {
	ID         string          `gorm:"column:id_bonus;primaryKey;type:uuid" json:"id_bonus"`
	PaymentID  *string         `gorm:"column:id_payment;type:uuid;index" json:"id_payment"`
	EmployeeID string          `gorm:"column:id_employee;type:uuid;not null" json:"id_employee"`
	BonusNote  *string         `gorm:"column:bonus_note" json:"bonus_note"`
	Amount     decimal.Decimal `gorm:"column:amount;type:numeric(10,2);not null" json:"amount"`
	BonusDate  datatype.Date   `gorm:"column:bonus_date;not null" json:"bonus_date"`
	Timestamps
}

func (Bonus) TableName() string { return "bonuses" }

func (m *Bonus) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }

type Deduction struct {
	ID              string          `gorm:"column:id_deduction;primaryKey;type:uuid" json:"id_deduction"`
	PaymentID       string          `gorm:"column:id_payment;type:uuid;not null;index" json:"id_payment"`
	AbsenceReasonID string          `gorm:"column:id_absence_reason;type:uuid;not null" json:"id_absence_reason"`
	DeductionNote   *string         `gorm:"column:deduction_note" json:"deduction_note"`
	Amount          decimal.Decimal `gorm:"column:amount;type:numeric(10,2);not null" json:"amount"`
	DeductionDate   datatype.Date   `gorm:"column:deduction_date;not null" json:"deduction_date"`
	Timestamps
}

func (Deduction) TableName() string { return "deductions" }

func (m *Deduction) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }
