package hr

import (
	"github.com/frahmantamala/hr-management/internal/core/common/datatype"
	"gorm.io/gorm"
)

type Vacation struct {
	ID          string        `gorm:"column:id_vacation;primaryKey;type:uuid" json:"id_vacation"`
	EmployeeID  string        `gorm:"column:id_employee;type:uuid;not null;index" json:"id_employee"`
	AprovedDate datatype.Date `gorm:"column:aproved_date;not null" json:"aproved_date"`
	StartDate   datatype.Date `gorm:"column:start_date;not null" json:"start_date"`
	EndDate     datatype.Date `gorm:"column:end_date;not null" json:"end_date"`
	Timestamps
}

func (Vacation) TableName() string { return "vacations" }

func (m *Vacation) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }

type AbsenceReason struct {
	ID           string        `gorm:"column:id_absence_reason;primaryKey;type:uuid" json:"id_absence_reason"`
	EmployeeID   string        `gorm:"column:id_employee;type:uuid;not null;index" json:"id_employee"`
	SupervisorID string        `gorm:"column:id_employee_supervisor;type:uuid;not null" json:"id_employee_supervisor"`
	SubstituteID string        `gorm:"column:id_employee_substitute;type:uuid;not null" json:"id_employee_substitute"`
	Name         string        `gorm:"column:name;size:50;not null" json:"name"`
	Description  string        `gorm:"column:description;not null" json:"description"`
	StartDate    datatype.Date `gorm:"column:start_date;not null" json:"start_date"`
	EndDate      datatype.Date `gorm:"column:end_date;not null" json:"end_date"`
	Timestamps
}

func (AbsenceReason) TableName() string { return "absence_reason" }

func (m *AbsenceReason) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }
