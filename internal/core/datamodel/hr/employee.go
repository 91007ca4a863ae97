package hr

import (
	"github.com/frahmantamala/hr-management/internal/core/common/datatype"
	"gorm.io/gorm"
)

type Employee struct {
	ID         string        `gorm:"column:id_employee;primaryKey;type:uuid"`
	AuthUserID int64         `gorm:"column:id_auth_user;uniqueIndex;not null"`
	Phone      string        `gorm:"column:phone;size:50;not null"`
	Src        string        `gorm:"column:src;size:200;not null"`
	BirthDate  datatype.Date `gorm:"column:birth_date;not null"`
	Timestamps
}

func (Employee) TableName() string { return "employees" }

func (m *Employee) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }

type EmployeeLocation struct {
	ID         string `gorm:"column:id_location;primaryKey;type:uuid"`
	EmployeeID string `gorm:"column:id_employee;type:uuid;uniqueIndex;not null"`
	Address    string `gorm:"column:address;size:200"`
	City       string `gorm:"column:city;size:100"`
	District   string `gorm:"column:district;size:20"`
	Country    string `gorm:"column:country;size:2"`
	ZipCode    string `gorm:"column:zip_code;size:8"`
	Timestamps
}

func (EmployeeLocation) TableName() string { return "employee_location" }

func (m *EmployeeLocation) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }

type Training struct {
	ID             string        `gorm:"column:id_training;primaryKey;type:uuid"`
	EmployeeID     string        `gorm:"column:id_employee;type:uuid;not null;index"`
	TrainingTypeID string        `gorm:"column:id_training_type;type:uuid;not null"`
	StartDate      datatype.Date `gorm:"column:start_date;not null"`
	EndDate        datatype.Date `gorm:"column:end_date;not null"`
	Timestamps
}

func (Training) TableName() string { return "trainings" }

func (m *Training) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }

type Certification struct {
	ID                  string         `gorm:"column:id_certification;primaryKey;type:uuid"`
	EmployeeID          string         `gorm:"column:id_employee;type:uuid;not null;index"`
	CertificateTypeID   string         `gorm:"column:id_certificate_type;type:uuid;not null"`
	IssuingOrganization string         `gorm:"column:issuing_organization;size:50;not null"`
	IssueDate           datatype.Date  `gorm:"column:issue_date;not null"`
	ExpirationDate      *datatype.Date `gorm:"column:expiration_date"`
	Timestamps
}

func (Certification) TableName() string { return "certifications" }

func (m *Certification) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }
