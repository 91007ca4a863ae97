package hr

import (
	"time"

	"gorm.io/gorm"
)

type Department struct {
	ID          string `gorm:"column:id_department;primaryKey;type:uuid" json:"id_department"`
	Name        string `gorm:"column:name;size:100;not null" json:"name"`
	Description string `gorm:"column:description" json:"description"`
	Roles       []Role `gorm:"foreignKey:DepartmentID;references:ID" json:"roles,omitempty"`
	Timestamps
}

func (Department) TableName() string { return "departments" }

func (m *Department) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }

type Role struct {
	ID            string         `gorm:"column:id_role;primaryKey;type:uuid" json:"id_role"`
	DepartmentID  string         `gorm:"column:id_department;type:uuid;not null" json:"id_department"`
	AuthGroupID   int64          `gorm:"column:id_auth_group;not null" json:"id_auth_group"`
	RoleName      string         `gorm:"column:role_name;size:100" json:"role_name"`
	HexColor      string         `gorm:"column:hex_color;size:7" json:"hex_color"`
	Description   string         `gorm:"column:description" json:"description"`
	Department    *Department    `gorm:"foreignKey:DepartmentID;references:ID" json:"department,omitempty"`
	TrainingTypes []TrainingType `gorm:"many2many:training_type_role;foreignKey:ID;joinForeignKey:id_role;references:ID;joinReferences:id_training_type" json:"training_types,omitempty"`
	Timestamps
}

func (Role) TableName() string { return "roles" }

func (m *Role) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }

// TrainingTypeRole links a role to the trainings it requires.
type TrainingTypeRole struct {
	TrainingTypeID string    `gorm:"column:id_training_type;primaryKey;type:uuid"`
	RoleID         string    `gorm:"column:id_role;primaryKey;type:uuid"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (TrainingTypeRole) TableName() string { return "training_type_role" }
