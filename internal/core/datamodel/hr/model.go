package hr

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Timestamps mirrors the audit columns every HR table carries.
type Timestamps struct {
	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func assignID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
