// Package sqlitetest opens an in-memory sqlite database carrying every
// relational table, for repository and transaction tests.
package sqlitetest

import (
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/identity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Models() []interface{} {
	return []interface{}{
		&identity.AuthUser{},
		&identity.AuthGroup{},
		&identity.AuthPermission{},
		&identity.AuthUserGroup{},
		&identity.AuthGroupPermission{},
		&identity.AuthUserPermission{},
		&hr.Department{},
		&hr.TrainingType{},
		&hr.Role{},
		&hr.TrainingTypeRole{},
		&hr.ContractType{},
		&hr.ContractState{},
		&hr.CertificateType{},
		&hr.PaymentMethod{},
		&hr.BenefitType{},
		&hr.LeaveType{},
		&hr.Employee{},
		&hr.EmployeeLocation{},
		&hr.Training{},
		&hr.Certification{},
		&hr.Contract{},
		&hr.ContractStateContract{},
		&hr.SalaryHistory{},
		&hr.Vacation{},
		&hr.AbsenceReason{},
		&hr.Payment{},
		&hr.Bonus{},
		&hr.Deduction{},
	}
}

// Open returns a migrated database pinned to a single connection, since every
// new sqlite :memory: connection starts empty.
func Open() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(Models()...); err != nil {
		return nil, err
	}
	return db, nil
}
