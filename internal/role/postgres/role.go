package postgres

import (
	"context"

	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/frahmantamala/hr-management/internal/role"
	"gorm.io/gorm"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) role.RepositoryAPI {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) List(ctx context.Context, p query.ListParams) ([]hr.Role, int64, error) {
	base := r.db.WithContext(ctx).Model(&hr.Role{}).
		Joins("LEFT JOIN departments ON departments.id_department = roles.id_department")
	base = p.Search(base, "roles.role_name", "roles.description")

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []hr.Role
	err := p.Page(base.Order(p.OrderClause(role.Sorting))).
		Preload("Department").
		Preload("TrainingTypes").
		Find(&rows).Error
	return rows, total, err
}

func (r *RoleRepository) GetByID(ctx context.Context, id string) (*hr.Role, error) {
	var m hr.Role
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("TrainingTypes").
		Where("id_role = ?", id).
		First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *RoleRepository) Create(ctx context.Context, m *hr.Role, trainingTypeIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Department", "TrainingTypes").Create(m).Error; err != nil {
			return err
		}
		return linkTrainingTypes(tx, m.ID, trainingTypeIDs)
	})
}

func (r *RoleRepository) Update(ctx context.Context, m *hr.Role, trainingTypeIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Department", "TrainingTypes").Save(m).Error; err != nil {
			return err
		}
		if err := tx.Where("id_role = ?", m.ID).Delete(&hr.TrainingTypeRole{}).Error; err != nil {
			return err
		}
		return linkTrainingTypes(tx, m.ID, trainingTypeIDs)
	})
}

func linkTrainingTypes(tx *gorm.DB, roleID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	links := make([]hr.TrainingTypeRole, 0, len(ids))
	for _, id := range ids {
		links = append(links, hr.TrainingTypeRole{RoleID: roleID, TrainingTypeID: id})
	}
	return tx.Create(&links).Error
}

func (r *RoleRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id_role = ?", id).Delete(&hr.Role{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RoleRepository) DepartmentExists(ctx context.Context, id string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&hr.Department{}).Where("id_department = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *RoleRepository) CountTrainingTypes(ctx context.Context, ids []string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&hr.TrainingType{}).Where("id_training_type IN ?", ids).Count(&n).Error
	return n, err
}
