package postgres

import (
	"context"

	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/frahmantamala/hr-management/internal/department"
	"gorm.io/gorm"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) department.RepositoryAPI {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) List(ctx context.Context, p query.ListParams) ([]hr.Department, int64, error) {
	base := p.Search(r.db.WithContext(ctx).Model(&hr.Department{}), "name", "description")

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []hr.Department
	err := p.Page(base.Order(p.OrderClause(department.Sorting))).
		Preload("Roles", func(db *gorm.DB) *gorm.DB { return db.Order("role_name ASC") }).
		Preload("Roles.TrainingTypes").
		Find(&rows).Error
	return rows, total, err
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id string) (*hr.Department, error) {
	var d hr.Department
	err := r.db.WithContext(ctx).Where("id_department = ?", id).First(&d).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *DepartmentRepository) Create(ctx context.Context, d *hr.Department) error {
	return r.db.WithContext(ctx).Omit("Roles").Create(d).Error
}

func (r *DepartmentRepository) Update(ctx context.Context, d *hr.Department) error {
	return r.db.WithContext(ctx).Omit("Roles").Save(d).Error
}

func (r *DepartmentRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Unscoped().Where("id_department = ?", id).Delete(&hr.Department{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
