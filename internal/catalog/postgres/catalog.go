package postgres

import (
	"context"

	"github.com/frahmantamala/hr-management/internal/catalog"
	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"gorm.io/gorm"
)

type CatalogRepository[T any] struct {
	db  *gorm.DB
	def catalog.Definition
}

func NewCatalogRepository[T any](db *gorm.DB, def catalog.Definition) catalog.RepositoryAPI[T] {
	return &CatalogRepository[T]{db: db, def: def}
}

func (r *CatalogRepository[T]) List(ctx context.Context, p query.ListParams) ([]T, int64, error) {
	base := p.Search(r.db.WithContext(ctx).Model(new(T)), r.def.SearchColumns...)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []T
	err := p.Page(base.Order(p.OrderClause(r.def.Sorting))).Find(&rows).Error
	return rows, total, err
}

func (r *CatalogRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	row := new(T)
	err := r.db.WithContext(ctx).Where(r.def.IDColumn+" = ?", id).First(row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}

func (r *CatalogRepository[T]) Create(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *CatalogRepository[T]) Update(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *CatalogRepository[T]) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where(r.def.IDColumn+" = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
