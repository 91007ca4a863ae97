package department

import (
	"context"

	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
)

const (
	PermViewAll = "view_all_departments"
	PermView    = "view_department"
	PermCreate  = "create_department"
	PermUpdate  = "update_department"
	PermDelete  = "delete_department"
)

var Sorting = query.Sorting{
	Columns: map[string]string{
		"name":       "name",
		"created_at": "created_at",
	},
	Default: "name",
}

type RepositoryAPI interface {
	List(ctx context.Context, p query.ListParams) ([]hr.Department, int64, error)
	GetByID(ctx context.Context, id string) (*hr.Department, error)
	Create(ctx context.Context, d *hr.Department) error
	Update(ctx context.Context, d *hr.Department) error
	Delete(ctx context.Context, id string) error
}
