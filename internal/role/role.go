package role

import (
	"context"

	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
)

const (
	PermViewAll = "view_all_roles"
	PermView    = "view_role"
	PermCreate  = "create_role"
	PermUpdate  = "update_role"
	PermDelete  = "delete_role"
)

var Sorting = query.Sorting{
	Columns: map[string]string{
		"role_name":       "roles.role_name",
		"department_name": "departments.name",
		"created_at":      "roles.created_at",
	},
	Default: "role_name",
}

type RepositoryAPI interface {
	List(ctx context.Context, p query.ListParams) ([]hr.Role, int64, error)
	GetByID(ctx context.Context, id string) (*hr.Role, error)
	Create(ctx context.Context, role *hr.Role, trainingTypeIDs []string) error
	Update(ctx context.Context, role *hr.Role, trainingTypeIDs []string) error
	Delete(ctx context.Context, id string) error
	DepartmentExists(ctx context.Context, id string) (bool, error)
	CountTrainingTypes(ctx context.Context, ids []string) (int64, error)
}

// Role is the response shape, flattening the department name.
type Role struct {
	ID             string            `json:"id_role"`
	DepartmentID   string            `json:"id_department"`
	AuthGroupID    int64             `json:"id_auth_group"`
	RoleName       string            `json:"role_name"`
	HexColor       string            `json:"hex_color"`
	Description    string            `json:"description"`
	DepartmentName string            `json:"department_name"`
	TrainingTypes  []hr.TrainingType `json:"training_types"`
}

func FromDataModel(m *hr.Role) Role {
	r := Role{
		ID:            m.ID,
		DepartmentID:  m.DepartmentID,
		AuthGroupID:   m.AuthGroupID,
		RoleName:      m.RoleName,
		HexColor:      m.HexColor,
		Description:   m.Description,
		TrainingTypes: m.TrainingTypes,
	}
	if m.Department != nil {
		r.DepartmentName = m.Department.Name
	}
	if r.TrainingTypes == nil {
		r.TrainingTypes = []hr.TrainingType{}
	}
	return r
}
