package access

import (
	"context"

	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/identity"
)

const (
	PermViewAllGroups      = "view_all_auth_groups"
	PermViewGroup          = "view_auth_group"
	PermCreateGroup        = "create_auth_group"
	PermUpdateGroup        = "update_auth_group"
	PermDeleteGroup        = "delete_auth_group"
	PermAddGroupGrants     = "add_group_permissions"
	PermDeleteGroupGrants  = "delete_group_permissions"
	PermViewAllPermissions = "view_all_permissions"
	PermViewMemberships    = "view_all_permissions_user_group"
)

var GroupSorting = query.Sorting{
	Columns: map[string]string{
		"id":   "id",
		"name": "name",
	},
	Default: "name",
}

var PermissionSorting = query.Sorting{
	Columns: map[string]string{
		"id":       "id",
		"name":     "name",
		"codename": "codename",
	},
	Default: "codename",
}

var MembershipSorting = query.Sorting{
	Columns: map[string]string{
		"name": "u.first_name || ' ' || u.last_name",
	},
	Default: "name",
}

type Permission struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Codename string `json:"codename"`
}

// Group is an auth group together with its grants.
type Group struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions"`
}

type GroupsResponse struct {
	AuthGroups []Group `json:"auth_groups"`
	TotalCount int64   `json:"total_count"`
}

// MemberRow is one employee before its groups are attached.
type MemberRow struct {
	EmployeeID string `gorm:"column:id_employee" json:"id_employee"`
	UserID     int64  `json:"-"`
	Src        string `json:"src"`
	Name       string `json:"name"`
}

type Member struct {
	MemberRow
	Groups []Group `json:"groups"`
}

type MembersResponse struct {
	Employees  []Member `json:"employees"`
	TotalCount int64    `json:"total_count"`
}

type RepositoryAPI interface {
	ListGroups(ctx context.Context, p query.ListParams) ([]identity.AuthGroup, int64, error)
	GetGroup(ctx context.Context, id int64) (*identity.AuthGroup, error)
	GroupsByID(ctx context.Context, ids []int64) ([]identity.AuthGroup, error)
	CreateGroup(ctx context.Context, m *identity.AuthGroup) error
	UpdateGroup(ctx context.Context, m *identity.AuthGroup) error
	// DeleteGroup removes the group with its grants and memberships.
	DeleteGroup(ctx context.Context, id int64) error

	// Grants returns the permissions of each group, keyed by group id.
	Grants(ctx context.Context, groupIDs []int64) (map[int64][]Permission, error)
	Grant(ctx context.Context, groupID int64, permissionIDs []int64) error
	Revoke(ctx context.Context, groupID int64, permissionIDs []int64) (int64, error)
	MissingPermissions(ctx context.Context, ids []int64) ([]int64, error)

	ListPermissions(ctx context.Context, p query.ListParams) ([]Permission, int64, error)

	ListMembers(ctx context.Context, p query.ListParams) ([]MemberRow, int64, error)
	// Memberships returns the group ids of each user, keyed by user id.
	Memberships(ctx context.Context, userIDs []int64) (map[int64][]int64, error)
}
