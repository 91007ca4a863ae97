package postgres

import (
	"context"

	"github.com/frahmantamala/hr-management/internal/access"
	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/identity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AccessRepository struct {
	db *gorm.DB
}

func NewAccessRepository(db *gorm.DB) access.RepositoryAPI {
	return &AccessRepository{db: db}
}

func (r *AccessRepository) ListGroups(ctx context.Context, p query.ListParams) ([]identity.AuthGroup, int64, error) {
	base := p.Search(r.db.WithContext(ctx).Model(&identity.AuthGroup{}), "name")

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []identity.AuthGroup
	err := p.Page(base.Order(p.OrderClause(access.GroupSorting))).Find(&rows).Error
	return rows, total, err
}

func (r *AccessRepository) GetGroup(ctx context.Context, id int64) (*identity.AuthGroup, error) {
	var m identity.AuthGroup
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *AccessRepository) GroupsByID(ctx context.Context, ids []int64) ([]identity.AuthGroup, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []identity.AuthGroup
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("name").Find(&rows).Error
	return rows, err
}

func (r *AccessRepository) CreateGroup(ctx context.Context, m *identity.AuthGroup) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *AccessRepository) UpdateGroup(ctx context.Context, m *identity.AuthGroup) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *AccessRepository) DeleteGroup(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&identity.AuthGroupPermission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", id).Delete(&identity.AuthUserGroup{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&identity.AuthGroup{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *AccessRepository) Grants(ctx context.Context, groupIDs []int64) (map[int64][]access.Permission, error) {
	out := make(map[int64][]access.Permission, len(groupIDs))
	if len(groupIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		GroupID  int64
		ID       int64
		Name     string
		Codename string
	}
	err := r.db.WithContext(ctx).Table("auth_group_permissions gp").
		Select("gp.group_id, p.id, p.name, p.codename").
		Joins("JOIN auth_permission p ON p.id = gp.permission_id").
		Where("gp.group_id IN ?", groupIDs).
		Order("p.codename").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.GroupID] = append(out[row.GroupID], access.Permission{ID: row.ID, Name: row.Name, Codename: row.Codename})
	}
	return out, nil
}

func (r *AccessRepository) Grant(ctx context.Context, groupID int64, permissionIDs []int64) error {
	links := make([]identity.AuthGroupPermission, 0, len(permissionIDs))
	for _, id := range permissionIDs {
		links = append(links, identity.AuthGroupPermission{GroupID: groupID, PermissionID: id})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
}

func (r *AccessRepository) Revoke(ctx context.Context, groupID int64, permissionIDs []int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("group_id = ? AND permission_id IN ?", groupID, permissionIDs).
		Delete(&identity.AuthGroupPermission{})
	return res.RowsAffected, res.Error
}

func (r *AccessRepository) MissingPermissions(ctx context.Context, ids []int64) ([]int64, error) {
	var known []int64
	if err := r.db.WithContext(ctx).Model(&identity.AuthPermission{}).Where("id IN ?", ids).Pluck("id", &known).Error; err != nil {
		return nil, err
	}

	seen := make(map[int64]bool, len(known))
	for _, id := range known {
		seen[id] = true
	}
	var missing []int64
	for _, id := range ids {
		if !seen[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (r *AccessRepository) ListPermissions(ctx context.Context, p query.ListParams) ([]access.Permission, int64, error) {
	base := p.Search(r.db.WithContext(ctx).Model(&identity.AuthPermission{}), "name", "codename")

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []access.Permission
	err := p.Page(base.Select("id, name, codename").Order(p.OrderClause(access.PermissionSorting))).Scan(&rows).Error
	return rows, total, err
}

func (r *AccessRepository) ListMembers(ctx context.Context, p query.ListParams) ([]access.MemberRow, int64, error) {
	const name = "u.first_name || ' ' || u.last_name"

	base := r.db.WithContext(ctx).Table("employees e").
		Joins("JOIN auth_user u ON u.id = e.id_auth_user").
		Where("e.deleted_at IS NULL")
	base = p.Search(base, name, "u.email")

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []access.MemberRow
	err := p.Page(base.Select("e.id_employee, u.id AS user_id, e.src, " + name + " AS name").
		Order(p.OrderClause(access.MembershipSorting)).Order("e.id_employee")).
		Scan(&rows).Error
	return rows, total, err
}

func (r *AccessRepository) Memberships(ctx context.Context, userIDs []int64) (map[int64][]int64, error) {
	out := make(map[int64][]int64, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	var links []identity.AuthUserGroup
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Order("group_id").Find(&links).Error; err != nil {
		return nil, err
	}
	for _, l := range links {
		out[l.UserID] = append(out[l.UserID], l.GroupID)
	}
	return out, nil
}
