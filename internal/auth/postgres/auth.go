package postgres

import (
	"context"
	"time"

	"github.com/frahmantamala/hr-management/internal/auth"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/identity"
	"gorm.io/gorm"
)

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) auth.RepositoryAPI {
	return &AuthRepository{db: db}
}

type credentialRow struct {
	UserID     int64
	EmployeeID string
	FirstName  string
	LastName   string
	Email      string
	Password   string
	IsActive   bool
}

func (c credentialRow) toCredentials() *auth.Credentials {
	return &auth.Credentials{
		Principal: auth.Principal{
			EmployeeID: c.EmployeeID,
			FirstName:  c.FirstName,
			LastName:   c.LastName,
			Email:      c.Email,
		},
		UserID:       c.UserID,
		PasswordHash: c.Password,
		IsActive:     c.IsActive,
	}
}

func (r *AuthRepository) credentials(ctx context.Context, where string, arg interface{}) (*auth.Credentials, error) {
	var row credentialRow
	res := r.db.WithContext(ctx).
		Table("auth_user AS u").
		Select("u.id AS user_id, e.id_employee AS employee_id, u.first_name, u.last_name, u.email, u.password, u.is_active").
		Joins("JOIN employees e ON e.id_auth_user = u.id AND e.deleted_at IS NULL").
		Where(where, arg).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return row.toCredentials(), nil
}

func (r *AuthRepository) FindCredentialsByEmail(ctx context.Context, email string) (*auth.Credentials, error) {
	return r.credentials(ctx, "LOWER(u.email) = LOWER(?)", email)
}

func (r *AuthRepository) FindPrincipal(ctx context.Context, employeeID string) (*auth.Credentials, error) {
	return r.credentials(ctx, "e.id_employee = ?", employeeID)
}

func (r *AuthRepository) TouchLastLogin(ctx context.Context, userID int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&identity.AuthUser{}).
		Where("id = ?", userID).
		Update("last_login", at).Error
}

// PermissionCodenames returns the union of direct grants, group grants and,
// for superusers, every known codename.
func (r *AuthRepository) PermissionCodenames(ctx context.Context, employeeID string) ([]string, error) {
	const q = `
SELECT p.codename FROM auth_permission p
JOIN auth_user_user_permissions up ON up.permission_id = p.id
JOIN employees e ON e.id_auth_user = up.user_id
WHERE e.id_employee = ? AND e.deleted_at IS NULL
UNION
SELECT p.codename FROM auth_permission p
JOIN auth_group_permissions gp ON gp.permission_id = p.id
JOIN auth_user_groups ug ON ug.group_id = gp.group_id
JOIN employees e ON e.id_auth_user = ug.user_id
WHERE e.id_employee = ? AND e.deleted_at IS NULL
UNION
SELECT p.codename FROM auth_permission p
WHERE EXISTS (
	SELECT 1 FROM auth_user u
	JOIN employees e ON e.id_auth_user = u.id
	WHERE e.id_employee = ? AND e.deleted_at IS NULL AND u.is_superuser = ?
)
ORDER BY 1`

	var codenames []string
	err := r.db.WithContext(ctx).Raw(q, employeeID, employeeID, employeeID, true).Scan(&codenames).Error
	return codenames, err
}
