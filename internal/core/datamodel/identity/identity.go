package identity

import "time"

type AuthUser struct {
	ID          int64      `gorm:"primaryKey"`
	Password    string     `gorm:"column:password;size:128;not null"`
	LastLogin   *time.Time `gorm:"column:last_login"`
	IsSuperuser bool       `gorm:"column:is_superuser;not null;default:false"`
	Username    string     `gorm:"column:username;size:150;uniqueIndex;not null"`
	FirstName   string     `gorm:"column:first_name;size:150;not null"`
	LastName    string     `gorm:"column:last_name;size:150;not null"`
	Email       string     `gorm:"column:email;size:254;not null"`
	IsStaff     bool       `gorm:"column:is_staff;not null;default:false"`
	IsActive    bool       `gorm:"column:is_active;not null;default:true"`
	DateJoined  time.Time  `gorm:"column:date_joined;not null"`
}

func (AuthUser) TableName() string {
	return "auth_user"
}

type AuthGroup struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"column:name;size:150;uniqueIndex;not null"`
}

func (AuthGroup) TableName() string {
	return "auth_group"
}

type AuthPermission struct {
	ID       int64  `gorm:"primaryKey"`
	Name     string `gorm:"column:name;size:255;not null"`
	Codename string `gorm:"column:codename;size:100;uniqueIndex;not null"`
}

func (AuthPermission) TableName() string {
	return "auth_permission"
}

type AuthUserGroup struct {
	ID      int64 `gorm:"primaryKey"`
	UserID  int64 `gorm:"column:user_id;not null;uniqueIndex:ux_user_group"`
	GroupID int64 `gorm:"column:group_id;not null;uniqueIndex:ux_user_group"`
}

func (AuthUserGroup) TableName() string {
	return "auth_user_groups"
}

type AuthGroupPermission struct {
	ID           int64 `gorm:"primaryKey"`
	GroupID      int64 `gorm:"column:group_id;not null;uniqueIndex:ux_group_permission"`
	PermissionID int64 `gorm:"column:permission_id;not null;uniqueIndex:ux_group_permission"`
}

func (AuthGroupPermission) TableName() string {
	return "auth_group_permissions"
}

type AuthUserPermission struct {
	ID           int64 `gorm:"primaryKey"`
	UserID       int64 `gorm:"column:user_id;not null;uniqueIndex:ux_user_permission"`
	PermissionID int64 `gorm:"column:permission_id;not null;uniqueIndex:ux_user_permission"`
}

func (AuthUserPermission) TableName() string {
	return "auth_user_user_permissions"
}
