package access

import "strings"

type GroupDTO struct {
	Name string `json:"name" validate:"required,max=150"`
}

func (d *GroupDTO) normalize() {
	d.Name = strings.TrimSpace(d.Name)
}

type GrantsDTO struct {
	PermissionIDs []int64 `json:"permission_ids" validate:"required,min=1,dive,gt=0"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
