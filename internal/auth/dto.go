package auth

import "github.com/frahmantamala/hr-management/internal/core/common/validation"

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (d LoginDTO) Validate() error {
	if appErr := validation.Struct(d); appErr != nil {
		return appErr
	}
	return nil
}

type RefreshTokenDTO struct {
	Refresh string `json:"refresh" validate:"required"`
}

func (d RefreshTokenDTO) Validate() error {
	if appErr := validation.Struct(d); appErr != nil {
		return appErr
	}
	return nil
}

type PermissionsResponse struct {
	Permissions []string `json:"permissions"`
}
