package role

import "github.com/frahmantamala/hr-management/internal/core/datamodel/hr"

type RoleDTO struct {
	DepartmentID  string   `json:"id_department" validate:"required,uuid"`
	AuthGroupID   int64    `json:"id_auth_group" validate:"required,gt=0"`
	RoleName      string   `json:"role_name" validate:"required,max=100"`
	HexColor      string   `json:"hex_color" validate:"omitempty,hexcolor,max=7"`
	Description   string   `json:"description"`
	TrainingTypes []string `json:"training_types" validate:"omitempty,dive,uuid"`
}

func (d RoleDTO) apply(m *hr.Role) {
	m.DepartmentID = d.DepartmentID
	m.AuthGroupID = d.AuthGroupID
	m.RoleName = d.RoleName
	m.HexColor = d.HexColor
	m.Description = d.Description
}

// uniqueTrainingTypes drops repeated ids while keeping order.
func (d RoleDTO) uniqueTrainingTypes() []string {
	seen := make(map[string]bool, len(d.TrainingTypes))
	out := make([]string, 0, len(d.TrainingTypes))
	for _, id := range d.TrainingTypes {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
