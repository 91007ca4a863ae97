package department

import "github.com/frahmantamala/hr-management/internal/core/datamodel/hr"

type DepartmentDTO struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

func (d DepartmentDTO) apply(m *hr.Department) {
	m.Name = d.Name
	m.Description = d.Description
}
