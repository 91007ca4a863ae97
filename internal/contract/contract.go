package contract

import (
	"context"
	"time"

	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
)

const (
	PermViewAll = "view_all_contract_state_contracts"
	PermView    = "view_contract_state_contract"
	PermCreate  = "create_contract_state_contract"
	PermUpdate  = "update_contract_state_contract"
	PermDelete  = "delete_contract_state_contract"
)

type RepositoryAPI interface {
	List(ctx context.Context, p query.ListParams) ([]hr.ContractStateContract, int64, error)
	ListByEmployee(ctx context.Context, employeeID string, p query.ListParams) ([]hr.ContractStateContract, int64, error)
	GetByID(ctx context.Context, id string) (*hr.ContractStateContract, error)
	Create(ctx context.Context, m *hr.ContractStateContract) error
	Update(ctx context.Context, m *hr.ContractStateContract) error
	Delete(ctx context.Context, id string) error
	ContractExists(ctx context.Context, id string) (bool, error)
	StateExists(ctx context.Context, id string) (bool, error)
}

// Entry is one history row split into the link and the state it points to.
type Entry struct {
	ContractState Link  `json:"contract_state"`
	State         State `json:"state"`
}

type Link struct {
	ID         string    `json:"id_contract_state_contract"`
	ContractID string    `json:"id_contract"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type State struct {
	ID          string `json:"id_contract_state"`
	Icon        string `json:"icon"`
	HexColor    string `json:"hex_color"`
	State       string `json:"state"`
	Description string `json:"description"`
}

type ListResponse struct {
	Data  []Entry `json:"data"`
	Count int64   `json:"count"`
}

func FromDataModel(m *hr.ContractStateContract) Entry {
	e := Entry{
		ContractState: Link{
			ID:         m.ID,
			ContractID: m.ContractID,
			CreatedAt:  m.CreatedAt,
			UpdatedAt:  m.UpdatedAt,
		},
		State: State{ID: m.ContractStateID},
	}
	if m.State != nil {
		e.State.Icon = m.State.Icon
		e.State.HexColor = m.State.HexColor
		e.State.State = m.State.State
		e.State.Description = m.State.Description
	}
	return e
}
