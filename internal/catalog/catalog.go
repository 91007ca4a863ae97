// Package catalog serves the reference tables (contract types, states,
// certificate types and the like) through one generic CRUD stack.
package catalog

import (
	"context"

	"github.com/frahmantamala/hr-management/internal/core/common/query"
)

// Definition describes one lookup table and how it is exposed.
type Definition struct {
	Entity        string
	Path          string
	IDColumn      string
	Singular      string
	Plural        string
	SearchColumns []string
	Sorting       query.Sorting
}

func (d Definition) ViewAll() string { return "view_all_" + d.Plural }
func (d Definition) View() string    { return "view_" + d.Singular }
func (d Definition) Create() string  { return "create_" + d.Singular }
func (d Definition) Update() string  { return "update_" + d.Singular }
func (d Definition) Delete() string  { return "delete_" + d.Singular }

// Codenames lists the five permissions guarding the table.
func (d Definition) Codenames() []string {
	return []string{d.ViewAll(), d.View(), d.Create(), d.Update(), d.Delete()}
}

// Payload is a request body that knows how to copy itself onto a row.
type Payload[T any] interface {
	Apply(*T)
}

type RepositoryAPI[T any] interface {
	List(ctx context.Context, p query.ListParams) ([]T, int64, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, row *T) error
	Update(ctx context.Context, row *T) error
	Delete(ctx context.Context, id string) error
}
