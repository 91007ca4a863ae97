package extrahours

import "context"

const (
	PermViewAll = "view_all_extra_hours"
	PermView    = "view_extra_hours"
	PermCreate  = "create_extra_hours"
	PermUpdate  = "update_extra_hours"
	PermDelete  = "delete_extra_hours"
)

// Entry is an overtime window worked by an employee on one day.
type Entry struct {
	EmployeeID string `bson:"id_employee" json:"id_employee"`
	Date       string `bson:"date" json:"date"`
	Start      string `bson:"start" json:"start"`
	End        string `bson:"end" json:"end"`
}

type RepositoryAPI interface {
	List(ctx context.Context) ([]Entry, error)
	ListByDate(ctx context.Context, date string) ([]Entry, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Entry, error)
	Get(ctx context.Context, employeeID, date string) (*Entry, error)
	Insert(ctx context.Context, e Entry) (string, error)
	Update(ctx context.Context, employeeID, date string, fields map[string]interface{}) (bool, error)
	Delete(ctx context.Context, employeeID, date string) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
}
