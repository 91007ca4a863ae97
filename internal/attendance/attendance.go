package attendance

import "context"

const (
	PermViewAll = "view_all_attendance"
	PermView    = "view_attendance"
	PermCreate  = "create_attendance"
	PermUpdate  = "update_attendance"
	PermDelete  = "delete_attendance"
)

const ClockLayout = "15:04:05"

// Session is one check-in/check-out pair. Checkout stays nil while the session is open.
type Session struct {
	Checkin  string  `bson:"checkin" json:"checkin" validate:"required,clockseconds"`
	Checkout *string `bson:"checkout" json:"checkout" validate:"omitempty,clockseconds"`
}

func (s Session) Open() bool {
	return s.Checkout == nil
}

// Record is the per-employee, per-day attendance document.
type Record struct {
	EmployeeID string    `bson:"id_employee" json:"id_employee"`
	Date       string    `bson:"date" json:"date"`
	Sessions   []Session `bson:"sessions" json:"sessions"`
}

// OpenSession returns the index of the first session without a checkout, or -1.
func (r *Record) OpenSession() int {
	for i, s := range r.Sessions {
		if s.Open() {
			return i
		}
	}
	return -1
}

type RepositoryAPI interface {
	List(ctx context.Context) ([]Record, error)
	ListByDate(ctx context.Context, date string) ([]Record, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)
	Get(ctx context.Context, employeeID, date string) (*Record, error)
	Insert(ctx context.Context, rec Record) (string, error)
	// UpdateByEmployee applies fields to the first record of the employee.
	UpdateByEmployee(ctx context.Context, employeeID string, fields map[string]interface{}) (bool, error)
	Update(ctx context.Context, employeeID, date string, fields map[string]interface{}) (bool, error)
	Delete(ctx context.Context, employeeID, date string) (bool, error)
	// PushSession appends s to the day's record, creating the record when missing.
	PushSession(ctx context.Context, employeeID, date string, s Session) (*Record, error)
	// CloseSession fills the first open session. It returns nil when none is open.
	CloseSession(ctx context.Context, employeeID, date, checkout string) (*Record, error)
	DeleteAll(ctx context.Context) (int64, error)
}
