package schedule

import "context"

const (
	PermViewAll = "view_all_schedules"
	PermView    = "view_schedule"
	PermCreate  = "create_schedule"
	PermUpdate  = "update_schedule"
	PermDelete  = "delete_schedule"
)

type Shift struct {
	Start string `bson:"start" json:"start" validate:"required,clock"`
	End   string `bson:"end" json:"end" validate:"required,clock"`
}

// Week holds the shift of each working day. Days off are nil.
type Week struct {
	Monday    *Shift `bson:"monday,omitempty" json:"monday,omitempty"`
	Tuesday   *Shift `bson:"tuesday,omitempty" json:"tuesday,omitempty"`
	Wednesday *Shift `bson:"wednesday,omitempty" json:"wednesday,omitempty"`
	Thursday  *Shift `bson:"thursday,omitempty" json:"thursday,omitempty"`
	Friday    *Shift `bson:"friday,omitempty" json:"friday,omitempty"`
	Saturday  *Shift `bson:"saturday,omitempty" json:"saturday,omitempty"`
	Sunday    *Shift `bson:"sunday,omitempty" json:"sunday,omitempty"`
}

// Days maps weekday names to the shifts that are set.
func (w Week) Days() map[string]*Shift {
	out := map[string]*Shift{}
	for name, s := range map[string]*Shift{
		"monday": w.Monday, "tuesday": w.Tuesday, "wednesday": w.Wednesday, "thursday": w.Thursday,
		"friday": w.Friday, "saturday": w.Saturday, "sunday": w.Sunday,
	} {
		if s != nil {
			out[name] = s
		}
	}
	return out
}

// Schedule is the weekly working plan of one employee.
type Schedule struct {
	EmployeeID   string `bson:"id_employee" json:"id_employee"`
	WorkSchedule Week   `bson:"workSchedule" json:"workSchedule"`
}

// Weekdays returns Monday to Friday with the same shift.
func Weekdays(start, end string) Week {
	s := func() *Shift { return &Shift{Start: start, End: end} }
	return Week{Monday: s(), Tuesday: s(), Wednesday: s(), Thursday: s(), Friday: s()}
}

type RepositoryAPI interface {
	List(ctx context.Context) ([]Schedule, error)
	Get(ctx context.Context, employeeID string) (*Schedule, error)
	Insert(ctx context.Context, s Schedule) (string, error)
	Update(ctx context.Context, employeeID string, fields map[string]interface{}) (bool, error)
	Delete(ctx context.Context, employeeID string) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
}
