package seed

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/frahmantamala/hr-management/internal/attendance"
	"github.com/frahmantamala/hr-management/internal/core/common/datatype"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/frahmantamala/hr-management/internal/schedule"
)

func employeeIDs(ctx context.Context, env Env, limit int) ([]string, error) {
	var ids []string
	err := env.DB.WithContext(ctx).Model(&hr.Employee{}).Order("created_at").Limit(limit).Pluck("id_employee", &ids).Error
	return ids, err
}

func scheduleSeeder(env Env) Seeder {
	return Seeder{
		Name: "schedules",
		Seed: func(ctx context.Context, quantity int) (int, error) {
			ids, err := employeeIDs(ctx, env, quantity)
			if err != nil {
				return 0, err
			}
			created := 0
			for _, id := range ids {
				existing, err := env.Schedules.Get(ctx, id)
				if err != nil {
					return created, err
				}
				if existing != nil {
					continue
				}
				s := schedule.Schedule{EmployeeID: id, WorkSchedule: schedule.Weekdays("09:00", "17:00")}
				if _, err := env.Schedules.Insert(ctx, s); err != nil {
					return created, err
				}
				created++
			}
			return created, nil
		},
		Purge: func(ctx context.Context) (int64, error) {
			return env.Schedules.DeleteAll(ctx)
		},
	}
}

// attendanceSeeder books one closed session for today per employee.
func attendanceSeeder(env Env) Seeder {
	return Seeder{
		Name: "attendance",
		Seed: func(ctx context.Context, quantity int) (int, error) {
			ids, err := employeeIDs(ctx, env, quantity)
			if err != nil {
				return 0, err
			}
			today := datatype.Today().String()

			created := 0
			for _, id := range ids {
				existing, err := env.Attendance.Get(ctx, id, today)
				if err != nil {
					return created, err
				}
				if existing != nil {
					continue
				}
				out := fmt.Sprintf("17:%02d:00", rand.IntN(60))
				rec := attendance.Record{
					EmployeeID: id,
					Date:       today,
					Sessions:   []attendance.Session{{Checkin: fmt.Sprintf("08:%02d:00", 30+rand.IntN(30)), Checkout: &out}},
				}
				if _, err := env.Attendance.Insert(ctx, rec); err != nil {
					return created, err
				}
				created++
			}
			return created, nil
		},
		Purge: func(ctx context.Context) (int64, error) {
			return env.Attendance.DeleteAll(ctx)
		},
	}
}
