// Package seed fills the stores with reference data and sample records for
// development, and purges them again.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/frahmantamala/hr-management/internal/attendance"
	"github.com/frahmantamala/hr-management/internal/schedule"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	MinQuantity     = 10
	MaxQuantity     = 10000
	DefaultQuantity = 100
)

// Seeder populates one area. Seed reports how many rows it created and Purge how many it removed.
type Seeder struct {
	Name  string
	Seed  func(ctx context.Context, quantity int) (int, error)
	Purge func(ctx context.Context) (int64, error)
}

// Env is what the seeders write through. Nil document repositories skip their seeders.
type Env struct {
	DB         *gorm.DB
	Attendance attendance.RepositoryAPI
	Schedules  schedule.RepositoryAPI
	BCryptCost int
	Logger     *slog.Logger
}

func (e Env) cost() int {
	if e.BCryptCost == 0 {
		return bcrypt.DefaultCost
	}
	return e.BCryptCost
}

// ClampQuantity keeps quantity inside MinQuantity..MaxQuantity.
func ClampQuantity(q int) int {
	return min(max(q, MinQuantity), MaxQuantity)
}

type Runner struct {
	seeders []Seeder
	logger  *slog.Logger
}

func NewRunner(logger *slog.Logger, seeders ...Seeder) *Runner {
	return &Runner{seeders: seeders, logger: logger}
}

// Default wires every seeder in the order they depend on each other.
func Default(env Env) *Runner {
	s := []Seeder{
		permissionsSeeder(env),
		groupsSeeder(env),
		groupPermissionsSeeder(env),
		departmentsSeeder(env),
		rolesSeeder(env),
	}
	s = append(s, catalogSeeders(env)...)
	s = append(s,
		adminSeeder(env),
		employeesSeeder(env),
		contractsSeeder(env),
	)
	if env.Schedules != nil {
		s = append(s, scheduleSeeder(env))
	}
	if env.Attendance != nil {
		s = append(s, attendanceSeeder(env))
	}
	return NewRunner(env.Logger, s...)
}

func (r *Runner) Names() []string {
	out := make([]string, len(r.seeders))
	for i, s := range r.seeders {
		out[i] = s.Name
	}
	return out
}

func (r *Runner) pick(only string) ([]Seeder, error) {
	if only == "" {
		return r.seeders, nil
	}
	for _, s := range r.seeders {
		if s.Name == only {
			return []Seeder{s}, nil
		}
	}
	return nil, fmt.Errorf("unknown seeder %q", only)
}

// Seed runs the seeders in order, or only the named one.
func (r *Runner) Seed(ctx context.Context, quantity int, only string) error {
	if clamped := ClampQuantity(quantity); clamped != quantity {
		r.logger.Warn("quantity out of range", "requested", quantity, "using", clamped)
		quantity = clamped
	}

	seeders, err := r.pick(only)
	if err != nil {
		return err
	}
	for _, s := range seeders {
		n, err := s.Seed(ctx, quantity)
		if err != nil {
			return fmt.Errorf("seed %s: %w", s.Name, err)
		}
		r.logger.Info("seeded", "seeder", s.Name, "created", n)
	}
	return nil
}

// Purge runs the seeders in reverse order, or only the named one.
func (r *Runner) Purge(ctx context.Context, only string) error {
	seeders, err := r.pick(only)
	if err != nil {
		return err
	}
	seeders = slices.Clone(seeders)
	slices.Reverse(seeders)

	for _, s := range seeders {
		n, err := s.Purge(ctx)
		if err != nil {
			return fmt.Errorf("purge %s: %w", s.Name, err)
		}
		r.logger.Info("purged", "seeder", s.Name, "deleted", n)
	}
	return nil
}

// ensure inserts the rows whose key is not stored yet.
func ensure[T any](ctx context.Context, db *gorm.DB, column string, rows []T, key func(*T) string) (int, error) {
	var existing []string
	if err := db.WithContext(ctx).Model(new(T)).Pluck(column, &existing).Error; err != nil {
		return 0, err
	}

	created := 0
	for i := range rows {
		if slices.Contains(existing, key(&rows[i])) {
			continue
		}
		if err := db.WithContext(ctx).Create(&rows[i]).Error; err != nil {
			return created, err
		}
		existing = append(existing, key(&rows[i]))
		created++
	}
	return created, nil
}

// purgeAll hard-deletes every row of T.
func purgeAll[T any](ctx context.Context, db *gorm.DB) (int64, error) {
	res := db.WithContext(ctx).Unscoped().Where("1 = 1").Delete(new(T))
	return res.RowsAffected, res.Error
}
