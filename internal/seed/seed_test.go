package seed_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/frahmantamala/hr-management/internal/attendance"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/identity"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/sqlitetest"
	"github.com/frahmantamala/hr-management/internal/schedule"
	"github.com/frahmantamala/hr-management/internal/seed"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestSeed(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Seed Suite")
}

type scheduleRepo struct {
	schedule.RepositoryAPI
	rows map[string]schedule.Schedule
}

func (r *scheduleRepo) Get(_ context.Context, id string) (*schedule.Schedule, error) {
	if s, ok := r.rows[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (r *scheduleRepo) Insert(_ context.Context, s schedule.Schedule) (string, error) {
	r.rows[s.EmployeeID] = s
	return s.EmployeeID, nil
}

func (r *scheduleRepo) DeleteAll(context.Context) (int64, error) {
	n := int64(len(r.rows))
	r.rows = map[string]schedule.Schedule{}
	return n, nil
}

type attendanceRepo struct {
	attendance.RepositoryAPI
	rows []attendance.Record
}

func (r *attendanceRepo) Get(_ context.Context, id, date string) (*attendance.Record, error) {
	for i := range r.rows {
		if r.rows[i].EmployeeID == id && r.rows[i].Date == date {
			return &r.rows[i], nil
		}
	}
	return nil, nil
}

func (r *attendanceRepo) Insert(_ context.Context, rec attendance.Record) (string, error) {
	r.rows = append(r.rows, rec)
	return rec.EmployeeID, nil
}

func (r *attendanceRepo) DeleteAll(context.Context) (int64, error) {
	n := int64(len(r.rows))
	r.rows = nil
	return n, nil
}

func count[T any](db *gorm.DB) int64 {
	var n int64
	Expect(db.Model(new(T)).Count(&n).Error).To(Succeed())
	return n
}

var _ = Describe("ClampQuantity", func() {
	It("keeps the quantity in range", func() {
		Expect(seed.ClampQuantity(1)).To(Equal(seed.MinQuantity))
		Expect(seed.ClampQuantity(50)).To(Equal(50))
		Expect(seed.ClampQuantity(1_000_000)).To(Equal(seed.MaxQuantity))
	})
})

var _ = Describe("Runner", func() {
	var (
		ctx    context.Context
		calls  []string
		runner *seed.Runner
	)

	track := func(name string) seed.Seeder {
		return seed.Seeder{
			Name: name,
			Seed: func(_ context.Context, q int) (int, error) {
				calls = append(calls, "seed "+name)
				return q, nil
			},
			Purge: func(context.Context) (int64, error) {
				calls = append(calls, "purge "+name)
				return 0, nil
			},
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		calls = nil
		runner = seed.NewRunner(slog.New(slog.NewTextHandler(io.Discard, nil)), track("a"), track("b"), track("c"))
	})

	It("seeds in order and purges in reverse", func() {
		Expect(runner.Seed(ctx, 10, "")).To(Succeed())
		Expect(runner.Purge(ctx, "")).To(Succeed())
		Expect(calls).To(Equal([]string{"seed a", "seed b", "seed c", "purge c", "purge b", "purge a"}))
	})

	It("runs only the named seeder", func() {
		Expect(runner.Seed(ctx, 10, "b")).To(Succeed())
		Expect(calls).To(Equal([]string{"seed b"}))
	})

	It("rejects an unknown seeder", func() {
		Expect(runner.Seed(ctx, 10, "nope")).To(MatchError(ContainSubstring(`unknown seeder "nope"`)))
		Expect(runner.Purge(ctx, "nope")).To(HaveOccurred())
		Expect(calls).To(BeEmpty())
	})
})

var _ = Describe("Default seeders", func() {
	var (
		ctx       context.Context
		db        *gorm.DB
		schedules *scheduleRepo
		records   *attendanceRepo
		runner    *seed.Runner
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		db, err = sqlitetest.Open()
		Expect(err).NotTo(HaveOccurred())

		schedules = &scheduleRepo{rows: map[string]schedule.Schedule{}}
		records = &attendanceRepo{}
		runner = seed.Default(seed.Env{
			DB:         db,
			Attendance: records,
			Schedules:  schedules,
			BCryptCost: bcrypt.MinCost,
			Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		})
		Expect(runner.Seed(ctx, seed.MinQuantity, "")).To(Succeed())
	})

	It("lists the seeders in dependency order", func() {
		names := runner.Names()
		Expect(names[0]).To(Equal("permissions"))
		Expect(names).To(ContainElements("admin", "employees", "contracts", "schedules", "attendance"))
		Expect(names[len(names)-1]).To(Equal("attendance"))
	})

	It("creates a superuser admin with a hashed password", func() {
		var admin identity.AuthUser
		Expect(db.Where("username = ?", seed.AdminUsername).First(&admin).Error).To(Succeed())
		Expect(admin.IsSuperuser).To(BeTrue())
		Expect(bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(seed.AdminPassword))).To(Succeed())
	})

	It("creates the requested number of staff with contracts", func() {
		Expect(count[identity.AuthUser](db)).To(Equal(int64(seed.MinQuantity + 1)))
		Expect(count[hr.Employee](db)).To(Equal(int64(seed.MinQuantity + 1)))
		Expect(count[hr.EmployeeLocation](db)).To(Equal(int64(seed.MinQuantity)))
		Expect(count[hr.Contract](db)).To(Equal(int64(seed.MinQuantity)))
		Expect(count[hr.SalaryHistory](db)).To(Equal(int64(seed.MinQuantity)))
		Expect(count[hr.ContractStateContract](db)).To(Equal(int64(seed.MinQuantity)))
	})

	It("grants the system administrator group every permission", func() {
		var group identity.AuthGroup
		Expect(db.Where("name = ?", seed.GroupSystemAdmin).First(&group).Error).To(Succeed())

		var grants int64
		Expect(db.Model(&identity.AuthGroupPermission{}).Where("group_id = ?", group.ID).Count(&grants).Error).To(Succeed())
		Expect(grants).To(Equal(count[identity.AuthPermission](db)))
	})

	It("seeds schedules and attendance in the document stores", func() {
		Expect(schedules.rows).To(HaveLen(seed.MinQuantity))
		Expect(records.rows).To(HaveLen(seed.MinQuantity))
		for _, r := range records.rows {
			Expect(r.Sessions).To(HaveLen(1))
			Expect(r.Sessions[0].Open()).To(BeFalse())
		}
	})

	It("does not duplicate reference data on a second run", func() {
		perms := count[identity.AuthPermission](db)
		links := count[identity.AuthGroupPermission](db)
		deps := count[hr.Department](db)

		for _, name := range []string{"permissions", "auth_groups", "group_permissions", "departments", "roles", "admin", "schedules"} {
			Expect(runner.Seed(ctx, seed.MinQuantity, name)).To(Succeed())
		}
		Expect(count[identity.AuthPermission](db)).To(Equal(perms))
		Expect(count[identity.AuthGroupPermission](db)).To(Equal(links))
		Expect(count[hr.Department](db)).To(Equal(deps))
		Expect(count[identity.AuthUser](db)).To(Equal(int64(seed.MinQuantity + 1)))
		Expect(schedules.rows).To(HaveLen(seed.MinQuantity))
	})

	It("purges everything it created", func() {
		Expect(runner.Purge(ctx, "")).To(Succeed())
		Expect(count[identity.AuthUser](db)).To(BeZero())
		Expect(count[hr.Employee](db)).To(BeZero())
		Expect(count[hr.Contract](db)).To(BeZero())
		Expect(count[identity.AuthPermission](db)).To(BeZero())
		Expect(count[hr.Role](db)).To(BeZero())
		Expect(schedules.rows).To(BeEmpty())
		Expect(records.rows).To(BeEmpty())
	})
})
