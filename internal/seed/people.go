package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/frahmantamala/hr-management/internal/core/common/datatype"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/identity"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	AdminUsername = "admin"
	AdminEmail    = "admin@example.com"
	AdminPassword = "password"

	// Seeded staff share this mail domain so they can be purged without touching real accounts.
	StaffDomain = "staff.example.com"
)

var (
	firstNames = []string{"Ada", "Alan", "Grace", "Linus", "Margaret", "Dennis", "Barbara", "Ken", "Frances", "Edsger",
		"Hedy", "John", "Radia", "Tim", "Katherine", "Niklaus", "Sophie", "Bjarne", "Anita", "Donald"}
	lastNames = []string{"Lovelace", "Turing", "Hopper", "Torvalds", "Hamilton", "Ritchie", "Liskov", "Thompson", "Allen", "Dijkstra",
		"Lamarr", "Backus", "Perlman", "Berners", "Johnson", "Wirth", "Wilson", "Stroustrup", "Borg", "Knuth"}
	cities = []string{"Lisboa", "Porto", "Braga", "Coimbra", "Faro", "Aveiro"}
)

func pick[T any](pool []T) T {
	return pool[rand.IntN(len(pool))]
}

func adminSeeder(env Env) Seeder {
	return Seeder{
		Name: "admin",
		Seed: func(ctx context.Context, _ int) (int, error) {
			db := env.DB.WithContext(ctx)

			var count int64
			if err := db.Model(&identity.AuthUser{}).Where("username = ?", AdminUsername).Count(&count).Error; err != nil {
				return 0, err
			}
			if count > 0 {
				return 0, nil
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), env.cost())
			if err != nil {
				return 0, err
			}

			err = db.Transaction(func(tx *gorm.DB) error {
				u := identity.AuthUser{
					Username:    AdminUsername,
					Password:    string(hash),
					FirstName:   "System",
					LastName:    "Administrator",
					Email:       AdminEmail,
					IsSuperuser: true,
					IsStaff:     true,
					IsActive:    true,
					DateJoined:  time.Now(),
				}
				if err := tx.Create(&u).Error; err != nil {
					return err
				}
				e := hr.Employee{AuthUserID: u.ID, Phone: "000000000", Src: "", BirthDate: mustDate("1990-01-01")}
				if err := tx.Create(&e).Error; err != nil {
					return err
				}
				return joinGroup(tx, u.ID, GroupSystemAdmin)
			})
			if err != nil {
				return 0, err
			}
			return 1, nil
		},
		Purge: func(ctx context.Context) (int64, error) {
			return purgeUsers(ctx, env.DB, "username = ?", AdminUsername)
		},
	}
}

func employeesSeeder(env Env) Seeder {
	return Seeder{
		Name: "employees",
		Seed: func(ctx context.Context, quantity int) (int, error) {
			db := env.DB.WithContext(ctx)

			var seeded int64
			if err := db.Model(&identity.AuthUser{}).Where("email LIKE ?", "%@"+StaffDomain).Count(&seeded).Error; err != nil {
				return 0, err
			}

			hash, err := bcrypt.GenerateFromPassword([]byte("password"), env.cost())
			if err != nil {
				return 0, err
			}

			for i := range quantity {
				n := int(seeded) + i + 1
				first, last := pick(firstNames), pick(lastNames)
				username := strings.ToLower(fmt.Sprintf("%s.%s.%d", first, last, n))

				err := db.Transaction(func(tx *gorm.DB) error {
					u := identity.AuthUser{
						Username:   username,
						Password:   string(hash),
						FirstName:  first,
						LastName:   last,
						Email:      username + "@" + StaffDomain,
						IsActive:   true,
						DateJoined: time.Now(),
					}
					if err := tx.Create(&u).Error; err != nil {
						return err
					}
					e := hr.Employee{
						AuthUserID: u.ID,
						Phone:      fmt.Sprintf("9%08d", rand.IntN(100000000)),
						Src:        "https://i.pravatar.cc/150?u=" + username,
						BirthDate:  datatype.NewDate(time.Date(1965+rand.IntN(35), time.Month(1+rand.IntN(12)), 1+rand.IntN(28), 0, 0, 0, 0, time.UTC)),
					}
					if err := tx.Create(&e).Error; err != nil {
						return err
					}
					loc := hr.EmployeeLocation{
						EmployeeID: e.ID,
						Address:    fmt.Sprintf("Rua %s %d", last, 1+rand.IntN(200)),
						City:       pick(cities),
						Country:    "PT",
						ZipCode:    fmt.Sprintf("%04d-%03d", 1000+rand.IntN(8999), rand.IntN(999)),
					}
					if err := tx.Create(&loc).Error; err != nil {
						return err
					}
					return joinGroup(tx, u.ID, GroupEmployee)
				})
				if err != nil {
					return i, err
				}
				logProgress(env, "employees", i+1, quantity)
			}
			return quantity, nil
		},
		Purge: func(ctx context.Context) (int64, error) {
			return purgeUsers(ctx, env.DB, "email LIKE ?", "%@"+StaffDomain)
		},
	}
}

// contractsSeeder gives up to quantity seeded staff without a contract an active one with a salary.
func contractsSeeder(env Env) Seeder {
	return Seeder{
		Name: "contracts",
		Seed: func(ctx context.Context, quantity int) (int, error) {
			db := env.DB.WithContext(ctx)

			var roleIDs, typeIDs []string
			if err := db.Model(&hr.Role{}).Pluck("id_role", &roleIDs).Error; err != nil {
				return 0, err
			}
			if err := db.Model(&hr.ContractType{}).Pluck("id_contract_type", &typeIDs).Error; err != nil {
				return 0, err
			}
			if len(roleIDs) == 0 || len(typeIDs) == 0 {
				env.Logger.Warn("contracts need roles and contract types; run their seeders first")
				return 0, nil
			}

			var active hr.ContractState
			if err := db.Where("state = ?", "Active").Limit(1).Find(&active).Error; err != nil {
				return 0, err
			}
			approver, err := adminEmployeeID(db)
			if err != nil {
				return 0, err
			}

			var ids []string
			err = staff(db).
				Where("NOT EXISTS (SELECT 1 FROM contract c WHERE c.id_employee = e.id_employee AND c.deleted_at IS NULL)").
				Limit(quantity).
				Pluck("e.id_employee", &ids).Error
			if err != nil {
				return 0, err
			}

			for i, id := range ids {
				err := db.Transaction(func(tx *gorm.DB) error {
					c := hr.Contract{EmployeeID: id, RoleID: pick(roleIDs), ContractTypeID: pick(typeIDs)}
					if err := tx.Create(&c).Error; err != nil {
						return err
					}
					if active.ID != "" {
						if err := tx.Create(&hr.ContractStateContract{ContractID: c.ID, ContractStateID: active.ID}).Error; err != nil {
							return err
						}
					}
					by := approver
					if by == "" {
						by = id
					}
					return tx.Create(&hr.SalaryHistory{
						ContractID:    c.ID,
						ApprovedByID:  by,
						BaseSalary:    decimal.NewFromInt(int64(1500 + 100*rand.IntN(60))),
						ExtraHourRate: decimal.NewFromInt(int64(10 + rand.IntN(30))),
						StartDate:     datatype.Today(),
					}).Error
				})
				if err != nil {
					return i, err
				}
				logProgress(env, "contracts", i+1, len(ids))
			}
			return len(ids), nil
		},
		Purge: func(ctx context.Context) (int64, error) {
			db := env.DB.WithContext(ctx)
			owned := staff(db).Select("e.id_employee")
			contracts := db.Model(&hr.Contract{}).Unscoped().Select("id_contract").Where("id_employee IN (?)", owned)

			if err := db.Unscoped().Where("id_contract IN (?)", contracts).Delete(&hr.SalaryHistory{}).Error; err != nil {
				return 0, err
			}
			if err := db.Unscoped().Where("id_contract IN (?)", contracts).Delete(&hr.ContractStateContract{}).Error; err != nil {
				return 0, err
			}
			res := db.Unscoped().Where("id_employee IN (?)", owned).Delete(&hr.Contract{})
			return res.RowsAffected, res.Error
		},
	}
}

// staff selects the seeded employees as "e".
func staff(db *gorm.DB) *gorm.DB {
	return db.Table("employees AS e").
		Joins("JOIN auth_user u ON u.id = e.id_auth_user").
		Where("u.email LIKE ? AND e.deleted_at IS NULL", "%@"+StaffDomain)
}

func adminEmployeeID(db *gorm.DB) (string, error) {
	var ids []string
	err := db.Table("employees AS e").
		Joins("JOIN auth_user u ON u.id = e.id_auth_user").
		Where("u.username = ?", AdminUsername).
		Limit(1).
		Pluck("e.id_employee", &ids).Error
	if err != nil || len(ids) == 0 {
		return "", err
	}
	return ids[0], nil
}

func joinGroup(tx *gorm.DB, userID int64, group string) error {
	var g identity.AuthGroup
	if err := tx.Where("name = ?", group).Limit(1).Find(&g).Error; err != nil {
		return err
	}
	if g.ID == 0 {
		return nil
	}
	return tx.Create(&identity.AuthUserGroup{UserID: userID, GroupID: g.ID}).Error
}

// purgeUsers removes the matching accounts together with their employee rows.
func purgeUsers(ctx context.Context, db *gorm.DB, where string, args ...interface{}) (int64, error) {
	var deleted int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := tx.Model(&identity.AuthUser{}).Select("id").Where(where, args...)
		employees := tx.Model(&hr.Employee{}).Unscoped().Select("id_employee").Where("id_auth_user IN (?)", users)

		if err := tx.Unscoped().Where("id_employee IN (?)", employees).Delete(&hr.EmployeeLocation{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("id_auth_user IN (?)", users).Delete(&hr.Employee{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id IN (?)", users).Delete(&identity.AuthUserGroup{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id IN (?)", users).Delete(&identity.AuthUserPermission{}).Error; err != nil {
			return err
		}
		res := tx.Where(where, args...).Delete(&identity.AuthUser{})
		deleted = res.RowsAffected
		return res.Error
	})
	return deleted, err
}

func logProgress(env Env, seeder string, done, total int) {
	if total >= 4 && done%(total/4) == 0 {
		env.Logger.Info("seed progress", "seeder", seeder, "percent", done*100/total)
	}
}

func mustDate(s string) datatype.Date {
	d, err := datatype.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
