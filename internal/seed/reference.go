package seed

import (
	"context"
	"slices"
	"strings"

	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/identity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	GroupSystemAdmin = "System Administrator"
	GroupEmployee    = "Employee"
)

var groups = []string{
	"HR Manager",
	"Recruitment Specialist",
	"Payroll Manager",
	"Training Coordinator",
	"Department Head",
	GroupEmployee,
	"Contract Administrator",
	"Benefits Coordinator",
	GroupSystemAdmin,
	"Developer",
	"Marketing",
	"Sales",
	"Operations",
	"Legal",
}

func containsAny(parts ...string) func(string) bool {
	return func(codename string) bool {
		for _, p := range parts {
			if strings.Contains(codename, p) {
				return true
			}
		}
		return false
	}
}

func oneOf(codenames ...string) func(string) bool {
	return func(c string) bool { return slices.Contains(codenames, c) }
}

// groupGrants decides which codenames each seeded group receives.
var groupGrants = map[string]func(string) bool{
	GroupSystemAdmin: func(string) bool { return true },
	"HR Manager": func(c string) bool {
		return !containsAny("auth_group", "group_permissions")(c)
	},
	"Recruitment Specialist": containsAny("employee", "certificate_type"),
	"Payroll Manager":        containsAny("payment", "salary_history", "bonus", "deduction", "view_all_employees", "view_employee", "analytics"),
	"Training Coordinator":   containsAny("training_type", "certificate_type"),
	"Department Head":        containsAny("department", "role", "view_all_employees", "schedule", "vacation", "attendance"),
	"Contract Administrator": containsAny("contract"),
	"Benefits Coordinator":   containsAny("type_benefit"),
	GroupEmployee:            oneOf("view_employee", "view_schedule", "view_attendance", "view_extra_hours", "view_vacation"),
}

func permissionsSeeder(env Env) Seeder {
	return Seeder{
		Name: "permissions",
		Seed: func(ctx context.Context, _ int) (int, error) {
			var rows []identity.AuthPermission
			for _, c := range Codenames() {
				rows = append(rows, identity.AuthPermission{Name: describe(c), Codename: c})
			}
			return ensure(ctx, env.DB, "codename", rows, func(p *identity.AuthPermission) string { return p.Codename })
		},
		Purge: func(ctx context.Context) (int64, error) {
			return purgeAll[identity.AuthPermission](ctx, env.DB)
		},
	}
}

func groupsSeeder(env Env) Seeder {
	return Seeder{
		Name: "auth_groups",
		Seed: func(ctx context.Context, _ int) (int, error) {
			rows := make([]identity.AuthGroup, len(groups))
			for i, g := range groups {
				rows[i] = identity.AuthGroup{Name: g}
			}
			return ensure(ctx, env.DB, "name", rows, func(g *identity.AuthGroup) string { return g.Name })
		},
		Purge: func(ctx context.Context) (int64, error) {
			if err := env.DB.WithContext(ctx).Where("1 = 1").Delete(&identity.AuthUserGroup{}).Error; err != nil {
				return 0, err
			}
			return purgeAll[identity.AuthGroup](ctx, env.DB)
		},
	}
}

func groupPermissionsSeeder(env Env) Seeder {
	return Seeder{
		Name: "group_permissions",
		Seed: func(ctx context.Context, _ int) (int, error) {
			db := env.DB.WithContext(ctx)

			var perms []identity.AuthPermission
			if err := db.Find(&perms).Error; err != nil {
				return 0, err
			}
			var stored []identity.AuthGroup
			if err := db.Where("name IN ?", groups).Find(&stored).Error; err != nil {
				return 0, err
			}

			var links []identity.AuthGroupPermission
			for _, g := range stored {
				grant, ok := groupGrants[g.Name]
				if !ok {
					continue
				}
				for _, p := range perms {
					if grant(p.Codename) {
						links = append(links, identity.AuthGroupPermission{GroupID: g.ID, PermissionID: p.ID})
					}
				}
			}
			if len(links) == 0 {
				return 0, nil
			}
			res := db.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(links, 200)
			return int(res.RowsAffected), res.Error
		},
		Purge: func(ctx context.Context) (int64, error) {
			return purgeAll[identity.AuthGroupPermission](ctx, env.DB)
		},
	}
}

var departments = []hr.Department{
	{Name: "Human Resources", Description: "Handles employee-related services and compliance."},
	{Name: "Finance", Description: "Manages company finances, budgets, and payroll."},
	{Name: "IT", Description: "Maintains IT infrastructure and security."},
	{Name: "Marketing", Description: "Oversees branding, campaigns, and promotions."},
	{Name: "Sales", Description: "Drives revenue through client acquisition and retention."},
	{Name: "Operations", Description: "Ensures efficient day-to-day operations."},
	{Name: "Legal", Description: "Handles legal matters and compliance."},
}

func departmentsSeeder(env Env) Seeder {
	return Seeder{
		Name: "departments",
		Seed: func(ctx context.Context, _ int) (int, error) {
			return ensure(ctx, env.DB, "name", slices.Clone(departments), func(d *hr.Department) string { return d.Name })
		},
		Purge: func(ctx context.Context) (int64, error) {
			return purgeAll[hr.Department](ctx, env.DB)
		},
	}
}

type roleSeed struct {
	name, department, group, description, color string
}

var roles = []roleSeed{
	{"HR Specialist", "Human Resources", "HR Manager", "Handles HR-specific tasks and compliance.", "#6CC24A"},
	{"Payroll Specialist", "Finance", "Payroll Manager", "Manages payroll processes.", "#D77A61"},
	{"IT Support", "IT", GroupSystemAdmin, "Maintains IT operations and security.", "#8FAADC"},
	{"Marketing Coordinator", "Marketing", "Marketing", "Manages marketing campaigns.", "#F4A261"},
	{"Sales Representative", "Sales", "Sales", "Drives client acquisition.", "#D85757"},
	{"Operations Manager", "Operations", "Operations", "Oversees operational workflows.", "#8A7BDF"},
	{"Legal Advisor", "Legal", "Legal", "Handles legal documentation and compliance.", "#C44B4F"},
}

func rolesSeeder(env Env) Seeder {
	return Seeder{
		Name: "roles",
		Seed: func(ctx context.Context, _ int) (int, error) {
			db := env.DB.WithContext(ctx)

			deps, err := idsByName[hr.Department](db, "id_department", "name")
			if err != nil {
				return 0, err
			}
			grps, err := groupIDs(db)
			if err != nil {
				return 0, err
			}

			var rows []hr.Role
			for _, r := range roles {
				depID, ok := deps[r.department]
				groupID, gok := grps[r.group]
				if !ok || !gok {
					continue
				}
				rows = append(rows, hr.Role{
					DepartmentID: depID,
					AuthGroupID:  groupID,
					RoleName:     r.name,
					HexColor:     r.color,
					Description:  r.description,
				})
			}
			return ensure(ctx, env.DB, "role_name", rows, func(r *hr.Role) string { return r.RoleName })
		},
		Purge: func(ctx context.Context) (int64, error) {
			if err := env.DB.WithContext(ctx).Where("1 = 1").Delete(&hr.TrainingTypeRole{}).Error; err != nil {
				return 0, err
			}
			return purgeAll[hr.Role](ctx, env.DB)
		},
	}
}

func catalogSeeders(env Env) []Seeder {
	notice := func(days int64) decimal.NullDecimal {
		return decimal.NewNullDecimal(decimal.NewFromInt(days))
	}
	hours := func(h int) *int { return &h }

	return []Seeder{
		catalogSeeder(env, "contract_types", "contract_type_name", []hr.ContractType{
			{ContractTypeName: "Permanent Contract", Description: "An indefinite employment agreement offering job stability and full benefits.", TerminationNoticePeriod: notice(30), OvertimeEligible: true, BenefitsEligible: true},
			{ContractTypeName: "Fixed-Term Contract", Description: "A temporary agreement with a predefined duration, typically for specific projects.", TerminationNoticePeriod: notice(15), OvertimeEligible: true},
			{ContractTypeName: "Part-Time Contract", Description: "An agreement for reduced working hours, typically with proportional benefits.", TerminationNoticePeriod: notice(15), BenefitsEligible: true},
			{ContractTypeName: "Internship", Description: "A training agreement for students or recent graduates.", TerminationNoticePeriod: notice(7)},
		}, func(m *hr.ContractType) string { return m.ContractTypeName }),

		catalogSeeder(env, "contract_states", "state", []hr.ContractState{
			{State: "Active", Description: "The contract is in force.", Icon: "fas fa-check-circle", HexColor: "#6CC24A"},
			{State: "Pending", Description: "The contract awaits approval or signature.", Icon: "fas fa-clock", HexColor: "#F0C808"},
			{State: "Suspended", Description: "The contract was temporarily interrupted.", Icon: "fas fa-pause-circle", HexColor: "#E29D3A"},
			{State: "Expired", Description: "The contract reached its end without renewal.", Icon: "fas fa-exclamation-circle", HexColor: "#D77A61"},
			{State: "Cancelled", Description: "The contract was cancelled before completion.", Icon: "fas fa-times-circle", HexColor: "#D85757"},
			{State: "Draft", Description: "The contract is being written or reviewed.", Icon: "fas fa-pencil-alt", HexColor: "#8FAADC"},
			{State: "Renewed", Description: "The contract was renewed for a new period.", Icon: "fas fa-sync-alt", HexColor: "#73BDA8"},
			{State: "Closed", Description: "The contract was completed with no further obligations.", Icon: "fas fa-check-circle", HexColor: "#B2BABB"},
			{State: "Under Review", Description: "The contract is under review or renegotiation.", Icon: "fas fa-search", HexColor: "#F4A261"},
			{State: "Terminated", Description: "The contract ended before the expected date.", Icon: "fas fa-exclamation-circle", HexColor: "#C44B4F"},
			{State: "Nullified", Description: "The contract was annulled.", Icon: "fas fa-ban", HexColor: "#A1749D"},
			{State: "Rejected", Description: "The contract was not accepted.", Icon: "fas fa-times-circle", HexColor: "#E1A3A3"},
		}, func(m *hr.ContractState) string { return m.State }),

		catalogSeeder(env, "contract_leave_types", "leave_type", []hr.LeaveType{
			{LeaveType: "Annual Leave", Description: "Paid yearly vacation days.", IsPaid: true},
			{LeaveType: "Sick Leave", Description: "Absence due to illness with a medical note.", IsPaid: true},
			{LeaveType: "Parental Leave", Description: "Leave after the birth or adoption of a child.", IsPaid: true},
			{LeaveType: "Unpaid Leave", Description: "Agreed absence without pay."},
		}, func(m *hr.LeaveType) string { return m.LeaveType }),

		catalogSeeder(env, "type_benefits", "name", []hr.BenefitType{
			{Name: "Health Insurance", Description: "Medical coverage for the employee and dependants."},
			{Name: "Meal Allowance", Description: "Daily meal voucher."},
			{Name: "Transport Allowance", Description: "Monthly commuting allowance."},
			{Name: "Gym Membership", Description: "Access to partner gyms."},
		}, func(m *hr.BenefitType) string { return m.Name }),

		catalogSeeder(env, "certificate_types", "name", []hr.CertificateType{
			{Name: "Professional", Description: "Certification issued by a professional body.", Icon: "fas fa-award", HexColor: "#6CC24A"},
			{Name: "Academic", Description: "Degree or diploma from an academic institution.", Icon: "fas fa-graduation-cap", HexColor: "#8FAADC"},
			{Name: "Safety", Description: "Workplace safety qualification.", Icon: "fas fa-hard-hat", HexColor: "#F0C808"},
			{Name: "Language", Description: "Language proficiency certificate.", Icon: "fas fa-language", HexColor: "#A1749D"},
		}, func(m *hr.CertificateType) string { return m.Name }),

		catalogSeeder(env, "training_types", "name", []hr.TrainingType{
			{Name: "Onboarding", Description: "Introduction to the company and its tools.", Hours: hours(8)},
			{Name: "Workplace Safety", Description: "Mandatory safety procedures.", Hours: hours(4)},
			{Name: "Leadership", Description: "Managing people and projects.", Hours: hours(16)},
			{Name: "Data Protection", Description: "Handling personal data correctly.", Hours: hours(2)},
		}, func(m *hr.TrainingType) string { return m.Name }),

		catalogSeeder(env, "payment_methods", "name", []hr.PaymentMethod{
			{Name: "Bank Transfer", Description: "Direct deposit to the employee's account.", Icon: "fas fa-university", HexColor: "#8FAADC"},
			{Name: "Cash", Description: "Paid in cash at the office.", Icon: "fas fa-money-bill", HexColor: "#6CC24A"},
			{Name: "Check", Description: "Paid by bank check.", Icon: "fas fa-money-check", HexColor: "#F4A261"},
			{Name: "Digital Wallet", Description: "Paid through a digital wallet.", Icon: "fas fa-wallet", HexColor: "#A1749D"},
		}, func(m *hr.PaymentMethod) string { return m.Name }),
	}
}

func catalogSeeder[T any](env Env, name, column string, rows []T, key func(*T) string) Seeder {
	return Seeder{
		Name: name,
		Seed: func(ctx context.Context, _ int) (int, error) {
			return ensure(ctx, env.DB, column, slices.Clone(rows), key)
		},
		Purge: func(ctx context.Context) (int64, error) {
			return purgeAll[T](ctx, env.DB)
		},
	}
}

type idName struct {
	ID   string
	Name string
}

func idsByName[T any](db *gorm.DB, idColumn, nameColumn string) (map[string]string, error) {
	var rows []idName
	err := db.Model(new(T)).Select(idColumn + " AS id, " + nameColumn + " AS name").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Name] = r.ID
	}
	return out, nil
}

func groupIDs(db *gorm.DB) (map[string]int64, error) {
	var rows []identity.AuthGroup
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, g := range rows {
		out[g.Name] = g.ID
	}
	return out, nil
}
