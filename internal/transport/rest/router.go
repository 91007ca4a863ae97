package rest

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/hr-management/internal/access"
	"github.com/frahmantamala/hr-management/internal/analytics"
	"github.com/frahmantamala/hr-management/internal/attendance"
	"github.com/frahmantamala/hr-management/internal/auth"
	"github.com/frahmantamala/hr-management/internal/contract"
	"github.com/frahmantamala/hr-management/internal/department"
	"github.com/frahmantamala/hr-management/internal/employee"
	"github.com/frahmantamala/hr-management/internal/extrahours"
	"github.com/frahmantamala/hr-management/internal/leave"
	"github.com/frahmantamala/hr-management/internal/payroll"
	"github.com/frahmantamala/hr-management/internal/role"
	"github.com/frahmantamala/hr-management/internal/schedule"
	"github.com/frahmantamala/hr-management/internal/transport/middleware"
	"github.com/frahmantamala/hr-management/internal/transport/swagger"
	"github.com/go-chi/chi"
)

// CatalogRoutes is implemented by every catalog.Handler instantiation.
type CatalogRoutes interface {
	Routes(r chi.Router, require func(codename string) func(http.Handler) http.Handler)
}

// Handlers carries everything the API mounts. Nil handlers are skipped.
type Handlers struct {
	Health      *HealthHandler
	Auth        *auth.Handler
	Gate        *auth.Gate
	Catalogs    []CatalogRoutes
	Departments *department.Handler
	Roles       *role.Handler
	Employees   *employee.Handler
	Contracts   *contract.Handler
	Payroll     *payroll.Handler
	Leave       *leave.Handler
	Access      *access.Handler
	Analytics   *analytics.Handler
	Attendance  *attendance.Handler
	Schedules   *schedule.Handler
	ExtraHours  *extrahours.Handler
	OpenAPI     []byte
}

func RegisterAllRoutes(router *chi.Mux, h Handlers, allowedOrigins string, logger *slog.Logger) {
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	if h.OpenAPI != nil {
		swagger.Routes(router, h.OpenAPI)
	}

	router.Route("/api/v1", func(r chi.Router) {
		if h.Health != nil {
			r.Get("/health", h.Health.healthCheckHandler)
			r.Get("/ping", h.Health.pingHandler)
		}

		if h.Auth == nil {
			return
		}

		r.Route("/auth", func(ar chi.Router) {
			ar.Post("/login", h.Auth.Login)
			ar.Post("/refresh", h.Auth.RefreshToken)
			if h.Employees != nil {
				ar.With(h.Auth.AuthMiddleware, h.Gate.Require(employee.PermCreate)).Post("/register", h.Employees.Register)
			}
		})

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)
			pr.Use(middleware.EmployeeContext)
			require := h.Gate.Require

			pr.Get("/user_permissions", h.Auth.UserPermissions)

			for _, c := range h.Catalogs {
				c.Routes(pr, require)
			}

			if d := h.Departments; d != nil {
				pr.Route("/departments", func(sr chi.Router) {
					sr.With(require(department.PermViewAll)).Get("/", d.List)
					sr.With(require(department.PermCreate)).Post("/", d.Create)
					sr.With(require(department.PermView)).Get("/{id}", d.Get)
					sr.With(require(department.PermUpdate)).Put("/{id}", d.Update)
					sr.With(require(department.PermDelete)).Delete("/{id}", d.Delete)
				})
			}

			if ro := h.Roles; ro != nil {
				pr.Route("/roles", func(sr chi.Router) {
					sr.With(require(role.PermViewAll)).Get("/", ro.List)
					sr.With(require(role.PermCreate)).Post("/", ro.Create)
					sr.With(require(role.PermView)).Get("/{id}", ro.Get)
					sr.With(require(role.PermUpdate)).Put("/{id}", ro.Update)
					sr.With(require(role.PermDelete)).Delete("/{id}", ro.Delete)
				})
			}

			if e := h.Employees; e != nil {
				pr.Route("/employees", func(sr chi.Router) {
					sr.With(require(employee.PermViewAll)).Get("/", e.List)
					sr.With(require(employee.PermViewAll)).Get("/export", e.Export)
					sr.With(require(employee.PermCreate)).Post("/", e.Create)
					sr.With(require(employee.PermView)).Get("/{id}", e.Get)
					sr.With(require(employee.PermUpdate)).Put("/{id}", e.Update)
					sr.With(require(employee.PermViewContracts)).Get("/{id}/contracts", e.Contracts)
				})
			}

			if c := h.Contracts; c != nil {
				pr.Route("/contract_state_contracts", func(sr chi.Router) {
					sr.With(require(contract.PermViewAll)).Get("/", c.List)
					sr.With(require(contract.PermCreate)).Post("/", c.Create)
					sr.With(require(contract.PermView)).Get("/{id}", c.History)
					sr.With(require(contract.PermUpdate)).Put("/{id}", c.Update)
					sr.With(require(contract.PermDelete)).Delete("/{id}", c.Delete)
				})
			}

			if p := h.Payroll; p != nil {
				pr.Route("/payments", func(sr chi.Router) {
					sr.With(require(payroll.PermViewAllPayments)).Get("/", p.ListPayments)
					sr.With(require(payroll.PermCreatePayment)).Post("/", p.CreatePayment)
					sr.With(require(payroll.PermViewPayment)).Get("/{id}", p.GetPayment)
					sr.With(require(payroll.PermViewPayment)).Get("/{id}/payslip", p.Payslip)
					sr.With(require(payroll.PermUpdatePayment)).Put("/{id}", p.UpdatePayment)
					sr.With(require(payroll.PermDeletePayment)).Delete("/{id}", p.DeletePayment)
				})
				pr.Route("/salary_history", func(sr chi.Router) {
					sr.With(require(payroll.PermViewAllSalaryHistory)).Get("/", p.ListSalaries)
					sr.With(require(payroll.PermCreateSalaryHistory)).Post("/", p.CreateSalary)
					sr.With(require(payroll.PermViewSalaryHistory)).Get("/{id}", p.GetSalary)
					sr.With(require(payroll.PermUpdateSalaryHistory)).Put("/{id}", p.UpdateSalary)
					sr.With(require(payroll.PermDeleteSalaryHistory)).Delete("/{id}", p.DeleteSalary)
				})
				pr.Route("/bonuses", func(sr chi.Router) {
					sr.With(require(payroll.PermViewAllBonuses)).Get("/", p.ListBonuses)
					sr.With(require(payroll.PermCreateBonus)).Post("/", p.CreateBonus)
					sr.With(require(payroll.PermViewBonus)).Get("/{id}", p.GetBonus)
					sr.With(require(payroll.PermUpdateBonus)).Put("/{id}", p.UpdateBonus)
					sr.With(require(payroll.PermDeleteBonus)).Delete("/{id}", p.DeleteBonus)
				})
				pr.Route("/deductions", func(sr chi.Router) {
					sr.With(require(payroll.PermViewAllDeductions)).Get("/", p.ListDeductions)
					sr.With(require(payroll.PermCreateDeduction)).Post("/", p.CreateDeduction)
					sr.With(require(payroll.PermViewDeduction)).Get("/{id}", p.GetDeduction)
					sr.With(require(payroll.PermUpdateDeduction)).Put("/{id}", p.UpdateDeduction)
					sr.With(require(payroll.PermDeleteDeduction)).Delete("/{id}", p.DeleteDeduction)
				})
			}

			if l := h.Leave; l != nil {
				pr.Route("/vacations", func(sr chi.Router) {
					sr.With(require(leave.PermViewAllVacations)).Get("/", l.ListVacations)
					sr.With(require(leave.PermCreateVacation)).Post("/", l.CreateVacation)
					sr.With(require(leave.PermViewVacation)).Get("/{id}", l.GetVacation)
					sr.With(require(leave.PermUpdateVacation)).Put("/{id}", l.UpdateVacation)
					sr.With(require(leave.PermDeleteVacation)).Delete("/{id}", l.DeleteVacation)
				})
				pr.Route("/absence_reason", func(sr chi.Router) {
					sr.With(require(leave.PermViewAllAbsenceReasons)).Get("/", l.ListAbsences)
					sr.With(require(leave.PermCreateAbsenceReason)).Post("/", l.CreateAbsence)
					sr.With(require(leave.PermViewAbsenceReason)).Get("/{id}", l.GetAbsence)
					sr.With(require(leave.PermUpdateAbsenceReason)).Put("/{id}", l.UpdateAbsence)
					sr.With(require(leave.PermDeleteAbsenceReason)).Delete("/{id}", l.DeleteAbsence)
				})
			}

			if a := h.Access; a != nil {
				pr.Route("/authgroup", func(sr chi.Router) {
					sr.With(require(access.PermViewAllGroups)).Get("/", a.ListGroups)
					sr.With(require(access.PermCreateGroup)).Post("/", a.CreateGroup)
					sr.With(require(access.PermViewGroup)).Get("/{id}", a.GetGroup)
					sr.With(require(access.PermUpdateGroup)).Put("/{id}", a.UpdateGroup)
					sr.With(require(access.PermDeleteGroup)).Delete("/{id}", a.DeleteGroup)
					sr.With(require(access.PermAddGroupGrants)).Post("/{id}/permissions", a.Grant)
					sr.With(require(access.PermDeleteGroupGrants)).Delete("/{id}/permissions", a.Revoke)
				})
				pr.With(require(access.PermViewAllPermissions)).Get("/permissions", a.ListPermissions)
				pr.With(require(access.PermViewMemberships)).Get("/permissions_user_group", a.ListMembers)
			}

			if an := h.Analytics; an != nil {
				pr.Route("/analytics", func(sr chi.Router) {
					sr.Use(require(analytics.PermView))
					sr.Get("/", an.Dashboard)
					sr.Get("/absence_analytics", an.Absences)
					sr.Get("/current_month_payments", an.CurrentMonthPayments)
					sr.Get("/salary_by_department", an.SalaryByDepartment)
					sr.Get("/employees_per_department", an.EmployeesPerDepartment)
				})
			}

			if at := h.Attendance; at != nil {
				pr.Route("/attendance", func(sr chi.Router) {
					sr.Post("/check-in", at.CheckIn)
					sr.Post("/check-out", at.CheckOut)
					sr.With(require(attendance.PermViewAll)).Get("/", at.List)
					sr.With(require(attendance.PermCreate)).Post("/", at.Create)
					sr.With(require(attendance.PermView)).Get("/{key}", at.Find)
					sr.With(require(attendance.PermUpdate)).Put("/{id_employee}", at.UpdateByEmployee)
					sr.With(require(attendance.PermView)).Get("/{id_employee}/{date}", at.Get)
					sr.With(require(attendance.PermUpdate)).Put("/{id_employee}/{date}", at.Update)
					sr.With(require(attendance.PermDelete)).Delete("/{id_employee}/{date}", at.Delete)
				})
			}

			if s := h.Schedules; s != nil {
				pr.Route("/schedule", func(sr chi.Router) {
					sr.With(require(schedule.PermViewAll)).Get("/", s.List)
					sr.With(require(schedule.PermCreate)).Post("/", s.Create)
					sr.With(require(schedule.PermView)).Get("/{id_employee}", s.Get)
					sr.With(require(schedule.PermUpdate)).Put("/{id_employee}", s.Update)
					sr.With(require(schedule.PermDelete)).Delete("/{id_employee}", s.Delete)
				})
			}

			if x := h.ExtraHours; x != nil {
				pr.Route("/extra_hours", func(sr chi.Router) {
					sr.With(require(extrahours.PermViewAll)).Get("/", x.List)
					sr.With(require(extrahours.PermCreate)).Post("/", x.Create)
					sr.With(require(extrahours.PermView)).Get("/{key}", x.Find)
					sr.With(require(extrahours.PermView)).Get("/{id_employee}/{date}", x.Get)
					sr.With(require(extrahours.PermUpdate)).Put("/{id_employee}/{date}", x.Update)
					sr.With(require(extrahours.PermDelete)).Delete("/{id_employee}/{date}", x.Delete)
				})
			}
		})
	})
}
