package seed

import (
	"strings"

	"github.com/frahmantamala/hr-management/internal/access"
	"github.com/frahmantamala/hr-management/internal/analytics"
	"github.com/frahmantamala/hr-management/internal/attendance"
	"github.com/frahmantamala/hr-management/internal/catalog"
	"github.com/frahmantamala/hr-management/internal/contract"
	"github.com/frahmantamala/hr-management/internal/department"
	"github.com/frahmantamala/hr-management/internal/employee"
	"github.com/frahmantamala/hr-management/internal/extrahours"
	"github.com/frahmantamala/hr-management/internal/leave"
	"github.com/frahmantamala/hr-management/internal/payroll"
	"github.com/frahmantamala/hr-management/internal/role"
	"github.com/frahmantamala/hr-management/internal/schedule"
)

// Codenames lists every permission a route can require.
func Codenames() []string {
	var out []string
	for _, d := range catalog.All() {
		out = append(out, d.Codenames()...)
	}
	return append(out,
		department.PermViewAll, department.PermView, department.PermCreate, department.PermUpdate, department.PermDelete,
		role.PermViewAll, role.PermView, role.PermCreate, role.PermUpdate, role.PermDelete,

		employee.PermViewAll, employee.PermView, employee.PermViewContracts, employee.PermCreate, employee.PermUpdate,
		contract.PermViewAll, contract.PermView, contract.PermCreate, contract.PermUpdate, contract.PermDelete,

		payroll.PermViewAllPayments, payroll.PermViewPayment, payroll.PermCreatePayment, payroll.PermUpdatePayment, payroll.PermDeletePayment,
		payroll.PermViewAllSalaryHistory, payroll.PermViewSalaryHistory, payroll.PermCreateSalaryHistory, payroll.PermUpdateSalaryHistory, payroll.PermDeleteSalaryHistory,
		payroll.PermViewAllBonuses, payroll.PermViewBonus, payroll.PermCreateBonus, payroll.PermUpdateBonus, payroll.PermDeleteBonus,
		payroll.PermViewAllDeductions, payroll.PermViewDeduction, payroll.PermCreateDeduction, payroll.PermUpdateDeduction, payroll.PermDeleteDeduction,

		leave.PermViewAllVacations, leave.PermViewVacation, leave.PermCreateVacation, leave.PermUpdateVacation, leave.PermDeleteVacation,
		leave.PermViewAllAbsenceReasons, leave.PermViewAbsenceReason, leave.PermCreateAbsenceReason, leave.PermUpdateAbsenceReason, leave.PermDeleteAbsenceReason,

		attendance.PermViewAll, attendance.PermView, attendance.PermCreate, attendance.PermUpdate, attendance.PermDelete,
		schedule.PermViewAll, schedule.PermView, schedule.PermCreate, schedule.PermUpdate, schedule.PermDelete,
		extrahours.PermViewAll, extrahours.PermView, extrahours.PermCreate, extrahours.PermUpdate, extrahours.PermDelete,

		access.PermViewAllGroups, access.PermViewGroup, access.PermCreateGroup, access.PermUpdateGroup, access.PermDeleteGroup,
		access.PermAddGroupGrants, access.PermDeleteGroupGrants, access.PermViewAllPermissions, access.PermViewMemberships,

		analytics.PermView,
	)
}

// describe turns view_all_roles into "Can view all roles".
func describe(codename string) string {
	return "Can " + strings.ReplaceAll(codename, "_", " ")
}
