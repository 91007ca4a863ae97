package analytics_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/analytics"
	analyticsPostgres "github.com/frahmantamala/hr-management/internal/analytics/postgres"
	"github.com/frahmantamala/hr-management/internal/transport"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

func TestAnalytics(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Analytics Suite")
}

var views = []string{
	`CREATE VIEW absence_analytics_view AS
		SELECT 'Ada Test' AS employee_name, 3 AS total_absences, 7 AS total_days_absent
		UNION ALL SELECT 'Grace Test', 1, 2`,
	`CREATE VIEW current_month_payment_analytics_view AS
		SELECT 'October' AS month_name, 2 AS total_employees_paid, 6000.00 AS total_base_salary,
			200.00 AS total_bonus_amount, 50.00 AS total_deduction_amount, 6150.00 AS net_payment_amount,
			3000.00 AS average_payment, 2500.00 AS min_payment, 3500.00 AS max_payment,
			1 AS employees_with_bonus, 1 AS employees_with_deduction`,
	`CREATE VIEW salary_by_departament_view AS
		SELECT 'Sales' AS department_name, 2 AS employee_count, 2750.5 AS avg_salary,
			2000 AS min_salary, 3501 AS max_salary
		UNION ALL SELECT 'Empty', 0, NULL, NULL, NULL`,
	`CREATE VIEW total_employees_per_department_view AS
		SELECT 'Sales' AS department_name, 2 AS total_employees`,
}

var _ = Describe("Analytics", func() {
	var (
		db      *sqlx.DB
		service *analytics.Service
		ctx     context.Context
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		db, err = sqlx.Open("sqlite3", ":memory:")
		Expect(err).NotTo(HaveOccurred())
		db.SetMaxOpenConns(1)
		for _, v := range views {
			_, err := db.Exec(v)
			Expect(err).NotTo(HaveOccurred())
		}
		service = analytics.NewService(analyticsPostgres.NewAnalyticsRepository(db), slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	AfterEach(func() {
		Expect(db.Close()).To(Succeed())
	})

	It("should map every view column", func() {
		absences, err := service.Absences(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(absences).To(HaveLen(2))
		Expect(absences[0]).To(Equal(analytics.Absence{EmployeeName: "Ada Test", TotalAbsences: 3, TotalDaysAbsent: 7}))

		payments, err := service.CurrentMonthPayments(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(payments).To(HaveLen(1))
		Expect(payments[0].MonthName).To(Equal("October"))
		Expect(payments[0].NetPaymentAmount.Decimal.Equal(decimal.NewFromInt(6150))).To(BeTrue())
		Expect(payments[0].EmployeesWithBonus).To(Equal(int64(1)))

		salaries, err := service.SalaryByDepartment(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(salaries[0].AvgSalary.Decimal.String()).To(Equal("2750.5"))
		Expect(salaries[1].AvgSalary.Valid).To(BeFalse())
	})

	It("should combine the views into the dashboard", func() {
		h := analytics.NewHandler(transport.NewBaseHandler(slog.New(slog.NewTextHandler(io.Discard, nil))), service)

		rec := httptest.NewRecorder()
		h.Dashboard(rec, httptest.NewRequest(http.MethodGet, "/analytics", nil))
		Expect(rec.Code).To(Equal(http.StatusOK))

		var out map[string][]map[string]interface{}
		Expect(json.Unmarshal(rec.Body.Bytes(), &out)).To(Succeed())
		Expect(out).To(HaveKey("current_month_payments"))
		Expect(out["top_absences"]).To(HaveLen(2))
		Expect(out["department_salaries"][1]["avg_salary"]).To(BeNil())
		Expect(out["department_counts"][0]["total_employees"]).To(BeEquivalentTo(2))
	})

	It("should return empty lists for empty views", func() {
		_, err := db.Exec(`DROP VIEW total_employees_per_department_view`)
		Expect(err).NotTo(HaveOccurred())
		_, err = db.Exec(`CREATE VIEW total_employees_per_department_view AS
			SELECT 'x' AS department_name, 0 AS total_employees WHERE 1 = 0`)
		Expect(err).NotTo(HaveOccurred())

		counts, err := service.EmployeesPerDepartment(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(counts).NotTo(BeNil())
		Expect(counts).To(BeEmpty())
	})

	It("should hide driver errors behind an internal error", func() {
		_, err := db.Exec(`DROP VIEW absence_analytics_view`)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Dashboard(ctx)
		appErr, ok := errors.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.StatusCode).To(Equal(http.StatusInternalServerError))
		Expect(appErr.Message).To(Equal("failed to read absence analytics"))
	})
})
