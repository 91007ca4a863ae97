package department_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/frahmantamala/hr-management/internal/core/datamodel/hr"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/sqlitetest"
	"github.com/frahmantamala/hr-management/internal/department"
	departmentPostgres "github.com/frahmantamala/hr-management/internal/department/postgres"
	"github.com/frahmantamala/hr-management/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

func TestDepartment(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Department Suite")
}

var _ = Describe("Department Handler Integration", func() {
	var (
		db     *gorm.DB
		router chi.Router
	)

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(io.Discard, nil))
		db, err = sqlitetest.Open()
		Expect(err).NotTo(HaveOccurred())

		service := department.NewService(departmentPostgres.NewDepartmentRepository(db), slogger)
		handler := department.NewHandler(&transport.BaseHandler{Logger: slogger}, service)

		router = chi.NewRouter()
		router.Get("/departments", handler.List)
		router.Post("/departments", handler.Create)
		router.Get("/departments/{id}", handler.Get)
		router.Put("/departments/{id}", handler.Update)
		router.Delete("/departments/{id}", handler.Delete)
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
		return rec
	}

	create := func(name string) hr.Department {
		rec := do(http.MethodPost, "/departments", `{"name":"`+name+`","description":"`+name+` team"}`)
		Expect(rec.Code).To(Equal(http.StatusCreated))
		var d hr.Department
		Expect(json.Unmarshal(rec.Body.Bytes(), &d)).To(Succeed())
		return d
	}

	It("should create and retrieve a department", func() {
		d := create("Engineering")
		Expect(d.ID).NotTo(BeEmpty())

		rec := do(http.MethodGet, "/departments/"+d.ID, "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`"name":"Engineering"`))
	})

	It("should nest roles and their training types in the list", func() {
		d := create("Engineering")
		create("Finance")

		tt := hr.TrainingType{Name: "Security", Description: "OWASP"}
		Expect(db.Create(&tt).Error).To(Succeed())
		role := hr.Role{DepartmentID: d.ID, AuthGroupID: 1, RoleName: "Backend", HexColor: "#000000"}
		Expect(db.Omit("TrainingTypes").Create(&role).Error).To(Succeed())
		Expect(db.Create(&hr.TrainingTypeRole{RoleID: role.ID, TrainingTypeID: tt.ID}).Error).To(Succeed())

		rec := do(http.MethodGet, "/departments", "")
		Expect(rec.Code).To(Equal(http.StatusOK))

		var body struct {
			Data       []hr.Department `json:"data"`
			TotalCount int64           `json:"total_count"`
		}
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		Expect(body.TotalCount).To(Equal(int64(2)))
		Expect(body.Data[0].Name).To(Equal("Engineering"))
		Expect(body.Data[0].Roles).To(HaveLen(1))
		Expect(body.Data[0].Roles[0].TrainingTypes).To(HaveLen(1))
		Expect(body.Data[0].Roles[0].TrainingTypes[0].Name).To(Equal("Security"))
		Expect(body.Data[1].Roles).To(BeEmpty())
	})

	It("should validate the name", func() {
		rec := do(http.MethodPost, "/departments", `{"name":""}`)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))

		rec = do(http.MethodPost, "/departments", `{"name":"`+strings.Repeat("x", 101)+`"}`)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(rec.Body.String()).To(ContainSubstring("must not exceed 100 characters"))
	})

	It("should update a department", func() {
		d := create("Engineering")
		rec := do(http.MethodPut, "/departments/"+d.ID, `{"name":"Platform","description":"infra"}`)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`"name":"Platform"`))
	})

	It("should hard delete and answer 404 afterwards", func() {
		d := create("Engineering")
		Expect(do(http.MethodDelete, "/departments/"+d.ID, "").Code).To(Equal(http.StatusNoContent))

		var count int64
		Expect(db.Unscoped().Model(&hr.Department{}).Where("id_department = ?", d.ID).Count(&count).Error).To(Succeed())
		Expect(count).To(BeZero())

		Expect(do(http.MethodDelete, "/departments/"+d.ID, "").Code).To(Equal(http.StatusNotFound))
		Expect(do(http.MethodPut, "/departments/"+d.ID, `{"name":"x"}`).Code).To(Equal(http.StatusNotFound))
	})

	It("should reject malformed bodies", func() {
		rec := do(http.MethodPost, "/departments", `{"name":`)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(rec.Body.String()).To(ContainSubstring("INVALID_BODY"))
	})
})
