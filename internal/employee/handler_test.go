package employee_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/auth"
	"github.com/frahmantamala/hr-management/internal/employee"
	"github.com/frahmantamala/hr-management/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"
)

type stubService struct {
	created    employee.EmployeeDTO
	createErr  error
	lastFilter employee.ListFilter
	lastCF     employee.ContractFilter
	rows       []employee.ListRow
}

func (s *stubService) List(_ context.Context, f employee.ListFilter) (employee.ListResponse, error) {
	s.lastFilter = f
	return employee.ListResponse{Employees: s.rows, TotalCount: int64(len(s.rows))}, nil
}

func (s *stubService) Get(_ context.Context, id string) (*employee.Detail, error) {
	return nil, errors.NewNotFoundError("employee not found", errors.ErrCodeEmployeeNotFound)
}

func (s *stubService) Contracts(_ context.Context, _ string, f employee.ContractFilter) (employee.ContractsResponse, error) {
	s.lastCF = f
	return employee.ContractsResponse{Contracts: []employee.ContractRow{}}, nil
}

func (s *stubService) Create(_ context.Context, dto employee.EmployeeDTO) (*employee.CreatedResponse, error) {
	s.created = dto
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &employee.CreatedResponse{ID: "3d1f0c9e-6d7b-4b70-9a52-8f0cbbd0e001"}, nil
}

func (s *stubService) Update(_ context.Context, id string, dto employee.EmployeeDTO) (*employee.UpdatedResponse, error) {
	return &employee.UpdatedResponse{ID: id, Username: dto.Employee.Username}, nil
}

func (s *stubService) Export(_ context.Context, f employee.ListFilter) ([]employee.ListRow, error) {
	s.lastFilter = f
	return s.rows, nil
}

type stubTokens struct {
	issuedFor string
}

func (t *stubTokens) IssueTokens(_ context.Context, employeeID string) (auth.TokenPair, error) {
	t.issuedFor = employeeID
	return auth.TokenPair{Access: "access-token", Refresh: "refresh-token"}, nil
}

func ptr(s string) *string { return &s }

var _ = Describe("Employee Handler", func() {
	var (
		svc    *stubService
		tokens *stubTokens
		router chi.Router
	)

	BeforeEach(func() {
		svc = &stubService{}
		tokens = &stubTokens{}
		h := employee.NewHandler(transport.NewBaseHandler(slog.New(slog.NewTextHandler(io.Discard, nil))), svc, tokens)

		router = chi.NewRouter()
		router.Get("/employees", h.List)
		router.Get("/employees/export", h.Export)
		router.Post("/employees", h.Create)
		router.Get("/employees/{id}", h.Get)
		router.Put("/employees/{id}", h.Update)
		router.Get("/employees/{id}/contracts", h.Contracts)
		router.Post("/auth/register", h.Register)
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
		return rec
	}

	It("should read list filters with a default limit of five", func() {
		rec := do(http.MethodGet, "/employees?name=ada&department_id=d1&status_id=s1&order_by=email", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`"employees":null`))
		Expect(svc.lastFilter.Limit).To(Equal(employee.DefaultListLimit))
		Expect(svc.lastFilter.Name).To(Equal("ada"))
		Expect(svc.lastFilter.DepartmentID).To(Equal("d1"))
		Expect(svc.lastFilter.StatusID).To(Equal("s1"))
		Expect(svc.lastFilter.OrderBy).To(Equal("email"))
	})

	It("should default contract history to newest first", func() {
		rec := do(http.MethodGet, "/employees/3d1f0c9e-6d7b-4b70-9a52-8f0cbbd0e001/contracts?role_name=dev", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(svc.lastCF.OrderDirection).To(Equal("DESC"))
		Expect(svc.lastCF.RoleName).To(Equal("dev"))

		do(http.MethodGet, "/employees/3d1f0c9e-6d7b-4b70-9a52-8f0cbbd0e001/contracts?order_direction=asc", "")
		Expect(svc.lastCF.OrderDirection).To(Equal("ASC"))
	})

	It("should decode the nested payload on create", func() {
		body := `{"employee":{"username":"ada","id_group":2,"birth_date":"1990-12-10"},
			"employee_address":{"street":"1 Way","city":"London","country":"GB"},
			"contract":{"id_role":"r","id_contract_type":"t"},
			"trainings":[{"id_training_type":"x","start_date":"2024-01-01","end_date":"2024-01-02"}]}`
		rec := do(http.MethodPost, "/employees", body)
		Expect(rec.Code).To(Equal(http.StatusCreated))
		Expect(rec.Body.String()).To(ContainSubstring(`"id":"3d1f0c9e-6d7b-4b70-9a52-8f0cbbd0e001"`))
		Expect(svc.created.Employee.GroupID).To(Equal(int64(2)))
		Expect(svc.created.Employee.BirthDate.String()).To(Equal("1990-12-10"))
		Expect(svc.created.Contract.RoleID).To(Equal("r"))
		Expect(svc.created.Trainings).To(HaveLen(1))
	})

	It("should answer 400 for a malformed id or body", func() {
		Expect(do(http.MethodGet, "/employees/not-a-uuid", "").Code).To(Equal(http.StatusBadRequest))
		Expect(do(http.MethodPost, "/employees", "{").Code).To(Equal(http.StatusBadRequest))
	})

	It("should forward service errors", func() {
		Expect(do(http.MethodGet, "/employees/3d1f0c9e-6d7b-4b70-9a52-8f0cbbd0e001", "").Code).To(Equal(http.StatusNotFound))

		svc.createErr = errors.NewValidationFieldError("employee.username", "username is already taken", errors.ErrCodeDuplicate)
		rec := do(http.MethodPost, "/auth/register", `{"employee":{"username":"ada"}}`)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(tokens.issuedFor).To(BeEmpty())
	})

	It("should issue tokens for a registered employee", func() {
		rec := do(http.MethodPost, "/auth/register", `{"employee":{"username":"ada"}}`)
		Expect(rec.Code).To(Equal(http.StatusCreated))

		var pair auth.TokenPair
		Expect(json.Unmarshal(rec.Body.Bytes(), &pair)).To(Succeed())
		Expect(pair.Access).To(Equal("access-token"))
		Expect(pair.Refresh).To(Equal("refresh-token"))
		Expect(tokens.issuedFor).To(Equal("3d1f0c9e-6d7b-4b70-9a52-8f0cbbd0e001"))
	})

	It("should export the directory as a workbook", func() {
		svc.rows = []employee.ListRow{
			{ID: "e1", EmployeeName: "Ada Lovelace", Email: "ada@example.com", RoleName: ptr("Backend"), StateName: ptr("Active")},
			{ID: "e2", EmployeeName: "Grace Hopper", Email: "grace@example.com"},
		}

		rec := do(http.MethodGet, "/employees/export?department_id=d1", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Header().Get("Content-Disposition")).To(ContainSubstring("employees.xlsx"))
		Expect(svc.lastFilter.DepartmentID).To(Equal("d1"))

		f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		rows, err := f.GetRows("Employees")
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(3))
		Expect(rows[0]).To(Equal([]string{"ID", "Name", "Email", "Role", "Department", "State"}))
		Expect(rows[1][1]).To(Equal("Ada Lovelace"))
		Expect(rows[1][3]).To(Equal("Backend"))
		Expect(rows[2][2]).To(Equal("grace@example.com"))
	})
})
