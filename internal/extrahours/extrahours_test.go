package extrahours_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/extrahours"
	"github.com/frahmantamala/hr-management/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestExtraHours(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Extra Hours Suite")
}

const ada = "11111111-1111-4111-8111-111111111111"

type memoryRepo struct {
	entries []extrahours.Entry
}

func (m *memoryRepo) where(keep func(extrahours.Entry) bool) []extrahours.Entry {
	var out []extrahours.Entry
	for _, e := range m.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func (m *memoryRepo) at(id, date string) int {
	for i, e := range m.entries {
		if e.EmployeeID == id && e.Date == date {
			return i
		}
	}
	return -1
}

func (m *memoryRepo) List(context.Context) ([]extrahours.Entry, error) {
	return m.where(func(extrahours.Entry) bool { return true }), nil
}

func (m *memoryRepo) ListByDate(_ context.Context, date string) ([]extrahours.Entry, error) {
	return m.where(func(e extrahours.Entry) bool { return e.Date == date }), nil
}

func (m *memoryRepo) ListByEmployee(_ context.Context, id string) ([]extrahours.Entry, error) {
	return m.where(func(e extrahours.Entry) bool { return e.EmployeeID == id }), nil
}

func (m *memoryRepo) Get(_ context.Context, id, date string) (*extrahours.Entry, error) {
	if i := m.at(id, date); i >= 0 {
		e := m.entries[i]
		return &e, nil
	}
	return nil, nil
}

func (m *memoryRepo) Insert(_ context.Context, e extrahours.Entry) (string, error) {
	m.entries = append(m.entries, e)
	return "generated-id", nil
}

func (m *memoryRepo) Update(_ context.Context, id, date string, fields map[string]interface{}) (bool, error) {
	i := m.at(id, date)
	if i < 0 {
		return false, nil
	}
	m.entries[i].Start = fields["start"].(string)
	m.entries[i].End = fields["end"].(string)
	return true, nil
}

func (m *memoryRepo) Delete(_ context.Context, id, date string) (bool, error) {
	i := m.at(id, date)
	if i < 0 {
		return false, nil
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	return true, nil
}

func (m *memoryRepo) DeleteAll(context.Context) (int64, error) {
	n := int64(len(m.entries))
	m.entries = nil
	return n, nil
}

func appError(err error) *errors.AppError {
	appErr, ok := errors.IsAppError(err)
	Expect(ok).To(BeTrue(), "expected an AppError, got %v", err)
	return appErr
}

func ptr(s string) *string { return &s }

var _ = Describe("Extra hours", func() {
	var (
		repo    *memoryRepo
		service *extrahours.Service
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = &memoryRepo{}
		service = extrahours.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	It("records a window and finds it by date or employee", func() {
		_, err := service.Create(ctx, extrahours.EntryDTO{EmployeeID: ada, Date: "2024-12-26", Start: "18:00:00", End: "20:30:00"})
		Expect(err).NotTo(HaveOccurred())

		byDate, err := service.Find(ctx, "2024-12-26")
		Expect(err).NotTo(HaveOccurred())
		Expect(byDate).To(ConsistOf(extrahours.Entry{EmployeeID: ada, Date: "2024-12-26", Start: "18:00:00", End: "20:30:00"}))

		byEmployee, err := service.Find(ctx, ada)
		Expect(err).NotTo(HaveOccurred())
		Expect(byEmployee).To(HaveLen(1))

		_, err = service.Find(ctx, "2024-12-27")
		Expect(appError(err).Message).To(Equal("No records found for the given date"))
	})

	It("requires the end after the start", func() {
		_, err := service.Create(ctx, extrahours.EntryDTO{EmployeeID: ada, Date: "2024-12-26", Start: "20:00:00", End: "18:00:00"})
		Expect(appError(err).GetDetailedMessage()).To(Equal("end must be after start"))

		_, err = service.Create(ctx, extrahours.EntryDTO{EmployeeID: ada, Date: "2024-12-26", Start: "20:00", End: "21:00:00"})
		Expect(appError(err).GetDetailedMessage()).To(Equal("start must use HH:MM:SS"))

		_, err = service.Create(ctx, extrahours.EntryDTO{EmployeeID: ada, Date: "tomorrow", Start: "20:00:00", End: "21:00:00"})
		Expect(appError(err).GetDetailedMessage()).To(Equal("date must use YYYY-MM-DD"))
	})

	It("checks partial updates against the stored window", func() {
		repo.entries = []extrahours.Entry{{EmployeeID: ada, Date: "2024-12-26", Start: "18:00:00", End: "20:00:00"}}

		_, err := service.Update(ctx, ada, "2024-12-26", extrahours.UpdateDTO{Start: ptr("21:00:00")})
		Expect(appError(err).GetDetailedMessage()).To(Equal("end must be after start"))

		_, err = service.Update(ctx, ada, "2024-12-26", extrahours.UpdateDTO{End: ptr("22:00:00")})
		Expect(err).NotTo(HaveOccurred())
		Expect(repo.entries[0].End).To(Equal("22:00:00"))
		Expect(repo.entries[0].Start).To(Equal("18:00:00"))

		_, err = service.Update(ctx, ada, "2024-12-25", extrahours.UpdateDTO{End: ptr("22:00:00")})
		Expect(appError(err).StatusCode).To(Equal(http.StatusNotFound))
	})

	It("answers 400 for a malformed day in the path", func() {
		h := extrahours.NewHandler(transport.NewBaseHandler(slog.New(slog.NewTextHandler(io.Discard, nil))), service)
		router := chi.NewRouter()
		router.Delete("/extra_hours/{id_employee}/{date}", h.Delete)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/extra_hours/"+ada+"/2024-13-40", nil))
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(rec.Body.String()).To(ContainSubstring("Invalid date format. Use YYYY-MM-DD."))

		repo.entries = []extrahours.Entry{{EmployeeID: ada, Date: "2024-12-26", Start: "18:00:00", End: "20:00:00"}}
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/extra_hours/"+ada+"/2024-12-26", strings.NewReader("")))
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(repo.entries).To(BeEmpty())
	})
})
