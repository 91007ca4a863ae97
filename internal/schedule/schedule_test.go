package schedule_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/schedule"
	"github.com/frahmantamala/hr-management/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSchedule(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Schedule Suite")
}

const ada = "11111111-1111-4111-8111-111111111111"

type memoryRepo struct {
	byEmployee map[string]schedule.Schedule
}

func (m *memoryRepo) List(context.Context) ([]schedule.Schedule, error) {
	var out []schedule.Schedule
	for _, s := range m.byEmployee {
		out = append(out, s)
	}
	return out, nil
}

func (m *memoryRepo) Get(_ context.Context, id string) (*schedule.Schedule, error) {
	s, ok := m.byEmployee[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memoryRepo) Insert(_ context.Context, s schedule.Schedule) (string, error) {
	m.byEmployee[s.EmployeeID] = s
	return "generated-id", nil
}

func (m *memoryRepo) Update(_ context.Context, id string, fields map[string]interface{}) (bool, error) {
	s, ok := m.byEmployee[id]
	if !ok {
		return false, nil
	}
	if w, ok := fields["workSchedule"].(schedule.Week); ok {
		s.WorkSchedule = w
	}
	m.byEmployee[id] = s
	return true, nil
}

func (m *memoryRepo) Delete(_ context.Context, id string) (bool, error) {
	_, ok := m.byEmployee[id]
	delete(m.byEmployee, id)
	return ok, nil
}

func (m *memoryRepo) DeleteAll(context.Context) (int64, error) {
	n := int64(len(m.byEmployee))
	m.byEmployee = map[string]schedule.Schedule{}
	return n, nil
}

func appError(err error) *errors.AppError {
	appErr, ok := errors.IsAppError(err)
	Expect(ok).To(BeTrue(), "expected an AppError, got %v", err)
	return appErr
}

var _ = Describe("Schedule", func() {
	var (
		repo    *memoryRepo
		service *schedule.Service
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = &memoryRepo{byEmployee: map[string]schedule.Schedule{}}
		service = schedule.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	It("creates one schedule per employee", func() {
		res, err := service.Create(ctx, schedule.ScheduleDTO{EmployeeID: ada, WorkSchedule: schedule.Weekdays("09:00", "17:00")})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.ID).To(Equal("generated-id"))

		got, err := service.Get(ctx, ada)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.WorkSchedule.Days()).To(HaveLen(5))
		Expect(got.WorkSchedule.Saturday).To(BeNil())

		_, err = service.Create(ctx, schedule.ScheduleDTO{EmployeeID: ada, WorkSchedule: schedule.Weekdays("08:00", "12:00")})
		Expect(appError(err).StatusCode).To(Equal(http.StatusConflict))
	})

	It("rejects malformed clocks and inverted shifts", func() {
		week := schedule.Weekdays("09:00", "17:00")
		week.Monday.Start = "9h"
		_, err := service.Create(ctx, schedule.ScheduleDTO{EmployeeID: ada, WorkSchedule: week})
		Expect(appError(err).GetDetailedMessage()).To(Equal("workSchedule.monday.start must use HH:MM"))

		week = schedule.Weekdays("09:00", "17:00")
		week.Friday.End = "08:00"
		_, err = service.Create(ctx, schedule.ScheduleDTO{EmployeeID: ada, WorkSchedule: week})
		Expect(appError(err).GetDetailedMessage()).To(Equal("workSchedule.friday.end must be after start"))

		_, err = service.Create(ctx, schedule.ScheduleDTO{EmployeeID: ada})
		Expect(appError(err).GetDetailedMessage()).To(Equal("workSchedule must set at least one day"))
	})

	It("replaces and deletes the weekly plan", func() {
		_, err := service.Create(ctx, schedule.ScheduleDTO{EmployeeID: ada, WorkSchedule: schedule.Weekdays("09:00", "17:00")})
		Expect(err).NotTo(HaveOccurred())

		weekend := schedule.Week{Saturday: &schedule.Shift{Start: "10:00", End: "14:00"}}
		_, err = service.Update(ctx, ada, schedule.UpdateDTO{WorkSchedule: &weekend})
		Expect(err).NotTo(HaveOccurred())
		Expect(repo.byEmployee[ada].WorkSchedule.Days()).To(HaveKey("saturday"))
		Expect(repo.byEmployee[ada].WorkSchedule.Monday).To(BeNil())

		_, err = service.Update(ctx, ada, schedule.UpdateDTO{})
		Expect(appError(err).GetDetailedMessage()).To(Equal("workSchedule is required"))

		res, err := service.Delete(ctx, ada)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Message).To(Equal("Document deleted successfully"))
		_, err = service.Delete(ctx, ada)
		Expect(appError(err).StatusCode).To(Equal(http.StatusNotFound))
	})

	It("serves the collection over HTTP", func() {
		h := schedule.NewHandler(transport.NewBaseHandler(slog.New(slog.NewTextHandler(io.Discard, nil))), service)
		router := chi.NewRouter()
		router.Get("/schedule", h.List)
		router.Post("/schedule", h.Create)
		router.Get("/schedule/{id_employee}", h.Get)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schedule", nil))
		Expect(strings.TrimSpace(rec.Body.String())).To(Equal("[]"))

		body := `{"id_employee":"` + ada + `","workSchedule":{"monday":{"start":"09:00","end":"17:00"}}}`
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/schedule", strings.NewReader(body)))
		Expect(rec.Code).To(Equal(http.StatusCreated))

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schedule/"+ada, nil))
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`"monday":{"start":"09:00","end":"17:00"}`))
		Expect(rec.Body.String()).NotTo(ContainSubstring("tuesday"))

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schedule/nobody", nil))
		Expect(rec.Code).To(Equal(http.StatusNotFound))
	})
})
