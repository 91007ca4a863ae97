package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frahmantamala/hr-management/internal/transport/rest"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRest(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "REST Suite")
}

var _ = Describe("Health endpoints", func() {
	var (
		router *chi.Mux
		mongo  error
	)

	BeforeEach(func() {
		mongo = nil
		router = chi.NewRouter()
		health := rest.NewHealthHandler(map[string]rest.Pinger{
			"postgres": rest.PingFunc(func(context.Context) error { return nil }),
			"mongo":    rest.PingFunc(func(context.Context) error { return mongo }),
		})
		rest.RegisterAllRoutes(router, rest.Handlers{Health: health}, "*", slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	It("answers ping", func() {
		rec := get("/api/v1/ping")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`"OK"`))
	})

	It("reports every store healthy", func() {
		rec := get("/api/v1/health")
		Expect(rec.Code).To(Equal(http.StatusOK))

		var resp rest.HealthResponse
		Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Status).To(Equal(rest.HealthHealthy))
		Expect(resp.Components).To(HaveKey("postgres"))
		Expect(resp.Components).To(HaveKey("mongo"))
	})

	It("answers 503 when a store is down", func() {
		mongo = errors.New("connection refused")
		rec := get("/api/v1/health")
		Expect(rec.Code).To(Equal(http.StatusServiceUnavailable))

		var resp rest.HealthResponse
		Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Components["mongo"].Status).To(Equal(rest.HealthUnhealthy))
		Expect(resp.Components["mongo"].Message).To(Equal("connection refused"))
		Expect(resp.Components["postgres"].Status).To(Equal(rest.HealthHealthy))
	})

	It("echoes a request id", func() {
		Expect(get("/api/v1/ping").Header().Get("X-Request-ID")).NotTo(BeEmpty())
	})
})
