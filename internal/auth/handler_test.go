package auth_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/frahmantamala/hr-management/internal/auth"
	"github.com/frahmantamala/hr-management/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type stubAuthorizer struct {
	granted map[string][]string
	calls   int
}

func (s *stubAuthorizer) HasPermission(_ context.Context, employeeID, codename string) (bool, error) {
	s.calls++
	for _, c := range s.granted[employeeID] {
		if c == codename {
			return true, nil
		}
	}
	return false, nil
}

type stubService struct {
	tokens *auth.JWTTokenGenerator
}

func (s *stubService) Authenticate(context.Context, auth.LoginDTO) (auth.TokenPair, error) {
	return auth.TokenPair{Access: "a", Refresh: "r"}, nil
}

func (s *stubService) Refresh(context.Context, auth.RefreshTokenDTO) (auth.TokenPair, error) {
	return auth.TokenPair{}, nil
}

func (s *stubService) ValidateAccessToken(token string) (*auth.Claims, error) {
	return s.tokens.Validate(token, auth.TokenTypeAccess)
}

func (s *stubService) IssueTokens(context.Context, string) (auth.TokenPair, error) {
	return auth.TokenPair{}, nil
}

func (s *stubService) UserPermissions(context.Context, string) ([]string, error) {
	return []string{"view_employee"}, nil
}

var _ = Describe("Auth HTTP layer", func() {
	var (
		tokens     *auth.JWTTokenGenerator
		handler    *auth.Handler
		authorizer *stubAuthorizer
		slogger    *slog.Logger
		reached    bool
		protected  http.Handler
	)

	BeforeEach(func() {
		slogger = slog.New(slog.NewTextHandler(io.Discard, nil))
		tokens = auth.NewJWTTokenGenerator("access-secret", "refresh-secret", time.Minute, time.Hour)
		handler = auth.NewHandler(&transport.BaseHandler{Logger: slogger}, &stubService{tokens: tokens})
		authorizer = &stubAuthorizer{granted: map[string][]string{"emp-1": {"view_all_departments"}}}
		reached = false

		gate := auth.NewGate(authorizer, false, slogger)
		protected = handler.AuthMiddleware(gate.Require("create_department")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
			w.WriteHeader(http.StatusNoContent)
		})))
	})

	bearer := func(employeeID string) string {
		token, err := tokens.Generate(auth.Principal{EmployeeID: employeeID, FirstName: "Ana"}, auth.TokenTypeAccess)
		Expect(err).NotTo(HaveOccurred())
		return "Bearer " + token
	}

	Describe("AuthMiddleware", func() {
		It("should answer 401 without a token", func() {
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/departments", nil))

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(reached).To(BeFalse())
		})

		It("should answer 401 for a refresh token", func() {
			token, err := tokens.Generate(auth.Principal{EmployeeID: "emp-1"}, auth.TokenTypeRefresh)
			Expect(err).NotTo(HaveOccurred())

			req := httptest.NewRequest(http.MethodPost, "/departments", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should expose the principal to downstream handlers", func() {
			var got auth.Principal
			h := handler.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = auth.PrincipalFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", bearer("emp-9"))
			h.ServeHTTP(httptest.NewRecorder(), req)

			Expect(got.EmployeeID).To(Equal("emp-9"))
			Expect(got.FirstName).To(Equal("Ana"))
		})
	})

	Describe("Gate", func() {
		It("should answer 403 with the missing codename and not run the handler", func() {
			req := httptest.NewRequest(http.MethodPost, "/departments", strings.NewReader(`{}`))
			req.Header.Set("Authorization", bearer("emp-1"))
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusForbidden))
			Expect(reached).To(BeFalse())

			var body map[string]interface{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body["codename"]).To(Equal("create_department"))
			Expect(body["error"]).To(HaveKeyWithValue("code", "MISSING_PERMISSION"))
		})

		It("should let a granted caller through", func() {
			authorizer.granted["emp-1"] = append(authorizer.granted["emp-1"], "create_department")

			req := httptest.NewRequest(http.MethodPost, "/departments", nil)
			req.Header.Set("Authorization", bearer("emp-1"))
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNoContent))
			Expect(reached).To(BeTrue())
		})

		It("should skip resolution entirely when bypassed", func() {
			gate := auth.NewGate(authorizer, true, slogger)
			h := gate.Require("delete_employee")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/employees/x", nil))

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(authorizer.calls).To(BeZero())
		})
	})

	Describe("UserPermissions", func() {
		It("should list the caller's codenames", func() {
			h := handler.AuthMiddleware(http.HandlerFunc(handler.UserPermissions))
			req := httptest.NewRequest(http.MethodGet, "/user_permissions", nil)
			req.Header.Set("Authorization", bearer("emp-1"))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			var body auth.PermissionsResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body.Permissions).To(ConsistOf("view_employee"))
		})
	})
})
