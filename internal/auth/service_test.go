package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	apperrors "github.com/frahmantamala/hr-management/internal"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

type mockRepository struct {
	byEmail     map[string]*Credentials
	byEmployee  map[string]*Credentials
	codenames   map[string][]string
	lookups     int
	lastLogins  map[int64]time.Time
	returnError error
}

func newMockRepository() *mockRepository {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.MinCost)

	active := &Credentials{
		Principal:    Principal{EmployeeID: "emp-1", FirstName: "Ana", LastName: "Lopez", Email: "ana@example.com"},
		UserID:       1,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	inactive := &Credentials{
		Principal:    Principal{EmployeeID: "emp-2", FirstName: "Luis", LastName: "Diaz", Email: "luis@example.com"},
		UserID:       2,
		PasswordHash: string(hash),
		IsActive:     false,
	}

	return &mockRepository{
		byEmail: map[string]*Credentials{
			active.Email:   active,
			inactive.Email: inactive,
		},
		byEmployee: map[string]*Credentials{
			active.EmployeeID:   active,
			inactive.EmployeeID: inactive,
		},
		codenames: map[string][]string{
			"emp-1": {"view_all_employees", "view_employee"},
		},
		lastLogins: map[int64]time.Time{},
	}
}

func (m *mockRepository) FindCredentialsByEmail(_ context.Context, email string) (*Credentials, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.byEmail[email], nil
}

func (m *mockRepository) FindPrincipal(_ context.Context, employeeID string) (*Credentials, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.byEmployee[employeeID], nil
}

func (m *mockRepository) TouchLastLogin(_ context.Context, userID int64, at time.Time) error {
	m.lastLogins[userID] = at
	return nil
}

func (m *mockRepository) PermissionCodenames(_ context.Context, employeeID string) ([]string, error) {
	m.lookups++
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.codenames[employeeID], nil
}

type memoryCache struct {
	sets map[string][]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{sets: map[string][]string{}}
}

func (c *memoryCache) Get(_ context.Context, employeeID string) ([]string, error) {
	return c.sets[employeeID], nil
}

func (c *memoryCache) Set(_ context.Context, employeeID string, codenames []string) error {
	c.sets[employeeID] = codenames
	return nil
}

func (c *memoryCache) Invalidate(_ context.Context, employeeID string) error {
	delete(c.sets, employeeID)
	return nil
}

func (c *memoryCache) InvalidateAll(context.Context) error {
	c.sets = map[string][]string{}
	return nil
}

func statusOf(err error) int {
	appErr, ok := apperrors.IsAppError(err)
	gomega.Expect(ok).To(gomega.BeTrue(), "expected an AppError, got %v", err)
	return appErr.StatusCode
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service  *Service
		mockRepo *mockRepository
		tokenGen *JWTTokenGenerator
		ctx      context.Context
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		mockRepo = newMockRepository()
		tokenGen = NewJWTTokenGenerator("test-access-secret", "test-refresh-secret", 5*time.Minute, 24*time.Hour)
		lg := slog.New(slog.NewTextHandler(io.Discard, nil))
		service = NewService(mockRepo, tokenGen, NewPermissionResolver(mockRepo, nil, lg), lg)
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.Context("when credentials are valid", func() {
			ginkgo.It("should return an access and a refresh token", func() {
				tokens, err := service.Authenticate(ctx, LoginDTO{Email: "ana@example.com", Password: "correct_password"})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(tokens.Access).ToNot(gomega.BeEmpty())
				gomega.Expect(tokens.Refresh).ToNot(gomega.BeEmpty())
				gomega.Expect(tokens.Access).ToNot(gomega.Equal(tokens.Refresh))
			})

			ginkgo.It("should embed the employee id and names in the access token", func() {
				tokens, err := service.Authenticate(ctx, LoginDTO{Email: "ana@example.com", Password: "correct_password"})
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				claims, err := service.ValidateAccessToken(tokens.Access)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(claims.Subject).To(gomega.Equal("emp-1"))
				gomega.Expect(claims.FirstName).To(gomega.Equal("Ana"))
				gomega.Expect(claims.LastName).To(gomega.Equal("Lopez"))
				gomega.Expect(claims.Email).To(gomega.Equal("ana@example.com"))
				gomega.Expect(claims.TokenType).To(gomega.Equal(TokenTypeAccess))
			})

			ginkgo.It("should record the login time", func() {
				_, err := service.Authenticate(ctx, LoginDTO{Email: "ana@example.com", Password: "correct_password"})
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(mockRepo.lastLogins).To(gomega.HaveKey(int64(1)))
			})
		})

		ginkgo.Context("when credentials are invalid", func() {
			ginkgo.It("should reject a wrong password with 400", func() {
				_, err := service.Authenticate(ctx, LoginDTO{Email: "ana@example.com", Password: "wrong"})
				gomega.Expect(statusOf(err)).To(gomega.Equal(400))
			})

			ginkgo.It("should reject an unknown email with the same error", func() {
				_, err := service.Authenticate(ctx, LoginDTO{Email: "ghost@example.com", Password: "correct_password"})
				appErr, ok := apperrors.IsAppError(err)
				gomega.Expect(ok).To(gomega.BeTrue())
				gomega.Expect(appErr.Code).To(gomega.Equal(apperrors.ErrCodeInvalidCredentials))
			})

			ginkgo.It("should reject missing fields", func() {
				_, err := service.Authenticate(ctx, LoginDTO{Email: "", Password: ""})
				gomega.Expect(statusOf(err)).To(gomega.Equal(400))
			})
		})

		ginkgo.Context("when the account is inactive", func() {
			ginkgo.It("should refuse the login", func() {
				_, err := service.Authenticate(ctx, LoginDTO{Email: "luis@example.com", Password: "correct_password"})
				appErr, ok := apperrors.IsAppError(err)
				gomega.Expect(ok).To(gomega.BeTrue())
				gomega.Expect(appErr.Code).To(gomega.Equal(apperrors.ErrCodeUserInactive))
			})
		})

		ginkgo.Context("when the repository fails", func() {
			ginkgo.It("should surface an internal error without the driver message", func() {
				mockRepo.returnError = errors.New("connection refused")
				_, err := service.Authenticate(ctx, LoginDTO{Email: "ana@example.com", Password: "correct_password"})

				appErr, ok := apperrors.IsAppError(err)
				gomega.Expect(ok).To(gomega.BeTrue())
				gomega.Expect(appErr.StatusCode).To(gomega.Equal(500))
				gomega.Expect(appErr.Message).ToNot(gomega.ContainSubstring("connection refused"))
			})
		})
	})

	ginkgo.Describe("Refresh", func() {
		ginkgo.It("should issue a new pair from a refresh token", func() {
			tokens, err := service.Authenticate(ctx, LoginDTO{Email: "ana@example.com", Password: "correct_password"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			refreshed, err := service.Refresh(ctx, RefreshTokenDTO{Refresh: tokens.Refresh})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			claims, err := service.ValidateAccessToken(refreshed.Access)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(claims.Subject).To(gomega.Equal("emp-1"))
		})

		ginkgo.It("should reject an access token used as refresh token", func() {
			tokens, err := service.Authenticate(ctx, LoginDTO{Email: "ana@example.com", Password: "correct_password"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Refresh(ctx, RefreshTokenDTO{Refresh: tokens.Access})
			gomega.Expect(statusOf(err)).To(gomega.Equal(401))
		})

		ginkgo.It("should reject an expired refresh token", func() {
			expiredGen := NewJWTTokenGenerator("test-access-secret", "test-refresh-secret", time.Minute, time.Nanosecond)
			token, err := expiredGen.Generate(Principal{EmployeeID: "emp-1"}, TokenTypeRefresh)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			time.Sleep(5 * time.Millisecond)

			_, err = service.Refresh(ctx, RefreshTokenDTO{Refresh: token})
			appErr, ok := apperrors.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(401))
		})

		ginkgo.It("should refuse a refresh for an inactive account", func() {
			token, err := tokenGen.Generate(Principal{EmployeeID: "emp-2"}, TokenTypeRefresh)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Refresh(ctx, RefreshTokenDTO{Refresh: token})
			gomega.Expect(statusOf(err)).To(gomega.Equal(403))
		})
	})

	ginkgo.Describe("ValidateAccessToken", func() {
		ginkgo.It("should reject a token signed with another secret", func() {
			other := NewJWTTokenGenerator("another-secret", "another-refresh", time.Minute, time.Hour)
			token, err := other.Generate(Principal{EmployeeID: "emp-1"}, TokenTypeAccess)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			gomega.Expect(statusOf(err)).To(gomega.Equal(401))
		})

		ginkgo.It("should reject garbage", func() {
			_, err := service.ValidateAccessToken("not-a-token")
			gomega.Expect(statusOf(err)).To(gomega.Equal(401))
		})
	})

	ginkgo.Describe("UserPermissions", func() {
		ginkgo.It("should return the resolved codenames", func() {
			codenames, err := service.UserPermissions(ctx, "emp-1")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(codenames).To(gomega.ConsistOf("view_all_employees", "view_employee"))
		})

		ginkgo.It("should return an empty list rather than null", func() {
			codenames, err := service.UserPermissions(ctx, "emp-2")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(codenames).ToNot(gomega.BeNil())
			gomega.Expect(codenames).To(gomega.BeEmpty())
		})
	})
})

var _ = ginkgo.Describe("PermissionResolver", func() {
	var (
		repo     *mockRepository
		cache    *memoryCache
		resolver *PermissionResolver
		ctx      context.Context
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		repo = newMockRepository()
		cache = newMemoryCache()
		resolver = NewPermissionResolver(repo, cache, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	ginkgo.It("should read through the cache", func() {
		ok, err := resolver.HasPermission(ctx, "emp-1", "view_employee")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(ok).To(gomega.BeTrue())

		_, err = resolver.HasPermission(ctx, "emp-1", "view_all_employees")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(repo.lookups).To(gomega.Equal(1))
	})

	ginkgo.It("should report a missing codename", func() {
		ok, err := resolver.HasPermission(ctx, "emp-1", "delete_employee")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(ok).To(gomega.BeFalse())
	})
})
