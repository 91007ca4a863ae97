package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Principal is the authenticated caller carried in the request context.
type Principal struct {
	EmployeeID string `json:"id_employee"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
}

// Credentials is what login needs to know about an account.
type Credentials struct {
	Principal
	UserID       int64
	PasswordHash string
	IsActive     bool
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Claims embeds the employee id as the subject plus display-name claims.
type Claims struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

func (c *Claims) Principal() Principal {
	return Principal{
		EmployeeID: c.Subject,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
	}
}

type TokenGenerator interface {
	Generate(p Principal, tokenType string) (string, error)
	Validate(tokenString, tokenType string) (*Claims, error)
}

type JWTTokenGenerator struct {
	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
}

type RepositoryAPI interface {
	FindCredentialsByEmail(ctx context.Context, email string) (*Credentials, error)
	FindPrincipal(ctx context.Context, employeeID string) (*Credentials, error)
	TouchLastLogin(ctx context.Context, userID int64, at time.Time) error
	PermissionCodenames(ctx context.Context, employeeID string) ([]string, error)
}

type principalKey struct{}

func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
