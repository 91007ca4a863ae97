package auth

import (
	"context"
	"log/slog"
	"strings"
	"time"

	errors "github.com/frahmantamala/hr-management/internal"
	"golang.org/x/crypto/bcrypt"
)

type ServiceAPI interface {
	Authenticate(ctx context.Context, dto LoginDTO) (TokenPair, error)
	Refresh(ctx context.Context, dto RefreshTokenDTO) (TokenPair, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	IssueTokens(ctx context.Context, employeeID string) (TokenPair, error)
	UserPermissions(ctx context.Context, employeeID string) ([]string, error)
}

type Service struct {
	repo        RepositoryAPI
	tokens      TokenGenerator
	permissions *PermissionResolver
	logger      *slog.Logger
}

func NewService(repo RepositoryAPI, tokens TokenGenerator, permissions *PermissionResolver, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		tokens:      tokens,
		permissions: permissions,
		logger:      logger,
	}
}

// Authenticate checks email and password and issues a token pair.
func (s *Service) Authenticate(ctx context.Context, dto LoginDTO) (TokenPair, error) {
	dto.Email = strings.TrimSpace(dto.Email)
	if err := dto.Validate(); err != nil {
		return TokenPair{}, err
	}

	creds, err := s.repo.FindCredentialsByEmail(ctx, dto.Email)
	if err != nil {
		return TokenPair{}, errors.FromDBError(err, "user")
	}
	if creds == nil {
		return TokenPair{}, errors.ErrInvalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(dto.Password)); err != nil {
		return TokenPair{}, errors.ErrInvalidCredentials()
	}
	if !creds.IsActive {
		return TokenPair{}, errors.ErrUserInactive()
	}

	pair, err := s.issue(creds.Principal)
	if err != nil {
		return TokenPair{}, err
	}

	if err := s.repo.TouchLastLogin(ctx, creds.UserID, time.Now()); err != nil {
		s.logger.Warn("failed to record last login", "employee_id", creds.EmployeeID, "error", err)
	}

	s.logger.Info("employee logged in", "employee_id", creds.EmployeeID)
	return pair, nil
}

// Refresh exchanges a valid refresh token for a new pair. The account must still be active.
func (s *Service) Refresh(ctx context.Context, dto RefreshTokenDTO) (TokenPair, error) {
	if err := dto.Validate(); err != nil {
		return TokenPair{}, err
	}

	claims, err := s.tokens.Validate(dto.Refresh, TokenTypeRefresh)
	if err != nil {
		return TokenPair{}, err
	}

	return s.IssueTokens(ctx, claims.Subject)
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokens.Validate(tokenString, TokenTypeAccess)
}

// IssueTokens reloads the employee and signs a fresh pair for it.
func (s *Service) IssueTokens(ctx context.Context, employeeID string) (TokenPair, error) {
	creds, err := s.repo.FindPrincipal(ctx, employeeID)
	if err != nil {
		return TokenPair{}, errors.FromDBError(err, "user")
	}
	if creds == nil {
		return TokenPair{}, errors.ErrInvalidToken()
	}
	if !creds.IsActive {
		return TokenPair{}, errors.ErrUserInactive()
	}
	return s.issue(creds.Principal)
}

func (s *Service) UserPermissions(ctx context.Context, employeeID string) ([]string, error) {
	codenames, err := s.permissions.Codenames(ctx, employeeID)
	if err != nil {
		return nil, errors.FromDBError(err, "permissions")
	}
	if codenames == nil {
		codenames = []string{}
	}
	return codenames, nil
}

func (s *Service) issue(p Principal) (TokenPair, error) {
	access, err := s.tokens.Generate(p, TokenTypeAccess)
	if err != nil {
		return TokenPair{}, errors.NewInternalError("failed to sign token", err)
	}
	refresh, err := s.tokens.Generate(p, TokenTypeRefresh)
	if err != nil {
		return TokenPair{}, errors.NewInternalError("failed to sign token", err)
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}
