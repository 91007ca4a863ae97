package auth

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/events"
	"github.com/frahmantamala/hr-management/internal/transport"
)

type PermissionSource interface {
	PermissionCodenames(ctx context.Context, employeeID string) ([]string, error)
}

// PermissionCache is satisfied by cache.PermissionCache.
type PermissionCache interface {
	Get(ctx context.Context, employeeID string) ([]string, error)
	Set(ctx context.Context, employeeID string, codenames []string) error
	Invalidate(ctx context.Context, employeeID string) error
	InvalidateAll(ctx context.Context) error
}

// PermissionResolver aggregates direct and group permissions of an employee,
// reading through the cache when one is configured.
type PermissionResolver struct {
	source PermissionSource
	cache  PermissionCache
	logger *slog.Logger
}

func NewPermissionResolver(source PermissionSource, cache PermissionCache, logger *slog.Logger) *PermissionResolver {
	return &PermissionResolver{source: source, cache: cache, logger: logger}
}

func (r *PermissionResolver) Codenames(ctx context.Context, employeeID string) ([]string, error) {
	if r.cache != nil {
		cached, err := r.cache.Get(ctx, employeeID)
		if err != nil {
			r.logger.Warn("permission cache read failed", "employee_id", employeeID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	codenames, err := r.source.PermissionCodenames(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, employeeID, codenames); err != nil {
			r.logger.Warn("permission cache write failed", "employee_id", employeeID, "error", err)
		}
	}
	return codenames, nil
}

func (r *PermissionResolver) HasPermission(ctx context.Context, employeeID, codename string) (bool, error) {
	codenames, err := r.Codenames(ctx, employeeID)
	if err != nil {
		return false, err
	}
	return slices.Contains(codenames, codename), nil
}

// Subscribe drops cached sets when grants or memberships change.
func (r *PermissionResolver) Subscribe(bus *events.EventBus) {
	if r.cache == nil {
		return
	}
	bus.Subscribe(events.EventTypeGroupPermissionsChanged, func(ctx context.Context, _ events.Event) error {
		return r.cache.InvalidateAll(ctx)
	})
	bus.Subscribe(events.EventTypeEmployeeGroupsChanged, func(ctx context.Context, event events.Event) error {
		if e, ok := event.(*events.EmployeeGroupsChangedEvent); ok {
			return r.cache.Invalidate(ctx, e.EmployeeID)
		}
		return nil
	})
}

type Authorizer interface {
	HasPermission(ctx context.Context, employeeID, codename string) (bool, error)
}

// Gate rejects requests whose caller lacks a codename before the handler runs.
type Gate struct {
	*transport.BaseHandler
	authorizer Authorizer
	bypass     bool
}

func NewGate(authorizer Authorizer, bypass bool, logger *slog.Logger) *Gate {
	g := &Gate{
		BaseHandler: transport.NewBaseHandler(logger),
		authorizer:  authorizer,
		bypass:      bypass,
	}
	if bypass {
		g.Logger.Warn("permission checks are disabled; every authenticated request is allowed")
	}
	return g
}

type forbiddenResponse struct {
	Error    *errors.AppError `json:"error"`
	Codename string           `json:"codename"`
}

func (g *Gate) Require(codename string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if g.bypass {
				next.ServeHTTP(w, r)
				return
			}

			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				g.WriteAppError(w, errors.NewUnauthorizedError("authentication required", errors.ErrCodeInvalidToken))
				return
			}

			allowed, err := g.authorizer.HasPermission(r.Context(), p.EmployeeID, codename)
			if err != nil {
				g.WriteAppError(w, errors.NewInternalError("failed to resolve permissions", err))
				return
			}

			if !allowed {
				g.Logger.Warn("access denied", "employee_id", p.EmployeeID, "codename", codename, "path", r.URL.Path)
				g.WriteJSON(w, http.StatusForbidden, forbiddenResponse{
					Error:    errors.NewForbiddenError("you do not have permission to perform this action", errors.ErrCodeMissingPermission),
					Codename: codename,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
