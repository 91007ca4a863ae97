package access

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	errors "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/core/common/validation"
	"github.com/frahmantamala/hr-management/internal/core/datamodel/identity"
	"github.com/frahmantamala/hr-management/internal/core/events"
)

type Service struct {
	repo      RepositoryAPI
	publisher events.Publisher
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, publisher events.Publisher, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *Service) ListGroups(ctx context.Context, p query.ListParams) (GroupsResponse, error) {
	rows, total, err := s.repo.ListGroups(ctx, p)
	if err != nil {
		return GroupsResponse{}, errors.FromDBError(err, "auth group")
	}

	groups, err := s.withGrants(ctx, rows)
	if err != nil {
		return GroupsResponse{}, err
	}
	return GroupsResponse{AuthGroups: groups, TotalCount: total}, nil
}

func (s *Service) GetGroup(ctx context.Context, id int64) (*Group, error) {
	m, err := s.repo.GetGroup(ctx, id)
	if err != nil {
		return nil, errors.FromDBError(err, "auth group")
	}
	if m == nil {
		return nil, errors.NewNotFoundError("auth group not found", errors.ErrCodeNotFound)
	}

	groups, err := s.withGrants(ctx, []identity.AuthGroup{*m})
	if err != nil {
		return nil, err
	}
	return &groups[0], nil
}

func (s *Service) CreateGroup(ctx context.Context, dto GroupDTO) (*CreatedResponse, error) {
	dto.normalize()
	if appErr := validation.Struct(dto); appErr != nil {
		return nil, appErr
	}

	m := &identity.AuthGroup{Name: dto.Name}
	if err := s.repo.CreateGroup(ctx, m); err != nil {
		return nil, errors.FromDBError(err, "auth group")
	}

	s.logger.InfoContext(ctx, "auth group created", "group_id", m.ID, "name", m.Name)
	s.changed(ctx, m.ID)
	return &CreatedResponse{Message: "Group created.", ID: m.ID}, nil
}

func (s *Service) UpdateGroup(ctx context.Context, id int64, dto GroupDTO) (*MessageResponse, error) {
	m, err := s.repo.GetGroup(ctx, id)
	if err != nil {
		return nil, errors.FromDBError(err, "auth group")
	}
	if m == nil {
		return nil, errors.NewNotFoundError("auth group not found", errors.ErrCodeNotFound)
	}

	dto.normalize()
	if appErr := validation.Struct(dto); appErr != nil {
		return nil, appErr
	}

	m.Name = dto.Name
	if err := s.repo.UpdateGroup(ctx, m); err != nil {
		return nil, errors.FromDBError(err, "auth group")
	}

	s.changed(ctx, id)
	return &MessageResponse{Message: "Group updated successfully."}, nil
}

func (s *Service) DeleteGroup(ctx context.Context, id int64) (*MessageResponse, error) {
	if err := s.repo.DeleteGroup(ctx, id); err != nil {
		return nil, errors.FromDBError(err, "auth group")
	}

	s.logger.InfoContext(ctx, "auth group deleted", "group_id", id)
	s.changed(ctx, id)
	return &MessageResponse{Message: "Group deleted successfully."}, nil
}

// Grant adds permissions to a group. Permissions it already holds are left as they are.
func (s *Service) Grant(ctx context.Context, groupID int64, dto GrantsDTO) (*Group, error) {
	if err := s.checkGrants(ctx, groupID, dto); err != nil {
		return nil, err
	}

	if err := s.repo.Grant(ctx, groupID, dto.PermissionIDs); err != nil {
		return nil, errors.FromDBError(err, "group permission")
	}

	s.logger.InfoContext(ctx, "group permissions granted", "group_id", groupID, "permission_ids", dto.PermissionIDs)
	s.changed(ctx, groupID)
	return s.GetGroup(ctx, groupID)
}

func (s *Service) Revoke(ctx context.Context, groupID int64, dto GrantsDTO) (*Group, error) {
	if err := s.checkGrants(ctx, groupID, dto); err != nil {
		return nil, err
	}

	removed, err := s.repo.Revoke(ctx, groupID, dto.PermissionIDs)
	if err != nil {
		return nil, errors.FromDBError(err, "group permission")
	}

	s.logger.InfoContext(ctx, "group permissions revoked", "group_id", groupID, "removed", removed)
	s.changed(ctx, groupID)
	return s.GetGroup(ctx, groupID)
}

func (s *Service) ListPermissions(ctx context.Context, p query.ListParams) (query.Result[Permission], error) {
	rows, total, err := s.repo.ListPermissions(ctx, p)
	if err != nil {
		return query.Result[Permission]{}, errors.FromDBError(err, "permission")
	}
	if rows == nil {
		rows = []Permission{}
	}
	return query.Result[Permission]{Data: rows, TotalCount: total}, nil
}

// ListMembers pages employees and attaches each one's groups with their grants.
func (s *Service) ListMembers(ctx context.Context, p query.ListParams) (MembersResponse, error) {
	rows, total, err := s.repo.ListMembers(ctx, p)
	if err != nil {
		return MembersResponse{}, errors.FromDBError(err, "employee")
	}

	userIDs := make([]int64, 0, len(rows))
	for _, r := range rows {
		userIDs = append(userIDs, r.UserID)
	}
	memberships, err := s.repo.Memberships(ctx, userIDs)
	if err != nil {
		return MembersResponse{}, errors.FromDBError(err, "auth group")
	}

	var groupIDs []int64
	seen := map[int64]bool{}
	for _, ids := range memberships {
		for _, id := range ids {
			if !seen[id] {
				seen[id] = true
				groupIDs = append(groupIDs, id)
			}
		}
	}

	groupRows, err := s.repo.GroupsByID(ctx, groupIDs)
	if err != nil {
		return MembersResponse{}, errors.FromDBError(err, "auth group")
	}
	groups, err := s.withGrants(ctx, groupRows)
	if err != nil {
		return MembersResponse{}, err
	}
	byID := make(map[int64]Group, len(groups))
	for _, g := range groups {
		byID[g.ID] = g
	}

	out := make([]Member, 0, len(rows))
	for _, r := range rows {
		m := Member{MemberRow: r, Groups: []Group{}}
		for _, id := range memberships[r.UserID] {
			if g, ok := byID[id]; ok {
				m.Groups = append(m.Groups, g)
			}
		}
		out = append(out, m)
	}
	return MembersResponse{Employees: out, TotalCount: total}, nil
}

func (s *Service) withGrants(ctx context.Context, rows []identity.AuthGroup) ([]Group, error) {
	ids := make([]int64, 0, len(rows))
	for _, g := range rows {
		ids = append(ids, g.ID)
	}

	grants, err := s.repo.Grants(ctx, ids)
	if err != nil {
		return nil, errors.FromDBError(err, "group permission")
	}

	out := make([]Group, 0, len(rows))
	for _, g := range rows {
		perms := grants[g.ID]
		if perms == nil {
			perms = []Permission{}
		}
		out = append(out, Group{ID: g.ID, Name: g.Name, Permissions: perms})
	}
	return out, nil
}

func (s *Service) checkGrants(ctx context.Context, groupID int64, dto GrantsDTO) error {
	if appErr := validation.Struct(dto); appErr != nil {
		return appErr
	}

	m, err := s.repo.GetGroup(ctx, groupID)
	if err != nil {
		return errors.FromDBError(err, "auth group")
	}
	if m == nil {
		return errors.NewNotFoundError("auth group not found", errors.ErrCodeNotFound)
	}

	missing, err := s.repo.MissingPermissions(ctx, dto.PermissionIDs)
	if err != nil {
		return errors.FromDBError(err, "permission")
	}
	if len(missing) > 0 {
		ids := make([]string, len(missing))
		for i, id := range missing {
			ids[i] = fmt.Sprint(id)
		}
		return errors.NewValidationFieldError("permission_ids", "unknown permissions: "+strings.Join(ids, ", "), errors.ErrCodeReference)
	}
	return nil
}

func (s *Service) changed(ctx context.Context, groupID int64) {
	if s.publisher == nil {
		return
	}
	e := events.NewGroupPermissionsChangedEvent(groupID)
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish event", "event_type", e.EventType(), "error", err)
	}
}
