package access

import (
	"context"
	"net/http"

	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/transport"
)

type ServiceAPI interface {
	ListGroups(ctx context.Context, p query.ListParams) (GroupsResponse, error)
	GetGroup(ctx context.Context, id int64) (*Group, error)
	CreateGroup(ctx context.Context, dto GroupDTO) (*CreatedResponse, error)
	UpdateGroup(ctx context.Context, id int64, dto GroupDTO) (*MessageResponse, error)
	DeleteGroup(ctx context.Context, id int64) (*MessageResponse, error)
	Grant(ctx context.Context, groupID int64, dto GrantsDTO) (*Group, error)
	Revoke(ctx context.Context, groupID int64, dto GrantsDTO) (*Group, error)
	ListPermissions(ctx context.Context, p query.ListParams) (query.Result[Permission], error)
	ListMembers(ctx context.Context, p query.ListParams) (MembersResponse, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	res, err := h.Service.ListGroups(r.Context(), query.FromRequest(r, query.DefaultLimit))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) GetGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := h.IntParam(w, r, "id")
	if !ok {
		return
	}
	g, err := h.Service.GetGroup(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, g)
}

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var dto GroupDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	created, err := h.Service.CreateGroup(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := h.IntParam(w, r, "id")
	if !ok {
		return
	}
	var dto GroupDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	res, err := h.Service.UpdateGroup(r.Context(), id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := h.IntParam(w, r, "id")
	if !ok {
		return
	}
	res, err := h.Service.DeleteGroup(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, res)
}

// Grant handles POST /authgroup/{id}/permissions.
func (h *Handler) Grant(w http.ResponseWriter, r *http.Request) {
	h.grants(w, r, h.Service.Grant)
}

// Revoke handles DELETE /authgroup/{id}/permissions; the ids travel in the body.
func (h *Handler) Revoke(w http.ResponseWriter, r *http.Request) {
	h.grants(w, r, h.Service.Revoke)
}

func (h *Handler) grants(w http.ResponseWriter, r *http.Request, fn func(context.Context, int64, GrantsDTO) (*Group, error)) {
	id, ok := h.IntParam(w, r, "id")
	if !ok {
		return
	}
	var dto GrantsDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	g, err := fn(r.Context(), id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, g)
}

func (h *Handler) ListPermissions(w http.ResponseWriter, r *http.Request) {
	res, err := h.Service.ListPermissions(r.Context(), query.FromRequest(r, query.MaxLimit))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	res, err := h.Service.ListMembers(r.Context(), query.FromRequest(r, query.DefaultLimit))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, res)
}
