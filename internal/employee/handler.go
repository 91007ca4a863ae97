package employee

import (
	"context"
	"net/http"
	"strings"

	"github.com/frahmantamala/hr-management/internal/auth"
	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/transport"
)

type ServiceAPI interface {
	List(ctx context.Context, f ListFilter) (ListResponse, error)
	Get(ctx context.Context, id string) (*Detail, error)
	Contracts(ctx context.Context, employeeID string, f ContractFilter) (ContractsResponse, error)
	Create(ctx context.Context, dto EmployeeDTO) (*CreatedResponse, error)
	Update(ctx context.Context, id string, dto EmployeeDTO) (*UpdatedResponse, error)
	Export(ctx context.Context, f ListFilter) ([]ListRow, error)
}

// TokenIssuer mints a session for a freshly registered employee.
type TokenIssuer interface {
	IssueTokens(ctx context.Context, employeeID string) (auth.TokenPair, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	Tokens  TokenIssuer
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI, tokens TokenIssuer) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
		Tokens:      tokens,
	}
}

func listFilter(r *http.Request) ListFilter {
	q := r.URL.Query()
	return ListFilter{
		ListParams:   query.FromRequest(r, DefaultListLimit),
		Name:         strings.TrimSpace(q.Get("name")),
		DepartmentID: strings.TrimSpace(q.Get("department_id")),
		RoleID:       strings.TrimSpace(q.Get("role_id")),
		StatusID:     strings.TrimSpace(q.Get("status_id")),
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.List(r.Context(), listFilter(r))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.Service.Get(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handler) Contracts(w http.ResponseWriter, r *http.Request) {
	id, ok := h.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	q := r.URL.Query()
	f := ContractFilter{
		ListParams:        query.FromRequest(r, DefaultListLimit),
		ContractTypeName:  strings.TrimSpace(q.Get("contract_type_name")),
		ContractStateName: strings.TrimSpace(q.Get("contract_state_name")),
		RoleName:          strings.TrimSpace(q.Get("role_name")),
		DepartmentName:    strings.TrimSpace(q.Get("department_name")),
	}
	if q.Get("order_direction") == "" {
		f.OrderDirection = "DESC"
	}

	result, err := h.Service.Contracts(r.Context(), id, f)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto EmployeeDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	created, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, created)
}

// Register creates the employee and answers with a token pair for it.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto EmployeeDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	created, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	pair, err := h.Tokens.IssueTokens(r.Context(), created.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, pair)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	var dto EmployeeDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	updated, err := h.Service.Update(r.Context(), id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.Export(r.Context(), listFilter(r))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="employees.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if err := WriteWorkbook(w, rows); err != nil {
		h.Logger.ErrorContext(r.Context(), "failed to write employee export", "error", err)
	}
}
