package query

import (
	"net/http"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListParams carries the paging, ordering and search parameters shared by every list endpoint.
type ListParams struct {
	Limit          int
	Offset         int
	OrderBy        string
	OrderDirection string
	GlobalSearch   string
}

// Sorting maps public order_by names to SQL expressions. Default must be one of the keys.
type Sorting struct {
	Columns map[string]string
	Default string
}

// FromRequest reads list parameters from the query string, falling back to defaultLimit.
func FromRequest(r *http.Request, defaultLimit int) ListParams {
	q := r.URL.Query()
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}

	p := ListParams{
		Limit:          defaultLimit,
		OrderBy:        strings.TrimSpace(q.Get("order_by")),
		OrderDirection: strings.ToUpper(strings.TrimSpace(q.Get("order_direction"))),
		GlobalSearch:   strings.TrimSpace(q.Get("global_search")),
	}

	if v := q.Get("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil && l > 0 {
			p.Limit = l
		}
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}

	if v := q.Get("offset"); v != "" {
		if o, err := strconv.Atoi(v); err == nil && o >= 0 {
			p.Offset = o
		}
	}

	if p.OrderDirection != "DESC" {
		p.OrderDirection = "ASC"
	}
	return p
}

// OrderClause resolves order_by against the whitelist. Unknown names fall back to the default.
func (p ListParams) OrderClause(s Sorting) string {
	col, ok := s.Columns[p.OrderBy]
	if !ok {
		col = s.Columns[s.Default]
	}
	dir := "ASC"
	if p.OrderDirection == "DESC" {
		dir = "DESC"
	}
	return col + " " + dir
}

// SearchPattern returns a lower-cased LIKE pattern, or "" when no search was requested.
func (p ListParams) SearchPattern() string {
	if p.GlobalSearch == "" {
		return ""
	}
	return "%" + strings.ToLower(p.GlobalSearch) + "%"
}

// Search adds a case-insensitive match of global_search over columns.
func (p ListParams) Search(db *gorm.DB, columns ...string) *gorm.DB {
	pattern := p.SearchPattern()
	if pattern == "" || len(columns) == 0 {
		return db
	}

	clauses := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, c := range columns {
		clauses[i] = "LOWER(" + c + ") LIKE ?"
		args[i] = pattern
	}
	return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

// Page applies limit and offset.
func (p ListParams) Page(db *gorm.DB) *gorm.DB {
	return db.Limit(p.Limit).Offset(p.Offset)
}

// Result is the standard list envelope.
type Result[T any] struct {
	Data       []T   `json:"data"`
	TotalCount int64 `json:"total_count"`
}
