package catalog

import (
	"net/http"

	"github.com/frahmantamala/hr-management/internal/core/common/query"
	"github.com/frahmantamala/hr-management/internal/transport"
	"github.com/go-chi/chi"
)

type Handler[T any, D Payload[T]] struct {
	*transport.BaseHandler
	Service ServiceAPI[T, D]
}

func NewHandler[T any, D Payload[T]](baseHandler *transport.BaseHandler, service ServiceAPI[T, D]) *Handler[T, D] {
	return &Handler[T, D]{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler[T, D]) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.List(r.Context(), query.FromRequest(r, query.DefaultLimit))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler[T, D]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	row, err := h.Service.Get(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, row)
}

func (h *Handler[T, D]) Create(w http.ResponseWriter, r *http.Request) {
	var dto D
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	row, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, row)
}

func (h *Handler[T, D]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	var dto D
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	row, err := h.Service.Update(r.Context(), id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, row)
}

func (h *Handler[T, D]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Routes registers the five endpoints, each behind its codename.
func (h *Handler[T, D]) Routes(r chi.Router, require func(codename string) func(http.Handler) http.Handler) {
	def := h.Service.Definition()
	r.Route(def.Path, func(cr chi.Router) {
		cr.With(require(def.ViewAll())).Get("/", h.List)
		cr.With(require(def.Create())).Post("/", h.Create)
		cr.With(require(def.View())).Get("/{id}", h.Get)
		cr.With(require(def.Update())).Put("/{id}", h.Update)
		cr.With(require(def.Delete())).Delete("/{id}", h.Delete)
	})
}
