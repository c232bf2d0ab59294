package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tradebook/m/domain"
	"tradebook/m/internal/apperr"
	"tradebook/m/internal/store"
)

// updateField handles PUT /<collection>/{id}/{field} with body {"value": …}
// and answers {"updated_<name>": {id: record}}.
func updateField[T domain.Keyed](h *Handler, e store.Entity, name string, fetch func(ctx context.Context, id int64) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		field := chi.URLParam(r, "field")

		var req updateRequest
		if err := decodeJSON(r, &req); err != nil {
			h.respondError(w, r, err)
			return
		}
		if len(req.Value) == 0 {
			h.respondError(w, r, apperr.Validation("value is required"))
			return
		}
		if err := h.store.UpdateField(r.Context(), e, id, field, req.Value); err != nil {
			h.respondError(w, r, err)
			return
		}

		rec, err := fetch(r.Context(), id)
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		h.audit(r, name+" updated", name, id, zap.String("field", field))
		respondJSON(w, http.StatusOK, map[string]map[int64]T{"updated_" + name: {id: rec}})
	}
}
