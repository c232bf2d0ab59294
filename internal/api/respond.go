package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"tradebook/m/domain"
	"tradebook/m/internal/apperr"
)

var (
	errNotFoundRoute    = apperr.NotFound("route not found")
	errMethodNotAllowed = apperr.Validation("method not allowed")
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

// respondError writes err as {error, code, request_id} with the status of its
// kind. Server-side failures are logged with their cause.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	id := requestIDFrom(r.Context())
	if kind == apperr.KindInternal || kind == apperr.KindUnavailable {
		h.log.Error("request failed",
			zap.String("kind", kind.String()),
			zap.String("path", r.URL.Path),
			zap.String("request_id", id),
			zap.Error(err),
		)
	}
	respondJSON(w, kind.Status(), errorResponse{Error: apperr.Message(err), Code: kind.Code(), RequestID: id})
}

func decodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Validation("request body is empty")
		}
		return apperr.Wrap(apperr.KindValidation, err, "malformed request body: "+err.Error())
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("timestamp", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseTimestamp(fl.Field().String())
		return err == nil
	})
	return v
}

// decodeValid decodes the body into dest and runs its validate tags.
func (h *Handler) decodeValid(r *http.Request, dest interface{}) error {
	if err := decodeJSON(r, dest); err != nil {
		return err
	}
	if err := h.validate.Struct(dest); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fe.Field()+": "+validationMessage(fe))
			}
			return apperr.Wrap(apperr.KindValidation, err, strings.Join(msgs, "; "))
		}
		return apperr.Wrap(apperr.KindValidation, err, "invalid request")
	}
	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "timestamp":
		return "must be a timestamp like 2006-01-02 15:04:05"
	}
	return "is invalid"
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("invalid id %q", raw)
	}
	return id, nil
}

// filters reads optional equality filters from the query string. The first
// malformed value is kept in err.
type filters struct {
	r   *http.Request
	err error
}

func (f *filters) int64(name string) *int64 {
	raw := strings.TrimSpace(f.r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if f.err == nil {
			f.err = apperr.Validation("invalid %s %q", name, raw)
		}
		return nil
	}
	return &v
}

func (f *filters) str(name string) *string {
	if !f.r.URL.Query().Has(name) {
		return nil
	}
	v := f.r.URL.Query().Get(name)
	return &v
}

func collection[T domain.Keyed](name string, items []T) map[string]map[int64]T {
	return map[string]map[int64]T{name: domain.ByKey(items)}
}

func (h *Handler) audit(r *http.Request, msg, entity string, id int64, fields ...zap.Field) {
	h.log.Info(msg, append([]zap.Field{
		zap.String("entity", entity),
		zap.Int64("id", id),
		zap.String("request_id", requestIDFrom(r.Context())),
	}, fields...)...)
}

// create decodes and validates an In payload, stores it and answers
// {"new_<name>": record}.
func create[In any, Out domain.Keyed](h *Handler, name string, fn func(ctx context.Context, in In) (Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if err := h.decodeValid(r, &in); err != nil {
			h.respondError(w, r, err)
			return
		}
		out, err := fn(r.Context(), in)
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		h.audit(r, fmt.Sprintf("new %s created", strings.ReplaceAll(name, "_", " ")), name, out.Key())
		respondJSON(w, http.StatusCreated, map[string]Out{"new_" + name: out})
	}
}

// get answers {"<name>": {id: record}} for a single record.
func get[T domain.Keyed](h *Handler, name string, fn func(ctx context.Context, id int64) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		rec, err := fn(r.Context(), id)
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, collection(name, []T{rec}))
	}
}

type updateRequest struct {
	Value json.RawMessage `json:"value"`
}
