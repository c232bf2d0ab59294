package api

import (
	"context"
	"net/http"
	"regexp"
	"slices"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tradebook/m/domain"
	"tradebook/m/internal/apperr"
	"tradebook/m/internal/auth"
)

type ctxKey string

const (
	ctxRequestID ctxKey = "requestID"
	ctxClaims    ctxKey = "claims"
)

var validRequestID = regexp.MustCompile(`^[a-zA-Z0-9\-]{1,64}$`)

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxRequestID).(string)
	return id
}

// requestID tags each request with X-Request-ID. A caller-supplied id is kept
// only when it is a short alphanumeric/hyphen string.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if !validRequestID.MatchString(id) {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxRequestID, id)))
	})
}

func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		h.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", requestIDFrom(r.Context())),
		)
	})
}

// recoverer turns a panicking handler into a 500 so the server keeps serving.
func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rv := recover(); rv != nil {
				if rv == http.ErrAbortHandler {
					panic(rv)
				}
				h.log.Error("panic",
					zap.Any("recovered", rv),
					zap.Stack("stack"),
					zap.String("request_id", requestIDFrom(r.Context())),
				)
				h.respondError(w, r, apperr.New(apperr.KindInternal, "internal server error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			h.respondError(w, r, apperr.New(apperr.KindUnauthorized, "missing bearer token"))
			return
		}
		claims, err := h.tokens.Parse(header)
		if err != nil {
			h.respondError(w, r, apperr.Wrap(apperr.KindUnauthorized, err, "invalid token"))
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxClaims, claims)))
	})
}

var adminRoles = []domain.Role{domain.RoleAdmin, domain.RoleSuperuser}

// requireRole admits callers holding any of roles. Roles are read from the
// store on each request, not from the token, so a revoked flag applies at
// once. It only applies when tokens are required; otherwise every caller passes.
func (h *Handler) requireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !h.opts.RequireAuth {
				next.ServeHTTP(w, r)
				return
			}
			claims, ok := r.Context().Value(ctxClaims).(*auth.Claims)
			if !ok {
				h.respondError(w, r, apperr.New(apperr.KindUnauthorized, "missing role"))
				return
			}
			user, err := h.store.User(r.Context(), claims.UserID)
			if err != nil {
				if apperr.Is(err, apperr.KindNotFound) {
					err = apperr.New(apperr.KindUnauthorized, "token user no longer exists")
				}
				h.respondError(w, r, err)
				return
			}
			if !slices.ContainsFunc(roles, user.Roles.Has) {
				h.respondError(w, r, apperr.New(apperr.KindForbidden, "insufficient permissions"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
