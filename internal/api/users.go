package api

import (
	"net/http"

	"go.uber.org/zap"

	"tradebook/m/domain"
	"tradebook/m/internal/apperr"
	"tradebook/m/internal/auth"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	create(h, "user", h.store.CreateUser)(w, r)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	var role *domain.Role
	if raw := r.URL.Query().Get("role"); raw != "" {
		rl := domain.Role(raw)
		role = &rl
	}
	users, err := h.store.Users(r.Context(), role)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, collection("users", users))
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	get(h, "users", h.store.User)(w, r)
}

type checkResponse struct {
	IsCorrectUser bool        `json:"is_correct_user"`
	User          domain.User `json:"user"`
	Token         string      `json:"token,omitempty"`
}

// checkCredentials verifies a login, password and role combination. The user
// record is returned either way; a token only when the check passes.
func (h *Handler) checkCredentials(w http.ResponseWriter, r *http.Request) {
	var req domain.Credentials
	if err := h.decodeValid(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	user, err := h.store.UserByLogin(r.Context(), req.Login)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	resp := checkResponse{IsCorrectUser: auth.Check(user, req.Password, req.Role), User: user}
	if resp.IsCorrectUser {
		token, err := h.tokens.Issue(user)
		if err != nil {
			h.respondError(w, r, apperr.Wrap(apperr.KindInternal, err, "unable to issue token"))
			return
		}
		resp.Token = token
	}
	h.log.Info("credentials checked",
		zap.String("login", req.Login),
		zap.String("role", string(req.Role)),
		zap.Bool("is_correct_user", resp.IsCorrectUser),
		zap.String("request_id", requestIDFrom(r.Context())),
	)
	respondJSON(w, http.StatusOK, resp)
}
