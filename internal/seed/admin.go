package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tradebook/m/domain"
	"tradebook/m/internal/store"
)

// Admin creates the first administrator when login is set and no user holds
// the admin or superuser role yet. It reports whether a user was created.
func Admin(ctx context.Context, st *store.Store, login, password string, log *zap.Logger) (bool, error) {
	if login == "" {
		return false, nil
	}
	if password == "" {
		return false, fmt.Errorf("bootstrap admin %q has no password", login)
	}
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleSuperuser} {
		users, err := st.Users(ctx, &role)
		if err != nil {
			return false, err
		}
		if len(users) > 0 {
			return false, nil
		}
	}

	u, err := st.CreateUser(ctx, domain.NewUser{
		Name:     "Administrator",
		Login:    login,
		Password: password,
		Roles:    domain.Roles{IsAdmin: true, IsSuperuser: true},
	})
	if err != nil {
		return false, fmt.Errorf("create bootstrap admin: %w", err)
	}
	log.Info("bootstrap admin created", zap.Int64("id", u.ID), zap.String("login", u.Login))
	return true, nil
}
