package store

import (
	"context"
	"fmt"

	"tradebook/m/domain"
	"tradebook/m/internal/apperr"
)

func userSelection(withPassword bool) *selection {
	q := &selection{}
	q.fields("u", "", "id", "name", "contacts", "login")
	if withPassword {
		q.fields("u", "", "password")
	}
	q.join("users_roles", "r", "r.user_id = u.id")
	for _, flag := range []string{"is_admin", "is_driver", "is_operator", "is_superuser"} {
		q.col("COALESCE(r."+flag+", FALSE)", "roles."+flag)
	}
	return q
}

// CreateUser stores the user and its role flags in one transaction. The
// password is hashed before it is written.
func (s *Store) CreateUser(ctx context.Context, u domain.NewUser) (domain.User, error) {
	hashed, err := s.hash(u.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.User{}, classify(err, "user")
	}
	defer tx.Rollback()

	id, err := s.insert(ctx, tx, `INSERT INTO users (name, contacts, login, password) VALUES (?, ?, ?, ?)`,
		u.Name, u.Contacts, u.Login, hashed)
	if err != nil {
		return domain.User{}, classify(err, "user")
	}
	_, err = tx.ExecContext(ctx, s.db.Rebind(`INSERT INTO users_roles (user_id, is_admin, is_driver, is_operator, is_superuser) VALUES (?, ?, ?, ?, ?)`),
		id, u.IsAdmin, u.IsDriver, u.IsOperator, u.IsSuperuser)
	if err != nil {
		return domain.User{}, classify(err, "user roles")
	}
	if err := tx.Commit(); err != nil {
		return domain.User{}, classify(err, "user")
	}
	return s.User(ctx, id)
}

func (s *Store) User(ctx context.Context, id int64) (domain.User, error) {
	query, args := userSelection(false).from("users u", byID("u.id", id), "")
	return one[domain.User](ctx, s, "user", query, args)
}

// Users lists users, optionally only those holding role.
func (s *Store) Users(ctx context.Context, role *domain.Role) ([]domain.User, error) {
	w := &where{}
	if role != nil {
		column := role.Column()
		if column == "" {
			return nil, apperr.Validation("unknown role %q", *role)
		}
		w.eq("r."+column, true)
	}
	query, args := userSelection(false).from("users u", w, "u.id")
	return list[domain.User](ctx, s, "users", query, args)
}

// UserByLogin resolves a login to its user, stored password hash included.
// A login shared by several users is rejected rather than resolved arbitrarily.
func (s *Store) UserByLogin(ctx context.Context, login string) (domain.User, error) {
	query, args := userSelection(true).from("users u", new(where).eq("u.login", login), "u.id LIMIT 2")
	users, err := list[domain.User](ctx, s, "user", query, args)
	if err != nil {
		return domain.User{}, err
	}
	switch len(users) {
	case 0:
		return domain.User{}, apperr.NotFound("user with this login doesn't exist")
	case 1:
		return users[0], nil
	}
	return domain.User{}, apperr.Conflict("login %q is ambiguous", login)
}
