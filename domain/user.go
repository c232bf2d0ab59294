package domain

// Role names a users_roles flag.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDriver    Role = "driver"
	RoleOperator  Role = "operator"
	RoleSuperuser Role = "superuser"
)

// Column returns the users_roles column holding the flag, or "" for an unknown role.
func (r Role) Column() string {
	switch r {
	case RoleAdmin:
		return "is_admin"
	case RoleDriver:
		return "is_driver"
	case RoleOperator:
		return "is_operator"
	case RoleSuperuser:
		return "is_superuser"
	}
	return ""
}

type Roles struct {
	IsAdmin     bool `db:"is_admin" json:"is_admin"`
	IsDriver    bool `db:"is_driver" json:"is_driver"`
	IsOperator  bool `db:"is_operator" json:"is_operator"`
	IsSuperuser bool `db:"is_superuser" json:"is_superuser"`
}

// Has reports whether the flag for role is set.
func (r Roles) Has(role Role) bool {
	switch role {
	case RoleAdmin:
		return r.IsAdmin
	case RoleDriver:
		return r.IsDriver
	case RoleOperator:
		return r.IsOperator
	case RoleSuperuser:
		return r.IsSuperuser
	}
	return false
}

type User struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Contacts string `db:"contacts" json:"contacts"`
	Login    string `db:"login" json:"login"`
	Password string `db:"password" json:"-"`
	Roles    Roles  `db:"roles" json:"roles"`
}

// UserRef is a user joined into another record; every field is null when the
// referenced row does not exist.
type UserRef struct {
	ID       *int64  `db:"id" json:"id"`
	Name     *string `db:"name" json:"name"`
	Contacts *string `db:"contacts" json:"contacts"`
}

type NewUser struct {
	Name     string `json:"name" validate:"required"`
	Contacts string `json:"contacts"`
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
	Roles
}

type Credentials struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     Role   `json:"role" validate:"required,oneof=admin driver operator superuser"`
}
