package domain

type Provider struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Contacts string `db:"contacts" json:"contacts"`
	Comments string `db:"comments" json:"comments"`
}

type ProviderRef struct {
	ID       *int64  `db:"id" json:"id"`
	Name     *string `db:"name" json:"name"`
	Contacts *string `db:"contacts" json:"contacts"`
	Comments *string `db:"comments" json:"comments"`
}

type NewProvider struct {
	Name     string `json:"name" validate:"required"`
	Contacts string `json:"contacts" validate:"required"`
	Comments string `json:"comments"`
}

// Name is the id/name pair returned by the name-only listings.
type Name struct {
	ID   int64  `db:"id" json:"-"`
	Name string `db:"name" json:"name"`
}
