package domain

// WorkHours holds free-text opening hours per weekday.
type WorkHours struct {
	Monday    *string `db:"monday" json:"monday"`
	Tuesday   *string `db:"tuesday" json:"tuesday"`
	Wednesday *string `db:"wednesday" json:"wednesday"`
	Thursday  *string `db:"thursday" json:"thursday"`
	Friday    *string `db:"friday" json:"friday"`
	Saturday  *string `db:"saturday" json:"saturday"`
	Sunday    *string `db:"sunday" json:"sunday"`
}

type Client struct {
	ID                int64       `db:"id" json:"id"`
	Name              string      `db:"name" json:"name"`
	Entity            string      `db:"entity" json:"entity"`
	Address           string      `db:"address" json:"address"`
	AddressComments   string      `db:"address_comments" json:"address_comments"`
	Network           string      `db:"network" json:"network"`
	Payment           string      `db:"payment" json:"payment"`
	DefaultProviderID *int64      `db:"default_provider_id" json:"default_provider_id"`
	DefaultProvider   ProviderRef `db:"default_provider" json:"default_provider"`
	Recoil            float64     `db:"recoil" json:"recoil"`
	Comments          string      `db:"comments" json:"comments"`
	WorkHours         WorkHours   `db:"work_hours" json:"work_hours"`
}

type ClientRef struct {
	ID                *int64      `db:"id" json:"id"`
	Name              *string     `db:"name" json:"name"`
	Entity            *string     `db:"entity" json:"entity"`
	Address           *string     `db:"address" json:"address"`
	AddressComments   *string     `db:"address_comments" json:"address_comments"`
	Network           *string     `db:"network" json:"network"`
	Payment           *string     `db:"payment" json:"payment"`
	DefaultProviderID *int64      `db:"default_provider_id" json:"default_provider_id"`
	DefaultProvider   ProviderRef `db:"default_provider" json:"default_provider"`
	Recoil            *float64    `db:"recoil" json:"recoil"`
	Comments          *string     `db:"comments" json:"comments"`
	WorkHours         WorkHours   `db:"work_hours" json:"work_hours"`
}

type NewClient struct {
	Name              string  `json:"name" validate:"required"`
	Entity            string  `json:"entity" validate:"required"`
	Address           string  `json:"address" validate:"required"`
	AddressComments   string  `json:"address_comments"`
	Network           string  `json:"network"`
	Payment           string  `json:"payment" validate:"required"`
	DefaultProviderID int64   `json:"default_provider_id" validate:"required,gt=0"`
	Recoil            float64 `json:"recoil"`
	Comments          string  `json:"comments"`
	Monday            string  `json:"monday"`
	Tuesday           string  `json:"tuesday"`
	Wednesday         string  `json:"wednesday"`
	Thursday          string  `json:"thursday"`
	Friday            string  `json:"friday"`
	Saturday          string  `json:"saturday"`
	Sunday            string  `json:"sunday"`
}

// ClientPrice is a negotiated per-client price for a product.
type ClientPrice struct {
	ID          int64     `db:"id" json:"id"`
	ProductName string    `db:"product_name" json:"product_name"`
	Client      ClientRef `db:"client" json:"client"`
	Price       float64   `db:"price" json:"price"`
}

type NewClientPrice struct {
	ProductName string  `json:"product_name" validate:"required"`
	ClientID    int64   `json:"client_id" validate:"required,gt=0"`
	Price       float64 `json:"price" validate:"gte=0"`
}
