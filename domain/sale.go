package domain

type Sale struct {
	ID           int64       `db:"id" json:"id"`
	DeliveryTime Timestamp   `db:"delivery_time" json:"delivery_time"`
	Client       ClientRef   `db:"client" json:"client"`
	Provider     ProviderRef `db:"provider" json:"provider"`
	Driver       UserRef     `db:"driver" json:"driver"`
	Paid         float64     `db:"paid" json:"paid"`
	Debt         float64     `db:"debt" json:"debt"`
	Comments     string      `db:"comments" json:"comments"`
	Status       string      `db:"status" json:"status"`
}

type SaleRef struct {
	ID           *int64      `db:"id" json:"id"`
	DeliveryTime *Timestamp  `db:"delivery_time" json:"delivery_time"`
	Client       ClientRef   `db:"client" json:"client"`
	Provider     ProviderRef `db:"provider" json:"provider"`
	Driver       UserRef     `db:"driver" json:"driver"`
	Paid         *float64    `db:"paid" json:"paid"`
	Debt         *float64    `db:"debt" json:"debt"`
	Comments     *string     `db:"comments" json:"comments"`
	Status       *string     `db:"status" json:"status"`
}

type NewSale struct {
	DeliveryTime string  `json:"delivery_time" validate:"required,timestamp"`
	ClientID     int64   `json:"client_id" validate:"required,gt=0"`
	ProviderID   int64   `json:"provider_id" validate:"required,gt=0"`
	DriverID     int64   `json:"driver_id" validate:"required,gt=0"`
	Status       string  `json:"status" validate:"required"`
	Paid         float64 `json:"paid"`
	Debt         float64 `json:"debt"`
	Comments     string  `json:"comments"`
}

type SaleFilter struct {
	DriverID *int64
	ClientID *int64
	Status   *string
}

// FutureSale is a client's pre-order for a product.
type FutureSale struct {
	ID           int64     `db:"id" json:"id"`
	Client       ClientRef `db:"client" json:"client"`
	Product      string    `db:"product" json:"product"`
	Amount       int64     `db:"amount" json:"amount"`
	OrderTime    Timestamp `db:"order_time" json:"order_time"`
	DeliveryTime Timestamp `db:"delivery_time" json:"delivery_time"`
	Status       string    `db:"status" json:"status"`
	Comments     string    `db:"comments" json:"comments"`
}

type NewFutureSale struct {
	ClientID     int64  `json:"client_id" validate:"required,gt=0"`
	Product      string `json:"product" validate:"required"`
	Amount       int64  `json:"amount" validate:"gte=0"`
	OrderTime    string `json:"order_time" validate:"required,timestamp"`
	DeliveryTime string `json:"delivery_time" validate:"required,timestamp"`
	Status       string `json:"status" validate:"required"`
	Comments     string `json:"comments"`
}

type FutureSaleFilter struct {
	ClientID *int64
	Status   *string
}

type ClientPriceFilter struct {
	ClientID    *int64
	ProductName *string
}
