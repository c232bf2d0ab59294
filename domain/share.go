package domain

// Share is a portion of a purchase allocated to a driver.
type Share struct {
	ID           int64       `db:"id" json:"id"`
	Driver       UserRef     `db:"driver" json:"driver"`
	Purchase     PurchaseRef `db:"purchase" json:"purchase"`
	Amount       int64       `db:"amount" json:"amount"`
	Weight       float64     `db:"weight" json:"weight"`
	PricePerKilo float64     `db:"price_per_kilo" json:"price_per_kilo"`
	Status       string      `db:"status" json:"status"`
}

type ShareRef struct {
	ID           *int64      `db:"id" json:"id"`
	Driver       UserRef     `db:"driver" json:"driver"`
	Purchase     PurchaseRef `db:"purchase" json:"purchase"`
	Amount       *int64      `db:"amount" json:"amount"`
	Weight       *float64    `db:"weight" json:"weight"`
	PricePerKilo *float64    `db:"price_per_kilo" json:"price_per_kilo"`
	Status       *string     `db:"status" json:"status"`
}

type NewShare struct {
	DriverID     int64   `json:"driver_id" validate:"required,gt=0"`
	PurchaseID   int64   `json:"purchase_id" validate:"required,gt=0"`
	Amount       int64   `json:"amount" validate:"gte=0"`
	Weight       float64 `json:"weight" validate:"gte=0"`
	PricePerKilo float64 `json:"price_per_kilo" validate:"gte=0"`
	Status       string  `json:"status" validate:"required"`
}

type ShareFilter struct {
	DriverID   *int64
	PurchaseID *int64
	Status     *string
}

// Story is a history row: the quantity of a share realized by a sale.
type Story struct {
	ID           int64    `db:"id" json:"id"`
	Sale         SaleRef  `db:"sale" json:"sale"`
	Share        ShareRef `db:"share" json:"share"`
	Amount       int64    `db:"amount" json:"amount"`
	Weight       float64  `db:"weight" json:"weight"`
	PricePerKilo float64  `db:"price_per_kilo" json:"price_per_kilo"`
	TotalPrice   float64  `db:"total_price" json:"total_price"`
}

type NewStory struct {
	SaleID       int64    `json:"sale_id" validate:"required,gt=0"`
	ShareID      int64    `json:"share_id" validate:"required,gt=0"`
	Amount       int64    `json:"amount" validate:"gte=0"`
	Weight       float64  `json:"weight" validate:"gte=0"`
	PricePerKilo float64  `json:"price_per_kilo" validate:"gte=0"`
	TotalPrice   *float64 `json:"total_price"`
}

type StoryFilter struct {
	ClientID   *int64
	DriverID   *int64
	ProviderID *int64
}
