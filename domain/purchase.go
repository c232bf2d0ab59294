package domain

// Purchase is a product quantity acquired from a provider.
type Purchase struct {
	ID           int64       `db:"id" json:"id"`
	DeliveryTime Timestamp   `db:"delivery_time" json:"delivery_time"`
	Provider     ProviderRef `db:"provider" json:"provider"`
	Product      string      `db:"product" json:"product"`
	Amount       int64       `db:"amount" json:"amount"`
	Weight       float64     `db:"weight" json:"weight"`
	PricePerKilo float64     `db:"price_per_kilo" json:"price_per_kilo"`
	TotalPrice   float64     `db:"total_price" json:"total_price"`
	Paid         float64     `db:"paid" json:"paid"`
	Debt         float64     `db:"debt" json:"debt"`
	Comments     string      `db:"comments" json:"comments"`
	Status       string      `db:"status" json:"status"`
}

type PurchaseRef struct {
	ID           *int64      `db:"id" json:"id"`
	DeliveryTime *Timestamp  `db:"delivery_time" json:"delivery_time"`
	Provider     ProviderRef `db:"provider" json:"provider"`
	Product      *string     `db:"product" json:"product"`
	Amount       *int64      `db:"amount" json:"amount"`
	Weight       *float64    `db:"weight" json:"weight"`
	PricePerKilo *float64    `db:"price_per_kilo" json:"price_per_kilo"`
	TotalPrice   *float64    `db:"total_price" json:"total_price"`
	Paid         *float64    `db:"paid" json:"paid"`
	Debt         *float64    `db:"debt" json:"debt"`
	Comments     *string     `db:"comments" json:"comments"`
	Status       *string     `db:"status" json:"status"`
}

// NewPurchase carries the creation parameters. TotalPrice, Paid and Debt are
// derived when absent.
type NewPurchase struct {
	DeliveryTime string   `json:"delivery_time" validate:"required,timestamp"`
	ProviderID   int64    `json:"provider_id" validate:"required,gt=0"`
	Product      string   `json:"product" validate:"required"`
	Amount       int64    `json:"amount" validate:"gte=0"`
	Weight       float64  `json:"weight" validate:"gte=0"`
	PricePerKilo float64  `json:"price_per_kilo" validate:"gte=0"`
	Status       string   `json:"status" validate:"required"`
	TotalPrice   *float64 `json:"total_price"`
	Paid         *float64 `json:"paid"`
	Debt         *float64 `json:"debt"`
	Comments     string   `json:"comments"`
}

type PurchaseFilter struct {
	ProviderID *int64
	Product    *string
	Status     *string
}

// WarehouseItem is the unallocated part of a purchase.
type WarehouseItem struct {
	ID           int64       `json:"id"`
	Provider     ProviderRef `json:"provider"`
	Product      string      `json:"product"`
	Amount       int64       `json:"amount"`
	Weight       float64     `json:"weight"`
	PricePerKilo float64     `json:"price_per_kilo"`
	DeliveryTime Timestamp   `json:"delivery_time"`
}
