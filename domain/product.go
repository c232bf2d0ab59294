package domain

type Product struct {
	ID          int64  `db:"id" json:"id"`
	ProductName string `db:"product_name" json:"product_name"`
}

type NewProduct struct {
	ProductName string `json:"product_name" validate:"required"`
}
