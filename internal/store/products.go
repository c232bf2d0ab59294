package store

import (
	"context"

	"tradebook/m/domain"
)

func (s *Store) CreateProduct(ctx context.Context, p domain.NewProduct) (domain.Product, error) {
	id, err := s.insert(ctx, s.db, `INSERT INTO products (product_name) VALUES (?)`, p.ProductName)
	if err != nil {
		return domain.Product{}, classify(err, "product")
	}
	return s.Product(ctx, id)
}

func (s *Store) Product(ctx context.Context, id int64) (domain.Product, error) {
	var p domain.Product
	err := s.db.GetContext(ctx, &p, s.db.Rebind(`SELECT id, product_name FROM products WHERE id = ?`), id)
	return p, classify(err, "product")
}

func (s *Store) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := s.db.SelectContext(ctx, &products, `SELECT id, product_name FROM products ORDER BY id`)
	return products, classify(err, "products")
}
