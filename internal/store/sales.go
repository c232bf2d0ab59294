package store

import (
	"context"

	"tradebook/m/domain"
	"tradebook/m/internal/apperr"
)

func saleSelection() *selection {
	q := &selection{}
	q.saleColumns("cs", "")
	return q
}

func (s *Store) CreateSale(ctx context.Context, sale domain.NewSale) (domain.Sale, error) {
	deliveryTime, err := domain.ParseTimestamp(sale.DeliveryTime)
	if err != nil {
		return domain.Sale{}, apperr.Wrap(apperr.KindValidation, err, "invalid delivery_time")
	}
	id, err := s.insert(ctx, s.db, `INSERT INTO clients_sales
		(delivery_time, client, provider, driver, paid, debt, comments, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		deliveryTime, sale.ClientID, sale.ProviderID, sale.DriverID, sale.Paid, sale.Debt, sale.Comments, sale.Status)
	if err != nil {
		return domain.Sale{}, classify(err, "sale")
	}
	return s.Sale(ctx, id)
}

func (s *Store) Sale(ctx context.Context, id int64) (domain.Sale, error) {
	query, args := saleSelection().from("clients_sales cs", byID("cs.id", id), "")
	return one[domain.Sale](ctx, s, "sale", query, args)
}

func (s *Store) Sales(ctx context.Context, f domain.SaleFilter) ([]domain.Sale, error) {
	w := &where{}
	eqIf(w, "cs.driver", f.DriverID)
	eqIf(w, "cs.client", f.ClientID)
	eqIf(w, "cs.status", f.Status)
	query, args := saleSelection().from("clients_sales cs", w, "cs.id")
	return list[domain.Sale](ctx, s, "sales", query, args)
}

func futureSaleSelection() *selection {
	q := &selection{}
	q.fields("fs", "", "id", "product", "amount", "order_time", "delivery_time", "status", "comments")
	q.client("c", "fs.client", "client.")
	return q
}

func (s *Store) CreateFutureSale(ctx context.Context, fs domain.NewFutureSale) (domain.FutureSale, error) {
	orderTime, err := domain.ParseTimestamp(fs.OrderTime)
	if err != nil {
		return domain.FutureSale{}, apperr.Wrap(apperr.KindValidation, err, "invalid order_time")
	}
	deliveryTime, err := domain.ParseTimestamp(fs.DeliveryTime)
	if err != nil {
		return domain.FutureSale{}, apperr.Wrap(apperr.KindValidation, err, "invalid delivery_time")
	}
	id, err := s.insert(ctx, s.db, `INSERT INTO clients_future_sales
		(client, product, amount, order_time, delivery_time, status, comments)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		fs.ClientID, fs.Product, fs.Amount, orderTime, deliveryTime, fs.Status, fs.Comments)
	if err != nil {
		return domain.FutureSale{}, classify(err, "future sale")
	}
	return s.FutureSale(ctx, id)
}

func (s *Store) FutureSale(ctx context.Context, id int64) (domain.FutureSale, error) {
	query, args := futureSaleSelection().from("clients_future_sales fs", byID("fs.id", id), "")
	return one[domain.FutureSale](ctx, s, "future sale", query, args)
}

func (s *Store) FutureSales(ctx context.Context, f domain.FutureSaleFilter) ([]domain.FutureSale, error) {
	w := &where{}
	eqIf(w, "fs.client", f.ClientID)
	eqIf(w, "fs.status", f.Status)
	query, args := futureSaleSelection().from("clients_future_sales fs", w, "fs.id")
	return list[domain.FutureSale](ctx, s, "future sales", query, args)
}
