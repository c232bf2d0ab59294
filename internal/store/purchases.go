package store

import (
	"context"

	"tradebook/m/domain"
	"tradebook/m/internal/apperr"
	"tradebook/m/internal/ledger"
)

func purchaseSelection() *selection {
	q := &selection{}
	q.purchaseColumns("pp", "")
	return q
}

// CreatePurchase stores a purchase, deriving total_price, paid and debt when
// the caller leaves them out.
func (s *Store) CreatePurchase(ctx context.Context, p domain.NewPurchase) (domain.Purchase, error) {
	deliveryTime, err := domain.ParseTimestamp(p.DeliveryTime)
	if err != nil {
		return domain.Purchase{}, apperr.Wrap(apperr.KindValidation, err, "invalid delivery_time")
	}
	t := ledger.PurchaseTotals(p.Weight, p.PricePerKilo, p.TotalPrice, p.Paid, p.Debt)

	id, err := s.insert(ctx, s.db, `INSERT INTO providers_purchases
		(delivery_time, provider, product, amount, weight, price_per_kilo, total_price, paid, debt, comments, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		deliveryTime, p.ProviderID, p.Product, p.Amount, p.Weight, p.PricePerKilo, t.Total, t.Paid, t.Debt, p.Comments, p.Status)
	if err != nil {
		return domain.Purchase{}, classify(err, "purchase")
	}
	return s.Purchase(ctx, id)
}

func (s *Store) Purchase(ctx context.Context, id int64) (domain.Purchase, error) {
	query, args := purchaseSelection().from("providers_purchases pp", byID("pp.id", id), "")
	return one[domain.Purchase](ctx, s, "purchase", query, args)
}

func (s *Store) Purchases(ctx context.Context, f domain.PurchaseFilter) ([]domain.Purchase, error) {
	w := &where{}
	eqIf(w, "pp.provider", f.ProviderID)
	eqIf(w, "pp.product", f.Product)
	eqIf(w, "pp.status", f.Status)
	query, args := purchaseSelection().from("providers_purchases pp", w, "pp.id")
	return list[domain.Purchase](ctx, s, "purchases", query, args)
}
