package store

import (
	"context"

	"tradebook/m/domain"
)

func shareSelection() *selection {
	q := &selection{}
	q.shareColumns("ds", "")
	return q
}

// CreateShare allocates part of a purchase to a driver. Over-allocation is
// not checked; the warehouse listing simply drops exhausted purchases.
func (s *Store) CreateShare(ctx context.Context, sh domain.NewShare) (domain.Share, error) {
	id, err := s.insert(ctx, s.db, `INSERT INTO drivers_share
		(driver_id, purchase_id, amount, weight, price_per_kilo, status)
		VALUES (?, ?, ?, ?, ?, ?)`,
		sh.DriverID, sh.PurchaseID, sh.Amount, sh.Weight, sh.PricePerKilo, sh.Status)
	if err != nil {
		return domain.Share{}, classify(err, "share")
	}
	return s.Share(ctx, id)
}

func (s *Store) Share(ctx context.Context, id int64) (domain.Share, error) {
	query, args := shareSelection().from("drivers_share ds", byID("ds.id", id), "")
	return one[domain.Share](ctx, s, "share", query, args)
}

func (s *Store) Shares(ctx context.Context, f domain.ShareFilter) ([]domain.Share, error) {
	w := &where{}
	eqIf(w, "ds.driver_id", f.DriverID)
	eqIf(w, "ds.purchase_id", f.PurchaseID)
	eqIf(w, "ds.status", f.Status)
	query, args := shareSelection().from("drivers_share ds", w, "ds.id")
	return list[domain.Share](ctx, s, "shares", query, args)
}
