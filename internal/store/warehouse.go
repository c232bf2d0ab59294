package store

import (
	"context"

	"tradebook/m/domain"
	"tradebook/m/internal/ledger"
)

type stockRow struct {
	domain.Purchase
	AllocatedAmount int64   `db:"allocated_amount"`
	AllocatedWeight float64 `db:"allocated_weight"`
}

// Warehouse lists every purchase that still has unallocated units, with the
// amount and weight reduced by the sums of its shares.
func (s *Store) Warehouse(ctx context.Context) ([]domain.WarehouseItem, error) {
	q := purchaseSelection()
	q.col("COALESCE(a.amount, 0)", "allocated_amount")
	q.col("COALESCE(a.weight, 0)", "allocated_weight")
	q.join("(SELECT purchase_id, SUM(amount) AS amount, SUM(weight) AS weight FROM drivers_share GROUP BY purchase_id)",
		"a", "a.purchase_id = pp.id")
	query, args := q.from("providers_purchases pp", &where{}, "pp.id")

	rows, err := list[stockRow](ctx, s, "warehouse", query, args)
	if err != nil {
		return nil, err
	}
	items := make([]domain.WarehouseItem, 0, len(rows))
	for _, r := range rows {
		left := ledger.Remainder(
			ledger.Quantity{Amount: r.Amount, Weight: r.Weight},
			ledger.Quantity{Amount: r.AllocatedAmount, Weight: r.AllocatedWeight},
		)
		if !left.InStock() {
			continue
		}
		items = append(items, domain.WarehouseItem{
			ID:           r.ID,
			Provider:     r.Provider,
			Product:      r.Product,
			Amount:       left.Amount,
			Weight:       left.Weight,
			PricePerKilo: r.PricePerKilo,
			DeliveryTime: r.DeliveryTime,
		})
	}
	return items, nil
}
