// Package ledger holds the stock-allocation arithmetic: derived totals for
// purchases and history rows, and the warehouse remainder of a purchase.
//
// Values stay in float64 as they arrive; nothing here rounds.
package ledger

// LineTotal returns total when it is set and non-zero, otherwise weight*pricePerKilo.
func LineTotal(weight, pricePerKilo float64, total *float64) float64 {
	if total != nil && *total != 0 {
		return *total
	}
	return weight * pricePerKilo
}

// Totals are the money columns stored on a new purchase.
type Totals struct {
	Total float64
	Paid  float64
	Debt  float64
}

// PurchaseTotals derives the money columns of a new purchase. An absent paid
// is 0. An absent or zero debt is the whole total, even when paid was given.
func PurchaseTotals(weight, pricePerKilo float64, total, paid, debt *float64) Totals {
	t := Totals{Total: LineTotal(weight, pricePerKilo, total)}
	if paid != nil {
		t.Paid = *paid
	}
	t.Debt = t.Total
	if debt != nil && *debt != 0 {
		t.Debt = *debt
	}
	return t
}

// Quantity is an amount of goods in units and mass.
type Quantity struct {
	Amount int64
	Weight float64
}

// Remainder is what is left of purchased after the allocated share sums.
// A purchase with no shares has a zero allocation.
func Remainder(purchased, allocated Quantity) Quantity {
	return Quantity{
		Amount: purchased.Amount - allocated.Amount,
		Weight: purchased.Weight - allocated.Weight,
	}
}

// InStock reports whether a remainder still belongs in the warehouse listing.
// Only the unit count decides; weight is informational.
func (q Quantity) InStock() bool {
	return q.Amount > 0
}
