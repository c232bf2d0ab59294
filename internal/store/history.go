package store

import (
	"context"

	"tradebook/m/domain"
	"tradebook/m/internal/ledger"
)

func storySelection() *selection {
	q := &selection{}
	q.fields("h", "", "id", "amount", "weight", "price_per_kilo", "total_price")
	q.sale("s", "h.sale_id", "sale.")
	q.share("sh", "h.share_id", "share.")
	return q
}

// CreateStory records a realized share. total_price falls back to
// weight*price_per_kilo when absent or zero.
func (s *Store) CreateStory(ctx context.Context, st domain.NewStory) (domain.Story, error) {
	total := ledger.LineTotal(st.Weight, st.PricePerKilo, st.TotalPrice)
	id, err := s.insert(ctx, s.db, `INSERT INTO history
		(sale_id, share_id, amount, weight, price_per_kilo, total_price)
		VALUES (?, ?, ?, ?, ?, ?)`,
		st.SaleID, st.ShareID, st.Amount, st.Weight, st.PricePerKilo, total)
	if err != nil {
		return domain.Story{}, classify(err, "history record")
	}
	return s.Story(ctx, id)
}

func (s *Store) Story(ctx context.Context, id int64) (domain.Story, error) {
	query, args := storySelection().from("history h", byID("h.id", id), "")
	return one[domain.Story](ctx, s, "history record", query, args)
}

// History lists realized shares filtered by the sale's client, the share's
// driver or the provider of the share's purchase.
func (s *Store) History(ctx context.Context, f domain.StoryFilter) ([]domain.Story, error) {
	w := &where{}
	eqIf(w, "s.client", f.ClientID)
	eqIf(w, "sh.driver_id", f.DriverID)
	eqIf(w, "sh_pp.provider", f.ProviderID)
	query, args := storySelection().from("history h", w, "h.id")
	return list[domain.Story](ctx, s, "history", query, args)
}
