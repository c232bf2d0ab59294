package store

import (
	"context"

	"tradebook/m/domain"
)

func clientSelection() *selection {
	q := &selection{}
	q.clientColumns("c", "")
	return q
}

// CreateClient stores the client together with its work hours.
func (s *Store) CreateClient(ctx context.Context, c domain.NewClient) (domain.Client, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Client{}, classify(err, "client")
	}
	defer tx.Rollback()

	id, err := s.insert(ctx, tx, `INSERT INTO clients (name, entity, address, address_comments, network, payment, default_provider, recoil, comments)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.Entity, c.Address, c.AddressComments, c.Network, c.Payment, c.DefaultProviderID, c.Recoil, c.Comments)
	if err != nil {
		return domain.Client{}, classify(err, "client")
	}
	_, err = tx.ExecContext(ctx, s.db.Rebind(`INSERT INTO clients_work_hours (client_id, monday, tuesday, wednesday, thursday, friday, saturday, sunday)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		id, c.Monday, c.Tuesday, c.Wednesday, c.Thursday, c.Friday, c.Saturday, c.Sunday)
	if err != nil {
		return domain.Client{}, classify(err, "client work hours")
	}
	if err := tx.Commit(); err != nil {
		return domain.Client{}, classify(err, "client")
	}
	return s.Client(ctx, id)
}

func (s *Store) Client(ctx context.Context, id int64) (domain.Client, error) {
	query, args := clientSelection().from("clients c", byID("c.id", id), "")
	return one[domain.Client](ctx, s, "client", query, args)
}

func (s *Store) Clients(ctx context.Context) ([]domain.Client, error) {
	query, args := clientSelection().from("clients c", &where{}, "c.id")
	return list[domain.Client](ctx, s, "clients", query, args)
}

func (s *Store) ClientNames(ctx context.Context) ([]domain.Name, error) {
	var names []domain.Name
	err := s.db.SelectContext(ctx, &names, `SELECT id, name FROM clients ORDER BY id`)
	return names, classify(err, "clients")
}

func clientPriceSelection() *selection {
	q := &selection{}
	q.fields("cp", "", "id", "product_name", "price")
	q.client("c", "cp.client_id", "client.")
	return q
}

func (s *Store) CreateClientPrice(ctx context.Context, p domain.NewClientPrice) (domain.ClientPrice, error) {
	id, err := s.insert(ctx, s.db, `INSERT INTO clients_prices (product_name, client_id, price) VALUES (?, ?, ?)`,
		p.ProductName, p.ClientID, p.Price)
	if err != nil {
		return domain.ClientPrice{}, classify(err, "client price")
	}
	return s.ClientPrice(ctx, id)
}

func (s *Store) ClientPrice(ctx context.Context, id int64) (domain.ClientPrice, error) {
	query, args := clientPriceSelection().from("clients_prices cp", byID("cp.id", id), "")
	return one[domain.ClientPrice](ctx, s, "client price", query, args)
}

func (s *Store) ClientPrices(ctx context.Context, f domain.ClientPriceFilter) ([]domain.ClientPrice, error) {
	w := &where{}
	eqIf(w, "cp.client_id", f.ClientID)
	eqIf(w, "cp.product_name", f.ProductName)
	query, args := clientPriceSelection().from("clients_prices cp", w, "cp.id")
	return list[domain.ClientPrice](ctx, s, "client prices", query, args)
}
