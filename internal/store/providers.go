package store

import (
	"context"

	"tradebook/m/domain"
)

func (s *Store) CreateProvider(ctx context.Context, p domain.NewProvider) (domain.Provider, error) {
	id, err := s.insert(ctx, s.db, `INSERT INTO providers (name, contacts, comments) VALUES (?, ?, ?)`,
		p.Name, p.Contacts, p.Comments)
	if err != nil {
		return domain.Provider{}, classify(err, "provider")
	}
	return s.Provider(ctx, id)
}

func (s *Store) Provider(ctx context.Context, id int64) (domain.Provider, error) {
	var p domain.Provider
	err := s.db.GetContext(ctx, &p, s.db.Rebind(`SELECT id, name, contacts, comments FROM providers WHERE id = ?`), id)
	return p, classify(err, "provider")
}

func (s *Store) Providers(ctx context.Context) ([]domain.Provider, error) {
	var providers []domain.Provider
	err := s.db.SelectContext(ctx, &providers, `SELECT id, name, contacts, comments FROM providers ORDER BY id`)
	return providers, classify(err, "providers")
}

func (s *Store) ProviderNames(ctx context.Context) ([]domain.Name, error) {
	var names []domain.Name
	err := s.db.SelectContext(ctx, &names, `SELECT id, name FROM providers ORDER BY id`)
	return names, classify(err, "providers")
}
