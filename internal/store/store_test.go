package store

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"tradebook/m/domain"
	"tradebook/m/internal/migrations"
)

func fakeHash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migrations.Run(db))
	return New(db, fakeHash)
}

func ptr[T any](v T) *T { return &v }

// fixture creates one record of each kind a sale or share needs.
type fixture struct {
	provider domain.Provider
	client   domain.Client
	driver   domain.User
}

func newFixture(t *testing.T, s *Store) fixture {
	t.Helper()
	ctx := context.Background()
	p, err := s.CreateProvider(ctx, domain.NewProvider{Name: "Dairy Co", Contacts: "+100"})
	require.NoError(t, err)
	c, err := s.CreateClient(ctx, domain.NewClient{
		Name: "Corner Shop", Entity: "LLC", Address: "Main st 1", Payment: "cash",
		DefaultProviderID: p.ID, Monday: "9-18",
	})
	require.NoError(t, err)
	d, err := s.CreateUser(ctx, domain.NewUser{
		Name: "Driver", Login: "driver", Password: "secret",
		Roles: domain.Roles{IsDriver: true},
	})
	require.NoError(t, err)
	return fixture{provider: p, client: c, driver: d}
}

func (f fixture) purchase(t *testing.T, s *Store, amount int64, weight, price float64) domain.Purchase {
	t.Helper()
	p, err := s.CreatePurchase(context.Background(), domain.NewPurchase{
		DeliveryTime: "2024-03-01 08:00:00", ProviderID: f.provider.ID, Product: "Gouda",
		Amount: amount, Weight: weight, PricePerKilo: price, Status: "received",
	})
	require.NoError(t, err)
	return p
}

func (f fixture) share(t *testing.T, s *Store, purchaseID, amount int64, weight float64) domain.Share {
	t.Helper()
	sh, err := s.CreateShare(context.Background(), domain.NewShare{
		DriverID: f.driver.ID, PurchaseID: purchaseID, Amount: amount, Weight: weight,
		PricePerKilo: 3, Status: "loaded",
	})
	require.NoError(t, err)
	return sh
}
