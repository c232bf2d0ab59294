package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradebook/m/domain"
	"tradebook/m/internal/apperr"
)

func TestCreateClientWithWorkHours(t *testing.T) {
	s := newTestStore(t)
	f := newFixture(t, s)

	c := f.client
	assert.Equal(t, "Corner Shop", c.Name)
	require.NotNil(t, c.DefaultProviderID)
	assert.Equal(t, f.provider.ID, *c.DefaultProviderID)
	require.NotNil(t, c.DefaultProvider.Name)
	assert.Equal(t, "Dairy Co", *c.DefaultProvider.Name)
	require.NotNil(t, c.WorkHours.Monday)
	assert.Equal(t, "9-18", *c.WorkHours.Monday)
	require.NotNil(t, c.WorkHours.Sunday)
	assert.Empty(t, *c.WorkHours.Sunday)

	names, err := s.ClientNames(context.Background())
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, domain.Name{ID: c.ID, Name: "Corner Shop"}, names[0])
}

func TestClientPrices(t *testing.T) {
	s := newTestStore(t)
	f := newFixture(t, s)
	ctx := context.Background()

	cp, err := s.CreateClientPrice(ctx, domain.NewClientPrice{ProductName: "Gouda", ClientID: f.client.ID, Price: 7.5})
	require.NoError(t, err)
	assert.Equal(t, 7.5, cp.Price)
	require.NotNil(t, cp.Client.Name)
	assert.Equal(t, "Corner Shop", *cp.Client.Name)
	_, err = s.CreateClientPrice(ctx, domain.NewClientPrice{ProductName: "Brie", ClientID: f.client.ID, Price: 9})
	require.NoError(t, err)

	gouda, err := s.ClientPrices(ctx, domain.ClientPriceFilter{ClientID: &f.client.ID, ProductName: ptr("Gouda")})
	require.NoError(t, err)
	require.Len(t, gouda, 1)
	assert.Equal(t, cp.ID, gouda[0].ID)

	all, err := s.ClientPrices(ctx, domain.ClientPriceFilter{ClientID: &f.client.ID})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProductsAreUnique(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p, err := s.CreateProduct(ctx, domain.NewProduct{ProductName: "Gouda"})
	require.NoError(t, err)
	assert.Equal(t, "Gouda", p.ProductName)

	_, err = s.CreateProduct(ctx, domain.NewProduct{ProductName: "Gouda"})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}
