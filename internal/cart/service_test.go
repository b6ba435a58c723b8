package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clothmarket/clothmarket/internal/catalog"
)

type memStore struct {
	carts map[string]Cart
	saves int
}

func newMemStore() *memStore { return &memStore{carts: map[string]Cart{}} }

func (s *memStore) Load(_ context.Context, key string) (Cart, error) { return s.carts[key], nil }

func (s *memStore) Save(_ context.Context, key string, c Cart) error {
	s.saves++
	s.carts[key] = c
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	delete(s.carts, key)
	return nil
}

type stubProducts struct {
	products map[string]catalog.Product
}

func (s *stubProducts) Get(_ context.Context, id string) (catalog.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return catalog.Product{}, catalog.ErrNotFound
	}
	return p, nil
}

func salePtr(v float64) *float64 { return &v }

func TestServiceAddCapturesEffectivePrice(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, &stubProducts{products: map[string]catalog.Product{
		"p1": {ID: "p1", Name: "Tee", Price: 100, SalePrice: salePtr(80), Stock: 3},
	}})

	c, err := svc.Add(context.Background(), "k1", "p1")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	require.Equal(t, 80.0, c.Items[0].Price)
	require.NotNil(t, c.Items[0].Stock)
	require.Equal(t, 3, *c.Items[0].Stock)
	require.Equal(t, 1, store.saves)
}

func TestServiceAddRejectDoesNotPersist(t *testing.T) {
	store := newMemStore()
	store.carts["k1"] = Cart{Items: []Item{{ProductID: "p1", Price: 80, Quantity: 3, Stock: stockPtr(3)}}}
	svc := NewService(store, &stubProducts{products: map[string]catalog.Product{
		"p1": {ID: "p1", Name: "Tee", Price: 100, SalePrice: salePtr(80), Stock: 3},
	}})

	_, err := svc.Add(context.Background(), "k1", "p1")
	require.ErrorIs(t, err, ErrStockExceeded)
	require.Zero(t, store.saves)
	require.Equal(t, 3, store.carts["k1"].Items[0].Quantity)
}

func TestServiceAddUnknownProduct(t *testing.T) {
	svc := NewService(newMemStore(), &stubProducts{products: map[string]catalog.Product{}})

	_, err := svc.Add(context.Background(), "k1", "ghost")
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestServiceSetQuantityPersistsClampedCart(t *testing.T) {
	store := newMemStore()
	store.carts["k1"] = Cart{Items: []Item{{ProductID: "p1", Price: 80, Quantity: 1, Stock: stockPtr(3)}}}
	svc := NewService(store, &stubProducts{})

	c, err := svc.SetQuantity(context.Background(), "k1", "p1", 9)
	require.ErrorIs(t, err, ErrStockExceeded)
	require.Equal(t, 3, c.Items[0].Quantity)
	// The clamped state is what survives.
	require.Equal(t, 3, store.carts["k1"].Items[0].Quantity)
}
