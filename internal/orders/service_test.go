package orders

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clothmarket/clothmarket/internal/cart"
)

type stubRepo struct {
	Repository
	created *Order
	stored  map[string]Order
	updated map[string]Status
}

func (s *stubRepo) Create(_ context.Context, o Order) error {
	s.created = &o
	return nil
}

func (s *stubRepo) Get(_ context.Context, id string) (Order, error) {
	o, ok := s.stored[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return o, nil
}

func (s *stubRepo) UpdateStatus(_ context.Context, id string, status Status) error {
	if s.updated == nil {
		s.updated = map[string]Status{}
	}
	s.updated[id] = status
	return nil
}

type stubCarts struct {
	cart    cart.Cart
	cleared []string
}

func (s *stubCarts) Get(context.Context, string) (cart.Cart, error) { return s.cart, nil }

func (s *stubCarts) Clear(_ context.Context, key string) error {
	s.cleared = append(s.cleared, key)
	return nil
}

func newTestService(repo *stubRepo, carts *stubCarts) *Service {
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo, carts, nil)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestCheckoutFreezesCartPrices(t *testing.T) {
	repo := &stubRepo{}
	carts := &stubCarts{cart: cart.Cart{Items: []cart.Item{
		{ProductID: "p1", Name: "Tee", Price: 80, Quantity: 2},
		{ProductID: "p2", Name: "Cap", Price: 15, Quantity: 1},
	}}}

	o, err := newTestService(repo, carts).Checkout(context.Background(), "k1", CheckoutRequest{
		UserID:       "u1",
		CustomerName: "Ada",
	})
	require.NoError(t, err)
	require.Equal(t, StatusPending, o.Status)
	require.Equal(t, 175.0, o.TotalPrice)
	require.Len(t, o.Items, 2)
	require.Equal(t, 80.0, o.Items[0].Price)
	require.NotNil(t, repo.created)
	require.Equal(t, []string{"k1"}, carts.cleared)
}

func TestCheckoutEmptyCart(t *testing.T) {
	repo := &stubRepo{}
	carts := &stubCarts{}

	_, err := newTestService(repo, carts).Checkout(context.Background(), "k1", CheckoutRequest{
		UserID:       "u1",
		CustomerName: "Ada",
	})
	require.ErrorIs(t, err, ErrEmptyCart)
	require.Nil(t, repo.created)
	require.Empty(t, carts.cleared)
}

func TestUpdateStatusValidatesTransition(t *testing.T) {
	repo := &stubRepo{stored: map[string]Order{
		"o1": {ID: "o1", Status: StatusPending},
		"o2": {ID: "o2", Status: StatusDelivered},
	}}
	svc := newTestService(repo, &stubCarts{})

	o, err := svc.UpdateStatus(context.Background(), "o1", StatusProcessing)
	require.NoError(t, err)
	require.Equal(t, StatusProcessing, o.Status)
	require.Equal(t, StatusProcessing, repo.updated["o1"])

	_, err = svc.UpdateStatus(context.Background(), "o2", StatusCancelled)
	require.ErrorIs(t, err, ErrTransition)
	require.NotContains(t, repo.updated, "o2")
}
