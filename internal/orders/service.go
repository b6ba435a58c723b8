package orders

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/clothmarket/clothmarket/internal/cart"
)

// CartSource provides the cart an order is checked out from.
type CartSource interface {
	Get(ctx context.Context, key string) (cart.Cart, error)
	Clear(ctx context.Context, key string) error
}

// CacheBumper invalidates derived analytics after order writes.
type CacheBumper interface {
	Bump(ctx context.Context) error
}

type Service struct {
	logger *slog.Logger
	repo   Repository
	carts  CartSource
	bumper CacheBumper
	now    func() time.Time
}

func NewService(logger *slog.Logger, repo Repository, carts CartSource, bumper CacheBumper) *Service {
	return &Service{logger: logger, repo: repo, carts: carts, bumper: bumper, now: time.Now}
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Order, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (Order, error) {
	return s.repo.Get(ctx, id)
}

// Checkout turns the cart under cartKey into a pending order. Line
// prices are the prices captured when each item entered the cart, so
// later catalog edits never change what the customer was charged.
func (s *Service) Checkout(ctx context.Context, cartKey string, req CheckoutRequest) (Order, error) {
	c, err := s.carts.Get(ctx, cartKey)
	if err != nil {
		return Order{}, err
	}
	if len(c.Items) == 0 {
		return Order{}, ErrEmptyCart
	}

	now := s.now().UTC()
	o := Order{
		ID:           uuid.NewString(),
		UserID:       req.UserID,
		CustomerName: req.CustomerName,
		Items:        make([]Item, 0, len(c.Items)),
		TotalPrice:   c.Total(),
		Status:       StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, it := range c.Items {
		o.Items = append(o.Items, Item{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			ImageURL:  it.ImageURL,
		})
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return Order{}, err
	}
	if err := s.carts.Clear(ctx, cartKey); err != nil {
		s.logger.Warn("cart not cleared after checkout", "cart_key", cartKey, "error", err)
	}
	s.bump(ctx)
	return o, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, next Status) (Order, error) {
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return Order{}, err
	}
	if err := ValidateTransition(o.Status, next); err != nil {
		return Order{}, err
	}
	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return Order{}, fmt.Errorf("orders: %s: %w", id, err)
	}
	o.Status = next
	o.UpdatedAt = s.now().UTC()
	s.bump(ctx)
	return o, nil
}

func (s *Service) bump(ctx context.Context) {
	if s.bumper == nil {
		return
	}
	if err := s.bumper.Bump(ctx); err != nil {
		s.logger.Warn("analytics cache bump failed", "error", err)
	}
}
