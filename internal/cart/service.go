package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/clothmarket/clothmarket/internal/catalog"
)

// ProductGetter resolves the live product a cart mutation refers to.
type ProductGetter interface {
	Get(ctx context.Context, id string) (catalog.Product, error)
}

type Service struct {
	store    Store
	products ProductGetter
}

func NewService(store Store, products ProductGetter) *Service {
	return &Service{store: store, products: products}
}

func (s *Service) Get(ctx context.Context, key string) (Cart, error) {
	return s.store.Load(ctx, key)
}

// Add puts one more unit of the product into the cart at its current
// effective price. A rejected add leaves the stored cart untouched.
func (s *Service) Add(ctx context.Context, key, productID string) (Cart, error) {
	c, err := s.store.Load(ctx, key)
	if err != nil {
		return Cart{}, err
	}
	p, err := s.products.Get(ctx, productID)
	if err != nil {
		return c, fmt.Errorf("cart: add: %w", err)
	}

	stock := p.Stock
	snap := Snapshot{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.EffectivePrice(),
		ImageURL:  p.ImageURL,
		Stock:     &stock,
	}
	if err := c.Add(snap); err != nil {
		return c, err
	}
	if err := s.store.Save(ctx, key, c); err != nil {
		return c, err
	}
	return c, nil
}

// SetQuantity applies the requested quantity against the line's stored
// stock ceiling. A clamped result is persisted before the error is
// reported so the caller sees the cart the customer ends up with.
func (s *Service) SetQuantity(ctx context.Context, key, productID string, quantity int) (Cart, error) {
	c, err := s.store.Load(ctx, key)
	if err != nil {
		return Cart{}, err
	}
	setErr := c.SetQuantity(productID, quantity)
	if setErr != nil && !errors.Is(setErr, ErrStockExceeded) {
		return c, setErr
	}
	if err := s.store.Save(ctx, key, c); err != nil {
		return c, err
	}
	return c, setErr
}

func (s *Service) Remove(ctx context.Context, key, productID string) (Cart, error) {
	c, err := s.store.Load(ctx, key)
	if err != nil {
		return Cart{}, err
	}
	c.Remove(productID)
	if err := s.store.Save(ctx, key, c); err != nil {
		return c, err
	}
	return c, nil
}

func (s *Service) Clear(ctx context.Context, key string) error {
	return s.store.Delete(ctx, key)
}
