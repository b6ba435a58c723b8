package flashsale

import (
	"context"
	"time"

	"github.com/clothmarket/clothmarket/internal/catalog"
)

// ProductSource lists products with an open flash sale window.
type ProductSource interface {
	ListFlashSale(ctx context.Context, now time.Time) ([]catalog.Product, error)
	ClearExpiredFlashSales(ctx context.Context, now time.Time) (int64, error)
}

// ActiveSet is the curated flash sale view: the active products, the shared
// countdown target and its current decomposition.
type ActiveSet struct {
	Products  []catalog.Product `json:"products"`
	EndsAt    *time.Time        `json:"ends_at,omitempty"`
	Countdown *Countdown        `json:"countdown,omitempty"`
}

// Service resolves the active flash sale set.
type Service struct {
	products ProductSource
	now      func() time.Time
}

// NewService builds a Service. A nil clock falls back to time.Now.
func NewService(products ProductSource, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{products: products, now: now}
}

// ActiveSet returns the currently active flash sale products with the
// nearest shared expiry. Expired windows are filtered even when the source
// returns them, so a stale read never resurrects a finished sale.
func (s *Service) ActiveSet(ctx context.Context) (ActiveSet, error) {
	now := s.now()
	listed, err := s.products.ListFlashSale(ctx, now)
	if err != nil {
		return ActiveSet{}, err
	}

	active := make([]catalog.Product, 0, len(listed))
	for _, p := range listed {
		if IsActive(p, now) {
			active = append(active, p)
		}
	}

	set := ActiveSet{Products: active}
	if nearest := NearestExpiry(active, now); nearest != nil {
		set.EndsAt = nearest
		if cd, ok := Remaining(*nearest, now); ok {
			set.Countdown = &cd
		}
	}
	return set, nil
}

// Sweep clears expired windows so the catalog stops advertising them.
func (s *Service) Sweep(ctx context.Context) (int64, error) {
	return s.products.ClearExpiredFlashSales(ctx, s.now())
}
