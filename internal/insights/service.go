package insights

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/clothmarket/clothmarket/internal/catalog"
	"github.com/clothmarket/clothmarket/internal/orders"
)

// ProductSource supplies the product snapshot analytics run against.
type ProductSource interface {
	List(ctx context.Context, f catalog.ListFilter) ([]catalog.Product, error)
}

// OrderSource supplies the order history snapshot.
type OrderSource interface {
	ListAll(ctx context.Context) ([]orders.Order, error)
}

type Service struct {
	products ProductSource
	orders   OrderSource
	cache    *Cache
	now      func() time.Time
}

func NewService(products ProductSource, orderSource OrderSource, cache *Cache) *Service {
	return &Service{products: products, orders: orderSource, cache: cache, now: time.Now}
}

type snapshot struct {
	products []catalog.Product
	orders   []orders.Order
}

// loadSnapshot materialises both collections concurrently. Every
// analytics read works on one coherent pair.
func (s *Service) loadSnapshot(ctx context.Context) (snapshot, error) {
	var snap snapshot
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := s.products.List(ctx, catalog.ListFilter{})
		if err != nil {
			return fmt.Errorf("insights: load products: %w", err)
		}
		snap.products = list
		return nil
	})
	g.Go(func() error {
		list, err := s.orders.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("insights: load orders: %w", err)
		}
		snap.orders = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

func (s *Service) Daily(ctx context.Context, day string) (DailySummary, error) {
	if day == "" {
		day = s.now().UTC().Format(dayLayout)
	}
	if _, err := time.Parse(dayLayout, day); err != nil {
		return DailySummary{}, fmt.Errorf("insights: invalid day %q: %w", day, err)
	}

	key, err := s.cache.BuildKey(ctx, keyDaily(day))
	if err != nil {
		return DailySummary{}, err
	}
	var out DailySummary
	err = s.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (any, error) {
		snap, err := s.loadSnapshot(ctx)
		if err != nil {
			return nil, err
		}
		return ComputeDailySummary(snap.orders, Index(snap.products), day), nil
	})
	return out, err
}

func (s *Service) MonthlyPnL(ctx context.Context) ([]MonthlyEntry, error) {
	key, err := s.cache.BuildKey(ctx, keyMonthlyPnL())
	if err != nil {
		return nil, err
	}
	var out []MonthlyEntry
	err = s.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (any, error) {
		snap, err := s.loadSnapshot(ctx)
		if err != nil {
			return nil, err
		}
		return ComputeMonthlyPnL(snap.orders, Index(snap.products)), nil
	})
	return out, err
}

func (s *Service) Categories(ctx context.Context) ([]CategoryStat, error) {
	key, err := s.cache.BuildKey(ctx, keyCategories())
	if err != nil {
		return nil, err
	}
	var out []CategoryStat
	err = s.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (any, error) {
		snap, err := s.loadSnapshot(ctx)
		if err != nil {
			return nil, err
		}
		return ComputeCategoryPerformance(snap.orders, Index(snap.products)), nil
	})
	return out, err
}

func (s *Service) Opportunities(ctx context.Context, limit int) ([]Opportunity, error) {
	if limit <= 0 {
		limit = DefaultOpportunityLimit
	}
	key, err := s.cache.BuildKey(ctx, keyOpportunities(limit))
	if err != nil {
		return nil, err
	}
	var out []Opportunity
	err = s.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (any, error) {
		list, err := s.products.List(ctx, catalog.ListFilter{})
		if err != nil {
			return nil, fmt.Errorf("insights: load products: %w", err)
		}
		return ComputeTopArbitrage(list, limit), nil
	})
	return out, err
}

// Simulate is a pure pass-through; nothing here touches storage.
func (s *Service) Simulate(in SimulateFeeInputs) FeeSimulation {
	return SimulateFee(in)
}

// Warmup precomputes the heavier aggregates so the first dashboard
// hit after an invalidation is served from cache.
func (s *Service) Warmup(ctx context.Context) error {
	if _, err := s.MonthlyPnL(ctx); err != nil {
		return err
	}
	if _, err := s.Categories(ctx); err != nil {
		return err
	}
	if _, err := s.Daily(ctx, ""); err != nil {
		return err
	}
	_, err := s.Opportunities(ctx, DefaultOpportunityLimit)
	return err
}
