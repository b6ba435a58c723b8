package flashsale

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clothmarket/clothmarket/internal/catalog"
)

type stubSource struct {
	products []catalog.Product
	cleared  int64
	sweeps   int
}

func (s *stubSource) ListFlashSale(ctx context.Context, now time.Time) ([]catalog.Product, error) {
	return s.products, nil
}

func (s *stubSource) ClearExpiredFlashSales(ctx context.Context, now time.Time) (int64, error) {
	s.sweeps++
	return s.cleared, nil
}

func TestActiveSetFiltersAndPicksNearestExpiry(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	src := &stubSource{products: []catalog.Product{
		{ID: "a", FlashSaleEnd: timePtr(now.Add(2 * time.Hour))},
		{ID: "b", FlashSaleEnd: timePtr(now.Add(30 * time.Minute))},
		{ID: "stale", FlashSaleEnd: timePtr(now.Add(-time.Minute))},
	}}
	svc := NewService(src, func() time.Time { return now })

	set, err := svc.ActiveSet(context.Background())
	require.NoError(t, err)
	require.Len(t, set.Products, 2)
	require.NotNil(t, set.EndsAt)
	require.True(t, set.EndsAt.Equal(now.Add(30*time.Minute)))
	require.NotNil(t, set.Countdown)
	require.Equal(t, "30", set.Countdown.Minutes)
}

func TestActiveSetEmpty(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc := NewService(&stubSource{}, func() time.Time { return now })

	set, err := svc.ActiveSet(context.Background())
	require.NoError(t, err)
	require.Empty(t, set.Products)
	require.Nil(t, set.EndsAt)
	require.Nil(t, set.Countdown)
}

func TestSweep(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	src := &stubSource{cleared: 3}
	svc := NewService(src, func() time.Time { return now })

	cleared, err := svc.Sweep(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 3, cleared)
	require.Equal(t, 1, src.sweeps)
}
