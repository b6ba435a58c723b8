package flashsale

import (
	"testing"
	"time"

	"github.com/clothmarket/clothmarket/internal/catalog"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestIsActiveBoundary(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	p := catalog.Product{FlashSaleEnd: timePtr(now.Add(time.Second))}
	if !IsActive(p, now) {
		t.Fatalf("window ending after now should be active")
	}

	p = catalog.Product{FlashSaleEnd: timePtr(now.Add(-time.Second))}
	if IsActive(p, now) {
		t.Fatalf("window ended a second ago should be inactive")
	}

	p = catalog.Product{FlashSaleEnd: timePtr(now)}
	if IsActive(p, now) {
		t.Fatalf("window ending exactly now should be inactive")
	}

	if IsActive(catalog.Product{}, now) {
		t.Fatalf("product without a window should be inactive")
	}
}

func TestIsActiveIgnoresFutureStart(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	p := catalog.Product{
		FlashSaleStart: timePtr(now.Add(time.Hour)),
		FlashSaleEnd:   timePtr(now.Add(2 * time.Hour)),
	}
	// Only the end boundary gates activity.
	if !IsActive(p, now) {
		t.Fatalf("future start must not gate activity")
	}
	if !StartsInFuture(p, now) {
		t.Fatalf("expected future start to be reported")
	}
}

func TestNearestExpiry(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	products := []catalog.Product{
		{FlashSaleEnd: timePtr(now.Add(3 * time.Hour))},
		{FlashSaleEnd: timePtr(now.Add(time.Hour))},
		{FlashSaleEnd: timePtr(now.Add(-time.Hour))}, // expired, ignored
		{},
	}

	nearest := NearestExpiry(products, now)
	if nearest == nil {
		t.Fatalf("expected an expiry")
	}
	if !nearest.Equal(now.Add(time.Hour)) {
		t.Fatalf("expected nearest expiry in one hour, got %v", nearest)
	}

	if NearestExpiry(nil, now) != nil {
		t.Fatalf("expected nil for empty set")
	}
	if NearestExpiry(products[2:], now) != nil {
		t.Fatalf("expected nil when nothing is active")
	}
}

func TestRemainingDecomposition(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	end := now.Add(49*time.Hour + 5*time.Minute + 9*time.Second)

	cd, ok := Remaining(end, now)
	if !ok {
		t.Fatalf("expected running countdown")
	}
	if cd.Days != "02" || cd.Hours != "01" || cd.Minutes != "05" || cd.Seconds != "09" {
		t.Fatalf("unexpected decomposition %+v", cd)
	}
}

func TestRemainingExpired(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	if _, ok := Remaining(now, now); ok {
		t.Fatalf("zero remaining must report expired")
	}
	if _, ok := Remaining(now.Add(-time.Minute), now); ok {
		t.Fatalf("past end must report expired")
	}
}

func TestRemainingIdempotent(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	end := now.Add(90 * time.Minute)

	first, ok1 := Remaining(end, now)
	second, ok2 := Remaining(end, now)
	if !ok1 || !ok2 || first != second {
		t.Fatalf("same now must yield identical countdowns: %+v vs %+v", first, second)
	}
}
