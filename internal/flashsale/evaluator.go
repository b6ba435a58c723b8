// Package flashsale evaluates time-windowed promotions across the catalog.
package flashsale

import (
	"time"

	"github.com/clothmarket/clothmarket/internal/catalog"
)

// IsActive reports whether the product's flash sale window is currently open.
// Only the end boundary gates activity: a product whose start time has not
// arrived yet still counts as in-window. Product owners have not confirmed
// whether the start boundary should gate too, so the observed storefront
// behavior is kept.
func IsActive(p catalog.Product, now time.Time) bool {
	return p.FlashSaleEnd != nil && p.FlashSaleEnd.After(now)
}

// StartsInFuture reports whether an active window has a start time that has
// not arrived yet, so callers can surface the anomaly without changing it.
func StartsInFuture(p catalog.Product, now time.Time) bool {
	return p.FlashSaleStart != nil && p.FlashSaleStart.After(now)
}

// NearestExpiry returns the earliest flash sale end among currently active
// products, or nil when none are active. It drives the single shared
// countdown over a curated flash sale set.
func NearestExpiry(products []catalog.Product, now time.Time) *time.Time {
	var nearest *time.Time
	for _, p := range products {
		if !IsActive(p, now) {
			continue
		}
		if nearest == nil || p.FlashSaleEnd.Before(*nearest) {
			end := *p.FlashSaleEnd
			nearest = &end
		}
	}
	return nearest
}
