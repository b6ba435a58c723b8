package catalog

import (
	"strconv"
	"strings"
)

// ParseLabels splits a comma-separated label string into an ordered list of
// trimmed, non-empty labels.
func ParseLabels(raw string) []string {
	parts := strings.Split(raw, ",")
	labels := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			labels = append(labels, trimmed)
		}
	}
	return labels
}

// GenerateVariants derives the variant matrix for the given size and color
// axes, in size-major order. Stock counts of existing (size, color) pairs are
// preserved; new pairs start at zero; pairs that no longer apply are dropped.
// A missing axis is keyed with the AxisNone sentinel. When both axes are
// empty the existing variants are returned unchanged.
//
// The second return value is the recomputed aggregate stock. Callers must
// store both values together so the product stock never goes stale relative
// to its variants.
func GenerateVariants(sizes, colors []string, existing []Variant) ([]Variant, int) {
	if len(sizes) == 0 && len(colors) == 0 {
		return existing, TotalStock(existing)
	}

	var variants []Variant
	switch {
	case len(sizes) > 0 && len(colors) > 0:
		variants = make([]Variant, 0, len(sizes)*len(colors))
		for _, size := range sizes {
			for _, color := range colors {
				variants = append(variants, carryStock(existing, size, color))
			}
		}
	case len(sizes) > 0:
		variants = make([]Variant, 0, len(sizes))
		for _, size := range sizes {
			variants = append(variants, carryStock(existing, size, AxisNone))
		}
	default:
		variants = make([]Variant, 0, len(colors))
		for _, color := range colors {
			variants = append(variants, carryStock(existing, AxisNone, color))
		}
	}

	return variants, TotalStock(variants)
}

// SetVariantStock replaces the stock of the variant at index with the parsed
// value, clamped to zero on negative or malformed input, and returns the
// recomputed aggregate stock. The index must be in range; an out-of-range
// index is a caller bug and panics.
func SetVariantStock(variants []Variant, index int, raw string) int {
	stock, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || stock < 0 {
		stock = 0
	}
	variants[index].Stock = stock
	return TotalStock(variants)
}

// TotalStock sums the stock over all variants.
func TotalStock(variants []Variant) int {
	total := 0
	for _, v := range variants {
		total += v.Stock
	}
	return total
}

func carryStock(existing []Variant, size, color string) Variant {
	for _, v := range existing {
		if v.Size == size && v.Color == color {
			return v
		}
	}
	return Variant{Size: size, Color: color}
}
