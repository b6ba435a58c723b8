package catalog

import "testing"

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestEffectivePrice(t *testing.T) {
	p := Product{Price: 100, SalePrice: floatPtr(80)}
	if got := p.EffectivePrice(); got != 80 {
		t.Fatalf("expected 80 got %.2f", got)
	}
	if !p.OnSale() {
		t.Fatalf("expected product on sale")
	}

	// A sale price at or above base is ignored.
	p = Product{Price: 100, SalePrice: floatPtr(120)}
	if got := p.EffectivePrice(); got != 100 {
		t.Fatalf("expected 100 got %.2f", got)
	}
	if p.OnSale() {
		t.Fatalf("expected product not on sale")
	}

	p = Product{Price: 100}
	if got := p.EffectivePrice(); got != 100 {
		t.Fatalf("expected base price got %.2f", got)
	}
}

func TestDiscountLabel(t *testing.T) {
	cases := []struct {
		name    string
		product Product
		want    string
	}{
		{"explicit percentage", Product{Price: 100, DiscountPercentage: intPtr(25)}, "-25% OFF"},
		{"sale price only", Product{Price: 100, SalePrice: floatPtr(80)}, "SALE"},
		{"percentage wins over generic badge", Product{Price: 100, SalePrice: floatPtr(80), DiscountPercentage: intPtr(20)}, "-20% OFF"},
		{"zero percentage falls back", Product{Price: 100, SalePrice: floatPtr(80), DiscountPercentage: intPtr(0)}, "SALE"},
		{"no sale", Product{Price: 100}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.product.DiscountLabel(); got != tc.want {
				t.Fatalf("expected %q got %q", tc.want, got)
			}
		})
	}
}

func TestUnitCost(t *testing.T) {
	p := Product{COGS: 10, MarketingCost: 2.5, ShippingCost: 1.5}
	if got := p.UnitCost(); got != 14 {
		t.Fatalf("expected 14 got %.2f", got)
	}
}
