package catalog

import "fmt"

// OnSale reports whether the product currently sells at its sale price.
// Only the sale price relative to the base price decides this; the discount
// percentage is a display hint and does not gate the state.
func (p Product) OnSale() bool {
	return p.SalePrice != nil && *p.SalePrice < p.Price
}

// EffectivePrice is the price a buyer is charged right now: the sale price
// when it undercuts the base price, the base price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.OnSale() {
		return *p.SalePrice
	}
	return p.Price
}

// DiscountLabel renders the sale badge. An explicit percentage wins over the
// generic badge; products not on sale and without a percentage get no badge.
// The two sale indicators are deliberately unsynchronized: admins manage the
// percentage and the sale price independently.
func (p Product) DiscountLabel() string {
	if p.DiscountPercentage != nil && *p.DiscountPercentage > 0 {
		return fmt.Sprintf("-%d%% OFF", *p.DiscountPercentage)
	}
	if p.OnSale() {
		return "SALE"
	}
	return ""
}
