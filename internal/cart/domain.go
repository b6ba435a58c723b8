// Package cart holds the client-session shopping cart and its stock guard.
package cart

import "errors"

// ErrStockExceeded signals that a cart mutation ran into the product's stock
// ceiling. Add rejects outright; SetQuantity clamps and still reports it.
// The two policies are deliberately different and must stay that way.
var ErrStockExceeded = errors.New("cart: stock exceeded")

// Snapshot carries the product fields captured into a cart line at add time.
// A nil Stock means the ceiling is unknown, and unknown never blocks.
type Snapshot struct {
	ProductID string
	Name      string
	Price     float64
	ImageURL  string
	Stock     *int
}

// Item is one cart line: a product snapshot plus quantity. Price is the
// effective price at add time, not the live product price.
type Item struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url,omitempty"`
	Quantity  int     `json:"quantity"`
	Stock     *int    `json:"stock,omitempty"`
}

// Cart is the session-owned item collection. Persistence is last-write-wins
// through the Store; there is no cross-device reconciliation.
type Cart struct {
	Items []Item `json:"items"`
}

// Add inserts the product with quantity 1 or increments an existing line.
// When the increment would exceed the stock ceiling the cart is left
// untouched and ErrStockExceeded is returned. A successful increment also
// refreshes the stored ceiling so later stock changes are picked up lazily.
func (c *Cart) Add(p Snapshot) error {
	idx := c.find(p.ProductID)
	if idx < 0 {
		if p.Stock != nil && *p.Stock < 1 {
			return ErrStockExceeded
		}
		c.Items = append(c.Items, Item{
			ProductID: p.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			ImageURL:  p.ImageURL,
			Quantity:  1,
			Stock:     p.Stock,
		})
		return nil
	}

	if p.Stock != nil && c.Items[idx].Quantity+1 > *p.Stock {
		return ErrStockExceeded
	}
	c.Items[idx].Quantity++
	c.Items[idx].Stock = p.Stock
	return nil
}

// SetQuantity sets a line to an absolute quantity. Below one removes the
// line. Above the stored ceiling the line is clamped to exactly the ceiling
// and ErrStockExceeded is returned alongside the mutation (clamp-and-warn,
// unlike Add's reject-only policy). Unknown products are ignored.
func (c *Cart) SetQuantity(productID string, quantity int) error {
	if quantity < 1 {
		c.Remove(productID)
		return nil
	}

	idx := c.find(productID)
	if idx < 0 {
		return nil
	}

	if limit := c.Items[idx].Stock; limit != nil && quantity > *limit {
		c.Items[idx].Quantity = *limit
		return ErrStockExceeded
	}
	c.Items[idx].Quantity = quantity
	return nil
}

// Remove drops the line for the given product, if present.
func (c *Cart) Remove(productID string) {
	idx := c.find(productID)
	if idx < 0 {
		return
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Total sums price times quantity over all lines, at add-time prices.
func (c Cart) Total() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount sums the quantities over all lines.
func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c Cart) find(productID string) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
