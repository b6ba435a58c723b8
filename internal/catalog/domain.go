package catalog

import (
	"errors"
	"time"
)

// AxisNone is the sentinel label for the unused variant axis. Every variant
// contributes exactly one row to the stock total, so a single-axis product
// still carries both keys.
const AxisNone = "N/A"

// Variant is a stock-tracked (size, color) sub-unit of a product. Identity is
// the pair itself; regenerating the matrix preserves stock for pairs that
// survive the edit.
type Variant struct {
	Size  string `json:"size"`
	Color string `json:"color"`
	Stock int    `json:"stock"`
}

// Product is a storefront catalog entry. Cost fields are admin-only inputs
// for profit attribution and are never surfaced to buyers.
type Product struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description,omitempty"`
	Price              float64    `json:"price"`
	SalePrice          *float64   `json:"sale_price,omitempty"`
	DiscountPercentage *int       `json:"discount_percentage,omitempty"`
	Category           string     `json:"category"`
	Subcategory        string     `json:"subcategory,omitempty"`
	Brand              string     `json:"brand,omitempty"`
	ImageURL           string     `json:"image_url,omitempty"`
	Stock              int        `json:"stock"`
	Sizes              []string   `json:"sizes,omitempty"`
	Colors             []string   `json:"colors,omitempty"`
	Variants           []Variant  `json:"variants,omitempty"`
	COGS               float64    `json:"cogs"`
	MarketingCost      float64    `json:"marketing_cost"`
	ShippingCost       float64    `json:"shipping_cost"`
	FlashSaleStart     *time.Time `json:"flash_sale_start,omitempty"`
	FlashSaleEnd       *time.Time `json:"flash_sale_end,omitempty"`
	IsFeatured         bool       `json:"is_featured"`
	IsPopular          bool       `json:"is_popular"`
	SellerID           string     `json:"seller_id"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// UnitCost is the fully loaded per-unit cost used for profit attribution.
func (p Product) UnitCost() float64 {
	return p.COGS + p.MarketingCost + p.ShippingCost
}

var (
	// ErrNotFound indicates the product does not exist.
	ErrNotFound = errors.New("catalog: product not found")
	// ErrDuplicate indicates a uniqueness conflict on insert.
	ErrDuplicate = errors.New("catalog: duplicate product")
)
