package catalog

import "time"

type CreateProductRequest struct {
	Name               string     `json:"name" validate:"required,max=200"`
	Description        string     `json:"description" validate:"max=5000"`
	Price              float64    `json:"price" validate:"gte=0"`
	SalePrice          *float64   `json:"sale_price,omitempty" validate:"omitempty,gte=0"`
	DiscountPercentage *int       `json:"discount_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	Category           string     `json:"category" validate:"required,max=100"`
	Subcategory        string     `json:"subcategory" validate:"max=100"`
	Brand              string     `json:"brand" validate:"max=100"`
	ImageURL           string     `json:"image_url" validate:"omitempty,url"`
	Stock              int        `json:"stock" validate:"gte=0"`
	Sizes              string     `json:"sizes"`
	Colors             string     `json:"colors"`
	COGS               float64    `json:"cogs" validate:"gte=0"`
	MarketingCost      float64    `json:"marketing_cost" validate:"gte=0"`
	ShippingCost       float64    `json:"shipping_cost" validate:"gte=0"`
	FlashSaleStart     *time.Time `json:"flash_sale_start,omitempty"`
	FlashSaleEnd       *time.Time `json:"flash_sale_end,omitempty"`
	IsFeatured         bool       `json:"is_featured"`
	IsPopular          bool       `json:"is_popular"`
	SellerID           string     `json:"seller_id" validate:"required"`
}

type UpdateProductRequest struct {
	Name               *string    `json:"name,omitempty" validate:"omitempty,max=200"`
	Description        *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price              *float64   `json:"price,omitempty" validate:"omitempty,gte=0"`
	SalePrice          *float64   `json:"sale_price,omitempty" validate:"omitempty,gte=0"`
	DiscountPercentage *int       `json:"discount_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	Category           *string    `json:"category,omitempty" validate:"omitempty,max=100"`
	Subcategory        *string    `json:"subcategory,omitempty" validate:"omitempty,max=100"`
	Brand              *string    `json:"brand,omitempty" validate:"omitempty,max=100"`
	ImageURL           *string    `json:"image_url,omitempty" validate:"omitempty,url"`
	Stock              *int       `json:"stock,omitempty" validate:"omitempty,gte=0"`
	COGS               *float64   `json:"cogs,omitempty" validate:"omitempty,gte=0"`
	MarketingCost      *float64   `json:"marketing_cost,omitempty" validate:"omitempty,gte=0"`
	ShippingCost       *float64   `json:"shipping_cost,omitempty" validate:"omitempty,gte=0"`
	FlashSaleStart     *time.Time `json:"flash_sale_start,omitempty"`
	FlashSaleEnd       *time.Time `json:"flash_sale_end,omitempty"`
	IsFeatured         *bool      `json:"is_featured,omitempty"`
	IsPopular          *bool      `json:"is_popular,omitempty"`
}

// ApplyDiscountRequest sets the displayed discount percentage. Zero is the
// sentinel for removing the sale badge.
type ApplyDiscountRequest struct {
	Percentage int `json:"percentage" validate:"gte=0,lte=100"`
}

// UpdateVariantsRequest regenerates the variant matrix from comma-separated
// axis labels, preserving stock for surviving (size, color) pairs.
type UpdateVariantsRequest struct {
	Sizes  string `json:"sizes"`
	Colors string `json:"colors"`
}

// SetVariantStockRequest replaces a single variant's stock count. Stock is a
// raw form value; malformed input coerces to zero.
type SetVariantStockRequest struct {
	Index int    `json:"index" validate:"gte=0"`
	Stock string `json:"stock"`
}

// ListFilter narrows product listings.
type ListFilter struct {
	Category string
	SellerID string
	Search   string
	OnSale   *bool
	Featured *bool
	Popular  *bool
	Limit    int
	Offset   int
}
