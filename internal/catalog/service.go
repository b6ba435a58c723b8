package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrFlashWindow indicates an inverted flash sale window.
var ErrFlashWindow = errors.New("catalog: flash sale end must be after start")

// ErrVariantIndex indicates a variant index outside the current matrix. This
// is a caller contract violation, not a user-facing condition.
var ErrVariantIndex = errors.New("catalog: variant index out of range")

// CacheBumper invalidates derived caches after catalog mutations.
type CacheBumper interface {
	Bump(ctx context.Context) error
}

// Service coordinates catalog operations.
type Service struct {
	repo   Repository
	bumper CacheBumper
}

// NewService builds a Service. The bumper may be nil.
func NewService(repo Repository, bumper CacheBumper) *Service {
	return &Service{repo: repo, bumper: bumper}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Product, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	if err := validateFlashWindow(req.FlashSaleStart, req.FlashSaleEnd); err != nil {
		return Product{}, err
	}

	p := Product{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		Description:        req.Description,
		Price:              req.Price,
		SalePrice:          req.SalePrice,
		DiscountPercentage: req.DiscountPercentage,
		Category:           req.Category,
		Subcategory:        req.Subcategory,
		Brand:              req.Brand,
		ImageURL:           req.ImageURL,
		Stock:              req.Stock,
		Sizes:              ParseLabels(req.Sizes),
		Colors:             ParseLabels(req.Colors),
		COGS:               req.COGS,
		MarketingCost:      req.MarketingCost,
		ShippingCost:       req.ShippingCost,
		FlashSaleStart:     req.FlashSaleStart,
		FlashSaleEnd:       req.FlashSaleEnd,
		IsFeatured:         req.IsFeatured,
		IsPopular:          req.IsPopular,
		SellerID:           req.SellerID,
	}

	// Axis labels imply variant tracking; the aggregate stock then derives
	// from the matrix instead of the plain stock field.
	if len(p.Sizes) > 0 || len(p.Colors) > 0 {
		p.Variants, p.Stock = GenerateVariants(p.Sizes, p.Colors, nil)
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return Product{}, err
	}
	s.bump(ctx)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateProductRequest) (Product, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return Product{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.SalePrice != nil {
		p.SalePrice = req.SalePrice
	}
	if req.DiscountPercentage != nil {
		p.DiscountPercentage = req.DiscountPercentage
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Subcategory != nil {
		p.Subcategory = *req.Subcategory
	}
	if req.Brand != nil {
		p.Brand = *req.Brand
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}
	if req.Stock != nil {
		if len(p.Variants) > 0 {
			return Product{}, fmt.Errorf("catalog: stock is derived from variants for %s", id)
		}
		p.Stock = *req.Stock
	}
	if req.COGS != nil {
		p.COGS = *req.COGS
	}
	if req.MarketingCost != nil {
		p.MarketingCost = *req.MarketingCost
	}
	if req.ShippingCost != nil {
		p.ShippingCost = *req.ShippingCost
	}
	if req.FlashSaleStart != nil {
		p.FlashSaleStart = req.FlashSaleStart
	}
	if req.FlashSaleEnd != nil {
		p.FlashSaleEnd = req.FlashSaleEnd
	}
	if req.IsFeatured != nil {
		p.IsFeatured = *req.IsFeatured
	}
	if req.IsPopular != nil {
		p.IsPopular = *req.IsPopular
	}

	if err := validateFlashWindow(p.FlashSaleStart, p.FlashSaleEnd); err != nil {
		return Product{}, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return Product{}, err
	}
	s.bump(ctx)
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.bump(ctx)
	return nil
}

// ApplyDiscount sets the displayed discount percentage. Zero removes the
// badge. The sale price is intentionally left untouched; the two indicators
// are managed independently by admins.
func (s *Service) ApplyDiscount(ctx context.Context, id string, percentage int) error {
	if percentage < 0 || percentage > 100 {
		return fmt.Errorf("catalog: discount percentage %d out of range", percentage)
	}
	if err := s.repo.SetDiscount(ctx, id, &percentage); err != nil {
		return err
	}
	s.bump(ctx)
	return nil
}

// RemoveDiscount is the explicit "remove sale" action. It delegates to
// ApplyDiscount with the zero sentinel so the badge disappears immediately.
func (s *Service) RemoveDiscount(ctx context.Context, id string) error {
	return s.ApplyDiscount(ctx, id, 0)
}

// GenerateVariantMatrix rebuilds the variant matrix from the submitted axis
// labels, carrying over stock for pairs that survive, and persists the matrix
// together with the recomputed aggregate stock.
func (s *Service) GenerateVariantMatrix(ctx context.Context, id string, req UpdateVariantsRequest) (Product, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return Product{}, err
	}

	p.Sizes = ParseLabels(req.Sizes)
	p.Colors = ParseLabels(req.Colors)
	p.Variants, p.Stock = GenerateVariants(p.Sizes, p.Colors, p.Variants)

	if err := s.repo.Update(ctx, p); err != nil {
		return Product{}, err
	}
	s.bump(ctx)
	return p, nil
}

// SetVariantStock replaces one variant's stock count and persists the matrix
// with the recomputed aggregate.
func (s *Service) SetVariantStock(ctx context.Context, id string, req SetVariantStockRequest) (Product, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return Product{}, err
	}
	if req.Index < 0 || req.Index >= len(p.Variants) {
		return Product{}, ErrVariantIndex
	}

	p.Stock = SetVariantStock(p.Variants, req.Index, req.Stock)

	if err := s.repo.SaveVariants(ctx, id, p.Variants, p.Stock); err != nil {
		return Product{}, err
	}
	s.bump(ctx)
	return p, nil
}

func (s *Service) bump(ctx context.Context) {
	if s.bumper != nil {
		_ = s.bumper.Bump(ctx)
	}
}

func validateFlashWindow(start, end *time.Time) error {
	if start != nil && end != nil && !end.After(*start) {
		return ErrFlashWindow
	}
	return nil
}
