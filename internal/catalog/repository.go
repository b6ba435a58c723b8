package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository abstracts product persistence.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Product, error)
	Get(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, p Product) (Product, error)
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id string) error
	SetDiscount(ctx context.Context, id string, percentage *int) error
	SaveVariants(ctx context.Context, id string, variants []Variant, stock int) error
	ListFlashSale(ctx context.Context, now time.Time) ([]Product, error)
	ClearExpiredFlashSales(ctx context.Context, now time.Time) (int64, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository builds a pgx-backed product repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const productColumns = `id, name, description, price, sale_price, discount_percentage,
category, subcategory, brand, image_url, stock, sizes, colors, variants,
cogs, marketing_cost, shipping_cost, flash_sale_start, flash_sale_end,
is_featured, is_popular, seller_id, created_at, updated_at`

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Product, error) {
	var conditions []string
	var args []any
	argPos := 1

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argPos))
		args = append(args, filter.Category)
		argPos++
	}
	if filter.SellerID != "" {
		conditions = append(conditions, fmt.Sprintf("seller_id = $%d", argPos))
		args = append(args, filter.SellerID)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if filter.OnSale != nil && *filter.OnSale {
		conditions = append(conditions, "sale_price IS NOT NULL AND sale_price < price")
	}
	if filter.Featured != nil {
		conditions = append(conditions, fmt.Sprintf("is_featured = $%d", argPos))
		args = append(args, *filter.Featured)
		argPos++
	}
	if filter.Popular != nil {
		conditions = append(conditions, fmt.Sprintf("is_popular = $%d", argPos))
		args = append(args, *filter.Popular)
		argPos++
	}

	query := "SELECT " + productColumns + " FROM products"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argPos)
		args = append(args, filter.Limit)
		argPos++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argPos)
		args = append(args, filter.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog: list products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *repository) Get(ctx context.Context, id string) (Product, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("catalog: get product: %w", err)
	}
	return p, nil
}

func (r *repository) Create(ctx context.Context, p Product) (Product, error) {
	variants, err := json.Marshal(p.Variants)
	if err != nil {
		return Product{}, fmt.Errorf("catalog: marshal variants: %w", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO products
(id, name, description, price, sale_price, discount_percentage, category, subcategory, brand, image_url,
 stock, sizes, colors, variants, cogs, marketing_cost, shipping_cost, flash_sale_start, flash_sale_end,
 is_featured, is_popular, seller_id, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,NOW(),NOW())`,
		p.ID, p.Name, p.Description, p.Price, p.SalePrice, p.DiscountPercentage,
		p.Category, p.Subcategory, p.Brand, p.ImageURL,
		p.Stock, p.Sizes, p.Colors, variants,
		p.COGS, p.MarketingCost, p.ShippingCost, p.FlashSaleStart, p.FlashSaleEnd,
		p.IsFeatured, p.IsPopular, p.SellerID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Product{}, ErrDuplicate
		}
		return Product{}, fmt.Errorf("catalog: insert product: %w", err)
	}
	return r.Get(ctx, p.ID)
}

func (r *repository) Update(ctx context.Context, p Product) error {
	variants, err := json.Marshal(p.Variants)
	if err != nil {
		return fmt.Errorf("catalog: marshal variants: %w", err)
	}
	tag, err := r.pool.Exec(ctx, `UPDATE products SET
name=$2, description=$3, price=$4, sale_price=$5, discount_percentage=$6,
category=$7, subcategory=$8, brand=$9, image_url=$10, stock=$11, sizes=$12, colors=$13, variants=$14,
cogs=$15, marketing_cost=$16, shipping_cost=$17, flash_sale_start=$18, flash_sale_end=$19,
is_featured=$20, is_popular=$21, updated_at=NOW()
WHERE id=$1`,
		p.ID, p.Name, p.Description, p.Price, p.SalePrice, p.DiscountPercentage,
		p.Category, p.Subcategory, p.Brand, p.ImageURL, p.Stock, p.Sizes, p.Colors, variants,
		p.COGS, p.MarketingCost, p.ShippingCost, p.FlashSaleStart, p.FlashSaleEnd,
		p.IsFeatured, p.IsPopular)
	if err != nil {
		return fmt.Errorf("catalog: update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("catalog: delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) SetDiscount(ctx context.Context, id string, percentage *int) error {
	tag, err := r.pool.Exec(ctx,
		"UPDATE products SET discount_percentage = $2, updated_at = NOW() WHERE id = $1", id, percentage)
	if err != nil {
		return fmt.Errorf("catalog: set discount: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) SaveVariants(ctx context.Context, id string, variants []Variant, stock int) error {
	payload, err := json.Marshal(variants)
	if err != nil {
		return fmt.Errorf("catalog: marshal variants: %w", err)
	}
	// Variants and the aggregate stock are written in one statement so the
	// stock invariant can never be observed stale.
	tag, err := r.pool.Exec(ctx,
		"UPDATE products SET variants = $2, stock = $3, updated_at = NOW() WHERE id = $1", id, payload, stock)
	if err != nil {
		return fmt.Errorf("catalog: save variants: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) ListFlashSale(ctx context.Context, now time.Time) ([]Product, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+productColumns+" FROM products WHERE flash_sale_end IS NOT NULL AND flash_sale_end > $1 ORDER BY flash_sale_end ASC", now)
	if err != nil {
		return nil, fmt.Errorf("catalog: list flash sale: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *repository) ClearExpiredFlashSales(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		"UPDATE products SET flash_sale_start = NULL, flash_sale_end = NULL, updated_at = NOW() WHERE flash_sale_end IS NOT NULL AND flash_sale_end <= $1", now)
	if err != nil {
		return 0, fmt.Errorf("catalog: clear expired flash sales: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanProducts(rows pgx.Rows) ([]Product, error) {
	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("catalog: scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	var variants []byte
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.SalePrice, &p.DiscountPercentage,
		&p.Category, &p.Subcategory, &p.Brand, &p.ImageURL, &p.Stock, &p.Sizes, &p.Colors, &variants,
		&p.COGS, &p.MarketingCost, &p.ShippingCost, &p.FlashSaleStart, &p.FlashSaleEnd,
		&p.IsFeatured, &p.IsPopular, &p.SellerID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return Product{}, err
	}
	if len(variants) > 0 {
		if err := json.Unmarshal(variants, &p.Variants); err != nil {
			return Product{}, fmt.Errorf("unmarshal variants: %w", err)
		}
	}
	return p, nil
}
