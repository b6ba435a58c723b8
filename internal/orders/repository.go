package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clothmarket/clothmarket/internal/platform/db"
)

type ListFilter struct {
	UserID string
	Status *Status
	Since  *time.Time
	Until  *time.Time
	Limit  int
	Offset int
}

type Repository interface {
	List(ctx context.Context, f ListFilter) ([]Order, error)
	Get(ctx context.Context, id string) (Order, error)
	Create(ctx context.Context, o Order) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	ListSince(ctx context.Context, since time.Time) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
}

type dbtx interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

type pgxRepository struct {
	db   dbtx
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{db: pool, pool: pool}
}

const orderColumns = `id, user_id, customer_name, items, total_price, status, created_at, updated_at`

func (r *pgxRepository) List(ctx context.Context, f ListFilter) ([]Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	var conditions []string
	var args []any
	argPos := 1

	if f.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argPos))
		args = append(args, f.UserID)
		argPos++
	}
	if f.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, string(*f.Status))
		argPos++
	}
	if f.Since != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argPos))
		args = append(args, *f.Since)
		argPos++
	}
	if f.Until != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", argPos))
		args = append(args, *f.Until)
		argPos++
	}

	for i, c := range conditions {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY created_at DESC"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("orders: list: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *pgxRepository) Get(ctx context.Context, id string) (Order, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, fmt.Errorf("orders: get: %w", err)
	}
	return o, nil
}

func (r *pgxRepository) Create(ctx context.Context, o Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("orders: encode items: %w", err)
	}
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO orders (id, user_id, customer_name, items, total_price, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			o.ID, o.UserID, o.CustomerName, items, o.TotalPrice, string(o.Status), o.CreatedAt, o.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("orders: create: %w", err)
		}
		// Reserve stock line by line inside the same transaction.
		for _, it := range o.Items {
			tag, err := tx.Exec(ctx, `
				UPDATE products SET stock = stock - $1, updated_at = now()
				WHERE id = $2 AND stock >= $1`,
				it.Quantity, it.ProductID,
			)
			if err != nil {
				return fmt.Errorf("orders: reserve stock: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("orders: reserve stock for %s: %w", it.ProductID, ErrStockShort)
			}
		}
		return nil
	})
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET status = $1, updated_at = now() WHERE id = $2`,
		string(status), id,
	)
	if err != nil {
		return fmt.Errorf("orders: update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ListSince(ctx context.Context, since time.Time) ([]Order, error) {
	return r.List(ctx, ListFilter{Since: &since})
}

func (r *pgxRepository) ListAll(ctx context.Context) ([]Order, error) {
	return r.List(ctx, ListFilter{})
}

func scanOrders(rows pgx.Rows) ([]Order, error) {
	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("orders: scan: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func scanOrder(row pgx.Row) (Order, error) {
	var o Order
	var items []byte
	var status string
	if err := row.Scan(&o.ID, &o.UserID, &o.CustomerName, &items, &o.TotalPrice, &status, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return Order{}, err
	}
	o.Status = Status(status)
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return Order{}, fmt.Errorf("decode items: %w", err)
		}
	}
	return o, nil
}
