package orders

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound   = errors.New("orders: not found")
	ErrEmptyCart  = errors.New("orders: cart is empty")
	ErrStockShort = errors.New("orders: insufficient stock")
	ErrTransition = errors.New("orders: invalid status transition")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Item is a line frozen at checkout time. Price is the effective
// price the customer saw, not the catalog price at read time.
type Item struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image_url,omitempty"`
}

type Order struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	CustomerName string    `json:"customer_name"`
	Items        []Item    `json:"items"`
	TotalPrice   float64   `json:"total_price"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidateTransition enforces the forward-only fulfilment flow.
// Cancellation is allowed any time before delivery; delivered and
// cancelled are terminal.
func ValidateTransition(from, to Status) error {
	if !to.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrTransition, to)
	}
	allowed := map[Status][]Status{
		StatusPending:    {StatusProcessing, StatusCancelled},
		StatusProcessing: {StatusShipped, StatusCancelled},
		StatusShipped:    {StatusDelivered, StatusCancelled},
	}
	for _, next := range allowed[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrTransition, from, to)
}
