package orders

type CheckoutRequest struct {
	UserID       string `json:"user_id" validate:"required"`
	CustomerName string `json:"customer_name" validate:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
