package cart

type AddItemRequest struct {
	ProductID string `json:"product_id"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}
