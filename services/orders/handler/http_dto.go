package handler

// Request DTOs
type CreateOrderRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
	Notes     string `json:"notes" binding:"max=2000"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
