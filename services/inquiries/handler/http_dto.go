package handler

// Request DTOs
type CreateInquiryRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"required,max=20"`
	Address   string `json:"address"`
	Type      string `json:"inquiry_type"`
	ListingID string `json:"listing_id"`
	Message   string `json:"message" binding:"required"`
}

type UpdateInquiryRequest struct {
	Status     *string `json:"status"`
	AdminNotes *string `json:"admin_notes"`
}
