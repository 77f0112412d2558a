package handler

// Request DTOs
type StartConversationRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
	Message   string `json:"message" binding:"max=5000"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

type ReadResponse struct {
	ConversationID string `json:"conversation_id"`
	Updated        int    `json:"updated"`
}
