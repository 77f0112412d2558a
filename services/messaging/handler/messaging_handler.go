package handler

import (
	"context"
	"net/http"

	"dalal-market/internal/models"
	"dalal-market/services/helpers"
	"dalal-market/utils"

	"github.com/gin-gonic/gin"
)

type MessagingServiceInterface interface {
	ListConversations(ctx context.Context, userID string) ([]models.ConversationSummary, error)
	StartConversation(ctx context.Context, userID, listingID, message string) (models.Conversation, error)
	GetConversation(ctx context.Context, userID, conversationID string) (models.ConversationView, error)
	SendMessage(ctx context.Context, senderID, conversationID, content string) (models.Message, error)
	MarkAsRead(ctx context.Context, userID, conversationID string) (int, error)
	MarkAllRead(ctx context.Context, conversationID string) (int, error)
}

type MessagingHandler struct {
	service MessagingServiceInterface
}

func NewMessagingHandler(service MessagingServiceInterface) *MessagingHandler {
	return &MessagingHandler{service: service}
}

// ListConversationsHandler handles GET /conversations
func (h *MessagingHandler) ListConversationsHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "ListConversationsHandler")
	if !ok {
		return
	}
	conversations, err := h.service.ListConversations(c.Request.Context(), user.UserID)
	if err != nil {
		helpers.HandleServiceError(c, "ListConversationsHandler", "error listing conversations", err, map[string]any{"user_id": user.UserID})
		return
	}
	if conversations == nil {
		conversations = []models.ConversationSummary{}
	}

	utils.JSONResponse(c, http.StatusOK, conversations, "conversations retrieved successfully")
	helpers.LogSuccess("ListConversationsHandler", "conversations retrieved successfully", map[string]any{
		"user_id": user.UserID,
		"count":   len(conversations),
	})
}

// StartConversationHandler handles POST /conversations
func (h *MessagingHandler) StartConversationHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "StartConversationHandler")
	if !ok {
		return
	}
	var req StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "StartConversationHandler", err)
		return
	}

	conversation, err := h.service.StartConversation(c.Request.Context(), user.UserID, req.ListingID, req.Message)
	if err != nil {
		helpers.HandleServiceError(c, "StartConversationHandler", "failed to start conversation", err, map[string]any{
			"listing_id": req.ListingID,
			"user_id":    user.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, conversation, "conversation started successfully")
	helpers.LogSuccess("StartConversationHandler", "conversation started successfully", map[string]any{
		"conversation_id": conversation.ConversationID,
		"listing_id":      req.ListingID,
	})
}

// GetConversationHandler handles GET /conversations/:conversation_id
func (h *MessagingHandler) GetConversationHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "GetConversationHandler")
	if !ok {
		return
	}
	conversationID := c.Param("conversation_id")
	view, err := h.service.GetConversation(c.Request.Context(), user.UserID, conversationID)
	if err != nil {
		helpers.HandleServiceError(c, "GetConversationHandler", "error retrieving conversation", err, map[string]any{"conversation_id": conversationID})
		return
	}
	if view.Messages == nil {
		view.Messages = []models.Message{}
	}

	utils.JSONResponse(c, http.StatusOK, view, "conversation retrieved successfully")
	helpers.LogSuccess("GetConversationHandler", "conversation retrieved successfully", map[string]any{
		"conversation_id": conversationID,
		"messages":        len(view.Messages),
	})
}

// SendMessageHandler handles POST /conversations/:conversation_id/messages
func (h *MessagingHandler) SendMessageHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "SendMessageHandler")
	if !ok {
		return
	}
	conversationID := c.Param("conversation_id")
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SendMessageHandler", err)
		return
	}

	message, err := h.service.SendMessage(c.Request.Context(), user.UserID, conversationID, req.Content)
	if err != nil {
		helpers.HandleServiceError(c, "SendMessageHandler", "failed to send message", err, map[string]any{"conversation_id": conversationID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, message, "message sent successfully")
	helpers.LogSuccess("SendMessageHandler", "message sent successfully", map[string]any{
		"conversation_id": conversationID,
		"message_id":      message.MessageID,
	})
}

// MarkAsReadHandler handles POST /conversations/:conversation_id/read
func (h *MessagingHandler) MarkAsReadHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "MarkAsReadHandler")
	if !ok {
		return
	}
	conversationID := c.Param("conversation_id")
	updated, err := h.service.MarkAsRead(c.Request.Context(), user.UserID, conversationID)
	if err != nil {
		helpers.HandleServiceError(c, "MarkAsReadHandler", "failed to mark messages read", err, map[string]any{"conversation_id": conversationID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, ReadResponse{ConversationID: conversationID, Updated: updated}, "messages marked as read")
	helpers.LogSuccess("MarkAsReadHandler", "messages marked as read", map[string]any{
		"conversation_id": conversationID,
		"updated":         updated,
	})
}

// MarkAllReadHandler handles POST /admin/conversations/:conversation_id/read-all
func (h *MessagingHandler) MarkAllReadHandler(c *gin.Context) {
	conversationID := c.Param("conversation_id")
	updated, err := h.service.MarkAllRead(c.Request.Context(), conversationID)
	if err != nil {
		helpers.HandleServiceError(c, "MarkAllReadHandler", "failed to mark conversation read", err, map[string]any{"conversation_id": conversationID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, ReadResponse{ConversationID: conversationID, Updated: updated}, "messages marked as read")
	helpers.LogSuccess("MarkAllReadHandler", "messages marked as read", map[string]any{
		"conversation_id": conversationID,
		"updated":         updated,
	})
}
