package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"
	"dalal-market/internal/repository"
	"dalal-market/utils"
)

const maxMessageLength = 5000

// MessagingService runs buyer/seller conversations
type MessagingService struct {
	repo     repository.MessageDB
	listings repository.ListingDB
	now      func() time.Time
}

func NewMessagingService(repo repository.MessageDB, listings repository.ListingDB) *MessagingService {
	return &MessagingService{repo: repo, listings: listings, now: time.Now}
}

// participantConversation hides conversations from non-participants
func (s *MessagingService) participantConversation(ctx context.Context, userID, conversationID string) (models.Conversation, error) {
	conversation, err := s.repo.GetConversation(ctx, conversationID)
	if err != nil {
		return models.Conversation{}, fmt.Errorf("service: failed to get conversation %s: %w", conversationID, err)
	}
	if !conversation.HasParticipant(userID) {
		return models.Conversation{}, fmt.Errorf("service: conversation %s: %w", conversationID, marketerrors.ErrConversationNotFound)
	}
	return conversation, nil
}

// ListConversations returns the user's inbox, most recent first
func (s *MessagingService) ListConversations(ctx context.Context, userID string) ([]models.ConversationSummary, error) {
	conversations, err := s.repo.ListConversations(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list conversations of %s: %w", userID, err)
	}
	out := make([]models.ConversationSummary, 0, len(conversations))
	for _, c := range conversations {
		unread, err := s.repo.CountUnread(ctx, c.ConversationID, userID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to count unread in %s: %w", c.ConversationID, err)
		}
		msgs, err := s.repo.ListMessages(ctx, c.ConversationID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to list messages of %s: %w", c.ConversationID, err)
		}
		summary := models.ConversationSummary{Conversation: c, UnreadCount: unread}
		if len(msgs) > 0 {
			last := msgs[len(msgs)-1]
			summary.LastMessage = &last
		}
		out = append(out, summary)
	}
	return out, nil
}

// StartConversation opens, or reuses, the conversation between the user and
// the listing's seller. A non-empty message is sent right away.
func (s *MessagingService) StartConversation(ctx context.Context, userID, listingID, message string) (models.Conversation, error) {
	listing, err := s.listings.GetListing(ctx, listingID)
	if err != nil {
		return models.Conversation{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	if listing.SellerID == userID {
		return models.Conversation{}, fmt.Errorf("service: %w - cannot message yourself about your own listing", marketerrors.ErrSelfAction)
	}

	conversation, err := s.repo.FindConversation(ctx, listingID, userID, listing.SellerID)
	switch {
	case err == nil:
	case errors.Is(err, marketerrors.ErrConversationNotFound):
		now := s.now().UTC()
		conversation = models.Conversation{
			ConversationID: utils.GenerateID(),
			ParticipantIDs: []string{userID, listing.SellerID},
			ListingID:      listingID,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := s.repo.CreateConversation(ctx, conversation); err != nil {
			return models.Conversation{}, fmt.Errorf("service: failed to create conversation: %w", err)
		}
	default:
		return models.Conversation{}, fmt.Errorf("service: failed to find conversation on listing %s: %w", listingID, err)
	}

	if strings.TrimSpace(message) != "" {
		if _, err := s.SendMessage(ctx, userID, conversation.ConversationID, message); err != nil {
			return models.Conversation{}, err
		}
		return s.participantConversation(ctx, userID, conversation.ConversationID)
	}
	return conversation, nil
}

// GetConversation returns the thread oldest first and marks what the reader received as read
func (s *MessagingService) GetConversation(ctx context.Context, userID, conversationID string) (models.ConversationView, error) {
	conversation, err := s.participantConversation(ctx, userID, conversationID)
	if err != nil {
		return models.ConversationView{}, err
	}
	if _, err := s.repo.MarkRead(ctx, conversationID, userID); err != nil {
		return models.ConversationView{}, fmt.Errorf("service: failed to mark %s read: %w", conversationID, err)
	}
	msgs, err := s.repo.ListMessages(ctx, conversationID)
	if err != nil {
		return models.ConversationView{}, fmt.Errorf("service: failed to list messages of %s: %w", conversationID, err)
	}
	return models.ConversationView{Conversation: conversation, Messages: msgs}, nil
}

// SendMessage posts content to the other participant
func (s *MessagingService) SendMessage(ctx context.Context, senderID, conversationID, content string) (models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Message{}, fmt.Errorf("service: %w - message content is required", marketerrors.ErrInvalidInput)
	}
	if len(content) > maxMessageLength {
		return models.Message{}, fmt.Errorf("service: %w - message exceeds %d bytes", marketerrors.ErrInvalidInput, maxMessageLength)
	}
	conversation, err := s.participantConversation(ctx, senderID, conversationID)
	if err != nil {
		return models.Message{}, err
	}
	receiverID, ok := conversation.OtherParticipant(senderID)
	if !ok {
		return models.Message{}, fmt.Errorf("service: %w - conversation %s has no other participant", marketerrors.ErrInvalidInput, conversationID)
	}

	message := models.Message{
		MessageID:      utils.GenerateID(),
		ConversationID: conversationID,
		SenderID:       senderID,
		ReceiverID:     receiverID,
		ListingID:      conversation.ListingID,
		Content:        content,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.repo.AddMessage(ctx, message); err != nil {
		return models.Message{}, fmt.Errorf("service: failed to add message to %s: %w", conversationID, err)
	}
	return message, nil
}

// MarkAsRead flags the requester's incoming messages in the conversation as read
func (s *MessagingService) MarkAsRead(ctx context.Context, userID, conversationID string) (int, error) {
	if _, err := s.participantConversation(ctx, userID, conversationID); err != nil {
		return 0, err
	}
	n, err := s.repo.MarkRead(ctx, conversationID, userID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to mark %s read: %w", conversationID, err)
	}
	return n, nil
}

// MarkAllRead is the staff action flagging every message in a conversation as read
func (s *MessagingService) MarkAllRead(ctx context.Context, conversationID string) (int, error) {
	n, err := s.repo.MarkRead(ctx, conversationID, "")
	if err != nil {
		return 0, fmt.Errorf("service: failed to mark %s read: %w", conversationID, err)
	}
	utils.Info("conversation marked read by staff", map[string]any{"conversation_id": conversationID, "updated": n})
	return n, nil
}
