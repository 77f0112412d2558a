package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"
)

// CreateReview stores a review; listing reviews are unique per reviewer
func (r *MemoryRepo) CreateReview(_ context.Context, review models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if review.ListingID != "" {
		for _, rv := range r.reviews {
			if rv.ListingID == review.ListingID && rv.ReviewerID == review.ReviewerID {
				return fmt.Errorf("create review for listing %s: %w", review.ListingID, marketerrors.ErrDuplicate)
			}
		}
	}
	r.reviews[review.ReviewID] = review
	return nil
}

// GetReview returns a review by id
func (r *MemoryRepo) GetReview(_ context.Context, reviewID string) (models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rv, ok := r.reviews[reviewID]
	if !ok {
		return models.Review{}, fmt.Errorf("get review %s: %w", reviewID, marketerrors.ErrReviewNotFound)
	}
	return rv, nil
}

// UpdateReview replaces a stored review
func (r *MemoryRepo) UpdateReview(_ context.Context, review models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[review.ReviewID]; !ok {
		return fmt.Errorf("update review %s: %w", review.ReviewID, marketerrors.ErrReviewNotFound)
	}
	r.reviews[review.ReviewID] = review
	return nil
}

// DeleteReview removes a review
func (r *MemoryRepo) DeleteReview(_ context.Context, reviewID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[reviewID]; !ok {
		return fmt.Errorf("delete review %s: %w", reviewID, marketerrors.ErrReviewNotFound)
	}
	delete(r.reviews, reviewID)
	return nil
}

// ListReviews returns reviews matching the filter, newest first
func (r *MemoryRepo) ListReviews(_ context.Context, filter models.ReviewFilter) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Review, 0)
	for _, rv := range r.reviews {
		if filter.ReviewerID != "" && rv.ReviewerID != filter.ReviewerID {
			continue
		}
		if filter.ListingID != "" && rv.ListingID != filter.ListingID {
			continue
		}
		if filter.SellerID != "" && rv.SellerID != filter.SellerID {
			continue
		}
		out = append(out, rv)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ReviewID < out[j].ReviewID
	})
	return out, nil
}

// CreateConversation stores a new conversation
func (r *MemoryRepo) CreateConversation(_ context.Context, conversation models.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conversations[conversation.ConversationID]; ok {
		return fmt.Errorf("create conversation %s: %w", conversation.ConversationID, marketerrors.ErrDuplicate)
	}
	conversation.ParticipantIDs = append([]string(nil), conversation.ParticipantIDs...)
	r.conversations[conversation.ConversationID] = conversation
	return nil
}

// GetConversation returns a conversation by id
func (r *MemoryRepo) GetConversation(_ context.Context, conversationID string) (models.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.conversations[conversationID]
	if !ok {
		return models.Conversation{}, fmt.Errorf("get conversation %s: %w", conversationID, marketerrors.ErrConversationNotFound)
	}
	return cloneConversation(c), nil
}

// FindConversation returns the conversation about listingID that includes both users
func (r *MemoryRepo) FindConversation(_ context.Context, listingID, userA, userB string) (models.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.conversations {
		if c.ListingID == listingID && c.HasParticipant(userA) && c.HasParticipant(userB) {
			return cloneConversation(c), nil
		}
	}
	return models.Conversation{}, fmt.Errorf("find conversation on listing %s: %w", listingID, marketerrors.ErrConversationNotFound)
}

// ListConversations returns a user's conversations, most recently updated first
func (r *MemoryRepo) ListConversations(_ context.Context, userID string) ([]models.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Conversation, 0)
	for _, c := range r.conversations {
		if c.HasParticipant(userID) {
			out = append(out, cloneConversation(c))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ConversationID < out[j].ConversationID
	})
	return out, nil
}

// AddMessage appends a message and bumps the conversation
func (r *MemoryRepo) AddMessage(_ context.Context, message models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.conversations[message.ConversationID]
	if !ok {
		return fmt.Errorf("add message to %s: %w", message.ConversationID, marketerrors.ErrConversationNotFound)
	}
	r.messages[message.ConversationID] = append(r.messages[message.ConversationID], message)
	c.UpdatedAt = message.CreatedAt
	r.conversations[c.ConversationID] = c
	return nil
}

// ListMessages returns a conversation's messages, oldest first
func (r *MemoryRepo) ListMessages(_ context.Context, conversationID string) ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msgs := append([]models.Message(nil), r.messages[conversationID]...)
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].CreatedAt.Before(msgs[j].CreatedAt) })
	return msgs, nil
}

// MarkRead flags unread messages read and returns how many changed
func (r *MemoryRepo) MarkRead(_ context.Context, conversationID, receiverID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conversations[conversationID]; !ok {
		return 0, fmt.Errorf("mark read %s: %w", conversationID, marketerrors.ErrConversationNotFound)
	}
	msgs := r.messages[conversationID]
	count := 0
	for i := range msgs {
		if msgs[i].IsRead || (receiverID != "" && msgs[i].ReceiverID != receiverID) {
			continue
		}
		msgs[i].IsRead = true
		count++
	}
	return count, nil
}

// CountUnread counts unread messages addressed to receiverID in a conversation
func (r *MemoryRepo) CountUnread(_ context.Context, conversationID, receiverID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, m := range r.messages[conversationID] {
		if !m.IsRead && m.ReceiverID == receiverID {
			count++
		}
	}
	return count, nil
}

// CountMessages counts messages a user sent and received
func (r *MemoryRepo) CountMessages(_ context.Context, userID string) (int, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sent, received int
	for _, msgs := range r.messages {
		for _, m := range msgs {
			if m.SenderID == userID {
				sent++
			}
			if m.ReceiverID == userID {
				received++
			}
		}
	}
	return sent, received, nil
}

func cloneConversation(c models.Conversation) models.Conversation {
	c.ParticipantIDs = append([]string(nil), c.ParticipantIDs...)
	return c
}

// CreateInquiry stores a new inquiry
func (r *MemoryRepo) CreateInquiry(_ context.Context, inquiry models.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.inquiries[inquiry.InquiryID]; ok {
		return fmt.Errorf("create inquiry %s: %w", inquiry.InquiryID, marketerrors.ErrDuplicate)
	}
	inquiry.Notifications = append([]models.NotificationAttempt(nil), inquiry.Notifications...)
	r.inquiries[inquiry.InquiryID] = inquiry
	return nil
}

// GetInquiry returns an inquiry by id
func (r *MemoryRepo) GetInquiry(_ context.Context, inquiryID string) (models.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	in, ok := r.inquiries[inquiryID]
	if !ok {
		return models.Inquiry{}, fmt.Errorf("get inquiry %s: %w", inquiryID, marketerrors.ErrInquiryNotFound)
	}
	in.Notifications = append([]models.NotificationAttempt(nil), in.Notifications...)
	return in, nil
}

// ListInquiries returns inquiries, optionally by status, newest first
func (r *MemoryRepo) ListInquiries(_ context.Context, status models.InquiryStatus) ([]models.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Inquiry, 0)
	for _, in := range r.inquiries {
		if status != "" && in.Status != status {
			continue
		}
		in.Notifications = append([]models.NotificationAttempt(nil), in.Notifications...)
		out = append(out, in)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].InquiryID < out[j].InquiryID
	})
	return out, nil
}

// UpdateInquiry replaces status and admin notes of an inquiry
func (r *MemoryRepo) UpdateInquiry(_ context.Context, inquiry models.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.inquiries[inquiry.InquiryID]
	if !ok {
		return fmt.Errorf("update inquiry %s: %w", inquiry.InquiryID, marketerrors.ErrInquiryNotFound)
	}
	stored.Status = inquiry.Status
	stored.AdminNotes = inquiry.AdminNotes
	stored.UpdatedAt = inquiry.UpdatedAt
	r.inquiries[inquiry.InquiryID] = stored
	return nil
}

// RecordNotification appends a notification outcome to an inquiry
func (r *MemoryRepo) RecordNotification(_ context.Context, inquiryID string, attempt models.NotificationAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	in, ok := r.inquiries[inquiryID]
	if !ok {
		return fmt.Errorf("record notification for %s: %w", inquiryID, marketerrors.ErrInquiryNotFound)
	}
	if attempt.At.IsZero() {
		attempt.At = time.Now().UTC()
	}
	in.Notifications = append(in.Notifications, attempt)
	r.inquiries[inquiryID] = in
	return nil
}
