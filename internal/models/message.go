package models

import "time"

// Conversation is a messaging thread between participants, optionally about a listing
type Conversation struct {
	ConversationID string    `json:"conversation_id"`
	ParticipantIDs []string  `json:"participant_ids"`
	ListingID      string    `json:"listing_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HasParticipant reports whether userID takes part in the conversation
func (c Conversation) HasParticipant(userID string) bool {
	for _, p := range c.ParticipantIDs {
		if p == userID {
			return true
		}
	}
	return false
}

// OtherParticipant returns the first participant that is not userID
func (c Conversation) OtherParticipant(userID string) (string, bool) {
	for _, p := range c.ParticipantIDs {
		if p != userID {
			return p, true
		}
	}
	return "", false
}

// Message belongs to a conversation
type Message struct {
	MessageID      string    `json:"message_id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	ReceiverID     string    `json:"receiver_id"`
	ListingID      string    `json:"listing_id,omitempty"`
	Content        string    `json:"content"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

// ConversationSummary is a conversation row in the inbox
type ConversationSummary struct {
	Conversation
	UnreadCount int      `json:"unread_count"`
	LastMessage *Message `json:"last_message,omitempty"`
}

// ConversationView is a conversation with its messages, oldest first
type ConversationView struct {
	Conversation
	Messages []Message `json:"messages"`
}
