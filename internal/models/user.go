package models

import "time"

// User represents a marketplace account
type User struct {
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	Address      string    `json:"address,omitempty"`
	IsSeller     bool      `json:"is_seller"`
	IsStaff      bool      `json:"is_staff"`
	IsVerified   bool      `json:"is_verified"`
	IsActive     bool      `json:"is_active"`
	DateJoined   time.Time `json:"date_joined"`
}

// User list filters understood by UserFilter.Type
const (
	UserTypeSellers  = "sellers"
	UserTypeVerified = "verified"
	UserTypeStaff    = "staff"
)

// UserFilter narrows the staff user listing
type UserFilter struct {
	Type   string
	Search string
}

// UserStats summarises a user's activity for the profile page
type UserStats struct {
	TotalListings    int `json:"total_listings"`
	SoldListings     int `json:"sold_listings"`
	ActiveListings   int `json:"active_listings"`
	PendingListings  int `json:"pending_listings"`
	SentMessages     int `json:"sent_messages"`
	ReceivedMessages int `json:"received_messages"`
}
