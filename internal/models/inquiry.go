package models

import "time"

type InquiryType string

const (
	InquiryFreeEstimate   InquiryType = "free_estimate"
	InquiryServiceRequest InquiryType = "service_request"
	InquiryProductInfo    InquiryType = "product_info"
	InquiryGeneral        InquiryType = "general"
	InquiryEmergency      InquiryType = "emergency"
)

// Valid reports whether t is a known inquiry type
func (t InquiryType) Valid() bool {
	switch t {
	case InquiryFreeEstimate, InquiryServiceRequest, InquiryProductInfo, InquiryGeneral, InquiryEmergency:
		return true
	}
	return false
}

type InquiryStatus string

const (
	InquiryNew        InquiryStatus = "new"
	InquiryContacted  InquiryStatus = "contacted"
	InquiryInProgress InquiryStatus = "in_progress"
	InquiryCompleted  InquiryStatus = "completed"
	InquiryCancelled  InquiryStatus = "cancelled"
)

// Valid reports whether s is a known inquiry status
func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryNew, InquiryContacted, InquiryInProgress, InquiryCompleted, InquiryCancelled:
		return true
	}
	return false
}

// Notification delivery states
const (
	NotificationSent    = "sent"
	NotificationFailed  = "failed"
	NotificationSkipped = "skipped"
)

// NotificationAttempt records the outcome of one channel for one inquiry
type NotificationAttempt struct {
	Channel  string    `json:"channel"`
	State    string    `json:"state"`
	Attempts int       `json:"attempts"`
	Error    string    `json:"error,omitempty"`
	At       time.Time `json:"at"`
}

// Inquiry is a customer contact request
type Inquiry struct {
	InquiryID     string                `json:"inquiry_id"`
	Name          string                `json:"name"`
	Email         string                `json:"email,omitempty"`
	Phone         string                `json:"phone"`
	Address       string                `json:"address,omitempty"`
	Type          InquiryType           `json:"type"`
	ListingID     string                `json:"listing_id,omitempty"`
	Message       string                `json:"message"`
	Status        InquiryStatus         `json:"status"`
	AdminNotes    string                `json:"admin_notes,omitempty"`
	IPAddress     string                `json:"ip_address,omitempty"`
	UserAgent     string                `json:"user_agent,omitempty"`
	Notifications []NotificationAttempt `json:"notifications"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}
