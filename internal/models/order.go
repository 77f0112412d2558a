package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is a known order status
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Terminal reports whether an order in status s can no longer change
func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// Order links a buyer, a seller and a listing with a price snapshot
type Order struct {
	OrderID     string          `json:"order_id"`
	ListingID   string          `json:"listing_id"`
	BuyerID     string          `json:"buyer_id"`
	SellerID    string          `json:"seller_id,omitempty"`
	Quantity    int             `json:"quantity"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      OrderStatus     `json:"status"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OrderFilter narrows order listings. ParticipantID matches buyer or seller.
type OrderFilter struct {
	BuyerID       string
	SellerID      string
	ParticipantID string
	Statuses      []OrderStatus
}

// OrderStats counts a user's orders by status
type OrderStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
}

// MyOrders is the buyer/seller order overview
type MyOrders struct {
	Buying  []Order    `json:"buying"`
	Selling []Order    `json:"selling"`
	Stats   OrderStats `json:"stats"`
}
