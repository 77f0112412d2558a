package events

import (
	"context"
	"sync"
	"time"

	"dalal-market/internal/models"
	"dalal-market/utils"

	"github.com/shopspring/decimal"
)

// Subjects published by the marketplace
const (
	SubjectListingStatusChanged = "listing.status_changed"
	SubjectBidPlaced            = "auction.bid_placed"
	SubjectAuctionClosed        = "auction.closed"
	SubjectOrderCreated         = "order.created"
	SubjectOrderStatusUpdated   = "order.status_updated"
	SubjectInquiryCreated       = "inquiry.created"
)

// Publisher delivers domain events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, subject string, event any) error
}

type ListingStatusChanged struct {
	ListingID string               `json:"listing_id"`
	SellerID  string               `json:"seller_id"`
	ActorID   string               `json:"actor_id"`
	From      models.ListingStatus `json:"from"`
	To        models.ListingStatus `json:"to"`
	Reason    string               `json:"reason,omitempty"`
	At        time.Time            `json:"at"`
}

type BidPlaced struct {
	AuctionID string          `json:"auction_id"`
	ListingID string          `json:"listing_id"`
	BidID     string          `json:"bid_id"`
	BidderID  string          `json:"bidder_id"`
	Amount    decimal.Decimal `json:"amount"`
	At        time.Time       `json:"at"`
}

type AuctionClosed struct {
	AuctionID  string          `json:"auction_id"`
	ListingID  string          `json:"listing_id"`
	SellerID   string          `json:"seller_id"`
	WinnerID   string          `json:"winner_id,omitempty"`
	WinningBid decimal.Decimal `json:"winning_bid"`
	At         time.Time       `json:"at"`
}

type OrderEvent struct {
	OrderID     string             `json:"order_id"`
	ListingID   string             `json:"listing_id"`
	BuyerID     string             `json:"buyer_id"`
	SellerID    string             `json:"seller_id"`
	Status      models.OrderStatus `json:"status"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	At          time.Time          `json:"at"`
}

// NewOrderEvent snapshots order
func NewOrderEvent(order models.Order) OrderEvent {
	return OrderEvent{
		OrderID:     order.OrderID,
		ListingID:   order.ListingID,
		BuyerID:     order.BuyerID,
		SellerID:    order.SellerID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		At:          order.UpdatedAt,
	}
}

type InquiryCreated struct {
	InquiryID string             `json:"inquiry_id"`
	Type      models.InquiryType `json:"type"`
	ListingID string             `json:"listing_id,omitempty"`
	At        time.Time          `json:"at"`
}

// LogPublisher writes events to the application log instead of a broker
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, subject string, event any) error {
	utils.Info("event published", map[string]any{"subject": subject, "event": event})
	return nil
}

// Published is an event captured by a Recorder
type Published struct {
	Subject string
	Event   any
}

// Recorder keeps published events in memory
type Recorder struct {
	mu     sync.Mutex
	events []Published
}

func (r *Recorder) Publish(_ context.Context, subject string, event any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Published{Subject: subject, Event: event})
	return nil
}

// Events returns a copy of everything published so far
func (r *Recorder) Events() []Published {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Published(nil), r.events...)
}

// Subjects returns the subjects published so far, in order
func (r *Recorder) Subjects() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Subject)
	}
	return out
}

// PublishOrLog publishes event and logs a failure; delivery never fails the caller
func PublishOrLog(ctx context.Context, p Publisher, subject string, event any) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, subject, event); err != nil {
		utils.Warn("failed to publish event", map[string]any{"subject": subject, "error": err.Error()})
	}
}

// ObservedPublisher reports the result of every publish to observe
type ObservedPublisher struct {
	next    Publisher
	observe func(subject string, err error)
}

func NewObservedPublisher(next Publisher, observe func(subject string, err error)) *ObservedPublisher {
	return &ObservedPublisher{next: next, observe: observe}
}

func (p *ObservedPublisher) Publish(ctx context.Context, subject string, event any) error {
	err := p.next.Publish(ctx, subject, event)
	if p.observe != nil {
		p.observe(subject, err)
	}
	return err
}
