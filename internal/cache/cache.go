package cache

import (
	"context"
	"time"

	"dalal-market/internal/models"
)

// ListingCache stores rendered listing payloads by listing id
type ListingCache interface {
	GetListing(ctx context.Context, listingID string) (models.ListingView, bool, error)
	SetListing(ctx context.Context, view models.ListingView) error
	DeleteListings(ctx context.Context, listingIDs ...string) error
}

// StoredResponse is a captured HTTP response. A zero Status marks a request still in flight.
type StoredResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type,omitempty"`
	Body        []byte `json:"body,omitempty"`
}

// Pending reports whether the owning request has not finished yet
func (r StoredResponse) Pending() bool {
	return r.Status == 0
}

// IdempotencyStore remembers the first response produced for an Idempotency-Key
type IdempotencyStore interface {
	// Reserve claims key for the caller. When the key is already taken it
	// returns the stored response and false.
	Reserve(ctx context.Context, key string) (StoredResponse, bool, error)
	Complete(ctx context.Context, key string, resp StoredResponse) error
	Release(ctx context.Context, key string) error
}

func listingKey(id string) string {
	return "listing:" + id
}

func idempotencyKey(key string) string {
	return "idempotency:" + key
}

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

func (e entry[T]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}
