package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ListingStatus string

const (
	ListingPendingApproval ListingStatus = "pending_approval"
	ListingActive          ListingStatus = "active"
	ListingSold            ListingStatus = "sold"
	ListingHidden          ListingStatus = "hidden"
	ListingCancelled       ListingStatus = "cancelled"
)

// Valid reports whether s is a known listing status
func (s ListingStatus) Valid() bool {
	switch s {
	case ListingPendingApproval, ListingActive, ListingSold, ListingHidden, ListingCancelled:
		return true
	}
	return false
}

// Listing is a seller's item for sale or rent
type Listing struct {
	ListingID   string          `json:"listing_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"category_id"`
	SellerID    string          `json:"seller_id"`
	Latitude    *float64        `json:"latitude,omitempty"`
	Longitude   *float64        `json:"longitude,omitempty"`
	Status      ListingStatus   `json:"status"`
	IsApproved  bool            `json:"is_approved"`
	ViewsCount  int             `json:"views_count"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// HasCoordinates reports whether both latitude and longitude are set
func (l Listing) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// IsPublic reports whether the listing is visible to buyers
func (l Listing) IsPublic() bool {
	return l.Status == ListingActive && l.IsApproved
}

// ListingImage is an uploaded picture attached to a listing
type ListingImage struct {
	ImageID   string    `json:"image_id"`
	ListingID string    `json:"listing_id"`
	ObjectKey string    `json:"object_key"`
	URL       string    `json:"url"`
	IsMain    bool      `json:"is_main"`
	CreatedAt time.Time `json:"created_at"`
}

// ListingStatusChange is one audit entry of a status transition
type ListingStatusChange struct {
	ChangeID  string        `json:"change_id"`
	ListingID string        `json:"listing_id"`
	ActorID   string        `json:"actor_id"`
	From      ListingStatus `json:"from"`
	To        ListingStatus `json:"to"`
	Reason    string        `json:"reason,omitempty"`
	ChangedAt time.Time     `json:"changed_at"`
}

// Listing sort orders
const (
	SortNewest    = "newest"
	SortViews     = "views"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// BoundingBox is a naive lat/lng rectangle
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// Contains reports whether the point lies inside the box, edges included
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// ListingFilter drives listing searches. Zero values mean "no constraint".
type ListingFilter struct {
	Query           string
	CategoryID      string
	SellerID        string
	SellerUsername  string // case-insensitive substring
	Statuses        []ListingStatus
	ApprovedOnly    bool
	MinPrice        *decimal.Decimal
	MaxPrice        *decimal.Decimal
	WithCoordinates bool
	Bounds          *BoundingBox
	ExcludeID       string
	Sort            string
	Limit           int
	Offset          int
}
