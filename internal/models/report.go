package models

import "github.com/shopspring/decimal"

// KeyCount is a labelled count in a report
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// SellerCount ranks a seller by number of listings
type SellerCount struct {
	SellerID string `json:"seller_id"`
	Username string `json:"username"`
	Listings int    `json:"listings"`
}

// Dashboard is the staff overview
type Dashboard struct {
	TotalListings    int             `json:"total_listings"`
	PendingListings  int             `json:"pending_listings"`
	ActiveListings   int             `json:"active_listings"`
	TotalUsers       int             `json:"total_users"`
	NewUsersToday    int             `json:"new_users_today"`
	ActiveAuctions   int             `json:"active_auctions"`
	TotalAuctions    int             `json:"total_auctions"`
	PendingOrders    int             `json:"pending_orders"`
	CompletedOrders  int             `json:"completed_orders"`
	Revenue          decimal.Decimal `json:"revenue"`
	RecentPending    []Listing       `json:"recent_pending"`
	RecentUsers      []User          `json:"recent_users"`
	ListingsThisWeek int             `json:"listings_this_week"`
	UsersThisWeek    int             `json:"users_this_week"`
}

// Reports is the staff analytics page
type Reports struct {
	ListingsByCategory []KeyCount    `json:"listings_by_category"`
	ListingsByStatus   []KeyCount    `json:"listings_by_status"`
	NewUsersPerDay     []KeyCount    `json:"new_users_per_day"`
	TopSellers         []SellerCount `json:"top_sellers"`
	MostViewed         []Listing     `json:"most_viewed"`
}
