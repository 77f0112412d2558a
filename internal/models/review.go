package models

import "time"

// Review is a 1-5 star rating of a listing and/or a seller
type Review struct {
	ReviewID   string    `json:"review_id"`
	ReviewerID string    `json:"reviewer_id"`
	ListingID  string    `json:"listing_id,omitempty"`
	SellerID   string    `json:"seller_id,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReviewFilter narrows review listings
type ReviewFilter struct {
	ReviewerID string
	ListingID  string
	SellerID   string
}

// ReviewSummary is a review list with its rounded average
type ReviewSummary struct {
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"average_rating"`
	TotalReviews  int      `json:"total_reviews"`
}
