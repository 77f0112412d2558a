package models

import "time"

// Category is a node in the listing category tree
type Category struct {
	CategoryID string    `json:"category_id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	ParentID   string    `json:"parent_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CategorySummary is a category with its path and listing counts
type CategorySummary struct {
	Category
	FullPath       string `json:"full_path"`
	TotalListings  int    `json:"total_listings"`
	ActiveListings int    `json:"active_listings"`
}

// CategoryPage is the category detail view
type CategoryPage struct {
	CategorySummary
	Subcategories []Category `json:"subcategories"`
	Listings      []Listing  `json:"listings"`
}
