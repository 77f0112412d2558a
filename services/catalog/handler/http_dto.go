package handler

import "github.com/shopspring/decimal"

// Request DTOs
type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Slug     string `json:"slug" binding:"max=100"`
	ParentID string `json:"parent_id"`
}

// MoveCategoryRequest moves a category; an empty parent makes it a root
type MoveCategoryRequest struct {
	ParentID string `json:"parent_id"`
}

type CreateListingRequest struct {
	Title       string           `json:"title" binding:"required,max=200"`
	Description string           `json:"description" binding:"required"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	CategoryID  string           `json:"category_id" binding:"required"`
	Latitude    *float64         `json:"latitude"`
	Longitude   *float64         `json:"longitude"`
}

type UpdateListingRequest struct {
	Title       *string          `json:"title" binding:"omitempty,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *string          `json:"category_id"`
	Latitude    *float64         `json:"latitude"`
	Longitude   *float64         `json:"longitude"`
}

type RejectListingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type BulkActionRequest struct {
	Action     string   `json:"action" binding:"required"`
	ListingIDs []string `json:"listing_ids" binding:"required,min=1"`
}

type BulkActionResponse struct {
	Action  string `json:"action"`
	Updated int    `json:"updated"`
}
