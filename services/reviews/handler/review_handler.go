package handler

import (
	"context"
	"net/http"

	"dalal-market/internal/models"
	"dalal-market/services/helpers"
	"dalal-market/utils"

	"github.com/gin-gonic/gin"
)

type ReviewServiceInterface interface {
	AddListingReview(ctx context.Context, reviewerID, listingID string, rating int, comment string) (models.Review, error)
	AddSellerReview(ctx context.Context, reviewerID, sellerID string, rating int, comment string) (models.Review, error)
	ListingReviews(ctx context.Context, listingID string) (models.ReviewSummary, error)
	SellerReviews(ctx context.Context, sellerID string) (models.ReviewSummary, error)
	MyReviews(ctx context.Context, reviewerID string) ([]models.Review, error)
	EditReview(ctx context.Context, userID, reviewID string, rating int, comment string) (models.Review, error)
	DeleteReview(ctx context.Context, userID, reviewID string) error
}

type ReviewHandler struct {
	service ReviewServiceInterface
}

func NewReviewHandler(service ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func writeSummary(c *gin.Context, handlerName, subjectKey, subjectID string, summary models.ReviewSummary) {
	if summary.Reviews == nil {
		summary.Reviews = []models.Review{}
	}
	utils.JSONResponse(c, http.StatusOK, summary, "reviews retrieved successfully")
	helpers.LogSuccess(handlerName, "reviews retrieved successfully", map[string]any{
		subjectKey: subjectID,
		"total":    summary.TotalReviews,
		"average":  summary.AverageRating,
	})
}

// ListingReviewsHandler handles GET /listings/:listing_id/reviews
func (h *ReviewHandler) ListingReviewsHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	summary, err := h.service.ListingReviews(c.Request.Context(), listingID)
	if err != nil {
		helpers.HandleServiceError(c, "ListingReviewsHandler", "error retrieving listing reviews", err, map[string]any{"listing_id": listingID})
		return
	}
	writeSummary(c, "ListingReviewsHandler", "listing_id", listingID, summary)
}

// AddListingReviewHandler handles POST /listings/:listing_id/reviews
func (h *ReviewHandler) AddListingReviewHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "AddListingReviewHandler")
	if !ok {
		return
	}
	listingID := c.Param("listing_id")
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddListingReviewHandler", err)
		return
	}

	review, err := h.service.AddListingReview(c.Request.Context(), user.UserID, listingID, req.Rating, req.Comment)
	if err != nil {
		helpers.HandleServiceError(c, "AddListingReviewHandler", "failed to add listing review", err, map[string]any{
			"listing_id": listingID,
			"user_id":    user.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, review, "review added successfully")
	helpers.LogSuccess("AddListingReviewHandler", "review added successfully", map[string]any{
		"review_id":  review.ReviewID,
		"listing_id": listingID,
		"rating":     review.Rating,
	})
}

// SellerReviewsHandler handles GET /reviews/sellers/:seller_id
func (h *ReviewHandler) SellerReviewsHandler(c *gin.Context) {
	sellerID := c.Param("seller_id")
	summary, err := h.service.SellerReviews(c.Request.Context(), sellerID)
	if err != nil {
		helpers.HandleServiceError(c, "SellerReviewsHandler", "error retrieving seller reviews", err, map[string]any{"seller_id": sellerID})
		return
	}
	writeSummary(c, "SellerReviewsHandler", "seller_id", sellerID, summary)
}

// AddSellerReviewHandler handles POST /reviews/sellers/:seller_id
func (h *ReviewHandler) AddSellerReviewHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "AddSellerReviewHandler")
	if !ok {
		return
	}
	sellerID := c.Param("seller_id")
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddSellerReviewHandler", err)
		return
	}

	review, err := h.service.AddSellerReview(c.Request.Context(), user.UserID, sellerID, req.Rating, req.Comment)
	if err != nil {
		helpers.HandleServiceError(c, "AddSellerReviewHandler", "failed to add seller review", err, map[string]any{
			"seller_id": sellerID,
			"user_id":   user.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, review, "review added successfully")
	helpers.LogSuccess("AddSellerReviewHandler", "review added successfully", map[string]any{
		"review_id": review.ReviewID,
		"seller_id": sellerID,
		"rating":    review.Rating,
	})
}

// MyReviewsHandler handles GET /reviews/mine
func (h *ReviewHandler) MyReviewsHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "MyReviewsHandler")
	if !ok {
		return
	}
	reviews, err := h.service.MyReviews(c.Request.Context(), user.UserID)
	if err != nil {
		helpers.HandleServiceError(c, "MyReviewsHandler", "error listing reviews", err, map[string]any{"user_id": user.UserID})
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	utils.JSONResponse(c, http.StatusOK, reviews, "reviews retrieved successfully")
	helpers.LogSuccess("MyReviewsHandler", "reviews retrieved successfully", map[string]any{
		"user_id": user.UserID,
		"count":   len(reviews),
	})
}

// EditReviewHandler handles PATCH /reviews/:review_id
func (h *ReviewHandler) EditReviewHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "EditReviewHandler")
	if !ok {
		return
	}
	reviewID := c.Param("review_id")
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "EditReviewHandler", err)
		return
	}

	review, err := h.service.EditReview(c.Request.Context(), user.UserID, reviewID, req.Rating, req.Comment)
	if err != nil {
		helpers.HandleServiceError(c, "EditReviewHandler", "failed to edit review", err, map[string]any{"review_id": reviewID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, review, "review updated successfully")
	helpers.LogSuccess("EditReviewHandler", "review updated successfully", map[string]any{"review_id": reviewID})
}

// DeleteReviewHandler handles DELETE /reviews/:review_id
func (h *ReviewHandler) DeleteReviewHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "DeleteReviewHandler")
	if !ok {
		return
	}
	reviewID := c.Param("review_id")
	if err := h.service.DeleteReview(c.Request.Context(), user.UserID, reviewID); err != nil {
		helpers.HandleServiceError(c, "DeleteReviewHandler", "failed to delete review", err, map[string]any{"review_id": reviewID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"review_id": reviewID}, "review deleted successfully")
	helpers.LogSuccess("DeleteReviewHandler", "review deleted successfully", map[string]any{"review_id": reviewID})
}
