package handler

import (
	"net/http"

	"dalal-market/internal/models"
	"dalal-market/services/helpers"
	"dalal-market/utils"

	"github.com/gin-gonic/gin"
)

// PendingListingsHandler handles GET /admin/listings/pending
func (h *CatalogHandler) PendingListingsHandler(c *gin.Context) {
	category, seller := c.Query("category"), c.Query("seller")
	listings, err := h.service.PendingListings(c.Request.Context(), category, seller)
	if err != nil {
		helpers.HandleServiceError(c, "PendingListingsHandler", "error listing pending listings", err, map[string]any{"category": category})
		return
	}
	if listings == nil {
		listings = []models.Listing{}
	}

	utils.JSONResponse(c, http.StatusOK, listings, "pending listings retrieved successfully")
	helpers.LogSuccess("PendingListingsHandler", "pending listings retrieved successfully", map[string]any{"count": len(listings)})
}

// ApproveListingHandler handles POST /admin/listings/:listing_id/approve
func (h *CatalogHandler) ApproveListingHandler(c *gin.Context) {
	actor, ok := helpers.RequireUser(c, "ApproveListingHandler")
	if !ok {
		return
	}
	listingID := c.Param("listing_id")
	listing, err := h.service.ApproveListing(c.Request.Context(), actor.UserID, listingID)
	if err != nil {
		helpers.HandleServiceError(c, "ApproveListingHandler", "failed to approve listing", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, listing, "listing approved successfully")
	helpers.LogSuccess("ApproveListingHandler", "listing approved successfully", map[string]any{
		"listing_id": listingID,
		"actor_id":   actor.UserID,
	})
}

// RejectListingHandler handles POST /admin/listings/:listing_id/reject
func (h *CatalogHandler) RejectListingHandler(c *gin.Context) {
	actor, ok := helpers.RequireUser(c, "RejectListingHandler")
	if !ok {
		return
	}
	listingID := c.Param("listing_id")
	var req RejectListingRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			helpers.HandleBindError(c, "RejectListingHandler", err)
			return
		}
	}

	listing, err := h.service.RejectListing(c.Request.Context(), actor.UserID, listingID, req.Reason)
	if err != nil {
		helpers.HandleServiceError(c, "RejectListingHandler", "failed to reject listing", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, listing, "listing rejected successfully")
	helpers.LogSuccess("RejectListingHandler", "listing rejected successfully", map[string]any{
		"listing_id": listingID,
		"actor_id":   actor.UserID,
		"reason":     req.Reason,
	})
}

// BulkActionHandler handles POST /admin/listings/bulk
func (h *CatalogHandler) BulkActionHandler(c *gin.Context) {
	actor, ok := helpers.RequireUser(c, "BulkActionHandler")
	if !ok {
		return
	}
	var req BulkActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "BulkActionHandler", err)
		return
	}

	updated, err := h.service.BulkAction(c.Request.Context(), actor.UserID, req.Action, req.ListingIDs)
	if err != nil {
		helpers.HandleServiceError(c, "BulkActionHandler", "bulk action failed", err, map[string]any{
			"action": req.Action,
			"count":  len(req.ListingIDs),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, BulkActionResponse{Action: req.Action, Updated: updated}, "bulk action applied successfully")
	helpers.LogSuccess("BulkActionHandler", "bulk action applied successfully", map[string]any{
		"action":   req.Action,
		"updated":  updated,
		"actor_id": actor.UserID,
	})
}

// ListingHistoryHandler handles GET /admin/listings/:listing_id/history
func (h *CatalogHandler) ListingHistoryHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	changes, err := h.service.ListingStatusHistory(c.Request.Context(), listingID)
	if err != nil {
		helpers.HandleServiceError(c, "ListingHistoryHandler", "error retrieving listing history", err, map[string]any{"listing_id": listingID})
		return
	}
	if changes == nil {
		changes = []models.ListingStatusChange{}
	}

	utils.JSONResponse(c, http.StatusOK, changes, "listing history retrieved successfully")
	helpers.LogSuccess("ListingHistoryHandler", "listing history retrieved successfully", map[string]any{
		"listing_id": listingID,
		"count":      len(changes),
	})
}
