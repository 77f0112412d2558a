package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	catalog "dalal-market/internal/catalogService"
	"dalal-market/internal/models"
	"dalal-market/services/helpers"
	"dalal-market/utils"

	"github.com/gin-gonic/gin"
)

// imageField is the multipart form field carrying an uploaded image
const imageField = "image"

// SearchListingsHandler handles GET /listings
func (h *CatalogHandler) SearchListingsHandler(c *gin.Context) {
	params := catalog.SearchParams{
		Query:        c.Query("q"),
		CategorySlug: c.Query("category"),
		SellerID:     c.Query("seller_id"),
		Sort:         c.Query("sort"),
	}
	var err error
	if params.MinPrice, err = helpers.QueryDecimal(c, "min_price"); err != nil {
		helpers.HandleBindError(c, "SearchListingsHandler", err)
		return
	}
	if params.MaxPrice, err = helpers.QueryDecimal(c, "max_price"); err != nil {
		helpers.HandleBindError(c, "SearchListingsHandler", err)
		return
	}
	if params.Page, err = helpers.QueryInt(c, "page", 1); err != nil {
		helpers.HandleBindError(c, "SearchListingsHandler", err)
		return
	}
	if params.PageSize, err = helpers.QueryInt(c, "page_size", 0); err != nil {
		helpers.HandleBindError(c, "SearchListingsHandler", err)
		return
	}

	page, err := h.service.SearchListings(c.Request.Context(), params)
	if err != nil {
		helpers.HandleServiceError(c, "SearchListingsHandler", "error searching listings", err, map[string]any{
			"q":        params.Query,
			"category": params.CategorySlug,
		})
		return
	}
	if page.Listings == nil {
		page.Listings = []models.Listing{}
	}

	utils.JSONResponse(c, http.StatusOK, page, "listings retrieved successfully")
	helpers.LogSuccess("SearchListingsHandler", "listings retrieved successfully", map[string]any{
		"q":     params.Query,
		"page":  page.Page,
		"count": len(page.Listings),
	})
}

// CreateListingHandler handles POST /listings
func (h *CatalogHandler) CreateListingHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "CreateListingHandler")
	if !ok {
		return
	}
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	listing, err := h.service.CreateListing(c.Request.Context(), user.UserID, catalog.ListingInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		CategoryID:  req.CategoryID,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		helpers.HandleServiceError(c, "CreateListingHandler", "failed to create listing", err, map[string]any{"user_id": user.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, listing, "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"listing_id":  listing.ListingID,
		"seller_id":   listing.SellerID,
		"category_id": listing.CategoryID,
	})
}

// MyListingsHandler handles GET /listings/mine
func (h *CatalogHandler) MyListingsHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "MyListingsHandler")
	if !ok {
		return
	}
	listings, err := h.service.MyListings(c.Request.Context(), user.UserID)
	if err != nil {
		helpers.HandleServiceError(c, "MyListingsHandler", "error listing user listings", err, map[string]any{"user_id": user.UserID})
		return
	}
	if listings == nil {
		listings = []models.Listing{}
	}

	utils.JSONResponse(c, http.StatusOK, listings, "listings retrieved successfully")
	helpers.LogSuccess("MyListingsHandler", "listings retrieved successfully", map[string]any{
		"user_id": user.UserID,
		"count":   len(listings),
	})
}

// GetListingHandler handles GET /listings/:listing_id
func (h *CatalogHandler) GetListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	var viewer catalog.Viewer
	if user, ok := helpers.CurrentUser(c); ok {
		viewer = catalog.Viewer{UserID: user.UserID, Staff: user.IsStaff}
	}

	view, err := h.service.GetListing(c.Request.Context(), listingID, viewer)
	if err != nil {
		helpers.HandleServiceError(c, "GetListingHandler", "error retrieving listing", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "listing retrieved successfully")
	helpers.LogSuccess("GetListingHandler", "listing retrieved successfully", map[string]any{
		"listing_id": listingID,
		"views":      view.ViewsCount,
	})
}

// RelatedListingsHandler handles GET /listings/:listing_id/related
func (h *CatalogHandler) RelatedListingsHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	listings, err := h.service.RelatedListings(c.Request.Context(), listingID)
	if err != nil {
		helpers.HandleServiceError(c, "RelatedListingsHandler", "error retrieving related listings", err, map[string]any{"listing_id": listingID})
		return
	}
	if listings == nil {
		listings = []models.Listing{}
	}

	utils.JSONResponse(c, http.StatusOK, listings, "related listings retrieved successfully")
	helpers.LogSuccess("RelatedListingsHandler", "related listings retrieved successfully", map[string]any{
		"listing_id": listingID,
		"count":      len(listings),
	})
}

// UpdateListingHandler handles PATCH /listings/:listing_id
func (h *CatalogHandler) UpdateListingHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "UpdateListingHandler")
	if !ok {
		return
	}
	listingID := c.Param("listing_id")
	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateListingHandler", err)
		return
	}

	listing, err := h.service.UpdateListing(c.Request.Context(), user.UserID, listingID, catalog.ListingUpdate{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		helpers.HandleServiceError(c, "UpdateListingHandler", "failed to update listing", err, map[string]any{
			"listing_id": listingID,
			"user_id":    user.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, listing, "listing updated successfully")
	helpers.LogSuccess("UpdateListingHandler", "listing updated successfully", map[string]any{"listing_id": listingID})
}

// CancelListingHandler handles POST /listings/:listing_id/cancel
func (h *CatalogHandler) CancelListingHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "CancelListingHandler")
	if !ok {
		return
	}
	listingID := c.Param("listing_id")
	listing, err := h.service.CancelListing(c.Request.Context(), user.UserID, listingID)
	if err != nil {
		helpers.HandleServiceError(c, "CancelListingHandler", "failed to cancel listing", err, map[string]any{
			"listing_id": listingID,
			"user_id":    user.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, listing, "listing cancelled successfully")
	helpers.LogSuccess("CancelListingHandler", "listing cancelled successfully", map[string]any{"listing_id": listingID})
}

// AttachDetailsHandler handles PUT /listings/:listing_id/details
func (h *CatalogHandler) AttachDetailsHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "AttachDetailsHandler")
	if !ok {
		return
	}
	listingID := c.Param("listing_id")
	var req models.ListingDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AttachDetailsHandler", err)
		return
	}

	details, err := h.service.AttachDetails(c.Request.Context(), user.UserID, listingID, req)
	if err != nil {
		helpers.HandleServiceError(c, "AttachDetailsHandler", "failed to attach details", err, map[string]any{
			"listing_id": listingID,
			"kind":       req.Kind(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, details, "listing details saved successfully")
	helpers.LogSuccess("AttachDetailsHandler", "listing details saved successfully", map[string]any{
		"listing_id": listingID,
		"kind":       details.Kind(),
	})
}

// UploadImageHandler handles POST /listings/:listing_id/images as multipart/form-data
func (h *CatalogHandler) UploadImageHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "UploadImageHandler")
	if !ok {
		return
	}
	listingID := c.Param("listing_id")

	data, err := readFormFile(c, imageField)
	if err != nil {
		helpers.HandleBindError(c, "UploadImageHandler", err)
		return
	}

	image, err := h.service.UploadImage(c.Request.Context(), user.UserID, listingID, data)
	if err != nil {
		helpers.HandleServiceError(c, "UploadImageHandler", "failed to upload image", err, map[string]any{
			"listing_id": listingID,
			"size":       len(data),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, image, "image uploaded successfully")
	helpers.LogSuccess("UploadImageHandler", "image uploaded successfully", map[string]any{
		"listing_id": listingID,
		"image_id":   image.ImageID,
		"is_main":    image.IsMain,
	})
}

func readFormFile(c *gin.Context, field string) ([]byte, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("missing %q file: %w", field, err)
	}
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("uploaded file is empty")
	}
	return data, nil
}

// ListImagesHandler handles GET /listings/:listing_id/images
func (h *CatalogHandler) ListImagesHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	images, err := h.service.ListImages(c.Request.Context(), listingID)
	if err != nil {
		helpers.HandleServiceError(c, "ListImagesHandler", "error listing images", err, map[string]any{"listing_id": listingID})
		return
	}
	if images == nil {
		images = []models.ListingImage{}
	}

	utils.JSONResponse(c, http.StatusOK, images, "images retrieved successfully")
	helpers.LogSuccess("ListImagesHandler", "images retrieved successfully", map[string]any{
		"listing_id": listingID,
		"count":      len(images),
	})
}
