package handler

import (
	"context"
	"net/http"

	locations "dalal-market/internal/locationService"
	"dalal-market/internal/models"
	"dalal-market/services/helpers"
	"dalal-market/utils"

	"github.com/gin-gonic/gin"
)

type LocationServiceInterface interface {
	CreateLocation(ctx context.Context, in locations.LocationInput) (models.Location, error)
	ListLocations(ctx context.Context, parentID string, level models.LocationLevel) ([]models.Location, error)
	SearchLocations(ctx context.Context, query string) ([]models.LocationView, error)
	SaveLocation(ctx context.Context, userID string, in locations.SavedLocationInput) (models.SavedLocation, error)
	MyLocations(ctx context.Context, userID string) ([]models.SavedLocation, error)
	DeleteSavedLocation(ctx context.Context, userID, savedLocationID string) error
	NearbyListings(ctx context.Context, listingID string) ([]models.Listing, error)
	AreaListings(ctx context.Context, params locations.AreaParams) ([]models.Listing, error)
}

type LocationHandler struct {
	service LocationServiceInterface
}

func NewLocationHandler(service LocationServiceInterface) *LocationHandler {
	return &LocationHandler{service: service}
}

// ListLocationsHandler handles GET /locations?parent_id=&level=
func (h *LocationHandler) ListLocationsHandler(c *gin.Context) {
	parentID, level := c.Query("parent_id"), models.LocationLevel(c.Query("level"))
	locs, err := h.service.ListLocations(c.Request.Context(), parentID, level)
	if err != nil {
		helpers.HandleServiceError(c, "ListLocationsHandler", "error listing locations", err, map[string]any{
			"parent_id": parentID,
			"level":     level,
		})
		return
	}
	if locs == nil {
		locs = []models.Location{}
	}

	utils.JSONResponse(c, http.StatusOK, locs, "locations retrieved successfully")
	helpers.LogSuccess("ListLocationsHandler", "locations retrieved successfully", map[string]any{"count": len(locs)})
}

// SearchLocationsHandler handles GET /locations/search?q=
func (h *LocationHandler) SearchLocationsHandler(c *gin.Context) {
	query := c.Query("q")
	views, err := h.service.SearchLocations(c.Request.Context(), query)
	if err != nil {
		helpers.HandleServiceError(c, "SearchLocationsHandler", "error searching locations", err, map[string]any{"q": query})
		return
	}
	if views == nil {
		views = []models.LocationView{}
	}

	utils.JSONResponse(c, http.StatusOK, views, "locations retrieved successfully")
	helpers.LogSuccess("SearchLocationsHandler", "locations retrieved successfully", map[string]any{
		"q":     query,
		"count": len(views),
	})
}

// CreateLocationHandler handles POST /admin/locations
func (h *LocationHandler) CreateLocationHandler(c *gin.Context) {
	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateLocationHandler", err)
		return
	}

	loc, err := h.service.CreateLocation(c.Request.Context(), locations.LocationInput{
		Name:      req.Name,
		NameEn:    req.NameEn,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		ParentID:  req.ParentID,
		Level:     models.LocationLevel(req.Level),
	})
	if err != nil {
		helpers.HandleServiceError(c, "CreateLocationHandler", "failed to create location", err, map[string]any{"name": req.Name})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, loc, "location created successfully")
	helpers.LogSuccess("CreateLocationHandler", "location created successfully", map[string]any{
		"location_id": loc.LocationID,
		"level":       loc.Level,
	})
}

// MyLocationsHandler handles GET /locations/saved
func (h *LocationHandler) MyLocationsHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "MyLocationsHandler")
	if !ok {
		return
	}
	saved, err := h.service.MyLocations(c.Request.Context(), user.UserID)
	if err != nil {
		helpers.HandleServiceError(c, "MyLocationsHandler", "error listing saved locations", err, map[string]any{"user_id": user.UserID})
		return
	}
	if saved == nil {
		saved = []models.SavedLocation{}
	}

	utils.JSONResponse(c, http.StatusOK, saved, "saved locations retrieved successfully")
	helpers.LogSuccess("MyLocationsHandler", "saved locations retrieved successfully", map[string]any{
		"user_id": user.UserID,
		"count":   len(saved),
	})
}

// SaveLocationHandler handles POST /locations/saved
func (h *LocationHandler) SaveLocationHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "SaveLocationHandler")
	if !ok {
		return
	}
	var req SaveLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SaveLocationHandler", err)
		return
	}

	saved, err := h.service.SaveLocation(c.Request.Context(), user.UserID, locations.SavedLocationInput{
		Name:      req.Name,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Address:   req.Address,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		helpers.HandleServiceError(c, "SaveLocationHandler", "failed to save location", err, map[string]any{"user_id": user.UserID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, saved, "location saved successfully")
	helpers.LogSuccess("SaveLocationHandler", "location saved successfully", map[string]any{
		"saved_location_id": saved.SavedLocationID,
		"is_default":        saved.IsDefault,
	})
}

// DeleteSavedLocationHandler handles DELETE /locations/saved/:saved_location_id
func (h *LocationHandler) DeleteSavedLocationHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "DeleteSavedLocationHandler")
	if !ok {
		return
	}
	savedID := c.Param("saved_location_id")
	if err := h.service.DeleteSavedLocation(c.Request.Context(), user.UserID, savedID); err != nil {
		helpers.HandleServiceError(c, "DeleteSavedLocationHandler", "failed to delete saved location", err, map[string]any{"saved_location_id": savedID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"saved_location_id": savedID}, "saved location deleted successfully")
	helpers.LogSuccess("DeleteSavedLocationHandler", "saved location deleted successfully", map[string]any{"saved_location_id": savedID})
}

// NearbyListingsHandler handles GET /listings/:listing_id/nearby
func (h *LocationHandler) NearbyListingsHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	listings, err := h.service.NearbyListings(c.Request.Context(), listingID)
	if err != nil {
		helpers.HandleServiceError(c, "NearbyListingsHandler", "error retrieving nearby listings", err, map[string]any{"listing_id": listingID})
		return
	}
	if listings == nil {
		listings = []models.Listing{}
	}

	utils.JSONResponse(c, http.StatusOK, listings, "nearby listings retrieved successfully")
	helpers.LogSuccess("NearbyListingsHandler", "nearby listings retrieved successfully", map[string]any{
		"listing_id": listingID,
		"count":      len(listings),
	})
}

// AreaListingsHandler handles GET /locations/map?category=&min_price=&max_price=
func (h *LocationHandler) AreaListingsHandler(c *gin.Context) {
	params := locations.AreaParams{CategorySlug: c.Query("category")}
	var err error
	if params.MinPrice, err = helpers.QueryDecimal(c, "min_price"); err != nil {
		helpers.HandleBindError(c, "AreaListingsHandler", err)
		return
	}
	if params.MaxPrice, err = helpers.QueryDecimal(c, "max_price"); err != nil {
		helpers.HandleBindError(c, "AreaListingsHandler", err)
		return
	}

	listings, err := h.service.AreaListings(c.Request.Context(), params)
	if err != nil {
		helpers.HandleServiceError(c, "AreaListingsHandler", "error retrieving map listings", err, map[string]any{"category": params.CategorySlug})
		return
	}
	if listings == nil {
		listings = []models.Listing{}
	}

	utils.JSONResponse(c, http.StatusOK, listings, "map listings retrieved successfully")
	helpers.LogSuccess("AreaListingsHandler", "map listings retrieved successfully", map[string]any{
		"category": params.CategorySlug,
		"count":    len(listings),
	})
}
