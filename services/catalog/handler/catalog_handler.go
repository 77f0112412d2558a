package handler

import (
	"context"
	"net/http"

	catalog "dalal-market/internal/catalogService"
	"dalal-market/internal/models"
	"dalal-market/services/helpers"
	"dalal-market/utils"

	"github.com/gin-gonic/gin"
)

type CatalogServiceInterface interface {
	CreateCategory(ctx context.Context, in catalog.CategoryInput) (models.Category, error)
	MoveCategory(ctx context.Context, categoryID, parentID string) (models.Category, error)
	ListRootCategories(ctx context.Context) ([]models.CategorySummary, error)
	GetCategory(ctx context.Context, slug string) (models.CategoryPage, error)

	CreateListing(ctx context.Context, sellerID string, in catalog.ListingInput) (models.Listing, error)
	UpdateListing(ctx context.Context, userID, listingID string, upd catalog.ListingUpdate) (models.Listing, error)
	CancelListing(ctx context.Context, userID, listingID string) (models.Listing, error)
	GetListing(ctx context.Context, listingID string, viewer catalog.Viewer) (models.ListingView, error)
	RelatedListings(ctx context.Context, listingID string) ([]models.Listing, error)
	SearchListings(ctx context.Context, params catalog.SearchParams) (catalog.ListingPage, error)
	MyListings(ctx context.Context, sellerID string) ([]models.Listing, error)
	ListingStatusHistory(ctx context.Context, listingID string) ([]models.ListingStatusChange, error)

	AttachDetails(ctx context.Context, userID, listingID string, details models.ListingDetails) (models.ListingDetails, error)
	UploadImage(ctx context.Context, userID, listingID string, data []byte) (models.ListingImage, error)
	ListImages(ctx context.Context, listingID string) ([]models.ListingImage, error)

	ApproveListing(ctx context.Context, actorID, listingID string) (models.Listing, error)
	RejectListing(ctx context.Context, actorID, listingID, reason string) (models.Listing, error)
	BulkAction(ctx context.Context, actorID, action string, listingIDs []string) (int, error)
	PendingListings(ctx context.Context, categorySlug, sellerQuery string) ([]models.Listing, error)
}

type CatalogHandler struct {
	service CatalogServiceInterface
}

func NewCatalogHandler(service CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListCategoriesHandler handles GET /categories
func (h *CatalogHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.service.ListRootCategories(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "ListCategoriesHandler", "error listing categories", err, nil)
		return
	}
	if categories == nil {
		categories = []models.CategorySummary{}
	}

	utils.JSONResponse(c, http.StatusOK, categories, "categories retrieved successfully")
	helpers.LogSuccess("ListCategoriesHandler", "categories retrieved successfully", map[string]any{"count": len(categories)})
}

// GetCategoryHandler handles GET /categories/:slug
func (h *CatalogHandler) GetCategoryHandler(c *gin.Context) {
	slug := c.Param("slug")
	page, err := h.service.GetCategory(c.Request.Context(), slug)
	if err != nil {
		helpers.HandleServiceError(c, "GetCategoryHandler", "error retrieving category", err, map[string]any{"slug": slug})
		return
	}

	utils.JSONResponse(c, http.StatusOK, page, "category retrieved successfully")
	helpers.LogSuccess("GetCategoryHandler", "category retrieved successfully", map[string]any{"slug": slug})
}

// CreateCategoryHandler handles POST /admin/categories
func (h *CatalogHandler) CreateCategoryHandler(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateCategoryHandler", err)
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), catalog.CategoryInput{
		Name:     req.Name,
		Slug:     req.Slug,
		ParentID: req.ParentID,
	})
	if err != nil {
		helpers.HandleServiceError(c, "CreateCategoryHandler", "failed to create category", err, map[string]any{"name": req.Name})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, category, "category created successfully")
	helpers.LogSuccess("CreateCategoryHandler", "category created successfully", map[string]any{
		"category_id": category.CategoryID,
		"slug":        category.Slug,
	})
}

// MoveCategoryHandler handles PUT /admin/categories/:category_id/parent
func (h *CatalogHandler) MoveCategoryHandler(c *gin.Context) {
	categoryID := c.Param("category_id")
	var req MoveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "MoveCategoryHandler", err)
		return
	}

	category, err := h.service.MoveCategory(c.Request.Context(), categoryID, req.ParentID)
	if err != nil {
		helpers.HandleServiceError(c, "MoveCategoryHandler", "failed to move category", err, map[string]any{
			"category_id": categoryID,
			"parent_id":   req.ParentID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, category, "category moved successfully")
	helpers.LogSuccess("MoveCategoryHandler", "category moved successfully", map[string]any{
		"category_id": categoryID,
		"parent_id":   req.ParentID,
	})
}
