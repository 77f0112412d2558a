package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"
	"dalal-market/utils"

	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	relatedShown    = 4
)

// ListingInput carries the seller-editable fields of a new listing
type ListingInput struct {
	Title       string
	Description string
	Price       decimal.Decimal
	CategoryID  string
	Latitude    *float64
	Longitude   *float64
}

// ListingUpdate holds optional changes; nil fields are left untouched
type ListingUpdate struct {
	Title       *string
	Description *string
	Price       *decimal.Decimal
	CategoryID  *string
	Latitude    *float64
	Longitude   *float64
}

// SearchParams are the public search filters
type SearchParams struct {
	Query        string
	CategorySlug string
	SellerID     string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Sort         string
	Page         int
	PageSize     int
}

// ListingPage is one page of search results
type ListingPage struct {
	Listings []models.Listing `json:"listings"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	HasMore  bool             `json:"has_more"`
}

// Viewer identifies who is reading a listing; the zero value is anonymous
type Viewer struct {
	UserID string
	Staff  bool
}

func validateCoordinates(lat, lng *float64) error {
	if (lat == nil) != (lng == nil) {
		return fmt.Errorf("%w - latitude and longitude must be given together", marketerrors.ErrInvalidInput)
	}
	if lat == nil {
		return nil
	}
	if *lat < -90 || *lat > 90 || *lng < -180 || *lng > 180 {
		return fmt.Errorf("%w - coordinates out of range", marketerrors.ErrInvalidInput)
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%w - price cannot be negative", marketerrors.ErrInvalidInput)
	}
	return nil
}

// CreateListing stores a seller's listing awaiting staff approval
func (s *CatalogService) CreateListing(ctx context.Context, sellerID string, in ListingInput) (models.Listing, error) {
	seller, err := s.users.GetUser(ctx, sellerID)
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to get seller %s: %w", sellerID, err)
	}
	if !seller.IsSeller {
		return models.Listing{}, fmt.Errorf("service: %w - user %s is not a seller", marketerrors.ErrForbidden, sellerID)
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.Listing{}, fmt.Errorf("service: %w - title is required", marketerrors.ErrInvalidInput)
	}
	if err := validatePrice(in.Price); err != nil {
		return models.Listing{}, fmt.Errorf("service: %w", err)
	}
	if err := validateCoordinates(in.Latitude, in.Longitude); err != nil {
		return models.Listing{}, fmt.Errorf("service: %w", err)
	}
	if _, err := s.categories.GetCategory(ctx, in.CategoryID); err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to get category %s: %w", in.CategoryID, err)
	}

	now := s.now().UTC()
	listing := models.Listing{
		ListingID:   utils.GenerateID(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		SellerID:    sellerID,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Status:      models.ListingPendingApproval,
		IsApproved:  false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.listings.CreateListing(ctx, listing); err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to create listing: %w", err)
	}
	return listing, nil
}

// UpdateListing applies the owner's edits. Status and approval never change here.
func (s *CatalogService) UpdateListing(ctx context.Context, userID, listingID string, upd ListingUpdate) (models.Listing, error) {
	listing, err := s.ownedListing(ctx, userID, listingID)
	if err != nil {
		return models.Listing{}, err
	}
	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" {
			return models.Listing{}, fmt.Errorf("service: %w - title is required", marketerrors.ErrInvalidInput)
		}
		listing.Title = title
	}
	if upd.Description != nil {
		listing.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.Price != nil {
		if err := validatePrice(*upd.Price); err != nil {
			return models.Listing{}, fmt.Errorf("service: %w", err)
		}
		listing.Price = *upd.Price
	}
	if upd.CategoryID != nil && *upd.CategoryID != listing.CategoryID {
		if _, err := s.categories.GetCategory(ctx, *upd.CategoryID); err != nil {
			return models.Listing{}, fmt.Errorf("service: failed to get category %s: %w", *upd.CategoryID, err)
		}
		listing.CategoryID = *upd.CategoryID
	}
	if upd.Latitude != nil || upd.Longitude != nil {
		if err := validateCoordinates(upd.Latitude, upd.Longitude); err != nil {
			return models.Listing{}, fmt.Errorf("service: %w", err)
		}
		listing.Latitude, listing.Longitude = upd.Latitude, upd.Longitude
	}
	listing.UpdatedAt = s.now().UTC()

	stored, err := s.listings.UpdateListing(ctx, listing)
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to update listing %s: %w", listingID, err)
	}
	s.invalidate(ctx, listingID)
	return stored, nil
}

// CancelListing lets the owner withdraw a listing that has not been sold
func (s *CatalogService) CancelListing(ctx context.Context, userID, listingID string) (models.Listing, error) {
	listing, err := s.ownedListing(ctx, userID, listingID)
	if err != nil {
		return models.Listing{}, err
	}
	switch listing.Status {
	case models.ListingSold:
		return models.Listing{}, fmt.Errorf("service: %w - listing %s is sold", marketerrors.ErrListingUnavailable, listingID)
	case models.ListingCancelled:
		return listing, nil
	}
	updated, err := s.applyStatus(ctx, userID, []string{listingID}, models.ListingCancelled, false, "cancelled by seller")
	if err != nil {
		return models.Listing{}, err
	}
	return updated[0], nil
}

func (s *CatalogService) buildView(ctx context.Context, listing models.Listing) (models.ListingView, error) {
	path, err := s.CategoryPath(ctx, listing.CategoryID)
	if err != nil {
		return models.ListingView{}, err
	}
	details, err := s.listings.GetDetails(ctx, listing.ListingID)
	if err != nil {
		return models.ListingView{}, fmt.Errorf("service: failed to get details of listing %s: %w", listing.ListingID, err)
	}
	images, err := s.listings.ListImages(ctx, listing.ListingID)
	if err != nil {
		return models.ListingView{}, fmt.Errorf("service: failed to list images of listing %s: %w", listing.ListingID, err)
	}
	return models.ListingView{Listing: listing, CategoryPath: path, Details: details, Images: images}, nil
}

// cachedView serves the listing payload from cache, filling it from the store on a miss
func (s *CatalogService) cachedView(ctx context.Context, listingID string) (models.ListingView, error) {
	if s.cache != nil {
		view, ok, err := s.cache.GetListing(ctx, listingID)
		if err != nil {
			utils.Warn("listing cache read failed", map[string]any{"listing_id": listingID, "error": err.Error()})
		} else if ok {
			return view, nil
		}
	}

	listing, err := s.listings.GetListing(ctx, listingID)
	if err != nil {
		return models.ListingView{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	view, err := s.buildView(ctx, listing)
	if err != nil {
		return models.ListingView{}, err
	}
	if s.cache != nil {
		if err := s.cache.SetListing(ctx, view); err != nil {
			utils.Warn("listing cache write failed", map[string]any{"listing_id": listingID, "error": err.Error()})
		}
	}
	return view, nil
}

// GetListing returns the listing payload and counts the view. Listings that are
// not public are only visible to their seller and staff.
func (s *CatalogService) GetListing(ctx context.Context, listingID string, viewer Viewer) (models.ListingView, error) {
	view, err := s.cachedView(ctx, listingID)
	if err != nil {
		return models.ListingView{}, err
	}
	if !view.IsPublic() && !viewer.Staff && viewer.UserID != view.SellerID {
		return models.ListingView{}, fmt.Errorf("service: listing %s is not public: %w", listingID, marketerrors.ErrListingNotFound)
	}

	counted, err := s.listings.IncrementViews(ctx, listingID)
	if err != nil {
		return models.ListingView{}, fmt.Errorf("service: failed to count view of listing %s: %w", listingID, err)
	}
	view.Listing = counted

	if s.auctions != nil {
		auction, err := s.auctions.GetAuctionByListing(ctx, listingID)
		switch {
		case err == nil:
			view.Auction = &auction
		case !errors.Is(err, marketerrors.ErrAuctionNotFound):
			return models.ListingView{}, fmt.Errorf("service: failed to get auction of listing %s: %w", listingID, err)
		}
	}
	return view, nil
}

// RelatedListings returns other public listings from the same category
func (s *CatalogService) RelatedListings(ctx context.Context, listingID string) ([]models.Listing, error) {
	listing, err := s.listings.GetListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	related, err := s.listings.SearchListings(ctx, models.ListingFilter{
		CategoryID:   listing.CategoryID,
		Statuses:     []models.ListingStatus{models.ListingActive},
		ApprovedOnly: true,
		ExcludeID:    listingID,
		Sort:         models.SortNewest,
		Limit:        relatedShown,
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list related listings of %s: %w", listingID, err)
	}
	return related, nil
}

// SearchListings searches public listings: active and approved only
func (s *CatalogService) SearchListings(ctx context.Context, params SearchParams) (ListingPage, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	size := params.PageSize
	switch {
	case size <= 0:
		size = defaultPageSize
	case size > maxPageSize:
		size = maxPageSize
	}
	switch params.Sort {
	case "", models.SortNewest, models.SortViews, models.SortPriceAsc, models.SortPriceDesc:
	default:
		return ListingPage{}, fmt.Errorf("service: %w - unknown sort %q", marketerrors.ErrInvalidInput, params.Sort)
	}
	if params.MinPrice != nil && params.MaxPrice != nil && params.MinPrice.GreaterThan(*params.MaxPrice) {
		return ListingPage{}, fmt.Errorf("service: %w - min_price exceeds max_price", marketerrors.ErrInvalidInput)
	}

	filter := models.ListingFilter{
		Query:        strings.TrimSpace(params.Query),
		SellerID:     params.SellerID,
		Statuses:     []models.ListingStatus{models.ListingActive},
		ApprovedOnly: true,
		MinPrice:     params.MinPrice,
		MaxPrice:     params.MaxPrice,
		Sort:         params.Sort,
		Limit:        size + 1,
		Offset:       (page - 1) * size,
	}
	if params.CategorySlug != "" {
		category, err := s.categories.GetCategoryBySlug(ctx, params.CategorySlug)
		if err != nil {
			return ListingPage{}, fmt.Errorf("service: failed to get category %s: %w", params.CategorySlug, err)
		}
		filter.CategoryID = category.CategoryID
	}

	listings, err := s.listings.SearchListings(ctx, filter)
	if err != nil {
		return ListingPage{}, fmt.Errorf("service: failed to search listings: %w", err)
	}
	hasMore := len(listings) > size
	if hasMore {
		listings = listings[:size]
	}
	return ListingPage{Listings: listings, Page: page, PageSize: size, HasMore: hasMore}, nil
}

// MyListings returns every listing of the seller whatever its status
func (s *CatalogService) MyListings(ctx context.Context, sellerID string) ([]models.Listing, error) {
	listings, err := s.listings.SearchListings(ctx, models.ListingFilter{SellerID: sellerID, Sort: models.SortNewest})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list listings of seller %s: %w", sellerID, err)
	}
	return listings, nil
}

// ListingStatusHistory returns the audit trail of a listing
func (s *CatalogService) ListingStatusHistory(ctx context.Context, listingID string) ([]models.ListingStatusChange, error) {
	if _, err := s.listings.GetListing(ctx, listingID); err != nil {
		return nil, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	changes, err := s.listings.ListStatusChanges(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list status changes of %s: %w", listingID, err)
	}
	return changes, nil
}
