package catalog

import (
	"context"
	"fmt"
	"time"

	"dalal-market/internal/cache"
	"dalal-market/internal/events"
	"dalal-market/internal/marketerrors"
	"dalal-market/internal/media"
	"dalal-market/internal/models"
	"dalal-market/internal/repository"
	"dalal-market/internal/tree"
	"dalal-market/utils"
)

// ImageUploader stores validated listing images
type ImageUploader interface {
	UploadListingImage(ctx context.Context, listingID string, data []byte) (media.Object, error)
}

// AuctionLookup finds the auction attached to a listing
type AuctionLookup interface {
	GetAuctionByListing(ctx context.Context, listingID string) (models.Auction, error)
}

// CatalogService manages categories, listings and their moderation
type CatalogService struct {
	categories repository.CategoryDB
	listings   repository.ListingDB
	users      repository.UserDB
	auctions   AuctionLookup
	cache      cache.ListingCache
	uploader   ImageUploader
	publisher  events.Publisher
	now        func() time.Time
}

func NewCatalogService(
	categories repository.CategoryDB,
	listings repository.ListingDB,
	users repository.UserDB,
	auctions AuctionLookup,
	listingCache cache.ListingCache,
	uploader ImageUploader,
	publisher events.Publisher,
) *CatalogService {
	return &CatalogService{
		categories: categories,
		listings:   listings,
		users:      users,
		auctions:   auctions,
		cache:      listingCache,
		uploader:   uploader,
		publisher:  publisher,
		now:        time.Now,
	}
}

// categoryLookup loads every category once and resolves tree nodes from memory
func (s *CatalogService) categoryLookup(ctx context.Context) (map[string]models.Category, tree.Lookup, error) {
	all, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("service: failed to list categories: %w", err)
	}
	byID := make(map[string]models.Category, len(all))
	for _, c := range all {
		byID[c.CategoryID] = c
	}
	lookup := func(id string) (tree.Node, error) {
		c, ok := byID[id]
		if !ok {
			return tree.Node{}, fmt.Errorf("category %s: %w", id, marketerrors.ErrCategoryNotFound)
		}
		return tree.Node{ID: c.CategoryID, Name: c.Name, ParentID: c.ParentID}, nil
	}
	return byID, lookup, nil
}

// invalidate drops cached listing payloads; a cache failure only costs freshness
func (s *CatalogService) invalidate(ctx context.Context, listingIDs ...string) {
	if s.cache == nil || len(listingIDs) == 0 {
		return
	}
	if err := s.cache.DeleteListings(ctx, listingIDs...); err != nil {
		utils.Warn("failed to invalidate listing cache", map[string]any{"listing_ids": listingIDs, "error": err.Error()})
	}
}

// ownedListing loads a listing and checks userID is its seller
func (s *CatalogService) ownedListing(ctx context.Context, userID, listingID string) (models.Listing, error) {
	listing, err := s.listings.GetListing(ctx, listingID)
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	if listing.SellerID != userID {
		return models.Listing{}, fmt.Errorf("service: %w - listing %s belongs to another seller", marketerrors.ErrForbidden, listingID)
	}
	return listing, nil
}
