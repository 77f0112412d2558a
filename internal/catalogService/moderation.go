package catalog

import (
	"context"
	"fmt"
	"strings"

	"dalal-market/internal/events"
	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"
	"dalal-market/internal/repository"
)

// Bulk moderation actions
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
	ActionHide    = "hide"
)

// applyStatus writes the status, audits it and tells the seller pipeline about each change
func (s *CatalogService) applyStatus(ctx context.Context, actorID string, ids []string, status models.ListingStatus, approve bool, reason string) ([]models.Listing, error) {
	updated, err := s.listings.SetListingStatus(ctx, ids, repository.StatusUpdate{
		ActorID:      actorID,
		Status:       status,
		MarkApproved: approve,
		Reason:       reason,
		At:           s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to set status %s: %w", status, err)
	}
	if len(updated) == 0 {
		return nil, fmt.Errorf("service: set status %s: %w", status, marketerrors.ErrListingNotFound)
	}

	changed := make([]string, 0, len(updated))
	for _, listing := range updated {
		changed = append(changed, listing.ListingID)

		event := events.ListingStatusChanged{
			ListingID: listing.ListingID,
			SellerID:  listing.SellerID,
			ActorID:   actorID,
			To:        status,
			Reason:    reason,
			At:        listing.UpdatedAt,
		}
		if history, err := s.listings.ListStatusChanges(ctx, listing.ListingID); err == nil && len(history) > 0 {
			event.From = history[len(history)-1].From
		}
		events.PublishOrLog(ctx, s.publisher, events.SubjectListingStatusChanged, event)
	}
	s.invalidate(ctx, changed...)
	return updated, nil
}

// ApproveListing makes a listing public
func (s *CatalogService) ApproveListing(ctx context.Context, actorID, listingID string) (models.Listing, error) {
	updated, err := s.applyStatus(ctx, actorID, []string{listingID}, models.ListingActive, true, "")
	if err != nil {
		return models.Listing{}, err
	}
	return updated[0], nil
}

// RejectListing cancels a listing, recording why
func (s *CatalogService) RejectListing(ctx context.Context, actorID, listingID, reason string) (models.Listing, error) {
	updated, err := s.applyStatus(ctx, actorID, []string{listingID}, models.ListingCancelled, false, strings.TrimSpace(reason))
	if err != nil {
		return models.Listing{}, err
	}
	return updated[0], nil
}

// BulkAction applies one moderation action to many listings and reports how many changed
func (s *CatalogService) BulkAction(ctx context.Context, actorID, action string, listingIDs []string) (int, error) {
	ids := make([]string, 0, len(listingIDs))
	seen := make(map[string]bool, len(listingIDs))
	for _, id := range listingIDs {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return 0, fmt.Errorf("service: %w - no listings selected", marketerrors.ErrInvalidInput)
	}

	var (
		status  models.ListingStatus
		approve bool
	)
	switch action {
	case ActionApprove:
		status, approve = models.ListingActive, true
	case ActionReject:
		status = models.ListingCancelled
	case ActionHide:
		status = models.ListingHidden
	default:
		return 0, fmt.Errorf("service: %w - unknown action %q", marketerrors.ErrInvalidInput, action)
	}

	updated, err := s.applyStatus(ctx, actorID, ids, status, approve, "bulk "+action)
	if err != nil {
		return 0, err
	}
	return len(updated), nil
}

// PendingListings returns listings awaiting approval, optionally narrowed by
// category slug and seller username substring
func (s *CatalogService) PendingListings(ctx context.Context, categorySlug, sellerQuery string) ([]models.Listing, error) {
	filter := models.ListingFilter{
		Statuses:       []models.ListingStatus{models.ListingPendingApproval},
		SellerUsername: strings.TrimSpace(sellerQuery),
		Sort:           models.SortNewest,
	}
	if categorySlug != "" {
		category, err := s.categories.GetCategoryBySlug(ctx, categorySlug)
		if err != nil {
			return nil, fmt.Errorf("service: failed to get category %s: %w", categorySlug, err)
		}
		filter.CategoryID = category.CategoryID
	}
	listings, err := s.listings.SearchListings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list pending listings: %w", err)
	}
	return listings, nil
}
