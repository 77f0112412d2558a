package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"
	"dalal-market/utils"
)

// CreateCategory stores a category; slugs are unique
func (r *MemoryRepo) CreateCategory(_ context.Context, category models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[category.CategoryID]; ok {
		return fmt.Errorf("create category %s: %w", category.CategoryID, marketerrors.ErrDuplicate)
	}
	for _, c := range r.categories {
		if c.Slug == category.Slug {
			return fmt.Errorf("create category: slug %q: %w", category.Slug, marketerrors.ErrDuplicate)
		}
	}
	r.categories[category.CategoryID] = category
	return nil
}

// UpdateCategory replaces a stored category
func (r *MemoryRepo) UpdateCategory(_ context.Context, category models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[category.CategoryID]; !ok {
		return fmt.Errorf("update category %s: %w", category.CategoryID, marketerrors.ErrCategoryNotFound)
	}
	for id, c := range r.categories {
		if id != category.CategoryID && c.Slug == category.Slug {
			return fmt.Errorf("update category: slug %q: %w", category.Slug, marketerrors.ErrDuplicate)
		}
	}
	r.categories[category.CategoryID] = category
	return nil
}

// GetCategory returns a category by id
func (r *MemoryRepo) GetCategory(_ context.Context, categoryID string) (models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[categoryID]
	if !ok {
		return models.Category{}, fmt.Errorf("get category %s: %w", categoryID, marketerrors.ErrCategoryNotFound)
	}
	return c, nil
}

// GetCategoryBySlug returns a category by slug
func (r *MemoryRepo) GetCategoryBySlug(_ context.Context, slug string) (models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return models.Category{}, fmt.Errorf("get category by slug %q: %w", slug, marketerrors.ErrCategoryNotFound)
}

// ListCategories returns every category ordered by name
func (r *MemoryRepo) ListCategories(_ context.Context) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// CreateListing stores a new listing
func (r *MemoryRepo) CreateListing(_ context.Context, listing models.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[listing.ListingID]; ok {
		return fmt.Errorf("create listing %s: %w", listing.ListingID, marketerrors.ErrDuplicate)
	}
	if _, ok := r.categories[listing.CategoryID]; !ok {
		return fmt.Errorf("create listing: category %s: %w", listing.CategoryID, marketerrors.ErrCategoryNotFound)
	}
	r.listings[listing.ListingID] = listing
	return nil
}

// GetListing returns a listing by id
func (r *MemoryRepo) GetListing(_ context.Context, listingID string) (models.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.listings[listingID]
	if !ok {
		return models.Listing{}, fmt.Errorf("get listing %s: %w", listingID, marketerrors.ErrListingNotFound)
	}
	return l, nil
}

// UpdateListing replaces a stored listing
func (r *MemoryRepo) UpdateListing(_ context.Context, listing models.Listing) (models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.listings[listing.ListingID]
	if !ok {
		return models.Listing{}, fmt.Errorf("update listing %s: %w", listing.ListingID, marketerrors.ErrListingNotFound)
	}
	if _, ok := r.categories[listing.CategoryID]; !ok {
		return models.Listing{}, fmt.Errorf("update listing: category %s: %w", listing.CategoryID, marketerrors.ErrCategoryNotFound)
	}
	stored.Title = listing.Title
	stored.Description = listing.Description
	stored.Price = listing.Price
	stored.CategoryID = listing.CategoryID
	stored.Latitude = listing.Latitude
	stored.Longitude = listing.Longitude
	stored.UpdatedAt = listing.UpdatedAt
	r.listings[listing.ListingID] = stored
	return stored, nil
}

// IncrementViews bumps the view counter and returns the updated listing
func (r *MemoryRepo) IncrementViews(_ context.Context, listingID string) (models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.listings[listingID]
	if !ok {
		return models.Listing{}, fmt.Errorf("increment views %s: %w", listingID, marketerrors.ErrListingNotFound)
	}
	l.ViewsCount++
	r.listings[listingID] = l
	return l, nil
}

// SearchListings filters, sorts and pages listings
func (r *MemoryRepo) SearchListings(_ context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	sellerName := strings.ToLower(filter.SellerUsername)

	out := make([]models.Listing, 0)
	for _, l := range r.listings {
		if filter.ExcludeID != "" && l.ListingID == filter.ExcludeID {
			continue
		}
		if filter.CategoryID != "" && l.CategoryID != filter.CategoryID {
			continue
		}
		if filter.SellerID != "" && l.SellerID != filter.SellerID {
			continue
		}
		if sellerName != "" && !strings.Contains(strings.ToLower(r.users[l.SellerID].Username), sellerName) {
			continue
		}
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, l.Status) {
			continue
		}
		if filter.ApprovedOnly && !l.IsApproved {
			continue
		}
		if filter.MinPrice != nil && l.Price.LessThan(*filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && l.Price.GreaterThan(*filter.MaxPrice) {
			continue
		}
		if (filter.WithCoordinates || filter.Bounds != nil) && !l.HasCoordinates() {
			continue
		}
		if filter.Bounds != nil && !filter.Bounds.Contains(*l.Latitude, *l.Longitude) {
			continue
		}
		if query != "" && !matchesAny(query, l.Title, l.Description) {
			continue
		}
		out = append(out, l)
	}

	sortListings(out, filter.Sort)
	return page(out, filter.Offset, filter.Limit), nil
}

// CountListingsForCategory counts all and publicly visible listings in a category
func (r *MemoryRepo) CountListingsForCategory(_ context.Context, categoryID string) (int, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total, active int
	for _, l := range r.listings {
		if l.CategoryID != categoryID {
			continue
		}
		total++
		if l.IsPublic() {
			active++
		}
	}
	return total, active, nil
}

// SetListingStatus updates statuses and appends audit entries in one critical section
func (r *MemoryRepo) SetListingStatus(_ context.Context, ids []string, update StatusUpdate) ([]models.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]models.Listing, 0, len(ids))
	for _, id := range ids {
		l, ok := r.listings[id]
		if !ok {
			continue
		}
		change := models.ListingStatusChange{
			ChangeID:  utils.GenerateID(),
			ListingID: id,
			ActorID:   update.ActorID,
			From:      l.Status,
			To:        update.Status,
			Reason:    update.Reason,
			ChangedAt: update.At,
		}
		l.Status = update.Status
		if update.MarkApproved {
			l.IsApproved = true
		}
		l.UpdatedAt = update.At
		r.listings[id] = l
		r.statusChanges[id] = append(r.statusChanges[id], change)
		updated = append(updated, l)
	}
	return updated, nil
}

// ListStatusChanges returns a listing's audit trail, oldest first
func (r *MemoryRepo) ListStatusChanges(_ context.Context, listingID string) ([]models.ListingStatusChange, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.listings[listingID]; !ok {
		return nil, fmt.Errorf("list status changes %s: %w", listingID, marketerrors.ErrListingNotFound)
	}
	return append([]models.ListingStatusChange(nil), r.statusChanges[listingID]...), nil
}

// GetDetails returns the detail record of a listing, empty when none exists
func (r *MemoryRepo) GetDetails(_ context.Context, listingID string) (models.ListingDetails, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.listings[listingID]; !ok {
		return models.ListingDetails{}, fmt.Errorf("get details %s: %w", listingID, marketerrors.ErrListingNotFound)
	}
	return r.details[listingID], nil
}

// SaveDetails creates or replaces the listing's single detail record
func (r *MemoryRepo) SaveDetails(_ context.Context, listingID string, details models.ListingDetails) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[listingID]; !ok {
		return fmt.Errorf("save details %s: %w", listingID, marketerrors.ErrListingNotFound)
	}
	existing := r.details[listingID].Kind()
	if existing != models.DetailNone && existing != details.Kind() {
		return fmt.Errorf("save %s details for listing %s: has %s: %w", details.Kind(), listingID, existing, marketerrors.ErrDetailConflict)
	}
	r.details[listingID] = details
	return nil
}

// AddImage attaches an image; a main image demotes any previous main image
func (r *MemoryRepo) AddImage(_ context.Context, image models.ListingImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[image.ListingID]; !ok {
		return fmt.Errorf("add image to listing %s: %w", image.ListingID, marketerrors.ErrListingNotFound)
	}
	imgs := r.images[image.ListingID]
	if image.IsMain {
		for i := range imgs {
			imgs[i].IsMain = false
		}
	}
	r.images[image.ListingID] = append(imgs, image)
	return nil
}

// ListImages returns a listing's images, main image first
func (r *MemoryRepo) ListImages(_ context.Context, listingID string) ([]models.ListingImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	imgs := append([]models.ListingImage(nil), r.images[listingID]...)
	sort.SliceStable(imgs, func(i, j int) bool { return imgs[i].IsMain && !imgs[j].IsMain })
	return imgs, nil
}

func containsStatus(statuses []models.ListingStatus, s models.ListingStatus) bool {
	for _, st := range statuses {
		if st == s {
			return true
		}
	}
	return false
}

// sortListings applies one of the listing sort orders; newest is the default
func sortListings(listings []models.Listing, order string) {
	sort.SliceStable(listings, func(i, j int) bool {
		a, b := listings[i], listings[j]
		switch order {
		case models.SortViews:
			if a.ViewsCount != b.ViewsCount {
				return a.ViewsCount > b.ViewsCount
			}
		case models.SortPriceAsc:
			if !a.Price.Equal(b.Price) {
				return a.Price.LessThan(b.Price)
			}
		case models.SortPriceDesc:
			if !a.Price.Equal(b.Price) {
				return a.Price.GreaterThan(b.Price)
			}
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ListingID < b.ListingID
	})
}

func page[T any](items []T, offset, limit int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return []T{}
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
