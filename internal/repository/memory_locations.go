package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"

	"github.com/shopspring/decimal"
)

// CreateLocation stores a location node
func (r *MemoryRepo) CreateLocation(_ context.Context, location models.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.locations[location.LocationID]; ok {
		return fmt.Errorf("create location %s: %w", location.LocationID, marketerrors.ErrDuplicate)
	}
	r.locations[location.LocationID] = location
	return nil
}

// GetLocation returns a location by id
func (r *MemoryRepo) GetLocation(_ context.Context, locationID string) (models.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.locations[locationID]
	if !ok {
		return models.Location{}, fmt.Errorf("get location %s: %w", locationID, marketerrors.ErrLocationNotFound)
	}
	return l, nil
}

// ListLocations returns locations matching the filter ordered by name
func (r *MemoryRepo) ListLocations(_ context.Context, filter models.LocationFilter) ([]models.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]models.Location, 0)
	for _, l := range r.locations {
		if filter.ActiveOnly && !l.IsActive {
			continue
		}
		if filter.ParentID != "" && l.ParentID != filter.ParentID {
			continue
		}
		if filter.Level != "" && l.Level != filter.Level {
			continue
		}
		if query != "" && !matchesAny(query, l.Name, l.NameEn) {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].LocationID < out[j].LocationID
	})
	return page(out, 0, filter.Limit), nil
}

// CreateSavedLocation stores a saved location, keeping at most one default per user
func (r *MemoryRepo) CreateSavedLocation(_ context.Context, saved models.SavedLocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if saved.IsDefault {
		for id, s := range r.savedLocations {
			if s.UserID == saved.UserID && s.IsDefault {
				s.IsDefault = false
				r.savedLocations[id] = s
			}
		}
	}
	r.savedLocations[saved.SavedLocationID] = saved
	return nil
}

// GetSavedLocation returns a saved location by id
func (r *MemoryRepo) GetSavedLocation(_ context.Context, savedLocationID string) (models.SavedLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.savedLocations[savedLocationID]
	if !ok {
		return models.SavedLocation{}, fmt.Errorf("get saved location %s: %w", savedLocationID, marketerrors.ErrLocationNotFound)
	}
	return s, nil
}

// ListSavedLocations returns a user's saved locations, default first then by name
func (r *MemoryRepo) ListSavedLocations(_ context.Context, userID string) ([]models.SavedLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.SavedLocation, 0)
	for _, s := range r.savedLocations {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsDefault != out[j].IsDefault {
			return out[i].IsDefault
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// DeleteSavedLocation removes a saved location
func (r *MemoryRepo) DeleteSavedLocation(_ context.Context, savedLocationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.savedLocations[savedLocationID]; !ok {
		return fmt.Errorf("delete saved location %s: %w", savedLocationID, marketerrors.ErrLocationNotFound)
	}
	delete(r.savedLocations, savedLocationID)
	return nil
}

// CountListingsByStatus counts listings per status
func (r *MemoryRepo) CountListingsByStatus(_ context.Context) (map[models.ListingStatus]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[models.ListingStatus]int)
	for _, l := range r.listings {
		counts[l.Status]++
	}
	return counts, nil
}

// CountListingsByCategory counts listings per category name, largest first
func (r *MemoryRepo) CountListingsByCategory(_ context.Context) ([]models.KeyCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byName := make(map[string]int)
	for _, l := range r.listings {
		byName[r.categories[l.CategoryID].Name]++
	}
	return sortedCounts(byName), nil
}

// CountListingsSince counts listings created at or after since
func (r *MemoryRepo) CountListingsSince(_ context.Context, since time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, l := range r.listings {
		if !l.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

// CountUsers counts users joined at or after since
func (r *MemoryRepo) CountUsers(_ context.Context, since time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, u := range r.users {
		if !u.DateJoined.Before(since) {
			count++
		}
	}
	return count, nil
}

// NewUsersPerDay counts sign-ups per UTC day since the given time, oldest day first
func (r *MemoryRepo) NewUsersPerDay(_ context.Context, since time.Time) ([]models.KeyCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byDay := make(map[string]int)
	for _, u := range r.users {
		if u.DateJoined.Before(since) {
			continue
		}
		byDay[u.DateJoined.UTC().Format(time.DateOnly)]++
	}
	out := make([]models.KeyCount, 0, len(byDay))
	for day, n := range byDay {
		out = append(out, models.KeyCount{Key: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// RecentUsers returns the newest users
func (r *MemoryRepo) RecentUsers(ctx context.Context, limit int) ([]models.User, error) {
	users, err := r.ListUsers(ctx, models.UserFilter{})
	if err != nil {
		return nil, err
	}
	return page(users, 0, limit), nil
}

// CountAuctionsByStatus counts auctions per status
func (r *MemoryRepo) CountAuctionsByStatus(_ context.Context) (map[models.AuctionStatus]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[models.AuctionStatus]int)
	for _, a := range r.auctions {
		counts[a.Status]++
	}
	return counts, nil
}

// CountOrdersByStatus counts orders per status
func (r *MemoryRepo) CountOrdersByStatus(_ context.Context) (map[models.OrderStatus]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[models.OrderStatus]int)
	for _, o := range r.orders {
		counts[o.Status]++
	}
	return counts, nil
}

// Revenue sums the totals of completed orders
func (r *MemoryRepo) Revenue(_ context.Context) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := decimal.Zero
	for _, o := range r.orders {
		if o.Status == models.OrderCompleted {
			total = total.Add(o.TotalAmount)
		}
	}
	return total, nil
}

// TopSellers ranks sellers by listing count
func (r *MemoryRepo) TopSellers(_ context.Context, limit int) ([]models.SellerCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	for _, l := range r.listings {
		counts[l.SellerID]++
	}
	out := make([]models.SellerCount, 0, len(counts))
	for sellerID, n := range counts {
		out = append(out, models.SellerCount{SellerID: sellerID, Username: r.users[sellerID].Username, Listings: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Listings != out[j].Listings {
			return out[i].Listings > out[j].Listings
		}
		return out[i].Username < out[j].Username
	})
	return page(out, 0, limit), nil
}

func sortedCounts(counts map[string]int) []models.KeyCount {
	out := make([]models.KeyCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, models.KeyCount{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}
