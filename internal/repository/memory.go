package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of Store.
// A single mutex guards every map so multi-entity writes stay atomic.
type MemoryRepo struct {
	mu sync.RWMutex

	users map[string]models.User // key: userID

	categories map[string]models.Category // key: categoryID

	listings      map[string]models.Listing               // key: listingID
	details       map[string]models.ListingDetails        // key: listingID
	images        map[string][]models.ListingImage        // key: listingID
	statusChanges map[string][]models.ListingStatusChange // key: listingID

	auctions map[string]models.Auction // key: auctionID
	bids     map[string][]models.Bid   // key: auctionID

	orders  map[string]models.Order  // key: orderID
	reviews map[string]models.Review // key: reviewID

	conversations map[string]models.Conversation // key: conversationID
	messages      map[string][]models.Message    // key: conversationID

	locations      map[string]models.Location      // key: locationID
	savedLocations map[string]models.SavedLocation // key: savedLocationID

	inquiries map[string]models.Inquiry // key: inquiryID
}

var _ Store = (*MemoryRepo)(nil)

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:          make(map[string]models.User),
		categories:     make(map[string]models.Category),
		listings:       make(map[string]models.Listing),
		details:        make(map[string]models.ListingDetails),
		images:         make(map[string][]models.ListingImage),
		statusChanges:  make(map[string][]models.ListingStatusChange),
		auctions:       make(map[string]models.Auction),
		bids:           make(map[string][]models.Bid),
		orders:         make(map[string]models.Order),
		reviews:        make(map[string]models.Review),
		conversations:  make(map[string]models.Conversation),
		messages:       make(map[string][]models.Message),
		locations:      make(map[string]models.Location),
		savedLocations: make(map[string]models.SavedLocation),
		inquiries:      make(map[string]models.Inquiry),
	}
}

// CreateUser stores a new user; username and email are unique case-insensitively
func (r *MemoryRepo) CreateUser(_ context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserID]; ok {
		return fmt.Errorf("create user %s: %w", user.UserID, marketerrors.ErrDuplicate)
	}
	for _, u := range r.users {
		if strings.EqualFold(u.Username, user.Username) {
			return fmt.Errorf("create user: username %q: %w", user.Username, marketerrors.ErrDuplicate)
		}
		if user.Email != "" && strings.EqualFold(u.Email, user.Email) {
			return fmt.Errorf("create user: email %q: %w", user.Email, marketerrors.ErrDuplicate)
		}
	}
	r.users[user.UserID] = user
	return nil
}

// GetUser returns a user by id
func (r *MemoryRepo) GetUser(_ context.Context, userID string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return models.User{}, fmt.Errorf("get user %s: %w", userID, marketerrors.ErrUserNotFound)
	}
	return user, nil
}

// GetUserByLogin returns the user whose username or email matches login
func (r *MemoryRepo) GetUserByLogin(_ context.Context, login string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Username, login) || (u.Email != "" && strings.EqualFold(u.Email, login)) {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("get user by login %q: %w", login, marketerrors.ErrUserNotFound)
}

// UpdateUser replaces a stored user
func (r *MemoryRepo) UpdateUser(_ context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserID]; !ok {
		return fmt.Errorf("update user %s: %w", user.UserID, marketerrors.ErrUserNotFound)
	}
	for id, u := range r.users {
		if id == user.UserID {
			continue
		}
		if user.Email != "" && strings.EqualFold(u.Email, user.Email) {
			return fmt.Errorf("update user: email %q: %w", user.Email, marketerrors.ErrDuplicate)
		}
	}
	r.users[user.UserID] = user
	return nil
}

// ListUsers returns users matching the filter, newest first
func (r *MemoryRepo) ListUsers(_ context.Context, filter models.UserFilter) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		switch filter.Type {
		case models.UserTypeSellers:
			if !u.IsSeller {
				continue
			}
		case models.UserTypeVerified:
			if !u.IsVerified {
				continue
			}
		case models.UserTypeStaff:
			if !u.IsStaff {
				continue
			}
		}
		if search != "" && !matchesAny(search, u.Username, u.Email, u.FirstName, u.LastName) {
			continue
		}
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].DateJoined.After(users[j].DateJoined) })
	return users, nil
}

// matchesAny reports whether any field contains the lower-cased needle
func matchesAny(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
