package cache

import (
	"context"
	"sync"
	"time"

	"dalal-market/internal/models"
)

// MemoryListingCache is the in-process ListingCache used when Redis is not configured
type MemoryListingCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]entry[models.ListingView]
}

func NewMemoryListingCache(ttl time.Duration) *MemoryListingCache {
	return &MemoryListingCache{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]entry[models.ListingView]),
	}
}

func (c *MemoryListingCache) GetListing(_ context.Context, listingID string) (models.ListingView, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[listingKey(listingID)]
	if !ok {
		return models.ListingView{}, false, nil
	}
	if e.expired(c.now()) {
		delete(c.items, listingKey(listingID))
		return models.ListingView{}, false, nil
	}
	return e.value, true, nil
}

func (c *MemoryListingCache) SetListing(_ context.Context, view models.ListingView) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[listingKey(view.ListingID)] = entry[models.ListingView]{value: view, expiresAt: c.now().Add(c.ttl)}
	return nil
}

func (c *MemoryListingCache) DeleteListings(_ context.Context, listingIDs ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range listingIDs {
		delete(c.items, listingKey(id))
	}
	return nil
}

type MemoryIdempotencyStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]entry[StoredResponse]
}

func NewMemoryIdempotencyStore(ttl time.Duration) *MemoryIdempotencyStore {
	return &MemoryIdempotencyStore{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]entry[StoredResponse]),
	}
}

func (s *MemoryIdempotencyStore) Reserve(_ context.Context, key string) (StoredResponse, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if e, ok := s.items[idempotencyKey(key)]; ok && !e.expired(now) {
		return e.value, false, nil
	}
	s.items[idempotencyKey(key)] = entry[StoredResponse]{expiresAt: now.Add(s.ttl)}
	return StoredResponse{}, true, nil
}

func (s *MemoryIdempotencyStore) Complete(_ context.Context, key string, resp StoredResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[idempotencyKey(key)]
	if !ok {
		e.expiresAt = s.now().Add(s.ttl)
	}
	e.value = resp
	s.items[idempotencyKey(key)] = e
	return nil
}

func (s *MemoryIdempotencyStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, idempotencyKey(key))
	return nil
}
