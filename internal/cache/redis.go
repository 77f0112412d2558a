package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dalal-market/internal/models"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to addr and pings it
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: ping redis %s: %w", addr, err)
	}
	return client, nil
}

type RedisListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisListingCache(client *redis.Client, ttl time.Duration) *RedisListingCache {
	return &RedisListingCache{client: client, ttl: ttl}
}

func (c *RedisListingCache) GetListing(ctx context.Context, listingID string) (models.ListingView, bool, error) {
	data, err := c.client.Get(ctx, listingKey(listingID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.ListingView{}, false, nil
	}
	if err != nil {
		return models.ListingView{}, false, fmt.Errorf("cache: get listing %s: %w", listingID, err)
	}
	var view models.ListingView
	if err := json.Unmarshal(data, &view); err != nil {
		return models.ListingView{}, false, fmt.Errorf("cache: decode listing %s: %w", listingID, err)
	}
	return view, true, nil
}

func (c *RedisListingCache) SetListing(ctx context.Context, view models.ListingView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("cache: encode listing %s: %w", view.ListingID, err)
	}
	return c.client.Set(ctx, listingKey(view.ListingID), data, c.ttl).Err()
}

func (c *RedisListingCache) DeleteListings(ctx context.Context, listingIDs ...string) error {
	if len(listingIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(listingIDs))
	for _, id := range listingIDs {
		keys = append(keys, listingKey(id))
	}
	return c.client.Del(ctx, keys...).Err()
}

// RedisIdempotencyStore keeps responses under SETNX-claimed keys
type RedisIdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisIdempotencyStore(client *redis.Client, ttl time.Duration) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{client: client, ttl: ttl}
}

func (s *RedisIdempotencyStore) Reserve(ctx context.Context, key string) (StoredResponse, bool, error) {
	pending, err := json.Marshal(StoredResponse{})
	if err != nil {
		return StoredResponse{}, false, err
	}
	// the key may expire between SETNX and GET, so try twice
	for range 2 {
		ok, err := s.client.SetNX(ctx, idempotencyKey(key), pending, s.ttl).Result()
		if err != nil {
			return StoredResponse{}, false, fmt.Errorf("cache: reserve %s: %w", key, err)
		}
		if ok {
			return StoredResponse{}, true, nil
		}
		data, err := s.client.Get(ctx, idempotencyKey(key)).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return StoredResponse{}, false, fmt.Errorf("cache: read %s: %w", key, err)
		}
		var stored StoredResponse
		if err := json.Unmarshal(data, &stored); err != nil {
			return StoredResponse{}, false, fmt.Errorf("cache: decode %s: %w", key, err)
		}
		return stored, false, nil
	}
	return StoredResponse{}, false, fmt.Errorf("cache: reserve %s: key kept expiring", key)
}

func (s *RedisIdempotencyStore) Complete(ctx context.Context, key string, resp StoredResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, idempotencyKey(key), data, redis.KeepTTL).Err()
}

func (s *RedisIdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, idempotencyKey(key)).Err()
}
