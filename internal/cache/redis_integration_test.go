//go:build integration

package cache

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"dalal-market/internal/models"

	"github.com/ory/dockertest/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

var redisClient *redis.Client

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	resource, err := pool.Run("redis", "7-alpine", nil)
	if err != nil {
		log.Fatalf("Could not start redis resource: %s", err)
	}
	_ = resource.Expire(120)

	addr := fmt.Sprintf("localhost:%s", resource.GetPort("6379/tcp"))
	if err := pool.Retry(func() error {
		client, err := NewRedisClient(context.Background(), addr, "", 0)
		if err != nil {
			return err
		}
		redisClient = client
		return nil
	}); err != nil {
		log.Fatalf("Could not connect to redis: %s", err)
	}

	code := m.Run()

	_ = redisClient.Close()
	if err := pool.Purge(resource); err != nil {
		log.Printf("Could not purge redis resource: %s", err)
	}
	os.Exit(code)
}

func TestRedisListingCache(t *testing.T) {
	ctx := context.Background()
	c := NewRedisListingCache(redisClient, time.Minute)

	_, ok, err := c.GetListing(ctx, "l1")
	require.NoError(t, err)
	require.False(t, ok)

	view := models.ListingView{Listing: models.Listing{ListingID: "l1", Title: "Camry"}, CategoryPath: "Cars"}
	require.NoError(t, c.SetListing(ctx, view))

	got, ok, err := c.GetListing(ctx, "l1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Camry", got.Title)
	require.Equal(t, "Cars", got.CategoryPath)

	require.NoError(t, c.DeleteListings(ctx, "l1"))
	_, ok, err = c.GetListing(ctx, "l1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisIdempotencyStore(t *testing.T) {
	ctx := context.Background()
	s := NewRedisIdempotencyStore(redisClient, time.Hour)

	_, reserved, err := s.Reserve(ctx, "k1")
	require.NoError(t, err)
	require.True(t, reserved)

	stored, reserved, err := s.Reserve(ctx, "k1")
	require.NoError(t, err)
	require.False(t, reserved)
	require.True(t, stored.Pending())

	resp := StoredResponse{Status: 201, ContentType: "application/json", Body: []byte(`{"ok":true}`)}
	require.NoError(t, s.Complete(ctx, "k1", resp))

	stored, reserved, err = s.Reserve(ctx, "k1")
	require.NoError(t, err)
	require.False(t, reserved)
	require.Equal(t, resp, stored)

	ttl, err := redisClient.TTL(ctx, idempotencyKey("k1")).Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0), "complete keeps the original ttl")

	require.NoError(t, s.Release(ctx, "k1"))
	_, reserved, err = s.Reserve(ctx, "k1")
	require.NoError(t, err)
	require.True(t, reserved)
}
