package cache

import (
	"context"
	"testing"
	"time"

	"dalal-market/internal/models"

	"github.com/stretchr/testify/require"
)

func TestMemoryListingCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryListingCache(time.Minute)
	c.now = func() time.Time { return now }

	_, ok, err := c.GetListing(ctx, "l1")
	require.NoError(t, err)
	require.False(t, ok)

	view := models.ListingView{Listing: models.Listing{ListingID: "l1", Title: "Camry"}, CategoryPath: "Cars"}
	require.NoError(t, c.SetListing(ctx, view))

	got, ok, err := c.GetListing(ctx, "l1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, view, got)

	require.NoError(t, c.DeleteListings(ctx, "l1", "missing"))
	_, ok, _ = c.GetListing(ctx, "l1")
	require.False(t, ok)

	require.NoError(t, c.SetListing(ctx, view))
	now = now.Add(2 * time.Minute)
	_, ok, _ = c.GetListing(ctx, "l1")
	require.False(t, ok, "entry should expire after ttl")
}

func TestMemoryIdempotencyStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryIdempotencyStore(time.Hour)
	s.now = func() time.Time { return now }

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

	require.NoError(t, s.Release(ctx, "k1"))
	_, reserved, _ = s.Reserve(ctx, "k1")
	require.True(t, reserved, "released key can be claimed again")

	now = now.Add(2 * time.Hour)
	_, reserved, _ = s.Reserve(ctx, "k1")
	require.True(t, reserved, "expired key can be claimed again")
}
