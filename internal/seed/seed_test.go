package seed

import (
	"context"
	"testing"
	"time"

	accounts "dalal-market/internal/accountService"
	"dalal-market/internal/auth"
	"dalal-market/internal/cache"
	catalog "dalal-market/internal/catalogService"
	"dalal-market/internal/events"
	locations "dalal-market/internal/locationService"
	"dalal-market/internal/models"
	"dalal-market/internal/repository"

	"github.com/stretchr/testify/require"
)

func newSeeder() (*Seeder, *repository.MemoryRepo) {
	repo := repository.NewMemoryRepo()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	acc := accounts.NewAccountService(repo, repo, repo, tokens)
	cat := catalog.NewCatalogService(repo, repo, repo, repo, cache.NewMemoryListingCache(time.Minute), nil, &events.Recorder{})
	loc := locations.NewLocationService(repo, repo, repo)
	return New(repo, acc, cat, loc), repo
}

func TestSeeder_Run(t *testing.T) {
	ctx := context.Background()
	seeder, repo := newSeeder()
	opts := Options{AdminPassword: "admin-password", SamplePassword: "sample-password"}

	summary, err := seeder.Run(ctx, opts)
	require.NoError(t, err)
	require.False(t, summary.Skipped)
	require.Equal(t, 3, summary.Users)
	require.Equal(t, 10, summary.Categories)
	require.Equal(t, 10, summary.Locations)
	require.Equal(t, 6, summary.Listings)

	admin, err := repo.GetUserByLogin(ctx, AdminUsername)
	require.NoError(t, err)
	require.True(t, admin.IsStaff)

	seller, err := repo.GetUserByLogin(ctx, "seller1")
	require.NoError(t, err)
	require.True(t, seller.IsSeller)
	require.True(t, seller.IsVerified)

	listings, err := repo.SearchListings(ctx, models.ListingFilter{SellerID: seller.UserID})
	require.NoError(t, err)
	require.Len(t, listings, 6)

	kinds := map[models.DetailKind]int{}
	for _, l := range listings {
		require.True(t, l.IsPublic(), l.Title)
		details, err := repo.GetDetails(ctx, l.ListingID)
		require.NoError(t, err)
		kinds[details.Kind()]++
	}
	require.Equal(t, map[models.DetailKind]int{
		models.DetailCar:          1,
		models.DetailRealEstate:   2,
		models.DetailHotelBooking: 1,
		models.DetailNone:         2,
	}, kinds)

	// seeding twice leaves the data alone
	again, err := seeder.Run(ctx, opts)
	require.NoError(t, err)
	require.True(t, again.Skipped)

	all, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, all, 10)
}

func TestSeeder_RunRequiresPasswords(t *testing.T) {
	seeder, _ := newSeeder()
	_, err := seeder.Run(context.Background(), Options{AdminPassword: "admin-password"})
	require.Error(t, err)
}
