//go:build integration

package postgres

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"
	"dalal-market/internal/repository"
	"dalal-market/utils"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testStore *Store

// TestMain starts a throwaway postgres container and applies migrations
func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	if err := pool.Client.Ping(); err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=market",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=market_test",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start postgres resource: %s", err)
	}
	_ = resource.Expire(300)

	dsn := fmt.Sprintf("postgres://market:secret@%s/market_test?sslmode=disable", resource.GetHostPort("5432/tcp"))
	if err := pool.Retry(func() error {
		db, err := Connect(context.Background(), dsn, 10)
		if err != nil {
			return err
		}
		testStore = NewStore(db)
		return nil
	}); err != nil {
		log.Fatalf("Could not connect to postgres: %s", err)
	}
	if err := RunMigrations(context.Background(), testStore.db); err != nil {
		log.Fatalf("Could not run migrations: %s", err)
	}

	code := m.Run()

	_ = testStore.Close()
	if err := pool.Purge(resource); err != nil {
		log.Printf("Could not purge postgres resource: %s", err)
	}
	os.Exit(code)
}

func seedMarket(t *testing.T) (seller, buyer models.User, listing models.Listing) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	seller = models.User{UserID: utils.GenerateID(), Username: "seller-" + utils.GenerateID()[:8], PasswordHash: "x", IsSeller: true, IsActive: true, DateJoined: now}
	buyer = models.User{UserID: utils.GenerateID(), Username: "buyer-" + utils.GenerateID()[:8], PasswordHash: "x", IsActive: true, DateJoined: now}
	require.NoError(t, testStore.CreateUser(ctx, seller))
	require.NoError(t, testStore.CreateUser(ctx, buyer))

	category := models.Category{CategoryID: utils.GenerateID(), Name: "Cars", Slug: "cars-" + utils.GenerateID()[:8], CreatedAt: now}
	require.NoError(t, testStore.CreateCategory(ctx, category))

	listing = models.Listing{
		ListingID:  utils.GenerateID(),
		Title:      "Toyota Camry",
		Price:      decimal.NewFromInt(1000),
		CategoryID: category.CategoryID,
		SellerID:   seller.UserID,
		Status:     models.ListingActive,
		IsApproved: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, testStore.CreateListing(ctx, listing))
	return seller, buyer, listing
}

func TestStore_UsersAndListings(t *testing.T) {
	ctx := context.Background()
	seller, _, listing := seedMarket(t)

	got, err := testStore.GetUserByLogin(ctx, seller.Username)
	require.NoError(t, err)
	require.Equal(t, seller.UserID, got.UserID)

	dup := seller
	dup.UserID = utils.GenerateID()
	require.ErrorIs(t, testStore.CreateUser(ctx, dup), marketerrors.ErrDuplicate)

	viewed, err := testStore.IncrementViews(ctx, listing.ListingID)
	require.NoError(t, err)
	require.Equal(t, 1, viewed.ViewsCount)

	updated, err := testStore.SetListingStatus(ctx, []string{listing.ListingID}, repository.StatusUpdate{
		ActorID: "staff", Status: models.ListingHidden, At: time.Now().UTC(),
	})
	require.NoError(t, err)
	require.Len(t, updated, 1)

	changes, err := testStore.ListStatusChanges(ctx, listing.ListingID)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	require.Equal(t, models.ListingActive, changes[0].From)
	require.Equal(t, models.ListingHidden, changes[0].To)

	car := models.ListingDetails{Car: &models.CarDetail{Make: "Toyota", Model: "Camry", Year: 2020, Transmission: "automatic", FuelType: "gasoline"}}
	require.NoError(t, testStore.SaveDetails(ctx, listing.ListingID, car))
	err = testStore.SaveDetails(ctx, listing.ListingID, models.ListingDetails{RealEstate: &models.RealEstateDetail{PropertyType: "villa", AreaSqm: decimal.NewFromInt(200)}})
	require.ErrorIs(t, err, marketerrors.ErrDetailConflict)
}

func TestStore_ConcurrentBidsSerialised(t *testing.T) {
	ctx := context.Background()
	seller, buyer, listing := seedMarket(t)

	auction := models.Auction{
		AuctionID:   utils.GenerateID(),
		ListingID:   listing.ListingID,
		SellerID:    seller.UserID,
		StartingBid: decimal.NewFromInt(1000),
		CurrentBid:  decimal.NewFromInt(1000),
		StartTime:   time.Now().UTC(),
		EndTime:     time.Now().UTC().Add(time.Hour),
		Status:      models.AuctionActive,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, testStore.CreateAuction(ctx, auction))
	require.ErrorIs(t, testStore.CreateAuction(ctx, models.Auction{AuctionID: utils.GenerateID(), ListingID: listing.ListingID, SellerID: seller.UserID, Status: models.AuctionActive}), marketerrors.ErrAuctionExists)

	// every writer offers the same amount; only the first to take the lock can win
	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := testStore.UpdateAuctionLocked(ctx, auction.AuctionID, func(a *models.Auction, _ []models.Bid) (repository.AuctionWrite, error) {
				amount := decimal.NewFromInt(1010)
				if amount.LessThan(a.CurrentBid.Add(decimal.NewFromInt(10))) {
					return repository.AuctionWrite{}, marketerrors.ErrBidTooLow
				}
				a.CurrentBid = amount
				a.HighestBidderID = buyer.UserID
				return repository.AuctionWrite{NewBid: &models.Bid{
					BidID: utils.GenerateID(), AuctionID: a.AuctionID, BidderID: buyer.UserID, Amount: amount, CreatedAt: time.Now().UTC(),
				}}, nil
			})
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1, accepted)

	bids, err := testStore.GetBidsByAuction(ctx, auction.AuctionID)
	require.NoError(t, err)
	require.Len(t, bids, 1)

	stored, err := testStore.GetAuction(ctx, auction.AuctionID)
	require.NoError(t, err)
	require.True(t, stored.CurrentBid.Equal(decimal.NewFromInt(1010)))
	require.Equal(t, buyer.UserID, stored.HighestBidderID)
}

func TestStore_OrderCompletionMarksListingSold(t *testing.T) {
	ctx := context.Background()
	seller, buyer, listing := seedMarket(t)

	order := models.Order{
		OrderID:     utils.GenerateID(),
		ListingID:   listing.ListingID,
		BuyerID:     buyer.UserID,
		SellerID:    seller.UserID,
		Quantity:    1,
		TotalAmount: listing.Price,
		Status:      models.OrderPending,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	require.NoError(t, testStore.CreateOrder(ctx, order))

	_, err := testStore.UpdateOrderLocked(ctx, order.OrderID, func(o *models.Order) (bool, error) {
		o.Status = models.OrderCompleted
		return true, nil
	})
	require.NoError(t, err)

	got, err := testStore.GetListing(ctx, listing.ListingID)
	require.NoError(t, err)
	require.Equal(t, models.ListingSold, got.Status)

	revenue, err := testStore.Revenue(ctx)
	require.NoError(t, err)
	require.True(t, revenue.GreaterThanOrEqual(decimal.NewFromInt(1000)))
}
