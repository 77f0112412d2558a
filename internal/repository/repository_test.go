package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Helper to seed a category
func seedCategory(t *testing.T, repo *MemoryRepo, id, name, parentID string) models.Category {
	t.Helper()
	c := models.Category{CategoryID: id, Name: name, Slug: id, ParentID: parentID, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.CreateCategory(context.Background(), c))
	return c
}

// Helper to seed a listing
func seedListing(t *testing.T, repo *MemoryRepo, id, categoryID, sellerID string, price int64, status models.ListingStatus, approved bool, createdAt time.Time) models.Listing {
	t.Helper()
	l := models.Listing{
		ListingID:   id,
		Title:       fmt.Sprintf("%s title", id),
		Description: fmt.Sprintf("%s description", id),
		Price:       decimal.NewFromInt(price),
		CategoryID:  categoryID,
		SellerID:    sellerID,
		Status:      status,
		IsApproved:  approved,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	require.NoError(t, repo.CreateListing(context.Background(), l))
	return l
}

func ptr[T any](v T) *T { return &v }

// Test CreateUser uniqueness
func TestMemoryRepo_CreateUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateUser(ctx, models.User{UserID: "u1", Username: "Alice", Email: "alice@example.com"}))

	tests := []struct {
		name    string
		user    models.User
		wantErr error
	}{
		{name: "duplicate_id", user: models.User{UserID: "u1", Username: "other"}, wantErr: marketerrors.ErrDuplicate},
		{name: "duplicate_username_case_insensitive", user: models.User{UserID: "u2", Username: "alice"}, wantErr: marketerrors.ErrDuplicate},
		{name: "duplicate_email", user: models.User{UserID: "u3", Username: "bob", Email: "ALICE@example.com"}, wantErr: marketerrors.ErrDuplicate},
		{name: "valid_user", user: models.User{UserID: "u4", Username: "carol", Email: "carol@example.com"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := repo.CreateUser(ctx, tc.user)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}

	t.Run("login_by_email_or_username", func(t *testing.T) {
		u, err := repo.GetUserByLogin(ctx, "ALICE")
		require.NoError(t, err)
		require.Equal(t, "u1", u.UserID)

		u, err = repo.GetUserByLogin(ctx, "carol@example.com")
		require.NoError(t, err)
		require.Equal(t, "u4", u.UserID)

		_, err = repo.GetUserByLogin(ctx, "nobody")
		require.ErrorIs(t, err, marketerrors.ErrUserNotFound)
	})
}

// Test SearchListings filters, ordering and paging
func TestMemoryRepo_SearchListings(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	seedCategory(t, repo, "cars", "Cars", "")
	seedCategory(t, repo, "homes", "Homes", "")
	require.NoError(t, repo.CreateUser(ctx, models.User{UserID: "s1", Username: "seller_one"}))

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seedListing(t, repo, "l1", "cars", "s1", 1000, models.ListingActive, true, base)
	seedListing(t, repo, "l2", "cars", "s1", 5000, models.ListingActive, true, base.Add(time.Hour))
	seedListing(t, repo, "l3", "homes", "s2", 3000, models.ListingActive, true, base.Add(2*time.Hour))
	seedListing(t, repo, "l4", "cars", "s2", 2000, models.ListingPendingApproval, false, base.Add(3*time.Hour))

	l5 := seedListing(t, repo, "l5", "homes", "s2", 4000, models.ListingActive, true, base.Add(4*time.Hour))
	l5.Latitude, l5.Longitude = ptr(24.7), ptr(46.7)
	_, err := repo.UpdateListing(ctx, l5)
	require.NoError(t, err)

	public := []models.ListingStatus{models.ListingActive}

	tests := []struct {
		name   string
		filter models.ListingFilter
		want   []string
	}{
		{name: "public_newest_first", filter: models.ListingFilter{Statuses: public, ApprovedOnly: true}, want: []string{"l5", "l3", "l2", "l1"}},
		{name: "category", filter: models.ListingFilter{CategoryID: "cars"}, want: []string{"l4", "l2", "l1"}},
		{name: "price_range", filter: models.ListingFilter{MinPrice: ptr(decimal.NewFromInt(2000)), MaxPrice: ptr(decimal.NewFromInt(4000))}, want: []string{"l5", "l4", "l3"}},
		{name: "price_asc", filter: models.ListingFilter{Statuses: public, Sort: models.SortPriceAsc}, want: []string{"l1", "l3", "l5", "l2"}},
		{name: "seller_username", filter: models.ListingFilter{SellerUsername: "SELLER_ONE"}, want: []string{"l2", "l1"}},
		{name: "seller_username_substring", filter: models.ListingFilter{SellerUsername: "one"}, want: []string{"l2", "l1"}},
		{name: "query_matches_description", filter: models.ListingFilter{Query: "l3 desc"}, want: []string{"l3"}},
		{name: "with_coordinates", filter: models.ListingFilter{WithCoordinates: true}, want: []string{"l5"}},
		{name: "bounds_exclude", filter: models.ListingFilter{Bounds: &models.BoundingBox{MinLat: 0, MaxLat: 1, MinLng: 0, MaxLng: 1}}, want: []string{}},
		{name: "paging", filter: models.ListingFilter{Statuses: public, Offset: 1, Limit: 2}, want: []string{"l3", "l2"}},
		{name: "offset_past_end", filter: models.ListingFilter{Offset: 10}, want: []string{}},
		{name: "exclude_id", filter: models.ListingFilter{Statuses: public, ExcludeID: "l5", Limit: 1}, want: []string{"l3"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.SearchListings(ctx, tc.filter)
			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, l := range got {
				ids = append(ids, l.ListingID)
			}
			require.Equal(t, tc.want, ids)
		})
	}
}

// Test SetListingStatus changes only status fields and records an audit entry
func TestMemoryRepo_SetListingStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	seedCategory(t, repo, "cars", "Cars", "")
	before := seedListing(t, repo, "l1", "cars", "s1", 1000, models.ListingPendingApproval, false, time.Now().UTC())

	at := time.Now().UTC().Add(time.Minute)
	updated, err := repo.SetListingStatus(ctx, []string{"l1", "missing"}, StatusUpdate{
		ActorID:      "staff",
		Status:       models.ListingActive,
		MarkApproved: true,
		At:           at,
	})
	require.NoError(t, err)
	require.Len(t, updated, 1)

	after, err := repo.GetListing(ctx, "l1")
	require.NoError(t, err)
	require.Equal(t, models.ListingActive, after.Status)
	require.True(t, after.IsApproved)

	// everything except status, approval and updated_at is untouched
	after.Status, after.IsApproved, after.UpdatedAt = before.Status, before.IsApproved, before.UpdatedAt
	require.Equal(t, before, after)

	changes, err := repo.ListStatusChanges(ctx, "l1")
	require.NoError(t, err)
	require.Len(t, changes, 1)
	require.Equal(t, models.ListingPendingApproval, changes[0].From)
	require.Equal(t, models.ListingActive, changes[0].To)
	require.Equal(t, "staff", changes[0].ActorID)
}

// Test SaveDetails mutual exclusivity
func TestMemoryRepo_SaveDetails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	seedCategory(t, repo, "cars", "Cars", "")
	seedListing(t, repo, "l1", "cars", "s1", 1000, models.ListingActive, true, time.Now().UTC())

	car := models.ListingDetails{Car: &models.CarDetail{ListingID: "l1", Make: "Toyota", Model: "Corolla", Year: 2020}}
	require.NoError(t, repo.SaveDetails(ctx, "l1", car))

	// same kind replaces
	car.Car.Year = 2021
	require.NoError(t, repo.SaveDetails(ctx, "l1", car))

	err := repo.SaveDetails(ctx, "l1", models.ListingDetails{RealEstate: &models.RealEstateDetail{ListingID: "l1", PropertyType: "villa"}})
	require.ErrorIs(t, err, marketerrors.ErrDetailConflict)

	got, err := repo.GetDetails(ctx, "l1")
	require.NoError(t, err)
	require.Equal(t, models.DetailCar, got.Kind())
	require.Equal(t, 2021, got.Car.Year)

	err = repo.SaveDetails(ctx, "missing", car)
	require.ErrorIs(t, err, marketerrors.ErrListingNotFound)
}

// Test UpdateAuctionLocked persistence, rollback and serialisation
func TestMemoryRepo_UpdateAuctionLocked(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	newRepo := func(t *testing.T) *MemoryRepo {
		repo := NewMemoryRepo()
		seedCategory(t, repo, "cars", "Cars", "")
		seedListing(t, repo, "l1", "cars", "seller", 1000, models.ListingActive, true, time.Now().UTC())
		require.NoError(t, repo.CreateAuction(ctx, models.Auction{
			AuctionID:   "a1",
			ListingID:   "l1",
			SellerID:    "seller",
			StartingBid: decimal.NewFromInt(1000),
			CurrentBid:  decimal.NewFromInt(1000),
			EndTime:     time.Now().Add(time.Hour),
			Status:      models.AuctionActive,
		}))
		return repo
	}

	t.Run("duplicate_auction_for_listing", func(t *testing.T) {
		repo := newRepo(t)
		err := repo.CreateAuction(ctx, models.Auction{AuctionID: "a2", ListingID: "l1"})
		require.ErrorIs(t, err, marketerrors.ErrAuctionExists)
	})

	t.Run("error_discards_changes", func(t *testing.T) {
		repo := newRepo(t)
		boom := errors.New("boom")
		_, err := repo.UpdateAuctionLocked(ctx, "a1", func(a *models.Auction, _ []models.Bid) (AuctionWrite, error) {
			a.CurrentBid = decimal.NewFromInt(5000)
			return AuctionWrite{NewBid: &models.Bid{BidID: "b1", AuctionID: "a1"}}, boom
		})
		require.ErrorIs(t, err, boom)

		a, err := repo.GetAuction(ctx, "a1")
		require.NoError(t, err)
		require.True(t, a.CurrentBid.Equal(decimal.NewFromInt(1000)))
		require.Equal(t, 0, a.Version)

		bids, err := repo.GetBidsByAuction(ctx, "a1")
		require.NoError(t, err)
		require.Empty(t, bids)
	})

	t.Run("winning_bid_flag", func(t *testing.T) {
		repo := newRepo(t)
		now := time.Now().UTC()
		for i, amount := range []int64{1010, 1020} {
			bid := models.Bid{BidID: fmt.Sprintf("b%d", i), AuctionID: "a1", BidderID: "u", Amount: decimal.NewFromInt(amount), CreatedAt: now}
			_, err := repo.UpdateAuctionLocked(ctx, "a1", func(a *models.Auction, _ []models.Bid) (AuctionWrite, error) {
				a.CurrentBid = bid.Amount
				return AuctionWrite{NewBid: &bid}, nil
			})
			require.NoError(t, err)
		}
		a, err := repo.UpdateAuctionLocked(ctx, "a1", func(a *models.Auction, bids []models.Bid) (AuctionWrite, error) {
			winning, ok := models.WinningBid(bids)
			require.True(t, ok)
			a.Status = models.AuctionClosed
			return AuctionWrite{WinningBidID: winning.BidID}, nil
		})
		require.NoError(t, err)
		require.Equal(t, models.AuctionClosed, a.Status)
		require.Equal(t, 3, a.Version)

		winning, err := repo.GetWinningBid(ctx, "a1")
		require.NoError(t, err)
		require.Equal(t, "b1", winning.BidID)

		bids, err := repo.GetBidsByAuction(ctx, "a1")
		require.NoError(t, err)
		require.False(t, bids[0].IsWinning)
		require.True(t, bids[1].IsWinning)
	})

	t.Run("concurrent_increments_not_lost", func(t *testing.T) {
		repo := newRepo(t)
		var wg sync.WaitGroup
		concurrentCount := 50

		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.UpdateAuctionLocked(ctx, "a1", func(a *models.Auction, _ []models.Bid) (AuctionWrite, error) {
					a.CurrentBid = a.CurrentBid.Add(decimal.NewFromInt(10))
					return AuctionWrite{}, nil
				})
				require.NoError(t, err)
			}()
		}
		wg.Wait()

		a, err := repo.GetAuction(ctx, "a1")
		require.NoError(t, err)
		require.True(t, a.CurrentBid.Equal(decimal.NewFromInt(1000+10*int64(concurrentCount))))
		require.Equal(t, concurrentCount, a.Version)
	})

	t.Run("expired_auctions", func(t *testing.T) {
		repo := newRepo(t)
		ids, err := repo.ListExpiredAuctions(ctx, time.Now().Add(2*time.Hour))
		require.NoError(t, err)
		require.Equal(t, []string{"a1"}, ids)

		ids, err = repo.ListExpiredAuctions(ctx, time.Now())
		require.NoError(t, err)
		require.Empty(t, ids)
	})
}

// Test UpdateOrderLocked persists the mutation, marks the listing sold only when asked and rolls back on error
func TestMemoryRepo_UpdateOrderLocked(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	seedCategory(t, repo, "cars", "Cars", "")
	seedListing(t, repo, "l1", "cars", "seller", 1000, models.ListingActive, true, time.Now().UTC())
	require.NoError(t, repo.CreateOrder(ctx, models.Order{OrderID: "o1", ListingID: "l1", BuyerID: "buyer", SellerID: "seller", Status: models.OrderPending}))

	setStatus := func(status models.OrderStatus, sold bool) OrderMutation {
		return func(o *models.Order) (bool, error) {
			o.Status = status
			return sold, nil
		}
	}

	o, err := repo.UpdateOrderLocked(ctx, "o1", setStatus(models.OrderConfirmed, false))
	require.NoError(t, err)
	require.Equal(t, models.OrderConfirmed, o.Status)
	l, err := repo.GetListing(ctx, "l1")
	require.NoError(t, err)
	require.Equal(t, models.ListingActive, l.Status)

	boom := errors.New("boom")
	_, err = repo.UpdateOrderLocked(ctx, "o1", func(o *models.Order) (bool, error) {
		o.Status = models.OrderCancelled
		return true, boom
	})
	require.ErrorIs(t, err, boom)
	o, err = repo.GetOrder(ctx, "o1")
	require.NoError(t, err)
	require.Equal(t, models.OrderConfirmed, o.Status)

	_, err = repo.UpdateOrderLocked(ctx, "o1", setStatus(models.OrderCompleted, true))
	require.NoError(t, err)
	l, err = repo.GetListing(ctx, "l1")
	require.NoError(t, err)
	require.Equal(t, models.ListingSold, l.Status)

	_, err = repo.UpdateOrderLocked(ctx, "missing", setStatus(models.OrderCompleted, true))
	require.ErrorIs(t, err, marketerrors.ErrOrderNotFound)
}

// Test MarkRead only touches the receiver's messages
func TestMemoryRepo_MarkRead(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	now := time.Now().UTC()
	require.NoError(t, repo.CreateConversation(ctx, models.Conversation{ConversationID: "c1", ParticipantIDs: []string{"a", "b"}, CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, repo.CreateConversation(ctx, models.Conversation{ConversationID: "c2", ParticipantIDs: []string{"a", "b"}, CreatedAt: now, UpdatedAt: now}))

	add := func(id, conv, from, to string, offset time.Duration) {
		require.NoError(t, repo.AddMessage(ctx, models.Message{MessageID: id, ConversationID: conv, SenderID: from, ReceiverID: to, Content: id, CreatedAt: now.Add(offset)}))
	}
	add("m1", "c1", "a", "b", time.Second)
	add("m2", "c1", "b", "a", 2*time.Second)
	add("m3", "c1", "a", "b", 3*time.Second)
	add("m4", "c2", "a", "b", 4*time.Second)

	n, err := repo.MarkRead(ctx, "c1", "b")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	unread, err := repo.CountUnread(ctx, "c1", "a")
	require.NoError(t, err)
	require.Equal(t, 1, unread)

	unread, err = repo.CountUnread(ctx, "c2", "b")
	require.NoError(t, err)
	require.Equal(t, 1, unread)

	conv, err := repo.GetConversation(ctx, "c1")
	require.NoError(t, err)
	require.True(t, conv.UpdatedAt.Equal(now.Add(3*time.Second)))

	sent, received, err := repo.CountMessages(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, 3, sent)
	require.Equal(t, 1, received)

	// staff path: everything left unread in the conversation
	n, err = repo.MarkRead(ctx, "c1", "")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

// Test CreateSavedLocation keeps a single default
func TestMemoryRepo_SavedLocations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateSavedLocation(ctx, models.SavedLocation{SavedLocationID: "s1", UserID: "u", Name: "Work", IsDefault: true}))
	require.NoError(t, repo.CreateSavedLocation(ctx, models.SavedLocation{SavedLocationID: "s2", UserID: "u", Name: "Gym"}))
	require.NoError(t, repo.CreateSavedLocation(ctx, models.SavedLocation{SavedLocationID: "s3", UserID: "u", Name: "Home", IsDefault: true}))
	require.NoError(t, repo.CreateSavedLocation(ctx, models.SavedLocation{SavedLocationID: "s4", UserID: "other", Name: "Home", IsDefault: true}))

	saved, err := repo.ListSavedLocations(ctx, "u")
	require.NoError(t, err)
	require.Len(t, saved, 3)
	require.Equal(t, "s3", saved[0].SavedLocationID)
	require.True(t, saved[0].IsDefault)
	require.Equal(t, []string{"Gym", "Work"}, []string{saved[1].Name, saved[2].Name})
	require.False(t, saved[2].IsDefault)

	other, err := repo.GetSavedLocation(ctx, "s4")
	require.NoError(t, err)
	require.True(t, other.IsDefault)
}

// Test report aggregates
func TestMemoryRepo_Reports(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	now := time.Now().UTC()
	require.NoError(t, repo.CreateUser(ctx, models.User{UserID: "s1", Username: "alpha", DateJoined: now}))
	require.NoError(t, repo.CreateUser(ctx, models.User{UserID: "s2", Username: "beta", DateJoined: now.AddDate(0, 0, -40)}))
	seedCategory(t, repo, "cars", "Cars", "")
	seedCategory(t, repo, "homes", "Homes", "")
	seedListing(t, repo, "l1", "cars", "s1", 1000, models.ListingActive, true, now)
	seedListing(t, repo, "l2", "cars", "s1", 2000, models.ListingPendingApproval, false, now)
	seedListing(t, repo, "l3", "homes", "s2", 3000, models.ListingSold, true, now.AddDate(0, 0, -10))

	require.NoError(t, repo.CreateOrder(ctx, models.Order{OrderID: "o1", ListingID: "l1", Status: models.OrderCompleted, TotalAmount: decimal.RequireFromString("1500.50")}))
	require.NoError(t, repo.CreateOrder(ctx, models.Order{OrderID: "o2", ListingID: "l3", Status: models.OrderCompleted, TotalAmount: decimal.NewFromInt(3000)}))
	require.NoError(t, repo.CreateOrder(ctx, models.Order{OrderID: "o3", ListingID: "l3", Status: models.OrderPending, TotalAmount: decimal.NewFromInt(99)}))

	revenue, err := repo.Revenue(ctx)
	require.NoError(t, err)
	require.Equal(t, "4500.5", revenue.String())

	byStatus, err := repo.CountListingsByStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, byStatus[models.ListingActive])
	require.Equal(t, 1, byStatus[models.ListingPendingApproval])

	byCategory, err := repo.CountListingsByCategory(ctx)
	require.NoError(t, err)
	require.Equal(t, []models.KeyCount{{Key: "Cars", Count: 2}, {Key: "Homes", Count: 1}}, byCategory)

	sellers, err := repo.TopSellers(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []models.SellerCount{{SellerID: "s1", Username: "alpha", Listings: 2}}, sellers)

	week, err := repo.CountListingsSince(ctx, now.AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Equal(t, 2, week)

	users, err := repo.CountUsers(ctx, time.Time{})
	require.NoError(t, err)
	require.Equal(t, 2, users)

	perDay, err := repo.NewUsersPerDay(ctx, now.AddDate(0, 0, -30))
	require.NoError(t, err)
	require.Equal(t, []models.KeyCount{{Key: now.Format(time.DateOnly), Count: 1}}, perDay)
}
