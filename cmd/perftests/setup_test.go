package perftests

import (
	"context"
	"fmt"
	"time"

	bidding "dalal-market/internal/biddingService"
	"dalal-market/internal/metrics"
	"dalal-market/internal/models"
	"dalal-market/internal/repository"

	"github.com/shopspring/decimal"
)

const benchSeller = "bench_seller"

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, any) error { return nil }

func newBiddingService() (*repository.MemoryRepo, *bidding.BiddingService) {
	repo := repository.NewMemoryRepo()
	return repo, bidding.NewBiddingService(repo, repo, nopPublisher{}, metrics.New())
}

// openAuctions creates n active auctions owned by benchSeller, starting at startingBid
func openAuctions(repo *repository.MemoryRepo, svc *bidding.BiddingService, n int, startingBid int64) []string {
	ctx := context.Background()
	if err := repo.CreateUser(ctx, models.User{UserID: benchSeller, Username: benchSeller, Email: benchSeller + "@bench.local", IsSeller: true, IsActive: true}); err != nil {
		panic(err)
	}
	now := time.Now().UTC()
	if err := repo.CreateCategory(ctx, models.Category{CategoryID: "bench", Name: "Bench", Slug: "bench", CreatedAt: now}); err != nil {
		panic(err)
	}

	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		listing := models.Listing{
			ListingID:  fmt.Sprintf("listing_%d", i),
			Title:      fmt.Sprintf("Benchmark listing %d", i),
			Price:      decimal.NewFromInt(startingBid),
			CategoryID: "bench",
			SellerID:   benchSeller,
			Status:     models.ListingActive,
			IsApproved: true,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := repo.CreateListing(ctx, listing); err != nil {
			panic(err)
		}
		auction, err := svc.CreateAuction(ctx, benchSeller, listing.ListingID, decimal.NewFromInt(startingBid), bidding.MaxDurationHours)
		if err != nil {
			panic(err)
		}
		ids = append(ids, auction.AuctionID)
	}
	return ids
}
