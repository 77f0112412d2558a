package bidding

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"dalal-market/internal/events"
	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"
	"dalal-market/internal/repository"
	"dalal-market/utils"

	"github.com/shopspring/decimal"
)

const (
	DefaultDurationHours = 24
	MaxDurationHours     = 720
	bidsShown            = 10
)

// MinBidIncrement is how much a bid must exceed the current bid by
var MinBidIncrement = decimal.NewFromInt(10)

// errNothingToClose aborts a close attempt on an auction that is no longer due
var errNothingToClose = errors.New("auction not due for closing")

// Observer receives bidding outcomes for metrics
type Observer interface {
	ObserveBid(outcome, reason string)
	ObserveAuctionClosed()
}

// BiddingService defines the business logic for auctions and bidding
type BiddingService struct {
	repo      repository.AuctionDB
	listings  repository.ListingDB
	publisher events.Publisher
	observer  Observer
	now       func() time.Time
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB, listings repository.ListingDB, publisher events.Publisher, observer Observer) *BiddingService {
	return &BiddingService{
		repo:      repo,
		listings:  listings,
		publisher: publisher,
		observer:  observer,
		now:       time.Now,
	}
}

// CreateAuction opens an auction on a listing owned by sellerID
func (s *BiddingService) CreateAuction(ctx context.Context, sellerID, listingID string, startingBid decimal.Decimal, durationHours int) (models.Auction, error) {
	if sellerID == "" || listingID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing listingID or sellerID", marketerrors.ErrInvalidInput)
	}
	if !startingBid.IsPositive() {
		return models.Auction{}, fmt.Errorf("service: %w - starting bid must be positive", marketerrors.ErrInvalidInput)
	}
	if durationHours == 0 {
		durationHours = DefaultDurationHours
	}
	if durationHours < 1 || durationHours > MaxDurationHours {
		return models.Auction{}, fmt.Errorf("service: %w - duration must be between 1 and %d hours", marketerrors.ErrInvalidInput, MaxDurationHours)
	}

	listing, err := s.listings.GetListing(ctx, listingID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to load listing %s: %w", listingID, err)
	}
	if listing.SellerID != sellerID {
		return models.Auction{}, fmt.Errorf("service: %w - listing %s belongs to another seller", marketerrors.ErrForbidden, listingID)
	}
	if listing.Status == models.ListingSold || listing.Status == models.ListingCancelled {
		return models.Auction{}, fmt.Errorf("service: %w - listing is %s", marketerrors.ErrListingUnavailable, listing.Status)
	}

	now := s.now().UTC()
	auction := models.Auction{
		AuctionID:   utils.GenerateID(),
		ListingID:   listingID,
		SellerID:    sellerID,
		StartingBid: startingBid,
		CurrentBid:  startingBid,
		StartTime:   now,
		EndTime:     now.Add(time.Duration(durationHours) * time.Hour),
		Status:      models.AuctionActive,
		CreatedAt:   now,
	}
	if err := s.repo.CreateAuction(ctx, auction); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction for listing %s: %w", listingID, err)
	}
	return auction, nil
}

// PlaceBid validates and records a bid while holding the auction lock
func (s *BiddingService) PlaceBid(ctx context.Context, auctionID, bidderID string, amount decimal.Decimal) (models.Bid, error) {
	if auctionID == "" || bidderID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing auctionID or bidderID", marketerrors.ErrInvalidInput)
	}
	if !amount.IsPositive() {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", marketerrors.ErrInvalidInput)
	}

	now := s.now().UTC()
	var bid models.Bid
	auction, err := s.repo.UpdateAuctionLocked(ctx, auctionID, func(a *models.Auction, _ []models.Bid) (repository.AuctionWrite, error) {
		if a.Status != models.AuctionActive {
			return repository.AuctionWrite{}, marketerrors.ErrAuctionInactive
		}
		if a.Expired(now) {
			return repository.AuctionWrite{}, marketerrors.ErrAuctionEnded
		}
		if a.SellerID == bidderID {
			return repository.AuctionWrite{}, marketerrors.ErrOwnBid
		}
		minimum := a.CurrentBid.Add(MinBidIncrement)
		if amount.LessThan(minimum) {
			return repository.AuctionWrite{}, &marketerrors.BidTooLowError{Minimum: minimum}
		}

		bid = models.Bid{
			BidID:     utils.GenerateID(),
			AuctionID: a.AuctionID,
			BidderID:  bidderID,
			Amount:    amount,
			CreatedAt: now,
		}
		a.CurrentBid = amount
		a.HighestBidderID = bidderID
		return repository.AuctionWrite{NewBid: &bid}, nil
	})
	if err != nil {
		s.observeBid("rejected", rejectionReason(err))
		if errors.Is(err, marketerrors.ErrAuctionEnded) {
			if _, _, closeErr := s.closeAuction(ctx, auctionID); closeErr != nil {
				utils.Warn("failed to close expired auction", map[string]any{"auction_id": auctionID, "error": closeErr.Error()})
			}
		}
		return models.Bid{}, fmt.Errorf("service: failed to place bid on auction %s by user %s: %w", auctionID, bidderID, err)
	}

	s.observeBid("accepted", "")
	events.PublishOrLog(ctx, s.publisher, events.SubjectBidPlaced, events.BidPlaced{
		AuctionID: auction.AuctionID,
		ListingID: auction.ListingID,
		BidID:     bid.BidID,
		BidderID:  bid.BidderID,
		Amount:    bid.Amount,
		At:        bid.CreatedAt,
	})
	return bid, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, marketerrors.ErrBidTooLow):
		return "too_low"
	case errors.Is(err, marketerrors.ErrOwnBid):
		return "own_auction"
	case errors.Is(err, marketerrors.ErrAuctionEnded):
		return "ended"
	case errors.Is(err, marketerrors.ErrAuctionInactive):
		return "inactive"
	case errors.Is(err, marketerrors.ErrAuctionNotFound):
		return "not_found"
	default:
		return "error"
	}
}

func (s *BiddingService) observeBid(outcome, reason string) {
	if s.observer != nil {
		s.observer.ObserveBid(outcome, reason)
	}
}

// closeAuction closes an active auction whose end time has passed. The bool
// reports whether this call did the closing.
func (s *BiddingService) closeAuction(ctx context.Context, auctionID string) (models.Auction, bool, error) {
	now := s.now().UTC()
	auction, err := s.repo.UpdateAuctionLocked(ctx, auctionID, func(a *models.Auction, bids []models.Bid) (repository.AuctionWrite, error) {
		if a.Status != models.AuctionActive || !a.Expired(now) {
			return repository.AuctionWrite{}, errNothingToClose
		}
		a.Status = models.AuctionClosed
		winner, ok := models.WinningBid(bids)
		if !ok {
			return repository.AuctionWrite{}, nil
		}
		a.CurrentBid = winner.Amount
		a.HighestBidderID = winner.BidderID
		return repository.AuctionWrite{WinningBidID: winner.BidID}, nil
	})
	if errors.Is(err, errNothingToClose) {
		current, getErr := s.repo.GetAuction(ctx, auctionID)
		return current, false, getErr
	}
	if err != nil {
		return models.Auction{}, false, err
	}

	if s.observer != nil {
		s.observer.ObserveAuctionClosed()
	}
	events.PublishOrLog(ctx, s.publisher, events.SubjectAuctionClosed, events.AuctionClosed{
		AuctionID:  auction.AuctionID,
		ListingID:  auction.ListingID,
		SellerID:   auction.SellerID,
		WinnerID:   auction.HighestBidderID,
		WinningBid: auction.CurrentBid,
		At:         now,
	})
	utils.Info("auction closed", map[string]any{
		"auction_id": auction.AuctionID,
		"winner_id":  auction.HighestBidderID,
		"amount":     auction.CurrentBid.String(),
	})
	return auction, true, nil
}

// CloseExpired closes every active auction whose end time has passed
func (s *BiddingService) CloseExpired(ctx context.Context) (int, error) {
	ids, err := s.repo.ListExpiredAuctions(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("service: failed to list expired auctions: %w", err)
	}
	closed := 0
	var errs []error
	for _, id := range ids {
		_, didClose, err := s.closeAuction(ctx, id)
		if err != nil {
			errs = append(errs, fmt.Errorf("close auction %s: %w", id, err))
			continue
		}
		if didClose {
			closed++
		}
	}
	return closed, errors.Join(errs...)
}

// RunSweeper closes expired auctions every interval until ctx is cancelled
func (s *BiddingService) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	utils.Info("auction sweeper started", map[string]any{"interval": interval.String()})
	for {
		select {
		case <-ctx.Done():
			utils.Info("auction sweeper stopped", nil)
			return
		case <-ticker.C:
			closed, err := s.CloseExpired(ctx)
			if err != nil {
				utils.Error("auction sweep failed", map[string]any{"error": err.Error()})
			}
			if closed > 0 {
				utils.Info("auction sweep closed auctions", map[string]any{"closed": closed})
			}
		}
	}
}

// GetAuction returns the auction detail as seen by viewerID, closing it first if it has expired
func (s *BiddingService) GetAuction(ctx context.Context, auctionID, viewerID string) (models.AuctionView, error) {
	if auctionID == "" {
		return models.AuctionView{}, fmt.Errorf("service: %w - empty auction ID", marketerrors.ErrInvalidInput)
	}

	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return models.AuctionView{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	now := s.now().UTC()
	if auction.Status == models.AuctionActive && auction.Expired(now) {
		auction, _, err = s.closeAuction(ctx, auctionID)
		if err != nil {
			return models.AuctionView{}, fmt.Errorf("service: failed to close auction %s: %w", auctionID, err)
		}
	}

	bids, err := s.repo.GetBidsByAuction(ctx, auctionID)
	if err != nil {
		return models.AuctionView{}, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}
	models.SortBids(bids)

	view := models.AuctionView{
		Auction:        auction,
		MinimumNextBid: auction.CurrentBid.Add(MinBidIncrement),
	}
	if listing, err := s.listings.GetListing(ctx, auction.ListingID); err == nil {
		view.ListingTitle = listing.Title
	} else if !errors.Is(err, marketerrors.ErrListingNotFound) {
		return models.AuctionView{}, fmt.Errorf("service: failed to get listing %s: %w", auction.ListingID, err)
	}

	for i := range bids {
		if viewerID != "" && bids[i].BidderID == viewerID {
			b := bids[i]
			view.UserHighestBid = &b
			break
		}
	}
	if len(bids) > bidsShown {
		bids = bids[:bidsShown]
	}
	view.Bids = bids

	if auction.EndTime.After(now) {
		remaining := int64(auction.EndTime.Sub(now) / time.Second)
		view.TimeRemainingSeconds = &remaining
	}
	return view, nil
}

// ListActiveAuctions returns open auctions ending soonest first
func (s *BiddingService) ListActiveAuctions(ctx context.Context) ([]models.Auction, error) {
	auctions, err := s.repo.ListAuctions(ctx, models.AuctionFilter{
		Status:    models.AuctionActive,
		EndsAfter: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list active auctions: %w", err)
	}
	return auctions, nil
}

// MyAuctions returns the auctions userID created and the ones they bid on, newest first
func (s *BiddingService) MyAuctions(ctx context.Context, userID string) (models.MyAuctions, error) {
	if userID == "" {
		return models.MyAuctions{}, fmt.Errorf("service: %w - empty user ID", marketerrors.ErrInvalidInput)
	}
	created, err := s.repo.ListAuctions(ctx, models.AuctionFilter{SellerID: userID})
	if err != nil {
		return models.MyAuctions{}, fmt.Errorf("service: failed to list auctions for seller %s: %w", userID, err)
	}
	participated, err := s.repo.ListAuctions(ctx, models.AuctionFilter{BidderID: userID})
	if err != nil {
		return models.MyAuctions{}, fmt.Errorf("service: failed to list auctions for bidder %s: %w", userID, err)
	}
	newestFirst(created)
	newestFirst(participated)
	return models.MyAuctions{Created: created, Participated: participated}, nil
}

func newestFirst(auctions []models.Auction) {
	sort.SliceStable(auctions, func(i, j int) bool {
		return auctions[i].CreatedAt.After(auctions[j].CreatedAt)
	})
}

// CancelAuction cancels an active auction on behalf of its seller
func (s *BiddingService) CancelAuction(ctx context.Context, auctionID, userID string) (models.Auction, error) {
	if auctionID == "" || userID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing auctionID or userID", marketerrors.ErrInvalidInput)
	}
	auction, err := s.repo.UpdateAuctionLocked(ctx, auctionID, func(a *models.Auction, _ []models.Bid) (repository.AuctionWrite, error) {
		if a.SellerID != userID {
			return repository.AuctionWrite{}, marketerrors.ErrForbidden
		}
		if a.Status != models.AuctionActive {
			return repository.AuctionWrite{}, marketerrors.ErrAuctionInactive
		}
		a.Status = models.AuctionCancelled
		return repository.AuctionWrite{}, nil
	})
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to cancel auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// GetBids returns all bids for an auction, highest first
func (s *BiddingService) GetBids(ctx context.Context, auctionID string) ([]models.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", marketerrors.ErrInvalidInput)
	}
	bids, err := s.repo.GetBidsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}
	models.SortBids(bids)
	return bids, nil
}

// GetWinningBid returns the highest bid for an auction
func (s *BiddingService) GetWinningBid(ctx context.Context, auctionID string) (models.Bid, error) {
	if auctionID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty auction ID", marketerrors.ErrInvalidInput)
	}
	bid, err := s.repo.GetWinningBid(ctx, auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for auction %s: %w", auctionID, err)
	}
	return bid, nil
}
