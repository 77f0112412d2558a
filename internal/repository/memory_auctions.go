package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"
)

// CreateAuction stores an auction; a listing can carry only one
func (r *MemoryRepo) CreateAuction(_ context.Context, auction models.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[auction.ListingID]; !ok {
		return fmt.Errorf("create auction: listing %s: %w", auction.ListingID, marketerrors.ErrListingNotFound)
	}
	for _, a := range r.auctions {
		if a.ListingID == auction.ListingID {
			return fmt.Errorf("create auction for listing %s: %w", auction.ListingID, marketerrors.ErrAuctionExists)
		}
	}
	r.auctions[auction.AuctionID] = auction
	return nil
}

// GetAuction returns an auction by id
func (r *MemoryRepo) GetAuction(_ context.Context, auctionID string) (models.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return models.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, marketerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// GetAuctionByListing returns the auction attached to a listing
func (r *MemoryRepo) GetAuctionByListing(_ context.Context, listingID string) (models.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.auctions {
		if a.ListingID == listingID {
			return a, nil
		}
	}
	return models.Auction{}, fmt.Errorf("get auction for listing %s: %w", listingID, marketerrors.ErrAuctionNotFound)
}

// ListAuctions returns auctions matching the filter ordered by end time
func (r *MemoryRepo) ListAuctions(_ context.Context, filter models.AuctionFilter) ([]models.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Auction, 0)
	for id, a := range r.auctions {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if !filter.EndsAfter.IsZero() && !a.EndTime.After(filter.EndsAfter) {
			continue
		}
		if filter.SellerID != "" && a.SellerID != filter.SellerID {
			continue
		}
		if filter.BidderID != "" && !hasBidFrom(r.bids[id], filter.BidderID) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].EndTime.Equal(out[j].EndTime) {
			return out[i].EndTime.Before(out[j].EndTime)
		}
		return out[i].AuctionID < out[j].AuctionID
	})
	return out, nil
}

// GetBidsByAuction returns all bids for an auction in placement order
func (r *MemoryRepo) GetBidsByAuction(_ context.Context, auctionID string) ([]models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, marketerrors.ErrAuctionNotFound)
	}
	return append([]models.Bid(nil), r.bids[auctionID]...), nil
}

// GetWinningBid returns the highest bid for an auction
func (r *MemoryRepo) GetWinningBid(_ context.Context, auctionID string) (models.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	winning, ok := models.WinningBid(r.bids[auctionID])
	if !ok {
		return models.Bid{}, fmt.Errorf("get winning bid for auction %s: %w", auctionID, marketerrors.ErrNoBids)
	}
	return winning, nil
}

// UpdateAuctionLocked applies fn under the store's write lock
func (r *MemoryRepo) UpdateAuctionLocked(_ context.Context, auctionID string, fn AuctionMutation) (models.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.auctions[auctionID]
	if !ok {
		return models.Auction{}, fmt.Errorf("update auction %s: %w", auctionID, marketerrors.ErrAuctionNotFound)
	}

	auction := current
	bids := append([]models.Bid(nil), r.bids[auctionID]...)
	write, err := fn(&auction, bids)
	if err != nil {
		return models.Auction{}, err
	}

	stored := r.bids[auctionID]
	if write.NewBid != nil {
		stored = append(stored, *write.NewBid)
	}
	if write.WinningBidID != "" {
		for i := range stored {
			stored[i].IsWinning = stored[i].BidID == write.WinningBidID
		}
	}
	r.bids[auctionID] = stored

	auction.Version = current.Version + 1
	r.auctions[auctionID] = auction
	return auction, nil
}

// ListExpiredAuctions returns ids of active auctions whose end time has passed
func (r *MemoryRepo) ListExpiredAuctions(_ context.Context, now time.Time) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0)
	for id, a := range r.auctions {
		if a.Status == models.AuctionActive && a.Expired(now) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func hasBidFrom(bids []models.Bid, bidderID string) bool {
	for _, b := range bids {
		if b.BidderID == bidderID {
			return true
		}
	}
	return false
}

// CreateOrder stores a new order
func (r *MemoryRepo) CreateOrder(_ context.Context, order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.OrderID]; ok {
		return fmt.Errorf("create order %s: %w", order.OrderID, marketerrors.ErrDuplicate)
	}
	if _, ok := r.listings[order.ListingID]; !ok {
		return fmt.Errorf("create order: listing %s: %w", order.ListingID, marketerrors.ErrListingNotFound)
	}
	r.orders[order.OrderID] = order
	return nil
}

// GetOrder returns an order by id
func (r *MemoryRepo) GetOrder(_ context.Context, orderID string) (models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[orderID]
	if !ok {
		return models.Order{}, fmt.Errorf("get order %s: %w", orderID, marketerrors.ErrOrderNotFound)
	}
	return o, nil
}

// ListOrders returns orders matching the filter, newest first
func (r *MemoryRepo) ListOrders(_ context.Context, filter models.OrderFilter) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Order, 0)
	for _, o := range r.orders {
		if filter.BuyerID != "" && o.BuyerID != filter.BuyerID {
			continue
		}
		if filter.SellerID != "" && o.SellerID != filter.SellerID {
			continue
		}
		if filter.ParticipantID != "" && o.BuyerID != filter.ParticipantID && o.SellerID != filter.ParticipantID {
			continue
		}
		if len(filter.Statuses) > 0 && !containsOrderStatus(filter.Statuses, o.Status) {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].OrderID < out[j].OrderID
	})
	return out, nil
}

// UpdateOrderLocked applies fn under the store's write lock
func (r *MemoryRepo) UpdateOrderLocked(_ context.Context, orderID string, fn OrderMutation) (models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.orders[orderID]
	if !ok {
		return models.Order{}, fmt.Errorf("update order %s: %w", orderID, marketerrors.ErrOrderNotFound)
	}
	o := current
	markListingSold, err := fn(&o)
	if err != nil {
		return models.Order{}, err
	}

	now := time.Now().UTC()
	if markListingSold {
		l, ok := r.listings[o.ListingID]
		if !ok {
			return models.Order{}, fmt.Errorf("update order %s: listing %s: %w", orderID, o.ListingID, marketerrors.ErrListingNotFound)
		}
		l.Status = models.ListingSold
		l.UpdatedAt = now
		r.listings[o.ListingID] = l
	}
	current.Status = o.Status
	current.UpdatedAt = now
	r.orders[orderID] = current
	return current, nil
}

func containsOrderStatus(statuses []models.OrderStatus, s models.OrderStatus) bool {
	for _, st := range statuses {
		if st == s {
			return true
		}
	}
	return false
}
