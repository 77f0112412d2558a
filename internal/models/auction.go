package models

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type AuctionStatus string

const (
	AuctionActive    AuctionStatus = "active"
	AuctionClosed    AuctionStatus = "closed"
	AuctionCancelled AuctionStatus = "cancelled"
)

// Auction is the time-boxed bidding process attached to one listing
type Auction struct {
	AuctionID       string          `json:"auction_id"`
	ListingID       string          `json:"listing_id"`
	SellerID        string          `json:"seller_id"`
	StartingBid     decimal.Decimal `json:"starting_bid"`
	CurrentBid      decimal.Decimal `json:"current_bid"`
	HighestBidderID string          `json:"highest_bidder_id,omitempty"`
	StartTime       time.Time       `json:"start_time"`
	EndTime         time.Time       `json:"end_time"`
	Status          AuctionStatus   `json:"status"`
	Version         int             `json:"version"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Expired reports whether the auction end time has passed at now
func (a Auction) Expired(now time.Time) bool {
	return !a.EndTime.After(now)
}

// Bid represents a user's bid on an auction
type Bid struct {
	BidID     string          `json:"bid_id"`
	AuctionID string          `json:"auction_id"`
	BidderID  string          `json:"bidder_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	IsWinning bool            `json:"is_winning"`
}

// AuctionFilter narrows auction listings
type AuctionFilter struct {
	Status    AuctionStatus
	EndsAfter time.Time
	SellerID  string
	BidderID  string
}

// AuctionView is the auction detail payload
type AuctionView struct {
	Auction
	ListingTitle         string          `json:"listing_title"`
	Bids                 []Bid           `json:"bids"`
	UserHighestBid       *Bid            `json:"user_highest_bid,omitempty"`
	MinimumNextBid       decimal.Decimal `json:"minimum_next_bid"`
	TimeRemainingSeconds *int64          `json:"time_remaining_seconds,omitempty"`
}

// MyAuctions groups the auctions a user created and the ones they bid on
type MyAuctions struct {
	Created      []Auction `json:"created"`
	Participated []Auction `json:"participated"`
}

// WinningBid returns the highest bid, preferring the latest on a tie so it matches SortBids
func WinningBid(bids []Bid) (Bid, bool) {
	if len(bids) == 0 {
		return Bid{}, false
	}
	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Amount.GreaterThan(winning.Amount) || (b.Amount.Equal(winning.Amount) && b.CreatedAt.After(winning.CreatedAt)) {
			winning = b
		}
	}
	return winning, true
}

// SortBids orders bids by amount then time, both descending
func SortBids(bids []Bid) {
	sort.SliceStable(bids, func(i, j int) bool {
		if !bids[i].Amount.Equal(bids[j].Amount) {
			return bids[i].Amount.GreaterThan(bids[j].Amount)
		}
		return bids[i].CreatedAt.After(bids[j].CreatedAt)
	})
}
