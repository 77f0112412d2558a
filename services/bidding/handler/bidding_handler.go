package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"dalal-market/internal/models"
	"dalal-market/services/helpers"
	"dalal-market/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BiddingServiceInterface interface {
	CreateAuction(ctx context.Context, sellerID, listingID string, startingBid decimal.Decimal, durationHours int) (models.Auction, error)
	PlaceBid(ctx context.Context, auctionID, bidderID string, amount decimal.Decimal) (models.Bid, error)
	GetAuction(ctx context.Context, auctionID, viewerID string) (models.AuctionView, error)
	ListActiveAuctions(ctx context.Context) ([]models.Auction, error)
	MyAuctions(ctx context.Context, userID string) (models.MyAuctions, error)
	CancelAuction(ctx context.Context, auctionID, userID string) (models.Auction, error)
	GetBids(ctx context.Context, auctionID string) ([]models.Bid, error)
	GetWinningBid(ctx context.Context, auctionID string) (models.Bid, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// CreateAuctionHandler handles POST /auctions
func (h *BiddingHandler) CreateAuctionHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "CreateAuctionHandler")
	if !ok {
		return
	}
	var req CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}
	if !req.StartingBid.IsPositive() {
		helpers.HandleBindError(c, "CreateAuctionHandler", errors.New("starting_bid must be positive"))
		return
	}

	auction, err := h.service.CreateAuction(c.Request.Context(), user.UserID, req.ListingID, *req.StartingBid, req.DurationHours)
	if err != nil {
		helpers.HandleServiceError(c, "CreateAuctionHandler", "failed to create auction", err, map[string]any{
			"listing_id": req.ListingID,
			"user_id":    user.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"listing_id": auction.ListingID,
		"end_time":   auction.EndTime,
	})
}

// RecordBidHandler handles POST /auctions/:auction_id/bids
func (h *BiddingHandler) RecordBidHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "RecordBidHandler")
	if !ok {
		return
	}
	auctionID := c.Param("auction_id")
	var req PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordBidHandler", err)
		return
	}
	if !req.Amount.IsPositive() {
		helpers.HandleBindError(c, "RecordBidHandler", errors.New("amount must be positive"))
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), auctionID, user.UserID, *req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RecordBidHandler: bid rejected", map[string]any{
			"handler":    "RecordBidHandler",
			"auction_id": auctionID,
			"user_id":    user.UserID,
			"amount":     req.Amount.String(),
			"status":     status,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, newBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("RecordBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"user_id":    user.UserID,
		"amount":     bid.Amount.String(),
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *BiddingHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	viewer, _ := helpers.CurrentUser(c)

	view, err := h.service.GetAuction(c.Request.Context(), auctionID, viewer.UserID)
	if err != nil {
		helpers.HandleServiceError(c, "GetAuctionHandler", "error retrieving auction", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"status":     view.Status,
		"bids":       len(view.Bids),
	})
}

// ListActiveAuctionsHandler handles GET /auctions
func (h *BiddingHandler) ListActiveAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.ListActiveAuctions(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "ListActiveAuctionsHandler", "error listing auctions", err, nil)
		return
	}
	if auctions == nil {
		auctions = []models.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("ListActiveAuctionsHandler", "auctions retrieved successfully", map[string]any{"count": len(auctions)})
}

// MyAuctionsHandler handles GET /auctions/mine
func (h *BiddingHandler) MyAuctionsHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "MyAuctionsHandler")
	if !ok {
		return
	}
	mine, err := h.service.MyAuctions(c.Request.Context(), user.UserID)
	if err != nil {
		helpers.HandleServiceError(c, "MyAuctionsHandler", "error listing user auctions", err, map[string]any{"user_id": user.UserID})
		return
	}
	if mine.Created == nil {
		mine.Created = []models.Auction{}
	}
	if mine.Participated == nil {
		mine.Participated = []models.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, mine, "auctions retrieved successfully")
	helpers.LogSuccess("MyAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"user_id":      user.UserID,
		"created":      len(mine.Created),
		"participated": len(mine.Participated),
	})
}

// CancelAuctionHandler handles POST /auctions/:auction_id/cancel
func (h *BiddingHandler) CancelAuctionHandler(c *gin.Context) {
	user, ok := helpers.RequireUser(c, "CancelAuctionHandler")
	if !ok {
		return
	}
	auctionID := c.Param("auction_id")
	auction, err := h.service.CancelAuction(c.Request.Context(), auctionID, user.UserID)
	if err != nil {
		helpers.HandleServiceError(c, "CancelAuctionHandler", "failed to cancel auction", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    user.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction cancelled successfully")
	helpers.LogSuccess("CancelAuctionHandler", "auction cancelled successfully", map[string]any{"auction_id": auctionID})
}

// GetBidsHandler handles GET /auctions/:auction_id/bids
func (h *BiddingHandler) GetBidsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bids, err := h.service.GetBids(c.Request.Context(), auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "GetBidsHandler", "error retrieving bids", err, map[string]any{"auction_id": auctionID})
		return
	}

	resp := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, newBidResponse(b))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(resp),
	})
}

// GetWinningBidHandler handles GET /auctions/:auction_id/winning
func (h *BiddingHandler) GetWinningBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bid, err := h.service.GetWinningBid(c.Request.Context(), auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "GetWinningBidHandler", "winning bid error", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, newBidResponse(bid), "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"user_id":    bid.BidderID,
		"amount":     bid.Amount.String(),
	})
}
