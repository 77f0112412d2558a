package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dalal-market/internal/cache"
	"dalal-market/internal/events"
	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"
	"dalal-market/internal/repository"
	"dalal-market/utils"

	"github.com/shopspring/decimal"
)

// OrderService handles purchase orders between buyers and sellers
type OrderService struct {
	repo      repository.OrderDB
	listings  repository.ListingDB
	cache     cache.ListingCache
	publisher events.Publisher
	now       func() time.Time
}

func NewOrderService(repo repository.OrderDB, listings repository.ListingDB, listingCache cache.ListingCache, publisher events.Publisher) *OrderService {
	return &OrderService{
		repo:      repo,
		listings:  listings,
		cache:     listingCache,
		publisher: publisher,
		now:       time.Now,
	}
}

// CreateOrder snapshots price x quantity for a public listing
func (s *OrderService) CreateOrder(ctx context.Context, buyerID, listingID string, quantity int, notes string) (models.Order, error) {
	if quantity < 1 {
		return models.Order{}, fmt.Errorf("service: %w - quantity must be at least 1", marketerrors.ErrInvalidInput)
	}

	listing, err := s.listings.GetListing(ctx, listingID)
	if err != nil {
		return models.Order{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	if !listing.IsPublic() {
		return models.Order{}, fmt.Errorf("service: %w - listing %s is %s", marketerrors.ErrListingUnavailable, listingID, listing.Status)
	}
	if listing.SellerID == buyerID {
		return models.Order{}, fmt.Errorf("service: %w - cannot order your own listing", marketerrors.ErrSelfAction)
	}

	now := s.now().UTC()
	order := models.Order{
		OrderID:     utils.GenerateID(),
		ListingID:   listingID,
		BuyerID:     buyerID,
		SellerID:    listing.SellerID,
		Quantity:    quantity,
		TotalAmount: listing.Price.Mul(decimal.NewFromInt(int64(quantity))),
		Status:      models.OrderPending,
		Notes:       strings.TrimSpace(notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return models.Order{}, fmt.Errorf("service: failed to create order for listing %s: %w", listingID, err)
	}

	utils.Info("order created", map[string]any{"order_id": order.OrderID, "listing_id": listingID, "buyer_id": buyerID})
	events.PublishOrLog(ctx, s.publisher, events.SubjectOrderCreated, events.NewOrderEvent(order))
	return order, nil
}

// GetOrder returns an order to its buyer or seller; anyone else sees not found
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID string) (models.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return models.Order{}, fmt.Errorf("service: failed to get order %s: %w", orderID, err)
	}
	if order.BuyerID != userID && order.SellerID != userID {
		return models.Order{}, fmt.Errorf("service: order %s: %w", orderID, marketerrors.ErrOrderNotFound)
	}
	return order, nil
}

// MyOrders splits a user's orders into buying and selling with status counts
func (s *OrderService) MyOrders(ctx context.Context, userID string) (models.MyOrders, error) {
	buying, err := s.repo.ListOrders(ctx, models.OrderFilter{BuyerID: userID})
	if err != nil {
		return models.MyOrders{}, fmt.Errorf("service: failed to list orders bought by %s: %w", userID, err)
	}
	selling, err := s.repo.ListOrders(ctx, models.OrderFilter{SellerID: userID})
	if err != nil {
		return models.MyOrders{}, fmt.Errorf("service: failed to list orders sold by %s: %w", userID, err)
	}

	var stats models.OrderStats
	for _, group := range [][]models.Order{buying, selling} {
		for _, o := range group {
			stats.Total++
			switch o.Status {
			case models.OrderPending:
				stats.Pending++
			case models.OrderConfirmed:
				stats.Confirmed++
			case models.OrderCompleted:
				stats.Completed++
			}
		}
	}
	return models.MyOrders{Buying: buying, Selling: selling, Stats: stats}, nil
}

// UpdateOrderStatus lets the order's seller move it. Completing an order marks
// its listing sold in the same write. Ownership and the terminal-state guard
// are checked against the locked row.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, sellerID, orderID string, status models.OrderStatus) (models.Order, error) {
	if !status.Valid() {
		return models.Order{}, fmt.Errorf("service: %w - %q", marketerrors.ErrInvalidStatus, status)
	}

	completing := status == models.OrderCompleted
	updated, err := s.repo.UpdateOrderLocked(ctx, orderID, func(o *models.Order) (bool, error) {
		if o.SellerID != sellerID {
			if o.BuyerID == sellerID {
				return false, fmt.Errorf("%w - only the seller can update order %s", marketerrors.ErrForbidden, orderID)
			}
			return false, fmt.Errorf("order %s: %w", orderID, marketerrors.ErrOrderNotFound)
		}
		if o.Status.Terminal() {
			return false, fmt.Errorf("%w - order %s is already %s", marketerrors.ErrInvalidStatus, orderID, o.Status)
		}
		o.Status = status
		return completing, nil
	})
	if err != nil {
		return models.Order{}, fmt.Errorf("service: failed to update order %s: %w", orderID, err)
	}
	if completing && s.cache != nil {
		if err := s.cache.DeleteListings(ctx, updated.ListingID); err != nil {
			utils.Warn("failed to invalidate listing cache", map[string]any{"listing_id": updated.ListingID, "error": err.Error()})
		}
	}

	events.PublishOrLog(ctx, s.publisher, events.SubjectOrderStatusUpdated, events.NewOrderEvent(updated))
	return updated, nil
}

// CancelOrder lets the buyer withdraw a pending or confirmed order
func (s *OrderService) CancelOrder(ctx context.Context, buyerID, orderID string) (models.Order, error) {
	updated, err := s.repo.UpdateOrderLocked(ctx, orderID, func(o *models.Order) (bool, error) {
		if o.BuyerID != buyerID {
			if o.SellerID == buyerID {
				return false, fmt.Errorf("%w - only the buyer can cancel order %s", marketerrors.ErrForbidden, orderID)
			}
			return false, fmt.Errorf("order %s: %w", orderID, marketerrors.ErrOrderNotFound)
		}
		if o.Status != models.OrderPending && o.Status != models.OrderConfirmed {
			return false, fmt.Errorf("%w - order %s is %s", marketerrors.ErrInvalidStatus, orderID, o.Status)
		}
		o.Status = models.OrderCancelled
		return false, nil
	})
	if err != nil {
		return models.Order{}, fmt.Errorf("service: failed to cancel order %s: %w", orderID, err)
	}
	events.PublishOrLog(ctx, s.publisher, events.SubjectOrderStatusUpdated, events.NewOrderEvent(updated))
	return updated, nil
}

// OrderHistory returns the user's finished orders on either side
func (s *OrderService) OrderHistory(ctx context.Context, userID string) ([]models.Order, error) {
	history, err := s.repo.ListOrders(ctx, models.OrderFilter{
		ParticipantID: userID,
		Statuses:      []models.OrderStatus{models.OrderCompleted, models.OrderCancelled},
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list order history of %s: %w", userID, err)
	}
	return history, nil
}
