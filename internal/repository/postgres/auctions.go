package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"
	"dalal-market/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) CreateAuction(ctx context.Context, auction models.Auction) error {
	rec := toAuctionRecord(auction)
	err := s.db.WithContext(ctx).Create(&rec).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("create auction for listing %s: %w", auction.ListingID, marketerrors.ErrAuctionExists)
	}
	return translate("create auction for listing "+auction.ListingID, err, marketerrors.ErrListingNotFound)
}

func (s *Store) GetAuction(ctx context.Context, auctionID string) (models.Auction, error) {
	var rec auctionRecord
	if err := s.db.WithContext(ctx).Where("auction_id = ?", auctionID).Take(&rec).Error; err != nil {
		return models.Auction{}, translate("get auction "+auctionID, err, marketerrors.ErrAuctionNotFound)
	}
	return toAuction(rec), nil
}

func (s *Store) GetAuctionByListing(ctx context.Context, listingID string) (models.Auction, error) {
	var rec auctionRecord
	if err := s.db.WithContext(ctx).Where("listing_id = ?", listingID).Take(&rec).Error; err != nil {
		return models.Auction{}, translate("get auction for listing "+listingID, err, marketerrors.ErrAuctionNotFound)
	}
	return toAuction(rec), nil
}

func (s *Store) ListAuctions(ctx context.Context, filter models.AuctionFilter) ([]models.Auction, error) {
	q := s.db.WithContext(ctx).Model(&auctionRecord{})
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if !filter.EndsAfter.IsZero() {
		q = q.Where("end_time > ?", filter.EndsAfter)
	}
	if filter.SellerID != "" {
		q = q.Where("seller_id = ?", filter.SellerID)
	}
	if filter.BidderID != "" {
		q = q.Where("auction_id IN (?)", s.db.Model(&bidRecord{}).Select("auction_id").Where("bidder_id = ?", filter.BidderID))
	}

	var rows []auctionRecord
	if err := q.Order("end_time, auction_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	out := make([]models.Auction, 0, len(rows))
	for _, row := range rows {
		out = append(out, toAuction(row))
	}
	return out, nil
}

func (s *Store) GetBidsByAuction(ctx context.Context, auctionID string) ([]models.Bid, error) {
	if _, err := s.GetAuction(ctx, auctionID); err != nil {
		return nil, err
	}
	var rows []bidRecord
	if err := s.db.WithContext(ctx).Where("auction_id = ?", auctionID).Order("created_at, bid_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, err)
	}
	return toBids(rows), nil
}

func (s *Store) GetWinningBid(ctx context.Context, auctionID string) (models.Bid, error) {
	var rows []bidRecord
	err := s.db.WithContext(ctx).Where("auction_id = ?", auctionID).
		Order("amount DESC, created_at DESC").Limit(1).Find(&rows).Error
	if err != nil {
		return models.Bid{}, fmt.Errorf("get winning bid for auction %s: %w", auctionID, err)
	}
	if len(rows) == 0 {
		return models.Bid{}, fmt.Errorf("get winning bid for auction %s: %w", auctionID, marketerrors.ErrNoBids)
	}
	return toBids(rows)[0], nil
}

// UpdateAuctionLocked runs fn inside a transaction holding SELECT ... FOR UPDATE on the auction row
func (s *Store) UpdateAuctionLocked(ctx context.Context, auctionID string, fn repository.AuctionMutation) (models.Auction, error) {
	var result models.Auction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec auctionRecord
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("auction_id = ?", auctionID).Take(&rec).Error; err != nil {
			return translate("lock auction "+auctionID, err, marketerrors.ErrAuctionNotFound)
		}
		var bidRows []bidRecord
		if err := tx.Where("auction_id = ?", auctionID).Order("created_at, bid_id").Find(&bidRows).Error; err != nil {
			return err
		}

		auction := toAuction(rec)
		write, err := fn(&auction, toBids(bidRows))
		if err != nil {
			return err
		}

		if write.NewBid != nil {
			bid := toBidRecord(*write.NewBid)
			if err := tx.Create(&bid).Error; err != nil {
				return err
			}
		}
		if write.WinningBidID != "" {
			err := tx.Model(&bidRecord{}).Where("auction_id = ?", auctionID).
				Update("is_winning", gorm.Expr("bid_id = ?", write.WinningBidID)).Error
			if err != nil {
				return err
			}
		}

		auction.Version = rec.Version + 1
		updated := toAuctionRecord(auction)
		if err := tx.Model(&auctionRecord{}).Where("auction_id = ?", auctionID).Select("*").Updates(&updated).Error; err != nil {
			return err
		}
		result = auction
		return nil
	})
	if err != nil {
		return models.Auction{}, err
	}
	return result, nil
}

func (s *Store) ListExpiredAuctions(ctx context.Context, now time.Time) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).Model(&auctionRecord{}).
		Where("status = ? AND end_time <= ?", string(models.AuctionActive), now).
		Order("auction_id").Pluck("auction_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list expired auctions: %w", err)
	}
	return ids, nil
}

func (s *Store) CreateOrder(ctx context.Context, order models.Order) error {
	rec := toOrderRecord(order)
	return translate("create order", s.db.WithContext(ctx).Create(&rec).Error, marketerrors.ErrListingNotFound)
}

func (s *Store) GetOrder(ctx context.Context, orderID string) (models.Order, error) {
	var rec orderRecord
	if err := s.db.WithContext(ctx).Where("order_id = ?", orderID).Take(&rec).Error; err != nil {
		return models.Order{}, translate("get order "+orderID, err, marketerrors.ErrOrderNotFound)
	}
	return toOrder(rec), nil
}

func (s *Store) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	q := s.db.WithContext(ctx).Model(&orderRecord{})
	if filter.BuyerID != "" {
		q = q.Where("buyer_id = ?", filter.BuyerID)
	}
	if filter.SellerID != "" {
		q = q.Where("seller_id = ?", filter.SellerID)
	}
	if filter.ParticipantID != "" {
		q = q.Where("buyer_id = ? OR seller_id = ?", filter.ParticipantID, filter.ParticipantID)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, st := range filter.Statuses {
			statuses = append(statuses, string(st))
		}
		q = q.Where("status IN ?", statuses)
	}

	var rows []orderRecord
	if err := q.Order("created_at DESC, order_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	out := make([]models.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, toOrder(row))
	}
	return out, nil
}

// UpdateOrderLocked runs fn inside a transaction holding SELECT ... FOR UPDATE on the order row
// and, when fn asks, flips its listing to sold in the same transaction
func (s *Store) UpdateOrderLocked(ctx context.Context, orderID string, fn repository.OrderMutation) (models.Order, error) {
	var rec orderRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("order_id = ?", orderID).Take(&rec).Error; err != nil {
			return translate("update order "+orderID, err, marketerrors.ErrOrderNotFound)
		}
		order := toOrder(rec)
		markListingSold, err := fn(&order)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if markListingSold {
			res := tx.Model(&listingRecord{}).Where("listing_id = ?", rec.ListingID).
				Updates(map[string]any{"status": string(models.ListingSold), "updated_at": now})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("update order %s: listing %s: %w", orderID, rec.ListingID, marketerrors.ErrListingNotFound)
			}
		}
		rec.Status = string(order.Status)
		rec.UpdatedAt = now
		return tx.Model(&orderRecord{}).Where("order_id = ?", orderID).
			Updates(map[string]any{"status": rec.Status, "updated_at": now}).Error
	})
	if err != nil {
		return models.Order{}, err
	}
	return toOrder(rec), nil
}
