package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func (s *Store) CreateLocation(ctx context.Context, location models.Location) error {
	rec := toLocationRecord(location)
	return translate("create location "+location.Name, s.db.WithContext(ctx).Create(&rec).Error, marketerrors.ErrLocationNotFound)
}

func (s *Store) GetLocation(ctx context.Context, locationID string) (models.Location, error) {
	var rec locationRecord
	if err := s.db.WithContext(ctx).Where("location_id = ?", locationID).Take(&rec).Error; err != nil {
		return models.Location{}, translate("get location "+locationID, err, marketerrors.ErrLocationNotFound)
	}
	return toLocation(rec), nil
}

func (s *Store) ListLocations(ctx context.Context, filter models.LocationFilter) ([]models.Location, error) {
	q := s.db.WithContext(ctx).Model(&locationRecord{})
	if filter.ActiveOnly {
		q = q.Where("is_active")
	}
	if filter.ParentID != "" {
		q = q.Where("parent_id = ?", filter.ParentID)
	}
	if filter.Level != "" {
		q = q.Where("level = ?", string(filter.Level))
	}
	if query := strings.TrimSpace(filter.Query); query != "" {
		like := "%" + query + "%"
		q = q.Where("name ILIKE ? OR name_en ILIKE ?", like, like)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	var rows []locationRecord
	if err := q.Order("name, location_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	out := make([]models.Location, 0, len(rows))
	for _, row := range rows {
		out = append(out, toLocation(row))
	}
	return out, nil
}

func (s *Store) CreateSavedLocation(ctx context.Context, saved models.SavedLocation) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if saved.IsDefault {
			err := tx.Model(&savedLocationRecord{}).Where("user_id = ? AND is_default", saved.UserID).
				Update("is_default", false).Error
			if err != nil {
				return err
			}
		}
		return tx.Create(&savedLocationRecord{
			SavedLocationID: saved.SavedLocationID,
			UserID:          saved.UserID,
			Name:            saved.Name,
			Latitude:        saved.Latitude,
			Longitude:       saved.Longitude,
			Address:         saved.Address,
			IsDefault:       saved.IsDefault,
			CreatedAt:       saved.CreatedAt,
		}).Error
	})
	return translate("create saved location", err, marketerrors.ErrUserNotFound)
}

func (s *Store) GetSavedLocation(ctx context.Context, savedLocationID string) (models.SavedLocation, error) {
	var rec savedLocationRecord
	if err := s.db.WithContext(ctx).Where("saved_location_id = ?", savedLocationID).Take(&rec).Error; err != nil {
		return models.SavedLocation{}, translate("get saved location "+savedLocationID, err, marketerrors.ErrLocationNotFound)
	}
	return toSavedLocation(rec), nil
}

func (s *Store) ListSavedLocations(ctx context.Context, userID string) ([]models.SavedLocation, error) {
	var rows []savedLocationRecord
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("is_default DESC, name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list saved locations for %s: %w", userID, err)
	}
	out := make([]models.SavedLocation, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSavedLocation(row))
	}
	return out, nil
}

func (s *Store) DeleteSavedLocation(ctx context.Context, savedLocationID string) error {
	res := s.db.WithContext(ctx).Where("saved_location_id = ?", savedLocationID).Delete(&savedLocationRecord{})
	if res.Error != nil {
		return fmt.Errorf("delete saved location %s: %w", savedLocationID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete saved location %s: %w", savedLocationID, marketerrors.ErrLocationNotFound)
	}
	return nil
}

type labelCount struct {
	Label string
	Total int
}

func toKeyCounts(rows []labelCount) []models.KeyCount {
	out := make([]models.KeyCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.KeyCount{Key: row.Label, Count: row.Total})
	}
	return out
}

func (s *Store) CountListingsByStatus(ctx context.Context) (map[models.ListingStatus]int, error) {
	var rows []labelCount
	err := s.db.WithContext(ctx).Model(&listingRecord{}).
		Select("status AS label, COUNT(*) AS total").Group("status").Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count listings by status: %w", err)
	}
	out := make(map[models.ListingStatus]int, len(rows))
	for _, row := range rows {
		out[models.ListingStatus(row.Label)] = row.Total
	}
	return out, nil
}

func (s *Store) CountListingsByCategory(ctx context.Context) ([]models.KeyCount, error) {
	var rows []labelCount
	err := s.db.WithContext(ctx).Table("listings").
		Select("categories.name AS label, COUNT(*) AS total").
		Joins("JOIN categories ON categories.category_id = listings.category_id").
		Group("categories.name").Order("total DESC, label").Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count listings by category: %w", err)
	}
	return toKeyCounts(rows), nil
}

func (s *Store) CountListingsSince(ctx context.Context, since time.Time) (int, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&listingRecord{}).Where("created_at >= ?", since).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count listings since: %w", err)
	}
	return int(n), nil
}

func (s *Store) CountUsers(ctx context.Context, since time.Time) (int, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&userRecord{}).Where("date_joined >= ?", since).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return int(n), nil
}

func (s *Store) NewUsersPerDay(ctx context.Context, since time.Time) ([]models.KeyCount, error) {
	var rows []labelCount
	err := s.db.WithContext(ctx).Model(&userRecord{}).
		Select("TO_CHAR(date_joined AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS label, COUNT(*) AS total").
		Where("date_joined >= ?", since).Group("label").Order("label").Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("new users per day: %w", err)
	}
	return toKeyCounts(rows), nil
}

func (s *Store) RecentUsers(ctx context.Context, limit int) ([]models.User, error) {
	var rows []userRecord
	if err := s.db.WithContext(ctx).Order("date_joined DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("recent users: %w", err)
	}
	out := make([]models.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, toUser(row))
	}
	return out, nil
}

func (s *Store) CountAuctionsByStatus(ctx context.Context) (map[models.AuctionStatus]int, error) {
	var rows []labelCount
	err := s.db.WithContext(ctx).Model(&auctionRecord{}).
		Select("status AS label, COUNT(*) AS total").Group("status").Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count auctions by status: %w", err)
	}
	out := make(map[models.AuctionStatus]int, len(rows))
	for _, row := range rows {
		out[models.AuctionStatus(row.Label)] = row.Total
	}
	return out, nil
}

func (s *Store) CountOrdersByStatus(ctx context.Context) (map[models.OrderStatus]int, error) {
	var rows []labelCount
	err := s.db.WithContext(ctx).Model(&orderRecord{}).
		Select("status AS label, COUNT(*) AS total").Group("status").Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	out := make(map[models.OrderStatus]int, len(rows))
	for _, row := range rows {
		out[models.OrderStatus(row.Label)] = row.Total
	}
	return out, nil
}

func (s *Store) Revenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := s.db.WithContext(ctx).Model(&orderRecord{}).
		Select("COALESCE(SUM(total_amount), 0)").Where("status = ?", string(models.OrderCompleted)).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("revenue: %w", err)
	}
	return total, nil
}

func (s *Store) TopSellers(ctx context.Context, limit int) ([]models.SellerCount, error) {
	var out []models.SellerCount
	err := s.db.WithContext(ctx).Table("listings").
		Select("listings.seller_id AS seller_id, users.username AS username, COUNT(*) AS listings").
		Joins("JOIN users ON users.user_id = listings.seller_id").
		Group("listings.seller_id, users.username").
		Order("listings DESC, username").Limit(limit).Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("top sellers: %w", err)
	}
	return out, nil
}
