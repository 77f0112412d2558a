package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"
	"dalal-market/internal/repository"
	"dalal-market/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Store) CreateUser(ctx context.Context, user models.User) error {
	rec := toUserRecord(user)
	return translate("create user "+user.Username, s.db.WithContext(ctx).Create(&rec).Error, marketerrors.ErrUserNotFound)
}

func (s *Store) GetUser(ctx context.Context, userID string) (models.User, error) {
	var rec userRecord
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Take(&rec).Error; err != nil {
		return models.User{}, translate("get user "+userID, err, marketerrors.ErrUserNotFound)
	}
	return toUser(rec), nil
}

func (s *Store) GetUserByLogin(ctx context.Context, login string) (models.User, error) {
	var rec userRecord
	err := s.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?) OR LOWER(email) = LOWER(?)", login, login).
		Take(&rec).Error
	if err != nil {
		return models.User{}, translate("get user by login", err, marketerrors.ErrUserNotFound)
	}
	return toUser(rec), nil
}

func (s *Store) UpdateUser(ctx context.Context, user models.User) error {
	rec := toUserRecord(user)
	res := s.db.WithContext(ctx).Model(&userRecord{}).Where("user_id = ?", user.UserID).Select("*").Updates(&rec)
	if res.Error != nil {
		return translate("update user "+user.UserID, res.Error, marketerrors.ErrUserNotFound)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update user %s: %w", user.UserID, marketerrors.ErrUserNotFound)
	}
	return nil
}

func (s *Store) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	q := s.db.WithContext(ctx).Model(&userRecord{})
	switch filter.Type {
	case models.UserTypeSellers:
		q = q.Where("is_seller")
	case models.UserTypeVerified:
		q = q.Where("is_verified")
	case models.UserTypeStaff:
		q = q.Where("is_staff")
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		q = q.Where("username ILIKE ? OR email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?", like, like, like, like)
	}

	var rows []userRecord
	if err := q.Order("date_joined DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]models.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, toUser(row))
	}
	return out, nil
}

func (s *Store) CreateCategory(ctx context.Context, category models.Category) error {
	rec := toCategoryRecord(category)
	return translate("create category "+category.Slug, s.db.WithContext(ctx).Create(&rec).Error, marketerrors.ErrCategoryNotFound)
}

func (s *Store) UpdateCategory(ctx context.Context, category models.Category) error {
	rec := toCategoryRecord(category)
	res := s.db.WithContext(ctx).Model(&categoryRecord{}).Where("category_id = ?", category.CategoryID).Select("*").Updates(&rec)
	if res.Error != nil {
		return translate("update category "+category.CategoryID, res.Error, marketerrors.ErrCategoryNotFound)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update category %s: %w", category.CategoryID, marketerrors.ErrCategoryNotFound)
	}
	return nil
}

func (s *Store) GetCategory(ctx context.Context, categoryID string) (models.Category, error) {
	var rec categoryRecord
	if err := s.db.WithContext(ctx).Where("category_id = ?", categoryID).Take(&rec).Error; err != nil {
		return models.Category{}, translate("get category "+categoryID, err, marketerrors.ErrCategoryNotFound)
	}
	return toCategory(rec), nil
}

func (s *Store) GetCategoryBySlug(ctx context.Context, slug string) (models.Category, error) {
	var rec categoryRecord
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).Take(&rec).Error; err != nil {
		return models.Category{}, translate("get category by slug "+slug, err, marketerrors.ErrCategoryNotFound)
	}
	return toCategory(rec), nil
}

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	var rows []categoryRecord
	if err := s.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]models.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, toCategory(row))
	}
	return out, nil
}

func (s *Store) CreateListing(ctx context.Context, listing models.Listing) error {
	rec := toListingRecord(listing)
	return translate("create listing", s.db.WithContext(ctx).Create(&rec).Error, marketerrors.ErrCategoryNotFound)
}

func (s *Store) GetListing(ctx context.Context, listingID string) (models.Listing, error) {
	var rec listingRecord
	if err := s.db.WithContext(ctx).Where("listing_id = ?", listingID).Take(&rec).Error; err != nil {
		return models.Listing{}, translate("get listing "+listingID, err, marketerrors.ErrListingNotFound)
	}
	return toListing(rec), nil
}

// listingContentColumns are the columns an owner edit may touch; status, approval and views stay with their own writers
var listingContentColumns = []string{"title", "description", "price", "category_id", "latitude", "longitude", "updated_at"}

func (s *Store) UpdateListing(ctx context.Context, listing models.Listing) (models.Listing, error) {
	rec := toListingRecord(listing)
	var stored listingRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&listingRecord{}).Where("listing_id = ?", listing.ListingID).Select(listingContentColumns).Updates(&rec)
		if res.Error != nil {
			return translate("update listing "+listing.ListingID, res.Error, marketerrors.ErrCategoryNotFound)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("update listing %s: %w", listing.ListingID, marketerrors.ErrListingNotFound)
		}
		return tx.Where("listing_id = ?", listing.ListingID).Take(&stored).Error
	})
	if err != nil {
		return models.Listing{}, err
	}
	return toListing(stored), nil
}

func (s *Store) IncrementViews(ctx context.Context, listingID string) (models.Listing, error) {
	var rec listingRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&listingRecord{}).Where("listing_id = ?", listingID).
			UpdateColumn("views_count", gorm.Expr("views_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("listing_id = ?", listingID).Take(&rec).Error
	})
	if err != nil {
		return models.Listing{}, translate("increment views "+listingID, err, marketerrors.ErrListingNotFound)
	}
	return toListing(rec), nil
}

func (s *Store) SearchListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	q := s.db.WithContext(ctx).Model(&listingRecord{}).Select("listings.*")
	if filter.SellerUsername != "" {
		q = q.Joins("JOIN users ON users.user_id = listings.seller_id").
			Where("users.username ILIKE ?", "%"+filter.SellerUsername+"%")
	}
	if filter.ExcludeID != "" {
		q = q.Where("listings.listing_id <> ?", filter.ExcludeID)
	}
	if filter.CategoryID != "" {
		q = q.Where("listings.category_id = ?", filter.CategoryID)
	}
	if filter.SellerID != "" {
		q = q.Where("listings.seller_id = ?", filter.SellerID)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, st := range filter.Statuses {
			statuses = append(statuses, string(st))
		}
		q = q.Where("listings.status IN ?", statuses)
	}
	if filter.ApprovedOnly {
		q = q.Where("listings.is_approved")
	}
	if filter.MinPrice != nil {
		q = q.Where("listings.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("listings.price <= ?", *filter.MaxPrice)
	}
	if filter.WithCoordinates || filter.Bounds != nil {
		q = q.Where("listings.latitude IS NOT NULL AND listings.longitude IS NOT NULL")
	}
	if b := filter.Bounds; b != nil {
		q = q.Where("listings.latitude BETWEEN ? AND ? AND listings.longitude BETWEEN ? AND ?", b.MinLat, b.MaxLat, b.MinLng, b.MaxLng)
	}
	if query := strings.TrimSpace(filter.Query); query != "" {
		like := "%" + query + "%"
		q = q.Where("listings.title ILIKE ? OR listings.description ILIKE ?", like, like)
	}

	switch filter.Sort {
	case models.SortViews:
		q = q.Order("listings.views_count DESC")
	case models.SortPriceAsc:
		q = q.Order("listings.price ASC")
	case models.SortPriceDesc:
		q = q.Order("listings.price DESC")
	}
	q = q.Order("listings.created_at DESC").Order("listings.listing_id")
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var rows []listingRecord
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}
	return toListings(rows), nil
}

func (s *Store) CountListingsForCategory(ctx context.Context, categoryID string) (int, int, error) {
	var total, active int64
	db := s.db.WithContext(ctx).Model(&listingRecord{})
	if err := db.Where("category_id = ?", categoryID).Count(&total).Error; err != nil {
		return 0, 0, fmt.Errorf("count listings for category %s: %w", categoryID, err)
	}
	err := s.db.WithContext(ctx).Model(&listingRecord{}).
		Where("category_id = ? AND status = ? AND is_approved", categoryID, string(models.ListingActive)).
		Count(&active).Error
	if err != nil {
		return 0, 0, fmt.Errorf("count active listings for category %s: %w", categoryID, err)
	}
	return int(total), int(active), nil
}

func (s *Store) SetListingStatus(ctx context.Context, ids []string, update repository.StatusUpdate) ([]models.Listing, error) {
	updated := make([]models.Listing, 0, len(ids))
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			var rec listingRecord
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("listing_id = ?", id).Take(&rec).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return err
			}

			change := statusChangeRecord{
				ChangeID:   utils.GenerateID(),
				ListingID:  id,
				ActorID:    update.ActorID,
				FromStatus: rec.Status,
				ToStatus:   string(update.Status),
				Reason:     update.Reason,
				ChangedAt:  update.At,
			}
			if err := tx.Create(&change).Error; err != nil {
				return err
			}

			fields := map[string]any{"status": string(update.Status), "updated_at": update.At}
			if update.MarkApproved {
				fields["is_approved"] = true
			}
			if err := tx.Model(&listingRecord{}).Where("listing_id = ?", id).Updates(fields).Error; err != nil {
				return err
			}

			rec.Status = string(update.Status)
			rec.UpdatedAt = update.At
			if update.MarkApproved {
				rec.IsApproved = true
			}
			updated = append(updated, toListing(rec))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("set listing status: %w", err)
	}
	return updated, nil
}

func (s *Store) ListStatusChanges(ctx context.Context, listingID string) ([]models.ListingStatusChange, error) {
	if _, err := s.GetListing(ctx, listingID); err != nil {
		return nil, err
	}
	var rows []statusChangeRecord
	if err := s.db.WithContext(ctx).Where("listing_id = ?", listingID).Order("changed_at, change_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list status changes %s: %w", listingID, err)
	}
	out := make([]models.ListingStatusChange, 0, len(rows))
	for _, row := range rows {
		out = append(out, toStatusChange(row))
	}
	return out, nil
}

func (s *Store) GetDetails(ctx context.Context, listingID string) (models.ListingDetails, error) {
	if _, err := s.GetListing(ctx, listingID); err != nil {
		return models.ListingDetails{}, err
	}
	var details models.ListingDetails
	db := s.db.WithContext(ctx)

	var car carRecord
	if err := db.Where("listing_id = ?", listingID).Take(&car).Error; err == nil {
		details.Car = &models.CarDetail{
			ListingID: car.ListingID, Make: car.Make, Model: car.Model, Year: car.Year, Mileage: car.Mileage,
			Transmission: car.Transmission, FuelType: car.FuelType, Color: car.Color, IsNew: car.IsNew,
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return details, fmt.Errorf("get car details %s: %w", listingID, err)
	}

	var re realEstateRecord
	if err := db.Where("listing_id = ?", listingID).Take(&re).Error; err == nil {
		details.RealEstate = &models.RealEstateDetail{
			ListingID: re.ListingID, PropertyType: re.PropertyType, AreaSqm: re.AreaSqm, Bedrooms: re.Bedrooms,
			Bathrooms: re.Bathrooms, IsFurnished: re.IsFurnished, ForRent: re.ForRent,
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return details, fmt.Errorf("get real estate details %s: %w", listingID, err)
	}

	var hb hotelBookingRecord
	if err := db.Where("listing_id = ?", listingID).Take(&hb).Error; err == nil {
		details.HotelBooking = &models.HotelBookingDetail{
			ListingID: hb.ListingID, HotelName: hb.HotelName, RoomType: hb.RoomType, NumGuests: hb.NumGuests,
			CheckIn: hb.CheckIn, CheckOut: hb.CheckOut,
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return details, fmt.Errorf("get hotel booking details %s: %w", listingID, err)
	}
	return details, nil
}

func (s *Store) SaveDetails(ctx context.Context, listingID string, details models.ListingDetails) error {
	kind := details.Kind()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var listing listingRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("listing_id = ?", listingID).Take(&listing).Error
		if err != nil {
			return translate("save details "+listingID, err, marketerrors.ErrListingNotFound)
		}

		others := map[models.DetailKind]any{
			models.DetailCar:          &carRecord{},
			models.DetailRealEstate:   &realEstateRecord{},
			models.DetailHotelBooking: &hotelBookingRecord{},
		}
		for other, model := range others {
			if other == kind {
				continue
			}
			var n int64
			if err := tx.Model(model).Where("listing_id = ?", listingID).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("save %s details for listing %s: has %s: %w", kind, listingID, other, marketerrors.ErrDetailConflict)
			}
		}

		upsert := tx.Clauses(clause.OnConflict{UpdateAll: true})
		switch kind {
		case models.DetailCar:
			c := details.Car
			return upsert.Create(&carRecord{
				ListingID: listingID, Make: c.Make, Model: c.Model, Year: c.Year, Mileage: c.Mileage,
				Transmission: c.Transmission, FuelType: c.FuelType, Color: c.Color, IsNew: c.IsNew,
			}).Error
		case models.DetailRealEstate:
			r := details.RealEstate
			return upsert.Create(&realEstateRecord{
				ListingID: listingID, PropertyType: r.PropertyType, AreaSqm: r.AreaSqm, Bedrooms: r.Bedrooms,
				Bathrooms: r.Bathrooms, IsFurnished: r.IsFurnished, ForRent: r.ForRent,
			}).Error
		case models.DetailHotelBooking:
			h := details.HotelBooking
			return upsert.Create(&hotelBookingRecord{
				ListingID: listingID, HotelName: h.HotelName, RoomType: h.RoomType, NumGuests: h.NumGuests,
				CheckIn: h.CheckIn, CheckOut: h.CheckOut,
			}).Error
		}
		return fmt.Errorf("save details %s: %w", listingID, marketerrors.ErrInvalidInput)
	})
}

func (s *Store) AddImage(ctx context.Context, image models.ListingImage) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if image.IsMain {
			if err := tx.Model(&listingImageRecord{}).Where("listing_id = ?", image.ListingID).Update("is_main", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&listingImageRecord{
			ImageID:   image.ImageID,
			ListingID: image.ListingID,
			ObjectKey: image.ObjectKey,
			URL:       image.URL,
			IsMain:    image.IsMain,
			CreatedAt: image.CreatedAt,
		}).Error
	})
	return translate("add image to listing "+image.ListingID, err, marketerrors.ErrListingNotFound)
}

func (s *Store) ListImages(ctx context.Context, listingID string) ([]models.ListingImage, error) {
	var rows []listingImageRecord
	if err := s.db.WithContext(ctx).Where("listing_id = ?", listingID).Order("is_main DESC, created_at").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list images %s: %w", listingID, err)
	}
	out := make([]models.ListingImage, 0, len(rows))
	for _, row := range rows {
		out = append(out, toImage(row))
	}
	return out, nil
}
