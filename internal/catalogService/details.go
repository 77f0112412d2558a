package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dalal-market/internal/marketerrors"
	"dalal-market/internal/media"
	"dalal-market/internal/models"
	"dalal-market/utils"
)

const minCarYear = 1900

func (s *CatalogService) validateCar(car *models.CarDetail) error {
	if strings.TrimSpace(car.Make) == "" || strings.TrimSpace(car.Model) == "" {
		return fmt.Errorf("%w - make and model are required", marketerrors.ErrInvalidInput)
	}
	if car.Year < minCarYear || car.Year > s.now().Year()+1 {
		return fmt.Errorf("%w - year %d out of range", marketerrors.ErrInvalidInput, car.Year)
	}
	if car.Mileage < 0 {
		return fmt.Errorf("%w - mileage cannot be negative", marketerrors.ErrInvalidInput)
	}
	if !models.Contains(models.Transmissions, car.Transmission) {
		return fmt.Errorf("%w - unknown transmission %q", marketerrors.ErrInvalidInput, car.Transmission)
	}
	if !models.Contains(models.FuelTypes, car.FuelType) {
		return fmt.Errorf("%w - unknown fuel type %q", marketerrors.ErrInvalidInput, car.FuelType)
	}
	return nil
}

func validateRealEstate(re *models.RealEstateDetail) error {
	if !models.Contains(models.PropertyTypes, re.PropertyType) {
		return fmt.Errorf("%w - unknown property type %q", marketerrors.ErrInvalidInput, re.PropertyType)
	}
	if !re.AreaSqm.IsPositive() {
		return fmt.Errorf("%w - area must be positive", marketerrors.ErrInvalidInput)
	}
	if (re.Bedrooms != nil && *re.Bedrooms < 0) || (re.Bathrooms != nil && *re.Bathrooms < 0) {
		return fmt.Errorf("%w - room counts cannot be negative", marketerrors.ErrInvalidInput)
	}
	return nil
}

func validateHotelBooking(hb *models.HotelBookingDetail) error {
	if strings.TrimSpace(hb.HotelName) == "" {
		return fmt.Errorf("%w - hotel name is required", marketerrors.ErrInvalidInput)
	}
	if !models.Contains(models.RoomTypes, hb.RoomType) {
		return fmt.Errorf("%w - unknown room type %q", marketerrors.ErrInvalidInput, hb.RoomType)
	}
	if hb.NumGuests < 1 {
		return fmt.Errorf("%w - at least one guest is required", marketerrors.ErrInvalidInput)
	}
	if hb.CheckIn.IsZero() || !hb.CheckOut.After(hb.CheckIn) {
		return fmt.Errorf("%w - check_out must be after check_in", marketerrors.ErrInvalidInput)
	}
	return nil
}

// AttachDetails stores the single type-specific detail carried by details.
// A listing holds one kind of detail; re-attaching the same kind replaces it.
func (s *CatalogService) AttachDetails(ctx context.Context, userID, listingID string, details models.ListingDetails) (models.ListingDetails, error) {
	set := 0
	if details.Car != nil {
		set++
	}
	if details.RealEstate != nil {
		set++
	}
	if details.HotelBooking != nil {
		set++
	}
	if set != 1 {
		return models.ListingDetails{}, fmt.Errorf("service: %w - exactly one detail kind must be given", marketerrors.ErrInvalidInput)
	}

	if _, err := s.ownedListing(ctx, userID, listingID); err != nil {
		return models.ListingDetails{}, err
	}

	var err error
	switch details.Kind() {
	case models.DetailCar:
		details.Car.ListingID = listingID
		err = s.validateCar(details.Car)
	case models.DetailRealEstate:
		details.RealEstate.ListingID = listingID
		err = validateRealEstate(details.RealEstate)
	case models.DetailHotelBooking:
		details.HotelBooking.ListingID = listingID
		details.HotelBooking.CheckIn = details.HotelBooking.CheckIn.UTC()
		details.HotelBooking.CheckOut = details.HotelBooking.CheckOut.UTC()
		err = validateHotelBooking(details.HotelBooking)
	}
	if err != nil {
		return models.ListingDetails{}, fmt.Errorf("service: %w", err)
	}

	if err := s.listings.SaveDetails(ctx, listingID, details); err != nil {
		return models.ListingDetails{}, fmt.Errorf("service: failed to save %s details of listing %s: %w", details.Kind(), listingID, err)
	}
	s.invalidate(ctx, listingID)
	return details, nil
}

// UploadImage stores an image for the owner's listing. The first image becomes the main one.
func (s *CatalogService) UploadImage(ctx context.Context, userID, listingID string, data []byte) (models.ListingImage, error) {
	if _, err := s.ownedListing(ctx, userID, listingID); err != nil {
		return models.ListingImage{}, err
	}
	if s.uploader == nil {
		return models.ListingImage{}, fmt.Errorf("service: %w - media storage is not configured", marketerrors.ErrInvalidInput)
	}
	existing, err := s.listings.ListImages(ctx, listingID)
	if err != nil {
		return models.ListingImage{}, fmt.Errorf("service: failed to list images of listing %s: %w", listingID, err)
	}

	object, err := s.uploader.UploadListingImage(ctx, listingID, data)
	if errors.Is(err, media.ErrEmptyFile) || errors.Is(err, media.ErrFileTooLarge) || errors.Is(err, media.ErrUnsupportedType) {
		return models.ListingImage{}, fmt.Errorf("service: %w - %v", marketerrors.ErrInvalidInput, err)
	}
	if err != nil {
		return models.ListingImage{}, fmt.Errorf("service: failed to store image for listing %s: %w", listingID, err)
	}

	image := models.ListingImage{
		ImageID:   utils.GenerateID(),
		ListingID: listingID,
		ObjectKey: object.Key,
		URL:       object.URL,
		IsMain:    len(existing) == 0,
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	}
	if err := s.listings.AddImage(ctx, image); err != nil {
		return models.ListingImage{}, fmt.Errorf("service: failed to add image to listing %s: %w", listingID, err)
	}
	s.invalidate(ctx, listingID)
	return image, nil
}

// ListImages returns the images of a listing, main image first
func (s *CatalogService) ListImages(ctx context.Context, listingID string) ([]models.ListingImage, error) {
	if _, err := s.listings.GetListing(ctx, listingID); err != nil {
		return nil, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	images, err := s.listings.ListImages(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list images of listing %s: %w", listingID, err)
	}
	return images, nil
}
