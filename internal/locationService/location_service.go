package locations

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"
	"dalal-market/internal/repository"
	"dalal-market/internal/tree"
	"dalal-market/utils"

	"github.com/shopspring/decimal"
)

const (
	minQueryLength = 2
	searchLimit    = 10
	nearbyRadius   = 0.1
	nearbyLimit    = 10
	areaLimit      = 100
)

// LocationInput describes a new location node
type LocationInput struct {
	Name      string
	NameEn    string
	Latitude  float64
	Longitude float64
	ParentID  string
	Level     models.LocationLevel
}

// SavedLocationInput describes a user's saved point
type SavedLocationInput struct {
	Name      string
	Latitude  float64
	Longitude float64
	Address   string
	IsDefault bool
}

// AreaParams filters the map view
type AreaParams struct {
	CategorySlug string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
}

// LocationService serves the location tree, saved locations and map queries
type LocationService struct {
	repo       repository.LocationDB
	listings   repository.ListingDB
	categories repository.CategoryDB
	now        func() time.Time
}

func NewLocationService(repo repository.LocationDB, listings repository.ListingDB, categories repository.CategoryDB) *LocationService {
	return &LocationService{repo: repo, listings: listings, categories: categories, now: time.Now}
}

func validPoint(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func (s *LocationService) lookup(ctx context.Context) tree.Lookup {
	return func(id string) (tree.Node, error) {
		l, err := s.repo.GetLocation(ctx, id)
		if err != nil {
			return tree.Node{}, err
		}
		return tree.Node{ID: l.LocationID, Name: l.Name, ParentID: l.ParentID}, nil
	}
}

// CreateLocation adds a node to the location tree
func (s *LocationService) CreateLocation(ctx context.Context, in LocationInput) (models.Location, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Location{}, fmt.Errorf("service: %w - location name is required", marketerrors.ErrInvalidInput)
	}
	if !in.Level.Valid() {
		return models.Location{}, fmt.Errorf("service: %w - unknown level %q", marketerrors.ErrInvalidInput, in.Level)
	}
	if !validPoint(in.Latitude, in.Longitude) {
		return models.Location{}, fmt.Errorf("service: %w - coordinates out of range", marketerrors.ErrInvalidInput)
	}
	if err := tree.CheckParent("", in.ParentID, s.lookup(ctx)); err != nil {
		return models.Location{}, fmt.Errorf("service: invalid parent %s: %w", in.ParentID, err)
	}

	location := models.Location{
		LocationID: utils.GenerateID(),
		Name:       name,
		NameEn:     strings.TrimSpace(in.NameEn),
		Latitude:   in.Latitude,
		Longitude:  in.Longitude,
		ParentID:   in.ParentID,
		Level:      in.Level,
		IsActive:   true,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.CreateLocation(ctx, location); err != nil {
		return models.Location{}, fmt.Errorf("service: failed to create location %s: %w", name, err)
	}
	return location, nil
}

// ListLocations returns active locations under a parent and/or at a level
func (s *LocationService) ListLocations(ctx context.Context, parentID string, level models.LocationLevel) ([]models.Location, error) {
	if level != "" && !level.Valid() {
		return nil, fmt.Errorf("service: %w - unknown level %q", marketerrors.ErrInvalidInput, level)
	}
	out, err := s.repo.ListLocations(ctx, models.LocationFilter{ParentID: parentID, Level: level, ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list locations: %w", err)
	}
	return out, nil
}

// SearchLocations matches active locations by either name. Queries shorter
// than two characters return nothing.
func (s *LocationService) SearchLocations(ctx context.Context, query string) ([]models.LocationView, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minQueryLength {
		return []models.LocationView{}, nil
	}
	found, err := s.repo.ListLocations(ctx, models.LocationFilter{Query: query, ActiveOnly: true, Limit: searchLimit})
	if err != nil {
		return nil, fmt.Errorf("service: failed to search locations: %w", err)
	}

	lookup := s.lookup(ctx)
	out := make([]models.LocationView, 0, len(found))
	for _, l := range found {
		path, err := tree.FullPath(l.LocationID, lookup)
		if err != nil {
			return nil, fmt.Errorf("service: path of location %s: %w", l.LocationID, err)
		}
		out = append(out, models.LocationView{Location: l, FullPath: path})
	}
	return out, nil
}

// SaveLocation stores a user's point; a new default replaces the old one
func (s *LocationService) SaveLocation(ctx context.Context, userID string, in SavedLocationInput) (models.SavedLocation, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.SavedLocation{}, fmt.Errorf("service: %w - name is required", marketerrors.ErrInvalidInput)
	}
	if !validPoint(in.Latitude, in.Longitude) {
		return models.SavedLocation{}, fmt.Errorf("service: %w - coordinates out of range", marketerrors.ErrInvalidInput)
	}
	saved := models.SavedLocation{
		SavedLocationID: utils.GenerateID(),
		UserID:          userID,
		Name:            name,
		Latitude:        in.Latitude,
		Longitude:       in.Longitude,
		Address:         strings.TrimSpace(in.Address),
		IsDefault:       in.IsDefault,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.repo.CreateSavedLocation(ctx, saved); err != nil {
		return models.SavedLocation{}, fmt.Errorf("service: failed to save location for %s: %w", userID, err)
	}
	return saved, nil
}

// MyLocations returns the user's saved points, default first
func (s *LocationService) MyLocations(ctx context.Context, userID string) ([]models.SavedLocation, error) {
	out, err := s.repo.ListSavedLocations(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list saved locations of %s: %w", userID, err)
	}
	return out, nil
}

// DeleteSavedLocation removes one of the user's saved points
func (s *LocationService) DeleteSavedLocation(ctx context.Context, userID, savedLocationID string) error {
	saved, err := s.repo.GetSavedLocation(ctx, savedLocationID)
	if err != nil {
		return fmt.Errorf("service: failed to get saved location %s: %w", savedLocationID, err)
	}
	if saved.UserID != userID {
		return fmt.Errorf("service: saved location %s: %w", savedLocationID, marketerrors.ErrLocationNotFound)
	}
	if err := s.repo.DeleteSavedLocation(ctx, savedLocationID); err != nil {
		return fmt.Errorf("service: failed to delete saved location %s: %w", savedLocationID, err)
	}
	return nil
}

// NearbyListings returns public listings within a 0.1 degree box around the listing
func (s *LocationService) NearbyListings(ctx context.Context, listingID string) ([]models.Listing, error) {
	listing, err := s.listings.GetListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	if !listing.HasCoordinates() {
		return []models.Listing{}, nil
	}
	lat, lng := *listing.Latitude, *listing.Longitude
	nearby, err := s.listings.SearchListings(ctx, models.ListingFilter{
		Statuses:     []models.ListingStatus{models.ListingActive},
		ApprovedOnly: true,
		Bounds: &models.BoundingBox{
			MinLat: lat - nearbyRadius, MaxLat: lat + nearbyRadius,
			MinLng: lng - nearbyRadius, MaxLng: lng + nearbyRadius,
		},
		ExcludeID: listingID,
		Sort:      models.SortNewest,
		Limit:     nearbyLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to find listings near %s: %w", listingID, err)
	}
	return nearby, nil
}

// AreaListings returns public listings that can be drawn on a map
func (s *LocationService) AreaListings(ctx context.Context, params AreaParams) ([]models.Listing, error) {
	filter := models.ListingFilter{
		Statuses:        []models.ListingStatus{models.ListingActive},
		ApprovedOnly:    true,
		WithCoordinates: true,
		MinPrice:        params.MinPrice,
		MaxPrice:        params.MaxPrice,
		Sort:            models.SortNewest,
		Limit:           areaLimit,
	}
	if params.CategorySlug != "" {
		category, err := s.categories.GetCategoryBySlug(ctx, params.CategorySlug)
		if err != nil {
			return nil, fmt.Errorf("service: failed to get category %s: %w", params.CategorySlug, err)
		}
		filter.CategoryID = category.CategoryID
	}
	out, err := s.listings.SearchListings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list area listings: %w", err)
	}
	return out, nil
}
