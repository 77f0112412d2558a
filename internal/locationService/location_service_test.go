package locations

import (
	"context"
	"testing"
	"time"

	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"
	"dalal-market/internal/repository"
	"dalal-market/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*LocationService, *repository.MemoryRepo) {
	t.Helper()
	repo := repository.NewMemoryRepo()
	service := NewLocationService(repo, repo, repo)
	clock := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	service.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return service, repo
}

func TestLocationService_TreeAndSearch(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	saudi, err := service.CreateLocation(ctx, LocationInput{Name: "السعودية", NameEn: "Saudi Arabia", Latitude: 24, Longitude: 45, Level: models.LevelCountry})
	require.NoError(t, err)
	riyadh, err := service.CreateLocation(ctx, LocationInput{Name: "الرياض", NameEn: "Riyadh", Latitude: 24.7, Longitude: 46.7, ParentID: saudi.LocationID, Level: models.LevelCity})
	require.NoError(t, err)
	_, err = service.CreateLocation(ctx, LocationInput{Name: "العليا", NameEn: "Olaya", Latitude: 24.69, Longitude: 46.68, ParentID: riyadh.LocationID, Level: models.LevelDistrict})
	require.NoError(t, err)

	_, err = service.CreateLocation(ctx, LocationInput{Name: "X", Level: "planet"})
	require.ErrorIs(t, err, marketerrors.ErrInvalidInput)
	_, err = service.CreateLocation(ctx, LocationInput{Name: "X", Level: models.LevelCity, Latitude: 100})
	require.ErrorIs(t, err, marketerrors.ErrInvalidInput)
	_, err = service.CreateLocation(ctx, LocationInput{Name: "X", Level: models.LevelCity, ParentID: "missing"})
	require.ErrorIs(t, err, marketerrors.ErrLocationNotFound)

	children, err := service.ListLocations(ctx, riyadh.LocationID, "")
	require.NoError(t, err)
	require.Len(t, children, 1)
	require.Equal(t, "Olaya", children[0].NameEn)

	cities, err := service.ListLocations(ctx, "", models.LevelCity)
	require.NoError(t, err)
	require.Len(t, cities, 1)

	_, err = service.ListLocations(ctx, "", "galaxy")
	require.ErrorIs(t, err, marketerrors.ErrInvalidInput)

	short, err := service.SearchLocations(ctx, "o")
	require.NoError(t, err)
	require.Empty(t, short)

	found, err := service.SearchLocations(ctx, "olaya")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "السعودية > الرياض > العليا", found[0].FullPath)
}

func TestLocationService_SearchLimit(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()
	for i := 0; i < 15; i++ {
		_, err := service.CreateLocation(ctx, LocationInput{Name: "District " + string(rune('A'+i)), Level: models.LevelDistrict})
		require.NoError(t, err)
	}
	found, err := service.SearchLocations(ctx, "district")
	require.NoError(t, err)
	require.Len(t, found, searchLimit)
}

func TestLocationService_SavedLocations(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()
	userID := utils.GenerateID()

	_, err := service.SaveLocation(ctx, userID, SavedLocationInput{Name: " "})
	require.ErrorIs(t, err, marketerrors.ErrInvalidInput)

	home, err := service.SaveLocation(ctx, userID, SavedLocationInput{Name: "Home", Latitude: 24.7, Longitude: 46.7, IsDefault: true})
	require.NoError(t, err)
	_, err = service.SaveLocation(ctx, userID, SavedLocationInput{Name: "Gym", Latitude: 24.8, Longitude: 46.6})
	require.NoError(t, err)
	work, err := service.SaveLocation(ctx, userID, SavedLocationInput{Name: "Work", Latitude: 24.6, Longitude: 46.8, IsDefault: true})
	require.NoError(t, err)

	mine, err := service.MyLocations(ctx, userID)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	require.Equal(t, work.SavedLocationID, mine[0].SavedLocationID)
	require.True(t, mine[0].IsDefault)
	require.Equal(t, "Gym", mine[1].Name)
	require.False(t, mine[2].IsDefault)

	require.ErrorIs(t, service.DeleteSavedLocation(ctx, "intruder", home.SavedLocationID), marketerrors.ErrLocationNotFound)
	require.NoError(t, service.DeleteSavedLocation(ctx, userID, home.SavedLocationID))
	require.ErrorIs(t, service.DeleteSavedLocation(ctx, userID, home.SavedLocationID), marketerrors.ErrLocationNotFound)
}

func TestLocationService_MapQueries(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	cars := models.Category{CategoryID: utils.GenerateID(), Name: "Cars", Slug: "cars"}
	homes := models.Category{CategoryID: utils.GenerateID(), Name: "Homes", Slug: "homes"}
	require.NoError(t, repo.CreateCategory(ctx, cars))
	require.NoError(t, repo.CreateCategory(ctx, homes))

	point := func(v float64) *float64 { return &v }
	created := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	add := func(title string, category models.Category, price int64, lat, lng *float64, status models.ListingStatus, approved bool) models.Listing {
		created = created.Add(time.Minute)
		l := models.Listing{
			ListingID: utils.GenerateID(), Title: title, Price: decimal.NewFromInt(price), CategoryID: category.CategoryID,
			SellerID: "seller", Latitude: lat, Longitude: lng, Status: status, IsApproved: approved, CreatedAt: created,
		}
		require.NoError(t, repo.CreateListing(ctx, l))
		return l
	}

	center := add("Center", cars, 100, point(24.70), point(46.70), models.ListingActive, true)
	closest := add("Close", cars, 200, point(24.75), point(46.65), models.ListingActive, true)
	add("Inside", homes, 300, point(24.78), point(46.78), models.ListingActive, true)
	add("Far", homes, 400, point(25.70), point(46.70), models.ListingActive, true)
	add("Hidden nearby", cars, 500, point(24.71), point(46.71), models.ListingHidden, true)
	add("Unapproved nearby", cars, 600, point(24.72), point(46.72), models.ListingActive, false)
	add("No coordinates", cars, 700, nil, nil, models.ListingActive, true)
	lonely := add("Lonely", cars, 800, nil, nil, models.ListingActive, true)

	nearby, err := service.NearbyListings(ctx, center.ListingID)
	require.NoError(t, err)
	titles := make([]string, 0, len(nearby))
	for _, l := range nearby {
		titles = append(titles, l.Title)
	}
	require.ElementsMatch(t, []string{"Close", "Inside"}, titles)

	none, err := service.NearbyListings(ctx, lonely.ListingID)
	require.NoError(t, err)
	require.Empty(t, none)

	_, err = service.NearbyListings(ctx, "missing")
	require.ErrorIs(t, err, marketerrors.ErrListingNotFound)

	area, err := service.AreaListings(ctx, AreaParams{})
	require.NoError(t, err)
	require.Len(t, area, 4)

	ceiling := decimal.NewFromInt(250)
	cheapCars, err := service.AreaListings(ctx, AreaParams{CategorySlug: "cars", MaxPrice: &ceiling})
	require.NoError(t, err)
	require.Len(t, cheapCars, 2)
	require.Equal(t, closest.ListingID, cheapCars[0].ListingID)

	_, err = service.AreaListings(ctx, AreaParams{CategorySlug: "boats"})
	require.ErrorIs(t, err, marketerrors.ErrCategoryNotFound)
}
