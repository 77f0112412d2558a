package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	accounts "dalal-market/internal/accountService"
	catalog "dalal-market/internal/catalogService"
	locations "dalal-market/internal/locationService"
	"dalal-market/internal/marketerrors"
	"dalal-market/internal/models"
	"dalal-market/internal/repository"
	"dalal-market/utils"

	"github.com/shopspring/decimal"
)

const AdminUsername = "admin"

type Options struct {
	AdminPassword  string
	SamplePassword string
}

// Summary counts what a run created
type Summary struct {
	Skipped    bool `json:"skipped"`
	Users      int  `json:"users"`
	Categories int  `json:"categories"`
	Locations  int  `json:"locations"`
	Listings   int  `json:"listings"`
}

// Seeder loads sample marketplace data through the domain services
type Seeder struct {
	users     repository.UserDB
	accounts  *accounts.AccountService
	catalog   *catalog.CatalogService
	locations *locations.LocationService
	now       func() time.Time
}

func New(users repository.UserDB, acc *accounts.AccountService, cat *catalog.CatalogService, loc *locations.LocationService) *Seeder {
	return &Seeder{users: users, accounts: acc, catalog: cat, locations: loc, now: time.Now}
}

type categorySeed struct {
	name     string
	slug     string
	children []categorySeed
}

var categoryTree = []categorySeed{
	{name: "Vehicles", slug: "vehicles", children: []categorySeed{
		{name: "Cars", slug: "cars"},
		{name: "Motorcycles", slug: "motorcycles"},
	}},
	{name: "Real Estate", slug: "real-estate", children: []categorySeed{
		{name: "Apartments", slug: "apartments"},
		{name: "Villas", slug: "villas"},
	}},
	{name: "Hotels", slug: "hotels"},
	{name: "Home & Garden", slug: "home-garden", children: []categorySeed{
		{name: "Garage Doors", slug: "garage-doors"},
		{name: "Garage Door Openers", slug: "garage-door-openers"},
	}},
}

type locationSeed struct {
	name     string
	nameEn   string
	lat, lng float64
	level    models.LocationLevel
	children []locationSeed
}

var locationTree = locationSeed{
	name: "السعودية", nameEn: "Saudi Arabia", lat: 23.8859, lng: 45.0792, level: models.LevelCountry,
	children: []locationSeed{
		{name: "منطقة الرياض", nameEn: "Riyadh Region", lat: 24.7136, lng: 46.6753, level: models.LevelRegion, children: []locationSeed{
			{name: "الرياض", nameEn: "Riyadh", lat: 24.7136, lng: 46.6753, level: models.LevelCity, children: []locationSeed{
				{name: "العليا", nameEn: "Al Olaya", lat: 24.6905, lng: 46.6854, level: models.LevelDistrict},
				{name: "الملقا", nameEn: "Al Malqa", lat: 24.8123, lng: 46.6161, level: models.LevelDistrict},
			}},
		}},
		{name: "منطقة مكة المكرمة", nameEn: "Makkah Region", lat: 21.3891, lng: 39.8579, level: models.LevelRegion, children: []locationSeed{
			{name: "جدة", nameEn: "Jeddah", lat: 21.4858, lng: 39.1925, level: models.LevelCity, children: []locationSeed{
				{name: "الروضة", nameEn: "Al Rawdah", lat: 21.5636, lng: 39.1612, level: models.LevelDistrict},
			}},
		}},
		{name: "المنطقة الشرقية", nameEn: "Eastern Province", lat: 26.4207, lng: 50.0888, level: models.LevelRegion, children: []locationSeed{
			{name: "الدمام", nameEn: "Dammam", lat: 26.4207, lng: 50.0888, level: models.LevelCity},
		}},
	},
}

// Run creates the sample data. A store that already has the admin account is left untouched.
func (s *Seeder) Run(ctx context.Context, opts Options) (Summary, error) {
	var summary Summary
	if opts.AdminPassword == "" || opts.SamplePassword == "" {
		return summary, fmt.Errorf("seed: %w - passwords are required", marketerrors.ErrInvalidInput)
	}

	_, err := s.users.GetUserByLogin(ctx, AdminUsername)
	if err == nil {
		utils.Info("sample data already present, skipping seed", nil)
		summary.Skipped = true
		return summary, nil
	}
	if !errors.Is(err, marketerrors.ErrUserNotFound) {
		return summary, fmt.Errorf("seed: check admin account: %w", err)
	}

	admin, err := s.register(ctx, accounts.RegisterInput{
		Username: AdminUsername, Email: "admin@dalal.sa", Password: opts.AdminPassword,
		FirstName: "Site", LastName: "Admin",
	}, &summary)
	if err != nil {
		return summary, err
	}
	admin.IsStaff = true
	if err := s.users.UpdateUser(ctx, admin); err != nil {
		return summary, fmt.Errorf("seed: promote admin: %w", err)
	}

	seller, err := s.register(ctx, accounts.RegisterInput{
		Username: "seller1", Email: "seller1@dalal.sa", Password: opts.SamplePassword,
		FirstName: "Fahad", LastName: "Alotaibi", PhoneNumber: "+966500000001", Address: "Riyadh", IsSeller: true,
	}, &summary)
	if err != nil {
		return summary, err
	}
	if _, err := s.accounts.VerifyUser(ctx, seller.UserID); err != nil {
		return summary, fmt.Errorf("seed: verify seller: %w", err)
	}
	if _, err := s.register(ctx, accounts.RegisterInput{
		Username: "buyer1", Email: "buyer1@dalal.sa", Password: opts.SamplePassword,
		FirstName: "Sara", LastName: "Alqahtani", PhoneNumber: "+966500000002", Address: "Jeddah",
	}, &summary); err != nil {
		return summary, err
	}

	categories := make(map[string]string)
	for _, c := range categoryTree {
		if err := s.createCategory(ctx, c, "", categories, &summary); err != nil {
			return summary, err
		}
	}
	if err := s.createLocation(ctx, locationTree, "", &summary); err != nil {
		return summary, err
	}
	if err := s.createListings(ctx, admin.UserID, seller.UserID, categories, &summary); err != nil {
		return summary, err
	}

	utils.Info("sample data seeded", map[string]any{
		"users":      summary.Users,
		"categories": summary.Categories,
		"locations":  summary.Locations,
		"listings":   summary.Listings,
	})
	return summary, nil
}

func (s *Seeder) register(ctx context.Context, in accounts.RegisterInput, summary *Summary) (models.User, error) {
	user, err := s.accounts.Register(ctx, in)
	if err != nil {
		return models.User{}, fmt.Errorf("seed: register %s: %w", in.Username, err)
	}
	summary.Users++
	return user, nil
}

func (s *Seeder) createCategory(ctx context.Context, c categorySeed, parentID string, ids map[string]string, summary *Summary) error {
	created, err := s.catalog.CreateCategory(ctx, catalog.CategoryInput{Name: c.name, Slug: c.slug, ParentID: parentID})
	if err != nil {
		return fmt.Errorf("seed: create category %s: %w", c.slug, err)
	}
	ids[created.Slug] = created.CategoryID
	summary.Categories++
	for _, child := range c.children {
		if err := s.createCategory(ctx, child, created.CategoryID, ids, summary); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) createLocation(ctx context.Context, l locationSeed, parentID string, summary *Summary) error {
	created, err := s.locations.CreateLocation(ctx, locations.LocationInput{
		Name: l.name, NameEn: l.nameEn, Latitude: l.lat, Longitude: l.lng, ParentID: parentID, Level: l.level,
	})
	if err != nil {
		return fmt.Errorf("seed: create location %s: %w", l.nameEn, err)
	}
	summary.Locations++
	for _, child := range l.children {
		if err := s.createLocation(ctx, child, created.LocationID, summary); err != nil {
			return err
		}
	}
	return nil
}

type listingSeed struct {
	input    catalog.ListingInput
	category string
	details  *models.ListingDetails
}

func point(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func (s *Seeder) sampleListings() []listingSeed {
	checkIn := s.now().UTC().AddDate(0, 1, 0).Truncate(24 * time.Hour).Add(15 * time.Hour)
	return []listingSeed{
		{
			category: "cars",
			input: catalog.ListingInput{
				Title: "Toyota Camry 2021 GLE", Description: "Single owner, full service history at the agency.",
				Price: decimal.RequireFromString("89000"), Latitude: point(24.6905), Longitude: point(46.6854),
			},
			details: &models.ListingDetails{Car: &models.CarDetail{
				Make: "Toyota", Model: "Camry", Year: 2021, Mileage: 48000,
				Transmission: "automatic", FuelType: "gasoline", Color: "white",
			}},
		},
		{
			category: "apartments",
			input: catalog.ListingInput{
				Title: "Furnished apartment in Al Malqa", Description: "Three bedrooms near King Fahd Road.",
				Price: decimal.RequireFromString("65000"), Latitude: point(24.8123), Longitude: point(46.6161),
			},
			details: &models.ListingDetails{RealEstate: &models.RealEstateDetail{
				PropertyType: "apartment", AreaSqm: decimal.RequireFromString("185.5"),
				Bedrooms: intPtr(3), Bathrooms: intPtr(2), IsFurnished: true, ForRent: true,
			}},
		},
		{
			category: "villas",
			input: catalog.ListingInput{
				Title: "Villa with garden in Al Rawdah", Description: "Corner plot, private pool.",
				Price: decimal.RequireFromString("2450000"), Latitude: point(21.5636), Longitude: point(39.1612),
			},
			details: &models.ListingDetails{RealEstate: &models.RealEstateDetail{
				PropertyType: "villa", AreaSqm: decimal.RequireFromString("420"),
				Bedrooms: intPtr(5), Bathrooms: intPtr(6),
			}},
		},
		{
			category: "hotels",
			input: catalog.ListingInput{
				Title: "Corniche hotel suite, two nights", Description: "Sea view suite with breakfast.",
				Price: decimal.RequireFromString("1800"), Latitude: point(21.5433), Longitude: point(39.1728),
			},
			details: &models.ListingDetails{HotelBooking: &models.HotelBookingDetail{
				HotelName: "Jeddah Corniche Hotel", RoomType: "suite", NumGuests: 2,
				CheckIn: checkIn, CheckOut: checkIn.Add(44 * time.Hour),
			}},
		},
		{
			category: "garage-door-openers",
			input: catalog.ListingInput{
				Title: "LiftMaster 8500W chain drive opener", Description: "1/2 HP opener with LED light, five year motor warranty.",
				Price: decimal.RequireFromString("299.99"),
			},
		},
		{
			category: "garage-doors",
			input: catalog.ListingInput{
				Title: "Insulated steel sectional garage door", Description: "Installed in Dammam within a week.",
				Price: decimal.RequireFromString("4200"), Latitude: point(26.4207), Longitude: point(50.0888),
			},
		},
	}
}

func (s *Seeder) createListings(ctx context.Context, adminID, sellerID string, categories map[string]string, summary *Summary) error {
	for _, l := range s.sampleListings() {
		l.input.CategoryID = categories[l.category]
		listing, err := s.catalog.CreateListing(ctx, sellerID, l.input)
		if err != nil {
			return fmt.Errorf("seed: create listing %q: %w", l.input.Title, err)
		}
		if l.details != nil {
			if _, err := s.catalog.AttachDetails(ctx, sellerID, listing.ListingID, *l.details); err != nil {
				return fmt.Errorf("seed: attach details to %q: %w", l.input.Title, err)
			}
		}
		if _, err := s.catalog.ApproveListing(ctx, adminID, listing.ListingID); err != nil {
			return fmt.Errorf("seed: approve %q: %w", l.input.Title, err)
		}
		summary.Listings++
	}
	return nil
}
