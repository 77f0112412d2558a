package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DetailKind names the type-specific extension attached to a listing
type DetailKind string

const (
	DetailNone         DetailKind = ""
	DetailCar          DetailKind = "car"
	DetailRealEstate   DetailKind = "real_estate"
	DetailHotelBooking DetailKind = "hotel_booking"
)

var (
	Transmissions = []string{"automatic", "manual"}
	FuelTypes     = []string{"gasoline", "diesel", "hybrid", "electric"}
	PropertyTypes = []string{"apartment", "villa", "land", "commercial"}
	RoomTypes     = []string{"single", "double", "suite", "family"}
)

// CarDetail holds vehicle attributes
type CarDetail struct {
	ListingID    string `json:"listing_id"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	Mileage      int    `json:"mileage"`
	Transmission string `json:"transmission"`
	FuelType     string `json:"fuel_type"`
	Color        string `json:"color"`
	IsNew        bool   `json:"is_new"`
}

// RealEstateDetail holds property attributes
type RealEstateDetail struct {
	ListingID    string          `json:"listing_id"`
	PropertyType string          `json:"property_type"`
	AreaSqm      decimal.Decimal `json:"area_sqm"`
	Bedrooms     *int            `json:"bedrooms,omitempty"`
	Bathrooms    *int            `json:"bathrooms,omitempty"`
	IsFurnished  bool            `json:"is_furnished"`
	ForRent      bool            `json:"for_rent"`
}

// HotelBookingDetail holds hotel room attributes
type HotelBookingDetail struct {
	ListingID string    `json:"listing_id"`
	HotelName string    `json:"hotel_name"`
	RoomType  string    `json:"room_type"`
	NumGuests int       `json:"num_guests"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
}

// ListingDetails carries at most one detail record
type ListingDetails struct {
	Car          *CarDetail          `json:"car,omitempty"`
	RealEstate   *RealEstateDetail   `json:"real_estate,omitempty"`
	HotelBooking *HotelBookingDetail `json:"hotel_booking,omitempty"`
}

// Kind returns the kind of the attached detail, or DetailNone
func (d ListingDetails) Kind() DetailKind {
	switch {
	case d.Car != nil:
		return DetailCar
	case d.RealEstate != nil:
		return DetailRealEstate
	case d.HotelBooking != nil:
		return DetailHotelBooking
	}
	return DetailNone
}

// ListingView is the full listing payload served to clients
type ListingView struct {
	Listing
	CategoryPath string         `json:"category_path"`
	Details      ListingDetails `json:"details"`
	Images       []ListingImage `json:"images"`
	Auction      *Auction       `json:"auction,omitempty"`
}

// Contains reports whether v is one of the allowed values
func Contains(allowed []string, v string) bool {
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}
