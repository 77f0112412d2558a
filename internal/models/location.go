package models

import "time"

type LocationLevel string

const (
	LevelCountry  LocationLevel = "country"
	LevelRegion   LocationLevel = "region"
	LevelCity     LocationLevel = "city"
	LevelDistrict LocationLevel = "district"
)

// Valid reports whether l is a known location level
func (l LocationLevel) Valid() bool {
	switch l {
	case LevelCountry, LevelRegion, LevelCity, LevelDistrict:
		return true
	}
	return false
}

// Location is a named place in the country/region/city/district tree
type Location struct {
	LocationID string        `json:"location_id"`
	Name       string        `json:"name"`
	NameEn     string        `json:"name_en,omitempty"`
	Latitude   float64       `json:"latitude"`
	Longitude  float64       `json:"longitude"`
	ParentID   string        `json:"parent_id,omitempty"`
	Level      LocationLevel `json:"level"`
	IsActive   bool          `json:"is_active"`
	CreatedAt  time.Time     `json:"created_at"`
}

// LocationFilter narrows location listings
type LocationFilter struct {
	ParentID   string
	Level      LocationLevel
	Query      string
	ActiveOnly bool
	Limit      int
}

// LocationView is a location with its full path
type LocationView struct {
	Location
	FullPath string `json:"full_path"`
}

// SavedLocation is a user-named point such as home or work
type SavedLocation struct {
	SavedLocationID string    `json:"saved_location_id"`
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Address         string    `json:"address"`
	IsDefault       bool      `json:"is_default"`
	CreatedAt       time.Time `json:"created_at"`
}
