package models

import (
	"time"

	"github.com/google/uuid"
)

// GeocodingResult is the JSON payload stored with every address. Rows
// created by the ingestion path carry a placeholder built from the raw
// coordinates; the main backend enriches them later.
type GeocodingResult struct {
	Address          string            `json:"address"`
	FormattedAddress string            `json:"formattedAddress"`
	PlaceID          string            `json:"placeId"`
	Latitude         float64           `json:"latitude"`
	Longitude        float64           `json:"longitude"`
	Components       map[string]string `json:"components"`
}

// GoogleAddress is the deduplicated geocoding record for one coordinate
// pair. Latitude/Longitude are kept as the exact decimal strings the pair
// was first seen with; lookups match those strings verbatim.
type GoogleAddress struct {
	ID          uuid.UUID       `json:"id"`
	Latitude    string          `json:"latitude"`
	Longitude   string          `json:"longitude"`
	AddressJSON GeocodingResult `json:"google_address_json"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
