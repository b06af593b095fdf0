package models

import (
	"time"

	"github.com/google/uuid"
)

type PublishStatus string

const (
	PublishStatusUnderReview PublishStatus = "under_review"
	PublishStatusPause       PublishStatus = "pause"
	PublishStatusRejected    PublishStatus = "rejected"
	PublishStatusPublished   PublishStatus = "published"
)

// GalleryImage is one migrated gallery asset, stored inline on the
// property row as JSON.
type GalleryImage struct {
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
}

type Property struct {
	ID      uuid.UUID     `json:"id"`
	OwnerID uuid.UUID     `json:"owner_id"`
	Status  PublishStatus `json:"status"`

	Title       *string `json:"title,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Description string  `json:"description"`

	Type             string `json:"type"`
	TransactionType  string `json:"transaction_type"`
	PropertyStyle    string `json:"property_style"`
	PropertyUsage    string `json:"property_usage"`
	IsFurnished      bool   `json:"is_furnished"`
	FinishingQuality string `json:"finishing_quality"`
	SunLightLevel    string `json:"sun_light_level"`
	YearBuilt        int    `json:"year_built"`

	Price        int  `json:"price"`
	IsNegotiable bool `json:"is_negotiable"`

	PropertyRentContractMonths *int `json:"property_rent_contract_months,omitempty"`
	PropertyRentDepositMonths  *int `json:"property_rent_deposit_months,omitempty"`

	FullAddress     string    `json:"full_address"`
	CompactAddress  string    `json:"compact_address"`
	GoogleAddressID uuid.UUID `json:"google_address_id"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`

	FloorNumber       *int `json:"floor_number,omitempty"`
	TotalFloor        *int `json:"total_floor,omitempty"`
	TotalWaterClosets *int `json:"total_water_closets,omitempty"`
	TotalBathrooms    *int `json:"total_bathrooms,omitempty"`
	TotalBedrooms     *int `json:"total_bedrooms,omitempty"`
	TotalSalons       *int `json:"total_salons,omitempty"`
	TotalKitchens     *int `json:"total_kitchens,omitempty"`
	AreaSize          *int `json:"area_size,omitempty"`
	BuildingSize      *int `json:"building_size,omitempty"`

	CoverFilename    *string        `json:"cover_filename,omitempty"`
	CoverFileURL     *string        `json:"cover_file_url,omitempty"`
	CoverContentType *string        `json:"cover_content_type,omitempty"`
	GalleryImages    []GalleryImage `json:"gallery_images,omitempty"`
	YoutubeVideoURL  *string        `json:"youtube_video_url,omitempty"`
	MatterPortURL    *string        `json:"matter_port_url,omitempty"`
	FloorPlanURL     *string        `json:"floor_plan_url,omitempty"`

	VisitDays []string `json:"visit_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
