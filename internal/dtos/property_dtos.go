package dtos

import "encoding/json"

/*
PropertySubmission is one raw property payload inside POST /properties/bulk.
Optional fields are pointers so "absent" and "zero" stay distinguishable;
the per-type rules in internal/validation depend on that.
*/
type PropertySubmission struct {
	// Basic required property info
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description string  `json:"description" validate:"min=10"`

	Type             string `json:"type" validate:"required,oneof=apartment house villa office riads garage studio duplex"`
	TransactionType  string `json:"transactionType" validate:"required,oneof=for_rent for_sale"`
	PropertyStyle    string `json:"propertyStyle" validate:"required,oneof=modern traditional"`
	PropertyUsage    string `json:"propertyUsage" validate:"required,oneof=residential commercial"`
	IsFurnished      *bool  `json:"isFurnished" validate:"required"`
	FinishingQuality string `json:"finishingQuality" validate:"required,oneof=economic medium high"`
	SunLightLevel    string `json:"sunLightLevel" validate:"required,oneof=weak medium high"`
	YearBuilt        int    `json:"yearBuilt" validate:"required,min=1800"`

	// Pricing
	Price        int   `json:"price" validate:"required,min=1"`
	IsNegotiable *bool `json:"isNegotiable"`

	// Rent-specific fields
	PropertyRentContractMonths *int `json:"propertyRentContractMonths" validate:"omitempty,min=1"`
	PropertyRentDepositMonths  *int `json:"propertyRentDepositMonths" validate:"omitempty,min=0"`

	// Location
	Latitude       *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude      *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	FullAddress    *string  `json:"fullAddress"`
	CompactAddress *string  `json:"compactAddress"`

	// Property details
	FloorNumber       *int `json:"floorNumber" validate:"omitempty,min=0"`
	TotalFloor        *int `json:"totalFloor" validate:"omitempty,min=1"`
	TotalWaterClosets *int `json:"totalWaterClosets" validate:"omitempty,min=0"`
	TotalBathrooms    *int `json:"totalBathrooms" validate:"omitempty,min=0"`
	TotalBedrooms     *int `json:"totalBedrooms" validate:"omitempty,min=0"`
	TotalSalons       *int `json:"totalSalons" validate:"omitempty,min=0"`
	TotalKitchens     *int `json:"totalKitchens" validate:"omitempty,min=0"`
	AreaSize          *int `json:"areaSize" validate:"omitempty,min=1"`
	BuildingSize      *int `json:"buildingSize" validate:"omitempty,min=1"`

	// Media
	YoutubeVideoURL *string `json:"youtubeVideoUrl" validate:"omitempty,url"`
	MatterPortURL   *string `json:"matterPortUrl" validate:"omitempty,url"`
	FloorPlanURL    *string `json:"floorPlanUrl" validate:"omitempty,url"`

	// Images
	CoverImageID    string   `json:"coverImageId" validate:"required,min=1"`
	GalleryImageIDs []string `json:"galleryImageIds"`

	// Visit days
	VisitDays []string `json:"visitDays" validate:"required,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`

	// Amenities
	AmenityIDs []string `json:"amenityIds" validate:"omitempty,dive,uuid"`
}

// BulkCreateRequest keeps `properties` raw so the handler can answer
// "properties must be an array" distinctly from malformed JSON.
type BulkCreateRequest struct {
	Properties json.RawMessage `json:"properties"`
}

type BulkItemError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

type BulkIngestResult struct {
	Success int             `json:"success"`
	Failed  int             `json:"failed"`
	Errors  []BulkItemError `json:"errors"`
}
