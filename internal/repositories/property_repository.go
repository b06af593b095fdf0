package repositories

import (
	"context"
	"encoding/json"

	"github.com/elbarryamine/atikia-plugin-server/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct{ db DB }

func NewPropertyRepository(db DB) PropertyRepository { return &propertyRepo{db: db} }

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) error {
	var gallery interface{}
	if p.GalleryImages != nil {
		b, err := json.Marshal(p.GalleryImages)
		if err != nil {
			return err
		}
		gallery = b
	}

	_, err := r.db.Exec(ctx, `
        INSERT INTO properties (
            id, owner_id, status,
            title, slug, description,
            type, transaction_type, property_style, property_usage,
            is_furnished, finishing_quality, sun_light_level, year_built,
            price, is_negotiable,
            property_rent_contract_months, property_rent_deposit_months,
            full_address, compact_address, google_address_id, latitude, longitude,
            floor_number, total_floor, total_water_closets, total_bathrooms,
            total_bedrooms, total_salons, total_kitchens, area_size, building_size,
            cover_filename, cover_file_url, cover_content_type, gallery_images,
            youtube_video_url, matter_port_url, floor_plan_url,
            visit_days,
            created_at, updated_at
        ) VALUES (
            $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,
            $11,$12,$13,$14,$15,$16,$17,$18,$19,$20,
            $21,$22,$23,$24,$25,$26,$27,$28,$29,$30,
            $31,$32,$33,$34,$35,$36,$37,$38,$39,
            $40::week_day_enum[], NOW(), NOW()
        )
    `,
		p.ID,
		p.OwnerID,
		p.Status,
		p.Title,
		p.Slug,
		p.Description,
		p.Type,
		p.TransactionType,
		p.PropertyStyle,
		p.PropertyUsage,
		p.IsFurnished,
		p.FinishingQuality,
		p.SunLightLevel,
		p.YearBuilt,
		p.Price,
		p.IsNegotiable,
		p.PropertyRentContractMonths,
		p.PropertyRentDepositMonths,
		p.FullAddress,
		p.CompactAddress,
		p.GoogleAddressID,
		p.Latitude,
		p.Longitude,
		p.FloorNumber,
		p.TotalFloor,
		p.TotalWaterClosets,
		p.TotalBathrooms,
		p.TotalBedrooms,
		p.TotalSalons,
		p.TotalKitchens,
		p.AreaSize,
		p.BuildingSize,
		p.CoverFilename,
		p.CoverFileURL,
		p.CoverContentType,
		gallery,
		p.YoutubeVideoURL,
		p.MatterPortURL,
		p.FloorPlanURL,
		p.VisitDays,
	)
	return err
}
