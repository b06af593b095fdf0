package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/elbarryamine/atikia-plugin-server/internal/constants"
	"github.com/elbarryamine/atikia-plugin-server/internal/dtos"
	"github.com/elbarryamine/atikia-plugin-server/internal/models"
	"github.com/elbarryamine/atikia-plugin-server/internal/repositories"
	"github.com/elbarryamine/atikia-plugin-server/internal/utils"
	"github.com/elbarryamine/atikia-plugin-server/internal/validation"
)

/*
PropertyIngestService runs the bulk ingestion pipeline: validate →
resolve address → migrate media → insert, strictly sequentially, with
per-item error isolation. One bad record never blocks the rest of the
batch.
*/
type PropertyIngestService struct {
	propRepo repositories.PropertyRepository
	addrRepo repositories.GoogleAddressRepository
	storage  *StorageService
}

func NewPropertyIngestService(
	propRepo repositories.PropertyRepository,
	addrRepo repositories.GoogleAddressRepository,
	storage *StorageService,
) *PropertyIngestService {
	return &PropertyIngestService{
		propRepo: propRepo,
		addrRepo: addrRepo,
		storage:  storage,
	}
}

// IngestBulk processes every submission and aggregates the outcome. Each
// element is decoded inside the loop so a malformed item is recorded
// against its batch index like any other failure; the method itself
// never fails.
func (s *PropertyIngestService) IngestBulk(ctx context.Context, ownerID uuid.UUID, items []json.RawMessage) *dtos.BulkIngestResult {
	res := &dtos.BulkIngestResult{Errors: []dtos.BulkItemError{}}

	for i := range items {
		if err := s.ingestOne(ctx, ownerID, items[i]); err != nil {
			utils.Logger.WithError(err).Warnf("Bulk ingestion: item %d failed", i)
			res.Failed++
			res.Errors = append(res.Errors, dtos.BulkItemError{Index: i, Error: err.Error()})
			continue
		}
		res.Success++
	}

	utils.Logger.Infof("Bulk ingestion: %d succeeded, %d failed", res.Success, res.Failed)
	return res
}

func (s *PropertyIngestService) ingestOne(ctx context.Context, ownerID uuid.UUID, item json.RawMessage) error {
	var sub dtos.PropertySubmission
	if err := json.Unmarshal(item, &sub); err != nil {
		return fmt.Errorf("invalid property payload: %v", err)
	}

	norm, ferrs := validation.ValidateCreateProperty(&sub)
	if len(ferrs) > 0 {
		return ferrs
	}

	addressID, err := s.resolveAddress(ctx, norm)
	if err != nil {
		return err
	}

	now := time.Now()

	coverContentType := s.storage.GetFileContentType(ctx, norm.CoverImageID)
	coverFilename := fmt.Sprintf("property-%d-cover.jpg", now.UnixMilli())
	coverURL, err := s.storage.MoveFileFromTemp(ctx, norm.CoverImageID, constants.StoragePropertiesImagesPrefix, coverFilename)
	if err != nil {
		return err
	}

	var gallery []models.GalleryImage
	for n, galleryID := range norm.GalleryImageIDs {
		contentType := s.storage.GetFileContentType(ctx, galleryID)
		filename := fmt.Sprintf("property-%d-gallery-%d.jpg", now.UnixMilli(), n)
		url, err := s.storage.MoveFileFromTemp(ctx, galleryID, constants.StoragePropertiesImagesPrefix, filename)
		if err != nil {
			return err
		}
		gallery = append(gallery, models.GalleryImage{
			Filename:    filename,
			URL:         url,
			ContentType: contentType,
		})
	}

	latStr := utils.FormatCoordinate(norm.Latitude)
	lngStr := utils.FormatCoordinate(norm.Longitude)
	fullAddress := latStr + ", " + lngStr
	if norm.FullAddress != nil && *norm.FullAddress != "" {
		fullAddress = *norm.FullAddress
	}
	compactAddress := fullAddress
	if norm.CompactAddress != nil && *norm.CompactAddress != "" {
		compactAddress = *norm.CompactAddress
	}

	var slug *string
	if norm.Title != nil && *norm.Title != "" {
		slug = utils.Ptr(fmt.Sprintf("%s-%d", utils.Slugify(*norm.Title), now.UnixMilli()))
	}

	p := &models.Property{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Status:  models.PublishStatusUnderReview,

		Title:       norm.Title,
		Slug:        slug,
		Description: norm.Description,

		Type:             norm.Type,
		TransactionType:  norm.TransactionType,
		PropertyStyle:    norm.PropertyStyle,
		PropertyUsage:    norm.PropertyUsage,
		IsFurnished:      norm.IsFurnished,
		FinishingQuality: norm.FinishingQuality,
		SunLightLevel:    norm.SunLightLevel,
		YearBuilt:        norm.YearBuilt,

		Price:        norm.Price,
		IsNegotiable: norm.IsNegotiable,

		PropertyRentContractMonths: norm.PropertyRentContractMonths,
		PropertyRentDepositMonths:  norm.PropertyRentDepositMonths,

		FullAddress:     fullAddress,
		CompactAddress:  compactAddress,
		GoogleAddressID: addressID,
		Latitude:        norm.Latitude,
		Longitude:       norm.Longitude,

		FloorNumber:       norm.FloorNumber,
		TotalFloor:        norm.TotalFloor,
		TotalWaterClosets: norm.TotalWaterClosets,
		TotalBathrooms:    norm.TotalBathrooms,
		TotalBedrooms:     norm.TotalBedrooms,
		TotalSalons:       norm.TotalSalons,
		TotalKitchens:     norm.TotalKitchens,
		AreaSize:          norm.AreaSize,
		BuildingSize:      norm.BuildingSize,

		CoverFilename:    utils.Ptr(coverFilename),
		CoverFileURL:     utils.Ptr(coverURL),
		CoverContentType: utils.Ptr(coverContentType),
		GalleryImages:    gallery,
		YoutubeVideoURL:  norm.YoutubeVideoURL,
		MatterPortURL:    norm.MatterPortURL,
		FloorPlanURL:     norm.FloorPlanURL,

		VisitDays: norm.VisitDays,
	}

	return s.propRepo.Create(ctx, p)
}

/*
resolveAddress finds or creates the canonical address row for the
submission's coordinate pair. Lookup is by exact decimal-string match,
not spatial proximity: formatting differences create distinct rows, and
two concurrent requests can race to create duplicates. Both are accepted
behavior.
*/
func (s *PropertyIngestService) resolveAddress(ctx context.Context, norm *validation.NormalizedProperty) (uuid.UUID, error) {
	latStr := utils.FormatCoordinate(norm.Latitude)
	lngStr := utils.FormatCoordinate(norm.Longitude)

	existing, err := s.addrRepo.FindByCoordinates(ctx, latStr, lngStr)
	if err != nil {
		return uuid.Nil, err
	}
	if existing != nil {
		return existing.ID, nil
	}

	defaultAddress := latStr + ", " + lngStr
	if norm.FullAddress != nil && *norm.FullAddress != "" {
		defaultAddress = *norm.FullAddress
	}

	addr := &models.GoogleAddress{
		ID:        uuid.New(),
		Latitude:  latStr,
		Longitude: lngStr,
		AddressJSON: models.GeocodingResult{
			Address:          defaultAddress,
			FormattedAddress: defaultAddress,
			PlaceID:          "",
			Latitude:         norm.Latitude,
			Longitude:        norm.Longitude,
			Components:       map[string]string{},
		},
	}
	if err := s.addrRepo.Create(ctx, addr); err != nil {
		return uuid.Nil, err
	}
	return addr.ID, nil
}
