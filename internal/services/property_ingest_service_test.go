package services

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/elbarryamine/atikia-plugin-server/internal/constants"
	"github.com/elbarryamine/atikia-plugin-server/internal/dtos"
	"github.com/elbarryamine/atikia-plugin-server/internal/models"
	"github.com/elbarryamine/atikia-plugin-server/internal/utils"
)

type ingestFixture struct {
	svc      *PropertyIngestService
	blob     *fakeBlob
	propRepo *fakePropertyRepo
	addrRepo *fakeAddressRepo
}

func newIngestFixture() *ingestFixture {
	blob := newFakeBlob()
	propRepo := &fakePropertyRepo{}
	addrRepo := newFakeAddressRepo()
	return &ingestFixture{
		svc:      NewPropertyIngestService(propRepo, addrRepo, NewStorageService(blob)),
		blob:     blob,
		propRepo: propRepo,
		addrRepo: addrRepo,
	}
}

func rawItems(t *testing.T, subs ...dtos.PropertySubmission) []json.RawMessage {
	t.Helper()
	items := make([]json.RawMessage, len(subs))
	for i, sub := range subs {
		b, err := json.Marshal(sub)
		require.NoError(t, err)
		items[i] = b
	}
	return items
}

// submission returns a valid apartment payload pointing at cover/gallery
// blobs that the fixture has staged in the temp prefix.
func (f *ingestFixture) submission(coverID string, galleryIDs ...string) dtos.PropertySubmission {
	f.blob.seed(constants.StorageTempPrefix+"/"+coverID, "image/png")
	for _, id := range galleryIDs {
		f.blob.seed(constants.StorageTempPrefix+"/"+id, "image/jpeg")
	}
	return dtos.PropertySubmission{
		Title:            utils.Ptr("Sunny Apartment in Gueliz"),
		Description:      "Bright two-bedroom apartment close to the park",
		Type:             "apartment",
		TransactionType:  "for_sale",
		PropertyStyle:    "modern",
		PropertyUsage:    "residential",
		IsFurnished:      utils.Ptr(true),
		FinishingQuality: "high",
		SunLightLevel:    "medium",
		YearBuilt:        2015,
		Price:            950000,
		Latitude:         utils.Ptr(31.6295),
		Longitude:        utils.Ptr(-7.9811),
		FloorNumber:      utils.Ptr(3),
		TotalBedrooms:    utils.Ptr(2),
		TotalBathrooms:   utils.Ptr(1),
		TotalSalons:      utils.Ptr(1),
		TotalKitchens:    utils.Ptr(1),
		BuildingSize:     utils.Ptr(110),
		CoverImageID:     coverID,
		GalleryImageIDs:  galleryIDs,
		VisitDays:        []string{"saturday", "sunday"},
	}
}

func TestIngestBulkContinuesPastInvalidItem(t *testing.T) {
	f := newIngestFixture()
	ownerID := uuid.New()

	good1 := f.submission("cover-a.png")
	bad := f.submission("cover-b.png")
	bad.Price = 0
	good2 := f.submission("cover-c.png")

	res := f.svc.IngestBulk(context.Background(), ownerID, rawItems(t, good1, bad, good2))

	require.Equal(t, 2, res.Success)
	require.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)
	require.Equal(t, 1, res.Errors[0].Index)
	require.Contains(t, res.Errors[0].Error, "price")
	require.Len(t, f.propRepo.created, 2)
}

func TestIngestBulkIsolatesUndecodableItem(t *testing.T) {
	f := newIngestFixture()

	good := rawItems(t, f.submission("cover-a.png"), f.submission("cover-b.png"))
	bad := json.RawMessage(`{"description": "long enough description", "price": "ten"}`)
	items := []json.RawMessage{good[0], bad, good[1]}

	res := f.svc.IngestBulk(context.Background(), uuid.New(), items)

	require.Equal(t, 2, res.Success)
	require.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)
	require.Equal(t, 1, res.Errors[0].Index)
	require.Contains(t, res.Errors[0].Error, "invalid property payload")
	require.Len(t, f.propRepo.created, 2)
}

func TestIngestBulkEmptyBatch(t *testing.T) {
	f := newIngestFixture()

	res := f.svc.IngestBulk(context.Background(), uuid.New(), nil)

	require.Equal(t, 0, res.Success)
	require.Equal(t, 0, res.Failed)
	require.NotNil(t, res.Errors)
	require.Empty(t, res.Errors)
}

func TestIngestResolvesAddressOnce(t *testing.T) {
	f := newIngestFixture()

	items := rawItems(t, f.submission("cover-a.png"), f.submission("cover-b.png"))
	res := f.svc.IngestBulk(context.Background(), uuid.New(), items)

	require.Equal(t, 2, res.Success)
	require.Equal(t, 1, f.addrRepo.createCalls)
	require.Len(t, f.propRepo.created, 2)
	require.Equal(t, f.propRepo.created[0].GoogleAddressID, f.propRepo.created[1].GoogleAddressID)

	// lookup key is the exact decimal string of the coordinates
	require.Contains(t, f.addrRepo.rows, "31.6295|-7.9811")
}

func TestIngestMigratesCoverImage(t *testing.T) {
	f := newIngestFixture()

	res := f.svc.IngestBulk(context.Background(), uuid.New(), rawItems(t, f.submission("cover-a.png")))
	require.Equal(t, 1, res.Success)

	require.Len(t, f.blob.copies, 1)
	require.Equal(t, constants.StorageTempPrefix+"/cover-a.png", f.blob.copies[0][0])
	require.Regexp(t, regexp.MustCompile(`^properties-images/property-\d+-cover\.jpg$`), f.blob.copies[0][1])
	require.Equal(t, []string{constants.StorageTempPrefix + "/cover-a.png"}, f.blob.deletes)

	p := f.propRepo.created[0]
	require.NotNil(t, p.CoverFileURL)
	require.True(t, strings.HasPrefix(*p.CoverFileURL, "https://blob.test/properties-images/property-"))
	require.NotNil(t, p.CoverContentType)
	require.Equal(t, "image/png", *p.CoverContentType)
}

func TestIngestMigratesGalleryInOrder(t *testing.T) {
	f := newIngestFixture()

	sub := f.submission("cover-a.png", "gal-0.jpg", "gal-1.jpg")
	res := f.svc.IngestBulk(context.Background(), uuid.New(), rawItems(t, sub))
	require.Equal(t, 1, res.Success)

	p := f.propRepo.created[0]
	require.Len(t, p.GalleryImages, 2)
	require.Regexp(t, regexp.MustCompile(`^property-\d+-gallery-0\.jpg$`), p.GalleryImages[0].Filename)
	require.Regexp(t, regexp.MustCompile(`^property-\d+-gallery-1\.jpg$`), p.GalleryImages[1].Filename)
	require.Equal(t, "image/jpeg", p.GalleryImages[0].ContentType)

	// cover plus both gallery blobs left the temp prefix
	require.Len(t, f.blob.deletes, 3)
	require.Empty(t, keysWithPrefix(f.blob.remainingKeys(), constants.StorageTempPrefix+"/"))
}

func TestIngestCoverMigrationFailureFailsItem(t *testing.T) {
	f := newIngestFixture()
	sub := f.submission("cover-a.png")
	f.blob.copyErr = errors.New("backend unavailable")

	res := f.svc.IngestBulk(context.Background(), uuid.New(), rawItems(t, sub))

	require.Equal(t, 0, res.Success)
	require.Equal(t, 1, res.Failed)
	require.Contains(t, res.Errors[0].Error, "failed to move file from temp")
	require.Empty(t, f.propRepo.created)
}

func TestIngestSetsOwnerStatusAndSlug(t *testing.T) {
	f := newIngestFixture()
	ownerID := uuid.New()

	res := f.svc.IngestBulk(context.Background(), ownerID, rawItems(t, f.submission("cover-a.png")))
	require.Equal(t, 1, res.Success)

	p := f.propRepo.created[0]
	require.Equal(t, ownerID, p.OwnerID)
	require.Equal(t, models.PublishStatusUnderReview, p.Status)
	require.NotNil(t, p.Slug)
	require.Regexp(t, regexp.MustCompile(`^sunny-apartment-in-gueliz-\d+$`), *p.Slug)
}

func TestIngestUntitledSubmissionHasNoSlug(t *testing.T) {
	f := newIngestFixture()
	sub := f.submission("cover-a.png")
	sub.Title = nil

	res := f.svc.IngestBulk(context.Background(), uuid.New(), rawItems(t, sub))
	require.Equal(t, 1, res.Success)
	require.Nil(t, f.propRepo.created[0].Slug)
}

func TestIngestCoordinateFallbackAddress(t *testing.T) {
	f := newIngestFixture()
	sub := f.submission("cover-a.png")
	sub.FullAddress = nil
	sub.CompactAddress = nil

	res := f.svc.IngestBulk(context.Background(), uuid.New(), rawItems(t, sub))
	require.Equal(t, 1, res.Success)

	p := f.propRepo.created[0]
	require.Equal(t, "31.6295, -7.9811", p.FullAddress)
	require.Equal(t, "31.6295, -7.9811", p.CompactAddress)
}

func TestIngestInsertFailureReported(t *testing.T) {
	f := newIngestFixture()
	f.propRepo.createErr = errors.New("connection reset")

	res := f.svc.IngestBulk(context.Background(), uuid.New(), rawItems(t, f.submission("cover-a.png")))

	require.Equal(t, 0, res.Success)
	require.Equal(t, 1, res.Failed)
	require.Contains(t, res.Errors[0].Error, "connection reset")
}
