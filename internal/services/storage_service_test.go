package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elbarryamine/atikia-plugin-server/internal/constants"
)

func TestValidateUploadRejectsOversizeFile(t *testing.T) {
	svc := NewStorageService(newFakeBlob())

	err := svc.ValidateUpload(constants.MaxUploadFileSize+1, "image/jpeg")
	require.Error(t, err)
	require.Contains(t, err.Error(), "5MB")

	require.NoError(t, svc.ValidateUpload(constants.MaxUploadFileSize, "image/jpeg"))
}

func TestValidateUploadRejectsDisallowedType(t *testing.T) {
	svc := NewStorageService(newFakeBlob())

	err := svc.ValidateUpload(100, "application/pdf")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid file type")
	require.Contains(t, err.Error(), "image/jpeg")
}

func TestValidateUploadAllowsImageTypes(t *testing.T) {
	svc := NewStorageService(newFakeBlob())

	for _, mimeType := range []string{"image/jpeg", "image/jpg", "image/png"} {
		require.NoError(t, svc.ValidateUpload(100, mimeType))
	}
}

func TestUploadTempFileKeepsExtension(t *testing.T) {
	blob := newFakeBlob()
	svc := NewStorageService(blob)

	res, err := svc.UploadTempFile(context.Background(), "photo.png", 42, "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	require.True(t, res.Success)
	require.Regexp(t, regexp.MustCompile(`^[0-9a-f-]{36}\.png$`), res.FileID)
	require.Equal(t, "photo.png", res.FileName)
	require.Equal(t, int64(42), res.FileSize)
	require.Equal(t, "https://blob.test/"+constants.StorageTempPrefix+"/"+res.FileID, res.TempURL)

	require.Len(t, blob.uploads, 1)
	require.Equal(t, constants.StorageTempPrefix+"/"+res.FileID, blob.uploads[0])
	require.Equal(t, "image/png", blob.objects[blob.uploads[0]])
}

func TestMoveFileFromTempCopyThenDelete(t *testing.T) {
	blob := newFakeBlob()
	blob.seed(constants.StorageTempPrefix+"/abc.jpg", "image/jpeg")
	svc := NewStorageService(blob)

	url, err := svc.MoveFileFromTemp(context.Background(), "abc.jpg", constants.StoragePropertiesImagesPrefix, "property-1-cover.jpg")
	require.NoError(t, err)
	require.Equal(t, "https://blob.test/properties-images/property-1-cover.jpg", url)

	require.Contains(t, blob.objects, "properties-images/property-1-cover.jpg")
	require.NotContains(t, blob.objects, constants.StorageTempPrefix+"/abc.jpg")
}

func TestMoveFileFromTempMissingSource(t *testing.T) {
	svc := NewStorageService(newFakeBlob())

	_, err := svc.MoveFileFromTemp(context.Background(), "never-uploaded.jpg", constants.StoragePropertiesImagesPrefix, "out.jpg")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to move file from temp")
}

func TestMoveFileFromTempDeleteFailureKeepsPermanentCopy(t *testing.T) {
	blob := newFakeBlob()
	blob.seed(constants.StorageTempPrefix+"/abc.jpg", "image/jpeg")
	blob.deleteErr = errors.New("throttled")
	svc := NewStorageService(blob)

	_, err := svc.MoveFileFromTemp(context.Background(), "abc.jpg", constants.StoragePropertiesImagesPrefix, "out.jpg")
	require.Error(t, err)

	// the copy already landed; only the temp cleanup failed
	require.Contains(t, blob.objects, "properties-images/out.jpg")
}

func TestGetFileContentTypeFallsBackToJpeg(t *testing.T) {
	blob := newFakeBlob()
	blob.seed(constants.StorageTempPrefix+"/known.png", "image/png")
	svc := NewStorageService(blob)

	require.Equal(t, "image/png", svc.GetFileContentType(context.Background(), "known.png"))
	require.Equal(t, constants.DefaultImageContentType, svc.GetFileContentType(context.Background(), "missing.bin"))
}
