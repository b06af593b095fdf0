package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/elbarryamine/atikia-plugin-server/internal/constants"
	"github.com/elbarryamine/atikia-plugin-server/internal/dtos"
	"github.com/elbarryamine/atikia-plugin-server/internal/storage"
	"github.com/elbarryamine/atikia-plugin-server/internal/utils"
)

/*
StorageService stages uploads in the temp prefix and migrates them to the
permanent prefix. Migration is copy-then-delete: a failed copy aborts with
nothing to clean up; a failed delete after a successful copy surfaces the
error while the permanent object survives (duplicate storage accepted, no
reconciliation).
*/
type StorageService struct {
	blob storage.Client
}

func NewStorageService(blob storage.Client) *StorageService {
	return &StorageService{blob: blob}
}

// ValidateUpload enforces POST /file/temp limits before anything is
// written to storage.
func (s *StorageService) ValidateUpload(size int64, mimeType string) error {
	if size > constants.MaxUploadFileSize {
		return fmt.Errorf("File size exceeds maximum allowed size of %dMB", constants.MaxUploadFileSize/1024/1024)
	}
	for _, allowed := range constants.AllowedUploadMimeTypes {
		if mimeType == allowed {
			return nil
		}
	}
	return fmt.Errorf("Invalid file type. Allowed types: %s", strings.Join(constants.AllowedUploadMimeTypes, ", "))
}

// UploadTempFile stores the file under the temp prefix as <uuid>.<ext>,
// keeping the original extension.
func (s *StorageService) UploadTempFile(ctx context.Context, originalName string, size int64, mimeType string, data io.Reader) (*dtos.TempFileUploadResult, error) {
	ext := strings.TrimPrefix(path.Ext(originalName), ".")
	fileID := uuid.New().String()
	if ext != "" {
		fileID += "." + ext
	}

	contentType := mimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	tempURL, err := s.blob.Upload(ctx, tempKey(fileID), data, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload temp file: %w", err)
	}

	utils.Logger.Infof("Staged upload %s (%d bytes, %s)", fileID, size, contentType)

	return &dtos.TempFileUploadResult{
		Success:  true,
		FileID:   fileID,
		FileName: originalName,
		FileSize: size,
		MimeType: mimeType,
		TempURL:  tempURL,
		Message:  "File uploaded to temporary storage successfully",
	}, nil
}

// MoveFileFromTemp relocates a staged blob into the destination prefix
// under destFileName and returns the permanent URL.
func (s *StorageService) MoveFileFromTemp(ctx context.Context, tempFileID, destPrefix, destFileName string) (string, error) {
	if destFileName == "" {
		destFileName = tempFileID
	}

	url, err := s.blob.Copy(ctx, tempKey(tempFileID), destPrefix+"/"+destFileName)
	if err != nil {
		return "", fmt.Errorf("failed to move file from temp: %w", err)
	}
	if err := s.blob.Delete(ctx, tempKey(tempFileID)); err != nil {
		return "", fmt.Errorf("failed to move file from temp: %w", err)
	}
	return url, nil
}

// GetFileContentType reads a staged blob's content type, defaulting to
// jpeg when it cannot be read back.
func (s *StorageService) GetFileContentType(ctx context.Context, tempFileID string) string {
	ct, err := s.blob.ContentType(ctx, tempKey(tempFileID))
	if err != nil || ct == "" {
		return constants.DefaultImageContentType
	}
	return ct
}

func tempKey(fileID string) string {
	return constants.StorageTempPrefix + "/" + fileID
}
