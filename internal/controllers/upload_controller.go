package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"

	"github.com/elbarryamine/atikia-plugin-server/internal/constants"
	"github.com/elbarryamine/atikia-plugin-server/internal/services"
	"github.com/elbarryamine/atikia-plugin-server/internal/utils"
)

type UploadController struct {
	storageService *services.StorageService
}

func NewUploadController(storageService *services.StorageService) *UploadController {
	return &UploadController{storageService: storageService}
}

// ----------------------------------------------------------------
// POST /file/temp  (multipart form, field "file")
// ----------------------------------------------------------------
func (c *UploadController) UploadTempHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Cap the whole request a little above the file limit so multipart
	// overhead doesn't reject a file that is exactly at the cap.
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxUploadFileSize+64*1024)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respondUploadError(w, sizeLimitMessage(), err)
			return
		}
		respondUploadError(w, "No file provided", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respondUploadError(w, sizeLimitMessage(), err)
			return
		}
		respondUploadError(w, "Failed to read file", err)
		return
	}

	// Prefer the declared content type; sniff the bytes when the client
	// didn't declare a usable one.
	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mimetype.Detect(data).String()
	}

	if err := c.storageService.ValidateUpload(int64(len(data)), contentType); err != nil {
		respondUploadError(w, err.Error(), nil)
		return
	}

	result, err := c.storageService.UploadTempFile(ctx, header.Filename, int64(len(data)), contentType, bytes.NewReader(data))
	if err != nil {
		respondUploadError(w, err.Error(), err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}

func sizeLimitMessage() string {
	return fmt.Sprintf("File size exceeds maximum allowed size of %dMB", constants.MaxUploadFileSize/1024/1024)
}

// respondUploadError mirrors the upload endpoint's error contract:
// 400 with `{ error, success: false }`.
func respondUploadError(w http.ResponseWriter, message string, devErr error) {
	if devErr != nil {
		utils.Logger.WithError(devErr).Error(message)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(utils.ErrorResponse{Error: message, Success: utils.Ptr(false)})
}
