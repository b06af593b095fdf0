package dtos

// TempFileUploadResult is the 200 body of POST /file/temp. FileID is the
// opaque reference the plugin hands back as coverImageId / galleryImageIds.
type TempFileUploadResult struct {
	Success  bool   `json:"success"`
	FileID   string `json:"fileId"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	MimeType string `json:"mimeType"`
	TempURL  string `json:"tempUrl"`
	Message  string `json:"message"`
}
