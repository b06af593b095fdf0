package constants

// Storage key prefixes. The staging and permanent "containers" live in one
// bucket, scoped by prefix.
const (
	StorageTempPrefix             = "temp"
	StoragePropertiesImagesPrefix = "properties-images"
)

// File validation for POST /file/temp.
const MaxUploadFileSize = 5 * 1024 * 1024 // 5MB in bytes

var AllowedUploadMimeTypes = []string{"image/jpeg", "image/jpg", "image/png"}

// DefaultImageContentType is assumed when a staged blob's content type
// cannot be read back.
const DefaultImageContentType = "image/jpeg"
