package media

import "errors"

var (
	// ErrUploadsNotConfigured is returned when a file upload arrives but no
	// media host endpoint is configured.
	ErrUploadsNotConfigured = errors.New("media uploads are not configured")

	// ErrUploadFailed is returned when the media host rejects an upload.
	ErrUploadFailed = errors.New("media host rejected the upload")
)
