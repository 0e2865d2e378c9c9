package media

import (
	"context"
	"mime/multipart"
)

// Uploader stores a file on an external media host and returns the
// host-assigned URL.
type Uploader interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// Resolver turns a client-supplied URL or an uploaded file into one canonical
// stored image URL. No binary data is persisted locally.
type Resolver struct {
	uploader Uploader
}

// NewResolver creates a resolver. The uploader may be nil when no media host
// is configured; file uploads then fail with ErrUploadsNotConfigured while
// URL passthrough keeps working.
func NewResolver(uploader Uploader) *Resolver {
	return &Resolver{uploader: uploader}
}

// Resolve applies the attachment precedence: an uploaded file wins over a
// provided URL, a provided URL is used verbatim, and neither resolves to an
// empty string.
func (r *Resolver) Resolve(ctx context.Context, providedURL string, file *multipart.FileHeader) (string, error) {
	if file != nil {
		if r.uploader == nil {
			return "", ErrUploadsNotConfigured
		}
		return r.uploader.Upload(ctx, file)
	}
	if providedURL != "" {
		return providedURL, nil
	}
	return "", nil
}
