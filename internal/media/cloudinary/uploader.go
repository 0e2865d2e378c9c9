package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"travel-journal/internal/media"

	"github.com/google/uuid"
)

// Uploader pushes files to a Cloudinary-style unsigned upload endpoint and
// returns the host-assigned URL.
type Uploader struct {
	uploadURL    string
	uploadPreset string
	client       *http.Client
}

// uploadResponse is the subset of the host's JSON response we consume.
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

// NewUploader creates an uploader for the configured media host.
func NewUploader(cfg *media.Config) *Uploader {
	return &Uploader{
		uploadURL:    cfg.UploadURL,
		uploadPreset: cfg.UploadPreset,
		client:       &http.Client{Timeout: cfg.UploadTimeout},
	}
}

// Upload sends the file as a multipart POST and returns the stored URL.
func (u *Uploader) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", file.Filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if err := writer.WriteField("upload_preset", u.uploadPreset); err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	// Client-chosen public ID keeps re-uploads from colliding on filename.
	if err := writer.WriteField("public_id", uuid.NewString()); err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("media host upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d", media.ErrUploadFailed, resp.StatusCode)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode media host response: %w", err)
	}

	if parsed.SecureURL != "" {
		return parsed.SecureURL, nil
	}
	if parsed.URL != "" {
		return parsed.URL, nil
	}
	return "", fmt.Errorf("%w: response carried no URL", media.ErrUploadFailed)
}

var _ media.Uploader = (*Uploader)(nil)
