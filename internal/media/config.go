package media

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds the media host configuration. With no upload URL set the
// module runs in URL-passthrough-only mode.
type Config struct {
	// UploadURL is the unsigned upload endpoint, e.g.
	// https://api.cloudinary.com/v1_1/<cloud>/image/upload
	UploadURL     string        `env:"MEDIA_UPLOAD_URL"`
	UploadPreset  string        `env:"MEDIA_UPLOAD_PRESET"`
	UploadTimeout time.Duration `env:"MEDIA_UPLOAD_TIMEOUT" envDefault:"15s"`
}

// LoadConfig loads media configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load media configuration from environment: " + err.Error())
	}
	if cfg.UploadURL != "" && cfg.UploadPreset == "" {
		return nil, errors.New("media upload preset is required when an upload URL is set")
	}
	return cfg, nil
}
