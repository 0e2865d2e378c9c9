package media_test

import (
	"testing"
	"time"

	"travel-journal/internal/media"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_PassthroughOnlyByDefault(t *testing.T) {
	cfg, err := media.LoadConfig()
	require.NoError(t, err)

	assert.Empty(t, cfg.UploadURL)
	assert.Equal(t, 15*time.Second, cfg.UploadTimeout)
}

func TestLoadConfig_UploadHost(t *testing.T) {
	t.Setenv("MEDIA_UPLOAD_URL", "https://api.cloudinary.com/v1_1/demo/image/upload")
	t.Setenv("MEDIA_UPLOAD_PRESET", "journal")

	cfg, err := media.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "journal", cfg.UploadPreset)
}

func TestLoadConfig_PresetRequiredWithURL(t *testing.T) {
	t.Setenv("MEDIA_UPLOAD_URL", "https://api.cloudinary.com/v1_1/demo/image/upload")
	t.Setenv("MEDIA_UPLOAD_PRESET", "")

	_, err := media.LoadConfig()
	assert.Error(t, err)
}
