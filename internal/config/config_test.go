package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, "generated_scripts", GetOutputDir())
	assert.Equal(t, "selenium", GetDefaultFramework())
	assert.Equal(t, 10*time.Second, GetBrowserTimeout())
	assert.False(t, GetBrowserHeadless())

	w, h := GetBrowserViewport()
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)
}

func TestEnvOverrides(t *testing.T) {
	// Viper resolves bound env vars at read time.
	t.Setenv("WEBSCRIBE_FRAMEWORK", "playwright")
	t.Setenv("WEBSCRIBE_OUTPUT_DIR", "out")
	t.Setenv("WEBSCRIBE_PROVIDER", "claude")

	assert.Equal(t, "playwright", GetDefaultFramework())
	assert.Equal(t, "out", GetOutputDir())
	assert.Equal(t, "claude", GetProviderName())
}
