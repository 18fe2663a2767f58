package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/status-im/katana-prices/config"
)

func TestNew_Levels(t *testing.T) {
	cfg := config.DefaultLoggingConfig()
	cfg.Level = "warn"

	logger, err := New(cfg)
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(-1)) // debug
	assert.False(t, logger.Core().Enabled(0))  // info
	assert.True(t, logger.Core().Enabled(1))   // warn
}

func TestNew_InvalidLevel(t *testing.T) {
	cfg := config.DefaultLoggingConfig()
	cfg.Level = "loud"

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNew_WritesRotatedFile(t *testing.T) {
	cfg := config.DefaultLoggingConfig()
	cfg.File = filepath.Join(t.TempDir(), "prices.log")

	logger, err := New(cfg)
	require.NoError(t, err)

	logger.Info("hello file")
	_ = logger.Sync()

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}
