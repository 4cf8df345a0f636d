// FILE: config_test.go
package logf

import (
	"testing"

	"github.com/lixenwraith/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	valid := func() Config { return *DefaultConfig() }

	t.Run("default config is valid", func(t *testing.T) {
		cfg := valid()
		assert.NoError(t, cfg.validate())
	})

	t.Run("rejects non-power-of-two capacity", func(t *testing.T) {
		cfg := valid()
		cfg.Capacity = 100
		assert.Error(t, cfg.validate())
	})

	t.Run("rejects empty directory", func(t *testing.T) {
		cfg := valid()
		cfg.Directory = "  "
		assert.Error(t, cfg.validate())
	})

	t.Run("rejects non-positive file size", func(t *testing.T) {
		cfg := valid()
		cfg.FileSizeBytes = 0
		assert.Error(t, cfg.validate())
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		cfg := valid()
		cfg.MinLevel = 99
		assert.Error(t, cfg.validate())
	})

	t.Run("rejects headroom not smaller than buffer", func(t *testing.T) {
		cfg := valid()
		cfg.StagingHeadroom = cfg.StagingBufferSize
		assert.Error(t, cfg.validate())
	})
}

func TestConfigCloneIsIndependent(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.Directory = "/somewhere/else"
	assert.NotEqual(t, cfg.Directory, clone.Directory)
}

// TestNewFromRegistryWithNoFileYieldsDefaults exercises the third
// construction path (SPEC_FULL.md §6, property 14): an empty registry with
// nothing loaded from a file must produce the same defaults the Builder
// path falls back to, since both paths share one validation function.
func TestNewFromRegistryWithNoFileYieldsDefaults(t *testing.T) {
	loader := config.New()

	logger, err := NewFromRegistry(loader, "logging")
	require.NoError(t, err)
	assert.Equal(t, int64(defaultCapacity), logger.cfg.Capacity)
	assert.Equal(t, defaultDirectory, logger.cfg.Directory)
	assert.Equal(t, int64(defaultFileSizeBytes), logger.cfg.FileSizeBytes)
	assert.Equal(t, int64(defaultMinLevel), logger.cfg.MinLevel)
}
