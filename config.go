// FILE: config.go
package logf

import (
	"errors"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"
)

// Config holds the construction-time options for a Logger. It is captured
// once at New/Start and never mutated afterward — this core has no runtime
// reconfiguration.
type Config struct {
	Capacity         int64 `toml:"capacity"`           // ring capacity, records; must be a power of two
	Directory        string `toml:"directory"`         // log output directory
	FileSizeBytes    int64 `toml:"file_size_bytes"`    // target per-file size
	MinLevel         int64 `toml:"min_level"`          // calls below this level are no-ops
	StagingBufferSize int64 `toml:"staging_buffer_size"` // staging char buffer capacity
	StagingHeadroom   int64 `toml:"staging_headroom"`    // pre-flush headroom check
}

// defaultConfig is the single source for all configurable default values.
var defaultConfig = Config{
	Capacity:          defaultCapacity,
	Directory:         defaultDirectory,
	FileSizeBytes:     defaultFileSizeBytes,
	MinLevel:          defaultMinLevel,
	StagingBufferSize: defaultStagingBufferSize,
	StagingHeadroom:   defaultStagingHeadroom,
}

// DefaultConfig returns a copy of the default configuration.
func DefaultConfig() *Config {
	copied := defaultConfig
	return &copied
}

// NewFromRegistry loads construction options from a config.Config instance
// registered under basePath, falling back to defaults for any key the file
// does not set. This mirrors the teacher's Init(cfg, basePath) registration
// pattern: the caller owns loading the TOML file into cfg beforehand.
func NewFromRegistry(cfg *config.Config, basePath string) (*Logger, error) {
	loaded := DefaultConfig()

	prefix := basePath
	if prefix != "" && !strings.HasSuffix(prefix, ".") {
		prefix += "."
	}

	if err := extractConfig(cfg, prefix, loaded); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("extract config values: %w", err)
	}

	if err := loaded.validate(); err != nil {
		return nil, err
	}

	return New(*loaded)
}

// extractConfig copies matching keys out of a lixenwraith/config registry
// into cfg, leaving fields the registry does not have at their defaults.
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmtErrorf("set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with the type conversion lixenwraith/config
// hands back (int64/float64/string/bool depending on TOML literal kind).
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmtErrorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmtErrorf("expected int64, got %T", value)
		}

	default:
		return fmtErrorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// validate performs construction-time validation. A failure here is the
// only fatal error this library raises to its caller; everything past this
// point is either infallible or self-recovering.
func (c *Config) validate() error {
	if c.Capacity <= 0 || c.Capacity&(c.Capacity-1) != 0 {
		return fmtErrorf("capacity must be a power of two and non-zero, got %d", c.Capacity)
	}

	if strings.TrimSpace(c.Directory) == "" {
		return fmtErrorf("directory cannot be empty")
	}

	if c.FileSizeBytes <= 0 {
		return fmtErrorf("file_size_bytes must be positive: %d", c.FileSizeBytes)
	}

	if c.MinLevel != LevelInfo && c.MinLevel != LevelWarning && c.MinLevel != LevelError {
		return fmtErrorf("min_level must be one of Info/Warning/Error, got %d", c.MinLevel)
	}

	if c.StagingBufferSize <= 0 {
		return fmtErrorf("staging_buffer_size must be positive: %d", c.StagingBufferSize)
	}

	if c.StagingHeadroom <= 0 || c.StagingHeadroom >= c.StagingBufferSize {
		return fmtErrorf("staging_headroom must be positive and smaller than staging_buffer_size")
	}

	return nil
}

// Clone creates a deep copy of the configuration (the struct has no
// pointer/slice fields, so a value copy already suffices; Clone is kept to
// match the teacher's explicit-copy convention used elsewhere in this
// codebase).
func (c *Config) Clone() *Config {
	copied := *c
	return &copied
}