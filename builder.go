// FILE: builder.go
package logf

// Builder provides a fluent API for constructing a Logger, mirroring the
// chainable-options style used elsewhere in this ecosystem. It wraps a
// Config and defers any invalid value to Build, so a chain can be written
// without checking an error after every call.
type Builder struct {
	cfg *Config
	err error
}

// NewBuilder creates a configuration builder seeded with the default Config.
func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

// Capacity sets the ring's record capacity. Must be a power of two; an
// invalid value is deferred to Build.
func (b *Builder) Capacity(capacity int64) *Builder {
	b.cfg.Capacity = capacity
	return b
}

// Directory sets the log output directory.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// FileSizeBytes sets the target size of each rotated log file.
func (b *Builder) FileSizeBytes(size int64) *Builder {
	b.cfg.FileSizeBytes = size
	return b
}

// MinLevel sets the threshold below which calls are no-ops.
func (b *Builder) MinLevel(level int64) *Builder {
	b.cfg.MinLevel = level
	return b
}

// StagingBufferSize sets the staging buffer's capacity.
func (b *Builder) StagingBufferSize(size int64) *Builder {
	b.cfg.StagingBufferSize = size
	return b
}

// StagingHeadroom sets the pre-flush headroom check.
func (b *Builder) StagingHeadroom(size int64) *Builder {
	b.cfg.StagingHeadroom = size
	return b
}

// Build validates the accumulated configuration and constructs a Logger.
// The returned Logger has not been started; call Start to begin draining.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	return New(*b.cfg)
}
