// FILE: compat/builder.go
package compat

import (
	"github.com/Falcom4000/logF"
)

// Builder assembles framework logger adapters around a single shared
// logf.Logger, mirroring the teacher's own compat.Builder: an application
// with one central logger wires it once, then builds as many framework
// adapters from it as it needs, instead of each adapter constructor
// duplicating logger construction.
type Builder struct {
	logger *logf.Logger
	cfg    *logf.Config
	err    error
}

// NewBuilder creates a new adapter builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger supplies an existing Logger for the adapters to share. If set,
// WithConfig is ignored.
func (b *Builder) WithLogger(l *logf.Logger) *Builder {
	if l == nil {
		b.err = fmtCompatErrorf("provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig supplies a Config to construct a new Logger from, used only
// when WithLogger was not called.
func (b *Builder) WithConfig(cfg *logf.Config) *Builder {
	b.cfg = cfg
	return b
}

// getLogger resolves the shared logger, constructing and starting one from
// cfg (or the package defaults) on first use.
func (b *Builder) getLogger() (*logf.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.logger != nil {
		return b.logger, nil
	}

	cfg := b.cfg
	if cfg == nil {
		cfg = logf.DefaultConfig()
	}

	l, err := logf.New(*cfg)
	if err != nil {
		return nil, err
	}
	l.Start()

	b.logger = l
	return l, nil
}

// BuildGnet resolves the shared logger and wraps it for gnet.
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetLogger, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetLogger(l, opts...), nil
}

// BuildFastHTTP resolves the shared logger and wraps it for fasthttp.
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPLogger, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPLogger(l, opts...), nil
}

// BuildFiber resolves the shared logger and wraps it for Fiber.
func (b *Builder) BuildFiber(opts ...FiberOption) (*FiberLogger, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFiberLogger(l, opts...), nil
}

// GetLogger returns the underlying shared Logger, constructing it from the
// WithConfig value (or the defaults) first if neither WithLogger nor a prior
// Build* call has done so.
func (b *Builder) GetLogger() (*logf.Logger, error) {
	return b.getLogger()
}

func fmtCompatErrorf(msg string) error {
	return &compatError{msg: "logf/compat: " + msg}
}

type compatError struct{ msg string }

func (e *compatError) Error() string { return e.msg }
