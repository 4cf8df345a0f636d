// FILE: compat/gnet.go
package compat

import (
	"fmt"
	"os"

	"github.com/Falcom4000/logF"
	"github.com/Falcom4000/logF/sanitizer"
)

// GnetLogger wraps a logf.Logger to implement gnet's logging.Logger
// interface. gnet has no Warning/Error split narrower than this core
// provides, so Debugf collapses onto Info (this core has no debug tier) and
// Fatalf logs at Error before invoking the fatal handler.
type GnetLogger struct {
	logger       *logf.Logger
	fatalHandler func(msg string)
	sanitizer    *sanitizer.Sanitizer
}

// NewGnetLogger creates a gnet-compatible logger adapter.
func NewGnetLogger(logger *logf.Logger, opts ...GnetOption) *GnetLogger {
	a := &GnetLogger{
		logger: logger,
		fatalHandler: func(string) {
			os.Exit(1)
		},
		sanitizer: sanitizer.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// GnetOption customizes a GnetLogger at construction.
type GnetOption func(*GnetLogger)

// WithFatalHandler replaces the default os.Exit(1) fatal behavior.
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetLogger) { a.fatalHandler = handler }
}

func (a *GnetLogger) render(format string, args ...any) string {
	return a.sanitizer.Sanitize(fmt.Sprintf(format, args...))
}

// Debugf logs at Info level; this core carries no debug tier.
func (a *GnetLogger) Debugf(format string, args ...any) {
	a.logger.Info("gnet", 0, a.render(format, args...))
}

// Infof logs at Info level.
func (a *GnetLogger) Infof(format string, args ...any) {
	a.logger.Info("gnet", 0, a.render(format, args...))
}

// Warnf logs at Warning level.
func (a *GnetLogger) Warnf(format string, args ...any) {
	a.logger.Warning("gnet", 0, a.render(format, args...))
}

// Errorf logs at Error level.
func (a *GnetLogger) Errorf(format string, args ...any) {
	a.logger.Error("gnet", 0, a.render(format, args...))
}

// Fatalf logs at Error level then invokes the fatal handler. The handler
// receives the unsanitized message — it is gnet's own signal to terminate,
// not log output, so forged-line protection does not apply to it.
func (a *GnetLogger) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Error("gnet", 0, a.sanitizer.Sanitize(msg))
	a.fatalHandler(msg)
}
