// FILE: compat/fiber.go
package compat

import (
	"fmt"

	"github.com/Falcom4000/logF"
	"github.com/Falcom4000/logF/sanitizer"
)

// FiberLogger wraps a logf.Logger to satisfy the three logging interfaces
// Fiber's ecosystem commonly expects (plain v..., printf-style f, and
// structured-keyvalue w methods), the same three-shaped surface the
// teacher's FiberAdapter implements. This core has no trace/debug tier, so
// Trace/Tracef/Tracew collapse onto Info the way gnet's Debugf does; it has
// no structured-field output either, so the w-suffixed methods fold their
// key/value pairs into the rendered message text rather than carrying them
// as separate fields.
type FiberLogger struct {
	logger       *logf.Logger
	fatalHandler func(msg string)
	panicHandler func(msg string)
	sanitizer    *sanitizer.Sanitizer
}

// NewFiberLogger creates a Fiber-compatible logger adapter.
func NewFiberLogger(logger *logf.Logger, opts ...FiberOption) *FiberLogger {
	a := &FiberLogger{
		logger: logger,
		fatalHandler: func(string) {
			panic("logf: fiber fatal log with no fatal handler installed")
		},
		panicHandler: func(msg string) {
			panic(msg)
		},
		sanitizer: sanitizer.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// FiberOption customizes a FiberLogger at construction.
type FiberOption func(*FiberLogger)

// WithFiberFatalHandler replaces the default fatal behavior.
func WithFiberFatalHandler(handler func(string)) FiberOption {
	return func(a *FiberLogger) { a.fatalHandler = handler }
}

// WithFiberPanicHandler replaces the default panic behavior.
func WithFiberPanicHandler(handler func(string)) FiberOption {
	return func(a *FiberLogger) { a.panicHandler = handler }
}

func (a *FiberLogger) render(v ...any) string {
	return a.sanitizer.Sanitize(fmt.Sprint(v...))
}

func (a *FiberLogger) renderf(format string, v ...any) string {
	return a.sanitizer.Sanitize(fmt.Sprintf(format, v...))
}

func (a *FiberLogger) renderw(msg string, keysAndValues ...any) string {
	if len(keysAndValues) == 0 {
		return a.sanitizer.Sanitize(msg)
	}
	return a.sanitizer.Sanitize(fmt.Sprintf("%s %v", msg, keysAndValues))
}

// Trace logs at Info level; this core carries no trace/debug tier.
func (a *FiberLogger) Trace(v ...any) { a.logger.Info("fiber", 0, a.render(v...)) }

// Debug logs at Info level.
func (a *FiberLogger) Debug(v ...any) { a.logger.Info("fiber", 0, a.render(v...)) }

// Info logs at Info level.
func (a *FiberLogger) Info(v ...any) { a.logger.Info("fiber", 0, a.render(v...)) }

// Warn logs at Warning level.
func (a *FiberLogger) Warn(v ...any) { a.logger.Warning("fiber", 0, a.render(v...)) }

// Error logs at Error level.
func (a *FiberLogger) Error(v ...any) { a.logger.Error("fiber", 0, a.render(v...)) }

// Fatal logs at Error level then invokes the fatal handler.
func (a *FiberLogger) Fatal(v ...any) {
	msg := a.render(v...)
	a.logger.Error("fiber", 0, msg)
	a.fatalHandler(msg)
}

// Panic logs at Error level then invokes the panic handler.
func (a *FiberLogger) Panic(v ...any) {
	msg := a.render(v...)
	a.logger.Error("fiber", 0, msg)
	a.panicHandler(msg)
}

// Write makes FiberLogger usable as an io.Writer, e.g. for error-handler
// output redirection; it trims exactly one trailing newline before logging,
// matching how a conventional writer-backed logger treats a single line.
func (a *FiberLogger) Write(p []byte) (int, error) {
	msg := string(p)
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	a.logger.Info("fiber", 0, a.sanitizer.Sanitize(msg))
	return len(p), nil
}

// Tracef logs at Info level with printf-style formatting.
func (a *FiberLogger) Tracef(format string, v ...any) { a.logger.Info("fiber", 0, a.renderf(format, v...)) }

// Debugf logs at Info level with printf-style formatting.
func (a *FiberLogger) Debugf(format string, v ...any) { a.logger.Info("fiber", 0, a.renderf(format, v...)) }

// Infof logs at Info level with printf-style formatting.
func (a *FiberLogger) Infof(format string, v ...any) { a.logger.Info("fiber", 0, a.renderf(format, v...)) }

// Warnf logs at Warning level with printf-style formatting.
func (a *FiberLogger) Warnf(format string, v ...any) { a.logger.Warning("fiber", 0, a.renderf(format, v...)) }

// Errorf logs at Error level with printf-style formatting.
func (a *FiberLogger) Errorf(format string, v ...any) { a.logger.Error("fiber", 0, a.renderf(format, v...)) }

// Fatalf logs at Error level with printf-style formatting, then invokes the
// fatal handler.
func (a *FiberLogger) Fatalf(format string, v ...any) {
	msg := a.renderf(format, v...)
	a.logger.Error("fiber", 0, msg)
	a.fatalHandler(msg)
}

// Panicf logs at Error level with printf-style formatting, then invokes the
// panic handler.
func (a *FiberLogger) Panicf(format string, v ...any) {
	msg := a.renderf(format, v...)
	a.logger.Error("fiber", 0, msg)
	a.panicHandler(msg)
}

// Tracew logs at Info level with a message and key/value pairs folded into
// the rendered text.
func (a *FiberLogger) Tracew(msg string, keysAndValues ...any) {
	a.logger.Info("fiber", 0, a.renderw(msg, keysAndValues...))
}

// Debugw logs at Info level with a message and key/value pairs.
func (a *FiberLogger) Debugw(msg string, keysAndValues ...any) {
	a.logger.Info("fiber", 0, a.renderw(msg, keysAndValues...))
}

// Infow logs at Info level with a message and key/value pairs.
func (a *FiberLogger) Infow(msg string, keysAndValues ...any) {
	a.logger.Info("fiber", 0, a.renderw(msg, keysAndValues...))
}

// Warnw logs at Warning level with a message and key/value pairs.
func (a *FiberLogger) Warnw(msg string, keysAndValues ...any) {
	a.logger.Warning("fiber", 0, a.renderw(msg, keysAndValues...))
}

// Errorw logs at Error level with a message and key/value pairs.
func (a *FiberLogger) Errorw(msg string, keysAndValues ...any) {
	a.logger.Error("fiber", 0, a.renderw(msg, keysAndValues...))
}

// Fatalw logs at Error level with a message and key/value pairs, then
// invokes the fatal handler.
func (a *FiberLogger) Fatalw(msg string, keysAndValues ...any) {
	rendered := a.renderw(msg, keysAndValues...)
	a.logger.Error("fiber", 0, rendered)
	a.fatalHandler(rendered)
}

// Panicw logs at Error level with a message and key/value pairs, then
// invokes the panic handler.
func (a *FiberLogger) Panicw(msg string, keysAndValues ...any) {
	rendered := a.renderw(msg, keysAndValues...)
	a.logger.Error("fiber", 0, rendered)
	a.panicHandler(rendered)
}
