// FILE: compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/Falcom4000/logF"
	"github.com/Falcom4000/logF/sanitizer"
)

// FastHTTPLogger wraps a logf.Logger to implement fasthttp's Logger
// interface (a single Printf method). fasthttp has no notion of levels, so
// the adapter infers one from the message content the way the message
// itself hints at severity — "error"/"failed" becomes Error, "warn" becomes
// Warning, everything else is Info.
type FastHTTPLogger struct {
	logger        *logf.Logger
	defaultLevel  int64
	levelDetector func(string) int64
	sanitizer     *sanitizer.Sanitizer
}

// NewFastHTTPLogger creates a fasthttp-compatible logger adapter.
func NewFastHTTPLogger(logger *logf.Logger, opts ...FastHTTPOption) *FastHTTPLogger {
	a := &FastHTTPLogger{
		logger:        logger,
		defaultLevel:  logf.LevelInfo,
		levelDetector: DetectLogLevel,
		sanitizer:     sanitizer.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// FastHTTPOption customizes a FastHTTPLogger at construction.
type FastHTTPOption func(*FastHTTPLogger)

// WithDefaultLevel sets the level used when the detector finds no hint.
func WithDefaultLevel(level int64) FastHTTPOption {
	return func(a *FastHTTPLogger) { a.defaultLevel = level }
}

// WithLevelDetector replaces the message-content level heuristic.
func WithLevelDetector(detector func(string) int64) FastHTTPOption {
	return func(a *FastHTTPLogger) { a.levelDetector = detector }
}

// Printf implements fasthttp's Logger interface. fasthttp messages can
// embed request-derived text (paths, headers); the message is passed as the
// record's format with no arguments, so the core's placeholder scan leaves
// every '%' in it literal, but the text could still contain a raw
// newline forging an extra log line; the message is sanitized before it
// reaches the logger for exactly that reason.
func (a *FastHTTPLogger) Printf(format string, args ...any) {
	msg := a.sanitizer.Sanitize(fmt.Sprintf(format, args...))

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected != 0 {
			level = detected
		}
	}

	switch level {
	case logf.LevelError:
		a.logger.Error("fasthttp", 0, msg)
	case logf.LevelWarning:
		a.logger.Warning("fasthttp", 0, msg)
	default:
		a.logger.Info("fasthttp", 0, msg)
	}
}

// DetectLogLevel infers a severity from message content.
func DetectLogLevel(msg string) int64 {
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "error") ||
		strings.Contains(lower, "failed") ||
		strings.Contains(lower, "fatal") ||
		strings.Contains(lower, "panic"):
		return logf.LevelError
	case strings.Contains(lower, "warn") || strings.Contains(lower, "deprecated"):
		return logf.LevelWarning
	default:
		return logf.LevelInfo
	}
}
