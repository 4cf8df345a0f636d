// FILE: logger.go
package logf

import (
	"runtime"
	"sync/atomic"
)

// Logger ties together the ring, the mmap-backed writer, and the background
// consumer into the public API. A Logger is only a lightweight descriptor
// over those three pieces — there is no per-call allocation and no lock on
// the hot path: every producer call is a bounded CAS loop against the ring.
type Logger struct {
	cfg Config

	ring *ring
	w    *mmapWriter
	c    *consumer

	started atomic.Bool
	minLevel int64
}

// New constructs a Logger from cfg without starting the background consumer.
// Call Start to begin draining; a Logger that is never started simply drops
// every record emplace attempts once the ring fills, since nothing ever
// reads from it.
func New(cfg Config) (*Logger, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	r, err := newRing(int(cfg.Capacity))
	if err != nil {
		return nil, err
	}

	w := newMmapWriter(cfg.Directory, cfg.FileSizeBytes)
	c := newConsumer(r, w, int(cfg.StagingBufferSize), int(cfg.StagingHeadroom))

	return &Logger{
		cfg:      cfg,
		ring:     r,
		w:        w,
		c:        c,
		minLevel: cfg.MinLevel,
	}, nil
}

// Start spawns the background consumer goroutine. Calling Start on an
// already-started Logger is a no-op.
func (l *Logger) Start() {
	if !l.started.CompareAndSwap(false, true) {
		return
	}
	l.c.start()
}

// Stop signals the consumer to drain whatever remains in the ring, flush the
// staging buffer, and close the writer, then blocks until that has happened.
// It returns the total number of records written to disk since Start. Stop
// on a Logger that was never started, or on one already stopped, is a no-op
// returning the count as of the last stop.
func (l *Logger) Stop() uint64 {
	if !l.started.CompareAndSwap(true, false) {
		return l.c.written.Load()
	}
	n := l.c.stop()
	if err := l.w.close(); err != nil {
		internalLog("close writer during stop: %v", err)
	}
	return n
}

// DroppedRecords returns the number of records a producer failed to
// emplace because the ring was full. It is never reset across the life of
// a Logger.
func (l *Logger) DroppedRecords() uint64 {
	return l.ring.dropped.Load()
}

// Info records a message at the Info level. file and line identify the call
// site; callers typically pass the result of runtime.Caller or a
// compile-time constant rather than paying for a Caller lookup on every
// call — see InfoCaller for the convenience form that does the lookup.
func (l *Logger) Info(file string, line int, format string, args ...Variant) {
	l.emit(LevelInfo, file, line, format, args...)
}

// Warning records a message at the Warning level.
func (l *Logger) Warning(file string, line int, format string, args ...Variant) {
	l.emit(LevelWarning, file, line, format, args...)
}

// Error records a message at the Error level.
func (l *Logger) Error(file string, line int, format string, args ...Variant) {
	l.emit(LevelError, file, line, format, args...)
}

// InfoCaller is Info with the call site resolved via runtime.Caller(1)
// rather than supplied by hand. It costs a Caller lookup the fixed-site
// methods avoid; use Info/Warning/Error directly on the hot path.
func (l *Logger) InfoCaller(format string, args ...Variant) {
	if LevelInfo < l.minLevel {
		return
	}
	file, line := caller()
	l.emit(LevelInfo, file, line, format, args...)
}

// WarningCaller is Warning with the call site resolved via runtime.Caller(1).
func (l *Logger) WarningCaller(format string, args ...Variant) {
	if LevelWarning < l.minLevel {
		return
	}
	file, line := caller()
	l.emit(LevelWarning, file, line, format, args...)
}

// ErrorCaller is Error with the call site resolved via runtime.Caller(1).
func (l *Logger) ErrorCaller(format string, args ...Variant) {
	if LevelError < l.minLevel {
		return
	}
	file, line := caller()
	l.emit(LevelError, file, line, format, args...)
}

func caller() (string, int) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "", 0
	}
	return file, line
}

// emit is the single path every level method funnels through. The level
// check happens before the record is ever built, so a call below minLevel
// costs one comparison and nothing else — no record construction, no ring
// interaction.
func (l *Logger) emit(level int64, file string, line int, format string, args ...Variant) {
	if level < l.minLevel {
		return
	}
	rec := newRecord(level, file, line, format, args...)
	if err := l.ring.emplace(rec); err != nil {
		l.ring.dropped.Add(1)
	}
}
