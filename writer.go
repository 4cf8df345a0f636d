// FILE: writer.go
//go:build !windows

package logf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

// mmapWriter appends opaque byte spans to a file memory-mapped into the
// consumer's address space, rotating to a new file when the current one
// would overflow. Only the consumer goroutine ever touches a mmapWriter, so
// none of its fields are atomic — the core's concurrency budget is spent on
// the ring, not here.
type mmapWriter struct {
	dir        string
	targetSize int64

	nextIdx int // incremented on every open, never reset

	file   *os.File
	data   []byte
	offset int64
}

func newMmapWriter(dir string, targetSize int64) *mmapWriter {
	return &mmapWriter{dir: dir, targetSize: targetSize}
}

// open creates the next numbered file in dir, truncated to targetSize and
// mapped read-write shared. Any failure leaves the writer closed.
func (w *mmapWriter) open() error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmtErrorf("open log file: mkdir %s: %w", w.dir, err)
	}

	name := fmt.Sprintf("%s_%d.log", time.Now().Format("2006-01-02"), w.nextIdx)
	path := filepath.Join(w.dir, name)

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmtErrorf("open log file %s: %w", path, err)
	}

	if err := file.Truncate(w.targetSize); err != nil {
		file.Close()
		return fmtErrorf("extend log file %s: %w", path, err)
	}

	data, err := unix.Mmap(int(file.Fd()), 0, int(w.targetSize), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		file.Close()
		return fmtErrorf("mmap log file %s: %w", path, err)
	}

	w.file = file
	w.data = data
	w.offset = 0
	w.nextIdx++

	return nil
}

// remaining reports how many bytes can still be written into the file that
// is currently mapped without rotating. If no file is open yet, the next
// write opens a fresh one of targetSize bytes, so the full target size is
// reported as available. Callers use this to keep a single write span from
// ever needing to straddle more than one rotation.
func (w *mmapWriter) remaining() int64 {
	if w.file == nil {
		return w.targetSize
	}
	return int64(len(w.data)) - w.offset
}

// write copies span into the mapped region, rotating first if it would not
// fit, and returns the number of bytes actually copied. A span wider than
// targetSize is truncated to fit the fresh file — n is then less than
// len(span) and the caller is responsible for reporting the discarded tail.
// Callers that keep each span within remaining() of the current file never
// see a short write.
func (w *mmapWriter) write(span []byte) (n int, err error) {
	if w.file == nil {
		if err := w.open(); err != nil {
			return 0, err
		}
	}

	if w.offset+int64(len(span)) > int64(len(w.data)) {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	l := len(span)
	if int64(l) > int64(len(w.data)) {
		l = len(w.data)
	}

	copy(w.data[w.offset:], span[:l])
	w.offset += int64(l)
	return l, nil
}

// rotate is equivalent to close-then-open. It is transparent to the caller:
// no span straddles two files because the overflow check in write happens
// before any bytes are copied.
func (w *mmapWriter) rotate() error {
	if err := w.close(); err != nil {
		return err
	}
	return w.open()
}

// flush requests an asynchronous page-sync; it gives no durability
// guarantee on return.
func (w *mmapWriter) flush() error {
	if w.data == nil {
		return nil
	}
	return unix.Msync(w.data, unix.MS_ASYNC)
}

// close performs a synchronous page-sync, truncates the file to the
// effective write offset so tail zeros are never persisted, unmaps, and
// closes the descriptor. It is idempotent.
func (w *mmapWriter) close() error {
	if w.data == nil {
		return nil
	}

	var err error
	if syncErr := unix.Msync(w.data, unix.MS_SYNC); syncErr != nil {
		err = combineErrors(err, fmtErrorf("msync log file: %w", syncErr))
	}

	offset := w.offset
	if unmapErr := unix.Munmap(w.data); unmapErr != nil {
		err = combineErrors(err, fmtErrorf("munmap log file: %w", unmapErr))
	}
	w.data = nil

	if w.file != nil {
		if truncErr := w.file.Truncate(offset); truncErr != nil {
			err = combineErrors(err, fmtErrorf("truncate log file to final size: %w", truncErr))
		}
		if closeErr := w.file.Close(); closeErr != nil {
			err = combineErrors(err, fmtErrorf("close log file: %w", closeErr))
		}
		w.file = nil
	}

	w.offset = 0
	return err
}
