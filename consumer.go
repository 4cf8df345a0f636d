// FILE: consumer.go
package logf

import (
	"math"
	"strconv"
	"sync/atomic"
	"time"
)

// consumer is the single background goroutine that drains the ring, renders
// each record to text through a staging buffer, and flushes into the
// mmap-backed writer. Everything on this type is single-threaded by
// construction: only the consumer goroutine ever touches it, so none of its
// fields need synchronization beyond the running flag it polls.
type consumer struct {
	r        *ring
	w        *mmapWriter
	stage    []byte
	stageCap int
	headroom int

	recBuf     []byte // scratch: one record's rendering, built before it joins stage
	recordEnds []int  // cumulative stage offset after each record appended since the last flush

	_       [64]byte
	running atomic.Bool // kept on its own cache line, apart from the hot fields
	_       [64]byte
	done    chan struct{}

	written atomic.Uint64 // records confirmed written to the writer since Start

	openErrLogged   atomic.Bool
	oversizedLogged atomic.Bool

	timeCache timeCache
}

func newConsumer(r *ring, w *mmapWriter, stagingSize, stagingHeadroom int) *consumer {
	return &consumer{
		r:        r,
		w:        w,
		stage:    make([]byte, 0, stagingSize),
		stageCap: stagingSize,
		headroom: stagingHeadroom,
		recBuf:   make([]byte, 0, stagingHeadroom),
	}
}

// start spawns the consumer goroutine. The done channel is closed once run
// has fully exited, so stop can wait on it instead of a WaitGroup — the
// teacher's own logger uses a similar completion-channel idiom for its
// processor goroutine.
func (c *consumer) start() {
	c.running.Store(true)
	c.done = make(chan struct{})
	go c.run()
}

// stop signals shutdown and blocks until the consumer goroutine has drained
// whatever was already published and flushed the staging buffer. It returns
// the number of records written to the writer since start.
func (c *consumer) stop() uint64 {
	c.running.Store(false)
	if c.done != nil {
		<-c.done
	}
	return c.written.Load()
}

func (c *consumer) run() {
	defer close(c.done)

	spin := 0
	for c.running.Load() {
		view := c.r.read()
		if view.len() == 0 {
			spin++
			if spin < consumerSpinBudget {
				continue
			}
			spin = 0
			time.Sleep(consumerIdleSleep)
			continue
		}
		spin = 0
		c.drain(view)
	}

	// Final drain: records published between the last poll and the running
	// flag going false must still make it out before Stop returns.
	view := c.r.read()
	if view.len() > 0 {
		c.drain(view)
	}
	c.flush()
}

func (c *consumer) drain(view readView) {
	for i := 0; i < view.len(); i++ {
		c.formatRecord(view.at(i))
	}
	view.release()
}

func (c *consumer) formatRecord(rec *logRecord) {
	c.recBuf = c.recBuf[:0]

	switch rec.level {
	case LevelInfo:
		c.recBuf = append(c.recBuf, "[INFO]"...)
	case LevelWarning:
		c.recBuf = append(c.recBuf, "[WARNING]"...)
	case LevelError:
		c.recBuf = append(c.recBuf, "[ERROR]"...)
	default:
		c.recBuf = append(c.recBuf, "[INFO]"...)
	}

	c.recBuf = c.timeCache.append(c.recBuf, rec.timestamp)

	c.recBuf = append(c.recBuf, rec.file...)
	c.recBuf = append(c.recBuf, ':')
	c.recBuf = strconv.AppendUint(c.recBuf, uint64(rec.line), 10)
	c.recBuf = append(c.recBuf, ' ')

	c.recBuf = c.appendBody(c.recBuf, rec)
	c.recBuf = append(c.recBuf, '\n')

	c.ensureRoom(len(c.recBuf))

	// A record longer than the room left in the staging buffer is cut at the
	// buffer boundary, keeping its final newline.
	if room := c.stageCap - len(c.stage); c.stageCap > 0 && room > 0 && len(c.recBuf) > room {
		c.recBuf = append(c.recBuf[:room-1], '\n')
	}

	c.stage = append(c.stage, c.recBuf...)
	c.recordEnds = append(c.recordEnds, len(c.stage))
}

// ensureRoom flushes the staging buffer, if needed, before a record of n
// bytes joins it. Two independent limits are enforced: the staging buffer's
// own capacity (stageCap/headroom), and the remaining space in whatever
// file the writer currently has mapped — flushing before the latter is
// crossed keeps every span handed to the writer within a single file's
// capacity, so rotation never has to split one flush across two files.
func (c *consumer) ensureRoom(n int) {
	if len(c.stage)+c.headroom > c.stageCap {
		c.flush()
	}
	if c.w != nil && c.w.remaining()-int64(len(c.stage)) < int64(n) {
		c.flush()
	}
}

// appendBody scans format for '%' placeholders, substituting the next
// argument by position. Placeholders past num_args stay literal; args past
// the placeholder count are ignored.
func (c *consumer) appendBody(dst []byte, rec *logRecord) []byte {
	format := rec.format
	argIdx := uint8(0)

	last := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if argIdx >= rec.numArgs {
			// No more arguments: leave this and all remaining '%'s literal.
			continue
		}
		dst = append(dst, format[last:i]...)
		dst = appendVariant(dst, rec.args[argIdx])
		argIdx++
		last = i + 1
	}
	return append(dst, format[last:]...)
}

func appendVariant(dst []byte, v Variant) []byte {
	switch {
	case v.isInt():
		return strconv.AppendInt(dst, int64(v.i), 10)
	case v.isFloat():
		return appendFloat(dst, v.f)
	case v.isString():
		return append(dst, v.s...)
	}
	return dst
}

// flush hands the staging buffer to the writer and clears it. Writer
// failures never block the consumer: the first one is logged, the buffered
// bytes are dropped, and the consumer stops handing spans to the writer,
// discarding whatever it drains from then on, since retrying would only
// grow the staging buffer further under sustained failure. written is only advanced for
// records whose bytes fall entirely within whatever prefix the writer
// confirms it actually copied, so a discarded record — on error, or on the
// single-oversized-record truncation case — is never counted as written.
func (c *consumer) flush() {
	if len(c.stage) == 0 {
		return
	}

	if c.w == nil {
		c.stage = c.stage[:0]
		c.recordEnds = c.recordEnds[:0]
		return
	}

	n, err := c.w.write(c.stage)
	if err != nil {
		if c.openErrLogged.CompareAndSwap(false, true) {
			internalLog("writer open/rotate failed, discarding buffered records: %v", err)
		}
		c.w = nil
		c.stage = c.stage[:0]
		c.recordEnds = c.recordEnds[:0]
		return
	}
	if n < len(c.stage) {
		if c.oversizedLogged.CompareAndSwap(false, true) {
			internalLog("staged span exceeded target file size, tail discarded")
		}
	}

	confirmed := 0
	for _, end := range c.recordEnds {
		if end > n {
			break
		}
		confirmed++
	}
	c.written.Add(uint64(confirmed))

	c.stage = c.stage[:0]
	c.recordEnds = c.recordEnds[:0]
}

// appendFloat renders a finite non-zero double in scientific notation with
// four significant digits, and special-cases zero, negative zero, NaN and
// infinity explicitly rather than delegating to strconv's generic formatter.
func appendFloat(buf []byte, f float64) []byte {
	switch {
	case math.IsNaN(f):
		return append(buf, "nan"...)
	case math.IsInf(f, 1):
		return append(buf, "inf"...)
	case math.IsInf(f, -1):
		return append(buf, "-inf"...)
	case f == 0:
		if math.Signbit(f) {
			return append(buf, "-0e+00"...)
		}
		return append(buf, "0e+00"...)
	}
	// strconv's 'e' format with precision 3 yields four significant digits:
	// one before the decimal point, three after.
	return strconv.AppendFloat(buf, f, 'e', 3, 64)
}

// timeCache remembers the millisecond timestamp most recently rendered and
// reuses the "MM-DD HH:MM:SS.sss" prefix when the current record's
// millisecond matches. It is a single-threaded optimization — only the
// consumer goroutine ever calls append — and assumes local-time conversion
// is stable within a millisecond, true on all mainstream platforms.
type timeCache struct {
	millis int64
	prefix [len("01-02 15:04:05.000")]byte
	valid  bool
}

func (t *timeCache) append(buf []byte, ts time.Time) []byte {
	millis := ts.UnixMilli()
	if !t.valid || millis != t.millis {
		t.render(ts, millis)
	}
	return append(buf, t.prefix[:]...)
}

func (t *timeCache) render(ts time.Time, millis int64) {
	b := t.prefix[:0]
	month, day := ts.Month(), ts.Day()
	hour, min, sec := ts.Hour(), ts.Minute(), ts.Second()
	ms := int(millis % 1000)
	if ms < 0 {
		ms += 1000
	}

	b = appendPad2(b, int(month))
	b = append(b, '-')
	b = appendPad2(b, day)
	b = append(b, ' ')
	b = appendPad2(b, hour)
	b = append(b, ':')
	b = appendPad2(b, min)
	b = append(b, ':')
	b = appendPad2(b, sec)
	b = append(b, '.')
	b = appendPad3(b, ms)

	copy(t.prefix[:], b)
	t.millis = millis
	t.valid = true
}

func appendPad2(b []byte, v int) []byte {
	if v < 10 {
		return append(b, '0', byte('0'+v))
	}
	return strconv.AppendInt(b, int64(v), 10)
}

func appendPad3(b []byte, v int) []byte {
	switch {
	case v < 10:
		return append(b, '0', '0', byte('0'+v))
	case v < 100:
		return appendPad2(append(b, '0'), v)
	default:
		return strconv.AppendInt(b, int64(v), 10)
	}
}
