// FILE: record.go
package logf

import "time"

// logRecord is a fixed-size, trivially copyable descriptor of a single log
// event. It holds only non-owning pointers (Go string headers) and scalars,
// so constructing one in place and later reading it needs no destructor: the
// slot is simply overwritten by the next publisher once the consumer has
// moved past it.
type logRecord struct {
	timestamp time.Time
	file      string
	format    string
	line      uint16
	level     int64
	numArgs   uint8
	args      [MaxArgs]Variant
}

// newRecord constructs a record from a macro-call-site-shaped argument list.
// It clamps line to uint16 and narrows the argument list to MaxArgs by
// dropping the overflow; it never allocates.
func newRecord(level int64, file string, line int, format string, args ...Variant) logRecord {
	l := line
	if l > 65535 {
		l = 65535
	} else if l < 0 {
		l = 0
	}

	r := logRecord{
		timestamp: time.Now(),
		file:      file,
		format:    format,
		line:      uint16(l),
		level:     level,
	}

	n := len(args)
	if n > MaxArgs {
		n = MaxArgs
	}
	for i := 0; i < n; i++ {
		r.args[i] = args[i]
	}
	r.numArgs = uint8(n)

	return r
}