// FILE: utility.go
package logf

import (
	"fmt"
	"os"
	"strings"
)

// fmtErrorf wraps fmt.Errorf with the package's consistent "logf: " prefix.
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "logf: ") {
		format = "logf: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors joins two errors for reporting at shutdown, where more than
// one failure (sync, close, join timeout) may need surfacing at once.
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// internalLog writes a library self-diagnostic line to stderr. The library
// cannot depend on itself to report its own failures, so this is a small,
// dependency-free sink rather than a route through the core's own pipeline.
func internalLog(format string, args ...any) {
	if !strings.HasPrefix(format, "logf: ") {
		format = "logf: " + format
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
