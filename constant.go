// FILE: constant.go
package logf

import "time"

// Log level constants. Three levels only: this core has no DEBUG/PROC/DISK/SYS
// tiers, those belong to a surrounding operational wrapper, not the hot path.
const (
	LevelInfo    int64 = 0
	LevelWarning int64 = 4
	LevelError   int64 = 8
)

// MaxArgs is the fixed capacity of a record's argument array.
const MaxArgs = 4

// Defaults mirror the teacher's single-source-of-defaults convention.
const (
	defaultCapacity      = 1024
	defaultDirectory     = "./logs"
	defaultFileSizeBytes = 4 * 1024 * 1024
	defaultMinLevel      = LevelInfo

	defaultStagingBufferSize = 128 * 1024
	defaultStagingHeadroom   = 256

	// Spin budget before the consumer backs off to a sleep when the ring is empty.
	consumerSpinBudget = 50
	consumerIdleSleep  = 1 * time.Millisecond
)
