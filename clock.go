package nanobench

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Nanoseconds is a duration measured in whole nanoseconds.
// It never goes negative, unlike time.Duration.
type Nanoseconds uint64

// NanosecondsOf converts d to Nanoseconds, clamping negative durations to zero.
func NanosecondsOf(d time.Duration) Nanoseconds {
	if d < 0 {
		return 0
	}
	return Nanoseconds(d)
}

// Duration converts n back to a time.Duration.
// Values beyond math.MaxInt64 saturate.
func (n Nanoseconds) Duration() time.Duration {
	if n > Nanoseconds(1<<63-1) {
		return time.Duration(1<<63 - 1)
	}
	return time.Duration(n)
}

// Seconds returns n as a floating-point number of seconds.
func (n Nanoseconds) Seconds() float64 {
	return float64(n) / 1e9
}

// String renders n as seconds with one decimal place, e.g. "5.0s".
func (n Nanoseconds) String() string {
	return fmt.Sprintf("%.1fs", n.Seconds())
}

// Bytes is a quantity of memory.
type Bytes uint64

// Binary byte multiples.
const (
	KiB Bytes = 1 << 10
	MiB Bytes = 1 << 20
	GiB Bytes = 1 << 30
)

// String renders b using IEC units, e.g. "512 MiB".
func (b Bytes) String() string {
	return humanize.IBytes(uint64(b))
}

// Stopwatch measures wall-clock time against the monotonic clock.
type Stopwatch struct {
	start time.Time
}

// StartStopwatch returns a Stopwatch started at the current instant.
func StartStopwatch() Stopwatch {
	return Stopwatch{start: time.Now()}
}

// Elapsed returns the nanoseconds since the stopwatch was started or reset.
func (s Stopwatch) Elapsed() Nanoseconds {
	return NanosecondsOf(time.Since(s.start))
}

// Reset restarts the stopwatch at the current instant.
func (s *Stopwatch) Reset() {
	s.start = time.Now()
}
