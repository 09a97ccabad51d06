package nanobench

import (
	"io"
	"log/slog"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// quietOptions returns options that neither print nor log.
func quietOptions() Options {
	return DefaultOptions().
		WithReporter(Discard).
		WithLogger(discardLogger())
}

// spin busy-waits for d and returns the number of clock reads.
func spin(d time.Duration) int {
	start := time.Now()
	reads := 0
	for time.Since(start) < d {
		reads++
	}
	return reads
}
