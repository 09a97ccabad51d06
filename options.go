package nanobench

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// ErrInvalidOptions is returned by Options.Validate for unusable settings.
var ErrInvalidOptions = errors.New("invalid benchmark options")

// Options controls how samples are collected and where results go.
//
// Options is a value: the With* methods return modified copies and never
// change the receiver.
type Options struct {
	Factor float64     // Growth factor of the iteration count sequence (> 1.0)
	Time   Nanoseconds // Time budget for collecting samples
	Memory Bytes       // Memory budget for buffered results or setup inputs

	Reporter Reporter     // Receives each finished Result (default: text on stdout)
	Logger   *slog.Logger // Debug logging of sampling decisions (default: slog.Default())
}

// DefaultOptions returns the standard configuration: a 1.01 growth factor,
// a 5 second time budget and a 512 MiB memory budget.
func DefaultOptions() Options {
	return Options{
		Factor: 1.01,
		Time:   NanosecondsOf(5 * time.Second),
		Memory: 512 * MiB,
	}
}

// WithFactor returns a copy of o using the given growth factor.
func (o Options) WithFactor(factor float64) Options {
	o.Factor = factor
	return o
}

// WithTime returns a copy of o using the given time budget.
func (o Options) WithTime(d time.Duration) Options {
	o.Time = NanosecondsOf(d)
	return o
}

// WithMemory returns a copy of o using the given memory budget.
func (o Options) WithMemory(b Bytes) Options {
	o.Memory = b
	return o
}

// WithReporter returns a copy of o that reports to r.
func (o Options) WithReporter(r Reporter) Options {
	o.Reporter = r
	return o
}

// WithLogger returns a copy of o that logs to l.
func (o Options) WithLogger(l *slog.Logger) Options {
	o.Logger = l
	return o
}

// Validate reports whether o can drive a benchmark to completion.
func (o Options) Validate() error {
	if !(o.Factor > 1.0) {
		return fmt.Errorf("%w: growth factor must exceed 1.0, got %v", ErrInvalidOptions, o.Factor)
	}
	return nil
}

func (o Options) mustValidate() {
	if err := o.Validate(); err != nil {
		panic(fmt.Sprintf("nanobench: %v", err))
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) reporter() Reporter {
	if o.Reporter != nil {
		return o.Reporter
	}
	return NewTextReporter(os.Stdout)
}
