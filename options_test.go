package nanobench

import (
	"bytes"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, 1.01, opts.Factor)
	assert.Equal(t, 5*time.Second, opts.Time.Duration())
	assert.Equal(t, 512*MiB, opts.Memory)
	assert.NoError(t, opts.Validate())
}

func TestOptions_WithReturnsCopies(t *testing.T) {
	base := DefaultOptions()

	changed := base.
		WithFactor(1.5).
		WithTime(time.Second).
		WithMemory(64 * KiB)

	assert.Equal(t, 1.5, changed.Factor)
	assert.Equal(t, time.Second, changed.Time.Duration())
	assert.Equal(t, 64*KiB, changed.Memory)

	assert.Equal(t, DefaultOptions(), base, "receiver must not change")
}

func TestOptions_Validate(t *testing.T) {
	for _, factor := range []float64{1.0, 0.5, 0, -2, math.NaN()} {
		err := DefaultOptions().WithFactor(factor).Validate()
		require.Error(t, err, "factor=%v", factor)
		assert.ErrorIs(t, err, ErrInvalidOptions)
	}

	assert.NoError(t, DefaultOptions().WithFactor(1.0001).Validate())
	assert.NoError(t, DefaultOptions().WithTime(0).WithMemory(0).Validate())
}

func TestOptions_LoggerReceivesStopReason(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	opts := DefaultOptions().WithMemory(100).WithLogger(logger)

	Collect(opts, measureDrop(opts, func() uint64 { return 1 }))

	assert.Contains(t, buf.String(), "sampling stopped")
	assert.Contains(t, buf.String(), "reason=\"budget exhausted\"")
}

func TestOptions_Defaults(t *testing.T) {
	var opts Options

	assert.Equal(t, slog.Default(), opts.logger())
	assert.IsType(t, &TextReporter{}, opts.reporter())
}
