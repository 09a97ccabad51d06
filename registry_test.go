package nanobench

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubRunner(calls *[]string) Runner {
	return func(opts Options, name string) Result {
		*calls = append(*calls, name)
		return Result{Name: name}
	}
}

func TestRegistry_RegisterAndRun(t *testing.T) {
	var calls []string
	reg := NewRegistry()

	require.NoError(t, reg.Register("b", stubRunner(&calls)))
	require.NoError(t, reg.Register("a", stubRunner(&calls)))

	assert.Equal(t, []string{"b", "a"}, reg.Names())

	result, err := reg.Run(quietOptions(), "a")
	require.NoError(t, err)
	assert.Equal(t, "a", result.Name)
	assert.Equal(t, []string{"a"}, calls)
}

func TestRegistry_Duplicate(t *testing.T) {
	var calls []string
	reg := NewRegistry()
	require.NoError(t, reg.Register("x", stubRunner(&calls)))

	err := reg.Register("x", stubRunner(&calls))
	assert.ErrorIs(t, err, ErrDuplicateBenchmark)

	assert.Panics(t, func() { reg.MustRegister("x", stubRunner(&calls)) })
}

func TestRegistry_Unknown(t *testing.T) {
	_, err := NewRegistry().Run(quietOptions(), "missing")
	assert.ErrorIs(t, err, ErrUnknownBenchmark)
}

func TestRegistry_RunAllFilter(t *testing.T) {
	var calls []string
	reg := NewRegistry()
	for _, name := range []string{"iterative_4", "recursive_4", "iterative_16"} {
		reg.MustRegister(name, stubRunner(&calls))
	}

	results := reg.RunAll(quietOptions(), regexp.MustCompile("^iterative"))

	require.Len(t, results, 2)
	assert.Equal(t, []string{"iterative_4", "iterative_16"}, calls)

	calls = nil
	assert.Len(t, reg.RunAll(quietOptions(), nil), 3)
	assert.Len(t, calls, 3)
}

func TestRegistry_Adapters(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister("plain", Plain(func() int { return 1 }))
	reg.MustRegister("drop", Drop(func() []int { return make([]int, 4) }))
	reg.MustRegister("setup", Setup(func() int { return 2 }, func(x int) int { return x * 2 }))

	opts := quietOptions().WithTime(5 * time.Millisecond)
	results := reg.RunAll(opts, nil)

	require.Len(t, results, 3)
	for i, name := range []string{"plain", "drop", "setup"} {
		assert.Equal(t, name, results[i].Name)
		assert.NotEmpty(t, results[i].Samples)
	}
}

func TestGlobalRegistry(t *testing.T) {
	var calls []string
	require.NoError(t, Register("global_registry_test", stubRunner(&calls)))
	assert.ErrorIs(t, Register("global_registry_test", stubRunner(&calls)), ErrDuplicateBenchmark)
	assert.Panics(t, func() { MustRegister("global_registry_test", stubRunner(&calls)) })

	assert.Contains(t, Names(), "global_registry_test")

	results := RunAll(quietOptions(), regexp.MustCompile("^global_registry_test$"))
	require.Len(t, results, 1)
	assert.Equal(t, []string{"global_registry_test"}, calls)
}
