package nanobench

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
)

var (
	// ErrDuplicateBenchmark is returned when a name is registered twice.
	ErrDuplicateBenchmark = errors.New("benchmark already registered")

	// ErrUnknownBenchmark is returned when looking up a name nobody registered.
	ErrUnknownBenchmark = errors.New("unknown benchmark")
)

// Runner runs one benchmark under the given options and name.
type Runner func(opts Options, name string) Result

// Plain returns a Runner for Bench(f).
func Plain[T any](f func() T) Runner {
	return func(opts Options, name string) Result {
		return Bench(opts, name, f)
	}
}

// Drop returns a Runner for BenchDrop(f).
func Drop[T any](f func() T) Runner {
	return func(opts Options, name string) Result {
		return BenchDrop(opts, name, f)
	}
}

// Setup returns a Runner for BenchSetup(setup, f).
func Setup[I, O any](setup func() I, f func(I) O) Runner {
	return func(opts Options, name string) Result {
		return BenchSetup(opts, name, setup, f)
	}
}

// Registry holds named benchmarks in registration order.
type Registry struct {
	mu      sync.RWMutex
	names   []string
	runners map[string]Runner
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		runners: make(map[string]Runner),
	}
}

// Register adds a benchmark under name.
func (r *Registry) Register(name string, run Runner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.runners[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateBenchmark, name)
	}
	r.names = append(r.names, name)
	r.runners[name] = run
	return nil
}

// MustRegister is like Register but panics on error.
// Use from init() where a duplicate is a programming mistake.
func (r *Registry) MustRegister(name string, run Runner) {
	if err := r.Register(name, run); err != nil {
		panic(fmt.Sprintf("nanobench: %v", err))
	}
}

// Names returns registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.names...)
}

// Run runs the benchmark registered under name.
func (r *Registry) Run(opts Options, name string) (Result, error) {
	r.mu.RLock()
	run, ok := r.runners[name]
	r.mu.RUnlock()

	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownBenchmark, name)
	}
	return run(opts, name), nil
}

// RunAll runs every benchmark whose name matches filter, in registration
// order. A nil filter matches everything.
func (r *Registry) RunAll(opts Options, filter *regexp.Regexp) []Result {
	var results []Result
	for _, name := range r.Names() {
		if filter != nil && !filter.MatchString(name) {
			continue
		}
		result, err := r.Run(opts, name)
		if err != nil {
			continue
		}
		results = append(results, result)
	}
	return results
}

// Global registry (optional convenience)
var globalRegistry = NewRegistry()

// Register adds to the global registry.
func Register(name string, run Runner) error {
	return globalRegistry.Register(name, run)
}

// MustRegister adds to the global registry, panicking on duplicates.
func MustRegister(name string, run Runner) {
	globalRegistry.MustRegister(name, run)
}

// Names lists the global registry.
func Names() []string {
	return globalRegistry.Names()
}

// RunAll runs matching benchmarks from the global registry.
func RunAll(opts Options, filter *regexp.Regexp) []Result {
	return globalRegistry.RunAll(opts, filter)
}
