package nanobench

import "runtime"

// Retain returns v unchanged while forcing the compiler to treat it as used,
// so the computation that produced v cannot be eliminated as dead code.
//
// Go has no dedicated optimization barrier. Retain relies on being opaque to
// the inliner; a future compiler that sees through it could still elide work,
// inflating or deflating results. The call itself costs a few nanoseconds,
// which shows up in the fitted slope.
//
//go:noinline
func Retain[T any](v T) T {
	runtime.KeepAlive(v)
	return v
}
