//go:build !debug

// Package debug provides assertions that are enabled with the debug build
// tag and otherwise compile to no-ops. A failed assertion panics, which on
// target ends up as a report on the debug channel.
//
// This is not considered idiomatic Go, but pays off when the only way to
// observe a failure is a JTAG probe.
package debug

// Guard assertions with expensive arguments with `if debug.Enabled{...}`,
// otherwise they can't be removed in release builds.
const Enabled = false

// Assert panics with message if b is false.
func Assert(b bool, message string) {}

// AssertErrNil panics if err is not nil.
func AssertErrNil(err error) {}
