package ffi

import "github.com/gopolyglot/polyglot-go/log"

// Options configures a Table's behavior. NewTable starts from the
// spec-mandated default: a null status out-parameter aborts the process, and
// nothing is logged. The zero Options value does not abort; NewTable sets
// abortOnNullPointer to true before applying any Option.
type Options struct {
	abortOnNullPointer bool
	logger             log.Logger
}

// Option sets one field of Options.
type Option func(*Options)

// WithAbortOnNullPointer controls what happens when an internal (non-cgo)
// entry point is invoked in a way that spec.md §6.2 says should abort the
// process on a null status pointer. The default, true, matches the spec's
// exported-symbol contract exactly: a null status pointer panics, and an
// unrecovered panic crossing a cgo boundary terminates the process.
//
// The cgo-exported symbols in cmd/libpolyglot always behave as though this
// is true, regardless of what a Table was constructed with: that contract is
// part of the stable ABI. This option exists for the in-process Go API
// (Table's own methods, used directly by this repo's test suite) to opt out
// and receive a regular Go error instead of a process abort, since a test
// binary cannot survive a real SIGABRT.
func WithAbortOnNullPointer(abort bool) Option {
	return func(o *Options) { o.abortOnNullPointer = abort }
}

// WithLogger attaches an observational logger to a Table. Passing nil is
// equivalent to not calling this option.
func WithLogger(l log.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func newOptions(opts []Option) Options {
	o := Options{abortOnNullPointer: true}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = log.OrNop(o.logger)
	return o
}
