package ffi

import "errors"

// ErrNullStatusPointer is returned by a Table operation when its status
// out-parameter is nil and the Table was constructed with
// WithAbortOnNullPointer(false). With the default option value, the same
// situation panics instead (spec.md §6.2's "aborts the process").
var ErrNullStatusPointer = errors.New("ffi: status pointer is null")

// reportStatus writes s into *status if status is non-nil. If status is nil,
// it either panics (default) or returns ErrNullStatusPointer, depending on
// the Table's WithAbortOnNullPointer option. The cgo-exported symbols in
// cmd/libpolyglot always call Tables built with the default (abort) option,
// since that contract is part of the stable ABI regardless of what this
// package's own test suite needs.
func (t *Table) reportStatus(status *Status, s Status) error {
	if status != nil {
		*status = s
		return nil
	}
	if t.opts.abortOnNullPointer {
		panic("ffi: status pointer is null")
	}
	return ErrNullStatusPointer
}
