package ffi

import (
	"runtime/cgo"
	"sync"

	"github.com/gopolyglot/polyglot-go/codec"
	"github.com/gopolyglot/polyglot-go/log"
)

// Handle identifies a live Encoder or Decoder across the FFI boundary. It is
// backed by runtime/cgo.Handle, the standard-library mechanism for minting
// an opaque, uintptr-sized token for a Go value that a C caller can hold and
// pass back without ever dereferencing it directly (spec.md §6.2's "opaque
// handle" requirement). No library in the retrieval pack exports a C ABI
// from Go, so there is no third-party dependency to ground this choice in;
// see DESIGN.md.
type Handle uintptr

// Table is a concurrency-safe registry of live Encoder and Decoder handles.
// Individual Encoders and Decoders remain single-threaded per spec.md §5;
// Table itself is the additional piece of shared mutable state a realistic
// FFI deployment introduces (a host language's GC thread freeing a handle
// concurrently with a worker thread still using it), made safe with
// sync.Map rather than a single mutex so that lookups for distinct handles
// never contend.
type Table struct {
	opts    Options
	live    sync.Map // cgo.Handle -> struct{}
	encoded sync.Map // cgo.Handle -> bool, true iff the live value is an *codec.Encoder
}

// NewTable returns an empty handle table.
func NewTable(opts ...Option) *Table {
	return &Table{opts: newOptions(opts)}
}

func (t *Table) logger() log.Logger {
	return t.opts.logger
}

// NewEncoder mints a fresh *codec.Encoder and returns a Handle for it.
func (t *Table) NewEncoder() Handle {
	h := cgo.NewHandle(codec.NewEncoder())
	t.live.Store(h, struct{}{})
	t.encoded.Store(h, true)
	return Handle(h)
}

// NewDecoder mints a *codec.Decoder over a private copy of src and returns a
// Handle for it.
func (t *Table) NewDecoder(src []byte) Handle {
	h := cgo.NewHandle(codec.NewDecoder(src))
	t.live.Store(h, struct{}{})
	t.encoded.Store(h, false)
	return Handle(h)
}

// Encoder resolves h to its *codec.Encoder. Status is NullPointer if h is
// the null handle (spec.md §8.2 scenario 8), Fail if h is unknown, already
// freed, or was minted for a Decoder.
func (t *Table) Encoder(h Handle) (*codec.Encoder, Status) {
	if h == 0 {
		return nil, NullPointer
	}
	ch := cgo.Handle(h)
	if _, ok := t.live.Load(ch); !ok {
		t.logger().Warn("ffi: encoder handle not live", log.Fields{"handle": uintptr(h)})
		return nil, Fail
	}
	enc, ok := ch.Value().(*codec.Encoder)
	if !ok {
		return nil, Fail
	}
	return enc, Pass
}

// Decoder resolves h to its *codec.Decoder. Status is NullPointer if h is
// the null handle (spec.md §8.2 scenario 8), Fail if h is unknown, already
// freed, or was minted for an Encoder.
func (t *Table) Decoder(h Handle) (*codec.Decoder, Status) {
	if h == 0 {
		return nil, NullPointer
	}
	ch := cgo.Handle(h)
	if _, ok := t.live.Load(ch); !ok {
		t.logger().Warn("ffi: decoder handle not live", log.Fields{"handle": uintptr(h)})
		return nil, Fail
	}
	dec, ok := ch.Value().(*codec.Decoder)
	if !ok {
		return nil, Fail
	}
	return dec, Pass
}

// FreeEncoder releases the Encoder identified by h. A single free of a live
// handle always succeeds (spec.md §8.1 property 5); freeing an already-freed
// or unknown handle returns Fail rather than succeeding again or crashing
// (stricter than the spec requires for double free, but still conformant —
// see SPEC_FULL.md §6.2).
func (t *Table) FreeEncoder(h Handle) Status {
	return t.free(h, true)
}

// FreeDecoder releases the Decoder identified by h, with the same contract
// as FreeEncoder.
func (t *Table) FreeDecoder(h Handle) Status {
	return t.free(h, false)
}

func (t *Table) free(h Handle, wantEncoder bool) Status {
	if h == 0 {
		return NullPointer
	}
	ch := cgo.Handle(h)
	isEncoder, ok := t.encoded.Load(ch)
	if !ok || isEncoder.(bool) != wantEncoder {
		t.logger().Warn("ffi: free of unknown or already-freed handle", log.Fields{"handle": uintptr(h)})
		return Fail
	}
	if _, ok := t.live.LoadAndDelete(ch); !ok {
		return Fail
	}
	t.encoded.Delete(ch)
	ch.Delete()
	return Pass
}
