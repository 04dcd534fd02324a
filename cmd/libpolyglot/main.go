// Command libpolyglot is the cgo-exported C ABI for the Polyglot wire
// format. It is built as a C archive/shared object (`go build -buildmode=
// c-shared` or `c-archive`); its own `main` is never invoked by a C caller,
// which links against the exported `polyglot_*` symbols below.
//
// Every exported symbol's status-out-parameter convention, naming, and
// ownership rules mirror `_examples/original_source/c_bindings/` (the
// `loopholelabs/polyglot` Rust implementation this format was distilled
// from) so that a C caller linking against either implementation sees an
// identical symbol table.
package main

/*
#include <stdint.h>
#include <stdlib.h>

typedef struct polyglot_buffer {
	uint8_t *data;
	uint32_t length;
} polyglot_buffer;
*/
import "C"

import (
	"unsafe"

	"github.com/gopolyglot/polyglot-go/ffi"
	"github.com/gopolyglot/polyglot-go/kind"
)

// table is the single process-wide handle registry. It is constructed with
// the spec-mandated default: a null status pointer aborts the process
// (SPEC_FULL.md §4.10 — this is the one option the cgo-exported symbols
// never deviate from, regardless of what the in-process Go API permits).
var table = ffi.NewTable()

func cStatus(status *C.uint8_t) *ffi.Status {
	if status == nil {
		panic("libpolyglot: status pointer is null")
	}
	var s ffi.Status
	return &s
}

func flushStatus(status *C.uint8_t, s *ffi.Status) {
	if status != nil && s != nil {
		*status = C.uint8_t(*s)
	}
}

func setNullPointer(status *C.uint8_t, s *ffi.Status) {
	if s != nil {
		*s = ffi.NullPointer
	}
	flushStatus(status, s)
}

//export polyglot_new_encoder
func polyglot_new_encoder(status *C.uint8_t) C.uintptr_t {
	st := cStatus(status)
	h := table.NewEncoder()
	flushStatus(status, st)
	return C.uintptr_t(h)
}

//export polyglot_free_encoder
func polyglot_free_encoder(handle C.uintptr_t) {
	table.FreeEncoder(ffi.Handle(handle))
}

//export polyglot_encoder_size
func polyglot_encoder_size(status *C.uint8_t, handle C.uintptr_t) C.uint32_t {
	st := cStatus(status)
	n, _ := table.EncoderSize(ffi.Handle(handle), st)
	flushStatus(status, st)
	return C.uint32_t(n)
}

//export polyglot_encoder_buffer
func polyglot_encoder_buffer(status *C.uint8_t, handle C.uintptr_t, dst *C.uint8_t, dstCap C.uint32_t) {
	st := cStatus(status)
	if dst == nil {
		setNullPointer(status, st)
		return
	}
	dstSlice := unsafe.Slice((*byte)(unsafe.Pointer(dst)), int(dstCap))
	table.EncoderDrain(ffi.Handle(handle), st, dstSlice)
	flushStatus(status, st)
}

//export polyglot_encode_none
func polyglot_encode_none(status *C.uint8_t, handle C.uintptr_t) {
	st := cStatus(status)
	table.EncodeNone(ffi.Handle(handle), st)
	flushStatus(status, st)
}

//export polyglot_encode_array
func polyglot_encode_array(status *C.uint8_t, handle C.uintptr_t, n C.uint32_t, elemKind C.uint8_t) {
	st := cStatus(status)
	table.EncodeArray(ffi.Handle(handle), st, uint32(n), kind.FromByte(byte(elemKind)))
	flushStatus(status, st)
}

//export polyglot_encode_map
func polyglot_encode_map(status *C.uint8_t, handle C.uintptr_t, n C.uint32_t, keyKind, valueKind C.uint8_t) {
	st := cStatus(status)
	table.EncodeMap(ffi.Handle(handle), st, uint32(n), kind.FromByte(byte(keyKind)), kind.FromByte(byte(valueKind)))
	flushStatus(status, st)
}

//export polyglot_encode_bytes
func polyglot_encode_bytes(status *C.uint8_t, handle C.uintptr_t, ptr *C.uint8_t, length C.uint32_t) {
	st := cStatus(status)
	if ptr == nil {
		setNullPointer(status, st)
		return
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), int(length))
	table.EncodeBytes(ffi.Handle(handle), st, b)
	flushStatus(status, st)
}

//export polyglot_encode_string
func polyglot_encode_string(status *C.uint8_t, handle C.uintptr_t, str *C.char) {
	st := cStatus(status)
	if str == nil {
		setNullPointer(status, st)
		return
	}
	table.EncodeString(ffi.Handle(handle), st, C.GoString(str))
	flushStatus(status, st)
}

//export polyglot_encode_error
func polyglot_encode_error(status *C.uint8_t, handle C.uintptr_t, str *C.char) {
	st := cStatus(status)
	if str == nil {
		setNullPointer(status, st)
		return
	}
	table.EncodeError(ffi.Handle(handle), st, C.GoString(str))
	flushStatus(status, st)
}

//export polyglot_encode_bool
func polyglot_encode_bool(status *C.uint8_t, handle C.uintptr_t, v C.uint8_t) {
	st := cStatus(status)
	table.EncodeBool(ffi.Handle(handle), st, v != 0)
	flushStatus(status, st)
}

//export polyglot_encode_u8
func polyglot_encode_u8(status *C.uint8_t, handle C.uintptr_t, v C.uint8_t) {
	st := cStatus(status)
	table.EncodeU8(ffi.Handle(handle), st, uint8(v))
	flushStatus(status, st)
}

//export polyglot_encode_u16
func polyglot_encode_u16(status *C.uint8_t, handle C.uintptr_t, v C.uint16_t) {
	st := cStatus(status)
	table.EncodeU16(ffi.Handle(handle), st, uint16(v))
	flushStatus(status, st)
}

//export polyglot_encode_u32
func polyglot_encode_u32(status *C.uint8_t, handle C.uintptr_t, v C.uint32_t) {
	st := cStatus(status)
	table.EncodeU32(ffi.Handle(handle), st, uint32(v))
	flushStatus(status, st)
}

//export polyglot_encode_u64
func polyglot_encode_u64(status *C.uint8_t, handle C.uintptr_t, v C.uint64_t) {
	st := cStatus(status)
	table.EncodeU64(ffi.Handle(handle), st, uint64(v))
	flushStatus(status, st)
}

//export polyglot_encode_i32
func polyglot_encode_i32(status *C.uint8_t, handle C.uintptr_t, v C.int32_t) {
	st := cStatus(status)
	table.EncodeI32(ffi.Handle(handle), st, int32(v))
	flushStatus(status, st)
}

//export polyglot_encode_i64
func polyglot_encode_i64(status *C.uint8_t, handle C.uintptr_t, v C.int64_t) {
	st := cStatus(status)
	table.EncodeI64(ffi.Handle(handle), st, int64(v))
	flushStatus(status, st)
}

//export polyglot_encode_f32
func polyglot_encode_f32(status *C.uint8_t, handle C.uintptr_t, v C.float) {
	st := cStatus(status)
	table.EncodeF32(ffi.Handle(handle), st, float32(v))
	flushStatus(status, st)
}

//export polyglot_encode_f64
func polyglot_encode_f64(status *C.uint8_t, handle C.uintptr_t, v C.double) {
	st := cStatus(status)
	table.EncodeF64(ffi.Handle(handle), st, float64(v))
	flushStatus(status, st)
}

//export polyglot_new_decoder
func polyglot_new_decoder(status *C.uint8_t, src *C.uint8_t, srcLen C.uint32_t) C.uintptr_t {
	st := cStatus(status)
	if src == nil && srcLen != 0 {
		setNullPointer(status, st)
		return 0
	}
	var b []byte
	if srcLen > 0 {
		b = unsafe.Slice((*byte)(unsafe.Pointer(src)), int(srcLen))
	}
	h := table.NewDecoder(b)
	flushStatus(status, st)
	return C.uintptr_t(h)
}

//export polyglot_free_decoder
func polyglot_free_decoder(handle C.uintptr_t) {
	table.FreeDecoder(ffi.Handle(handle))
}

//export polyglot_decode_none
func polyglot_decode_none(status *C.uint8_t, handle C.uintptr_t) C.uint8_t {
	st := cStatus(status)
	ok, _ := table.DecodeNone(ffi.Handle(handle), st)
	flushStatus(status, st)
	if ok {
		return 1
	}
	return 0
}

//export polyglot_decode_array
func polyglot_decode_array(status *C.uint8_t, handle C.uintptr_t, elemKind C.uint8_t) C.uint32_t {
	st := cStatus(status)
	n, _ := table.DecodeArray(ffi.Handle(handle), st, kind.FromByte(byte(elemKind)))
	flushStatus(status, st)
	return C.uint32_t(n)
}

//export polyglot_decode_map
func polyglot_decode_map(status *C.uint8_t, handle C.uintptr_t, keyKind, valueKind C.uint8_t) C.uint32_t {
	st := cStatus(status)
	n, _ := table.DecodeMap(ffi.Handle(handle), st, kind.FromByte(byte(keyKind)), kind.FromByte(byte(valueKind)))
	flushStatus(status, st)
	return C.uint32_t(n)
}

//export polyglot_decode_bytes
func polyglot_decode_bytes(status *C.uint8_t, handle C.uintptr_t) *C.polyglot_buffer {
	st := cStatus(status)
	b, _ := table.DecodeBytes(ffi.Handle(handle), st)
	flushStatus(status, st)
	if st != nil && *st != ffi.Pass {
		return nil
	}
	buf := (*C.polyglot_buffer)(C.malloc(C.size_t(unsafe.Sizeof(C.polyglot_buffer{}))))
	buf.length = C.uint32_t(b.Length)
	if b.Length == 0 {
		buf.data = nil
		return buf
	}
	buf.data = (*C.uint8_t)(C.CBytes(b.Data))
	return buf
}

//export polyglot_free_decode_bytes
func polyglot_free_decode_bytes(buf *C.polyglot_buffer) {
	if buf == nil {
		return
	}
	if buf.data != nil {
		C.free(unsafe.Pointer(buf.data))
	}
	C.free(unsafe.Pointer(buf))
}

//export polyglot_decode_string
func polyglot_decode_string(status *C.uint8_t, handle C.uintptr_t) *C.char {
	st := cStatus(status)
	s, _ := table.DecodeString(ffi.Handle(handle), st)
	flushStatus(status, st)
	if st != nil && *st != ffi.Pass {
		return nil
	}
	return C.CString(s)
}

//export polyglot_decode_error
func polyglot_decode_error(status *C.uint8_t, handle C.uintptr_t) *C.char {
	st := cStatus(status)
	s, _ := table.DecodeError(ffi.Handle(handle), st)
	flushStatus(status, st)
	if st != nil && *st != ffi.Pass {
		return nil
	}
	return C.CString(s)
}

//export polyglot_free_decode_string
func polyglot_free_decode_string(s *C.char) {
	C.free(unsafe.Pointer(s))
}

//export polyglot_decode_bool
func polyglot_decode_bool(status *C.uint8_t, handle C.uintptr_t) C.uint8_t {
	st := cStatus(status)
	v, _ := table.DecodeBool(ffi.Handle(handle), st)
	flushStatus(status, st)
	if v {
		return 1
	}
	return 0
}

//export polyglot_decode_u8
func polyglot_decode_u8(status *C.uint8_t, handle C.uintptr_t) C.uint8_t {
	st := cStatus(status)
	v, _ := table.DecodeU8(ffi.Handle(handle), st)
	flushStatus(status, st)
	return C.uint8_t(v)
}

//export polyglot_decode_u16
func polyglot_decode_u16(status *C.uint8_t, handle C.uintptr_t) C.uint16_t {
	st := cStatus(status)
	v, _ := table.DecodeU16(ffi.Handle(handle), st)
	flushStatus(status, st)
	return C.uint16_t(v)
}

//export polyglot_decode_u32
func polyglot_decode_u32(status *C.uint8_t, handle C.uintptr_t) C.uint32_t {
	st := cStatus(status)
	v, _ := table.DecodeU32(ffi.Handle(handle), st)
	flushStatus(status, st)
	return C.uint32_t(v)
}

//export polyglot_decode_u64
func polyglot_decode_u64(status *C.uint8_t, handle C.uintptr_t) C.uint64_t {
	st := cStatus(status)
	v, _ := table.DecodeU64(ffi.Handle(handle), st)
	flushStatus(status, st)
	return C.uint64_t(v)
}

//export polyglot_decode_i32
func polyglot_decode_i32(status *C.uint8_t, handle C.uintptr_t) C.int32_t {
	st := cStatus(status)
	v, _ := table.DecodeI32(ffi.Handle(handle), st)
	flushStatus(status, st)
	return C.int32_t(v)
}

//export polyglot_decode_i64
func polyglot_decode_i64(status *C.uint8_t, handle C.uintptr_t) C.int64_t {
	st := cStatus(status)
	v, _ := table.DecodeI64(ffi.Handle(handle), st)
	flushStatus(status, st)
	return C.int64_t(v)
}

//export polyglot_decode_f32
func polyglot_decode_f32(status *C.uint8_t, handle C.uintptr_t) C.float {
	st := cStatus(status)
	v, _ := table.DecodeF32(ffi.Handle(handle), st)
	flushStatus(status, st)
	return C.float(v)
}

//export polyglot_decode_f64
func polyglot_decode_f64(status *C.uint8_t, handle C.uintptr_t) C.double {
	st := cStatus(status)
	v, _ := table.DecodeF64(ffi.Handle(handle), st)
	flushStatus(status, st)
	return C.double(v)
}

func main() {}
