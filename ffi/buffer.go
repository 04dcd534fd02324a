package ffi

// Buffer is the FFI-owned byte span spec.md §6.2 describes: a pointer and a
// length, with the caller responsible for an explicit free call. In this
// pure-Go layer Data is a Go []byte; cmd/libpolyglot's cgo boundary is the
// only place a Buffer's bytes are copied into C.malloc'd memory and handed
// out as a two-field C struct (*C.uint8_t, C.uint32_t), matching spec.md
// §6.2's two-field description and the layout of the teacher-adjacent
// original Rust `Buffer { data: *mut u8, length: u32 }`.
type Buffer struct {
	Data   []byte
	Length uint32
}

func newBuffer(b []byte) Buffer {
	return Buffer{Data: b, Length: uint32(len(b))}
}
