// Package kind defines the closed set of wire type tags shared by the
// Polyglot encoder and decoder. A Kind is a single byte that prefixes every
// value on the wire; the mapping between Kind and byte is stable and never
// renumbered (new kinds may only be appended).
package kind

import "fmt"

// Kind is a single-byte wire type tag.
type Kind uint8

// The closed enumeration of wire kinds. Values are the wire codes
// themselves, so Kind(b) is already the decode of byte b for any b <= Unknown.
const (
	None    Kind = 0x00
	Array   Kind = 0x01
	Map     Kind = 0x02
	Any     Kind = 0x03 // reserved; never emitted by a primitive encode operation
	Bytes   Kind = 0x04
	String  Kind = 0x05
	Error   Kind = 0x06
	Bool    Kind = 0x07
	U8      Kind = 0x08
	U16     Kind = 0x09
	U32     Kind = 0x0A
	U64     Kind = 0x0B
	I32     Kind = 0x0C
	I64     Kind = 0x0D
	F32     Kind = 0x0E
	F64     Kind = 0x0F
	Unknown Kind = 0x10 // sentinel for decode error paths; never emitted
)

// FromByte maps a wire byte to its Kind. Any byte greater than the highest
// assigned wire code maps to Unknown, never to a successful decode.
func FromByte(b byte) Kind {
	if b > byte(Unknown) {
		return Unknown
	}
	return Kind(b)
}

// Byte returns the wire code for k. It is the total inverse of FromByte for
// every Kind other than Unknown, which has no canonical wire code of its own
// (it is only ever produced by FromByte, never emitted by an encoder).
func (k Kind) Byte() byte {
	return byte(k)
}

var names = [...]string{
	None: "None", Array: "Array", Map: "Map", Any: "Any", Bytes: "Bytes",
	String: "String", Error: "Error", Bool: "Bool", U8: "U8", U16: "U16",
	U32: "U32", U64: "U64", I32: "I32", I64: "I64", F32: "F32", F64: "F64",
	Unknown: "Unknown",
}

// String returns a human-readable name, used in error messages and log
// fields. It never affects wire bytes.
func (k Kind) String() string {
	if int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("Kind(0x%02X)", byte(k))
}
