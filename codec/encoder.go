// Package codec implements the Polyglot wire format: a closed set of
// tag-prefixed scalar, string, blob, error, array, and map encodings over a
// growable, in-memory byte sink (Encoder) and an immutable byte source with
// a read cursor (Decoder). See kind.Kind for the wire tag enumeration.
package codec

import (
	"math"

	"github.com/gopolyglot/polyglot-go/kind"
	"github.com/gopolyglot/polyglot-go/log"
)

// Encoder exclusively owns a growable byte sink and an implicit append
// cursor at its end (spec §3.2). Apart from an optional observational logger,
// which no encode operation calls, it has no other state. It is not safe for
// concurrent use by multiple goroutines; distinct Encoders are fully
// independent.
type Encoder struct {
	buf    []byte
	logger log.Logger
}

// NewEncoder returns an empty Encoder ready for append-only encode calls.
func NewEncoder() *Encoder {
	return &Encoder{logger: log.NopLogger{}}
}

// SetLogger attaches an observational logger. Passing nil restores the
// no-op default. No encode operation ever changes behavior based on the
// attached logger (spec design note: no hidden state).
func (e *Encoder) SetLogger(l log.Logger) {
	e.logger = log.OrNop(l)
}

// Size returns the current length of the accumulated buffer.
func (e *Encoder) Size() int {
	return len(e.buf)
}

// Len is a synonym for Size, kept for readers coming from Go's other
// buffer-like types (bytes.Buffer.Len, etc).
func (e *Encoder) Len() int {
	return e.Size()
}

// Reset clears the sink back to empty without discarding the underlying
// array, so a caller that wants to reuse one Encoder handle across many
// messages doesn't pay a fresh allocation each time.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the accumulated buffer. The returned slice aliases the
// Encoder's internal storage; callers that need an independent copy should
// use Drain instead.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Drain copies the full accumulated buffer into dst. It fails, without
// mutating dst, if len(dst) is smaller than Size().
func (e *Encoder) Drain(dst []byte) error {
	if len(dst) < len(e.buf) {
		return ErrEncodeFail
	}
	copy(dst, e.buf)
	return nil
}

func (e *Encoder) appendTaggedU32(v uint32) {
	e.buf = append(e.buf, kind.U32.Byte())
	e.buf = appendVaruint(e.buf, uint64(v))
}

// EncodeNone appends the None tag: `0x00`.
func (e *Encoder) EncodeNone() error {
	e.buf = append(e.buf, kind.None.Byte())
	return nil
}

// EncodeArray appends an array header: the Array tag, the element Kind's
// wire code, then n encoded as a fully-tagged U32. The caller is
// responsible for subsequently encoding n elements of elem.
func (e *Encoder) EncodeArray(n uint32, elem kind.Kind) error {
	e.buf = append(e.buf, kind.Array.Byte(), elem.Byte())
	e.appendTaggedU32(n)
	return nil
}

// EncodeMap appends a map header: the Map tag, the key Kind's wire code,
// the value Kind's wire code, then n encoded as a fully-tagged U32. The
// caller is responsible for subsequently encoding n (key, value) pairs.
func (e *Encoder) EncodeMap(n uint32, keyKind, valueKind kind.Kind) error {
	e.buf = append(e.buf, kind.Map.Byte(), keyKind.Byte(), valueKind.Byte())
	e.appendTaggedU32(n)
	return nil
}

// EncodeBytes appends the Bytes tag, a fully-tagged U32 length, then the
// raw bytes of b.
func (e *Encoder) EncodeBytes(b []byte) error {
	e.buf = append(e.buf, kind.Bytes.Byte())
	e.appendTaggedU32(uint32(len(b)))
	e.buf = append(e.buf, b...)
	return nil
}

// EncodeString appends the String tag, a fully-tagged U32 byte-length, then
// the UTF-8 bytes of s.
func (e *Encoder) EncodeString(s string) error {
	e.buf = append(e.buf, kind.String.Byte())
	e.appendTaggedU32(uint32(len(s)))
	e.buf = append(e.buf, s...)
	return nil
}

// EncodeError appends the Error tag followed by msg encoded as a String
// (including that String's own tag byte), so a decoder that merely wants
// the text can fall through to decode_string after consuming the Error
// tag.
func (e *Encoder) EncodeError(msg string) error {
	e.buf = append(e.buf, kind.Error.Byte())
	return e.EncodeString(msg)
}

// EncodeBool appends the Bool tag and a single 0x00/0x01 byte.
func (e *Encoder) EncodeBool(v bool) error {
	b := byte(0x00)
	if v {
		b = 0x01
	}
	e.buf = append(e.buf, kind.Bool.Byte(), b)
	return nil
}

// EncodeU8 appends the U8 tag and the raw byte.
func (e *Encoder) EncodeU8(v uint8) error {
	e.buf = append(e.buf, kind.U8.Byte(), v)
	return nil
}

// EncodeU16 appends the U16 tag and v as a varuint.
func (e *Encoder) EncodeU16(v uint16) error {
	e.buf = append(e.buf, kind.U16.Byte())
	e.buf = appendVaruint(e.buf, uint64(v))
	return nil
}

// EncodeU32 appends the U32 tag and v as a varuint.
func (e *Encoder) EncodeU32(v uint32) error {
	e.buf = append(e.buf, kind.U32.Byte())
	e.buf = appendVaruint(e.buf, uint64(v))
	return nil
}

// EncodeU64 appends the U64 tag and v as a varuint.
func (e *Encoder) EncodeU64(v uint64) error {
	e.buf = append(e.buf, kind.U64.Byte())
	e.buf = appendVaruint(e.buf, v)
	return nil
}

// EncodeI32 appends the I32 tag and v as a zig-zag varuint.
func (e *Encoder) EncodeI32(v int32) error {
	e.buf = append(e.buf, kind.I32.Byte())
	e.buf = appendVaruint(e.buf, zigZagEncode32(v))
	return nil
}

// EncodeI64 appends the I64 tag and v as a zig-zag varuint.
func (e *Encoder) EncodeI64(v int64) error {
	e.buf = append(e.buf, kind.I64.Byte())
	e.buf = appendVaruint(e.buf, zigZagEncode64(v))
	return nil
}

// EncodeF32 appends the F32 tag and the 4 big-endian bytes of v's IEEE-754
// binary32 bit pattern.
func (e *Encoder) EncodeF32(v float32) error {
	bits := math.Float32bits(v)
	e.buf = append(e.buf, kind.F32.Byte(),
		byte(bits>>24), byte(bits>>16), byte(bits>>8), byte(bits))
	return nil
}

// EncodeF64 appends the F64 tag and the 8 big-endian bytes of v's IEEE-754
// binary64 bit pattern.
func (e *Encoder) EncodeF64(v float64) error {
	bits := math.Float64bits(v)
	e.buf = append(e.buf, kind.F64.Byte(),
		byte(bits>>56), byte(bits>>48), byte(bits>>40), byte(bits>>32),
		byte(bits>>24), byte(bits>>16), byte(bits>>8), byte(bits))
	return nil
}
