package codec

import (
	"math"
	"unicode/utf8"

	"github.com/gopolyglot/polyglot-go/kind"
	"github.com/gopolyglot/polyglot-go/log"
)

// Decoder owns a private copy of the input bytes and a read position,
// initially zero (spec §3.3). It is not safe for concurrent use by multiple
// goroutines; distinct Decoders are fully independent.
type Decoder struct {
	buf    []byte
	pos    int
	logger log.Logger
}

// NewDecoder copies src and returns a Decoder positioned at the start of
// the copy. The caller retains ownership of src; Polyglot never aliases it.
func NewDecoder(src []byte) *Decoder {
	cp := make([]byte, len(src))
	copy(cp, src)
	return &Decoder{buf: cp, logger: log.NopLogger{}}
}

// SetLogger attaches an observational logger. Passing nil restores the
// no-op default.
func (d *Decoder) SetLogger(l log.Logger) {
	d.logger = log.OrNop(l)
}

// Position returns the current read cursor, in bytes from the start of the
// (copied) input.
func (d *Decoder) Position() int {
	return d.pos
}

// Remaining returns the number of unconsumed bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

// PeekKind reports the Kind of the next unconsumed byte without advancing
// the cursor. ok is false at end of stream.
func (d *Decoder) PeekKind() (k kind.Kind, ok bool) {
	if d.pos >= len(d.buf) {
		return kind.Unknown, false
	}
	return kind.FromByte(d.buf[d.pos]), true
}

// decodeTag consumes the tag byte and checks it against expected. On a
// mismatch it still consumes exactly that one byte (spec §4.4's
// recommended, and here adopted, contract for the open question on cursor
// position after a failed decode); at end of stream there is no byte to
// consume and the cursor is unchanged.
func (d *Decoder) decodeTag(expected kind.Kind, kindErr error) error {
	if d.pos >= len(d.buf) {
		return newDecodeError(kindErr, ErrTruncated, d.pos)
	}
	got := d.buf[d.pos]
	pos := d.pos
	d.pos++
	if kind.Kind(got) != expected {
		d.logger.Debug("codec: tag mismatch", log.Fields{
			"expected": expected.String(),
			"got":      got,
			"position": pos,
		})
		return newDecodeError(kindErr, ErrTagMismatch, pos)
	}
	return nil
}

// decodeVaruint consumes expected's tag, then a varuint payload of at most
// maxBytes bytes.
func (d *Decoder) decodeVaruint(expected kind.Kind, kindErr error, maxBytes int) (uint64, error) {
	tagPos := d.pos
	if err := d.decodeTag(expected, kindErr); err != nil {
		return 0, err
	}
	v, n, ok := readVaruint(d.buf[d.pos:], maxBytes)
	if !ok {
		return 0, newDecodeError(kindErr, ErrTruncated, tagPos)
	}
	d.pos += n
	return v, nil
}

// decodeTaggedU32 decodes a fully-tagged U32 (the `0x0A` tag plus a
// varuint), the encoding used for every composite/variable-length header's
// length field.
func (d *Decoder) decodeTaggedU32(kindErr error) (uint32, error) {
	v, err := d.decodeVaruint(kind.U32, kindErr, maxVaruintBytes32)
	return uint32(v), err
}

// DecodeNone returns true iff the next byte is the None tag, consuming it.
// On any other next byte (including end of stream) it returns false without
// consuming anything — the only decode operation that doesn't raise on
// mismatch, since it exists as a presence probe (spec §4.4, invariant 4).
func (d *Decoder) DecodeNone() bool {
	if d.pos >= len(d.buf) || kind.Kind(d.buf[d.pos]) != kind.None {
		return false
	}
	d.pos++
	return true
}

// DecodeArray validates the Array tag and that the embedded element Kind
// matches expectedElem, then returns the decoded length. The caller decodes
// each element itself.
func (d *Decoder) DecodeArray(expectedElem kind.Kind) (uint32, error) {
	tagPos := d.pos
	if err := d.decodeTag(kind.Array, ErrInvalidArray); err != nil {
		return 0, err
	}
	if d.pos >= len(d.buf) {
		return 0, newDecodeError(ErrInvalidArray, ErrTruncated, tagPos)
	}
	if kind.Kind(d.buf[d.pos]) != expectedElem {
		return 0, newDecodeError(ErrInvalidArray, ErrTagMismatch, tagPos)
	}
	d.pos++
	return d.decodeTaggedU32(ErrInvalidArray)
}

// DecodeMap validates the Map tag and both embedded Kinds, then returns the
// decoded length. The caller decodes each (key, value) pair itself.
func (d *Decoder) DecodeMap(expectedKey, expectedValue kind.Kind) (uint32, error) {
	tagPos := d.pos
	if err := d.decodeTag(kind.Map, ErrInvalidMap); err != nil {
		return 0, err
	}
	if d.pos+1 >= len(d.buf) {
		return 0, newDecodeError(ErrInvalidMap, ErrTruncated, tagPos)
	}
	if kind.Kind(d.buf[d.pos]) != expectedKey || kind.Kind(d.buf[d.pos+1]) != expectedValue {
		return 0, newDecodeError(ErrInvalidMap, ErrTagMismatch, tagPos)
	}
	d.pos += 2
	return d.decodeTaggedU32(ErrInvalidMap)
}

// DecodeBytes validates the Bytes tag, decodes its length header, then
// copies that many bytes out of the buffer (the returned slice does not
// alias the Decoder's internal storage).
func (d *Decoder) DecodeBytes() ([]byte, error) {
	tagPos := d.pos
	if err := d.decodeTag(kind.Bytes, ErrInvalidBytes); err != nil {
		return nil, err
	}
	n, err := d.decodeTaggedU32(ErrInvalidBytes)
	if err != nil {
		return nil, err
	}
	if int(n) > d.Remaining() {
		return nil, newDecodeError(ErrInvalidBytes, ErrTruncated, tagPos)
	}
	out := make([]byte, n)
	copy(out, d.buf[d.pos:d.pos+int(n)])
	d.pos += int(n)
	return out, nil
}

// DecodeString validates the String tag, decodes its length header, then
// returns the payload as a string. It fails with ErrMalformedUTF8 if the
// payload is not valid UTF-8.
func (d *Decoder) DecodeString() (string, error) {
	tagPos := d.pos
	if err := d.decodeTag(kind.String, ErrInvalidString); err != nil {
		return "", err
	}
	n, err := d.decodeTaggedU32(ErrInvalidString)
	if err != nil {
		return "", err
	}
	if int(n) > d.Remaining() {
		return "", newDecodeError(ErrInvalidString, ErrTruncated, tagPos)
	}
	raw := d.buf[d.pos : d.pos+int(n)]
	if !utf8.Valid(raw) {
		return "", newDecodeError(ErrInvalidString, ErrMalformedUTF8, tagPos)
	}
	s := string(raw)
	d.pos += int(n)
	return s, nil
}

// DecodeError validates the Error tag, then recurses into DecodeString for
// the nested message payload.
func (d *Decoder) DecodeError() (string, error) {
	tagPos := d.pos
	if err := d.decodeTag(kind.Error, ErrInvalidError); err != nil {
		return "", err
	}
	msg, err := d.DecodeString()
	if err != nil {
		return "", newDecodeError(ErrInvalidError, errUnwrapCategory(err), tagPos)
	}
	return msg, nil
}

// errUnwrapCategory recovers the category sentinel from a nested
// DecodeError, so DecodeError can report e.g. ErrMalformedUTF8 instead of
// always collapsing to ErrTagMismatch when its nested decode_string fails
// for a more specific reason.
func errUnwrapCategory(err error) error {
	if de, ok := err.(*DecodeError); ok {
		return de.category
	}
	return ErrTagMismatch
}

// DecodeBool validates the Bool tag and decodes a single byte: any nonzero
// byte is true.
func (d *Decoder) DecodeBool() (bool, error) {
	tagPos := d.pos
	if err := d.decodeTag(kind.Bool, ErrInvalidBool); err != nil {
		return false, err
	}
	if d.pos >= len(d.buf) {
		return false, newDecodeError(ErrInvalidBool, ErrTruncated, tagPos)
	}
	v := d.buf[d.pos] != 0
	d.pos++
	return v, nil
}

// DecodeU8 validates the U8 tag and decodes a single raw byte.
func (d *Decoder) DecodeU8() (uint8, error) {
	tagPos := d.pos
	if err := d.decodeTag(kind.U8, ErrInvalidU8); err != nil {
		return 0, err
	}
	if d.pos >= len(d.buf) {
		return 0, newDecodeError(ErrInvalidU8, ErrTruncated, tagPos)
	}
	v := d.buf[d.pos]
	d.pos++
	return v, nil
}

// DecodeU16 validates the U16 tag and decodes a varuint.
func (d *Decoder) DecodeU16() (uint16, error) {
	v, err := d.decodeVaruint(kind.U16, ErrInvalidU16, maxVaruintBytes32)
	return uint16(v), err
}

// DecodeU32 validates the U32 tag and decodes a varuint.
func (d *Decoder) DecodeU32() (uint32, error) {
	v, err := d.decodeVaruint(kind.U32, ErrInvalidU32, maxVaruintBytes32)
	return uint32(v), err
}

// DecodeU64 validates the U64 tag and decodes a varuint.
func (d *Decoder) DecodeU64() (uint64, error) {
	return d.decodeVaruint(kind.U64, ErrInvalidU64, maxVaruintBytes64)
}

// DecodeI32 validates the I32 tag and decodes a zig-zag varuint.
func (d *Decoder) DecodeI32() (int32, error) {
	v, err := d.decodeVaruint(kind.I32, ErrInvalidI32, maxVaruintBytes32)
	if err != nil {
		return 0, err
	}
	return zigZagDecode32(v), nil
}

// DecodeI64 validates the I64 tag and decodes a zig-zag varuint.
func (d *Decoder) DecodeI64() (int64, error) {
	v, err := d.decodeVaruint(kind.I64, ErrInvalidI64, maxVaruintBytes64)
	if err != nil {
		return 0, err
	}
	return zigZagDecode64(v), nil
}

// DecodeF32 validates the F32 tag and decodes 4 big-endian bytes as an
// IEEE-754 binary32.
func (d *Decoder) DecodeF32() (float32, error) {
	tagPos := d.pos
	if err := d.decodeTag(kind.F32, ErrInvalidF32); err != nil {
		return 0, err
	}
	if d.Remaining() < 4 {
		return 0, newDecodeError(ErrInvalidF32, ErrTruncated, tagPos)
	}
	b := d.buf[d.pos : d.pos+4]
	bits := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	d.pos += 4
	return math.Float32frombits(bits), nil
}

// DecodeF64 validates the F64 tag and decodes 8 big-endian bytes as an
// IEEE-754 binary64.
func (d *Decoder) DecodeF64() (float64, error) {
	tagPos := d.pos
	if err := d.decodeTag(kind.F64, ErrInvalidF64); err != nil {
		return 0, err
	}
	if d.Remaining() < 8 {
		return 0, newDecodeError(ErrInvalidF64, ErrTruncated, tagPos)
	}
	b := d.buf[d.pos : d.pos+8]
	bits := uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
	d.pos += 8
	return math.Float64frombits(bits), nil
}
