package codec

import (
	"fmt"

	"github.com/gopolyglot/polyglot-go/kind"
)

// KV is one entry of a Map decoded by DecodeAny.
type KV struct {
	Key   any
	Value any
}

// decodeArrayHeaderAny reads an array header without checking the embedded
// element Kind against any caller expectation, returning it instead. It
// exists only to support DecodeAny's generic walk, which by construction
// doesn't know the element Kind ahead of time; the strict, spec-mandated
// DecodeArray remains the only way to decode an array header with
// validation.
func (d *Decoder) decodeArrayHeaderAny() (elem kind.Kind, n uint32, err error) {
	tagPos := d.pos
	if err := d.decodeTag(kind.Array, ErrInvalidArray); err != nil {
		return kind.Unknown, 0, err
	}
	if d.pos >= len(d.buf) {
		return kind.Unknown, 0, newDecodeError(ErrInvalidArray, ErrTruncated, tagPos)
	}
	elem = kind.FromByte(d.buf[d.pos])
	d.pos++
	n, err = d.decodeTaggedU32(ErrInvalidArray)
	return elem, n, err
}

func (d *Decoder) decodeMapHeaderAny() (keyKind, valueKind kind.Kind, n uint32, err error) {
	tagPos := d.pos
	if err := d.decodeTag(kind.Map, ErrInvalidMap); err != nil {
		return kind.Unknown, kind.Unknown, 0, err
	}
	if d.pos+1 >= len(d.buf) {
		return kind.Unknown, kind.Unknown, 0, newDecodeError(ErrInvalidMap, ErrTruncated, tagPos)
	}
	keyKind = kind.FromByte(d.buf[d.pos])
	valueKind = kind.FromByte(d.buf[d.pos+1])
	d.pos += 2
	n, err = d.decodeTaggedU32(ErrInvalidMap)
	return keyKind, valueKind, n, err
}

// decodeScalarAny decodes the single non-composite value k names, boxing it
// as `any`. k must already have been confirmed (via PeekKind) to be one of
// the Kinds handled below; Array, Map, Any, and Unknown are not valid here.
func (d *Decoder) decodeScalarAny(k kind.Kind) (any, error) {
	switch k {
	case kind.None:
		d.DecodeNone()
		return nil, nil
	case kind.Bytes:
		return d.DecodeBytes()
	case kind.String:
		return d.DecodeString()
	case kind.Error:
		return d.DecodeError()
	case kind.Bool:
		return d.DecodeBool()
	case kind.U8:
		return d.DecodeU8()
	case kind.U16:
		return d.DecodeU16()
	case kind.U32:
		return d.DecodeU32()
	case kind.U64:
		return d.DecodeU64()
	case kind.I32:
		return d.DecodeI32()
	case kind.I64:
		return d.DecodeI64()
	case kind.F32:
		return d.DecodeF32()
	case kind.F64:
		return d.DecodeF64()
	default:
		return nil, fmt.Errorf("polyglot: %s is not a scalar kind", k)
	}
}

// DecodeAny decodes whatever value comes next without the caller needing to
// know its Kind in advance, recursing into Array and Map elements. It is a
// supplemental introspection helper (not part of the wire contract's
// strict, statically-typed decode_<kind> family) intended for debugging
// tools such as cmd/polyglotcat; ordinary producer/consumer code that knows its schema
// should keep using the concrete Decode* methods, which alone enforce Kind
// agreement between encoder and decoder.
//
// Arrays decode to []any; maps decode to []KV (not map[any]any, since Go
// map keys must be comparable and a decoded key's dynamic type isn't
// statically known to satisfy that here).
func (d *Decoder) DecodeAny() (kind.Kind, any, error) {
	k, ok := d.PeekKind()
	if !ok {
		return kind.Unknown, nil, newDecodeError(ErrInvalidArray, ErrTruncated, d.pos)
	}

	switch k {
	case kind.Array:
		elem, n, err := d.decodeArrayHeaderAny()
		if err != nil {
			return kind.Array, nil, err
		}
		out := make([]any, 0, n)
		for i := uint32(0); i < n; i++ {
			_, v, err := d.decodeKnownAny(elem)
			if err != nil {
				return kind.Array, nil, err
			}
			out = append(out, v)
		}
		return kind.Array, out, nil

	case kind.Map:
		keyKind, valueKind, n, err := d.decodeMapHeaderAny()
		if err != nil {
			return kind.Map, nil, err
		}
		out := make([]KV, 0, n)
		for i := uint32(0); i < n; i++ {
			_, key, err := d.decodeKnownAny(keyKind)
			if err != nil {
				return kind.Map, nil, err
			}
			_, value, err := d.decodeKnownAny(valueKind)
			if err != nil {
				return kind.Map, nil, err
			}
			out = append(out, KV{Key: key, Value: value})
		}
		return kind.Map, out, nil

	default:
		v, err := d.decodeScalarAny(k)
		return k, v, err
	}
}

// decodeKnownAny decodes a single element whose Kind is already known from
// an enclosing array/map header, recursing for nested Array/Map elements.
func (d *Decoder) decodeKnownAny(k kind.Kind) (kind.Kind, any, error) {
	switch k {
	case kind.Array, kind.Map:
		return d.DecodeAny()
	default:
		v, err := d.decodeScalarAny(k)
		return k, v, err
	}
}
