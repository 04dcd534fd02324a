package ffi

import (
	"github.com/gopolyglot/polyglot-go/codec"
	"github.com/gopolyglot/polyglot-go/kind"
)

// DecodeNone reports whether the next value is None, consuming it if so. It
// is the one decode operation whose decode step cannot fail: a tag mismatch
// just yields false, per spec.md §4.4 invariant 4. status reflects only the
// handle lookup: Pass for a live Decoder handle, NullPointer for the null
// handle, Fail for any other handle.
func (t *Table) DecodeNone(h Handle, status *Status) (bool, error) {
	dec, st := t.Decoder(h)
	if err := t.reportStatus(status, st); err != nil {
		return false, err
	}
	if st != Pass {
		return false, nil
	}
	return dec.DecodeNone(), nil
}

func (t *Table) decoder(h Handle, status *Status) (*codec.Decoder, bool, error) {
	dec, st := t.Decoder(h)
	if err := t.reportStatus(status, st); err != nil {
		return nil, false, err
	}
	return dec, st == Pass, nil
}

func decodeInto[T any](t *Table, h Handle, status *Status, op func(*codec.Decoder) (T, error)) (T, error) {
	var zero T
	dec, ok, err := t.decoder(h, status)
	if err != nil || !ok {
		return zero, err
	}
	v, decErr := op(dec)
	if decErr != nil {
		t.reportStatus(status, Fail)
		return zero, nil
	}
	return v, nil
}

// DecodeArray validates an array header with the given element kind and
// returns its length.
func (t *Table) DecodeArray(h Handle, status *Status, elem kind.Kind) (uint32, error) {
	return decodeInto(t, h, status, func(d *codec.Decoder) (uint32, error) { return d.DecodeArray(elem) })
}

// DecodeMap validates a map header with the given key/value kinds and
// returns its length.
func (t *Table) DecodeMap(h Handle, status *Status, keyKind, valueKind kind.Kind) (uint32, error) {
	return decodeInto(t, h, status, func(d *codec.Decoder) (uint32, error) { return d.DecodeMap(keyKind, valueKind) })
}

// DecodeBytes decodes the next value as Bytes into a fresh Buffer owned by
// the caller.
func (t *Table) DecodeBytes(h Handle, status *Status) (Buffer, error) {
	return decodeInto(t, h, status, func(d *codec.Decoder) (Buffer, error) {
		b, err := d.DecodeBytes()
		if err != nil {
			return Buffer{}, err
		}
		return newBuffer(b), nil
	})
}

// DecodeString decodes the next value as String.
func (t *Table) DecodeString(h Handle, status *Status) (string, error) {
	return decodeInto(t, h, status, func(d *codec.Decoder) (string, error) { return d.DecodeString() })
}

// DecodeError decodes the next value as Error.
func (t *Table) DecodeError(h Handle, status *Status) (string, error) {
	return decodeInto(t, h, status, func(d *codec.Decoder) (string, error) { return d.DecodeError() })
}

// DecodeBool decodes the next value as Bool.
func (t *Table) DecodeBool(h Handle, status *Status) (bool, error) {
	return decodeInto(t, h, status, func(d *codec.Decoder) (bool, error) { return d.DecodeBool() })
}

// DecodeU8 decodes the next value as U8.
func (t *Table) DecodeU8(h Handle, status *Status) (uint8, error) {
	return decodeInto(t, h, status, func(d *codec.Decoder) (uint8, error) { return d.DecodeU8() })
}

// DecodeU16 decodes the next value as U16.
func (t *Table) DecodeU16(h Handle, status *Status) (uint16, error) {
	return decodeInto(t, h, status, func(d *codec.Decoder) (uint16, error) { return d.DecodeU16() })
}

// DecodeU32 decodes the next value as U32.
func (t *Table) DecodeU32(h Handle, status *Status) (uint32, error) {
	return decodeInto(t, h, status, func(d *codec.Decoder) (uint32, error) { return d.DecodeU32() })
}

// DecodeU64 decodes the next value as U64.
func (t *Table) DecodeU64(h Handle, status *Status) (uint64, error) {
	return decodeInto(t, h, status, func(d *codec.Decoder) (uint64, error) { return d.DecodeU64() })
}

// DecodeI32 decodes the next value as I32.
func (t *Table) DecodeI32(h Handle, status *Status) (int32, error) {
	return decodeInto(t, h, status, func(d *codec.Decoder) (int32, error) { return d.DecodeI32() })
}

// DecodeI64 decodes the next value as I64.
func (t *Table) DecodeI64(h Handle, status *Status) (int64, error) {
	return decodeInto(t, h, status, func(d *codec.Decoder) (int64, error) { return d.DecodeI64() })
}

// DecodeF32 decodes the next value as F32.
func (t *Table) DecodeF32(h Handle, status *Status) (float32, error) {
	return decodeInto(t, h, status, func(d *codec.Decoder) (float32, error) { return d.DecodeF32() })
}

// DecodeF64 decodes the next value as F64.
func (t *Table) DecodeF64(h Handle, status *Status) (float64, error) {
	return decodeInto(t, h, status, func(d *codec.Decoder) (float64, error) { return d.DecodeF64() })
}
