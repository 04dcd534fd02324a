package ffi

import (
	"github.com/gopolyglot/polyglot-go/codec"
	"github.com/gopolyglot/polyglot-go/kind"
)

// EncoderSize reports the current size, in bytes, of the Encoder identified
// by h.
func (t *Table) EncoderSize(h Handle, status *Status) (uint32, error) {
	enc, st := t.Encoder(h)
	if err := t.reportStatus(status, st); err != nil {
		return 0, err
	}
	if st != Pass {
		return 0, nil
	}
	return uint32(enc.Size()), nil
}

// EncoderBuffer copies the Encoder's accumulated bytes into a fresh Buffer
// owned by the caller. cmd/libpolyglot does not export this operation; its
// polyglot_encoder_buffer copies into a caller-supplied buffer through
// EncoderDrain instead.
func (t *Table) EncoderBuffer(h Handle, status *Status) (Buffer, error) {
	enc, st := t.Encoder(h)
	if err := t.reportStatus(status, st); err != nil {
		return Buffer{}, err
	}
	if st != Pass {
		return Buffer{}, nil
	}
	out := make([]byte, enc.Size())
	copy(out, enc.Bytes())
	return newBuffer(out), nil
}

// EncoderDrain copies the Encoder's accumulated bytes into dst, matching
// spec.md §6.2's `encoder_buffer(status*, Encoder*, dst*, dst_cap)`: Fail if
// dst is smaller than the Encoder's current size.
func (t *Table) EncoderDrain(h Handle, status *Status, dst []byte) error {
	enc, st := t.Encoder(h)
	if err := t.reportStatus(status, st); err != nil {
		return err
	}
	if st != Pass {
		return nil
	}
	if err := enc.Drain(dst); err != nil {
		t.reportStatus(status, Fail)
	}
	return nil
}

func (t *Table) encode(h Handle, status *Status, op func(enc *codec.Encoder) error) error {
	enc, st := t.Encoder(h)
	if err := t.reportStatus(status, st); err != nil {
		return err
	}
	if st != Pass {
		return nil
	}
	if err := op(enc); err != nil {
		t.reportStatus(status, Fail)
	}
	return nil
}

// EncodeNone encodes the None value into h's Encoder.
func (t *Table) EncodeNone(h Handle, status *Status) error {
	return t.encode(h, status, func(e *codec.Encoder) error { return e.EncodeNone() })
}

// EncodeArray writes an array header of length n and element kind elem.
func (t *Table) EncodeArray(h Handle, status *Status, n uint32, elem kind.Kind) error {
	return t.encode(h, status, func(e *codec.Encoder) error { return e.EncodeArray(n, elem) })
}

// EncodeMap writes a map header of length n and key/value kinds.
func (t *Table) EncodeMap(h Handle, status *Status, n uint32, keyKind, valueKind kind.Kind) error {
	return t.encode(h, status, func(e *codec.Encoder) error { return e.EncodeMap(n, keyKind, valueKind) })
}

// EncodeBytes encodes v as a Bytes value.
func (t *Table) EncodeBytes(h Handle, status *Status, v []byte) error {
	return t.encode(h, status, func(e *codec.Encoder) error { return e.EncodeBytes(v) })
}

// EncodeString encodes v as a String value.
func (t *Table) EncodeString(h Handle, status *Status, v string) error {
	return t.encode(h, status, func(e *codec.Encoder) error { return e.EncodeString(v) })
}

// EncodeError encodes v as an Error value.
func (t *Table) EncodeError(h Handle, status *Status, v string) error {
	return t.encode(h, status, func(e *codec.Encoder) error { return e.EncodeError(v) })
}

// EncodeBool encodes v as a Bool value.
func (t *Table) EncodeBool(h Handle, status *Status, v bool) error {
	return t.encode(h, status, func(e *codec.Encoder) error { return e.EncodeBool(v) })
}

// EncodeU8 encodes v as a U8 value.
func (t *Table) EncodeU8(h Handle, status *Status, v uint8) error {
	return t.encode(h, status, func(e *codec.Encoder) error { return e.EncodeU8(v) })
}

// EncodeU16 encodes v as a U16 value.
func (t *Table) EncodeU16(h Handle, status *Status, v uint16) error {
	return t.encode(h, status, func(e *codec.Encoder) error { return e.EncodeU16(v) })
}

// EncodeU32 encodes v as a U32 value.
func (t *Table) EncodeU32(h Handle, status *Status, v uint32) error {
	return t.encode(h, status, func(e *codec.Encoder) error { return e.EncodeU32(v) })
}

// EncodeU64 encodes v as a U64 value.
func (t *Table) EncodeU64(h Handle, status *Status, v uint64) error {
	return t.encode(h, status, func(e *codec.Encoder) error { return e.EncodeU64(v) })
}

// EncodeI32 encodes v as an I32 value.
func (t *Table) EncodeI32(h Handle, status *Status, v int32) error {
	return t.encode(h, status, func(e *codec.Encoder) error { return e.EncodeI32(v) })
}

// EncodeI64 encodes v as an I64 value.
func (t *Table) EncodeI64(h Handle, status *Status, v int64) error {
	return t.encode(h, status, func(e *codec.Encoder) error { return e.EncodeI64(v) })
}

// EncodeF32 encodes v as an F32 value.
func (t *Table) EncodeF32(h Handle, status *Status, v float32) error {
	return t.encode(h, status, func(e *codec.Encoder) error { return e.EncodeF32(v) })
}

// EncodeF64 encodes v as an F64 value.
func (t *Table) EncodeF64(h Handle, status *Status, v float64) error {
	return t.encode(h, status, func(e *codec.Encoder) error { return e.EncodeF64(v) })
}
