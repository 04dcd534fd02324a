package codec

import (
	"errors"
	"fmt"
)

// ErrEncodeFail is the single encode-layer error (spec §7 layer 3): a sink
// I/O error. Encoder is backed by an in-memory []byte, so no Encode* method
// ever returns it; the one Encoder method that does is Drain, when dst is
// smaller than the accumulated buffer.
var ErrEncodeFail = errors.New("polyglot: encode failed")

// Per-Kind decode sentinels (spec §7 layer 2: "one variant per Kind").
// errors.Is against one of these tells a caller exactly which decode_<kind>
// call failed, independent of the coarser category below.
var (
	ErrInvalidArray  = errors.New("polyglot: invalid Array")
	ErrInvalidMap    = errors.New("polyglot: invalid Map")
	ErrInvalidBytes  = errors.New("polyglot: invalid Bytes")
	ErrInvalidString = errors.New("polyglot: invalid String")
	ErrInvalidError  = errors.New("polyglot: invalid Error")
	ErrInvalidBool   = errors.New("polyglot: invalid Bool")
	ErrInvalidU8     = errors.New("polyglot: invalid U8")
	ErrInvalidU16    = errors.New("polyglot: invalid U16")
	ErrInvalidU32    = errors.New("polyglot: invalid U32")
	ErrInvalidU64    = errors.New("polyglot: invalid U64")
	ErrInvalidI32    = errors.New("polyglot: invalid I32")
	ErrInvalidI64    = errors.New("polyglot: invalid I64")
	ErrInvalidF32    = errors.New("polyglot: invalid F32")
	ErrInvalidF64    = errors.New("polyglot: invalid F64")
)

// Category sentinels every DecodeError also wraps, so a caller that only
// cares about the failure shape (not which Kind) can match at that
// granularity instead of switching over fourteen concrete sentinels.
var (
	// ErrTagMismatch means the byte at Pos was not the expected Kind's wire code.
	ErrTagMismatch = errors.New("polyglot: tag mismatch")
	// ErrTruncated means the tag matched but the payload ran past the end of
	// the buffer, or a varuint ran past its Kind's maximum byte count.
	ErrTruncated = errors.New("polyglot: truncated payload")
	// ErrMalformedUTF8 means a String or Error payload's bytes were not valid UTF-8.
	ErrMalformedUTF8 = errors.New("polyglot: malformed utf-8")
)

// DecodeError is returned by every decode_<kind> operation on failure. Pos
// is the cursor position of the offending tag byte (see Decoder's "exactly
// one byte consumed on mismatch" contract, spec §4.4).
type DecodeError struct {
	kindErr  error
	category error
	Pos      int
}

func newDecodeError(kindErr, category error, pos int) *DecodeError {
	return &DecodeError{kindErr: kindErr, category: category, Pos: pos}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s at byte %d: %s", e.kindErr, e.Pos, e.category)
}

// Unwrap exposes both the per-Kind sentinel and the category sentinel to
// errors.Is, mirroring the multi-cause Unwrap() []error pattern used for
// structured errors elsewhere in the ecosystem (e.g. errors.Join-style
// aggregation), rather than picking just one to expose.
func (e *DecodeError) Unwrap() []error {
	return []error{e.kindErr, e.category}
}
