package codec

// Unsigned varuint: 7-bit little-endian groups, high bit set while more
// bytes remain. Identical to the widely-deployed "LEB128 unsigned"
// convention (spec §4.2).

// Per spec §4.2, the maximum byte count a varuint may occupy is pinned per
// Kind rather than derived from the value's own bit width: U16 shares U32's
// 5-byte ceiling (ceil(32/7)) rather than its own ceil(16/7)=3, and U64/I64
// use ceil(64/7)=10.
const (
	maxVaruintBytes32 = 5
	maxVaruintBytes64 = 10
)

// appendVaruint appends the varuint encoding of v to buf and returns the
// extended slice. A value of 0 emits a single 0x00 byte.
func appendVaruint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// readVaruint decodes a varuint starting at b[0], consuming at most
// maxBytes bytes. It returns the decoded value and the number of bytes
// consumed. ok is false if b ends before a terminating byte is found, or if
// decoding would need more than maxBytes bytes (spec invariant 3 and §4.2).
func readVaruint(b []byte, maxBytes int) (v uint64, n int, ok bool) {
	for i := 0; i < maxBytes && i < len(b); i++ {
		c := b[i]
		v |= uint64(c&0x7F) << uint(7*i)
		if c < 0x80 {
			return v, i + 1, true
		}
	}
	return 0, 0, false
}

// zigZagEncode32 maps a signed 32-bit value to an unsigned one so that
// small-magnitude values (positive or negative) produce small varuints.
func zigZagEncode32(n int32) uint64 {
	return uint64(uint32((n << 1) ^ (n >> 31)))
}

func zigZagDecode32(u uint64) int32 {
	v := uint32(u)
	return int32(v>>1) ^ -(int32(v & 1))
}

func zigZagEncode64(n int64) uint64 {
	return uint64((n << 1) ^ (n >> 63))
}

func zigZagDecode64(u uint64) int64 {
	return int64(u>>1) ^ -(int64(u & 1))
}
