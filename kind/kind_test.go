package kind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gopolyglot/polyglot-go/kind"
)

func TestFromByteRoundTrip(t *testing.T) {
	for b := byte(kind.None); b <= byte(kind.Unknown); b++ {
		k := kind.FromByte(b)
		require.Equal(t, b, k.Byte(), "Kind 0x%02X did not round-trip through Byte()", b)
	}
}

func TestFromByteUnknownAboveHighestCode(t *testing.T) {
	for _, b := range []byte{0x11, 0x42, 0xFF} {
		require.Equal(t, kind.Unknown, kind.FromByte(b))
	}
}

func TestStringNamesEveryKind(t *testing.T) {
	for b := byte(kind.None); b <= byte(kind.Unknown); b++ {
		k := kind.Kind(b)
		require.NotContains(t, k.String(), "Kind(0x")
	}
}
