package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gopolyglot/polyglot-go/codec"
	"github.com/gopolyglot/polyglot-go/kind"
)

func TestEncodeNone(t *testing.T) {
	e := codec.NewEncoder()
	require.NoError(t, e.EncodeNone())
	require.Equal(t, []byte{0x00}, e.Bytes())
	require.Equal(t, 1, e.Size())
}

func TestEncodeArray(t *testing.T) {
	e := codec.NewEncoder()
	require.NoError(t, e.EncodeArray(32, kind.String))
	require.Equal(t, []byte{0x01, 0x05, 0x0A, 0x20}, e.Bytes())
	require.Equal(t, 4, e.Size())
}

func TestEncodeMap(t *testing.T) {
	e := codec.NewEncoder()
	require.NoError(t, e.EncodeMap(32, kind.String, kind.U32))
	require.Equal(t, []byte{0x02, 0x05, 0x0A, 0x0A, 0x20}, e.Bytes())
	require.Equal(t, 5, e.Size())
}

func TestEncodeBytes(t *testing.T) {
	e := codec.NewEncoder()
	v := []byte("Test String")
	require.NoError(t, e.EncodeBytes(v))
	require.Equal(t, 1+1+1+len(v), e.Size())
	require.Equal(t, v, e.Bytes()[3:])
}

func TestEncodeStringHeaderOfEmptyStringIsThreeBytes(t *testing.T) {
	e := codec.NewEncoder()
	require.NoError(t, e.EncodeString(""))
	require.Equal(t, 3, e.Size())
	require.Equal(t, []byte{0x05, 0x0A, 0x00}, e.Bytes())
}

func TestEncodeString(t *testing.T) {
	e := codec.NewEncoder()
	v := "Test String"
	require.NoError(t, e.EncodeString(v))
	require.Equal(t, 1+1+1+len(v), e.Size())
	require.Equal(t, v, string(e.Bytes()[3:]))
}

func TestEncodeError(t *testing.T) {
	e := codec.NewEncoder()
	v := "Test Error"
	require.NoError(t, e.EncodeError(v))
	require.Equal(t, 1+1+1+1+len(v), e.Size())
	require.Equal(t, v, string(e.Bytes()[4:]))
}

func TestEncodeBool(t *testing.T) {
	e := codec.NewEncoder()
	require.NoError(t, e.EncodeBool(true))
	require.Equal(t, 2, e.Size())
	require.Equal(t, byte(0x01), e.Bytes()[1])
}

func TestEncodeU8(t *testing.T) {
	e := codec.NewEncoder()
	require.NoError(t, e.EncodeU8(32))
	require.Equal(t, byte(32), e.Bytes()[1])
}

func TestEncodeU16(t *testing.T) {
	e := codec.NewEncoder()
	require.NoError(t, e.EncodeU16(1024))
	require.Equal(t, []byte{0x80, 0x08}, e.Bytes()[1:])
}

func TestEncodeU32(t *testing.T) {
	e := codec.NewEncoder()
	require.NoError(t, e.EncodeU32(4294967290))
	require.Equal(t, []byte{0xFA, 0xFF, 0xFF, 0xFF, 0x0F}, e.Bytes()[1:])
}

func TestEncodeU64(t *testing.T) {
	e := codec.NewEncoder()
	require.NoError(t, e.EncodeU64(18446744073709551610))
	require.Equal(t, []byte{0xFA, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}, e.Bytes()[1:])
}

func TestEncodeI32(t *testing.T) {
	e := codec.NewEncoder()
	require.NoError(t, e.EncodeI32(-2147483648))
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}, e.Bytes()[1:])
}

func TestEncodeI64(t *testing.T) {
	e := codec.NewEncoder()
	require.NoError(t, e.EncodeI64(-9223372036854775808))
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}, e.Bytes()[1:])
}

func TestEncodeF32(t *testing.T) {
	e := codec.NewEncoder()
	require.NoError(t, e.EncodeF32(-214648.34432))
	require.Equal(t, 5, e.Size())
	require.Equal(t, []byte{0xC8, 0x51, 0x9E, 0x16}, e.Bytes()[1:])
}

func TestEncodeF64(t *testing.T) {
	e := codec.NewEncoder()
	require.NoError(t, e.EncodeF64(-922337203685.2345))
	require.Equal(t, 9, e.Size())
	require.Equal(t, []byte{0xC2, 0x6A, 0xD7, 0xF2, 0x9A, 0xBC, 0xA7, 0x81}, e.Bytes()[1:])
}

func TestDrainFailsWithoutMutationWhenDstTooSmall(t *testing.T) {
	e := codec.NewEncoder()
	require.NoError(t, e.EncodeString("hello"))

	dst := make([]byte, 2)
	dst[0], dst[1] = 0xAA, 0xBB
	require.Error(t, e.Drain(dst))
	require.Equal(t, []byte{0xAA, 0xBB}, dst)

	dst = make([]byte, e.Size())
	require.NoError(t, e.Drain(dst))
	require.Equal(t, e.Bytes(), dst)
}

func TestResetClearsBuffer(t *testing.T) {
	e := codec.NewEncoder()
	require.NoError(t, e.EncodeU8(1))
	e.Reset()
	require.Equal(t, 0, e.Size())
	require.NoError(t, e.EncodeNone())
	require.Equal(t, []byte{0x00}, e.Bytes())
}
