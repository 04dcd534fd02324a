package ffi_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gopolyglot/polyglot-go/ffi"
	"github.com/gopolyglot/polyglot-go/kind"
	pzap "github.com/gopolyglot/polyglot-go/log/zap"
)

func TestEncodeDecodeRoundTripThroughTable(t *testing.T) {
	tbl := ffi.NewTable(ffi.WithAbortOnNullPointer(false))
	var st ffi.Status

	eh := tbl.NewEncoder()
	require.NoError(t, tbl.EncodeU32(eh, &st, 42))
	require.Equal(t, ffi.Pass, st)

	buf, err := tbl.EncoderBuffer(eh, &st)
	require.NoError(t, err)
	require.Equal(t, ffi.Pass, st)
	require.Equal(t, uint32(2), buf.Length)

	require.Equal(t, ffi.Pass, tbl.FreeEncoder(eh))

	dh := tbl.NewDecoder(buf.Data)
	v, err := tbl.DecodeU32(dh, &st)
	require.NoError(t, err)
	require.Equal(t, ffi.Pass, st)
	require.Equal(t, uint32(42), v)

	require.Equal(t, ffi.Pass, tbl.FreeDecoder(dh))
}

func TestHandleReuseAfterFreeIsFailNotCrash(t *testing.T) {
	tbl := ffi.NewTable(ffi.WithAbortOnNullPointer(false))
	var st ffi.Status

	eh := tbl.NewEncoder()
	require.Equal(t, ffi.Pass, tbl.FreeEncoder(eh))

	_, err := tbl.EncoderSize(eh, &st)
	require.NoError(t, err)
	require.Equal(t, ffi.Fail, st)

	require.Equal(t, ffi.Fail, tbl.FreeEncoder(eh), "double free must not succeed or crash")
}

func TestFreeWithWrongHandleKindFails(t *testing.T) {
	tbl := ffi.NewTable()
	eh := tbl.NewEncoder()
	require.Equal(t, ffi.Fail, tbl.FreeDecoder(ffi.Handle(eh)))
	require.Equal(t, ffi.Pass, tbl.FreeEncoder(eh))
}

func TestUnknownHandleFails(t *testing.T) {
	tbl := ffi.NewTable(ffi.WithAbortOnNullPointer(false))
	var st ffi.Status
	_, err := tbl.DecodeU32(ffi.Handle(999999), &st)
	require.NoError(t, err)
	require.Equal(t, ffi.Fail, st)
}

// TestNullEngineHandleReportsNullPointer pins spec.md §8.2 scenario 8: a
// null engine pointer (here, the null Handle value 0, never minted by
// NewEncoder/NewDecoder) reports NullPointer specifically, distinct from the
// plain Fail an unknown-but-nonzero handle reports.
func TestNullEngineHandleReportsNullPointer(t *testing.T) {
	tbl := ffi.NewTable(ffi.WithAbortOnNullPointer(false))
	var st ffi.Status

	_, err := tbl.EncoderSize(ffi.Handle(0), &st)
	require.NoError(t, err)
	require.Equal(t, ffi.NullPointer, st)

	_, err = tbl.DecodeU32(ffi.Handle(0), &st)
	require.NoError(t, err)
	require.Equal(t, ffi.NullPointer, st)

	require.Equal(t, ffi.NullPointer, tbl.FreeEncoder(ffi.Handle(0)))
	require.Equal(t, ffi.NullPointer, tbl.FreeDecoder(ffi.Handle(0)))
}

func TestNullStatusPointerAbortsByDefault(t *testing.T) {
	tbl := ffi.NewTable()
	eh := tbl.NewEncoder()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic on null status pointer with default options")
	}()
	_ = tbl.EncodeNone(eh, nil)
}

func TestNullStatusPointerReturnsErrorWhenOptedOut(t *testing.T) {
	tbl := ffi.NewTable(ffi.WithAbortOnNullPointer(false))
	eh := tbl.NewEncoder()
	err := tbl.EncodeNone(eh, nil)
	require.ErrorIs(t, err, ffi.ErrNullStatusPointer)
}

func TestOptionTogglingDoesNotAffectWireBytes(t *testing.T) {
	logged := ffi.NewTable(ffi.WithLogger(pzap.Logger{L: zap.NewExample()}))
	plain := ffi.NewTable()

	lh := logged.NewEncoder()
	ph := plain.NewEncoder()
	var st ffi.Status

	require.NoError(t, logged.EncodeString(lh, &st, "hello"))
	require.NoError(t, logged.EncodeU32(lh, &st, 9))
	require.NoError(t, plain.EncodeString(ph, &st, "hello"))
	require.NoError(t, plain.EncodeU32(ph, &st, 9))

	lb, err := logged.EncoderBuffer(lh, &st)
	require.NoError(t, err)
	pb, err := plain.EncoderBuffer(ph, &st)
	require.NoError(t, err)
	require.Equal(t, pb.Data, lb.Data)
}

func TestArrayAndMapRoundTripThroughTable(t *testing.T) {
	tbl := ffi.NewTable(ffi.WithAbortOnNullPointer(false))
	var st ffi.Status

	eh := tbl.NewEncoder()
	require.NoError(t, tbl.EncodeArray(eh, &st, 2, kind.U8))
	require.NoError(t, tbl.EncodeU8(eh, &st, 1))
	require.NoError(t, tbl.EncodeU8(eh, &st, 2))
	buf, err := tbl.EncoderBuffer(eh, &st)
	require.NoError(t, err)

	dh := tbl.NewDecoder(buf.Data)
	n, err := tbl.DecodeArray(dh, &st, kind.U8)
	require.NoError(t, err)
	require.Equal(t, uint32(2), n)
	v1, err := tbl.DecodeU8(dh, &st)
	require.NoError(t, err)
	v2, err := tbl.DecodeU8(dh, &st)
	require.NoError(t, err)
	require.Equal(t, uint8(1), v1)
	require.Equal(t, uint8(2), v2)
}
