package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gopolyglot/polyglot-go/codec"
	"github.com/gopolyglot/polyglot-go/kind"
	"github.com/gopolyglot/polyglot-go/log"
)

// hostileLogger panics on any call. Attaching it and then exercising only
// the happy path (no decode failures) proves the happy path never calls the
// logger, which is the whole of spec §4.9's "strictly observational, never
// on the hot path" claim.
type hostileLogger struct{}

func (hostileLogger) Debug(string, log.Fields) { panic("unexpected Debug call") }
func (hostileLogger) Info(string, log.Fields)  { panic("unexpected Info call") }
func (hostileLogger) Warn(string, log.Fields)  { panic("unexpected Warn call") }
func (hostileLogger) Error(string, log.Fields) { panic("unexpected Error call") }

func TestLoggingSilentOnHappyPath(t *testing.T) {
	e := codec.NewEncoder()
	e.SetLogger(hostileLogger{})

	require.NoError(t, e.EncodeNone())
	require.NoError(t, e.EncodeBytes([]byte{1, 2, 3}))
	require.NoError(t, e.EncodeString("ok"))
	require.NoError(t, e.EncodeError("msg"))
	require.NoError(t, e.EncodeBool(true))
	require.NoError(t, e.EncodeU8(1))
	require.NoError(t, e.EncodeU16(2))
	require.NoError(t, e.EncodeU32(3))
	require.NoError(t, e.EncodeU64(4))
	require.NoError(t, e.EncodeI32(-5))
	require.NoError(t, e.EncodeI64(-6))
	require.NoError(t, e.EncodeF32(1.5))
	require.NoError(t, e.EncodeF64(2.5))
	require.NoError(t, e.EncodeArray(1, kind.U8))
	require.NoError(t, e.EncodeU8(9))
	require.NoError(t, e.EncodeMap(1, kind.U8, kind.U8))
	require.NoError(t, e.EncodeU8(1))
	require.NoError(t, e.EncodeU8(2))

	d := codec.NewDecoder(e.Bytes())
	d.SetLogger(hostileLogger{})

	require.True(t, d.DecodeNone())
	_, err := d.DecodeBytes()
	require.NoError(t, err)
	_, err = d.DecodeString()
	require.NoError(t, err)
	_, err = d.DecodeError()
	require.NoError(t, err)
	_, err = d.DecodeBool()
	require.NoError(t, err)
	_, err = d.DecodeU8()
	require.NoError(t, err)
	_, err = d.DecodeU16()
	require.NoError(t, err)
	_, err = d.DecodeU32()
	require.NoError(t, err)
	_, err = d.DecodeU64()
	require.NoError(t, err)
	_, err = d.DecodeI32()
	require.NoError(t, err)
	_, err = d.DecodeI64()
	require.NoError(t, err)
	_, err = d.DecodeF32()
	require.NoError(t, err)
	_, err = d.DecodeF64()
	require.NoError(t, err)
	n, err := d.DecodeArray(kind.U8)
	require.NoError(t, err)
	require.Equal(t, uint32(1), n)
	_, err = d.DecodeU8()
	require.NoError(t, err)
	n, err = d.DecodeMap(kind.U8, kind.U8)
	require.NoError(t, err)
	require.Equal(t, uint32(1), n)
	_, err = d.DecodeU8()
	require.NoError(t, err)
	_, err = d.DecodeU8()
	require.NoError(t, err)
	require.Equal(t, 0, d.Remaining())
}

// recordingLogger captures every call made to it, for tests that need to
// assert a specific logger call happened rather than that none did.
type recordingLogger struct {
	debug []logCall
}

type logCall struct {
	msg    string
	fields log.Fields
}

func (r *recordingLogger) Debug(msg string, f log.Fields) { r.debug = append(r.debug, logCall{msg, f}) }
func (r *recordingLogger) Info(string, log.Fields)        {}
func (r *recordingLogger) Warn(string, log.Fields)        {}
func (r *recordingLogger) Error(string, log.Fields)       {}

func TestLoggingDebugOnTagMismatch(t *testing.T) {
	e := codec.NewEncoder()
	require.NoError(t, e.EncodeU32(7))

	rec := &recordingLogger{}
	d := codec.NewDecoder(e.Bytes())
	d.SetLogger(rec)

	_, err := d.DecodeString()
	require.Error(t, err)
	require.ErrorIs(t, err, codec.ErrTagMismatch)

	require.Len(t, rec.debug, 1, "expected exactly one Debug call on tag mismatch")
	call := rec.debug[0]
	require.Equal(t, kind.String.String(), call.fields["expected"])
	require.Equal(t, kind.U32.Byte(), call.fields["got"])
	require.Equal(t, 0, call.fields["position"])
}
