package ffi_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/gopolyglot/polyglot-go/ffi"
)

// TestConcurrentHandleTableAccess exercises Table from many goroutines at
// once: each goroutine owns its own Encoder/Decoder handles end to end, so
// this stresses the shared handle table (sync.Map-backed per SPEC_FULL.md
// §5) rather than any single Encoder or Decoder, which remain
// single-goroutine per handle throughout.
func TestConcurrentHandleTableAccess(t *testing.T) {
	tbl := ffi.NewTable(ffi.WithAbortOnNullPointer(false))

	g, _ := errgroup.WithContext(context.Background())
	const workers = 64
	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			var st ffi.Status
			eh := tbl.NewEncoder()
			if err := tbl.EncodeU32(eh, &st, uint32(i)); err != nil || st != ffi.Pass {
				return err
			}
			buf, err := tbl.EncoderBuffer(eh, &st)
			if err != nil || st != ffi.Pass {
				return err
			}
			if tbl.FreeEncoder(eh) != ffi.Pass {
				t.Errorf("worker %d: free of live handle failed", i)
			}

			dh := tbl.NewDecoder(buf.Data)
			v, err := tbl.DecodeU32(dh, &st)
			if err != nil || st != ffi.Pass {
				return err
			}
			if v != uint32(i) {
				t.Errorf("worker %d: decoded %d", i, v)
			}
			if tbl.FreeDecoder(dh) != ffi.Pass {
				t.Errorf("worker %d: free of decoder handle failed", i)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
