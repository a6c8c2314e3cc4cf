package chainapitest

import (
	"context"
	"sync"
	"testing"

	"github.com/blockberries/chainapi"
	"github.com/blockberries/chainapi/baseapi"
	"github.com/blockberries/chainapi/types"
)

// RunBaseAPIComplianceSuite checks a BaseAPI implementation against the
// fixture chain of this package.
//
// The factory must return a fresh BaseAPI backed by the fixtures, e.g. a
// client of NewFakeNode() or a zero MockBase.
func RunBaseAPIComplianceSuite(t *testing.T, factory func(t *testing.T) chainapi.BaseAPI) {
	t.Helper()
	ctx := context.Background()

	t.Run("finalized_head", func(t *testing.T) {
		h, err := factory(t).FetchFinalizedHead(ctx)
		if err != nil {
			t.Fatalf("FetchFinalizedHead: %v", err)
		}
		if h == nil || *h != DefaultFinalizedHead() {
			t.Errorf("finalized head: got %v, want %s", h, DefaultFinalizedHead())
		}
	})

	t.Run("genesis_hash", func(t *testing.T) {
		h, err := factory(t).FetchGenesisHash(ctx)
		if err != nil {
			t.Fatalf("FetchGenesisHash: %v", err)
		}
		if h == nil || *h != DefaultGenesisHash() {
			t.Errorf("genesis hash: got %v, want %s", h, DefaultGenesisHash())
		}
	})

	t.Run("metadata", func(t *testing.T) {
		m, err := factory(t).FetchMetadata(ctx)
		if err != nil {
			t.Fatalf("FetchMetadata: %v", err)
		}
		if m == nil || !m.Equal(DefaultMetadata()) {
			t.Fatalf("metadata mismatch: %v", m)
		}
		if v, err := m.Version(); err != nil || v != 14 {
			t.Errorf("metadata version: got %d (%v), want 14", v, err)
		}
	})

	t.Run("runtime_version", func(t *testing.T) {
		v, err := factory(t).FetchRuntimeVersion(ctx)
		if err != nil {
			t.Fatalf("FetchRuntimeVersion: %v", err)
		}
		want := DefaultRuntimeVersion()
		if v == nil || v.SpecName != want.SpecName || v.SpecVersion != want.SpecVersion ||
			v.TransactionVersion != want.TransactionVersion || len(v.APIs) != len(want.APIs) {
			t.Errorf("runtime version: got %+v, want %+v", v, want)
		}
	})

	t.Run("known_header", func(t *testing.T) {
		h, err := baseapi.FetchHeader[types.BlockHeader](ctx, factory(t), DefaultFinalizedHead())
		if err != nil {
			t.Fatalf("FetchHeader: %v", err)
		}
		if h == nil {
			t.Fatal("expected header for the finalized head")
		}
		if h.BlockNumber() != 1 || h.ParentBlockHash() != DefaultGenesisHash() {
			t.Errorf("header: got #%d parent %s", h.BlockNumber(), h.ParentBlockHash())
		}
	})

	t.Run("unknown_header_is_absent", func(t *testing.T) {
		h, err := baseapi.FetchHeader[types.BlockHeader](ctx, factory(t), types.Hash{0xff})
		if err != nil {
			t.Fatalf("FetchHeader: %v", err)
		}
		if h != nil {
			t.Errorf("expected no header, got %+v", h)
		}
	})

	t.Run("block_hash_by_number", func(t *testing.T) {
		base := factory(t)
		h, err := base.FetchBlockHash(ctx, DefaultHeader().BlockNumber())
		if err != nil {
			t.Fatalf("FetchBlockHash: %v", err)
		}
		if h == nil || *h != DefaultFinalizedHead() {
			t.Errorf("block hash #1: got %v, want %s", h, DefaultFinalizedHead())
		}
		genesis, err := base.FetchBlockHash(ctx, 0)
		if err != nil {
			t.Fatalf("FetchBlockHash(0): %v", err)
		}
		if genesis == nil || *genesis != DefaultGenesisHash() {
			t.Errorf("block hash #0: got %v, want %s", genesis, DefaultGenesisHash())
		}
		future, err := base.FetchBlockHash(ctx, 1_000_000)
		if err != nil {
			t.Fatalf("FetchBlockHash(future): %v", err)
		}
		if future != nil {
			t.Errorf("expected no hash for a future block, got %s", future)
		}
	})

	t.Run("known_block", func(t *testing.T) {
		b, err := baseapi.FetchBlock[types.SignedBlock](ctx, factory(t), DefaultFinalizedHead())
		if err != nil {
			t.Fatalf("FetchBlock: %v", err)
		}
		if b == nil {
			t.Fatal("expected block for the finalized head")
		}
		want := DefaultBlock()
		if b.Block.Header.BlockNumber() != want.Block.Header.BlockNumber() ||
			b.Block.Header.ParentBlockHash() != want.Block.Header.ParentBlockHash() {
			t.Errorf("block header: got %+v", b.Block.Header)
		}
		if len(b.Block.Extrinsics) != len(want.Block.Extrinsics) {
			t.Errorf("extrinsics: got %d, want %d", len(b.Block.Extrinsics), len(want.Block.Extrinsics))
		}
	})

	t.Run("unknown_block_is_absent", func(t *testing.T) {
		b, err := baseapi.FetchBlock[types.SignedBlock](ctx, factory(t), types.Hash{0xff})
		if err != nil {
			t.Fatalf("FetchBlock: %v", err)
		}
		if b != nil {
			t.Errorf("expected no block, got %+v", b)
		}
	})

	t.Run("rpc_methods", func(t *testing.T) {
		m, err := factory(t).FetchRPCMethods(ctx)
		if err != nil {
			t.Fatalf("FetchRPCMethods: %v", err)
		}
		if m == nil || len(m.Methods) != len(DefaultRPCMethods().Methods) || !m.Has("chain_getHeader") {
			t.Errorf("rpc methods: got %+v", m)
		}
	})

	t.Run("submit_extrinsic", func(t *testing.T) {
		const ext = "0x280403000b207eba5c8501"
		want, err := ExtrinsicHash(ext)
		if err != nil {
			t.Fatalf("ExtrinsicHash: %v", err)
		}
		h, err := factory(t).SubmitExtrinsic(ctx, ext)
		if err != nil {
			t.Fatalf("SubmitExtrinsic: %v", err)
		}
		if h == nil || *h != want {
			t.Errorf("extrinsic hash: got %v, want %s", h, want)
		}
	})

	t.Run("concurrent_reads", func(t *testing.T) {
		base := factory(t)
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := base.FetchFinalizedHead(ctx); err != nil {
					t.Errorf("concurrent FetchFinalizedHead failed: %v", err)
				}
				if _, err := base.FetchRuntimeVersion(ctx); err != nil {
					t.Errorf("concurrent FetchRuntimeVersion failed: %v", err)
				}
			}()
		}
		wg.Wait()
	})
}
