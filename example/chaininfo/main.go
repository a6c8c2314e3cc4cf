// Command chaininfo connects to a node and prints the chain identity
// prefetched by the chain API, followed by the finalized head.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/blockberries/chainapi/api"
	"github.com/blockberries/chainapi/baseapi"
	"github.com/blockberries/chainapi/types"
)

func main() {
	cfg, err := FromEnv()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	logger, err := cfg.Logger()
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("chaininfo failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, logger *zap.Logger) error {
	a, err := api.New(ctx, cfg.URL,
		api.WithLogger(logger),
		api.WithBaseOptions(baseapi.WithTimeout(cfg.Timeout)),
	)
	if err != nil {
		return fmt.Errorf("connect %s: %w", cfg.URL, err)
	}
	defer a.Close()

	mdVersion, err := a.Metadata.Version()
	if err != nil {
		return err
	}
	fmt.Printf("genesis:  %s\n", a.GenesisHash)
	fmt.Printf("runtime:  %s/%d (tx version %d)\n",
		a.RuntimeVersion.SpecName, a.RuntimeVersion.SpecVersion, a.RuntimeVersion.TransactionVersion)
	fmt.Printf("metadata: v%d, %d bytes\n", mdVersion, a.Metadata.Len())

	methods, err := a.RPCMethods(ctx)
	if err != nil {
		return err
	}
	if methods != nil {
		fmt.Printf("rpc:      %d methods\n", len(methods.Methods))
	}

	head, err := a.ChainGetFinalizedHead(ctx)
	if err != nil {
		return err
	}
	if head == nil {
		fmt.Println("finalized: none")
		return nil
	}
	header, err := api.ChainGetHeader[types.BlockHeader](ctx, a, *head)
	if err != nil {
		return err
	}
	if header == nil {
		fmt.Printf("finalized: %s\n", head)
		return nil
	}
	fmt.Printf("finalized: #%d %s\n", header.BlockNumber(), head)

	block, err := api.ChainGetBlock[types.SignedBlock](ctx, a, *head)
	if err != nil {
		return err
	}
	if block != nil {
		fmt.Printf("           %d extrinsics\n", len(block.Block.Extrinsics))
	}
	return nil
}
