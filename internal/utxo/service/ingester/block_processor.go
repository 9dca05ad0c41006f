package ingester

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/chain"
	"github.com/goodnatureofminers/nulsinsight-backend/pkg/workerpool"
	"go.uber.org/zap"
)

// orderedBlockProcessor fetches and decodes a window of blocks concurrently, then enriches and reconciles
// them strictly in height order. A block is only reconciled after the previous one has been swept.
type orderedBlockProcessor struct {
	workerCount int
	source      BlockSource
	enricher    Enricher
	reconciler  Reconciler
	metrics     IngesterMetrics
	logger      *zap.Logger
}

func (p *orderedBlockProcessor) Process(ctx context.Context, heights []uint64) error {
	blocks, err := workerpool.Map(ctx, p.workerCount, heights, p.fetch)
	if err != nil {
		return err
	}

	for _, block := range blocks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.processBlock(ctx, block); err != nil {
			return err
		}
	}
	return nil
}

func (p *orderedBlockProcessor) fetch(ctx context.Context, height uint64) (*chain.Block, error) {
	block, err := p.source.FetchBlock(ctx, height)
	if err != nil {
		p.logger.Error("fetch block failed", zap.Uint64("height", height), zap.Error(err))
		return nil, fmt.Errorf("fetch block height %d: %w", height, err)
	}
	return block, nil
}

func (p *orderedBlockProcessor) processBlock(ctx context.Context, block *chain.Block) (err error) {
	height := block.Block.Height
	started := time.Now()
	defer func() {
		p.metrics.ObserveProcessHeight(err, height, started)
	}()

	if p.enricher != nil {
		p.enricher.EnrichAll(ctx, block.Txs)
	}

	result, err := p.reconciler.ReconcileBlock(ctx, block)
	if err != nil {
		p.logger.Error("reconcile block failed", zap.Uint64("height", height), zap.Error(err))
		return fmt.Errorf("reconcile block height %d: %w", height, err)
	}

	p.logger.Info("block done",
		zap.Uint64("height", height),
		zap.String("hash", block.Block.Hash),
		zap.Int("txs", len(block.Txs)),
		zap.Int("duplicates", result.Duplicates),
		zap.Int("unresolved", len(result.Unresolved)),
	)
	return nil
}
