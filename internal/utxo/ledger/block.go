package ledger

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/chain"
	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
	"go.uber.org/zap"
)

// BlockResult summarises the reconciliation of one block.
type BlockResult struct {
	Height     uint64
	Inserted   int
	Duplicates int
	Updates    int
	Unresolved []UnresolvedOrigin
}

// ReconcileBlock reconciles the block's transactions in order as one batch, persists them with the block
// row and sweeps time locks at the block height. Reprocessing a block that was partially persisted is safe:
// already stored transactions are skipped and the spends recorded on them in memory are committed as updates.
func (r *Reconciler) ReconcileBlock(ctx context.Context, block *chain.Block) (*BlockResult, error) {
	height := block.Block.Height
	batch := NewBatch(block.Txs)
	result := &BlockResult{Height: height}

	for i, tx := range block.Txs {
		res, err := r.Reconcile(ctx, tx, height, batch)
		if err != nil {
			return nil, fmt.Errorf("reconcile transaction %d of block %d: %w", i, height, err)
		}
		result.Updates += len(res.Updates)
		result.Unresolved = append(result.Unresolved, res.Unresolved...)
	}

	skipped, err := r.store.InsertTransactions(ctx, batch.Transactions())
	if err != nil {
		return nil, fmt.Errorf("insert transactions of block %d: %w", height, err)
	}
	result.Duplicates = len(skipped)
	result.Inserted = batch.Len() - len(skipped)

	if len(skipped) > 0 {
		for range skipped {
			r.metrics.ObserveDuplicate()
		}
		r.logger.Warn("block transactions already processed",
			zap.Uint64("height", height),
			zap.Strings("hashes", skipped),
		)
		updates := spentOutputs(batch, skipped)
		if err := r.CommitUpdates(ctx, updates); err != nil {
			return nil, fmt.Errorf("commit spends of already processed transactions in block %d: %w", height, err)
		}
		result.Updates += len(updates)
	}

	for _, tx := range batch.Transactions() {
		r.resolver.Seed(tx)
	}

	if err := r.store.InsertBlocks(ctx, []model.Block{block.Block}); err != nil {
		return nil, fmt.Errorf("insert block %d: %w", height, err)
	}

	if err := r.Sweep(ctx, height); err != nil {
		return nil, err
	}

	r.logger.Debug("block reconciled",
		zap.Uint64("height", height),
		zap.Int("inserted", result.Inserted),
		zap.Int("duplicates", result.Duplicates),
		zap.Int("updates", result.Updates),
		zap.Int("unresolved", len(result.Unresolved)),
	)
	return result, nil
}

// spentOutputs lists the in-memory spends of the given batch members as update markers.
func spentOutputs(batch *Batch, hashes []string) []model.SpendUpdate {
	var updates []model.SpendUpdate
	for _, hash := range hashes {
		tx, ok := batch.Get(hash)
		if !ok {
			continue
		}
		for i, out := range tx.Outputs {
			if out.Status != model.StatusSpent {
				continue
			}
			updates = append(updates, model.SpendUpdate{
				OriginHash:  hash,
				OriginIndex: uint8(i),
				ToHash:      out.ToHash,
				ToIndex:     out.ToIndex,
			})
		}
	}
	return updates
}
