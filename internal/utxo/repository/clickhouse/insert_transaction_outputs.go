package clickhouse

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
)

func (r *Repository) insertTransactionOutputs(ctx context.Context, txs []*model.Transaction) error {
	count := 0
	for _, tx := range txs {
		count += len(tx.Outputs)
	}
	if count == 0 {
		return nil
	}

	const query = `
INSERT INTO nuls_transaction_outputs (
	network,
	tx_hash,
	output_index,
	address,
	value,
	lock_time,
	status,
	to_hash,
	to_index,
	block_height,
	version
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transaction outputs batch: %w", err)
	}

	version := r.version()
	for _, tx := range txs {
		for i, out := range tx.Outputs {
			if err = batch.Append(
				string(r.network),
				tx.Hash,
				uint32(i),
				out.Address,
				out.Value,
				out.LockTime,
				int8(out.Status),
				out.ToHash,
				out.ToIndex,
				tx.BlockHeight,
				version,
			); err != nil {
				_ = batch.Abort()
				return fmt.Errorf("append transaction output: %w", err)
			}
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transaction outputs: %w", err)
	}
	return nil
}
