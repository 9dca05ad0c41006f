package clickhouse

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
)

func (r *Repository) insertTransactionInputs(ctx context.Context, txs []*model.Transaction) error {
	count := 0
	for _, tx := range txs {
		count += len(tx.Inputs)
	}
	if count == 0 {
		return nil
	}

	const query = `
INSERT INTO nuls_transaction_inputs (
	network,
	tx_hash,
	input_index,
	from_hash,
	from_index,
	address,
	value,
	lock_time
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transaction inputs batch: %w", err)
	}

	for _, tx := range txs {
		for i, in := range tx.Inputs {
			if err = batch.Append(
				string(r.network),
				tx.Hash,
				uint32(i),
				in.FromHash,
				in.FromIndex,
				in.Address,
				in.Value,
				in.LockTime,
			); err != nil {
				_ = batch.Abort()
				return fmt.Errorf("append transaction input: %w", err)
			}
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transaction inputs: %w", err)
	}
	return nil
}
