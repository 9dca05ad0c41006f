package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
)

// InsertBlocks stores block rows in ClickHouse.
func (r *Repository) InsertBlocks(ctx context.Context, blocks []model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_blocks", r.network, err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	const query = `
INSERT INTO nuls_blocks (
	network,
	height,
	hash,
	pre_hash,
	merkle_hash,
	timestamp,
	tx_count,
	size,
	packer
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, block := range blocks {
		if err = batch.Append(
			string(r.network),
			block.Height,
			block.Hash,
			block.PreHash,
			block.MerkleHash,
			block.Timestamp,
			block.TxCount,
			block.Size,
			block.Packer,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append block: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}
