package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
	"github.com/goodnatureofminers/nulsinsight-backend/pkg/safe"
)

// UnlockOutputs writes an unspent version of every time-locked output whose lock time is below height.
func (r *Repository) UnlockOutputs(ctx context.Context, height uint64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("unlock_outputs", r.network, err, start)
	}()

	lockBelow, err := safe.Int64(height)
	if err != nil {
		return fmt.Errorf("unlock outputs: %w", err)
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
)
SELECT
	network,
	tx_hash,
	output_index,
	address,
	value,
	lock_time,
	toInt8(?),
	to_hash,
	to_index,
	block_height,
	toUInt64(?)
FROM nuls_transaction_outputs FINAL
WHERE network = ? AND status = ? AND lock_time < ? AND lock_time != -1`

	if err = r.conn.Exec(ctx, query,
		int8(model.StatusUnspent),
		r.version(),
		r.network,
		int8(model.StatusTimeLocked),
		lockBelow,
	); err != nil {
		return fmt.Errorf("unlock outputs: %w", err)
	}
	return nil
}
