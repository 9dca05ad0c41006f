package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
)

// MarkOutputsSpent writes a newer version of every referenced output with status spent and the spending
// input. Updates whose origin output is not stored are no-ops. Reapplying an update is idempotent.
func (r *Repository) MarkOutputsSpent(ctx context.Context, updates []model.SpendUpdate) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("mark_outputs_spent", r.network, err, start)
	}()

	if len(updates) == 0 {
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
)
SELECT
	o.network,
	o.tx_hash,
	o.output_index,
	o.address,
	o.value,
	o.lock_time,
	toInt8(?),
	u.to_hash,
	u.to_index,
	o.block_height,
	toUInt64(?)
FROM nuls_transaction_outputs AS o FINAL
INNER JOIN (
	SELECT
		tupleElement(z, 1) AS origin_hash,
		toUInt32(tupleElement(z, 2)) AS origin_index,
		tupleElement(z, 3) AS to_hash,
		toUInt32(tupleElement(z, 4)) AS to_index
	FROM (SELECT arrayJoin(arrayZip(?, ?, ?, ?)) AS z)
) AS u ON o.tx_hash = u.origin_hash AND o.output_index = u.origin_index
WHERE o.network = ?`

	origins := make([]string, 0, len(updates))
	originIndexes := make([]uint32, 0, len(updates))
	toHashes := make([]string, 0, len(updates))
	toIndexes := make([]uint32, 0, len(updates))
	for _, u := range updates {
		origins = append(origins, u.OriginHash)
		originIndexes = append(originIndexes, uint32(u.OriginIndex))
		toHashes = append(toHashes, u.ToHash)
		toIndexes = append(toIndexes, u.ToIndex)
	}

	if err = r.conn.Exec(ctx, query,
		int8(model.StatusSpent),
		r.version(),
		origins,
		originIndexes,
		toHashes,
		toIndexes,
		r.network,
	); err != nil {
		err = &model.BulkUpdateError{Failed: updates, Total: len(updates), Err: err}
		return err
	}
	return nil
}
