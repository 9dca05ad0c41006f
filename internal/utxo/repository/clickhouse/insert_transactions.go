package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
)

// InsertTransactions stores the transactions that are not yet persisted together with their inputs and
// outputs, and returns the hashes that were skipped.
func (r *Repository) InsertTransactions(ctx context.Context, txs []*model.Transaction) ([]string, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", r.network, err, start)
	}()

	if len(txs) == 0 {
		return nil, nil
	}

	hashes := make([]string, 0, len(txs))
	for _, tx := range txs {
		hashes = append(hashes, tx.Hash)
	}

	var existing map[string]struct{}
	if existing, err = r.existingHashes(ctx, hashes); err != nil {
		return nil, err
	}

	var (
		skipped []string
		fresh   = make([]*model.Transaction, 0, len(txs))
	)
	for _, tx := range txs {
		if _, ok := existing[tx.Hash]; ok {
			skipped = append(skipped, tx.Hash)
			continue
		}
		fresh = append(fresh, tx)
	}

	if err = r.writeTransactions(ctx, fresh); err != nil {
		return nil, err
	}
	return skipped, nil
}

// InsertTransaction stores one transaction, failing with model.ErrDuplicateTransaction when its hash is
// already persisted.
func (r *Repository) InsertTransaction(ctx context.Context, tx *model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transaction", r.network, err, start)
	}()

	var existing map[string]struct{}
	if existing, err = r.existingHashes(ctx, []string{tx.Hash}); err != nil {
		return err
	}
	if _, ok := existing[tx.Hash]; ok {
		err = fmt.Errorf("insert transaction %s: %w", tx.Hash, model.ErrDuplicateTransaction)
		return err
	}

	err = r.writeTransactions(ctx, []*model.Transaction{tx})
	return err
}

// writeTransactions writes outputs first so a transaction row never exists without its outputs.
func (r *Repository) writeTransactions(ctx context.Context, txs []*model.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	if err := r.insertTransactionOutputs(ctx, txs); err != nil {
		return err
	}
	if err := r.insertTransactionInputs(ctx, txs); err != nil {
		return err
	}
	return r.insertTransactionRows(ctx, txs)
}

func (r *Repository) insertTransactionRows(ctx context.Context, txs []*model.Transaction) error {
	const query = `
INSERT INTO nuls_transactions (
	network,
	hash,
	type,
	time,
	block_height,
	fee,
	remark,
	script_sig,
	size,
	info,
	enrichment,
	input_count,
	output_count
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		info, err := encodeInfo(tx.Info)
		if err != nil {
			_ = batch.Abort()
			return fmt.Errorf("encode info of %s: %w", tx.Hash, err)
		}
		enrichment, err := encodeEnrichment(tx.Enrichment)
		if err != nil {
			_ = batch.Abort()
			return fmt.Errorf("encode enrichment of %s: %w", tx.Hash, err)
		}
		if err = batch.Append(
			string(r.network),
			tx.Hash,
			tx.Type,
			tx.Time,
			tx.BlockHeight,
			tx.Fee,
			tx.Remark,
			tx.ScriptSig,
			tx.Size,
			info,
			enrichment,
			uint32(len(tx.Inputs)),
			uint32(len(tx.Outputs)),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
