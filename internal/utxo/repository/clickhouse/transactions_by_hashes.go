package clickhouse

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
)

// TransactionsByHashes returns snapshots of the persisted transactions among hashes.
func (r *Repository) TransactionsByHashes(ctx context.Context, hashes []string) (map[string]model.TransactionLookup, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transactions_by_hashes", r.network, err, start)
	}()

	if len(hashes) == 0 {
		return map[string]model.TransactionLookup{}, nil
	}

	var result map[string]model.TransactionLookup
	result, err = r.lookups(ctx, hashes)
	return result, err
}

// TransactionByHash returns the snapshot of one persisted transaction.
func (r *Repository) TransactionByHash(ctx context.Context, hash string) (model.TransactionLookup, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transaction_by_hash", r.network, err, start)
	}()

	var found map[string]model.TransactionLookup
	if found, err = r.lookups(ctx, []string{hash}); err != nil {
		return model.TransactionLookup{}, false, err
	}
	lookup, ok := found[hash]
	return lookup, ok, nil
}

func (r *Repository) lookups(ctx context.Context, hashes []string) (map[string]model.TransactionLookup, error) {
	result, err := r.transactionInfo(ctx, hashes)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}
	if err = r.attachOutputs(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repository) transactionInfo(ctx context.Context, hashes []string) (result map[string]model.TransactionLookup, err error) {
	const query = `
SELECT
	hash,
	info
FROM nuls_transactions FINAL
WHERE network = ? AND hash IN ?`

	rows, err := r.conn.Query(ctx, query, r.network, hashes)
	if err != nil {
		return nil, fmt.Errorf("query transactions by hashes: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	result = make(map[string]model.TransactionLookup, len(hashes))
	for rows.Next() {
		var hash, info string
		if err = rows.Scan(&hash, &info); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		lookup := model.TransactionLookup{Hash: hash}
		if lookup.Info, err = decodeInfo(info); err != nil {
			return nil, fmt.Errorf("decode info of %s: %w", hash, err)
		}
		result[hash] = lookup
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return result, nil
}

func (r *Repository) attachOutputs(ctx context.Context, lookups map[string]model.TransactionLookup) (err error) {
	const outputsQuery = `
SELECT
	tx_hash,
	output_index,
	address,
	status
FROM nuls_transaction_outputs FINAL
WHERE network = ? AND tx_hash IN ?
ORDER BY tx_hash, output_index`

	hashes := make([]string, 0, len(lookups))
	for hash := range lookups {
		hashes = append(hashes, hash)
	}
	sort.Strings(hashes)

	rows, err := r.conn.Query(ctx, outputsQuery, r.network, hashes)
	if err != nil {
		return fmt.Errorf("query transaction outputs by hashes: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var (
			hash   string
			status int8
			output model.OutputLookup
		)
		if err = rows.Scan(&hash, &output.Index, &output.Address, &status); err != nil {
			return fmt.Errorf("scan transaction output: %w", err)
		}
		output.Status = model.OutputStatus(status)

		lookup, ok := lookups[hash]
		if !ok {
			continue
		}
		lookup.Outputs = append(lookup.Outputs, output)
		lookups[hash] = lookup
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("iterate transaction outputs: %w", err)
	}
	return nil
}
