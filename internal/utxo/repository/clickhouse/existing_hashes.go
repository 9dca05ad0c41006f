package clickhouse

import (
	"context"
	"fmt"
)

// existingHashes returns the subset of hashes already stored.
func (r *Repository) existingHashes(ctx context.Context, hashes []string) (existing map[string]struct{}, err error) {
	const query = `
SELECT DISTINCT hash
FROM nuls_transactions
WHERE network = ? AND hash IN ?`

	rows, err := r.conn.Query(ctx, query, r.network, hashes)
	if err != nil {
		return nil, fmt.Errorf("query existing transactions: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	existing = make(map[string]struct{})
	for rows.Next() {
		var hash string
		if err = rows.Scan(&hash); err != nil {
			return nil, fmt.Errorf("scan existing transaction: %w", err)
		}
		existing[hash] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate existing transactions: %w", err)
	}
	return existing, nil
}
