package chain

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
	lru "github.com/hashicorp/golang-lru"
)

// transactionResolverBatchSize controls how many hashes are fetched in one repository call.
// It is a var to allow overriding in tests.
var transactionResolverBatchSize = 1000

const defaultResolverCacheSize = 100_000

// TransactionResolver fetches persisted snapshots of referenced transactions in bulk.
// Only immutable data is cached: output addresses and module info. Outputs served from the cache
// carry StatusUnset.
type TransactionResolver struct {
	repo  LookupRepository
	cache *lru.Cache
}

// NewTransactionResolver constructs a resolver; cacheSize <= 0 uses the default.
func NewTransactionResolver(repo LookupRepository, cacheSize int) *TransactionResolver {
	if cacheSize <= 0 {
		cacheSize = defaultResolverCacheSize
	}
	cache, _ := lru.New(cacheSize) // Never errors for positive size.
	return &TransactionResolver{repo: repo, cache: cache}
}

// Resolve returns the snapshot of one transaction; ok is false when it is not persisted.
func (r *TransactionResolver) Resolve(ctx context.Context, hash string) (model.TransactionLookup, bool, error) {
	if cached, ok := r.cache.Get(hash); ok {
		return cached.(model.TransactionLookup), true, nil
	}
	lookup, ok, err := r.repo.TransactionByHash(ctx, hash)
	if err != nil {
		return model.TransactionLookup{}, false, fmt.Errorf("query transaction by hash: %w", err)
	}
	if !ok {
		return model.TransactionLookup{}, false, nil
	}
	r.remember(lookup.Hash, lookup.Info, lookup.Outputs)
	return lookup, true, nil
}

// ResolveBatch returns snapshots for the distinct hashes that are persisted, consulting the cache first.
// Missing hashes are absent from the result.
func (r *TransactionResolver) ResolveBatch(ctx context.Context, hashes []string) (map[string]model.TransactionLookup, error) {
	result := make(map[string]model.TransactionLookup, len(hashes))

	seen := make(map[string]struct{}, len(hashes))
	missing := make([]string, 0, len(hashes))
	for _, hash := range hashes {
		if _, dup := seen[hash]; dup {
			continue
		}
		seen[hash] = struct{}{}
		if cached, ok := r.cache.Get(hash); ok {
			result[hash] = cached.(model.TransactionLookup)
			continue
		}
		missing = append(missing, hash)
	}

	size := transactionResolverBatchSize
	if size <= 0 {
		size = 1000
	}
	for start := 0; start < len(missing); start += size {
		end := min(start+size, len(missing))

		fromRepo, err := r.repo.TransactionsByHashes(ctx, missing[start:end])
		if err != nil {
			return nil, fmt.Errorf("query transactions by hashes: %w", err)
		}
		for hash, lookup := range fromRepo {
			result[hash] = lookup
			r.remember(lookup.Hash, lookup.Info, lookup.Outputs)
		}
	}
	return result, nil
}

// Seed records a freshly persisted transaction so later references hit the cache.
func (r *TransactionResolver) Seed(tx *model.Transaction) {
	outputs := make([]model.OutputLookup, 0, len(tx.Outputs))
	for i, out := range tx.Outputs {
		outputs = append(outputs, model.OutputLookup{Index: uint32(i), Address: out.Address})
	}
	r.remember(tx.Hash, tx.Info, outputs)
}

func (r *TransactionResolver) remember(hash string, info model.ModuleInfo, outputs []model.OutputLookup) {
	cached := model.TransactionLookup{Hash: hash, Info: info, Outputs: make([]model.OutputLookup, 0, len(outputs))}
	for _, out := range outputs {
		cached.Outputs = append(cached.Outputs, model.OutputLookup{Index: out.Index, Address: out.Address, Status: model.StatusUnset})
	}
	r.cache.Add(hash, cached)
}
