package chain

import (
	"context"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// LookupRepository describes the persisted lookups the resolver needs.
type LookupRepository interface {
	TransactionByHash(ctx context.Context, hash string) (model.TransactionLookup, bool, error)
	TransactionsByHashes(ctx context.Context, hashes []string) (map[string]model.TransactionLookup, error)
}
