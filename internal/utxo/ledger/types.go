package ledger

import (
	"context"
	"time"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Store is the persistence the reconciler drives.
	Store interface {
		TransactionByHash(ctx context.Context, hash string) (model.TransactionLookup, bool, error)
		TransactionsByHashes(ctx context.Context, hashes []string) (map[string]model.TransactionLookup, error)
		MarkOutputsSpent(ctx context.Context, updates []model.SpendUpdate) error
		InsertTransaction(ctx context.Context, tx *model.Transaction) error
		InsertTransactions(ctx context.Context, txs []*model.Transaction) ([]string, error)
		InsertBlocks(ctx context.Context, blocks []model.Block) error
		UnlockOutputs(ctx context.Context, height uint64) error
	}
	Metrics interface {
		ObserveReconcile(err error, txType uint16, started time.Time)
		ObserveUnresolvedOrigin()
		ObserveDuplicate()
		ObserveSpendUpdates(count int, err error)
		ObserveSweep(err error, height uint64, started time.Time)
	}
)
