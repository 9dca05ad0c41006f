package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/chain"
	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/ledger"
	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	HeightFetcher interface {
		Fetch(ctx context.Context) ([]uint64, error)
	}
	BlockProcessor interface {
		Process(ctx context.Context, heights []uint64) error
	}
	BlockSource interface {
		chain.BlockSource
	}
	Repository interface {
		MaxBlockHeight(ctx context.Context) (uint64, bool, error)
	}
	Reconciler interface {
		ReconcileBlock(ctx context.Context, block *chain.Block) (*ledger.BlockResult, error)
	}
	Enricher interface {
		EnrichAll(ctx context.Context, txs []*model.Transaction)
	}
	IngesterMetrics interface {
		ObserveFetchHeights(err error, started time.Time)
		ObserveProcessBatch(err error, heights int, started time.Time)
		ObserveProcessHeight(err error, height uint64, started time.Time)
	}
)
