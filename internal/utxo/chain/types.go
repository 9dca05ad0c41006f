// Package chain defines interfaces and structs shared between NULS ingestion components.
package chain

import (
	"context"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
)

// BlockSource provides decoded blocks by height.
type BlockSource interface {
	LatestHeight(ctx context.Context) (uint64, error)
	FetchBlock(ctx context.Context, height uint64) (*Block, error)
}

// Block wraps a block and its transaction records in block order.
type Block struct {
	Block model.Block
	Txs   []*model.Transaction
}
