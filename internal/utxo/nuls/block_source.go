package nuls

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/chain"
	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
)

// BlockBytesClient fetches raw blocks from a node.
type BlockBytesClient interface {
	LatestHeight(ctx context.Context) (uint64, error)
	BlockBytes(ctx context.Context, height uint64) ([]byte, error)
}

// BlockSource implements chain.BlockSource for NULS.
type BlockSource struct {
	client  BlockBytesClient
	network model.Network
}

// NewBlockSource creates a BlockSource reading from client.
func NewBlockSource(client BlockBytesClient, network model.Network) *BlockSource {
	return &BlockSource{client: client, network: network}
}

// LatestHeight returns the latest block height from the node.
func (s *BlockSource) LatestHeight(ctx context.Context) (uint64, error) {
	return s.client.LatestHeight(ctx)
}

// FetchBlock fetches, decodes and converts the block at height.
func (s *BlockSource) FetchBlock(ctx context.Context, height uint64) (*chain.Block, error) {
	raw, err := s.client.BlockBytes(ctx, height)
	if err != nil {
		return nil, fmt.Errorf("fetch block bytes at height %d: %w", height, err)
	}
	decoded, err := DecodeBlock(raw)
	if err != nil {
		return nil, err
	}
	if decoded.Header.Height != height {
		return nil, fmt.Errorf("node returned block %d for height %d", decoded.Header.Height, height)
	}

	block, err := BlockRecord(decoded, s.network)
	if err != nil {
		return nil, err
	}
	txs := make([]*model.Transaction, 0, len(decoded.Transactions))
	for _, tx := range decoded.Transactions {
		rec, err := ToRecord(tx, s.network)
		if err != nil {
			return nil, err
		}
		txs = append(txs, rec)
	}
	return &chain.Block{Block: block, Txs: txs}, nil
}
