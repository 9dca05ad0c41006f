// Package memory keeps the ledger in process memory. It backs dry runs and tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
)

// Store is a concurrency-safe in-memory ledger with the same semantics as the ClickHouse repository.
type Store struct {
	mu      sync.RWMutex
	network model.Network
	txs     map[string]*model.Transaction
	blocks  map[uint64]model.Block
}

func NewStore(network model.Network) *Store {
	return &Store{
		network: network,
		txs:     make(map[string]*model.Transaction),
		blocks:  make(map[uint64]model.Block),
	}
}

func (s *Store) TransactionByHash(_ context.Context, hash string) (model.TransactionLookup, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.txs[hash]
	if !ok {
		return model.TransactionLookup{}, false, nil
	}
	return lookupOf(tx), true, nil
}

func (s *Store) TransactionsByHashes(_ context.Context, hashes []string) (map[string]model.TransactionLookup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]model.TransactionLookup, len(hashes))
	for _, hash := range hashes {
		if tx, ok := s.txs[hash]; ok {
			result[hash] = lookupOf(tx)
		}
	}
	return result, nil
}

// Transaction returns a copy of the stored record.
func (s *Store) Transaction(hash string) (*model.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.txs[hash]
	if !ok {
		return nil, false
	}
	return clone(tx), true
}

// MarkOutputsSpent applies every update whose origin output exists; the rest are no-ops.
func (s *Store) MarkOutputsSpent(_ context.Context, updates []model.SpendUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range updates {
		tx, ok := s.txs[u.OriginHash]
		if !ok || int(u.OriginIndex) >= len(tx.Outputs) {
			continue
		}
		out := &tx.Outputs[u.OriginIndex]
		out.Status = model.StatusSpent
		out.ToHash = u.ToHash
		out.ToIndex = u.ToIndex
	}
	return nil
}

func (s *Store) InsertTransaction(_ context.Context, tx *model.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.txs[tx.Hash]; ok {
		return fmt.Errorf("insert transaction %s: %w", tx.Hash, model.ErrDuplicateTransaction)
	}
	s.txs[tx.Hash] = clone(tx)
	return nil
}

// InsertTransactions stores txs and returns the hashes that were already present.
func (s *Store) InsertTransactions(_ context.Context, txs []*model.Transaction) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var skipped []string
	for _, tx := range txs {
		if _, ok := s.txs[tx.Hash]; ok {
			skipped = append(skipped, tx.Hash)
			continue
		}
		s.txs[tx.Hash] = clone(tx)
	}
	return skipped, nil
}

func (s *Store) InsertBlocks(_ context.Context, blocks []model.Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range blocks {
		s.blocks[b.Height] = b
	}
	return nil
}

// UnlockOutputs moves time-locked outputs with a lock time below height to unspent.
func (s *Store) UnlockOutputs(_ context.Context, height uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tx := range s.txs {
		for i := range tx.Outputs {
			out := &tx.Outputs[i]
			if out.Status == model.StatusTimeLocked && out.LockTime != -1 && out.LockTime < int64(height) {
				out.Status = model.StatusUnspent
			}
		}
	}
	return nil
}

// MaxBlockHeight returns the highest stored block; ok is false when none is stored.
func (s *Store) MaxBlockHeight(_ context.Context) (uint64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		highest uint64
		ok      bool
	)
	for h := range s.blocks {
		if !ok || h > highest {
			highest, ok = h, true
		}
	}
	return highest, ok, nil
}

func lookupOf(tx *model.Transaction) model.TransactionLookup {
	lookup := model.TransactionLookup{
		Hash:    tx.Hash,
		Info:    tx.Info,
		Outputs: make([]model.OutputLookup, 0, len(tx.Outputs)),
	}
	for i, out := range tx.Outputs {
		lookup.Outputs = append(lookup.Outputs, model.OutputLookup{
			Index:   uint32(i),
			Address: out.Address,
			Status:  out.Status,
		})
	}
	return lookup
}

func clone(tx *model.Transaction) *model.Transaction {
	c := *tx
	c.Inputs = append([]model.TransactionInput(nil), tx.Inputs...)
	c.Outputs = append([]model.TransactionOutput(nil), tx.Outputs...)
	c.Info.Addresses = append([]string(nil), tx.Info.Addresses...)
	return &c
}
