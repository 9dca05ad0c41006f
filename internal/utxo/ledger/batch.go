package ledger

import "github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"

// Batch holds the transactions of one block write, keyed by hash. Outputs of batch members are
// mutated in place when a later member spends them.
type Batch struct {
	byHash map[string]*model.Transaction
	order  []*model.Transaction
}

// NewBatch indexes txs by hash, keeping their order.
func NewBatch(txs []*model.Transaction) *Batch {
	b := &Batch{byHash: make(map[string]*model.Transaction, len(txs))}
	for _, tx := range txs {
		b.Add(tx)
	}
	return b
}

// Add adds tx to the batch; a hash that is already present keeps its first record.
func (b *Batch) Add(tx *model.Transaction) {
	if _, ok := b.byHash[tx.Hash]; ok {
		return
	}
	b.byHash[tx.Hash] = tx
	b.order = append(b.order, tx)
}

func (b *Batch) Get(hash string) (*model.Transaction, bool) {
	if b == nil {
		return nil, false
	}
	tx, ok := b.byHash[hash]
	return tx, ok
}

func (b *Batch) Transactions() []*model.Transaction {
	return b.order
}

func (b *Batch) Len() int {
	return len(b.order)
}
