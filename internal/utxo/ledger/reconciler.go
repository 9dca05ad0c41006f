package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/chain"
	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/nuls"
	"go.uber.org/zap"
)

// Result describes what reconciling one transaction did.
type Result struct {
	Transaction *model.Transaction
	// Updates are the spend markers committed against persisted outputs.
	Updates []model.SpendUpdate
	// Unresolved lists inputs whose origin could not be annotated. Their spend markers were still committed.
	Unresolved []UnresolvedOrigin
	// Duplicate is set when the transaction was already persisted.
	Duplicate bool
}

// Reconciler keeps the persisted output set consistent with decoded transactions.
type Reconciler struct {
	store    Store
	resolver *chain.TransactionResolver
	metrics  Metrics
	logger   *zap.Logger
}

// NewReconciler constructs a Reconciler.
func NewReconciler(store Store, resolver *chain.TransactionResolver, metrics Metrics, logger *zap.Logger) (*Reconciler, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	if resolver == nil {
		return nil, errors.New("transaction resolver is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{
		store:    store,
		resolver: resolver,
		metrics:  metrics,
		logger:   logger.Named("reconciler"),
	}, nil
}

// Reconcile annotates tx with its origin addresses and output states and marks the outputs it spends.
// With a nil batch the transaction is inserted; otherwise it is returned for the caller to persist and
// spends of batch members are applied to their in-memory records.
func (r *Reconciler) Reconcile(ctx context.Context, tx *model.Transaction, height uint64, batch *Batch) (_ *Result, err error) {
	start := time.Now()
	defer func() {
		r.metrics.ObserveReconcile(err, tx.Type, start)
	}()

	tx.BlockHeight = height
	result := &Result{Transaction: tx}

	if nuls.TxType(tx.Type) == nuls.TxCancelDeposit && tx.Info.JoinTxHash != "" {
		if err = r.copyJoinInfo(ctx, tx, batch); err != nil {
			return nil, err
		}
	}

	var updates []model.SpendUpdate
	updates, result.Unresolved, err = r.resolveInputs(ctx, tx, batch)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err = r.CommitUpdates(ctx, updates); err != nil {
			return nil, err
		}
		result.Updates = updates
	}

	for i := range tx.Outputs {
		if tx.Outputs[i].Status == model.StatusUnset {
			tx.Outputs[i].Status = model.ClassifyLockTime(tx.Outputs[i].LockTime)
		}
	}

	if batch != nil {
		return result, nil
	}

	if err = r.store.InsertTransaction(ctx, tx); err != nil {
		if !errors.Is(err, model.ErrDuplicateTransaction) {
			return nil, fmt.Errorf("insert transaction %s: %w", tx.Hash, err)
		}
		result.Duplicate = true
		r.metrics.ObserveDuplicate()
		r.logger.Warn("transaction already processed", zap.String("hash", tx.Hash), zap.Uint64("height", height))
		return result, nil
	}
	r.resolver.Seed(tx)
	return result, nil
}

// CommitUpdates applies spend markers as one unordered bulk update. A failure is returned as a
// *model.BulkUpdateError carrying the updates to retry.
func (r *Reconciler) CommitUpdates(ctx context.Context, updates []model.SpendUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	err := r.store.MarkOutputsSpent(ctx, updates)
	r.metrics.ObserveSpendUpdates(len(updates), err)
	if err == nil {
		return nil
	}
	var bulkErr *model.BulkUpdateError
	if errors.As(err, &bulkErr) {
		return err
	}
	return &model.BulkUpdateError{Failed: updates, Total: len(updates), Err: err}
}

// Sweep unlocks every time-locked output whose lock time is below height.
func (r *Reconciler) Sweep(ctx context.Context, height uint64) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.ObserveSweep(err, height, start)
	}()

	if err = r.store.UnlockOutputs(ctx, height); err != nil {
		return fmt.Errorf("unlock outputs at height %d: %w", height, err)
	}
	return nil
}

func (r *Reconciler) copyJoinInfo(ctx context.Context, tx *model.Transaction, batch *Batch) error {
	if join, ok := batch.Get(tx.Info.JoinTxHash); ok {
		tx.Info.Address = join.Info.Address
		tx.Info.AgentHash = join.Info.AgentHash
		return nil
	}

	join, ok, err := r.resolver.Resolve(ctx, tx.Info.JoinTxHash)
	if err != nil {
		return fmt.Errorf("get join transaction %s: %w", tx.Info.JoinTxHash, err)
	}
	if !ok {
		r.logger.Debug("join transaction not found",
			zap.String("hash", tx.Hash),
			zap.String("join_hash", tx.Info.JoinTxHash),
		)
		return nil
	}
	tx.Info.Address = join.Info.Address
	tx.Info.AgentHash = join.Info.AgentHash
	return nil
}

func (r *Reconciler) resolveInputs(ctx context.Context, tx *model.Transaction, batch *Batch) ([]model.SpendUpdate, []UnresolvedOrigin, error) {
	var missing []string
	for _, in := range tx.Inputs {
		if in.FromHash == "" {
			continue
		}
		if _, ok := batch.Get(in.FromHash); ok {
			continue
		}
		missing = append(missing, in.FromHash)
	}

	var snapshot map[string]model.TransactionLookup
	if len(missing) > 0 {
		var err error
		snapshot, err = r.resolver.ResolveBatch(ctx, missing)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve origins of %s: %w", tx.Hash, err)
		}
	}

	var (
		updates    []model.SpendUpdate
		unresolved []UnresolvedOrigin
	)
	for i := range tx.Inputs {
		in := &tx.Inputs[i]
		if in.FromHash == "" {
			continue
		}

		if origin, ok := batch.Get(in.FromHash); ok && int(in.FromIndex) < len(origin.Outputs) {
			out := &origin.Outputs[in.FromIndex]
			out.Status = model.StatusSpent
			out.ToHash = tx.Hash
			out.ToIndex = uint32(i)
			in.Address = out.Address
			continue
		}

		updates = append(updates, model.SpendUpdate{
			OriginHash:  in.FromHash,
			OriginIndex: in.FromIndex,
			ToHash:      tx.Hash,
			ToIndex:     uint32(i),
		})

		if lookup, ok := snapshot[in.FromHash]; ok {
			if out, ok := lookup.Output(in.FromIndex); ok {
				in.Address = out.Address
				continue
			}
		}

		u := UnresolvedOrigin{InputIndex: i, FromHash: in.FromHash, FromIndex: in.FromIndex}
		unresolved = append(unresolved, u)
		r.metrics.ObserveUnresolvedOrigin()
		r.logger.Warn("origin transaction not found",
			zap.String("hash", tx.Hash),
			zap.Int("input", i),
			zap.String("from_hash", in.FromHash),
			zap.Uint8("from_index", in.FromIndex),
		)
	}
	return updates, unresolved, nil
}
