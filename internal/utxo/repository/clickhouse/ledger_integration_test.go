//go:build integration

package clickhouse

import (
	"time"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
)

func lockedTransaction(hash string, lockTimes ...int64) *model.Transaction {
	tx := &model.Transaction{Network: model.Mainnet, Hash: hash, Type: 2, BlockHeight: 1}
	for i, lt := range lockTimes {
		tx.Outputs = append(tx.Outputs, model.TransactionOutput{
			Address:  "0401" + string(rune('a'+i)),
			Value:    uint64(100 * (i + 1)),
			LockTime: lt,
			Status:   model.ClassifyLockTime(lt),
		})
	}
	return tx
}

func (s *RepositorySuite) TestInsertTransactionRejectsDuplicate() {
	tx := lockedTransaction("0020aa", 0)
	tx.Info.Alias = "first"

	s.Require().NoError(s.repo.InsertTransaction(s.testCtx, tx))

	again := lockedTransaction("0020aa", 0)
	again.Info.Alias = "second"
	s.ErrorIs(s.repo.InsertTransaction(s.testCtx, again), model.ErrDuplicateTransaction)

	lookup, ok, err := s.repo.TransactionByHash(s.testCtx, "0020aa")
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal("first", lookup.Info.Alias)
	s.Equal(uint64(1), s.countRows("nuls_transactions"))
}

func (s *RepositorySuite) TestInsertTransactionsSkipsPersisted() {
	s.Require().NoError(s.repo.InsertTransaction(s.testCtx, lockedTransaction("0020aa", 0)))

	skipped, err := s.repo.InsertTransactions(s.testCtx, []*model.Transaction{
		lockedTransaction("0020aa", 0),
		lockedTransaction("0020bb", 0, 0),
	})
	s.Require().NoError(err)
	s.Equal([]string{"0020aa"}, skipped)
	s.Equal(uint64(2), s.countRows("nuls_transactions"))
	s.Equal(uint64(3), s.countRows("nuls_transaction_outputs"))
}

func (s *RepositorySuite) TestMarkOutputsSpentIsIdempotent() {
	s.Require().NoError(s.repo.InsertTransaction(s.testCtx, lockedTransaction("0020aa", 0, 0)))

	update := []model.SpendUpdate{{OriginHash: "0020aa", OriginIndex: 1, ToHash: "0020cc", ToIndex: 2}}
	s.Require().NoError(s.repo.MarkOutputsSpent(s.testCtx, update))
	s.Require().NoError(s.repo.MarkOutputsSpent(s.testCtx, update))

	status, toHash, toIndex := s.outputStatus("0020aa", 1)
	s.Equal(model.StatusSpent, status)
	s.Equal("0020cc", toHash)
	s.Equal(uint32(2), toIndex)

	status, _, _ = s.outputStatus("0020aa", 0)
	s.Equal(model.StatusUnspent, status)
	s.Equal(uint64(2), s.countRows("nuls_transaction_outputs"))
}

func (s *RepositorySuite) TestMarkOutputsSpentIgnoresUnknownOrigin() {
	update := []model.SpendUpdate{{OriginHash: "0020ff", OriginIndex: 0, ToHash: "0020cc", ToIndex: 0}}
	s.Require().NoError(s.repo.MarkOutputsSpent(s.testCtx, update))
	s.Equal(uint64(0), s.countRows("nuls_transaction_outputs"))
}

func (s *RepositorySuite) TestUnlockOutputsSweepsBelowHeight() {
	s.Require().NoError(s.repo.InsertTransaction(s.testCtx, lockedTransaction("0020aa", 50, 150, -1, 0)))

	s.Require().NoError(s.repo.UnlockOutputs(s.testCtx, 100))

	status, _, _ := s.outputStatus("0020aa", 0)
	s.Equal(model.StatusUnspent, status)
	status, _, _ = s.outputStatus("0020aa", 1)
	s.Equal(model.StatusTimeLocked, status)
	status, _, _ = s.outputStatus("0020aa", 2)
	s.Equal(model.StatusPermanentlyLocked, status)
	status, _, _ = s.outputStatus("0020aa", 3)
	s.Equal(model.StatusUnspent, status)
}

func (s *RepositorySuite) TestBlocksAndMaxHeight() {
	_, ok, err := s.repo.MaxBlockHeight(s.testCtx)
	s.Require().NoError(err)
	s.False(ok)

	now := time.Now().UTC().Truncate(time.Millisecond)
	s.Require().NoError(s.repo.InsertBlocks(s.testCtx, []model.Block{
		{Network: model.Mainnet, Height: 0, Hash: "0020a0", Timestamp: now},
		{Network: model.Mainnet, Height: 1, Hash: "0020a1", PreHash: "0020a0", Timestamp: now},
	}))

	height, ok, err := s.repo.MaxBlockHeight(s.testCtx)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(uint64(1), height)
}
