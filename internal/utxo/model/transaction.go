package model

import (
	"encoding/json"
	"fmt"
)

// OutputStatus is the lock/spend state of an output.
type OutputStatus int8

const (
	// StatusUnset marks an output that has not been classified yet.
	StatusUnset OutputStatus = -1

	StatusUnspent           OutputStatus = 0
	StatusTimeLocked        OutputStatus = 1
	StatusPermanentlyLocked OutputStatus = 2
	StatusSpent             OutputStatus = 3
)

func (s OutputStatus) String() string {
	switch s {
	case StatusUnset:
		return "unset"
	case StatusUnspent:
		return "unspent"
	case StatusTimeLocked:
		return "time_locked"
	case StatusPermanentlyLocked:
		return "permanently_locked"
	case StatusSpent:
		return "spent"
	default:
		return fmt.Sprintf("status(%d)", int8(s))
	}
}

// ClassifyLockTime returns the status an output starts with.
func ClassifyLockTime(lockTime int64) OutputStatus {
	switch {
	case lockTime > 0:
		return StatusTimeLocked
	case lockTime == -1:
		return StatusPermanentlyLocked
	default:
		return StatusUnspent
	}
}

// Transaction is the persisted form of a decoded transaction. Addresses and hashes are hex.
type Transaction struct {
	Network     Network
	Hash        string
	Type        uint16
	Time        uint64
	BlockHeight uint64
	Fee         int64
	Remark      string
	ScriptSig   string
	Size        uint32
	Info        ModuleInfo
	Enrichment  *Enrichment
	Inputs      []TransactionInput
	Outputs     []TransactionOutput
}

// TransactionInput references the output it spends. Address is attached during reconciliation.
type TransactionInput struct {
	FromHash  string
	FromIndex uint8
	Address   string
	Value     uint64
	LockTime  int64
}

// TransactionOutput is a spendable output and its current state.
type TransactionOutput struct {
	Address  string
	Value    uint64
	LockTime int64
	Status   OutputStatus
	ToHash   string
	ToIndex  uint32
}

// ModuleInfo is the type-specific payload flattened for storage.
type ModuleInfo struct {
	Address        string   `json:"address,omitempty"`
	Alias          string   `json:"alias,omitempty"`
	Deposit        uint64   `json:"deposit,omitempty"`
	AgentAddress   string   `json:"agentAddress,omitempty"`
	PackingAddress string   `json:"packingAddress,omitempty"`
	RewardAddress  string   `json:"rewardAddress,omitempty"`
	CommissionRate float64  `json:"commissionRate,omitempty"`
	AgentHash      string   `json:"agentHash,omitempty"`
	JoinTxHash     string   `json:"joinTxHash,omitempty"`
	CreateTxHash   string   `json:"createTxHash,omitempty"`
	Count          int      `json:"count,omitempty"`
	Addresses      []string `json:"addresses,omitempty"`
	Reason         *uint8   `json:"reason,omitempty"`
	Evidence       string   `json:"evidence,omitempty"`
}

// Enrichment is content resolved from a transaction remark after decoding.
type Enrichment struct {
	Type      string          `json:"type"`
	Success   bool            `json:"success"`
	Aggregate json.RawMessage `json:"aggregate,omitempty"`
	Post      json.RawMessage `json:"post,omitempty"`
	Extended  json.RawMessage `json:"extended,omitempty"`
}

// SpendUpdate marks the output (OriginHash, OriginIndex) spent by input ToIndex of ToHash.
type SpendUpdate struct {
	OriginHash  string
	OriginIndex uint8
	ToHash      string
	ToIndex     uint32
}

// TransactionLookup is the persisted snapshot of a transaction needed to resolve references to it.
type TransactionLookup struct {
	Hash    string
	Info    ModuleInfo
	Outputs []OutputLookup
}

// OutputLookup is the persisted snapshot of one output.
type OutputLookup struct {
	Index   uint32
	Address string
	Status  OutputStatus
}

// Output returns the output at index.
func (l TransactionLookup) Output(index uint8) (OutputLookup, bool) {
	for _, o := range l.Outputs {
		if o.Index == uint32(index) {
			return o, true
		}
	}
	return OutputLookup{}, false
}
