// Package model defines domain models for NULS ledger ingestion.
package model

import "time"

// Block represents a NULS block persisted once all of its transactions are reconciled.
type Block struct {
	Network    Network
	Height     uint64
	Hash       string
	PreHash    string
	MerkleHash string
	Timestamp  time.Time
	TxCount    uint32
	Size       uint32
	Packer     string
}
