package nuls

import (
	"encoding/hex"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/model"
	"github.com/goodnatureofminers/nulsinsight-backend/pkg/safe"
)

// ToRecord converts a decoded transaction into its persisted record. Outputs start unclassified.
func ToRecord(tx *Transaction, network model.Network) (*model.Transaction, error) {
	size, err := safe.Uint32(tx.Size)
	if err != nil {
		return nil, fmt.Errorf("tx %s size: %w", tx.Hash, err)
	}

	rec := &model.Transaction{
		Network:     network,
		Hash:        tx.Hash.String(),
		Type:        uint16(tx.Type),
		Time:        tx.Time,
		BlockHeight: tx.Height,
		Fee:         tx.CoinData.Fee(),
		Remark:      remarkText(tx.Remark),
		ScriptSig:   hex.EncodeToString(tx.ScriptSig),
		Size:        size,
		Info:        moduleInfo(tx.ModuleData),
		Inputs:      make([]model.TransactionInput, 0, len(tx.CoinData.Inputs)),
		Outputs:     make([]model.TransactionOutput, 0, len(tx.CoinData.Outputs)),
	}

	for _, in := range tx.CoinData.Inputs {
		input := model.TransactionInput{
			FromIndex: in.FromIndex,
			Value:     in.Value,
			LockTime:  in.LockTime,
		}
		if in.IsSpendReference() {
			input.FromHash = in.FromHash.String()
		} else {
			input.Address = in.Address.String()
		}
		rec.Inputs = append(rec.Inputs, input)
	}
	for _, out := range tx.CoinData.Outputs {
		rec.Outputs = append(rec.Outputs, model.TransactionOutput{
			Address:  out.Address.String(),
			Value:    out.Value,
			LockTime: out.LockTime,
			Status:   model.StatusUnset,
		})
	}
	return rec, nil
}

// BlockRecord converts a decoded header into its persisted record.
func BlockRecord(b *Block, network model.Network) (model.Block, error) {
	size, err := safe.Uint32(b.Size)
	if err != nil {
		return model.Block{}, fmt.Errorf("block %d size: %w", b.Header.Height, err)
	}
	millis, err := safe.Int64(b.Header.Time)
	if err != nil {
		return model.Block{}, fmt.Errorf("block %d time: %w", b.Header.Height, err)
	}
	return model.Block{
		Network:    network,
		Height:     b.Header.Height,
		Hash:       b.Header.Hash.String(),
		PreHash:    b.Header.PreHash.String(),
		MerkleHash: b.Header.MerkleHash.String(),
		Timestamp:  time.UnixMilli(millis).UTC(),
		TxCount:    b.Header.TxCount,
		Size:       size,
		Packer:     hex.EncodeToString(b.Header.PublicKey),
	}, nil
}

func remarkText(remark []byte) string {
	if len(remark) == 0 {
		return ""
	}
	if utf8.Valid(remark) {
		return string(remark)
	}
	return hex.EncodeToString(remark)
}

func moduleInfo(md ModuleData) model.ModuleInfo {
	switch d := md.(type) {
	case AliasData:
		return model.ModuleInfo{Address: d.Address.String(), Alias: d.Alias}
	case RegisterAgentData:
		return model.ModuleInfo{
			Deposit:        d.Deposit,
			AgentAddress:   d.AgentAddress.String(),
			PackingAddress: d.PackingAddress.String(),
			RewardAddress:  d.RewardAddress.String(),
			CommissionRate: d.CommissionRate,
		}
	case JoinConsensusData:
		return model.ModuleInfo{Deposit: d.Deposit, Address: d.Address.String(), AgentHash: d.AgentHash.String()}
	case CancelDepositData:
		return model.ModuleInfo{JoinTxHash: d.JoinTxHash.String()}
	case YellowCardData:
		addresses := make([]string, 0, len(d.Addresses))
		for _, a := range d.Addresses {
			addresses = append(addresses, a.String())
		}
		return model.ModuleInfo{Count: len(addresses), Addresses: addresses}
	case RedCardData:
		reason := d.Reason
		return model.ModuleInfo{Address: d.Address.String(), Reason: &reason, Evidence: hex.EncodeToString(d.Evidence)}
	case StopAgentData:
		return model.ModuleInfo{CreateTxHash: d.CreateTxHash.String()}
	default:
		return model.ModuleInfo{}
	}
}
