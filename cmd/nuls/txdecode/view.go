package main

import (
	"encoding/hex"

	"github.com/goodnatureofminers/nulsinsight-backend/internal/utxo/nuls"
)

type transactionView struct {
	Hash      string         `json:"hash"`
	Type      uint16         `json:"type"`
	TypeName  string         `json:"typeName"`
	Time      uint64         `json:"time"`
	Height    uint64         `json:"height"`
	Size      int            `json:"size"`
	Fee       int64          `json:"fee"`
	Remark    string         `json:"remark"`
	ScriptSig string         `json:"scriptSig"`
	Info      map[string]any `json:"info,omitempty"`
	Inputs    []coinView     `json:"inputs"`
	Outputs   []coinView     `json:"outputs"`
}

type coinView struct {
	FromHash  string `json:"fromHash,omitempty"`
	FromIndex *uint8 `json:"fromIndex,omitempty"`
	Address   string `json:"address,omitempty"`
	Value     uint64 `json:"value"`
	LockTime  int64  `json:"lockTime"`
}

func newTransactionView(tx *nuls.Transaction) transactionView {
	v := transactionView{
		Hash:      tx.Hash.String(),
		Type:      uint16(tx.Type),
		TypeName:  tx.Type.String(),
		Time:      tx.Time,
		Height:    tx.Height,
		Size:      tx.Size,
		Fee:       tx.CoinData.Fee(),
		Remark:    string(tx.Remark),
		ScriptSig: hex.EncodeToString(tx.ScriptSig),
		Info:      infoView(tx.ModuleData),
		Inputs:    make([]coinView, 0, len(tx.CoinData.Inputs)),
		Outputs:   make([]coinView, 0, len(tx.CoinData.Outputs)),
	}
	for _, c := range tx.CoinData.Inputs {
		v.Inputs = append(v.Inputs, newCoinView(c))
	}
	for _, c := range tx.CoinData.Outputs {
		v.Outputs = append(v.Outputs, newCoinView(c))
	}
	return v
}

func newCoinView(c nuls.Coin) coinView {
	v := coinView{Value: c.Value, LockTime: c.LockTime}
	if c.IsSpendReference() {
		index := c.FromIndex
		v.FromHash = c.FromHash.String()
		v.FromIndex = &index
		return v
	}
	v.Address = c.Address.Base58()
	return v
}

func infoView(md nuls.ModuleData) map[string]any {
	switch d := md.(type) {
	case nuls.AliasData:
		return map[string]any{"address": d.Address.Base58(), "alias": d.Alias}
	case nuls.RegisterAgentData:
		return map[string]any{
			"deposit":        d.Deposit,
			"agentAddress":   d.AgentAddress.Base58(),
			"packingAddress": d.PackingAddress.Base58(),
			"rewardAddress":  d.RewardAddress.Base58(),
			"commissionRate": d.CommissionRate,
		}
	case nuls.JoinConsensusData:
		return map[string]any{"deposit": d.Deposit, "address": d.Address.Base58(), "agentHash": d.AgentHash.String()}
	case nuls.CancelDepositData:
		return map[string]any{"joinTxHash": d.JoinTxHash.String()}
	case nuls.YellowCardData:
		addresses := make([]string, 0, len(d.Addresses))
		for _, a := range d.Addresses {
			addresses = append(addresses, a.Base58())
		}
		return map[string]any{"count": len(addresses), "addresses": addresses}
	case nuls.RedCardData:
		return map[string]any{"address": d.Address.Base58(), "reason": d.Reason, "evidence": hex.EncodeToString(d.Evidence)}
	case nuls.StopAgentData:
		return map[string]any{"createTxHash": d.CreateTxHash.String()}
	default:
		return nil
	}
}
