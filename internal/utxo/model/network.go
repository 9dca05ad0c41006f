package model

// Network names the NULS chain a record belongs to.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)
