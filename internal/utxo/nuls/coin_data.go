package nuls

import "fmt"

// CoinData holds the ordered inputs and outputs of a transaction.
type CoinData struct {
	Inputs  []Coin
	Outputs []Coin
}

// DecodeCoinData reads a one byte input count, the inputs, a one byte output count and the outputs.
func DecodeCoinData(buf []byte, off int) (CoinData, int, error) {
	inputs, next, err := decodeCoins(buf, off, "input")
	if err != nil {
		return CoinData{}, off, err
	}
	outputs, next, err := decodeCoins(buf, next, "output")
	if err != nil {
		return CoinData{}, off, err
	}
	return CoinData{Inputs: inputs, Outputs: outputs}, next, nil
}

func decodeCoins(buf []byte, off int, kind string) ([]Coin, int, error) {
	count, next, err := ReadUint8(buf, off)
	if err != nil {
		return nil, off, withField(err, kind+" count")
	}
	coins := make([]Coin, 0, count)
	for i := 0; i < int(count); i++ {
		var c Coin
		if c, next, err = DecodeCoin(buf, next); err != nil {
			return nil, off, fmt.Errorf("%s %d: %w", kind, i, err)
		}
		coins = append(coins, c)
	}
	return coins, next, nil
}

// InputSum returns the total value consumed.
func (d CoinData) InputSum() uint64 {
	var sum uint64
	for _, c := range d.Inputs {
		sum += c.Value
	}
	return sum
}

// OutputSum returns the total value created.
func (d CoinData) OutputSum() uint64 {
	var sum uint64
	for _, c := range d.Outputs {
		sum += c.Value
	}
	return sum
}

// Fee is the consumed value minus the created value. Negative for malformed transactions.
func (d CoinData) Fee() int64 {
	return int64(d.InputSum()) - int64(d.OutputSum())
}
