// Package nuls decodes the NULS 1.x binary block and transaction formats.
package nuls

import (
	"encoding/binary"
	"fmt"
)

// hashSentinel separates the type byte from the timestamp in the hashed preimage.
const hashSentinel = 0xFF

// Transaction is a decoded transaction. It is not mutated after decoding.
type Transaction struct {
	Type       TxType
	Time       uint64
	Remark     []byte
	ModuleData ModuleData
	CoinData   CoinData
	Hash       Hash
	ScriptSig  []byte
	Size       int
	Height     uint64
}

// Decode parses one transaction from the start of buf.
func Decode(buf []byte, height uint64) (*Transaction, error) {
	tx, _, err := DecodeAt(buf, 0, height)
	return tx, err
}

// DecodeAt parses one transaction starting at off and returns the offset just past it.
// Decoding is all or nothing: on error no transaction is returned.
func DecodeAt(buf []byte, off int, height uint64) (*Transaction, int, error) {
	var (
		tx  = &Transaction{Height: height}
		err error
	)

	rawType, next, err := ReadUint16(buf, off)
	if err != nil {
		return nil, off, withField(err, "type")
	}
	tx.Type = TxType(rawType)

	if tx.Time, next, err = ReadUint48(buf, next); err != nil {
		return nil, off, withField(err, "time")
	}

	hashStart := next
	if tx.Remark, next, err = ReadVarBytes(buf, next); err != nil {
		return nil, off, withField(err, "remark")
	}
	if tx.ModuleData, next, err = DecodeModuleData(tx.Type, buf, next); err != nil {
		return nil, off, err
	}
	if tx.CoinData, next, err = DecodeCoinData(buf, next); err != nil {
		return nil, off, err
	}
	tx.Hash = hashTransaction(tx.Type, tx.Time, buf[hashStart:next])

	if tx.ScriptSig, next, err = ReadVarBytes(buf, next); err != nil {
		return nil, off, withField(err, "scriptSig")
	}
	tx.Size = next - off
	return tx, next, nil
}

// hashTransaction digests {type byte, 0xFF, time as uint64} followed by the remark through coin data bytes.
func hashTransaction(txType TxType, time uint64, body []byte) Hash {
	preimage := make([]byte, 0, 10+len(body))
	preimage = append(preimage, byte(txType), hashSentinel)
	preimage = binary.LittleEndian.AppendUint64(preimage, time)
	preimage = append(preimage, body...)
	return DoubleHash(preimage)
}

func (tx *Transaction) String() string {
	return fmt.Sprintf("tx %s type=%s height=%d inputs=%d outputs=%d", tx.Hash, tx.Type, tx.Height, len(tx.CoinData.Inputs), len(tx.CoinData.Outputs))
}
