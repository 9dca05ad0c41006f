package nuls

import "fmt"

// BlockHeader is the decoded header of a NULS block.
type BlockHeader struct {
	Hash        Hash
	PreHash     Hash
	MerkleHash  Hash
	Time        uint64
	Height      uint64
	TxCount     uint32
	Extend      []byte
	PublicKey   []byte
	SignAlgType uint8
	Signature   []byte
}

// Block is a header with its decoded transactions in block order.
type Block struct {
	Header       BlockHeader
	Transactions []*Transaction
	Size         int
}

// DecodeBlockHeader parses a header at off.
func DecodeBlockHeader(buf []byte, off int) (BlockHeader, int, error) {
	var (
		h    BlockHeader
		next = off
		err  error
	)
	if h.PreHash, next, err = ReadHash(buf, next); err != nil {
		return BlockHeader{}, off, withField(err, "preHash")
	}
	if h.MerkleHash, next, err = ReadHash(buf, next); err != nil {
		return BlockHeader{}, off, withField(err, "merkleHash")
	}
	if h.Time, next, err = ReadUint48(buf, next); err != nil {
		return BlockHeader{}, off, withField(err, "block time")
	}
	height, next, err := ReadUint32(buf, next)
	if err != nil {
		return BlockHeader{}, off, withField(err, "height")
	}
	h.Height = uint64(height)
	if h.TxCount, next, err = ReadUint32(buf, next); err != nil {
		return BlockHeader{}, off, withField(err, "txCount")
	}
	if h.Extend, next, err = ReadVarBytes(buf, next); err != nil {
		return BlockHeader{}, off, withField(err, "extend")
	}
	h.Hash = DoubleHash(buf[off:next])

	if h.PublicKey, next, err = ReadVarBytes(buf, next); err != nil {
		return BlockHeader{}, off, withField(err, "publicKey")
	}
	if h.SignAlgType, next, err = ReadUint8(buf, next); err != nil {
		return BlockHeader{}, off, withField(err, "signAlgType")
	}
	if h.Signature, next, err = ReadVarBytes(buf, next); err != nil {
		return BlockHeader{}, off, withField(err, "signature")
	}
	return h, next, nil
}

// DecodeBlock parses a header followed by its transactions. A transaction that fails to decode fails the
// block: the start of the following transaction cannot be located.
func DecodeBlock(buf []byte) (*Block, error) {
	header, next, err := DecodeBlockHeader(buf, 0)
	if err != nil {
		return nil, fmt.Errorf("decode block header: %w", err)
	}
	if uint64(header.TxCount) > uint64(len(buf)-next) {
		return nil, decodeErr(next, "txCount", fmt.Errorf("%w: %d transactions cannot fit in %d bytes", ErrMalformedLength, header.TxCount, len(buf)-next))
	}

	block := &Block{Header: header, Transactions: make([]*Transaction, 0, header.TxCount)}
	for i := 0; i < int(header.TxCount); i++ {
		var tx *Transaction
		if tx, next, err = DecodeAt(buf, next, header.Height); err != nil {
			return nil, fmt.Errorf("decode block %d transaction %d: %w", header.Height, i, err)
		}
		block.Transactions = append(block.Transactions, tx)
	}
	block.Size = next
	return block, nil
}
