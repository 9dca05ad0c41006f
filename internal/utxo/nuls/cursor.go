package nuls

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Readers take the buffer and a start offset and return the value with the offset just past it.
// The buffer is never modified.

const (
	uint48Size = 6
	// lockTimeUnlockEvent is the all-ones 48-bit pattern, decoded as -1.
	lockTimeUnlockEvent = 1<<48 - 1
	// maxVarIntLen is the longest LEB128 encoding of a uint64.
	maxVarIntLen = binary.MaxVarintLen64
)

func need(buf []byte, off, n int) error {
	if off < 0 || n < 0 || off > len(buf) || len(buf)-off < n {
		return decodeErr(off, "", fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedInput, n, max(len(buf)-off, 0)))
	}
	return nil
}

// ReadUint8 reads a single byte.
func ReadUint8(buf []byte, off int) (uint8, int, error) {
	if err := need(buf, off, 1); err != nil {
		return 0, off, err
	}
	return buf[off], off + 1, nil
}

// ReadUint16 reads a little-endian uint16.
func ReadUint16(buf []byte, off int) (uint16, int, error) {
	if err := need(buf, off, 2); err != nil {
		return 0, off, err
	}
	return binary.LittleEndian.Uint16(buf[off:]), off + 2, nil
}

// ReadUint32 reads a little-endian uint32.
func ReadUint32(buf []byte, off int) (uint32, int, error) {
	if err := need(buf, off, 4); err != nil {
		return 0, off, err
	}
	return binary.LittleEndian.Uint32(buf[off:]), off + 4, nil
}

// ReadUint48 reads a little-endian integer packed into 6 bytes.
func ReadUint48(buf []byte, off int) (uint64, int, error) {
	if err := need(buf, off, uint48Size); err != nil {
		return 0, off, err
	}
	var v uint64
	for i := uint48Size - 1; i >= 0; i-- {
		v = v<<8 | uint64(buf[off+i])
	}
	return v, off + uint48Size, nil
}

// ReadLockTime reads a 48-bit lock time; the all-ones pattern means "locked until an unlocking event" (-1).
func ReadLockTime(buf []byte, off int) (int64, int, error) {
	v, next, err := ReadUint48(buf, off)
	if err != nil {
		return 0, off, err
	}
	if v == lockTimeUnlockEvent {
		return -1, next, nil
	}
	return int64(v), next, nil
}

// ReadUint64 reads a little-endian uint64.
func ReadUint64(buf []byte, off int) (uint64, int, error) {
	if err := need(buf, off, 8); err != nil {
		return 0, off, err
	}
	return binary.LittleEndian.Uint64(buf[off:]), off + 8, nil
}

// ReadFloat64 reads a little-endian IEEE-754 double.
func ReadFloat64(buf []byte, off int) (float64, int, error) {
	bits, next, err := ReadUint64(buf, off)
	if err != nil {
		return 0, off, err
	}
	return math.Float64frombits(bits), next, nil
}

// ReadVarInt reads an unsigned LEB128 varint.
func ReadVarInt(buf []byte, off int) (uint64, int, error) {
	if err := need(buf, off, 1); err != nil {
		return 0, off, err
	}
	v, n := binary.Uvarint(buf[off:])
	switch {
	case n == 0:
		return 0, off, decodeErr(off, "", fmt.Errorf("%w: varint continues past end of buffer", ErrTruncatedInput))
	case n < 0:
		return 0, off, decodeErr(off, "", fmt.Errorf("%w: varint longer than %d bytes", ErrMalformedLength, maxVarIntLen))
	}
	return v, off + n, nil
}

// ReadFixed returns a copy of the next n bytes.
func ReadFixed(buf []byte, off, n int) ([]byte, int, error) {
	if err := need(buf, off, n); err != nil {
		return nil, off, err
	}
	out := make([]byte, n)
	copy(out, buf[off:off+n])
	return out, off + n, nil
}

// ReadVarBytes reads a varint length followed by that many bytes.
func ReadVarBytes(buf []byte, off int) ([]byte, int, error) {
	n, next, err := ReadVarInt(buf, off)
	if err != nil {
		return nil, off, err
	}
	if n > uint64(len(buf)) {
		return nil, off, decodeErr(next, "", fmt.Errorf("%w: declared %d bytes, have %d", ErrTruncatedInput, n, len(buf)-next))
	}
	out, next, err := ReadFixed(buf, next, int(n))
	if err != nil {
		return nil, off, err
	}
	return out, next, nil
}

// DoubleHash applies sha256 twice.
func DoubleHash(b []byte) Hash {
	var h Hash
	copy(h[:], chainhash.DoubleHashB(b))
	return h
}
