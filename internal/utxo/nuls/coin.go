package nuls

import (
	"encoding/hex"
	"fmt"
)

// SpendRef is the digest part of a spend reference as carried on the wire, usually digest data.
type SpendRef []byte

// String returns the hex of the raw reference; for digest data it equals Hash.String.
func (r SpendRef) String() string {
	return hex.EncodeToString(r)
}

// Coin is either an input spending a prior output or an output owned by an address.
// Exactly one of FromHash or Address is set.
type Coin struct {
	FromHash  SpendRef
	FromIndex uint8
	Address   Address
	Value     uint64
	LockTime  int64
}

// IsSpendReference reports whether the coin references a prior output.
func (c Coin) IsSpendReference() bool {
	return c.FromHash != nil
}

// DecodeCoin parses one coin at off. An owner field longer than an address is a spend reference of
// any length: the reference bytes followed by the output index byte.
func DecodeCoin(buf []byte, off int) (Coin, int, error) {
	var c Coin

	owner, next, err := ReadVarBytes(buf, off)
	if err != nil {
		return Coin{}, off, withField(err, "coin owner")
	}
	if len(owner) > AddressLength {
		c.FromHash = append(SpendRef(nil), owner[:len(owner)-1]...)
		c.FromIndex = owner[len(owner)-1]
	} else {
		c.Address = Address(owner)
	}

	if c.Value, next, err = ReadUint64(buf, next); err != nil {
		return Coin{}, off, withField(err, "coin value")
	}
	if c.LockTime, next, err = ReadLockTime(buf, next); err != nil {
		return Coin{}, off, withField(err, "coin lockTime")
	}
	return c, next, nil
}

func (c Coin) String() string {
	if c.IsSpendReference() {
		return fmt.Sprintf("coin %s:%d value=%d lock=%d", c.FromHash, c.FromIndex, c.Value, c.LockTime)
	}
	return fmt.Sprintf("coin %s value=%d lock=%d", c.Address, c.Value, c.LockTime)
}
