package nuls

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	// AddressLength is the width of a NULS address: chain id (2), address type (1), hash160 (20).
	AddressLength = 23
	// HashLength is the width of a serialized digest: algorithm (1), digest length (1), digest (32).
	HashLength = 2 + DigestSize
	// DigestSize is the width of a double sha256 digest.
	DigestSize = 32

	digestAlgSHA256 = 0x00
)

// Hash is a double sha256 digest.
type Hash [DigestSize]byte

// DigestData returns the serialized digest-data form carried on the wire.
func (h Hash) DigestData() []byte {
	out := make([]byte, 0, HashLength)
	out = append(out, digestAlgSHA256, DigestSize)
	return append(out, h[:]...)
}

// String returns the hex of the digest-data form, the transaction identity used by the explorer.
func (h Hash) String() string {
	return hex.EncodeToString(h.DigestData())
}

// IsZero reports whether no digest was set.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

func hashFromDigestData(raw []byte, off int) (Hash, error) {
	if len(raw) != HashLength {
		return Hash{}, decodeErr(off, "", fmt.Errorf("%w: digest data is %d bytes, want %d", ErrMalformedLength, len(raw), HashLength))
	}
	if raw[0] != digestAlgSHA256 || raw[1] != DigestSize {
		return Hash{}, decodeErr(off, "", fmt.Errorf("%w: digest header %x", ErrMalformedLength, raw[:2]))
	}
	var h Hash
	copy(h[:], raw[2:])
	return h, nil
}

// ReadHash reads a fixed-width digest-data field.
func ReadHash(buf []byte, off int) (Hash, int, error) {
	raw, next, err := ReadFixed(buf, off, HashLength)
	if err != nil {
		return Hash{}, off, err
	}
	h, err := hashFromDigestData(raw, off)
	if err != nil {
		return Hash{}, off, err
	}
	return h, next, nil
}

// Address is a raw NULS address.
type Address []byte

// String returns the hex form used for persistence.
func (a Address) String() string {
	return hex.EncodeToString(a)
}

// Base58 returns the human readable form: base58 over the address and its xor checksum byte.
func (a Address) Base58() string {
	if len(a) == 0 {
		return ""
	}
	var xor byte
	for _, b := range a {
		xor ^= b
	}
	buf := make([]byte, 0, len(a)+1)
	buf = append(buf, a...)
	return base58.Encode(append(buf, xor))
}

// ReadAddress reads a fixed-width address field.
func ReadAddress(buf []byte, off int) (Address, int, error) {
	raw, next, err := ReadFixed(buf, off, AddressLength)
	if err != nil {
		return nil, off, err
	}
	return Address(raw), next, nil
}
