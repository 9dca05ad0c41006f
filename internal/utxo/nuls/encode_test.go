package nuls

import (
	"bytes"
	"encoding/binary"
	"math"
)

// wire builds serialized fixtures in the node's byte layout.
type wire struct {
	bytes.Buffer
}

func (w *wire) u8(v uint8) *wire {
	w.WriteByte(v)
	return w
}

func (w *wire) u16(v uint16) *wire {
	w.Write(binary.LittleEndian.AppendUint16(nil, v))
	return w
}

func (w *wire) u32(v uint32) *wire {
	w.Write(binary.LittleEndian.AppendUint32(nil, v))
	return w
}

func (w *wire) u48(v uint64) *wire {
	b := binary.LittleEndian.AppendUint64(nil, v)
	w.Write(b[:uint48Size])
	return w
}

func (w *wire) u64(v uint64) *wire {
	w.Write(binary.LittleEndian.AppendUint64(nil, v))
	return w
}

func (w *wire) f64(v float64) *wire {
	return w.u64(math.Float64bits(v))
}

func (w *wire) varint(v uint64) *wire {
	w.Write(binary.AppendUvarint(nil, v))
	return w
}

func (w *wire) varBytes(b []byte) *wire {
	w.varint(uint64(len(b)))
	w.Write(b)
	return w
}

func (w *wire) raw(b []byte) *wire {
	w.Write(b)
	return w
}

func (w *wire) hash(h Hash) *wire {
	return w.raw(h.DigestData())
}

func testAddress(seed byte) Address {
	a := make(Address, AddressLength)
	a[0], a[1], a[2] = 0x01, 0x00, 0x01
	for i := 3; i < AddressLength; i++ {
		a[i] = seed
	}
	return a
}

func testHash(seed byte) Hash {
	var h Hash
	for i := range h {
		h[i] = seed
	}
	return h
}

// outputCoin encodes an address-owned coin.
func (w *wire) outputCoin(owner Address, value uint64, lockTime uint64) *wire {
	return w.varBytes(owner).u64(value).u48(lockTime)
}

// inputCoin encodes a coin spending output index of from.
func (w *wire) inputCoin(from Hash, index uint8, value uint64, lockTime uint64) *wire {
	owner := append(from.DigestData(), index)
	return w.varBytes(owner).u64(value).u48(lockTime)
}

type fixtureCoin struct {
	from     Hash
	index    uint8
	owner    Address
	value    uint64
	lockTime uint64
}

// txFixture is a transaction whose parts are encoded in wire order.
type txFixture struct {
	txType     uint16
	time       uint64
	remark     []byte
	moduleData []byte
	inputs     []fixtureCoin
	outputs    []fixtureCoin
	scriptSig  []byte
}

func (f txFixture) body() []byte {
	w := &wire{}
	w.varBytes(f.remark).raw(f.moduleData)
	w.u8(uint8(len(f.inputs)))
	for _, c := range f.inputs {
		w.inputCoin(c.from, c.index, c.value, c.lockTime)
	}
	w.u8(uint8(len(f.outputs)))
	for _, c := range f.outputs {
		w.outputCoin(c.owner, c.value, c.lockTime)
	}
	return w.Bytes()
}

func (f txFixture) encode() []byte {
	w := &wire{}
	w.u16(f.txType).u48(f.time).raw(f.body()).varBytes(f.scriptSig)
	return w.Bytes()
}

// expectedHash recomputes the identity digest independently of the decoder.
func (f txFixture) expectedHash() Hash {
	pre := []byte{byte(f.txType), 0xFF}
	pre = binary.LittleEndian.AppendUint64(pre, f.time)
	pre = append(pre, f.body()...)
	return DoubleHash(pre)
}

func transferFixture() txFixture {
	return txFixture{
		txType:     uint16(TxTransfer),
		time:       1_530_000_000_000,
		remark:     []byte("hello"),
		moduleData: placeHolder,
		inputs: []fixtureCoin{
			{from: testHash(0xAA), index: 1, value: 600},
			{from: testHash(0xBB), index: 0, value: 500},
		},
		outputs: []fixtureCoin{
			{owner: testAddress(0x11), value: 900},
			{owner: testAddress(0x22), value: 100, lockTime: 1_600_000_000_000},
		},
		scriptSig: []byte{0x21, 0x02, 0x03},
	}
}
