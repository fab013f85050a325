// Package hash provides the SHAKE-based extendable-output functions the
// samplers draw from.
package hash

import (
	"golang.org/x/crypto/sha3"
)

// XOF128 returns SHAKE-128 output for seed||nonce.
func XOF128(seed []byte, nonce uint16) []byte {
	h := sha3.NewShake128()
	h.Write(seed)
	h.Write([]byte{byte(nonce & 0xFF), byte(nonce >> 8)})
	out := make([]byte, 1344)
	h.Read(out)
	return out
}

// StreamingXOF128 provides incremental SHAKE-128 output.
type StreamingXOF128 struct {
	h   sha3.ShakeHash
	buf [168]byte // SHAKE128 rate
	pos int
	end int
}

// NewStreamingXOF128 creates a streaming XOF for seed||nonce.
func NewStreamingXOF128(seed []byte, nonce uint16) *StreamingXOF128 {
	h := sha3.NewShake128()
	h.Write(seed)
	h.Write([]byte{byte(nonce & 0xFF), byte(nonce >> 8)})
	return &StreamingXOF128{h: h}
}

func (x *StreamingXOF128) refill(need int) {
	if x.pos+need <= x.end {
		return
	}
	// Copy leftover bytes to beginning, then refill the rest
	leftover := x.end - x.pos
	if leftover > 0 {
		copy(x.buf[:leftover], x.buf[x.pos:x.end])
	}
	n, _ := x.h.Read(x.buf[leftover:])
	x.pos = 0
	x.end = leftover + n
}

// Read2 returns the next 2 bytes from the XOF.
func (x *StreamingXOF128) Read2() (b0, b1 byte) {
	x.refill(2)
	b0, b1 = x.buf[x.pos], x.buf[x.pos+1]
	x.pos += 2
	return
}

// Read3 returns the next 3 bytes from the XOF.
func (x *StreamingXOF128) Read3() (b0, b1, b2 byte) {
	x.refill(3)
	b0, b1, b2 = x.buf[x.pos], x.buf[x.pos+1], x.buf[x.pos+2]
	x.pos += 3
	return
}

// Reset reinitializes the XOF for a new seed||nonce.
func (x *StreamingXOF128) Reset(seed []byte, nonce uint16) {
	x.h.Reset()
	x.h.Write(seed)
	x.h.Write([]byte{byte(nonce & 0xFF), byte(nonce >> 8)})
	x.pos = 0
	x.end = 0
}

// NewStreamingXOF128Reusable creates a reusable streaming XOF.
func NewStreamingXOF128Reusable() *StreamingXOF128 {
	return &StreamingXOF128{h: sha3.NewShake128()}
}
