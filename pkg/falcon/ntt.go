package falcon

import (
	"fmt"
	"math/bits"
	"sync"
)

// Table holds the precomputed twiddle factors for one polynomial degree.
// Zetas[k] = g^brv(k) mod Q for the logn-bit bit reversal brv, where g is
// the primitive 2n-th root of unity; the forward passes read it
// sequentially through a single cursor. InvZetas is the mirrored,
// sign-folded sequence consumed the same way by the inverse passes, and
// InvN is n^-1 mod Q for the final scaling. Tables are immutable after
// construction and safe to share across concurrent transforms.
type Table struct {
	LogN     uint
	N        int
	Zetas    []uint16
	InvZetas []uint16
	InvN     uint16
}

var tables [LogN1024 + 1]struct {
	once sync.Once
	tb   *Table
}

// TableFor returns the twiddle table for the given size selector,
// building it on first use. Exactly one construction happens per logn
// even under concurrent first callers. Unsupported selectors are
// rejected before any construction.
func TableFor(logn uint) (*Table, error) {
	if logn != LogN512 && logn != LogN1024 {
		return nil, fmt.Errorf("unsupported logn %d (want %d or %d)", logn, LogN512, LogN1024)
	}
	e := &tables[logn]
	e.once.Do(func() {
		e.tb = newTable(logn)
	})
	return e.tb, nil
}

func newTable(logn uint) *Table {
	n := 1 << logn
	g := exp(Generator, uint32((Q-1)/(2*n)))

	tb := &Table{
		LogN:     logn,
		N:        n,
		Zetas:    make([]uint16, n),
		InvZetas: make([]uint16, n-1),
		InvN:     inv(uint16(n)),
	}
	for k := 0; k < n; k++ {
		r := bits.Reverse16(uint16(k)) >> (16 - logn)
		tb.Zetas[k] = exp(g, uint32(r))
	}
	// The inverse passes need the same factors in reverse order and
	// negated (g^n = -1 folds the sign into the table).
	for c := 0; c < n-1; c++ {
		tb.InvZetas[c] = Q - tb.Zetas[n-1-c]
	}
	return tb
}

// NTT computes the forward transform of p in place using tb.
// Input: canonical coefficients in standard order, len(p) = tb.N.
// Output: evaluation form in bit-reversed order, canonical range.
func NTT(p []uint16, tb *Table) {
	n := tb.N
	k := 1
	for layer := n / 2; layer >= 1; layer /= 2 {
		for offset := 0; offset < n-layer; offset += 2 * layer {
			z := tb.Zetas[k]
			k++
			for j := offset; j < offset+layer; j++ {
				t := mul(z, p[j+layer])
				p[j+layer] = sub(p[j], t)
				p[j] = add(p[j], t)
			}
		}
	}
}

// InvNTT computes the inverse transform of p in place using tb,
// including the final division by n. Input: evaluation form in
// bit-reversed order, len(p) = tb.N. Output: canonical coefficients in
// standard order.
func InvNTT(p []uint16, tb *Table) {
	n := tb.N
	c := 0
	for layer := 1; layer < n; layer *= 2 {
		for offset := 0; offset < n-layer; offset += 2 * layer {
			z := tb.InvZetas[c]
			c++
			for j := offset; j < offset+layer; j++ {
				t := p[j]
				p[j] = add(t, p[j+layer])
				p[j+layer] = mul(z, sub(t, p[j+layer]))
			}
		}
	}
	for j := 0; j < n; j++ {
		p[j] = mul(p[j], tb.InvN)
	}
}
