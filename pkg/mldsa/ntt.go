package mldsa

import (
	"math/bits"
	"sync"
)

// The twiddle table holds Zetas[k] = Zeta^brv(k) * R mod Q for the 8-bit
// bit reversal brv, in Montgomery form so the butterfly multiplications
// stay in the Montgomery domain. The layout is stage-major: each forward
// pass reads the table sequentially through a single cursor, and the
// inverse passes walk the same table backwards using Zeta^128 = -1.
var (
	zetasOnce sync.Once
	zetas     [N]int32
)

// zetasTable returns the twiddle table, building it on first use.
// The table is immutable once built and safe for concurrent readers.
func zetasTable() *[N]int32 {
	zetasOnce.Do(func() {
		for k := 0; k < N; k++ {
			z := exp(Zeta, uint32(bits.Reverse8(uint8(k))))
			zetas[k] = int32((uint64(z) << 32) % Q)
		}
	})
	return &zetas
}

// NTT computes the forward transform in place.
// Input: coefficients in standard order with |c| <= Q.
// Output: evaluation form in bit-reversed order. Coefficients are left
// unreduced (bounded by 9Q in absolute value); apply Freeze where the
// canonical range is needed.
func NTT(p *Poly) {
	zs := zetasTable()
	k := 0
	for layer := N / 2; layer >= 1; layer /= 2 {
		for offset := 0; offset < N-layer; offset += 2 * layer {
			k++
			z := int64(zs[k])
			for j := offset; j < offset+layer; j++ {
				t := montgomeryReduce(z * int64(p[j+layer]))
				p[j+layer] = p[j] - t
				p[j] = p[j] + t
			}
		}
	}
}

// InvNTTToMont computes the inverse transform in place, leaving the
// result in Montgomery form (scaled by R relative to the standard
// output). The final multiplication by 256^-1 is folded into one
// Montgomery multiplication per coefficient.
// Input: evaluation form in bit-reversed order, coefficients bounded by
// 9Q in absolute value (the forward transform's output bound; pointwise
// Montgomery products stay below Q). Intermediate magnitudes double per
// pass and remain within int32 for transforms of canonical inputs.
// Output: coefficients in standard order, |c| < Q.
func InvNTTToMont(p *Poly) {
	checkRange(p, 9*Q)
	zs := zetasTable()
	k := N
	for layer := 1; layer < N; layer *= 2 {
		for offset := 0; offset < N-layer; offset += 2 * layer {
			k--
			z := -int64(zs[k])
			for j := offset; j < offset+layer; j++ {
				t := p[j]
				p[j] = t + p[j+layer]
				p[j+layer] = t - p[j+layer]
				p[j+layer] = montgomeryReduce(z * int64(p[j+layer]))
			}
		}
	}
	for j := 0; j < N; j++ {
		p[j] = montgomeryReduce(FInv * int64(p[j]))
	}
}

// InvNTT computes the inverse transform in place with standard-form
// output: canonical coefficients in [0, Q). It is InvNTTToMont followed
// by one Montgomery reduction and one Freeze per coefficient, so the two
// modes agree up to the documented factor of R.
func InvNTT(p *Poly) {
	InvNTTToMont(p)
	for j := 0; j < N; j++ {
		p[j] = Freeze(montgomeryReduce(int64(p[j])))
	}
}
