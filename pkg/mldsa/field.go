// Package mldsa implements the negacyclic NTT used by the ML-DSA
// signature family, over Z_Q[x]/<x^256+1> with Q = 2^23 - 2^13 + 1.
//
// Coefficients are signed 32-bit residues. Multiplications go through
// Montgomery reduction with R = 2^32; additions and subtractions inside
// the transform are left unreduced and only brought back to canonical
// range by an explicit Freeze at the boundary.
package mldsa

const (
	// Q is the prime modulus: 2^23 - 2^13 + 1
	Q = 8380417

	// QInv is Q^-1 mod 2^32
	QInv = 58728449

	// N is the polynomial degree (ring is Z_Q[x]/<x^256+1>)
	N = 256

	// NBits is log2(N)
	NBits = 8

	// Zeta is a 512th primitive root of unity in Z_Q
	Zeta = 1753

	// RModQ is the Montgomery factor R = 2^32 mod Q
	RModQ = 4193792

	// R2ModQ is R^2 = 2^64 mod Q
	R2ModQ = 2365951

	// FInv is 256^-1 * R^2 mod Q, the combined scaling applied at the
	// end of the inverse transform.
	FInv = 41978
)

// montgomeryReduce returns r congruent to a * R^-1 mod Q with |r| < Q,
// for |a| < 2^31 * Q. No division by Q takes place.
func montgomeryReduce(a int64) int32 {
	t := int32(uint32(a) * QInv)
	return int32((a - int64(t)*Q) >> 32)
}

// reduce32 returns r congruent to a mod Q with r in (-6283009, 6283008],
// for a <= 2^31 - 2^22.
func reduce32(a int32) int32 {
	t := (a + (1 << 22)) >> 23
	return a - t*Q
}

// caddq adds Q to a if a is negative.
func caddq(a int32) int32 {
	return a + ((a >> 31) & Q)
}

// Freeze maps any residue with |a| <= 2^31 - 2^22 to the canonical
// range [0, Q).
func Freeze(a int32) int32 {
	return caddq(reduce32(a))
}

// toMont converts a to Montgomery form: a * R mod Q.
func toMont(a int32) int32 {
	return montgomeryReduce(int64(a) * R2ModQ)
}

// exp returns a^e mod Q using binary exponentiation.
func exp(a uint32, e uint32) uint32 {
	result := uint64(1)
	base := uint64(a)
	for e > 0 {
		if e&1 == 1 {
			result = (result * base) % Q
		}
		base = (base * base) % Q
		e >>= 1
	}
	return uint32(result)
}
