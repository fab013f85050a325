// Package falcon implements the negacyclic NTT used by the Falcon
// signature family, over Z_Q[x]/<x^n+1> with Q = 12289 and n = 512 or
// 1024 (selected by logn).
//
// Coefficients are unsigned 16-bit residues kept in the canonical range
// [0, Q) at all times; products go through a 32-bit accumulator and a
// direct reduction. This mirrors the portable "clean" flavour of the
// scheme: no Montgomery domain, no SIMD.
package falcon

const (
	// Q is the prime modulus: 3 * 2^12 + 1
	Q = 12289

	// Generator is a primitive root of Z_Q* (order Q-1), from which the
	// per-degree 2n-th roots of unity are derived.
	Generator = 11

	// LogN512 and LogN1024 are the two supported size selectors.
	LogN512  = 9
	LogN1024 = 10
)

// add returns (a + b) mod Q.
func add(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	if sum >= Q {
		sum -= Q
	}
	return uint16(sum)
}

// sub returns (a - b) mod Q.
func sub(a, b uint16) uint16 {
	if a >= b {
		return a - b
	}
	return Q - b + a
}

// mul returns (a * b) mod Q through a 32-bit accumulator.
func mul(a, b uint16) uint16 {
	return uint16(uint32(a) * uint32(b) % Q)
}

// exp returns a^e mod Q using binary exponentiation.
func exp(a uint16, e uint32) uint16 {
	result := uint32(1)
	base := uint32(a)
	for e > 0 {
		if e&1 == 1 {
			result = result * base % Q
		}
		base = base * base % Q
		e >>= 1
	}
	return uint16(result)
}

// inv returns the modular inverse of a by Fermat's little theorem.
// Only used during table construction; not a hot path.
func inv(a uint16) uint16 {
	return exp(a, Q-2)
}
