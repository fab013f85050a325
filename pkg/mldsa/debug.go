//go:build nttdebug

package mldsa

import "fmt"

// checkRange panics if any coefficient lies outside (-bound, bound).
// Only compiled under the nttdebug tag; catches out-of-contract inputs
// that would otherwise silently overflow the 32-bit lazy arithmetic.
func checkRange(p *Poly, bound int32) {
	for i, c := range p {
		if c <= -bound || c >= bound {
			panic(fmt.Sprintf("mldsa: coefficient %d out of range: %d", i, c))
		}
	}
}
