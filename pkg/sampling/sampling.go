// Package sampling derives uniform ring elements from a SHAKE stream by
// rejection sampling, the way the signature schemes expand seeds into
// polynomials. It also gives the tests deterministic, reproducible
// transform inputs.
package sampling

import (
	"fmt"

	"ntt-engine/pkg/falcon"
	"ntt-engine/pkg/hash"
	"ntt-engine/pkg/mldsa"
)

// UniformMLDSA samples a polynomial with coefficients uniform in
// [0, 8380417) from SHAKE-128(seed||nonce). Candidates are 23-bit
// little-endian values; out-of-range ones are rejected.
func UniformMLDSA(seed []byte, nonce uint16) mldsa.Poly {
	stream := hash.XOF128(seed, nonce)
	var cs mldsa.Poly
	idx := 0
	i := 0
	for i < mldsa.N {
		if idx+3 > len(stream) {
			panic("sampling: stream too short")
		}
		d := (uint32(stream[idx]) + (uint32(stream[idx+1]) << 8) + (uint32(stream[idx+2]) << 16)) & 0x7FFFFF
		idx += 3
		if d < mldsa.Q {
			cs[i] = int32(d)
			i++
		}
	}
	return cs
}

// UniformFalcon samples a polynomial of degree 2^logn with coefficients
// uniform in [0, 12289) from SHAKE-128(seed||nonce). Candidates are
// 14-bit little-endian values; out-of-range ones are rejected.
func UniformFalcon(seed []byte, nonce uint16, logn uint) ([]uint16, error) {
	if logn != falcon.LogN512 && logn != falcon.LogN1024 {
		return nil, fmt.Errorf("sampling: unsupported logn %d", logn)
	}
	n := 1 << logn
	xof := hash.NewStreamingXOF128(seed, nonce)
	cs := make([]uint16, n)
	i := 0
	for i < n {
		b0, b1 := xof.Read2()
		d := (uint16(b0) | uint16(b1)<<8) & 0x3FFF
		if d < falcon.Q {
			cs[i] = d
			i++
		}
	}
	return cs, nil
}
