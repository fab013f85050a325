// Package ntt is the unified entry point to the transform engines: it
// maps variant selectors to the per-ring implementations, validates
// buffers at the boundary, and exposes the two output modes of the
// ML-DSA inverse transform.
//
// All three ML-DSA security levels share one set of ring parameters, so
// the variant selector dispatches to a single implementation; Falcon
// variants are selected by the logarithmic degree instead.
package ntt

import (
	"errors"
	"fmt"

	"ntt-engine/pkg/falcon"
	"ntt-engine/pkg/mldsa"
)

// Variant selects an ML-DSA security level. All variants share the same
// ring Z_8380417[x]/<x^256+1> and produce bit-identical transforms.
type Variant int

const (
	MLDSA44 Variant = iota
	MLDSA65
	MLDSA87
)

// Mode selects the output scaling of the ML-DSA inverse transform.
type Mode int

const (
	// Standard yields canonical coefficients in [0, Q).
	Standard Mode = iota
	// MontgomeryScaled leaves the result scaled by the Montgomery
	// factor R = 2^32, the cheaper form when the output feeds further
	// Montgomery-domain arithmetic.
	MontgomeryScaled
)

var (
	// ErrNilBuffer reports a missing polynomial buffer.
	ErrNilBuffer = errors.New("ntt: nil buffer")
	// ErrInvalidRing reports an unrecognized variant or mode selector.
	ErrInvalidRing = errors.New("ntt: invalid ring selector")
	// ErrInvalidSize reports a buffer length that does not match the
	// ring degree, or an unsupported logn.
	ErrInvalidSize = errors.New("ntt: invalid size")
)

// ringDesc ties a variant to its ring parameters. All ML-DSA variants
// reference the same descriptor, keeping a single transform code path.
type ringDesc struct {
	q int32
	n int
}

var mldsaRing = ringDesc{q: mldsa.Q, n: mldsa.N}

var variants = map[Variant]*ringDesc{
	MLDSA44: &mldsaRing,
	MLDSA65: &mldsaRing,
	MLDSA87: &mldsaRing,
}

// Params reports the modulus and ring degree behind a variant selector.
func Params(v Variant) (q int32, n int, err error) {
	d, ok := variants[v]
	if !ok {
		return 0, 0, fmt.Errorf("%w: unknown variant %d", ErrInvalidRing, v)
	}
	return d.q, d.n, nil
}

// Forward transforms an ML-DSA polynomial in place from coefficient to
// evaluation form (bit-reversed order, unreduced coefficients). The
// buffer is not mutated on error.
func Forward(v Variant, p *mldsa.Poly) error {
	if p == nil {
		return fmt.Errorf("%w: polynomial", ErrNilBuffer)
	}
	if _, ok := variants[v]; !ok {
		return fmt.Errorf("%w: unknown variant %d", ErrInvalidRing, v)
	}
	mldsa.NTT(p)
	return nil
}

// Inverse transforms an ML-DSA polynomial in place from evaluation back
// to coefficient form. Standard mode yields canonical residues;
// MontgomeryScaled leaves the extra factor of R. The buffer is not
// mutated on error.
func Inverse(v Variant, p *mldsa.Poly, m Mode) error {
	if p == nil {
		return fmt.Errorf("%w: polynomial", ErrNilBuffer)
	}
	if _, ok := variants[v]; !ok {
		return fmt.Errorf("%w: unknown variant %d", ErrInvalidRing, v)
	}
	switch m {
	case Standard:
		mldsa.InvNTT(p)
	case MontgomeryScaled:
		mldsa.InvNTTToMont(p)
	default:
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidRing, m)
	}
	return nil
}

// FalconForward transforms a Falcon polynomial in place from coefficient
// to evaluation form. len(p) must equal 2^logn with logn 9 or 10. The
// buffer is not mutated on error.
func FalconForward(logn uint, p []uint16) error {
	tb, err := falconTable(logn, p)
	if err != nil {
		return err
	}
	falcon.NTT(p, tb)
	return nil
}

// FalconInverse transforms a Falcon polynomial in place from evaluation
// back to coefficient form, including the final division by n. The
// buffer is not mutated on error.
func FalconInverse(logn uint, p []uint16) error {
	tb, err := falconTable(logn, p)
	if err != nil {
		return err
	}
	falcon.InvNTT(p, tb)
	return nil
}

func falconTable(logn uint, p []uint16) (*falcon.Table, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: polynomial", ErrNilBuffer)
	}
	tb, err := falcon.TableFor(logn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, err)
	}
	if len(p) != tb.N {
		return nil, fmt.Errorf("%w: buffer length %d, ring degree %d", ErrInvalidSize, len(p), tb.N)
	}
	return tb, nil
}

// MulMLDSA returns the negacyclic product of two ML-DSA polynomials with
// canonical coefficients, computed through the transform pipeline. The
// inputs are left untouched.
func MulMLDSA(v Variant, a, b *mldsa.Poly) (*mldsa.Poly, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: polynomial", ErrNilBuffer)
	}
	if _, ok := variants[v]; !ok {
		return nil, fmt.Errorf("%w: unknown variant %d", ErrInvalidRing, v)
	}
	ah, bh := *a, *b
	mldsa.NTT(&ah)
	mldsa.NTT(&bh)
	var c mldsa.Poly
	// The R^-1 from the pointwise Montgomery product cancels against the
	// R folded into InvNTTToMont, so the result is already in standard
	// scaling and only needs a freeze.
	mldsa.PointwiseMont(&ah, &bh, &c)
	mldsa.InvNTTToMont(&c)
	c.Freeze()
	return &c, nil
}

// MulFalcon returns the negacyclic product of two Falcon polynomials
// with canonical coefficients, computed through the transform pipeline.
// The inputs are left untouched.
func MulFalcon(logn uint, a, b []uint16) ([]uint16, error) {
	tb, err := falconTable(logn, a)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("%w: polynomial", ErrNilBuffer)
	}
	if len(b) != tb.N {
		return nil, fmt.Errorf("%w: buffer length %d, ring degree %d", ErrInvalidSize, len(b), tb.N)
	}
	ah := append([]uint16(nil), a...)
	bh := append([]uint16(nil), b...)
	falcon.NTT(ah, tb)
	falcon.NTT(bh, tb)
	c := make([]uint16, tb.N)
	falcon.Pointwise(ah, bh, c)
	falcon.InvNTT(c, tb)
	return c, nil
}
