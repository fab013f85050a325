package mldsa

// Poly represents a polynomial in Z_Q[x]/<x^256+1>.
type Poly [N]int32

// Add computes a + b componentwise without reduction.
func Add(a, b, result *Poly) {
	for i := 0; i < N; i++ {
		result[i] = a[i] + b[i]
	}
}

// Sub computes a - b componentwise without reduction.
func Sub(a, b, result *Poly) {
	for i := 0; i < N; i++ {
		result[i] = a[i] - b[i]
	}
}

// PointwiseMont computes the componentwise Montgomery product of two
// polynomials in evaluation form: result[i] = a[i] * b[i] * R^-1 mod Q.
func PointwiseMont(a, b, result *Poly) {
	for i := 0; i < N; i++ {
		result[i] = montgomeryReduce(int64(a[i]) * int64(b[i]))
	}
}

// Freeze maps every coefficient to the canonical range [0, Q) in place.
func (p *Poly) Freeze() {
	for i := 0; i < N; i++ {
		p[i] = Freeze(p[i])
	}
}

// Equal returns true if two polynomials are equal coefficient-for-coefficient.
func Equal(a, b *Poly) bool {
	for i := 0; i < N; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SchoolbookMul computes the negacyclic product a * b mod (x^256+1, Q)
// by the O(n^2) method, with canonical output. Used as a correctness
// oracle for the transform pipeline.
func SchoolbookMul(a, b *Poly) Poly {
	var s [2 * N]int64
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			s[i+j] += int64(a[i]) * int64(b[j]) % Q
		}
	}

	var r Poly
	for i := 0; i < N; i++ {
		// x^256 = -1
		c := (s[i] - s[i+N]) % Q
		if c < 0 {
			c += Q
		}
		r[i] = int32(c)
	}
	return r
}
