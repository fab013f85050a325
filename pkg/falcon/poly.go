package falcon

// PolyAdd computes a + b componentwise mod Q.
func PolyAdd(a, b, result []uint16) {
	for i := range result {
		result[i] = add(a[i], b[i])
	}
}

// PolySub computes a - b componentwise mod Q.
func PolySub(a, b, result []uint16) {
	for i := range result {
		result[i] = sub(a[i], b[i])
	}
}

// Pointwise computes the componentwise product of two polynomials in
// evaluation form.
func Pointwise(a, b, result []uint16) {
	for i := range result {
		result[i] = mul(a[i], b[i])
	}
}

// Equal returns true if two polynomials are equal coefficient-for-coefficient.
func Equal(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SchoolbookMul computes the negacyclic product a * b mod (x^n+1, Q) by
// the O(n^2) method. Used as a correctness oracle for the transform
// pipeline.
func SchoolbookMul(a, b []uint16) []uint16 {
	n := len(a)
	s := make([]uint32, 2*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s[i+j] = (s[i+j] + uint32(a[i])*uint32(b[j])) % Q
		}
	}

	r := make([]uint16, n)
	for i := 0; i < n; i++ {
		// x^n = -1
		r[i] = sub(uint16(s[i]), uint16(s[i+n]))
	}
	return r
}
