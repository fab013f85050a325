package mldsa

import (
	"sync"
	"testing"
)

// Test twiddle table values against the reference implementation's table
func TestZetasFirst16(t *testing.T) {
	expected := []int32{
		4193792, 25847, 5771523, 7861508, 237124, 7602457, 7504169, 466468,
		1826347, 2353451, 8021166, 6288512, 3119733, 5495562, 3111497, 2680103,
	}
	zs := zetasTable()
	for i, want := range expected {
		if zs[i] != want {
			t.Errorf("zetas[%d] = %d, want %d", i, zs[i], want)
		}
	}
}

func TestZetasLast8(t *testing.T) {
	expected := []int32{
		7826001, 3919660, 8332111, 7018208, 3937738, 1400424, 7534263, 1976782,
	}
	zs := zetasTable()
	for i, want := range expected {
		if zs[N-8+i] != want {
			t.Errorf("zetas[%d] = %d, want %d", N-8+i, zs[N-8+i], want)
		}
	}
}

// All table entries must be canonical residues
func TestZetasRange(t *testing.T) {
	zs := zetasTable()
	for i, z := range zs {
		if z < 0 || z >= Q {
			t.Errorf("zetas[%d] = %d, outside [0, Q)", i, z)
		}
	}
}

// Concurrent first use must observe one fully built table
func TestZetasTableConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	ptrs := make([]*[N]int32, 32)
	for g := 0; g < 32; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			ptrs[g] = zetasTable()
		}(g)
	}
	wg.Wait()
	for g := 1; g < 32; g++ {
		if ptrs[g] != ptrs[0] {
			t.Fatalf("goroutine %d saw a different table", g)
		}
	}
}

// Test NTT of [1, 0, 0, ...] should be [1, 1, 1, ...]
func TestNTTOfOne(t *testing.T) {
	var cs Poly
	cs[0] = 1

	NTT(&cs)

	for i := 0; i < N; i++ {
		if cs[i] != 1 {
			t.Errorf("NTT([1,0,...])[%d] = %d, want 1", i, cs[i])
		}
	}
}

// Test NTT of the zero polynomial is the zero polynomial
func TestNTTOfZero(t *testing.T) {
	var cs Poly

	NTT(&cs)

	for i := 0; i < N; i++ {
		if cs[i] != 0 {
			t.Errorf("NTT(0)[%d] = %d, want 0", i, cs[i])
		}
	}
}

// Test frozen NTT(range(256)) first 8 values against the reference implementation
func TestNTTOfRangeFirst8(t *testing.T) {
	var cs Poly
	for i := 0; i < N; i++ {
		cs[i] = int32(i)
	}

	NTT(&cs)
	cs.Freeze()

	expected := []int32{
		8023823, 4949942, 5503697, 7227518, 4077164, 903461, 2287113, 3389395,
	}
	for i, want := range expected {
		if cs[i] != want {
			t.Errorf("NTT(range)[%d] = %d, want %d", i, cs[i], want)
		}
	}
}

// Test frozen NTT(range(256)) last 8 values against the reference implementation
func TestNTTOfRangeLast8(t *testing.T) {
	var cs Poly
	for i := 0; i < N; i++ {
		cs[i] = int32(i)
	}

	NTT(&cs)
	cs.Freeze()

	expected := []int32{
		2425536, 68499, 3777265, 7056830, 6555455, 981963, 8074937, 3279003,
	}
	for i, want := range expected {
		if cs[N-8+i] != want {
			t.Errorf("NTT(range)[%d] = %d, want %d", N-8+i, cs[N-8+i], want)
		}
	}
}

// Test NTT -> InvNTT roundtrip recovers canonical input exactly
func TestNTTRoundtrip(t *testing.T) {
	var original, cs Poly
	for i := 0; i < N; i++ {
		original[i] = int32(i * 29789 % Q)
		cs[i] = original[i]
	}

	NTT(&cs)
	InvNTT(&cs)

	for i := 0; i < N; i++ {
		if cs[i] != original[i] {
			t.Errorf("roundtrip failed at [%d]: got %d, want %d", i, cs[i], original[i])
		}
	}
}

// Test InvNTT equals InvNTTToMont plus the two-step normalization
func TestInvNTTModesAgree(t *testing.T) {
	var a, b Poly
	for i := 0; i < N; i++ {
		a[i] = int32((i*i + 7) % Q)
		b[i] = a[i]
	}

	InvNTT(&a)
	InvNTTToMont(&b)
	for i := 0; i < N; i++ {
		b[i] = Freeze(montgomeryReduce(int64(b[i])))
	}

	if !Equal(&a, &b) {
		t.Errorf("standard mode diverges from normalized Montgomery mode")
	}
}

// Test NTT linearity: NTT(a + b) = NTT(a) + NTT(b) mod Q
func TestNTTLinearity(t *testing.T) {
	var a, b, sum Poly
	for i := 0; i < N; i++ {
		a[i] = int32(i % Q)
		b[i] = int32(2 * i % Q)
		sum[i] = a[i] + b[i]
	}

	NTT(&sum)
	NTT(&a)
	NTT(&b)

	for i := 0; i < N; i++ {
		want := Freeze(a[i] + b[i])
		if got := Freeze(sum[i]); got != want {
			t.Errorf("NTT not linear at [%d]: NTT(a+b)=%d, NTT(a)+NTT(b)=%d", i, got, want)
		}
	}
}

// Benchmark NTT
func BenchmarkNTT(b *testing.B) {
	var cs Poly
	for i := 0; i < N; i++ {
		cs[i] = int32(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NTT(&cs)
	}
}

// Benchmark InvNTT
func BenchmarkInvNTT(b *testing.B) {
	var cs Poly
	for i := 0; i < N; i++ {
		cs[i] = int32(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		InvNTT(&cs)
	}
}
