package window

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestCoefficientsAllFamilies(t *testing.T) {
	sizes := []int{1, 2, 3, 4, 8, 64, 1024}

	for _, typ := range Types() {
		t.Run(typ.String(), func(t *testing.T) {
			for _, n := range sizes {
				w, err := Coefficients(typ, n)
				if err != nil {
					t.Fatalf("Coefficients(%v, %d) error = %v", typ, n, err)
				}
				if len(w) != n {
					t.Fatalf("n=%d: len=%d", n, len(w))
				}
				for i, v := range w {
					if math.IsNaN(v) || math.IsInf(v, 0) {
						t.Fatalf("n=%d coefficient[%d] invalid: %v", n, i, v)
					}
				}
			}
		})
	}
}

func TestCoefficientsSymmetry(t *testing.T) {
	for _, typ := range Types() {
		for _, n := range []int{2, 3, 16, 65, 1024} {
			w, err := Coefficients(typ, n)
			if err != nil {
				t.Fatalf("Coefficients(%v, %d) error = %v", typ, n, err)
			}
			for i := range w {
				if !almostEqual(w[i], w[n-1-i], 1e-12) {
					t.Fatalf("%v n=%d: w[%d]=%v != w[%d]=%v", typ, n, i, w[i], n-1-i, w[n-1-i])
				}
			}
		}
	}
}

func TestCoefficientsEdgeValues(t *testing.T) {
	// Symmetric forms pin the edge coefficients of the classic families.
	tests := []struct {
		typ  Type
		edge float64
	}{
		{TypeHann, 0},
		{TypeHamming, 0.08},
		{TypeBlackman, 0},
	}

	for _, tt := range tests {
		w, err := Coefficients(tt.typ, 33)
		if err != nil {
			t.Fatalf("Coefficients(%v) error = %v", tt.typ, err)
		}
		if !almostEqual(w[0], tt.edge, 1e-12) {
			t.Fatalf("%v: w[0]=%v, want %v", tt.typ, w[0], tt.edge)
		}
		if !almostEqual(w[32], tt.edge, 1e-12) {
			t.Fatalf("%v: w[32]=%v, want %v", tt.typ, w[32], tt.edge)
		}
	}
}

func TestCoefficientsAgreeWithCanonicalSources(t *testing.T) {
	for typ, source := range canonicalSources {
		for _, n := range []int{2, 3, 8, 33, 1024} {
			w, err := Coefficients(typ, n)
			if err != nil {
				t.Fatalf("Coefficients(%v, %d) error = %v", typ, n, err)
			}
			want := source(n)
			if len(want) != n {
				t.Fatalf("%v n=%d: canonical length %d", typ, n, len(want))
			}
			for i := range w {
				if !almostEqual(w[i], want[i], canonicalTolerance) {
					t.Fatalf("%v n=%d: w[%d]=%v, canonical %v", typ, n, i, w[i], want[i])
				}
			}
		}
	}
}

func TestCanonicalSourcesCoverCosineFamilies(t *testing.T) {
	for _, typ := range []Type{TypeHann, TypeHamming, TypeBlackman} {
		if _, ok := canonicalSources[typ]; !ok {
			t.Fatalf("%v has no canonical source wired", typ)
		}
	}
}

func TestDegenerateLengthsAreOnes(t *testing.T) {
	for _, typ := range Types() {
		w, err := Coefficients(typ, 1)
		if err != nil {
			t.Fatalf("Coefficients(%v, 1) error = %v", typ, err)
		}
		if len(w) != 1 || w[0] != 1 {
			t.Fatalf("%v: w=%v, want [1]", typ, w)
		}
	}
}

func TestCoefficientsInvalidLength(t *testing.T) {
	for _, n := range []int{0, -4} {
		if _, err := Coefficients(TypeHann, n); err == nil {
			t.Fatalf("expected error for n=%d", n)
		}
	}
}

func TestRectangularSumIsExactlyN(t *testing.T) {
	for _, n := range []int{1, 4, 64, 4096} {
		w, err := Coefficients(TypeRectangular, n)
		if err != nil {
			t.Fatalf("Coefficients error = %v", err)
		}
		sum := 0.0
		for _, v := range w {
			sum += v
		}
		if sum != float64(n) {
			t.Fatalf("n=%d: sum=%v, want exact %d", n, sum, n)
		}
	}
}

func TestAnalyzeRectangular(t *testing.T) {
	w, err := Coefficients(TypeRectangular, 4)
	if err != nil {
		t.Fatalf("Coefficients error = %v", err)
	}

	m, err := Analyze(w)
	if err != nil {
		t.Fatalf("Analyze error = %v", err)
	}
	if m.CoherentGain != 1.0 {
		t.Fatalf("coherent gain = %v, want 1.0", m.CoherentGain)
	}
	if m.ENBW != 1.0 {
		t.Fatalf("enbw = %v, want 1.0", m.ENBW)
	}
}

func TestAnalyzeHannApproachesTextbookValues(t *testing.T) {
	w, err := Coefficients(TypeHann, 4096)
	if err != nil {
		t.Fatalf("Coefficients error = %v", err)
	}

	m, err := Analyze(w)
	if err != nil {
		t.Fatalf("Analyze error = %v", err)
	}
	if !almostEqual(m.CoherentGain, 0.5, 1e-3) {
		t.Fatalf("coherent gain = %v, want ~0.5", m.CoherentGain)
	}
	if !almostEqual(m.ENBW, 1.5, 1e-2) {
		t.Fatalf("enbw = %v, want ~1.5", m.ENBW)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	if _, err := Analyze(nil); err == nil {
		t.Fatal("expected error for empty coefficients")
	}
	if _, err := Analyze([]float64{1, -1}); err == nil {
		t.Fatal("expected error for zero coherent gain")
	}
}

func TestParse(t *testing.T) {
	for _, typ := range Types() {
		got, err := Parse(typ.String())
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", typ.String(), err)
		}
		if got != typ {
			t.Fatalf("Parse(%q) = %v, want %v", typ.String(), got, typ)
		}
	}

	if _, err := Parse("kaiser"); err == nil {
		t.Fatal("expected error for unknown family")
	}
}

func TestApplyCoefficients(t *testing.T) {
	coeffs, err := Coefficients(TypeHann, 4)
	if err != nil {
		t.Fatalf("Coefficients error = %v", err)
	}

	out, err := ApplyCoefficients([]float64{2, 2, 2, 2}, coeffs)
	if err != nil {
		t.Fatalf("ApplyCoefficients error = %v", err)
	}
	want := []float64{0, 1.5, 1.5, 0}
	for i := range out {
		if !almostEqual(out[i], want[i], 1e-12) {
			t.Fatalf("out[%d]=%v, want %v", i, out[i], want[i])
		}
	}

	if _, err := ApplyCoefficients([]float64{1, 2}, coeffs); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}
