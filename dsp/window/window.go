// Package window generates symmetric window coefficient sequences and their
// scalar quality metrics for the reference fixture set.
//
// The family set is a closed enumeration. Each family maps to an explicit
// closed-form formula; coefficients computed here are cross-checked against a
// canonical external implementation where one is available.
package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window family.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

var typeNames = map[Type]string{
	TypeRectangular: "rect",
	TypeHann:        "hann",
	TypeHamming:     "hamming",
	TypeBlackman:    "blackman",
}

// String returns the stable family tag used in fixture documents.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Types returns all window families in document order.
func Types() []Type {
	return []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman}
}

// Parse resolves a family tag to its Type. Unknown tags are a configuration
// error; there is no default family.
func Parse(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown window type %q (known: rect, hann, hamming, blackman)", name)
}

// formulas maps each family to its symmetric closed form. The map is the
// single dispatch point; a family without an entry cannot be generated.
var formulas = map[Type]func(n int) []float64{
	TypeRectangular: rectangular,
	TypeHann:        hannSym,
	TypeHamming:     hammingSym,
	TypeBlackman:    blackmanSym,
}

// Coefficients returns the symmetric (non-periodic) coefficient sequence of
// the given family and length. For n <= 1 every family degenerates to ones.
// When a canonical external implementation of the family is wired, the closed
// form is verified against it and any divergence beyond tolerance is an error.
func Coefficients(t Type, n int) ([]float64, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}

	formula, ok := formulas[t]
	if !ok {
		return nil, fmt.Errorf("unknown window type: %d", int(t))
	}

	coeffs := formula(n)
	if err := verifyCanonical(t, coeffs); err != nil {
		return nil, err
	}
	return coeffs, nil
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

func rectangular(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

func hannSym(n int) []float64 {
	if n <= 1 {
		return rectangular(n)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return out
}

func hammingSym(n int) []float64 {
	if n <= 1 {
		return rectangular(n)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return out
}

func blackmanSym(n int) []float64 {
	if n <= 1 {
		return rectangular(n)
	}

	const a0, a1, a2 = 0.42, 0.5, 0.08

	out := make([]float64, n)
	for i := range out {
		f := 2 * math.Pi * float64(i) / float64(n-1)
		out[i] = a0 - a1*math.Cos(f) + a2*math.Cos(2*f)
	}
	return out
}
