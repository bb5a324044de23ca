package window

import (
	"fmt"

	godsp "github.com/mjibson/go-dsp/window"

	"github.com/cwbudde/dsp-refgen/dsp/core"
)

// canonicalSources maps families to the canonical external implementation
// used as the source of truth for coefficient values. Families without an
// entry fall back to the closed form as authoritative.
var canonicalSources = map[Type]func(int) []float64{
	TypeHann:     godsp.Hann,
	TypeHamming:  godsp.Hamming,
	TypeBlackman: godsp.Blackman,
}

const canonicalTolerance = 1e-12

// verifyCanonical compares closed-form coefficients against the canonical
// implementation for the family, when one is wired. Divergence beyond
// tolerance is a generation-time error, never a silently accepted
// discrepancy.
func verifyCanonical(t Type, coeffs []float64) error {
	source, ok := canonicalSources[t]
	if !ok || len(coeffs) <= 1 {
		return nil
	}

	want := source(len(coeffs))
	if len(want) != len(coeffs) {
		return fmt.Errorf("canonical %s window length mismatch: %d != %d", t, len(want), len(coeffs))
	}

	for i := range coeffs {
		if !core.NearlyEqual(coeffs[i], want[i], canonicalTolerance) {
			return fmt.Errorf("%s window diverges from canonical value at index %d: %v != %v",
				t, i, coeffs[i], want[i])
		}
	}
	return nil
}
