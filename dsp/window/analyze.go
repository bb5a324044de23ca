package window

import "gonum.org/v1/gonum/floats"

// Metrics holds the scalar quality metrics derived per coefficient sequence.
type Metrics struct {
	// CoherentGain is sum(w[i]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins:
	// N * sum(w[i]^2) / sum(w[i])^2.
	ENBW float64
}

// Analyze computes the coherent gain and ENBW of a coefficient sequence.
func Analyze(coeffs []float64) (Metrics, error) {
	if len(coeffs) == 0 {
		return Metrics{}, errEmptyCoeffs
	}

	sum := floats.Sum(coeffs)
	if sum == 0 {
		return Metrics{}, errZeroCoherentGain
	}
	sumSq := floats.Dot(coeffs, coeffs)

	n := float64(len(coeffs))
	return Metrics{
		CoherentGain: sum / n,
		ENBW:         n * sumSq / (sum * sum),
	}, nil
}
