package transform

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/dsp-refgen/dsp/core"
	"github.com/cwbudde/dsp-refgen/dsp/signal"
)

// Result holds the canonical transform of one signal case together with its
// derived statistics. All four sequences have the length of the source
// signal.
type Result struct {
	Re            []float64
	Im            []float64
	Magnitude     []float64
	Phase         []float64
	PeakBin       int
	PeakMagnitude float64
	PeakPhase     float64
}

// Analyze computes the forward transform of samples and derives magnitude,
// phase, and peak statistics. When excludeDC is set, bin 0 is left out of the
// peak search (any case not specifically testing a DC level).
func Analyze(samples []float64, excludeDC bool) (Result, error) {
	re, im, err := Forward(samples)
	if err != nil {
		return Result{}, err
	}

	n := len(re)
	magnitude := make([]float64, n)
	vecmath.Magnitude(magnitude, re, im)
	if idx := core.FirstNonFinite(magnitude); idx >= 0 {
		return Result{}, fmt.Errorf("magnitude non-finite at bin %d: %v", idx, magnitude[idx])
	}

	phase := make([]float64, n)
	for i := range phase {
		phase[i] = math.Atan2(im[i], re[i])
	}

	peak := PeakBin(magnitude, excludeDC)

	return Result{
		Re:            re,
		Im:            im,
		Magnitude:     magnitude,
		Phase:         phase,
		PeakBin:       peak,
		PeakMagnitude: magnitude[peak],
		PeakPhase:     phase[peak],
	}, nil
}

// AnalyzeCase analyzes a catalog case, applying the DC-bin exclusion rule
// derived from the case kind.
func AnalyzeCase(c signal.Case) (Result, error) {
	result, err := Analyze(c.Samples, !c.Kind.IsDCLevel())
	if err != nil {
		return Result{}, fmt.Errorf("case %q: %w", c.Name, err)
	}
	return result, nil
}

// PeakBin returns the index of the largest magnitude bin. With excludeDC set
// and more than one bin present, bin 0 is skipped. Ties resolve to the lowest
// index.
func PeakBin(magnitude []float64, excludeDC bool) int {
	if excludeDC && len(magnitude) > 1 {
		return floats.MaxIdx(magnitude[1:]) + 1
	}
	return floats.MaxIdx(magnitude)
}
