package transform

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/dsp-refgen/dsp/core"
)

// Convention statements recorded verbatim in fixture documents so consumers
// can detect sign or normalization mismatches.
const (
	ConventionForward       = "X[k] = sum_{n=0..N-1} x[n] * exp(-j*2*pi*k*n/N)"
	ConventionInverse       = "x[n] = (1/N) * sum_{k=0..N-1} X[k] * exp(+j*2*pi*k*n/N)"
	ConventionNormalization = "none"
)

// planAgreementEps scales the tolerance for the FFT backend verification.
// The effective per-bin tolerance is planAgreementEps * (1 + sum|x|), since
// sum|x| bounds every output bin.
const planAgreementEps = 1e-10

// Forward computes the unnormalized forward DFT of x and returns the real
// and imaginary part sequences, each of length len(x).
func Forward(x []float64) (re, im []float64, err error) {
	if len(x) == 0 {
		return nil, nil, fmt.Errorf("forward transform input must not be empty")
	}

	re, im = directDFT(x)

	if idx := core.FirstNonFinite(re); idx >= 0 {
		return nil, nil, fmt.Errorf("forward transform produced non-finite real part at bin %d: %v", idx, re[idx])
	}
	if idx := core.FirstNonFinite(im); idx >= 0 {
		return nil, nil, fmt.Errorf("forward transform produced non-finite imaginary part at bin %d: %v", idx, im[idx])
	}

	if isPowerOfTwo(len(x)) {
		if err := verifyAgainstPlan(x, re, im); err != nil {
			return nil, nil, err
		}
	}

	return re, im, nil
}

// Inverse computes the inverse DFT (with 1/N scaling) of a spectrum given as
// separate real and imaginary parts, returning the reconstructed time-domain
// real and imaginary sequences.
func Inverse(re, im []float64) (timeRe, timeIm []float64, err error) {
	if len(re) == 0 {
		return nil, nil, fmt.Errorf("inverse transform input must not be empty")
	}
	if len(re) != len(im) {
		return nil, nil, fmt.Errorf("inverse transform part length mismatch: %d != %d", len(re), len(im))
	}

	n := len(re)
	cosTab, sinTab := twiddleTables(n)
	invN := 1 / float64(n)

	timeRe = make([]float64, n)
	timeIm = make([]float64, n)
	for i := 0; i < n; i++ {
		var sumRe, sumIm float64
		for k := 0; k < n; k++ {
			m := (i * k) % n
			c, s := cosTab[m], sinTab[m]
			sumRe += re[k]*c - im[k]*s
			sumIm += re[k]*s + im[k]*c
		}
		timeRe[i] = sumRe * invN
		timeIm[i] = sumIm * invN
	}
	return timeRe, timeIm, nil
}

// directDFT evaluates the defining sum. Twiddle arguments are reduced
// modulo n before the trigonometric evaluation, which keeps angles in
// [0, 2*pi) and avoids precision loss from large k*n products.
func directDFT(x []float64) (re, im []float64) {
	n := len(x)
	cosTab, sinTab := twiddleTables(n)

	re = make([]float64, n)
	im = make([]float64, n)
	for k := 0; k < n; k++ {
		var sumRe, sumIm float64
		for i, v := range x {
			m := (k * i) % n
			sumRe += v * cosTab[m]
			sumIm -= v * sinTab[m]
		}
		re[k] = sumRe
		im[k] = sumIm
	}
	return re, im
}

func twiddleTables(n int) (cosTab, sinTab []float64) {
	cosTab = make([]float64, n)
	sinTab = make([]float64, n)
	for m := range cosTab {
		angle := 2 * math.Pi * float64(m) / float64(n)
		cosTab[m] = math.Cos(angle)
		sinTab[m] = math.Sin(angle)
	}
	return cosTab, sinTab
}

// verifyAgainstPlan recomputes the spectrum with the FFT backend and reports
// a numeric anomaly if any bin disagrees with the direct evaluation.
func verifyAgainstPlan(x, re, im []float64) error {
	n := len(x)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return fmt.Errorf("fft verification plan for n=%d: %w", n, err)
	}

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return fmt.Errorf("fft verification forward for n=%d: %w", n, err)
	}

	tol := planAgreementEps * (1 + core.SumAbs(x))
	for k := range out {
		if math.Abs(re[k]-real(out[k])) > tol || math.Abs(im[k]-imag(out[k])) > tol {
			return fmt.Errorf("transform disagreement at bin %d: dft=(%v,%v) fft=(%v,%v) tol=%v",
				k, re[k], im[k], real(out[k]), imag(out[k]), tol)
		}
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
