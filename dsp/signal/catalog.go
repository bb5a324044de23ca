package signal

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Catalog parameter sets mirroring the published fixture set.
var (
	binCenteredBins    = []int{4, 8, 16, 32, 64}
	binCenteredAmps    = []float64{0.5, 1.0, 2.0}
	nonCenteredFreqsHz = []float64{440, 1000, 2500}
	phaseSweepDegrees  = []float64{0, 45, 90, 180, 270}
)

const phaseReferenceBin = 8

// PureSineCases builds the pure sine catalog: bin-centered sines for
// exact-value assertions, off-grid sines for leakage-tolerant assertions,
// and a phase sweep at a fixed reference bin.
func PureSineCases(sampleRate float64, n int) ([]Case, error) {
	var cases []Case

	for _, k := range binCenteredBins {
		if k >= n/2 {
			continue
		}
		freqHz := float64(k) * sampleRate / float64(n)

		for _, amp := range binCenteredAmps {
			samples, err := Sine(freqHz, amp, 0, sampleRate, n)
			if err != nil {
				return nil, err
			}
			cases = append(cases, newCase(
				fmt.Sprintf("sine_bin%d_amp%s", k, fmtFloat(amp)),
				KindSineBinCentered, sampleRate, samples,
				map[string]any{
					"frequency_hz": freqHz,
					"amplitude":    amp,
					"phase_rad":    0.0,
					"bin_index":    k,
				},
			))
		}
	}

	for _, freqHz := range nonCenteredFreqsHz {
		if freqHz >= sampleRate/2 {
			continue
		}
		samples, err := Sine(freqHz, 1.0, 0, sampleRate, n)
		if err != nil {
			return nil, err
		}
		cases = append(cases, newCase(
			fmt.Sprintf("sine_%dhz", int(freqHz)),
			KindSineNonCentered, sampleRate, samples,
			map[string]any{
				"frequency_hz": freqHz,
				"amplitude":    1.0,
				"phase_rad":    0.0,
				"expected_bin": int(math.Round(freqHz * float64(n) / sampleRate)),
			},
		))
	}

	if phaseReferenceBin < n/2 {
		freqHz := float64(phaseReferenceBin) * sampleRate / float64(n)
		for _, deg := range phaseSweepDegrees {
			phaseRad := deg * math.Pi / 180
			samples, err := Sine(freqHz, 1.0, phaseRad, sampleRate, n)
			if err != nil {
				return nil, err
			}
			cases = append(cases, newCase(
				fmt.Sprintf("sine_bin%d_phase%ddeg", phaseReferenceBin, int(deg)),
				KindSinePhase, sampleRate, samples,
				map[string]any{
					"frequency_hz": freqHz,
					"amplitude":    1.0,
					"phase_rad":    phaseRad,
					"phase_deg":    deg,
					"bin_index":    phaseReferenceBin,
				},
			))
		}
	}

	return cases, nil
}

// CosineCases builds the cosine phase-reference case at the same bin as the
// sine phase sweep.
func CosineCases(sampleRate float64, n int) ([]Case, error) {
	if phaseReferenceBin >= n/2 {
		return nil, fmt.Errorf("cosine reference bin %d requires n > %d: %d", phaseReferenceBin, 2*phaseReferenceBin, n)
	}
	freqHz := float64(phaseReferenceBin) * sampleRate / float64(n)

	samples, err := Cosine(freqHz, 1.0, 0, sampleRate, n)
	if err != nil {
		return nil, err
	}

	return []Case{newCase(
		fmt.Sprintf("cosine_bin%d", phaseReferenceBin),
		KindCosine, sampleRate, samples,
		map[string]any{
			"frequency_hz": freqHz,
			"amplitude":    1.0,
			"phase_rad":    0.0,
			"bin_index":    phaseReferenceBin,
		},
	)}, nil
}

// MultiToneCases builds the two-tone and three-tone sum cases on exact bins.
func MultiToneCases(sampleRate float64, n int) ([]Case, error) {
	var cases []Case

	binFreq := func(k int) float64 { return float64(k) * sampleRate / float64(n) }

	tones := []struct {
		bins []int
		amps []float64
	}{
		{bins: []int{8, 24}, amps: []float64{1.0, 0.5}},
		{bins: []int{4, 16, 48}, amps: []float64{0.8, 1.0, 0.3}},
	}

	for _, tone := range tones {
		freqs := make([]float64, len(tone.bins))
		phases := make([]float64, len(tone.bins))
		name := "two_tone"
		if len(tone.bins) == 3 {
			name = "three_tone"
		}
		for i, k := range tone.bins {
			if k >= n/2 {
				return nil, fmt.Errorf("multi-tone bin %d requires n > %d: %d", k, 2*k, n)
			}
			freqs[i] = binFreq(k)
			name += fmt.Sprintf("_bin%d", k)
		}

		samples, err := MultiTone(freqs, tone.amps, phases, sampleRate, n)
		if err != nil {
			return nil, err
		}
		cases = append(cases, newCase(name, KindMultiTone, sampleRate, samples,
			map[string]any{
				"frequencies_hz": freqs,
				"amplitudes":     tone.amps,
				"phases_rad":     phases,
				"bin_indices":    tone.bins,
			},
		))
	}

	return cases, nil
}

// ChirpCases builds the low-to-mid linear sweep case.
func ChirpCases(sampleRate float64, n int) ([]Case, error) {
	const f0, f1 = 100.0, 2000.0

	samples, err := Chirp(f0, f1, sampleRate, n, 1.0)
	if err != nil {
		return nil, err
	}

	return []Case{newCase(
		fmt.Sprintf("chirp_%dhz_to_%dhz", int(f0), int(f1)),
		KindChirp, sampleRate, samples,
		map[string]any{
			"f0_hz":     f0,
			"f1_hz":     f1,
			"amplitude": 1.0,
		},
	)}, nil
}

// SpecialCases builds impulse, DC, DC-plus-sine, Nyquist, zero, and
// extreme-magnitude cases. The tiny and large cases reuse the sine generator
// with amplitudes far outside unity to probe numeric range handling.
func SpecialCases(sampleRate float64, n int) ([]Case, error) {
	var cases []Case

	impulse0, err := Impulse(n, 0, 1.0)
	if err != nil {
		return nil, err
	}
	cases = append(cases, newCase("impulse_pos0", KindImpulse, sampleRate, impulse0,
		map[string]any{"position": 0, "amplitude": 1.0}))

	mid := n / 2
	impulseMid, err := Impulse(n, mid, 1.0)
	if err != nil {
		return nil, err
	}
	cases = append(cases, newCase(fmt.Sprintf("impulse_pos%d", mid), KindImpulse, sampleRate, impulseMid,
		map[string]any{"position": mid, "amplitude": 1.0}))

	dc, err := DC(n, 1.0)
	if err != nil {
		return nil, err
	}
	cases = append(cases, newCase("dc_level1", KindDC, sampleRate, dc,
		map[string]any{"level": 1.0}))

	if phaseReferenceBin < n/2 {
		freqHz := float64(phaseReferenceBin) * sampleRate / float64(n)
		const dcLevel = 0.5
		sine, err := Sine(freqHz, 1.0, 0, sampleRate, n)
		if err != nil {
			return nil, err
		}
		offset, err := DC(n, dcLevel)
		if err != nil {
			return nil, err
		}
		sum, err := Add(offset, sine)
		if err != nil {
			return nil, err
		}
		cases = append(cases, newCase(fmt.Sprintf("dc_plus_sine_bin%d", phaseReferenceBin),
			KindDCPlusSine, sampleRate, sum,
			map[string]any{
				"dc_level":          dcLevel,
				"sine_frequency_hz": freqHz,
				"sine_amplitude":    1.0,
				"sine_bin":          phaseReferenceBin,
			}))
	}

	nyquist, err := Nyquist(n, 1.0)
	if err != nil {
		return nil, err
	}
	cases = append(cases, newCase("nyquist", KindNyquist, sampleRate, nyquist,
		map[string]any{"amplitude": 1.0}))

	zeros, err := Zeros(n)
	if err != nil {
		return nil, err
	}
	cases = append(cases, newCase("zeros", KindZeros, sampleRate, zeros, nil))

	extremes := []struct {
		name string
		kind Kind
		amp  float64
	}{
		{"tiny_amplitude", KindTiny, 1e-12},
		{"large_amplitude", KindLarge, 1e6},
	}
	for _, e := range extremes {
		freqHz := float64(phaseReferenceBin) * sampleRate / float64(n)
		samples, err := Sine(freqHz, e.amp, 0, sampleRate, n)
		if err != nil {
			return nil, err
		}
		cases = append(cases, newCase(e.name, e.kind, sampleRate, samples,
			map[string]any{"amplitude": e.amp}))
	}

	return cases, nil
}

// RandomCases builds perSize seeded standard-normal cases for each size.
// The random source is consumed in catalog order, so the same seeded source
// reproduces the same catalog.
func RandomCases(rng *rand.Rand, sizes []int, perSize int, sampleRate float64) ([]Case, error) {
	if perSize <= 0 {
		return nil, fmt.Errorf("random cases per size must be > 0: %d", perSize)
	}

	var cases []Case
	for _, n := range sizes {
		for i := 0; i < perSize; i++ {
			samples, err := RandomNormal(rng, n)
			if err != nil {
				return nil, err
			}
			cases = append(cases, newCase(fmt.Sprintf("rand_n%d_%d", n, i),
				KindRandomNormal, sampleRate, samples, nil))
		}
	}
	return cases, nil
}

// BenchCases builds one stable random input per benchmark size.
func BenchCases(rng *rand.Rand, sizes []int, sampleRate float64) ([]Case, error) {
	var cases []Case
	for _, n := range sizes {
		samples, err := RandomNormal(rng, n)
		if err != nil {
			return nil, err
		}
		cases = append(cases, newCase(fmt.Sprintf("bench_rand_n%d", n),
			KindBenchRandomNormal, sampleRate, samples, nil))
	}
	return cases, nil
}

// BinCenteredSine builds the deterministic sine case used for amplitude
// scaling and peak detection assertions. Frequency k*fs/n lands exactly on
// transform bin k.
func BinCenteredSine(n, k int, amplitude, sampleRate float64) (Case, error) {
	if k <= 0 || k >= n/2 {
		return Case{}, fmt.Errorf("bin-centered sine bin must be in (0, n/2): k=%d n=%d", k, n)
	}

	freqHz := float64(k) * sampleRate / float64(n)
	samples, err := Sine(freqHz, amplitude, 0, sampleRate, n)
	if err != nil {
		return Case{}, err
	}

	return newCase(
		fmt.Sprintf("sine_bincentered_n%d_k%d_a%s", n, k, fmtFloat(amplitude)),
		KindSineBinCentered, sampleRate, samples,
		map[string]any{
			"bin_index":        k,
			"amplitude":        amplitude,
			"expected_peak_hz": freqHz,
		},
	), nil
}

// fmtFloat renders an amplitude for a case name in its shortest round-trip
// form, keeping the ".0" suffix on integral values ("amp1.0", not "amp1") so
// names stay stable for suites keyed on them.
func fmtFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
