package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Sine generates A*sin(2*pi*f*n/fs + phase) for n = 0..samples-1.
func Sine(freqHz, amplitude, phaseRad, sampleRate float64, samples int) ([]float64, error) {
	if err := validateSamples("sine", samples); err != nil {
		return nil, err
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", sampleRate)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i)+phaseRad)
	}
	return out, nil
}

// Cosine generates A*cos(2*pi*f*n/fs + phase), the phase reference against
// Sine at the same frequency.
func Cosine(freqHz, amplitude, phaseRad, sampleRate float64, samples int) ([]float64, error) {
	if err := validateSamples("cosine", samples); err != nil {
		return nil, err
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("cosine sample rate must be > 0: %f", sampleRate)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Cos(step*float64(i)+phaseRad)
	}
	return out, nil
}

// MultiTone generates the elementwise sum of sine components. The three
// parameter slices must have equal length.
func MultiTone(freqsHz, amplitudes, phasesRad []float64, sampleRate float64, samples int) ([]float64, error) {
	if err := validateSamples("multi-tone", samples); err != nil {
		return nil, err
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("multi-tone sample rate must be > 0: %f", sampleRate)
	}
	if len(freqsHz) == 0 {
		return nil, fmt.Errorf("multi-tone requires at least one component")
	}
	if len(freqsHz) != len(amplitudes) || len(freqsHz) != len(phasesRad) {
		return nil, fmt.Errorf("multi-tone component length mismatch: %d freqs, %d amps, %d phases",
			len(freqsHz), len(amplitudes), len(phasesRad))
	}

	out := make([]float64, samples)
	for c := range freqsHz {
		step := 2 * math.Pi * freqsHz[c] / sampleRate
		for i := range out {
			out[i] += amplitudes[c] * math.Sin(step*float64(i)+phasesRad[c])
		}
	}
	return out, nil
}

// Chirp generates a linear frequency sweep from f0 to f1 over the full
// duration T = samples/sampleRate. The instantaneous phase is the time
// integral of the instantaneous frequency:
//
//	phase(t) = 2*pi * (f0*t + (f1-f0)*t^2/(2*T))
func Chirp(f0Hz, f1Hz, sampleRate float64, samples int, amplitude float64) ([]float64, error) {
	if err := validateSamples("chirp", samples); err != nil {
		return nil, err
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("chirp sample rate must be > 0: %f", sampleRate)
	}

	duration := float64(samples) / sampleRate
	out := make([]float64, samples)
	for i := range out {
		t := float64(i) / sampleRate
		phase := 2 * math.Pi * (f0Hz*t + (f1Hz-f0Hz)*t*t/(2*duration))
		out[i] = amplitude * math.Sin(phase)
	}
	return out, nil
}

// Impulse generates a zero sequence with a single non-zero sample.
func Impulse(samples, position int, amplitude float64) ([]float64, error) {
	if err := validateSamples("impulse", samples); err != nil {
		return nil, err
	}
	if position < 0 || position >= samples {
		return nil, fmt.Errorf("impulse position out of range [0,%d): %d", samples, position)
	}

	out := make([]float64, samples)
	out[position] = amplitude
	return out, nil
}

// DC generates a constant sequence at the given level.
func DC(samples int, level float64) ([]float64, error) {
	if err := validateSamples("dc", samples); err != nil {
		return nil, err
	}

	out := make([]float64, samples)
	for i := range out {
		out[i] = level
	}
	return out, nil
}

// Nyquist generates an alternating +A/-A sequence by sample index parity.
func Nyquist(samples int, amplitude float64) ([]float64, error) {
	if err := validateSamples("nyquist", samples); err != nil {
		return nil, err
	}

	out := make([]float64, samples)
	for i := range out {
		if i%2 == 0 {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
	}
	return out, nil
}

// Zeros generates an all-zero sequence.
func Zeros(samples int) ([]float64, error) {
	if err := validateSamples("zeros", samples); err != nil {
		return nil, err
	}
	return make([]float64, samples), nil
}

// RandomNormal draws samples from the standard normal distribution using the
// provided source. The caller owns the source and its seeding, so a fixed
// seed reproduces the exact sequence.
func RandomNormal(rng *rand.Rand, samples int) ([]float64, error) {
	if err := validateSamples("random-normal", samples); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("random-normal requires a non-nil random source")
	}

	out := make([]float64, samples)
	for i := range out {
		out[i] = rng.NormFloat64()
	}
	return out, nil
}

// Add returns the elementwise sum of a and b.
func Add(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("add length mismatch: %d != %d", len(a), len(b))
	}

	out := make([]float64, len(a))
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out, nil
}

func validateSamples(what string, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%s samples must be > 0: %d", what, samples)
	}
	return nil
}
