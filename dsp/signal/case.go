package signal

import "fmt"

// Kind identifies the generator formula that produced a test case.
type Kind int

const (
	KindSineBinCentered Kind = iota
	KindSineNonCentered
	KindSinePhase
	KindCosine
	KindMultiTone
	KindChirp
	KindImpulse
	KindDC
	KindDCPlusSine
	KindNyquist
	KindZeros
	KindTiny
	KindLarge
	KindRandomNormal
	KindBenchRandomNormal
)

var kindNames = map[Kind]string{
	KindSineBinCentered:   "pure_sine_bin_centered",
	KindSineNonCentered:   "pure_sine_non_centered",
	KindSinePhase:         "pure_sine_phase",
	KindCosine:            "cosine",
	KindMultiTone:         "multi_tone",
	KindChirp:             "chirp",
	KindImpulse:           "impulse",
	KindDC:                "dc",
	KindDCPlusSine:        "dc_plus_sine",
	KindNyquist:           "nyquist",
	KindZeros:             "zeros",
	KindTiny:              "tiny",
	KindLarge:             "large",
	KindRandomNormal:      "random_normal",
	KindBenchRandomNormal: "benchmark_random_normal",
}

// String returns the stable tag used in fixture documents.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsDCLevel reports whether the case specifically tests a DC level. Peak-bin
// statistics keep bin 0 in the search for such cases and exclude it otherwise.
func (k Kind) IsDCLevel() bool {
	return k == KindDC
}

// Case is an immutable named test signal together with the parameters
// sufficient to reproduce it independently of the generator code.
type Case struct {
	Name       string
	Kind       Kind
	N          int
	SampleRate float64
	Samples    []float64
	Params     map[string]any
}

func newCase(name string, kind Kind, sampleRate float64, samples []float64, params map[string]any) Case {
	if params == nil {
		params = map[string]any{}
	}
	return Case{
		Name:       name,
		Kind:       kind,
		N:          len(samples),
		SampleRate: sampleRate,
		Samples:    samples,
		Params:     params,
	}
}
