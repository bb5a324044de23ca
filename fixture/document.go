package fixture

import (
	"time"

	"github.com/cwbudde/dsp-refgen/dsp/transform"
)

// SchemaVersion identifies the fixture document layout.
const SchemaVersion = "0.1"

// Convention states the transform sign and normalization contract verbatim,
// so consumers can detect convention mismatches.
type Convention struct {
	Forward       string `json:"forward"`
	Inverse       string `json:"inverse"`
	Normalization string `json:"normalization"`
	Note          string `json:"note"`
}

// DefaultConvention returns the convention implemented by the transform
// engine.
func DefaultConvention() Convention {
	return Convention{
		Forward:       transform.ConventionForward,
		Inverse:       transform.ConventionInverse,
		Normalization: transform.ConventionNormalization,
		Note:          "Matches numpy.fft.fft and numpy.fft.ifft conventions.",
	}
}

// Header carries the shared top-level fields of every fixture document.
type Header struct {
	SchemaVersion string     `json:"schemaVersion"`
	GeneratedAt   string     `json:"generatedAt"`
	Generator     Provenance `json:"generator"`
	Convention    Convention `json:"convention"`
}

// NewHeader stamps a header with the given provenance and generation time,
// truncated to second precision in UTC.
func NewHeader(prov Provenance, now time.Time) Header {
	return Header{
		SchemaVersion: SchemaVersion,
		GeneratedAt:   now.UTC().Truncate(time.Second).Format(time.RFC3339),
		Generator:     prov,
		Convention:    DefaultConvention(),
	}
}

// CaseRecord pairs one catalog signal with its reference transform and
// derived statistics.
type CaseRecord struct {
	Name          string         `json:"name"`
	Kind          string         `json:"kind"`
	N             int            `json:"n"`
	SampleRate    float64        `json:"sampleRate"`
	Signal        []float64      `json:"signal"`
	FFTRe         []float64      `json:"fftRe"`
	FFTIm         []float64      `json:"fftIm"`
	Magnitude     []float64      `json:"magnitude"`
	Phase         []float64      `json:"phase"`
	PeakBin       int            `json:"peakBin"`
	PeakMagnitude float64        `json:"peakMagnitude"`
	PeakPhase     float64        `json:"peakPhase"`
	Params        map[string]any `json:"params"`
}

// WindowRecord holds one window coefficient sequence and its metrics.
type WindowRecord struct {
	Type         string    `json:"type"`
	N            int       `json:"n"`
	Sym          bool      `json:"sym"`
	Values       []float64 `json:"values"`
	CoherentGain float64   `json:"coherentGain"`
	ENBW         float64   `json:"enbw"`
}

// Document is the combined fixture payload holding both the signal-transform
// cases and the window records.
type Document struct {
	Header
	Windows  []WindowRecord `json:"windows"`
	FFTCases []CaseRecord   `json:"fftCases"`
}

// SignalDocument is a grouped reference payload for one logical family of
// signal cases.
type SignalDocument struct {
	Header
	Description string       `json:"description"`
	N           int          `json:"n"`
	SampleRate  float64      `json:"sampleRate"`
	Cases       []CaseRecord `json:"cases"`
}

// WindowDocument is the grouped reference payload for window DSP properties.
type WindowDocument struct {
	Header
	Description string         `json:"description"`
	Cases       []WindowRecord `json:"cases"`
}
