package fixture

import (
	"fmt"

	"github.com/cwbudde/dsp-refgen/dsp/core"
	"github.com/cwbudde/dsp-refgen/dsp/signal"
)

// symmetryTolerance bounds the allowed asymmetry of window coefficient
// sequences.
const symmetryTolerance = 1e-12

func (c *CaseRecord) validate() error {
	if c.Name == "" {
		return fmt.Errorf("case with empty name")
	}
	if c.N <= 0 {
		return fmt.Errorf("case %q: n must be > 0: %d", c.Name, c.N)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("case %q: sample rate must be > 0: %f", c.Name, c.SampleRate)
	}

	sequences := map[string][]float64{
		"signal":    c.Signal,
		"fftRe":     c.FFTRe,
		"fftIm":     c.FFTIm,
		"magnitude": c.Magnitude,
		"phase":     c.Phase,
	}
	for field, seq := range sequences {
		if len(seq) != c.N {
			return fmt.Errorf("case %q: %s length %d != n %d", c.Name, field, len(seq), c.N)
		}
		if idx := core.FirstNonFinite(seq); idx >= 0 {
			return fmt.Errorf("case %q: non-finite %s at index %d: %v", c.Name, field, idx, seq[idx])
		}
	}

	if c.PeakBin < 0 || c.PeakBin >= c.N {
		return fmt.Errorf("case %q: peak bin out of range [0,%d): %d", c.Name, c.N, c.PeakBin)
	}
	// Only DC-level cases keep bin 0 in the peak search.
	if c.Kind != signal.KindDC.String() && c.N > 1 && c.PeakBin < 1 {
		return fmt.Errorf("case %q (kind %s): peak bin %d must exclude DC", c.Name, c.Kind, c.PeakBin)
	}
	if !core.IsFinite(c.PeakMagnitude) || !core.IsFinite(c.PeakPhase) {
		return fmt.Errorf("case %q: non-finite peak statistics (%v, %v)", c.Name, c.PeakMagnitude, c.PeakPhase)
	}

	for key, value := range c.Params {
		if err := validateParam(value); err != nil {
			return fmt.Errorf("case %q: param %q: %w", c.Name, key, err)
		}
	}
	return nil
}

func validateParam(value any) error {
	switch v := value.(type) {
	case float64:
		if !core.IsFinite(v) {
			return fmt.Errorf("non-finite value %v", v)
		}
	case []float64:
		if idx := core.FirstNonFinite(v); idx >= 0 {
			return fmt.Errorf("non-finite value at index %d: %v", idx, v[idx])
		}
	}
	return nil
}

func (w *WindowRecord) validate() error {
	if w.Type == "" {
		return fmt.Errorf("window with empty type")
	}
	if w.N <= 0 {
		return fmt.Errorf("window %s: n must be > 0: %d", w.Type, w.N)
	}
	if !w.Sym {
		return fmt.Errorf("window %s n=%d: only symmetric windows are published", w.Type, w.N)
	}
	if len(w.Values) != w.N {
		return fmt.Errorf("window %s: values length %d != n %d", w.Type, len(w.Values), w.N)
	}
	if idx := core.FirstNonFinite(w.Values); idx >= 0 {
		return fmt.Errorf("window %s n=%d: non-finite coefficient at index %d: %v", w.Type, w.N, idx, w.Values[idx])
	}
	if !core.IsFinite(w.CoherentGain) || !core.IsFinite(w.ENBW) {
		return fmt.Errorf("window %s n=%d: non-finite metrics (%v, %v)", w.Type, w.N, w.CoherentGain, w.ENBW)
	}

	for i := range w.Values {
		j := w.N - 1 - i
		if !core.NearlyEqual(w.Values[i], w.Values[j], symmetryTolerance) {
			return fmt.Errorf("window %s n=%d: asymmetric coefficients at %d/%d: %v != %v",
				w.Type, w.N, i, j, w.Values[i], w.Values[j])
		}
	}
	return nil
}

func validateCaseList(cases []CaseRecord) error {
	seen := make(map[string]bool, len(cases))
	for i := range cases {
		c := &cases[i]
		if err := c.validate(); err != nil {
			return err
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate case name %q", c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

func (h *Header) validate() error {
	if h.SchemaVersion == "" {
		return fmt.Errorf("missing schema version")
	}
	if h.GeneratedAt == "" {
		return fmt.Errorf("missing generation timestamp")
	}
	if h.Convention.Forward == "" || h.Convention.Inverse == "" || h.Convention.Normalization == "" {
		return fmt.Errorf("incomplete transform convention")
	}
	return nil
}

// Validate checks the combined document against the fixture invariants.
func (d *Document) Validate() error {
	if err := d.Header.validate(); err != nil {
		return err
	}
	for i := range d.Windows {
		if err := d.Windows[i].validate(); err != nil {
			return err
		}
	}
	return validateCaseList(d.FFTCases)
}

// Validate checks a grouped signal document against the fixture invariants.
func (d *SignalDocument) Validate() error {
	if err := d.Header.validate(); err != nil {
		return err
	}
	return validateCaseList(d.Cases)
}

// Validate checks a grouped window document against the fixture invariants.
func (d *WindowDocument) Validate() error {
	if err := d.Header.validate(); err != nil {
		return err
	}
	for i := range d.Cases {
		if err := d.Cases[i].validate(); err != nil {
			return err
		}
	}
	return nil
}
