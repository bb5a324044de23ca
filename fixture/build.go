package fixture

import (
	"fmt"

	"github.com/cwbudde/dsp-refgen/dsp/core"
	"github.com/cwbudde/dsp-refgen/dsp/signal"
	"github.com/cwbudde/dsp-refgen/dsp/transform"
	"github.com/cwbudde/dsp-refgen/dsp/window"
)

// NewCaseRecord runs the reference transform engine on one catalog case and
// assembles the serializable record.
func NewCaseRecord(c signal.Case) (CaseRecord, error) {
	if idx := core.FirstNonFinite(c.Samples); idx >= 0 {
		return CaseRecord{}, fmt.Errorf("case %q: non-finite sample at index %d: %v", c.Name, idx, c.Samples[idx])
	}

	result, err := transform.AnalyzeCase(c)
	if err != nil {
		return CaseRecord{}, err
	}

	return CaseRecord{
		Name:          c.Name,
		Kind:          c.Kind.String(),
		N:             c.N,
		SampleRate:    c.SampleRate,
		Signal:        c.Samples,
		FFTRe:         result.Re,
		FFTIm:         result.Im,
		Magnitude:     result.Magnitude,
		Phase:         result.Phase,
		PeakBin:       result.PeakBin,
		PeakMagnitude: result.PeakMagnitude,
		PeakPhase:     result.PeakPhase,
		Params:        c.Params,
	}, nil
}

// NewCaseRecords runs the engine over an ordered catalog, preserving order.
func NewCaseRecords(cases []signal.Case) ([]CaseRecord, error) {
	records := make([]CaseRecord, 0, len(cases))
	for _, c := range cases {
		record, err := NewCaseRecord(c)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// NewWindowRecord generates one window coefficient sequence with metrics.
func NewWindowRecord(t window.Type, n int) (WindowRecord, error) {
	coeffs, err := window.Coefficients(t, n)
	if err != nil {
		return WindowRecord{}, fmt.Errorf("window %s n=%d: %w", t, n, err)
	}

	metrics, err := window.Analyze(coeffs)
	if err != nil {
		return WindowRecord{}, fmt.Errorf("window %s n=%d: %w", t, n, err)
	}

	return WindowRecord{
		Type:         t.String(),
		N:            n,
		Sym:          true,
		Values:       coeffs,
		CoherentGain: metrics.CoherentGain,
		ENBW:         metrics.ENBW,
	}, nil
}

// NewWindowRecords generates the cross product of families and sizes in the
// combined document's order (all sizes of a family before the next family).
func NewWindowRecords(types []window.Type, sizes []int) ([]WindowRecord, error) {
	records := make([]WindowRecord, 0, len(types)*len(sizes))
	for _, t := range types {
		for _, n := range sizes {
			record, err := NewWindowRecord(t, n)
			if err != nil {
				return nil, err
			}
			records = append(records, record)
		}
	}
	return records, nil
}

// NewWindowRecordsBySize generates the same cross product in the grouped
// document's order (all families at a size before the next size).
func NewWindowRecordsBySize(types []window.Type, sizes []int) ([]WindowRecord, error) {
	records := make([]WindowRecord, 0, len(types)*len(sizes))
	for _, n := range sizes {
		for _, t := range types {
			record, err := NewWindowRecord(t, n)
			if err != nil {
				return nil, err
			}
			records = append(records, record)
		}
	}
	return records, nil
}
