package fixture

import (
	"github.com/cwbudde/dsp-refgen/dsp/signal"
	"github.com/cwbudde/dsp-refgen/dsp/window"
)

// Group pairs one grouped reference document with its output file name.
type Group struct {
	FileName string
	Doc      Validator
}

// BuildReferenceGroups assembles one document per logical case family, all
// sharing the same header.
func BuildReferenceGroups(header Header, sampleRate float64, n int, windowSizes []int) ([]Group, error) {
	signalGroups := []struct {
		fileName    string
		description string
		build       func(float64, int) ([]signal.Case, error)
	}{
		{"pure_sine.json", "Pure sine wave test cases", signal.PureSineCases},
		{"cosine.json", "Cosine wave test cases for phase reference", signal.CosineCases},
		{"multi_tone.json", "Multi-tone signal test cases", signal.MultiToneCases},
		{"chirp.json", "Chirp signal test cases", signal.ChirpCases},
		{"special.json", "Special signal test cases (impulse, DC, Nyquist, edge values)", signal.SpecialCases},
	}

	groups := make([]Group, 0, len(signalGroups)+1)
	for _, g := range signalGroups {
		cases, err := g.build(sampleRate, n)
		if err != nil {
			return nil, err
		}
		records, err := NewCaseRecords(cases)
		if err != nil {
			return nil, err
		}
		groups = append(groups, Group{
			FileName: g.fileName,
			Doc: &SignalDocument{
				Header:      header,
				Description: g.description,
				N:           n,
				SampleRate:  sampleRate,
				Cases:       records,
			},
		})
	}

	windowRecords, err := NewWindowRecordsBySize(window.Types(), windowSizes)
	if err != nil {
		return nil, err
	}
	groups = append(groups, Group{
		FileName: "windows_dsp.json",
		Doc: &WindowDocument{
			Header:      header,
			Description: "Window function DSP properties",
			Cases:       windowRecords,
		},
	})

	return groups, nil
}
