package signal

import (
	"math/rand"
	"testing"
)

func requireUniqueNames(t *testing.T, cases []Case) {
	t.Helper()
	seen := map[string]bool{}
	for _, c := range cases {
		if seen[c.Name] {
			t.Fatalf("duplicate case name %q", c.Name)
		}
		seen[c.Name] = true
	}
}

func requireLengths(t *testing.T, cases []Case) {
	t.Helper()
	for _, c := range cases {
		if len(c.Samples) != c.N {
			t.Fatalf("case %q: len(samples)=%d, declared n=%d", c.Name, len(c.Samples), c.N)
		}
		if c.N <= 0 {
			t.Fatalf("case %q: n=%d", c.Name, c.N)
		}
	}
}

func TestPureSineCatalog(t *testing.T) {
	cases, err := PureSineCases(48000, 1024)
	if err != nil {
		t.Fatalf("PureSineCases() error = %v", err)
	}

	// 5 bins x 3 amps, 3 off-grid frequencies, 5 phase steps.
	if len(cases) != 23 {
		t.Fatalf("case count = %d, want 23", len(cases))
	}
	requireUniqueNames(t, cases)
	requireLengths(t, cases)

	for _, c := range cases {
		if c.Kind != KindSineBinCentered && c.Kind != KindSineNonCentered && c.Kind != KindSinePhase {
			t.Fatalf("case %q: unexpected kind %v", c.Name, c.Kind)
		}
	}
}

func TestCaseNamesKeepIntegralAmplitudeSuffix(t *testing.T) {
	cases, err := PureSineCases(48000, 1024)
	if err != nil {
		t.Fatalf("PureSineCases() error = %v", err)
	}

	names := map[string]bool{}
	for _, c := range cases {
		names[c.Name] = true
	}
	for _, want := range []string{"sine_bin4_amp0.5", "sine_bin4_amp1.0", "sine_bin4_amp2.0"} {
		if !names[want] {
			t.Fatalf("missing case %q", want)
		}
	}

	c, err := BinCenteredSine(1024, 32, 1, 48000)
	if err != nil {
		t.Fatalf("BinCenteredSine() error = %v", err)
	}
	if c.Name != "sine_bincentered_n1024_k32_a1.0" {
		t.Fatalf("name = %q", c.Name)
	}
}

func TestPureSineCatalogSkipsBinsAboveNyquist(t *testing.T) {
	cases, err := PureSineCases(48000, 64)
	if err != nil {
		t.Fatalf("PureSineCases() error = %v", err)
	}

	for _, c := range cases {
		if k, ok := c.Params["bin_index"].(int); ok && k >= 32 {
			t.Fatalf("case %q: bin %d at or above n/2", c.Name, k)
		}
	}
}

func TestSpecialCatalogKinds(t *testing.T) {
	cases, err := SpecialCases(48000, 1024)
	if err != nil {
		t.Fatalf("SpecialCases() error = %v", err)
	}
	requireUniqueNames(t, cases)
	requireLengths(t, cases)

	want := map[string]Kind{
		"impulse_pos0":      KindImpulse,
		"impulse_pos512":    KindImpulse,
		"dc_level1":         KindDC,
		"dc_plus_sine_bin8": KindDCPlusSine,
		"nyquist":           KindNyquist,
		"zeros":             KindZeros,
		"tiny_amplitude":    KindTiny,
		"large_amplitude":   KindLarge,
	}
	if len(cases) != len(want) {
		t.Fatalf("case count = %d, want %d", len(cases), len(want))
	}
	for _, c := range cases {
		kind, ok := want[c.Name]
		if !ok {
			t.Fatalf("unexpected case %q", c.Name)
		}
		if c.Kind != kind {
			t.Fatalf("case %q: kind = %v, want %v", c.Name, c.Kind, kind)
		}
	}
}

func TestMultiToneCatalog(t *testing.T) {
	cases, err := MultiToneCases(48000, 1024)
	if err != nil {
		t.Fatalf("MultiToneCases() error = %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("case count = %d, want 2", len(cases))
	}
	if cases[0].Name != "two_tone_bin8_bin24" {
		t.Fatalf("name = %q", cases[0].Name)
	}
	if cases[1].Name != "three_tone_bin4_bin16_bin48" {
		t.Fatalf("name = %q", cases[1].Name)
	}
	requireLengths(t, cases)
}

func TestRandomCatalogDeterministic(t *testing.T) {
	build := func() []Case {
		rng := rand.New(rand.NewSource(1337))
		cases, err := RandomCases(rng, []int{8, 16}, 3, 48000)
		if err != nil {
			t.Fatalf("RandomCases() error = %v", err)
		}
		bench, err := BenchCases(rng, []int{32}, 48000)
		if err != nil {
			t.Fatalf("BenchCases() error = %v", err)
		}
		return append(cases, bench...)
	}

	a := build()
	b := build()
	if len(a) != 7 {
		t.Fatalf("case count = %d, want 7", len(a))
	}
	for i := range a {
		if a[i].Name != b[i].Name {
			t.Fatalf("name mismatch at %d: %q != %q", i, a[i].Name, b[i].Name)
		}
		for j := range a[i].Samples {
			if a[i].Samples[j] != b[i].Samples[j] {
				t.Fatalf("case %q sample %d: %v != %v", a[i].Name, j, a[i].Samples[j], b[i].Samples[j])
			}
		}
	}
}

func TestBinCenteredSineValidation(t *testing.T) {
	if _, err := BinCenteredSine(1024, 0, 1, 48000); err == nil {
		t.Fatal("expected error for k=0")
	}
	if _, err := BinCenteredSine(1024, 512, 1, 48000); err == nil {
		t.Fatal("expected error for k at n/2")
	}

	c, err := BinCenteredSine(1024, 32, 0.8, 48000)
	if err != nil {
		t.Fatalf("BinCenteredSine() error = %v", err)
	}
	if c.Name != "sine_bincentered_n1024_k32_a0.8" {
		t.Fatalf("name = %q", c.Name)
	}
	if c.N != 1024 {
		t.Fatalf("n = %d, want 1024", c.N)
	}
}
