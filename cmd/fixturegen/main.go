// Command fixturegen writes the combined reference fixture document.
//
// Usage:
//
//	fixturegen [flags]
//
// The output holds deterministic random correctness cases, one bin-centered
// sine case, stable benchmark inputs, and window coefficient tables, all
// computed against the reference transform engine.
//
// Examples:
//
//	fixturegen -out testdata/fixtures/dsp-refgen.v0.1.json
//	fixturegen -seed 42 -small-sizes 8,16 -overwrite
package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cwbudde/dsp-refgen/dsp/signal"
	"github.com/cwbudde/dsp-refgen/dsp/window"
	"github.com/cwbudde/dsp-refgen/fixture"
)

func main() {
	out := flag.String("out", "testdata/fixtures/dsp-refgen.v0.1.json", "output JSON fixture path")
	seed := flag.Int64("seed", 1337, "deterministic RNG seed")
	sampleRate := flag.Float64("sample-rate", 48000, "sample rate metadata for cases (Hz)")
	smallSizes := flag.String("small-sizes", "8,16,32", "comma-separated FFT sizes for correctness fixtures")
	smallPerSize := flag.Int("small-cases-per-size", 5, "random cases per small size")
	benchSizes := flag.String("bench-sizes", "2048,4096", "comma-separated FFT sizes for benchmark fixtures")
	windowSizes := flag.String("window-sizes", "8,16,32,64,1024,2048,4096", "comma-separated sizes for window fixtures")
	windows := flag.String("windows", "rect,hann,hamming,blackman", "comma-separated window types to generate")
	sineN := flag.Int("sine-n", 1024, "length of the bin-centered sine fixture")
	sineK := flag.Int("sine-k", 32, "bin index of the bin-centered sine fixture")
	sineAmp := flag.Float64("sine-amp", 0.8, "amplitude of the bin-centered sine fixture")
	overwrite := flag.Bool("overwrite", false, "overwrite the output file if it exists")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fixturegen [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Writes the combined reference fixture document.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	os.Exit(run(config{
		out:          *out,
		seed:         *seed,
		sampleRate:   *sampleRate,
		smallSizes:   *smallSizes,
		smallPerSize: *smallPerSize,
		benchSizes:   *benchSizes,
		windowSizes:  *windowSizes,
		windows:      *windows,
		sineN:        *sineN,
		sineK:        *sineK,
		sineAmp:      *sineAmp,
		overwrite:    *overwrite,
	}))
}

type config struct {
	out          string
	seed         int64
	sampleRate   float64
	smallSizes   string
	smallPerSize int
	benchSizes   string
	windowSizes  string
	windows      string
	sineN        int
	sineK        int
	sineAmp      float64
	overwrite    bool
}

func run(cfg config) int {
	smallSizes, err := parseSizes(cfg.smallSizes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid -small-sizes: %v\n", err)
		return 1
	}
	benchSizes, err := parseSizes(cfg.benchSizes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid -bench-sizes: %v\n", err)
		return 1
	}
	windowSizes, err := parseSizes(cfg.windowSizes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid -window-sizes: %v\n", err)
		return 1
	}
	windowTypes, err := parseWindows(cfg.windows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid -windows: %v\n", err)
		return 1
	}

	doc, err := buildDocument(cfg, smallSizes, benchSizes, windowSizes, windowTypes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if err := fixture.WriteFile(cfg.out, doc, cfg.overwrite); err != nil {
		if errors.Is(err, fixture.ErrOutputExists) {
			fmt.Fprintf(os.Stderr, "Refusing to overwrite existing file: %s\n", cfg.out)
			fmt.Fprintln(os.Stderr, "Pass -overwrite to regenerate fixtures.")
			return 2
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	fmt.Printf("Wrote %d FFT cases and %d window records to %s\n",
		len(doc.FFTCases), len(doc.Windows), cfg.out)
	return 0
}

func buildDocument(cfg config, smallSizes, benchSizes, windowSizes []int, windowTypes []window.Type) (*fixture.Document, error) {
	rng := rand.New(rand.NewSource(cfg.seed))

	cases, err := signal.RandomCases(rng, smallSizes, cfg.smallPerSize, cfg.sampleRate)
	if err != nil {
		return nil, err
	}

	sine, err := signal.BinCenteredSine(cfg.sineN, cfg.sineK, cfg.sineAmp, cfg.sampleRate)
	if err != nil {
		return nil, err
	}
	cases = append(cases, sine)

	bench, err := signal.BenchCases(rng, benchSizes, cfg.sampleRate)
	if err != nil {
		return nil, err
	}
	cases = append(cases, bench...)

	records, err := fixture.NewCaseRecords(cases)
	if err != nil {
		return nil, err
	}

	windowRecords, err := fixture.NewWindowRecords(windowTypes, windowSizes)
	if err != nil {
		return nil, err
	}

	return &fixture.Document{
		Header:   fixture.NewHeader(fixture.NewProvenance("fixturegen", cfg.seed), time.Now()),
		Windows:  windowRecords,
		FFTCases: records,
	}, nil
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("parse size %q: %w", part, err)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return sizes, nil
}

func parseWindows(s string) ([]window.Type, error) {
	var types []window.Type
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		t, err := window.Parse(part)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("no window types given")
	}
	return types, nil
}
