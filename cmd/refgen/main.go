// Command refgen writes grouped reference documents, one JSON file per
// signal family plus one for window DSP properties.
//
// Usage:
//
//	refgen [flags]
//
// Examples:
//
//	refgen -out testdata/references
//	refgen -n 2048 -sample-rate 44100 -overwrite
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cwbudde/dsp-refgen/fixture"
)

func main() {
	out := flag.String("out", "testdata/references", "output directory for reference documents")
	sampleRate := flag.Float64("sample-rate", 48000, "sample rate for signal generation (Hz)")
	n := flag.Int("n", 1024, "signal length in samples")
	windowSizes := flag.String("window-sizes", "64,256,1024,2048", "comma-separated sizes for window references")
	overwrite := flag.Bool("overwrite", false, "overwrite existing reference files")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: refgen [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Writes grouped reference documents for transform validation.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	os.Exit(run(*out, *sampleRate, *n, *windowSizes, *overwrite))
}

func run(out string, sampleRate float64, n int, windowSizes string, overwrite bool) int {
	sizes, err := parseSizes(windowSizes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid -window-sizes: %v\n", err)
		return 1
	}

	header := fixture.NewHeader(fixture.NewProvenance("refgen", 0), time.Now())

	groups, err := fixture.BuildReferenceGroups(header, sampleRate, n, sizes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	for _, g := range groups {
		path := filepath.Join(out, g.FileName)
		if err := fixture.WriteFile(path, g.Doc, overwrite); err != nil {
			if errors.Is(err, fixture.ErrOutputExists) {
				fmt.Fprintf(os.Stderr, "Refusing to overwrite existing file: %s\n", path)
				fmt.Fprintln(os.Stderr, "Pass -overwrite to regenerate references.")
				return 2
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		fmt.Printf("Wrote %s\n", path)
	}
	return 0
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("parse size %q: %w", part, err)
		}
		sizes = append(sizes, v)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return sizes, nil
}
