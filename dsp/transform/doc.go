// Package transform computes the canonical forward DFT of reference signals
// and the derived magnitude, phase, and peak-bin statistics.
//
// The published values come from the direct definition of the transform,
// evaluated in double precision with no normalization. For power-of-two sizes
// the result is additionally verified against an FFT backend; disagreement or
// any non-finite value aborts generation.
package transform
