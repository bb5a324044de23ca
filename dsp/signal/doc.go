// Package signal generates deterministic time-domain test signals.
//
// Every generator is a pure function of its explicit numeric parameters.
// Noise generators take the random source as an explicit handle, so identical
// seed and parameters reproduce bit-identical samples across runs.
package signal
