// Package fixture assembles and serializes reference fixture documents.
//
// A document is built fully in memory from catalog signals, their reference
// transforms, and window coefficient records, validated against the fixture
// invariants, and written once. Existing output paths are never overwritten
// unless the caller explicitly requests it.
package fixture
