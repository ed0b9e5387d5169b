// Package testutil provides testing utilities for stargrid.
//
// This package is intended for use in tests and benchmarks only. It
// provides a seeded RNG for reproducible random skies and brute-force
// reference implementations of the angular queries for cross-checking the
// grid-pruned search engine.
//
// # Random Sky Generation
//
//	rng := testutil.NewRNG(seed)
//	dir := rng.Direction()              // uniform on the unit sphere
//	stars := rng.Stars(1000, 1)         // ids 1..1000
//
// # Ground Truth
//
//	id, cos, ok := testutil.BruteForceNearest(stars, query)
//	ids := testutil.BruteForceTriples(stars, angles, tolerance)
package testutil
