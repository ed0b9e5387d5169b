// Package stargrid provides an in-memory spatial index for points on the
// unit sphere — stars addressed by right ascension and declination — and
// the two angular queries built on it:
//
//   - Nearest / NearestK: the star(s) closest in angle to a direction
//   - FindTriples: every triple of stars whose three pairwise angular
//     separations match three target angles within a tolerance
//
// Both queries prune with a fixed 32×32×32 grid of cells over the cube
// enclosing the unit sphere (package grid): a star's cell is derived once
// at construction, the catalog buckets star handles by cell, and whole
// cells are rejected with a cheap conservative angle bound before any exact
// per-star angle is computed. This keeps nearest-star lookups to a scan of
// at most 27 cells and the triangle search close to linear in the number of
// actually-close cell pairs rather than cubic in catalog size.
//
// # Lifecycle
//
// A catalog is built, frozen, then queried:
//
//	catalog := stargrid.New()
//	for _, data := range starData {
//	    catalog.Add(stargrid.NewStar(data))
//	}
//	catalog.Retain(stargrid.BrighterThan(5.0)) // optional
//	catalog.Sort()                             // enables FindByID
//	catalog.AttachNames(names, true)           // optional
//	catalog.DeriveIndex()                      // enables the queries
//
//	nearest, ok := catalog.Nearest(geom.FromRaDe(ra, de))
//
// Add, Retain and Sort invalidate every previously issued Handle and all
// derived data; dereferencing a stale handle panics with ErrStaleHandle.
// Querying before Sort/DeriveIndex is a lifecycle bug and panics with
// ErrNotSorted/ErrNotIndexed rather than quietly returning wrong results.
// Once frozen, the catalog is safe for any number of concurrent readers.
//
// # Triangle search
//
//	triples, err := catalog.FindTriples(
//	    grid.All(),
//	    [3]float64{a01, a02, a12}, // radians
//	    geom.DegToRad(0.06),
//	)
//
// The three targets are role-ordered: angle(P0,P1) matches the first,
// angle(P0,P2) the second, angle(P1,P2) the third. Symmetric configurations
// yield role-permuted duplicates; callers that want one canonical triple
// per triangle deduplicate on their side.
//
// Package skydata carries a bright-star table and the IAU common-name and
// constellation tables for callers that want a ready-made sky.
package stargrid
