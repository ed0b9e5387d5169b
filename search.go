package stargrid

import (
	"fmt"
	"iter"
	"math"
	"time"

	"github.com/stargrid/stargrid/geom"
	"github.com/stargrid/stargrid/grid"
	"github.com/stargrid/stargrid/internal/queue"
)

// Neighbor is one nearest-star result: the star's handle and the cosine of
// its angle to the query direction (larger cosine means closer).
type Neighbor struct {
	Handle Handle
	Cos    float64
}

// Triple is one triangle-search result. The role order is significant:
// angle(P0,P1) matched the first target angle, angle(P0,P2) the second,
// angle(P1,P2) the third.
type Triple struct {
	P0, P1, P2 Handle
}

// Nearest returns the star closest in angle to the unit direction dir, with
// the cosine of that angle, or false when no star lies in the scanned
// cells. Panics with ErrNotIndexed before DeriveIndex.
//
// Only the direction's own cell and its 1-ring are scanned. The grid
// geometry guarantees this finds the true nearest star as long as the
// catalog is not packed more densely than the cell resolution; for
// adversarially dense catalogs a star outside the ring could be closer and
// this returns a non-nearest answer with no error signal.
func (c *Catalog) Nearest(dir geom.Vec3) (Neighbor, bool) {
	if c.buckets == nil {
		panic(ErrNotIndexed)
	}

	start := time.Now()

	best := Neighbor{Cos: math.Inf(-1)}
	found := false
	for cell := range grid.CellOf(dir).Range(1) {
		for _, h := range c.buckets[cell.Index()] {
			cos := dir.Dot(c.stars[h.slot].vec)
			if !found || cos > best.Cos {
				best = Neighbor{Handle: h, Cos: cos}
				found = true
			}
		}
	}

	elapsed := time.Since(start)
	c.opts.Logger.LogNearest(found, best.Cos, elapsed)

	results := 0
	if found {
		results = 1
	}
	c.opts.Metrics.RecordNearest(results, elapsed)

	if !found {
		return Neighbor{}, false
	}

	return best, true
}

// NearestK returns up to k stars closest in angle to dir, ordered by
// descending cosine with ties broken by ascending catalog slot. Scans the
// same cells as Nearest, so the k-th result carries the same density
// caveat. Returns ErrInvalidK for k < 1; panics with ErrNotIndexed before
// DeriveIndex.
func (c *Catalog) NearestK(dir geom.Vec3, k int) ([]Neighbor, error) {
	if c.buckets == nil {
		panic(ErrNotIndexed)
	}

	if k < 1 {
		return nil, fmt.Errorf("nearest-k with k %d: %w", k, ErrInvalidK)
	}

	start := time.Now()

	// Bounded best-k: a min-queue keeps the worst survivor on top for
	// cheap replacement tests.
	q := queue.NewMin(k)
	for cell := range grid.CellOf(dir).Range(1) {
		for _, h := range c.buckets[cell.Index()] {
			cos := dir.Dot(c.stars[h.slot].vec)
			if q.Len() < k {
				q.Push(queue.Item{Slot: h.slot, Cos: cos})
				continue
			}
			if top, _ := q.Top(); cos > top.Cos {
				q.Pop()
				q.Push(queue.Item{Slot: h.slot, Cos: cos})
			}
		}
	}

	neighbors := make([]Neighbor, q.Len())
	for i := len(neighbors) - 1; i >= 0; i-- {
		it, _ := q.Pop()
		neighbors[i] = Neighbor{
			Handle: Handle{slot: it.Slot, generation: c.generation},
			Cos:    it.Cos,
		}
	}

	elapsed := time.Since(start)
	c.opts.Logger.LogNearestK(k, len(neighbors), elapsed)
	c.opts.Metrics.RecordNearest(len(neighbors), elapsed)

	return neighbors, nil
}

// cosRange is a cosine interval; whether its bounds are inclusive or strict
// depends on the check site.
type cosRange struct {
	lo, hi float64
}

// FindTriples finds ordered triples of distinct stars whose pairwise
// angles match the three targets within tolerance: angle(P0,P1) within
// tolerance of angles[0], angle(P0,P2) of angles[1], angle(P1,P2) of
// angles[2]. Only triples whose P0 lies in a cell of the caller's cell
// sequence are found; pass grid.All() (or OccupiedCells) to search the
// whole sky. All angles are radians.
//
// Every emitted triple satisfies the point-level checks, but the sweep is
// not exhaustive: candidate cells are taken from a block around P0's cell
// whose radius grows with the largest target angle, and for wide targets
// the block can stop short of a cell that still holds a matching star.
// Near the cell resolution the targets are covered; as they widen toward
// the 90° prune envelope, recall degrades with no error signal.
//
// Triples are emitted in the deterministic order implied by the nested
// scan: caller's cell order, bucket order within a cell, raster order of
// candidate cells. Role-permuted duplicates of symmetric configurations
// (two equal target angles) are emitted, not deduplicated.
//
// Returns ErrInvalidAngle for a target outside [0, π] and
// ErrInvalidTolerance for a negative or non-finite tolerance. Panics with
// ErrNotIndexed before DeriveIndex.
func (c *Catalog) FindTriples(cells iter.Seq[grid.Cell], angles [3]float64, tolerance float64) ([]Triple, error) {
	if c.buckets == nil {
		panic(ErrNotIndexed)
	}

	if math.IsNaN(tolerance) || math.IsInf(tolerance, 0) || tolerance < 0 {
		return nil, fmt.Errorf("triangle search with tolerance %v: %w", tolerance, ErrInvalidTolerance)
	}

	for _, a := range angles {
		if math.IsNaN(a) || a < 0 || a > math.Pi {
			return nil, fmt.Errorf("triangle search with target angle %v: %w", a, ErrInvalidAngle)
		}
	}

	start := time.Now()

	// Cosine decreases on [0, π], so an angle interval maps to a cosine
	// interval with the endpoints swapped.
	var pointRanges [3]cosRange
	for i, a := range angles {
		pointRanges[i] = cosRange{
			lo: math.Cos(a + tolerance),
			hi: math.Cos(math.Max(a-tolerance, 0)),
		}
	}

	// Cell-level ranges widen each target by the worst-case angular
	// extent of a cell on both sides. They bound cell-center angles only
	// and gate which cells are visited; exact star angles are still
	// checked against the point ranges.
	var cellRanges [3]cosRange
	for i, a := range angles {
		lo := math.Max(a-tolerance-grid.MaxAngle, 0)
		hi := math.Min(a+tolerance+grid.MaxAngle, math.Pi/2)
		cellRanges[i] = cosRange{lo: math.Cos(hi), hi: math.Cos(lo)}
	}

	maxAngle := math.Max(angles[0], math.Max(angles[1], angles[2]))
	cellRange := int(maxAngle/grid.MaxAngle) + 3

	// Hull of the cell ranges for the two angles anchored at P0: one
	// coarse prefilter whose survivors feed both refinement levels.
	hull := cosRange{
		lo: math.Min(cellRanges[0].lo, cellRanges[1].lo),
		hi: math.Max(cellRanges[0].hi, cellRanges[1].hi),
	}

	type candidate struct {
		cell   grid.Cell
		center geom.Vec3 // normalized cell center
		cosTo0 float64   // cosine to C0's normalized center
	}

	var result []Triple
	var candidates []candidate

	for c0 := range cells {
		bucket0 := c.buckets[c0.Index()]
		if len(bucket0) == 0 {
			continue
		}
		center0 := c0.Center().Normalized()

		// Collect every non-empty cell within reach of C0 whose center
		// angle could satisfy either P0-anchored target.
		candidates = candidates[:0]
		for s := range c0.Range(cellRange) {
			if !c.occupied.Contains(s) {
				continue
			}
			cos, ok := s.CosAngleTo(center0)
			if !ok {
				continue
			}
			if cos < hull.lo || cos > hull.hi {
				continue
			}
			candidates = append(candidates, candidate{
				cell:   s,
				center: s.Center().Normalized(),
				cosTo0: cos,
			})
		}

		for _, h0 := range bucket0 {
			s0 := &c.stars[h0.slot]

			for _, c1 := range candidates {
				if c1.cosTo0 <= cellRanges[0].lo || c1.cosTo0 >= cellRanges[0].hi {
					continue
				}

				for _, h1 := range c.buckets[c1.cell.Index()] {
					if h1 == h0 {
						continue
					}
					s1 := &c.stars[h1.slot]

					cos01 := s0.CosAngleTo(s1)
					if cos01 < pointRanges[0].lo || cos01 > pointRanges[0].hi {
						continue
					}

					for _, c2 := range candidates {
						if cosTo1 := c2.center.Dot(c1.center); cosTo1 <= cellRanges[2].lo || cosTo1 >= cellRanges[2].hi {
							continue
						}
						if c2.cosTo0 <= cellRanges[1].lo || c2.cosTo0 >= cellRanges[1].hi {
							continue
						}

						for _, h2 := range c.buckets[c2.cell.Index()] {
							if h2 == h0 || h2 == h1 {
								continue
							}
							s2 := &c.stars[h2.slot]

							cos02 := s0.CosAngleTo(s2)
							if cos02 < pointRanges[1].lo || cos02 > pointRanges[1].hi {
								continue
							}

							cos12 := s1.CosAngleTo(s2)
							if cos12 < pointRanges[2].lo || cos12 > pointRanges[2].hi {
								continue
							}

							result = append(result, Triple{P0: h0, P1: h1, P2: h2})
						}
					}
				}
			}
		}
	}

	elapsed := time.Since(start)
	c.opts.Logger.LogTriples(cellRange, len(result), elapsed)
	c.opts.Metrics.RecordTriples(len(result), elapsed)

	return result, nil
}
