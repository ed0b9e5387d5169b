// Package cellset tracks which grid cells hold at least one star.
//
// A catalog occupies only a thin shell of the grid (a few thousand of the
// 32,768 cells), so the occupancy set is kept as a roaring bitmap: cheap to
// build during index derivation, cheap to probe from the triple search's
// candidate collection, and iterable in ascending cell order.
package cellset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/stargrid/stargrid/grid"
)

// Set is a compressed set of occupied grid cells.
type Set struct {
	rb *roaring.Bitmap
}

// New creates an empty set.
func New() *Set {
	return &Set{
		rb: roaring.New(),
	}
}

// Add marks a cell as occupied.
func (s *Set) Add(c grid.Cell) {
	s.rb.Add(uint32(c))
}

// Contains reports whether a cell is occupied.
func (s *Set) Contains(c grid.Cell) bool {
	return s.rb.Contains(uint32(c))
}

// IsEmpty reports whether no cell is occupied.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of occupied cells.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{
		rb: s.rb.Clone(),
	}
}

// Cells iterates the occupied cells in ascending packed-index order, which
// is the grid's raster order.
func (s *Set) Cells() iter.Seq[grid.Cell] {
	return func(yield func(grid.Cell) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(grid.Cell(it.Next())) {
				return
			}
		}
	}
}

// Clear removes every cell from the set.
func (s *Set) Clear() {
	s.rb.Clear()
}
