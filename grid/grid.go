// Package grid partitions the cube enclosing the unit sphere into a fixed
// Side×Side×Side array of cells and maps unit direction vectors onto them.
//
// The grid is the pruning backbone of the star index: two directions whose
// cells are farther apart (center to center) than the cells' angular extent
// permits cannot be close on the sphere, so whole cells can be rejected
// before any per-star angle is computed. With Side = 32 each cell spans at
// most MaxAngle ≈ 6.2° of sky, which keeps the 1-ring of a cell small
// enough to scan exhaustively while still bounding the error of
// cell-center angle estimates.
//
// Only cells near the unit shell ever hold stars. Roughly 3,800 of the
// 32,768 cells are occupied by a real catalog; the rest are skipped via
// MayTouchSphere or the catalog's occupancy set.
package grid

import (
	"fmt"
	"iter"
	"math"

	"github.com/stargrid/stargrid/geom"
)

const (
	// Side is the number of cells per axis. It is fixed at compile time:
	// a star caches its cell at construction, so all catalogs must agree
	// on the grid resolution.
	Side = 32

	// Cells is the total number of cells in the grid.
	Cells = Side * Side * Side

	// CellSize is the edge length of one cell; the enclosing cube spans
	// [-1, 1] on each axis.
	CellSize = 2.0 / Side

	// epsilon keeps an axis coordinate of exactly +1 from mapping to the
	// out-of-range index Side.
	epsilon = 1e-6
)

var (
	// shellBand is the half-width of the radius band around 1 within
	// which a cell center must lie for the cell to touch the unit
	// sphere. √3/Side is the circumscribed radius of a cell; the 1.001
	// factor sandbags it so boundary cells are never rejected.
	shellBand = 1.001 * math.Sqrt(3) / Side

	// HalfDiagonalAngle is the angular radius of a cell: the angle
	// subtended at the origin by half the cell's space diagonal,
	// asin(√3·CellSize/2).
	HalfDiagonalAngle = math.Asin(math.Sqrt(3) * CellSize / 2)

	// MaxAngle bounds the angular separation of any two unit directions
	// that fall in the same cell. Cell-to-cell pruning widens target
	// angle ranges by this much to stay conservative.
	MaxAngle = 2 * HalfDiagonalAngle
)

// Cell identifies one cell of the grid as the packed index
// x + y·Side + z·Side², with (x, y, z) in [0, Side)³.
type Cell uint32

// At returns the cell with the given axis indices. Indices must be in
// [0, Side); At does not range-check.
func At(x, y, z int) Cell {
	return Cell(x + y*Side + z*Side*Side)
}

// CellOf returns the cell containing a direction vector. Each axis
// coordinate is clamped to [-1, 1], shifted to [0, 1] and scaled by
// Side·(1-epsilon) before truncation. The clamp happens before the scale;
// search correctness depends on every caller mapping a direction to the
// identical cell.
func CellOf(v geom.Vec3) Cell {
	return At(axisIndex(v[0]), axisIndex(v[1]), axisIndex(v[2]))
}

func axisIndex(c float64) int {
	return int((geom.Clamp(c, -1, 1) + 1) / 2 * Side * (1 - epsilon))
}

// XYZ unpacks the cell into its axis indices.
func (c Cell) XYZ() (x, y, z int) {
	x = int(c) % Side
	y = (int(c) / Side) % Side
	z = int(c) / (Side * Side)
	return x, y, z
}

// Index returns the packed index as an int, suitable for slice indexing.
func (c Cell) Index() int {
	return int(c)
}

// String renders the cell as its axis indices.
func (c Cell) String() string {
	x, y, z := c.XYZ()
	return fmt.Sprintf("cell(%d,%d,%d)", x, y, z)
}

// Center returns the geometric center of the cell,
// coord(i) = (2i+1)/Side − 1 per axis. Not a unit vector.
func (c Cell) Center() geom.Vec3 {
	x, y, z := c.XYZ()
	return geom.Vec3{axisCenter(x), axisCenter(y), axisCenter(z)}
}

func axisCenter(i int) float64 {
	return float64(2*i+1)/Side - 1
}

// MayTouchSphere reports whether any point of the unit sphere can lie
// within the cell: the cell center's distance from the origin must be
// within shellBand of 1. Cells wholly inside or outside the shell hold no
// stars and can be skipped.
func (c Cell) MayTouchSphere() bool {
	return math.Abs(c.Center().Length()-1) <= shellBand
}

// CosAngleTo returns the cosine of the angle between the cell's
// (normalized) center and the unit direction u. The second return is false
// when the cell cannot touch the unit sphere, in which case no star can
// occupy it and no meaningful angle exists.
func (c Cell) CosAngleTo(u geom.Vec3) (float64, bool) {
	if !c.MayTouchSphere() {
		return 0, false
	}
	return c.Center().Normalized().Dot(u), true
}

// All enumerates every cell of the grid in raster order: x varies fastest,
// then y, then z, which is ascending packed index.
func All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for i := 0; i < Cells; i++ {
			if !yield(Cell(i)) {
				return
			}
		}
	}
}

// Range enumerates the cuboid of cells within k steps of c along each
// axis, clipped at the grid boundary, in raster order. The home cell is
// included; Range(0) yields only the home cell.
func (c Cell) Range(k int) iter.Seq[Cell] {
	if k < 0 {
		k = 0
	}
	x, y, z := c.XYZ()
	x0, x1 := clip(x-k), clip(x+k)
	y0, y1 := clip(y-k), clip(y+k)
	z0, z1 := clip(z-k), clip(z+k)
	return func(yield func(Cell) bool) {
		for zz := z0; zz <= z1; zz++ {
			for yy := y0; yy <= y1; yy++ {
				for xx := x0; xx <= x1; xx++ {
					if !yield(At(xx, yy, zz)) {
						return
					}
				}
			}
		}
	}
}

// Ring enumerates the up-to-26 face, edge and corner neighbors of c,
// clipped at the grid boundary, in raster order. The home cell is
// excluded.
func (c Cell) Ring() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for n := range c.Range(1) {
			if n == c {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

func clip(i int) int {
	if i < 0 {
		return 0
	}
	if i > Side-1 {
		return Side - 1
	}
	return i
}
