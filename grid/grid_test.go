package grid

import (
	"iter"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stargrid/stargrid/geom"
)

func TestCellOf(t *testing.T) {
	tests := []struct {
		name    string
		v       geom.Vec3
		x, y, z int
	}{
		{name: "near origin", v: geom.Vec3{0.01, 0.01, 0.01}, x: 16, y: 16, z: 16},
		{name: "origin lands below midline", v: geom.Vec3{0, 0, 0}, x: 15, y: 15, z: 15},
		{name: "positive x axis", v: geom.Vec3{1, 0, 0}, x: 31, y: 15, z: 15},
		{name: "negative corner", v: geom.Vec3{-1, -1, -1}, x: 0, y: 0, z: 0},
		{name: "positive one stays in range", v: geom.Vec3{1, 1, 1}, x: 31, y: 31, z: 31},
		{name: "out of range clamps", v: geom.Vec3{2, -3, 0.5}, x: 31, y: 0, z: 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CellOf(tt.v)
			assert.Equal(t, At(tt.x, tt.y, tt.z), got)

			// Pure function: recomputing yields the identical cell.
			assert.Equal(t, got, CellOf(tt.v))
		})
	}
}

func TestAtXYZRoundTrip(t *testing.T) {
	for _, c := range []struct{ x, y, z int }{
		{0, 0, 0}, {31, 0, 0}, {0, 31, 0}, {0, 0, 31}, {31, 31, 31}, {5, 17, 29},
	} {
		x, y, z := At(c.x, c.y, c.z).XYZ()
		assert.Equal(t, c.x, x)
		assert.Equal(t, c.y, y)
		assert.Equal(t, c.z, z)
	}
}

func TestCenter(t *testing.T) {
	assert.Equal(t, geom.Vec3{-0.96875, -0.96875, -0.96875}, At(0, 0, 0).Center())
	assert.Equal(t, geom.Vec3{0.96875, 0.96875, 0.96875}, At(31, 31, 31).Center())
	assert.Equal(t, geom.Vec3{0.03125, 0.03125, 0.03125}, At(16, 16, 16).Center())
}

func TestMayTouchSphere(t *testing.T) {
	t.Run("cells around the origin are far inside the shell", func(t *testing.T) {
		c := CellOf(geom.Vec3{0.01, 0.01, 0.01})
		assert.False(t, c.MayTouchSphere())
		for n := range c.Ring() {
			assert.False(t, n.MayTouchSphere())
		}
	})

	t.Run("matches the radius band for every cell", func(t *testing.T) {
		band := 1.001 * math.Sqrt(3) / Side
		for c := range All() {
			d := math.Abs(c.Center().Length() - 1)
			if d > band {
				assert.False(t, c.MayTouchSphere(), "cell %v at shell distance %v", c, d)
			} else {
				assert.True(t, c.MayTouchSphere(), "cell %v at shell distance %v", c, d)
			}
		}
	})
}

func TestCosAngleTo(t *testing.T) {
	x := geom.Vec3{1, 0, 0}

	t.Run("cell on the shell", func(t *testing.T) {
		c, ok := CellOf(x).CosAngleTo(x)
		require.True(t, ok)
		assert.InDelta(t, 1.0, c, 2e-3, "own cell center points nearly along the direction")
	})

	t.Run("cell off the shell", func(t *testing.T) {
		_, ok := At(16, 16, 16).CosAngleTo(x)
		assert.False(t, ok)
	})
}

func TestAll(t *testing.T) {
	var count int
	prev := -1
	for c := range All() {
		assert.Equal(t, prev+1, c.Index(), "raster order is ascending packed index")
		prev = c.Index()
		count++
	}
	assert.Equal(t, Cells, count)
}

func TestRange(t *testing.T) {
	t.Run("interior cuboid includes home", func(t *testing.T) {
		home := At(10, 10, 10)
		var cells []Cell
		seenHome := false
		for c := range home.Range(1) {
			cells = append(cells, c)
			if c == home {
				seenHome = true
			}
		}
		assert.Len(t, cells, 27)
		assert.True(t, seenHome)
	})

	t.Run("clips at the boundary", func(t *testing.T) {
		var cells []Cell
		for c := range At(0, 0, 0).Range(1) {
			cells = append(cells, c)
		}
		want := []Cell{
			At(0, 0, 0), At(1, 0, 0), At(0, 1, 0), At(1, 1, 0),
			At(0, 0, 1), At(1, 0, 1), At(0, 1, 1), At(1, 1, 1),
		}
		assert.Equal(t, want, cells)
	})

	t.Run("zero range is the home cell", func(t *testing.T) {
		var cells []Cell
		for c := range At(4, 5, 6).Range(0) {
			cells = append(cells, c)
		}
		assert.Equal(t, []Cell{At(4, 5, 6)}, cells)
	})

	t.Run("wide range covers the whole grid", func(t *testing.T) {
		count := 0
		for range At(16, 16, 16).Range(Side) {
			count++
		}
		assert.Equal(t, Cells, count)
	})
}

func TestRing(t *testing.T) {
	t.Run("interior cell has 26 neighbors", func(t *testing.T) {
		home := At(10, 10, 10)
		count := 0
		for c := range home.Ring() {
			assert.NotEqual(t, home, c)
			count++
		}
		assert.Equal(t, 26, count)
	})

	t.Run("corner cell has 7 neighbors", func(t *testing.T) {
		count := 0
		for range At(31, 31, 31).Ring() {
			count++
		}
		assert.Equal(t, 7, count)
	})

	t.Run("neighbor relation is symmetric", func(t *testing.T) {
		sample := []int{0, 1, 15, 30, 31}
		for _, x := range sample {
			for _, y := range sample {
				for _, z := range sample {
					a := At(x, y, z)
					for b := range a.Ring() {
						assert.True(t, contains(b.Ring(), a), "%v in ring of %v but not vice versa", b, a)
					}
				}
			}
		}
	})
}

func contains(cells iter.Seq[Cell], want Cell) bool {
	for c := range cells {
		if c == want {
			return true
		}
	}
	return false
}
