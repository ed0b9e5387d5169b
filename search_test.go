package stargrid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/stargrid/stargrid"
	"github.com/stargrid/stargrid/geom"
	"github.com/stargrid/stargrid/grid"
	"github.com/stargrid/stargrid/testutil"
)

// rightAngleSky is three stars spanning two perpendicular 30° arcs:
// A at (0°,0°), B 30° east, C 30° north. angle(A,B) = angle(A,C) = 30°;
// angle(B,C) = acos(cos²30°) ≈ 41.41°.
func rightAngleSky(t *testing.T) *stargrid.Catalog {
	t.Helper()

	c := stargrid.New()
	c.Add(stargrid.NewStar(stargrid.StarData{ID: 1, Ra: 0, De: 0}))
	c.Add(stargrid.NewStar(stargrid.StarData{ID: 2, Ra: geom.DegToRad(30), De: 0}))
	c.Add(stargrid.NewStar(stargrid.StarData{ID: 3, Ra: 0, De: geom.DegToRad(30)}))
	c.Sort()
	c.DeriveIndex()
	return c
}

func TestNearest(t *testing.T) {
	c := rightAngleSky(t)

	got, ok := c.Nearest(geom.FromRaDe(geom.DegToRad(2), geom.DegToRad(1)))
	require.True(t, ok)

	assert.Equal(t, stargrid.StarID(1), c.Star(got.Handle).ID())
	assert.Greater(t, got.Cos, math.Cos(geom.DegToRad(3)))
}

func TestNearestEmptyRegion(t *testing.T) {
	c := rightAngleSky(t)

	// Region opposite all three stars.
	_, ok := c.Nearest(geom.FromRaDe(geom.DegToRad(180), 0))
	assert.False(t, ok)
}

func TestNearestRequiresIndex(t *testing.T) {
	c := stargrid.New()
	c.Add(stargrid.NewStar(stargrid.StarData{ID: 1}))
	c.Sort()

	require.PanicsWithValue(t, stargrid.ErrNotIndexed, func() {
		c.Nearest(geom.Vec3{1, 0, 0})
	})
	require.PanicsWithValue(t, stargrid.ErrNotIndexed, func() {
		c.NearestK(geom.Vec3{1, 0, 0}, 3)
	})
	require.PanicsWithValue(t, stargrid.ErrNotIndexed, func() {
		c.FindTriples(grid.All(), [3]float64{1, 1, 1}, 0.01)
	})
}

func TestNearestMatchesBruteForce(t *testing.T) {
	rng := testutil.NewRNG(4711)
	stars := rng.Stars(2000, 1)

	c := stargrid.New()
	for _, s := range stars {
		c.Add(s)
	}
	c.Sort()
	c.DeriveIndex()

	// A star within 3° of the query has chord distance < one cell edge,
	// so it cannot be outside the scanned 1-ring; inside that radius the
	// grid answer must agree with brute force.
	safe := math.Cos(geom.DegToRad(3))
	checked := 0
	for range 200 {
		dir := rng.Direction()
		wantID, wantCos, ok := testutil.BruteForceNearest(stars, dir)
		require.True(t, ok)
		if wantCos < safe {
			continue
		}
		checked++

		got, ok := c.Nearest(dir)
		require.True(t, ok)
		assert.Equal(t, wantID, c.Star(got.Handle).ID())
		assert.InDelta(t, wantCos, got.Cos, 1e-12)
	}

	require.NotZero(t, checked, "no query landed near a star; seed is unsuitable")
}

func TestNearestK(t *testing.T) {
	c := stargrid.New()
	for i := range 5 {
		c.Add(stargrid.NewStar(stargrid.StarData{
			ID: stargrid.StarID(i + 1),
			Ra: geom.DegToRad(float64(i)),
		}))
	}
	c.Sort()
	c.DeriveIndex()

	got, err := c.NearestK(geom.Vec3{1, 0, 0}, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	var ids []stargrid.StarID
	for i, n := range got {
		ids = append(ids, c.Star(n.Handle).ID())
		if i > 0 {
			assert.GreaterOrEqual(t, got[i-1].Cos, n.Cos, "descending cosine")
		}
	}
	assert.Equal(t, []stargrid.StarID{1, 2, 3}, ids)
}

func TestNearestKFewerThanK(t *testing.T) {
	c := rightAngleSky(t)

	got, err := c.NearestK(geom.Vec3{1, 0, 0}, 10)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(got), 3)
	assert.NotEmpty(t, got)
}

func TestNearestKInvalidK(t *testing.T) {
	c := rightAngleSky(t)

	_, err := c.NearestK(geom.Vec3{1, 0, 0}, 0)
	assert.ErrorIs(t, err, stargrid.ErrInvalidK)
}

func TestFindTriples(t *testing.T) {
	c := rightAngleSky(t)

	bc := math.Acos(0.75) // angle(B,C), ≈ 41.41°
	triples, err := c.FindTriples(
		grid.All(),
		[3]float64{geom.DegToRad(30), geom.DegToRad(30), bc},
		geom.DegToRad(0.1),
	)
	require.NoError(t, err)

	var got [][3]stargrid.StarID
	for _, tr := range triples {
		got = append(got, [3]stargrid.StarID{
			c.Star(tr.P0).ID(), c.Star(tr.P1).ID(), c.Star(tr.P2).ID(),
		})
	}

	// angle(A,B) = angle(A,C), so the roles of P1 and P2 are
	// interchangeable and the symmetric duplicate appears too.
	assert.Contains(t, got, [3]stargrid.StarID{1, 2, 3})
	assert.Contains(t, got, [3]stargrid.StarID{1, 3, 2})
}

func TestFindTriplesValidation(t *testing.T) {
	c := rightAngleSky(t)

	tests := []struct {
		name      string
		angles    [3]float64
		tolerance float64
		wantErr   error
	}{
		{name: "negative tolerance", angles: [3]float64{1, 1, 1}, tolerance: -0.1, wantErr: stargrid.ErrInvalidTolerance},
		{name: "nan tolerance", angles: [3]float64{1, 1, 1}, tolerance: math.NaN(), wantErr: stargrid.ErrInvalidTolerance},
		{name: "negative angle", angles: [3]float64{-1, 1, 1}, tolerance: 0.1, wantErr: stargrid.ErrInvalidAngle},
		{name: "angle beyond pi", angles: [3]float64{1, 4, 1}, tolerance: 0.1, wantErr: stargrid.ErrInvalidAngle},
		{name: "nan angle", angles: [3]float64{1, 1, math.NaN()}, tolerance: 0.1, wantErr: stargrid.ErrInvalidAngle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.FindTriples(grid.All(), tt.angles, tt.tolerance)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFindTriplesSubsetOfBruteForce(t *testing.T) {
	// A patch sky of 60 stars confined to ra ∈ [0°,50°], de ∈ [-25°,25°]
	// keeps every pairwise angle well under the 90° cell-prune envelope.
	rng := testutil.NewRNG(1234)
	stars := make([]stargrid.Star, 60)
	for i := range stars {
		stars[i] = stargrid.NewStar(stargrid.StarData{
			ID: stargrid.StarID(i + 1),
			Ra: geom.DegToRad(rng.Float64() * 50),
			De: geom.DegToRad(rng.Float64()*50 - 25),
		})
	}

	c := stargrid.New()
	for _, s := range stars {
		c.Add(s)
	}
	c.Sort()
	c.DeriveIndex()

	// Take an actual star triangle as the target so matches exist.
	angles := [3]float64{
		stars[10].AngleTo(&stars[20]),
		stars[10].AngleTo(&stars[30]),
		stars[20].AngleTo(&stars[30]),
	}
	tolerance := geom.DegToRad(2)

	valid := make(map[[3]stargrid.StarID]bool)
	for _, tr := range testutil.BruteForceTriples(stars, angles, tolerance) {
		valid[tr] = true
	}

	triples, err := c.FindTriples(grid.All(), angles, tolerance)
	require.NoError(t, err)
	require.NotEmpty(t, triples)

	// The grid sweep may stop short of wide-angle matches, so it is not
	// checked for completeness here, but everything it emits must be a
	// genuine match.
	for _, tr := range triples {
		got := [3]stargrid.StarID{
			c.Star(tr.P0).ID(), c.Star(tr.P1).ID(), c.Star(tr.P2).ID(),
		}
		assert.True(t, valid[got], "triple %v fails the angle targets", got)
	}
}

func TestFindTriplesRestrictedCells(t *testing.T) {
	c := rightAngleSky(t)

	bc := math.Acos(0.75)
	angles := [3]float64{geom.DegToRad(30), geom.DegToRad(30), bc}

	// Restricting the P0 sweep to star A's cell keeps only triples
	// anchored there.
	h, ok := c.FindByID(1)
	require.True(t, ok)
	home := c.Star(h).Cell()

	triples, err := c.FindTriples(home.Range(0), angles, geom.DegToRad(0.1))
	require.NoError(t, err)
	require.NotEmpty(t, triples)

	for _, tr := range triples {
		assert.Equal(t, home, c.Star(tr.P0).Cell())
	}
}

func TestConcurrentReaders(t *testing.T) {
	rng := testutil.NewRNG(99)
	c := rng.Catalog(500)

	queries := make([]geom.Vec3, 50)
	for i := range queries {
		queries[i] = rng.Direction()
	}

	baseline := make([]stargrid.Neighbor, len(queries))
	baselineOK := make([]bool, len(queries))
	for i, q := range queries {
		baseline[i], baselineOK[i] = c.Nearest(q)
	}

	// Frozen after DeriveIndex: any number of readers, zero writers.
	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			for i, q := range queries {
				got, ok := c.Nearest(q)
				if ok != baselineOK[i] || got != baseline[i] {
					return assert.AnError
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}
