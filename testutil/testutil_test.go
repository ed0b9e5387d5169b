package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stargrid/stargrid"
	"github.com/stargrid/stargrid/geom"
)

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(4711)
	b := NewRNG(4711)

	for range 16 {
		assert.Equal(t, a.Direction(), b.Direction())
	}

	a.Reset()
	b.Reset()
	assert.Equal(t, a.Direction(), b.Direction())
}

func TestDirectionIsUnit(t *testing.T) {
	rng := NewRNG(1)

	for range 64 {
		assert.InDelta(t, 1.0, rng.Direction().Length(), 1e-12)
	}
}

func TestStars(t *testing.T) {
	rng := NewRNG(42)

	stars := rng.Stars(10, 100)
	require.Len(t, stars, 10)

	for i := range stars {
		assert.Equal(t, stargrid.StarID(100+i), stars[i].ID())
		assert.InDelta(t, 1.0, stars[i].Vec().Length(), 1e-12)
	}
}

func TestBruteForceNearest(t *testing.T) {
	stars := []stargrid.Star{
		stargrid.NewStar(stargrid.StarData{ID: 1, Ra: 0, De: 0}),
		stargrid.NewStar(stargrid.StarData{ID: 2, Ra: geom.DegToRad(90), De: 0}),
	}

	id, cos, ok := BruteForceNearest(stars, geom.FromRaDe(geom.DegToRad(10), 0))
	require.True(t, ok)
	assert.Equal(t, stargrid.StarID(1), id)
	assert.Greater(t, cos, 0.9)

	_, _, ok = BruteForceNearest(nil, geom.Vec3{1, 0, 0})
	assert.False(t, ok)
}

func TestBruteForceTriples(t *testing.T) {
	// Right-angle configuration: 30° between A and B, 30° between A and
	// C, along perpendicular great circles.
	stars := []stargrid.Star{
		stargrid.NewStar(stargrid.StarData{ID: 1, Ra: 0, De: 0}),
		stargrid.NewStar(stargrid.StarData{ID: 2, Ra: geom.DegToRad(30), De: 0}),
		stargrid.NewStar(stargrid.StarData{ID: 3, Ra: 0, De: geom.DegToRad(30)}),
	}

	bc := stars[1].AngleTo(&stars[2])
	got := BruteForceTriples(stars, [3]float64{geom.DegToRad(30), geom.DegToRad(30), bc}, geom.DegToRad(0.1))

	assert.Contains(t, got, [3]stargrid.StarID{1, 2, 3})
}
