package skydata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stargrid/stargrid"
	"github.com/stargrid/stargrid/geom"
	"github.com/stargrid/stargrid/grid"
	"github.com/stargrid/stargrid/skydata"
)

func brightCatalog(t *testing.T) *stargrid.Catalog {
	t.Helper()

	catalog := stargrid.New()
	for _, data := range skydata.BrightStars() {
		catalog.Add(stargrid.NewStar(data))
	}
	catalog.Sort()
	require.NoError(t, catalog.AttachNames(skydata.Aliases(), true))
	catalog.DeriveIndex()
	return catalog
}

func TestBrightStarsWellFormed(t *testing.T) {
	data := skydata.BrightStars()
	require.NotEmpty(t, data)

	seen := make(map[stargrid.StarID]bool)
	for _, d := range data {
		assert.False(t, seen[d.ID], "duplicate id %d", d.ID)
		seen[d.ID] = true

		assert.GreaterOrEqual(t, d.Ra, 0.0)
		assert.Less(t, d.Ra, 2*3.15)
		assert.Less(t, d.Brightness, float32(4.0), "naked-eye subset")
		assert.Positive(t, d.Distance)
	}
}

func TestAliasesResolve(t *testing.T) {
	catalog := brightCatalog(t)

	for name, id := range map[string]stargrid.StarID{
		"Polaris": 11767,
		"Dubhe":   54061,
		"Megrez":  59774,
		"Sirius":  32349,
		"Vega":    91262,
	} {
		h, ok := catalog.FindByName(name)
		require.True(t, ok, "name %s", name)
		assert.Equal(t, id, catalog.Star(h).ID())
	}
}

func TestCollatedSupersetOfAliases(t *testing.T) {
	collated := make(map[stargrid.NameEntry]bool)
	for _, e := range skydata.CollatedAliases() {
		collated[e] = true
	}

	missing := 0
	for _, e := range skydata.Aliases() {
		if !collated[e] {
			missing++
		}
	}

	// The curated table carries one entry (Barnard's star) with no IAU
	// designation; everything else is in the collation.
	assert.LessOrEqual(t, missing, 1)
}

// TestClosestStarSelfConsistency queries each bright star's own position
// and expects to get that star back, essentially exactly.
func TestClosestStarSelfConsistency(t *testing.T) {
	catalog := brightCatalog(t)

	for _, d := range skydata.BrightStars() {
		got, ok := catalog.Nearest(geom.FromRaDe(d.Ra, d.De))
		require.True(t, ok, "star %d", d.ID)
		assert.Equal(t, d.ID, catalog.Star(got.Handle).ID())
		assert.Greater(t, got.Cos, 0.999999)
	}
}

// TestPloughTriangle searches the whole sky for the Dubhe/Polaris/Megrez
// triangle and checks every match really satisfies the tolerances.
func TestPloughTriangle(t *testing.T) {
	catalog := brightCatalog(t)

	angles := [3]float64{
		geom.DegToRad(28.71), // Dubhe-Polaris
		geom.DegToRad(10.22), // Dubhe-Megrez
		geom.DegToRad(33.58), // Polaris-Megrez
	}
	tolerance := geom.DegToRad(0.06)

	triples, err := catalog.FindTriples(grid.All(), angles, tolerance)
	require.NoError(t, err)
	require.NotEmpty(t, triples)

	found := false
	for _, tr := range triples {
		p0, p1, p2 := catalog.Star(tr.P0), catalog.Star(tr.P1), catalog.Star(tr.P2)

		assert.InDelta(t, angles[0], p0.AngleTo(p1), tolerance)
		assert.InDelta(t, angles[1], p0.AngleTo(p2), tolerance)
		assert.InDelta(t, angles[2], p1.AngleTo(p2), tolerance)

		if p0.ID() == 54061 && p1.ID() == 11767 && p2.ID() == 59774 {
			found = true
		}
	}

	assert.True(t, found, "the Plough triangle itself must be among the matches")
}

func TestConstellations(t *testing.T) {
	catalog := brightCatalog(t)

	require.NotEmpty(t, skydata.Constellations)

	var ursaMajor *skydata.Constellation
	for i := range skydata.Constellations {
		c := &skydata.Constellations[i]
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Path)
		if c.Name == "Ursa Major" {
			ursaMajor = c
		}
	}
	require.NotNil(t, ursaMajor)

	// The Plough's seven stars are all in the bright table.
	for _, id := range []stargrid.StarID{54061, 53910, 58001, 59774, 62956, 65378, 67301} {
		assert.Contains(t, ursaMajor.Path, id)
		_, ok := catalog.FindByID(id)
		assert.True(t, ok, "id %d", id)
	}
}
