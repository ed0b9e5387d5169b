package stargrid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stargrid/stargrid/geom"
	"github.com/stargrid/stargrid/grid"
)

func testCatalog(ids ...StarID) *Catalog {
	c := New()
	for i, id := range ids {
		c.Add(NewStar(StarData{
			ID: id,
			Ra: geom.DegToRad(float64(10 * i)),
			De: geom.DegToRad(float64(5 * i)),
		}))
	}
	return c
}

func TestFindByIDRequiresSort(t *testing.T) {
	c := testCatalog(3, 1, 2)

	require.PanicsWithValue(t, ErrNotSorted, func() {
		c.FindByID(1)
	})

	c.Sort()
	require.True(t, c.IsSorted())

	h, ok := c.FindByID(2)
	require.True(t, ok)
	assert.Equal(t, StarID(2), c.Star(h).ID())

	_, ok = c.FindByID(99)
	assert.False(t, ok, "absent id is a quiet outcome, not a panic")
}

func TestSortOrdersByID(t *testing.T) {
	c := testCatalog(30, 10, 20)
	c.Sort()

	var ids []StarID
	for _, s := range c.Stars() {
		ids = append(ids, s.ID())
	}
	assert.Equal(t, []StarID{10, 20, 30}, ids)
}

func TestAddInvalidatesHandles(t *testing.T) {
	c := testCatalog(1, 2)
	c.Sort()

	h, ok := c.FindByID(1)
	require.True(t, ok)

	c.Add(NewStar(StarData{ID: 3}))

	require.PanicsWithValue(t, ErrStaleHandle, func() {
		c.Star(h)
	})
}

func TestSortInvalidatesHandles(t *testing.T) {
	c := testCatalog(2, 1)
	c.Sort()

	h, ok := c.FindByID(1)
	require.True(t, ok)

	c.Sort()

	require.PanicsWithValue(t, ErrStaleHandle, func() {
		c.Star(h)
	})
}

func TestRetain(t *testing.T) {
	c := New()
	for i := range 10 {
		c.Add(NewStar(StarData{ID: StarID(i), Brightness: float32(i)}))
	}

	c.Retain(BrighterThan(5))

	assert.Equal(t, 5, c.Len())
	assert.False(t, c.IsSorted())
	for _, s := range c.Stars() {
		assert.Less(t, s.Brightness(), float32(5))
	}
}

func TestDeriveIndexIdempotent(t *testing.T) {
	c := testCatalog(1, 2, 3, 4, 5)
	c.Sort()
	c.DeriveIndex()

	first := make(map[grid.Cell][]Handle)
	for cell := range c.OccupiedCells() {
		first[cell] = append([]Handle(nil), c.CellStars(cell)...)
	}

	c.DeriveIndex()

	second := make(map[grid.Cell][]Handle)
	for cell := range c.OccupiedCells() {
		second[cell] = append([]Handle(nil), c.CellStars(cell)...)
	}

	assert.Equal(t, first, second)
}

func TestRetainSortDeriveConsistency(t *testing.T) {
	c := New()
	for i := range 100 {
		c.Add(NewStar(StarData{
			ID:         StarID(i),
			Ra:         geom.DegToRad(float64(i * 3)),
			De:         geom.DegToRad(float64(i%40 - 20)),
			Brightness: float32(i % 10),
		}))
	}

	c.Retain(BrighterThan(6))
	c.Sort()
	c.DeriveIndex()

	// The union of all cell buckets is exactly the surviving stars, each
	// handle appearing exactly once.
	seen := make(map[Handle]int)
	for cell := range c.OccupiedCells() {
		for _, h := range c.CellStars(cell) {
			seen[h]++
			assert.Equal(t, cell, c.Star(h).Cell(), "star bucketed in its own cell")
		}
	}

	assert.Len(t, seen, c.Len())
	for h, n := range seen {
		assert.Equal(t, 1, n, "handle %v appears once", h)
	}
}

func TestCellStarsRequiresIndex(t *testing.T) {
	c := testCatalog(1)
	c.Sort()

	require.PanicsWithValue(t, ErrNotIndexed, func() {
		c.CellStars(grid.At(0, 0, 0))
	})
	require.PanicsWithValue(t, ErrNotIndexed, func() {
		c.OccupiedCells()
	})
	require.PanicsWithValue(t, ErrNotIndexed, func() {
		c.StarsInCells(grid.All())
	})
}

func TestMutationClearsDerivedData(t *testing.T) {
	c := testCatalog(1, 2)
	c.Sort()
	c.DeriveIndex()
	require.True(t, c.IsIndexed())

	c.Add(NewStar(StarData{ID: 3}))

	assert.False(t, c.IsIndexed())
	assert.False(t, c.IsSorted())
}

func TestAttachNames(t *testing.T) {
	c := testCatalog(11767, 54061, 59774)
	c.Sort()

	t.Run("strict mode aborts on missing id", func(t *testing.T) {
		err := c.AttachNames([]NameEntry{
			{ID: 11767, Name: "Polaris"},
			{ID: 99999, Name: "Nonesuch"},
			{ID: 54061, Name: "Dubhe"},
		}, false)

		var unknownID *UnknownIDError
		require.ErrorAs(t, err, &unknownID)
		assert.Equal(t, StarID(99999), unknownID.ID)
		assert.True(t, errors.Is(err, ErrNotFound))

		// Names attached before the failure stay attached; the one after
		// it was never reached.
		_, ok := c.FindByName("Polaris")
		assert.True(t, ok)
		_, ok = c.FindByName("Dubhe")
		assert.False(t, ok)
	})

	t.Run("ignore missing skips silently", func(t *testing.T) {
		err := c.AttachNames([]NameEntry{
			{ID: 99999, Name: "Nonesuch"},
			{ID: 59774, Name: "Megrez"},
		}, true)
		require.NoError(t, err)

		h, ok := c.FindByName("Megrez")
		require.True(t, ok)
		assert.Equal(t, StarID(59774), c.Star(h).ID())

		_, ok = c.FindByName("Nonesuch")
		assert.False(t, ok)
	})
}

func TestMutationClearsNames(t *testing.T) {
	c := testCatalog(1, 2)
	c.Sort()
	require.NoError(t, c.AttachNames([]NameEntry{{ID: 1, Name: "Alpha"}}, false))

	c.Add(NewStar(StarData{ID: 3}))

	// A name held a now-stale handle; the mutation dropped it rather than
	// leaving a lookup that panics.
	_, ok := c.FindByName("Alpha")
	assert.False(t, ok)
}

func TestAttachNameStaleHandle(t *testing.T) {
	c := testCatalog(1, 2)
	c.Sort()
	h, _ := c.FindByID(1)
	c.Sort()

	require.PanicsWithValue(t, ErrStaleHandle, func() {
		c.AttachName(h, "Alpha")
	})
}

func TestFindIDOrName(t *testing.T) {
	c := testCatalog(11767, 54061)
	c.Sort()
	require.NoError(t, c.AttachNames([]NameEntry{{ID: 11767, Name: "Polaris"}}, false))

	t.Run("numeric resolves by id", func(t *testing.T) {
		h, err := c.FindIDOrName("54061")
		require.NoError(t, err)
		assert.Equal(t, StarID(54061), c.Star(h).ID())
	})

	t.Run("non-numeric resolves by name", func(t *testing.T) {
		h, err := c.FindIDOrName("Polaris")
		require.NoError(t, err)
		assert.Equal(t, StarID(11767), c.Star(h).ID())
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := c.FindIDOrName("42")
		var unknownID *UnknownIDError
		require.ErrorAs(t, err, &unknownID)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := c.FindIDOrName("Nonesuch")
		var unknownName *UnknownNameError
		require.ErrorAs(t, err, &unknownName)
		assert.Equal(t, "Nonesuch", unknownName.Name)
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestStarsInCells(t *testing.T) {
	c := testCatalog(1, 2, 3)
	c.Sort()
	c.DeriveIndex()

	var ids []StarID
	for _, s := range c.StarsInCells(c.OccupiedCells()) {
		ids = append(ids, s.ID())
	}

	assert.ElementsMatch(t, []StarID{1, 2, 3}, ids)
}

func TestEmptyCatalog(t *testing.T) {
	c := New()
	assert.True(t, c.IsEmpty())

	c.Sort()
	c.DeriveIndex()

	_, ok := c.FindByID(1)
	assert.False(t, ok)

	_, found := c.Nearest(geom.Vec3{1, 0, 0})
	assert.False(t, found)
}
