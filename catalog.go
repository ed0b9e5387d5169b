package stargrid

import (
	"iter"
	"sort"
	"strconv"
	"time"

	"github.com/stargrid/stargrid/grid"
	"github.com/stargrid/stargrid/internal/cellset"
)

// Handle is an opaque reference to a star's slot in a catalog. A handle is
// valid only until the next mutating operation (Add, Retain, Sort): those
// bump the catalog generation, and dereferencing a handle from an earlier
// generation panics with ErrStaleHandle. Handles are only obtainable from
// catalog lookups; the zero Handle is stale for any mutated catalog and
// valid only for slot 0 of a never-mutated one, so callers should treat it
// as meaningless.
type Handle struct {
	slot       uint32
	generation uint32
}

// NameEntry pairs a star id with a display name for bulk AttachNames calls.
type NameEntry struct {
	ID   StarID
	Name string
}

// Catalog owns a set of stars and the derived structures the search engine
// queries: a by-id order for binary search, a name table, and per-cell
// handle buckets with an occupancy set.
//
// The intended lifecycle is build-then-freeze: Add (and optionally Retain)
// stars, Sort, attach names, DeriveIndex, then query. Queries never mutate,
// so a derived catalog may be shared by any number of concurrent readers;
// mutating it concurrently with anything else is not safe.
type Catalog struct {
	opts Options

	stars      []Star
	sorted     bool
	generation uint32

	names map[string]Handle

	// Derived data, nil until DeriveIndex. buckets is indexed by packed
	// cell index; occupied mirrors which buckets are non-empty.
	buckets  [][]Handle
	occupied *cellset.Set
}

// Len returns the number of stars in the catalog.
func (c *Catalog) Len() int { return len(c.stars) }

// IsEmpty reports whether the catalog holds no stars.
func (c *Catalog) IsEmpty() bool { return len(c.stars) == 0 }

// IsSorted reports whether the catalog is currently sorted by id.
func (c *Catalog) IsSorted() bool { return c.sorted }

// IsIndexed reports whether DeriveIndex has run since the last mutation.
func (c *Catalog) IsIndexed() bool { return c.buckets != nil }

// mutated invalidates everything a mutation invalidates: derived data, the
// name table, and every previously issued handle.
func (c *Catalog) mutated() {
	c.buckets = nil
	c.occupied = nil
	c.names = nil
	c.generation++
}

// Add appends a star. Clears the sorted flag and invalidates derived data,
// names and outstanding handles.
func (c *Catalog) Add(star Star) {
	c.stars = append(c.stars, star)
	c.sorted = false
	c.mutated()
}

// Sort orders the stars by id (stable, so equal ids keep insertion order).
// Invalidates derived data, names and outstanding handles; FindByID is
// usable afterwards.
func (c *Catalog) Sort() {
	start := time.Now()

	sort.SliceStable(c.stars, func(i, j int) bool {
		return c.stars[i].data.ID < c.stars[j].data.ID
	})
	c.sorted = true
	c.mutated()

	elapsed := time.Since(start)
	c.opts.Logger.LogSort(len(c.stars), elapsed)
	c.opts.Metrics.RecordBuild(elapsed)
}

// Retain drops every star the filter rejects, preserving the order of the
// survivors. Clears the sorted flag and invalidates derived data, names and
// outstanding handles.
func (c *Catalog) Retain(keep Filter) {
	start := time.Now()
	before := len(c.stars)

	kept := c.stars[:0]
	for i := range c.stars {
		if keep(&c.stars[i], i) {
			kept = append(kept, c.stars[i])
		}
	}
	clear(c.stars[len(kept):])
	c.stars = kept
	c.sorted = false
	c.mutated()

	elapsed := time.Since(start)
	c.opts.Logger.LogRetain(before, len(c.stars), elapsed)
	c.opts.Metrics.RecordBuild(elapsed)
}

// DeriveIndex builds the per-cell handle buckets and the occupancy set.
// Idempotent: a no-op when the derived data is already present. Handles
// land in their buckets in catalog order, so after Sort each bucket is
// ordered by id.
func (c *Catalog) DeriveIndex() {
	if c.buckets != nil {
		return
	}

	start := time.Now()

	c.buckets = make([][]Handle, grid.Cells)
	c.occupied = cellset.New()
	for i := range c.stars {
		cell := c.stars[i].cell
		c.buckets[cell.Index()] = append(c.buckets[cell.Index()], c.handle(i))
		c.occupied.Add(cell)
	}

	elapsed := time.Since(start)
	c.opts.Logger.LogDeriveIndex(len(c.stars), c.occupied.Cardinality(), elapsed)
	c.opts.Metrics.RecordBuild(elapsed)
}

func (c *Catalog) handle(slot int) Handle {
	return Handle{slot: uint32(slot), generation: c.generation}
}

// Star resolves a handle to its star. Panics with ErrStaleHandle when the
// handle predates the last mutation.
func (c *Catalog) Star(h Handle) *Star {
	if h.generation != c.generation || int(h.slot) >= len(c.stars) {
		panic(ErrStaleHandle)
	}
	return &c.stars[h.slot]
}

// FindByID locates a star by id via binary search. The catalog must be
// sorted: calling this on an unsorted catalog is a lifecycle bug and panics
// with ErrNotSorted. An absent id is the expected quiet outcome and returns
// false.
func (c *Catalog) FindByID(id StarID) (Handle, bool) {
	if !c.sorted {
		panic(ErrNotSorted)
	}

	i := sort.Search(len(c.stars), func(i int) bool {
		return c.stars[i].data.ID >= id
	})
	if i == len(c.stars) || c.stars[i].data.ID != id {
		return Handle{}, false
	}

	return c.handle(i), true
}

// FindByName locates a star by an attached name.
func (c *Catalog) FindByName(name string) (Handle, bool) {
	h, ok := c.names[name]
	return h, ok
}

// FindIDOrName resolves s as a star id when it parses as an unsigned
// integer, and as a name otherwise. Not-found outcomes are reported as
// *UnknownIDError or *UnknownNameError, both unwrapping to ErrNotFound.
func (c *Catalog) FindIDOrName(s string) (Handle, error) {
	if id, err := strconv.ParseUint(s, 10, 64); err == nil {
		h, ok := c.FindByID(StarID(id))
		if !ok {
			return Handle{}, &UnknownIDError{ID: StarID(id)}
		}
		return h, nil
	}

	h, ok := c.FindByName(s)
	if !ok {
		return Handle{}, &UnknownNameError{Name: s}
	}

	return h, nil
}

// AttachName records a name for a star. The handle must be current; a stale
// handle panics with ErrStaleHandle. Attaching the same name twice
// overwrites; attaching several names to one star is allowed.
func (c *Catalog) AttachName(h Handle, name string) {
	if h.generation != c.generation || int(h.slot) >= len(c.stars) {
		panic(ErrStaleHandle)
	}

	if c.names == nil {
		c.names = make(map[string]Handle)
	}

	c.names[name] = h
}

// AttachNames resolves each entry's id via FindByID (so the catalog must be
// sorted) and attaches its name. A missing id aborts with *UnknownIDError —
// names attached before the failure stay attached — unless ignoreMissing is
// true, in which case it is skipped silently.
func (c *Catalog) AttachNames(entries []NameEntry, ignoreMissing bool) error {
	for _, e := range entries {
		h, ok := c.FindByID(e.ID)
		if !ok {
			if ignoreMissing {
				continue
			}
			return &UnknownIDError{ID: e.ID}
		}
		c.AttachName(h, e.Name)
	}
	return nil
}

// CellStars returns the handles of the stars in one grid cell, in catalog
// order. The returned slice is the catalog's own bucket; callers must not
// modify it. Panics with ErrNotIndexed before DeriveIndex: an empty answer
// would be indistinguishable from "index not built".
func (c *Catalog) CellStars(cell grid.Cell) []Handle {
	if c.buckets == nil {
		panic(ErrNotIndexed)
	}
	return c.buckets[cell.Index()]
}

// OccupiedCells iterates the cells that hold at least one star, in
// ascending packed-index (raster) order. Panics with ErrNotIndexed before
// DeriveIndex.
func (c *Catalog) OccupiedCells() iter.Seq[grid.Cell] {
	if c.buckets == nil {
		panic(ErrNotIndexed)
	}
	return c.occupied.Cells()
}

// Stars iterates all stars in catalog order with their handles.
func (c *Catalog) Stars() iter.Seq2[Handle, *Star] {
	return func(yield func(Handle, *Star) bool) {
		for i := range c.stars {
			if !yield(c.handle(i), &c.stars[i]) {
				return
			}
		}
	}
}

// StarsInCells iterates the stars in the given cells, bucket by bucket in
// the caller's cell order. Panics with ErrNotIndexed before DeriveIndex.
func (c *Catalog) StarsInCells(cells iter.Seq[grid.Cell]) iter.Seq2[Handle, *Star] {
	if c.buckets == nil {
		panic(ErrNotIndexed)
	}
	return func(yield func(Handle, *Star) bool) {
		for cell := range cells {
			for _, h := range c.buckets[cell.Index()] {
				if !yield(h, &c.stars[h.slot]) {
					return
				}
			}
		}
	}
}
