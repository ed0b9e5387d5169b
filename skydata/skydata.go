// Package skydata carries the static sky tables the index itself treats as
// supplied data: a bright-star subset of the Hipparcos catalog, the common
// and IAU-collated star name tables, and the northern-hemisphere
// constellation stick figures.
//
// Everything here is pure data plus unit conversion. A ready-made sky:
//
//	catalog := stargrid.New()
//	for _, data := range skydata.BrightStars() {
//	    catalog.Add(stargrid.NewStar(data))
//	}
//	catalog.Sort()
//	catalog.AttachNames(skydata.Aliases(), true)
//	catalog.DeriveIndex()
//
// AttachNames is called with ignoreMissing: the name tables cover the whole
// Hipparcos catalog while BrightStars is a naked-eye subset, so most
// entries have no star to land on.
package skydata

import "github.com/stargrid/stargrid"

// Aliases returns the common-name table: the star names in everyday use,
// keyed by Hipparcos identifier. The slice is freshly allocated.
func Aliases() []stargrid.NameEntry {
	return append([]stargrid.NameEntry(nil), hipAliases...)
}

// CollatedAliases returns the full IAU-collated name table, a superset of
// Aliases. A star may carry several names. The slice is freshly allocated.
func CollatedAliases() []stargrid.NameEntry {
	return append([]stargrid.NameEntry(nil), hipCollatedAliases...)
}
