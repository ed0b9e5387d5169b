package stargrid

import (
	"fmt"

	"github.com/stargrid/stargrid/geom"
	"github.com/stargrid/stargrid/grid"
)

// StarID is the caller-assigned identifier of a star, unique within a
// catalog snapshot. Hipparcos catalog numbers fit here directly.
type StarID uint64

// StarData is the six-scalar external contract of a star: the fields a
// loader supplies and a writer serializes. The derived geometry (direction
// vector, grid cell) is never part of it; it is recomputed from Ra and De
// on construction.
type StarData struct {
	// ID uniquely identifies the star within a catalog snapshot.
	ID StarID

	// Ra and De are right ascension and declination in radians.
	Ra, De float64

	// Distance is the distance in light years. Payload only; the index
	// never reads it.
	Distance float32

	// Brightness is the apparent visual magnitude (smaller is brighter).
	// Payload only.
	Brightness float32

	// ColorIndex is the B-V color index. Payload only.
	ColorIndex float32
}

// Star is an immutable indexed point on the unit sphere. The direction
// vector and grid cell are computed once by NewStar and cached; keeping
// the fields unexported makes geometry mutation structurally impossible.
type Star struct {
	data StarData
	vec  geom.Vec3
	cell grid.Cell
}

// NewStar builds a Star from its six stored scalars, deriving the unit
// direction vector and the grid cell. Rebuilding a star from Data()
// reproduces both derived fields exactly.
func NewStar(data StarData) Star {
	vec := geom.FromRaDe(data.Ra, data.De)
	return Star{
		data: data,
		vec:  vec,
		cell: grid.CellOf(vec),
	}
}

// ID returns the star's identifier.
func (s *Star) ID() StarID { return s.data.ID }

// Ra returns the right ascension in radians.
func (s *Star) Ra() float64 { return s.data.Ra }

// De returns the declination in radians.
func (s *Star) De() float64 { return s.data.De }

// Distance returns the distance in light years.
func (s *Star) Distance() float32 { return s.data.Distance }

// Brightness returns the apparent visual magnitude.
func (s *Star) Brightness() float32 { return s.data.Brightness }

// ColorIndex returns the B-V color index.
func (s *Star) ColorIndex() float32 { return s.data.ColorIndex }

// Vec returns the unit direction vector derived from Ra and De.
func (s *Star) Vec() geom.Vec3 { return s.vec }

// Cell returns the grid cell the star's direction falls in.
func (s *Star) Cell() grid.Cell { return s.cell }

// Data returns a copy of the six stored scalars, the serializable form of
// the star.
func (s *Star) Data() StarData { return s.data }

// CosAngleTo returns the cosine of the angle between two stars, the dot
// product of their unit direction vectors.
func (s *Star) CosAngleTo(o *Star) float64 {
	return s.vec.Dot(o.vec)
}

// AngleTo returns the angle between two stars in radians.
func (s *Star) AngleTo(o *Star) float64 {
	return geom.AngleBetween(s.vec, o.vec)
}

// String renders the star's identity and coordinates in degrees.
func (s *Star) String() string {
	return fmt.Sprintf("star %d (ra %.4f° de %.4f° mag %.2f)",
		s.data.ID, geom.RadToDeg(s.data.Ra), geom.RadToDeg(s.data.De), s.data.Brightness)
}
