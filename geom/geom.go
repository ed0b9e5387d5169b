// Package geom provides the small amount of 3-vector math the star index
// needs: dot products, normalization and the conversion from equatorial
// coordinates (right ascension, declination) to unit direction vectors.
package geom

import "math"

// Vec3 is a 3-dimensional vector. Directions derived from equatorial
// coordinates are unit length; cell centers are not.
type Vec3 [3]float64

// FromRaDe returns the unit direction vector for a right ascension and
// declination, both in radians:
//
//	x = cos(ra)·cos(de), y = sin(ra)·cos(de), z = sin(de)
func FromRaDe(ra, de float64) Vec3 {
	sinRa, cosRa := math.Sincos(ra)
	sinDe, cosDe := math.Sincos(de)
	return Vec3{cosRa * cosDe, sinRa * cosDe, sinDe}
}

// RaDe returns the right ascension in [0, 2π) and declination in [-π/2, π/2]
// of a unit vector, in radians.
func (v Vec3) RaDe() (ra, de float64) {
	ra = math.Atan2(v[1], v[0])
	if ra < 0 {
		ra += 2 * math.Pi
	}
	de = math.Asin(Clamp(v[2], -1, 1))
	return ra, de
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Dot returns the dot product of v and o. For unit vectors this is the
// cosine of the angle between them.
func (v Vec3) Dot(o Vec3) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// AngleBetween returns the angle in radians between two unit vectors. The
// dot product is clamped to [-1, 1] before acos to absorb floating point
// error on near-parallel vectors.
func AngleBetween(a, b Vec3) float64 {
	return math.Acos(Clamp(a.Dot(b), -1, 1))
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
