package stargrid

import "github.com/stargrid/stargrid/geom"

// Filter decides whether a star is kept by Retain or yielded by filtered
// iteration. i is the star's position in the current scan. A plain function
// value: build ad-hoc filters inline or compose the constructors below with
// Then.
type Filter func(s *Star, i int) bool

// All accepts every star.
func All() Filter {
	return func(*Star, int) bool { return true }
}

// BrighterThan accepts stars whose magnitude is strictly less than mag
// (smaller magnitude means brighter).
func BrighterThan(mag float32) Filter {
	return func(s *Star, _ int) bool {
		return s.Brightness() < mag
	}
}

// WithinAngleOf accepts stars whose angle to the unit direction dir is
// smaller than the angle whose cosine is cosAngle (strict dot product
// comparison).
func WithinAngleOf(dir geom.Vec3, cosAngle float64) Filter {
	return func(s *Star, _ int) bool {
		return dir.Dot(s.Vec()) > cosAngle
	}
}

// Select rejects the first skip stars presented to it, accepts the next
// limit, and rejects the rest. The returned filter is stateful: it counts
// across calls and must not be reused between scans.
func Select(skip, limit int) Filter {
	return func(*Star, int) bool {
		if skip > 0 {
			skip--
			return false
		}
		if limit > 0 {
			limit--
			return true
		}
		return false
	}
}

// Then returns a filter that accepts a star only if f accepts it and then
// next accepts it. next is not consulted for stars f rejects, so stateful
// filters like Select only count stars that survive f.
func (f Filter) Then(next Filter) Filter {
	return func(s *Star, i int) bool {
		return f(s, i) && next(s, i)
	}
}
