package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/stargrid/stargrid"
	"github.com/stargrid/stargrid/geom"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// RaDe returns a pseudo-random position on the sphere, uniform in solid
// angle: ra uniform in [0, 2π), de as asin of a uniform cosine so poles are
// not oversampled.
func (r *RNG) RaDe() (ra, de float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ra = r.rand.Float64() * 2 * math.Pi
	de = math.Asin(r.rand.Float64()*2 - 1)
	return ra, de
}

// Direction returns a pseudo-random unit vector, uniform on the sphere.
func (r *RNG) Direction() geom.Vec3 {
	ra, de := r.RaDe()
	return geom.FromRaDe(ra, de)
}

// Star returns a pseudo-random star with the given id: uniform position,
// magnitude in [0, 8), distance in [4, 1000) light years.
func (r *RNG) Star(id stargrid.StarID) stargrid.Star {
	ra, de := r.RaDe()
	r.mu.Lock()
	defer r.mu.Unlock()
	return stargrid.NewStar(stargrid.StarData{
		ID:         id,
		Ra:         ra,
		De:         de,
		Distance:   4 + r.rand.Float32()*996,
		Brightness: r.rand.Float32() * 8,
		ColorIndex: r.rand.Float32()*2 - 0.5,
	})
}

// Stars returns num pseudo-random stars with consecutive ids starting at
// firstID.
func (r *RNG) Stars(num int, firstID stargrid.StarID) []stargrid.Star {
	stars := make([]stargrid.Star, num)
	for i := range stars {
		stars[i] = r.Star(firstID + stargrid.StarID(i))
	}
	return stars
}

// Catalog builds a sorted, indexed catalog from num pseudo-random stars
// with consecutive ids starting at 1.
func (r *RNG) Catalog(num int) *stargrid.Catalog {
	catalog := stargrid.New()
	for _, s := range r.Stars(num, 1) {
		catalog.Add(s)
	}
	catalog.Sort()
	catalog.DeriveIndex()
	return catalog
}

// BruteForceNearest scans every star and returns the id and cosine of the
// one closest in angle to dir, ground truth for Catalog.Nearest. ok is
// false for an empty slice.
func BruteForceNearest(stars []stargrid.Star, dir geom.Vec3) (id stargrid.StarID, cos float64, ok bool) {
	cos = math.Inf(-1)
	for i := range stars {
		if c := dir.Dot(stars[i].Vec()); c > cos {
			cos = c
			id = stars[i].ID()
			ok = true
		}
	}
	return id, cos, ok
}

// BruteForceTriples scans every ordered triple of distinct stars and
// returns the id triples whose pairwise angles match the targets within
// tolerance, ground truth for Catalog.FindTriples. Angle semantics match
// FindTriples: angle(P0,P1) against angles[0], angle(P0,P2) against
// angles[1], angle(P1,P2) against angles[2]. O(n³); keep the sky small.
func BruteForceTriples(stars []stargrid.Star, angles [3]float64, tolerance float64) [][3]stargrid.StarID {
	within := func(a, target float64) bool {
		return math.Abs(a-target) <= tolerance
	}

	var result [][3]stargrid.StarID
	for i := range stars {
		for j := range stars {
			if j == i {
				continue
			}
			if !within(stars[i].AngleTo(&stars[j]), angles[0]) {
				continue
			}
			for k := range stars {
				if k == i || k == j {
					continue
				}
				if !within(stars[i].AngleTo(&stars[k]), angles[1]) {
					continue
				}
				if !within(stars[j].AngleTo(&stars[k]), angles[2]) {
					continue
				}
				result = append(result, [3]stargrid.StarID{stars[i].ID(), stars[j].ID(), stars[k].ID()})
			}
		}
	}
	return result
}
