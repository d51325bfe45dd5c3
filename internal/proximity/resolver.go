package proximity

import "github.com/dshills/softboard/internal/geometry"

// NoKey is returned as the best index when no key contains the touch
// point and none is within the proximity threshold. It is an expected
// outcome, not an error.
const NoKey = -1

// Resolver resolves touch points against a single layout geometry.
type Resolver struct {
	geo       *geometry.Geometry
	threshold int
}

// NewResolver creates a resolver for the given geometry. The proximity
// threshold is captured once here; callers swap in a new Resolver when
// the layout changes.
func NewResolver(geo *geometry.Geometry) *Resolver {
	return &Resolver{
		geo:       geo,
		threshold: geo.ProximityThreshold(),
	}
}

// Geometry returns the geometry this resolver was built against.
func (r *Resolver) Geometry() *geometry.Geometry {
	return r.geo
}

// Resolve returns the index of the most likely key for the touch point
// and the ordered nearby-candidate buffer.
//
// Region containment is authoritative: a key containing the point wins
// over any closer center. With overlapping regions the first key in
// scan order wins. When no region contains the point, the key with the
// smallest squared center distance at or within the threshold wins;
// beyond the threshold of every key the result is NoKey. The candidate
// buffer is stricter and admits only keys strictly below the threshold.
func (r *Resolver) Resolve(p geometry.Point) (int, Candidates) {
	var cands Candidates
	best := NoKey
	bestContained := false
	bestDist := 0

	keys := r.geo.Keys()
	for i := range keys {
		key := &keys[i]
		inside := key.ContainsPoint(p)
		dist := key.SquaredDistanceTo(p)

		if inside || dist < r.threshold {
			for _, code := range key.Codes {
				cands.insert(Candidate{Code: code, KeyIndex: i, Distance: dist})
			}
		}

		if inside {
			if !bestContained {
				best = i
				bestContained = true
				bestDist = dist
			}
			continue
		}
		if bestContained {
			continue
		}
		if dist <= r.threshold && (best == NoKey || dist < bestDist) {
			best = i
			bestDist = dist
		}
	}

	return best, cands
}
