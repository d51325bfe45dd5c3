package geometry

import "sync/atomic"

// proximityScale widens the candidate radius beyond the narrowest key.
// A touch slightly more than one key-width from a center is still a
// plausible near miss on dense layouts.
const proximityScale = 1.2

// Geometry is an ordered, immutable set of keys forming one layout.
//
// The scan order of Keys is significant: equal-distance candidates are
// ranked by it, so providers must emit keys in a stable order (top-left
// to bottom-right by convention).
type Geometry struct {
	keys        []Key
	minKeyWidth int
	generation  uint64
}

// generationCounter distinguishes geometry instances so session state
// computed against a stale layout can be detected and discarded.
var generationCounter atomic.Uint64

// New builds a Geometry from the given keys. Key indices are assigned
// from scan order, overriding any caller-set Index values.
func New(keys []Key) *Geometry {
	minWidth := 0
	for i := range keys {
		keys[i].Index = i
		if w := keys[i].Rect.Width; w > 0 && (minWidth == 0 || w < minWidth) {
			minWidth = w
		}
	}
	return &Geometry{
		keys:        keys,
		minKeyWidth: minWidth,
		generation:  generationCounter.Add(1),
	}
}

// Len returns the number of keys.
func (g *Geometry) Len() int {
	return len(g.keys)
}

// Key returns the key at index i. The returned pointer references the
// geometry's own storage and must be treated as read-only.
func (g *Geometry) Key(i int) *Key {
	return &g.keys[i]
}

// Keys returns the full key slice, read-only.
func (g *Geometry) Keys() []Key {
	return g.keys
}

// MinKeyWidth returns the width of the narrowest key, or 0 for an
// empty layout.
func (g *Geometry) MinKeyWidth() int {
	return g.minKeyWidth
}

// ProximityThreshold returns the squared-distance cutoff beyond which a
// key is not a candidate for a touch. Computed once per layout from the
// narrowest key width; 0 for an empty layout.
func (g *Geometry) ProximityThreshold() int {
	d := int(float64(g.minKeyWidth) * proximityScale)
	return d * d
}

// Generation returns a value unique to this geometry instance.
func (g *Geometry) Generation() uint64 {
	if g == nil {
		return 0
	}
	return g.generation
}

// IndexOfCode returns the index of the first key whose code list
// contains c, or -1 if no key produces it.
func (g *Geometry) IndexOfCode(c Code) int {
	for i := range g.keys {
		if g.keys[i].HasCode(c) {
			return i
		}
	}
	return -1
}
