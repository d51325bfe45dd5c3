// Package proximity implements geometric touch-to-key resolution.
//
// Given a touch point and a layout Geometry, the Resolver returns the
// key whose hit region contains the point, or the geometrically closest
// key within the layout's proximity threshold, together with a bounded,
// distance-sorted list of nearby candidate codes.
//
// Resolution is a pure function over the supplied geometry and point:
// the resolver holds no session state and is trivially safe to share
// across goroutines as long as the geometry is not swapped underneath
// it. Temporal correction (hysteresis, drag gestures) is layered on top
// by the correction package, which consumes the candidate list produced
// here.
//
//	res := proximity.NewResolver(geo)
//	idx, cands := res.Resolve(p)
//	if idx == proximity.NoKey {
//	    // touch landed outside every key's reach
//	}
package proximity
