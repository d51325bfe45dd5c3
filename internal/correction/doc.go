// Package correction layers temporal and statistical correction over
// geometric touch resolution.
//
// The Corrector wraps a proximity.Resolver with state scoped to a
// single continuous touch (pointer down to pointer up) and applies two
// independent corrections:
//
//   - Preferred-letter hysteresis: codes carrying a positive weight in
//     a caller-supplied frequency table can capture a near-miss touch
//     from a much less likely neighbor, and once captured the decision
//     is locked for the remainder of the touch so the resolved key does
//     not oscillate as coordinates jitter.
//
//   - Space-bar locale drag: a touch that starts on the space key turns
//     into a horizontal drag surface. Moves are tracked as a delta from
//     the initial X rather than re-resolved, and a release beyond the
//     drag threshold cycles the configured locale ring instead of
//     committing a space.
//
// Session state is created on pointer down and discarded on pointer up
// or cancel. Swapping the layout geometry mid-touch discards the
// session as well; a lock computed against stale geometry never
// survives.
//
// Naive nearest-key selection under systematic touch offset measurably
// mis-hits on small dense layouts. The staged thresholds here trade a
// small bias toward statistically common letters for a large reduction
// in apparent mis-hits.
package correction
