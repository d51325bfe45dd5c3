package correction

import (
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/dshills/softboard/internal/geometry"
	"github.com/dshills/softboard/internal/locale"
	"github.com/dshills/softboard/internal/proximity"
)

// Correction thresholds. All ratios are applied to squared distances,
// so the percentages are squared at the comparison site.
const (
	// weightRatio is how many times heavier a competing code must be
	// to steal a touch that geometrically landed on a weighted key.
	weightRatio = 3

	// containedCapturePct limits how far (as a percentage of the hit
	// key's half-width) a heavier competitor may sit and still steal
	// a contained touch.
	containedCapturePct = 70

	// nearbyCapturePct limits how far (as a percentage of its own
	// half-width) a weighted neighbor may sit from the touch when the
	// hit key itself carries no weight.
	nearbyCapturePct = 85

	// DefaultDragFraction of the preview width that a space drag must
	// cover to cycle the locale ring.
	DefaultDragFraction = 0.51

	// DefaultVerticalCorrection is added to the touch Y before the
	// initial space-region test. Touches trend low of their target on
	// bottom-row keys.
	DefaultVerticalCorrection = -4
)

// Config configures a Corrector.
type Config struct {
	// VerticalCorrection is added to the touch Y coordinate before
	// the first space-key containment test.
	VerticalCorrection int

	// DragFraction is the fraction of PreviewWidth a space drag must
	// cover on release to cycle locales.
	DragFraction float64

	// PreviewWidth is the width of the locale preview surface the
	// drag threshold is measured against. Zero means use the space
	// key's own width.
	PreviewWidth int

	// Frequency is the preferred-letter weight table for the active
	// layout. May be nil.
	Frequency Frequency

	// Logger receives session lifecycle events. Nil means no logging.
	Logger *zap.Logger
}

// DefaultConfig returns the correction defaults.
func DefaultConfig() Config {
	return Config{
		VerticalCorrection: DefaultVerticalCorrection,
		DragFraction:       DefaultDragFraction,
	}
}

// Result is the outcome of evaluating one touch event.
type Result struct {
	// KeyIndex is the resolved key's index, or proximity.NoKey.
	KeyIndex int

	// Code is the resolved code, or geometry.CodeNone.
	Code geometry.Code

	// Candidates is the nearby-codes buffer from the underlying
	// geometric resolution, for feedback and preview rendering.
	Candidates proximity.Candidates

	// SpaceDrag is true while the touch is captured by the space-bar
	// drag gesture.
	SpaceDrag bool

	// DragDelta is the horizontal distance from the drag start, valid
	// only while SpaceDrag is true.
	DragDelta int
}

// Corrector applies session-scoped correction on top of geometric
// resolution. It is safe for concurrent use, though the intended host
// dispatches all touch events from a single goroutine.
type Corrector struct {
	mu       sync.Mutex
	cfg      Config
	resolver *proximity.Resolver
	geo      *geometry.Geometry
	spaceKey int
	ring     *locale.Ring
	sess     session
	logger   *zap.Logger
}

// New creates a Corrector for the given geometry and locale ring.
func New(geo *geometry.Geometry, ring *locale.Ring, cfg Config) *Corrector {
	if cfg.DragFraction <= 0 {
		cfg.DragFraction = DefaultDragFraction
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Corrector{
		cfg:    cfg,
		ring:   ring,
		logger: logger,
	}
	c.setGeometry(geo)
	c.sess.reset()
	return c
}

// SetGeometry swaps the layout geometry. Any in-progress session is
// discarded: a lock computed against the old geometry must never
// influence resolution on the new one.
func (c *Corrector) SetGeometry(geo *geometry.Geometry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sess.active {
		c.logger.Debug("geometry swap mid-touch, discarding session",
			zap.String("session", c.sess.id.String()))
	}
	c.setGeometry(geo)
	c.sess.reset()
}

func (c *Corrector) setGeometry(geo *geometry.Geometry) {
	c.geo = geo
	c.resolver = proximity.NewResolver(geo)
	c.spaceKey = geo.IndexOfCode(geometry.CodeSpace)
}

// SetFrequency replaces the preferred-letter weight table.
func (c *Corrector) SetFrequency(f Frequency) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg.Frequency = f
}

// Resolve evaluates a point without opening or advancing a session.
// Used for preview rendering.
func (c *Corrector) Resolve(p geometry.Point) (geometry.Code, proximity.Candidates) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx, cands := c.resolver.Resolve(p)
	if idx == proximity.NoKey {
		return geometry.CodeNone, cands
	}
	return c.geo.Key(idx).Code(), cands
}

// Begin opens a touch session at the pointer-down position. If the
// vertically corrected point lands on the space key the session enters
// drag mode and every later event reports the space key.
func (c *Corrector) Begin(p geometry.Point) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sess.begin(c.geo.Generation())

	corrected := geometry.Point{X: p.X, Y: p.Y + c.cfg.VerticalCorrection}
	if c.spaceKey >= 0 && c.geo.Key(c.spaceKey).ContainsPoint(corrected) {
		c.sess.spaceDrag = true
		c.sess.dragStartX = p.X
		c.logger.Debug("space drag started", zap.String("session", c.sess.id.String()))
		return c.spaceResult()
	}
	return c.evaluate(p)
}

// Update advances the session at a pointer-move position.
func (c *Corrector) Update(p geometry.Point) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.sess.active {
		return c.evaluate(p)
	}
	if c.sess.spaceDrag {
		c.sess.dragDelta = p.X - c.sess.dragStartX
		return c.spaceResult()
	}
	return c.evaluate(p)
}

// End closes the session at the pointer-up position and returns the
// final resolution plus a locale delta: +1 or -1 if the space drag
// crossed the cycle threshold, 0 otherwise. The locale ring is already
// advanced when a non-zero delta is returned.
func (c *Corrector) End(p geometry.Point) (Result, int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	defer c.sess.reset()

	if c.sess.active && c.sess.spaceDrag {
		c.sess.dragDelta = p.X - c.sess.dragStartX
		res := c.spaceResult()
		delta := 0
		if abs(c.sess.dragDelta) >= c.DragThreshold() && c.ring != nil && c.ring.Len() > 1 {
			if c.sess.dragDelta > 0 {
				c.ring.Next()
				delta = 1
			} else {
				c.ring.Prev()
				delta = -1
			}
			c.logger.Debug("locale cycled by drag",
				zap.Int("delta", delta),
				zap.String("locale", c.ring.Current().String()))
		}
		return res, delta
	}

	res := c.evaluate(p)
	if res.KeyIndex == proximity.NoKey && c.sess.haveLast && c.sess.last.KeyIndex != proximity.NoKey {
		// Lifting outside every key resolves via the last computed
		// state rather than dropping the touch.
		res = c.sess.last
	}
	return res, 0
}

// Cancel discards the session. Equivalent to a release with zero drag
// distance: no locale change is committed from a cancelled gesture.
func (c *Corrector) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sess.active {
		c.logger.Debug("touch cancelled", zap.String("session", c.sess.id.String()))
	}
	c.sess.reset()
}

// DragThreshold returns the drag distance, in layout units, at or
// beyond which a released space drag cycles the locale. The boundary is
// ceil(fraction * previewWidth): a delta of exactly the threshold
// cycles, one unit less commits a plain space.
func (c *Corrector) DragThreshold() int {
	w := c.cfg.PreviewWidth
	if w == 0 && c.spaceKey >= 0 {
		w = c.geo.Key(c.spaceKey).Rect.Width
	}
	return int(math.Ceil(c.cfg.DragFraction * float64(w)))
}

// spaceResult builds the unconditional space-key result used while the
// drag gesture owns the touch.
func (c *Corrector) spaceResult() Result {
	return Result{
		KeyIndex:  c.spaceKey,
		Code:      geometry.CodeSpace,
		SpaceDrag: true,
		DragDelta: c.sess.dragDelta,
	}
}

// evaluate runs geometric resolution with preferred-letter hysteresis.
// Callers hold the mutex.
func (c *Corrector) evaluate(p geometry.Point) Result {
	// SetGeometry resets the session, so a live session always matches
	// the current geometry generation. If one ever slips through,
	// discard it rather than resolve against state from another layout.
	if c.sess.active && c.sess.generation != c.geo.Generation() {
		c.logger.Warn("session outlived its geometry, discarding",
			zap.String("session", c.sess.id.String()))
		c.sess.reset()
	}

	// A locked code wins immediately while the point is unmoved;
	// re-resolving would let rounding jitter flip the answer.
	if c.sess.active && c.sess.locked() && p.Equal(c.sess.lockedPoint) {
		return c.sess.last
	}

	idx, cands := c.resolver.Resolve(p)
	res := Result{KeyIndex: idx, Code: geometry.CodeNone, Candidates: cands}
	if idx == proximity.NoKey {
		return res
	}

	key := c.geo.Key(idx)
	res.Code = key.Code()

	if !c.sess.active {
		return res
	}

	freq := c.cfg.Frequency
	if w := freq.Weight(res.Code); w > 0 {
		// The hit key is itself weighted. Only a much heavier
		// competitor very close to the touch may steal it.
		half := key.Rect.Width / 2
		limit := sq(half * containedCapturePct / 100)
		for i := 0; i < cands.Len(); i++ {
			cand := cands.At(i)
			if cand.Code == res.Code {
				continue
			}
			if freq.Weight(cand.Code) > weightRatio*w && cand.Distance <= limit {
				c.sess.lock(cand.Code, cand.KeyIndex, p, cand.Distance)
				res.KeyIndex = cand.KeyIndex
				res.Code = cand.Code
				break
			}
		}
		return c.remember(res)
	}

	// The hit key is unweighted: prefer the nearest weighted neighbor
	// the touch is plausibly aimed at, if it beats any earlier lock.
	for i := 0; i < cands.Len(); i++ {
		cand := cands.At(i)
		if freq.Weight(cand.Code) <= 0 {
			continue
		}
		neighbor := c.geo.Key(cand.KeyIndex)
		limit := sq(neighbor.Rect.Width / 2 * nearbyCapturePct / 100)
		if cand.Distance <= limit && cand.Distance < c.sess.lockedDist {
			c.sess.lock(cand.Code, cand.KeyIndex, p, cand.Distance)
			res.KeyIndex = cand.KeyIndex
			res.Code = cand.Code
		}
		break
	}
	if c.sess.locked() {
		res.KeyIndex = c.sess.lockedKey
		res.Code = c.sess.lockedCode
	}
	return c.remember(res)
}

// remember caches a successful result for unmoved-point and
// lift-outside reuse. "No hit" results are never cached so a pointer
// wandering off the layout does not erase the last good resolution.
func (c *Corrector) remember(res Result) Result {
	if c.sess.active && res.KeyIndex != proximity.NoKey {
		c.sess.last = res
		c.sess.haveLast = true
	}
	return res
}

func sq(v int) int {
	return v * v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
