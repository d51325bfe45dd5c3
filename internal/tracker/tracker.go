package tracker

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/softboard/internal/correction"
	"github.com/dshills/softboard/internal/geometry"
	"github.com/dshills/softboard/internal/locale"
	"github.com/dshills/softboard/internal/proximity"
	"github.com/dshills/softboard/internal/switcher"
)

// Callbacks notify the host of pipeline outcomes. Nil fields are
// skipped. Callbacks run on the event-dispatch goroutine and must not
// block.
type Callbacks struct {
	// OnKeyCommitted fires for every resolved key commit.
	OnKeyCommitted func(code geometry.Code)

	// OnModeChangeRequested fires when the switcher wants a layout
	// swap.
	OnModeChangeRequested func(symbols bool)

	// OnLocaleChanged fires when a space drag cycles the locale.
	// delta is +1 or -1.
	OnLocaleChanged func(delta int, current locale.Locale)
}

// Options configures a Tracker.
type Options struct {
	// Geometry is the active layout. Required.
	Geometry *geometry.Geometry

	// Locales is the locale ring the space drag cycles. May be nil.
	Locales *locale.Ring

	// Correction configures the ambiguity corrector.
	Correction correction.Config

	// Callbacks receive pipeline outcomes.
	Callbacks Callbacks

	// Logger receives lifecycle events. Nil means no logging.
	Logger *zap.Logger
}

// Tracker drives the resolution pipeline from raw pointer events.
type Tracker struct {
	mu        sync.Mutex
	corrector *correction.Corrector
	machine   *switcher.Machine
	ring      *locale.Ring
	callbacks Callbacks
	logger    *zap.Logger
	metrics   *Metrics

	// pointers maps active pointer ids to their down timestamps.
	pointers map[int]time.Time

	// primary is the pointer id driving the corrector session, or -1.
	primary int
}

// New creates a Tracker.
func New(opts Options) *Tracker {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Correction.Logger == nil {
		opts.Correction.Logger = logger
	}
	t := &Tracker{
		ring:      opts.Locales,
		callbacks: opts.Callbacks,
		logger:    logger,
		metrics:   NewMetrics(),
		pointers:  make(map[int]time.Time),
		primary:   -1,
	}
	t.corrector = correction.New(opts.Geometry, opts.Locales, opts.Correction)
	t.machine = switcher.NewMachine(t.requestLayout, logger)
	return t
}

// Metrics returns the tracker's metrics.
func (t *Tracker) Metrics() *Metrics {
	return t.metrics
}

// Machine returns the mode-switch state machine.
func (t *Tracker) Machine() *switcher.Machine {
	return t.machine
}

// SetGeometry swaps the active layout. Any in-progress touch session
// is discarded.
func (t *Tracker) SetGeometry(geo *geometry.Geometry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.corrector.SetGeometry(geo)
	t.primary = -1
	clear(t.pointers)
}

// SetFrequency replaces the preferred-letter weight table for the
// active layout.
func (t *Tracker) SetFrequency(f correction.Frequency) {
	t.corrector.SetFrequency(f)
}

// ResolveTouch evaluates a point without affecting any session, for
// preview rendering.
func (t *Tracker) ResolveTouch(p geometry.Point) (geometry.Code, proximity.Candidates) {
	return t.corrector.Resolve(p)
}

// PointerDown begins tracking a pointer. The first pointer down opens
// the correction session; later pointers join as chord pointers.
func (t *Tracker) PointerDown(id int, p geometry.Point) correction.Result {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.metrics.RecordTouch()
	t.pointers[id] = time.Now()

	if t.primary < 0 {
		t.primary = id
		return t.corrector.Begin(p)
	}
	code, cands := t.corrector.Resolve(p)
	return correction.Result{KeyIndex: keyIndexFor(cands, code), Code: code, Candidates: cands}
}

// PointerMove advances a pointer. Only the primary pointer advances
// the correction session.
func (t *Tracker) PointerMove(id int, p geometry.Point) correction.Result {
	t.mu.Lock()
	defer t.mu.Unlock()

	if id == t.primary {
		return t.corrector.Update(p)
	}
	code, cands := t.corrector.Resolve(p)
	return correction.Result{KeyIndex: keyIndexFor(cands, code), Code: code, Candidates: cands}
}

// PointerUp releases a pointer, committing its resolved key. The
// pointer count handed to the switcher includes the lifting pointer,
// so a chord key committed while a modifier is still held suppresses
// the momentary revert.
func (t *Tracker) PointerUp(id int, p geometry.Point) {
	t.mu.Lock()
	defer t.mu.Unlock()

	start, known := t.pointers[id]
	if !known {
		t.logger.Debug("up for unknown pointer", zap.Int("pointer", id))
		return
	}
	count := len(t.pointers)
	delete(t.pointers, id)

	var code geometry.Code
	if id == t.primary {
		t.primary = -1
		res, delta := t.corrector.End(p)
		code = res.Code
		if delta != 0 {
			t.metrics.RecordLocaleChange()
			if t.callbacks.OnLocaleChanged != nil {
				t.callbacks.OnLocaleChanged(delta, t.ring.Current())
			}
			// A drag that cycled the locale does not also commit
			// a space.
			return
		}
	} else {
		code, _ = t.corrector.Resolve(p)
	}

	if code == geometry.CodeNone {
		t.metrics.RecordNoHit()
		return
	}

	t.metrics.RecordCommit(time.Since(start))
	if t.callbacks.OnKeyCommitted != nil {
		t.callbacks.OnKeyCommitted(code)
	}
	t.machine.OnKey(code, count)
}

// PointerCancel aborts a pointer without committing anything. A
// cancelled primary pointer resets the correction session atomically;
// no partial locale change is possible.
func (t *Tracker) PointerCancel(id int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, known := t.pointers[id]; !known {
		return
	}
	count := len(t.pointers)
	delete(t.pointers, id)
	t.metrics.RecordCancel()

	if id == t.primary {
		t.primary = -1
		t.corrector.Cancel()
	}
	t.machine.OnCancel(count)
}

// ToggleSymbols forwards the explicit symbols toggle to the switcher.
func (t *Tracker) ToggleSymbols() {
	t.machine.ToggleSymbols()
}

// HoldSymbols forwards the momentary symbol hold to the switcher.
func (t *Tracker) HoldSymbols() {
	t.machine.HoldSymbols()
}

// requestLayout is the switcher's layout callback.
func (t *Tracker) requestLayout(symbols bool) {
	if t.callbacks.OnModeChangeRequested != nil {
		t.callbacks.OnModeChangeRequested(symbols)
	}
}

// keyIndexFor recovers the buffer entry index for a resolved code, for
// chord pointers resolved without a session.
func keyIndexFor(cands proximity.Candidates, code geometry.Code) int {
	if code == geometry.CodeNone {
		return proximity.NoKey
	}
	for i := 0; i < cands.Len(); i++ {
		if cands.At(i).Code == code {
			return cands.At(i).KeyIndex
		}
	}
	return proximity.NoKey
}
