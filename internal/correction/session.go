package correction

import (
	"math"

	"github.com/google/uuid"

	"github.com/dshills/softboard/internal/geometry"
)

// session holds the transient state of one continuous touch.
type session struct {
	// id identifies the touch for logging and event correlation.
	id uuid.UUID

	// generation is the geometry generation the session was opened
	// against. A mismatch marks the session stale.
	generation uint64

	// active indicates a pointer is currently down.
	active bool

	// Preferred-letter lock state.
	lockedCode  geometry.Code
	lockedKey   int
	lockedPoint geometry.Point
	lockedDist  int

	// last is the most recent resolution, reused when the point has
	// not moved and when a pointer lifts outside every key.
	last     Result
	haveLast bool

	// Space-drag state.
	spaceDrag  bool
	dragStartX int
	dragDelta  int
}

// reset clears all session state. Called on pointer up, cancel, and
// geometry swap.
func (s *session) reset() {
	*s = session{}
	s.clearLock()
	s.last = Result{KeyIndex: -1, Code: geometry.CodeNone}
}

// clearLock drops the preferred-letter lock without touching drag
// state.
func (s *session) clearLock() {
	s.lockedCode = geometry.CodeNone
	s.lockedKey = -1
	s.lockedDist = math.MaxInt
}

// begin opens the session for a new touch.
func (s *session) begin(generation uint64) {
	s.reset()
	s.id = uuid.New()
	s.generation = generation
	s.active = true
}

// lock pins resolution to the given code for the rest of the touch.
func (s *session) lock(code geometry.Code, keyIndex int, p geometry.Point, dist int) {
	s.lockedCode = code
	s.lockedKey = keyIndex
	s.lockedPoint = p
	s.lockedDist = dist
}

// locked returns true if a preferred-letter lock is in effect.
func (s *session) locked() bool {
	return s.lockedCode != geometry.CodeNone
}
