package locale

import "sync"

// Ring is the circular list of selected locales with a current index.
//
// Ring is safe for concurrent use; the mutex is held only across a
// single index mutation or read.
type Ring struct {
	mu      sync.Mutex
	locales []Locale
	index   int
}

// NewRing creates a ring from persisted locale identifiers. Empty and
// whitespace-only entries are dropped.
func NewRing(ids []string) *Ring {
	r := &Ring{}
	for _, id := range ids {
		if loc := Parse(id); loc.Language != "" {
			r.locales = append(r.locales, loc)
		}
	}
	return r
}

// Len returns the number of configured locales.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.locales)
}

// Current returns the active locale, or Default when none are
// configured.
func (r *Ring) Current() Locale {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.locales) == 0 {
		return Default
	}
	return r.locales[r.index]
}

// Index returns the current position in the ring.
func (r *Ring) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// SetIndex moves to position i, clamped into range. Used when restoring
// a persisted position.
func (r *Ring) SetIndex(i int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.locales) == 0 || i < 0 || i >= len(r.locales) {
		r.index = 0
		return
	}
	r.index = i
}

// Next advances to the following locale, wrapping past the end. A ring
// with fewer than two locales does not move.
func (r *Ring) Next() Locale {
	return r.step(1)
}

// Prev retreats to the preceding locale, wrapping past the start. A
// ring with fewer than two locales does not move.
func (r *Ring) Prev() Locale {
	return r.step(-1)
}

func (r *Ring) step(delta int) Locale {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.locales)
	if n == 0 {
		return Default
	}
	if n > 1 {
		r.index = ((r.index+delta)%n + n) % n
	}
	return r.locales[r.index]
}

// Locales returns a copy of the configured locale list.
func (r *Ring) Locales() []Locale {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Locale, len(r.locales))
	copy(out, r.locales)
	return out
}
