package correction

import "github.com/dshills/softboard/internal/geometry"

// Frequency is a sparse mapping from key code to a non-negative usage
// weight. Higher weights mark codes that should win ambiguous touches.
// The table is supplied per active layout by the host.
type Frequency map[geometry.Code]int

// Weight returns the weight for a code. Missing and negative entries
// are weight zero, never an error.
func (f Frequency) Weight(c geometry.Code) int {
	if f == nil {
		return 0
	}
	w, ok := f[c]
	if !ok || w < 0 {
		return 0
	}
	return w
}

// FromRunes builds a Frequency from a rune-keyed table, which is the
// natural form for configuration files.
func FromRunes(weights map[rune]int) Frequency {
	if len(weights) == 0 {
		return nil
	}
	f := make(Frequency, len(weights))
	for r, w := range weights {
		f[geometry.Code(r)] = w
	}
	return f
}
