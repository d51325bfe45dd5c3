package proximity

import "github.com/dshills/softboard/internal/geometry"

// MaxCandidates bounds the nearby-codes buffer. Twelve slots cover the
// worst practical case of a touch landing between four multi-code keys;
// anything further away than that is noise.
const MaxCandidates = 12

// Candidate is one nearby code with the squared distance of the key
// that contributed it.
type Candidate struct {
	// Code is the candidate key code.
	Code geometry.Code

	// KeyIndex is the index of the contributing key in the geometry.
	KeyIndex int

	// Distance is the squared distance from that key's center to the
	// touch point.
	Distance int
}

// Candidates is a fixed-capacity buffer of nearby codes kept sorted by
// ascending distance. Codes beyond capacity are dropped. Equal
// distances keep insertion order, so the geometry's scan order decides
// ties.
type Candidates struct {
	entries [MaxCandidates]Candidate
	n       int
}

// insert places a candidate at its sorted position, shifting later
// entries down and dropping the last one when the buffer is full.
func (c *Candidates) insert(cand Candidate) {
	pos := c.n
	for i := 0; i < c.n; i++ {
		if cand.Distance < c.entries[i].Distance {
			pos = i
			break
		}
	}
	if pos >= MaxCandidates {
		return
	}
	end := c.n
	if end >= MaxCandidates {
		end = MaxCandidates - 1
	}
	copy(c.entries[pos+1:end+1], c.entries[pos:end])
	c.entries[pos] = cand
	if c.n < MaxCandidates {
		c.n++
	}
}

// Len returns the number of buffered candidates.
func (c *Candidates) Len() int {
	return c.n
}

// At returns the candidate at rank i (0 = closest).
func (c *Candidates) At(i int) Candidate {
	return c.entries[i]
}

// Codes returns the candidate codes in ascending distance order. The
// returned slice is freshly allocated.
func (c *Candidates) Codes() []geometry.Code {
	codes := make([]geometry.Code, c.n)
	for i := 0; i < c.n; i++ {
		codes[i] = c.entries[i].Code
	}
	return codes
}
