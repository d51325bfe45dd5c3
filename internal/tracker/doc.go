// Package tracker orchestrates the touch-to-key pipeline for a stream
// of pointer events.
//
// The Tracker owns the correction session lifecycle and the pointer
// bookkeeping the mode switcher needs: the first pointer down becomes
// the primary touch and drives the Corrector; additional pointers are
// chord pointers resolved geometrically. Resolved commits are fed to
// the switcher Machine with the live pointer count and reported to the
// host through callbacks.
//
//	tr := tracker.New(tracker.Options{
//	    Geometry: geo,
//	    Locales:  ring,
//	    Callbacks: tracker.Callbacks{
//	        OnKeyCommitted: commit,
//	    },
//	})
//	tr.PointerDown(0, p)
//	tr.PointerUp(0, p)
//
// All methods are synchronous and non-blocking; the host dispatches
// events from a single input goroutine.
package tracker
