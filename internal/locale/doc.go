// Package locale manages the ordered set of input locales the space-bar
// drag gesture cycles through.
//
// The Ring is a circular list with a current index. Advancing past the
// last locale wraps to the first and vice versa; with zero or one
// locales configured, cycling is a no-op. An empty ring reports a
// synthetic default locale so callers never observe "no locale".
package locale
