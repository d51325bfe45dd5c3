// Package keyboard identifies keyboard variants and caches built
// keyboard instances.
//
// An ID is a comparable value type naming one concrete keyboard variant
// (layout resource, logical mode, shift-lock, voice key, height,
// extension flag). Because ID is a plain comparable struct, map-key
// hashing and equality agree by construction, and identical identity
// tuples always produce an equal ID.
//
// The Cache maps IDs to lazily built Keyboard instances. It is bounded
// and is purged wholesale whenever the display width or capability
// flags change, mirroring the triggers that force key geometry to be
// rebuilt.
package keyboard
