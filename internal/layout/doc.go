// Package layout loads keyboard layout definitions and compiles them
// into key geometry.
//
// Layouts come from two sources:
//
//   - TOML files describing rows of keys with codes, widths, and
//     modifier flags.
//   - Lua scripts that generate the same row structure, for layouts
//     parameterized on display width (split/compact variants).
//
// Both sources produce a Definition, which Build compiles into a
// geometry.Geometry scaled to the current display width. The Watcher
// monitors layout files and notifies the host so cached keyboards can
// be purged when a definition changes on disk.
package layout
