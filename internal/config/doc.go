// Package config loads the softboard settings snapshot.
//
// Settings are read once from a TOML file and passed into the pipeline
// at session start as part of an explicitly constructed context; no
// component reads a process-wide mutable singleton. A missing settings
// file is not an error and yields the defaults.
package config
