package main

import (
	"errors"
	"io/fs"

	"go.uber.org/zap"

	"github.com/dshills/softboard/internal/config"
	"github.com/dshills/softboard/internal/keyboard"
)

// boardSource builds keyboard variants on demand and caches them, so
// flipping between the alphabetic and symbol views reuses compiled
// geometry instead of re-reading layout files.
type boardSource struct {
	cfg    *config.Config
	cache  *keyboard.Cache
	logger *zap.Logger
}

func newBoardSource(cfg *config.Config, logger *zap.Logger) (*boardSource, error) {
	s := &boardSource{cfg: cfg, logger: logger}
	cache, err := keyboard.NewCache(cfg.CacheSize, s.build)
	if err != nil {
		return nil, err
	}
	s.cache = cache
	return s, nil
}

// Keyboard returns the cached variant for the requested view, building
// it on first use.
func (s *boardSource) Keyboard(symbols bool) (*keyboard.Keyboard, error) {
	id := keyboard.IDFor(keyboard.Spec{
		Mode:    keyboard.ModeText,
		Symbols: symbols,
	}, 0, s.cfg.HeightPercent)
	return s.cache.GetOrBuild(id)
}

// Invalidate drops every cached variant. Called when a layout file
// changes on disk; the next Keyboard call rebuilds from the new
// definition.
func (s *boardSource) Invalidate() {
	s.cache.Purge()
}

// build is the cache's miss handler. The symbol variant loads
// "<layout>-symbols"; a variant with no file on disk falls back to the
// matching built-in.
func (s *boardSource) build(id keyboard.ID) (*keyboard.Keyboard, error) {
	name := s.cfg.Layout
	if id.Mode == keyboard.ModeSymbols {
		name += "-symbols"
	}
	def, err := loadDefinition(s.cfg.LayoutDir, name)
	if errors.Is(err, fs.ErrNotExist) {
		if id.Mode == keyboard.ModeSymbols {
			def = defaultSymbolsLayout()
		} else {
			def = defaultLayout()
		}
		err = nil
	}
	if err != nil {
		return nil, err
	}
	s.logger.Debug("keyboard built",
		zap.Stringer("id", id),
		zap.String("layout", def.Name))
	return &keyboard.Keyboard{ID: id, Geometry: def.Build()}, nil
}
