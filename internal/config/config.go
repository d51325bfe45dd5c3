package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/softboard/internal/correction"
)

// Config is the settings snapshot handed to the pipeline at session
// start.
type Config struct {
	// Locales is the ordered list of selected input locales, in
	// persisted form ("en", "de_DE").
	Locales []string `toml:"locales"`

	// LocaleIndex is the persisted position in the locale ring.
	LocaleIndex int `toml:"locale-index"`

	// DragFraction is the fraction of the preview width a space drag
	// must cover to cycle locales.
	DragFraction float64 `toml:"drag-fraction"`

	// VerticalCorrection is added to touch Y before the space-region
	// test, in layout units.
	VerticalCorrection int `toml:"vertical-correction"`

	// Frequencies maps single-character strings to preferred-letter
	// weights.
	Frequencies map[string]int `toml:"frequencies"`

	// CacheSize bounds the keyboard variant cache.
	CacheSize int `toml:"cache-size"`

	// HeightPercent is the locale-derived keyboard height percentage.
	HeightPercent int `toml:"height-percent"`

	// LayoutDir is where layout definitions live.
	LayoutDir string `toml:"layout-dir"`

	// Layout names the layout definition file to load, without
	// extension.
	Layout string `toml:"layout"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		DragFraction:       correction.DefaultDragFraction,
		VerticalCorrection: correction.DefaultVerticalCorrection,
		HeightPercent:      100,
		LayoutDir:          "layouts",
		Layout:             "qwerty",
	}
}

// Load reads settings from path, applying defaults for absent fields.
// A missing file returns the defaults with no error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	if cfg.DragFraction <= 0 || cfg.DragFraction >= 1 {
		cfg.DragFraction = correction.DefaultDragFraction
	}
	if cfg.HeightPercent <= 0 {
		cfg.HeightPercent = 100
	}
	return cfg, nil
}

// Frequency converts the configured letter weights into the
// correction table form. Multi-rune entries are ignored.
func (c *Config) Frequency() correction.Frequency {
	if len(c.Frequencies) == 0 {
		return nil
	}
	weights := make(map[rune]int, len(c.Frequencies))
	for s, w := range c.Frequencies {
		runes := []rune(s)
		if len(runes) != 1 {
			continue
		}
		weights[runes[0]] = w
	}
	return correction.FromRunes(weights)
}
