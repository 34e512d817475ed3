// Package config holds renderer settings: which outline path to use,
// outline precision, and how script font names map to usable families.
package config

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"
)

// Settings controls how a line's style state is resolved into visual
// properties. The zero value is not usable; start from Default.
type Settings struct {
	// EnableSVG selects the filter-based outline path. When false the
	// renderer falls back to brute-force shadow stacking, which is far
	// more expensive and visually coarser.
	EnableSVG bool `yaml:"enable_svg"`

	// PreciseOutlines keeps the outline dilation step at one pixel even
	// when a Gaussian blur is active. Off by default: blur hides the
	// coarser stepping and fewer composited layers are cheaper.
	PreciseOutlines bool `yaml:"precise_outlines"`

	// FallbackFonts is appended to every generated font-family list.
	FallbackFonts []string `yaml:"fallback_fonts"`

	// FontMap maps a script font name to the family names to try in its
	// place. Names absent from the map are used as-is.
	FontMap map[string][]string `yaml:"font_map"`
}

// Default returns the settings a renderer starts from.
func Default() *Settings {
	return &Settings{
		EnableSVG:       true,
		PreciseOutlines: false,
		FallbackFonts:   []string{"Arial", "Helvetica", "sans-serif"},
	}
}

// Load unmarshals yaml settings on top of the defaults and validates the
// result.
func Load(data []byte) (*Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("unable to parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the settings, accumulating all failures.
func (s *Settings) Validate() error {
	var err error
	for name, families := range s.FontMap {
		if name == "" {
			err = multierr.Append(err, errors.New("font_map: empty script font name"))
		}
		if len(families) == 0 {
			err = multierr.Append(err, fmt.Errorf("font_map: no families mapped for %q", name))
		}
		for _, f := range families {
			if f == "" {
				err = multierr.Append(err, fmt.Errorf("font_map: empty family mapped for %q", name))
			}
		}
	}
	for _, f := range s.FallbackFonts {
		if f == "" {
			err = multierr.Append(err, errors.New("fallback_fonts: empty family name"))
		}
	}
	return err
}

// Families returns the family list to render for a script font name:
// the mapped families (or the name itself) followed by the fallbacks.
func (s *Settings) Families(name string) []string {
	mapped, ok := s.FontMap[name]
	if !ok {
		mapped = []string{name}
	}
	out := make([]string, 0, len(mapped)+len(s.FallbackFonts))
	out = append(out, mapped...)
	out = append(out, s.FallbackFonts...)
	return out
}
