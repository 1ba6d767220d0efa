// Package levelgen builds the contents of the game's maps.
package levelgen

import (
	_ "embed"
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed layouts.yaml
var defaultLayouts []byte

// Glyph says what a layout character turns into.
type Glyph struct {
	Place  string `yaml:"place"`  // item to place, empty for marker-only glyphs
	Marker string `yaml:"marker"` // name to record the position under
}

// Layout is a row-major character picture of a map.
type Layout struct {
	Rows []string `yaml:"rows"`
}

// Width returns the length of the longest row
func (l *Layout) Width() int {
	w := 0
	for _, row := range l.Rows {
		if n := utf8.RuneCountInString(row); n > w {
			w = n
		}
	}
	return w
}

// Height returns the number of rows
func (l *Layout) Height() int {
	return len(l.Rows)
}

// LayoutSet is a legend plus named layouts.
type LayoutSet struct {
	Legend  map[string]Glyph   `yaml:"legend"`
	Layouts map[string]*Layout `yaml:"layouts"`
}

// Glyph returns the legend entry for c
func (s *LayoutSet) Glyph(c rune) (Glyph, bool) {
	g, ok := s.Legend[string(c)]
	return g, ok
}

// ParseLayouts decodes a YAML layout set and checks every legend entry
func ParseLayouts(data []byte) (*LayoutSet, error) {
	var set LayoutSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}
	for key, g := range set.Legend {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("legend key %q must be a single character", key)
		}
		if g.Place == "" && g.Marker == "" {
			return nil, fmt.Errorf("legend entry %q places nothing and marks nothing", key)
		}
		if g.Place != "" {
			if _, ok := placers[g.Place]; !ok {
				return nil, fmt.Errorf("legend entry %q: unknown item %q", key, g.Place)
			}
		}
	}
	return &set, nil
}

// DefaultLayouts returns the layouts shipped with the game
func DefaultLayouts() (*LayoutSet, error) {
	return ParseLayouts(defaultLayouts)
}
