// Package renderer prints maps as text, one glyph per tile.
package renderer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"darkdungeon/pkg/engine/world"
	"darkdungeon/pkg/game/entities"
	gameworld "darkdungeon/pkg/game/world"
)

// IconVoid is printed for empty tiles
const IconVoid = " "

// kindStyles colours each kind when colour output is enabled
var kindStyles = map[entities.Kind]color.Style{
	entities.Wall:      {color.FgGray},
	entities.Plant:     {color.FgGreen},
	entities.NPC:       {color.FgMagenta, color.OpBold},
	entities.Key:       {color.FgYellow, color.OpBold},
	entities.Chest:     {color.FgYellow},
	entities.Ladder:    {color.FgCyan},
	entities.Spell:     {color.FgWhite, color.OpBold},
	entities.SpellDark: {color.FgBlue, color.OpBold},
	entities.Danger:    {color.FgRed, color.OpBold},
	entities.Grave:     {color.FgGray, color.OpBold},
	entities.Elixir:    {color.FgRed},
	entities.Sign:      {color.FgCyan, color.OpBold},
}

// Options controls PrintMap output
type Options struct {
	Color bool // wrap glyphs in ANSI colour codes
	Icons bool // use unicode icons instead of ASCII glyphs

	// Cols and Rows clip the printed window; zero means the whole map.
	Cols, Rows int

	// Center, if set, centres the clipped window on this tile.
	Center *world.Point
}

// window returns the top-left corner and size of the area to print
func (o Options) window(m *gameworld.Map) (x0, y0, cols, rows int) {
	cols, rows = m.Width(), m.Height()
	if o.Cols > 0 && o.Cols < cols {
		cols = o.Cols
	}
	if o.Rows > 0 && o.Rows < rows {
		rows = o.Rows
	}
	if o.Center != nil {
		x0 = clamp(o.Center.X-cols/2, 0, m.Width()-cols)
		y0 = clamp(o.Center.Y-rows/2, 0, m.Height()-rows)
	}
	return x0, y0, cols, rows
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RenderItem returns the text for a single tile
func RenderItem(item *gameworld.MapItem, opts Options) string {
	if item == nil {
		return IconVoid
	}
	s := string(item.Glyph())
	if opts.Icons {
		s = entities.IconFor(item.Sprite)
	}
	if opts.Color {
		if style, ok := kindStyles[item.Kind]; ok {
			return style.Sprint(s)
		}
	}
	return s
}

// PrintMap writes the map row by row, blank for empty tiles
func PrintMap(w io.Writer, m *gameworld.Map, opts Options) error {
	x0, y0, cols, rows := opts.window(m)

	var b strings.Builder
	for y := y0; y < y0+rows; y++ {
		for x := x0; x < x0+cols; x++ {
			b.WriteString(RenderItem(m.Here(x, y), opts))
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// spriteLabel returns the translated legend label for a sprite tag.
// Unknown tags are printed as they are.
func spriteLabel(sprite string) string {
	switch sprite {
	case entities.SpriteWall:
		return gotext.Get("Wall")
	case entities.SpritePlant:
		return gotext.Get("Plant")
	case entities.SpriteWizard:
		return gotext.Get("Wizard")
	case entities.SpriteKey:
		return gotext.Get("Key")
	case entities.SpriteChest:
		return gotext.Get("Chest")
	case entities.SpriteLadder:
		return gotext.Get("Ladder")
	case entities.SpriteSpell:
		return gotext.Get("Light Spell")
	case entities.SpriteSpellDark:
		return gotext.Get("Dark Spell")
	case entities.SpriteDragon:
		return gotext.Get("Dragon")
	case entities.SpriteGoblin:
		return gotext.Get("Goblin")
	case entities.SpriteGrave:
		return gotext.Get("Grave")
	case entities.SpriteElixir:
		return gotext.Get("Elixir")
	case entities.SpriteSign:
		return gotext.Get("Sign")
	default:
		return sprite
	}
}

// legendSprites returns the sprites present on m, known tags in legend
// order followed by unknown ones sorted by name
func legendSprites(m *gameworld.Map) []string {
	present := m.Sprites()

	var out []string
	for _, sprite := range entities.AllSprites() {
		if present.Has(sprite) {
			out = append(out, sprite)
			present.Remove(sprite)
		}
	}
	var extra []string
	present.Each(func(sprite string) {
		extra = append(extra, sprite)
	})
	sort.Strings(extra)
	return append(out, extra...)
}

// PrintLegend lists the sprites present on the map with their glyphs
func PrintLegend(w io.Writer, m *gameworld.Map, opts Options) error {
	for _, sprite := range legendSprites(m) {
		sample := &gameworld.MapItem{Kind: -1, Sprite: sprite}
		if info, ok := entities.Sprites[sprite]; ok {
			sample.Kind = info.Kind
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", RenderItem(sample, opts), spriteLabel(sprite)); err != nil {
			return err
		}
	}
	return nil
}
