// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"darkdungeon/pkg/game/entities"
	"darkdungeon/pkg/game/levelgen"
	"darkdungeon/pkg/game/renderer"
	gameworld "darkdungeon/pkg/game/world"
)

const mapDumpFilename = "map.txt"

// WriteDump writes a sectioned, human-readable dump of every map in the
// atlas: metadata, hash table occupancy, legend, layout, items and markers.
// levels may be nil or shorter than the atlas.
func WriteDump(w io.Writer, a *gameworld.Atlas, levels []*levelgen.Level) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "=== MAP DUMP DEBUG (layouts, tables, items) ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintf(bw, "maps: %d\n", a.Len())
	fmt.Fprintf(bw, "active_map: %d\n", a.ActiveIndex())
	fmt.Fprintln(bw, "coordinate_system: x,y (0-based, x=horizontal, y=vertical, north = y-1)")
	fmt.Fprintln(bw, "")

	for i, m := range a.Maps() {
		var lvl *levelgen.Level
		if i < len(levels) {
			lvl = levels[i]
		}
		if err := writeMapSection(bw, i, m, lvl); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeMapSection(w io.Writer, index int, m *gameworld.Map, lvl *levelgen.Level) error {
	s := m.Stats()

	fmt.Fprintf(w, "--- Map %d: %s ---\n", index, m.Name())
	fmt.Fprintf(w, "width: %d\n", m.Width())
	fmt.Fprintf(w, "height: %d\n", m.Height())
	fmt.Fprintf(w, "area: %d\n", m.Area())
	fmt.Fprintf(w, "items: %d\n", m.Count())
	fmt.Fprintf(w, "kinds: %d\n", m.Kinds().Size())
	fmt.Fprintf(w, "buckets: %d\n", s.Buckets)
	fmt.Fprintf(w, "used_buckets: %d\n", s.UsedBuckets)
	fmt.Fprintf(w, "longest_chain: %d\n", s.LongestChain)
	fmt.Fprintf(w, "load_factor: %.2f\n", s.LoadFactor)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Legend:")
	if err := renderer.PrintLegend(w, m, renderer.Options{}); err != nil {
		return err
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Layout:")
	if err := renderer.PrintMap(w, m, renderer.Options{}); err != nil {
		return err
	}
	fmt.Fprintln(w, "")

	// Walls are visible in the layout; list everything else.
	fmt.Fprintln(w, "Items:")
	m.ForEachCell(func(x, y int, item *gameworld.MapItem) {
		if item.Kind == entities.Wall {
			return
		}
		fmt.Fprintf(w, "  x: %d y: %d kind: %q sprite: %q walkable: %v\n", x, y, item.Kind.String(), item.Sprite, item.Walkable)
	})
	fmt.Fprintln(w, "")

	if lvl != nil && len(lvl.Markers) > 0 {
		fmt.Fprintln(w, "Markers:")
		names := make([]string, 0, len(lvl.Markers))
		for name := range lvl.Markers {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			p := lvl.Markers[name]
			fmt.Fprintf(w, "  %s: %d,%d\n", name, p.X, p.Y)
		}
		fmt.Fprintln(w, "")
	}
	return nil
}

// DumpMapToFile writes WriteDump output to map.txt in the working
// directory and returns its absolute path
func DumpMapToFile(a *gameworld.Atlas, levels []*levelgen.Level) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create map dump: %w", err)
	}
	defer f.Close()

	if err := WriteDump(f, a, levels); err != nil {
		return "", fmt.Errorf("write map dump: %w", err)
	}
	return absPath, nil
}
