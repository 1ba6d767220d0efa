package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"darkdungeon/pkg/engine/logger"
	"darkdungeon/pkg/engine/terminal"
	"darkdungeon/pkg/game/config"
	"darkdungeon/pkg/game/devtools"
	"darkdungeon/pkg/game/levelgen"
	"darkdungeon/pkg/game/renderer"
	gameworld "darkdungeon/pkg/game/world"
)

// loadConfig returns the defaults when no path is given
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Defaults(), nil
	}
	return config.Load(path)
}

// buildAtlas creates every configured map and fills the standard three
func buildAtlas(cfg *config.Config) (*gameworld.Atlas, []*levelgen.Level, error) {
	a := gameworld.NewAtlas(cfg.Buckets, cfg.MapSpecs())

	if a.Len() < 3 {
		logger.Log.WithField("maps", a.Len()).Warn("fewer than three maps configured, leaving them empty")
		return a, nil, nil
	}

	layouts, err := levelgen.DefaultLayouts()
	if err != nil {
		return nil, nil, err
	}
	levels, err := levelgen.BuildAll(a, layouts)
	if err != nil {
		return nil, nil, err
	}
	return a, levels, nil
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	mapIndex := flag.Int("map", gameworld.Overworld, "index of the map to print (0 overworld, 1 dungeon, 2 maze)")
	dump := flag.Bool("dump", false, "write a full debug dump of every map to map.txt")
	useColor := flag.Bool("color", terminal.IsTerminal(os.Stdout), "colour the printed map")
	icons := flag.Bool("icons", false, "print unicode icons instead of ASCII glyphs")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Log.Fatalf("Cannot load config: %v", err)
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	a, levels, err := buildAtlas(cfg)
	if err != nil {
		logger.Log.Fatalf("Cannot build maps: %v", err)
	}
	defer a.Destroy()

	if *mapIndex < 0 || *mapIndex >= a.Len() {
		logger.Log.Fatalf("Map index %d out of range [0,%d)", *mapIndex, a.Len())
	}
	m := a.Activate(*mapIndex)

	cols, rows := terminal.Size(os.Stdout)
	opts := renderer.Options{
		Color: *useColor,
		Icons: *icons,
		Cols:  cols,
		Rows:  rows - 2,
	}

	fmt.Printf("%s (%dx%d, %d items)\n", m.Name(), a.Width(), a.Height(), m.Count())
	if err := renderer.PrintMap(os.Stdout, m, opts); err != nil {
		logger.Log.Fatalf("Cannot print map: %v", err)
	}
	fmt.Println()
	if err := renderer.PrintLegend(os.Stdout, m, opts); err != nil {
		logger.Log.Fatalf("Cannot print legend: %v", err)
	}

	if *dump {
		path, err := devtools.DumpMapToFile(a, levels)
		if err != nil {
			logger.Log.Fatalf("Cannot dump maps: %v", err)
		}
		logger.Log.WithFields(logrus.Fields{"path": path, "maps": a.Len()}).Info("map dump written")
	}
}
