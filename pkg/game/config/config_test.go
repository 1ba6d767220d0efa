package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Defaults().Validate() = %v", err)
	}
	if cfg.Buckets != 50 {
		t.Errorf("Buckets = %d, want 50", cfg.Buckets)
	}
	specs := cfg.MapSpecs()
	if len(specs) != 3 || specs[0].Width != 90 || specs[1].Width != 10 || specs[2].Width != 20 {
		t.Errorf("MapSpecs() = %+v, want overworld 90, dungeon 10, maze 20", specs)
	}
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
buckets = 7

[[maps]]
name = "tiny"
width = 4
height = 3

[logging]
level = "debug"
format = "json"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Buckets != 7 {
		t.Errorf("Buckets = %d, want 7", cfg.Buckets)
	}
	if len(cfg.Maps) != 1 || cfg.Maps[0] != (MapConfig{Name: "tiny", Width: 4, Height: 3}) {
		t.Errorf("Maps = %+v, want one 4x3 map", cfg.Maps)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoad_KeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Load(writeConfig(t, `buckets = 11`))
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if len(cfg.Maps) != 3 || cfg.Logging.Level != "info" {
		t.Errorf("cfg = %+v, want default maps and logging", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero buckets", "buckets = 0", "buckets"},
		{"bad dimensions", "[[maps]]\nname = \"x\"\nwidth = 0\nheight = 5\n", "dimensions"},
		{"syntax", "buckets = ", "parse config"},
		{"map without height", "[[maps]]\nname = \"custom\"\nwidth = 5\n", "dimensions 5x0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want mention of %q", err, tt.want)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load(missing) = nil error")
	}
}

func TestLoad_MapsReplaceDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[[maps]]
name = "a"
width = 2
height = 2

[[maps]]
name = "b"
width = 3
height = 4
`))
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	want := []MapConfig{{Name: "a", Width: 2, Height: 2}, {Name: "b", Width: 3, Height: 4}}
	if len(cfg.Maps) != len(want) {
		t.Fatalf("Maps = %+v, want %+v", cfg.Maps, want)
	}
	for i := range want {
		if cfg.Maps[i] != want[i] {
			t.Errorf("Maps[%d] = %+v, want %+v", i, cfg.Maps[i], want[i])
		}
	}
}
