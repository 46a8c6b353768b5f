package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-flyer/internal/game"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg != DefaultFlyerConfig() {
		t.Errorf("embedded defaults differ from DefaultFlyerConfig():\n%+v\n%+v", cfg, DefaultFlyerConfig())
	}
}

func TestDefaultParamsMatchGameDefaults(t *testing.T) {
	p, err := DefaultFlyerConfig().Params()
	if err != nil {
		t.Fatalf("Params() failed: %v", err)
	}
	if p != game.DefaultParams() {
		t.Errorf("config defaults differ from game defaults:\n%+v\n%+v", p, game.DefaultParams())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flyer.yaml")
	data := []byte("barrier:\n  spacing: 200\n  color: \"#00FF00\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Barrier.Spacing != 200 {
		t.Errorf("spacing = %d, expected 200", cfg.Barrier.Spacing)
	}
	// Untouched keys keep their defaults.
	if cfg.Barrier.GapSize != 150 || cfg.World.Width != 1200 {
		t.Errorf("partial config lost defaults: %+v", cfg)
	}

	p, err := cfg.Params()
	if err != nil {
		t.Fatalf("Params() failed: %v", err)
	}
	if p.BarrierColor != (color.RGBA{G: 0xFF, A: 0xFF}) {
		t.Errorf("barrier color = %+v", p.BarrierColor)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}
}

func TestParamsRejectsEmptyGapRange(t *testing.T) {
	cfg := DefaultFlyerConfig()
	cfg.Barrier.GapBound = 250
	cfg.Barrier.GapSize = 100

	_, err := cfg.Params()
	if !errors.Is(err, game.ErrInvalidParams) {
		t.Errorf("expected ErrInvalidParams, got %v", err)
	}
}

func TestParamsRejectsBadColor(t *testing.T) {
	cfg := DefaultFlyerConfig()
	cfg.Flyer.Color = "gold"

	if _, err := cfg.Params(); err == nil {
		t.Error("expected an error for a named color")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#FFD700", color.RGBA{R: 0xFF, G: 0xD7, A: 0xFF}, false},
		{"ffd70080", color.RGBA{R: 0xFF, G: 0xD7, A: 0x80}, false},
		{" #000000 ", color.RGBA{A: 0xFF}, false},
		{"#FFF", color.RGBA{}, true},
		{"#GGGGGG", color.RGBA{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseColor(%q) = %+v, expected %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultFlyerConfig()
	cfg.Flyer.FlySpeed = 321

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip changed the config:\n%+v\n%+v", back, cfg)
	}
}
