package config

import (
	"errors"
	"path/filepath"
	"testing"

	"fluidlab/internal/fluid"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 10 || cfg.Height != 10 {
		t.Errorf("expected 10x10 grid, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if cfg.Init != "spike" {
		t.Errorf("expected spike init, got %s", cfg.Init)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("storm")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Init != "random" {
		t.Errorf("expected random init, got %s", cfg.Init)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 6
	cfg.Rate = 30.0
	cfg.Init = "random"
	cfg.Seed = 99

	path := filepath.Join(t.TempDir(), "fluidlab.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Width != 6 || loaded.Rate != 30.0 || loaded.Init != "random" || loaded.Seed != 99 {
		t.Errorf("roundtrip mismatch: %+v", loaded)
	}
}

func TestNewGrid(t *testing.T) {
	tests := []struct {
		init    string
		wantErr bool
	}{
		{"zero", false},
		{"", false},
		{"spike", false},
		{"random", false},
		{"banana", true},
	}

	for _, tt := range tests {
		t.Run(tt.init, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Init = tt.init
			cfg.Sweeps = 3

			g, err := cfg.NewGrid()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error for unknown init mode")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if g.W != cfg.Width || g.H != cfg.Height {
				t.Errorf("grid dims %dx%d, want %dx%d", g.W, g.H, cfg.Width, cfg.Height)
			}
			if g.Sweeps != 3 {
				t.Errorf("sweeps not applied: %d", g.Sweeps)
			}
		})
	}
}

func TestNewGridSpikeApplied(t *testing.T) {
	cfg := DefaultConfig()
	g, err := cfg.NewGrid()
	if err != nil {
		t.Fatal(err)
	}

	c, err := g.At(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if c.Vel != (fluid.Vec2{X: 20, Y: 20}) {
		t.Errorf("spike velocity not applied: %+v", c.Vel)
	}

	if _, err := g.At(40, 40); !errors.Is(err, fluid.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}
