package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should validate: %v", err)
	}
	if cfg.Controls.PointerSpeed != 1 || cfg.Controls.MaxPolarAngle != math.Pi {
		t.Errorf("Unexpected control defaults %+v", cfg.Controls)
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))

	if err != nil {
		t.Fatalf("Missing file should not be an error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "look.json")
	if err := os.WriteFile(path, []byte(`{"controls": {"pointer_speed": 0.5}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Controls.PointerSpeed != 0.5 {
		t.Errorf("Expected pointer speed 0.5, got %f", cfg.Controls.PointerSpeed)
	}
	if cfg.Window.Width != 1024 || cfg.Controls.MaxPolarAngle != math.Pi {
		t.Errorf("Unset fields should keep defaults, got %+v", cfg)
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"syntax.json": `{"window": `,
		"speed.json":  `{"controls": {"pointer_speed": -1}}`,
		"polar.json":  `{"controls": {"min_polar_angle": 2, "max_polar_angle": 1}}`,
		"size.json":   `{"window": {"width": 0}}`,
	}

	for name, body := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		cfg, err := Load(path)
		if err == nil {
			t.Errorf("%s: expected an error", name)
		}
		if cfg != Default() {
			t.Errorf("%s: expected defaults on error, got %+v", name, cfg)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "look.json")
	cfg := Default()
	cfg.Window.Title = "Round trip"
	cfg.Controls.MinPolarAngle = 0.25
	cfg.Debug = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != cfg {
		t.Errorf("Expected %+v, got %+v", cfg, got)
	}
}
