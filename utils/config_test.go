package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if config.Width != DefaultConfig().Width {
		t.Fatalf("missing file did not fall back to defaults: %+v", config)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"width": 12, "height": 8, "toroidal": true, "pattern": "glider"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Width != 12 || config.Height != 8 || !config.Toroidal || config.Pattern != "glider" {
		t.Fatalf("config not applied: %+v", config)
	}
	// Fields absent from the file keep their defaults.
	if config.StagnationThreshold != DefaultConfig().StagnationThreshold {
		t.Fatalf("default not preserved: %+v", config)
	}
}
