package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the simulation loop
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	Toroidal            bool          `json:"toroidal"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	MaxGenerations      int           `json:"max_generations"`
	RandomDensity       float64       `json:"random_density"`
	InjectionCount      int           `json:"injection_count"`

	// Pattern selects the initial state: a named creature ("glider",
	// "rpentomino", "lwss"), a .gol/.bgol file path, or "random".
	Pattern string `json:"pattern"`

	// PatternDir optionally points at a directory of .gol/.bgol files
	// preloaded at startup and addressable by name via Pattern.
	PatternDir string `json:"pattern_dir"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		Toroidal:            false,
		AutoRestart:         true,
		StagnationThreshold: 5,
		MaxGenerations:      1000,
		RandomDensity:       0.15,
		InjectionCount:      3,
		Pattern:             "random",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
