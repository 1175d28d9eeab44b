package main

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/conwaylab/golife/model"
	"github.com/conwaylab/golife/utils"
	"github.com/conwaylab/golife/zoo"
)

// buildInitialGrid resolves the configured pattern into a full-size grid.
// Named creatures and loaded pattern files are centered on an otherwise
// dead board; "random" seeds the board at the configured density.
func buildInitialGrid(config utils.Config, library map[string]*model.Grid) (*model.Grid, error) {
	grid := model.NewGrid(config.Width, config.Height)

	var pattern *model.Grid
	switch config.Pattern {
	case "", "random":
		grid.Randomize(config.RandomDensity)
		return grid, nil
	case "glider":
		pattern = zoo.Glider()
	case "rpentomino":
		pattern = zoo.RPentomino()
	case "lwss":
		pattern = zoo.LightweightSpaceship()
	default:
		if fromLibrary, ok := library[config.Pattern]; ok {
			pattern = fromLibrary
			break
		}
		var err error
		if filepath.Ext(config.Pattern) == ".bgol" {
			pattern, err = zoo.LoadBinary(config.Pattern)
		} else {
			pattern, err = zoo.LoadAscii(config.Pattern)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "[buildInitialGrid] unknown pattern: %+v", config.Pattern)
		}
	}

	x0 := (grid.GetWidth() - pattern.GetWidth()) / 2
	y0 := (grid.GetHeight() - pattern.GetHeight()) / 2
	if err := grid.Merge(pattern, x0, y0, false); err != nil {
		return nil, errors.Wrapf(err, "[buildInitialGrid] pattern %q does not fit %dx%d board",
			config.Pattern, grid.GetWidth(), grid.GetHeight())
	}
	return grid, nil
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, library map[string]*model.Grid) (
	*model.World,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	grid, err := buildInitialGrid(config, library)
	if err != nil {
		return nil, nil, nil, err
	}
	return model.NewWorldFromGrid(grid), &model.TerminalRenderer{}, utils.NewStats(), nil
}

// stagnationTracker detects static or short-cycle states by comparing
// recent generation fingerprints.
type stagnationTracker struct {
	history []string
}

// update records the current fingerprint and reports whether the world
// matches any of the last few generations.
func (t *stagnationTracker) update(fingerprint string) bool {
	stagnant := false
	for _, prev := range t.history {
		if prev == fingerprint {
			stagnant = true
			break
		}
	}

	t.history = append(t.history, fingerprint)
	// Keep only the last 5 states to detect cycles
	if len(t.history) > 5 {
		t.history = t.history[1:]
	}
	return stagnant
}

func (t *stagnationTracker) reset() {
	t.history = nil
}

// injectRandomLife flips some random cells alive to break stagnation
func injectRandomLife(world *model.World, count int) {
	grid := world.GetState()
	if grid.GetTotalCells() == 0 {
		return
	}
	for i := 0; i < count; i++ {
		// Coordinates come from the grid's own bounds.
		_ = grid.Set(rand.Intn(grid.GetWidth()), rand.Intn(grid.GetHeight()), true)
	}
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, world *model.World) {
	fmt.Printf("Topology: toroidal=%v | Pattern: %s\n", config.Toroidal, config.Pattern)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		world.GetWidth(), world.GetHeight(), world.GetAliveCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState updates per-frame bookkeeping and returns status information
func updateGameState(
	world *model.World,
	tracker *stagnationTracker,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	livingCells := world.GetAliveCells()
	density := 0.0
	if world.GetTotalCells() > 0 {
		density = float64(livingCells) / float64(world.GetTotalCells()) * 100
	}

	stats.Update(generation, livingCells, time.Since(lastFrameTime))

	isStagnant := tracker.update(world.GetState().Fingerprint())

	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", generation)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame rebuilds the world from the configured pattern
func restartGame(config utils.Config, library map[string]*model.Grid) (*model.World, error) {
	fmt.Printf("\nRestarting...\n")
	time.Sleep(1 * time.Second)

	grid, err := buildInitialGrid(config, library)
	if err != nil {
		return nil, err
	}
	world := model.NewWorldFromGrid(grid)

	fmt.Printf("New patterns loaded! Living cells: %d\n", world.GetAliveCells())
	time.Sleep(2 * time.Second)

	return world, nil
}
