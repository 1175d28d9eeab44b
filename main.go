package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/conwaylab/golife/model"
	"github.com/conwaylab/golife/utils"
	"github.com/conwaylab/golife/zoo"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	// Preload the pattern library, if one is configured
	var library map[string]*model.Grid
	if config.PatternDir != "" {
		if library, err = zoo.LoadDirectory(config.PatternDir); err != nil {
			fmt.Printf("Failed to load pattern directory: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Loaded %d patterns from %s\n", len(library), config.PatternDir)
	}

	world, renderer, stats, err := initializeGame(config, library)
	if err != nil {
		fmt.Printf("Failed to initialize game: %v\n", err)
		os.Exit(1)
	}
	displayGameInfo(config, world)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		tracker        stagnationTracker
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				generation, time.Since(stats.StartTime).Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		renderer.Clear()

		livingCells, density, status, isStagnant := updateGameState(
			world, &tracker, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(generation, livingCells, density, status, stats, lastRestartGen)
		renderer.Display(world)

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\nReached maximum generations limit (%d)\n", config.MaxGenerations)
			return
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation, config)

		if shouldRestart && config.AutoRestart {
			fmt.Printf("Restarting due to %s...\n", restartReason)

			if world, err = restartGame(config, library); err != nil {
				fmt.Printf("Failed to restart game: %v\n", err)
				return
			}
			tracker.reset()
			lastRestartGen = generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			injectRandomLife(world, config.InjectionCount)
		}

		world.Step(config.Toroidal)
		generation++

		time.Sleep(config.FrameRate)
	}
}
