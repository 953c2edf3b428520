package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// periodicRefresh restarts a long-running game every so many generations
const periodicRefresh = 200

// game is the state of one play session
type game struct {
	out      io.Writer
	config   utils.Config
	rng      *rand.Rand
	world    *model.World
	history  *model.History
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	metrics  *utils.Metrics
}

// newRand seeds a random source, picking a seed from the clock for 0
func newRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// seedWorld builds the starting world: the configured pattern centered in
// the box, or CellCount random cells
func seedWorld(config utils.Config, rng *rand.Rand) (*model.World, error) {
	lower, upper := config.Bounds()
	if config.Pattern == "" {
		return model.Random(lower, upper, config.CellCount, rng)
	}

	world := model.Empty(lower, upper)
	origin := model.NewLocation(max(0, (config.Width-3)/2), max(0, (config.Height-3)/2))
	if err := model.AddPattern(world, config.Pattern, origin); err != nil {
		return nil, err
	}
	return world, nil
}

// initializeGame sets up the initial game state
func initializeGame(out io.Writer, config utils.Config, metrics *utils.Metrics) (*game, error) {
	rng, seed := newRand(config.Seed)
	logger.Debug("seeding world", "seed", seed, "pattern", config.Pattern)

	world, err := seedWorld(config, rng)
	if err != nil {
		return nil, err
	}

	return &game{
		out:      out,
		config:   config,
		rng:      rng,
		world:    world,
		history:  model.NewHistory(0),
		renderer: model.NewTerminalRenderer(out),
		stats:    utils.NewStats(),
		metrics:  metrics,
	}, nil
}

// displayGameInfo shows the initial game information
func (g *game) displayGameInfo() {
	width, height := g.world.Dimensions()
	fmt.Fprintf(g.out, "Grid: %dx%d | Initial living cells: %d\n", width, height, g.world.Population())
	fmt.Fprintln(g.out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(g.out)
}

// updateGameState updates the game state and returns status information
func (g *game) updateGameState(generation int, frameDuration time.Duration) (int, string, bool) {
	var (
		livingCells   = g.world.Population()
		width, height = g.world.Dimensions()
	)
	g.stats.Update(generation, livingCells, width*height, frameDuration)

	isStagnant := g.history.IsStagnant(g.world)
	g.history.Record(g.world)

	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", generation)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, status, isStagnant
}

// displayGameStatus shows the current game status
func (g *game) displayGameStatus(generation, livingCells int, status string, lastRestartGen int) {
	fmt.Fprintf(g.out, "Gen: %d | Living: %d | Dead: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, g.world.DeadCellCount(), g.stats.Density(), status)
	fmt.Fprintf(g.out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds())

	if generation > lastRestartGen {
		fmt.Fprintf(g.out, "Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Fprintln(g.out)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount, generation int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation"
	}
	if generation > 0 && generation%periodicRefresh == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame replaces the world with a freshly seeded one
func (g *game) restartGame(reason string) error {
	world, err := seedWorld(g.config, g.rng)
	if err != nil {
		return err
	}
	g.world = world
	g.history.Reset()
	if g.metrics != nil {
		g.metrics.ObserveRestart(reason)
	}
	logger.Info("restarted", "reason", reason, "living", world.Population())
	return nil
}

// injectRandomLife sets count random locations of the bounding box living
func (g *game) injectRandomLife(count int) {
	var (
		lower         = g.world.MinLocation()
		width, height = g.world.Dimensions()
	)
	for range count {
		g.world.SetLivingAt(model.NewLocation(lower.X+g.rng.Intn(width), lower.Y+g.rng.Intn(height)))
	}
}

// tick advances the world one generation and records it
func (g *game) tick() {
	start := time.Now()
	g.world.Tick()
	if g.metrics != nil {
		g.metrics.ObserveTick(g.world.Population(), g.world.DeadCellCount(), time.Since(start))
	}
}

// run is the main game loop. It returns when ctx is done or the generation
// limit is reached.
func (g *game) run(ctx context.Context) error {
	g.displayGameInfo()

	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
		frameRate      = time.Duration(g.config.FrameRate)
	)

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintf(g.out, "\nFinal stats: %d generations in %.1f seconds\n",
				generation, g.stats.Runtime().Seconds())
			fmt.Fprintf(g.out, "Average: %.1f gen/sec, %.1f avg population\n",
				g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
			return nil
		default:
		}

		frameStart := time.Now()
		g.renderer.Clear()

		livingCells, status, isStagnant := g.updateGameState(generation, frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		g.displayGameStatus(generation, livingCells, status, lastRestartGen)
		g.renderer.Display(g.world)

		if g.config.MaxGenerations > 0 && generation >= g.config.MaxGenerations {
			fmt.Fprintf(g.out, "\nReached maximum generations limit (%d)\n", g.config.MaxGenerations)
			return nil
		}

		shouldRestart, reason := checkRestartConditions(livingCells, stagnantCount, generation, g.config)
		switch {
		case shouldRestart && g.config.AutoRestart:
			if err := g.restartGame(reason); err != nil {
				return err
			}
			lastRestartGen = generation
			stagnantCount = 0
		case stagnantCount >= 2 && stagnantCount < g.config.StagnationThreshold:
			// Inject some life to try to break the stagnation
			g.injectRandomLife(g.config.InjectionCount)
		}

		g.tick()
		generation++

		select {
		case <-ctx.Done():
		case <-time.After(frameRate):
		}
	}
}
