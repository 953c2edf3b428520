package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

var (
	surveyWorlds  int
	surveyWorkers int

	surveyCmd = &cobra.Command{
		Use:   "survey",
		Short: "Simulate many random worlds and report how they end",
		Args:  cobra.NoArgs,
		RunE:  runSurvey,
	}
)

// surveyResult is how one world ended up
type surveyResult struct {
	Seed        int64
	Initial     int
	Final       int
	Peak        int
	Generations int
	Outcome     string
}

func runSurvey(cmd *cobra.Command, args []string) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	_, baseSeed := newRand(config.Seed)
	results, err := survey(cmd.Context(), config, baseSeed, surveyWorlds, surveyWorkers)
	if err != nil {
		return err
	}

	writeSurvey(cmd.OutOrStdout(), results)
	return nil
}

// survey runs count worlds, each seeded with baseSeed+i, on up to workers
// goroutines. Every world is owned by the goroutine simulating it.
func survey(ctx context.Context, config utils.Config, baseSeed int64, count, workers int) ([]surveyResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]surveyResult, count)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i := range count {
		seed := baseSeed + int64(i)
		eg.Go(func() error {
			result, err := simulate(ctx, config, seed)
			if err != nil {
				return err
			}
			results[i] = result
			logger.Debug("world finished", "seed", seed, "outcome", result.Outcome, "generations", result.Generations)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// simulate ticks one seeded world until it dies out, settles into a cycle,
// or reaches config.Turns
func simulate(ctx context.Context, config utils.Config, seed int64) (surveyResult, error) {
	rng, _ := newRand(seed)
	world, err := seedWorld(config, rng)
	if err != nil {
		return surveyResult{}, err
	}

	var (
		history = model.NewHistory(0)
		stats   = utils.NewStats()
		result  = surveyResult{Seed: seed, Initial: world.Population()}
	)
	width, height := world.Dimensions()

	for generation := 0; result.Outcome == ""; generation++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		population := world.Population()
		stats.Update(generation, population, width*height, 0)
		result.Generations = generation
		result.Final = population

		switch {
		case population == 0:
			result.Outcome = "extinct"
		case history.IsStagnant(world):
			result.Outcome = "stable"
		case generation >= config.Turns:
			result.Outcome = "running"
		default:
			history.Record(world)
			world.Tick()
		}
	}

	result.Peak = stats.PeakPopulation
	return result, nil
}

func writeSurvey(out io.Writer, results []surveyResult) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SEED\tINITIAL\tFINAL\tPEAK\tGENERATIONS\tOUTCOME")

	outcomes := make(map[string]int)
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%s\n", r.Seed, r.Initial, r.Final, r.Peak, r.Generations, r.Outcome)
		outcomes[r.Outcome]++
	}
	tw.Flush()

	fmt.Fprintf(out, "\n%d worlds: %d extinct, %d stable, %d still running\n",
		len(results), outcomes["extinct"], outcomes["stable"], outcomes["running"])
}
