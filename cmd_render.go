package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

var renderCmd = &cobra.Command{
	Use:   "render [grid file | -]",
	Short: "Print the renderings of every turn of a world",
	Long: `Print "Turn <k>:" followed by the grid for every turn from 0 to --turns.

The world is read from a grid file, from stdin when the argument is "-", or
seeded at random (or from --pattern) when no argument is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	renderer := config.Renderer()
	world, err := loadWorld(cmd, args, config, renderer)
	if err != nil {
		return err
	}

	for rendering := range model.TurnRenderings(world, config.Turns, renderer) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendering); err != nil {
			return errors.Wrap(err, "[runRender] failed to write rendering")
		}
	}
	return nil
}

// loadWorld reads the world named by args, or seeds one from config
func loadWorld(cmd *cobra.Command, args []string, config utils.Config, renderer model.Renderer) (*model.World, error) {
	if len(args) == 0 {
		rng, seed := newRand(config.Seed)
		logger.Debug("seeding world", "seed", seed, "pattern", config.Pattern)
		return seedWorld(config, rng)
	}

	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, errors.Wrapf(err, "[loadWorld] failed to read grid from %s", args[0])
	}

	world, err := renderer.Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "[loadWorld] %s", args[0])
	}
	logger.Debug("world loaded", "source", args[0], "living", world.Population())
	return world, nil
}
