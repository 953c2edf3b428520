package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/go-life/utils"
)

var (
	configPath string
	logLevel   string

	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

	rootCmd = &cobra.Command{
		Use:           "gol",
		Short:         "Conway's Game of Life in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLogLevel(logLevel)
			if err != nil {
				return err
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.json", "JSON or YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	addWorldFlags(playCmd)
	addWorldFlags(renderCmd)
	addWorldFlags(surveyCmd)
	playCmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	playCmd.Flags().Int("max-generations", 0, "stop after this many generations (0 means unlimited)")
	surveyCmd.Flags().IntVar(&surveyWorlds, "worlds", 8, "number of random worlds to simulate")
	surveyCmd.Flags().IntVar(&surveyWorkers, "workers", 0, "worlds simulated at once (0 means one per CPU)")

	rootCmd.AddCommand(playCmd, renderCmd, surveyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// addWorldFlags registers the flags every command uses to build a world
func addWorldFlags(cmd *cobra.Command) {
	cmd.Flags().Int("width", 0, "world width")
	cmd.Flags().Int("height", 0, "world height")
	cmd.Flags().Int("cells", 0, "number of living cells in a random world")
	cmd.Flags().Int("turns", 0, "number of turns to simulate")
	cmd.Flags().String("pattern", "", "seed with a named pattern instead of random cells")
	cmd.Flags().Int64("seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().String("alive", "", "character for living cells")
	cmd.Flags().String("dead", "", "character for dead cells")
}

// loadConfig reads the config file, falling back to defaults when it does
// not exist, then applies any flags set on the command line
func loadConfig(cmd *cobra.Command) (utils.Config, error) {
	config, err := utils.LoadConfig(configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		logger.Debug("using default configuration", "path", configPath)
		config = utils.DefaultConfig()
	} else {
		logger.Debug("configuration loaded", "path", configPath)
	}

	flags := cmd.Flags()
	overrides := []struct {
		name  string
		apply func() error
	}{
		{"width", func() (err error) { config.Width, err = flags.GetInt("width"); return }},
		{"height", func() (err error) { config.Height, err = flags.GetInt("height"); return }},
		{"cells", func() (err error) { config.CellCount, err = flags.GetInt("cells"); return }},
		{"turns", func() (err error) { config.Turns, err = flags.GetInt("turns"); return }},
		{"pattern", func() (err error) { config.Pattern, err = flags.GetString("pattern"); return }},
		{"seed", func() (err error) { config.Seed, err = flags.GetInt64("seed"); return }},
		{"alive", func() (err error) { config.AliveChar, err = flags.GetString("alive"); return }},
		{"dead", func() (err error) { config.DeadChar, err = flags.GetString("dead"); return }},
		{"metrics-addr", func() (err error) { config.MetricsAddr, err = flags.GetString("metrics-addr"); return }},
		{"max-generations", func() (err error) { config.MaxGenerations, err = flags.GetInt("max-generations"); return }},
	}
	for _, o := range overrides {
		if flags.Lookup(o.name) == nil || !flags.Changed(o.name) {
			continue
		}
		if err := o.apply(); err != nil {
			return config, errors.Wrapf(err, "[loadConfig] flag --%s", o.name)
		}
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.Errorf("[parseLogLevel] unknown log level %q", level)
}
