package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const scenario = "++-+\n+-++\n++-+\n-+--\n"

// newTestCommand builds a standalone command so flag state never leaks
// between tests through the package-level commands
func newTestCommand(t *testing.T, run func(*cobra.Command, []string) error, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	prev := configPath
	configPath = filepath.Join(t.TempDir(), "missing.json")
	t.Cleanup(func() { configPath = prev })

	cmd := &cobra.Command{Use: "test", RunE: run, SilenceUsage: true, SilenceErrors: true}
	addWorldFlags(cmd)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	return cmd, &out
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for input, want := range tests {
		got, err := parseLogLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := parseLogLevel("loud")
	assert.Error(t, err)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 30\nheight: 10\nturns: 4\n"), 0o600))

	cmd, _ := newTestCommand(t, func(cmd *cobra.Command, args []string) error { return nil }, "--width", "12")
	configPath = path
	require.NoError(t, cmd.Execute())

	config, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, 12, config.Width)
	assert.Equal(t, 10, config.Height)
	assert.Equal(t, 4, config.Turns)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	cmd, _ := newTestCommand(t, func(cmd *cobra.Command, args []string) error {
		_, err := loadConfig(cmd)
		return err
	}, "--alive=-")

	assert.ErrorIs(t, cmd.Execute(), utils.ErrInvalidConfig)
}

func TestRender_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.txt")
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0o600))

	cmd, out := newTestCommand(t, runRender, path, "--turns", "2")
	require.NoError(t, cmd.Execute())

	expected := "Turn 0:\n++-+\n+-++\n++-+\n-+--\n" +
		"Turn 1:\n++-+\n---+\n+--+\n+++-\n" +
		"Turn 2:\n--+-\n++-+\n+--+\n+++-\n"
	assert.Equal(t, expected, out.String())
}

func TestRender_FromStdin(t *testing.T) {
	cmd, out := newTestCommand(t, runRender, "-", "--turns", "1", "--alive", "#", "--dead", ".")
	cmd.SetIn(strings.NewReader("#.\n.#\n"))
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "Turn 0:\n#.\n.#\nTurn 1:\n..\n..\n", out.String())
}

func TestRender_InvalidGrid(t *testing.T) {
	cmd, _ := newTestCommand(t, runRender, "-")
	cmd.SetIn(strings.NewReader("++\n+\n"))
	assert.ErrorIs(t, cmd.Execute(), model.ErrInvalidFormat)
}

func TestRender_RandomWorld(t *testing.T) {
	cmd, out := newTestCommand(t, runRender, "--width", "5", "--height", "4", "--cells", "6", "--turns", "3", "--seed", "9")
	require.NoError(t, cmd.Execute())

	output := out.String()
	for _, label := range []string{"Turn 0:", "Turn 1:", "Turn 2:", "Turn 3:"} {
		assert.Contains(t, output, label)
	}
	assert.Equal(t, 6, strings.Count(strings.SplitN(output, "Turn 1:", 2)[0], "+"))
}

func TestSeedWorld(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height = 9, 9

	t.Run("pattern is centered", func(t *testing.T) {
		config := config
		config.Pattern = "block"
		world, err := seedWorld(config, nil)
		require.NoError(t, err)
		assert.Equal(t, []model.Location{{X: 3, Y: 4}, {X: 4, Y: 4}, {X: 3, Y: 3}, {X: 4, Y: 3}}, world.LivingLocations())
		assert.Equal(t, model.NewLocation(8, 8), world.MaxLocation())
	})

	t.Run("unknown pattern", func(t *testing.T) {
		config := config
		config.Pattern = "pulsar-ish"
		_, err := seedWorld(config, nil)
		assert.ErrorIs(t, err, model.ErrUnknownPattern)
	})

	t.Run("random cells", func(t *testing.T) {
		rng, _ := newRand(3)
		world, err := seedWorld(config, rng)
		require.NoError(t, err)
		assert.Equal(t, config.CellCount, world.Population())
	})
}

func TestCheckRestartConditions(t *testing.T) {
	config := utils.DefaultConfig()

	tests := []struct {
		name                         string
		living, stagnant, generation int
		wantRestart                  bool
		wantReason                   string
	}{
		{"extinct", 0, 0, 10, true, "extinction"},
		{"stagnant", 5, config.StagnationThreshold, 10, true, "stagnation"},
		{"periodic", 5, 0, periodicRefresh, true, "periodic refresh"},
		{"healthy", 5, 1, 10, false, ""},
		{"first generation", 5, 0, 0, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restart, reason := checkRestartConditions(tt.living, tt.stagnant, tt.generation, config)
			assert.Equal(t, tt.wantRestart, restart)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestGame_Run(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height = 6, 6
	config.Pattern = "blinker"
	config.FrameRate = 0
	config.MaxGenerations = 4
	config.AutoRestart = false

	var out bytes.Buffer
	metrics := utils.NewMetrics()
	g, err := initializeGame(&out, config, metrics)
	require.NoError(t, err)

	require.NoError(t, g.run(context.Background()))
	assert.Contains(t, out.String(), "Reached maximum generations limit (4)")
	assert.Contains(t, out.String(), "Gen: 4 | Living: 3")
	assert.Equal(t, 3, g.world.Population(), "a blinker keeps three cells")
}

func TestGame_RunStopsOnCancel(t *testing.T) {
	config := utils.DefaultConfig()
	config.FrameRate = 0
	config.MaxGenerations = 0

	var out bytes.Buffer
	g, err := initializeGame(&out, config, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, g.run(ctx))
	assert.Contains(t, out.String(), "Final stats: 0 generations")
}

func TestGame_RestartOnExtinction(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height = 5, 5
	config.CellCount = 1
	config.FrameRate = 0
	config.MaxGenerations = 2

	var out bytes.Buffer
	metrics := utils.NewMetrics()
	g, err := initializeGame(&out, config, metrics)
	require.NoError(t, err)

	require.NoError(t, g.run(context.Background()))
	assert.Contains(t, out.String(), "Status: Extinct")
}

func TestSurvey(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height = 8, 8
	config.CellCount = 20
	config.Turns = 30

	results, err := survey(context.Background(), config, 100, 6, 3)
	require.NoError(t, err)
	require.Len(t, results, 6)

	for i, r := range results {
		assert.Equal(t, int64(100+i), r.Seed)
		assert.Equal(t, 20, r.Initial)
		assert.Contains(t, []string{"extinct", "stable", "running"}, r.Outcome)
		assert.LessOrEqual(t, r.Generations, config.Turns)
		assert.GreaterOrEqual(t, r.Peak, r.Final)
	}

	again, err := survey(context.Background(), config, 100, 6, 1)
	require.NoError(t, err)
	assert.Equal(t, results, again, "the same seeds give the same outcomes")
}

func TestSurvey_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := survey(ctx, utils.DefaultConfig(), 1, 4, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulate_Outcomes(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height = 6, 6
	config.Turns = 50

	t.Run("block is stable", func(t *testing.T) {
		config := config
		config.Pattern = "block"
		result, err := simulate(context.Background(), config, 1)
		require.NoError(t, err)
		assert.Equal(t, "stable", result.Outcome)
		assert.Equal(t, 4, result.Final)
	})

	t.Run("lone cell dies out", func(t *testing.T) {
		config := config
		config.CellCount = 1
		result, err := simulate(context.Background(), config, 1)
		require.NoError(t, err)
		assert.Equal(t, "extinct", result.Outcome)
		assert.Equal(t, 1, result.Generations)
	})

	t.Run("zero turns stops immediately", func(t *testing.T) {
		config := config
		config.Pattern = "glider"
		config.Turns = 0
		result, err := simulate(context.Background(), config, 1)
		require.NoError(t, err)
		assert.Equal(t, "running", result.Outcome)
		assert.Equal(t, 0, result.Generations)
	})
}

func TestWriteSurvey(t *testing.T) {
	var out bytes.Buffer
	writeSurvey(&out, []surveyResult{
		{Seed: 1, Initial: 5, Final: 0, Peak: 5, Generations: 2, Outcome: "extinct"},
		{Seed: 2, Initial: 5, Final: 4, Peak: 6, Generations: 9, Outcome: "stable"},
	})

	assert.Contains(t, out.String(), "SEED")
	assert.Contains(t, out.String(), "2 worlds: 1 extinct, 1 stable, 0 still running")
}

func TestRender_PatternInSmallWorld(t *testing.T) {
	cmd, out := newTestCommand(t, runRender, "--pattern", "blinker", "--width", "3", "--height", "3", "--turns", "1")
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "Turn 0:\n---\n---\n+++\nTurn 1:\n---\n-+-\n-+-\n", out.String())
}
