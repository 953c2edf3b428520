package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-life/model"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid config")

// Duration is a time.Duration that reads from either a duration string
// ("150ms") or an integer count of nanoseconds
type Duration time.Duration

// UnmarshalJSON accepts a duration string or a number of nanoseconds
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return d.set(raw)
}

// UnmarshalYAML accepts a duration string or a number of nanoseconds
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw interface{}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return d.set(raw)
}

// MarshalJSON writes the duration as a string such as "150ms"
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) set(raw interface{}) error {
	switch v := raw.(type) {
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(err, "[Duration] invalid duration %q", v)
		}
		*d = Duration(parsed)
	case float64:
		*d = Duration(v)
	case int:
		*d = Duration(v)
	default:
		return errors.Errorf("[Duration] unsupported value %v", raw)
	}
	return nil
}

// Config holds the configuration for the game
type Config struct {
	Width               int      `json:"width" yaml:"width"`
	Height              int      `json:"height" yaml:"height"`
	CellCount           int      `json:"cell_count" yaml:"cell_count"`
	Turns               int      `json:"turns" yaml:"turns"`
	FrameRate           Duration `json:"frame_rate" yaml:"frame_rate"`
	AliveChar           string   `json:"alive_char" yaml:"alive_char"`
	DeadChar            string   `json:"dead_char" yaml:"dead_char"`
	Pattern             string   `json:"pattern" yaml:"pattern"`
	Seed                int64    `json:"seed" yaml:"seed"`
	AutoRestart         bool     `json:"auto_restart" yaml:"auto_restart"`
	StagnationThreshold int      `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	InjectionCount      int      `json:"injection_count" yaml:"injection_count"`
	MaxGenerations      int      `json:"max_generations" yaml:"max_generations"`
	MetricsAddr         string   `json:"metrics_addr" yaml:"metrics_addr"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               21,
		Height:              21,
		CellCount:           50,
		Turns:               20,
		FrameRate:           Duration(150 * time.Millisecond),
		AliveChar:           "+",
		DeadChar:            "-",
		AutoRestart:         true,
		StagnationThreshold: 5,
		InjectionCount:      3,
		MaxGenerations:      1000,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by
// extension, on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first setting that cannot drive a game
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] world must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.CellCount < 0 || (c.Pattern == "" && c.CellCount > c.Width*c.Height):
		return errors.Wrapf(ErrInvalidConfig, "[Validate] cell_count %d does not fit in %dx%d", c.CellCount, c.Width, c.Height)
	case c.Turns < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] turns must not be negative, got %d", c.Turns)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate must not be negative, got %s", time.Duration(c.FrameRate))
	case utf8.RuneCountInString(c.AliveChar) != 1 || utf8.RuneCountInString(c.DeadChar) != 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] alive_char and dead_char must be single characters, got %q and %q", c.AliveChar, c.DeadChar)
	case c.AliveChar == c.DeadChar:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] alive_char and dead_char must differ, both are %q", c.AliveChar)
	case c.StagnationThreshold < 0 || c.InjectionCount < 0 || c.MaxGenerations < 0:
		return errors.Wrap(ErrInvalidConfig, "[Validate] stagnation_threshold, injection_count and max_generations must not be negative")
	}
	return nil
}

// Renderer returns the character renderer described by the config
func (c Config) Renderer() model.Renderer {
	r := model.DefaultRenderer()
	if alive, _ := utf8.DecodeRuneInString(c.AliveChar); alive != utf8.RuneError {
		r.Alive = alive
	}
	if dead, _ := utf8.DecodeRuneInString(c.DeadChar); dead != utf8.RuneError {
		r.Dead = dead
	}
	return r
}

// Bounds returns the bounding box corners for a Width x Height world
// anchored at the origin
func (c Config) Bounds() (model.Location, model.Location) {
	return model.NewLocation(0, 0), model.NewLocation(c.Width-1, c.Height-1)
}
