package model

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned for a pattern name that is not registered
var ErrUnknownPattern = errors.New("unknown pattern")

// patterns are drawn top row first, the same way Render draws them
var patterns = map[string][]string{
	"glider": {
		"-+-",
		"--+",
		"+++",
	},
	"blinker": {
		"+++",
	},
	"block": {
		"++",
		"++",
	},
	"beacon": {
		"++--",
		"++--",
		"--++",
		"--++",
	},
	"toad": {
		"-+++",
		"+++-",
	},
}

// PatternNames returns the registered pattern names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// AddPattern sets the named pattern living in w with its lower-left corner
// at origin
func AddPattern(w *World, name string, origin Location) error {
	rows, ok := patterns[strings.ToLower(name)]
	if !ok {
		return errors.Wrapf(ErrUnknownPattern, "[AddPattern] %q", name)
	}

	for i, row := range rows {
		y := origin.Y + len(rows) - 1 - i
		for x, ch := range row {
			if ch == defaultAliveChar {
				w.SetLivingAt(Location{X: origin.X + x, Y: y})
			}
		}
	}
	return nil
}
