package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("empty input gives an empty world", func(t *testing.T) {
		w, err := Parse("")
		require.NoError(t, err)
		assert.True(t, w.IsEmpty())
	})

	t.Run("lone living cell is at the origin", func(t *testing.T) {
		w := mustParse(t, "+")
		assert.True(t, w.IsAliveAt(origin))
	})

	t.Run("grid size dictates dimensions", func(t *testing.T) {
		tests := []struct {
			grid          string
			width, height int
		}{
			{"+", 1, 1},
			{"+-", 2, 1},
			{"+\n-", 1, 2},
			{"+-\n-+", 2, 2},
			{"---\n---", 3, 2},
		}
		for _, tt := range tests {
			width, height := mustParse(t, tt.grid).Dimensions()
			assert.Equal(t, tt.width, width, tt.grid)
			assert.Equal(t, tt.height, height, tt.grid)
		}
	})

	t.Run("last row is y zero", func(t *testing.T) {
		w := mustParse(t, "-+-\n+--\n-++")
		expected := map[Location]bool{
			{0, 2}: false, {1, 2}: true, {2, 2}: false,
			{0, 1}: true, {1, 1}: false, {2, 1}: false,
			{0, 0}: false, {1, 0}: true, {2, 0}: true,
		}
		for loc, alive := range expected {
			assert.Equal(t, alive, w.IsAliveAt(loc), "location %s", loc)
		}
	})

	t.Run("trailing newline is ignored", func(t *testing.T) {
		w := mustParse(t, "+-\n-+\n")
		width, height := w.Dimensions()
		assert.Equal(t, 2, width)
		assert.Equal(t, 2, height)
	})

	t.Run("custom characters", func(t *testing.T) {
		w, err := Renderer{Alive: '#', Dead: '.'}.Parse(".#\n#.")
		require.NoError(t, err)
		assert.Equal(t, []Location{{1, 1}, {0, 0}}, w.LivingLocations())
	})
}

func TestParse_InvalidFormat(t *testing.T) {
	for name, grid := range map[string]string{
		"ragged rows":           "++\n+",
		"longer later row":      "+\n++",
		"unknown character":     "+x",
		"empty first row":       "\n+",
		"blank line in between": "+\n\n+",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(grid)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}
