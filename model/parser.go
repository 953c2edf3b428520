package model

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrInvalidFormat is returned when a character grid cannot be read as a world
var ErrInvalidFormat = errors.New("invalid format")

// Parse reads a grid drawn with the default characters
func Parse(text string) (*World, error) {
	return DefaultRenderer().Parse(text)
}

// Parse reads a grid drawn by Render back into a world. The last row is
// y = 0 and the first column is x = 0; the bounding box spans the whole grid
// so that all-dead borders survive a round trip. Empty input yields an
// empty world.
func (r Renderer) Parse(text string) (*World, error) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return NewWorld(), nil
	}

	var (
		rows   = strings.Split(text, "\n")
		height = len(rows)
		width  = utf8.RuneCountInString(rows[0])
	)
	if width == 0 {
		return nil, errors.Wrap(ErrInvalidFormat, "[Parse] first row is empty")
	}

	w := Empty(Location{}, Location{X: width - 1, Y: height - 1})
	for i, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, errors.Wrapf(ErrInvalidFormat,
				"[Parse] row %d has %d cells, expected %d", i, n, width)
		}

		y := height - 1 - i
		x := 0
		for _, ch := range row {
			switch ch {
			case r.Alive:
				w.SetLivingAt(Location{X: x, Y: y})
			case r.Dead:
			default:
				return nil, errors.Wrapf(ErrInvalidFormat,
					"[Parse] unexpected character %q at row %d, column %d", ch, i, x)
			}
			x++
		}
	}
	return w, nil
}
