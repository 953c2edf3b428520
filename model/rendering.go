package model

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	defaultAliveChar = '+'
	defaultDeadChar  = '-'

	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClearScreen = "\033[H\033[2J"
)

// Renderer converts worlds to and from character grids, one character per
// cell of the bounding box
type Renderer struct {
	Alive rune
	Dead  rune
}

// DefaultRenderer renders living cells as '+' and dead cells as '-'
func DefaultRenderer() Renderer {
	return Renderer{Alive: defaultAliveChar, Dead: defaultDeadChar}
}

// Render draws the bounding box of w, top row (largest y) first. Rows are
// joined with newlines and there is no trailing newline.
func (r Renderer) Render(w *World) string {
	var (
		lower, upper  = w.MinLocation(), w.MaxLocation()
		width, height = w.Dimensions()
		sb            strings.Builder
	)
	sb.Grow((width + 1) * height)

	for y := upper.Y; y >= lower.Y; y-- {
		if y != upper.Y {
			sb.WriteByte('\n')
		}
		for x := lower.X; x <= upper.X; x++ {
			if w.IsAliveAt(Location{X: x, Y: y}) {
				sb.WriteRune(r.Alive)
			} else {
				sb.WriteRune(r.Dead)
			}
		}
	}
	return sb.String()
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	out      io.Writer
	terminal bool
}

// NewTerminalRenderer creates a renderer writing to out. Screen clearing is
// only emitted when out is a terminal.
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	r := &TerminalRenderer{out: out}
	if f, ok := out.(*os.File); ok {
		r.terminal = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return r
}

// Display renders the world's bounding box with block glyphs
func (r *TerminalRenderer) Display(w *World) {
	lower, upper := w.MinLocation(), w.MaxLocation()
	for y := upper.Y; y >= lower.Y; y-- {
		for x := lower.X; x <= upper.X; x++ {
			if w.IsAliveAt(Location{X: x, Y: y}) {
				fmt.Fprint(r.out, gridPosBlock)
			} else {
				fmt.Fprint(r.out, gridPosEmpty)
			}
		}
		fmt.Fprintln(r.out)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	if !r.terminal {
		return
	}
	fmt.Fprint(r.out, ansiClearScreen)
}
