package model

import (
	"fmt"
	"iter"
	"strings"
)

// TurnRenderings lazily yields one labeled rendering per generation, from
// turn 0 (the world as given) through turn `turns`. Each turn after the
// first ticks w once, so the sequence can only be walked once per world.
func TurnRenderings(w *World, turns int, r Renderer) iter.Seq[string] {
	return func(yield func(string) bool) {
		for turn := range turns + 1 {
			if turn > 0 {
				w = w.Tick()
			}
			if !yield(fmt.Sprintf("Turn %d:\n%s", turn, r.Render(w))) {
				return
			}
		}
	}
}

// RenderLife renders every turn of TurnRenderings, each followed by a newline
func RenderLife(w *World, turns int, r Renderer) string {
	var sb strings.Builder
	for rendering := range TurnRenderings(w, turns, r) {
		sb.WriteString(rendering)
		sb.WriteByte('\n')
	}
	return sb.String()
}
