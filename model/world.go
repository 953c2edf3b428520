package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
)

// ErrInvalidCellCount is returned when a random world cannot hold the
// requested number of distinct living cells
var ErrInvalidCellCount = errors.New("invalid cell count")

// World is the full simulation state: every cell it has been told about,
// plus the bounding rectangle of every location ever set living.
//
// A location missing from the cell map is dead. The bounding rectangle only
// grows, and only through SetLivingAt. A World is not safe for concurrent use.
type World struct {
	cells map[Location]*Cell
	min   Location
	max   Location
}

// NewWorld creates an empty world whose bounding box is the origin
func NewWorld() *World {
	return Empty(Location{}, Location{})
}

// Empty creates a world with no cells bounded by the rectangle spanning
// both corners, in whichever order they are given
func Empty(minLocation, maxLocation Location) *World {
	return &World{
		cells: make(map[Location]*Cell),
		min:   MinCorner(minLocation, maxLocation),
		max:   MaxCorner(minLocation, maxLocation),
	}
}

// Random creates a world bounded by minLocation and maxLocation holding
// exactly cellCount distinct living cells at uniformly chosen locations
func Random(minLocation, maxLocation Location, cellCount int, rng *rand.Rand) (*World, error) {
	w := Empty(minLocation, maxLocation)
	width, height := w.Dimensions()
	if cellCount < 0 || cellCount > width*height {
		return nil, errors.Wrapf(ErrInvalidCellCount,
			"[Random] %d cells do not fit in a %dx%d world", cellCount, width, height)
	}

	for placed := 0; placed < cellCount; {
		loc := Location{
			X: w.min.X + rng.Intn(width),
			Y: w.min.Y + rng.Intn(height),
		}
		if w.IsAliveAt(loc) {
			continue
		}
		w.SetLivingAt(loc)
		placed++
	}
	return w, nil
}

// MinLocation returns the lower corner of the bounding box
func (w *World) MinLocation() Location {
	return w.min
}

// MaxLocation returns the upper corner of the bounding box
func (w *World) MaxLocation() Location {
	return w.max
}

// SetLivingAt places a living cell at loc and widens the bounding box to
// include it
func (w *World) SetLivingAt(loc Location) {
	w.min.X = min(w.min.X, loc.X)
	w.min.Y = min(w.min.Y, loc.Y)
	w.max.X = max(w.max.X, loc.X)
	w.max.Y = max(w.max.Y, loc.Y)

	w.cells[loc] = NewCell(true)
}

// SetDeadAt kills the cell at loc, recording a dead cell if none exists
func (w *World) SetDeadAt(loc Location) {
	if cell, ok := w.cells[loc]; ok {
		cell.Die()
		return
	}
	w.cells[loc] = NewCell(false)
}

// CellAt returns the cell at loc. A location that was never touched gets a
// dead cell recorded for it first, so every queried location keeps a cell.
func (w *World) CellAt(loc Location) *Cell {
	if cell, ok := w.cells[loc]; ok {
		return cell
	}
	w.SetDeadAt(loc)
	return w.cells[loc]
}

// IsAliveAt reports whether a living cell is recorded at loc. Unlike CellAt
// it never records anything.
func (w *World) IsAliveAt(loc Location) bool {
	cell, ok := w.cells[loc]
	return ok && cell.IsAlive()
}

// LivingLocations returns the location of every living cell in rendering
// order
func (w *World) LivingLocations() []Location {
	living := make([]Location, 0, len(w.cells))
	for loc, cell := range w.cells {
		if cell.IsAlive() {
			living = append(living, loc)
		}
	}
	SortLocations(living)
	return living
}

// Population returns the number of living cells
func (w *World) Population() (count int) {
	for _, cell := range w.cells {
		if cell.IsAlive() {
			count++
		}
	}
	return
}

// IsEmpty reports whether the world has no living cells
func (w *World) IsEmpty() bool {
	return w.Population() == 0
}

// Dimensions returns the width and height of the bounding box
func (w *World) Dimensions() (int, int) {
	return w.max.X - w.min.X + 1, w.max.Y - w.min.Y + 1
}

// DeadCellCount returns the number of dead cells in the bounding box,
// whether or not they have been recorded
func (w *World) DeadCellCount() int {
	width, height := w.Dimensions()
	return width*height - w.Population()
}

// livingNeighborCount counts the living neighbors of loc without recording
// anything
func (w *World) livingNeighborCount(loc Location) (count int) {
	for _, neighbor := range loc.Neighbors() {
		if w.IsAliveAt(neighbor) {
			count++
		}
	}
	return
}

// Tick advances the world one generation and returns it.
//
// Only locations inside the bounding box are evaluated, so nothing is born
// outside it. Every evaluation reads the current generation; results are
// committed once all of them are known.
func (w *World) Tick() *World {
	width, height := w.Dimensions()
	next := generations.Get(width, height)
	defer generations.Put(next)

	for y := range height {
		for x := range width {
			loc := Location{X: w.min.X + x, Y: w.min.Y + y}
			cell := Cell{alive: w.IsAliveAt(loc)}
			next.set(x, y, cell.IsAliveNextGeneration(w.livingNeighborCount(loc)))
		}
	}

	for y := range height {
		for x := range width {
			loc := Location{X: w.min.X + x, Y: w.min.Y + y}
			if next.get(x, y) {
				w.SetLivingAt(loc)
			} else {
				w.SetDeadAt(loc)
			}
		}
	}

	return w
}

// Clone returns an independent copy of the world
func (w *World) Clone() *World {
	clone := Empty(w.min, w.max)
	for loc, cell := range w.cells {
		clone.cells[loc] = NewCell(cell.IsAlive())
	}
	return clone
}

// Hash returns an MD5 fingerprint of the bounding box and living cells
func (w *World) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%d,%d:%d,%d;", w.min.X, w.min.Y, w.max.X, w.max.Y)
	for _, loc := range w.LivingLocations() {
		fmt.Fprintf(h, "%d,%d;", loc.X, loc.Y)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
