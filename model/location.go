package model

import (
	"fmt"
	"slices"
)

// neighborOffsets are the Moore neighborhood offsets, excluding (0, 0)
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Location is an immutable grid coordinate. It is comparable, so two
// locations with the same coordinates are the same map key.
type Location struct {
	X int
	Y int
}

// NewLocation creates a location at (x, y)
func NewLocation(x, y int) Location {
	return Location{X: x, Y: y}
}

// Coordinates returns the (x, y) pair
func (l Location) Coordinates() (int, int) {
	return l.X, l.Y
}

// Neighbors returns the 8 locations adjacent to l
func (l Location) Neighbors() []Location {
	neighbors := make([]Location, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		neighbors = append(neighbors, Location{X: l.X + offset[0], Y: l.Y + offset[1]})
	}
	return neighbors
}

func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.X, l.Y)
}

// MinCorner returns the location holding the smallest x and smallest y found
// in locs. It returns the origin when locs is empty.
func MinCorner(locs ...Location) Location {
	if len(locs) == 0 {
		return Location{}
	}
	corner := locs[0]
	for _, l := range locs[1:] {
		corner.X = min(corner.X, l.X)
		corner.Y = min(corner.Y, l.Y)
	}
	return corner
}

// MaxCorner returns the location holding the largest x and largest y found
// in locs. It returns the origin when locs is empty.
func MaxCorner(locs ...Location) Location {
	if len(locs) == 0 {
		return Location{}
	}
	corner := locs[0]
	for _, l := range locs[1:] {
		corner.X = max(corner.X, l.X)
		corner.Y = max(corner.Y, l.Y)
	}
	return corner
}

// SortLocations orders locs in place the way a rendering reads them:
// descending y, then ascending x
func SortLocations(locs []Location) {
	slices.SortFunc(locs, func(a, b Location) int {
		if a.Y != b.Y {
			return b.Y - a.Y
		}
		return a.X - b.X
	})
}

// LocationsBetween lists every location of the inclusive rectangle spanned by
// lower and upper, in rendering order
func LocationsBetween(lower, upper Location) []Location {
	if upper.X < lower.X || upper.Y < lower.Y {
		return nil
	}

	locs := make([]Location, 0, (upper.X-lower.X+1)*(upper.Y-lower.Y+1))
	for y := upper.Y; y >= lower.Y; y-- {
		for x := lower.X; x <= upper.X; x++ {
			locs = append(locs, Location{X: x, Y: y})
		}
	}
	return locs
}
