package model

import "github.com/sheikhrachel/go-life/rules"

// Cell is the alive/dead state stored at one location of a World. It carries
// no location of its own; the World keys it.
type Cell struct {
	alive bool
}

// NewCell creates a cell in the given state
func NewCell(alive bool) *Cell {
	return &Cell{alive: alive}
}

// IsAlive returns the current state of the cell
func (c *Cell) IsAlive() bool {
	return c.alive
}

// Die marks the cell dead
func (c *Cell) Die() {
	c.alive = false
}

// IsAliveNextGeneration reports whether the cell lives in the next generation
// given its current count of living neighbors
func (c *Cell) IsAliveNextGeneration(neighborCount int) bool {
	return rules.ApplyConwayRules(neighborCount, c.alive)
}
