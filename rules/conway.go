package rules

const (
	// MinStableNeighbors is the fewest neighbors a living cell needs to survive
	MinStableNeighbors = 2
	// MaxStableNeighbors is the most neighbors a living cell can have and survive
	MaxStableNeighbors = 3
	// FertileNeighbors is the exact neighbor count that brings a dead cell to life
	FertileNeighbors = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= MinStableNeighbors && neighbors <= MaxStableNeighbors
	}
	return neighbors == FertileNeighbors
}
