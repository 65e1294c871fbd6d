package rules

const (
	// BirthNeighbors is the live-neighbor count that brings a cell to life
	// (and keeps a live one alive).
	BirthNeighbors = 3
	// SurvivalNeighbors is the additional live-neighbor count a cell that is
	// already alive needs to survive.
	SurvivalNeighbors = 2
)

// ApplyConwayRules reports whether a cell is alive in the next generation:
// BirthNeighbors live neighbors bring any cell to life, and a live cell also
// survives with SurvivalNeighbors.
func ApplyConwayRules(neighbors int, alive bool) bool {
	return neighbors == BirthNeighbors || (alive && neighbors == SurvivalNeighbors)
}
