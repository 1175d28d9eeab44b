package rules

// Population limits for survival under Conway's rules. An alive cell
// survives with a neighbor count inside [LowerPopulationLimit,
// UpperPopulationLimit]; a dead cell spawns at exactly
// UpperPopulationLimit neighbors.
const (
	LowerPopulationLimit = 2
	UpperPopulationLimit = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == LowerPopulationLimit) || neighbors == UpperPopulationLimit
}
