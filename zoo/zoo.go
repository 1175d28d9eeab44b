// Package zoo constructs grids containing well-known Game of Life
// creatures and converts grids to and from the .gol ascii and .bgol
// packed-binary file formats. It only consumes the public Grid surface.
package zoo

import "github.com/conwaylab/golife/model"

// spawn builds a grid of the given size with the listed cells alive.
func spawn(width, height int, alive [][2]int) *model.Grid {
	g := model.NewGrid(width, height)
	for _, c := range alive {
		// Coordinates are hardcoded inside the pattern's bounding box.
		_ = g.Set(c[0], c[1], true)
	}
	return g
}

// Glider returns a 3x3 grid containing a glider.
// https://www.conwaylife.com/wiki/Glider
func Glider() *model.Grid {
	return spawn(3, 3, [][2]int{
		{1, 0},
		{2, 1},
		{0, 2}, {1, 2}, {2, 2},
	})
}

// RPentomino returns a 3x3 grid containing an r-pentomino.
// https://www.conwaylife.com/wiki/R-pentomino
func RPentomino() *model.Grid {
	return spawn(3, 3, [][2]int{
		{1, 0}, {2, 0},
		{0, 1}, {1, 1},
		{1, 2},
	})
}

// LightweightSpaceship returns a 5x4 grid containing a lightweight
// spaceship. https://www.conwaylife.com/wiki/Lightweight_spaceship
func LightweightSpaceship() *model.Grid {
	return spawn(5, 4, [][2]int{
		{1, 0}, {4, 0},
		{0, 1},
		{0, 2}, {4, 2},
		{0, 3}, {1, 3}, {2, 3}, {3, 3},
	})
}
