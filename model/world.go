package model

import (
	"fmt"

	"github.com/conwaylab/golife/rules"
)

// World drives the cellular automaton over two equally sized grids,
// double-buffering the current and next generation. Only the current
// generation is visible externally. A World is not safe for concurrent
// use; callers must serialize access.
type World struct {
	current *Grid
	next    *Grid
}

// NewWorld creates a world of the given dimensions with all cells dead.
func NewWorld(width, height int) *World {
	return &World{
		current: NewGrid(width, height),
		next:    NewGrid(width, height),
	}
}

// NewSquareWorld creates a world with equal width and height.
func NewSquareWorld(size int) *World {
	return NewWorld(size, size)
}

// NewWorldFromGrid creates a world that adopts the provided grid as its
// starting generation. The caller hands over ownership of the grid.
func NewWorldFromGrid(initial *Grid) *World {
	return &World{
		current: initial,
		next:    NewGrid(initial.GetWidth(), initial.GetHeight()),
	}
}

// GetWidth returns the width of the current generation
func (w *World) GetWidth() int { return w.current.GetWidth() }

// GetHeight returns the height of the current generation
func (w *World) GetHeight() int { return w.current.GetHeight() }

// GetTotalCells returns the number of cells in the current generation
func (w *World) GetTotalCells() int { return w.current.GetTotalCells() }

// GetAliveCells counts the alive cells in the current generation
func (w *World) GetAliveCells() int { return w.current.GetAliveCells() }

// GetDeadCells counts the dead cells in the current generation
func (w *World) GetDeadCells() int { return w.current.GetDeadCells() }

// GetState returns the current generation. The grid remains owned by the
// world; mutating it edits the live generation.
func (w *World) GetState() *Grid { return w.current }

// Resize resizes both generation buffers, preserving current content per
// Grid.Resize semantics. The buffers always end up dimension-equal.
func (w *World) Resize(newWidth, newHeight int) {
	w.current.Resize(newWidth, newHeight)
	w.next.Resize(newWidth, newHeight)
}

// ResizeSquare resizes the world to equal width and height.
func (w *World) ResizeSquare(size int) {
	w.Resize(size, size)
}

// countNeighbors counts the alive cells among the 8 positions surrounding
// (x, y). Without wrapping, positions outside the grid contribute nothing;
// with toroidal topology they wrap to the opposite edge.
func (w *World) countNeighbors(x, y int, toroidal bool) int {
	g := w.current
	count := 0

	if toroidal {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx := ((x+dx)%g.width + g.width) % g.width
				ny := ((y+dy)%g.height + g.height) % g.height
				if g.cells[g.index(nx, ny)] {
					count++
				}
			}
		}
		return count
	}

	// Clamp the 3x3 window to the grid instead of testing each neighbor.
	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.cells[g.index(nx, ny)] {
				count++
			}
		}
	}
	return count
}

// Step advances the world by one generation. Every next-state cell is
// computed from the unmodified current generation, then the two buffers
// are exchanged with a pointer swap rather than a copy.
func (w *World) Step(toroidal bool) {
	cur, nxt := w.current, w.next
	for y := 0; y < cur.height; y++ {
		for x := 0; x < cur.width; x++ {
			idx := cur.index(x, y)
			nxt.cells[idx] = rules.ApplyConwayRules(
				w.countNeighbors(x, y, toroidal), cur.cells[idx])
		}
	}
	w.current, w.next = nxt, cur
}

// Advance runs Step the given number of times. Zero steps is a no-op;
// negative steps is a programming error and panics.
func (w *World) Advance(steps int, toroidal bool) {
	if steps < 0 {
		panic(fmt.Sprintf("model: negative step count %d", steps))
	}
	for i := 0; i < steps; i++ {
		w.Step(toroidal)
	}
}
