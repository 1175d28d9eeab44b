package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
)

// Grid represents a rectangular board of cells stored as a flat
// row-major buffer. A cell is either alive (true) or dead (false).
// New cells are always initialized dead.
type Grid struct {
	width  int
	height int
	cells  []bool // length is always width*height, index = x + y*width
}

// NewGrid creates a new grid with the specified dimensions, all cells dead.
// Zero width or height yields a valid empty grid. Negative dimensions are
// a programming error and panic.
func NewGrid(width, height int) *Grid {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("model: negative grid dimensions %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// NewSquareGrid creates a new grid with equal width and height.
func NewSquareGrid(size int) *Grid {
	return NewGrid(size, size)
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// GetTotalCells returns the number of cells in the grid
func (g *Grid) GetTotalCells() int {
	return g.width * g.height
}

// GetAliveCells counts how many cells in the grid are alive
func (g *Grid) GetAliveCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// GetDeadCells counts how many cells in the grid are dead
func (g *Grid) GetDeadCells() int {
	return g.GetTotalCells() - g.GetAliveCells()
}

// index returns the linear buffer offset for (x, y). All coordinate
// access funnels through here after checkBounds has passed.
func (g *Grid) index(x, y int) int {
	return x + y*g.width
}

// checkBounds validates that (x, y) addresses a cell inside the grid.
func (g *Grid) checkBounds(x, y int) error {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return errors.Wrapf(ErrOutOfRange,
			"coordinate (%d,%d) outside %dx%d grid", x, y, g.width, g.height)
	}
	return nil
}

// Get returns the state of the cell at the desired coordinate.
func (g *Grid) Get(x, y int) (bool, error) {
	if err := g.checkBounds(x, y); err != nil {
		return false, errors.Wrap(err, "[Get]")
	}
	return g.cells[g.index(x, y)], nil
}

// Set overwrites the state of the cell at the desired coordinate.
func (g *Grid) Set(x, y int, alive bool) error {
	if err := g.checkBounds(x, y); err != nil {
		return errors.Wrap(err, "[Set]")
	}
	g.cells[g.index(x, y)] = alive
	return nil
}

// Resize changes the grid to the new dimensions in place. Content is
// preserved for every cell inside both the old and new bounds; cells
// introduced by growth are dead. No-op when the dimensions are unchanged.
// Negative dimensions panic, as in NewGrid.
func (g *Grid) Resize(newWidth, newHeight int) {
	if newWidth < 0 || newHeight < 0 {
		panic(fmt.Sprintf("model: negative resize dimensions %dx%d", newWidth, newHeight))
	}
	if newWidth == g.width && newHeight == g.height {
		return
	}

	next := make([]bool, newWidth*newHeight)
	if newWidth == g.width {
		// Row stride is unchanged, so the overlap is one contiguous run.
		copy(next, g.cells[:min(len(next), len(g.cells))])
	} else {
		// Width changed: every surviving row moves to a new stride.
		rows := min(newHeight, g.height)
		cols := min(newWidth, g.width)
		for y := 0; y < rows; y++ {
			copy(next[y*newWidth:y*newWidth+cols], g.cells[y*g.width:y*g.width+cols])
		}
	}

	g.cells = next
	g.width = newWidth
	g.height = newHeight
}

// ResizeSquare resizes the grid to equal width and height.
func (g *Grid) ResizeSquare(size int) {
	g.Resize(size, size)
}

// Crop extracts the sub-grid spanning [x0,x1) by [y0,y1) as a new grid.
// The origin must lie inside the source and the window must not be
// inverted or extend past the source bounds.
func (g *Grid) Crop(x0, y0, x1, y1 int) (*Grid, error) {
	if x1 < x0 || y1 < y0 {
		return nil, errors.Wrapf(ErrInvalidSize,
			"[Crop] inverted window (%d,%d)-(%d,%d)", x0, y0, x1, y1)
	}
	if x0 < 0 || x0 >= g.width || y0 < 0 || y0 >= g.height || x1 > g.width || y1 > g.height {
		return nil, errors.Wrapf(ErrOutOfRange,
			"[Crop] window (%d,%d)-(%d,%d) outside %dx%d grid", x0, y0, x1, y1, g.width, g.height)
	}

	cropped := NewGrid(x1-x0, y1-y0)
	for y := 0; y < cropped.height; y++ {
		copy(cropped.cells[y*cropped.width:(y+1)*cropped.width],
			g.cells[g.index(x0, y0+y):g.index(x1, y0+y)])
	}
	return cropped, nil
}

// Merge overlays other onto this grid with its top-left corner at (x0, y0).
// By default every destination cell in the overlay region takes the source
// value. With aliveOnly set, only dead destination cells can be flipped
// alive; an alive destination cell is never overwritten dead. The
// destination is not mutated at all when validation fails.
func (g *Grid) Merge(other *Grid, x0, y0 int, aliveOnly bool) error {
	if x0 < 0 || y0 < 0 {
		return errors.Wrapf(ErrOutOfRange, "[Merge] negative origin (%d,%d)", x0, y0)
	}
	if x0+other.width > g.width || y0+other.height > g.height {
		return errors.Wrapf(ErrInvalidSize,
			"[Merge] %dx%d overlay at (%d,%d) exceeds %dx%d grid",
			other.width, other.height, x0, y0, g.width, g.height)
	}

	for y := 0; y < other.height; y++ {
		for x := 0; x < other.width; x++ {
			src := other.cells[other.index(x, y)]
			dst := g.index(x0+x, y0+y)
			if aliveOnly {
				if src && !g.cells[dst] {
					g.cells[dst] = true
				}
			} else {
				g.cells[dst] = src
			}
		}
	}
	return nil
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	dup := NewGrid(g.width, g.height)
	copy(dup.cells, g.cells)
	return dup
}

// Randomize fills the grid with random living cells at the given density
func (g *Grid) Randomize(density float64) {
	for i := range g.cells {
		g.cells[i] = rand.Float64() < density
	}
}

// Fingerprint returns an MD5 hash of the current grid state, used for
// cycle detection by the game loop.
func (g *Grid) Fingerprint() string {
	h := md5.New()
	for _, alive := range g.cells {
		if alive {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
