package model

// Rotate returns a copy of the grid rotated by rotation x 90 degrees
// clockwise. Any integer is accepted, including negative values; the
// amount is normalized into [0,3] and dispatched to the flip/transpose
// primitives, so the cost never depends on the magnitude of rotation.
func (g *Grid) Rotate(rotation int) *Grid {
	// True mathematical modulus, Go's % keeps the sign of the dividend.
	r := ((rotation % 4) + 4) % 4

	switch r {
	case 1:
		// 90 degrees: transpose then flip across the vertical axis
		return g.transpose().flipHorizontal()
	case 2:
		// 180 degrees: flip across both axes
		return g.flipVertical().flipHorizontal()
	case 3:
		// 270 degrees: transpose then flip across the horizontal axis
		return g.transpose().flipVertical()
	default:
		return g.Clone()
	}
}

// flipHorizontal returns a copy mirrored across the vertical axis
// (column order reversed). A single-column grid is flip-invariant.
func (g *Grid) flipHorizontal() *Grid {
	if g.width == 1 {
		return g.Clone()
	}

	flipped := NewGrid(g.width, g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			flipped.cells[flipped.index(x, y)] = g.cells[g.index(g.width-1-x, y)]
		}
	}
	return flipped
}

// flipVertical returns a copy mirrored across the horizontal axis
// (row order reversed). A single-row grid is flip-invariant.
func (g *Grid) flipVertical() *Grid {
	if g.height == 1 {
		return g.Clone()
	}

	flipped := NewGrid(g.width, g.height)
	for y := 0; y < g.height; y++ {
		copy(flipped.cells[y*g.width:(y+1)*g.width],
			g.cells[(g.height-1-y)*g.width:(g.height-y)*g.width])
	}
	return flipped
}

// transpose returns a copy reflected across the main diagonal, swapping
// the grid dimensions.
func (g *Grid) transpose() *Grid {
	swapped := NewGrid(g.height, g.width)
	for y := 0; y < swapped.height; y++ {
		for x := 0; x < swapped.width; x++ {
			swapped.cells[swapped.index(x, y)] = g.cells[g.index(y, x)]
		}
	}
	return swapped
}
