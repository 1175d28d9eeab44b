package model

import "testing"

func TestWorldBuffersMatchDimensions(t *testing.T) {
	w := NewWorld(5, 3)
	if w.GetWidth() != 5 || w.GetHeight() != 3 || w.GetTotalCells() != 15 {
		t.Fatalf("world reports %dx%d/%d cells, expected 5x3/15",
			w.GetWidth(), w.GetHeight(), w.GetTotalCells())
	}
	w.Resize(7, 7)
	if w.GetWidth() != 7 || w.GetHeight() != 7 {
		t.Fatalf("world reports %dx%d after resize, expected 7x7", w.GetWidth(), w.GetHeight())
	}
	// The hidden buffer must have been resized too: stepping after a
	// resize writes the full new extent.
	w.Step(false)
	if w.GetWidth() != 7 || w.GetHeight() != 7 {
		t.Fatal("buffer swap after resize exposed a stale grid")
	}
}

func TestWorldAdoptsInitialGrid(t *testing.T) {
	g := NewSquareGrid(4)
	mustSet(t, g, 1, 1, true)
	w := NewWorldFromGrid(g)
	if w.GetAliveCells() != 1 {
		t.Fatalf("adopted world has %d alive cells, expected 1", w.GetAliveCells())
	}
	if w.GetState() != g {
		t.Fatal("world did not adopt the caller's grid as current state")
	}
}

func TestLoneCellDies(t *testing.T) {
	w := NewSquareWorld(3)
	mustSet(t, w.GetState(), 1, 1, true)
	w.Step(false)
	if w.GetAliveCells() != 0 {
		t.Fatalf("isolated cell survived: %d alive after step", w.GetAliveCells())
	}
}

func TestBlinkerOscillates(t *testing.T) {
	w := NewSquareWorld(5)
	for _, c := range [][2]int{{1, 2}, {2, 2}, {3, 2}} {
		mustSet(t, w.GetState(), c[0], c[1], true)
	}

	w.Step(false)
	for _, c := range [][2]int{{2, 1}, {2, 2}, {2, 3}} {
		if !mustGet(t, w.GetState(), c[0], c[1]) {
			t.Fatalf("blinker cell (%d,%d) dead after first step", c[0], c[1])
		}
	}
	if w.GetAliveCells() != 3 {
		t.Fatalf("blinker has %d alive cells after first step, expected 3", w.GetAliveCells())
	}

	w.Step(false)
	for _, c := range [][2]int{{1, 2}, {2, 2}, {3, 2}} {
		if !mustGet(t, w.GetState(), c[0], c[1]) {
			t.Fatalf("blinker cell (%d,%d) dead after second step", c[0], c[1])
		}
	}
}

func TestBlockIsStill(t *testing.T) {
	w := NewSquareWorld(4)
	for _, c := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		mustSet(t, w.GetState(), c[0], c[1], true)
	}
	w.Advance(3, false)
	for _, c := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		if !mustGet(t, w.GetState(), c[0], c[1]) {
			t.Fatalf("block cell (%d,%d) died", c[0], c[1])
		}
	}
	if w.GetAliveCells() != 4 {
		t.Fatalf("block has %d alive cells, expected 4", w.GetAliveCells())
	}
}

// glider phase used throughout: .#. / ..# / ###
func placeGlider(t *testing.T, g *Grid, x0, y0 int) {
	t.Helper()
	for _, c := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		mustSet(t, g, x0+c[0], y0+c[1], true)
	}
}

func TestGliderTranslatesDiagonally(t *testing.T) {
	w := NewSquareWorld(8)
	placeGlider(t, w.GetState(), 1, 1)

	w.Advance(4, false)

	want := NewSquareGrid(8)
	placeGlider(t, want, 2, 2)
	gridsEqual(t, w.GetState(), want)
}

func TestToroidalWrapAtCorner(t *testing.T) {
	// Three corners alive: under wrapping they are all neighbors of
	// (0,0), so it spawns; without wrapping (0,0) sees nothing.
	build := func() *World {
		w := NewSquareWorld(3)
		for _, c := range [][2]int{{2, 0}, {0, 2}, {2, 2}} {
			mustSet(t, w.GetState(), c[0], c[1], true)
		}
		return w
	}

	flat := build()
	flat.Step(false)
	if mustGet(t, flat.GetState(), 0, 0) {
		t.Fatal("corner cell spawned without toroidal wrapping")
	}

	wrapped := build()
	wrapped.Step(true)
	if !mustGet(t, wrapped.GetState(), 0, 0) {
		t.Fatal("corner cell did not spawn with toroidal wrapping")
	}
}

func TestToroidalWrapAtEdges(t *testing.T) {
	// A vertical blinker crossing the top edge of a 5x5 torus: cells at
	// (2,4), (2,0), (2,1) form a line through the seam and must oscillate
	// into (1,0), (2,0), (3,0).
	w := NewSquareWorld(5)
	for _, c := range [][2]int{{2, 4}, {2, 0}, {2, 1}} {
		mustSet(t, w.GetState(), c[0], c[1], true)
	}

	w.Step(true)
	for _, c := range [][2]int{{1, 0}, {2, 0}, {3, 0}} {
		if !mustGet(t, w.GetState(), c[0], c[1]) {
			t.Fatalf("wrapped blinker cell (%d,%d) dead after step", c[0], c[1])
		}
	}
	if w.GetAliveCells() != 3 {
		t.Fatalf("wrapped blinker has %d alive cells, expected 3", w.GetAliveCells())
	}
}

func TestAdvanceZeroIsNoOp(t *testing.T) {
	w := NewSquareWorld(4)
	mustSet(t, w.GetState(), 1, 1, true)
	before := w.GetState().Fingerprint()
	w.Advance(0, false)
	if w.GetState().Fingerprint() != before {
		t.Fatal("Advance(0) changed the world")
	}
}

func TestAdvanceNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Advance(-1) did not panic")
		}
	}()
	NewSquareWorld(3).Advance(-1, false)
}

func TestStepSwapsBuffers(t *testing.T) {
	w := NewSquareWorld(4)
	before := w.GetState()
	w.Step(false)
	if w.GetState() == before {
		t.Fatal("current state grid was not exchanged by Step")
	}
	w.Step(false)
	if w.GetState() != before {
		t.Fatal("two steps should swap the original buffer back in")
	}
}
