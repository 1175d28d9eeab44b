package model

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	cellAliveChar = '#'
	cellDeadChar  = ' '

	clearCmd = "clear"
)

// String renders the grid as bordered ascii: a +---+ line above and below,
// each row wrapped in pipes, alive cells as '#' and dead cells as spaces.
// This rendering is display-only and is not a parseable format.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 3) * (g.height + 2))

	border := "+" + strings.Repeat("-", g.width) + "+\n"
	b.WriteString(border)
	for y := 0; y < g.height; y++ {
		b.WriteByte('|')
		for x := 0; x < g.width; x++ {
			if g.cells[g.index(x, y)] {
				b.WriteByte(cellAliveChar)
			} else {
				b.WriteByte(cellDeadChar)
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)

	return b.String()
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders the world's current generation to the terminal
func (r *TerminalRenderer) Display(w *World) {
	fmt.Print(w.GetState().String())
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
