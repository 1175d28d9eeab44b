package zoo

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/conwaylab/golife/model"
)

const (
	asciiAlive = '#'
	asciiDead  = ' '
)

// ErrFormat is returned when a pattern file violates its format: bad
// header, negative dimensions, missing newline, or an invalid cell byte.
var ErrFormat = errors.New("malformed pattern file")

// LoadAscii parses a .gol ascii file into a grid. The file starts with a
// "<width> <height>" header line, followed by height lines of exactly
// width cell characters each, every line newline-terminated.
func LoadAscii(path string) (*model.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadAscii] failed to read file: %+v", path)
	}

	nl := bytes.IndexByte(data, '\n')
	if nl < 0 {
		return nil, errors.Wrapf(ErrFormat, "[LoadAscii] %s: header line not terminated", path)
	}

	var width, height int
	if _, err = fmt.Sscanf(string(data[:nl]), "%d %d", &width, &height); err != nil {
		return nil, errors.Wrapf(ErrFormat, "[LoadAscii] %s: bad header %q", path, data[:nl])
	}
	if width < 0 || height < 0 {
		return nil, errors.Wrapf(ErrFormat, "[LoadAscii] %s: negative dimensions %dx%d", path, width, height)
	}

	grid := model.NewGrid(width, height)
	pos := nl + 1
	for y := 0; y < height; y++ {
		// Each row needs width cell bytes plus its terminating newline.
		if pos+width+1 > len(data) {
			return nil, errors.Wrapf(ErrFormat, "[LoadAscii] %s: truncated at row %d", path, y)
		}
		for x := 0; x < width; x++ {
			switch data[pos+x] {
			case asciiAlive:
				if err = grid.Set(x, y, true); err != nil {
					return nil, errors.Wrap(err, "[LoadAscii]")
				}
			case asciiDead:
				// already dead
			default:
				return nil, errors.Wrapf(ErrFormat,
					"[LoadAscii] %s: invalid cell byte %q at (%d,%d)", path, data[pos+x], x, y)
			}
		}
		if data[pos+width] != '\n' {
			return nil, errors.Wrapf(ErrFormat, "[LoadAscii] %s: row %d not newline-terminated", path, y)
		}
		pos += width + 1
	}

	return grid, nil
}

// SaveAscii writes a grid to path in the .gol ascii format.
func SaveAscii(path string, grid *model.Grid) error {
	var b strings.Builder
	width, height := grid.GetWidth(), grid.GetHeight()
	b.Grow((width+1)*height + 16)

	fmt.Fprintf(&b, "%d %d\n", width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			alive, err := grid.Get(x, y)
			if err != nil {
				return errors.Wrap(err, "[SaveAscii]")
			}
			if alive {
				b.WriteByte(asciiAlive)
			} else {
				b.WriteByte(asciiDead)
			}
		}
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return errors.Wrapf(err, "[SaveAscii] failed to write file: %+v", path)
	}
	return nil
}
