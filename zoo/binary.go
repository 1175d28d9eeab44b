package zoo

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/conwaylab/golife/model"
)

// bgolHeader is the fixed-size prefix of a .bgol file.
type bgolHeader struct {
	Width  int32
	Height int32
}

// payloadBytes returns the packed size of a width x height cell payload,
// one bit per cell rounded up to whole bytes.
func payloadBytes(width, height int) int {
	return (width*height + 7) / 8
}

// LoadBinary parses a .bgol packed-binary file into a grid: two int32
// dimensions followed by the cells as a row-major bit stream, bit
// index = x + y*width, least-significant bit first within each byte.
// Trailing padding bits in the final byte are ignored.
func LoadBinary(path string) (*model.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadBinary] failed to open file: %+v", path)
	}
	defer f.Close()

	var header bgolHeader
	if err = binary.Read(f, binary.LittleEndian, &header); err != nil {
		return nil, errors.Wrapf(ErrFormat, "[LoadBinary] %s: short header: %v", path, err)
	}
	if header.Width < 0 || header.Height < 0 {
		return nil, errors.Wrapf(ErrFormat,
			"[LoadBinary] %s: negative dimensions %dx%d", path, header.Width, header.Height)
	}

	width, height := int(header.Width), int(header.Height)
	payload := make([]byte, payloadBytes(width, height))
	if _, err = io.ReadFull(f, payload); err != nil {
		return nil, errors.Wrapf(ErrFormat, "[LoadBinary] %s: short payload: %v", path, err)
	}

	grid := model.NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			bit := x + y*width
			if payload[bit/8]>>(bit%8)&1 == 1 {
				if err = grid.Set(x, y, true); err != nil {
					return nil, errors.Wrap(err, "[LoadBinary]")
				}
			}
		}
	}

	return grid, nil
}

// SaveBinary writes a grid to path in the .bgol packed-binary format.
func SaveBinary(path string, grid *model.Grid) error {
	width, height := grid.GetWidth(), grid.GetHeight()

	payload := make([]byte, payloadBytes(width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			alive, err := grid.Get(x, y)
			if err != nil {
				return errors.Wrap(err, "[SaveBinary]")
			}
			if alive {
				bit := x + y*width
				payload[bit/8] |= 1 << (bit % 8)
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[SaveBinary] failed to create file: %+v", path)
	}
	defer f.Close()

	header := bgolHeader{Width: int32(width), Height: int32(height)}
	if err = binary.Write(f, binary.LittleEndian, header); err != nil {
		return errors.Wrapf(err, "[SaveBinary] failed to write header: %+v", path)
	}
	if _, err = f.Write(payload); err != nil {
		return errors.Wrapf(err, "[SaveBinary] failed to write payload: %+v", path)
	}
	return nil
}
