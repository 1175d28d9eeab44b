package zoo

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/conwaylab/golife/model"
)

// LoadDirectory loads every .gol and .bgol pattern file in dir, keyed by
// file name without extension. Files are parsed concurrently; the first
// failure aborts the load.
func LoadDirectory(dir string) (map[string]*model.Grid, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadDirectory] failed to read directory: %+v", dir)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".gol", ".bgol":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	var (
		eg    errgroup.Group
		grids = make([]*model.Grid, len(paths))
	)
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			var grid *model.Grid
			var loadErr error
			if filepath.Ext(path) == ".bgol" {
				grid, loadErr = LoadBinary(path)
			} else {
				grid, loadErr = LoadAscii(path)
			}
			if loadErr != nil {
				return loadErr
			}
			grids[i] = grid
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[LoadDirectory]")
	}

	loaded := make(map[string]*model.Grid, len(paths))
	for i, path := range paths {
		name := filepath.Base(path)
		loaded[strings.TrimSuffix(name, filepath.Ext(name))] = grids[i]
	}
	return loaded, nil
}
