package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// WillBeAlive reports whether cell is alive in the generation after state
func WillBeAlive(cell Cell, state State) bool {
	return rules.ApplyConwayRules(CountLivingNeighbors(cell, state), Contains(state, cell))
}

// CalculateNext calculates the next generation by scanning the bounding box
// of state grown by one cell on every side
func CalculateNext(state State) State {
	box := Corners(state).Expand(1)
	return NewState(nextInRows(state, box, box.BottomLeft.Y, box.TopRight.Y)...)
}

// CalculateNextParallel calculates the same generation as CalculateNext,
// splitting the rows of the scanned area across workers. Bands are joined in
// row order so the result is identical to the sequential one.
func CalculateNextParallel(state State, workers int) (State, error) {
	box := Corners(state).Expand(1)
	height := box.Height()
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, height)

	var (
		eg            errgroup.Group
		rowsPerWorker = (height + workers - 1) / workers // Ceiling division
		bands         = make([][]Cell, workers)
	)

	for i := range workers {
		var (
			startRow = box.BottomLeft.Y + i*rowsPerWorker
			endRow   = min(startRow+rowsPerWorker-1, box.TopRight.Y)
		)
		if startRow > box.TopRight.Y {
			break
		}

		eg.Go(func() error {
			bands[i] = nextInRows(state, box, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return State{}, errors.Wrap(err, "[CalculateNextParallel] worker failed")
	}

	var cells []Cell
	for _, band := range bands {
		cells = append(cells, band...)
	}
	return NewState(cells...), nil
}

// NextGeneration calculates the next generation based on configuration
func NextGeneration(state State, config utils.Config) (State, error) {
	if config.UseParallel {
		return CalculateNextParallel(state, config.Workers)
	}
	return CalculateNext(state), nil
}

// nextInRows returns the cells of rows [fromY, toY] within box that are alive
// in the next generation, lowest row first
func nextInRows(state State, box BoundingBox, fromY, toY int) []Cell {
	var next []Cell
	for y := fromY; y <= toY; y++ {
		for x := box.BottomLeft.X; x <= box.TopRight.X; x++ {
			if c := (Cell{X: x, Y: y}); WillBeAlive(c, state) {
				next = append(next, c)
			}
		}
	}
	return next
}
