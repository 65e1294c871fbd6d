package model

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

const (
	cellSeparator = " "
	rowTerminator = "\n"
)

// Renderer turns a state into rows of glyphs
type Renderer struct {
	Alive string
	Dead  string
}

// DefaultRenderer uses the default glyphs from utils.DefaultConfig
var DefaultRenderer = NewRenderer(utils.DefaultConfig())

// NewRenderer creates a renderer using the glyphs from config
func NewRenderer(config utils.Config) Renderer {
	return Renderer{Alive: config.AliveGlyph, Dead: config.DeadGlyph}
}

// PrintCell returns the glyph for cell
func (r Renderer) PrintCell(cell Cell, state State) string {
	if Contains(state, cell) {
		return r.Alive
	}
	return r.Dead
}

// PrintCells renders the bounding box of state, highest row first.
// An empty state renders as a single dead cell.
func (r Renderer) PrintCells(state State) string {
	var (
		sb  strings.Builder
		box = Corners(state)
		row = make([]string, 0, box.Width())
	)

	for y := box.TopRight.Y; y >= box.BottomLeft.Y; y-- {
		row = row[:0]
		for x := box.BottomLeft.X; x <= box.TopRight.X; x++ {
			row = append(row, r.PrintCell(Cell{X: x, Y: y}, state))
		}
		sb.WriteString(strings.Join(row, cellSeparator))
		sb.WriteString(rowTerminator)
	}
	return sb.String()
}

// Display writes the rendered state to w
func (r Renderer) Display(w io.Writer, state State) error {
	if _, err := io.WriteString(w, r.PrintCells(state)); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	return nil
}

// PrintCell returns the default glyph for cell
func PrintCell(cell Cell, state State) string {
	return DefaultRenderer.PrintCell(cell, state)
}

// PrintCells renders state with the default glyphs
func PrintCells(state State) string {
	return DefaultRenderer.PrintCells(state)
}
