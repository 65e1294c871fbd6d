package model

import (
	"cmp"
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"slices"
)

// Cell is a coordinate on the unbounded grid
type Cell struct {
	X int
	Y int
}

// String formats the cell as (x,y)
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// State is an immutable set of live cells.
// Iteration order is the order cells were supplied in; it carries no meaning
// beyond making rendering and stepping deterministic.
type State struct {
	cells []Cell
	index map[Cell]struct{}
}

// NewState builds a State from the given cells. The input slice is copied and
// duplicate cells collapse to one.
func NewState(cells ...Cell) State {
	s := State{
		cells: make([]Cell, 0, len(cells)),
		index: make(map[Cell]struct{}, len(cells)),
	}
	for _, c := range cells {
		if _, ok := s.index[c]; ok {
			continue
		}
		s.index[c] = struct{}{}
		s.cells = append(s.cells, c)
	}
	return s
}

// Len returns the number of live cells
func (s State) Len() int {
	return len(s.cells)
}

// IsEmpty reports whether every cell is dead
func (s State) IsEmpty() bool {
	return len(s.cells) == 0
}

// Cells returns a copy of the live cells
func (s State) Cells() []Cell {
	return slices.Clone(s.cells)
}

// Contains reports whether cell is alive in s
func (s State) Contains(cell Cell) bool {
	_, ok := s.index[cell]
	return ok
}

// Contains reports whether cell is alive in state
func Contains(state State, cell Cell) bool {
	return state.Contains(cell)
}

// Equal reports whether both states hold the same set of live cells
func (s State) Equal(other State) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, c := range s.cells {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Translate returns a new State with every cell shifted by (dx, dy)
func (s State) Translate(dx, dy int) State {
	moved := make([]Cell, len(s.cells))
	for i, c := range s.cells {
		moved[i] = Cell{X: c.X + dx, Y: c.Y + dy}
	}
	return NewState(moved...)
}

// Sorted returns the live cells ordered by row, then column
func (s State) Sorted() []Cell {
	sorted := s.Cells()
	slices.SortFunc(sorted, func(a, b Cell) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return sorted
}

// Hash returns an MD5 digest of the live-cell set, independent of cell order
func (s State) Hash() string {
	h := md5.New()
	buf := make([]byte, 16)
	for _, c := range s.Sorted() {
		binary.BigEndian.PutUint64(buf[:8], uint64(int64(c.X)))
		binary.BigEndian.PutUint64(buf[8:], uint64(int64(c.Y)))
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
