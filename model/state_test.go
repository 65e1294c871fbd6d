package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateCopiesAndDeduplicates(t *testing.T) {
	cells := []Cell{{1, 1}, {2, 1}, {1, 1}}
	s := NewState(cells...)

	require.Equal(t, 2, s.Len())
	assert.Equal(t, []Cell{{1, 1}, {2, 1}}, s.Cells())

	cells[0] = Cell{X: 9, Y: 9}
	assert.False(t, s.Contains(Cell{X: 9, Y: 9}), "state must not alias the caller's slice")

	out := s.Cells()
	out[0] = Cell{X: 7, Y: 7}
	assert.True(t, s.Contains(Cell{X: 1, Y: 1}), "Cells must return a copy")
}

func TestContains(t *testing.T) {
	s := NewState(Cell{X: 0, Y: 0}, Cell{X: -3, Y: 5})

	assert.True(t, Contains(s, Cell{X: 0, Y: 0}))
	assert.True(t, Contains(s, Cell{X: -3, Y: 5}))
	assert.False(t, Contains(s, Cell{X: 5, Y: -3}))
	assert.False(t, Contains(State{}, Cell{}), "zero State is empty")
}

func TestEqualIgnoresOrder(t *testing.T) {
	a := NewState(Cell{X: 1, Y: 2}, Cell{X: 3, Y: 4})
	b := NewState(Cell{X: 3, Y: 4}, Cell{X: 1, Y: 2})
	c := NewState(Cell{X: 3, Y: 4})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, NewState().Equal(State{}))
}

func TestHashIgnoresOrder(t *testing.T) {
	a := NewState(Cell{X: 1, Y: 2}, Cell{X: -3, Y: 4})
	b := NewState(Cell{X: -3, Y: 4}, Cell{X: 1, Y: 2})
	c := NewState(Cell{X: 2, Y: 1}, Cell{X: 4, Y: -3})

	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestTranslate(t *testing.T) {
	s := NewState(Cell{X: 0, Y: 0}, Cell{X: 1, Y: -1})
	moved := s.Translate(2, 3)

	assert.True(t, moved.Equal(NewState(Cell{X: 2, Y: 3}, Cell{X: 3, Y: 2})))
	assert.True(t, s.Contains(Cell{X: 0, Y: 0}), "Translate must not modify the receiver")
}

func TestSorted(t *testing.T) {
	s := NewState(Cell{X: 2, Y: 1}, Cell{X: 0, Y: 3}, Cell{X: 1, Y: 1})
	assert.Equal(t, []Cell{{1, 1}, {2, 1}, {0, 3}}, s.Sorted())
}
