package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorners(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  BoundingBox
	}{
		{
			name:  "empty state is the origin",
			state: NewState(),
			want:  BoundingBox{BottomLeft: Cell{0, 0}, TopRight: Cell{0, 0}},
		},
		{
			name:  "single cell",
			state: NewState(Cell{X: 4, Y: -2}),
			want:  BoundingBox{BottomLeft: Cell{4, -2}, TopRight: Cell{4, -2}},
		},
		{
			name:  "mixed signs",
			state: NewState(Cell{1, 1}, Cell{2, 2}, Cell{-1, 0}),
			want:  BoundingBox{BottomLeft: Cell{-1, 0}, TopRight: Cell{2, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Corners(tt.state))
		})
	}
}

func TestBoundingBoxDimensions(t *testing.T) {
	box := BoundingBox{BottomLeft: Cell{-1, 0}, TopRight: Cell{2, 2}}

	assert.Equal(t, 4, box.Width())
	assert.Equal(t, 3, box.Height())
	assert.Equal(t, 12, box.Area())

	grown := box.Expand(1)
	assert.Equal(t, BoundingBox{BottomLeft: Cell{-2, -1}, TopRight: Cell{3, 3}}, grown)
	assert.Equal(t, 30, grown.Area())

	assert.Equal(t, 1, BoundingBox{}.Area())
}

func TestNeighborsOf(t *testing.T) {
	origin := Cell{X: 0, Y: 0}
	neighbors := NeighborsOf(origin)

	seen := make(map[Cell]bool, len(neighbors))
	for _, n := range neighbors {
		assert.NotEqual(t, origin, n)
		assert.LessOrEqual(t, abs(n.X), 1)
		assert.LessOrEqual(t, abs(n.Y), 1)
		seen[n] = true
	}
	assert.Len(t, seen, 8, "neighbors must be distinct")

	shifted := NeighborsOf(Cell{X: 10, Y: -5})
	for i := range neighbors {
		assert.Equal(t, Cell{X: neighbors[i].X + 10, Y: neighbors[i].Y - 5}, shifted[i])
	}
}

func TestCountLivingNeighbors(t *testing.T) {
	s := NewState(Cell{0, 1}, Cell{1, 1}, Cell{2, 1})

	assert.Equal(t, 2, CountLivingNeighbors(Cell{1, 1}, s))
	assert.Equal(t, 3, CountLivingNeighbors(Cell{1, 0}, s))
	assert.Equal(t, 1, CountLivingNeighbors(Cell{0, 1}, s))
	assert.Equal(t, 0, CountLivingNeighbors(Cell{5, 5}, s))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
