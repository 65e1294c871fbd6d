package model

// BoundingBox is the smallest rectangle enclosing every live cell, inclusive
// on both corners
type BoundingBox struct {
	BottomLeft Cell
	TopRight   Cell
}

// neighborOffsets lists the Moore neighborhood, top row first
var neighborOffsets = [8]Cell{
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
}

// Corners calculates the bounding box of the live cells.
// An empty state yields the degenerate box at the origin.
func Corners(state State) BoundingBox {
	if state.IsEmpty() {
		return BoundingBox{}
	}

	first := state.cells[0]
	box := BoundingBox{BottomLeft: first, TopRight: first}
	for _, c := range state.cells[1:] {
		box.BottomLeft.X = min(box.BottomLeft.X, c.X)
		box.BottomLeft.Y = min(box.BottomLeft.Y, c.Y)
		box.TopRight.X = max(box.TopRight.X, c.X)
		box.TopRight.Y = max(box.TopRight.Y, c.Y)
	}
	return box
}

// Expand grows the box by n cells on every side
func (b BoundingBox) Expand(n int) BoundingBox {
	return BoundingBox{
		BottomLeft: Cell{X: b.BottomLeft.X - n, Y: b.BottomLeft.Y - n},
		TopRight:   Cell{X: b.TopRight.X + n, Y: b.TopRight.Y + n},
	}
}

// Width returns the number of columns in the box
func (b BoundingBox) Width() int {
	return b.TopRight.X - b.BottomLeft.X + 1
}

// Height returns the number of rows in the box
func (b BoundingBox) Height() int {
	return b.TopRight.Y - b.BottomLeft.Y + 1
}

// Area returns the number of cells in the box
func (b BoundingBox) Area() int {
	return b.Width() * b.Height()
}

// NeighborsOf returns the 8 cells surrounding cell
func NeighborsOf(cell Cell) [8]Cell {
	var neighbors [8]Cell
	for i, off := range neighborOffsets {
		neighbors[i] = Cell{X: cell.X + off.X, Y: cell.Y + off.Y}
	}
	return neighbors
}

// CountLivingNeighbors counts how many of cell's neighbors are alive in state
func CountLivingNeighbors(cell Cell, state State) (count int) {
	for _, n := range NeighborsOf(cell) {
		if Contains(state, n) {
			count++
		}
	}
	return
}
