package engine

import (
	"errors"
	"fmt"
)

var ErrBoardTooSmall = errors.New("board too small")

// SizeError reports a board or terminal below the minimum dimensions
type SizeError struct {
	Rows    int
	Cols    int
	MinRows int
	MinCols int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("board too small: got %dx%d, need at least %dx%d", e.Rows, e.Cols, e.MinRows, e.MinCols)
}

// Is lets errors.Is match ErrBoardTooSmall
func (e *SizeError) Is(target error) bool {
	return target == ErrBoardTooSmall
}

// Board holds the tile classification of every cell and the food count
type Board struct {
	lastRow int
	lastCol int
	cells   [][]Tile
	food    int
}

// NewBoard creates a board with all cells free
func NewBoard(rows, cols int) (*Board, error) {
	if rows < MinRows || cols < MinCols {
		return nil, &SizeError{Rows: rows, Cols: cols, MinRows: MinRows, MinCols: MinCols}
	}

	cells := make([][]Tile, rows)
	for y := range cells {
		cells[y] = make([]Tile, cols)
		for x := range cells[y] {
			cells[y][x] = Free
		}
	}

	return &Board{
		lastRow: rows - 1,
		lastCol: cols - 1,
		cells:   cells,
	}, nil
}

// LastRow returns the largest valid row index
func (b *Board) LastRow() int {
	return b.lastRow
}

// LastCol returns the largest valid column index
func (b *Board) LastCol() int {
	return b.lastCol
}

// Rows returns the number of rows
func (b *Board) Rows() int {
	return b.lastRow + 1
}

// Cols returns the number of columns
func (b *Board) Cols() int {
	return b.lastCol + 1
}

// InBounds reports whether pos addresses a cell of the grid
func (b *Board) InBounds(pos Position) bool {
	return pos.Y >= 0 && pos.Y <= b.lastRow && pos.X >= 0 && pos.X <= b.lastCol
}

// Place writes tile into the cell at pos; out of bounds is a no-op
func (b *Board) Place(pos Position, tile Tile) {
	if !b.InBounds(pos) {
		return
	}
	b.cells[pos.Y][pos.X] = tile
}

// ContentAt returns the tile at pos; everything outside the grid is a barrier
func (b *Board) ContentAt(pos Position) Tile {
	if !b.InBounds(pos) {
		return Barrier
	}
	return b.cells[pos.Y][pos.X]
}

// FoodRemaining returns the number of live food items
func (b *Board) FoodRemaining() int {
	return b.food
}

// DecrementFood lowers the food count, stopping at zero
func (b *Board) DecrementFood() {
	if b.food > 0 {
		b.food--
	}
}

// SetFood overwrites the food count
func (b *Board) SetFood(n int) {
	b.food = n
}

// Clear resets every cell to free and the food count to zero
func (b *Board) Clear() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = Free
		}
	}
	b.food = 0
}
