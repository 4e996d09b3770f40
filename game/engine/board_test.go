package engine

import (
	"errors"
	"testing"
)

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewBoard(MinRows, MinCols)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	return b
}

// snapshot copies every cell and the food counter
func snapshot(b *Board) ([][]Tile, int) {
	cells := make([][]Tile, b.Rows())
	for y := range cells {
		cells[y] = make([]Tile, b.Cols())
		for x := range cells[y] {
			cells[y][x] = b.ContentAt(Position{Y: y, X: x})
		}
	}
	return cells, b.FoodRemaining()
}

func assertBoardUnchanged(t *testing.T, b *Board, cells [][]Tile, food int) {
	t.Helper()
	if b.FoodRemaining() != food {
		t.Errorf("Expected food %d, got %d", food, b.FoodRemaining())
	}
	for y := range cells {
		for x := range cells[y] {
			pos := Position{Y: y, X: x}
			if got := b.ContentAt(pos); got != cells[y][x] {
				t.Errorf("Cell %v changed from %s to %s", pos, cells[y][x], got)
			}
		}
	}
}

func TestNewBoard(t *testing.T) {
	b := newTestBoard(t)

	if b.LastRow() != MinRows-1 {
		t.Errorf("Expected last row %d, got %d", MinRows-1, b.LastRow())
	}
	if b.LastCol() != MinCols-1 {
		t.Errorf("Expected last col %d, got %d", MinCols-1, b.LastCol())
	}
	if b.FoodRemaining() != 0 {
		t.Errorf("Expected no food, got %d", b.FoodRemaining())
	}
	if n := CountTiles(b, Free); n != MinRows*MinCols {
		t.Errorf("Expected all %d cells free, got %d", MinRows*MinCols, n)
	}
}

func TestNewBoard_TooSmall(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"ten rows", 10, 70},
		{"one row short", MinRows - 1, MinCols},
		{"one col short", MinRows, MinCols - 1},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBoard(tt.rows, tt.cols)
			if err == nil {
				t.Fatal("Expected size error")
			}
			if b != nil {
				t.Error("Expected no board on error")
			}

			var sizeErr *SizeError
			if !errors.As(err, &sizeErr) {
				t.Fatalf("Expected *SizeError, got %T", err)
			}
			if sizeErr.Rows != tt.rows || sizeErr.Cols != tt.cols {
				t.Errorf("Expected %dx%d in error, got %dx%d", tt.rows, tt.cols, sizeErr.Rows, sizeErr.Cols)
			}
			if sizeErr.MinRows != MinRows || sizeErr.MinCols != MinCols {
				t.Errorf("Expected minimums %dx%d, got %dx%d", MinRows, MinCols, sizeErr.MinRows, sizeErr.MinCols)
			}
			if !errors.Is(err, ErrBoardTooSmall) {
				t.Error("Expected errors.Is(err, ErrBoardTooSmall)")
			}
		})
	}
}

func TestBoard_ContentAtOutOfBounds(t *testing.T) {
	b := newTestBoard(t)

	tests := []struct {
		name string
		pos  Position
		want Tile
	}{
		{"origin", Position{Y: 0, X: 0}, Free},
		{"last cell", Position{Y: b.LastRow(), X: b.LastCol()}, Free},
		{"negative row", Position{Y: -1, X: 0}, Barrier},
		{"negative col", Position{Y: 0, X: -1}, Barrier},
		{"row past end", Position{Y: b.LastRow() + 1, X: 0}, Barrier},
		{"col past end", Position{Y: 0, X: b.LastCol() + 1}, Barrier},
		{"far away", Position{Y: 1000, X: -1000}, Barrier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.ContentAt(tt.pos); got != tt.want {
				t.Errorf("ContentAt(%v) = %s, expected %s", tt.pos, got, tt.want)
			}
		})
	}
}

func TestBoard_Place(t *testing.T) {
	b := newTestBoard(t)

	pos := Position{Y: 3, X: 4}
	b.Place(pos, Food2)
	if got := b.ContentAt(pos); got != Food2 {
		t.Errorf("Expected %s at %v, got %s", Food2, pos, got)
	}

	cells, food := snapshot(b)
	b.Place(Position{Y: -1, X: 4}, Food1)
	b.Place(Position{Y: 3, X: b.LastCol() + 1}, Food1)
	assertBoardUnchanged(t, b, cells, food)
}

func TestBoard_FoodCounter(t *testing.T) {
	b := newTestBoard(t)

	b.SetFood(2)
	if b.FoodRemaining() != 2 {
		t.Fatalf("Expected food 2, got %d", b.FoodRemaining())
	}

	b.DecrementFood()
	b.DecrementFood()
	b.DecrementFood()
	if b.FoodRemaining() != 0 {
		t.Errorf("Expected decrement to stop at 0, got %d", b.FoodRemaining())
	}
}

func TestLayoutLevel(t *testing.T) {
	b := newTestBoard(t)
	b.Place(Position{Y: 1, X: 1}, UsedByWorm)
	LayoutLevel(b)

	if b.FoodRemaining() != 10 {
		t.Errorf("Expected 10 food items, got %d", b.FoodRemaining())
	}
	if n := CountFood(b); n != 10 {
		t.Errorf("Expected 10 food cells, got %d", n)
	}

	counts := map[Tile]int{
		Food1: 2,
		Food2: 4,
		Food3: 4,
		// right border (26) + left wall rows 5..15 (11) + right wall rows 8..20 (13)
		Barrier:    26 + 11 + 13,
		UsedByWorm: 0,
	}
	for tile, want := range counts {
		if got := CountTiles(b, tile); got != want {
			t.Errorf("Expected %d %s cells, got %d", want, tile, got)
		}
	}

	for y := 0; y <= b.LastRow(); y++ {
		if b.ContentAt(Position{Y: y, X: b.LastCol()}) != Barrier {
			t.Errorf("Expected barrier on right border at row %d", y)
		}
	}
	for _, wall := range LevelWalls(b) {
		if b.ContentAt(Position{Y: wall.FromRow - 1, X: wall.Col}) == Barrier {
			t.Errorf("Wall in column %d starts before row %d", wall.Col, wall.FromRow)
		}
		if b.ContentAt(Position{Y: wall.ToRow + 1, X: wall.Col}) == Barrier {
			t.Errorf("Wall in column %d ends after row %d", wall.Col, wall.ToRow)
		}
	}

	if b.ContentAt(StartPosition(b)) != Free {
		t.Errorf("Expected start position to be free, got %s", b.ContentAt(StartPosition(b)))
	}
}

func TestLayoutLevel_FoodWinsOverWall(t *testing.T) {
	// last col 74 puts the right wall in column 55, across the food at (12,55)
	b, err := NewBoard(MinRows, 75)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	LayoutLevel(b)

	if got := b.ContentAt(Position{Y: 12, X: 55}); got != Food3 {
		t.Errorf("Expected food at (12,55), got %s", got)
	}
	if n := CountFood(b); n != b.FoodRemaining() {
		t.Errorf("Expected food counter %d to match food cells %d", b.FoodRemaining(), n)
	}
}
