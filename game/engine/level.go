package engine

// FoodItem is a food tile at a fixed coordinate of the level
type FoodItem struct {
	Pos  Position
	Kind Tile
}

// WallSpan is a vertical barrier in column Col covering rows FromRow..ToRow
type WallSpan struct {
	Col     int
	FromRow int
	ToRow   int
}

// LevelFoods is the fixed food placement. All coordinates fit the minimum
// board of MinRows x MinCols.
var LevelFoods = []FoodItem{
	{Pos: Position{Y: 3, X: 3}, Kind: Food1},
	{Pos: Position{Y: 10, X: 10}, Kind: Food1},
	{Pos: Position{Y: 5, X: 20}, Kind: Food2},
	{Pos: Position{Y: 15, X: 25}, Kind: Food2},
	{Pos: Position{Y: 8, X: 40}, Kind: Food2},
	{Pos: Position{Y: 18, X: 35}, Kind: Food2},
	{Pos: Position{Y: 4, X: 50}, Kind: Food3},
	{Pos: Position{Y: 12, X: 55}, Kind: Food3},
	{Pos: Position{Y: 20, X: 45}, Kind: Food3},
	{Pos: Position{Y: 7, X: 30}, Kind: Food3},
}

// LevelWalls returns the two interior walls, at a quarter and three quarters
// of the board width
func LevelWalls(b *Board) []WallSpan {
	return []WallSpan{
		{Col: b.LastCol() / 4, FromRow: 5, ToRow: 15},
		{Col: (b.LastCol() * 3) / 4, FromRow: 8, ToRow: 20},
	}
}

// LayoutLevel stamps the fixed level onto the board: all cells free, the
// rightmost column and the interior walls as barriers, then the food items.
// Food is placed last and wins over a wall on oversized boards.
func LayoutLevel(b *Board) {
	b.Clear()

	// Right border
	for y := 0; y <= b.LastRow(); y++ {
		b.Place(Position{Y: y, X: b.LastCol()}, Barrier)
	}

	for _, wall := range LevelWalls(b) {
		for y := wall.FromRow; y <= wall.ToRow; y++ {
			b.Place(Position{Y: y, X: wall.Col}, Barrier)
		}
	}

	for _, item := range LevelFoods {
		b.Place(item.Pos, item.Kind)
	}
	b.SetFood(len(LevelFoods))
}

// StartPosition is where the worm head starts: bottom row, first column
func StartPosition(b *Board) Position {
	return Position{Y: b.LastRow(), X: 0}
}
