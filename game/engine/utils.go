package engine

import (
	"fmt"
	"sort"
)

// CountTiles counts the cells holding the given tile
func CountTiles(b *Board, tile Tile) int {
	count := 0
	for y := 0; y <= b.LastRow(); y++ {
		for x := 0; x <= b.LastCol(); x++ {
			if b.ContentAt(Position{Y: y, X: x}) == tile {
				count++
			}
		}
	}
	return count
}

// CountFood counts all food cells on the board
func CountFood(b *Board) int {
	return CountTiles(b, Food1) + CountTiles(b, Food2) + CountTiles(b, Food3)
}

// OccupiedCells returns the positions marked as worm, row by row
func OccupiedCells(b *Board) []Position {
	var cells []Position
	for y := 0; y <= b.LastRow(); y++ {
		for x := 0; x <= b.LastCol(); x++ {
			pos := Position{Y: y, X: x}
			if b.ContentAt(pos) == UsedByWorm {
				cells = append(cells, pos)
			}
		}
	}
	return cells
}

// CheckConsistency verifies that the board marks exactly the live worm
// segments as occupied, that the segments are distinct and that the food
// counter matches the food cells.
func CheckConsistency(b *Board, w *Worm) error {
	segments := w.Segments()
	seen := make(map[Position]bool, len(segments))
	for _, p := range segments {
		if seen[p] {
			return fmt.Errorf("segment %v appears twice", p)
		}
		seen[p] = true
		if b.ContentAt(p) != UsedByWorm {
			return fmt.Errorf("segment %v is %s on the board", p, b.ContentAt(p))
		}
	}

	occupied := OccupiedCells(b)
	if len(occupied) != len(segments) {
		return fmt.Errorf("board marks %d cells as worm, worm has %d segments", len(occupied), len(segments))
	}

	if food := CountFood(b); food != b.FoodRemaining() {
		return fmt.Errorf("food counter is %d, board holds %d food cells", b.FoodRemaining(), food)
	}
	return nil
}

// ChebyshevDistance is the number of king moves between two positions
func ChebyshevDistance(from, to Position) int {
	dy := abs(from.Y - to.Y)
	dx := abs(from.X - to.X)
	if dy > dx {
		return dy
	}
	return dx
}

// FoodPositions returns all food cells sorted by distance from pos
func FoodPositions(b *Board, from Position) []Position {
	var foods []Position
	for y := 0; y <= b.LastRow(); y++ {
		for x := 0; x <= b.LastCol(); x++ {
			pos := Position{Y: y, X: x}
			if b.ContentAt(pos).IsFood() {
				foods = append(foods, pos)
			}
		}
	}
	sort.SliceStable(foods, func(i, j int) bool {
		return ChebyshevDistance(from, foods[i]) < ChebyshevDistance(from, foods[j])
	})
	return foods
}

// ReachableFrom returns every cell reachable from start with 8-way moves
// through cells that are not barriers or worm
func ReachableFrom(b *Board, start Position) map[Position]bool {
	seen := map[Position]bool{start: true}
	queue := []Position{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, dir := range Directions {
			h := headings[dir]
			next := cur.Add(h)
			if seen[next] || !b.InBounds(next) {
				continue
			}
			switch b.ContentAt(next) {
			case Barrier, UsedByWorm:
				continue
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}
	return seen
}

// abs returns the absolute value of x
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
