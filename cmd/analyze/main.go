// Command analyze prints quick, human-readable facts about settings profiles:
// the level drawn as ASCII at the profile's board size, tile counts per kind,
// the start cell and any food that cannot be reached from it.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/worm-game/game/engine"
)

// Analysis holds the facts printed for one profile
type Analysis struct {
	Config      *engine.GameConfig
	Board       *engine.Board
	Start       engine.Position
	Barriers    int
	Free        int
	Food        map[engine.Tile]int
	Growth      int
	Unreachable []engine.Position
}

// levelGlyphs matches the glyphs of the terminal game
var levelGlyphs = map[engine.Tile]byte{
	engine.Free:       ' ',
	engine.Barrier:    '#',
	engine.Food1:      '2',
	engine.Food2:      '4',
	engine.Food3:      '6',
	engine.UsedByWorm: '0',
}

func main() {
	paths := os.Args[1:]
	if len(paths) == 0 {
		var err error
		paths, err = filepath.Glob(filepath.Join("configs", "*.json"))
		if err != nil || len(paths) == 0 {
			fmt.Println("Usage: analyze <profile.json>...")
			os.Exit(1)
		}
	}

	for _, path := range paths {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(path))
		if err := analyzeFile(os.Stdout, path); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

// analyzeFile loads a profile and prints its analysis
func analyzeFile(w io.Writer, path string) error {
	config, err := engine.LoadGameConfig(path)
	if err != nil {
		return err
	}

	a, err := analyze(config)
	if err != nil {
		return err
	}
	printAnalysis(w, a)
	return nil
}

// analyze lays out the level for config and counts its cells
func analyze(config *engine.GameConfig) (*Analysis, error) {
	b, err := engine.NewBoard(config.Rows, config.Cols)
	if err != nil {
		return nil, err
	}
	engine.LayoutLevel(b)

	a := &Analysis{
		Config:   config,
		Board:    b,
		Start:    engine.StartPosition(b),
		Barriers: engine.CountTiles(b, engine.Barrier),
		Free:     engine.CountTiles(b, engine.Free),
		Food:     make(map[engine.Tile]int),
	}

	for _, kind := range []engine.Tile{engine.Food1, engine.Food2, engine.Food3} {
		n := engine.CountTiles(b, kind)
		a.Food[kind] = n
		bonus, _ := engine.FoodBonus(kind)
		a.Growth += n * bonus
	}

	reachable := engine.ReachableFrom(b, a.Start)
	for _, pos := range engine.FoodPositions(b, a.Start) {
		if !reachable[pos] {
			a.Unreachable = append(a.Unreachable, pos)
		}
	}

	return a, nil
}

// renderLevel draws the board with a frame, marking the start cell with 'S'
func renderLevel(b *engine.Board, start engine.Position) []string {
	border := "+" + strings.Repeat("-", b.Cols()) + "+"
	lines := []string{border}
	for y := 0; y < b.Rows(); y++ {
		row := make([]byte, b.Cols())
		for x := 0; x < b.Cols(); x++ {
			pos := engine.Position{Y: y, X: x}
			if pos == start {
				row[x] = 'S'
				continue
			}
			row[x] = levelGlyphs[b.ContentAt(pos)]
		}
		lines = append(lines, "|"+string(row)+"|")
	}
	return append(lines, border)
}

func printAnalysis(w io.Writer, a *Analysis) {
	fmt.Fprintf(w, "Name: %s\n", a.Config.Name)
	fmt.Fprintf(w, "Board: %d x %d\n", a.Config.Rows, a.Config.Cols)
	fmt.Fprintf(w, "Tick: %v, tail is free: %v\n", a.Config.TickInterval(), a.Config.TailIsFree)

	for _, line := range renderLevel(a.Board, a.Start) {
		fmt.Fprintln(w, line)
	}

	fmt.Fprintf(w, "Start: %v\n", a.Start)
	fmt.Fprintf(w, "Barriers: %d\n", a.Barriers)
	fmt.Fprintf(w, "Free cells: %d\n", a.Free)
	fmt.Fprintf(w, "Food: %d x '2', %d x '4', %d x '6' (total growth %d)\n",
		a.Food[engine.Food1], a.Food[engine.Food2], a.Food[engine.Food3], a.Growth)
	fmt.Fprintf(w, "Final length if all food is eaten: %d\n", a.Config.InitialLength+a.Growth)

	if len(a.Unreachable) > 0 {
		fmt.Fprintf(w, "⚠️  CRITICAL: %d food items are unreachable from the start!\n", len(a.Unreachable))
		for _, p := range a.Unreachable {
			fmt.Fprintf(w, "   Unreachable food: %v\n", p)
		}
	} else {
		fmt.Fprintf(w, "✅ All food is reachable from the start\n")
	}
}
