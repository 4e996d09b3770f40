// Command validate checks the settings profiles in a directory (default
// ../configs). For every *.json file it checks:
//   - JSON structure, rejecting unknown keys
//   - Field ranges and required messages
//   - That the status line fits on one board row
//   - That the start cell is free and every food item is reachable from it
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/wricardo/worm-game/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// validateConfig loads and validates a single profile
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	var config engine.GameConfig
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&config); err != nil {
		result.fail("Invalid JSON: %v", err)
		return result
	}

	if err := engine.ValidateGameConfig(&config); err != nil {
		result.fail("%v", err)
		return result
	}

	// The widest status line must fit on one row of the board
	widest := config.StatusLine(engine.Status{
		Head:          engine.Position{Y: config.Rows - 1, X: config.Cols - 1},
		Length:        config.EffectiveCapacity(),
		FoodRemaining: len(engine.LevelFoods),
	})
	if n := utf8.RuneCountInString(widest); n > config.Cols {
		result.fail("Status line is %d columns wide, the board has %d", n, config.Cols)
	}

	if result.Valid {
		reachability := validateReachability(&config)
		if !reachability.Valid {
			result.Valid = false
		}
		result.Errors = append(result.Errors, reachability.Errors...)
	}

	if result.Valid {
		result.Errors = append(result.Errors,
			fmt.Sprintf("✓ Name: %s", config.Name),
			fmt.Sprintf("✓ Board: %dx%d", config.Rows, config.Cols),
			fmt.Sprintf("✓ Worm: length %d, capacity %d", config.InitialLength, config.EffectiveCapacity()),
			fmt.Sprintf("✓ Tick: %v", config.TickInterval()),
			fmt.Sprintf("✓ Tail is free: %v", config.TailIsFree),
		)
	}

	return result
}

// validateReachability lays out the level for the profile's board size and
// checks that the worm can reach every food item from its start cell.
func validateReachability(config *engine.GameConfig) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	b, err := engine.NewBoard(config.Rows, config.Cols)
	if err != nil {
		result.fail("Cannot build board: %v", err)
		return result
	}
	engine.LayoutLevel(b)

	start := engine.StartPosition(b)
	if tile := b.ContentAt(start); tile != engine.Free {
		result.fail("Start cell %v is not free (%s)", start, tile)
		return result
	}

	reachable := engine.ReachableFrom(b, start)
	foods := engine.FoodPositions(b, start)

	var unreachable []engine.Position
	for _, pos := range foods {
		if !reachable[pos] {
			unreachable = append(unreachable, pos)
		}
	}

	if len(unreachable) > 0 {
		result.fail("Connectivity failure: %d/%d food items unreachable from start", len(unreachable), len(foods))
		for _, pos := range unreachable {
			result.Errors = append(result.Errors, fmt.Sprintf("Unreachable: %s at %v", b.ContentAt(pos), pos))
		}
	} else {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Connectivity: All %d food items reachable from start", len(foods)))
	}

	return result
}

// main validates every *.json file in the directory given as the first
// argument, printing a concise report and exiting non-zero if any is invalid.
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No config files found in %s\n", configDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
