// Package engine provides the core game logic for the Worm game.
//
// The engine package implements the game mechanics including:
//   - A fixed-size board of typed tiles (free, worm, three food kinds, barrier)
//   - A worm stored in a fixed-capacity ring buffer of positions
//   - The per-tick step function resolving bounds, barriers, self-crossing,
//     food pickup and growth
//   - Configuration loading and validation
//
// Core Types:
//
// Board owns the tile classification and the food counter; positions outside
// the grid read as barriers. Worm owns the body segments and the heading.
// Step combines both into one tick and reports a StepResult. The Engine
// interface, implemented by GameEngine, wraps one level for the shell.
//
// Usage:
//
//	gameEngine, err := engine.NewEngine(engine.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameEngine.SetHeading(engine.Up)
//	result := gameEngine.Step()
//	if result.State.IsTerminal() {
//		fmt.Println(gameEngine.Message())
//	}
//
// Game Rules:
//
// The worm moves one cell per tick in one of eight directions. Leaving the
// board, hitting a barrier or running into its own body ends the game. Food
// of kind 1, 2 and 3 grows the worm by 2, 4 and 6 segments; growth never
// exceeds the ring capacity. The engine never blocks, logs or draws.
package engine
