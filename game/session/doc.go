// Package session provides the per-game state of the Worm game.
//
// A Session bundles one engine.GameEngine with the state the engine itself
// does not track: the pause gate and the count of accepted inputs. There are
// no package-level globals; every running game is a separate Session.
//
// Inputs:
//
// Player commands arrive as Input values. Heading inputs overwrite the
// current heading and are never queued, so several key presses within one
// tick collapse into the last one. While paused, heading changes are stored
// and take effect on the next step; InputStep performs exactly one step.
// InputQuit ends the game without inspecting board or worm.
//
// Usage:
//
//	sess, err := session.New("local", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess.Apply(session.Heading(engine.Up))
//	if result := sess.Tick(); result != nil && result.State.IsTerminal() {
//		fmt.Println(sess.Engine.Message())
//	}
//
// Concurrency:
//
// A Session is not safe for concurrent use. The game loop in package service
// owns it and serializes inputs and ticks through a single select loop.
package session
