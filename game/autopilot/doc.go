// Package autopilot steers a worm without a player.
//
// Strategy searches breadth-first from the head, over the same eight
// directions the player can use, for the closest food item and heads for it.
// Barriers, worm cells and everything outside the board block the search.
// When no food is reachable, or the path would lead into a pocket smaller
// than the worm, it falls back to the safe direction with the most open room.
//
// Strategy satisfies service.Pilot and is used by "worm play --autopilot"
// and the headless "worm autoplay" command.
package autopilot
