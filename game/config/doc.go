// Package config provides settings profile management for the Worm game.
//
// The config package handles:
//   - Loading settings profiles from JSON files
//   - Validation through the engine rules
//   - Default profile selection
//   - Profile discovery and listing
//
// Profile Format:
//
// Profiles are stored as JSON files in the configs directory. Each profile
// defines the board size, the initial worm length, the tick interval, whether
// the head may enter the cell the tail is leaving, sound, and the player
// messages. The level layout itself is fixed and not part of a profile.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific profile
//	gameConfig, err := manager.LoadConfig("relaxed")
//
//	// Get default profile (classic.json, or the built-in classic settings)
//	defaultConfig := manager.GetDefault()
//
//	// List available profiles
//	configs, err := manager.ListConfigs()
package config
