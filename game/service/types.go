package service

import (
	"time"

	"github.com/wricardo/worm-game/game/engine"
)

// Result summarizes a finished run
type Result struct {
	SessionID     string           `json:"session_id"`
	ConfigName    string           `json:"config_name"`
	State         engine.GameState `json:"state"`
	Ticks         int              `json:"ticks"`
	Length        int              `json:"length"`
	FoodRemaining int              `json:"food_remaining"`
	FoodEaten     int              `json:"food_eaten"`
	Inputs        int              `json:"inputs"`
	Message       string           `json:"message"`
	Duration      time.Duration    `json:"duration"`
}

// Option configures a GameService
type Option func(*gameServiceImpl)

// WithInputs sets the player input source
func WithInputs(inputs InputSource) Option {
	return func(s *gameServiceImpl) {
		s.inputs = inputs
	}
}

// WithPilot lets a pilot choose the heading before every tick
func WithPilot(pilot Pilot) Option {
	return func(s *gameServiceImpl) {
		s.pilot = pilot
	}
}

// WithRenderer sets the renderer called after every change
func WithRenderer(renderer Renderer) Option {
	return func(s *gameServiceImpl) {
		s.renderer = renderer
	}
}

// WithSound sets the sound player
func WithSound(sound SoundPlayer) Option {
	return func(s *gameServiceImpl) {
		s.sound = sound
	}
}

// WithTickInterval overrides the configured tick interval. Zero or less runs
// headless: ticks follow each other without waiting.
func WithTickInterval(d time.Duration) Option {
	return func(s *gameServiceImpl) {
		s.interval = d
	}
}

// WithMaxTicks stops the run after n committed steps; zero means no limit
func WithMaxTicks(n int) Option {
	return func(s *gameServiceImpl) {
		s.maxTicks = n
	}
}
