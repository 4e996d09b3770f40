package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/wricardo/worm-game/game/engine"
)

var (
	ErrGameOver     = errors.New("game is over")
	ErrUnknownInput = errors.New("unknown input")
)

// InputKind identifies a player command
type InputKind string

const (
	InputHeading     InputKind = "heading"
	InputGrow        InputKind = "grow"
	InputPause       InputKind = "pause"
	InputResume      InputKind = "resume"
	InputTogglePause InputKind = "toggle_pause"
	InputStep        InputKind = "step"
	InputQuit        InputKind = "quit"
)

// Input is one player command. Direction is only read for InputHeading.
type Input struct {
	Kind      InputKind        `json:"kind"`
	Direction engine.Direction `json:"direction,omitempty"`
}

// Heading builds a heading input
func Heading(dir engine.Direction) Input {
	return Input{Kind: InputHeading, Direction: dir}
}

// Frame is everything a renderer needs to draw one screen
type Frame struct {
	Board    *engine.Board
	Worm     *engine.Worm
	Config   *engine.GameConfig
	Status   engine.Status
	Paused   bool
	LastStep *engine.StepResult
}

// Session represents one running game: the engine plus the pause gate.
// A Session is owned by a single goroutine, normally the game loop.
type Session struct {
	ID        string
	Engine    *engine.GameEngine
	Config    *engine.GameConfig
	CreatedAt time.Time

	paused bool
	inputs int
}

// New creates a session with a fresh level for config
func New(id string, config *engine.GameConfig) (*Session, error) {
	eng, err := engine.NewEngine(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	return &Session{
		ID:        id,
		Engine:    eng,
		Config:    config,
		CreatedAt: time.Now(),
	}, nil
}

// Paused reports whether ticks are currently ignored
func (s *Session) Paused() bool {
	return s.paused
}

// State returns the engine state
func (s *Session) State() engine.GameState {
	return s.Engine.State()
}

// Done reports whether the game reached a terminal state
func (s *Session) Done() bool {
	return s.Engine.IsGameOver()
}

// InputCount returns the number of accepted inputs
func (s *Session) InputCount() int {
	return s.inputs
}

// Apply handles one player input. It returns the step result when the input
// performed a step (single stepping while paused), nil otherwise.
func (s *Session) Apply(in Input) (*engine.StepResult, error) {
	if in.Kind == InputQuit {
		s.Engine.Quit()
		s.inputs++
		return nil, nil
	}
	if s.Done() {
		return nil, ErrGameOver
	}

	var result *engine.StepResult

	switch in.Kind {
	case InputHeading:
		// Overwrites the previous heading; buffered while paused
		if err := s.Engine.SetHeading(in.Direction); err != nil {
			return nil, err
		}
	case InputGrow:
		s.Engine.Grow(engine.BonusManual)
	case InputPause:
		s.paused = true
	case InputResume:
		s.paused = false
	case InputTogglePause:
		s.paused = !s.paused
	case InputStep:
		if s.paused {
			r := s.Engine.Step()
			result = &r
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownInput, in.Kind)
	}

	s.inputs++
	return result, nil
}

// Tick steps the game once unless it is paused or over. It returns nil when
// no step was taken.
func (s *Session) Tick() *engine.StepResult {
	if s.paused || s.Done() {
		return nil
	}
	result := s.Engine.Step()
	return &result
}

// Reset restarts the level and clears the pause gate
func (s *Session) Reset() error {
	s.paused = false
	s.inputs = 0
	return s.Engine.Reset()
}

// Frame returns the current screen contents
func (s *Session) Frame() Frame {
	return Frame{
		Board:    s.Engine.Board(),
		Worm:     s.Engine.Worm(),
		Config:   s.Config,
		Status:   s.Engine.Status(),
		Paused:   s.paused,
		LastStep: s.Engine.LastStep(),
	}
}
