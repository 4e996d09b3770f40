package service

import (
	"context"

	"github.com/wricardo/worm-game/game/engine"
	"github.com/wricardo/worm-game/game/session"
)

// GameService runs one game session to completion
type GameService interface {
	// Run drives the session until it reaches a terminal state, the input
	// source closes, the tick limit is hit or ctx is done.
	Run(ctx context.Context) (*Result, error)

	// Session returns the driven session
	Session() *session.Session
}

// InputSource delivers player inputs until ctx is done
type InputSource interface {
	Inputs(ctx context.Context) <-chan session.Input
}

// Pilot chooses a heading before every tick
type Pilot interface {
	NextHeading(b *engine.Board, w *engine.Worm, rules engine.Rules) (engine.Direction, bool)
}

// Renderer draws a frame after every change
type Renderer interface {
	Render(frame session.Frame) error
}

// SoundPlayer reacts to committed and terminal steps
type SoundPlayer interface {
	PlayStep(result engine.StepResult)
}

// ChannelSource adapts a plain channel to InputSource
type ChannelSource <-chan session.Input

// Inputs returns the channel itself
func (c ChannelSource) Inputs(ctx context.Context) <-chan session.Input {
	return c
}
