package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/wricardo/worm-game/game/engine"
	"github.com/wricardo/worm-game/game/session"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sess     *session.Session
	inputs   InputSource
	pilot    Pilot
	renderer Renderer
	sound    SoundPlayer
	interval time.Duration
	maxTicks int

	startFood int
}

// NewGameService creates a game loop for sess. The tick interval defaults to
// the session config.
func NewGameService(sess *session.Session, opts ...Option) GameService {
	s := &gameServiceImpl{
		sess:     sess,
		interval: sess.Config.TickInterval(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Session returns the driven session
func (s *gameServiceImpl) Session() *session.Session {
	return s.sess
}

// Run executes the game loop
func (s *gameServiceImpl) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	s.startFood = s.sess.Engine.Board().FoodRemaining()
	log.Printf("game %s: starting %q (%dx%d, tick %v)",
		s.sess.ID, s.sess.Config.Name, s.sess.Config.Rows, s.sess.Config.Cols, s.interval)

	var inputs <-chan session.Input
	if s.inputs != nil {
		inputs = s.inputs.Inputs(ctx)
	}

	var tick <-chan time.Time
	if s.interval > 0 {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	if err := s.render(); err != nil {
		return s.result(start), err
	}

	for !s.sess.Done() {
		if s.maxTicks > 0 && s.sess.Engine.Ticks() >= s.maxTicks {
			log.Printf("game %s: tick limit %d reached", s.sess.ID, s.maxTicks)
			break
		}

		// Headless runs tick whenever no input is pending
		if tick == nil && !s.sess.Paused() {
			select {
			case <-ctx.Done():
				return s.result(start), ctx.Err()
			case in, ok := <-inputs:
				if !ok {
					inputs = nil
					in = session.Input{Kind: session.InputQuit}
				}
				s.handleInput(in)
			default:
				s.tick()
			}
		} else {
			select {
			case <-ctx.Done():
				return s.result(start), ctx.Err()
			case in, ok := <-inputs:
				if !ok {
					inputs = nil
					in = session.Input{Kind: session.InputQuit}
				}
				s.handleInput(in)
			case <-tick:
				s.tick()
			}
		}

		if err := s.render(); err != nil {
			return s.result(start), err
		}
	}

	result := s.result(start)
	log.Printf("game %s: finished with %s after %d ticks (length %d, food left %d)",
		s.sess.ID, result.State, result.Ticks, result.Length, result.FoodRemaining)
	return result, nil
}

// handleInput applies one player input
func (s *gameServiceImpl) handleInput(in session.Input) {
	wasPaused := s.sess.Paused()

	result, err := s.sess.Apply(in)
	if err != nil {
		log.Printf("game %s: input %s rejected: %v", s.sess.ID, in.Kind, err)
		return
	}

	if paused := s.sess.Paused(); paused != wasPaused {
		if paused {
			log.Printf("game %s: paused", s.sess.ID)
		} else {
			log.Printf("game %s: resumed", s.sess.ID)
		}
	}
	if in.Kind == session.InputGrow && s.sound != nil {
		s.sound.PlayStep(engine.StepResult{State: engine.Ongoing, Grew: engine.BonusManual})
	}
	if result != nil {
		s.afterStep(*result)
	}
}

// tick asks the pilot for a heading and advances the game by one step
func (s *gameServiceImpl) tick() {
	if s.sess.Paused() || s.sess.Done() {
		return
	}

	if s.pilot != nil {
		eng := s.sess.Engine
		if dir, ok := s.pilot.NextHeading(eng.Board(), eng.Worm(), s.sess.Config.Rules()); ok {
			if err := eng.SetHeading(dir); err != nil {
				log.Printf("game %s: pilot heading %q rejected: %v", s.sess.ID, dir, err)
			}
		}
	}

	if result := s.sess.Tick(); result != nil {
		s.afterStep(*result)
	}
}

// afterStep forwards a step to the sound player
func (s *gameServiceImpl) afterStep(result engine.StepResult) {
	if s.sound != nil {
		s.sound.PlayStep(result)
	}
	if result.State.IsTerminal() {
		log.Printf("game %s: %s at %v", s.sess.ID, result.State, result.To)
	}
}

func (s *gameServiceImpl) render() error {
	if s.renderer == nil {
		return nil
	}
	if err := s.renderer.Render(s.sess.Frame()); err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	return nil
}

func (s *gameServiceImpl) result(start time.Time) *Result {
	status := s.sess.Engine.Status()
	return &Result{
		SessionID:     s.sess.ID,
		ConfigName:    s.sess.Config.Name,
		State:         status.State,
		Ticks:         status.Ticks,
		Length:        status.Length,
		FoodRemaining: status.FoodRemaining,
		FoodEaten:     s.startFood - status.FoodRemaining,
		Inputs:        s.sess.InputCount(),
		Message:       status.Message,
		Duration:      time.Since(start),
	}
}
