// Package service provides the game loop for the Worm game.
//
// The service package implements:
//   - A ticker-driven loop stepping one session at the configured interval
//   - Player input handling through an InputSource channel
//   - Optional autopilot steering before every tick
//   - Rendering and sound hooks after every change
//
// Core Interfaces:
//
// GameService runs one session to completion. InputSource, Pilot, Renderer
// and SoundPlayer are the collaborators a shell plugs in; all of them are
// optional, so a headless run with a pilot is a plain function call.
//
// Architecture:
//
// The service sits between the transports (terminal, sound) and the engine.
// A single goroutine owns the session: inputs, ticks and rendering are
// serialized by one select loop, so neither the session nor the engine need
// locking. The loop ends when the game reaches a terminal state, when the
// input channel closes (treated as quit), when the tick limit is reached or
// when the context is cancelled.
//
// Usage:
//
//	sess, _ := session.New("local", config)
//	svc := service.NewGameService(sess,
//		service.WithInputs(term),
//		service.WithRenderer(term),
//		service.WithSound(player),
//	)
//	result, err := svc.Run(ctx)
package service
