package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/wricardo/worm-game/game/engine"
)

// DefaultVolume is the playback volume of a new player
const DefaultVolume = 0.5

// Player plays step effects through the speaker. A player that was never
// opened, or was closed, ignores every call, so games run without an audio
// device.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	open   bool
	played int
}

// NewPlayer creates a closed player
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Open initializes the speaker and starts the mixer
func (p *Player) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.open {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.open = true
	return nil
}

// PlayStep queues the effect for a step
func (p *Player) PlayStep(result engine.StepResult) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return
	}
	effect := Effect(result, p.volume)
	if effect == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(effect)
	speaker.Unlock()
	p.played++
}

// Played returns how many effects were queued
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Close silences the mixer. The speaker itself stays initialized.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.open = false
}
