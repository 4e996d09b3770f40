package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/wricardo/worm-game/game/engine"
)

const sampleRate = beep.SampleRate(48000)

// Wave shapes
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// Note is one tone of an effect
type Note struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
}

// Tone pitches, C major from C5 upward
const (
	pitchFood1  = 523.25
	pitchFood2  = 659.25
	pitchFood3  = 783.99
	pitchGrow   = 392.00
	pitchCrash1 = 220.00
	pitchCrash2 = 110.00
)

const (
	noteShort = 60 * time.Millisecond
	noteLong  = 180 * time.Millisecond
)

// NotesFor returns the notes played for a step. Plain moves and quitting
// are silent.
func NotesFor(result engine.StepResult) []Note {
	switch result.State {
	case engine.Ongoing:
	case engine.QuitRequested:
		return nil
	default:
		return []Note{
			{Freq: pitchCrash1, Duration: noteLong, Wave: WaveSaw},
			{Freq: pitchCrash2, Duration: noteLong, Wave: WaveSaw},
		}
	}

	switch result.Entered {
	case engine.Food1:
		return []Note{{Freq: pitchFood1, Duration: noteShort, Wave: WaveSquare}}
	case engine.Food2:
		return []Note{
			{Freq: pitchFood1, Duration: noteShort, Wave: WaveSquare},
			{Freq: pitchFood2, Duration: noteShort, Wave: WaveSquare},
		}
	case engine.Food3:
		return []Note{
			{Freq: pitchFood1, Duration: noteShort, Wave: WaveSquare},
			{Freq: pitchFood2, Duration: noteShort, Wave: WaveSquare},
			{Freq: pitchFood3, Duration: noteShort, Wave: WaveSquare},
		}
	}

	if result.Grew > 0 {
		return []Note{{Freq: pitchGrow, Duration: noteShort, Wave: WaveSine}}
	}
	return nil
}

// oscillator generates a fixed-length wave at one frequency
type oscillator struct {
	freq     float64
	phase    float64
	wave     Wave
	position int
	length   int
	rate     beep.SampleRate
}

func newOscillator(note Note, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:   note.Freq,
		wave:   note.Wave,
		length: rate.N(note.Duration),
		rate:   rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		// Linear fade over the last fifth avoids a click at the cut
		if fade := o.length / 5; fade > 0 && o.length-o.position < fade {
			val *= float64(o.length-o.position) / float64(fade)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Effect builds the streamer for a step at the given volume (0..1), or nil
// when the step is silent.
func Effect(result engine.StepResult, volume float64) beep.Streamer {
	notes := NotesFor(result)
	if len(notes) == 0 {
		return nil
	}

	streamers := make([]beep.Streamer, 0, len(notes))
	for _, note := range notes {
		streamers = append(streamers, newOscillator(note, sampleRate))
	}
	return newVolume(beep.Seq(streamers...), volume)
}

// math.Log2(0) is -Inf, so zero volume is silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
