// Package audio plays short feedback cues through the beep speaker. The demo
// runs fine without a sound device; Init failure just leaves cues silent.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/particle-storm/parameter"
)

const sampleRate = beep.SampleRate(44100)

// Cue produces the impulse blip. Methods are called from the event loop
// goroutine only; no locking.
type Cue struct {
	ready bool
	muted bool
	last  time.Time
}

// NewCue returns a silent cue; call Init to attach the speaker
func NewCue(muted bool) *Cue {
	return &Cue{muted: muted}
}

// Init opens the speaker. Failure is returned for logging and leaves the
// cue permanently silent.
func (c *Cue) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	c.ready = true
	return nil
}

// ToggleMute flips mute and returns the new state
func (c *Cue) ToggleMute() bool {
	c.muted = !c.muted
	return c.muted
}

// Muted reports whether cues are suppressed
func (c *Cue) Muted() bool {
	return c.muted
}

// Impulse plays the pointer-impulse blip, rate-limited so a stream of motion
// events does not stack speaker buffers
func (c *Cue) Impulse() {
	if !c.ready || c.muted {
		return
	}
	now := time.Now()
	if now.Sub(c.last) < parameter.CueMinInterval {
		return
	}
	c.last = now

	sine, err := generators.SineTone(sampleRate, parameter.CueToneHz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(parameter.CueDuration), sine))
}

// Close releases the speaker
func (c *Cue) Close() {
	if c.ready {
		speaker.Close()
	}
}
