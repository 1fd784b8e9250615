package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/sandspan/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// cue describes the sound for one event kind.
type cue struct {
	start, end float64
	length     time.Duration
	gain       float64
	chord      float64 // Extra voice at this ratio of the base pitch; 0 for none
}

var cues = map[core.EventKind]cue{
	core.EventPlaced:   {start: 660, end: 620, length: 40 * time.Millisecond, gain: 0.5},
	core.EventRejected: {start: 150, end: 120, length: 120 * time.Millisecond, gain: 0.7},
	core.EventSpan:     {start: 440, end: 880, length: 220 * time.Millisecond, gain: 0.8},
	core.EventCleared:  {start: 880, end: 880, length: 320 * time.Millisecond, gain: 0.8, chord: 1.5},
	core.EventReset:    {start: 520, end: 260, length: 180 * time.Millisecond, gain: 0.6},
}

// Streamer builds the streamer for an event kind at the given volume, or
// returns nil if the kind has no sound.
func Streamer(kind core.EventKind, volume float64) beep.Streamer {
	c, ok := cues[kind]
	if !ok || volume <= 0 {
		return nil
	}
	amp := c.gain * volume
	if c.chord == 0 {
		return NewTone(c.start, c.end, c.length, amp, sampleRate)
	}
	mix := &beep.Mixer{}
	mix.Add(
		NewTone(c.start, c.end, c.length, amp/2, sampleRate),
		NewTone(c.start*c.chord, c.end*c.chord, c.length, amp/2, sampleRate),
	)
	return beep.Take(sampleRate.N(c.length), mix)
}

// Player mixes event cues into the speaker. The zero value is unusable;
// create one with NewPlayer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player at the given volume in [0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker. It fails when no audio device is available.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the cue for kind. Events without a cue are ignored.
func (p *Player) Play(kind core.EventKind) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Streamer(kind, p.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops every queued cue.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}
