// Package audio plays short synthesized cues for board events through the
// system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Tone is a finite sine streamer whose pitch glides linearly from Start
// to End hertz, shaped by a short attack and a linear release.
type Tone struct {
	sr     beep.SampleRate
	start  float64
	end    float64
	amp    float64
	total  int
	attack int
	pos    int
	phase  float64
}

// NewTone creates a tone of the given length. amp is clamped to [0, 1].
func NewTone(start, end float64, d time.Duration, amp float64, sr beep.SampleRate) *Tone {
	return &Tone{
		sr:     sr,
		start:  start,
		end:    end,
		amp:    math.Max(0, math.Min(amp, 1)),
		total:  max(sr.N(d), 1),
		attack: max(sr.N(5*time.Millisecond), 1),
	}
}

// Stream fills samples and reports false once the tone has finished.
func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		progress := float64(t.pos) / float64(t.total)
		freq := t.start + (t.end-t.start)*progress
		t.phase += 2 * math.Pi * freq / float64(t.sr)

		env := 1 - progress
		if t.pos < t.attack {
			env = float64(t.pos) / float64(t.attack)
		}

		v := t.amp * env * math.Sin(t.phase)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (t *Tone) Err() error {
	return nil
}

// Len returns the tone length in samples.
func (t *Tone) Len() int {
	return t.total
}
