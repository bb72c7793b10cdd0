package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const sampleRate = beep.SampleRate(44100)

// Cue names, matching the simulation's cue outbox
const (
	CueDash  = "dash"
	CueHit   = "hit"
	CueShoot = "shoot"
)

// sweep is a one-shot voice: a tone gliding from startFreq to endFreq
// blended with noise, under an exponential decay
type sweep struct {
	startFreq float64
	endFreq   float64
	square    bool
	noise     float64 // 0 = pure tone, 1 = pure noise
	decay     float64 // envelope is exp(-decay*t)
	gain      float64

	length int
	pos    int
	phase  float64
	rng    *rand.Rand
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.length {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.length {
			return i, true
		}
		progress := float64(s.pos) / float64(s.length)
		t := float64(s.pos) / float64(sampleRate)

		freq := s.startFreq + (s.endFreq-s.startFreq)*progress
		s.phase += freq / float64(sampleRate)
		s.phase -= math.Floor(s.phase)

		tone := math.Sin(2 * math.Pi * s.phase)
		if s.square {
			tone = 1
			if s.phase >= 0.5 {
				tone = -1
			}
		}
		noise := s.rng.Float64()*2 - 1

		v := ((1-s.noise)*tone + s.noise*noise) * math.Exp(-s.decay*t) * s.gain
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error {
	return nil
}

func newSweep(d time.Duration, s sweep) *sweep {
	s.length = sampleRate.N(d)
	s.rng = rand.New(rand.NewSource(int64(s.length)))
	return &s
}

// NewCue synthesizes the named cue. ok is false for unknown names.
func NewCue(name string) (s beep.Streamer, ok bool) {
	switch name {
	case CueDash:
		// rising whoosh
		return newSweep(180*time.Millisecond, sweep{
			startFreq: 220, endFreq: 880, noise: 0.7, decay: 10, gain: 0.5,
		}), true
	case CueHit:
		// low crack
		return newSweep(250*time.Millisecond, sweep{
			startFreq: 140, endFreq: 50, square: true, noise: 0.5, decay: 14, gain: 0.6,
		}), true
	case CueShoot:
		// falling blip
		return newSweep(90*time.Millisecond, sweep{
			startFreq: 1200, endFreq: 600, square: true, decay: 20, gain: 0.3,
		}), true
	}
	return nil, false
}

// withVolume scales s by a linear volume.
// math.Log2(0) is -Inf, so zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
