// Package audio plays the simulation's sound cues through a beep mixer.
// Every cue is synthesized, so there are no asset files to ship.
package audio

import (
	"fmt"
	"log"
	"maps"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/younwookim/hellfall/internal/infrastructure/config"
)

// Player mixes cues into the speaker. Until Initialize succeeds every
// Play is a no-op, so the game runs without an audio device.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	enabled     bool
	volume      map[string]float64
	initialized bool
}

// NewPlayer creates a player configured from the audio settings
func NewPlayer(cfg config.AudioConfig) *Player {
	p := &Player{mixer: &beep.Mixer{}}
	p.SetVolumes(cfg)
	return p
}

// Initialize opens the speaker and starts the mixer
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetVolumes applies new audio settings; safe to call while cues play
func (p *Player) SetVolumes(cfg config.AudioConfig) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.enabled = cfg.Enabled
	p.volume = maps.Clone(cfg.Volume)
}

// Volume returns the configured volume for a cue, 1 if unset
func (p *Player) Volume(name string) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if v, ok := p.volume[name]; ok {
		return v
	}
	return 1
}

// Play starts a cue without waiting for it
func (p *Player) Play(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.enabled {
		return
	}
	s, ok := NewCue(name)
	if !ok {
		log.Printf("Unknown audio cue %q", name)
		return
	}
	vol := 1.0
	if v, ok := p.volume[name]; ok {
		vol = v
	}

	speaker.Lock()
	p.mixer.Add(withVolume(s, vol))
	speaker.Unlock()
}

// Close silences everything still playing
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
