// Package playing provides the main gameplay scene.
package playing

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/hellfall/internal/application/encounter"
	"github.com/younwookim/hellfall/internal/application/replay"
	"github.com/younwookim/hellfall/internal/application/scene"
	"github.com/younwookim/hellfall/internal/application/state"
	"github.com/younwookim/hellfall/internal/application/system"
	"github.com/younwookim/hellfall/internal/domain/entity"
)

// CameraLag is how many ticks the camera takes to close the gap to the player
const CameraLag = 30

// InputSource supplies one frame of input per update
type InputSource interface {
	GetInput() system.InputState
}

// Playing is the main gameplay scene
type Playing struct {
	enc     *encounter.Encounter
	input   InputSource
	paused  bool
	screenW int
	screenH int

	// Camera
	scroll entity.Vector

	// Screenshake jitter has its own rng so drawing never perturbs the simulation
	shakeRNG *rand.Rand

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
	lastLevel      int
}

// New creates a Playing scene around a running encounter.
// seed must be the seed the encounter's rng was created with.
// If recordPath is not empty, gameplay will be recorded.
func New(enc *encounter.Encounter, seed int64, screenW, screenH int, recordPath string) *Playing {
	p := &Playing{
		enc:            enc,
		input:          system.NewInputSystem(),
		screenW:        screenW,
		screenH:        screenH,
		shakeRNG:       rand.New(rand.NewSource(seed ^ 0x5eed)),
		recordFilename: recordPath,
		lastLevel:      enc.Level(),
	}

	if recordPath != "" {
		p.recorder = replay.NewRecorder(seed, enc.Level())
		log.Printf("Recording enabled: %s (seed: %d)", recordPath, seed)
	}

	p.scroll = p.cameraTarget()
	return p
}

// SetInput replaces the input source
func (p *Playing) SetInput(src InputSource) {
	p.input = src
}

// Encounter returns the simulation driven by this scene
func (p *Playing) Encounter() *encounter.Encounter {
	return p.enc
}

// State reports the scene state, with pause layered over the encounter status
func (p *Playing) State() state.GameState {
	if p.paused {
		return state.StatePaused
	}
	return p.enc.Status()
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	in := p.input.GetInput()

	if in.Quit {
		p.finish()
		return nil, ebiten.Termination
	}
	if in.Pause {
		p.paused = !p.paused
	}
	if !p.State().Simulating() {
		return nil, nil
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}
	p.enc.Tick(in)

	if lvl := p.enc.Level(); lvl != p.lastLevel {
		log.Printf("Level %d -> %d", p.lastLevel, lvl)
		p.lastLevel = lvl
	}

	p.updateCamera()
	return nil, nil
}

// cameraTarget centers the player on screen
func (p *Playing) cameraTarget() entity.Vector {
	c := p.enc.State().Player.Center()
	return entity.Vector{
		X: c.X - float64(p.screenW)/2,
		Y: c.Y - float64(p.screenH)/2,
	}
}

func (p *Playing) updateCamera() {
	p.scroll = p.scroll.Add(p.cameraTarget().Sub(p.scroll).Mult(1.0 / CameraLag))
}

// finish saves the recording once and stops it
func (p *Playing) finish() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.saveRecording()
	p.recorder.Stop()
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.finish()
}
