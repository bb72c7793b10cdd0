package replay

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/younwookim/hellfall/internal/application/encounter"
	"github.com/younwookim/hellfall/internal/application/system"
	"github.com/younwookim/hellfall/internal/infrastructure/config"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.NoInput(), false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Level returns the level the recording started on
func (r *Replayer) Level() int {
	return r.data.Level
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Simulate runs a recording headless against levels and returns the
// encounter in its final state. The same data always yields the same state.
func Simulate(data ReplayData, levels []*config.LevelConfig, cues encounter.CuePlayer) (*encounter.Encounter, error) {
	enc, err := encounter.New(levels, data.Level, cues, rand.New(rand.NewSource(data.Seed)))
	if err != nil {
		return nil, fmt.Errorf("failed to start replay: %w", err)
	}

	r := NewReplayer(data)
	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		enc.Tick(in)
	}
	return enc, nil
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int, level int) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Seed:      12345,
		Level:     level,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i}
	}

	return data
}
