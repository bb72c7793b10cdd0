package playing

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/hellfall/internal/application/encounter"
	"github.com/younwookim/hellfall/internal/application/replay"
	"github.com/younwookim/hellfall/internal/application/scene"
	"github.com/younwookim/hellfall/internal/application/state"
	"github.com/younwookim/hellfall/internal/application/system"
	"github.com/younwookim/hellfall/internal/domain/entity"
	"github.com/younwookim/hellfall/internal/infrastructure/config"
)

const testSeed = 12345

// scriptedInput plays a fixed list of frames, then idles
type scriptedInput struct {
	frames []system.InputState
	next   int
}

func (s *scriptedInput) GetInput() system.InputState {
	if s.next >= len(s.frames) {
		return system.NoInput()
	}
	in := s.frames[s.next]
	s.next++
	return in
}

func idle(n int) []system.InputState {
	frames := make([]system.InputState, n)
	for i := range frames {
		frames[i] = system.NoInput()
	}
	return frames
}

func pause() system.InputState {
	in := system.NoInput()
	in.Pause = true
	return in
}

// guardedLevel keeps one lunger far from the player so the level never clears
func guardedLevel() *config.LevelConfig {
	tile := func(x, y, v int) (string, config.TileConfig) {
		return fmt.Sprintf("%d;%d", x, y), config.TileConfig{
			Type: "spawners", Variant: v, Pos: [2]float64{float64(x), float64(y)},
		}
	}
	cfg := &config.LevelConfig{TileSize: 16, Tilemap: map[string]config.TileConfig{}}
	k, v := tile(3, 3, system.SpawnerPlayer)
	cfg.Tilemap[k] = v
	k, v = tile(62, 62, system.SpawnerLunger)
	cfg.Tilemap[k] = v
	return cfg
}

func createTestScene(t *testing.T, recordPath string, frames ...system.InputState) *Playing {
	t.Helper()
	enc, err := encounter.New([]*config.LevelConfig{guardedLevel()}, 0, nil, rand.New(rand.NewSource(testSeed)))
	require.NoError(t, err)

	p := New(enc, testSeed, 320, 240, recordPath)
	p.SetInput(&scriptedInput{frames: frames})
	return p
}

func updateN(t *testing.T, p *Playing, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		next, err := p.Update(1.0 / 60.0)
		require.NoError(t, err)
		require.Nil(t, next)
	}
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
}

func TestNew(t *testing.T) {
	p := createTestScene(t, "")

	assert.Equal(t, state.StatePlaying, p.State())
	assert.Nil(t, p.recorder)
	assert.Equal(t, 0, p.Encounter().Ticks())
}

func TestPlaying_UpdateTicksEncounter(t *testing.T) {
	p := createTestScene(t, "")
	updateN(t, p, 5)

	assert.Equal(t, 5, p.Encounter().Ticks())
}

func TestPlaying_PauseFreezesSimulation(t *testing.T) {
	frames := append([]system.InputState{pause()}, idle(10)...)
	frames = append(frames, pause())
	p := createTestScene(t, "", frames...)

	updateN(t, p, 1)
	assert.Equal(t, state.StatePaused, p.State())
	assert.False(t, p.State().Simulating())

	updateN(t, p, 10)
	assert.Equal(t, 0, p.Encounter().Ticks(), "no ticks while paused")

	updateN(t, p, 1)
	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, 1, p.Encounter().Ticks(), "the unpausing frame is simulated")
}

func TestPlaying_QuitTerminates(t *testing.T) {
	in := system.NoInput()
	in.Quit = true
	p := createTestScene(t, "", in)

	next, err := p.Update(1.0 / 60.0)
	assert.Nil(t, next)
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Equal(t, 0, p.Encounter().Ticks())
}

func TestPlaying_GameOverState(t *testing.T) {
	p := createTestScene(t, "")
	p.Encounter().State().Dead = 1

	assert.Equal(t, state.StateGameOver, p.State())
	assert.True(t, p.State().Simulating())
}

func TestPlaying_Recording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")

	frames := []system.InputState{
		{Right: true, Dash: entity.DirNone},
		{Right: true, Dash: entity.DirNone},
		pause(),
		system.NoInput(),
		pause(),
		{Dash: entity.DirUp},
	}
	quit := system.NoInput()
	quit.Quit = true
	frames = append(frames, quit)

	p := createTestScene(t, path, frames...)
	require.NotNil(t, p.recorder)

	for i := 0; i < len(frames)-1; i++ {
		_, err := p.Update(1.0 / 60.0)
		require.NoError(t, err)
	}
	_, err := p.Update(1.0 / 60.0)
	require.ErrorIs(t, err, ebiten.Termination)
	assert.False(t, p.recorder.IsRecording())

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, int64(testSeed), data.Seed)
	assert.Equal(t, 0, data.Level)
	// frames 0, 1 and the unpausing frame 4, then the dash
	require.Len(t, data.Frames, 4)
	assert.True(t, data.Frames[0].R)
	assert.Equal(t, int(entity.DirUp)+1, data.Frames[3].Dsh)

	// OnExit after quit does not write twice
	p.OnExit()
}

func TestPlaying_RecordingReplaysToSameState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	frames := make([]system.InputState, 0, 90)
	for i := 0; i < 90; i++ {
		in := system.NoInput()
		in.Right = i < 30
		in.Down = i >= 30
		if i == 45 {
			in.Dash = entity.DirLeft
		}
		frames = append(frames, in)
	}

	p := createTestScene(t, path, frames...)
	updateN(t, p, len(frames))
	p.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	replayed, err := replay.Simulate(*data, []*config.LevelConfig{guardedLevel()}, nil)
	require.NoError(t, err)

	assert.Equal(t, p.Encounter().State().Player.Pos, replayed.State().Player.Pos)
	assert.Equal(t, p.Encounter().Ticks(), replayed.Ticks())
}

func TestPlaying_CameraFollowsWithLag(t *testing.T) {
	frames := make([]system.InputState, 20)
	for i := range frames {
		frames[i] = system.InputState{Right: true, Dash: entity.DirNone}
	}
	p := createTestScene(t, "", frames...)
	start := p.scroll

	updateN(t, p, 20)

	target := p.cameraTarget()
	assert.Greater(t, p.scroll.X, start.X)
	assert.Less(t, p.scroll.X, target.X, "camera trails the player")
	assert.InDelta(t, start.Y, p.scroll.Y, 1e-9)
}

func TestWipeSpans(t *testing.T) {
	t.Run("fully open", func(t *testing.T) {
		assert.Empty(t, wipeSpans(240, 320, 240))
	})

	t.Run("fully closed", func(t *testing.T) {
		spans := wipeSpans(0, 320, 240)
		require.Len(t, spans, 240/wipeRowHeight)
		for _, r := range spans {
			assert.Equal(t, 320.0, r.W)
		}
	})

	t.Run("partial", func(t *testing.T) {
		spans := wipeSpans(40, 320, 240)
		var middle []entity.Rect
		for _, r := range spans {
			if r.Y == 120 {
				middle = append(middle, r)
			}
		}
		require.Len(t, middle, 2)
		assert.InDelta(t, 120, middle[0].W, 0.1)
		assert.InDelta(t, 200, middle[1].X, 0.1)

		// rows far from the center are fully covered
		assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 320, H: wipeRowHeight}, spans[0])
	})
}
