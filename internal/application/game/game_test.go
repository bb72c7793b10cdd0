package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/hellfall/internal/application/scene"
	"github.com/younwookim/hellfall/internal/infrastructure/config"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	lastDT        float64
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	m.lastDT = dt
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

func testDisplay() config.DisplayConfig {
	return config.DefaultSettings().Display
}

func TestNew(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, testDisplay())

	assert.NotNil(t, g)
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
	assert.Same(t, mockInitial, g.Current())
}

func TestGame_UpdatePassesFixedStep(t *testing.T) {
	tests := []struct {
		name string
		tps  int
		want float64
	}{
		{"settings", 30, 1.0 / 30.0},
		{"unset falls back to ebiten default", 0, 1.0 / float64(ebiten.DefaultTPS)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockScene{}
			display := testDisplay()
			display.TPS = tt.tps
			g := New(m, display)

			assert.NoError(t, g.Update())
			assert.Equal(t, 1, m.updateCalled)
			assert.InDelta(t, tt.want, m.lastDT, 1e-12)
		})
	}
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, testDisplay())

	img := ebiten.NewImage(320, 240)
	g.Draw(img)

	assert.Equal(t, 1, mockInitial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	display := testDisplay()
	display.ScreenWidth = 400
	display.ScreenHeight = 300
	g := New(&mockScene{}, display)

	w, h := g.Layout(1280, 960)
	assert.Equal(t, 400, w)
	assert.Equal(t, 300, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &mockScene{}
	scene1.nextScene = scene2

	g := New(scene1, testDisplay())

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")
	assert.Same(t, scene2, g.Current())

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, scene1.updateCalled)
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{}
	g := New(scene1, testDisplay())

	for i := 0; i < 5; i++ {
		assert.NoError(t, g.Update())
	}

	assert.Equal(t, 5, scene1.updateCalled, "All updates go to scene1")
	assert.Equal(t, 0, scene1.onExitCalled, "No OnExit when no transition")
}

func TestGame_UpdateError(t *testing.T) {
	scene1 := &mockScene{updateErr: ebiten.Termination}
	g := New(scene1, testDisplay())

	err := g.Update()
	assert.ErrorIs(t, err, ebiten.Termination, "Error should propagate from scene")
}

func TestGame_CloseOnce(t *testing.T) {
	scene1 := &mockScene{}
	g := New(scene1, testDisplay())

	g.Close()
	g.Close()

	assert.Equal(t, 1, scene1.onExitCalled)
}
