package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/hellfall/internal/domain/entity"
)

// InputSystem reads raw key state
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Dash  entity.Direction // pressed this frame, DirNone if none
	Pause bool
	Quit  bool
}

// dashKeys maps IJKL onto dash directions
var dashKeys = []struct {
	key ebiten.Key
	dir entity.Direction
}{
	{ebiten.KeyL, entity.DirRight},
	{ebiten.KeyI, entity.DirUp},
	{ebiten.KeyJ, entity.DirLeft},
	{ebiten.KeyK, entity.DirDown},
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	in := InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS),
		Dash:  entity.DirNone,
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Quit:  inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
	for _, k := range dashKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			in.Dash = k.dir
			break
		}
	}
	return in
}

// Movement returns the movement intent: one unit per held axis key,
// opposing keys cancel
func (in InputState) Movement() entity.Vector {
	var v entity.Vector
	if in.Right {
		v.X++
	}
	if in.Left {
		v.X--
	}
	if in.Down {
		v.Y++
	}
	if in.Up {
		v.Y--
	}
	return v
}

// NoInput is an idle frame
func NoInput() InputState {
	return InputState{Dash: entity.DirNone}
}
