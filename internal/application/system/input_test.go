package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/hellfall/internal/domain/entity"
)

func TestInputState_Movement(t *testing.T) {
	tests := []struct {
		name string
		in   InputState
		want entity.Vector
	}{
		{"none", InputState{}, vec(0, 0)},
		{"right", InputState{Right: true}, vec(1, 0)},
		{"up left", InputState{Left: true, Up: true}, vec(-1, -1)},
		{"opposing cancel", InputState{Left: true, Right: true, Down: true}, vec(0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Movement())
		})
	}
}

func TestNoInput(t *testing.T) {
	in := NoInput()

	assert.Equal(t, entity.DirNone, in.Dash)
	assert.Equal(t, entity.Vector{}, in.Movement())
	assert.False(t, in.Pause)
}
