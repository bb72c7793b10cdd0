package replay

import (
	"github.com/younwookim/hellfall/internal/application/system"
	"github.com/younwookim/hellfall/internal/domain/entity"
)

// FormatVersion is written into every recording
const FormatVersion = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int  `json:"f"`             // Frame number
	L   bool `json:"l,omitempty"`   // Left
	R   bool `json:"r,omitempty"`   // Right
	U   bool `json:"u,omitempty"`   // Up
	D   bool `json:"d,omitempty"`   // Down
	Dsh int  `json:"dsh,omitempty"` // Dash direction + 1, 0 if none
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Level     int          `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// FromInput converts live input into its recorded form.
// Pause and quit are presentation keys and are not recorded.
func FromInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:   frame,
		L:   in.Left,
		R:   in.Right,
		U:   in.Up,
		D:   in.Down,
		Dsh: int(in.Dash) + 1,
	}
}

// Input converts a recorded frame back into simulation input
func (fi FrameInput) Input() system.InputState {
	in := system.InputState{
		Left:  fi.L,
		Right: fi.R,
		Up:    fi.U,
		Down:  fi.D,
		Dash:  entity.DirNone,
	}
	if fi.Dsh >= 1 && fi.Dsh <= 4 {
		in.Dash = entity.Direction(fi.Dsh - 1)
	}
	return in
}
