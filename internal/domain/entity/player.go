package entity

// Dash magnitude bands. The sign of Player.Dash carries the facing at dash start.
const (
	DashLength  = 60   // magnitude at dash start
	DashSettle  = 50   // burst window is (DashSettle, DashLength]
	DashDampAt  = 51   // magnitude at which burst velocity is damped
	DashSpeed   = 8.0  // pixels per tick during the burst window
	DashDamping = 0.01 // velocity multiplier applied at DashDampAt
	SnapEpsilon = 0.1  // velocity components below this snap to zero
)

// Player is the player-controlled body plus dash state
type Player struct {
	Body

	// Dash is a signed countdown: 0 = not dashing, ±60..±51 burst, ±50..±1 settling
	Dash    int
	DashDir Direction
}

// NewPlayer creates a player at pos with the given size
func NewPlayer(pos, size Vector) *Player {
	return &Player{
		Body:    NewBody(KindPlayer, pos, size),
		DashDir: DirNone,
	}
}

// DashMagnitude returns |Dash|
func (p *Player) DashMagnitude() int {
	if p.Dash < 0 {
		return -p.Dash
	}
	return p.Dash
}

// IsDashing returns true while any dash phase is running
func (p *Player) IsDashing() bool {
	return p.Dash != 0
}

// InBurst returns true during the first ten ticks of a dash
func (p *Player) InBurst() bool {
	return p.DashMagnitude() > DashSettle
}

// DashInvulnerable returns true while the dash shields the player from hits
func (p *Player) DashInvulnerable() bool {
	return p.DashMagnitude() >= DashSettle
}

// Visible returns false while the burst window hides the model
func (p *Player) Visible() bool {
	return !p.InBurst()
}

// StartDash arms a dash toward dir. Returns false if a dash is already running.
func (p *Player) StartDash(dir Direction) bool {
	if p.IsDashing() {
		return false
	}
	if p.Flip {
		p.Dash = -DashLength
	} else {
		p.Dash = DashLength
	}
	p.DashDir = dir
	return true
}

// DashSign returns -1 or +1 following the dash sign (0 when idle)
func (p *Player) DashSign() float64 {
	switch {
	case p.Dash > 0:
		return 1
	case p.Dash < 0:
		return -1
	default:
		return 0
	}
}
