package entity

// Enemy behavior constants
const (
	WalkerSpeed        = 1.0
	WalkerStandoff     = 45.0 // walkers stop closing in below this distance
	WalkerShootDelay   = 60   // ticks between shots
	WalkerMinWalk      = 30
	WalkerMaxWalk      = 120
	WalkerWalkChance   = 0.01
	WalkerMuzzleOffset = 7.0

	LungerSpeed     = 1.5
	LungerBiteRange = 13.0
	LungerHoldRange = 25.0
	LungerBiteDelay = 150

	BossPhaseCycle      = 500
	BossBoltHigh        = 450 // bolts fire while BossBoltLow < phase < BossBoltHigh
	BossBoltLow         = 50
	BossVulnerableAbove = 350
	BossTeleportDelay   = 15
	BossGrace           = 150
	BossHitPoints       = -6 // counts up to zero
	BossStaffCycle      = 50
	BossLeftThreshold   = 120.0
	BossRightThreshold  = 160.0
	TimerDisarmed       = -1
)

// Enemy is a hostile body. Kind selects which timers are meaningful,
// the same way a single enemy record carries every AI field.
type Enemy struct {
	Body

	Speed float64

	// Walker
	Walking       int // remaining ticks of the current walk episode
	ShootCooldown int

	// Lunger
	BiteCooldown int

	// Boss
	PhaseTimer     int
	TeleportTimer  int
	GraceTimer     int
	HitPoints      int
	StaffPhase     int
	TeleportTarget Vector
}

// NewWalker creates a ranged walker enemy
func NewWalker(pos Vector) *Enemy {
	return &Enemy{
		Body:  NewBody(KindWalker, pos, Vector{X: 7, Y: 15}),
		Speed: WalkerSpeed,
	}
}

// NewLunger creates a melee lunger enemy
func NewLunger(pos Vector) *Enemy {
	return &Enemy{
		Body:  NewBody(KindLunger, pos, Vector{X: 10, Y: 7}),
		Speed: LungerSpeed,
	}
}

// NewBoss creates the teleporting boss
func NewBoss(pos Vector) *Enemy {
	return &Enemy{
		Body:          NewBody(KindBoss, pos, Vector{X: 21, Y: 31}),
		PhaseTimer:    BossPhaseCycle,
		TeleportTimer: TimerDisarmed,
		HitPoints:     BossHitPoints,
	}
}

// Vulnerable reports whether a boss can take a scoring hit this tick
func (e *Enemy) Vulnerable() bool {
	return e.PhaseTimer > BossVulnerableAbove && e.GraceTimer == 0
}

// Defeated reports whether the boss has taken every hit
func (e *Enemy) Defeated() bool {
	return e.HitPoints >= 0
}
