package config

// Simulation limits. These size the fixed-capacity pools inside the state
// snapshot, so changing them changes the snapshot layout version.
const (
	MaxPlayers = 4
	MaxBullets = 32
)

// PlayerConfig contains all player movement and respawn tuning values.
// Units are world pixels and ticks at a fixed 60 Hz timestep; Y grows
// downward.
type PlayerConfig struct {
	// Movement
	GroundAccel    float64
	AirAccel       float64
	GroundFriction float64 // Per-tick velocity multiplier on the ground
	AirFriction    float64 // Per-tick velocity multiplier while airborne
	MaxSpeed       float64

	// Jumping
	JumpImpulse     float64
	JumpReleaseCut  float64 // Rising velocity multiplier when jump is released early
	WallJumpImpulse float64 // Fraction of JumpImpulse on a wall jump
	WallJumpPush    float64 // Fraction of MaxSpeed pushed away from the wall

	// Physics
	Gravity      float64
	MaxFallSpeed float64

	// Dimensions
	Width  float64
	Height float64

	// One-way platforms
	PlatformDropThreshold float64 // Feet must be within this of the platform top to land
}

// BulletConfig contains bullet pool tuning values.
type BulletConfig struct {
	Speed    float64 // World units per tick
	TTLTicks int     // Lifetime before a bullet despawns on its own
	MaxAmmo  int     // Hard cap for StartingAmmo and respawn refills
}

// MeleeConfig contains melee swing and deflection tuning values.
type MeleeConfig struct {
	WindupTicks   int     // Anticipation ticks before the hitbox opens
	ActiveTicks   int     // Ticks the hitbox stays lethal
	DeflectTicks  int     // Leading sub-window of ActiveTicks that deflects bullets
	CooldownTicks int     // Ticks after the swing before the next windup may start
	Range         float64 // Hitbox depth in front of the attacker
	DashImpulse   float64 // Forward velocity added when the hitbox opens
}

// MatchConfig contains the fixed phase durations of the match state machine.
// Per-match rules (round-win threshold, round timer, lives, ammo) are part
// of the host-supplied match setup, not this package.
type MatchConfig struct {
	WarmupTicks   int // Pre-round countdown
	RoundEndTicks int // Result display delay before the next round
}

// Global configuration instances
var Player PlayerConfig
var Bullet BulletConfig
var Melee MeleeConfig
var Match MatchConfig

func init() {
	Player = PlayerConfig{
		GroundAccel:    0.75,
		AirAccel:       0.4,
		GroundFriction: 0.85,
		AirFriction:    0.96,
		MaxSpeed:       5.0,

		JumpImpulse:     13.0,
		JumpReleaseCut:  0.5,
		WallJumpImpulse: 0.9,
		WallJumpPush:    0.8,

		Gravity:      0.7,
		MaxFallSpeed: 12.0,

		Width:  16,
		Height: 36,

		PlatformDropThreshold: 4.0,
	}

	Bullet = BulletConfig{
		Speed:    15.0,
		TTLTicks: 120,
		MaxAmmo:  3,
	}

	Melee = MeleeConfig{
		WindupTicks:   3,
		ActiveTicks:   12,
		DeflectTicks:  6,
		CooldownTicks: 18,
		Range:         48,
		DashImpulse:   2.0,
	}

	Match = MatchConfig{
		WarmupTicks:   180,
		RoundEndTicks: 90,
	}
}
