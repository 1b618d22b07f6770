// Package sim implements the deterministic fixed-timestep gameplay core:
// player movement, bullets, melee, and the match state machine. All mutable
// state lives in a single value-semantics State so the host can snapshot and
// restore the whole simulation between ticks for rollback. Re-simulating
// from a restored snapshot with the same inputs reproduces bit-identical
// states; nothing in this package reads the wall clock or platform
// randomness.
package sim

import (
	cfg "github.com/automoto/neonduel/config"
)

// StateVersion identifies the snapshot layout. Restoring a snapshot written
// by a build with a different layout is rejected.
const StateVersion = 1

// Winner sentinels, shared by MatchState.Winner and MatchState.RoundWinner.
const (
	WinnerNone = -1
	WinnerDraw = -2
)

// PlayerState is the full per-slot simulation state. The slot index is the
// position in State.Players; no entity holds pointers to another.
type PlayerState struct {
	Active bool // Slot participates in this match

	// Position and velocity (top-left of the collision box, Y down)
	X, Y   float64
	VX, VY float64

	FacingRight bool
	Aim         cfg.AimID

	// Contact flags, derived from stage collision each tick
	OnGround  bool
	WallLeft  bool
	WallRight bool

	// One-way platform currently being dropped through, -1 otherwise
	DropPlatform int

	// Combat
	Ammo          int
	Lives         int
	MeleeWindup   int // Anticipation ticks before the hitbox opens
	MeleeTimer    int // > 0 means the melee hitbox is live
	MeleeCooldown int
	RespawnTimer  int // > 0 means dead and waiting to respawn
	Eliminated    bool

	// Death marked this tick, finalized by the combat resolver
	PendingDeath  bool
	PendingKiller int

	// Score
	RoundWins int
}

// Alive reports whether the player is currently simulated for movement and
// collision. Exactly one of alive, respawning (RespawnTimer > 0) and
// Eliminated holds for an active slot.
func (p *PlayerState) Alive() bool {
	return p.Active && !p.Eliminated && p.RespawnTimer == 0
}

// BulletState is one slot of the fixed-capacity bullet pool. A slot is free
// when Active is false; pool entries are never moved or reordered.
type BulletState struct {
	Active bool
	Owner  int // Slot that fired (or last deflected) the bullet
	X, Y   float64
	VX, VY float64
	TTL    int
}

// MatchState owns the authoritative phase transitions and round bookkeeping.
type MatchState struct {
	Phase       cfg.PhaseID
	RoundNumber int
	PhaseTimer  int // Warmup/RoundEnd countdown
	RoundTimer  int // Remaining round ticks, counts down during Round
	RoundWinner int // Slot, WinnerNone or WinnerDraw
	Winner      int // Set when Phase is PhaseMatchEnd
}

// State is the complete serializable simulation state. Snapshot = copy.
// It embeds the match configuration and the RNG call counter so a restored
// snapshot re-derives every subsequent state without outside context.
type State struct {
	Version    int
	Tick       uint64
	StageIndex int
	Config     MatchConfig
	RandCalls  uint64
	Match      MatchState
	Players    [cfg.MaxPlayers]PlayerState
	Bullets    [cfg.MaxBullets]BulletState
}
