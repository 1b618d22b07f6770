package sim

import (
	"errors"
	"fmt"

	cfg "github.com/automoto/neonduel/config"
	"github.com/automoto/neonduel/stage"
)

var (
	// ErrBadConfig is returned when a MatchConfig fails validation.
	ErrBadConfig = errors.New("invalid match config")

	// ErrSnapshotMismatch is returned when a snapshot cannot be restored:
	// wrong version, unknown stage, or a payload that does not decode.
	ErrSnapshotMismatch = errors.New("snapshot mismatch")
)

// MatchConfig is the immutable per-match setup. It travels inside every
// snapshot so a restored state carries its own rules.
type MatchConfig struct {
	Stage             string
	Players           int
	RoundWinThreshold int
	RoundTimeTicks    int // 0 disables the round timer
	StartingLives     int
	StartingAmmo      int
	RespawnDelayTicks int
	Seed              uint64
}

// DefaultConfig returns a playable two-player setup on the first stage.
func DefaultConfig() MatchConfig {
	return MatchConfig{
		Stage:             "grid-arena",
		Players:           2,
		RoundWinThreshold: 3,
		RoundTimeTicks:    60 * 60,
		StartingLives:     3,
		StartingAmmo:      cfg.Bullet.MaxAmmo,
		RespawnDelayTicks: 90,
		Seed:              1,
	}
}

// Validate checks the config against the engine limits. Every error wraps
// ErrBadConfig.
func (c MatchConfig) Validate() error {
	if c.Players < 2 || c.Players > cfg.MaxPlayers {
		return fmt.Errorf("%w: players must be 2..%d, got %d", ErrBadConfig, cfg.MaxPlayers, c.Players)
	}
	if _, _, err := stage.ByName(c.Stage); err != nil {
		return fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if c.RoundWinThreshold < 1 {
		return fmt.Errorf("%w: round win threshold must be at least 1, got %d", ErrBadConfig, c.RoundWinThreshold)
	}
	if c.RoundTimeTicks < 0 {
		return fmt.Errorf("%w: round time must not be negative, got %d", ErrBadConfig, c.RoundTimeTicks)
	}
	if c.StartingLives < 1 {
		return fmt.Errorf("%w: starting lives must be at least 1, got %d", ErrBadConfig, c.StartingLives)
	}
	if c.StartingAmmo < 0 || c.StartingAmmo > cfg.Bullet.MaxAmmo {
		return fmt.Errorf("%w: starting ammo must be 0..%d, got %d", ErrBadConfig, cfg.Bullet.MaxAmmo, c.StartingAmmo)
	}
	if c.RespawnDelayTicks < 1 {
		return fmt.Errorf("%w: respawn delay must be at least 1 tick, got %d", ErrBadConfig, c.RespawnDelayTicks)
	}
	return nil
}
