// Package config defines lightweight typed identifiers and tuning values for
// the simulation core. It must have zero dependencies on any graphics or
// platform library so the core stays headless and deterministic.
package config

// PhaseID represents the current phase of a match.
type PhaseID int

const (
	PhaseWarmup   PhaseID = iota // Pre-match countdown, players placed but frozen
	PhaseRound                   // Active gameplay
	PhaseRoundEnd                // Round decided, result display delay
	PhaseMatchEnd                // Terminal until the host reinitializes
)

func (p PhaseID) String() string {
	switch p {
	case PhaseWarmup:
		return "warmup"
	case PhaseRound:
		return "round"
	case PhaseRoundEnd:
		return "roundend"
	case PhaseMatchEnd:
		return "matchend"
	}
	return "unknown"
}

// AimID is one of the 8 discrete aim directions. Bullet velocities are
// derived exclusively from this table so diagonal shots use the exact same
// constant on every platform.
type AimID int

const (
	AimRight AimID = iota
	AimDownRight
	AimDown
	AimDownLeft
	AimLeft
	AimUpLeft
	AimUp
	AimUpRight
	AimCount
)

// invSqrt2 normalizes diagonal aim so bullets travel at the same speed in
// all 8 directions.
const invSqrt2 = 0.70710678118654752440

// aimVectors maps AimID to a unit direction vector. Y is positive downward,
// matching the rest of the simulation.
var aimVectors = [AimCount][2]float64{
	AimRight:     {1, 0},
	AimDownRight: {invSqrt2, invSqrt2},
	AimDown:      {0, 1},
	AimDownLeft:  {-invSqrt2, invSqrt2},
	AimLeft:      {-1, 0},
	AimUpLeft:    {-invSqrt2, -invSqrt2},
	AimUp:        {0, -1},
	AimUpRight:   {invSqrt2, -invSqrt2},
}

// Vector returns the unit direction for an aim ID.
func (a AimID) Vector() (x, y float64) {
	if a < 0 || a >= AimCount {
		return 1, 0
	}
	return aimVectors[a][0], aimVectors[a][1]
}

// AimFromAxes quantizes an input axis pair to one of the 8 aim directions.
// Axes below AimThreshold count as neutral; a fully neutral pair falls back
// to the horizontal facing direction.
func AimFromAxes(x, y float64, facingRight bool) AimID {
	ax := 0
	if x > AimThreshold {
		ax = 1
	} else if x < -AimThreshold {
		ax = -1
	}
	ay := 0
	if y > AimThreshold {
		ay = 1
	} else if y < -AimThreshold {
		ay = -1
	}

	if ax == 0 && ay == 0 {
		if facingRight {
			return AimRight
		}
		return AimLeft
	}

	switch {
	case ax == 1 && ay == 0:
		return AimRight
	case ax == 1 && ay == 1:
		return AimDownRight
	case ax == 0 && ay == 1:
		return AimDown
	case ax == -1 && ay == 1:
		return AimDownLeft
	case ax == -1 && ay == 0:
		return AimLeft
	case ax == -1 && ay == -1:
		return AimUpLeft
	case ax == 0 && ay == -1:
		return AimUp
	default:
		return AimUpRight
	}
}

// AimThreshold is the axis magnitude above which a direction is considered
// held for aim quantization and facing updates.
const AimThreshold = 0.3

// Direction constants for player facing.
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)
