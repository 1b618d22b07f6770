package sim

import cfg "github.com/automoto/neonduel/config"

// Buttons is a bitmask of digital controls sampled for one tick.
type Buttons uint8

const (
	BtnUp Buttons = 1 << iota
	BtnDown
	BtnLeft
	BtnRight
	BtnJump
	BtnShoot
	BtnMelee
	BtnStart
)

// Has reports whether every button in mask is set.
func (b Buttons) Has(mask Buttons) bool {
	return b&mask == mask
}

// InputSnapshot is one player's controls for one tick. The host is
// responsible for edge detection: Pressed carries only buttons that went
// down this tick, Held carries everything currently down. StickX/StickY are
// the analog axes in -1..1 with Y positive downward, matching world
// coordinates.
type InputSnapshot struct {
	Held    Buttons
	Pressed Buttons
	StickX  float64
	StickY  float64
}

// Inputs is the full input frame for a tick, indexed by player slot.
type Inputs [cfg.MaxPlayers]InputSnapshot

// AxisX merges the analog stick with the digital left/right buttons,
// preferring whichever has the larger magnitude.
func (in InputSnapshot) AxisX() float64 {
	var dpad float64
	if in.Held.Has(BtnLeft) {
		dpad -= 1
	}
	if in.Held.Has(BtnRight) {
		dpad += 1
	}
	if absFloat(in.StickX) > absFloat(dpad) {
		return in.StickX
	}
	return dpad
}

// AxisY merges the analog stick with the digital up/down buttons. Positive
// is down.
func (in InputSnapshot) AxisY() float64 {
	var dpad float64
	if in.Held.Has(BtnUp) {
		dpad -= 1
	}
	if in.Held.Has(BtnDown) {
		dpad += 1
	}
	if absFloat(in.StickY) > absFloat(dpad) {
		return in.StickY
	}
	return dpad
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
