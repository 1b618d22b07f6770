// Package bot provides a deterministic scripted opponent for filling empty
// slots. A bot's decision is a pure function of the simulation state and
// tick counter — no randomness and no wall clock — so replaying the same
// match produces the same bot inputs.
package bot

import (
	cfg "github.com/automoto/neonduel/config"
	"github.com/automoto/neonduel/sim"
)

// Controller drives one slot. It remembers the previous tick's buttons
// only to perform edge detection, the same job a real input device driver
// does for human players.
type Controller struct {
	slot int
	prev sim.Buttons
}

// New creates a controller for a slot.
func New(slot int) *Controller {
	return &Controller{slot: slot}
}

// Slot returns the slot this controller drives.
func (c *Controller) Slot() int { return c.slot }

// Act produces the input snapshot for the current tick.
func (c *Controller) Act(st *sim.State) sim.InputSnapshot {
	held := c.decide(st)
	in := sim.InputSnapshot{
		Held:    held,
		Pressed: held &^ c.prev,
	}
	c.prev = held
	return in
}

func (c *Controller) decide(st *sim.State) sim.Buttons {
	p := &st.Players[c.slot]
	if !p.Alive() {
		return 0
	}

	target := nearestOpponent(st, c.slot)
	if target < 0 {
		return 0
	}
	t := &st.Players[target]

	dx := (t.X + cfg.Player.Width/2) - (p.X + cfg.Player.Width/2)
	dy := (t.Y + cfg.Player.Height/2) - (p.Y + cfg.Player.Height/2)
	tick := st.Tick

	var held sim.Buttons

	// Steer toward the target, with a deadzone so the bot does not
	// oscillate when directly underneath.
	switch {
	case dx > cfg.Bot.ApproachDeadzone:
		held |= sim.BtnRight
	case dx < -cfg.Bot.ApproachDeadzone:
		held |= sim.BtnLeft
	}

	// Chase vertically: hop up toward a higher target, drop through
	// platforms toward a lower one. Both on a period so presses register
	// as fresh edges.
	if dy < -cfg.Bot.JumpHeightGap {
		if tick%uint64(cfg.Bot.JumpPeriod) == 0 {
			held |= sim.BtnJump
		}
	} else if dy > cfg.Bot.DropHeightGap && p.OnGround {
		held |= sim.BtnDown
		if tick%uint64(cfg.Bot.JumpPeriod) == 0 {
			held |= sim.BtnJump
		}
	}

	// Close range: swing. Mid range with vertical alignment: shoot.
	inMeleeRange := absFloat(dx) < cfg.Bot.MeleeRangeX && absFloat(dy) < cfg.Bot.MeleeRangeY
	if inMeleeRange {
		if tick%uint64(cfg.Bot.MeleePeriod) == 0 {
			held |= sim.BtnMelee
		}
	} else if p.Ammo > 0 && absFloat(dy) < cfg.Bot.ShootAlignY {
		if tick%uint64(cfg.Bot.ShootPeriod) == 0 {
			held |= sim.BtnShoot
		}
	}

	return held
}

// nearestOpponent picks the closest living enemy by squared distance,
// lower slot winning ties.
func nearestOpponent(st *sim.State, slot int) int {
	best := -1
	bestDist := 0.0
	for i := range st.Players {
		if i == slot {
			continue
		}
		p := &st.Players[i]
		if !p.Alive() {
			continue
		}
		dx := p.X - st.Players[slot].X
		dy := p.Y - st.Players[slot].Y
		d := dx*dx + dy*dy
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
