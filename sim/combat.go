package sim

import (
	cfg "github.com/automoto/neonduel/config"
	"github.com/automoto/neonduel/stage"
)

// resolveCombat runs after every player has moved for the tick: bullets
// advance and test deflects and hits, melee hitboxes are swept, then all
// deaths marked during the tick are applied together so simultaneous kills
// trade.
func (s *Sim) resolveCombat() {
	s.updateBullets()
	s.resolveMeleeHits()
	s.finalizeDeaths()
}

// updateBullets advances every live bullet one step and resolves it against
// stage geometry and players. Players are tested in ascending slot order,
// which is the tie-break when a bullet could interact with two players on
// the same tick.
func (s *Sim) updateBullets() {
	for i := range s.state.Bullets {
		b := &s.state.Bullets[i]
		if !b.Active {
			continue
		}

		b.X += b.VX
		b.Y += b.VY
		b.TTL--

		if b.TTL <= 0 || !s.st.InBounds(b.X, b.Y) || s.st.BlocksBullet(b.X, b.Y) {
			b.Active = false
			continue
		}

		for slot := 0; slot < s.cfg.Players; slot++ {
			p := &s.state.Players[slot]
			if slot == b.Owner || !p.Alive() {
				continue
			}

			if s.tryDeflect(slot, p, b) {
				// The bullet now belongs to the deflector and keeps
				// flying; later slots can still be hit this tick.
				continue
			}

			if pointInPlayer(b.X, b.Y, p) {
				s.markDead(slot, b.Owner)
				s.emit(Event{Kind: EventHit, Slot: slot, OtherSlot: b.Owner, X: b.X, Y: b.Y})
				b.Active = false
				break
			}
		}
	}
}

// tryDeflect reverses a bullet that enters a defender's melee arc during
// the leading deflect window of the swing. The reversed bullet changes
// ownership and gets a fresh lifetime.
func (s *Sim) tryDeflect(slot int, p *PlayerState, b *BulletState) bool {
	if p.MeleeTimer <= cfg.Melee.ActiveTicks-cfg.Melee.DeflectTicks {
		return false
	}

	cx := p.X + cfg.Player.Width/2
	cy := p.Y + cfg.Player.Height/2
	if p.FacingRight {
		cx += cfg.Melee.Range / 2
	} else {
		cx -= cfg.Melee.Range / 2
	}
	dx := b.X - cx
	dy := b.Y - cy
	if dx*dx+dy*dy >= cfg.Melee.Range*cfg.Melee.Range {
		return false
	}

	prev := b.Owner
	b.VX = -b.VX
	b.VY = -b.VY
	b.Owner = slot
	b.TTL = cfg.Bullet.TTLTicks
	s.emit(Event{Kind: EventDeflect, Slot: slot, OtherSlot: prev, X: b.X, Y: b.Y})
	return true
}

// resolveMeleeHits sweeps every live melee hitbox against the other
// players. Unlike deflects, the hitbox is lethal for the entire active
// window.
func (s *Sim) resolveMeleeHits() {
	for attacker := 0; attacker < s.cfg.Players; attacker++ {
		a := &s.state.Players[attacker]
		if !a.Alive() || a.MeleeTimer == 0 {
			continue
		}
		hitbox := meleeHitbox(a)

		for target := 0; target < s.cfg.Players; target++ {
			if target == attacker {
				continue
			}
			t := &s.state.Players[target]
			if !t.Alive() {
				continue
			}
			if hitbox.Overlaps(playerBox(t)) {
				s.markDead(target, attacker)
				s.emit(Event{
					Kind:      EventHit,
					Slot:      target,
					OtherSlot: attacker,
					X:         t.X + cfg.Player.Width/2,
					Y:         t.Y + cfg.Player.Height/2,
				})
			}
		}
	}
}

// finalizeDeaths applies every death marked during this tick. Applying
// them in one pass after all hit tests means two players who kill each
// other on the same tick both die.
func (s *Sim) finalizeDeaths() {
	for slot := 0; slot < s.cfg.Players; slot++ {
		p := &s.state.Players[slot]
		if !p.PendingDeath {
			continue
		}
		p.PendingDeath = false
		if !p.Active || p.Eliminated || p.RespawnTimer > 0 {
			continue
		}

		killer := p.PendingKiller
		p.PendingKiller = -1
		p.Lives--
		p.VX, p.VY = 0, 0
		p.MeleeWindup = 0
		p.MeleeTimer = 0
		p.MeleeCooldown = 0
		p.DropPlatform = -1

		if p.Lives <= 0 {
			p.Eliminated = true
		} else {
			p.RespawnTimer = s.cfg.RespawnDelayTicks
			p.Ammo = s.cfg.StartingAmmo
		}

		s.emit(Event{
			Kind:      EventDeath,
			Slot:      slot,
			OtherSlot: killer,
			X:         p.X + cfg.Player.Width/2,
			Y:         p.Y + cfg.Player.Height/2,
		})
	}
}

func pointInPlayer(x, y float64, p *PlayerState) bool {
	return x >= p.X && x <= p.X+cfg.Player.Width &&
		y >= p.Y && y <= p.Y+cfg.Player.Height
}

func playerBox(p *PlayerState) stage.Rect {
	return stage.Rect{X: p.X, Y: p.Y, W: cfg.Player.Width, H: cfg.Player.Height}
}

// meleeHitbox is the swing area: a player-height rectangle extending Range
// in the facing direction.
func meleeHitbox(p *PlayerState) stage.Rect {
	x := p.X + cfg.Player.Width
	if !p.FacingRight {
		x = p.X - cfg.Melee.Range
	}
	return stage.Rect{X: x, Y: p.Y, W: cfg.Melee.Range, H: cfg.Player.Height}
}
