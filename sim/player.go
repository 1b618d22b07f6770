package sim

import (
	"github.com/solarlune/resolv"

	cfg "github.com/automoto/neonduel/config"
	"github.com/automoto/neonduel/stage"
)

// updatePlayer advances one player by a tick: respawn countdown, input,
// combat timers, then axis-separated movement against the stage. Wall and
// ground contact flags read here were written by the previous tick's
// resolution, matching the one-step-behind contact model the physics uses
// throughout.
func (s *Sim) updatePlayer(slot int, in InputSnapshot) {
	p := &s.state.Players[slot]
	if !p.Active || p.Eliminated {
		return
	}

	if p.RespawnTimer > 0 {
		p.RespawnTimer--
		if p.RespawnTimer == 0 {
			s.respawnPlayer(slot)
		}
		return
	}

	inputX := in.AxisX()
	inputY := in.AxisY()

	s.applyRun(p, inputX)
	if absFloat(inputX) > cfg.AimThreshold {
		p.FacingRight = inputX > 0
	}
	p.Aim = cfg.AimFromAxes(inputX, inputY, p.FacingRight)

	s.applyJump(slot, p, in)

	// Releasing jump early cuts the ascent short.
	if !in.Held.Has(BtnJump) && p.VY < 0 {
		p.VY *= cfg.Player.JumpReleaseCut
	}

	p.VY += cfg.Player.Gravity
	if p.VY > cfg.Player.MaxFallSpeed {
		p.VY = cfg.Player.MaxFallSpeed
	}

	s.applyShoot(slot, p, in)
	s.applyMelee(p, in)

	body := s.bodies[slot]
	s.moveHorizontal(p, body)
	s.moveVertical(p, body)
	s.updateWallContact(p, body)
	body.Update()

	if body.Check(0, 0, stage.TagHazard) != nil || p.Y > s.st.DeathY {
		s.markDead(slot, slot)
	}
}

// applyRun handles horizontal acceleration and friction. Friction is
// multiplicative per tick, so the same held input settles at the same
// terminal speed on every machine.
func (s *Sim) applyRun(p *PlayerState, inputX float64) {
	accel := cfg.Player.GroundAccel
	friction := cfg.Player.GroundFriction
	if !p.OnGround {
		accel = cfg.Player.AirAccel
		friction = cfg.Player.AirFriction
	}
	p.VX += inputX * accel
	p.VX *= friction
	if p.VX > cfg.Player.MaxSpeed {
		p.VX = cfg.Player.MaxSpeed
	}
	if p.VX < -cfg.Player.MaxSpeed {
		p.VX = -cfg.Player.MaxSpeed
	}
}

// applyJump resolves a jump press into a ground jump, a drop through a
// one-way platform, or a wall jump. Wall jumps consume the contact flag so
// one touch grants one jump.
func (s *Sim) applyJump(slot int, p *PlayerState, in InputSnapshot) {
	if !in.Pressed.Has(BtnJump) {
		return
	}
	switch {
	case p.OnGround && in.Held.Has(BtnDown):
		if !s.dropThroughPlatform(slot, p) {
			p.VY = -cfg.Player.JumpImpulse
			p.OnGround = false
		}
	case p.OnGround:
		p.VY = -cfg.Player.JumpImpulse
		p.OnGround = false
	case p.WallLeft:
		p.VY = -cfg.Player.JumpImpulse * cfg.Player.WallJumpImpulse
		p.VX = cfg.Player.MaxSpeed * cfg.Player.WallJumpPush
		p.FacingRight = true
		p.WallLeft = false
	case p.WallRight:
		p.VY = -cfg.Player.JumpImpulse * cfg.Player.WallJumpImpulse
		p.VX = -cfg.Player.MaxSpeed * cfg.Player.WallJumpPush
		p.FacingRight = false
		p.WallRight = false
	}
}

// dropThroughPlatform starts ignoring the one-way platform directly under
// the player's feet. Returns false when the player is standing on solid
// ground instead.
func (s *Sim) dropThroughPlatform(slot int, p *PlayerState) bool {
	body := s.bodies[slot]
	check := body.Check(0, 1, stage.TagPlatform)
	if check == nil {
		return false
	}
	platforms := check.ObjectsByTags(stage.TagPlatform)
	if len(platforms) == 0 {
		return false
	}
	p.DropPlatform = platforms[0].Data.(int)
	p.OnGround = false
	return true
}

// applyShoot fires a bullet in the current aim direction. Shooting is
// locked out while a melee is winding up or active.
func (s *Sim) applyShoot(slot int, p *PlayerState, in InputSnapshot) {
	if !in.Pressed.Has(BtnShoot) {
		return
	}
	if p.Ammo <= 0 || p.MeleeWindup > 0 || p.MeleeTimer > 0 {
		return
	}
	p.Ammo--
	s.spawnBullet(slot, p)
}

// applyMelee runs the windup -> active -> cooldown chain. The hitbox opens
// the tick the windup expires; the active timer starts counting on the
// following tick so the swing is live for exactly its configured duration.
func (s *Sim) applyMelee(p *PlayerState, in InputSnapshot) {
	if in.Pressed.Has(BtnMelee) && p.MeleeWindup == 0 && p.MeleeTimer == 0 && p.MeleeCooldown == 0 {
		p.MeleeWindup = cfg.Melee.WindupTicks
	}
	if p.MeleeWindup > 0 {
		p.MeleeWindup--
		if p.MeleeWindup == 0 {
			p.MeleeTimer = cfg.Melee.ActiveTicks
			// Short lunge in the facing direction
			if p.FacingRight {
				p.VX += cfg.Melee.DashImpulse
			} else {
				p.VX -= cfg.Melee.DashImpulse
			}
		}
	} else if p.MeleeTimer > 0 {
		p.MeleeTimer--
		if p.MeleeTimer == 0 {
			p.MeleeCooldown = cfg.Melee.CooldownTicks
		}
	} else if p.MeleeCooldown > 0 {
		p.MeleeCooldown--
	}
}

// moveHorizontal moves the body along X, stopping at solids, and clamps to
// the arena bounds.
func (s *Sim) moveHorizontal(p *PlayerState, body *resolv.Object) {
	dx := p.VX
	if dx != 0 {
		if check := body.Check(dx, 0, stage.TagSolid); check != nil {
			if solids := check.ObjectsByTags(stage.TagSolid); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
				p.VX = 0
			}
		}
		body.X += dx
	}

	minX := s.st.Bounds.X
	maxX := s.st.Bounds.X + s.st.Bounds.W - cfg.Player.Width
	if body.X < minX {
		body.X = minX
	}
	if body.X > maxX {
		body.X = maxX
	}
	p.X = body.X
}

// moveVertical moves the body along Y. Upward motion only collides with
// solids; downward motion lands on one-way platforms approached from above
// (unless being dropped through) and on solids.
func (s *Sim) moveVertical(p *PlayerState, body *resolv.Object) {
	dy := p.VY
	p.OnGround = false

	checkDist := dy
	if dy >= 0 {
		// Keep probing one pixel below while resting so ground contact
		// persists between ticks.
		checkDist++
	}

	check := body.Check(0, checkDist, stage.TagSolid, stage.TagPlatform)
	switch {
	case check == nil:
		body.Y += dy
	case dy < 0:
		if solids := check.ObjectsByTags(stage.TagSolid); len(solids) > 0 {
			body.Y += check.ContactWithObject(solids[0]).Y()
			p.VY = 0
		} else {
			body.Y += dy
		}
	default:
		landed := false
		for _, plat := range check.ObjectsByTags(stage.TagPlatform) {
			idx := plat.Data.(int)
			if idx == p.DropPlatform {
				continue
			}
			// Only land when the feet were above the surface; passing
			// through from below or the side is allowed.
			if body.Bottom() > plat.Y+cfg.Player.PlatformDropThreshold {
				continue
			}
			body.Y += check.ContactWithObject(plat).Y()
			p.VY = 0
			p.OnGround = true
			landed = true
			break
		}
		if !landed {
			if solids := check.ObjectsByTags(stage.TagSolid); len(solids) > 0 {
				body.Y += check.ContactWithObject(solids[0]).Y()
				p.VY = 0
				p.OnGround = true
				landed = true
			}
		}
		if !landed {
			body.Y += dy
		}
	}

	p.Y = body.Y

	// Stop ignoring a dropped platform once clear of it.
	if p.DropPlatform >= 0 {
		plat := s.st.Platforms[p.DropPlatform]
		box := stage.Rect{
			X: p.X,
			Y: p.Y - 1,
			W: cfg.Player.Width,
			H: cfg.Player.Height + 2,
		}
		if p.OnGround || !plat.Overlaps(box) {
			p.DropPlatform = -1
		}
	}
}

// updateWallContact refreshes the wall flags used by next tick's wall jump.
// Only solid walls count; one-way platforms cannot be wall-jumped.
func (s *Sim) updateWallContact(p *PlayerState, body *resolv.Object) {
	if p.OnGround {
		p.WallLeft = false
		p.WallRight = false
		return
	}
	p.WallLeft = body.Check(-1, 0, stage.TagSolid) != nil
	p.WallRight = body.Check(1, 0, stage.TagSolid) != nil
}

// spawnBullet takes the first free pool slot; a full pool drops the shot
// (the ammo was already spent, matching the fixed-capacity contract).
func (s *Sim) spawnBullet(owner int, p *PlayerState) {
	for i := range s.state.Bullets {
		b := &s.state.Bullets[i]
		if b.Active {
			continue
		}
		dx, dy := p.Aim.Vector()
		b.Active = true
		b.Owner = owner
		b.X = p.X + cfg.Player.Width/2
		b.Y = p.Y + cfg.Player.Height/2
		b.VX = dx * cfg.Bullet.Speed
		b.VY = dy * cfg.Bullet.Speed
		b.TTL = cfg.Bullet.TTLTicks
		return
	}
}

// respawnPlayer places a dead player back in the arena at a randomly chosen
// spawn point. This is the only gameplay consumer of the deterministic RNG.
func (s *Sim) respawnPlayer(slot int) {
	p := &s.state.Players[slot]
	sp := s.st.Spawns[s.randIntN(len(s.st.Spawns))]

	p.X, p.Y = sp.X, sp.Y
	p.VX, p.VY = 0, 0
	p.OnGround = false
	p.WallLeft = false
	p.WallRight = false
	p.DropPlatform = -1
	p.Ammo = s.cfg.StartingAmmo
	p.MeleeWindup = 0
	p.MeleeTimer = 0
	p.MeleeCooldown = 0
	p.PendingDeath = false
	p.PendingKiller = -1

	body := s.bodies[slot]
	body.X = p.X
	body.Y = p.Y
	body.Update()

	s.emit(Event{Kind: EventRespawn, Slot: slot, OtherSlot: -1, X: p.X, Y: p.Y})
}
