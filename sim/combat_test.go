package sim

import (
	"testing"

	"github.com/automoto/neonduel/config"
)

// groundY is where a player stands on the grid-arena floor (floor top at
// 368 minus the player height).
var groundY = 368 - config.Player.Height

func hasEvent(events []Event, kind EventKind, slot int) bool {
	for _, ev := range events {
		if ev.Kind == kind && ev.Slot == slot {
			return true
		}
	}
	return false
}

// countBullets returns the number of live pool entries.
func countBullets(st State) int {
	n := 0
	for i := range st.Bullets {
		if st.Bullets[i].Active {
			n++
		}
	}
	return n
}

// A shot fired at a target 45 pixels downrange covers 15 pixels per tick
// and connects on the third tick after firing.
func TestBulletTravelAndKill(t *testing.T) {
	s := newRoundSim(t, testConfig())
	place(t, s, 0, 100, groundY) // muzzle at center x = 108
	place(t, s, 1, 143, groundY) // near edge 35 px downrange, 45 px deep

	var fire Inputs
	fire[0] = InputSnapshot{Held: BtnShoot, Pressed: BtnShoot}

	s.Tick(fire)
	st := s.State()
	if st.Players[0].Ammo != st.Config.StartingAmmo-1 {
		t.Fatalf("ammo after firing = %d, want %d", st.Players[0].Ammo, st.Config.StartingAmmo-1)
	}
	if countBullets(st) != 1 {
		t.Fatalf("bullet count after firing = %d, want 1", countBullets(st))
	}
	if st.Players[1].RespawnTimer != 0 {
		t.Fatalf("target died on tick 1, bullet should still be in flight")
	}

	s.Tick(Inputs{})
	if st = s.State(); st.Players[1].RespawnTimer != 0 {
		t.Fatalf("target died on tick 2, bullet should still be in flight")
	}

	s.Tick(Inputs{})
	st = s.State()
	if st.Players[1].Lives != st.Config.StartingLives-1 {
		t.Fatalf("target lives = %d, want %d", st.Players[1].Lives, st.Config.StartingLives-1)
	}
	if st.Players[1].RespawnTimer != st.Config.RespawnDelayTicks {
		t.Fatalf("respawn timer = %d, want %d", st.Players[1].RespawnTimer, st.Config.RespawnDelayTicks)
	}
	if countBullets(st) != 0 {
		t.Fatalf("bullet survived its hit")
	}
	if !hasEvent(s.Events(), EventHit, 1) || !hasEvent(s.Events(), EventDeath, 1) {
		t.Fatalf("missing hit/death events, got %v", s.Events())
	}
}

func TestAmmoIsBounded(t *testing.T) {
	s := newRoundSim(t, testConfig())
	place(t, s, 0, 100, groundY)
	place(t, s, 1, 600, groundY) // out of the line of fire's first few ticks

	var fire Inputs
	fire[0] = InputSnapshot{Held: BtnShoot, Pressed: BtnShoot}

	shots := s.State().Config.StartingAmmo
	for i := 0; i < shots+3; i++ {
		s.Tick(fire)
	}

	st := s.State()
	if st.Players[0].Ammo != 0 {
		t.Fatalf("ammo = %d, want 0 after emptying", st.Players[0].Ammo)
	}
	if n := countBullets(st); n > shots {
		t.Fatalf("%d live bullets from %d shots", n, shots)
	}
}

func TestDeflectInsideWindow(t *testing.T) {
	s := newRoundSim(t, testConfig())
	place(t, s, 0, 100, groundY)
	place(t, s, 1, 200, groundY) // slot 1 faces left by default

	st := s.State()
	st.Players[1].MeleeTimer = config.Melee.ActiveTicks // swing just opened
	st.Bullets[0] = BulletState{
		Active: true, Owner: 0,
		X: 160, Y: groundY + config.Player.Height/2,
		VX: config.Bullet.Speed, VY: 0,
		TTL: 50,
	}
	if err := s.Restore(st); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	s.Tick(Inputs{})
	st = s.State()
	b := st.Bullets[0]
	if !b.Active {
		t.Fatalf("deflected bullet despawned")
	}
	if b.Owner != 1 {
		t.Fatalf("bullet owner = %d, want the deflector (1)", b.Owner)
	}
	if b.VX != -config.Bullet.Speed {
		t.Fatalf("bullet VX = %v, want reversed %v", b.VX, -config.Bullet.Speed)
	}
	if b.TTL != config.Bullet.TTLTicks {
		t.Fatalf("bullet TTL = %d, want refreshed %d", b.TTL, config.Bullet.TTLTicks)
	}
	if !hasEvent(s.Events(), EventDeflect, 1) {
		t.Fatalf("missing deflect event, got %v", s.Events())
	}
}

func TestNoDeflectAfterWindowCloses(t *testing.T) {
	s := newRoundSim(t, testConfig())
	place(t, s, 0, 100, groundY)
	place(t, s, 1, 200, groundY)

	st := s.State()
	// One past the deflect sub-window once this tick's decrement lands.
	st.Players[1].MeleeTimer = config.Melee.ActiveTicks - config.Melee.DeflectTicks + 1
	st.Bullets[0] = BulletState{
		Active: true, Owner: 0,
		X: 160, Y: groundY + config.Player.Height/2,
		VX: config.Bullet.Speed, VY: 0,
		TTL: 50,
	}
	if err := s.Restore(st); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	s.Tick(Inputs{})
	st = s.State()
	b := st.Bullets[0]
	if b.Owner != 0 || b.VX != config.Bullet.Speed {
		t.Fatalf("bullet altered outside the deflect window: owner=%d vx=%v", b.Owner, b.VX)
	}
	if hasEvent(s.Events(), EventDeflect, 1) {
		t.Fatalf("deflect fired outside its window")
	}
}

func TestMeleeLethalForWholeActiveWindow(t *testing.T) {
	s := newRoundSim(t, testConfig())
	place(t, s, 0, 100, groundY) // slot 0 faces right by default
	place(t, s, 1, 130, groundY)

	st := s.State()
	st.Players[0].MeleeTimer = 2 // deflect window long gone, hitbox still live
	if err := s.Restore(st); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	s.Tick(Inputs{})
	st = s.State()
	if st.Players[1].Lives != st.Config.StartingLives-1 {
		t.Fatalf("late-window melee did not kill: lives=%d", st.Players[1].Lives)
	}
	if !hasEvent(s.Events(), EventHit, 1) {
		t.Fatalf("missing hit event, got %v", s.Events())
	}
}

func TestMeleeChainTiming(t *testing.T) {
	s := newRoundSim(t, testConfig())
	place(t, s, 0, 100, groundY)
	place(t, s, 1, 600, groundY)

	var swing Inputs
	swing[0] = InputSnapshot{Held: BtnMelee, Pressed: BtnMelee}
	s.Tick(swing)

	st := s.State()
	if st.Players[0].MeleeWindup != config.Melee.WindupTicks-1 {
		t.Fatalf("windup = %d after press, want %d", st.Players[0].MeleeWindup, config.Melee.WindupTicks-1)
	}
	if st.Players[0].MeleeTimer != 0 {
		t.Fatalf("hitbox opened during windup")
	}

	// Shooting is locked out while winding up.
	var fire Inputs
	fire[0] = InputSnapshot{Held: BtnShoot, Pressed: BtnShoot}
	s.Tick(fire)
	if st = s.State(); st.Players[0].Ammo != st.Config.StartingAmmo {
		t.Fatalf("fired while winding up a melee")
	}

	// Let the windup expire, then the active window, then confirm the
	// cooldown blocks an immediate re-swing.
	for s.State().Players[0].MeleeTimer == 0 {
		s.Tick(Inputs{})
	}
	for s.State().Players[0].MeleeTimer > 0 {
		s.Tick(Inputs{})
	}
	st = s.State()
	if st.Players[0].MeleeCooldown != config.Melee.CooldownTicks {
		t.Fatalf("cooldown = %d after swing, want %d", st.Players[0].MeleeCooldown, config.Melee.CooldownTicks)
	}

	s.Tick(swing)
	if st = s.State(); st.Players[0].MeleeWindup != 0 {
		t.Fatalf("re-swing started during cooldown")
	}
}

func TestMutualKillIsADraw(t *testing.T) {
	cfg := testConfig()
	cfg.StartingLives = 1
	s := newRoundSim(t, cfg)
	place(t, s, 0, 300, groundY)
	place(t, s, 1, 330, groundY)

	st := s.State()
	st.Players[0].MeleeTimer = config.Melee.ActiveTicks
	st.Players[1].MeleeTimer = config.Melee.ActiveTicks
	if err := s.Restore(st); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	s.Tick(Inputs{})
	st = s.State()
	if !st.Players[0].Eliminated || !st.Players[1].Eliminated {
		t.Fatalf("trade did not eliminate both: %v %v", st.Players[0].Eliminated, st.Players[1].Eliminated)
	}
	if st.Match.Phase != config.PhaseRoundEnd {
		t.Fatalf("phase = %s, want roundend", st.Match.Phase)
	}
	if st.Match.RoundWinner != WinnerDraw {
		t.Fatalf("round winner = %d, want draw", st.Match.RoundWinner)
	}
	if st.Players[0].RoundWins != 0 || st.Players[1].RoundWins != 0 {
		t.Fatalf("a draw credited a round win")
	}
}

func TestRespawnAfterDelay(t *testing.T) {
	s := newRoundSim(t, testConfig())
	place(t, s, 0, 100, groundY)
	place(t, s, 1, 400, groundY)

	st := s.State()
	st.Bullets[0] = BulletState{
		Active: true, Owner: 0,
		X: 393, Y: groundY + config.Player.Height/2,
		VX: config.Bullet.Speed, VY: 0,
		TTL: 50,
	}
	if err := s.Restore(st); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	s.Tick(Inputs{}) // bullet steps to 408, inside the target box
	st = s.State()
	if st.Players[1].RespawnTimer != st.Config.RespawnDelayTicks {
		t.Fatalf("target not killed: respawn timer = %d", st.Players[1].RespawnTimer)
	}

	// Dead players ignore inputs until the timer runs out.
	var fire Inputs
	fire[1] = InputSnapshot{Held: BtnShoot, Pressed: BtnShoot}
	for i := 0; i < st.Config.RespawnDelayTicks; i++ {
		s.Tick(fire)
	}

	st = s.State()
	p := &st.Players[1]
	if !p.Alive() {
		t.Fatalf("player not back after the respawn delay")
	}
	if p.Ammo != st.Config.StartingAmmo {
		t.Fatalf("respawn ammo = %d, want %d", p.Ammo, st.Config.StartingAmmo)
	}
	if countBullets(st) != 0 {
		t.Fatalf("dead player fired a bullet")
	}

	spawned := false
	for _, sp := range s.Stage().Spawns {
		if p.X == sp.X && p.Y == sp.Y {
			spawned = true
		}
	}
	if !spawned {
		t.Fatalf("respawn position (%v,%v) is not a stage spawn point", p.X, p.Y)
	}
}

func TestHazardKills(t *testing.T) {
	cfg := testConfig()
	cfg.Stage = "scatter-field"
	s := newRoundSim(t, cfg)

	st := s.State()
	p := &st.Players[0]
	p.X, p.Y = 300, 360 // feet in the lava
	p.VX, p.VY = 0, 0
	if err := s.Restore(st); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	s.Tick(Inputs{})
	st = s.State()
	if st.Players[0].Lives != st.Config.StartingLives-1 {
		t.Fatalf("hazard did not kill: lives = %d", st.Players[0].Lives)
	}
	if !hasEvent(s.Events(), EventDeath, 0) {
		t.Fatalf("missing death event, got %v", s.Events())
	}
}

func TestFallingOutKills(t *testing.T) {
	s := newRoundSim(t, testConfig())

	st := s.State()
	p := &st.Players[0]
	p.X, p.Y = 300, 460 // past the death line under the arena
	p.VX, p.VY = 0, 0
	p.OnGround = false
	if err := s.Restore(st); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	s.Tick(Inputs{})
	st = s.State()
	if st.Players[0].RespawnTimer == 0 && !st.Players[0].Eliminated {
		t.Fatalf("falling out of the arena did not kill")
	}
}
