package sim

import (
	"fmt"

	"github.com/solarlune/resolv"

	cfg "github.com/automoto/neonduel/config"
	"github.com/automoto/neonduel/stage"
)

// tagPlayer tags player bodies in the collision space so stage queries can
// exclude them.
const tagPlayer = "player"

// Sim is one running simulation instance. The resolv space and bodies are
// derived caches rebuilt from state; everything authoritative lives in the
// State value, which is what snapshots copy.
type Sim struct {
	cfg        MatchConfig
	st         *stage.Stage
	stageIndex int

	space  *resolv.Space
	bodies [cfg.MaxPlayers]*resolv.Object

	state  State
	events []Event
}

// New creates a simulation for the given match configuration. The match
// starts in the warmup phase on tick 0.
func New(mc MatchConfig) (*Sim, error) {
	s := &Sim{events: make([]Event, 0, maxEvents)}
	if err := s.init(mc); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset discards the current match and starts a new one in place, keeping
// the allocated instance. Used by hosts that rematch without reloading.
func (s *Sim) Reset(mc MatchConfig) error {
	return s.init(mc)
}

func (s *Sim) init(mc MatchConfig) error {
	if err := mc.Validate(); err != nil {
		return err
	}
	st, idx, err := stage.ByName(mc.Stage)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	s.cfg = mc
	s.setStage(st, idx)

	s.state = State{
		Version:    StateVersion,
		StageIndex: idx,
		Config:     mc,
		Match: MatchState{
			Phase:       cfg.PhaseWarmup,
			RoundNumber: 1,
			PhaseTimer:  cfg.Match.WarmupTicks,
			RoundWinner: WinnerNone,
			Winner:      WinnerNone,
		},
	}
	s.resetRound()
	s.events = s.events[:0]
	return nil
}

// setStage rebuilds the collision space and player bodies for a stage.
func (s *Sim) setStage(st *stage.Stage, idx int) {
	s.st = st
	s.stageIndex = idx
	s.space = st.NewSpace()
	for i := range s.bodies {
		body := resolv.NewObject(0, 0, cfg.Player.Width, cfg.Player.Height, tagPlayer)
		body.SetShape(resolv.NewRectangle(0, 0, cfg.Player.Width, cfg.Player.Height))
		s.space.Add(body)
		s.bodies[i] = body
	}
}

// resetRound puts every participating player back at its spawn point with
// full lives and ammo and empties the bullet pool. Round wins survive.
func (s *Sim) resetRound() {
	for slot := range s.state.Players {
		p := &s.state.Players[slot]
		wins := p.RoundWins
		*p = PlayerState{
			Active:        slot < s.cfg.Players,
			DropPlatform:  -1,
			PendingKiller: -1,
			RoundWins:     wins,
		}
		if !p.Active {
			continue
		}
		sp := s.st.Spawn(slot)
		p.X, p.Y = sp.X, sp.Y
		p.FacingRight = slot%2 == 0
		p.Ammo = s.cfg.StartingAmmo
		p.Lives = s.cfg.StartingLives
	}
	for i := range s.state.Bullets {
		s.state.Bullets[i] = BulletState{}
	}
	s.syncBodies()
}

// syncBodies pushes authoritative player positions from state into the
// collision space. Called after any state mutation that bypasses the normal
// movement path (reset, restore, respawn).
func (s *Sim) syncBodies() {
	for slot, body := range s.bodies {
		p := &s.state.Players[slot]
		body.X = p.X
		body.Y = p.Y
		body.Update()
	}
}

// Tick advances the simulation by exactly one fixed step. inputs holds one
// snapshot per slot; entries for inactive slots are ignored. Events from
// the previous tick are discarded.
func (s *Sim) Tick(inputs Inputs) {
	s.events = s.events[:0]
	s.state.Tick++

	s.updateMatch()
	if s.state.Match.Phase != cfg.PhaseRound {
		return
	}

	for slot := 0; slot < s.cfg.Players; slot++ {
		s.updatePlayer(slot, inputs[slot])
	}
	s.resolveCombat()
	s.checkRoundEnd()
}

// State returns a copy of the complete simulation state. Copying the value
// is the snapshot operation; there is nothing to deep-clone.
func (s *Sim) State() State {
	return s.state
}

// Restore replaces the simulation state with a previously captured
// snapshot. The snapshot must come from a compatible build (same
// StateVersion) and reference a stage known to this binary. On success the
// next Tick continues from the snapshot as if it had never been left.
func (s *Sim) Restore(st State) error {
	if st.Version != StateVersion {
		return fmt.Errorf("%w: state version %d, want %d", ErrSnapshotMismatch, st.Version, StateVersion)
	}
	if err := st.Config.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshotMismatch, err)
	}
	stg, idx, err := stage.ByName(st.Config.Stage)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshotMismatch, err)
	}
	if idx != st.StageIndex {
		return fmt.Errorf("%w: stage %q resolves to index %d, snapshot has %d",
			ErrSnapshotMismatch, st.Config.Stage, idx, st.StageIndex)
	}

	if idx != s.stageIndex || s.space == nil {
		s.setStage(stg, idx)
	}
	s.cfg = st.Config
	s.state = st
	s.syncBodies()
	s.events = s.events[:0]
	return nil
}

// TickCount returns the number of ticks simulated so far.
func (s *Sim) TickCount() uint64 { return s.state.Tick }

// Phase returns the current match phase.
func (s *Sim) Phase() cfg.PhaseID { return s.state.Match.Phase }

// Stage returns the stage the match is played on.
func (s *Sim) Stage() *stage.Stage { return s.st }

// markDead flags a player for death this tick. The combat resolver
// finalizes all pending deaths after every hit has been evaluated, so
// trades kill both players.
func (s *Sim) markDead(victim, killer int) {
	p := &s.state.Players[victim]
	if !p.Alive() || p.PendingDeath {
		return
	}
	p.PendingDeath = true
	p.PendingKiller = killer
}
