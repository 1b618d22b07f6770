package sim

import (
	cfg "github.com/automoto/neonduel/config"
)

// updateMatch runs the phase machine at the top of every tick. Time-driven
// transitions (warmup countdown, round timer, round-end intermission)
// happen here; the elimination-driven transition to RoundEnd happens in
// checkRoundEnd after combat so the deciding tick's deaths are included.
func (s *Sim) updateMatch() {
	m := &s.state.Match

	switch m.Phase {
	case cfg.PhaseWarmup:
		if m.PhaseTimer > 0 {
			m.PhaseTimer--
			return
		}
		s.startRound()

	case cfg.PhaseRound:
		if s.cfg.RoundTimeTicks > 0 {
			m.RoundTimer--
			if m.RoundTimer <= 0 {
				// Time out with multiple players standing is a draw.
				s.endRound(WinnerDraw)
			}
		}

	case cfg.PhaseRoundEnd:
		if m.PhaseTimer > 0 {
			m.PhaseTimer--
			return
		}
		if w := s.matchWinner(); w != WinnerNone {
			m.Phase = cfg.PhaseMatchEnd
			m.Winner = w
			s.emit(Event{Kind: EventMatchEnd, Slot: w, OtherSlot: -1})
			return
		}
		m.RoundNumber++
		s.resetRound()
		s.startRound()

	case cfg.PhaseMatchEnd:
		// Terminal until the host calls Reset.
	}
}

func (s *Sim) startRound() {
	m := &s.state.Match
	m.Phase = cfg.PhaseRound
	m.RoundTimer = s.cfg.RoundTimeTicks
	m.RoundWinner = WinnerNone
	s.emit(Event{Kind: EventRoundStart, Slot: WinnerNone, OtherSlot: -1})
}

// endRound enters the round-end intermission and credits the winner, if
// any. Bullets keep their pool slots but nothing moves until the next
// round resets the arena.
func (s *Sim) endRound(winner int) {
	m := &s.state.Match
	m.Phase = cfg.PhaseRoundEnd
	m.PhaseTimer = cfg.Match.RoundEndTicks
	m.RoundWinner = winner
	if winner >= 0 {
		s.state.Players[winner].RoundWins++
	}
	s.emit(Event{Kind: EventRoundEnd, Slot: winner, OtherSlot: -1})
}

// checkRoundEnd runs after combat while in the Round phase. The round ends
// when at most one player remains uneliminated; a simultaneous final trade
// is a draw.
func (s *Sim) checkRoundEnd() {
	if s.state.Match.Phase != cfg.PhaseRound {
		return
	}

	remaining := 0
	last := WinnerNone
	for slot := 0; slot < s.cfg.Players; slot++ {
		p := &s.state.Players[slot]
		if p.Active && !p.Eliminated {
			remaining++
			last = slot
		}
	}
	if remaining > 1 {
		return
	}
	if remaining == 1 {
		s.endRound(last)
	} else {
		s.endRound(WinnerDraw)
	}
}

// matchWinner returns the slot that has reached the round-win threshold,
// or WinnerNone. Wins are credited one round at a time so at most one slot
// can cross the threshold.
func (s *Sim) matchWinner() int {
	for slot := 0; slot < s.cfg.Players; slot++ {
		if s.state.Players[slot].RoundWins >= s.cfg.RoundWinThreshold {
			return slot
		}
	}
	return WinnerNone
}
