// Command arena runs a headless match with bot-driven players. It is the
// reference host for the simulation core: a fixed-timestep loop feeding
// inputs in, draining events out, and reporting the result. Useful for
// soak-testing determinism and for watching balance changes play out.
package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/automoto/neonduel/bot"
	"github.com/automoto/neonduel/config"
	"github.com/automoto/neonduel/sim"
	"github.com/automoto/neonduel/stage"
)

func main() {
	stageName := flag.String("stage", "grid-arena", "stage to play on ("+strings.Join(stage.Names(), ", ")+")")
	players := flag.Int("players", 2, "number of players (2-4), all bot-driven")
	seed := flag.Uint64("seed", 1, "match seed")
	rounds := flag.Int("rounds", 3, "round wins needed to take the match")
	lives := flag.Int("lives", 3, "lives per player per round")
	roundTime := flag.Int("round-time", 60, "round time limit in seconds, 0 to disable")
	maxTicks := flag.Uint64("max-ticks", 60*60*30, "abort the match after this many ticks")
	tickRate := flag.Int("tickrate", 60, "ticks per second in realtime mode")
	realtime := flag.Bool("realtime", false, "pace the loop at the tick rate instead of running flat out")
	flag.Parse()

	cfg := sim.DefaultConfig()
	cfg.Stage = *stageName
	cfg.Players = *players
	cfg.Seed = *seed
	cfg.RoundWinThreshold = *rounds
	cfg.StartingLives = *lives
	cfg.RoundTimeTicks = *roundTime * 60

	s, err := sim.New(cfg)
	if err != nil {
		log.Fatalf("[arena] %v", err)
	}
	log.Printf("[arena] stage=%s players=%d seed=%d first-to=%d", cfg.Stage, cfg.Players, cfg.Seed, cfg.RoundWinThreshold)

	bots := make([]*bot.Controller, cfg.Players)
	for slot := range bots {
		bots[slot] = bot.New(slot)
	}

	var ticker *time.Ticker
	if *realtime {
		ticker = time.NewTicker(time.Second / time.Duration(*tickRate))
		defer ticker.Stop()
	}

	for s.TickCount() < *maxTicks {
		if ticker != nil {
			<-ticker.C
		}

		st := s.State()
		var inputs sim.Inputs
		for _, b := range bots {
			inputs[b.Slot()] = b.Act(&st)
		}
		s.Tick(inputs)

		for _, ev := range s.Events() {
			logEvent(s.TickCount(), ev)
		}
		if s.Phase() == config.PhaseMatchEnd {
			break
		}
	}

	report(s)
}

func logEvent(tick uint64, ev sim.Event) {
	switch ev.Kind {
	case sim.EventRoundStart:
		log.Printf("[arena] tick %d: round start", tick)
	case sim.EventRoundEnd:
		if ev.Slot >= 0 {
			log.Printf("[arena] tick %d: round end, p%d takes it", tick, ev.Slot)
		} else {
			log.Printf("[arena] tick %d: round end, draw", tick)
		}
	case sim.EventMatchEnd:
		log.Printf("[arena] tick %d: match end, p%d wins", tick, ev.Slot)
	case sim.EventHit:
		log.Printf("[arena] tick %d: p%d hit by p%d at (%.0f,%.0f)", tick, ev.Slot, ev.OtherSlot, ev.X, ev.Y)
	case sim.EventDeath:
		log.Printf("[arena] tick %d: p%d down (killer p%d)", tick, ev.Slot, ev.OtherSlot)
	case sim.EventDeflect:
		log.Printf("[arena] tick %d: p%d deflected p%d's bullet", tick, ev.Slot, ev.OtherSlot)
	case sim.EventRespawn:
		log.Printf("[arena] tick %d: p%d respawned at (%.0f,%.0f)", tick, ev.Slot, ev.X, ev.Y)
	}
}

func report(s *sim.Sim) {
	st := s.State()
	if st.Match.Phase == config.PhaseMatchEnd {
		log.Printf("[arena] winner: p%d after %d ticks", st.Match.Winner, st.Tick)
	} else {
		log.Printf("[arena] no winner after %d ticks (phase %s)", st.Tick, st.Match.Phase)
	}
	for slot := 0; slot < st.Config.Players; slot++ {
		log.Printf("[arena] p%d: %d round wins", slot, st.Players[slot].RoundWins)
	}
}
