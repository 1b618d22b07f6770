package sim

// EventKind tags a gameplay occurrence the host may want to present
// (sound, particles, camera shake, UI). Events carry no gameplay state;
// re-simulating a tick regenerates them.
type EventKind int

const (
	EventHit EventKind = iota
	EventDeath
	EventDeflect
	EventRespawn
	EventRoundStart
	EventRoundEnd
	EventMatchEnd
)

func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "hit"
	case EventDeath:
		return "death"
	case EventDeflect:
		return "deflect"
	case EventRespawn:
		return "respawn"
	case EventRoundStart:
		return "round-start"
	case EventRoundEnd:
		return "round-end"
	case EventMatchEnd:
		return "match-end"
	default:
		return "unknown"
	}
}

// Event is one presentation cue. Slot is the primary subject (the victim
// for hits and deaths, the winner for round/match end, WinnerNone or
// WinnerDraw when there is none). OtherSlot is the counterpart (the killer,
// the deflected bullet's previous owner) or -1.
type Event struct {
	Kind      EventKind
	Slot      int
	OtherSlot int
	X, Y      float64
}

// maxEvents bounds the per-tick event buffer; overflow drops the newest.
const maxEvents = 64

func (s *Sim) emit(ev Event) {
	if len(s.events) < maxEvents {
		s.events = append(s.events, ev)
	}
}

// Events returns the events produced by the most recent Tick. The slice is
// valid until the next Tick, Restore or Reset; callers must not retain it.
func (s *Sim) Events() []Event {
	return s.events
}
