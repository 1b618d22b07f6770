package sim

// Deterministic randomness. Every draw is a pure function of the match seed
// and the running call counter, both of which live in State, so a restored
// snapshot continues the exact sequence. SplitMix64 finalizer, same
// generator the Go runtime seeds hash maps with.

const rngGamma = 0x9E3779B97F4A7C15

func splitmix64(x uint64) uint64 {
	x += rngGamma
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31
	return x
}

func (s *Sim) randUint64() uint64 {
	v := splitmix64(s.state.Config.Seed + s.state.RandCalls*rngGamma)
	s.state.RandCalls++
	return v
}

// randIntN returns a value in [0, n). n must be positive.
func (s *Sim) randIntN(n int) int {
	return int(s.randUint64() % uint64(n))
}
