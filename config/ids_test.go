package config

import (
	"math"
	"testing"
)

func TestAimVectorsAreUnitLength(t *testing.T) {
	for a := AimID(0); a < AimCount; a++ {
		x, y := a.Vector()
		mag := math.Sqrt(x*x + y*y)
		if math.Abs(mag-1) > 1e-12 {
			t.Fatalf("aim %d vector (%v,%v) has magnitude %v", a, x, y, mag)
		}
	}
}

func TestAimFromAxes(t *testing.T) {
	cases := []struct {
		x, y        float64
		facingRight bool
		want        AimID
	}{
		{0, 0, true, AimRight},    // neutral falls back to facing
		{0, 0, false, AimLeft},
		{0.2, -0.2, true, AimRight}, // below threshold counts as neutral
		{1, 0, false, AimRight},     // held axis overrides facing
		{-1, 0, true, AimLeft},
		{0, -1, true, AimUp},
		{0, 1, true, AimDown},
		{0.5, 0.5, true, AimDownRight},
		{-0.4, 0.4, true, AimDownLeft},
		{0.31, -0.31, false, AimUpRight},
		{-1, -1, true, AimUpLeft},
	}
	for _, c := range cases {
		if got := AimFromAxes(c.x, c.y, c.facingRight); got != c.want {
			t.Fatalf("AimFromAxes(%v,%v,%v) = %d, want %d", c.x, c.y, c.facingRight, got, c.want)
		}
	}
}

func TestPhaseStrings(t *testing.T) {
	for p, want := range map[PhaseID]string{
		PhaseWarmup:   "warmup",
		PhaseRound:    "round",
		PhaseRoundEnd: "roundend",
		PhaseMatchEnd: "matchend",
	} {
		if p.String() != want {
			t.Fatalf("PhaseID(%d).String() = %q, want %q", p, p.String(), want)
		}
	}
}
