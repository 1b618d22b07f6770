package stage

import (
	"testing"

	"github.com/automoto/neonduel/config"
)

func TestRegistry(t *testing.T) {
	if Count() != 3 {
		t.Fatalf("Count = %d, want 3", Count())
	}

	names := Names()
	want := []string{"grid-arena", "ring-void", "scatter-field"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("Names()[%d] = %q, want %q (registry must be name-sorted)", i, names[i], n)
		}
	}

	for i, name := range names {
		st, idx, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		if idx != i {
			t.Fatalf("ByName(%q) index = %d, want %d", name, idx, i)
		}
		byIdx, err := ByIndex(i)
		if err != nil {
			t.Fatalf("ByIndex(%d): %v", i, err)
		}
		if byIdx != st {
			t.Fatalf("ByIndex(%d) and ByName(%q) disagree", i, name)
		}
	}

	if _, _, err := ByName("volcano"); err == nil {
		t.Fatalf("ByName accepted an unknown stage")
	}
	if _, err := ByIndex(-1); err == nil {
		t.Fatalf("ByIndex accepted -1")
	}
	if _, err := ByIndex(Count()); err == nil {
		t.Fatalf("ByIndex accepted an out-of-range index")
	}
}

func TestSpawnsAreUsable(t *testing.T) {
	for _, name := range Names() {
		st, _, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		if len(st.Spawns) < config.MaxPlayers {
			t.Fatalf("%s: %d spawns, need %d", name, len(st.Spawns), config.MaxPlayers)
		}
		for i, sp := range st.Spawns {
			if sp.Index != i {
				t.Fatalf("%s: spawn %d has index %d, want sorted by index", name, i, sp.Index)
			}
			if !st.Bounds.ContainsPoint(sp.X, sp.Y) {
				t.Fatalf("%s: spawn %d at (%v,%v) outside bounds", name, i, sp.X, sp.Y)
			}
		}

		// Clamped lookups never panic or go out of range.
		if got := st.Spawn(-5); got != st.Spawns[0] {
			t.Fatalf("%s: Spawn(-5) = %+v, want first spawn", name, got)
		}
		if got := st.Spawn(99); got != st.Spawns[len(st.Spawns)-1] {
			t.Fatalf("%s: Spawn(99) = %+v, want last spawn", name, got)
		}
	}
}

func TestBlocksBullet(t *testing.T) {
	st, _, err := ByName("grid-arena")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}

	cases := []struct {
		x, y float64
		want bool
	}{
		{320, 370, true},  // floor
		{8, 300, true},    // left wall
		{100, 274, true},  // one-way platform stops bullets too
		{320, 100, false}, // open air
		{320, 360, false}, // just above the floor
	}
	for _, c := range cases {
		if got := st.BlocksBullet(c.x, c.y); got != c.want {
			t.Fatalf("BlocksBullet(%v,%v) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestInBoundsMargin(t *testing.T) {
	st, _, err := ByName("grid-arena")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}

	if !st.InBounds(320, 192) {
		t.Fatalf("arena center out of bounds")
	}
	if !st.InBounds(-60, 100) || !st.InBounds(320, 440) {
		t.Fatalf("margin zone should be in bounds")
	}
	if st.InBounds(-100, 100) || st.InBounds(320, 460) {
		t.Fatalf("points past the margin should be out of bounds")
	}
}

func TestDeathLineBelowArena(t *testing.T) {
	for _, name := range Names() {
		st, _, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		if st.DeathY <= st.Bounds.Y+st.Bounds.H {
			t.Fatalf("%s: death line %v not below the arena", name, st.DeathY)
		}
	}
}
