// Package stage provides the immutable stage model: platform, hazard and
// spawn geometry parsed once from embedded Tiled maps. It holds no mutable
// gameplay state — everything here is fixed for the lifetime of the process
// so snapshots only need to reference a stage by index.
package stage

import (
	"fmt"

	"github.com/solarlune/resolv"

	cfg "github.com/automoto/neonduel/config"
)

// Collision tags used in the resolv space built from a stage.
const (
	TagSolid    = "solid"
	TagPlatform = "platform" // one-way: blocks only downward approach from above
	TagHazard   = "hazard"
)

// Rect is an axis-aligned rectangle in world pixels, Y growing downward.
type Rect struct {
	X, Y, W, H float64
}

// ContainsPoint reports whether the point lies inside the rectangle,
// borders included.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Overlaps reports whether two rectangles intersect.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// SpawnPoint is a player start position (top-left of the player box).
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Stage is the static geometry of one arena. Loaded once, never mutated.
type Stage struct {
	Name       string
	Background string // opaque EPU background descriptor, passed through to the renderer
	Bounds     Rect
	DeathY     float64 // falling past this Y kills the player
	Solids     []Rect
	Platforms  []Rect // one-way platforms
	Hazards    []Rect // instant-death regions
	Spawns     []SpawnPoint
}

// NewSpace builds a fresh resolv collision space for this stage. Each
// simulation owns its own space because player bodies are added to it;
// the static geometry itself is identical across spaces. One-way platform
// objects carry their Platforms index in Data so drop-through state can be
// tracked as a plain identifier.
func (st *Stage) NewSpace() *resolv.Space {
	space := resolv.NewSpace(int(st.Bounds.W), int(st.Bounds.H), 16, 16)

	for _, r := range st.Solids {
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, TagSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		space.Add(obj)
	}
	for i, r := range st.Platforms {
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, TagPlatform)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		obj.Data = i
		space.Add(obj)
	}
	for _, r := range st.Hazards {
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, TagHazard)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		space.Add(obj)
	}

	return space
}

// BlocksBullet reports whether a bullet at the given point is stopped by
// stage geometry. Both solids and one-way platforms stop bullets.
func (st *Stage) BlocksBullet(x, y float64) bool {
	for _, r := range st.Solids {
		if r.ContainsPoint(x, y) {
			return true
		}
	}
	for _, r := range st.Platforms {
		if r.ContainsPoint(x, y) {
			return true
		}
	}
	return false
}

// InBounds reports whether a point is inside the bullet playfield, which
// extends a small margin past the visible arena.
func (st *Stage) InBounds(x, y float64) bool {
	const margin = 64
	return x >= st.Bounds.X-margin && x <= st.Bounds.X+st.Bounds.W+margin &&
		y >= st.Bounds.Y-margin && y <= st.Bounds.Y+st.Bounds.H+margin
}

// Spawn returns the spawn point for a slot, clamped to the available set.
func (st *Stage) Spawn(slot int) SpawnPoint {
	if slot < 0 {
		slot = 0
	}
	if slot >= len(st.Spawns) {
		slot = len(st.Spawns) - 1
	}
	return st.Spawns[slot]
}

// Registry of all embedded stages, populated by loadAll in init.
var stages []*Stage

// Names returns the stage names in registry order.
func Names() []string {
	names := make([]string, len(stages))
	for i, st := range stages {
		names[i] = st.Name
	}
	return names
}

// Count returns the number of available stages.
func Count() int { return len(stages) }

// ByIndex returns the stage at a registry index.
func ByIndex(i int) (*Stage, error) {
	if i < 0 || i >= len(stages) {
		return nil, fmt.Errorf("stage index %d out of range (have %d stages)", i, len(stages))
	}
	return stages[i], nil
}

// ByName looks a stage up by name.
func ByName(name string) (*Stage, int, error) {
	for i, st := range stages {
		if st.Name == name {
			return st, i, nil
		}
	}
	return nil, -1, fmt.Errorf("unknown stage %q (have %v)", name, Names())
}

func init() {
	loaded, err := loadAll(mapFS, "maps")
	if err != nil {
		panic(fmt.Sprintf("stage: embedded maps are invalid: %v", err))
	}
	for _, st := range loaded {
		if len(st.Spawns) < cfg.MaxPlayers {
			panic(fmt.Sprintf("stage: %s has %d spawn points, need %d",
				st.Name, len(st.Spawns), cfg.MaxPlayers))
		}
	}
	stages = loaded
}
