package stage

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

//go:embed maps/*.tmx
var mapFS embed.FS

// Object group names recognized in stage TMX files.
const (
	groupSolid  = "Solid"
	groupOneWay = "OneWay"
	groupHazard = "Hazard"
	groupSpawn  = "Spawn"
)

// deathMargin is how far below the arena a falling player survives before
// the fall counts as a death.
const deathMargin = 64

// loadStage parses one TMX file into an immutable Stage. Geometry is
// authored as rectangle objects in the Solid/OneWay/Hazard groups; spawn
// points are point objects with a spawnIndex property.
func loadStage(fsys fs.FS, tmxPath string) (*Stage, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	width := float64(levelMap.Width * levelMap.TileWidth)
	height := float64(levelMap.Height * levelMap.TileHeight)

	st := &Stage{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Background: levelMap.Properties.GetString("background"),
		Bounds:     Rect{X: 0, Y: 0, W: width, H: height},
		DeathY:     height + deathMargin,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupSolid:
			for _, o := range og.Objects {
				st.Solids = append(st.Solids, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case groupOneWay:
			for _, o := range og.Objects {
				st.Platforms = append(st.Platforms, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case groupHazard:
			for _, o := range og.Objects {
				st.Hazards = append(st.Hazards, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case groupSpawn:
			for _, o := range og.Objects {
				st.Spawns = append(st.Spawns, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	// Spawn slots must be assigned by index, not authoring order.
	sort.Slice(st.Spawns, func(i, j int) bool {
		return st.Spawns[i].Index < st.Spawns[j].Index
	})

	return st, nil
}

// loadAll discovers every .tmx map in mapsDir and loads it, returning
// stages sorted by name so registry indices are stable across builds.
func loadAll(fsys fs.FS, mapsDir string) ([]*Stage, error) {
	pattern := mapsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", mapsDir)
	}
	sort.Strings(matches)

	loaded := make([]*Stage, 0, len(matches))
	for _, path := range matches {
		st, err := loadStage(fsys, path)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, st)
	}

	return loaded, nil
}
