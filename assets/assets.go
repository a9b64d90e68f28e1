package assets

import (
	"embed"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Range is a throwing range layout read from a Tiled map.
type Range struct {
	Name       string
	Width      int
	Height     int
	Targets    []TargetSpawn
	Respawners []RespawnerSpawn
	Interactor *InteractorSpawn // nil when the map does not place one
}

type TargetSpawn struct {
	Name                string
	X, Y, Width, Height float64
	Points              int
}

type RespawnerSpawn struct {
	Name   string
	X, Y   float64
	Action string // Action name, "spawn" when unset
}

type InteractorSpawn struct {
	X, Y float64
}

// ListRanges returns the paths of every embedded range map.
func ListRanges() ([]string, error) {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			paths = append(paths, filepath.Join("levels", entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadRange parses the embedded map at path.
func LoadRange(path string) (Range, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(assetFS))
	if err != nil {
		return Range{}, fmt.Errorf("load range %s: %w", path, err)
	}

	r := Range{
		Name:   path,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Targets":
			for _, o := range og.Objects {
				r.Targets = append(r.Targets, TargetSpawn{
					Name:   o.Name,
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
					Points: o.Properties.GetInt("points"),
				})
			}
		case "Respawners":
			for _, o := range og.Objects {
				action := o.Properties.GetString("action")
				if action == "" {
					action = "spawn"
				}
				r.Respawners = append(r.Respawners, RespawnerSpawn{
					Name:   o.Name,
					X:      o.X,
					Y:      o.Y,
					Action: action,
				})
			}
		case "Interactor":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				r.Interactor = &InteractorSpawn{X: o.X, Y: o.Y}
			}
		}
	}

	// Stable order regardless of how the map was edited
	sort.Slice(r.Targets, func(i, j int) bool {
		return r.Targets[i].X < r.Targets[j].X
	})

	return r, nil
}

// MustLoadRange is LoadRange for maps that ship with the binary.
func MustLoadRange(path string) Range {
	r, err := LoadRange(path)
	if err != nil {
		panic(err)
	}
	return r
}
