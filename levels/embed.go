package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

//go:embed *.json
var LevelsFS embed.FS

const manifestName = "manifest.json"

var (
	ErrNegativeSize  = errors.New("negative entity size")
	ErrMissingGoal   = errors.New("level has no goal")
	ErrMissingSpawn  = errors.New("level has no spawn point")
	ErrMissingPlayer = errors.New("level set must place exactly one player")
	ErrUnknownKind   = errors.New("unknown entity type")
	ErrBadPatrol     = errors.New("patrol range is empty")
	ErrBadWorld      = errors.New("world bounds must be positive")
	ErrDuplicateID   = errors.New("duplicate entity id")
	ErrNoLevels      = errors.New("manifest lists no levels")
)

// Manifest names the shared placement file and the ordered level files.
type Manifest struct {
	Shared string   `json:"shared"`
	Levels []string `json:"levels"`
}

type World struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	DeathY float64 `json:"death_y"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Entity struct {
	ID    string         `json:"id,omitempty"`
	Type  string         `json:"type"`
	X     float64        `json:"x"`
	Y     float64        `json:"y"`
	W     float64        `json:"w"`
	H     float64        `json:"h"`
	Props map[string]any `json:"props,omitempty"`
}

// Level is one placement file. World is only read from the shared file.
type Level struct {
	Name     string   `json:"name"`
	Spawn    *Point   `json:"spawn,omitempty"`
	World    *World   `json:"world,omitempty"`
	Entities []Entity `json:"entities,omitempty"`
}

// Set is the validated, ordered collection the runtime loads at startup.
type Set struct {
	World  World
	Shared Level
	Levels []Level
}

// LoadEmbedded loads and validates the level set compiled into the binary.
func LoadEmbedded() (*Set, error) {
	return LoadSet(LevelsFS)
}

// LoadSet reads manifest.json from fsys, then the shared file and every
// level it lists, and validates the result.
func LoadSet(fsys fs.FS) (*Set, error) {
	var m Manifest
	if err := readJSON(fsys, manifestName, &m); err != nil {
		return nil, err
	}
	if len(m.Levels) == 0 {
		return nil, fmt.Errorf("levels: %s: %w", manifestName, ErrNoLevels)
	}

	set := &Set{}
	if m.Shared != "" {
		if err := readJSON(fsys, m.Shared, &set.Shared); err != nil {
			return nil, err
		}
		if set.Shared.Name == "" {
			set.Shared.Name = trimExt(m.Shared)
		}
		if set.Shared.World != nil {
			set.World = *set.Shared.World
		}
	}

	for _, name := range m.Levels {
		var lvl Level
		if err := readJSON(fsys, name, &lvl); err != nil {
			return nil, err
		}
		if lvl.Name == "" {
			lvl.Name = trimExt(name)
		}
		set.Levels = append(set.Levels, lvl)
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

func readJSON(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("levels: read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	return nil
}

func trimExt(name string) string {
	base := path.Base(name)
	return base[:len(base)-len(path.Ext(base))]
}

// PropFloat reads a numeric prop, falling back to def.
func (e Entity) PropFloat(key string, def float64) float64 {
	if v, ok := e.Props[key].(float64); ok {
		return v
	}
	return def
}

// PropString reads a string prop, falling back to def.
func (e Entity) PropString(key, def string) string {
	if v, ok := e.Props[key].(string); ok && v != "" {
		return v
	}
	return def
}
