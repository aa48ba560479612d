package levels

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestLoadEmbedded(t *testing.T) {
	set, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	if len(set.Levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(set.Levels))
	}
	if set.World.DeathY <= set.World.Height-100 {
		t.Fatalf("death line %v should sit below the playfield", set.World.DeathY)
	}
	for _, lvl := range set.Levels {
		if lvl.Spawn == nil {
			t.Fatalf("%s: missing spawn", lvl.Name)
		}
	}
}

const manifest = `{"shared": "shared.json", "levels": ["a.json"]}`
const shared = `{"world": {"width": 100, "height": 100, "death_y": 120},
	"entities": [{"id": "p", "type": "player", "x": 0, "y": 0, "w": 10, "h": 10}]}`

func TestLoadSetValidation(t *testing.T) {
	tests := []struct {
		name   string
		files  map[string]string
		target error
	}{
		{
			name: "ok",
			files: map[string]string{
				"a.json": `{"spawn": {"x": 1, "y": 1}, "entities": [{"type": "goal", "w": 1, "h": 1}]}`,
			},
		},
		{
			name: "missing_goal",
			files: map[string]string{
				"a.json": `{"spawn": {"x": 1, "y": 1}, "entities": [{"type": "platform", "w": 1, "h": 1}]}`,
			},
			target: ErrMissingGoal,
		},
		{
			name: "negative_size",
			files: map[string]string{
				"a.json": `{"spawn": {"x": 1, "y": 1}, "entities": [{"type": "goal", "w": -1, "h": 1}]}`,
			},
			target: ErrNegativeSize,
		},
		{
			name: "missing_spawn",
			files: map[string]string{
				"a.json": `{"entities": [{"type": "goal", "w": 1, "h": 1}]}`,
			},
			target: ErrMissingSpawn,
		},
		{
			name: "unknown_kind",
			files: map[string]string{
				"a.json": `{"spawn": {"x": 1, "y": 1}, "entities": [{"type": "coin"}, {"type": "goal"}]}`,
			},
			target: ErrUnknownKind,
		},
		{
			name: "second_player",
			files: map[string]string{
				"a.json": `{"spawn": {"x": 1, "y": 1}, "entities": [{"type": "player"}, {"type": "goal"}]}`,
			},
			target: ErrMissingPlayer,
		},
		{
			name: "empty_patrol",
			files: map[string]string{
				"a.json": `{"spawn": {"x": 1, "y": 1}, "entities": [
					{"type": "patrol_hazard", "x": 5, "props": {"min_x": 10, "max_x": 10}},
					{"type": "goal"}]}`,
			},
			target: ErrBadPatrol,
		},
		{
			name: "duplicate_id",
			files: map[string]string{
				"a.json": `{"spawn": {"x": 1, "y": 1}, "entities": [{"id": "p", "type": "goal"}]}`,
			},
			target: ErrDuplicateID,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"manifest.json": {Data: []byte(manifest)},
				"shared.json":   {Data: []byte(shared)},
			}
			for name, data := range tc.files {
				fsys[name] = &fstest.MapFile{Data: []byte(data)}
			}
			set, err := LoadSet(fsys)
			if tc.target == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if set.Levels[0].Name != "a" {
					t.Fatalf("expected level name from file, got %q", set.Levels[0].Name)
				}
				return
			}
			if !errors.Is(err, tc.target) {
				t.Fatalf("expected %v, got %v", tc.target, err)
			}
		})
	}
}

func TestLoadSetBadWorld(t *testing.T) {
	fsys := fstest.MapFS{
		"manifest.json": {Data: []byte(manifest)},
		"shared.json":   {Data: []byte(`{"entities": [{"type": "player"}]}`)},
		"a.json":        {Data: []byte(`{"spawn": {"x": 0, "y": 0}, "entities": [{"type": "goal"}]}`)},
	}
	if _, err := LoadSet(fsys); !errors.Is(err, ErrBadWorld) {
		t.Fatalf("expected ErrBadWorld, got %v", err)
	}
}

func TestPropHelpers(t *testing.T) {
	e := Entity{Props: map[string]any{"vx": 2.5, "script": "bullet.tengo", "empty": ""}}
	if got := e.PropFloat("vx", 0); got != 2.5 {
		t.Fatalf("PropFloat = %v", got)
	}
	if got := e.PropFloat("missing", 7); got != 7 {
		t.Fatalf("PropFloat default = %v", got)
	}
	if got := e.PropString("script", "patrol.tengo"); got != "bullet.tengo" {
		t.Fatalf("PropString = %q", got)
	}
	if got := e.PropString("empty", "patrol.tengo"); got != "patrol.tengo" {
		t.Fatalf("PropString default = %q", got)
	}
}
