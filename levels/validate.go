package levels

import (
	"fmt"

	"github.com/milk9111/platformer/ecs/component"
)

// Validate checks the set for authoring mistakes. It reports the first
// problem found, wrapped around one of the package's sentinel errors.
func (s *Set) Validate() error {
	if s == nil || len(s.Levels) == 0 {
		return fmt.Errorf("levels: %w", ErrNoLevels)
	}
	if s.World.Width <= 0 || s.World.Height <= 0 || s.World.DeathY <= 0 {
		return fmt.Errorf("levels: %s: world %vx%v death_y %v: %w", s.Shared.Name, s.World.Width, s.World.Height, s.World.DeathY, ErrBadWorld)
	}

	players := 0
	ids := make(map[string]string)

	check := func(lvl *Level) error {
		for _, ent := range lvl.Entities {
			kind, ok := component.ParseEntityKind(ent.Type)
			if !ok {
				return fmt.Errorf("levels: %s: entity %q: %w %q", lvl.Name, ent.ID, ErrUnknownKind, ent.Type)
			}
			if ent.W < 0 || ent.H < 0 {
				return fmt.Errorf("levels: %s: entity %q: %vx%v: %w", lvl.Name, ent.ID, ent.W, ent.H, ErrNegativeSize)
			}
			if ent.ID != "" {
				if prev, dup := ids[ent.ID]; dup {
					return fmt.Errorf("levels: %s: entity %q (also in %s): %w", lvl.Name, ent.ID, prev, ErrDuplicateID)
				}
				ids[ent.ID] = lvl.Name
			}
			switch kind {
			case component.KindPlayer:
				players++
			case component.KindPatrolHazard:
				minX := ent.PropFloat("min_x", ent.X)
				maxX := ent.PropFloat("max_x", ent.X)
				if maxX <= minX {
					return fmt.Errorf("levels: %s: entity %q: [%v, %v]: %w", lvl.Name, ent.ID, minX, maxX, ErrBadPatrol)
				}
			}
		}
		return nil
	}

	if err := check(&s.Shared); err != nil {
		return err
	}
	for i := range s.Levels {
		lvl := &s.Levels[i]
		if lvl.Spawn == nil {
			return fmt.Errorf("levels: %s: %w", lvl.Name, ErrMissingSpawn)
		}
		if err := check(lvl); err != nil {
			return err
		}
		if !hasGoal(lvl) {
			return fmt.Errorf("levels: %s: %w", lvl.Name, ErrMissingGoal)
		}
	}
	if players != 1 {
		return fmt.Errorf("levels: found %d players: %w", players, ErrMissingPlayer)
	}
	return nil
}

func hasGoal(lvl *Level) bool {
	for _, ent := range lvl.Entities {
		if kind, ok := component.ParseEntityKind(ent.Type); ok && kind == component.KindGoal {
			return true
		}
	}
	return false
}
