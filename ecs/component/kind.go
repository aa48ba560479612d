package component

import "strings"

type EntityKind int

const (
	KindPlayer EntityKind = iota + 1
	KindPlatform
	KindGround
	KindHazard
	KindPatrolHazard
	KindGoal
	KindCameraAnchor
)

var kindNames = map[EntityKind]string{
	KindPlayer:       "player",
	KindPlatform:     "platform",
	KindGround:       "ground",
	KindHazard:       "hazard",
	KindPatrolHazard: "patrol_hazard",
	KindGoal:         "goal",
	KindCameraAnchor: "camera",
}

func (k EntityKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Solid reports whether the kind blocks movement and can be stood on.
func (k EntityKind) Solid() bool {
	return k == KindPlatform || k == KindGround
}

// ParseEntityKind maps a level-file type name to a kind. Matching is case
// insensitive.
func ParseEntityKind(s string) (EntityKind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Kind records what an entity is so systems can dispatch on it.
type Kind struct {
	Kind EntityKind
}

var KindComponent = NewComponent[Kind]()
