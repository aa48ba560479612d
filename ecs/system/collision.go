package system

import (
	"math"
	"sort"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// Collidable is one candidate box handed to Resolve.
type Collidable struct {
	Entity ecs.Entity
	Kind   component.EntityKind
	Box    component.AABB
}

// Tolerance carries the contact bands used by Resolve.
type Tolerance struct {
	// DT is the tick length; |vy|*DT widens the landing band.
	DT float64
	// MoveStep is how far the player moves horizontally in one tick.
	MoveStep         float64
	LandingTolerance float64
	ContactSkin      float64
	// Dir is the held horizontal direction: -1, 0 or 1.
	Dir int
	// Rise is how far a jump started this tick would lift the player.
	Rise float64
}

// Resolve classifies the player's contacts for one tick. A hazard overlap
// short-circuits every other result. Goals never block; solids ground, block
// or cap the jump. Positive vy is upward.
//
// The player box is swept over the tick: side blocking looks at every row the
// body passes through vertically, and landing and ceiling checks reach one
// move step toward an unblocked held direction.
func Resolve(player component.AABB, vy float64, candidates []Collidable, tol Tolerance) component.CollisionOutcome {
	for _, c := range candidates {
		if isHazard(c.Kind) && player.Overlaps(c.Box) {
			return component.CollisionOutcome{HazardHit: true}
		}
	}

	var out component.CollisionOutcome
	ascending := vy > 0
	travel := math.Abs(vy * tol.DT)
	up := math.Max(math.Max(vy*tol.DT, 0), tol.Rise)
	down := math.Max(-vy*tol.DT, 0)
	bottom := player.Bottom()
	centerX := player.X + player.W/2

	// The feet band is left out while not rising so low ledges are stepped onto.
	feet := tol.LandingTolerance
	if ascending {
		feet = 0
	}
	sweptTop := player.Y - up
	sweptBottom := bottom + down - feet

	for _, c := range candidates {
		box := c.Box
		if !c.Kind.Solid() {
			continue
		}
		if sweptTop >= box.Bottom() || sweptBottom <= box.Y {
			continue
		}
		if box.X > centerX && box.X-player.Right() <= tol.MoveStep {
			out.BlockedRight = true
		}
		if box.Right() < centerX && player.X-box.Right() <= tol.MoveStep {
			out.BlockedLeft = true
		}
	}

	left, right := player.X, player.Right()
	if tol.Dir < 0 && !out.BlockedLeft {
		left -= tol.MoveStep
	}
	if tol.Dir > 0 && !out.BlockedRight {
		right += tol.MoveStep
	}

	for _, c := range candidates {
		box := c.Box
		switch {
		case c.Kind == component.KindGoal:
			if player.Overlaps(box) {
				out.GoalReached = true
			}
		case c.Kind.Solid():
			if left >= box.Right() || right <= box.X {
				continue
			}

			if !ascending {
				top := box.Y
				if top >= bottom-tol.LandingTolerance-travel && top <= bottom+tol.ContactSkin+travel {
					if !out.Grounded || top < out.GroundY {
						out.Grounded = true
						out.GroundY = top
					}
				}
			}

			if up > 0 {
				under := box.Bottom()
				if under <= player.Y+tol.ContactSkin && under >= player.Y-up-tol.ContactSkin {
					out.Ceiling = true
				}
			}
		}
	}
	return out
}

func isHazard(k component.EntityKind) bool {
	return k == component.KindHazard || k == component.KindPatrolHazard
}

// CollisionSystem gathers the in-scope candidates near the player through
// the broadphase and stores the Resolve outcome on the player.
type CollisionSystem struct {
	broadphase *Broadphase
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{broadphase: NewBroadphase()}
}

// Invalidate rebuilds the candidate index on the next tick.
func (cs *CollisionSystem) Invalidate() {
	if cs == nil {
		return
	}
	cs.broadphase.Invalidate()
}

func (cs *CollisionSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}
	player, ok := playerEntity(w)
	if !ok {
		return
	}
	t, okT := ecs.Get(w, player, component.TransformComponent.Kind())
	col, okC := ecs.Get(w, player, component.ColliderComponent.Kind())
	out, okO := ecs.Get(w, player, component.CollisionOutcomeComponent.Kind())
	if !okT || !okC || !okO {
		return
	}
	vy := 0.0
	if v, ok := ecs.Get(w, player, component.VelocityComponent.Kind()); ok {
		vy = v.VY
	}
	moveSpeed, jumpSpeed := 0.0, 0.0
	if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
		moveSpeed, jumpSpeed = p.MoveSpeed, p.JumpSpeed
	}
	dir, jumping := 0, false
	if in, ok := ecs.Get(w, player, component.InputComponent.Kind()); ok {
		dir, jumping = in.Direction(), in.Up
	}

	settings := physicsSettings(w)
	tol := Tolerance{
		DT:               settings.DT,
		MoveStep:         moveSpeed * settings.DT,
		LandingTolerance: settings.LandingTolerance,
		ContactSkin:      settings.ContactSkin,
		Dir:              dir,
	}
	if jumping {
		tol.Rise = jumpSpeed * settings.DT
	}

	box := component.Box(t, col)
	cs.broadphase.Sync(w)
	margin := tol.MoveStep + tol.LandingTolerance + tol.ContactSkin
	reach := math.Max(math.Abs(vy*tol.DT), tol.Rise)
	candidates := cs.candidates(w, box.Grow(margin, margin+reach))

	prev := *out
	*out = Resolve(box, vy, candidates, tol)

	events := w.Events()
	if out.Grounded && !prev.Grounded {
		events.Push(ecs.Event{Type: ecs.EventLanded, Entity: player, Data: out.GroundY})
	}
	if out.HazardHit {
		events.Push(ecs.Event{Type: ecs.EventHazardHit, Entity: player})
	}
	if out.GoalReached {
		events.Push(ecs.Event{Type: ecs.EventGoalReached, Entity: player})
	}
}

func (cs *CollisionSystem) candidates(w *ecs.World, area component.AABB) []Collidable {
	hits := cs.broadphase.Query(area)
	sort.Slice(hits, func(i, j int) bool { return hits[i] < hits[j] })

	out := make([]Collidable, 0, len(hits))
	for _, e := range hits {
		k, okK := ecs.Get(w, e, component.KindComponent.Kind())
		t, okT := ecs.Get(w, e, component.TransformComponent.Kind())
		c, okC := ecs.Get(w, e, component.ColliderComponent.Kind())
		if !okK || !okT || !okC || !InScope(w, e) {
			continue
		}
		out = append(out, Collidable{Entity: e, Kind: k.Kind, Box: component.Box(t, c)})
	}
	return out
}
