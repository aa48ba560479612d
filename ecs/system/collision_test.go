package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs/component"
)

func TestResolve(t *testing.T) {
	tol := Tolerance{DT: 1.0 / 60, MoveStep: 3, LandingTolerance: 4, ContactSkin: 0.5}

	tests := []struct {
		name       string
		player     component.AABB
		vy         float64
		dir        int
		rise       float64
		candidates []Collidable
		want       component.CollisionOutcome
	}{
		{
			name:   "falling onto ground grounds",
			player: component.AABB{X: 100, Y: 0, W: 20, H: 20},
			vy:     -5,
			candidates: []Collidable{
				{Kind: component.KindGround, Box: component.AABB{X: 0, Y: 18, W: 1000, H: 10}},
			},
			want: component.CollisionOutcome{Grounded: true, GroundY: 18},
		},
		{
			name:   "surface within this tick's fall is landed on",
			player: component.AABB{X: 0, Y: 0, W: 20, H: 20},
			vy:     -300,
			candidates: []Collidable{
				{Kind: component.KindPlatform, Box: component.AABB{X: 0, Y: 24, W: 50, H: 10}},
			},
			want: component.CollisionOutcome{Grounded: true, GroundY: 24},
		},
		{
			name:   "ground far below is not touched",
			player: component.AABB{X: 0, Y: 0, W: 20, H: 20},
			vy:     -5,
			candidates: []Collidable{
				{Kind: component.KindGround, Box: component.AABB{X: 0, Y: 100, W: 50, H: 10}},
			},
		},
		{
			name:   "ascending never grounds",
			player: component.AABB{X: 0, Y: 0, W: 20, H: 20},
			vy:     300,
			candidates: []Collidable{
				{Kind: component.KindGround, Box: component.AABB{X: 0, Y: 20, W: 50, H: 10}},
			},
		},
		{
			name:   "highest supporting surface wins",
			player: component.AABB{X: 0, Y: 0, W: 20, H: 20},
			candidates: []Collidable{
				{Kind: component.KindGround, Box: component.AABB{X: 0, Y: 20.4, W: 50, H: 10}},
				{Kind: component.KindPlatform, Box: component.AABB{X: 10, Y: 19, W: 50, H: 10}},
			},
			want: component.CollisionOutcome{Grounded: true, GroundY: 19},
		},
		{
			name:   "flush platform on the right blocks",
			player: component.AABB{X: 0, Y: 0, W: 20, H: 20},
			candidates: []Collidable{
				{Kind: component.KindPlatform, Box: component.AABB{X: 20, Y: -10, W: 50, H: 50}},
			},
			want: component.CollisionOutcome{BlockedRight: true},
		},
		{
			name:   "flush platform on the left blocks",
			player: component.AABB{X: 50, Y: 0, W: 20, H: 20},
			candidates: []Collidable{
				{Kind: component.KindPlatform, Box: component.AABB{X: 0, Y: -10, W: 50, H: 50}},
			},
			want: component.CollisionOutcome{BlockedLeft: true},
		},
		{
			name:   "wall beyond one step does not block",
			player: component.AABB{X: 0, Y: 0, W: 20, H: 20},
			candidates: []Collidable{
				{Kind: component.KindPlatform, Box: component.AABB{X: 24, Y: -10, W: 50, H: 50}},
			},
		},
		{
			name:   "low ledge inside the feet band does not block",
			player: component.AABB{X: 0, Y: 0, W: 20, H: 20},
			candidates: []Collidable{
				{Kind: component.KindPlatform, Box: component.AABB{X: 20, Y: 17, W: 50, H: 50}},
			},
		},
		{
			name:   "head bump while ascending",
			player: component.AABB{X: 0, Y: 30, W: 20, H: 20},
			vy:     300,
			candidates: []Collidable{
				{Kind: component.KindPlatform, Box: component.AABB{X: -10, Y: 0, W: 50, H: 30}},
			},
			want: component.CollisionOutcome{Ceiling: true},
		},
		{
			name:   "jumping beside a ledge lip blocks the diagonal step",
			player: component.AABB{X: 100, Y: 280, W: 20, H: 20},
			dir:    1,
			rise:   5,
			candidates: []Collidable{
				{Kind: component.KindGround, Box: component.AABB{X: 0, Y: 300, W: 1000, H: 50}},
				{Kind: component.KindPlatform, Box: component.AABB{X: 122, Y: 258, W: 60, H: 20}},
			},
			want: component.CollisionOutcome{Grounded: true, GroundY: 300, BlockedRight: true},
		},
		{
			name:   "rising past a platform side keeps blocking",
			player: component.AABB{X: 100, Y: 250, W: 20, H: 20},
			vy:     300,
			dir:    1,
			candidates: []Collidable{
				{Kind: component.KindPlatform, Box: component.AABB{X: 122, Y: 258, W: 60, H: 20}},
			},
			want: component.CollisionOutcome{BlockedRight: true},
		},
		{
			name:   "ceiling one step ahead caps the jump",
			player: component.AABB{X: 0, Y: 30, W: 20, H: 20},
			vy:     300,
			dir:    1,
			candidates: []Collidable{
				{Kind: component.KindPlatform, Box: component.AABB{X: 22, Y: 0, W: 50, H: 25}},
			},
			want: component.CollisionOutcome{Ceiling: true},
		},
		{
			name:   "ceiling one step behind is ignored",
			player: component.AABB{X: 0, Y: 30, W: 20, H: 20},
			vy:     300,
			dir:    -1,
			candidates: []Collidable{
				{Kind: component.KindPlatform, Box: component.AABB{X: 22, Y: 0, W: 50, H: 25}},
			},
		},
		{
			name:   "goal overlap is reported and never blocks",
			player: component.AABB{X: 0, Y: 0, W: 20, H: 20},
			candidates: []Collidable{
				{Kind: component.KindGoal, Box: component.AABB{X: 10, Y: -50, W: 16, H: 100}},
			},
			want: component.CollisionOutcome{GoalReached: true},
		},
		{
			name:   "hazard beats goal and ground",
			player: component.AABB{X: 0, Y: 0, W: 20, H: 20},
			candidates: []Collidable{
				{Kind: component.KindGoal, Box: component.AABB{X: 0, Y: 0, W: 20, H: 20}},
				{Kind: component.KindGround, Box: component.AABB{X: 0, Y: 20, W: 50, H: 10}},
				{Kind: component.KindHazard, Box: component.AABB{X: 15, Y: 15, W: 10, H: 10}},
			},
			want: component.CollisionOutcome{HazardHit: true},
		},
		{
			name:   "patrol hazard overlap",
			player: component.AABB{X: 0, Y: 0, W: 20, H: 20},
			candidates: []Collidable{
				{Kind: component.KindPatrolHazard, Box: component.AABB{X: 19, Y: 0, W: 10, H: 10}},
			},
			want: component.CollisionOutcome{HazardHit: true},
		},
		{
			name:   "hazard sharing an edge is not hit",
			player: component.AABB{X: 0, Y: 0, W: 20, H: 20},
			candidates: []Collidable{
				{Kind: component.KindHazard, Box: component.AABB{X: 20, Y: 0, W: 10, H: 10}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tol := tol
			tol.Dir, tol.Rise = tt.dir, tt.rise
			got := Resolve(tt.player, tt.vy, tt.candidates, tol)
			if got != tt.want {
				t.Fatalf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
