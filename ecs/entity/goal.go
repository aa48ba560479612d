package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

func NewGoalAt(w *ecs.World, id string, box component.AABB) (ecs.Entity, error) {
	e, err := newPlaced(w, component.KindGoal, id, box)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.GoalComponent.Kind(), &component.Goal{}); err != nil {
		return 0, fmt.Errorf("goal: add goal: %w", err)
	}
	return e, nil
}
