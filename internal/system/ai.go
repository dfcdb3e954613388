package system

import (
	"cinder-roguelike/internal/component"
	"cinder-roguelike/internal/ecs"
	"cinder-roguelike/internal/gamemap"
)

// EnemyHit records one enemy attack on the player during the enemy phase.
type EnemyHit struct {
	AttackerID ecs.EntityID
	Damage     int
	Killed     bool
}

// RunEnemyPhase gives every living enemy one action, in registration
// order. Adjacent enemies attack; enemies that can see the player step
// toward it along the longer axis. The phase stops once the player dies.
func RunEnemyPhase(env Env, player ecs.EntityID) []EnemyHit {
	target, ok := env.position(player)
	if !ok || IsDead(env.World, player) {
		return nil
	}

	var hits []EnemyHit
	for _, id := range env.World.Query(component.CEnemy, component.CPosition) {
		if IsDead(env.World, id) {
			continue
		}
		ai := aiOf(env.World, id)
		pos, _ := env.position(id)

		dist := pos.Manhattan(target)
		if dist <= 1 {
			res := Melee(env, id, player)
			if res.OK {
				hits = append(hits, EnemyHit{AttackerID: id, Damage: res.Damage, Killed: res.Killed})
			}
			if IsDead(env.World, player) {
				break
			}
			continue
		}
		if ai.Behavior == component.BehaviorStationary || dist > ai.SightRange {
			continue
		}
		if next, ok := chaseStep(env, pos, target); ok {
			env.World.Add(id, component.Position{X: next.X, Y: next.Y})
		}
	}
	return hits
}

func aiOf(w *ecs.World, id ecs.EntityID) component.AI {
	ai := component.AI{Behavior: component.BehaviorChase, SightRange: component.DefaultSightRange}
	if c := w.Get(id, component.CAI); c != nil {
		ai = c.(component.AI)
	}
	if ai.SightRange <= 0 {
		ai.SightRange = component.DefaultSightRange
	}
	return ai
}

// chaseStep picks one orthogonal step from pos toward target. The x axis
// is used only when it is strictly the longer one.
func chaseStep(env Env, pos, target gamemap.Point) (gamemap.Point, bool) {
	dx, dy := target.X-pos.X, target.Y-pos.Y
	next := pos
	if abs(dx) > abs(dy) {
		next = pos.Add(sign(dx), 0)
	} else {
		next = pos.Add(0, sign(dy))
	}
	switch {
	case !env.Map.InBounds(next.X, next.Y),
		!env.Map.IsWalkable(next.X, next.Y),
		next == target,
		LivingEnemyAt(env.World, next) != ecs.NilEntity,
		BlockerAt(env.World, next, ecs.NilEntity) != ecs.NilEntity:
		return pos, false
	}
	return next, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
