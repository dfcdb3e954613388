package system

import (
	"cinder-roguelike/internal/component"
	"cinder-roguelike/internal/content"
	"cinder-roguelike/internal/ecs"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK          MoveResult = iota // position updated
	MoveBlocked                       // solid, blocking prop or blocking entity
	MoveOutOfBounds                   // target outside the map
	MoveAttack                        // bumped a living enemy
)

// TryMove moves id by (dx, dy). Bumping a living enemy turns into a melee
// attack and the mover stays put; the enemy is returned as the target.
func TryMove(env Env, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	from, ok := env.position(id)
	if !ok || IsDead(env.World, id) {
		return MoveBlocked, ecs.NilEntity
	}
	to := from.Add(dx, dy)

	if target := LivingEnemyAt(env.World, to); target != ecs.NilEntity && target != id {
		Melee(env, id, target)
		return MoveAttack, target
	}
	if !env.Map.InBounds(to.X, to.Y) {
		env.Log.Add(content.MoveOutOfBounds, from.X, from.Y, to.X, to.Y)
		return MoveOutOfBounds, ecs.NilEntity
	}
	if !env.Map.IsWalkable(to.X, to.Y) || BlockerAt(env.World, to, id) != ecs.NilEntity {
		env.Log.Add(content.MoveBlockedByWall, from.X, from.Y, to.X, to.Y)
		return MoveBlocked, ecs.NilEntity
	}

	env.World.Add(id, component.Position{X: to.X, Y: to.Y})
	env.Log.Add(content.MoveSucceeded, to.X, to.Y)
	return MoveOK, ecs.NilEntity
}
