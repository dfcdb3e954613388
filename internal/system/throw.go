package system

import (
	"cinder-roguelike/internal/content"
	"cinder-roguelike/internal/ecs"
	"cinder-roguelike/internal/gamemap"
	"cinder-roguelike/internal/item"
)

// MaxThrowDistance is the Chebyshev reach of a throw.
const MaxThrowDistance = 5

// ThrowReason describes the outcome of a throw.
type ThrowReason uint8

const (
	ThrowOK ThrowReason = iota
	ThrowMissingItem
	ThrowTargetIsSelf
	ThrowTooFar
	ThrowNoEffect // not consumed
	ThrowLost     // consumed, left the map
	ThrowNoSpread // consumed, nothing changed
)

// ThrowResult is the outcome of Throw. Projectile is set for arrows.
type ThrowResult struct {
	Reason     ThrowReason
	Projectile *ProjectileResult
}

// Throw hurls one d from id's bag at target. What happens depends on the
// item: arrows fly like a short shot, oil soaks the ground, dirt only
// makes a mess. Other items are kept.
func Throw(env Env, id ecs.EntityID, d *item.Definition, target gamemap.Point) ThrowResult {
	from, ok := env.position(id)
	bag := env.bag(id)
	if !ok || bag == nil || d == nil || bag.Count(d) == 0 {
		env.Log.Add(content.ThrowMissingItem, itemName(d))
		return ThrowResult{Reason: ThrowMissingItem}
	}
	if target == from {
		env.Log.Add(content.ThrowTargetIsSelf)
		return ThrowResult{Reason: ThrowTargetIsSelf}
	}
	if from.Chebyshev(target) > MaxThrowDistance {
		env.Log.Add(content.ThrowTooFar)
		return ThrowResult{Reason: ThrowTooFar}
	}

	switch d {
	case env.Core.WoodenArrow:
		return throwArrow(env, bag, d, from, target)
	case env.Core.OilBottle:
		return throwOil(env, bag, d, target)
	case env.Core.DirtClod:
		bag.Remove(d, 1)
		env.Log.Add(content.ThrowDirtClodFlavor)
		return ThrowResult{Reason: ThrowOK}
	}
	env.Log.Add(content.ThrowGenericNoEffect, d.Name)
	return ThrowResult{Reason: ThrowNoEffect}
}

func throwArrow(env Env, bag *item.Inventory, d *item.Definition, from, target gamemap.Point) ThrowResult {
	env.Log.Add(content.ThrowWoodenArrowFlavor)
	traj := env.Map.LineTrajectory(from, target, MaxThrowDistance)
	res := simulate(env, from, traj, ProjectileParams{Range: MaxThrowDistance}, d.ID)
	bag.Remove(d, 1)
	if len(traj) == 0 {
		env.Log.Add(content.ThrowProjectileDroppedAtFeet)
	}
	return ThrowResult{Reason: ThrowOK, Projectile: res}
}

func throwOil(env Env, bag *item.Inventory, d *item.Definition, target gamemap.Point) ThrowResult {
	bag.Remove(d, 1)
	m := env.Map
	if !m.InBounds(target.X, target.Y) {
		env.Log.Add(content.ThrowOilBottleLost)
		return ThrowResult{Reason: ThrowLost}
	}
	if _, solid := m.SolidAt(target.X, target.Y); solid || m.PropAt(target.X, target.Y) != nil {
		env.Log.Add(content.ThrowOilBottleNoSpread)
		return ThrowResult{Reason: ThrowNoSpread}
	}
	switch m.GroundAt(target.X, target.Y) {
	case gamemap.GroundNormal, gamemap.GroundBurnt, gamemap.GroundWater:
		m.SetGround(target.X, target.Y, gamemap.GroundOil)
		env.Log.Add(content.ThrowOilBottleCreatePuddle)
		return ThrowResult{Reason: ThrowOK}
	}
	env.Log.Add(content.ThrowOilBottleNoSpread)
	return ThrowResult{Reason: ThrowNoSpread}
}
