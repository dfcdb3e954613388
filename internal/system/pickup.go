package system

import (
	"cinder-roguelike/internal/content"
	"cinder-roguelike/internal/ecs"
	"cinder-roguelike/internal/gamemap"
	"cinder-roguelike/internal/item"
)

// PickupResult describes the outcome of a pickup.
type PickupResult uint8

const (
	PickupOK PickupResult = iota
	PickupNoItem
	PickupInventoryFull
	PickupNotAdjacent
)

// PickupAtFeet scoops material from the ground under id.
func PickupAtFeet(env Env, id ecs.EntityID) PickupResult {
	pos, ok := env.position(id)
	bag := env.bag(id)
	if !ok || bag == nil {
		return PickupNoItem
	}
	found := env.Map.PickupItemAt(pos.X, pos.Y, env.Core)
	if found == nil {
		env.Log.Add(content.PickupNoItem)
		return PickupNoItem
	}
	if !bag.Add(found, 1) {
		env.Log.Add(content.PickupInventoryFull)
		return PickupInventoryFull
	}
	switch {
	case found == env.Core.DirtClod && env.Map.GroundAt(pos.X, pos.Y) == gamemap.GroundOil:
		env.Log.Add(content.PickupDirtFromOilGround)
	case found == env.Core.DirtClod:
		env.Log.Add(content.PickupDirtGeneric)
	default:
		env.Log.Add(content.PickupGenericItem, found.Name)
	}
	return PickupOK
}

// PickupFromPile takes one unit of want (nil for the pile's oldest item)
// from the pile at p, which must be within one step. The item goes into
// the bag before it leaves the pile; equip then equips it.
func PickupFromPile(env Env, id ecs.EntityID, p gamemap.Point, want *item.Definition, equip bool) PickupResult {
	pos, ok := env.position(id)
	bag := env.bag(id)
	if !ok || bag == nil {
		return PickupNoItem
	}
	if pos.Chebyshev(p) > 1 {
		env.Log.Add(content.ContextPickupNotFromThere)
		return PickupNotAdjacent
	}
	pile := env.Map.PileAt(p.X, p.Y)
	if pile == nil || pile.IsEmpty() {
		env.Log.Add(content.PickupNoItem)
		return PickupNoItem
	}
	if want == nil {
		want = pile.Representative()
	}
	if pile.Count(want) == 0 {
		env.Log.Add(content.PickupNoItem)
		return PickupNoItem
	}
	if !bag.Add(want, 1) {
		env.Log.Add(content.PickupInventoryFull)
		return PickupInventoryFull
	}
	if !pile.TakeOne(want) {
		bag.Remove(want, 1)
		env.Log.Add(content.PickupNoItem)
		return PickupNoItem
	}
	if pile.IsEmpty() {
		env.Map.RemovePile(p.X, p.Y)
	}
	if equip {
		Equip(env, id, want)
	}
	env.Log.Add(content.PickupGenericItem, want.Name)
	return PickupOK
}
