package system

import (
	"cinder-roguelike/internal/content"
	"cinder-roguelike/internal/ecs"
	"cinder-roguelike/internal/gamemap"
	"cinder-roguelike/internal/item"
)

// DropResult describes the outcome of a drop.
type DropResult uint8

const (
	DropOK DropResult = iota
	DropMissingItem
	DropNoSpace
)

// dropSpiral is the fixed search order around the dropper.
var dropSpiral = [9]gamemap.Point{
	{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: -1},
	{X: 0, Y: -1}, {X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1},
}

// FindDropCell returns the first walkable, prop-free cell of the spiral
// around p.
func FindDropCell(m *gamemap.GameMap, p gamemap.Point) (gamemap.Point, bool) {
	for _, off := range dropSpiral {
		c := p.Add(off.X, off.Y)
		if m.IsWalkable(c.X, c.Y) && m.PropAt(c.X, c.Y) == nil {
			return c, true
		}
	}
	return gamemap.Point{}, false
}

// Drop moves amount units of d from id's bag onto the ground near it,
// stamped with the current turn. The bag is left exactly as it was if
// nothing can be placed.
func Drop(env Env, id ecs.EntityID, d *item.Definition, amount int) (DropResult, gamemap.Point) {
	pos, ok := env.position(id)
	bag := env.bag(id)
	if !ok || bag == nil || d == nil || amount <= 0 {
		return DropMissingItem, gamemap.Point{}
	}
	snap := bag.Snapshot()
	if !bag.Remove(d, amount) {
		env.Log.Add(content.DropMissingItem, d.Name)
		return DropMissingItem, gamemap.Point{}
	}
	cell, found := FindDropCell(env.Map, pos)
	if found && placeOnPile(env.Map, cell, d, amount, env.Turn) {
		env.Log.Add(content.DropSucceeded, d.Name)
		return DropOK, cell
	}
	bag.Restore(snap)
	env.Log.Add(content.DropNoSpace, d.Name)
	return DropNoSpace, gamemap.Point{}
}

func placeOnPile(m *gamemap.GameMap, p gamemap.Point, d *item.Definition, amount, turn int) bool {
	if pile := m.PileAt(p.X, p.Y); pile != nil {
		pile.Add(d, amount, turn)
		return true
	}
	pile := gamemap.NewItemPile()
	pile.Add(d, amount, turn)
	return m.TryAddPile(p.X, p.Y, pile)
}
