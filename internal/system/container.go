package system

import (
	"cinder-roguelike/internal/content"
	"cinder-roguelike/internal/ecs"
	"cinder-roguelike/internal/gamemap"
	"cinder-roguelike/internal/item"
)

// ContainerResult describes the outcome of a container interaction.
type ContainerResult uint8

const (
	ContainerOK ContainerResult = iota
	ContainerMissing
	ContainerNotReachable
	ContainerTransferFailed
)

// reachContainer returns the container at p if id stands within one step.
func reachContainer(env Env, id ecs.EntityID, p gamemap.Point) (*gamemap.Prop, ContainerResult) {
	pos, ok := env.position(id)
	if !ok {
		return nil, ContainerNotReachable
	}
	prop := env.Map.PropAt(p.X, p.Y)
	if prop == nil || !prop.IsContainer() {
		return nil, ContainerMissing
	}
	if pos.Chebyshev(p) > 1 {
		env.Log.Add(content.ContainerNotReachable)
		return nil, ContainerNotReachable
	}
	prop.EnsureLootRolled(env.RunSeed, p.X, p.Y, env.Core)
	return prop, ContainerOK
}

// OpenContainer opens the container at p, rolling its loot on first use.
func OpenContainer(env Env, id ecs.EntityID, p gamemap.Point) (*gamemap.Prop, ContainerResult) {
	prop, res := reachContainer(env, id, p)
	if res != ContainerOK {
		return nil, res
	}
	env.Log.Add(content.ContainerOpened, prop.Def.DisplayName)
	return prop, ContainerOK
}

// TakeFromContainer moves one d from the container at p into id's bag.
func TakeFromContainer(env Env, id ecs.EntityID, p gamemap.Point, d *item.Definition) ContainerResult {
	prop, res := reachContainer(env, id, p)
	if res != ContainerOK {
		return res
	}
	bag := env.bag(id)
	if bag == nil || d == nil || !prop.TakeOneToInventory(d, bag) {
		env.Log.Add(content.ContainerTransferFailed, itemName(d))
		return ContainerTransferFailed
	}
	env.Log.Add(content.ContainerTookItem, d.Name)
	return ContainerOK
}

// StoreToContainer moves one d from id's bag into the container at p.
func StoreToContainer(env Env, id ecs.EntityID, p gamemap.Point, d *item.Definition) ContainerResult {
	prop, res := reachContainer(env, id, p)
	if res != ContainerOK {
		return res
	}
	bag := env.bag(id)
	if bag == nil || d == nil || !prop.StoreOneFromInventory(d, bag) {
		env.Log.Add(content.ContainerTransferFailed, itemName(d))
		return ContainerTransferFailed
	}
	env.Log.Add(content.ContainerStoredItem, d.Name)
	return ContainerOK
}

// AdjacentContainer returns the first container within one step of id,
// scanning rows then columns.
func AdjacentContainer(env Env, id ecs.EntityID) (gamemap.Point, bool) {
	pos, ok := env.position(id)
	if !ok {
		return gamemap.Point{}, false
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			p := pos.Add(dx, dy)
			if prop := env.Map.PropAt(p.X, p.Y); prop != nil && prop.IsContainer() {
				return p, true
			}
		}
	}
	return gamemap.Point{}, false
}

func itemName(d *item.Definition) string {
	if d == nil {
		return ""
	}
	return d.Name
}
