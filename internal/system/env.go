// Package system resolves actions and rules against the world and the map.
// Every function is synchronous and reports outcomes as values; failed
// multi-step operations leave the state as it was.
package system

import (
	"cinder-roguelike/internal/component"
	"cinder-roguelike/internal/content"
	"cinder-roguelike/internal/ecs"
	"cinder-roguelike/internal/gamelog"
	"cinder-roguelike/internal/gamemap"
	"cinder-roguelike/internal/item"
	"cinder-roguelike/internal/logger"
	"cinder-roguelike/internal/rng"

	"github.com/sirupsen/logrus"
)

// Env bundles the state an action reads and mutates.
type Env struct {
	World   *ecs.World
	Map     *gamemap.GameMap
	Log     *gamelog.Log
	Core    item.CoreItems
	RunSeed int32
	Turn    int // current turn, stamped on drops
}

func (env Env) position(id ecs.EntityID) (gamemap.Point, bool) {
	c, ok := ecs.Lookup[component.Position](env.World, id, component.CPosition)
	return c.Point(), ok
}

func (env Env) health(id ecs.EntityID) (component.Health, bool) {
	return ecs.Lookup[component.Health](env.World, id, component.CHealth)
}

// IsDead reports whether id has a Health component that ran out.
func IsDead(w *ecs.World, id ecs.EntityID) bool {
	h, ok := ecs.Lookup[component.Health](w, id, component.CHealth)
	return ok && h.IsDead()
}

func (env Env) bag(id ecs.EntityID) *item.Inventory {
	inv, _ := ecs.Lookup[component.Inventory](env.World, id, component.CInventory)
	return inv.Bag
}

func (env Env) isPlayer(id ecs.EntityID) bool { return env.World.Has(id, component.CTagPlayer) }
func (env Env) isEnemy(id ecs.EntityID) bool  { return env.World.Has(id, component.CEnemy) }

func (env Env) displayName(id ecs.EntityID) string {
	if e, ok := ecs.Lookup[component.Enemy](env.World, id, component.CEnemy); ok {
		return e.DisplayName
	}
	if env.isPlayer(id) {
		return env.Log.Catalog().Format(content.UiActorYou)
	}
	return env.Log.Catalog().Format(content.UiActorUnknown)
}

// LivingEnemyAt returns the living enemy standing on p, or NilEntity.
func LivingEnemyAt(w *ecs.World, p gamemap.Point) ecs.EntityID {
	for _, id := range w.Query(component.CEnemy, component.CPosition) {
		if IsDead(w, id) {
			continue
		}
		if w.Get(id, component.CPosition).(component.Position).Point() == p {
			return id
		}
	}
	return ecs.NilEntity
}

// BlockerAt returns a living entity tagged as blocking that stands on p,
// other than except, or NilEntity.
func BlockerAt(w *ecs.World, p gamemap.Point, except ecs.EntityID) ecs.EntityID {
	for _, id := range w.Query(component.CTagBlocking, component.CPosition) {
		if id == except || IsDead(w, id) {
			continue
		}
		if pos, _ := ecs.Lookup[component.Position](w, id, component.CPosition); pos.Point() == p {
			return id
		}
	}
	return ecs.NilEntity
}

// LivingEnemies returns every enemy that is not dead, in registration order.
func LivingEnemies(w *ecs.World) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range w.Query(component.CEnemy) {
		if !IsDead(w, id) {
			out = append(out, id)
		}
	}
	return out
}

// damage removes amount hit points from id. Enemies that die roll their
// drop on the spot.
func (env Env) damage(id ecs.EntityID, amount int) (dealt int, killed bool) {
	hp, ok := env.health(id)
	if !ok || hp.IsDead() {
		return 0, false
	}
	after := hp.Damaged(amount)
	env.World.Add(id, after)
	dealt = hp.Current - after.Current
	killed = after.IsDead()
	if killed && env.isEnemy(id) {
		EnsureDropRolled(env, id)
	}
	return dealt, killed
}

// EnsureDropRolled generates an enemy's drop from its order-independent
// seed. Later calls return the cached pile and consume nothing.
func EnsureDropRolled(env Env, id ecs.EntityID) *gamemap.ItemPile {
	e, ok := ecs.Lookup[component.Enemy](env.World, id, component.CEnemy)
	if !ok {
		return nil
	}
	if e.Drop != nil {
		return e.Drop
	}
	if !e.HasDropSeed {
		e.DropSeed = rng.DeriveDropSeed(env.RunSeed, e.SpawnX, e.SpawnY, e.DefID)
		e.HasDropSeed = true
	}
	s := rng.NewStream(e.DropSeed)
	pile := gamemap.NewItemPile()
	if s.NextInt(0, 100) < 60 {
		pile.Add(env.Core.DirtClod, 1, env.Turn)
	} else {
		pile.Add(env.Core.WoodenArrow, 1+s.NextInt(0, 2), env.Turn)
	}
	e.Drop = pile
	env.World.Add(id, e)

	logger.Log.WithFields(logrus.Fields{
		"component": "system",
		"enemy":     e.DefID,
		"entity":    id,
		"turn":      env.Turn,
	}).Debug("enemy drop rolled")
	return pile
}
