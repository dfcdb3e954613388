// Package factory assembles player and enemy entities from actor
// definitions.
package factory

import (
	"fmt"

	"cinder-roguelike/internal/component"
	"cinder-roguelike/internal/content"
	"cinder-roguelike/internal/ecs"
	"cinder-roguelike/internal/item"

	"github.com/gdamore/tcell/v2"
)

// ItemSource resolves item ids. *content.Registry implements it.
type ItemSource interface {
	Item(id string) (*item.Definition, error)
}

// DefaultPlayer is used when the content set has no player actor.
var DefaultPlayer = content.ActorDef{
	ID:          content.PlayerActorID,
	DisplayName: "Wanderer",
	SpriteID:    "actor_player",
	HP:          10,
	Attack:      4,
	Defense:     1,
}

// AI profile ids understood by NewEnemy.
const (
	ProfileChase      = "chase"
	ProfileStationary = "stationary"
)

// NewPlayer creates the player at (x, y) from def, or DefaultPlayer when
// def is nil, and fills the bag with the actor's initial inventory.
func NewPlayer(w *ecs.World, x, y int, def *content.ActorDef, items ItemSource) (ecs.EntityID, error) {
	if def == nil {
		def = &DefaultPlayer
	}
	bag := item.NewInventory(item.DefaultMaxStacks)
	for _, e := range def.InitialInventory {
		d, err := items.Item(e.ItemID)
		if err != nil {
			return ecs.NilEntity, fmt.Errorf("player inventory: %w", err)
		}
		if !bag.Add(d, e.Count) {
			return ecs.NilEntity, fmt.Errorf("player inventory: %s x%d does not fit", e.ItemID, e.Count)
		}
	}

	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Health{Current: def.HP, Max: def.HP})
	w.Add(id, component.Renderable{
		SpriteID:    def.SpriteID,
		FGColor:     tcell.ColorYellow,
		RenderOrder: 10,
	})
	w.Add(id, component.Combat{Attack: def.Attack, Defense: def.Defense})
	w.Add(id, component.Inventory{Bag: bag})
	w.Add(id, component.Effects{})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.TagBlocking{})
	return id, nil
}

// NewEnemy creates an enemy at its spawn point (x, y). The spawn point and
// actor id feed the enemy's drop seed.
func NewEnemy(w *ecs.World, x, y int, def *content.ActorDef) ecs.EntityID {
	behavior := component.BehaviorChase
	if def.AIProfileID == ProfileStationary {
		behavior = component.BehaviorStationary
	}
	defID := def.ID
	if defID == "" {
		defID = component.DefaultEnemyID
	}

	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Health{Current: def.HP, Max: def.HP})
	w.Add(id, component.Renderable{
		SpriteID:    def.SpriteID,
		FGColor:     tcell.ColorRed,
		RenderOrder: 5,
	})
	w.Add(id, component.Combat{Attack: def.Attack, Defense: def.Defense})
	w.Add(id, component.AI{Behavior: behavior, SightRange: component.DefaultSightRange})
	w.Add(id, component.Enemy{
		DefID:       defID,
		DisplayName: def.DisplayName,
		SpawnX:      x,
		SpawnY:      y,
	})
	w.Add(id, component.Effects{})
	w.Add(id, component.TagBlocking{})
	return id
}
