package component

import (
	"cinder-roguelike/internal/ecs"
	"cinder-roguelike/internal/item"
)

const CInventory ecs.ComponentType = 3

// Inventory points at the entity's bag. The bag is shared, so copies of
// the component see the same items.
type Inventory struct {
	Bag *item.Inventory
}

func (Inventory) Type() ecs.ComponentType { return CInventory }
