package component

import (
	"cinder-roguelike/internal/ecs"
	"cinder-roguelike/internal/gamemap"
)

const CEnemy ecs.ComponentType = 6

// DefaultEnemyID is used when an enemy is spawned without an actor id.
const DefaultEnemyID = "enemy_basic"

// Enemy carries the identity an enemy's drop is derived from and, once it
// has died, the rolled drop. The drop is kept for inspection only.
type Enemy struct {
	DefID       string
	DisplayName string
	SpawnX      int
	SpawnY      int

	DropSeed    uint64
	HasDropSeed bool
	Drop        *gamemap.ItemPile
}

func (Enemy) Type() ecs.ComponentType { return CEnemy }

// DropRolled reports whether the drop has been generated.
func (e Enemy) DropRolled() bool { return e.Drop != nil }
