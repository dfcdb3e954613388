package component

import "cinder-roguelike/internal/ecs"

const CAI ecs.ComponentType = 5

// DefaultSightRange is the Manhattan distance at which enemies notice the player.
const DefaultSightRange = 5

// AIBehavior describes how an enemy acts each turn.
type AIBehavior uint8

const (
	BehaviorChase      AIBehavior = iota // step toward the player, attack if adjacent
	BehaviorStationary                   // attack if adjacent, never move
)

type AI struct {
	Behavior   AIBehavior
	SightRange int
}

func (AI) Type() ecs.ComponentType { return CAI }
