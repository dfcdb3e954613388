package component

import "cinder-roguelike/internal/ecs"

const CCombat ecs.ComponentType = 4

type Combat struct {
	Attack  int
	Defense int
}

func (Combat) Type() ecs.ComponentType { return CCombat }

// MeleeDamage is attack minus defense, never below 1.
func MeleeDamage(attack, defense int) int {
	return max(1, attack-defense)
}
