package component

import "cinder-roguelike/internal/ecs"

const CHealth ecs.ComponentType = 2

// Health is clamped to 0..Max. An entity with Max <= 0 cannot be hurt.
type Health struct {
	Current, Max int
}

func (Health) Type() ecs.ComponentType { return CHealth }

// IsDead reports whether a damageable entity has run out of hit points.
func (h Health) IsDead() bool { return h.Max > 0 && h.Current <= 0 }

// Damaged returns h after losing amount hit points.
func (h Health) Damaged(amount int) Health {
	if h.Max <= 0 || h.IsDead() || amount <= 0 {
		return h
	}
	h.Current = max(0, h.Current-amount)
	return h
}
