package component

import "cinder-roguelike/internal/ecs"

const CEffects ecs.ComponentType = 7

// EffectKind describes what an active effect does.
type EffectKind uint8

const (
	EffectBurning EffectKind = iota
)

// ActiveEffect is a timed status applied to an entity.
type ActiveEffect struct {
	Kind           EffectKind
	Magnitude      int
	TurnsRemaining int
}

type Effects struct {
	Active []ActiveEffect
}

func (Effects) Type() ecs.ComponentType { return CEffects }

// Remaining returns the turns left on kind, or 0.
func (e Effects) Remaining(kind EffectKind) int {
	for _, a := range e.Active {
		if a.Kind == kind {
			return a.TurnsRemaining
		}
	}
	return 0
}
