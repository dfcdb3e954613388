package component

import (
	"cinder-roguelike/internal/ecs"
	"cinder-roguelike/internal/gamemap"
)

const CPosition ecs.ComponentType = 1

type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Point returns the position as a map coordinate.
func (p Position) Point() gamemap.Point { return gamemap.Point{X: p.X, Y: p.Y} }
