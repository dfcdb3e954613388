package component

import (
	"cinder-roguelike/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 10

// Renderable names the sprite the sandbox draws for an entity.
type Renderable struct {
	SpriteID    string
	FGColor     tcell.Color
	RenderOrder int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
