package system

import (
	"testing"

	"cinder-roguelike/internal/ecs"
	"cinder-roguelike/internal/gamemap"
)

func TestFOVOriginAlwaysVisible(t *testing.T) {
	env := newEnv(20, 20)
	player := addPlayer(env, 5, 5)

	UpdateFOV(env, player, 5)

	c := env.Map.At(5, 5)
	if !c.Visible || !c.Explored {
		t.Error("player's own cell must be visible and explored")
	}
}

func TestFOVClearsOldVisibility(t *testing.T) {
	env := newEnv(20, 20)
	player := addPlayer(env, 5, 5)
	env.Map.MarkVisible(19, 19)

	UpdateFOV(env, player, 3)

	if env.Map.At(19, 19).Visible {
		t.Error("UpdateFOV should clear stale visibility")
	}
	if !env.Map.At(19, 19).Explored {
		t.Error("explored cells stay explored")
	}
}

func TestFOVRadius(t *testing.T) {
	env := newEnv(20, 20)
	player := addPlayer(env, 10, 10)

	UpdateFOV(env, player, 4)

	for _, p := range []gamemap.Point{{X: 10, Y: 7}, {X: 13, Y: 10}} {
		if !env.Map.At(p.X, p.Y).Visible {
			t.Errorf("%v at distance 3 should be visible", p)
		}
	}
	for _, p := range []gamemap.Point{{X: 10, Y: 15}, {X: 5, Y: 10}} {
		if env.Map.At(p.X, p.Y).Visible {
			t.Errorf("%v at distance 5 should be hidden with radius 4", p)
		}
	}
}

func TestFOVWallCastsShadow(t *testing.T) {
	env := newEnv(20, 20)
	player := addPlayer(env, 10, 10)
	env.Map.SetSolid(10, 8, gamemap.WallStone)

	UpdateFOV(env, player, 8)

	if !env.Map.At(10, 8).Visible {
		t.Error("the wall itself should be visible")
	}
	if env.Map.At(10, 7).Visible {
		t.Error("the cell behind the wall should be hidden")
	}
}

func TestFOVChestDoesNotBlockSight(t *testing.T) {
	env := newEnv(20, 20)
	player := addPlayer(env, 10, 10)
	addChest(t, env, 10, 8)

	UpdateFOV(env, player, 8)

	if !env.Map.At(10, 7).Visible {
		t.Error("chests do not block line of sight")
	}
}

func TestFOVWithoutPositionDoesNotPanic(t *testing.T) {
	env := newEnv(10, 10)
	UpdateFOV(env, ecs.EntityID(99), 5)
}
