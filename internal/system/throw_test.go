package system

import (
	"testing"

	"cinder-roguelike/internal/content"
	"cinder-roguelike/internal/gamemap"
)

func TestThrowGuards(t *testing.T) {
	env := newEnv(12, 12)
	player := addPlayer(env, 2, 2)
	bag := bagOf(env, player)

	if res := Throw(env, player, env.Core.OilBottle, gamemap.Pt(3, 3)); res.Reason != ThrowMissingItem {
		t.Errorf("missing item: %v", res.Reason)
	}
	bag.Add(env.Core.OilBottle, 1)
	if res := Throw(env, player, env.Core.OilBottle, gamemap.Pt(2, 2)); res.Reason != ThrowTargetIsSelf {
		t.Errorf("self target: %v", res.Reason)
	}
	if res := Throw(env, player, env.Core.OilBottle, gamemap.Pt(8, 2)); res.Reason != ThrowTooFar {
		t.Errorf("too far: %v", res.Reason)
	}
	if bag.Count(env.Core.OilBottle) != 1 {
		t.Error("guard failures must not consume the item")
	}
}

func TestThrowOilMakesPuddle(t *testing.T) {
	env := newEnv(12, 12)
	player := addPlayer(env, 2, 2)
	bagOf(env, player).Add(env.Core.OilBottle, 2)

	res := Throw(env, player, env.Core.OilBottle, gamemap.Pt(4, 4))
	if res.Reason != ThrowOK {
		t.Fatalf("Throw = %v", res.Reason)
	}
	if g := env.Map.GroundAt(4, 4); g != gamemap.GroundOil {
		t.Errorf("ground = %v; want ground_oil", g)
	}
	if n := bagOf(env, player).Count(env.Core.OilBottle); n != 1 {
		t.Errorf("bottles left = %d; want 1", n)
	}
	if !logged(env, content.ThrowOilBottleCreatePuddle) {
		t.Error("puddle should be logged")
	}
}

func TestThrowOilOutcomes(t *testing.T) {
	env := newEnv(6, 6)
	player := addPlayer(env, 1, 1)
	bag := bagOf(env, player)
	bag.Add(env.Core.OilBottle, 3)
	env.Map.SetSolid(3, 1, gamemap.TreeNormal)
	env.Map.SetGround(1, 3, gamemap.GroundOil)

	if res := Throw(env, player, env.Core.OilBottle, gamemap.Pt(-2, 1)); res.Reason != ThrowLost {
		t.Errorf("off map: %v; want ThrowLost", res.Reason)
	}
	if res := Throw(env, player, env.Core.OilBottle, gamemap.Pt(3, 1)); res.Reason != ThrowNoSpread {
		t.Errorf("onto a tree: %v; want ThrowNoSpread", res.Reason)
	}
	if res := Throw(env, player, env.Core.OilBottle, gamemap.Pt(1, 3)); res.Reason != ThrowNoSpread {
		t.Errorf("onto oil: %v; want ThrowNoSpread", res.Reason)
	}
	if bag.Count(env.Core.OilBottle) != 0 {
		t.Error("every oil throw past the guards consumes a bottle")
	}
}

func TestThrowArrowFliesShort(t *testing.T) {
	env := newEnv(20, 5)
	player := addPlayer(env, 1, 1)
	bagOf(env, player).Add(env.Core.WoodenArrow, 2)

	res := Throw(env, player, env.Core.WoodenArrow, gamemap.Pt(6, 1))
	if res.Reason != ThrowOK || res.Projectile == nil {
		t.Fatalf("Throw = %+v", res)
	}
	if at, _ := res.Projectile.ImpactPoint(); at != gamemap.Pt(6, 1) {
		t.Errorf("arrow landed at %v; want (6,1)", at)
	}
	if n := bagOf(env, player).Count(env.Core.WoodenArrow); n != 1 {
		t.Errorf("arrows left = %d; want 1", n)
	}
}

func TestThrowDirtAndOthers(t *testing.T) {
	env := newEnv(10, 10)
	player := addPlayer(env, 2, 2)
	bag := bagOf(env, player)
	bag.Add(env.Core.DirtClod, 1)
	bag.Add(env.Core.ShortSword, 1)

	if res := Throw(env, player, env.Core.DirtClod, gamemap.Pt(3, 2)); res.Reason != ThrowOK {
		t.Errorf("dirt: %v", res.Reason)
	}
	if bag.Count(env.Core.DirtClod) != 0 {
		t.Error("dirt should be consumed")
	}
	if res := Throw(env, player, env.Core.ShortSword, gamemap.Pt(3, 2)); res.Reason != ThrowNoEffect {
		t.Errorf("sword: %v; want ThrowNoEffect", res.Reason)
	}
	if bag.Count(env.Core.ShortSword) != 1 {
		t.Error("unrecognised items are kept")
	}
}
