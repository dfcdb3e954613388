package system

import (
	"testing"

	"cinder-roguelike/internal/component"
	"cinder-roguelike/internal/content"
	"cinder-roguelike/internal/ecs"
	"cinder-roguelike/internal/gamemap"
)

func TestMoveToOpenTile(t *testing.T) {
	env := newEnv(10, 10)
	player := addPlayer(env, 2, 2)

	res, target := TryMove(env, player, 1, 0)
	if res != MoveOK || target != ecs.NilEntity {
		t.Fatalf("TryMove = %v,%v; want MoveOK", res, target)
	}
	if got := posOf(env, player); got != gamemap.Pt(3, 2) {
		t.Errorf("position = %v; want (3,2)", got)
	}
	if !logged(env, content.MoveSucceeded) {
		t.Error("a successful move should be logged")
	}
}

func TestMoveBlockedByWall(t *testing.T) {
	env := newEnv(10, 10)
	player := addPlayer(env, 2, 2)
	env.Map.SetSolid(3, 2, gamemap.WallStone)

	if res, _ := TryMove(env, player, 1, 0); res != MoveBlocked {
		t.Fatalf("TryMove = %v; want MoveBlocked", res)
	}
	if got := posOf(env, player); got != gamemap.Pt(2, 2) {
		t.Errorf("player moved to %v", got)
	}
	if !logged(env, content.MoveBlockedByWall) {
		t.Error("a blocked move should be logged")
	}
}

func TestMoveBlockedByChest(t *testing.T) {
	env := newEnv(10, 10)
	player := addPlayer(env, 2, 2)
	addChest(t, env, 2, 3)

	if res, _ := TryMove(env, player, 0, 1); res != MoveBlocked {
		t.Errorf("TryMove = %v; want MoveBlocked", res)
	}
}

func TestMoveOutOfBounds(t *testing.T) {
	env := newEnv(5, 5)
	player := addPlayer(env, 0, 0)

	if res, _ := TryMove(env, player, -1, 0); res != MoveOutOfBounds {
		t.Fatalf("TryMove = %v; want MoveOutOfBounds", res)
	}
	if !logged(env, content.MoveOutOfBounds) {
		t.Error("leaving the map should be logged")
	}
}

func TestMoveIntoEnemyAttacks(t *testing.T) {
	env := newEnv(10, 10)
	player := addPlayer(env, 2, 2)
	enemy := addEnemy(env, 3, 2, 6, 3, 0)

	res, target := TryMove(env, player, 1, 0)
	if res != MoveAttack || target != enemy {
		t.Fatalf("TryMove = %v,%v; want MoveAttack on the enemy", res, target)
	}
	if got := posOf(env, player); got != gamemap.Pt(2, 2) {
		t.Errorf("attacker should stay put, got %v", got)
	}
	if hp := hpOf(env, enemy); hp != 2 {
		t.Errorf("enemy HP = %d; want 2", hp)
	}
}

func TestDeadEnemyDoesNotBlock(t *testing.T) {
	env := newEnv(10, 10)
	player := addPlayer(env, 2, 2)
	enemy := addEnemy(env, 3, 2, 1, 1, 0)
	Melee(env, player, enemy)
	if !IsDead(env.World, enemy) {
		t.Fatal("enemy should be dead")
	}

	if res, _ := TryMove(env, player, 1, 0); res != MoveOK {
		t.Errorf("TryMove onto a corpse = %v; want MoveOK", res)
	}
}

func TestBlockingEntityStopsMovement(t *testing.T) {
	env := newEnv(10, 10)
	player := addPlayer(env, 2, 2)
	crate := env.World.CreateEntity()
	env.World.Add(crate, component.Position{X: 3, Y: 2})
	env.World.Add(crate, component.Health{Current: 5, Max: 5})
	env.World.Add(crate, component.TagBlocking{})

	if got := BlockerAt(env.World, gamemap.Pt(3, 2), player); got != crate {
		t.Fatalf("BlockerAt = %v; want %v", got, crate)
	}
	if res, _ := TryMove(env, player, 1, 0); res != MoveBlocked {
		t.Fatalf("TryMove = %v; want MoveBlocked", res)
	}
	if got := posOf(env, player); got != gamemap.Pt(2, 2) {
		t.Errorf("player moved to %v", got)
	}

	env.World.Add(crate, component.Health{Current: 0, Max: 5})
	if res, _ := TryMove(env, player, 1, 0); res != MoveOK {
		t.Errorf("TryMove past a destroyed blocker = %v; want MoveOK", res)
	}
}

func TestBlockerAtIgnoresSelf(t *testing.T) {
	env := newEnv(10, 10)
	player := addPlayer(env, 2, 2)
	env.World.Add(player, component.TagBlocking{})

	if got := BlockerAt(env.World, gamemap.Pt(2, 2), player); got != ecs.NilEntity {
		t.Errorf("BlockerAt should skip the mover, got %v", got)
	}
	if got := BlockerAt(env.World, gamemap.Pt(2, 2), ecs.NilEntity); got != player {
		t.Errorf("BlockerAt = %v; want the player", got)
	}
}
