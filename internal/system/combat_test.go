package system

import (
	"testing"

	"cinder-roguelike/internal/component"
	"cinder-roguelike/internal/content"
	"cinder-roguelike/internal/ecs"
	"cinder-roguelike/internal/gamemap"
)

func TestMeleeDamageIsAtLeastOne(t *testing.T) {
	env := newEnv(10, 10)
	player := addPlayer(env, 2, 2)
	enemy := addEnemy(env, 2, 3, 6, 1, 9)

	res := Melee(env, player, enemy)
	if !res.OK || res.Damage != 1 {
		t.Fatalf("Melee = %+v; want 1 damage", res)
	}
	if hp := hpOf(env, enemy); hp != 5 {
		t.Errorf("enemy HP = %d; want 5", hp)
	}
	if !logged(env, content.MeleePlayerHitEnemyDamage) {
		t.Error("player hit should be logged")
	}
}

func TestMeleeRequiresOrthogonalNeighbour(t *testing.T) {
	env := newEnv(10, 10)
	player := addPlayer(env, 2, 2)
	diagonal := addEnemy(env, 3, 3, 6, 1, 0)
	far := addEnemy(env, 5, 2, 6, 1, 0)

	if res := Melee(env, player, diagonal); res.OK {
		t.Error("diagonal melee should not connect")
	}
	if res := Melee(env, player, far); res.OK {
		t.Error("distant melee should not connect")
	}
	if hpOf(env, diagonal) != 6 || hpOf(env, far) != 6 {
		t.Error("failed attacks must not deal damage")
	}
}

func TestMeleeKillRollsDrop(t *testing.T) {
	env := newEnv(10, 10)
	player := addPlayer(env, 2, 2)
	enemy := addEnemy(env, 3, 2, 3, 1, 0)

	res := Melee(env, player, enemy)
	if !res.Killed {
		t.Fatalf("Melee = %+v; want a kill", res)
	}
	if hp := hpOf(env, enemy); hp != 0 {
		t.Errorf("HP after overkill = %d; want 0", hp)
	}
	e := env.World.Get(enemy, component.CEnemy).(component.Enemy)
	if !e.DropRolled() || e.Drop.IsEmpty() {
		t.Error("death should roll a non-empty drop")
	}
	if !logged(env, content.MeleeEnemyDefeated) {
		t.Error("defeat should be logged")
	}
	if again := Melee(env, player, enemy); again.OK {
		t.Error("attacking a dead enemy should fail")
	}
}

func TestEnemyHitsPlayer(t *testing.T) {
	env := newEnv(10, 10)
	player := addPlayer(env, 2, 2)
	enemy := addEnemy(env, 3, 2, 6, 3, 0)

	res := Melee(env, enemy, player)
	if res.Damage != 2 || hpOf(env, player) != 8 {
		t.Errorf("Melee = %+v, player HP %d; want 2 damage, 8 HP", res, hpOf(env, player))
	}
	if !logged(env, content.MeleeEnemyHitPlayerDamage) {
		t.Error("enemy hit should be logged")
	}
}

func dropOf(t *testing.T, env Env, x, y int) []gamemap.PileEntry {
	t.Helper()
	id := LivingEnemyAt(env.World, gamemap.Pt(x, y))
	if id == ecs.NilEntity {
		t.Fatalf("no enemy at (%d,%d)", x, y)
	}
	env.damage(id, 100)
	e := env.World.Get(id, component.CEnemy).(component.Enemy)
	return e.Drop.Entries()
}

func TestEnemyDropsAreOrderIndependent(t *testing.T) {
	first := newEnv(10, 10)
	addEnemy(first, 1, 1, 5, 1, 0)
	addEnemy(first, 7, 7, 5, 1, 0)
	a1 := dropOf(t, first, 1, 1)
	a2 := dropOf(t, first, 7, 7)

	second := newEnv(10, 10)
	addEnemy(second, 7, 7, 5, 1, 0)
	addEnemy(second, 1, 1, 5, 1, 0)
	b2 := dropOf(t, second, 7, 7)
	b1 := dropOf(t, second, 1, 1)

	same := func(x, y []gamemap.PileEntry) bool {
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i].Item != y[i].Item || x[i].Amount != y[i].Amount {
				return false
			}
		}
		return true
	}
	if !same(a1, b1) || !same(a2, b2) {
		t.Errorf("drops depend on kill order: %v/%v vs %v/%v", a1, a2, b1, b2)
	}
}

func TestEnsureDropRolledIsIdempotent(t *testing.T) {
	env := newEnv(10, 10)
	enemy := addEnemy(env, 4, 4, 5, 1, 0)

	first := EnsureDropRolled(env, enemy)
	e := env.World.Get(enemy, component.CEnemy).(component.Enemy)
	if !e.HasDropSeed {
		t.Fatal("the derived seed should be cached")
	}
	if second := EnsureDropRolled(env, enemy); second != first {
		t.Error("a second roll should return the cached pile")
	}
}

func TestDisplayNamesComeFromContent(t *testing.T) {
	env := newEnv(10, 10)
	player := addPlayer(env, 2, 2)
	enemy := addEnemy(env, 3, 2, 6, 1, 0)
	stone := env.World.CreateEntity()

	msgs := registry.Messages()
	if got := env.displayName(player); got != msgs.Format(content.UiActorYou) || got == "" {
		t.Errorf("player name = %q", got)
	}
	if got := env.displayName(stone); got != msgs.Format(content.UiActorUnknown) || got == "" {
		t.Errorf("unknown name = %q", got)
	}
	if got := env.displayName(enemy); got != "Goblin" {
		t.Errorf("enemy name = %q; want Goblin", got)
	}
}
