package system

import (
	"testing"

	"cinder-roguelike/internal/component"
	"cinder-roguelike/internal/content"
	"cinder-roguelike/internal/ecs"
	"cinder-roguelike/internal/gamemap"
)

// fireLane builds the shooting range used by the fire scenarios: shooter
// at (1,1), a fire at (3,1) and a tree at (4,1).
func fireLane() (Env, ecs.EntityID) {
	env := newEnv(10, 4)
	player := addPlayer(env, 1, 1)
	env.Map.AddOverlay(3, 1, gamemap.FireTile)
	env.Map.SetSolid(4, 1, gamemap.TreeNormal)
	return env, player
}

func TestArrowThroughFireCatches(t *testing.T) {
	env, player := fireLane()
	env.Map.ClearSolid(4, 1)
	fx := NewEffectSystem()

	res := ShootDirectional(env, player, 1, 0)
	fx.ApplyProjectileRules(env, res)
	if !res.Projectile.Tags.Has(gamemap.TagBurning) {
		t.Fatal("projectile should carry the burning tag")
	}
	if !logged(env, content.RuleP01ArrowIgnited) {
		t.Error("ignition should be logged")
	}
	if len(fx.PendingIgnitions()) != 0 {
		t.Error("landing on bare ground queues nothing")
	}
}

func TestArrowBesideFireStaysCold(t *testing.T) {
	env, player := fireLane()
	env.Map.RemoveOverlay(3, 1, gamemap.FireTile)
	env.Map.AddOverlay(3, 2, gamemap.FireTile)
	fx := NewEffectSystem()

	res := ShootDirectional(env, player, 1, 0)
	fx.ApplyProjectileRules(env, res)
	if res.Projectile.Tags.Has(gamemap.TagBurning) {
		t.Error("passing next to a fire must not ignite the arrow")
	}
	if len(fx.PendingIgnitions()) != 0 {
		t.Error("a cold arrow must not queue an ignition")
	}
}

func TestBurningArrowIgnitesTreeOverThreeTicks(t *testing.T) {
	env, player := fireLane()
	fx := NewEffectSystem()

	res := ShootDirectional(env, player, 1, 0)
	if res.Impact != ImpactBlockingTile {
		t.Fatalf("impact = %v; want the tree", res.Impact)
	}
	fx.ApplyProjectileRules(env, res)
	if solid, _ := env.Map.SolidAt(4, 1); solid != gamemap.TreeNormal {
		t.Fatalf("tree = %v right after the projectile phase; want tree_normal", solid)
	}
	if got := fx.PendingIgnitions(); len(got) != 1 || got[0] != gamemap.Pt(4, 1) {
		t.Fatalf("pending = %v", got)
	}

	want := []gamemap.TileType{gamemap.TreeBurning, gamemap.TreeBurning, gamemap.TreeBurnt}
	for tick, w := range want {
		fx.TickEnvironment(env, nil)
		if solid, _ := env.Map.SolidAt(4, 1); solid != w {
			t.Fatalf("after tick %d tree = %v; want %v", tick+1, solid, w)
		}
	}
	if _, tracked := fx.BurnTimer(gamemap.Pt(4, 1)); tracked {
		t.Error("a burnt tree should no longer be tracked")
	}
	if !logged(env, content.RuleE01TreeIgnited) || !logged(env, content.RuleE01TreeBurnedOut) {
		t.Errorf("log = %v", env.Log.IDs())
	}

	fx.TickEnvironment(env, nil)
	if solid, _ := env.Map.SolidAt(4, 1); solid != gamemap.TreeBurnt {
		t.Error("burnt is terminal")
	}
}

func TestEnvironmentTickNeverDamages(t *testing.T) {
	env := newEnv(6, 6)
	player := addPlayer(env, 2, 2)
	ApplyEffect(env.World, player, component.ActiveEffect{Kind: component.EffectBurning, Magnitude: 1, TurnsRemaining: 3})
	env.Map.AddOverlay(2, 2, gamemap.FireTile)
	fx := NewEffectSystem()

	fx.TickEnvironment(env, []ecs.EntityID{player})
	if hp := hpOf(env, player); hp != 10 {
		t.Fatalf("HP after environment tick = %d; want 10", hp)
	}

	TickStatusEffects(env, []ecs.EntityID{player})
	if hp := hpOf(env, player); hp != 10-BurnDamagePerTick {
		t.Errorf("HP after status tick = %d; want %d", hp, 10-BurnDamagePerTick)
	}
	if got := Burning(env.World, player); got != 2 {
		t.Errorf("burning left = %d; want 2", got)
	}
	if !logged(env, content.BurningDamagePlayer) {
		t.Error("burn damage should be logged")
	}
}

func TestStandingInFireCatches(t *testing.T) {
	env := newEnv(6, 6)
	player := addPlayer(env, 2, 2)
	env.Map.AddOverlay(2, 2, gamemap.FireTile)

	NewEffectSystem().TickEnvironment(env, []ecs.EntityID{player})
	if got := Burning(env.World, player); got != ExposureDuration {
		t.Errorf("burning = %d; want %d", got, ExposureDuration)
	}
}

func TestStatusTickRunsOut(t *testing.T) {
	env := newEnv(6, 6)
	player := addPlayer(env, 2, 2)
	ApplyEffect(env.World, player, component.ActiveEffect{Kind: component.EffectBurning, Magnitude: 1, TurnsRemaining: 2})

	for range 4 {
		TickStatusEffects(env, []ecs.EntityID{player})
	}
	if hp := hpOf(env, player); hp != 8 {
		t.Errorf("HP = %d; want 8 after two burning ticks", hp)
	}
	if HasEffect(env.World, player, component.EffectBurning) {
		t.Error("burning should have expired")
	}
}

func TestBurningKillsEnemyAndRollsDrop(t *testing.T) {
	env := newEnv(6, 6)
	enemy := addEnemy(env, 3, 3, 1, 1, 0)
	ApplyEffect(env.World, enemy, component.ActiveEffect{Kind: component.EffectBurning, Magnitude: 1, TurnsRemaining: 3})

	TickStatusEffects(env, []ecs.EntityID{enemy})
	if !IsDead(env.World, enemy) {
		t.Fatal("enemy should burn to death")
	}
	if e := env.World.Get(enemy, component.CEnemy).(component.Enemy); !e.DropRolled() {
		t.Error("a burning death should roll the drop")
	}
	if !logged(env, content.BurningDamageEnemy) || !logged(env, content.MeleeEnemyDefeated) {
		t.Errorf("log = %v", env.Log.IDs())
	}
}

func TestApplyEffectKeepsLonger(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()
	ApplyEffect(w, id, component.ActiveEffect{Kind: component.EffectBurning, TurnsRemaining: 5})
	ApplyEffect(w, id, component.ActiveEffect{Kind: component.EffectBurning, TurnsRemaining: 2})
	if got := Burning(w, id); got != 5 {
		t.Errorf("burning = %d; want 5", got)
	}
}
