package system

import (
	"maps"
	"slices"

	"cinder-roguelike/internal/component"
	"cinder-roguelike/internal/content"
	"cinder-roguelike/internal/ecs"
	"cinder-roguelike/internal/gamemap"
	"cinder-roguelike/internal/logger"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

const (
	// BurnDuration is how many environment ticks a tree burns.
	BurnDuration = 3
	// BurnDamagePerTick is the raw damage burning deals each status tick.
	BurnDamagePerTick = 1
	// ExposureDuration is the burning status gained by standing in fire.
	ExposureDuration = 3
)

// EffectSystem tracks the fire state of the map between phases: cells
// waiting to ignite and the timers of burning trees.
type EffectSystem struct {
	pending mapset.Set[gamemap.Point]
	timers  map[gamemap.Point]int
}

func NewEffectSystem() *EffectSystem {
	return &EffectSystem{
		pending: mapset.New[gamemap.Point](),
		timers:  make(map[gamemap.Point]int),
	}
}

// PendingIgnitions returns the queued cells in row-major order.
func (s *EffectSystem) PendingIgnitions() []gamemap.Point {
	out := make([]gamemap.Point, 0, s.pending.Size())
	s.pending.Each(func(p gamemap.Point) { out = append(out, p) })
	slices.SortFunc(out, gamemap.ComparePoints)
	return out
}

// BurnTimer returns the ticks left on the tree at p.
func (s *EffectSystem) BurnTimer(p gamemap.Point) (int, bool) {
	t, ok := s.timers[p]
	return t, ok
}

// ApplyProjectileRules runs the projectile-phase fire rules on one shot.
// A projectile that passes through a burning cell catches fire once; a
// burning projectile that strikes an unburnt tree queues an ignition for
// the next environment tick.
func (s *EffectSystem) ApplyProjectileRules(env Env, res *ProjectileResult) {
	if res == nil || res.ImpactIndex < 0 {
		return
	}
	if !res.Projectile.Tags.Has(gamemap.TagBurning) {
		for _, p := range res.Travelled() {
			t := env.Map.TileAt(p.X, p.Y)
			if t == gamemap.FireTile || gamemap.TagsOf(t).Has(gamemap.TagBurning) {
				res.Projectile.Tags |= gamemap.TagBurning
				env.Log.Add(content.RuleP01ArrowIgnited)
				break
			}
		}
	}
	if !res.Projectile.Tags.Has(gamemap.TagBurning) || res.Impact != ImpactBlockingTile {
		return
	}
	at, _ := res.ImpactPoint()
	if solid, ok := env.Map.SolidAt(at.X, at.Y); ok && solid == gamemap.TreeNormal {
		s.pending.Put(at)
		logger.Log.WithFields(logrus.Fields{
			"component": "effects",
			"x":         at.X,
			"y":         at.Y,
			"turn":      env.Turn,
		}).Debug("ignition queued")
	}
}

// TickEnvironment advances the fire state machine by one tick. Pending
// ignitions light first, then every burning tree's timer runs down and
// trees that reach zero burn out. Entities standing in fire catch the
// burning status here but take no damage.
func (s *EffectSystem) TickEnvironment(env Env, ids []ecs.EntityID) {
	for _, p := range s.PendingIgnitions() {
		if solid, ok := env.Map.SolidAt(p.X, p.Y); ok && solid == gamemap.TreeNormal {
			env.Map.SetSolid(p.X, p.Y, gamemap.TreeBurning)
			s.timers[p] = BurnDuration
			env.Log.Add(content.RuleE01TreeIgnited, p.X, p.Y)
		}
	}
	s.pending = mapset.New[gamemap.Point]()

	for _, p := range slices.SortedFunc(maps.Keys(s.timers), gamemap.ComparePoints) {
		s.timers[p]--
		if s.timers[p] > 0 {
			continue
		}
		delete(s.timers, p)
		if solid, ok := env.Map.SolidAt(p.X, p.Y); ok && solid == gamemap.TreeBurning {
			env.Map.SetSolid(p.X, p.Y, gamemap.TreeBurnt)
			env.Log.Add(content.RuleE01TreeBurnedOut, p.X, p.Y)
		}
	}

	for _, id := range ids {
		pos, ok := env.position(id)
		if !ok || IsDead(env.World, id) {
			continue
		}
		if env.Map.TagsAt(pos.X, pos.Y).Has(gamemap.TagBurning) {
			ApplyEffect(env.World, id, component.ActiveEffect{
				Kind:           component.EffectBurning,
				Magnitude:      BurnDamagePerTick,
				TurnsRemaining: ExposureDuration,
			})
		}
	}
}

// TickStatusEffects deals burning damage to each listed entity and runs
// its timers down. Damage ignores attack and defense.
func TickStatusEffects(env Env, ids []ecs.EntityID) {
	for _, id := range ids {
		if IsDead(env.World, id) {
			continue
		}
		if HasEffect(env.World, id, component.EffectBurning) {
			dealt, killed := env.damage(id, BurnDamagePerTick)
			if env.isPlayer(id) {
				env.Log.Add(content.BurningDamagePlayer, dealt)
				if killed {
					env.Log.Add(content.MeleePlayerDefeated)
				}
			} else {
				name := env.displayName(id)
				env.Log.Add(content.BurningDamageEnemy, name, dealt)
				if killed {
					env.Log.Add(content.MeleeEnemyDefeated, name)
				}
			}
		}
		TickEffects(env.World, id)
	}
}

// TickEffects decrements every effect on id by one turn and drops the
// expired ones.
func TickEffects(w *ecs.World, id ecs.EntityID) {
	c := w.Get(id, component.CEffects)
	if c == nil {
		return
	}
	eff := c.(component.Effects)
	active := eff.Active[:0]
	for _, e := range eff.Active {
		e.TurnsRemaining--
		if e.TurnsRemaining > 0 {
			active = append(active, e)
		}
	}
	eff.Active = active
	w.Add(id, eff)
}

// ApplyEffect adds an effect to an entity. An existing effect of the same
// kind is replaced only by a longer one.
func ApplyEffect(w *ecs.World, id ecs.EntityID, eff component.ActiveEffect) {
	effs := component.Effects{}
	if c := w.Get(id, component.CEffects); c != nil {
		effs = c.(component.Effects)
	}
	for i, e := range effs.Active {
		if e.Kind == eff.Kind {
			if eff.TurnsRemaining > e.TurnsRemaining {
				effs.Active[i] = eff
			}
			w.Add(id, effs)
			return
		}
	}
	effs.Active = append(effs.Active, eff)
	w.Add(id, effs)
}

// HasEffect reports whether an entity currently has an effect of the given kind.
func HasEffect(w *ecs.World, id ecs.EntityID, kind component.EffectKind) bool {
	effs, ok := ecs.Lookup[component.Effects](w, id, component.CEffects)
	return ok && effs.Remaining(kind) > 0
}

// Burning returns the burning turns left on id.
func Burning(w *ecs.World, id ecs.EntityID) int {
	effs, _ := ecs.Lookup[component.Effects](w, id, component.CEffects)
	return effs.Remaining(component.EffectBurning)
}
