package game

import (
	"errors"
	"fmt"

	"cinder-roguelike/internal/component"
	"cinder-roguelike/internal/config"
	"cinder-roguelike/internal/content"
	"cinder-roguelike/internal/ecs"
	"cinder-roguelike/internal/factory"
	"cinder-roguelike/internal/gamelog"
	"cinder-roguelike/internal/gamemap"
	"cinder-roguelike/internal/generate"
	"cinder-roguelike/internal/item"
	"cinder-roguelike/internal/logger"
	"cinder-roguelike/internal/rng"
	"cinder-roguelike/internal/system"
	"cinder-roguelike/internal/turn"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrNoRegistry is returned by NewSession without content.
var ErrNoRegistry = errors.New("session needs a content registry")

// Options configures a new session.
type Options struct {
	Registry *content.Registry
	Seed     int32
	Zone     string // config.ZoneDemo or config.ZoneDiscovery
	Width    int
	Height   int
	// Spawns replaces the zone's own enemy list when non-nil.
	Spawns    []generate.Spawn
	RunLogDir string
}

// OptionsFromConfig maps the sandbox configuration onto session options.
func OptionsFromConfig(cfg config.Config, reg *content.Registry) Options {
	return Options{
		Registry:  reg,
		Seed:      cfg.RunSeed,
		Zone:      cfg.Zone,
		Width:     cfg.MapWidth,
		Height:    cfg.MapHeight,
		RunLogDir: cfg.RunLogDir,
	}
}

type actionKind uint8

const (
	actNone actionKind = iota
	actWait
	actMove
	actPickup
	actPickupPile
	actShootDirectional
	actShootAt
	actThrow
	actDrop
	actTake
	actStore
)

// action is the one pending player command.
type action struct {
	kind   actionKind
	dx, dy int
	target gamemap.Point
	item   *item.Definition
	amount int
	equip  bool
	params system.ProjectileParams
}

// Session owns one run: the map, the world and the turn loop.
type Session struct {
	ID uuid.UUID

	registry   *content.Registry
	world      *ecs.World
	gmap       *gamemap.GameMap
	streams    *rng.WorldStreams
	log        *gamelog.Log
	sched      *turn.Scheduler
	effects    *system.EffectSystem
	player     ecs.EntityID
	placements generate.Placements
	zone       string

	pending     action
	projectiles []*system.ProjectileResult
	last        *system.ProjectileResult
	lastDir     gamemap.Point

	runLogDir string
	closed    bool
}

// NewSession generates the zone, spawns the actors and registers the phase
// handlers.
func NewSession(opts Options) (*Session, error) {
	if opts.Registry == nil {
		return nil, ErrNoRegistry
	}
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = 32
	}
	if h <= 0 {
		h = 24
	}
	reg := opts.Registry
	streams := rng.NewWorldStreams(opts.Seed)
	enemyIDs := []string{content.GoblinActorID, content.WolfActorID}

	var zone *generate.Zone
	switch opts.Zone {
	case config.ZoneDiscovery:
		zone = generate.Discovery(generate.DiscoveryConfig{
			Width:       w,
			Height:      h,
			Chest:       reg.MustProp(gamemap.ChestID),
			StarterPile: reg.Core().DirtClod,
			EnemyIDs:    enemyIDs,
		}, streams)
	case config.ZoneDemo, "":
		zone = generate.Demo(w, h, enemyIDs)
	default:
		return nil, fmt.Errorf("unknown zone %q", opts.Zone)
	}
	spawns := zone.Spawns
	if opts.Spawns != nil {
		spawns = opts.Spawns
	}

	s := &Session{
		ID:         uuid.New(),
		registry:   reg,
		world:      ecs.NewWorld(),
		gmap:       zone.Map,
		streams:    streams,
		log:        gamelog.New(reg.Messages()),
		sched:      turn.NewScheduler(),
		effects:    system.NewEffectSystem(),
		placements: zone.Placements,
		zone:       opts.Zone,
		runLogDir:  opts.RunLogDir,
	}

	var playerDef *content.ActorDef
	if def, err := reg.Actor(content.PlayerActorID); err == nil {
		playerDef = def
	}
	start := zone.Placements.PlayerStart
	player, err := factory.NewPlayer(s.world, start.X, start.Y, playerDef, reg)
	if err != nil {
		return nil, fmt.Errorf("spawn player: %w", err)
	}
	s.player = player

	for _, sp := range spawns {
		def, err := reg.Actor(sp.ActorID)
		if err != nil {
			return nil, fmt.Errorf("spawn enemy: %w", err)
		}
		if system.BlockerAt(s.world, gamemap.Pt(sp.X, sp.Y), ecs.NilEntity) != ecs.NilEntity {
			logger.Log.WithFields(logrus.Fields{
				"component": "game",
				"actor":     sp.ActorID,
				"x":         sp.X,
				"y":         sp.Y,
			}).Warn("spawn cell occupied, skipping")
			continue
		}
		factory.NewEnemy(s.world, sp.X, sp.Y, def)
	}

	s.sched.Register(turn.PhasePlayer, s.resolvePlayer)
	s.sched.Register(turn.PhaseProjectile, s.resolveProjectiles)
	s.sched.Register(turn.PhaseEnvironment, s.tickEnvironment)
	s.sched.Register(turn.PhaseEnemy, s.runEnemies)
	s.sched.Register(turn.PhaseStatusEffect, s.tickStatus)

	system.UpdateFOV(s.env(), s.player, system.DefaultSightRadius)

	logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"session":   s.ID,
		"seed":      opts.Seed,
		"zone":      opts.Zone,
		"enemies":   len(spawns),
	}).Info("session started")
	return s, nil
}

// env is the action environment for the turn in progress.
func (s *Session) env() system.Env {
	return system.Env{
		World:   s.world,
		Map:     s.gmap,
		Log:     s.log,
		Core:    s.registry.Core(),
		RunSeed: s.streams.RunSeed,
		Turn:    s.sched.CurrentTurn() + 1,
	}
}

func (s *Session) queue(a action) { s.pending = a }

// QueueWait passes the next turn.
func (s *Session) QueueWait() { s.queue(action{kind: actWait}) }

// QueueMove moves (or attacks) one step.
func (s *Session) QueueMove(dx, dy int) { s.queue(action{kind: actMove, dx: dx, dy: dy}) }

// QueuePickup picks up at the player's feet.
func (s *Session) QueuePickup() { s.queue(action{kind: actPickup}) }

// QueuePickupFromPile takes one d from the pile at p.
func (s *Session) QueuePickupFromPile(p gamemap.Point, d *item.Definition) {
	s.queue(action{kind: actPickupPile, target: p, item: d})
}

// QueuePickupAndEquipFromPile takes one d from the pile at p and equips it.
func (s *Session) QueuePickupAndEquipFromPile(p gamemap.Point, d *item.Definition) {
	s.queue(action{kind: actPickupPile, target: p, item: d, equip: true})
}

// QueueShootDirectional shoots along (dx, dy).
func (s *Session) QueueShootDirectional(dx, dy int) {
	s.queue(action{kind: actShootDirectional, dx: dx, dy: dy})
}

// QueueShootAt shoots at a target cell.
func (s *Session) QueueShootAt(target gamemap.Point, params system.ProjectileParams) {
	s.queue(action{kind: actShootAt, target: target, params: params})
}

// QueueThrow throws one d at target.
func (s *Session) QueueThrow(d *item.Definition, target gamemap.Point) {
	s.queue(action{kind: actThrow, item: d, target: target})
}

// QueueDrop drops amount units of d.
func (s *Session) QueueDrop(d *item.Definition, amount int) {
	s.queue(action{kind: actDrop, item: d, amount: amount})
}

// QueueTakeFromContainer moves one d out of the container at p.
func (s *Session) QueueTakeFromContainer(p gamemap.Point, d *item.Definition) {
	s.queue(action{kind: actTake, target: p, item: d})
}

// QueueStoreToContainer moves one d into the container at p.
func (s *Session) QueueStoreToContainer(p gamemap.Point, d *item.Definition) {
	s.queue(action{kind: actStore, target: p, item: d})
}

// OpenContainer opens the container at p without spending a turn.
func (s *Session) OpenContainer(p gamemap.Point) (*gamemap.Prop, system.ContainerResult) {
	return system.OpenContainer(s.env(), s.player, p)
}

// Equip equips d from the bag without spending a turn.
func (s *Session) Equip(d *item.Definition) bool { return system.Equip(s.env(), s.player, d) }

// Unequip clears slot without spending a turn.
func (s *Session) Unequip(slot item.Slot) bool { return system.Unequip(s.env(), s.player, slot) }

// Advance plays one full turn.
func (s *Session) Advance() {
	n := s.sched.CurrentTurn() + 1
	s.log.TurnStart(n)
	s.sched.Advance()
	s.log.TurnEnd(n)
	system.UpdateFOV(s.env(), s.player, system.DefaultSightRadius)
}

func (s *Session) resolvePlayer() {
	a := s.pending
	s.pending = action{}
	if system.IsDead(s.world, s.player) {
		return
	}
	env := s.env()
	switch a.kind {
	case actMove:
		system.TryMove(env, s.player, a.dx, a.dy)
	case actPickup:
		system.PickupAtFeet(env, s.player)
	case actPickupPile:
		system.PickupFromPile(env, s.player, a.target, a.item, a.equip)
	case actShootDirectional:
		s.recordProjectile(system.ShootDirectional(env, s.player, a.dx, a.dy), a.dx, a.dy)
	case actShootAt:
		pos := s.PlayerPos()
		s.recordProjectile(system.ShootAt(env, s.player, a.target, a.params), a.target.X-pos.X, a.target.Y-pos.Y)
	case actThrow:
		pos := s.PlayerPos()
		res := system.Throw(env, s.player, a.item, a.target)
		if res.Projectile != nil {
			s.recordProjectile(res.Projectile, a.target.X-pos.X, a.target.Y-pos.Y)
		}
	case actDrop:
		system.Drop(env, s.player, a.item, a.amount)
	case actTake:
		system.TakeFromContainer(env, s.player, a.target, a.item)
	case actStore:
		system.StoreToContainer(env, s.player, a.target, a.item)
	}
}

func (s *Session) recordProjectile(r *system.ProjectileResult, dx, dy int) {
	if r == nil {
		return
	}
	s.projectiles = append(s.projectiles, r)
	s.last = r
	s.lastDir = gamemap.Pt(sign(dx), sign(dy))
}

func (s *Session) resolveProjectiles() {
	env := s.env()
	for _, r := range s.projectiles {
		s.effects.ApplyProjectileRules(env, r)
	}
	s.projectiles = s.projectiles[:0]
}

func (s *Session) tickEnvironment() {
	if n := s.gmap.ExpirePiles(s.sched.CurrentTurn() + 1); n > 0 {
		logger.Log.WithFields(logrus.Fields{"component": "game", "entries": n}).Debug("piles expired")
	}
	s.effects.TickEnvironment(s.env(), s.actors())
}

func (s *Session) runEnemies() {
	hits := system.RunEnemyPhase(s.env(), s.player)
	if len(hits) > 0 {
		logger.Log.WithFields(logrus.Fields{"component": "game", "hits": len(hits)}).Debug("enemy phase")
	}
}

func (s *Session) tickStatus() {
	system.TickStatusEffects(s.env(), s.actors())
}

// actors lists the player followed by the living enemies.
func (s *Session) actors() []ecs.EntityID {
	return append([]ecs.EntityID{s.player}, system.LivingEnemies(s.world)...)
}

// ConsumeLastProjectile returns the most recent shot and its direction,
// once.
func (s *Session) ConsumeLastProjectile() (*system.ProjectileResult, gamemap.Point, bool) {
	if s.last == nil {
		return nil, gamemap.Point{}, false
	}
	r, dir := s.last, s.lastDir
	s.last, s.lastDir = nil, gamemap.Point{}
	return r, dir, true
}

// World returns the entity store.
func (s *Session) World() *ecs.World { return s.world }

// Map returns the zone map.
func (s *Session) Map() *gamemap.GameMap { return s.gmap }

// Log returns the gameplay log.
func (s *Session) Log() *gamelog.Log { return s.log }

// Registry returns the content the session was built from.
func (s *Session) Registry() *content.Registry { return s.registry }

// Player returns the player entity.
func (s *Session) Player() ecs.EntityID { return s.player }

// Placements reports where generation put the zone's features.
func (s *Session) Placements() generate.Placements { return s.placements }

// Effects returns the environmental rule state.
func (s *Session) Effects() *system.EffectSystem { return s.effects }

// Turn is the number of completed turns.
func (s *Session) Turn() int { return s.sched.CurrentTurn() }

// Seed is the run seed.
func (s *Session) Seed() int32 { return s.streams.RunSeed }

// PlayerPos returns the player's position.
func (s *Session) PlayerPos() gamemap.Point {
	c := s.world.Get(s.player, component.CPosition)
	if c == nil {
		return gamemap.Point{}
	}
	return c.(component.Position).Point()
}

// Bag returns the player's inventory.
func (s *Session) Bag() *item.Inventory {
	c := s.world.Get(s.player, component.CInventory)
	if c == nil {
		return nil
	}
	return c.(component.Inventory).Bag
}

// PlayerDead reports whether the run is lost.
func (s *Session) PlayerDead() bool { return system.IsDead(s.world, s.player) }

// Kills counts enemies that have died by any cause.
func (s *Session) Kills() int {
	n := 0
	for _, id := range s.world.Query(component.CEnemy) {
		if system.IsDead(s.world, id) {
			n++
		}
	}
	return n
}

// Close records the run. Later calls do nothing.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	cause := CauseQuit
	if s.PlayerDead() {
		cause = CauseDefeated
	}
	rec := RunRecord{
		RunID: s.ID.String(),
		Seed:  s.Seed(),
		Zone:  s.zone,
		Turns: s.Turn(),
		Kills: s.Kills(),
		Cause: cause,
	}
	if err := saveRunLog(s.runLogDir, rec); err != nil {
		logger.Log.WithError(err).WithField("component", "game").Warn("run log not saved")
		return err
	}
	return nil
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
