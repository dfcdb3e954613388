package game

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"cinder-roguelike/assets"
	"cinder-roguelike/internal/component"
	"cinder-roguelike/internal/config"
	"cinder-roguelike/internal/content"
	"cinder-roguelike/internal/gamemap"
	"cinder-roguelike/internal/generate"
	"cinder-roguelike/internal/logger"
	"cinder-roguelike/internal/system"
)

var registry *content.Registry

func TestMain(m *testing.M) {
	logger.Discard()
	r, err := content.Load(assets.Content, "en")
	if err != nil {
		panic(err)
	}
	registry = r
	os.Exit(m.Run())
}

// newDemo builds a 16x12 demo session (start (8,6), fire (9,6), tree
// (11,6)) with the given enemies.
func newDemo(t *testing.T, spawns ...generate.Spawn) *Session {
	t.Helper()
	if spawns == nil {
		spawns = []generate.Spawn{}
	}
	s, err := NewSession(Options{
		Registry:  registry,
		Seed:      1234,
		Zone:      config.ZoneDemo,
		Width:     16,
		Height:    12,
		Spawns:    spawns,
		RunLogDir: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestNewSessionNeedsRegistry(t *testing.T) {
	if _, err := NewSession(Options{}); !errors.Is(err, ErrNoRegistry) {
		t.Errorf("err = %v; want ErrNoRegistry", err)
	}
	if _, err := NewSession(Options{Registry: registry, Zone: "swamp"}); err == nil {
		t.Error("unknown zone should fail")
	}
	_, err := NewSession(Options{Registry: registry, Spawns: []generate.Spawn{{ActorID: "actor_ghost", X: 1, Y: 1}}})
	if !errors.Is(err, content.ErrUnknownID) {
		t.Errorf("unknown actor err = %v; want ErrUnknownID", err)
	}
}

func TestNewSessionSpawnsPlayerFromContent(t *testing.T) {
	s := newDemo(t)
	if s.PlayerPos() != gamemap.Pt(8, 6) {
		t.Errorf("player at %v; want (8,6)", s.PlayerPos())
	}
	bag := s.Bag()
	if bag == nil || bag.Count(registry.Core().WoodenArrow) != 12 || bag.Count(registry.Core().OilBottle) != 2 {
		t.Error("player should carry the content inventory")
	}
	if !s.Map().At(8, 6).Visible {
		t.Error("FOV should be computed at start")
	}
}

func TestDemoSessionUsesZoneSpawns(t *testing.T) {
	s, err := NewSession(Options{Registry: registry, Zone: config.ZoneDemo, Width: 16, Height: 12})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if got := len(system.LivingEnemies(s.World())); got != 2 {
		t.Errorf("enemies = %d; want 2", got)
	}
}

func TestAdvanceBracketsTurn(t *testing.T) {
	s := newDemo(t)
	s.Advance()
	if s.Turn() != 1 {
		t.Fatalf("turn = %d; want 1", s.Turn())
	}
	want := []content.MessageID{content.TurnStart, content.TurnEnd}
	if got := s.Log().IDs(); !slices.Equal(got, want) {
		t.Errorf("ids = %v; want %v", got, want)
	}
	if s.Log().Entries()[0].Text != registry.Messages().Format(content.TurnStart, 1) {
		t.Errorf("turn start text = %q", s.Log().Entries()[0].Text)
	}
}

func TestQueueOverwritesPending(t *testing.T) {
	s := newDemo(t)
	s.QueueMove(1, 0)
	s.QueueMove(-1, 0)
	s.Advance()
	if s.PlayerPos() != gamemap.Pt(7, 6) {
		t.Errorf("player at %v; want (7,6)", s.PlayerPos())
	}
	s.Advance()
	if s.PlayerPos() != gamemap.Pt(7, 6) {
		t.Error("an action must run only once")
	}
}

func TestShotThroughFireIgnitesTree(t *testing.T) {
	s := newDemo(t)
	s.QueueShootDirectional(1, 0)
	s.Advance()

	r, dir, ok := s.ConsumeLastProjectile()
	if !ok || r.Impact != system.ImpactBlockingTile || dir != gamemap.Pt(1, 0) {
		t.Fatalf("last projectile = %+v dir %v ok %v", r, dir, ok)
	}
	if at, _ := r.ImpactPoint(); at != gamemap.Pt(11, 6) {
		t.Errorf("impact at %v; want the tree", at)
	}
	if _, _, again := s.ConsumeLastProjectile(); again {
		t.Error("the last projectile is consumed once")
	}
	if got := s.Map().TileAt(11, 6); got != gamemap.TreeBurning {
		t.Errorf("tree = %v; want burning after the same turn", got)
	}
	ids := s.Log().IDs()
	if !slices.Contains(ids, content.RuleP01ArrowIgnited) || !slices.Contains(ids, content.RuleE01TreeIgnited) {
		t.Errorf("log = %v; want ignition entries", ids)
	}

	s.Advance()
	s.Advance()
	if got := s.Map().TileAt(11, 6); got != gamemap.TreeBurnt {
		t.Errorf("tree = %v; want burnt after three turns", got)
	}
}

func TestMeleeKillRollsDropAndCounts(t *testing.T) {
	s := newDemo(t, generate.Spawn{ActorID: content.GoblinActorID, X: 7, Y: 6})
	goblin := system.LivingEnemies(s.World())[0]

	s.QueueMove(-1, 0)
	s.Advance()
	hp := s.World().Get(s.Player(), component.CHealth).(component.Health)
	if hp.Current != 8 {
		t.Errorf("player hp = %d; want 8 after the goblin's reply", hp.Current)
	}

	s.QueueMove(-1, 0)
	s.Advance()
	if !system.IsDead(s.World(), goblin) || s.Kills() != 1 {
		t.Fatalf("goblin should be dead, kills = %d", s.Kills())
	}
	e := s.World().Get(goblin, component.CEnemy).(component.Enemy)
	if e.Drop == nil || e.Drop.IsEmpty() {
		t.Error("the drop should be rolled on death")
	}
	if s.Map().PileAt(7, 6) != nil {
		t.Error("drops are not placed on the map")
	}
	if s.PlayerPos() != gamemap.Pt(8, 6) {
		t.Error("bumping attacks without moving")
	}
}

func TestThrowOilSoaksGround(t *testing.T) {
	s := newDemo(t)
	oil := registry.Core().OilBottle
	s.QueueThrow(oil, gamemap.Pt(8, 4))
	s.Advance()
	if got := s.Map().TileAt(8, 4); got != gamemap.GroundOil {
		t.Errorf("tile = %v; want oil", got)
	}
	if s.Bag().Count(oil) != 1 {
		t.Errorf("oil left = %d; want 1", s.Bag().Count(oil))
	}
}

func TestDropThenPickupFromPile(t *testing.T) {
	s := newDemo(t)
	arrow := registry.Core().WoodenArrow
	s.QueueDrop(arrow, 2)
	s.Advance()
	pile := s.Map().PileAt(8, 6)
	if pile == nil || pile.Count(arrow) != 2 || s.Bag().Count(arrow) != 10 {
		t.Fatal("drop should leave two arrows underfoot")
	}
	s.QueuePickupFromPile(gamemap.Pt(8, 6), arrow)
	s.Advance()
	if s.Bag().Count(arrow) != 11 || pile.Count(arrow) != 1 {
		t.Errorf("bag %d pile %d; want 11 and 1", s.Bag().Count(arrow), pile.Count(arrow))
	}
}

func TestEquipIsImmediate(t *testing.T) {
	s := newDemo(t)
	if !s.Equip(registry.Core().Bow) {
		t.Fatal("equip bow failed")
	}
	if s.Turn() != 0 {
		t.Error("equipping must not spend a turn")
	}
}

func TestDiscoverySessionIsDeterministic(t *testing.T) {
	open := func() *Session {
		s, err := NewSession(Options{Registry: registry, Seed: 77, Zone: config.ZoneDiscovery, Width: 32, Height: 24})
		if err != nil {
			t.Fatalf("NewSession: %v", err)
		}
		return s
	}
	a, b := open(), open()
	if a.Placements() != b.Placements() {
		t.Errorf("placements differ: %+v vs %+v", a.Placements(), b.Placements())
	}
	chest := a.Placements().Chest
	if p := a.Map().PropAt(chest.X, chest.Y); p == nil || !p.IsContainer() {
		t.Error("discovery zone should hold a chest")
	}
	if a.PlayerPos() != a.Placements().PlayerStart {
		t.Error("player should start at the generated start")
	}
}

func TestOpenContainerIsImmediate(t *testing.T) {
	s := newDemo(t)
	chest := gamemap.NewProp(registry.MustProp(gamemap.ChestID))
	if !s.Map().TryAddProp(9, 5, chest) {
		t.Fatal("could not place chest")
	}
	prop, res := s.OpenContainer(gamemap.Pt(9, 5))
	if res != system.ContainerOK || prop != chest || !chest.LootRolled() {
		t.Fatalf("open = %v", res)
	}
	if s.Turn() != 0 {
		t.Error("opening must not spend a turn")
	}
	first := chest.Contents()[0].Item
	before := s.Bag().Count(first)
	s.QueueTakeFromContainer(gamemap.Pt(9, 5), first)
	s.Advance()
	if s.Bag().Count(first) != before+1 {
		t.Error("take should move the item into the bag")
	}
}

func TestCloseWritesRunLogOnce(t *testing.T) {
	dir := t.TempDir()
	s, err := NewSession(Options{Registry: registry, Seed: 5, Zone: config.ZoneDemo, Width: 16, Height: 12, Spawns: []generate.Spawn{}, RunLogDir: dir})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.Advance()
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "runs.jsonl"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("lines = %d; want 1", len(lines))
	}
	for _, want := range []string{s.ID.String(), `"turns":1`, `"cause":"quit"`, `"seed":5`} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("record %s missing %s", lines[0], want)
		}
	}
}

func TestSpawnsSkipOccupiedCells(t *testing.T) {
	s := newDemo(t,
		generate.Spawn{ActorID: content.GoblinActorID, X: 8, Y: 6},
		generate.Spawn{ActorID: content.GoblinActorID, X: 4, Y: 4},
		generate.Spawn{ActorID: content.WolfActorID, X: 4, Y: 4},
	)
	enemies := s.World().Query(component.CEnemy)
	if len(enemies) != 1 {
		t.Fatalf("enemies = %d; want 1 (player cell and a doubled cell skipped)", len(enemies))
	}
	e := s.World().Get(enemies[0], component.CEnemy).(component.Enemy)
	if e.DefID != content.GoblinActorID || e.SpawnX != 4 || e.SpawnY != 4 {
		t.Errorf("spawned %+v; want the first goblin at (4,4)", e)
	}
}
