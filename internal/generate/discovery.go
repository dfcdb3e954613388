package generate

import (
	"cinder-roguelike/internal/gamemap"
	"cinder-roguelike/internal/item"
	"cinder-roguelike/internal/logger"
	"cinder-roguelike/internal/rng"

	"github.com/sirupsen/logrus"
)

// chestBesideCampChance is the percentage of runs whose chest sits next to
// the camp fire rather than inside the ruins.
const chestBesideCampChance = 70

// DiscoveryConfig names what the discovery generator places beyond tiles.
type DiscoveryConfig struct {
	Width, Height int
	Chest         *gamemap.PropDef
	// StarterPile is dropped beside the chest when non-nil.
	StarterPile *item.Definition
	EnemyIDs    []string
}

// Discovery builds the seeded exploration zone. Every random choice comes
// from streams.Gen, so a run seed always yields the same zone.
func Discovery(cfg DiscoveryConfig, streams *rng.WorldStreams) *Zone {
	w, h := cfg.Width, cfg.Height
	s := streams.Gen
	m := gamemap.New(w, h)
	m.BorderWalls()

	start := gamemap.Pt(ClampToInterior(w/2, w), ClampToInterior(h/2, h))
	detourWall(m, start)

	leftMaxX := ClampToInterior(w/2-2, w)
	rightMinX := ClampToInterior(w/2+2, w)
	lowMaxY := ClampToInterior(h/2-4, h)
	highMinY := ClampToInterior(h/2, h)
	innerMaxX, innerMaxY := ClampToInterior(w-2, w), ClampToInterior(h-2, h)

	p := Placements{Seed: streams.RunSeed, PlayerStart: start}
	p.WaterCenter = PlaceFilledRect(m, s, gamemap.OverlayWater,
		Region{MinX: 1, MaxX: leftMaxX, MinY: 1, MaxY: lowMaxY}, 5, 9, 4, 7)
	p.TreesCenter = PlaceFilledRect(m, s, gamemap.TreeNormal,
		Region{MinX: rightMinX, MaxX: innerMaxX, MinY: highMinY, MaxY: innerMaxY}, 5, 10, 5, 10)
	ru := placeRuins(m, s, Region{MinX: 1, MaxX: leftMaxX, MinY: highMinY, MaxY: innerMaxY})
	p.RuinsCenter = ru.Center

	camp := PlaceFilledRect(m, s, gamemap.OverlayOil,
		Region{MinX: rightMinX, MaxX: innerMaxX, MinY: 1, MaxY: lowMaxY}, 6, 10, 4, 7)
	m.SetTile(camp.X, camp.Y, gamemap.FireTile)
	m.SetTile(ClampToInterior(camp.X+1, w), camp.Y, gamemap.OverlayOil)
	p.CampFire = camp

	carveSafeArea(m, start, 1)

	p.Chest = placeChest(m, s, cfg.Chest, camp, ru)
	if cfg.StarterPile != nil {
		p.DirtPile, p.HasDirtPile = placeStarterPile(m, cfg.StarterPile, p.Chest)
	}

	z := &Zone{Map: m, Placements: p}
	z.Spawns = Populate(m, s, start, cfg.EnemyIDs)

	logger.Log.WithFields(logrus.Fields{
		"component": "generate",
		"seed":      p.Seed,
		"start":     p.PlayerStart,
		"camp":      p.CampFire,
		"chest":     p.Chest,
		"spawns":    len(z.Spawns),
	}).Info("discovery zone generated")
	return z
}

func placeChest(m *gamemap.GameMap, s *rng.Stream, def *gamemap.PropDef, camp gamemap.Point, ru ruins) gamemap.Point {
	var pos gamemap.Point
	if s.NextIntInclusive(0, 99) < chestBesideCampChance {
		pos = gamemap.Pt(camp.X+2, camp.Y)
	} else if in := ru.inner(); in.valid() {
		pos = gamemap.Pt(s.NextIntInclusive(in.MinX, in.MaxX), s.NextIntInclusive(in.MinY, in.MaxY))
	} else {
		pos = ru.Center
	}
	pos = gamemap.Pt(ClampToInterior(pos.X, m.Width), ClampToInterior(pos.Y, m.Height))
	if def == nil {
		return pos
	}
	m.SetTile(pos.X, pos.Y, gamemap.GroundNormal)
	m.TryAddProp(pos.X, pos.Y, gamemap.NewProp(def))
	return pos
}

var starterPileOffsets = [8]gamemap.Point{
	{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
	{X: 1, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: -1},
}

// placeStarterPile drops one d on the first free neighbour of near.
func placeStarterPile(m *gamemap.GameMap, d *item.Definition, near gamemap.Point) (gamemap.Point, bool) {
	for _, off := range starterPileOffsets {
		c := near.Add(off.X, off.Y)
		if !m.InBounds(c.X, c.Y) || m.PropAt(c.X, c.Y) != nil {
			continue
		}
		if _, solid := m.SolidAt(c.X, c.Y); solid {
			continue
		}
		pile := gamemap.NewItemPile()
		pile.Add(d, 1, 0)
		if m.TryAddPile(c.X, c.Y, pile) {
			return c, true
		}
	}
	return gamemap.Point{}, false
}
