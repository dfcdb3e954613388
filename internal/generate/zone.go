// Package generate builds the playable zones: the fixed demo arena and the
// seeded discovery zone.
package generate

import (
	"cinder-roguelike/internal/gamemap"
	"cinder-roguelike/internal/rng"
)

// Spawn is one actor to create after generation.
type Spawn struct {
	ActorID string
	X, Y    int
}

// Placements records where the generator put each feature.
type Placements struct {
	Seed        int32
	PlayerStart gamemap.Point
	WaterCenter gamemap.Point
	TreesCenter gamemap.Point
	RuinsCenter gamemap.Point
	CampFire    gamemap.Point
	Chest       gamemap.Point
	DirtPile    gamemap.Point
	HasDirtPile bool
}

// Zone is a generated map plus what to place on it.
type Zone struct {
	Map        *gamemap.GameMap
	Placements Placements
	Spawns     []Spawn
}

// Demo returns the fixed arena: the player in the middle, a fire and a tree
// to the east, and the given enemies spread around the start.
func Demo(width, height int, enemyIDs []string) *Zone {
	m := gamemap.NewDemo(width, height)
	start := gamemap.Pt(ClampToInterior(width/2, width), ClampToInterior(height/2, height))
	z := &Zone{Map: m, Placements: Placements{PlayerStart: start}}

	offsets := []gamemap.Point{{X: 2, Y: -2}, {X: -3, Y: 0}, {X: 0, Y: 3}, {X: -2, Y: -3}}
	for i, id := range enemyIDs {
		if i >= len(offsets) {
			break
		}
		p := start.Add(offsets[i].X, offsets[i].Y)
		if m.IsWalkable(p.X, p.Y) {
			z.Spawns = append(z.Spawns, Spawn{ActorID: id, X: p.X, Y: p.Y})
		}
	}
	return z
}

// ClampToInterior keeps v inside [1, size-2]. Maps too small to have an
// interior clamp to 0.
func ClampToInterior(v, size int) int {
	if size <= 2 {
		return 0
	}
	return max(1, min(v, size-2))
}

// Region is an inclusive cell range.
type Region struct {
	MinX, MaxX, MinY, MaxY int
}

func (r Region) valid() bool { return r.MaxX >= r.MinX && r.MaxY >= r.MinY }

// PlaceFilledRect paints a rectangle of random size within region with t
// and returns its centre. Oversized rectangles shrink to fit; an empty
// region returns the map centre untouched.
func PlaceFilledRect(m *gamemap.GameMap, s *rng.Stream, t gamemap.TileType, region Region, minW, maxW, minH, maxH int) gamemap.Point {
	if !region.valid() {
		return gamemap.Pt(m.Width/2, m.Height/2)
	}
	w := min(s.NextIntInclusive(minW, maxW), region.MaxX-region.MinX+1)
	h := min(s.NextIntInclusive(minH, maxH), region.MaxY-region.MinY+1)
	x0 := s.NextIntInclusive(region.MinX, region.MaxX-w+1)
	y0 := s.NextIntInclusive(region.MinY, region.MaxY-h+1)
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			m.SetTile(x, y, t)
		}
	}
	return gamemap.Pt(x0+w/2, y0+h/2)
}

// ruins is the walled enclosure; Outer includes the walls.
type ruins struct {
	Center gamemap.Point
	Outer  gamemap.Rect
}

func (r ruins) inner() Region {
	return Region{MinX: r.Outer.X1 + 1, MaxX: r.Outer.X2 - 1, MinY: r.Outer.Y1 + 1, MaxY: r.Outer.Y2 - 1}
}

// placeRuins walls off a rectangle with a doorway in the middle of its
// first row and a metal corner.
func placeRuins(m *gamemap.GameMap, s *rng.Stream, region Region) ruins {
	if !region.valid() {
		c := gamemap.Pt(m.Width/2, m.Height/2)
		return ruins{Center: c, Outer: gamemap.Rect{X1: c.X, Y1: c.Y, X2: c.X, Y2: c.Y}}
	}
	w := min(s.NextIntInclusive(8, 12), region.MaxX-region.MinX+1)
	h := min(s.NextIntInclusive(7, 11), region.MaxY-region.MinY+1)
	x0 := s.NextIntInclusive(region.MinX, region.MaxX-w+1)
	y0 := s.NextIntInclusive(region.MinY, region.MaxY-h+1)
	x1, y1 := x0+w-1, y0+h-1

	for x := x0; x <= x1; x++ {
		m.SetTile(x, y0, gamemap.WallStone)
		m.SetTile(x, y1, gamemap.WallStone)
	}
	for y := y0; y <= y1; y++ {
		m.SetTile(x0, y, gamemap.WallStone)
		m.SetTile(x1, y, gamemap.WallStone)
	}
	m.SetTile(x0+w/2, y0, gamemap.GroundNormal)
	m.SetTile(x0, y1, gamemap.WallMetal)

	return ruins{
		Center: gamemap.Pt(x0+w/2, y0+h/2),
		Outer:  gamemap.Rect{X1: x0, Y1: y0, X2: x1, Y2: y1},
	}
}

// carveSafeArea clears every interior cell within radius of p.
func carveSafeArea(m *gamemap.GameMap, p gamemap.Point, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			x, y := p.X+dx, p.Y+dy
			if x <= 0 || y <= 0 || x >= m.Width-1 || y >= m.Height-1 {
				continue
			}
			m.SetTile(x, y, gamemap.GroundNormal)
		}
	}
}

// detourWall splits the map with a wall across row height/2-2, leaving
// two gaps so the start is never sealed in.
func detourWall(m *gamemap.GameMap, start gamemap.Point) {
	if m.Width < 10 || m.Height < 10 {
		return
	}
	y := m.Height/2 - 2
	if y <= 1 || y >= m.Height-2 {
		y = m.Height / 2
	}
	gap1 := ClampToInterior(m.Width/2-3, m.Width)
	gap2 := ClampToInterior(m.Width/2+3, m.Width)
	if start.Y == y {
		gap1 = start.X
	}
	for x := 1; x <= m.Width-2; x++ {
		if x != gap1 && x != gap2 {
			m.SetTile(x, y, gamemap.WallStone)
		}
	}
}
