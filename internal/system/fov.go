package system

import (
	"cinder-roguelike/internal/ecs"
	"cinder-roguelike/internal/gamemap"
)

// DefaultSightRadius is the player's view radius in the sandbox.
const DefaultSightRadius = 8

// octant is a transform from scan coordinates (col, row) to a map offset.
type octant struct{ xx, xy, yx, yy int }

var octants = [8]octant{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// UpdateFOV recomputes what id can see. Props and solids that block line
// of sight cast shadows; the radius is circular.
func UpdateFOV(env Env, id ecs.EntityID, radius int) {
	env.Map.ClearVisibility()
	pos, ok := env.position(id)
	if !ok {
		return
	}
	ComputeFOV(env.Map, pos, radius)
}

// ComputeFOV marks every cell visible from origin by recursive
// shadowcasting. It does not clear earlier visibility.
func ComputeFOV(m *gamemap.GameMap, origin gamemap.Point, radius int) {
	m.MarkVisible(origin.X, origin.Y)
	for _, o := range octants {
		s := shadowScan{m: m, origin: origin, radius: radius, oct: o}
		s.cast(1, 1.0, 0.0)
	}
}

type shadowScan struct {
	m      *gamemap.GameMap
	origin gamemap.Point
	radius int
	oct    octant
}

func (s shadowScan) cell(col, row int) gamemap.Point {
	return s.origin.Add(col*s.oct.xx+row*s.oct.xy, col*s.oct.yx+row*s.oct.yy)
}

func (s shadowScan) opaque(p gamemap.Point) bool {
	return !s.m.InBounds(p.X, p.Y) || !s.m.IsTransparent(p.X, p.Y)
}

// cast lights one octant between the start and end slopes, beginning at
// depth row. Rows are negative in scan space.
func (s shadowScan) cast(depth int, start, end float64) {
	if start < end {
		return
	}
	r2 := float64(s.radius * s.radius)
	nextStart := start
	for j := depth; j <= s.radius; j++ {
		row := -j
		blocked := false
		for col := -j; col <= 0; col++ {
			left := (float64(col) - 0.5) / (float64(row) + 0.5)
			right := (float64(col) + 0.5) / (float64(row) - 0.5)
			if start < right {
				continue
			}
			if end > left {
				break
			}

			p := s.cell(col, row)
			if float64(col*col+row*row) < r2 {
				s.m.MarkVisible(p.X, p.Y)
			}

			wall := s.opaque(p)
			switch {
			case blocked && wall:
				nextStart = right
			case blocked:
				blocked = false
				start = nextStart
			case wall && j < s.radius:
				blocked = true
				s.cast(j+1, start, left)
				nextStart = right
			}
		}
		if blocked {
			return
		}
	}
}
