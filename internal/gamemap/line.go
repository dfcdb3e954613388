package gamemap

// LinearTrajectory steps from the cell after from in the direction of
// (dx, dy), normalised to unit steps, for at most maxRange cells or until
// it leaves the map.
func (m *GameMap) LinearTrajectory(from Point, dx, dy, maxRange int) []Point {
	sx, sy := sign(dx), sign(dy)
	if (sx == 0 && sy == 0) || maxRange <= 0 {
		return nil
	}
	var out []Point
	p := from
	for range maxRange {
		p = p.Add(sx, sy)
		if !m.InBounds(p.X, p.Y) {
			break
		}
		out = append(out, p)
	}
	return out
}

// LineTrajectory traces a Bresenham line from the cell after from toward
// to. It stops at to, after maxRange cells, or on leaving the map.
func (m *GameMap) LineTrajectory(from, to Point, maxRange int) []Point {
	if from == to || maxRange <= 0 {
		return nil
	}
	dx := abs(to.X - from.X)
	dy := abs(to.Y - from.Y)
	sx, sy := sign(to.X-from.X), sign(to.Y-from.Y)
	errv := dx - dy

	var out []Point
	x, y := from.X, from.Y
	for len(out) < maxRange {
		e2 := 2 * errv
		if e2 > -dy {
			errv -= dy
			x += sx
		}
		if e2 < dx {
			errv += dx
			y += sy
		}
		if !m.InBounds(x, y) {
			break
		}
		out = append(out, Point{x, y})
		if x == to.X && y == to.Y {
			break
		}
	}
	return out
}
