package gamemap

// BorderWalls rings the map edge with stone walls.
func (m *GameMap) BorderWalls() {
	for x := 0; x < m.Width; x++ {
		m.SetTile(x, 0, WallStone)
		m.SetTile(x, m.Height-1, WallStone)
	}
	for y := 0; y < m.Height; y++ {
		m.SetTile(0, y, WallStone)
		m.SetTile(m.Width-1, y, WallStone)
	}
}

// NewDemo builds the small test arena: open ground inside a stone border,
// and on maps of at least 8x8 a fire east of centre with a tree beyond it.
func NewDemo(width, height int) *GameMap {
	m := New(width, height)
	m.BorderWalls()
	if width >= 8 && height >= 8 {
		cx, cy := width/2, height/2
		m.SetTile(cx+1, cy, FireTile)
		m.SetTile(cx+3, cy, TreeNormal)
	}
	return m
}
