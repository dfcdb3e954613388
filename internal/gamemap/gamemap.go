package gamemap

import (
	"fmt"
	"maps"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// PileTTL is how many turns a dropped entry survives on the ground.
const PileTTL = 3600

// Cell is one grid position: a mandatory ground, an optional solid and a
// set of overlays. Visible and Explored are written by the FOV pass.
type Cell struct {
	Ground   TileType
	Solid    TileType
	HasSolid bool
	overlays mapset.Set[TileType]

	Visible  bool
	Explored bool
}

// GameMap holds the layered grid plus the props and item piles on it.
type GameMap struct {
	Width, Height int
	Cells         [][]Cell

	props map[Point]*Prop
	piles map[Point]*ItemPile
}

// New creates a GameMap with every cell set to GroundNormal.
func New(width, height int) *GameMap {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = Cell{Ground: GroundNormal, overlays: mapset.New[TileType]()}
		}
	}
	return &GameMap{
		Width:  width,
		Height: height,
		Cells:  cells,
		props:  make(map[Point]*Prop),
		piles:  make(map[Point]*ItemPile),
	}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the cell at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Cell {
	return &m.Cells[y][x]
}

// GroundAt returns the ground layer, or GroundNormal out of bounds.
func (m *GameMap) GroundAt(x, y int) TileType {
	if !m.InBounds(x, y) {
		return GroundNormal
	}
	return m.Cells[y][x].Ground
}

// SolidAt returns the solid layer and whether one is present.
func (m *GameMap) SolidAt(x, y int) (TileType, bool) {
	if !m.InBounds(x, y) {
		return 0, false
	}
	c := &m.Cells[y][x]
	return c.Solid, c.HasSolid
}

// SetGround replaces the ground layer. Panics on a non-ground type.
func (m *GameMap) SetGround(x, y int, t TileType) {
	mustCategory(t, CategoryGround)
	if m.InBounds(x, y) {
		m.Cells[y][x].Ground = t
	}
}

// SetSolid places a solid. Any prop on the cell is removed so that props
// never share a cell with a solid. Panics on a non-solid type.
func (m *GameMap) SetSolid(x, y int, t TileType) {
	mustCategory(t, CategorySolid)
	if !m.InBounds(x, y) {
		return
	}
	c := &m.Cells[y][x]
	c.Solid, c.HasSolid = t, true
	delete(m.props, Point{x, y})
}

// ClearSolid removes the solid layer.
func (m *GameMap) ClearSolid(x, y int) {
	if m.InBounds(x, y) {
		c := &m.Cells[y][x]
		c.Solid, c.HasSolid = 0, false
	}
}

// AddOverlay adds t to the overlay set. Panics on a non-overlay type.
func (m *GameMap) AddOverlay(x, y int, t TileType) {
	mustCategory(t, CategoryOverlay)
	if m.InBounds(x, y) {
		m.Cells[y][x].overlays.Put(t)
	}
}

// RemoveOverlay removes t from the overlay set.
func (m *GameMap) RemoveOverlay(x, y int, t TileType) {
	if m.InBounds(x, y) {
		m.Cells[y][x].overlays.Remove(t)
	}
}

// HasOverlay reports whether t is in the overlay set.
func (m *GameMap) HasOverlay(x, y int, t TileType) bool {
	return m.InBounds(x, y) && m.Cells[y][x].overlays.Has(t)
}

// Overlays returns the overlays of a cell in OverlayPriority order.
func (m *GameMap) Overlays(x, y int) []TileType {
	if !m.InBounds(x, y) {
		return nil
	}
	set := m.Cells[y][x].overlays
	var out []TileType
	for _, t := range OverlayPriority {
		if set.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

func (m *GameMap) clearOverlays(x, y int) {
	m.Cells[y][x].overlays = mapset.New[TileType]()
}

// TileAt resolves the single tile a legacy query sees: the top overlay,
// else the solid, else the ground.
func (m *GameMap) TileAt(x, y int) TileType {
	if !m.InBounds(x, y) {
		return GroundNormal
	}
	if ov := m.Overlays(x, y); len(ov) > 0 {
		return ov[0]
	}
	c := &m.Cells[y][x]
	if c.HasSolid {
		return c.Solid
	}
	return c.Ground
}

// SetTile writes t through the legacy single-value interface.
//   - ground: replaces the ground and clears solid and overlays
//   - solid: places the solid and clears overlays
//   - overlay: clears solid and overlays, then adds t
func (m *GameMap) SetTile(x, y int, t TileType) {
	if !m.InBounds(x, y) {
		return
	}
	switch t.Category() {
	case CategoryGround:
		m.SetGround(x, y, t)
		m.ClearSolid(x, y)
		m.clearOverlays(x, y)
	case CategorySolid:
		m.SetSolid(x, y, t)
		m.clearOverlays(x, y)
	case CategoryOverlay:
		m.ClearSolid(x, y)
		m.clearOverlays(x, y)
		m.AddOverlay(x, y, t)
	}
}

// TagsAt unions the tags of every layer of a cell.
func (m *GameMap) TagsAt(x, y int) Tag {
	if !m.InBounds(x, y) {
		return 0
	}
	c := &m.Cells[y][x]
	tags := TagsOf(c.Ground)
	if c.HasSolid {
		tags |= TagsOf(c.Solid)
	}
	c.overlays.Each(func(t TileType) { tags |= TagsOf(t) })
	return tags
}

// IsWalkable reports whether a mover may enter (x, y).
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) || m.Cells[y][x].HasSolid {
		return false
	}
	if p := m.props[Point{x, y}]; p != nil && p.Def.BlocksMovement {
		return false
	}
	return true
}

// BlocksProjectiles reports whether a projectile stops at (x, y).
func (m *GameMap) BlocksProjectiles(x, y int) bool {
	if !m.InBounds(x, y) || m.Cells[y][x].HasSolid {
		return true
	}
	p := m.props[Point{x, y}]
	return p != nil && p.Def.BlocksProjectiles
}

// BlocksLOS reports whether (x, y) blocks line of sight.
func (m *GameMap) BlocksLOS(x, y int) bool {
	if !m.InBounds(x, y) || m.Cells[y][x].HasSolid {
		return true
	}
	p := m.props[Point{x, y}]
	return p != nil && p.Def.BlocksLOS
}

// IsTransparent is the inverse of BlocksLOS.
func (m *GameMap) IsTransparent(x, y int) bool {
	return !m.BlocksLOS(x, y)
}

// PropAt returns the prop on a cell, or nil.
func (m *GameMap) PropAt(x, y int) *Prop {
	return m.props[Point{x, y}]
}

// TryAddProp places p on (x, y). It fails out of bounds, on a solid or
// when the cell already holds a prop.
func (m *GameMap) TryAddProp(x, y int, p *Prop) bool {
	if p == nil || !m.InBounds(x, y) || m.Cells[y][x].HasSolid {
		return false
	}
	pt := Point{x, y}
	if _, ok := m.props[pt]; ok {
		return false
	}
	m.props[pt] = p
	return true
}

// PropPoints returns every prop position in row-major order.
func (m *GameMap) PropPoints() []Point {
	return slices.SortedFunc(maps.Keys(m.props), ComparePoints)
}

// PileAt returns the pile on a cell, or nil.
func (m *GameMap) PileAt(x, y int) *ItemPile {
	return m.piles[Point{x, y}]
}

// TryAddPile places a pile on (x, y). It fails out of bounds or when a
// pile is already there.
func (m *GameMap) TryAddPile(x, y int, p *ItemPile) bool {
	if p == nil || !m.InBounds(x, y) {
		return false
	}
	pt := Point{x, y}
	if _, ok := m.piles[pt]; ok {
		return false
	}
	m.piles[pt] = p
	return true
}

// RemovePile deletes the pile on (x, y), if any.
func (m *GameMap) RemovePile(x, y int) {
	delete(m.piles, Point{x, y})
}

// PilePoints returns every pile position in row-major order.
func (m *GameMap) PilePoints() []Point {
	return slices.SortedFunc(maps.Keys(m.piles), ComparePoints)
}

// ExpirePiles drops entries at least PileTTL turns old and removes piles
// left empty. It returns the number of entries removed.
func (m *GameMap) ExpirePiles(currentTurn int) int {
	removed := 0
	for _, pt := range m.PilePoints() {
		pile := m.piles[pt]
		removed += pile.RemoveExpired(currentTurn, PileTTL)
		if pile.IsEmpty() {
			delete(m.piles, pt)
		}
	}
	return removed
}

// ClearVisibility resets the Visible flag of every cell.
func (m *GameMap) ClearVisibility() {
	for y := range m.Cells {
		for x := range m.Cells[y] {
			m.Cells[y][x].Visible = false
		}
	}
}

// MarkVisible flags (x, y) as visible and explored.
func (m *GameMap) MarkVisible(x, y int) {
	if m.InBounds(x, y) {
		c := &m.Cells[y][x]
		c.Visible = true
		c.Explored = true
	}
}

func mustCategory(t TileType, want Category) {
	if t.Category() != want {
		panic(fmt.Sprintf("gamemap: tile %s is not in layer %d", t, want))
	}
}
