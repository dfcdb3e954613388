package content

import "cinder-roguelike/internal/gamemap"

var tileDescriptions = map[gamemap.TileType]MessageID{
	gamemap.GroundNormal: UiTileDescGroundNormal,
	gamemap.GroundBurnt:  UiTileDescGroundBurnt,
	gamemap.GroundOil:    UiTileDescGroundOil,
	gamemap.GroundWater:  UiTileDescGroundWater,
	gamemap.OverlayWater: UiTileDescGroundWater,
	gamemap.OverlayOil:   UiTileDescGroundOil,
	gamemap.TreeNormal:   UiTileDescTreeNormal,
	gamemap.TreeBurning:  UiTileDescTreeBurning,
	gamemap.TreeBurnt:    UiTileDescTreeBurnt,
	gamemap.WallStone:    UiTileDescWallStone,
	gamemap.WallMetal:    UiTileDescWallMetal,
	gamemap.FireTile:     UiTileDescFire,
}

// TileDescID returns the description message for a tile type.
func TileDescID(t gamemap.TileType) MessageID {
	if id, ok := tileDescriptions[t]; ok {
		return id
	}
	return UiTileDescUnknown
}

// DescribeCell names what is visible at (x, y): a prop's display name, or
// the description of the resolved tile.
func (c *Catalog) DescribeCell(m *gamemap.GameMap, x, y int) string {
	if p := m.PropAt(x, y); p != nil && p.Def != nil {
		return p.Def.DisplayName
	}
	if !m.InBounds(x, y) {
		return c.Format(UiTileDescUnknown)
	}
	return c.Format(TileDescID(m.TileAt(x, y)))
}
