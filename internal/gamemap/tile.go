package gamemap

// TileType identifies what occupies one layer of a cell.
type TileType uint8

const (
	GroundNormal TileType = iota
	GroundBurnt
	GroundWater
	GroundOil
	WallStone
	WallMetal
	TreeNormal
	TreeBurning
	TreeBurnt
	FireTile
	OverlayWater
	OverlayOil
	tileTypeCount
)

// Category is the layer a tile type lives on.
type Category uint8

const (
	CategoryGround Category = iota
	CategorySolid
	CategoryOverlay
)

// Category returns the layer t belongs to.
func (t TileType) Category() Category {
	switch t {
	case GroundNormal, GroundBurnt, GroundWater, GroundOil:
		return CategoryGround
	case WallStone, WallMetal, TreeNormal, TreeBurning, TreeBurnt:
		return CategorySolid
	}
	return CategoryOverlay
}

var tileNames = [tileTypeCount]string{
	"ground_normal", "ground_burnt", "ground_water", "ground_oil",
	"wall_stone", "wall_metal",
	"tree_normal", "tree_burning", "tree_burnt",
	"fire", "overlay_water", "overlay_oil",
}

func (t TileType) String() string {
	if t < tileTypeCount {
		return tileNames[t]
	}
	return "unknown"
}

// Tag is a bit set of tile properties the rules react to.
type Tag uint16

const (
	TagBlocking Tag = 1 << iota
	TagFlammable
	TagBurning
	TagWet
	TagOily
	TagConductive
	TagHazardous
	TagWood
	TagMetal
	TagGround
)

// Has reports whether every bit of o is set in t.
func (t Tag) Has(o Tag) bool { return t&o == o }

var tileTags = [tileTypeCount]Tag{
	GroundNormal: TagGround,
	GroundBurnt:  TagGround,
	GroundWater:  TagGround | TagWet,
	GroundOil:    TagGround | TagOily | TagFlammable,
	WallStone:    TagBlocking,
	WallMetal:    TagBlocking | TagMetal | TagConductive,
	TreeNormal:   TagBlocking | TagWood | TagFlammable,
	TreeBurning:  TagBlocking | TagWood | TagBurning | TagHazardous,
	TreeBurnt:    TagBlocking | TagWood,
	FireTile:     TagBurning | TagHazardous,
	OverlayWater: TagWet,
	OverlayOil:   TagOily,
}

// TagsOf returns the static tags of a tile type.
func TagsOf(t TileType) Tag {
	if t < tileTypeCount {
		return tileTags[t]
	}
	return 0
}

// OverlayPriority decides which overlay TileAt reports when a cell holds
// several. Earlier entries win.
var OverlayPriority = []TileType{FireTile, OverlayOil, OverlayWater}
