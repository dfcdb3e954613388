package render

// cellColumns is the terminal width of one map cell. Emoji glyphs take two
// columns, so every cell does.
const cellColumns = 2

// Camera translates between map cells and screen positions.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // terminal columns
	ViewHeight int // terminal rows
}

// NewCamera creates a camera centred on (cx, cy).
func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Center puts cell (cx, cy) in the middle of the view.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - c.ViewWidth/cellColumns/2
	c.OffsetY = cy - c.ViewHeight/2
}

// Clamp keeps the view over a mapW x mapH map. Maps smaller than the view
// stay pinned to the top-left corner.
func (c *Camera) Clamp(mapW, mapH int) {
	cols := c.ViewWidth / cellColumns
	c.OffsetX = max(0, min(c.OffsetX, mapW-cols))
	c.OffsetY = max(0, min(c.OffsetY, mapH-c.ViewHeight))
}

// WorldToScreen converts cell (wx, wy) to a screen position. visible is
// false outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * cellColumns
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx+cellColumns <= c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts a screen position to a cell.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx/cellColumns + c.OffsetX, sy + c.OffsetY
}
