// Package render draws the sandbox view onto a tcell screen.
package render

import (
	"slices"

	"cinder-roguelike/assets"
	"cinder-roguelike/internal/component"
	"cinder-roguelike/internal/ecs"
	"cinder-roguelike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDRows is the height reserved for the HUD under the map.
const HUDRows = 6

// Overlay holds transient markers drawn over the map.
type Overlay struct {
	Cursor     *gamemap.Point
	Trajectory []gamemap.Point
}

// Renderer draws the map, entities and HUD.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(1, h-HUDRows)),
	}
}

// Resize adopts the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth, r.camera.ViewHeight = w, max(1, h-HUDRows)
}

// CenterOn recentres the camera on (x, y), kept over the map.
func (r *Renderer) CenterOn(m *gamemap.GameMap, x, y int) {
	r.camera.Center(x, y)
	r.camera.Clamp(m.Width, m.Height)
}

// WorldToScreen converts a cell to screen coordinates.
func (r *Renderer) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(wx, wy)
}

// DrawFrame renders tiles, props, piles, entities and the overlay.
func (r *Renderer) DrawFrame(w *ecs.World, m *gamemap.GameMap, ov Overlay) {
	r.screen.Clear()
	r.drawMap(m)
	r.drawItems(m)
	r.drawEntities(w, m)
	r.drawOverlay(ov)
}

func (r *Renderer) drawMap(m *gamemap.GameMap) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := m.At(x, y)
			if !c.Visible && !c.Explored {
				continue
			}
			sx, sy, on := r.camera.WorldToScreen(x, y)
			if !on {
				continue
			}
			t := m.TileAt(x, y)
			r.putGlyph(sx, sy, assets.TileGlyph(t.String()), tileStyle(t, c.Visible))
		}
	}
}

// drawItems draws props and piles on visible cells; props win.
func (r *Renderer) drawItems(m *gamemap.GameMap) {
	for _, p := range m.PilePoints() {
		if !m.At(p.X, p.Y).Visible {
			continue
		}
		glyph := assets.GlyphPile
		if d := m.PileAt(p.X, p.Y).Representative(); d != nil {
			glyph = assets.Glyph(d.SpriteID)
		}
		r.putCell(p, glyph, styleBase)
	}
	for _, p := range m.PropPoints() {
		if !m.At(p.X, p.Y).Explored {
			continue
		}
		r.putCell(p, assets.Glyph(m.PropAt(p.X, p.Y).Def.SpriteID), styleBase)
	}
}

type drawable struct {
	pos  gamemap.Point
	rend component.Renderable
}

// drawEntities draws living entities on visible cells by RenderOrder.
func (r *Renderer) drawEntities(w *ecs.World, m *gamemap.GameMap) {
	var list []drawable
	for _, id := range w.Query(component.CRenderable, component.CPosition) {
		if hc := w.Get(id, component.CHealth); hc != nil && hc.(component.Health).IsDead() {
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position).Point()
		if !m.InBounds(pos.X, pos.Y) || !m.At(pos.X, pos.Y).Visible {
			continue
		}
		list = append(list, drawable{pos: pos, rend: w.Get(id, component.CRenderable).(component.Renderable)})
	}
	slices.SortStableFunc(list, func(a, b drawable) int { return a.rend.RenderOrder - b.rend.RenderOrder })
	for _, d := range list {
		r.putCell(d.pos, assets.Glyph(d.rend.SpriteID), styleBase.Foreground(d.rend.FGColor))
	}
}

func (r *Renderer) drawOverlay(ov Overlay) {
	for _, p := range ov.Trajectory {
		r.putCell(p, assets.GlyphProjectile, stylePath)
	}
	if ov.Cursor != nil {
		r.putCell(*ov.Cursor, assets.GlyphCursor, styleCursor)
	}
}

func (r *Renderer) putCell(p gamemap.Point, glyph string, style tcell.Style) {
	if sx, sy, on := r.camera.WorldToScreen(p.X, p.Y); on {
		r.putGlyph(sx, sy, glyph, style)
	}
}

// putGlyph draws glyph in a two-column cell.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) < cellColumns {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
