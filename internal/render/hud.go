package render

import (
	"strconv"
	"strings"

	"cinder-roguelike/internal/component"
	"cinder-roguelike/internal/content"
	"cinder-roguelike/internal/ecs"
	"cinder-roguelike/internal/item"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUD is what the status area shows.
type HUD struct {
	Catalog *content.Catalog
	World   *ecs.World
	Player  ecs.EntityID
	Turn    int
	Prompt  string   // mode hint, empty in normal play
	Log     []string // most recent last
}

// DrawHUD renders the status line, the bag and the log tail under the
// map, then shows the frame.
func (r *Renderer) DrawHUD(h HUD) {
	sw, sh := r.screen.Size()
	top := sh - HUDRows
	r.drawRule(top, sw)

	parts := []string{h.Catalog.Format(content.UiHudLocationDefault)}
	if c := h.World.Get(h.Player, component.CHealth); c != nil {
		hp := c.(component.Health)
		parts = append(parts, h.Catalog.Format(content.UiHudHpValue, hp.Current, hp.Max))
	}
	parts = append(parts, h.Catalog.Format(content.UiHudTimeTurn, h.Turn))
	if c := h.World.Get(h.Player, component.CEffects); c != nil {
		for _, e := range c.(component.Effects).Active {
			if e.Kind == component.EffectBurning && e.TurnsRemaining > 0 {
				parts = append(parts, "🔥")
			}
		}
	}
	r.drawText(0, top+1, strings.Join(parts, "  "), styleHUD)

	if c := h.World.Get(h.Player, component.CInventory); c != nil {
		r.drawText(0, top+2, bagLine(c.(component.Inventory).Bag), styleHUD)
	}

	lines := HUDRows - 3
	if h.Prompt != "" {
		r.drawText(0, top+3, h.Prompt, styleCursor)
		lines--
	}
	log := h.Log
	if len(log) > lines {
		log = log[len(log)-lines:]
	}
	for i, msg := range log {
		r.drawText(0, sh-len(log)+i, msg, styleLog)
	}
	r.screen.Show()
}

// bagLine summarises the bag as "name xN" entries with equipped items
// marked.
func bagLine(bag *item.Inventory) string {
	if bag == nil {
		return ""
	}
	var b strings.Builder
	for i, s := range bag.Entries() {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(s.Item.Name)
		if s.Amount > 1 {
			b.WriteString(" x")
			b.WriteString(strconv.Itoa(s.Amount))
		}
		if slot, ok := item.SlotFor(s.Item); ok && bag.Equipped(slot) == s.Item {
			b.WriteString("*")
		}
	}
	return b.String()
}

func (r *Renderer) drawRule(y, width int) {
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, '─', nil, styleRule)
	}
}

// drawText writes text from column x, advancing by each rune's width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
}
