// Package game runs a session: the turn loop behind a queue-and-advance
// API, and the terminal sandbox that drives it.
package game

import (
	"fmt"

	"cinder-roguelike/internal/content"
	"cinder-roguelike/internal/gamemap"
	"cinder-roguelike/internal/item"
	"cinder-roguelike/internal/render"
	"cinder-roguelike/internal/system"

	"github.com/gdamore/tcell/v2"
)

// mode is what the next key means.
type mode uint8

const (
	modePlay mode = iota
	modeAimShoot
	modeAimThrow
	modeContainer
)

// logRows is how many log lines the HUD receives.
const logRows = 3

// Game is the terminal sandbox around a Session.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	session  *Session

	mode      mode
	cursor    gamemap.Point
	selected  int
	container gamemap.Point
	lastPath  []gamemap.Point
}

// New wraps s for play on screen. The screen must already be initialised.
func New(screen tcell.Screen, s *Session) *Game {
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		session:  s,
	}
}

// Run draws and handles keys until the player quits or dies.
func (g *Game) Run() {
	for {
		g.draw()
		if g.session.PlayerDead() {
			g.waitForKey()
			return
		}
		switch ev := g.screen.PollEvent().(type) {
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			if !g.handleKey(ev) {
				return
			}
		case nil:
			return
		}
	}
}

func (g *Game) waitForKey() {
	for {
		switch g.screen.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return
		}
	}
}

func (g *Game) draw() {
	s := g.session
	pos := s.PlayerPos()
	g.renderer.CenterOn(s.Map(), pos.X, pos.Y)

	ov := render.Overlay{Trajectory: g.lastPath}
	if g.mode == modeAimThrow {
		c := g.cursor
		ov.Cursor = &c
	}
	g.renderer.DrawFrame(s.World(), s.Map(), ov)
	g.renderer.DrawHUD(render.HUD{
		Catalog: s.Log().Catalog(),
		World:   s.World(),
		Player:  s.Player(),
		Turn:    s.Turn(),
		Prompt:  g.prompt(),
		Log:     s.Log().Tail(logRows),
	})
}

// prompt is the one-line hint for the current mode.
func (g *Game) prompt() string {
	switch g.mode {
	case modeAimShoot:
		return "Shoot: pick a direction (Esc cancels)"
	case modeAimThrow:
		cat := g.session.Registry().Messages()
		return cat.Format(content.ContextExamineTile, cat.DescribeCell(g.session.Map(), g.cursor.X, g.cursor.Y))
	case modeContainer:
		prop := g.session.Map().PropAt(g.container.X, g.container.Y)
		if prop == nil {
			return ""
		}
		line := "Take 1-9, p stores the selected item:"
		for i, st := range prop.Contents() {
			line += fmt.Sprintf(" %d)%s x%d", i+1, st.Item.Name, st.Amount)
		}
		return line
	}
	if d := g.selectedItem(); d != nil {
		return "Selected: " + d.Name
	}
	return ""
}

// handleKey applies one key. It returns false when the player quits.
func (g *Game) handleKey(ev *tcell.EventKey) bool {
	a := keyToAction(ev)
	if a == ActionQuit {
		return false
	}
	switch g.mode {
	case modeAimShoot:
		g.handleAimShoot(a)
	case modeAimThrow:
		g.handleAimThrow(a)
	case modeContainer:
		g.handleContainer(a, digitOf(ev))
	default:
		g.handlePlay(a)
	}
	return true
}

func (g *Game) handlePlay(a Action) {
	s := g.session
	switch a {
	case ActionMoveN, ActionMoveS, ActionMoveE, ActionMoveW:
		s.QueueMove(actionToDelta(a))
		g.advance()
		pos := s.PlayerPos()
		if s.Map().PileAt(pos.X, pos.Y) != nil {
			s.Log().Add(content.PickupGuideAtFeet)
		}
	case ActionWait:
		s.QueueWait()
		g.advance()
	case ActionPickup:
		s.QueuePickup()
		g.advance()
	case ActionPilePickup:
		if p, ok := g.nearbyPile(); ok {
			s.QueuePickupFromPile(p, s.Map().PileAt(p.X, p.Y).Representative())
			g.advance()
		} else {
			s.Log().Add(content.PickupNoItem)
		}
	case ActionShoot:
		g.mode = modeAimShoot
	case ActionThrow:
		d := g.throwable()
		if d == nil {
			s.Log().Add(content.ThrowMissingItem, s.Registry().Core().OilBottle.Name)
			return
		}
		g.cursor = s.PlayerPos()
		g.mode = modeAimThrow
		s.Log().Add(content.ThrowModeBegin, d.Name)
	case ActionDrop:
		if d := g.selectedItem(); d != nil {
			s.QueueDrop(d, 1)
			g.advance()
		}
	case ActionOpen:
		p, ok := system.AdjacentContainer(s.env(), s.Player())
		if !ok {
			s.Log().Add(content.ContainerNotReachable)
			return
		}
		if _, res := s.OpenContainer(p); res == system.ContainerOK {
			g.container = p
			g.mode = modeContainer
		}
	case ActionEquip:
		if d := g.selectedItem(); d != nil {
			s.Equip(d)
		}
	case ActionCycle:
		g.selected++
	}
}

func (g *Game) handleAimShoot(a Action) {
	g.mode = modePlay
	dx, dy := actionToDelta(a)
	if dx == 0 && dy == 0 {
		return
	}
	g.session.QueueShootDirectional(dx, dy)
	g.advance()
}

func (g *Game) handleAimThrow(a Action) {
	s := g.session
	switch a {
	case ActionCancel:
		g.mode = modePlay
		s.Log().Add(content.ThrowModeCanceled)
	case ActionConfirm, ActionThrow:
		g.mode = modePlay
		if d := g.throwable(); d != nil {
			s.QueueThrow(d, g.cursor)
			g.advance()
		}
	default:
		dx, dy := actionToDelta(a)
		next := g.cursor.Add(dx, dy)
		if next.Chebyshev(s.PlayerPos()) <= system.MaxThrowDistance {
			g.cursor = next
		}
	}
}

func (g *Game) handleContainer(a Action, digit int) {
	s := g.session
	switch {
	case a == ActionCancel:
		g.mode = modePlay
	case a == ActionStore:
		if d := g.selectedItem(); d != nil {
			s.QueueStoreToContainer(g.container, d)
			g.advance()
		}
	case a == ActionCycle:
		g.selected++
	case digit > 0:
		prop := s.Map().PropAt(g.container.X, g.container.Y)
		if prop == nil {
			g.mode = modePlay
			return
		}
		if contents := prop.Contents(); digit <= len(contents) {
			s.QueueTakeFromContainer(g.container, contents[digit-1].Item)
			g.advance()
		}
	}
}

// advance plays the queued turn and keeps the shot path for drawing.
func (g *Game) advance() {
	g.session.Advance()
	g.lastPath = nil
	if r, _, ok := g.session.ConsumeLastProjectile(); ok {
		g.lastPath = r.Travelled()
	}
}

// selectedItem is the bag entry under the selection index.
func (g *Game) selectedItem() *item.Definition {
	bag := g.session.Bag()
	if bag == nil {
		return nil
	}
	entries := bag.Entries()
	if len(entries) == 0 {
		return nil
	}
	return entries[g.selected%len(entries)].Item
}

// throwable prefers oil, then arrows, then the selected item.
func (g *Game) throwable() *item.Definition {
	bag := g.session.Bag()
	if bag == nil {
		return nil
	}
	core := g.session.Registry().Core()
	for _, d := range []*item.Definition{core.OilBottle, core.WoodenArrow} {
		if bag.Count(d) > 0 {
			return d
		}
	}
	return g.selectedItem()
}

// nearbyPile finds a pile at the player's feet, else the first adjacent
// one in row-major order.
func (g *Game) nearbyPile() (gamemap.Point, bool) {
	m := g.session.Map()
	pos := g.session.PlayerPos()
	if m.PileAt(pos.X, pos.Y) != nil {
		return pos, true
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if p := pos.Add(dx, dy); m.PileAt(p.X, p.Y) != nil {
				return p, true
			}
		}
	}
	return gamemap.Point{}, false
}
