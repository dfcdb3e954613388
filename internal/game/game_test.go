package game

import (
	"strings"
	"testing"

	"cinder-roguelike/internal/content"
	"cinder-roguelike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(80, 24)
	t.Cleanup(ss.Fini)
	return New(ss, newDemo(t))
}

func runeKey(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionMoveN},
		{runeKey('h'), ActionMoveW},
		{runeKey('.'), ActionWait},
		{runeKey(','), ActionPickup},
		{runeKey('g'), ActionPilePickup},
		{runeKey('f'), ActionShoot},
		{runeKey('t'), ActionThrow},
		{runeKey('d'), ActionDrop},
		{runeKey('o'), ActionOpen},
		{runeKey('q'), ActionQuit},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionCancel},
		{runeKey('z'), ActionNone},
	}
	for _, tc := range cases {
		if got := keyToAction(tc.ev); got != tc.want {
			t.Errorf("keyToAction(%v) = %v; want %v", tc.ev.Name(), got, tc.want)
		}
	}
	if digitOf(runeKey('3')) != 3 || digitOf(runeKey('x')) != 0 {
		t.Error("digitOf")
	}
}

func TestMoveKeyPlaysATurn(t *testing.T) {
	g := newTestGame(t)
	if !g.handleKey(runeKey('h')) {
		t.Fatal("move should not quit")
	}
	if g.session.PlayerPos() != gamemap.Pt(7, 6) || g.session.Turn() != 1 {
		t.Errorf("pos %v turn %d", g.session.PlayerPos(), g.session.Turn())
	}
	if g.handleKey(runeKey('q')) {
		t.Error("q should quit")
	}
}

func TestShootModeTakesDirection(t *testing.T) {
	g := newTestGame(t)
	g.handleKey(runeKey('f'))
	if g.mode != modeAimShoot || g.session.Turn() != 0 {
		t.Fatal("f should only enter aim mode")
	}
	g.handleKey(runeKey('l'))
	if g.mode != modePlay || g.session.Turn() != 1 {
		t.Fatal("direction should fire and end the turn")
	}
	if len(g.lastPath) != 3 {
		t.Errorf("path = %v; want the three cells up to the tree", g.lastPath)
	}
	g.draw()
}

func TestThrowModeCursorAndCancel(t *testing.T) {
	g := newTestGame(t)
	g.handleKey(runeKey('t'))
	if g.mode != modeAimThrow {
		t.Fatal("t should enter throw mode")
	}
	for range 8 {
		g.handleKey(runeKey('k'))
	}
	if want := g.session.PlayerPos().Add(0, -5); g.cursor != want {
		t.Errorf("cursor = %v; want %v (clamped to throw range)", g.cursor, want)
	}
	g.draw()
	g.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	ids := g.session.Log().IDs()
	if g.mode != modePlay || ids[len(ids)-1] != content.ThrowModeCanceled {
		t.Error("Esc should cancel the throw")
	}
	if g.session.Turn() != 0 {
		t.Error("cancelled throws spend no turn")
	}
}

func TestThrowConfirmThrowsOil(t *testing.T) {
	g := newTestGame(t)
	oil := registry.Core().OilBottle
	g.handleKey(runeKey('t'))
	g.handleKey(runeKey('k'))
	g.handleKey(runeKey('k'))
	g.handleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if g.session.Bag().Count(oil) != 1 {
		t.Errorf("oil left = %d; want 1", g.session.Bag().Count(oil))
	}
	if got := g.session.Map().TileAt(8, 4); got != gamemap.GroundOil {
		t.Errorf("tile = %v; want oil", got)
	}
}

func TestOpenWithoutChestLogs(t *testing.T) {
	g := newTestGame(t)
	g.handleKey(runeKey('o'))
	ids := g.session.Log().IDs()
	if g.mode != modePlay || len(ids) == 0 || ids[len(ids)-1] != content.ContainerNotReachable {
		t.Error("o with no chest nearby should log and stay in play mode")
	}
}

func TestThrowWithEmptyBagNamesTheItem(t *testing.T) {
	g := newTestGame(t)
	bag := g.session.Bag()
	for _, st := range bag.Entries() {
		bag.Remove(st.Item, st.Amount)
	}

	g.handleKey(runeKey('t'))
	if g.mode != modePlay {
		t.Fatal("nothing to throw should stay in play mode")
	}
	texts := g.session.Log().Texts()
	if len(texts) == 0 {
		t.Fatal("expected a log entry")
	}
	last := texts[len(texts)-1]
	oil := registry.Core().OilBottle.Name
	if strings.Contains(last, "{0}") || !strings.Contains(last, oil) {
		t.Errorf("last entry = %q; want it to name %q", last, oil)
	}
}
