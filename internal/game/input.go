package game

import "github.com/gdamore/tcell/v2"

// Action is a player request decoded from a key.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionWait
	ActionPickup
	ActionPilePickup
	ActionShoot
	ActionThrow
	ActionDrop
	ActionOpen
	ActionEquip
	ActionCycle
	ActionStore
	ActionConfirm
	ActionCancel
	ActionQuit
)

// keyToAction maps a tcell key event to an action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyEscape:
		return ActionCancel
	case tcell.KeyTab:
		return ActionCycle
	}

	switch ev.Rune() {
	case 'k':
		return ActionMoveN
	case 'j':
		return ActionMoveS
	case 'l':
		return ActionMoveE
	case 'h':
		return ActionMoveW
	case '.':
		return ActionWait
	case ',':
		return ActionPickup
	case 'g':
		return ActionPilePickup
	case 'f':
		return ActionShoot
	case 't':
		return ActionThrow
	case 'd':
		return ActionDrop
	case 'o':
		return ActionOpen
	case 'e':
		return ActionEquip
	case 'p':
		return ActionStore
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// digitOf returns the 1-based number on a digit key, or 0.
func digitOf(ev *tcell.EventKey) int {
	if r := ev.Rune(); ev.Key() == tcell.KeyRune && r >= '1' && r <= '9' {
		return int(r - '0')
	}
	return 0
}

// actionToDelta converts a movement action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionMoveN:
		return 0, -1
	case ActionMoveS:
		return 0, 1
	case ActionMoveE:
		return 1, 0
	case ActionMoveW:
		return -1, 0
	}
	return 0, 0
}
