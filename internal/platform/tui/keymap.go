package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MattiBlue123/Bricker-Game/internal/core"
)

// holdTicks is how long a left/right press keeps steering. Terminals send
// no key-up events, so a direction stays held until the key repeat stops.
const holdTicks = 8

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "w":
		return core.ActionWin, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// heldInput builds one input frame per tick from key presses.
// One-shot actions fire on the next tick only; directions stay held
// for holdTicks after the last press.
type heldInput struct {
	pending core.InputFrame
	dir     core.Action
	left    int
}

func newHeldInput() heldInput {
	return heldInput{pending: core.NewInputFrame()}
}

// press records an action.
func (h *heldInput) press(a core.Action) {
	switch a {
	case core.ActionNone:
	case core.ActionLeft, core.ActionRight:
		h.dir = a
		h.left = holdTicks
	default:
		h.pending.Set(a)
	}
}

// frame returns the input for the next tick and advances the hold timer.
func (h *heldInput) frame() core.InputFrame {
	in := h.pending.Clone()
	if h.left > 0 {
		in.Set(h.dir)
		h.left--
	}
	h.pending.Clear()
	return in
}

// release drops every held and pending action.
func (h *heldInput) release() {
	h.pending.Clear()
	h.left = 0
}
