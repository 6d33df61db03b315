package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action represents a keyboard action that can be triggered by key bindings.
type Action int

const (
	// ActionNone represents no action (used when a key doesn't match any binding).
	ActionNone Action = iota

	// Navigation actions
	ActionCharacterForward
	ActionCharacterBackward
	ActionWordForward
	ActionWordBackward
	ActionLineStart
	ActionLineEnd

	// Deletion actions
	ActionDeleteCharacterBackward
	ActionDeleteCharacterForward
	ActionDeleteWordBackward

	// Completion popup actions
	ActionComplete
	ActionTogglePathCompletion
	ActionAccept
	ActionSelectPrevious
	ActionSelectNext
	ActionDismiss

	// Tab actions
	ActionNewTab
	ActionCloseTab
	ActionNextTab
	ActionPreviousTab

	// Special actions
	ActionPaste
	ActionQuit
)

// String returns the string representation of an Action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionCharacterForward:
		return "CharacterForward"
	case ActionCharacterBackward:
		return "CharacterBackward"
	case ActionWordForward:
		return "WordForward"
	case ActionWordBackward:
		return "WordBackward"
	case ActionLineStart:
		return "LineStart"
	case ActionLineEnd:
		return "LineEnd"
	case ActionDeleteCharacterBackward:
		return "DeleteCharacterBackward"
	case ActionDeleteCharacterForward:
		return "DeleteCharacterForward"
	case ActionDeleteWordBackward:
		return "DeleteWordBackward"
	case ActionComplete:
		return "Complete"
	case ActionTogglePathCompletion:
		return "TogglePathCompletion"
	case ActionAccept:
		return "Accept"
	case ActionSelectPrevious:
		return "SelectPrevious"
	case ActionSelectNext:
		return "SelectNext"
	case ActionDismiss:
		return "Dismiss"
	case ActionNewTab:
		return "NewTab"
	case ActionCloseTab:
		return "CloseTab"
	case ActionNextTab:
		return "NextTab"
	case ActionPreviousTab:
		return "PreviousTab"
	case ActionPaste:
		return "Paste"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyBinding maps a bubbles key binding to an action.
type KeyBinding struct {
	Binding key.Binding
	Action  Action
}

// KeyMap holds all key bindings of the editor. It implements help.KeyMap so
// the help line can be rendered from it.
type KeyMap struct {
	bindings []KeyBinding
}

// NewKeyMap creates a KeyMap with the given bindings. Earlier bindings win
// when two of them share a key.
func NewKeyMap(bindings []KeyBinding) *KeyMap {
	return &KeyMap{bindings: bindings}
}

// DefaultKeyMap returns the default editor key bindings.
func DefaultKeyMap() *KeyMap {
	return NewKeyMap([]KeyBinding{
		{Action: ActionComplete, Binding: key.NewBinding(
			key.WithKeys("ctrl+@", "ctrl+ "),
			key.WithHelp("ctrl+space", "complete"))},
		{Action: ActionTogglePathCompletion, Binding: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "toggle paths"))},
		{Action: ActionAccept, Binding: key.NewBinding(
			key.WithKeys("tab", "enter"),
			key.WithHelp("tab", "accept"))},
		{Action: ActionSelectPrevious, Binding: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous"))},
		{Action: ActionSelectNext, Binding: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next"))},
		{Action: ActionDismiss, Binding: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"))},

		{Action: ActionNewTab, Binding: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "new tab"))},
		{Action: ActionCloseTab, Binding: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "close tab"))},
		{Action: ActionNextTab, Binding: key.NewBinding(
			key.WithKeys("alt+n"),
			key.WithHelp("alt+n", "next tab"))},
		{Action: ActionPreviousTab, Binding: key.NewBinding(
			key.WithKeys("alt+p"),
			key.WithHelp("alt+p", "prev tab"))},

		{Action: ActionCharacterForward, Binding: key.NewBinding(key.WithKeys("right", "ctrl+f"))},
		{Action: ActionCharacterBackward, Binding: key.NewBinding(key.WithKeys("left", "ctrl+b"))},
		{Action: ActionWordForward, Binding: key.NewBinding(key.WithKeys("alt+right", "ctrl+right", "alt+f"))},
		{Action: ActionWordBackward, Binding: key.NewBinding(key.WithKeys("alt+left", "ctrl+left", "alt+b"))},
		{Action: ActionLineStart, Binding: key.NewBinding(key.WithKeys("home", "ctrl+a"))},
		{Action: ActionLineEnd, Binding: key.NewBinding(key.WithKeys("end", "ctrl+e"))},
		{Action: ActionDeleteCharacterBackward, Binding: key.NewBinding(key.WithKeys("backspace", "ctrl+h"))},
		{Action: ActionDeleteCharacterForward, Binding: key.NewBinding(key.WithKeys("delete", "ctrl+d"))},
		{Action: ActionDeleteWordBackward, Binding: key.NewBinding(key.WithKeys("ctrl+w", "alt+backspace"))},

		{Action: ActionPaste, Binding: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste"))},
		{Action: ActionQuit, Binding: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"))},
	})
}

// Lookup finds the action for the given key message.
// Returns ActionNone if no binding matches.
func (km *KeyMap) Lookup(msg tea.KeyMsg) Action {
	for _, b := range km.bindings {
		if key.Matches(msg, b.Binding) {
			return b.Action
		}
	}
	return ActionNone
}

// Binding returns the key binding of an action.
func (km *KeyMap) Binding(action Action) (key.Binding, bool) {
	for _, b := range km.bindings {
		if b.Action == action {
			return b.Binding, true
		}
	}
	return key.Binding{}, false
}

// ShortHelp implements help.KeyMap.
func (km *KeyMap) ShortHelp() []key.Binding {
	return km.helpBindings(ActionComplete, ActionTogglePathCompletion, ActionAccept, ActionDismiss, ActionQuit)
}

// FullHelp implements help.KeyMap.
func (km *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		km.helpBindings(ActionComplete, ActionTogglePathCompletion, ActionAccept),
		km.helpBindings(ActionSelectPrevious, ActionSelectNext, ActionDismiss),
		km.helpBindings(ActionNewTab, ActionCloseTab, ActionNextTab, ActionPreviousTab),
		km.helpBindings(ActionPaste, ActionQuit),
	}
}

func (km *KeyMap) helpBindings(actions ...Action) []key.Binding {
	var result []key.Binding
	for _, a := range actions {
		if b, ok := km.Binding(a); ok && b.Help().Key != "" {
			result = append(result, b)
		}
	}
	return result
}
