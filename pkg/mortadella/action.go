package mortadella

import (
	"github.com/BrandonKowalski/mortadella/pkg/mortadella/i18n"
)

// ActionKind discriminates the variants of Action.
type ActionKind int

const (
	ActionCharacter ActionKind = iota
	ActionBackspace
	ActionTab
	ActionNewLine
	ActionSpace
	ActionShiftLock
	ActionKeyboardTypeSwitch
	ActionNextKeyboard
	ActionDictation
	ActionDismissKeyboard
)

// Action is the semantic effect of a single key: a character insertion, a
// deletion, a mode switch, and so on. Actions are plain values; two actions
// are the same key exactly when they compare equal with ==.
type Action struct {
	Kind   ActionKind
	Char   rune         // payload for ActionCharacter
	Target KeyboardType // payload for ActionKeyboardTypeSwitch
}

// Character returns the action that inserts r.
func Character(r rune) Action {
	return Action{Kind: ActionCharacter, Char: r}
}

// SwitchTo returns the action that switches the keyboard to t.
func SwitchTo(t KeyboardType) Action {
	return Action{Kind: ActionKeyboardTypeSwitch, Target: t}
}

// The fixed, payload-free actions.
var (
	Backspace       = Action{Kind: ActionBackspace}
	Tab             = Action{Kind: ActionTab}
	NewLine         = Action{Kind: ActionNewLine}
	Space           = Action{Kind: ActionSpace}
	ShiftLock       = Action{Kind: ActionShiftLock}
	NextKeyboard    = Action{Kind: ActionNextKeyboard}
	Dictation       = Action{Kind: ActionDictation}
	DismissKeyboard = Action{Kind: ActionDismissKeyboard}
)

// IsCharacter reports whether a inserts a character (including space).
func (a Action) IsCharacter() bool {
	return a.Kind == ActionCharacter || a.Kind == ActionSpace
}

// Label returns the string a renderer should draw on the key cap.
// Character keys show their character, switch keys show the conventional
// name of the target set, and the word keys (space, return) go through the
// i18n bundle so hosts can localize them.
func (a Action) Label() string {
	switch a.Kind {
	case ActionCharacter:
		return string(a.Char)
	case ActionKeyboardTypeSwitch:
		return a.Target.Label()
	case ActionSpace:
		return i18n.Localize(&i18n.Message{ID: "key_space", Other: "space"}, nil)
	case ActionNewLine:
		return i18n.Localize(&i18n.Message{ID: "key_return", Other: "return"}, nil)
	case ActionBackspace:
		return "⌫"
	case ActionTab:
		return "⇥"
	case ActionShiftLock:
		return "⇧"
	case ActionNextKeyboard:
		return "🌐"
	case ActionDictation:
		return "🎤"
	case ActionDismissKeyboard:
		return "⌄"
	}
	return ""
}
