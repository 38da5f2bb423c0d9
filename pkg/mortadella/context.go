package mortadella

import (
	"golang.org/x/text/language"
)

// DeviceClass selects which augmentation policy applies.
type DeviceClass int

const (
	DevicePhone DeviceClass = iota
	DeviceTablet
)

// KeyboardType is the character set a keyboard page offers.
type KeyboardType int

const (
	KeyboardAlphabetic KeyboardType = iota
	KeyboardNumeric
	KeyboardSymbolic
	KeyboardOther
)

// Label returns the conventional key-cap name for switching to t.
func (t KeyboardType) Label() string {
	switch t {
	case KeyboardAlphabetic:
		return "ABC"
	case KeyboardNumeric:
		return "123"
	case KeyboardSymbolic:
		return "#+="
	}
	return ""
}

// CaseState is the shift state of an alphabetic keyboard.
type CaseState int

const (
	CaseLowercased CaseState = iota
	CaseUppercased
	CaseCapsLocked
)

// KeyboardMode is the active character set plus case state. Case is only
// meaningful for KeyboardAlphabetic.
type KeyboardMode struct {
	Type KeyboardType
	Case CaseState
}

// SwitcherPolicy resolves the optional mode-switch actions a layout places
// around row 2 and in the bottom bar. The second return value reports
// whether the mode defines one. See StandardSwitchers for the stock tables.
type SwitcherPolicy interface {
	SideSwitcher(mode KeyboardMode) (Action, bool)
	BottomSwitcher(mode KeyboardMode) (Action, bool)
}

// Context is the read-only snapshot a layout is computed from. The host
// resolves everything up front: the device class, the active mode, the
// locale- and case-adjusted base rows, and the switcher policy. The layout
// engine never infers any of these itself.
type Context struct {
	Device DeviceClass
	Mode   KeyboardMode
	Locale language.Tag

	// NeedsModeSwitchKey is set when the host requires a next-keyboard key
	// in the layout (e.g. several input sources are installed).
	NeedsModeSwitchKey bool

	// HasFullAccess mirrors the host's open-access capability. No current
	// policy row branches on it; it is carried for policy tables that do.
	HasFullAccess bool

	// BaseRows are the character rows for the active mode, already resolved
	// for locale and case. May be empty; the computed layout then contains
	// only the bottom action row.
	BaseRows ActionRows

	// Switchers may be nil, in which case no mode defines a switcher action.
	Switchers SwitcherPolicy
}

func (c Context) sideSwitcher() (Action, bool) {
	if c.Switchers == nil {
		return Action{}, false
	}
	return c.Switchers.SideSwitcher(c.Mode)
}

func (c Context) bottomSwitcher() (Action, bool) {
	if c.Switchers == nil {
		return Action{}, false
	}
	return c.Switchers.BottomSwitcher(c.Mode)
}
