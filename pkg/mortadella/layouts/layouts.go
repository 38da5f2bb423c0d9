// Package layouts supplies locale-resolved base character rows for the
// layout engine. It ships a small set of built-in layouts (QWERTY, AZERTY,
// QWERTZ plus the shared numeric/symbolic pages) and a Registry that loads
// further layouts from TOML definition files. Complete per-locale coverage
// is out of scope; hosts register what they need.
package layouts

import (
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/BrandonKowalski/mortadella/pkg/mortadella"
)

// The shared non-alphabetic pages. Custom layouts that omit numeric or
// symbolic rows inherit these.
var (
	defaultNumericRows = []string{
		"1234567890",
		`-/:;()$&@"`,
		".,?!'",
	}

	defaultSymbolicRows = []string{
		"[]{}#%^*+=",
		`_\|~<>€£¥•`,
		".,?!'",
	}
)

var builtinDefinitions = []Definition{
	{
		Name:    "qwerty",
		Locales: []string{"en"},
		Rows: RowSet{
			Alphabetic: []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"},
		},
	},
	{
		Name:    "azerty",
		Locales: []string{"fr"},
		Rows: RowSet{
			Alphabetic: []string{"azertyuiop", "qsdfghjklm", "wxcvbn"},
		},
	},
	{
		Name:    "qwertz",
		Locales: []string{"de"},
		Rows: RowSet{
			Alphabetic: []string{"qwertzuiop", "asdfghjkl", "yxcvbnm"},
		},
	},
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the shared registry preloaded with the built-in
// layouts.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// BaseRows resolves the closest layout for tag in the default registry and
// returns its rows for mode. See Registry.BaseRows.
func BaseRows(tag language.Tag, mode mortadella.KeyboardMode) mortadella.ActionRows {
	return DefaultRegistry().BaseRows(tag, mode)
}

// ContextFor assembles a ready-to-use Context from the default registry and
// the standard switcher tables. Hosts with their own row sources or
// switcher policies build the Context directly instead.
func ContextFor(device mortadella.DeviceClass, mode mortadella.KeyboardMode, tag language.Tag) mortadella.Context {
	return mortadella.Context{
		Device:    device,
		Mode:      mode,
		Locale:    tag,
		BaseRows:  BaseRows(tag, mode),
		Switchers: mortadella.StandardSwitchers(device),
	}
}

// rowsFromStrings turns per-mode row strings into character action rows,
// uppercasing when the mode's case state asks for it.
func rowsFromStrings(rows []string, upper bool) mortadella.ActionRows {
	out := make(mortadella.ActionRows, 0, len(rows))
	for _, s := range rows {
		row := make(mortadella.ActionRow, 0, utf8.RuneCountInString(s))
		for _, r := range s {
			if upper {
				r = unicode.ToUpper(r)
			}
			row = append(row, mortadella.Character(r))
		}
		out = append(out, row)
	}
	return out
}
