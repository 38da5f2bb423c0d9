package mortadella

// Dictation is modeled in the Action set but not offered on any device yet;
// flip this once a host actually exposes a dictation service. Reserved,
// deliberately not a Context field, so callers cannot enable it early.
const dictationSupported = false

// bottomRow builds the final action bar. Each element is appended in a
// fixed order behind its own guard; the guards are independent, never
// mutually exclusive branches.
func bottomRow(ctx Context, leftSpace, rightSpace *Action) ActionRow {
	if ctx.Device == DeviceTablet {
		return tabletBottomRow(ctx, leftSpace, rightSpace)
	}
	return phoneBottomRow(ctx, leftSpace, rightSpace)
}

func tabletBottomRow(ctx Context, leftSpace, rightSpace *Action) ActionRow {
	row := make(ActionRow, 0, 8)
	if !ctx.NeedsModeSwitchKey {
		row = append(row, NextKeyboard)
	}
	if switcher, ok := ctx.bottomSwitcher(); ok {
		row = append(row, switcher)
	}
	// Exactly one next-keyboard key either way; it just changes position
	// relative to the switcher when the host demands it.
	if ctx.NeedsModeSwitchKey {
		row = append(row, NextKeyboard)
	}
	if dictationSupported {
		row = append(row, Dictation)
	}
	if leftSpace != nil {
		row = append(row, *leftSpace)
	}
	row = append(row, Space)
	if rightSpace != nil {
		row = append(row, *rightSpace)
	}
	// The switcher flanks the space bar on both sides on tablets.
	if switcher, ok := ctx.bottomSwitcher(); ok {
		row = append(row, switcher)
	}
	row = append(row, DismissKeyboard)
	return row
}

func phoneBottomRow(ctx Context, leftSpace, rightSpace *Action) ActionRow {
	row := make(ActionRow, 0, 6)
	if switcher, ok := ctx.bottomSwitcher(); ok {
		row = append(row, switcher)
	}
	if ctx.NeedsModeSwitchKey {
		row = append(row, NextKeyboard)
	}
	if dictationSupported {
		row = append(row, Dictation)
	}
	if leftSpace != nil {
		row = append(row, *leftSpace)
	}
	row = append(row, Space)
	if rightSpace != nil {
		row = append(row, *rightSpace)
	}
	row = append(row, NewLine)
	return row
}
