package mortadella

// composeRows decorates the base rows with the per-device leading/trailing
// actions. Only rows 0-2 carry decorations; anything below passes through
// untouched. Row order is preserved and no base character is dropped.
func composeRows(ctx Context) ActionRows {
	rows := make(ActionRows, 0, len(ctx.BaseRows)+1)
	for i, row := range ctx.BaseRows {
		leading, trailing := rowDecoration(ctx, i)
		rows = append(rows, decorate(row, leading, trailing))
	}
	return rows
}

func rowDecoration(ctx Context, index int) (leading, trailing []Action) {
	if ctx.Device == DeviceTablet {
		return tabletRowDecoration(ctx, index)
	}
	return phoneRowDecoration(ctx, index)
}

// Tablet policy: tab/shift-lock lead rows 0/1 (unless the next-keyboard key
// claims that corner), backspace and return trail them, and row 2 mirrors
// the mode's side switcher on both ends.
func tabletRowDecoration(ctx Context, index int) (leading, trailing []Action) {
	switch index {
	case 0:
		if !ctx.NeedsModeSwitchKey {
			leading = []Action{Tab}
		}
		trailing = []Action{Backspace}
	case 1:
		if !ctx.NeedsModeSwitchKey {
			leading = []Action{ShiftLock}
		}
		trailing = []Action{NewLine}
	case 2:
		if side, ok := ctx.sideSwitcher(); ok {
			leading = []Action{side}
			trailing = []Action{side}
		}
	}
	return leading, trailing
}

// Phone policy: rows 0/1 stay bare; row 2 gets the side switcher on the
// left and backspace on the right.
func phoneRowDecoration(ctx Context, index int) (leading, trailing []Action) {
	if index != 2 {
		return nil, nil
	}
	if side, ok := ctx.sideSwitcher(); ok {
		leading = []Action{side}
	}
	trailing = []Action{Backspace}
	return leading, trailing
}

func decorate(row ActionRow, leading, trailing []Action) ActionRow {
	out := make(ActionRow, 0, len(leading)+len(row)+len(trailing))
	out = append(out, leading...)
	out = append(out, row...)
	out = append(out, trailing...)
	return out
}
