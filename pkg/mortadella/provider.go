package mortadella

// Config customizes a LayoutProvider at construction time. Both fields are
// optional; when nil, no extra action flanks the space bar.
type Config struct {
	LeftSpaceAction  *Action
	RightSpaceAction *Action
}

// LayoutProvider assembles finished keyboard layouts from a Context. It is
// stateless and pure: the same Context always yields a structurally equal
// KeyboardLayout, and computing one never fails.
type LayoutProvider struct {
	leftSpace  *Action
	rightSpace *Action
}

// NewLayoutProvider returns a provider with the given customizations. The
// flank actions are copied, so later mutation of cfg has no effect.
func NewLayoutProvider(cfg Config) *LayoutProvider {
	p := &LayoutProvider{}
	if cfg.LeftSpaceAction != nil {
		a := *cfg.LeftSpaceAction
		p.leftSpace = &a
	}
	if cfg.RightSpaceAction != nil {
		a := *cfg.RightSpaceAction
		p.rightSpace = &a
	}
	return p
}

// ComputeLayout derives the layout for ctx: the base rows decorated per the
// device policy, plus one appended bottom action row. The result always has
// len(ctx.BaseRows)+1 rows; empty base rows yield just the bottom row.
func (p *LayoutProvider) ComputeLayout(ctx Context) KeyboardLayout {
	rows := composeRows(ctx)
	rows = append(rows, bottomRow(ctx, p.leftSpace, p.rightSpace))
	return KeyboardLayout{rows: rows}
}
