package mortadella

import (
	"strconv"
	"strings"

	"go.uber.org/atomic"
)

// CachedProvider wraps a LayoutProvider and memoizes the most recent
// layout. Keyboards recompute on every context change but are redrawn far
// more often than they change, so a single-entry cache covers the common
// case. Safe for concurrent use.
type CachedProvider struct {
	provider *LayoutProvider
	last     atomic.Pointer[cachedLayout]
}

type cachedLayout struct {
	key    string
	layout KeyboardLayout
}

// NewCachedProvider returns a caching provider with the given
// customizations.
func NewCachedProvider(cfg Config) *CachedProvider {
	return &CachedProvider{provider: NewLayoutProvider(cfg)}
}

// ComputeLayout returns the cached layout when ctx matches the previous
// call, otherwise recomputes and replaces the cache entry.
func (p *CachedProvider) ComputeLayout(ctx Context) KeyboardLayout {
	key := fingerprint(ctx)
	if entry := p.last.Load(); entry != nil && entry.key == key {
		return entry.layout
	}
	layout := p.provider.ComputeLayout(ctx)
	p.last.Store(&cachedLayout{key: key, layout: layout})
	return layout
}

// fingerprint folds every Context input the layout depends on into a
// comparable key. The switcher policy is captured through its resolved
// actions for the current mode, not its identity, which is exactly the
// part of it the layout consumes.
func fingerprint(ctx Context) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(ctx.Device)))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(int(ctx.Mode.Type)))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(int(ctx.Mode.Case)))
	b.WriteByte('|')
	b.WriteString(ctx.Locale.String())
	b.WriteByte('|')
	if ctx.NeedsModeSwitchKey {
		b.WriteByte('m')
	}
	if ctx.HasFullAccess {
		b.WriteByte('f')
	}
	b.WriteByte('|')
	if side, ok := ctx.sideSwitcher(); ok {
		writeAction(&b, side)
	}
	b.WriteByte('|')
	if bottom, ok := ctx.bottomSwitcher(); ok {
		writeAction(&b, bottom)
	}
	for _, row := range ctx.BaseRows {
		b.WriteByte('\n')
		for _, a := range row {
			writeAction(&b, a)
		}
	}
	return b.String()
}

func writeAction(b *strings.Builder, a Action) {
	b.WriteString(strconv.Itoa(int(a.Kind)))
	b.WriteByte(',')
	b.WriteRune(a.Char)
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(int(a.Target)))
	b.WriteByte(';')
}
