package mortadella

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLayoutRowCountInvariant(t *testing.T) {
	provider := NewLayoutProvider(Config{})

	for _, device := range []DeviceClass{DevicePhone, DeviceTablet} {
		for _, kt := range []KeyboardType{KeyboardAlphabetic, KeyboardNumeric, KeyboardSymbolic, KeyboardOther} {
			for _, needsSwitch := range []bool{false, true} {
				for rowCount := 0; rowCount <= 4; rowCount++ {
					ctx := Context{
						Device:             device,
						Mode:               KeyboardMode{Type: kt},
						NeedsModeSwitchKey: needsSwitch,
						Switchers:          StandardSwitchers(device),
						BaseRows:           baseRows([]string{"abc", "def", "ghi", "jkl"}[:rowCount]...),
					}
					layout := provider.ComputeLayout(ctx)
					assert.Equal(t, rowCount+1, layout.RowCount(),
						"device=%v type=%v needsSwitch=%v rows=%d", device, kt, needsSwitch, rowCount)
				}
			}
		}
	}
}

func TestComputeLayoutEmptyBaseRows(t *testing.T) {
	provider := NewLayoutProvider(Config{})
	layout := provider.ComputeLayout(Context{Device: DevicePhone})

	require.Equal(t, 1, layout.RowCount())
	assert.Equal(t, ActionRow{Space, NewLine}, layout.Row(0))
}

func TestComputeLayoutIdempotent(t *testing.T) {
	provider := NewLayoutProvider(Config{
		LeftSpaceAction:  actionPtr(Character('.')),
		RightSpaceAction: actionPtr(Character('@')),
	})
	ctx := alphaContext(DeviceTablet)
	ctx.Switchers = StandardSwitchers(DeviceTablet)

	first := provider.ComputeLayout(ctx)
	second := provider.ComputeLayout(ctx)
	assert.True(t, first.Equal(second))
}

func TestScenarioPhoneAlphabetic(t *testing.T) {
	// Phone, alphabetic lowercased, three base rows, no mode-switch key, no
	// flank actions, no switcher policy: the bottom row is exactly space +
	// return and rows 0/1 are the base rows.
	provider := NewLayoutProvider(Config{})
	ctx := alphaContext(DevicePhone)
	layout := provider.ComputeLayout(ctx)

	require.Equal(t, 4, layout.RowCount())
	assert.Equal(t, ctx.BaseRows[0], layout.Row(0))
	assert.Equal(t, ctx.BaseRows[1], layout.Row(1))
	assert.Equal(t, ActionRow{Space, NewLine}, layout.Row(3))
}

func TestScenarioTabletModeSwitchWithFlanks(t *testing.T) {
	// Tablet, needs-mode-switch-key set, both flank actions supplied, no
	// switcher policy: bottom row is next-keyboard, L, space, R, dismiss.
	// Dictation stays excluded.
	provider := NewLayoutProvider(Config{
		LeftSpaceAction:  actionPtr(Character('L')),
		RightSpaceAction: actionPtr(Character('R')),
	})
	ctx := alphaContext(DeviceTablet)
	ctx.NeedsModeSwitchKey = true
	layout := provider.ComputeLayout(ctx)

	require.Equal(t, 4, layout.RowCount())
	assert.Equal(t, ActionRow{
		NextKeyboard,
		Character('L'),
		Space,
		Character('R'),
		DismissKeyboard,
	}, layout.Row(3))

	// Leading tab/shift-lock are omitted on rows 0/1 when the flag is set.
	assert.NotEqual(t, Tab, layout.Row(0)[0])
	assert.NotEqual(t, ShiftLock, layout.Row(1)[0])
}

func TestConfigFlankActionsAreCopied(t *testing.T) {
	left := Character('.')
	cfg := Config{LeftSpaceAction: &left}
	provider := NewLayoutProvider(cfg)

	left = Character('!')
	layout := provider.ComputeLayout(Context{Device: DevicePhone})
	assert.Equal(t, ActionRow{Character('.'), Space, NewLine}, layout.Row(0))
}

func TestLayoutRowOutOfRange(t *testing.T) {
	layout := NewKeyboardLayout(ActionRows{{Space}})
	assert.Nil(t, layout.Row(-1))
	assert.Nil(t, layout.Row(1))
}

func TestCachedProviderReturnsEqualLayouts(t *testing.T) {
	provider := NewCachedProvider(Config{})
	ctx := alphaContext(DevicePhone)
	ctx.Switchers = StandardSwitchers(DevicePhone)

	first := provider.ComputeLayout(ctx)
	second := provider.ComputeLayout(ctx)
	assert.True(t, first.Equal(second))
}

func TestCachedProviderRecomputesOnChange(t *testing.T) {
	provider := NewCachedProvider(Config{})
	ctx := alphaContext(DevicePhone)
	phone := provider.ComputeLayout(ctx)

	ctx.Device = DeviceTablet
	tablet := provider.ComputeLayout(ctx)
	assert.False(t, phone.Equal(tablet))

	// Matches the plain provider's output for the new context.
	want := NewLayoutProvider(Config{}).ComputeLayout(ctx)
	assert.True(t, tablet.Equal(want))
}

func TestCachedProviderMatchesPlainProvider(t *testing.T) {
	cached := NewCachedProvider(Config{})
	plain := NewLayoutProvider(Config{})

	for _, device := range []DeviceClass{DevicePhone, DeviceTablet} {
		for _, needsSwitch := range []bool{false, true} {
			ctx := alphaContext(device)
			ctx.NeedsModeSwitchKey = needsSwitch
			ctx.Switchers = StandardSwitchers(device)

			assert.True(t, cached.ComputeLayout(ctx).Equal(plain.ComputeLayout(ctx)))
		}
	}
}
