package mortadella

// The stock switcher tables, derived from the platform-native layouts:
// alphabetic keyboards flank row 2 with shift, numeric and symbolic
// keyboards flank it with the key that toggles between the two, and the
// bottom bar swaps between "123" and "ABC". Modes missing from a table
// simply define no switcher.
var (
	standardSideSwitchers = map[KeyboardType]Action{
		KeyboardAlphabetic: {Kind: ActionShiftLock},
		KeyboardNumeric:    {Kind: ActionKeyboardTypeSwitch, Target: KeyboardSymbolic},
		KeyboardSymbolic:   {Kind: ActionKeyboardTypeSwitch, Target: KeyboardNumeric},
	}

	standardBottomSwitchers = map[KeyboardType]Action{
		KeyboardAlphabetic: {Kind: ActionKeyboardTypeSwitch, Target: KeyboardNumeric},
		KeyboardNumeric:    {Kind: ActionKeyboardTypeSwitch, Target: KeyboardAlphabetic},
		KeyboardSymbolic:   {Kind: ActionKeyboardTypeSwitch, Target: KeyboardAlphabetic},
	}
)

type standardSwitchers struct {
	device DeviceClass
}

// StandardSwitchers returns the stock SwitcherPolicy for a device class.
// The tables are currently identical on phone and tablet; the device is
// part of the contract so they can diverge without an API change.
func StandardSwitchers(device DeviceClass) SwitcherPolicy {
	return standardSwitchers{device: device}
}

func (s standardSwitchers) SideSwitcher(mode KeyboardMode) (Action, bool) {
	a, ok := standardSideSwitchers[mode.Type]
	return a, ok
}

func (s standardSwitchers) BottomSwitcher(mode KeyboardMode) (Action, bool) {
	a, ok := standardBottomSwitchers[mode.Type]
	return a, ok
}
