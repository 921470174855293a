package input

// Control codes delivered as raw keys for Ctrl-D and Ctrl-U
const (
	RawCtrlD rune = 4
	RawCtrlU rune = 21
)

// KeyState is one frame of keyboard input
type KeyState struct {
	// RawKey is the pressed character or control code, valid when HasRawKey
	RawKey    rune
	HasRawKey bool

	PageDown bool
	PageUp   bool

	// AxisY is the vertical navigation axis; positive is down
	AxisY float32
}

// Empty reports whether no key was pressed
func (k KeyState) Empty() bool {
	return !k.HasRawKey && !k.PageDown && !k.PageUp && k.AxisY == 0
}
