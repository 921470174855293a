package input

import (
	"github.com/gdamore/tcell/v2"
)

// FromTcell converts a key event; ok is false for keys that carry no scroll meaning
func FromTcell(ev *tcell.EventKey) (ks KeyState, ok bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return KeyState{RawKey: ev.Rune(), HasRawKey: true}, true
	case tcell.KeyCtrlD:
		return KeyState{RawKey: RawCtrlD, HasRawKey: true}, true
	case tcell.KeyCtrlU:
		return KeyState{RawKey: RawCtrlU, HasRawKey: true}, true
	case tcell.KeyPgDn:
		return KeyState{PageDown: true}, true
	case tcell.KeyPgUp:
		return KeyState{PageUp: true}, true
	case tcell.KeyDown:
		return KeyState{AxisY: 1}, true
	case tcell.KeyUp:
		return KeyState{AxisY: -1}, true
	}
	return KeyState{}, false
}
