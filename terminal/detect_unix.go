//go:build unix

package terminal

import (
	"golang.org/x/sys/unix"
)

// DetectAspectRatio returns the cell height/width ratio from the terminal's pixel geometry
// Reports false when the terminal does not expose pixel sizes
func DetectAspectRatio(fd uintptr) (float32, bool) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0, false
	}
	return aspectFromWinsize(ws.Col, ws.Row, ws.Xpixel, ws.Ypixel)
}
