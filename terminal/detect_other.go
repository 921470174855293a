//go:build !unix

package terminal

// DetectAspectRatio is unavailable without TIOCGWINSZ
func DetectAspectRatio(fd uintptr) (float32, bool) {
	return 0, false
}
