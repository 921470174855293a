package bridge

import (
	"unsafe"

	"github.com/charmbracelet/log"
)

// DefaultFrameArenaSize holds the dynamic text of a typical frame
const DefaultFrameArenaSize = 16 * 1024

// FrameArena is a bump allocator for text that must outlive a binding call but not the frame
// Strings it returns alias arena memory and are invalid after the next Reset
type FrameArena struct {
	buf       []byte
	offset    int
	overflows int
	logger    *log.Logger
}

// NewFrameArena creates an arena; size 0 selects the default and a negative size disables it
func NewFrameArena(size int, logger *log.Logger) *FrameArena {
	if logger == nil {
		logger = log.Default()
	}
	a := &FrameArena{logger: logger}
	switch {
	case size == 0:
		a.buf = make([]byte, DefaultFrameArenaSize)
	case size > 0:
		a.buf = make([]byte, size)
	default:
		logger.Error("frame arena disabled, dynamic text will be dropped")
	}
	return a
}

// Enabled reports whether the arena has backing memory
func (a *FrameArena) Enabled() bool {
	return a.buf != nil
}

// Copy places b in the arena and returns a string viewing it
// Returns "" when disabled or when b does not fit; the arena never grows
func (a *FrameArena) Copy(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	if a.buf == nil {
		a.logger.Error("frame arena disabled, dropping text", "len", len(b))
		return ""
	}
	if a.offset+len(b) > len(a.buf) {
		a.overflows++
		a.logger.Warn("frame arena overflow", "need", len(b), "used", a.offset, "cap", len(a.buf))
		return ""
	}
	dst := a.buf[a.offset : a.offset+len(b) : a.offset+len(b)]
	copy(dst, b)
	a.offset += len(b)
	return unsafe.String(unsafe.SliceData(dst), len(dst))
}

// CopyString places s in the arena
func (a *FrameArena) CopyString(s string) string {
	return a.Copy(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// Reset reclaims all space; previously returned strings must no longer be used
func (a *FrameArena) Reset() {
	a.offset = 0
}

// Used returns bytes consumed since the last Reset
func (a *FrameArena) Used() int {
	return a.offset
}

// Cap returns the arena capacity
func (a *FrameArena) Cap() int {
	return len(a.buf)
}

// Overflows returns the number of rejected copies since creation
func (a *FrameArena) Overflows() int {
	return a.overflows
}
