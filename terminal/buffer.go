package terminal

import (
	"strings"
)

var blankCell = Cell{Rune: ' '}

// Buffer is an in-memory Canvas with touched-cell tracking
// Frames are composed here and flushed to a device canvas in one pass
type Buffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewBuffer creates a cleared buffer
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = blankCell
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Size implements Canvas
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// SetCell implements Canvas
func (b *Buffer) SetCell(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = c
	b.touched[idx] = true
}

// Cell returns the cell at (x, y), blank when out of bounds
func (b *Buffer) Cell(x, y int) Cell {
	if !b.inBounds(x, y) {
		return blankCell
	}
	return b.cells[y*b.width+x]
}

// Touched reports whether the cell was written since the last Clear
func (b *Buffer) Touched(x, y int) bool {
	return b.inBounds(x, y) && b.touched[y*b.width+x]
}

// Row returns the runes of a row as a string, wide-glyph continuations omitted
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		if c.Rune != 0 {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}

// Lines returns every row
func (b *Buffer) Lines() []string {
	out := make([]string, b.height)
	for y := range out {
		out[y] = b.Row(y)
	}
	return out
}

// FlushTo copies every cell to dst, skipping wide-glyph continuations
func (b *Buffer) FlushTo(dst Canvas) {
	w, h := dst.Size()
	w, h = min(w, b.width), min(h, b.height)
	for y := 0; y < h; y++ {
		row := b.cells[y*b.width : y*b.width+w]
		for x, c := range row {
			if c.Rune == 0 {
				continue
			}
			dst.SetCell(x, y, c)
		}
	}
}
