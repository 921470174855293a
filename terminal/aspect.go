package terminal

// DefaultAspectRatio assumes cells twice as tall as they are wide
const DefaultAspectRatio float32 = 2.0

// Plausible bounds for detected ratios; anything outside is treated as bogus geometry
const (
	minAspectRatio float32 = 0.5
	maxAspectRatio float32 = 4.0
)

func aspectFromWinsize(cols, rows, xpixel, ypixel uint16) (float32, bool) {
	if cols == 0 || rows == 0 || xpixel == 0 || ypixel == 0 {
		return 0, false
	}
	cellW := float32(xpixel) / float32(cols)
	cellH := float32(ypixel) / float32(rows)
	ratio := cellH / cellW
	if ratio < minAspectRatio || ratio > maxAspectRatio {
		return 0, false
	}
	return ratio, true
}
