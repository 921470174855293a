package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// TestNearest256ExactMatches verifies palette entries map to themselves
func TestNearest256ExactMatches(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want uint8
	}{
		{"red", RGB{255, 0, 0}, 196},
		{"white", RGB{255, 255, 255}, 231},
		{"black", RGB{0, 0, 0}, 16},
		{"gray", RGB{128, 128, 128}, 244},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Nearest256(tt.in); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

// TestPaletteModes verifies truecolor passthrough and 256 fallback
func TestPaletteModes(t *testing.T) {
	c := RGB{10, 200, 30}

	tc := NewPalette(ColorModeTrueColor).Map(c)
	if tc.Kind != ColorKindRGB || tc.RGB != c {
		t.Errorf("Expected RGB passthrough, got %+v", tc)
	}

	p := NewPalette(ColorMode256)
	first := p.Map(c)
	if first.Kind != ColorKindIndexed {
		t.Fatalf("Expected indexed color, got kind %d", first.Kind)
	}
	if second := p.Map(c); second != first {
		t.Errorf("Expected memoized result %+v, got %+v", first, second)
	}
}

// TestParseColorMode verifies config names
func TestParseColorMode(t *testing.T) {
	if m, ok := ParseColorMode("TrueColor"); !ok || m != ColorModeTrueColor {
		t.Errorf("Expected truecolor, got %v %v", m, ok)
	}
	if m, ok := ParseColorMode("256"); !ok || m != ColorMode256 {
		t.Errorf("Expected 256, got %v %v", m, ok)
	}
	if _, ok := ParseColorMode("16"); ok {
		t.Error("Expected unknown mode rejected")
	}
}

// TestStyleTcell verifies conversion of colors and attributes
func TestStyleTcell(t *testing.T) {
	st := Style{Fg: ColorFromRGB(1, 2, 3), Bg: ColorFromIndex(42), Attrs: AttrBold | AttrReverse}
	fg, bg, attrs := st.Tcell().Decompose()

	if fg != tcell.NewRGBColor(1, 2, 3) {
		t.Errorf("Expected RGB fg, got %v", fg)
	}
	if bg != tcell.PaletteColor(42) {
		t.Errorf("Expected palette bg, got %v", bg)
	}
	if AttrFromTcell(attrs) != AttrBold|AttrReverse {
		t.Errorf("Expected bold|reverse, got %b", AttrFromTcell(attrs))
	}

	dfg, _, _ := StyleDefault.Tcell().Decompose()
	if dfg != tcell.ColorDefault {
		t.Errorf("Expected default fg, got %v", dfg)
	}
}

// TestAspectFromWinsize verifies ratio derivation and rejection of bogus geometry
func TestAspectFromWinsize(t *testing.T) {
	if r, ok := aspectFromWinsize(80, 24, 640, 384); !ok || r != 2.0 {
		t.Errorf("Expected 2.0, got %v %v", r, ok)
	}
	if _, ok := aspectFromWinsize(80, 24, 0, 0); ok {
		t.Error("Expected missing pixel sizes rejected")
	}
	if _, ok := aspectFromWinsize(80, 24, 80, 384); ok {
		t.Error("Expected implausible ratio rejected")
	}
}
